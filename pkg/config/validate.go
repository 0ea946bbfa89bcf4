package config

import (
	"fmt"
	"regexp"

	"github.com/switchyard-ai/switchyard/pkg/agent"
)

// Validate checks the configuration for values that would break the
// runtime at a distance: it is called once at startup so misconfiguration
// fails fast instead of surfacing as runtime errors hours later.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return NewValidationError("server", "port",
			fmt.Errorf("%w: %d", ErrInvalidValue, c.Server.Port))
	}

	if c.Database.Host == "" {
		return NewValidationError("database", "host", ErrMissingRequiredField)
	}
	if c.Database.Name == "" {
		return NewValidationError("database", "name", ErrMissingRequiredField)
	}
	if c.Database.MaxOpenConns < c.Database.MaxIdleConns {
		return NewValidationError("database", "max_open_conns",
			fmt.Errorf("%w: must be at least max_idle_conns (%d)", ErrInvalidValue, c.Database.MaxIdleConns))
	}

	if c.Auth.Enabled && c.Auth.JWKSURL == "" {
		return NewValidationError("auth", "jwks_url",
			fmt.Errorf("%w when auth is enabled", ErrMissingRequiredField))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return NewValidationError("rate_limit", "requests_per_minute",
				fmt.Errorf("%w: %d", ErrInvalidValue, c.RateLimit.RequestsPerMinute))
		}
		if c.RateLimit.Burst <= 0 {
			return NewValidationError("rate_limit", "burst",
				fmt.Errorf("%w: %d", ErrInvalidValue, c.RateLimit.Burst))
		}
	}

	if c.LLM.BaseURL == "" {
		return NewValidationError("llm", "base_url", ErrMissingRequiredField)
	}
	if c.LLM.Model == "" {
		return NewValidationError("llm", "model", ErrMissingRequiredField)
	}
	if c.LLM.Retry.MaxAttempts < 1 {
		return NewValidationError("llm", "retry.max_attempts",
			fmt.Errorf("%w: %d", ErrInvalidValue, c.LLM.Retry.MaxAttempts))
	}
	if c.LLM.Breaker.FailureThreshold < 1 {
		return NewValidationError("llm", "circuit_breaker.failure_threshold",
			fmt.Errorf("%w: %d", ErrInvalidValue, c.LLM.Breaker.FailureThreshold))
	}

	if _, err := agent.ParseMode(c.Agents.Mode); err != nil {
		return NewValidationError("agents", "mode", fmt.Errorf("%w: %v", ErrInvalidValue, err))
	}
	if c.Agents.HistoryLimit <= 0 {
		return NewValidationError("agents", "history_limit",
			fmt.Errorf("%w: %d", ErrInvalidValue, c.Agents.HistoryLimit))
	}
	if c.Agents.MaxTurns <= 0 {
		return NewValidationError("agents", "max_turns",
			fmt.Errorf("%w: %d", ErrInvalidValue, c.Agents.MaxTurns))
	}

	for _, p := range c.Masking.ExtraPatterns {
		if p.Name == "" {
			return NewValidationError("masking", "extra_patterns.name", ErrMissingRequiredField)
		}
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return NewValidationError("masking", "extra_patterns.pattern",
				fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
	}

	if c.Retention.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup_interval",
			fmt.Errorf("%w: %s", ErrInvalidValue, c.Retention.CleanupInterval))
	}
	if c.Retention.SessionIdleTimeout <= 0 {
		return NewValidationError("retention", "session_idle_timeout",
			fmt.Errorf("%w: %s", ErrInvalidValue, c.Retention.SessionIdleTimeout))
	}

	return nil
}
