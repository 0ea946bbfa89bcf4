package config

import "time"

// Default returns the built-in configuration. Every value here is safe
// for local development; production deployments override through YAML
// and environment variables.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ShutdownTimeout: 20 * time.Second,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "switchyard",
			Name:            "switchyard",
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
			ConnMaxIdleTime: 10 * time.Minute,
		},
		Auth: AuthConfig{
			Enabled:   false,
			DevUserID: "dev-user",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 60,
			Burst:             10,
			IdleEviction:      10 * time.Minute,
		},
		LLM: LLMConfig{
			BaseURL:       "https://api.openai.com/v1",
			Model:         "gpt-4o",
			ChunkTimeout:  30 * time.Second,
			StreamTimeout: 5 * time.Minute,
			Retry: RetryConfig{
				MaxAttempts:    3,
				InitialBackoff: 2 * time.Second,
				MaxBackoff:     10 * time.Second,
			},
			Breaker: BreakerConfig{
				FailureThreshold: 5,
				Cooldown:         60 * time.Second,
			},
		},
		Agents: AgentsConfig{
			Mode:         "multi",
			HistoryLimit: 100,
			MaxTurns:     10,
		},
		Locks: LocksConfig{
			AcquireTimeout: 5 * time.Second,
			IdleTTL:        30 * time.Minute,
			SweepInterval:  5 * time.Minute,
			SizeFloor:      1024,
		},
		Events: EventsConfig{
			QueueSize: 1024,
		},
		Masking: MaskingConfig{
			Enabled: true,
		},
		Retention: RetentionConfig{
			CleanupInterval:    1 * time.Hour,
			SessionIdleTimeout: 24 * time.Hour,
			PurgeAfter:         30 * 24 * time.Hour,
			StaleApprovalAge:   24 * time.Hour,
			AuditRetention:     90 * 24 * time.Hour,
		},
	}
}
