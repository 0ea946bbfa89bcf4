package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "switchyard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "multi", cfg.Agents.Mode)
	assert.Equal(t, 100, cfg.Agents.HistoryLimit)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, 5, cfg.LLM.Breaker.FailureThreshold)
	assert.Equal(t, 60*time.Second, cfg.LLM.Breaker.Cooldown)
	assert.False(t, cfg.Auth.Enabled)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9191
agents:
  mode: single
  max_turns: 4
llm:
  model: gpt-4o-mini
  retry:
    max_attempts: 5
rate_limit:
  requests_per_minute: 120
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "single", cfg.Agents.Mode)
	assert.Equal(t, 4, cfg.Agents.MaxTurns)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 5, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)

	// Untouched sections keep their defaults.
	assert.Equal(t, 100, cfg.Agents.HistoryLimit)
	assert.Equal(t, 2*time.Second, cfg.LLM.Retry.InitialBackoff)
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoad_ExpandsEnvTemplates(t *testing.T) {
	t.Setenv("TEST_LLM_BASE", "https://llm.internal.example.com/v1")

	path := writeConfig(t, `
llm:
  base_url: "{{.TEST_LLM_BASE}}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://llm.internal.example.com/v1", cfg.LLM.BaseURL)
}

func TestLoad_SecretsComeFromEnvironment(t *testing.T) {
	t.Setenv("LLM_API_KEY", "sk-test-abc")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("AUTH_INTERNAL_SECRET", "internal-shared")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sk-test-abc", cfg.LLM.APIKey)
	assert.Equal(t, "hunter2", cfg.Database.Password)
	assert.Equal(t, "internal-shared", cfg.Auth.InternalSecret)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "server:\n  port: [not a number\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		wantErr error
	}{
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Server.Port = -1 },
			field:   "port",
			wantErr: ErrInvalidValue,
		},
		{
			name:    "missing database host",
			mutate:  func(c *Config) { c.Database.Host = "" },
			field:   "host",
			wantErr: ErrMissingRequiredField,
		},
		{
			name:    "auth enabled without jwks",
			mutate:  func(c *Config) { c.Auth.Enabled = true },
			field:   "jwks_url",
			wantErr: ErrMissingRequiredField,
		},
		{
			name:    "unknown agent mode",
			mutate:  func(c *Config) { c.Agents.Mode = "committee" },
			field:   "mode",
			wantErr: ErrInvalidValue,
		},
		{
			name:    "zero history limit",
			mutate:  func(c *Config) { c.Agents.HistoryLimit = 0 },
			field:   "history_limit",
			wantErr: ErrInvalidValue,
		},
		{
			name:    "zero retry attempts",
			mutate:  func(c *Config) { c.LLM.Retry.MaxAttempts = 0 },
			field:   "retry.max_attempts",
			wantErr: ErrInvalidValue,
		},
		{
			name: "bad masking pattern",
			mutate: func(c *Config) {
				c.Masking.ExtraPatterns = []MaskPattern{{Name: "broken", Pattern: "(unclosed"}}
			},
			field:   "extra_patterns.pattern",
			wantErr: ErrInvalidValue,
		},
		{
			name:    "idle conns above open conns",
			mutate:  func(c *Config) { c.Database.MaxOpenConns = 2; c.Database.MaxIdleConns = 8 },
			field:   "max_open_conns",
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}
