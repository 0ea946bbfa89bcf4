// Package config loads and validates the runtime configuration: an
// optional YAML file layered over built-in defaults, with environment
// variables expanded inside the file and secrets always taken from the
// environment.
package config

import (
	"time"

	"github.com/switchyard-ai/switchyard/pkg/database"
)

// Config is the complete runtime configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	LLM       LLMConfig       `yaml:"llm"`
	Agents    AgentsConfig    `yaml:"agents"`
	Locks     LocksConfig     `yaml:"locks"`
	Events    EventsConfig    `yaml:"events"`
	Masking   MaskingConfig   `yaml:"masking"`
	Retention RetentionConfig `yaml:"retention"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// ShutdownTimeout bounds how long in-flight requests may run after
	// a termination signal before the listener is torn down.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection settings. The password is
// never read from YAML; it comes from DB_PASSWORD.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"-"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// ToDatabase converts the section into the database package's config.
func (c DatabaseConfig) ToDatabase() database.Config {
	return database.Config{
		Host:            c.Host,
		Port:            c.Port,
		User:            c.User,
		Password:        c.Password,
		Database:        c.Name,
		SSLMode:         c.SSLMode,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		ConnMaxIdleTime: c.ConnMaxIdleTime,
	}
}

// AuthConfig controls request authentication on the public API.
type AuthConfig struct {
	// Enabled turns JWT validation on. When false every request runs
	// as DevUserID, which is only acceptable for local development.
	Enabled bool `yaml:"enabled"`

	// JWKSURL is where signing keys are fetched from.
	JWKSURL string `yaml:"jwks_url"`

	// Issuer and Audience, when set, are enforced on every token.
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`

	// InternalSecret lets trusted internal callers bypass JWT auth via
	// the X-Internal-Auth header. Read from AUTH_INTERNAL_SECRET.
	InternalSecret string `yaml:"-"`

	// DevUserID is the identity assigned when auth is disabled.
	DevUserID string `yaml:"dev_user_id"`
}

// RateLimitConfig controls per-client throttling of the public API.
type RateLimitConfig struct {
	Enabled bool `yaml:"enabled"`

	// RequestsPerMinute is the sustained rate allowed per client IP.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// Burst is the short-term allowance above the sustained rate.
	Burst int `yaml:"burst"`

	// IdleEviction is how long a client's limiter survives without
	// traffic before its state is dropped.
	IdleEviction time.Duration `yaml:"idle_eviction"`
}

// LLMConfig selects and tunes the model provider.
type LLMConfig struct {
	// BaseURL points at an OpenAI-compatible chat completions API.
	BaseURL string `yaml:"base_url"`

	// APIKey comes from LLM_API_KEY, never from YAML.
	APIKey string `yaml:"-"`

	Model       string   `yaml:"model"`
	Temperature *float64 `yaml:"temperature"`
	MaxTokens   *int     `yaml:"max_tokens"`

	// ChunkTimeout is the per-chunk watchdog: a stream that goes silent
	// longer than this is treated as failed.
	ChunkTimeout time.Duration `yaml:"chunk_timeout"`

	// StreamTimeout bounds a whole streaming call.
	StreamTimeout time.Duration `yaml:"stream_timeout"`

	Retry   RetryConfig   `yaml:"retry"`
	Breaker BreakerConfig `yaml:"circuit_breaker"`
}

// RetryConfig tunes connection-establishment retries. Failures after
// the first chunk arrived are never retried.
type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

// BreakerConfig tunes the provider circuit breaker.
type BreakerConfig struct {
	// FailureThreshold is the consecutive failure count that opens the
	// circuit.
	FailureThreshold int `yaml:"failure_threshold"`

	// Cooldown is how long the circuit stays open before one probe
	// call is allowed through.
	Cooldown time.Duration `yaml:"cooldown"`
}

// AgentsConfig controls the agent roster and turn behavior.
type AgentsConfig struct {
	// Mode is "multi" (full roster with orchestrator routing) or
	// "single" (universal agent only).
	Mode string `yaml:"mode"`

	// HistoryLimit caps how many stored messages enter each prompt.
	HistoryLimit int `yaml:"history_limit"`

	// MaxTurns caps model round-trips per client call.
	MaxTurns int `yaml:"max_turns"`

	// ExtraDestructiveTools lists tools beyond the built-in
	// side-effecting set that require human approval.
	ExtraDestructiveTools []string `yaml:"extra_destructive_tools"`
}

// LocksConfig tunes the per-session lock table.
type LocksConfig struct {
	// AcquireTimeout bounds how long API calls wait for a busy
	// session before giving up with a conflict.
	AcquireTimeout time.Duration `yaml:"acquire_timeout"`

	// IdleTTL and SweepInterval control eviction of idle lock entries.
	IdleTTL       time.Duration `yaml:"idle_ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// SizeFloor is the entry count below which the sweeper does not
	// bother evicting.
	SizeFloor int `yaml:"size_floor"`
}

// EventsConfig tunes the in-process event bus.
type EventsConfig struct {
	// QueueSize is the per-event-type buffer; publishes beyond it are
	// dropped with a warning rather than blocking the hot path.
	QueueSize int `yaml:"queue_size"`
}

// MaskingConfig controls secret scrubbing of audit payloads and
// client-facing error details.
type MaskingConfig struct {
	Enabled bool `yaml:"enabled"`

	// ExtraPatterns adds deployment-specific regexes on top of the
	// built-in credential patterns.
	ExtraPatterns []MaskPattern `yaml:"extra_patterns"`
}

// MaskPattern is one custom masking rule.
type MaskPattern struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// RetentionConfig controls background cleanup of aged data.
type RetentionConfig struct {
	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// SessionIdleTimeout is how long a session may sit inactive before
	// it is soft-deleted.
	SessionIdleTimeout time.Duration `yaml:"session_idle_timeout"`

	// PurgeAfter is how long soft-deleted sessions are kept before the
	// rows are removed for good.
	PurgeAfter time.Duration `yaml:"purge_after"`

	// StaleApprovalAge is how long an undecided approval may wait
	// before it is dropped.
	StaleApprovalAge time.Duration `yaml:"stale_approval_age"`

	// AuditRetention is how long audit log entries are kept.
	AuditRetention time.Duration `yaml:"audit_retention"`
}
