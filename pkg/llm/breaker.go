package llm

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// BreakerState is the circuit breaker state.
type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// BreakerOpenError is returned while the circuit rejects calls.
type BreakerOpenError struct {
	RetryAfter time.Duration
}

func (e *BreakerOpenError) Error() string {
	return fmt.Sprintf("llm circuit open, retry after %v", e.RetryAfter.Round(time.Second))
}

// BreakerConfig tunes the provider circuit breaker.
type BreakerConfig struct {
	// FailureThreshold is the consecutive failure count that opens the circuit.
	FailureThreshold int
	// Cooldown is how long the circuit stays open before a single probe
	// is let through.
	Cooldown time.Duration
	// OnStateChange is invoked outside the lock on every transition.
	OnStateChange func(from, to BreakerState)
}

// DefaultBreakerConfig returns the standard provider breaker policy.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		Cooldown:         60 * time.Second,
	}
}

// Breaker trips after consecutive provider failures so a dead provider fails
// fast instead of tying up sessions in retry loops. Half-open admits exactly
// one probe; its outcome decides whether the circuit closes or reopens.
type Breaker struct {
	mu       sync.Mutex
	state    BreakerState
	failures int
	openedAt time.Time
	probing  bool
	cfg      BreakerConfig
	logger   *slog.Logger
}

// NewBreaker creates a closed breaker.
func NewBreaker(cfg BreakerConfig, logger *slog.Logger) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Breaker{
		state:  BreakerClosed,
		cfg:    cfg,
		logger: logger.With("component", "llm_breaker"),
	}
}

// Allow reports whether a call may proceed. While open it returns
// BreakerOpenError until the cooldown elapses, then admits a single probe
// in half-open.
func (b *Breaker) Allow() error {
	b.mu.Lock()

	switch b.state {
	case BreakerClosed:
		b.mu.Unlock()
		return nil

	case BreakerOpen:
		elapsed := time.Since(b.openedAt)
		if elapsed < b.cfg.Cooldown {
			retryAfter := b.cfg.Cooldown - elapsed
			b.mu.Unlock()
			return &BreakerOpenError{RetryAfter: retryAfter}
		}
		from := b.state
		b.state = BreakerHalfOpen
		b.probing = true
		b.mu.Unlock()
		b.notify(from, BreakerHalfOpen)
		b.logger.Info("Circuit half-open, admitting probe")
		return nil

	case BreakerHalfOpen:
		if b.probing {
			b.mu.Unlock()
			return &BreakerOpenError{RetryAfter: b.cfg.Cooldown}
		}
		b.probing = true
		b.mu.Unlock()
		return nil

	default:
		b.mu.Unlock()
		return fmt.Errorf("unknown breaker state: %v", b.state)
	}
}

// RecordSuccess resets the failure count and closes the circuit after a
// successful probe.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	from := b.state
	b.failures = 0
	b.probing = false
	if b.state != BreakerClosed {
		b.state = BreakerClosed
		b.mu.Unlock()
		b.notify(from, BreakerClosed)
		b.logger.Info("Circuit closed after successful probe")
		return
	}
	b.mu.Unlock()
}

// RecordFailure counts a provider failure. In half-open any failure reopens
// the circuit; in closed the circuit opens at the threshold.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	from := b.state
	b.probing = false

	switch b.state {
	case BreakerHalfOpen:
		b.state = BreakerOpen
		b.openedAt = time.Now()
		b.mu.Unlock()
		b.notify(from, BreakerOpen)
		b.logger.Warn("Circuit reopened, probe failed")
		return

	case BreakerClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.state = BreakerOpen
			b.openedAt = time.Now()
			failures := b.failures
			b.mu.Unlock()
			b.notify(from, BreakerOpen)
			b.logger.Error("Circuit opened",
				"consecutive_failures", failures,
				"cooldown", b.cfg.Cooldown)
			return
		}
		b.mu.Unlock()
		return

	default:
		// Already open, keep the original openedAt.
		b.mu.Unlock()
	}
}

// State returns the current state.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) notify(from, to BreakerState) {
	if b.cfg.OnStateChange != nil && from != to {
		b.cfg.OnStateChange(from, to)
	}
}
