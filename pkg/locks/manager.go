// Package locks provides fair per-session mutual exclusion. Every turn,
// admin mutation, and HITL resume for a session runs under its lock, which
// is what serializes message sequence assignment.
package locks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrTimeout is returned when a lock is not acquired within the caller's
// deadline. The API layer maps it to HTTP 409.
var ErrTimeout = errors.New("lock acquisition timed out")

const (
	defaultIdleTTL       = 30 * time.Minute
	defaultSweepInterval = 10 * time.Minute
	defaultSizeFloor     = 128
)

// entry is one session's lock state. The token channel has capacity 1;
// holding the token means holding the lock. Channel receives wake in FIFO
// order, which gives waiter fairness for free.
type entry struct {
	token    chan struct{}
	refs     int
	lastUsed time.Time
}

// Manager hands out per-session locks and reclaims idle ones in the
// background.
type Manager struct {
	logger *slog.Logger

	mu      sync.Mutex
	entries map[string]*entry

	idleTTL       time.Duration
	sweepInterval time.Duration
	sizeFloor     int

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// Option customizes manager construction.
type Option func(*Manager)

// WithIdleTTL sets how long an unused lock survives before the sweep may
// reclaim it.
func WithIdleTTL(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.idleTTL = d
		}
	}
}

// WithSweepInterval sets how often the background sweep runs.
func WithSweepInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.sweepInterval = d
		}
	}
}

// WithSizeFloor sets the minimum number of entries the sweep leaves in
// place regardless of idleness.
func WithSizeFloor(n int) Option {
	return func(m *Manager) {
		if n >= 0 {
			m.sizeFloor = n
		}
	}
}

// NewManager creates a lock manager and starts its background sweep.
// Call Stop on shutdown.
func NewManager(logger *slog.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		logger:        logger.With("component", "lock_manager"),
		entries:       make(map[string]*entry),
		idleTTL:       defaultIdleTTL,
		sweepInterval: defaultSweepInterval,
		sizeFloor:     defaultSizeFloor,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	go m.sweepLoop()
	return m
}

// Acquire blocks until the session's lock is held, ctx is done, or timeout
// elapses. A timeout of zero means no deadline beyond ctx. Waiters acquire
// in arrival order.
func (m *Manager) Acquire(ctx context.Context, sessionID string, timeout time.Duration) (*Lock, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id required")
	}

	m.mu.Lock()
	e, ok := m.entries[sessionID]
	if !ok {
		e = &entry{token: make(chan struct{}, 1), lastUsed: time.Now()}
		e.token <- struct{}{}
		m.entries[sessionID] = e
	}
	e.refs++
	m.mu.Unlock()

	var timeoutC <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	select {
	case <-e.token:
		return &Lock{manager: m, sessionID: sessionID, entry: e}, nil
	case <-ctx.Done():
		m.unref(e)
		return nil, fmt.Errorf("lock wait for session %s interrupted: %w", sessionID, ctx.Err())
	case <-timeoutC:
		m.unref(e)
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrTimeout)
	}
}

// Len reports how many session entries are currently cached.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Stop terminates the background sweep. Held locks stay valid; Release
// still works after Stop.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
		<-m.done
	})
}

func (m *Manager) unref(e *entry) {
	m.mu.Lock()
	e.refs--
	e.lastUsed = time.Now()
	m.mu.Unlock()
}

func (m *Manager) sweepLoop() {
	defer close(m.done)

	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep(time.Now())
		case <-m.stop:
			return
		}
	}
}

// sweep drops entries that are unlocked, unreferenced, and idle past the
// TTL, but never shrinks the cache below the size floor.
func (m *Manager) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, e := range m.entries {
		if len(m.entries)-evicted <= m.sizeFloor {
			break
		}
		if e.refs > 0 || len(e.token) == 0 {
			continue
		}
		if now.Sub(e.lastUsed) < m.idleTTL {
			continue
		}
		delete(m.entries, id)
		evicted++
	}

	if evicted > 0 {
		m.logger.Debug("Swept idle session locks",
			"evicted", evicted,
			"remaining", len(m.entries))
	}
}

// Lock is a held session lock. Release returns it; releasing more than
// once is safe and only the first call counts.
type Lock struct {
	manager   *Manager
	sessionID string
	entry     *entry
	once      sync.Once
}

// SessionID returns the session this lock belongs to.
func (l *Lock) SessionID() string { return l.sessionID }

// Release returns the lock, waking the oldest waiter if any.
func (l *Lock) Release() {
	l.once.Do(func() {
		l.manager.unref(l.entry)
		l.entry.token <- struct{}{}
	})
}
