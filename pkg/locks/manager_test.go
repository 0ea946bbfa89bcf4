package locks

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	m := NewManager(nil, opts...)
	t.Cleanup(m.Stop)
	return m
}

func TestAcquire_MutualExclusion(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	var inCritical atomic.Int32
	var overlaps atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock, err := m.Acquire(ctx, "session-1", 0)
			require.NoError(t, err)
			defer lock.Release()

			if inCritical.Add(1) > 1 {
				overlaps.Add(1)
			}
			time.Sleep(time.Millisecond)
			inCritical.Add(-1)
		}()
	}
	wg.Wait()

	assert.Zero(t, overlaps.Load(), "two holders inside the critical section")
}

func TestAcquire_FIFOOrder(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	first, err := m.Acquire(ctx, "session-1", 0)
	require.NoError(t, err)

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup

	// Queue waiters one at a time so their arrival order is deterministic.
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			lock, err := m.Acquire(ctx, "session-1", 0)
			require.NoError(t, err)
			mu.Lock()
			order = append(order, n)
			mu.Unlock()
			lock.Release()
		}(i)
		time.Sleep(20 * time.Millisecond)
	}

	first.Release()
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order, "waiters must acquire in arrival order")
}

func TestAcquire_UnrelatedSessionsDoNotContend(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	held, err := m.Acquire(ctx, "session-1", 0)
	require.NoError(t, err)
	defer held.Release()

	start := time.Now()
	other, err := m.Acquire(ctx, "session-2", time.Second)
	require.NoError(t, err)
	other.Release()
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestAcquire_Timeout(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	held, err := m.Acquire(ctx, "session-1", 0)
	require.NoError(t, err)
	defer held.Release()

	_, err = m.Acquire(ctx, "session-1", 50*time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestAcquire_ContextCancel(t *testing.T) {
	m := newTestManager(t)

	held, err := m.Acquire(context.Background(), "session-1", 0)
	require.NoError(t, err)
	defer held.Release()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	_, err = m.Acquire(ctx, "session-1", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAcquire_TimedOutWaiterDoesNotStealToken(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	held, err := m.Acquire(ctx, "session-1", 0)
	require.NoError(t, err)

	_, err = m.Acquire(ctx, "session-1", 20*time.Millisecond)
	require.ErrorIs(t, err, ErrTimeout)

	held.Release()

	// The lock is free again for the next caller.
	next, err := m.Acquire(ctx, "session-1", 100*time.Millisecond)
	require.NoError(t, err)
	next.Release()
}

func TestRelease_Idempotent(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	lock, err := m.Acquire(ctx, "session-1", 0)
	require.NoError(t, err)
	lock.Release()
	lock.Release()

	// A double release must not leave a second token behind.
	again, err := m.Acquire(ctx, "session-1", 0)
	require.NoError(t, err)
	defer again.Release()

	_, err = m.Acquire(ctx, "session-1", 30*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestSweep_EvictsIdleAboveFloor(t *testing.T) {
	m := newTestManager(t, WithIdleTTL(time.Millisecond), WithSizeFloor(2))
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		lock, err := m.Acquire(ctx, fmt.Sprintf("session-%d", i), 0)
		require.NoError(t, err)
		lock.Release()
	}
	require.Equal(t, 10, m.Len())

	time.Sleep(5 * time.Millisecond)
	m.sweep(time.Now())

	assert.Equal(t, 2, m.Len(), "sweep stops at the size floor")
}

func TestSweep_SkipsHeldAndRecentLocks(t *testing.T) {
	m := newTestManager(t, WithIdleTTL(time.Hour), WithSizeFloor(0))
	ctx := context.Background()

	held, err := m.Acquire(ctx, "held", 0)
	require.NoError(t, err)
	defer held.Release()

	recent, err := m.Acquire(ctx, "recent", 0)
	require.NoError(t, err)
	recent.Release()

	m.sweep(time.Now())
	assert.Equal(t, 2, m.Len(), "held and recently used locks survive")

	// Far future: only the released lock is old enough to evict.
	m.sweep(time.Now().Add(2 * time.Hour))
	assert.Equal(t, 1, m.Len())
}

func TestAcquire_EmptySessionID(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Acquire(context.Background(), "", 0)
	assert.Error(t, err)
}
