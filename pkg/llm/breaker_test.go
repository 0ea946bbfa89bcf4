package llm

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreaker_OpensAtThreshold(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 5, Cooldown: time.Hour}, nil)

	for i := 0; i < 4; i++ {
		require.NoError(t, b.Allow())
		b.RecordFailure()
	}
	assert.Equal(t, BreakerClosed, b.State())

	require.NoError(t, b.Allow())
	b.RecordFailure()
	assert.Equal(t, BreakerOpen, b.State())

	err := b.Allow()
	var boe *BreakerOpenError
	require.ErrorAs(t, err, &boe)
	assert.Greater(t, boe.RetryAfter, time.Duration(0))
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 3, Cooldown: time.Hour}, nil)

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	b.RecordFailure()

	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_HalfOpenAdmitsSingleProbe(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, Cooldown: 10 * time.Millisecond}, nil)

	b.RecordFailure()
	require.Equal(t, BreakerOpen, b.State())

	time.Sleep(20 * time.Millisecond)

	require.NoError(t, b.Allow())
	assert.Equal(t, BreakerHalfOpen, b.State())

	err := b.Allow()
	var boe *BreakerOpenError
	assert.ErrorAs(t, err, &boe)
}

func TestBreaker_ProbeSuccessCloses(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, Cooldown: 10 * time.Millisecond}, nil)

	b.RecordFailure()
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, b.Allow())

	b.RecordSuccess()
	assert.Equal(t, BreakerClosed, b.State())
	assert.NoError(t, b.Allow())
}

func TestBreaker_ProbeFailureReopens(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, Cooldown: 50 * time.Millisecond}, nil)

	b.RecordFailure()
	time.Sleep(60 * time.Millisecond)
	require.NoError(t, b.Allow())

	b.RecordFailure()
	assert.Equal(t, BreakerOpen, b.State())

	var boe *BreakerOpenError
	assert.ErrorAs(t, b.Allow(), &boe)
}

func TestBreaker_NotifiesStateChanges(t *testing.T) {
	var mu sync.Mutex
	var transitions []string

	b := NewBreaker(BreakerConfig{
		FailureThreshold: 1,
		Cooldown:         10 * time.Millisecond,
		OnStateChange: func(from, to BreakerState) {
			mu.Lock()
			transitions = append(transitions, from.String()+"->"+to.String())
			mu.Unlock()
		},
	}, nil)

	b.RecordFailure()
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, b.Allow())
	b.RecordSuccess()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"closed->open",
		"open->half_open",
		"half_open->closed",
	}, transitions)
}
