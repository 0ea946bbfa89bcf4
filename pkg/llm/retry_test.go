package llm

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}
}

func TestRetryDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	attempts, err := retryDo(context.Background(), fastRetryConfig(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, calls)
}

func TestRetryDo_RetriesTransientThenSucceeds(t *testing.T) {
	calls := 0
	attempts, err := retryDo(context.Background(), fastRetryConfig(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return &Error{Kind: ErrKindTransient, Detail: "overloaded", StatusCode: 503}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, calls)
}

func TestRetryDo_PermanentFailsImmediately(t *testing.T) {
	calls := 0
	_, err := retryDo(context.Background(), fastRetryConfig(), func(ctx context.Context) error {
		calls++
		return &Error{Kind: ErrKindPermanent, Detail: "bad request", StatusCode: 400}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var ee *ExhaustedError
	assert.False(t, errors.As(err, &ee), "permanent errors must not be wrapped as exhaustion")
}

func TestRetryDo_ExhaustsTransientAttempts(t *testing.T) {
	calls := 0
	attempts, err := retryDo(context.Background(), fastRetryConfig(), func(ctx context.Context) error {
		calls++
		return &Error{Kind: ErrKindTransient, Detail: "still down", StatusCode: 502}
	})

	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, attempts)

	var ee *ExhaustedError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 3, ee.Attempts)

	var le *Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 502, le.StatusCode)
}

func TestRetryDo_ContextCancelDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := RetryConfig{MaxAttempts: 3, InitialBackoff: time.Minute, MaxBackoff: time.Minute}
	done := make(chan error, 1)
	go func() {
		_, err := retryDo(ctx, cfg, func(ctx context.Context) error {
			return &Error{Kind: ErrKindTransient, Detail: "down"}
		})
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("retry loop did not observe cancellation")
	}
}

func TestBackoffFor_ExponentialWithCap(t *testing.T) {
	cfg := DefaultRetryConfig()

	assert.Equal(t, 2*time.Second, backoffFor(cfg, 1))
	assert.Equal(t, 4*time.Second, backoffFor(cfg, 2))
	assert.Equal(t, 8*time.Second, backoffFor(cfg, 3))
	assert.Equal(t, 10*time.Second, backoffFor(cfg, 4))
	assert.Equal(t, 10*time.Second, backoffFor(cfg, 10))
}

func TestClassifyTransport(t *testing.T) {
	t.Run("context canceled passes through", func(t *testing.T) {
		assert.ErrorIs(t, classifyTransport(context.Canceled), context.Canceled)
	})

	t.Run("deadline is transient", func(t *testing.T) {
		var le *Error
		require.ErrorAs(t, classifyTransport(context.DeadlineExceeded), &le)
		assert.Equal(t, ErrKindTransient, le.Kind)
	})

	t.Run("connection reset is transient", func(t *testing.T) {
		var le *Error
		require.ErrorAs(t, classifyTransport(errors.New("read tcp 127.0.0.1:443: connection reset by peer")), &le)
		assert.Equal(t, ErrKindTransient, le.Kind)
	})

	t.Run("unexpected EOF is transient", func(t *testing.T) {
		var le *Error
		require.ErrorAs(t, classifyTransport(io.ErrUnexpectedEOF), &le)
		assert.Equal(t, ErrKindTransient, le.Kind)
	})

	t.Run("unknown errors are permanent", func(t *testing.T) {
		var le *Error
		require.ErrorAs(t, classifyTransport(errors.New("tls handshake failure")), &le)
		assert.Equal(t, ErrKindPermanent, le.Kind)
	})
}
