package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler appends every delivered event to a shared log.
type recordingHandler struct {
	name string
	mu   sync.Mutex
	seen []Event
	fail error
}

func (h *recordingHandler) Name() string { return h.name }

func (h *recordingHandler) HandleEvent(_ context.Context, evt Event) error {
	h.mu.Lock()
	h.seen = append(h.seen, evt)
	h.mu.Unlock()
	return h.fail
}

func (h *recordingHandler) events() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Event, len(h.seen))
	copy(out, h.seen)
	return out
}

func drain(t *testing.T, b *Bus) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, b.Stop(ctx))
}

func TestBus_PerTypeOrdering(t *testing.T) {
	b := NewBus(nil)
	h := &recordingHandler{name: "recorder"}
	require.NoError(t, b.Subscribe(EventMessageAppended, h, 10))
	b.Start()

	for i := 0; i < 200; i++ {
		b.PublishMessageAppended(context.Background(), "session-1", MessageAppendedPayload{Sequence: i})
	}
	drain(t, b)

	got := h.events()
	require.Len(t, got, 200)
	for i, evt := range got {
		p := evt.Payload.(MessageAppendedPayload)
		assert.Equal(t, i, p.Sequence, "event %d delivered out of order", i)
	}
}

func TestBus_PriorityOrder(t *testing.T) {
	b := NewBus(nil)

	var mu sync.Mutex
	var order []string
	mk := func(name string) Handler {
		return handlerFunc{name: name, fn: func(Event) error {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
			return nil
		}}
	}

	// Registered out of priority order on purpose.
	require.NoError(t, b.Subscribe(EventSessionCreated, mk("third"), 30))
	require.NoError(t, b.Subscribe(EventSessionCreated, mk("first"), 10))
	require.NoError(t, b.Subscribe(EventSessionCreated, mk("second"), 20))
	b.Start()

	b.PublishSessionCreated(context.Background(), "session-1", SessionCreatedPayload{UserID: "u1"})
	drain(t, b)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestBus_HandlerFailureDoesNotStopOthers(t *testing.T) {
	b := NewBus(nil)
	failing := &recordingHandler{name: "failing", fail: errors.New("boom")}
	healthy := &recordingHandler{name: "healthy"}
	require.NoError(t, b.Subscribe(EventAgentSwitched, failing, 10))
	require.NoError(t, b.Subscribe(EventAgentSwitched, healthy, 20))
	b.Start()

	b.PublishAgentSwitched(context.Background(), "session-1", AgentSwitchedPayload{FromAgent: "orchestrator", ToAgent: "coder"})
	drain(t, b)

	assert.Len(t, failing.events(), 1)
	assert.Len(t, healthy.events(), 1)
	assert.Equal(t, int64(1), b.Stats().HandlerErrors)
}

func TestBus_HandlerPanicContained(t *testing.T) {
	b := NewBus(nil)
	panicking := handlerFunc{name: "panicking", fn: func(Event) error { panic("kaboom") }}
	after := &recordingHandler{name: "after"}
	require.NoError(t, b.Subscribe(EventHITLDecided, panicking, 10))
	require.NoError(t, b.Subscribe(EventHITLDecided, after, 20))
	b.Start()

	b.PublishHITLDecided(context.Background(), "session-1", HITLDecidedPayload{CallID: "call-1", Decision: "approve"})
	drain(t, b)

	assert.Len(t, after.events(), 1)
	assert.Equal(t, int64(1), b.Stats().HandlerErrors)
}

func TestBus_DropsWhenQueueFull(t *testing.T) {
	b := NewBus(nil, WithQueueSize(4))
	release := make(chan struct{})
	blocking := handlerFunc{name: "blocking", fn: func(Event) error {
		<-release
		return nil
	}}
	require.NoError(t, b.Subscribe(EventToolCallEmitted, blocking, 10))
	b.Start()

	// First event occupies the worker, the next four fill the queue, the
	// rest must be dropped without blocking this goroutine.
	for i := 0; i < 20; i++ {
		b.PublishToolCallEmitted(context.Background(), "session-1", ToolCallEmittedPayload{CallID: fmt.Sprintf("call-%d", i)})
	}
	close(release)
	drain(t, b)

	stats := b.Stats()
	assert.Positive(t, stats.Dropped)
	assert.Equal(t, int64(20), stats.Published+stats.Dropped)
}

func TestBus_SubscribeAfterStartFails(t *testing.T) {
	b := NewBus(nil)
	b.Start()
	err := b.Subscribe(EventSessionCreated, &recordingHandler{name: "late"}, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already started")
	drain(t, b)
}

func TestBus_PublishAfterStopIsDropped(t *testing.T) {
	b := NewBus(nil)
	h := &recordingHandler{name: "recorder"}
	require.NoError(t, b.Subscribe(EventSessionCreated, h, 10))
	b.Start()
	drain(t, b)

	b.PublishSessionCreated(context.Background(), "session-1", SessionCreatedPayload{UserID: "u1"})
	assert.Empty(t, h.events())
	assert.Equal(t, int64(1), b.Stats().Dropped)
}

func TestBus_EnvelopeStamping(t *testing.T) {
	b := NewBus(nil)
	h := &recordingHandler{name: "recorder"}
	require.NoError(t, b.Subscribe(EventHITLRequested, h, 10))
	b.Start()

	ctx := WithCorrelationID(context.Background(), "req-abc")
	before := time.Now().UTC()
	b.PublishHITLRequested(ctx, "session-9", HITLRequestedPayload{CallID: "call-1", ToolName: "write_file"})
	drain(t, b)

	got := h.events()
	require.Len(t, got, 1)
	evt := got[0]
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, EventHITLRequested, evt.Type)
	assert.Equal(t, "session-9", evt.SessionID)
	assert.Equal(t, "req-abc", evt.CorrelationID)
	assert.False(t, evt.Timestamp.Before(before))
}

func TestCorrelationID_AbsentFromContext(t *testing.T) {
	assert.Empty(t, CorrelationID(context.Background()))
}

// handlerFunc adapts a closure to the Handler interface for tests.
type handlerFunc struct {
	name string
	fn   func(Event) error
}

func (h handlerFunc) Name() string                                { return h.name }
func (h handlerFunc) HandleEvent(_ context.Context, e Event) error { return h.fn(e) }
