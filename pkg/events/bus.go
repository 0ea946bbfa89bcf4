package events

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// defaultQueueSize bounds each per-type dispatch queue. When a queue is
// full, new events of that type are dropped and counted rather than
// blocking the publisher.
const defaultQueueSize = 1024

// Handler consumes events delivered by the bus. Returned errors are logged
// and counted; they never propagate to the publisher.
type Handler interface {
	// Name identifies the subscriber in logs and error counters.
	Name() string
	// HandleEvent processes one event. It must not block indefinitely:
	// it runs on the shared worker for its event type, so a stuck handler
	// stalls delivery of that type.
	HandleEvent(ctx context.Context, evt Event) error
}

type subscription struct {
	handler  Handler
	priority int
}

// BusStats is a point-in-time snapshot of the bus counters.
type BusStats struct {
	Published     int64 `json:"published"`
	Dropped       int64 `json:"dropped"`
	HandlerErrors int64 `json:"handler_errors"`
}

// Bus is the in-process event bus. Subscriptions are registered during
// startup and are immutable once Start is called, so dispatch reads them
// without locking.
type Bus struct {
	logger    *slog.Logger
	queueSize int

	mu      sync.Mutex
	subs    map[EventType][]subscription
	queues  map[EventType]chan Event
	started bool
	stopped atomic.Bool
	wg      sync.WaitGroup

	published     atomic.Int64
	dropped       atomic.Int64
	handlerErrors atomic.Int64
}

// BusOption customizes bus construction.
type BusOption func(*Bus)

// WithQueueSize overrides the per-type queue capacity.
func WithQueueSize(n int) BusOption {
	return func(b *Bus) {
		if n > 0 {
			b.queueSize = n
		}
	}
}

// NewBus creates a bus with no subscribers. Call Subscribe for each
// consumer, then Start.
func NewBus(logger *slog.Logger, opts ...BusOption) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bus{
		logger:    logger.With("component", "event_bus"),
		queueSize: defaultQueueSize,
		subs:      make(map[EventType][]subscription),
		queues:    make(map[EventType]chan Event),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ─────────────────────────────────────────────────────────────────────────────
// Subscription and lifecycle
// ─────────────────────────────────────────────────────────────────────────────

// Subscribe registers a handler for one event type. Lower priority values
// run first. Returns an error once the bus has started.
func (b *Bus) Subscribe(eventType EventType, h Handler, priority int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started {
		return fmt.Errorf("cannot subscribe %q to %s: bus already started", h.Name(), eventType)
	}
	b.subs[eventType] = append(b.subs[eventType], subscription{handler: h, priority: priority})
	return nil
}

// SubscribeAll registers a handler for every event type at the same
// priority. Used by the cross-cutting collectors.
func (b *Bus) SubscribeAll(h Handler, priority int) error {
	for _, et := range AllEventTypes {
		if err := b.Subscribe(et, h, priority); err != nil {
			return err
		}
	}
	return nil
}

// Start freezes the subscription table, sorts each type's subscribers by
// priority, and launches one dispatch worker per event type.
func (b *Bus) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started {
		return
	}
	b.started = true

	for et, subs := range b.subs {
		sort.SliceStable(subs, func(i, j int) bool {
			return subs[i].priority < subs[j].priority
		})
		b.subs[et] = subs
	}

	for _, et := range AllEventTypes {
		q := make(chan Event, b.queueSize)
		b.queues[et] = q
		b.wg.Add(1)
		go b.dispatchLoop(et, q)
	}

	b.logger.Info("Event bus started",
		"event_types", len(b.queues),
		"queue_size", b.queueSize)
}

// Stop rejects further publishes, then drains the in-flight queues. It
// returns once every worker has exited or ctx expires.
func (b *Bus) Stop(ctx context.Context) error {
	if !b.stopped.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	for _, q := range b.queues {
		close(q)
	}
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.logger.Info("Event bus stopped",
			"published", b.published.Load(),
			"dropped", b.dropped.Load())
		return nil
	case <-ctx.Done():
		return fmt.Errorf("event bus drain interrupted: %w", ctx.Err())
	}
}

// Stats returns the current bus counters.
func (b *Bus) Stats() BusStats {
	return BusStats{
		Published:     b.published.Load(),
		Dropped:       b.dropped.Load(),
		HandlerErrors: b.handlerErrors.Load(),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Publishing
// ─────────────────────────────────────────────────────────────────────────────

// Publish stamps the envelope (ID, timestamp, correlation ID from ctx) and
// enqueues the event for async dispatch. It never blocks: when the queue
// for the event's type is full the event is dropped and counted.
func (b *Bus) Publish(ctx context.Context, evt Event) {
	if b.stopped.Load() {
		b.dropped.Add(1)
		return
	}

	if evt.ID == "" {
		evt.ID = uuid.New().String()
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}
	if evt.CorrelationID == "" {
		evt.CorrelationID = CorrelationID(ctx)
	}

	b.mu.Lock()
	q, ok := b.queues[evt.Type]
	b.mu.Unlock()
	if !ok {
		// Unknown type or bus not started. Nothing can consume it.
		b.dropped.Add(1)
		b.logger.Warn("Dropping event: no queue for type", "type", evt.Type)
		return
	}

	select {
	case q <- evt:
		b.published.Add(1)
	default:
		b.dropped.Add(1)
		b.logger.Warn("Dropping event: queue full",
			"type", evt.Type,
			"session_id", evt.SessionID)
	}
}

// dispatchLoop delivers events of a single type in publish order.
func (b *Bus) dispatchLoop(et EventType, q chan Event) {
	defer b.wg.Done()

	// Subscriptions are frozen at Start, safe to read without the lock.
	subs := b.subs[et]

	for evt := range q {
		for _, sub := range subs {
			b.deliver(sub.handler, evt)
		}
	}
}

// deliver invokes one handler, containing panics and logging errors so a
// misbehaving subscriber cannot disturb the others.
func (b *Bus) deliver(h Handler, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			b.handlerErrors.Add(1)
			b.logger.Error("Event handler panicked",
				"handler", h.Name(),
				"type", evt.Type,
				"event_id", evt.ID,
				"panic", r)
		}
	}()

	if err := h.HandleEvent(context.Background(), evt); err != nil {
		b.handlerErrors.Add(1)
		b.logger.Error("Event handler failed",
			"handler", h.Name(),
			"type", evt.Type,
			"event_id", evt.ID,
			"error", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed publish helpers
// ─────────────────────────────────────────────────────────────────────────────

// PublishSessionCreated publishes a session.created event.
func (b *Bus) PublishSessionCreated(ctx context.Context, sessionID string, p SessionCreatedPayload) {
	b.Publish(ctx, Event{Type: EventSessionCreated, SessionID: sessionID, Payload: p})
}

// PublishMessageAppended publishes a message.appended event.
func (b *Bus) PublishMessageAppended(ctx context.Context, sessionID string, p MessageAppendedPayload) {
	b.Publish(ctx, Event{Type: EventMessageAppended, SessionID: sessionID, Payload: p})
}

// PublishAgentSwitched publishes an agent.switched event.
func (b *Bus) PublishAgentSwitched(ctx context.Context, sessionID string, p AgentSwitchedPayload) {
	b.Publish(ctx, Event{Type: EventAgentSwitched, SessionID: sessionID, Payload: p})
}

// PublishToolCallEmitted publishes a tool.call_emitted event.
func (b *Bus) PublishToolCallEmitted(ctx context.Context, sessionID string, p ToolCallEmittedPayload) {
	b.Publish(ctx, Event{Type: EventToolCallEmitted, SessionID: sessionID, Payload: p})
}

// PublishToolResultReceived publishes a tool.result_received event.
func (b *Bus) PublishToolResultReceived(ctx context.Context, sessionID string, p ToolResultReceivedPayload) {
	b.Publish(ctx, Event{Type: EventToolResultReceived, SessionID: sessionID, Payload: p})
}

// PublishHITLRequested publishes a hitl.requested event.
func (b *Bus) PublishHITLRequested(ctx context.Context, sessionID string, p HITLRequestedPayload) {
	b.Publish(ctx, Event{Type: EventHITLRequested, SessionID: sessionID, Payload: p})
}

// PublishHITLDecided publishes a hitl.decided event.
func (b *Bus) PublishHITLDecided(ctx context.Context, sessionID string, p HITLDecidedPayload) {
	b.Publish(ctx, Event{Type: EventHITLDecided, SessionID: sessionID, Payload: p})
}

// PublishLLMRequestStarted publishes an llm.request_started event.
func (b *Bus) PublishLLMRequestStarted(ctx context.Context, sessionID string, p LLMRequestStartedPayload) {
	b.Publish(ctx, Event{Type: EventLLMRequestStarted, SessionID: sessionID, Payload: p})
}

// PublishLLMRequestCompleted publishes an llm.request_completed event.
func (b *Bus) PublishLLMRequestCompleted(ctx context.Context, sessionID string, p LLMRequestCompletedPayload) {
	b.Publish(ctx, Event{Type: EventLLMRequestCompleted, SessionID: sessionID, Payload: p})
}

// PublishLLMRequestFailed publishes an llm.request_failed event.
func (b *Bus) PublishLLMRequestFailed(ctx context.Context, sessionID string, p LLMRequestFailedPayload) {
	b.Publish(ctx, Event{Type: EventLLMRequestFailed, SessionID: sessionID, Payload: p})
}

// PublishSystemStartup publishes a system.startup event.
func (b *Bus) PublishSystemStartup(ctx context.Context, p SystemStartupPayload) {
	b.Publish(ctx, Event{Type: EventSystemStartup, Payload: p})
}

// PublishSystemShutdown publishes a system.shutdown event.
func (b *Bus) PublishSystemShutdown(ctx context.Context, p SystemShutdownPayload) {
	b.Publish(ctx, Event{Type: EventSystemShutdown, Payload: p})
}
