// Package events provides the in-process typed event bus.
//
// Publishing is synchronous from the caller's point of view (an enqueue),
// while subscriber dispatch runs asynchronously on one worker per event
// type. That gives two guarantees the rest of the system relies on:
//
//   - events of one type are delivered in publish order, and
//   - a slow or failing subscriber never stalls the publisher.
//
// Ordering across different event types is NOT guaranteed. Subscribers with
// a lower priority number run first for a given event.
package events

import (
	"context"
	"time"
)

// EventType discriminates the event variants carried by the bus.
type EventType string

const (
	EventSessionCreated      EventType = "session.created"
	EventMessageAppended     EventType = "message.appended"
	EventAgentSwitched       EventType = "agent.switched"
	EventToolCallEmitted     EventType = "tool.call_emitted"
	EventToolResultReceived  EventType = "tool.result_received"
	EventHITLRequested       EventType = "hitl.requested"
	EventHITLDecided         EventType = "hitl.decided"
	EventLLMRequestStarted   EventType = "llm.request_started"
	EventLLMRequestCompleted EventType = "llm.request_completed"
	EventLLMRequestFailed    EventType = "llm.request_failed"
	EventSystemStartup       EventType = "system.startup"
	EventSystemShutdown      EventType = "system.shutdown"
)

// AllEventTypes lists every event type the bus carries, in a stable order.
// Used to subscribe the cross-cutting collectors and to size metrics maps.
var AllEventTypes = []EventType{
	EventSessionCreated,
	EventMessageAppended,
	EventAgentSwitched,
	EventToolCallEmitted,
	EventToolResultReceived,
	EventHITLRequested,
	EventHITLDecided,
	EventLLMRequestStarted,
	EventLLMRequestCompleted,
	EventLLMRequestFailed,
	EventSystemStartup,
	EventSystemShutdown,
}

// Event is the envelope delivered to subscribers. Payload holds one of the
// typed payload structs from payloads.go, keyed by Type.
type Event struct {
	ID            string    `json:"event_id"`
	Type          EventType `json:"type"`
	Timestamp     time.Time `json:"timestamp"`
	SessionID     string    `json:"session_id,omitempty"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	Payload       any       `json:"payload,omitempty"`
}

type correlationKey struct{}

// WithCorrelationID returns a context carrying the correlation ID that
// Publish stamps onto every event published under it. The API layer puts
// the request ID here.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID extracts the correlation ID from ctx, or "" when absent.
func CorrelationID(ctx context.Context) string {
	if v, ok := ctx.Value(correlationKey{}).(string); ok {
		return v
	}
	return ""
}
