package events

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCollector_Counters(t *testing.T) {
	m := NewMetricsCollector()
	ctx := context.Background()

	deliver := func(evt Event) {
		require.NoError(t, m.HandleEvent(ctx, evt))
	}

	deliver(Event{Type: EventSessionCreated, Payload: SessionCreatedPayload{UserID: "u1"}})
	deliver(Event{Type: EventMessageAppended, Payload: MessageAppendedPayload{Role: "user"}})
	deliver(Event{Type: EventMessageAppended, Payload: MessageAppendedPayload{Role: "assistant"}})
	deliver(Event{Type: EventAgentSwitched, Payload: AgentSwitchedPayload{FromAgent: "orchestrator", ToAgent: "coder"}})
	deliver(Event{Type: EventToolCallEmitted, Payload: ToolCallEmittedPayload{CallID: "c1"}})
	deliver(Event{Type: EventToolResultReceived, Payload: ToolResultReceivedPayload{CallID: "c1"}})
	deliver(Event{Type: EventHITLRequested, Payload: HITLRequestedPayload{CallID: "c2"}})
	deliver(Event{Type: EventHITLDecided, Payload: HITLDecidedPayload{CallID: "c2", Decision: "approve"}})
	deliver(Event{Type: EventLLMRequestStarted, Payload: LLMRequestStartedPayload{Model: "gpt-4o"}})
	deliver(Event{Type: EventLLMRequestCompleted, Payload: LLMRequestCompletedPayload{
		Model:            "gpt-4o",
		DurationMS:       1200,
		PromptTokens:     100,
		CompletionTokens: 40,
		TotalTokens:      140,
	}})
	deliver(Event{Type: EventLLMRequestFailed, Payload: LLMRequestFailedPayload{Model: "gpt-4o", ErrorKind: "transient"}})

	snap := m.Snapshot()
	assert.Equal(t, int64(1), snap.SessionsCreated)
	assert.Equal(t, int64(2), snap.MessagesAppended)
	assert.Equal(t, int64(1), snap.AgentSwitches)
	assert.Equal(t, int64(1), snap.ToolCalls)
	assert.Equal(t, int64(1), snap.ToolResults)
	assert.Equal(t, int64(1), snap.HITLRequested)
	assert.Equal(t, int64(1), snap.HITLDecided)
	assert.Equal(t, int64(1), snap.LLMRequests)
	assert.Equal(t, int64(1), snap.LLMCompletions)
	assert.Equal(t, int64(1), snap.LLMFailures)
	assert.Equal(t, int64(100), snap.PromptTokens)
	assert.Equal(t, int64(40), snap.CompletionTokens)
	assert.Equal(t, int64(140), snap.TotalTokens)
	assert.Equal(t, int64(1200), snap.LLMDurationMS)
	assert.Equal(t, int64(2), snap.EventsByType[string(EventMessageAppended)])
}

func TestSessionMetricsCollector_PerSessionRollup(t *testing.T) {
	c := NewSessionMetricsCollector()
	ctx := context.Background()
	now := time.Now().UTC()

	deliver := func(evt Event) {
		require.NoError(t, c.HandleEvent(ctx, evt))
	}

	deliver(Event{Type: EventMessageAppended, SessionID: "s1", Timestamp: now, Payload: MessageAppendedPayload{Role: "user"}})
	deliver(Event{Type: EventLLMRequestStarted, SessionID: "s1", Timestamp: now, Payload: LLMRequestStartedPayload{Model: "gpt-4o"}})
	deliver(Event{Type: EventLLMRequestCompleted, SessionID: "s1", Timestamp: now, Payload: LLMRequestCompletedPayload{
		PromptTokens: 50, CompletionTokens: 10, TotalTokens: 60,
	}})
	deliver(Event{Type: EventMessageAppended, SessionID: "s2", Timestamp: now, Payload: MessageAppendedPayload{Role: "user"}})
	// Events with no session are ignored.
	deliver(Event{Type: EventSystemStartup, Timestamp: now, Payload: SystemStartupPayload{Version: "dev"}})

	s1, ok := c.Snapshot("s1")
	require.True(t, ok)
	assert.Equal(t, int64(1), s1.Messages)
	assert.Equal(t, int64(1), s1.LLMRequests)
	assert.Equal(t, int64(60), s1.TotalTokens)
	assert.Equal(t, now, s1.LastEventAt)

	s2, ok := c.Snapshot("s2")
	require.True(t, ok)
	assert.Equal(t, int64(1), s2.Messages)

	assert.Equal(t, 2, c.TrackedSessions())

	c.RemoveSession("s1")
	_, ok = c.Snapshot("s1")
	assert.False(t, ok)
	assert.Equal(t, 1, c.TrackedSessions())
}

// memorySink captures audit entries in memory.
type memorySink struct {
	mu      sync.Mutex
	entries []AuditEntry
}

func (s *memorySink) WriteAudit(_ context.Context, entry AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *memorySink) all() []AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AuditEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

type upperMasker struct{}

func (upperMasker) Mask(s string) string {
	return strings.ReplaceAll(s, "secret-token", "***MASKED***")
}

func TestAuditLogger_WritesMaskedEntry(t *testing.T) {
	sink := &memorySink{}
	a := NewAuditLogger(sink, upperMasker{}, nil)

	evt := Event{
		ID:            "evt-1",
		Type:          EventToolCallEmitted,
		Timestamp:     time.Now().UTC(),
		SessionID:     "s1",
		CorrelationID: "req-1",
		Payload:       ToolCallEmittedPayload{CallID: "c1", ToolName: "execute_command", Arguments: `{"command":"export TOKEN=secret-token"}`},
	}
	require.NoError(t, a.HandleEvent(context.Background(), evt))

	entries := sink.all()
	require.Len(t, entries, 1)
	got := entries[0]
	assert.Equal(t, "evt-1", got.EventID)
	assert.Equal(t, string(EventToolCallEmitted), got.EventType)
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, "req-1", got.CorrelationID)
	assert.NotContains(t, got.Payload, "secret-token")
	assert.Contains(t, got.Payload, "***MASKED***")
}

func TestAuditLogger_TruncatesOversizedPayload(t *testing.T) {
	sink := &memorySink{}
	a := NewAuditLogger(sink, nil, nil)

	evt := Event{
		ID:        "evt-big",
		Type:      EventToolCallEmitted,
		SessionID: "s1",
		Payload: ToolCallEmittedPayload{
			CallID:    "c1",
			ToolName:  "write_file",
			Arguments: strings.Repeat("x", maxAuditPayloadBytes+100),
		},
	}
	require.NoError(t, a.HandleEvent(context.Background(), evt))

	entries := sink.all()
	require.Len(t, entries, 1)
	payload := entries[0].Payload
	assert.LessOrEqual(t, len(payload), maxAuditPayloadBytes)
	assert.Contains(t, payload, `"truncated":true`)
	assert.Contains(t, payload, `"event_id":"evt-big"`)
	assert.Contains(t, payload, `"session_id":"s1"`)
}

func TestAuditLogger_NilPayload(t *testing.T) {
	sink := &memorySink{}
	a := NewAuditLogger(sink, nil, nil)

	require.NoError(t, a.HandleEvent(context.Background(), Event{ID: "evt-2", Type: EventSystemShutdown}))
	entries := sink.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "{}", entries[0].Payload)
}

// recordingWarningSink captures warning sink calls in order.
type recordingWarningSink struct {
	opened    [][2]string // model, detail
	recovered []string
}

func (s *recordingWarningSink) ProviderCircuitOpened(model, detail string) {
	s.opened = append(s.opened, [2]string{model, detail})
}

func (s *recordingWarningSink) ProviderRecovered(model string) {
	s.recovered = append(s.recovered, model)
}

func TestWarningsCollector_CircuitOpenRaisesWarning(t *testing.T) {
	sink := &recordingWarningSink{}
	w := NewWarningsCollector(sink, nil)
	ctx := context.Background()

	// Ordinary failures do not raise warnings; only an open circuit does.
	require.NoError(t, w.HandleEvent(ctx, Event{Type: EventLLMRequestFailed, Payload: LLMRequestFailedPayload{Model: "gpt-4o", ErrorKind: "transient"}}))
	assert.Empty(t, sink.opened)

	require.NoError(t, w.HandleEvent(ctx, Event{Type: EventLLMRequestFailed, Payload: LLMRequestFailedPayload{
		Model:     "gpt-4o",
		ErrorKind: "circuit_open",
		Detail:    "circuit breaker is open",
	}}))
	require.Len(t, sink.opened, 1)
	assert.Equal(t, [2]string{"gpt-4o", "circuit breaker is open"}, sink.opened[0])
}

func TestWarningsCollector_CompletionClearsWarning(t *testing.T) {
	sink := &recordingWarningSink{}
	w := NewWarningsCollector(sink, nil)
	ctx := context.Background()

	require.NoError(t, w.HandleEvent(ctx, Event{Type: EventLLMRequestCompleted, Payload: LLMRequestCompletedPayload{Model: "gpt-4o"}}))
	assert.Equal(t, []string{"gpt-4o"}, sink.recovered)

	// Unrelated events leave the sink untouched.
	require.NoError(t, w.HandleEvent(ctx, Event{Type: EventSessionCreated, Payload: SessionCreatedPayload{UserID: "u1"}}))
	assert.Empty(t, sink.opened)
	assert.Len(t, sink.recovered, 1)
}
