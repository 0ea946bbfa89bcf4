package llm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/pkg/events"
)

type captureHandler struct {
	mu   sync.Mutex
	evts []events.Event
}

func (h *captureHandler) Name() string { return "capture" }

func (h *captureHandler) HandleEvent(_ context.Context, evt events.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.evts = append(h.evts, evt)
	return nil
}

func (h *captureHandler) byType(et events.EventType) []events.Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []events.Event
	for _, evt := range h.evts {
		if evt.Type == et {
			out = append(out, evt)
		}
	}
	return out
}

func newInstrumentedEnv(t *testing.T, inner Client) (*InstrumentedClient, *captureHandler) {
	t.Helper()

	bus := events.NewBus(nil)
	capture := &captureHandler{}
	require.NoError(t, bus.SubscribeAll(capture, 10))
	bus.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = bus.Stop(ctx)
	})

	return NewInstrumentedClient(inner, bus), capture
}

func TestInstrumentedClient_PublishesStartedAndCompleted(t *testing.T) {
	scripted := NewScriptedClient(TextScript("done", &Usage{PromptTokens: 7, CompletionTokens: 3, TotalTokens: 10}))
	client, capture := newInstrumentedEnv(t, scripted)

	stream, err := client.Stream(context.Background(), &Request{
		Model:     "gpt-4o",
		Messages:  []Message{{Role: "user", Content: "hi"}},
		Tools:     []ToolDefinition{{Name: "read_file"}},
		SessionID: "sess-1",
		Agent:     "coder",
	})
	require.NoError(t, err)
	collectChunks(t, stream)

	require.Eventually(t, func() bool {
		return len(capture.byType(events.EventLLMRequestCompleted)) == 1
	}, 5*time.Second, 10*time.Millisecond)

	started := capture.byType(events.EventLLMRequestStarted)
	require.Len(t, started, 1)
	assert.Equal(t, "sess-1", started[0].SessionID)
	startPayload := started[0].Payload.(events.LLMRequestStartedPayload)
	assert.Equal(t, "gpt-4o", startPayload.Model)
	assert.Equal(t, "coder", startPayload.Agent)
	assert.Equal(t, 1, startPayload.MessageCount)
	assert.Equal(t, 1, startPayload.ToolCount)

	completed := capture.byType(events.EventLLMRequestCompleted)
	require.Len(t, completed, 1)
	donePayload := completed[0].Payload.(events.LLMRequestCompletedPayload)
	assert.Equal(t, 10, donePayload.TotalTokens)
	assert.Equal(t, 0, donePayload.ToolCallCount)
}

func TestInstrumentedClient_CountsToolCalls(t *testing.T) {
	scripted := NewScriptedClient(ToolCallScript(nil,
		ToolCall{ID: "call_1", Name: "read_file", Arguments: `{"path":"a"}`},
		ToolCall{ID: "call_2", Name: "list_files", Arguments: `{}`},
	))
	client, capture := newInstrumentedEnv(t, scripted)

	stream, err := client.Stream(context.Background(), &Request{Model: "gpt-4o", SessionID: "sess-1"})
	require.NoError(t, err)
	collectChunks(t, stream)

	require.Eventually(t, func() bool {
		return len(capture.byType(events.EventLLMRequestCompleted)) == 1
	}, 5*time.Second, 10*time.Millisecond)

	payload := capture.byType(events.EventLLMRequestCompleted)[0].Payload.(events.LLMRequestCompletedPayload)
	assert.Equal(t, 2, payload.ToolCallCount)
}

func TestInstrumentedClient_PublishesFailedOnErrorStream(t *testing.T) {
	cause := &Error{Kind: ErrKindTransient, Detail: "connection reset", StatusCode: 502}
	scripted := NewScriptedClient(ErrorScript("partial", &ExhaustedError{Attempts: 3, LastError: cause}))
	client, capture := newInstrumentedEnv(t, scripted)

	stream, err := client.Stream(context.Background(), &Request{Model: "gpt-4o", SessionID: "sess-1"})
	require.NoError(t, err)
	collectChunks(t, stream)

	require.Eventually(t, func() bool {
		return len(capture.byType(events.EventLLMRequestFailed)) == 1
	}, 5*time.Second, 10*time.Millisecond)

	payload := capture.byType(events.EventLLMRequestFailed)[0].Payload.(events.LLMRequestFailedPayload)
	assert.Equal(t, "transient", payload.ErrorKind)
	assert.Equal(t, 3, payload.Attempts)
	assert.Contains(t, payload.Detail, "connection reset")
}

func TestInstrumentedClient_PublishesFailedWhenStreamRejected(t *testing.T) {
	scripted := NewScriptedClient()
	scripted.FailWith(&BreakerOpenError{RetryAfter: 30 * time.Second})
	client, capture := newInstrumentedEnv(t, scripted)

	_, err := client.Stream(context.Background(), &Request{Model: "gpt-4o", SessionID: "sess-1"})
	require.Error(t, err)

	require.Eventually(t, func() bool {
		return len(capture.byType(events.EventLLMRequestFailed)) == 1
	}, 5*time.Second, 10*time.Millisecond)

	payload := capture.byType(events.EventLLMRequestFailed)[0].Payload.(events.LLMRequestFailedPayload)
	assert.Equal(t, "circuit_open", payload.ErrorKind)
	assert.Equal(t, 1, payload.Attempts)
}
