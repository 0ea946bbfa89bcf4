package e2e

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/ent"
)

// ────────────────────────────────────────────────────────────
// SSE stream client
// ────────────────────────────────────────────────────────────

// StreamEvent is one decoded SSE frame from the stream endpoint.
type StreamEvent struct {
	Type string         // the chunk discriminator: session_info, tool_call, ...
	Data map[string]any // the full decoded object, Type included
}

// Str returns a string field of the event, or "" when absent.
func (e StreamEvent) Str(key string) string {
	s, _ := e.Data[key].(string)
	return s
}

// Bool returns a boolean field of the event, or false when absent.
func (e StreamEvent) Bool(key string) bool {
	b, _ := e.Data[key].(bool)
	return b
}

// Map returns an object field of the event, or nil when absent.
func (e StreamEvent) Map(key string) map[string]any {
	m, _ := e.Data[key].(map[string]any)
	return m
}

// SSEStream is an open response on the stream endpoint. The server
// closes the stream when the orchestration call finishes; Cancel closes
// it from the client side, which is how a disconnect looks to the
// server.
type SSEStream struct {
	cancel context.CancelFunc
	events chan StreamEvent
}

// Next returns the next event or fails the test when the stream closes
// or stalls first.
func (s *SSEStream) Next(t *testing.T) StreamEvent {
	t.Helper()
	select {
	case ev, ok := <-s.events:
		require.True(t, ok, "stream closed while waiting for an event")
		return ev
	case <-time.After(15 * time.Second):
		t.Fatal("timed out waiting for a stream event")
		return StreamEvent{}
	}
}

// Collect drains the stream until the server closes it and returns
// every event received, the ones already consumed by Next excluded.
func (s *SSEStream) Collect(t *testing.T) []StreamEvent {
	t.Helper()
	var out []StreamEvent
	deadline := time.After(30 * time.Second)
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return out
			}
			out = append(out, ev)
		case <-deadline:
			t.Fatalf("stream did not close; events so far: %v", eventTypes(out))
			return nil
		}
	}
}

// Cancel drops the connection, simulating a client that went away
// mid-stream.
func (s *SSEStream) Cancel() { s.cancel() }

func (s *SSEStream) read(body io.ReadCloser) {
	defer close(s.events)
	defer body.Close()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// Frames are dispatched on the blank line; data lines between blanks
	// belong to one event.
	var data []string
	flush := func() {
		if len(data) == 0 {
			return
		}
		payload := strings.Join(data, "\n")
		data = nil

		var decoded map[string]any
		if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
			decoded = map[string]any{"raw": payload}
		}
		typ, _ := decoded["type"].(string)
		s.events <- StreamEvent{Type: typ, Data: decoded}
	}

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		case line == "":
			flush()
		}
	}
	flush()
}

// OpenStream posts a message envelope to the stream endpoint and returns
// the open stream. The request must be accepted; validation rejections
// are asserted with StreamError instead.
func (app *TestApp) OpenStream(t *testing.T, sessionID string, msg map[string]any) *SSEStream {
	t.Helper()

	data, err := json.Marshal(map[string]any{"session_id": sessionID, "message": msg})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		app.BaseURL+"/api/v1/messages/stream", bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		t.Fatalf("stream request rejected with %d: %s", resp.StatusCode, raw)
	}
	require.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	s := &SSEStream{cancel: cancel, events: make(chan StreamEvent, 256)}
	go s.read(resp.Body)
	return s
}

// Stream posts a message envelope and collects the whole stream.
func (app *TestApp) Stream(t *testing.T, sessionID string, msg map[string]any) []StreamEvent {
	t.Helper()
	return app.OpenStream(t, sessionID, msg).Collect(t)
}

// StreamError posts a message envelope expecting a plain JSON rejection
// before any SSE is written, and returns the decoded error body.
func (app *TestApp) StreamError(t *testing.T, sessionID string, msg map[string]any, wantStatus int) map[string]any {
	t.Helper()
	return app.postJSON(t, "/api/v1/messages/stream",
		map[string]any{"session_id": sessionID, "message": msg}, wantStatus)
}

// TryStream is the goroutine-safe variant of Stream: failures come back as
// errors instead of failing the test, so concurrent callers can funnel
// results to the main goroutine for assertion.
func (app *TestApp) TryStream(sessionID string, msg map[string]any) ([]StreamEvent, error) {
	data, err := json.Marshal(map[string]any{"session_id": sessionID, "message": msg})
	if err != nil {
		return nil, err
	}

	resp, err := http.Post(app.BaseURL+"/api/v1/messages/stream", "application/json", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("stream rejected with status %d: %s", resp.StatusCode, body)
	}

	s := &SSEStream{cancel: func() {}, events: make(chan StreamEvent, 256)}
	go s.read(resp.Body)

	var events []StreamEvent
	for ev := range s.events {
		events = append(events, ev)
	}
	return events, nil
}

// ────────────────────────────────────────────────────────────
// Message envelope builders
// ────────────────────────────────────────────────────────────

func userMessage(content string) map[string]any {
	return map[string]any{"type": "user_message", "content": content}
}

func userMessageAs(agentType, content string) map[string]any {
	return map[string]any{"type": "user_message", "content": content, "agent_type": agentType}
}

func toolResult(callID, toolName, result string) map[string]any {
	return map[string]any{"type": "tool_result", "call_id": callID, "tool_name": toolName, "result": result}
}

func hitlDecision(callID, decision, feedback string) map[string]any {
	m := map[string]any{"type": "hitl_decision", "call_id": callID, "decision": decision}
	if feedback != "" {
		m["feedback"] = feedback
	}
	return m
}

func hitlEdit(callID string, modified map[string]any) map[string]any {
	return map[string]any{
		"type": "hitl_decision", "call_id": callID,
		"decision": "edit", "modified_arguments": modified,
	}
}

func switchAgentMessage(agentType, content string) map[string]any {
	m := map[string]any{"type": "switch_agent", "agent_type": agentType}
	if content != "" {
		m["content"] = content
	}
	return m
}

// ────────────────────────────────────────────────────────────
// Stream event helpers
// ────────────────────────────────────────────────────────────

func eventTypes(events []StreamEvent) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Type
	}
	return out
}

// findEvent returns the first event of the given type.
func findEvent(t *testing.T, events []StreamEvent, typ string) StreamEvent {
	t.Helper()
	for _, ev := range events {
		if ev.Type == typ {
			return ev
		}
	}
	t.Fatalf("no %q event in stream: %v", typ, eventTypes(events))
	return StreamEvent{}
}

func filterEvents(events []StreamEvent, typ string) []StreamEvent {
	var out []StreamEvent
	for _, ev := range events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

// assistantText reassembles the streamed answer from its deltas.
func assistantText(events []StreamEvent) string {
	var b strings.Builder
	for _, ev := range events {
		if ev.Type == "assistant_message" && !ev.Bool("is_final") {
			b.WriteString(ev.Str("content"))
		}
	}
	return b.String()
}

// ────────────────────────────────────────────────────────────
// HTTP helpers
// ────────────────────────────────────────────────────────────

// CreateSession provisions a session over the API and returns its id.
func (app *TestApp) CreateSession(t *testing.T, sessionID string) string {
	t.Helper()
	body := map[string]any{}
	if sessionID != "" {
		body["session_id"] = sessionID
	}
	resp := app.postJSON(t, "/api/v1/sessions", body, http.StatusCreated)
	id, _ := resp["id"].(string)
	require.NotEmpty(t, id, "create session response carries no id")
	return id
}

// GetSessionDetail fetches GET /api/v1/sessions/:id with history included.
func (app *TestApp) GetSessionDetail(t *testing.T, sessionID string) map[string]any {
	t.Helper()
	return app.getJSON(t, "/api/v1/sessions/"+sessionID+"?include_messages=true", http.StatusOK)
}

func (app *TestApp) postJSON(t *testing.T, path string, body any, wantStatus int) map[string]any {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, app.BaseURL+path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, wantStatus, resp.StatusCode, "POST %s: unexpected status", path)
	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func (app *TestApp) getJSON(t *testing.T, path string, wantStatus int) map[string]any {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, wantStatus, resp.StatusCode, "GET %s: unexpected status", path)
	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// ────────────────────────────────────────────────────────────
// Database helpers
// ────────────────────────────────────────────────────────────

// Messages returns the session history in sequence order.
func (app *TestApp) Messages(t *testing.T, sessionID string) []*ent.Message {
	t.Helper()
	msgs, err := app.Sessions.GetHistory(context.Background(), sessionID, 0)
	require.NoError(t, err)
	return msgs
}

// Session loads the session row.
func (app *TestApp) Session(t *testing.T, sessionID string) *ent.Session {
	t.Helper()
	sess, err := app.Sessions.GetSession(context.Background(), sessionID, false)
	require.NoError(t, err)
	return sess
}

// AgentContext loads the routing state of the session.
func (app *TestApp) AgentContext(t *testing.T, sessionID string) *ent.AgentContext {
	t.Helper()
	ac, err := app.Contexts.GetOrCreate(context.Background(), sessionID)
	require.NoError(t, err)
	return ac
}

// Switches returns the recorded agent handoffs, oldest first.
func (app *TestApp) Switches(t *testing.T, sessionID string) []*ent.AgentSwitch {
	t.Helper()
	switches, err := app.Contexts.GetSwitchHistory(context.Background(), sessionID, 0)
	require.NoError(t, err)
	return switches
}

// PendingApprovals returns the unresolved HITL gates of the session.
func (app *TestApp) PendingApprovals(t *testing.T, sessionID string) []*ent.PendingApproval {
	t.Helper()
	pending, err := app.Approvals.ListPending(context.Background(), sessionID)
	require.NoError(t, err)
	return pending
}

// toolCallIDs extracts the call ids recorded on an assistant message.
func toolCallIDs(msg *ent.Message) []string {
	var out []string
	for _, call := range msg.ToolCalls {
		if id, ok := call["id"].(string); ok {
			out = append(out, id)
		}
	}
	return out
}
