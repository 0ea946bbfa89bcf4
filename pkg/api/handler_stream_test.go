package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/pkg/llm"
)

func TestStreamHandler_NewSessionPlaceholder(t *testing.T) {
	ts := newTestServer(t, llm.TextScript("Hello there!", testUsage))

	code, chunks := ts.stream(t, "new_chat", gin.H{
		"type":    "user_message",
		"content": "hi",
	})

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{
		"session_info",
		"assistant_message",
		"assistant_message",
		"done",
	}, chunkTypes(chunks))

	// The server minted a real ID; the placeholder never leaks out.
	assert.NotEmpty(t, chunks[0].SessionID)
	assert.False(t, strings.HasPrefix(chunks[0].SessionID, "new_"))
	assert.Equal(t, "Hello there!", chunks[1].Content)
	assert.True(t, chunks[2].IsFinal)

	// The minted session belongs to the authenticated user.
	rec := ts.do(t, http.MethodGet, "/api/v1/sessions/"+chunks[0].SessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestStreamHandler_UserMessageWithConcreteIDCreatesSession(t *testing.T) {
	ts := newTestServer(t, llm.TextScript("ok", testUsage))

	id := "11111111-2222-3333-4444-555555555555"
	code, chunks := ts.stream(t, id, gin.H{
		"type":    "user_message",
		"content": "hello",
	})

	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, chunks)
	assert.Equal(t, "session_info", chunks[0].Type)
	assert.Equal(t, id, chunks[0].SessionID)
}

func TestStreamHandler_Validation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name      string
		sessionID string
		message   gin.H
	}{
		{
			name:      "user_message without content",
			sessionID: "new_x",
			message:   gin.H{"type": "user_message"},
		},
		{
			name:      "missing message type",
			sessionID: "new_x",
			message:   gin.H{"content": "hi"},
		},
		{
			name:      "unknown message type",
			sessionID: "new_x",
			message:   gin.H{"type": "telepathy", "content": "hi"},
		},
		{
			name:      "tool_result cannot mint a session",
			sessionID: "new_x",
			message:   gin.H{"type": "tool_result", "call_id": "c1", "tool_name": "read_file", "result": "data"},
		},
		{
			name:      "tool_result without call_id",
			sessionID: "11111111-2222-3333-4444-555555555555",
			message:   gin.H{"type": "tool_result", "tool_name": "read_file", "result": "data"},
		},
		{
			name:      "hitl_decision with bad decision",
			sessionID: "11111111-2222-3333-4444-555555555555",
			message:   gin.H{"type": "hitl_decision", "call_id": "c1", "decision": "maybe"},
		},
		{
			name:      "switch_agent without agent_type",
			sessionID: "11111111-2222-3333-4444-555555555555",
			message:   gin.H{"type": "switch_agent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/v1/messages/stream", gin.H{
				"session_id": tt.sessionID,
				"message":    tt.message,
			})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "validation", errorKind(t, rec))
			assert.Zero(t, ts.llm.Calls(), "validation failures must not reach the model")
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/messages/stream",
			strings.NewReader(`{"session_id": "new_x", "message":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		ts.server.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation", errorKind(t, rec))
	})
}

func TestStreamHandler_ToolRoundTrip(t *testing.T) {
	ts := newTestServer(t,
		llm.ToolCallScript(testUsage, llm.ToolCall{
			ID:        "call_read",
			Name:      "read_file",
			Arguments: `{"path":"main.go"}`,
		}),
		llm.TextScript("main.go prints hello.", testUsage),
	)

	// 1. The turn halts on the emitted tool call; no done chunk.
	code, chunks := ts.stream(t, "new_", gin.H{
		"type":    "user_message",
		"content": "what does main.go do?",
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{"session_info", "tool_call"}, chunkTypes(chunks))
	sessionID := chunks[0].SessionID
	call := chunks[1]
	assert.Equal(t, "call_read", call.CallID)
	assert.Equal(t, "read_file", call.ToolName)
	assert.Equal(t, map[string]any{"path": "main.go"}, call.Arguments)

	// 2. Reporting the result resumes the turn to completion.
	code, chunks = ts.stream(t, sessionID, gin.H{
		"type":      "tool_result",
		"call_id":   "call_read",
		"tool_name": "read_file",
		"result":    "package main",
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{
		"assistant_message",
		"assistant_message",
		"done",
	}, chunkTypes(chunks))
	assert.Equal(t, "main.go prints hello.", chunks[0].Content)
}

func TestStreamHandler_ObjectToolResult(t *testing.T) {
	ts := newTestServer(t,
		llm.ToolCallScript(testUsage, llm.ToolCall{
			ID:        "call_ls",
			Name:      "list_files",
			Arguments: `{"path":"."}`,
		}),
		llm.TextScript("Two files.", testUsage),
	)

	_, chunks := ts.stream(t, "new_", gin.H{
		"type":    "user_message",
		"content": "list the files",
	})
	sessionID := chunks[0].SessionID

	// A JSON object result is passed through verbatim.
	code, chunks := ts.stream(t, sessionID, gin.H{
		"type":      "tool_result",
		"call_id":   "call_ls",
		"tool_name": "list_files",
		"result":    gin.H{"files": []string{"a.go", "b.go"}},
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "done", chunks[len(chunks)-1].Type)

	reqs := ts.llm.Requests()
	require.Len(t, reqs, 2)
	last := reqs[1].Messages[len(reqs[1].Messages)-1]
	assert.Equal(t, "tool", last.Role)
	assert.Contains(t, last.Content, `"a.go"`)
}

func TestStreamHandler_HITLApprovalFlow(t *testing.T) {
	ts := newTestServer(t,
		llm.ToolCallScript(testUsage, llm.ToolCall{
			ID:        "call_write",
			Name:      "write_file",
			Arguments: `{"path":"main.go","content":"package main"}`,
		}),
	)

	// 1. A gated tool pauses for human review instead of dispatching.
	code, chunks := ts.stream(t, "new_", gin.H{
		"type":       "user_message",
		"content":    "create main.go",
		"agent_type": "coder",
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{"session_info", "switch_agent", "hitl_request"}, chunkTypes(chunks))
	sessionID := chunks[0].SessionID
	assert.Equal(t, "call_write", chunks[2].CallID)
	assert.Equal(t, "write_file", chunks[2].ToolName)

	// 2. Approval releases the original call to the client.
	code, chunks = ts.stream(t, sessionID, gin.H{
		"type":     "hitl_decision",
		"call_id":  "call_write",
		"decision": "approve",
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{"tool_call"}, chunkTypes(chunks))
	assert.Equal(t, "call_write", chunks[0].CallID)
	assert.Equal(t, map[string]any{"path": "main.go", "content": "package main"}, chunks[0].Arguments)
}

func TestStreamHandler_SwitchAgentWithContent(t *testing.T) {
	ts := newTestServer(t, llm.TextScript("Design looks sound.", testUsage))
	sessionID := ts.newSession(t)

	code, chunks := ts.stream(t, sessionID, gin.H{
		"type":       "switch_agent",
		"agent_type": "architect",
		"content":    "review the design",
	})

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{
		"switch_agent",
		"assistant_message",
		"assistant_message",
		"done",
	}, chunkTypes(chunks))
	assert.Equal(t, "orchestrator", chunks[0].FromAgent)
	assert.Equal(t, "architect", chunks[0].ToAgent)
}

func TestStreamHandler_SessionNotFoundOnStream(t *testing.T) {
	ts := newTestServer(t)

	// A concrete ID that does not exist: fine for user_message (created),
	// an in-stream error for everything else.
	code, chunks := ts.stream(t, "99999999-0000-0000-0000-000000000000", gin.H{
		"type":       "switch_agent",
		"agent_type": "coder",
	})

	require.Equal(t, http.StatusOK, code)
	require.Len(t, chunks, 1)
	assert.Equal(t, "error", chunks[0].Type)
	assert.Equal(t, "session_not_found", chunks[0].Kind)
	assert.True(t, chunks[0].IsFinal)
}
