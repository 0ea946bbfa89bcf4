package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/ent/message"
	"github.com/switchyard-ai/switchyard/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// Routing history
// ────────────────────────────────────────────────────────────

// Every transition lands in the switch history, whether the client or the
// model asked for it, and the chain is contiguous from the initial agent
// to the current one.
func TestE2E_SwitchChainStaysContiguous(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddRouted("orchestrator", LLMScriptEntry{Chunks: llm.ToolCallScript(scriptUsage, llm.ToolCall{
		ID: "call_route", Name: "switch_mode", Arguments: `{"mode":"architect","reason":"needs a design"}`,
	})})
	app.LLM.AddRouted("architect", LLMScriptEntry{Text: "Here is the plan."})

	sessionID := app.CreateSession(t, "")

	moved := app.Stream(t, sessionID, switchAgentMessage("coder", ""))
	require.Equal(t, []string{"switch_agent", "done"}, eventTypes(moved))

	// The override pulls the session back to the orchestrator, which
	// routes on to the architect in the same stream: two more switches.
	events := app.Stream(t, sessionID, userMessageAs("orchestrator", "design the storage layer"))
	require.Equal(t, []string{"switch_agent", "switch_agent", "assistant_message", "assistant_message", "done"},
		eventTypes(events))

	switches := app.Switches(t, sessionID)
	ac := app.AgentContext(t, sessionID)
	require.Len(t, switches, 3)
	assert.Equal(t, 3, ac.SwitchCount)

	assert.Equal(t, "orchestrator", switches[0].FromAgent)
	for i := 1; i < len(switches); i++ {
		assert.Equal(t, switches[i-1].ToAgent, switches[i].FromAgent, "switch %d breaks the chain", i)
	}
	assert.Equal(t, string(ac.CurrentAgent), switches[len(switches)-1].ToAgent)
}

// ────────────────────────────────────────────────────────────
// Tool result pairing
// ────────────────────────────────────────────────────────────

// A multi-call batch resumes only once every call has its result, and each
// result pairs with exactly one call. The routing call never gets one.
func TestE2E_ToolResultsHoldUntilBatchComplete(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddRouted("orchestrator", LLMScriptEntry{Chunks: llm.ToolCallScript(scriptUsage, llm.ToolCall{
		ID: "call_route", Name: "switch_mode", Arguments: `{"mode":"coder","reason":"code inspection"}`,
	})})
	app.LLM.AddRouted("coder",
		LLMScriptEntry{Chunks: llm.ToolCallScript(scriptUsage,
			llm.ToolCall{ID: "call_read", Name: "read_file", Arguments: `{"path":"go.mod"}`},
			llm.ToolCall{ID: "call_list", Name: "list_files", Arguments: `{"path":"."}`},
		)},
		LLMScriptEntry{Text: "Reviewed both."},
	)

	events := app.Stream(t, "new_1", userMessage("look at the module layout"))
	require.Equal(t, []string{"session_info", "switch_agent", "tool_call", "tool_call"}, eventTypes(events))
	sessionID := events[0].Str("session_id")

	held := app.Stream(t, sessionID, toolResult("call_read", "read_file", "module github.com/acme/app"))
	require.Equal(t, []string{"done"}, eventTypes(held), "turn must hold until the batch is complete")

	finish := app.Stream(t, sessionID, toolResult("call_list", "list_files", "go.mod\nmain.go"))
	require.Equal(t, []string{"assistant_message", "assistant_message", "done"}, eventTypes(finish))

	msgs := app.Messages(t, sessionID)
	require.Len(t, msgs, 6)
	for i, m := range msgs {
		assert.Equal(t, i+1, m.Sequence)
	}

	results := map[string]int{}
	for _, m := range msgs {
		switch m.Role {
		case message.RoleAssistant:
			for _, id := range toolCallIDs(m) {
				results[id] = 0
			}
		case message.RoleTool:
			require.NotNil(t, m.ToolCallID)
			results[*m.ToolCallID]++
		}
	}
	assert.Equal(t, map[string]int{"call_route": 0, "call_read": 1, "call_list": 1}, results)
}

// ────────────────────────────────────────────────────────────
// Activity tracking
// ────────────────────────────────────────────────────────────

func TestE2E_ActivityTracksLastMessage(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(LLMScriptEntry{Text: "Done."})

	events := app.Stream(t, "new_1", userMessage("ping"))
	sessionID := events[0].Str("session_id")
	findEvent(t, events, "done")

	msgs := app.Messages(t, sessionID)
	require.NotEmpty(t, msgs)
	last := msgs[len(msgs)-1]

	sess := app.Session(t, sessionID)
	assert.True(t, sess.LastActivityAt.Equal(last.CreatedAt),
		"last_activity_at %v must equal the last message's created_at %v",
		sess.LastActivityAt, last.CreatedAt)
	assert.False(t, sess.LastActivityAt.Before(sess.CreatedAt))
}

// ────────────────────────────────────────────────────────────
// Approval gate durability
// ────────────────────────────────────────────────────────────

// New messages cannot start a turn past an open approval; the request is
// replayed so a reconnecting client can re-render its prompt.
func TestE2E_PendingApprovalReplaysOnReconnect(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(LLMScriptEntry{Chunks: llm.ToolCallScript(scriptUsage, llm.ToolCall{
		ID: "call_rm", Name: "execute_command", Arguments: `{"command":"rm -rf build"}`,
	})})

	first := app.Stream(t, "new_1", userMessageAs("coder", "clean the build dir"))
	sessionID := first[0].Str("session_id")
	require.Equal(t, "hitl_request", first[len(first)-1].Type)

	replay := app.Stream(t, sessionID, userMessage("any progress?"))
	require.Equal(t, []string{"hitl_request"}, eventTypes(replay))
	assert.Equal(t, "call_rm", replay[0].Str("call_id"))
	assert.Equal(t, "execute_command", replay[0].Str("tool_name"))

	// The model was not consulted again and no result was fabricated.
	assert.Equal(t, 1, app.LLM.CallCount())
	for _, m := range app.Messages(t, sessionID) {
		assert.NotEqual(t, message.RoleTool, m.Role)
	}

	pending := app.PendingApprovals(t, sessionID)
	require.Len(t, pending, 1)
	assert.Equal(t, "call_rm", pending[0].ID)
}

func TestE2E_HITLDecisionIdempotent(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(LLMScriptEntry{Chunks: llm.ToolCallScript(scriptUsage, llm.ToolCall{
		ID: "call_once", Name: "write_file", Arguments: `{"path":"a.txt","content":"x"}`,
	})})

	first := app.Stream(t, "new_1", userMessageAs("coder", "write a.txt"))
	sessionID := first[0].Str("session_id")
	require.Equal(t, "hitl_request", first[len(first)-1].Type)

	released := app.Stream(t, sessionID, hitlDecision("call_once", "approve", ""))
	require.Equal(t, []string{"tool_call"}, eventTypes(released))

	// The verdict is already applied; repeating it is a clean no-op.
	again := app.Stream(t, sessionID, hitlDecision("call_once", "approve", ""))
	require.Equal(t, []string{"done"}, eventTypes(again))
}

// ────────────────────────────────────────────────────────────
// HTTP surface laws
// ────────────────────────────────────────────────────────────

func TestE2E_SessionCreateIsIdempotent(t *testing.T) {
	app := NewTestApp(t)

	first := app.postJSON(t, "/api/v1/sessions", map[string]any{"session_id": "repeat-after-me"}, http.StatusCreated)
	second := app.postJSON(t, "/api/v1/sessions", map[string]any{"session_id": "repeat-after-me"}, http.StatusCreated)
	assert.Equal(t, "repeat-after-me", first["id"])
	assert.Equal(t, first["id"], second["id"])
	assert.Equal(t, first["created_at"], second["created_at"])
}

func TestE2E_SessionDetailRoundTrip(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(LLMScriptEntry{Text: "Sure thing."})

	events := app.Stream(t, "new_1", userMessageAs("coder", "hello"))
	sessionID := events[0].Str("session_id")
	findEvent(t, events, "done")

	detail := app.GetSessionDetail(t, sessionID)
	sess, ok := detail["session"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, sessionID, sess["id"])
	assert.Equal(t, "dev-user", sess["user_id"])
	assert.Equal(t, "coder", detail["current_agent"])
	assert.Empty(t, detail["pending_approvals"])

	apiMsgs, ok := detail["messages"].([]any)
	require.True(t, ok)
	dbMsgs := app.Messages(t, sessionID)
	require.Len(t, apiMsgs, len(dbMsgs))
	for i, raw := range apiMsgs {
		m, ok := raw.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, string(dbMsgs[i].Role), m["role"])
		assert.Equal(t, dbMsgs[i].Content, m["content"])
		assert.Equal(t, float64(dbMsgs[i].Sequence), m["sequence"])
	}
}

func TestE2E_StreamRequestValidation(t *testing.T) {
	app := NewTestApp(t)

	// Only user messages may mint a session.
	resp := app.StreamError(t, "new_x", toolResult("call_1", "read_file", "data"), http.StatusBadRequest)
	body, _ := resp["error"].(map[string]any)
	require.NotNil(t, body)
	assert.Equal(t, "validation", body["kind"])
	assert.Contains(t, body["message"], "existing session")

	// Empty content is rejected before the stream opens.
	resp = app.StreamError(t, "new_x", userMessage(""), http.StatusBadRequest)
	body, _ = resp["error"].(map[string]any)
	require.NotNil(t, body)
	assert.Contains(t, body["message"], "content is required")

	// Unknown variants are rejected outright.
	resp = app.StreamError(t, "new_x", map[string]any{"type": "telepathy"}, http.StatusBadRequest)
	body, _ = resp["error"].(map[string]any)
	require.NotNil(t, body)
	assert.Contains(t, body["message"], "unknown message type")

	// Verdicts outside the taxonomy never reach the orchestrator.
	sessionID := app.CreateSession(t, "")
	resp = app.StreamError(t, sessionID, hitlDecision("call_1", "maybe", ""), http.StatusBadRequest)
	body, _ = resp["error"].(map[string]any)
	require.NotNil(t, body)
	assert.Contains(t, body["message"], "decision must be")

	// A concrete but unknown session fails in-stream with a typed error.
	events := app.Stream(t, "00000000-0000-0000-0000-000000000000",
		toolResult("call_1", "read_file", "data"))
	require.Equal(t, []string{"error"}, eventTypes(events))
	assert.Equal(t, "session_not_found", events[0].Str("kind"))
	assert.True(t, events[0].Bool("is_final"))
}
