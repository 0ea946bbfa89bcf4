package e2e

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/ent/agentcontext"
	"github.com/switchyard-ai/switchyard/ent/message"
	"github.com/switchyard-ai/switchyard/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// Plain text exchange on a fresh session
// ────────────────────────────────────────────────────────────

func TestE2E_TextExchange(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(LLMScriptEntry{Text: "Hello."})

	events := app.Stream(t, "new_1", userMessage("Hi"))

	require.Equal(t, []string{"session_info", "assistant_message", "assistant_message", "done"}, eventTypes(events))
	sessionID := events[0].Str("session_id")
	require.NotEmpty(t, sessionID)
	assert.Equal(t, "Hello.", assistantText(events))
	assert.True(t, events[2].Bool("is_final"))

	msgs := app.Messages(t, sessionID)
	require.Len(t, msgs, 2)
	assert.Equal(t, message.RoleUser, msgs[0].Role)
	assert.Equal(t, "Hi", msgs[0].Content)
	assert.Equal(t, message.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Hello.", msgs[1].Content)
	require.NotNil(t, msgs[1].TokenCount)
	assert.Equal(t, scriptUsage.CompletionTokens, *msgs[1].TokenCount)

	sess := app.Session(t, sessionID)
	assert.Equal(t, "dev-user", sess.UserID)
	assert.True(t, sess.IsActive)
}

// ────────────────────────────────────────────────────────────
// Tool call round trip: the client executes and reports back
// ────────────────────────────────────────────────────────────

func TestE2E_ToolCallRoundTrip(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(
		LLMScriptEntry{Chunks: llm.ToolCallScript(scriptUsage, llm.ToolCall{
			ID: "call_read", Name: "read_file", Arguments: `{"path":"main.py"}`,
		})},
		LLMScriptEntry{Text: "The file prints 'hi'."},
	)

	// A fresh session starts on the orchestrator, so the agent override
	// announces a switch before the turn runs. The stream ends on the
	// tool call: the turn is now waiting on the client.
	first := app.Stream(t, "new_1", userMessageAs("coder", "read main.py"))
	require.Equal(t, []string{"session_info", "switch_agent", "tool_call"}, eventTypes(first))
	sessionID := first[0].Str("session_id")
	assert.Equal(t, "orchestrator", first[1].Str("from_agent"))
	assert.Equal(t, "coder", first[1].Str("to_agent"))

	call := first[2]
	assert.Equal(t, "call_read", call.Str("call_id"))
	assert.Equal(t, "read_file", call.Str("tool_name"))
	assert.Equal(t, "main.py", call.Map("arguments")["path"])

	// Reporting the result resumes the turn and the model answers.
	second := app.Stream(t, sessionID, toolResult("call_read", "read_file", "print('hi')"))
	require.Equal(t, []string{"assistant_message", "assistant_message", "done"}, eventTypes(second))
	assert.Equal(t, "The file prints 'hi'.", assistantText(second))

	msgs := app.Messages(t, sessionID)
	require.Len(t, msgs, 4)
	assert.Equal(t, message.RoleUser, msgs[0].Role)
	assert.Equal(t, message.RoleAssistant, msgs[1].Role)
	assert.Equal(t, []string{"call_read"}, toolCallIDs(msgs[1]))
	assert.Equal(t, message.RoleTool, msgs[2].Role)
	require.NotNil(t, msgs[2].ToolCallID)
	assert.Equal(t, "call_read", *msgs[2].ToolCallID)
	assert.Equal(t, "print('hi')", msgs[2].Content)
	assert.Equal(t, message.RoleAssistant, msgs[3].Role)
	assert.Equal(t, "The file prints 'hi'.", msgs[3].Content)

	// Both round-trips were served by the coder.
	reqs := app.LLM.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "coder", reqs[0].Agent)
	assert.Equal(t, "coder", reqs[1].Agent)
}

// ────────────────────────────────────────────────────────────
// Destructive calls stop at the approval gate
// ────────────────────────────────────────────────────────────

func TestE2E_HITLReject(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(
		LLMScriptEntry{Chunks: llm.ToolCallScript(scriptUsage, llm.ToolCall{
			ID: "call_write", Name: "write_file", Arguments: `{"path":"main.py","content":"data"}`,
		})},
		LLMScriptEntry{Text: "Understood; I won't write it."},
	)

	first := app.Stream(t, "new_1", userMessageAs("coder", "overwrite main.py"))
	require.Equal(t, []string{"session_info", "switch_agent", "hitl_request"}, eventTypes(first))
	sessionID := first[0].Str("session_id")
	gate := first[2]
	assert.Equal(t, "call_write", gate.Str("call_id"))
	assert.Equal(t, "write_file", gate.Str("tool_name"))
	assert.Equal(t, "main.py", gate.Map("arguments")["path"])

	// The gate is durable while the human decides.
	pending := app.PendingApprovals(t, sessionID)
	require.Len(t, pending, 1)
	assert.Equal(t, "call_write", pending[0].ID)
	assert.Equal(t, "write_file", pending[0].ToolName)

	// Rejection becomes the tool result and the model reacts to it.
	second := app.Stream(t, sessionID, hitlDecision("call_write", "reject", "no"))
	require.Equal(t, []string{"assistant_message", "assistant_message", "done"}, eventTypes(second))
	assert.Equal(t, "Understood; I won't write it.", assistantText(second))

	msgs := app.Messages(t, sessionID)
	require.Len(t, msgs, 4)
	refusal := msgs[2]
	assert.Equal(t, message.RoleTool, refusal.Role)
	assert.Equal(t, "Tool call rejected by the user: no", refusal.Content)
	require.NotNil(t, refusal.ToolCallID)
	assert.Equal(t, "call_write", *refusal.ToolCallID)

	assert.Empty(t, app.PendingApprovals(t, sessionID))
}

func TestE2E_HITLApprove(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(
		LLMScriptEntry{Chunks: llm.ToolCallScript(scriptUsage, llm.ToolCall{
			ID: "call_exec", Name: "execute_command", Arguments: `{"command":"make test"}`,
		})},
		LLMScriptEntry{Text: "All tests pass."},
	)

	first := app.Stream(t, "new_1", userMessageAs("coder", "run the tests"))
	sessionID := first[0].Str("session_id")
	require.Equal(t, "hitl_request", first[len(first)-1].Type)

	// Approval releases the call for client-side execution; the turn is
	// still waiting on the result.
	released := app.Stream(t, sessionID, hitlDecision("call_exec", "approve", ""))
	require.Equal(t, []string{"tool_call"}, eventTypes(released))
	assert.Equal(t, "call_exec", released[0].Str("call_id"))
	assert.Equal(t, "make test", released[0].Map("arguments")["command"])
	assert.Empty(t, app.PendingApprovals(t, sessionID))

	finish := app.Stream(t, sessionID, toolResult("call_exec", "execute_command", "ok: 12 passed"))
	require.Equal(t, []string{"assistant_message", "assistant_message", "done"}, eventTypes(finish))
	assert.Equal(t, "All tests pass.", assistantText(finish))
}

func TestE2E_HITLEditSubstitutesArguments(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(LLMScriptEntry{Chunks: llm.ToolCallScript(scriptUsage, llm.ToolCall{
		ID: "call_mkdir", Name: "create_directory", Arguments: `{"path":"/tmp/scratch"}`,
	})})

	first := app.Stream(t, "new_1", userMessageAs("coder", "make a scratch dir"))
	sessionID := first[0].Str("session_id")
	require.Equal(t, "hitl_request", first[len(first)-1].Type)

	released := app.Stream(t, sessionID, hitlEdit("call_mkdir", map[string]any{"path": "/tmp/safe"}))
	require.Equal(t, []string{"tool_call"}, eventTypes(released))
	assert.Equal(t, "/tmp/safe", released[0].Map("arguments")["path"],
		"edited arguments must replace what the model asked for")
}

// ────────────────────────────────────────────────────────────
// Disallowed tools bounce back to the model, not the client
// ────────────────────────────────────────────────────────────

func TestE2E_DisallowedToolFeedsErrorBack(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddSequential(
		LLMScriptEntry{Chunks: llm.ToolCallScript(scriptUsage, llm.ToolCall{
			ID: "call_bad", Name: "write_file", Arguments: `{"path":"main.py","content":"data"}`,
		})},
		LLMScriptEntry{Text: "I can only answer questions; here is what the file does."},
	)

	events := app.Stream(t, "new_1", userMessageAs("ask", "please fix main.py"))
	require.Equal(t, []string{"session_info", "switch_agent", "error", "assistant_message", "assistant_message", "done"},
		eventTypes(events))

	errEv := events[2]
	assert.Equal(t, "tool_not_allowed", errEv.Str("kind"))
	assert.False(t, errEv.Bool("is_final"), "a rejected call does not end the stream")
	assert.Contains(t, errEv.Str("detail"), `tool "write_file" rejected for agent ask`)

	sessionID := events[0].Str("session_id")
	msgs := app.Messages(t, sessionID)
	require.Len(t, msgs, 4)
	rejection := msgs[2]
	assert.Equal(t, message.RoleTool, rejection.Role)
	assert.Equal(t, `Error: tool "write_file" rejected for agent ask: not permitted for this agent`, rejection.Content)
	require.NotNil(t, rejection.ToolCallID)
	assert.Equal(t, "call_bad", *rejection.ToolCallID)
}

// ────────────────────────────────────────────────────────────
// Model-driven handoffs
// ────────────────────────────────────────────────────────────

func TestE2E_SpecialistHandsOff(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddRouted("ask", LLMScriptEntry{Chunks: llm.ToolCallScript(scriptUsage, llm.ToolCall{
		ID: "call_switch", Name: "switch_mode", Arguments: `{"mode":"coder","reason":"needs code changes"}`,
	})})
	app.LLM.AddRouted("coder", LLMScriptEntry{Text: "Patched main.py."})

	sessionID := app.CreateSession(t, "")
	moved := app.Stream(t, sessionID, switchAgentMessage("ask", ""))
	require.Equal(t, []string{"switch_agent", "done"}, eventTypes(moved))

	// The ask agent is never offered switch_mode, but routing is control
	// flow: the model emitting it still moves the session, and the turn
	// halts so the client decides when to continue.
	events := app.Stream(t, sessionID, userMessage("fix the bug in main.py"))
	require.Equal(t, []string{"switch_agent"}, eventTypes(events))
	assert.Equal(t, "ask", events[0].Str("from_agent"))
	assert.Equal(t, "coder", events[0].Str("to_agent"))
	assert.Equal(t, "needs code changes", events[0].Str("reason"))

	// The switch call is on the record and no tool result ever pairs
	// with it.
	msgs := app.Messages(t, sessionID)
	require.Len(t, msgs, 2)
	assert.Equal(t, []string{"call_switch"}, toolCallIDs(msgs[1]))
	for _, m := range msgs {
		assert.NotEqual(t, message.RoleTool, m.Role)
	}

	ac := app.AgentContext(t, sessionID)
	assert.Equal(t, agentcontext.CurrentAgentCoder, ac.CurrentAgent)
	assert.Equal(t, 2, ac.SwitchCount)

	// The next message is served by the coder.
	next := app.Stream(t, sessionID, userMessage("go ahead"))
	require.Equal(t, []string{"assistant_message", "assistant_message", "done"}, eventTypes(next))
	assert.Equal(t, "Patched main.py.", assistantText(next))
	reqs := app.LLM.Requests()
	assert.Equal(t, "coder", reqs[len(reqs)-1].Agent)
}

func TestE2E_OrchestratorRoutesInOneStream(t *testing.T) {
	app := NewTestApp(t)
	app.LLM.AddRouted("orchestrator", LLMScriptEntry{Chunks: llm.ToolCallScript(scriptUsage, llm.ToolCall{
		ID: "call_route", Name: "switch_mode", Arguments: `{"mode":"debug","reason":"crash analysis"}`,
	})})
	app.LLM.AddRouted("debug", LLMScriptEntry{Text: "The crash is a nil map write in config.Load."})

	// An orchestrator handoff is a routing hop: the chosen agent answers
	// in the same stream.
	events := app.Stream(t, "new_1", userMessage("why does startup crash?"))
	require.Equal(t, []string{"session_info", "switch_agent", "assistant_message", "assistant_message", "done"},
		eventTypes(events))
	assert.Equal(t, "orchestrator", events[1].Str("from_agent"))
	assert.Equal(t, "debug", events[1].Str("to_agent"))
	assert.Equal(t, "The crash is a nil map write in config.Load.", assistantText(events))

	sessionID := events[0].Str("session_id")
	ac := app.AgentContext(t, sessionID)
	assert.Equal(t, agentcontext.CurrentAgentDebug, ac.CurrentAgent)
}

func TestE2E_SingleAgentModeForwardsToUniversal(t *testing.T) {
	app := NewTestApp(t, WithAgentMode("single"))
	app.LLM.AddRouted("universal", LLMScriptEntry{Text: "Handled end to end."})

	events := app.Stream(t, "new_1", userMessage("do the whole task"))
	require.Equal(t, []string{"session_info", "switch_agent", "assistant_message", "assistant_message", "done"},
		eventTypes(events))
	assert.Equal(t, "orchestrator", events[1].Str("from_agent"))
	assert.Equal(t, "universal", events[1].Str("to_agent"))
	assert.Equal(t, "Handled end to end.", assistantText(events))

	sessionID := events[0].Str("session_id")
	ac := app.AgentContext(t, sessionID)
	assert.Equal(t, agentcontext.CurrentAgentUniversal, ac.CurrentAgent)
}

// ────────────────────────────────────────────────────────────
// Circuit breaker: open on repeated failures, recover on probe
// ────────────────────────────────────────────────────────────

func TestE2E_BreakerOpensAndRecovers(t *testing.T) {
	provider := newFakeProvider(t)

	cfg := defaultTestConfig()
	cfg.LLM.BaseURL = provider.URL()

	// Real provider client: one attempt per call so every 503 counts,
	// and a short cooldown so the test can wait it out.
	client := llm.NewOpenAIClient(provider.URL(), "test-key", nil,
		llm.WithRetryConfig(llm.RetryConfig{
			MaxAttempts:    1,
			InitialBackoff: 10 * time.Millisecond,
			MaxBackoff:     50 * time.Millisecond,
		}),
		llm.WithBreaker(llm.NewBreaker(llm.BreakerConfig{
			FailureThreshold: 5,
			Cooldown:         300 * time.Millisecond,
		}, nil)))

	app := NewTestApp(t, WithConfig(cfg), WithLLMClient(client))
	sessionID := app.CreateSession(t, "")

	// 1. Five straight 503s count toward the threshold; each surfaces as
	//    a transient failure to the client.
	for i := 1; i <= 5; i++ {
		events := app.Stream(t, sessionID, userMessage(fmt.Sprintf("attempt %d", i)))
		errEv := findEvent(t, events, "error")
		assert.Equal(t, "llm_transient", errEv.Str("kind"), "attempt %d", i)
		assert.True(t, errEv.Bool("is_final"))
	}
	require.Equal(t, 5, provider.RequestCount())

	// 2. The circuit is open: the next call fails fast and the provider
	//    is not touched.
	events := app.Stream(t, sessionID, userMessage("is anyone there?"))
	errEv := findEvent(t, events, "error")
	assert.Equal(t, "circuit_open", errEv.Str("kind"))
	require.Equal(t, 5, provider.RequestCount())

	// The open circuit surfaces as a system warning; bus dispatch is
	// asynchronous, so wait for it before reading the health endpoint.
	require.Eventually(t, func() bool {
		return len(app.Warnings.GetWarnings()) == 1
	}, 2*time.Second, 10*time.Millisecond, "circuit warning never surfaced")

	health := app.getJSON(t, "/health", http.StatusOK)
	assert.Equal(t, "degraded", health["status"])
	assert.Contains(t, health, "event_bus")
	warnings, ok := health["warnings"].([]any)
	require.True(t, ok, "health payload missing warnings")
	require.Len(t, warnings, 1)
	warning := warnings[0].(map[string]any)
	assert.Equal(t, "llm_circuit", warning["category"])
	assert.Equal(t, cfg.LLM.Model, warning["source"])

	// 3. After the cooldown one probe is allowed through; its success
	//    closes the circuit.
	provider.Succeed("All good now.")
	time.Sleep(400 * time.Millisecond)

	events = app.Stream(t, sessionID, userMessage("try again"))
	require.Equal(t, []string{"assistant_message", "assistant_message", "done"}, eventTypes(events))
	assert.Equal(t, "All good now.", assistantText(events))
	require.Equal(t, 6, provider.RequestCount())

	// Recovery clears the warning and the instance reports healthy again.
	require.Eventually(t, func() bool {
		return len(app.Warnings.GetWarnings()) == 0
	}, 2*time.Second, 10*time.Millisecond, "circuit warning never cleared")

	health = app.getJSON(t, "/health", http.StatusOK)
	assert.Equal(t, "healthy", health["status"])
	assert.NotContains(t, health, "warnings")

	// 4. Closed for good: the following call reaches the provider too.
	events = app.Stream(t, sessionID, userMessage("and again"))
	findEvent(t, events, "done")
	require.Equal(t, 7, provider.RequestCount())
}
