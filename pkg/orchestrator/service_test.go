package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/ent"
	"github.com/switchyard-ai/switchyard/ent/agentcontext"
	"github.com/switchyard-ai/switchyard/ent/message"
	"github.com/switchyard-ai/switchyard/pkg/agent"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/llm"
	"github.com/switchyard-ai/switchyard/pkg/locks"
	"github.com/switchyard-ai/switchyard/pkg/models"
	"github.com/switchyard-ai/switchyard/pkg/services"
	testdb "github.com/switchyard-ai/switchyard/test/database"
)

var testUsage = &llm.Usage{PromptTokens: 20, CompletionTokens: 7, TotalTokens: 27}

type testEnv struct {
	client    *ent.Client
	bus       *events.Bus
	llm       *llm.ScriptedClient
	locks     *locks.Manager
	sessions  *services.SessionService
	contexts  *services.ContextService
	approvals *services.ApprovalService
	svc       *Service
}

func newTestEnv(t *testing.T, mode agent.Mode, scripts ...[]llm.Chunk) *testEnv {
	t.Helper()

	client := testdb.NewTestClient(t).Client

	bus := events.NewBus(nil)
	bus.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = bus.Stop(ctx)
	})

	registry, err := agent.NewRegistry(mode)
	require.NoError(t, err)

	manager := locks.NewManager(nil)
	t.Cleanup(manager.Stop)

	env := &testEnv{
		client:    client,
		bus:       bus,
		llm:       llm.NewScriptedClient(scripts...),
		locks:     manager,
		sessions:  services.NewSessionService(client, bus),
		contexts:  services.NewContextService(client, bus),
		approvals: services.NewApprovalService(client, bus, nil),
	}
	env.svc = New(Deps{
		Locks:     env.locks,
		Sessions:  env.sessions,
		Contexts:  env.contexts,
		Approvals: env.approvals,
		Registry:  registry,
		LLM:       env.llm,
		Bus:       bus,
	}, Config{Model: "test-model"})
	return env
}

// newSession creates a session directly through the service layer so a
// test can start from a known state.
func (e *testEnv) newSession(t *testing.T) string {
	t.Helper()
	id := uuid.NewString()
	_, err := e.sessions.CreateSession(context.Background(), models.CreateSessionRequest{
		SessionID: id,
		UserID:    "user-1",
	})
	require.NoError(t, err)
	return id
}

// switchTo moves an existing session to the given agent outside the
// orchestration flow.
func (e *testEnv) switchTo(t *testing.T, sessionID string, target agent.Type) {
	t.Helper()
	_, err := e.contexts.Switch(context.Background(), sessionID, agentcontext.CurrentAgent(target), "test setup")
	require.NoError(t, err)
}

func (e *testEnv) history(t *testing.T, sessionID string) []*ent.Message {
	t.Helper()
	msgs, err := e.sessions.GetHistory(context.Background(), sessionID, 0)
	require.NoError(t, err)
	return msgs
}

// collect drains a chunk stream to completion.
func collect(t *testing.T, ch <-chan Chunk) []Chunk {
	t.Helper()
	var out []Chunk
	timeout := time.After(15 * time.Second)
	for {
		select {
		case c, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, c)
		case <-timeout:
			t.Fatalf("timed out draining stream; got %d chunks so far", len(out))
		}
	}
}

func chunkTypes(chunks []Chunk) []ChunkType {
	out := make([]ChunkType, len(chunks))
	for i, c := range chunks {
		out[i] = c.chunkType()
	}
	return out
}

func findChunk[T Chunk](t *testing.T, chunks []Chunk) T {
	t.Helper()
	for _, c := range chunks {
		if v, ok := c.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("no %T chunk in %v", zero, chunkTypes(chunks))
	return zero
}

// ─────────────────────────────────────────────────────────────────────
// ProcessMessage
// ─────────────────────────────────────────────────────────────────────

func TestProcessMessage_NewSessionTextAnswer(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti, llm.TextScript("Hello! How can I help?", testUsage))

	id := uuid.NewString()
	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		UserID:    "user-1",
		Content:   "hi",
	}))

	require.Equal(t, []ChunkType{
		ChunkTypeSessionInfo,
		ChunkTypeAssistantMessage,
		ChunkTypeAssistantMessage,
		ChunkTypeDone,
	}, chunkTypes(chunks))

	info := chunks[0].(*SessionInfoChunk)
	assert.Equal(t, id, info.SessionID)

	delta := chunks[1].(*AssistantMessageChunk)
	assert.Equal(t, "Hello! How can I help?", delta.Content)
	assert.False(t, delta.IsFinal)
	assert.True(t, chunks[2].(*AssistantMessageChunk).IsFinal)

	// Stored history: user then assistant, dense sequences.
	msgs := env.history(t, id)
	require.Len(t, msgs, 2)
	assert.Equal(t, message.RoleUser, msgs[0].Role)
	assert.Equal(t, 1, msgs[0].Sequence)
	assert.Equal(t, message.RoleAssistant, msgs[1].Role)
	assert.Equal(t, 2, msgs[1].Sequence)
	require.NotNil(t, msgs[1].TokenCount)
	assert.Equal(t, testUsage.CompletionTokens, *msgs[1].TokenCount)

	// The request carried the system prompt and the user message.
	reqs := env.llm.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "test-model", reqs[0].Model)
	assert.Equal(t, string(agent.TypeOrchestrator), reqs[0].Agent)
	require.GreaterOrEqual(t, len(reqs[0].Messages), 2)
	assert.Equal(t, "system", reqs[0].Messages[0].Role)
	assert.Equal(t, "user", reqs[0].Messages[1].Role)
	assert.Equal(t, "hi", reqs[0].Messages[1].Content)
}

func TestProcessMessage_ExistingSessionHasNoSessionInfo(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti, llm.TextScript("again", testUsage))
	id := env.newSession(t)

	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "hello again",
	}))

	require.NotEmpty(t, chunks)
	assert.NotEqual(t, ChunkTypeSessionInfo, chunks[0].chunkType())
}

func TestProcessMessage_AgentOverride(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti, llm.TextScript("The README covers setup.", testUsage))
	id := env.newSession(t)

	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "what does the README cover?",
		Agent:     "ask",
	}))

	sw := findChunk[*SwitchAgentChunk](t, chunks)
	assert.Equal(t, "orchestrator", sw.FromAgent)
	assert.Equal(t, "ask", sw.ToAgent)

	reqs := env.llm.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "ask", reqs[0].Agent)

	cur, err := env.contexts.CurrentAgent(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, agentcontext.CurrentAgentAsk, cur)
}

func TestProcessMessage_UnknownAgentOverride(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti, llm.TextScript("x", nil))
	id := env.newSession(t)

	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "hi",
		Agent:     "manager",
	}))

	errChunk := findChunk[*ErrorChunk](t, chunks)
	assert.Equal(t, ErrorKindValidation, errChunk.Kind)
	assert.Zero(t, env.llm.Calls())
}

func TestProcessMessage_EmptyContent(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti)
	id := env.newSession(t)

	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{SessionID: id}))

	errChunk := findChunk[*ErrorChunk](t, chunks)
	assert.Equal(t, ErrorKindValidation, errChunk.Kind)
	assert.True(t, errChunk.IsFinal)
}

func TestProcessMessage_SoftDeletedSession(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti, llm.TextScript("x", nil))
	id := env.newSession(t)
	require.NoError(t, env.sessions.DeleteSession(context.Background(), id, true))

	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "anyone home?",
	}))

	errChunk := findChunk[*ErrorChunk](t, chunks)
	assert.Equal(t, ErrorKindSessionDeleted, errChunk.Kind)
	assert.Zero(t, env.llm.Calls())
}

// ─────────────────────────────────────────────────────────────────────
// Routing
// ─────────────────────────────────────────────────────────────────────

func TestOrchestratorRouting_ContinuesInSameStream(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti,
		llm.ToolCallScript(testUsage, llm.ToolCall{
			ID:        "call_route",
			Name:      agent.ToolSwitchMode,
			Arguments: `{"mode":"coder","reason":"implementation task"}`,
		}),
		llm.TextScript("On it. Reading the failing test first.", testUsage),
	)

	id := uuid.NewString()
	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "fix the flaky TestStore retry logic",
	}))

	require.Equal(t, []ChunkType{
		ChunkTypeSessionInfo,
		ChunkTypeSwitchAgent,
		ChunkTypeAssistantMessage,
		ChunkTypeAssistantMessage,
		ChunkTypeDone,
	}, chunkTypes(chunks))

	sw := chunks[1].(*SwitchAgentChunk)
	assert.Equal(t, "orchestrator", sw.FromAgent)
	assert.Equal(t, "coder", sw.ToAgent)
	assert.Equal(t, "implementation task", sw.Reason)

	// Both round-trips happened inside one client call.
	reqs := env.llm.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "orchestrator", reqs[0].Agent)
	assert.Equal(t, "coder", reqs[1].Agent)

	// The routing decision is on the record and the context moved.
	msgs := env.history(t, id)
	require.Len(t, msgs, 3)
	assert.Equal(t, message.RoleAssistant, msgs[1].Role)
	require.Len(t, msgs[1].ToolCalls, 1)

	cur, err := env.contexts.CurrentAgent(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, agentcontext.CurrentAgentCoder, cur)

	// The coder's prompt renders the switch as text, not a tool call.
	for _, m := range reqs[1].Messages {
		assert.Empty(t, m.ToolCalls, "switch_mode must not reach the wire as a call")
	}
}

func TestSpecialistSwitch_HaltsTurn(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti,
		llm.ToolCallScript(testUsage, llm.ToolCall{
			ID:        "call_back",
			Name:      agent.ToolSwitchMode,
			Arguments: `{"mode":"debug","reason":"needs diagnosis"}`,
		}),
	)
	id := env.newSession(t)
	env.switchTo(t, id, agent.TypeCoder)

	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "the test fails only on CI",
	}))

	require.Equal(t, []ChunkType{ChunkTypeSwitchAgent}, chunkTypes(chunks))
	assert.Equal(t, 1, env.llm.Calls(), "a specialist switch must not re-enter the loop")

	cur, err := env.contexts.CurrentAgent(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, agentcontext.CurrentAgentDebug, cur)
}

func TestSwitchMode_BypassesToolGate(t *testing.T) {
	// The ask agent is never offered the switch_mode schema, but a model
	// that emits it anyway still moves the session: routing is control
	// flow, not a gated tool.
	env := newTestEnv(t, agent.ModeMulti,
		llm.ToolCallScript(testUsage, llm.ToolCall{
			ID:        "call_handoff",
			Name:      agent.ToolSwitchMode,
			Arguments: `{"mode":"coder","reason":"needs code changes"}`,
		}),
	)
	id := env.newSession(t)
	env.switchTo(t, id, agent.TypeAsk)

	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "please fix the bug in main.py",
	}))

	require.Equal(t, []ChunkType{ChunkTypeSwitchAgent}, chunkTypes(chunks))
	sw := findChunk[*SwitchAgentChunk](t, chunks)
	assert.Equal(t, "ask", sw.FromAgent)
	assert.Equal(t, "coder", sw.ToAgent)
	assert.Equal(t, "needs code changes", sw.Reason)

	// The assistant message carrying the call is on the record and no
	// tool result ever pairs with it.
	msgs := env.history(t, id)
	require.Len(t, msgs, 2)
	assert.Equal(t, message.RoleAssistant, msgs[1].Role)
	assert.Len(t, msgs[1].ToolCalls, 1)

	cur, err := env.contexts.CurrentAgent(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, agentcontext.CurrentAgentCoder, cur)
}

func TestSwitchToUnknownAgent_FailsClosed(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti,
		llm.ToolCallScript(testUsage, llm.ToolCall{
			ID:        "call_bad",
			Name:      agent.ToolSwitchMode,
			Arguments: `{"mode":"manager"}`,
		}),
	)

	id := uuid.NewString()
	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "do something",
	}))

	errChunk := findChunk[*ErrorChunk](t, chunks)
	assert.Equal(t, ErrorKindInvalidAgent, errChunk.Kind)
	assert.True(t, errChunk.IsFinal)

	cur, err := env.contexts.CurrentAgent(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, agentcontext.CurrentAgentOrchestrator, cur, "failed switch must not move the session")
}

func TestSingleAgentMode_ForwardsWithoutRoutingCall(t *testing.T) {
	env := newTestEnv(t, agent.ModeSingle, llm.TextScript("Done.", testUsage))

	id := uuid.NewString()
	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "rename the helper",
	}))

	require.Equal(t, []ChunkType{
		ChunkTypeSessionInfo,
		ChunkTypeSwitchAgent,
		ChunkTypeAssistantMessage,
		ChunkTypeAssistantMessage,
		ChunkTypeDone,
	}, chunkTypes(chunks))

	sw := chunks[1].(*SwitchAgentChunk)
	assert.Equal(t, "orchestrator", sw.FromAgent)
	assert.Equal(t, "universal", sw.ToAgent)

	// Exactly one model call, made by the universal agent.
	reqs := env.llm.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "universal", reqs[0].Agent)
}

func TestUniversalSwitchMode_FailsClosed(t *testing.T) {
	env := newTestEnv(t, agent.ModeSingle,
		llm.TextScript("warmup", testUsage),
		llm.ToolCallScript(testUsage, llm.ToolCall{
			ID:        "call_esc",
			Name:      agent.ToolSwitchMode,
			Arguments: `{"mode":"coder"}`,
		}),
	)

	id := uuid.NewString()
	ctx := context.Background()
	collect(t, env.svc.ProcessMessage(ctx, MessageInput{SessionID: id, Content: "hello"}))

	chunks := collect(t, env.svc.ProcessMessage(ctx, MessageInput{SessionID: id, Content: "now switch"}))

	errChunk := findChunk[*ErrorChunk](t, chunks)
	assert.Equal(t, ErrorKindInvalidAgent, errChunk.Kind)

	cur, err := env.contexts.CurrentAgent(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, agentcontext.CurrentAgentUniversal, cur)
	assert.Equal(t, 2, env.llm.Calls())
}

// ─────────────────────────────────────────────────────────────────────
// Tool calls and results
// ─────────────────────────────────────────────────────────────────────

func TestToolCallRoundTrip(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti,
		llm.ToolCallScript(testUsage, llm.ToolCall{
			ID:        "call_read",
			Name:      agent.ToolReadFile,
			Arguments: `{"path":"main.go"}`,
		}),
		llm.TextScript("main.go defines the entry point.", testUsage),
	)
	id := env.newSession(t)
	env.switchTo(t, id, agent.TypeAsk)
	ctx := context.Background()

	// 1. The message turn halts on the emitted call; no done chunk.
	chunks := collect(t, env.svc.ProcessMessage(ctx, MessageInput{
		SessionID: id,
		Content:   "what's in main.go?",
	}))
	require.Equal(t, []ChunkType{ChunkTypeToolCall}, chunkTypes(chunks))

	call := chunks[0].(*ToolCallChunk)
	assert.Equal(t, "call_read", call.CallID)
	assert.Equal(t, agent.ToolReadFile, call.ToolName)
	assert.Equal(t, map[string]any{"path": "main.go"}, call.Arguments)

	// 2. The result resumes the turn and the model concludes.
	chunks = collect(t, env.svc.ProcessToolResult(ctx, ToolResultInput{
		SessionID: id,
		CallID:    "call_read",
		ToolName:  agent.ToolReadFile,
		Result:    "package main\n\nfunc main() {}\n",
	}))
	require.Equal(t, []ChunkType{
		ChunkTypeAssistantMessage,
		ChunkTypeAssistantMessage,
		ChunkTypeDone,
	}, chunkTypes(chunks))

	// History: user, assistant+call, tool result, assistant answer.
	msgs := env.history(t, id)
	require.Len(t, msgs, 4)
	assert.Equal(t, message.RoleTool, msgs[2].Role)
	require.NotNil(t, msgs[2].ToolCallID)
	assert.Equal(t, "call_read", *msgs[2].ToolCallID)

	// The second request carried the paired call and result.
	reqs := env.llm.Requests()
	require.Len(t, reqs, 2)
	var sawCall, sawResult bool
	for _, m := range reqs[1].Messages {
		if m.Role == "assistant" && len(m.ToolCalls) == 1 && m.ToolCalls[0].ID == "call_read" {
			sawCall = true
		}
		if m.Role == "tool" && m.ToolCallID == "call_read" {
			sawResult = true
		}
	}
	assert.True(t, sawCall, "assistant call must reach the second prompt")
	assert.True(t, sawResult, "tool result must reach the second prompt")
}

func TestMultipleToolCalls_HeldUntilAllAnswered(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti,
		llm.ToolCallScript(testUsage,
			llm.ToolCall{ID: "call_a", Name: agent.ToolReadFile, Arguments: `{"path":"a.go"}`},
			llm.ToolCall{ID: "call_b", Name: agent.ToolReadFile, Arguments: `{"path":"b.go"}`},
		),
		llm.TextScript("Both files look consistent.", testUsage),
	)
	id := env.newSession(t)
	env.switchTo(t, id, agent.TypeAsk)
	ctx := context.Background()

	chunks := collect(t, env.svc.ProcessMessage(ctx, MessageInput{SessionID: id, Content: "compare a.go and b.go"}))
	require.Equal(t, []ChunkType{ChunkTypeToolCall, ChunkTypeToolCall}, chunkTypes(chunks))

	// First result: the turn stays parked.
	chunks = collect(t, env.svc.ProcessToolResult(ctx, ToolResultInput{
		SessionID: id, CallID: "call_a", ToolName: agent.ToolReadFile, Result: "package a",
	}))
	require.Equal(t, []ChunkType{ChunkTypeDone}, chunkTypes(chunks))
	assert.Equal(t, 1, env.llm.Calls())

	// Second result: the loop re-enters and concludes.
	chunks = collect(t, env.svc.ProcessToolResult(ctx, ToolResultInput{
		SessionID: id, CallID: "call_b", ToolName: agent.ToolReadFile, Result: "package b",
	}))
	assert.Equal(t, ChunkTypeDone, chunks[len(chunks)-1].chunkType())
	assert.Equal(t, 2, env.llm.Calls())
}

func TestProcessToolResult_OrphanRejected(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti)
	id := env.newSession(t)

	chunks := collect(t, env.svc.ProcessToolResult(context.Background(), ToolResultInput{
		SessionID: id,
		CallID:    "call_never_made",
		ToolName:  agent.ToolReadFile,
		Result:    "output",
	}))

	errChunk := findChunk[*ErrorChunk](t, chunks)
	assert.Equal(t, ErrorKindValidation, errChunk.Kind)
	assert.Empty(t, env.history(t, id), "orphan result must not be persisted")
}

func TestProcessToolResult_SessionNotFound(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti)

	chunks := collect(t, env.svc.ProcessToolResult(context.Background(), ToolResultInput{
		SessionID: uuid.NewString(),
		CallID:    "call_x",
		ToolName:  agent.ToolReadFile,
		Result:    "output",
	}))

	errChunk := findChunk[*ErrorChunk](t, chunks)
	assert.Equal(t, ErrorKindSessionNotFound, errChunk.Kind)
}

// ─────────────────────────────────────────────────────────────────────
// Tool gate
// ─────────────────────────────────────────────────────────────────────

func TestGateRejection_FeedsErrorBackToModel(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti,
		llm.ToolCallScript(testUsage, llm.ToolCall{
			ID:        "call_w",
			Name:      agent.ToolWriteFile,
			Arguments: `{"path":"notes.txt","content":"hi"}`,
		}),
		llm.TextScript("I can't modify files; here is the answer instead.", testUsage),
	)
	id := env.newSession(t)
	env.switchTo(t, id, agent.TypeAsk)

	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "write this down",
	}))

	require.Equal(t, []ChunkType{
		ChunkTypeError,
		ChunkTypeAssistantMessage,
		ChunkTypeAssistantMessage,
		ChunkTypeDone,
	}, chunkTypes(chunks))

	errChunk := chunks[0].(*ErrorChunk)
	assert.Equal(t, ErrorKindToolNotAllowed, errChunk.Kind)
	assert.False(t, errChunk.IsFinal, "gate rejections are recoverable")

	// The rejection is paired into history as the call's result.
	msgs := env.history(t, id)
	require.Len(t, msgs, 4)
	assert.Equal(t, message.RoleTool, msgs[2].Role)
	require.NotNil(t, msgs[2].ToolCallID)
	assert.Equal(t, "call_w", *msgs[2].ToolCallID)
	assert.Contains(t, msgs[2].Content, "not permitted")

	// No approval was created for the refused call.
	pending, err := env.approvals.ListPending(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Equal(t, 2, env.llm.Calls())
}

func TestGateRejection_ArchitectFileRestriction(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti,
		llm.ToolCallScript(testUsage, llm.ToolCall{
			ID:        "call_src",
			Name:      agent.ToolWriteFile,
			Arguments: `{"path":"pkg/server.go","content":"package pkg"}`,
		}),
		llm.TextScript("I'll capture the plan in a design doc instead.", testUsage),
	)
	id := env.newSession(t)
	env.switchTo(t, id, agent.TypeArchitect)

	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "sketch the fix",
	}))

	errChunk := findChunk[*ErrorChunk](t, chunks)
	assert.Equal(t, ErrorKindToolNotAllowed, errChunk.Kind)
	assert.Contains(t, errChunk.Detail, "markdown")
}

func TestMaxTurns_StopsGateLoop(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti,
		// The last script replays forever: the model never recovers.
		llm.ToolCallScript(testUsage, llm.ToolCall{
			ID:        "call_loop",
			Name:      agent.ToolWriteFile,
			Arguments: `{"path":"x.txt","content":"y"}`,
		}),
	)
	env.svc.cfg.MaxTurns = 2
	id := env.newSession(t)
	env.switchTo(t, id, agent.TypeAsk)

	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "persist this",
	}))

	last := chunks[len(chunks)-1]
	errChunk, ok := last.(*ErrorChunk)
	require.True(t, ok, "stream must end with an error chunk, got %v", chunkTypes(chunks))
	assert.Equal(t, ErrorKindMaxTurns, errChunk.Kind)
	assert.Equal(t, 2, env.llm.Calls())
}

// ─────────────────────────────────────────────────────────────────────
// Human-in-the-loop
// ─────────────────────────────────────────────────────────────────────

func hitlEnv(t *testing.T) (*testEnv, string) {
	t.Helper()
	env := newTestEnv(t, agent.ModeMulti,
		llm.ToolCallScript(testUsage, llm.ToolCall{
			ID:        "call_write",
			Name:      agent.ToolWriteFile,
			Arguments: `{"path":"main.go","content":"package main"}`,
		}),
		llm.TextScript("File written.", testUsage),
	)
	id := env.newSession(t)
	env.switchTo(t, id, agent.TypeCoder)
	return env, id
}

func TestHITL_ApproveReleasesCall(t *testing.T) {
	env, id := hitlEnv(t)
	ctx := context.Background()

	// 1. The destructive call pauses for approval.
	chunks := collect(t, env.svc.ProcessMessage(ctx, MessageInput{
		SessionID: id,
		Content:   "create main.go",
	}))
	require.Equal(t, []ChunkType{ChunkTypeHITLRequest}, chunkTypes(chunks))

	hitl := chunks[0].(*HITLRequestChunk)
	assert.Equal(t, "call_write", hitl.CallID)
	assert.Equal(t, map[string]any{"path": "main.go", "content": "package main"}, hitl.Arguments)

	pending, err := env.approvals.ListPending(ctx, id)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	// 2. Approval releases the call with the original arguments.
	chunks = collect(t, env.svc.ProcessHITLDecision(ctx, HITLDecisionInput{
		SessionID: id,
		CallID:    "call_write",
		Decision:  models.DecisionApprove,
	}))
	require.Equal(t, []ChunkType{ChunkTypeToolCall}, chunkTypes(chunks))

	call := chunks[0].(*ToolCallChunk)
	assert.Equal(t, "call_write", call.CallID)
	assert.Equal(t, map[string]any{"path": "main.go", "content": "package main"}, call.Arguments)

	pending, err = env.approvals.ListPending(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, pending, "resolved approvals must be deleted")

	// 3. The execution result closes the turn.
	chunks = collect(t, env.svc.ProcessToolResult(ctx, ToolResultInput{
		SessionID: id, CallID: "call_write", ToolName: agent.ToolWriteFile, Result: "ok",
	}))
	assert.Equal(t, ChunkTypeDone, chunks[len(chunks)-1].chunkType())
}

func TestHITL_EditReleasesModifiedArguments(t *testing.T) {
	env, id := hitlEnv(t)
	ctx := context.Background()

	collect(t, env.svc.ProcessMessage(ctx, MessageInput{SessionID: id, Content: "create main.go"}))

	modified := map[string]any{"path": "cmd/main.go", "content": "package main"}
	chunks := collect(t, env.svc.ProcessHITLDecision(ctx, HITLDecisionInput{
		SessionID:         id,
		CallID:            "call_write",
		Decision:          models.DecisionEdit,
		ModifiedArguments: modified,
	}))

	call := findChunk[*ToolCallChunk](t, chunks)
	assert.Equal(t, modified, call.Arguments)
}

func TestHITL_RejectFeedsFeedbackToModel(t *testing.T) {
	env, id := hitlEnv(t)
	ctx := context.Background()

	collect(t, env.svc.ProcessMessage(ctx, MessageInput{SessionID: id, Content: "create main.go"}))

	chunks := collect(t, env.svc.ProcessHITLDecision(ctx, HITLDecisionInput{
		SessionID: id,
		CallID:    "call_write",
		Decision:  models.DecisionReject,
		Feedback:  "wrong directory, use cmd/",
	}))

	// The rejection re-enters the loop and the model answers in text.
	require.Equal(t, []ChunkType{
		ChunkTypeAssistantMessage,
		ChunkTypeAssistantMessage,
		ChunkTypeDone,
	}, chunkTypes(chunks))
	assert.Equal(t, 2, env.llm.Calls())

	// The refusal became the call's tool result.
	msgs := env.history(t, id)
	var rejection *ent.Message
	for _, m := range msgs {
		if m.Role == message.RoleTool {
			rejection = m
		}
	}
	require.NotNil(t, rejection)
	assert.Contains(t, rejection.Content, "rejected")
	assert.Contains(t, rejection.Content, "wrong directory, use cmd/")
}

func TestHITL_SecondDecisionIsNoOp(t *testing.T) {
	env, id := hitlEnv(t)
	ctx := context.Background()

	collect(t, env.svc.ProcessMessage(ctx, MessageInput{SessionID: id, Content: "create main.go"}))
	collect(t, env.svc.ProcessHITLDecision(ctx, HITLDecisionInput{
		SessionID: id, CallID: "call_write", Decision: models.DecisionApprove,
	}))

	chunks := collect(t, env.svc.ProcessHITLDecision(ctx, HITLDecisionInput{
		SessionID: id, CallID: "call_write", Decision: models.DecisionReject,
	}))
	require.Equal(t, []ChunkType{ChunkTypeDone}, chunkTypes(chunks))
	assert.Equal(t, 1, env.llm.Calls(), "a replayed decision must not re-run the model")
}

func TestProcessMessage_ReplaysPendingApprovals(t *testing.T) {
	env, id := hitlEnv(t)
	ctx := context.Background()

	collect(t, env.svc.ProcessMessage(ctx, MessageInput{SessionID: id, Content: "create main.go"}))
	require.Equal(t, 1, env.llm.Calls())

	// A reconnecting client sends another message while the approval is
	// still open: it gets the outstanding request back, not a turn.
	chunks := collect(t, env.svc.ProcessMessage(ctx, MessageInput{
		SessionID: id,
		Content:   "are you still there?",
	}))

	require.Equal(t, []ChunkType{ChunkTypeHITLRequest}, chunkTypes(chunks))
	assert.Equal(t, "call_write", chunks[0].(*HITLRequestChunk).CallID)
	assert.Equal(t, 1, env.llm.Calls(), "no turn may start while approvals are pending")

	// The interim user message is still on the record.
	msgs := env.history(t, id)
	assert.Equal(t, "are you still there?", msgs[len(msgs)-1].Content)
}

// ─────────────────────────────────────────────────────────────────────
// Explicit switch endpoint
// ─────────────────────────────────────────────────────────────────────

func TestProcessSwitchAgent(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti)
	id := env.newSession(t)

	chunks := collect(t, env.svc.ProcessSwitchAgent(context.Background(), SwitchInput{
		SessionID: id,
		Agent:     "architect",
		Reason:    "design review",
	}))

	require.Equal(t, []ChunkType{ChunkTypeSwitchAgent, ChunkTypeDone}, chunkTypes(chunks))
	sw := chunks[0].(*SwitchAgentChunk)
	assert.Equal(t, "orchestrator", sw.FromAgent)
	assert.Equal(t, "architect", sw.ToAgent)

	history, err := env.contexts.GetSwitchHistory(context.Background(), id, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestProcessSwitchAgent_SameAgentIsNoOp(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti)
	id := env.newSession(t)

	chunks := collect(t, env.svc.ProcessSwitchAgent(context.Background(), SwitchInput{
		SessionID: id,
		Agent:     "orchestrator",
	}))

	require.Equal(t, []ChunkType{ChunkTypeDone}, chunkTypes(chunks))
	history, err := env.contexts.GetSwitchHistory(context.Background(), id, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestProcessSwitchAgent_UnknownAgent(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti)
	id := env.newSession(t)

	chunks := collect(t, env.svc.ProcessSwitchAgent(context.Background(), SwitchInput{
		SessionID: id,
		Agent:     "manager",
	}))

	errChunk := findChunk[*ErrorChunk](t, chunks)
	assert.Equal(t, ErrorKindValidation, errChunk.Kind)
}

func TestProcessSwitchAgent_WithContentRunsTurn(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti, llm.TextScript("Here is the design review.", testUsage))
	id := env.newSession(t)

	chunks := collect(t, env.svc.ProcessSwitchAgent(context.Background(), SwitchInput{
		SessionID: id,
		Agent:     "architect",
		Content:   "review the storage layout",
	}))

	// The handover message starts the new agent's first turn.
	require.Equal(t, []ChunkType{
		ChunkTypeSwitchAgent,
		ChunkTypeAssistantMessage,
		ChunkTypeAssistantMessage,
		ChunkTypeDone,
	}, chunkTypes(chunks))

	reqs := env.llm.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, string(agent.TypeArchitect), reqs[0].Agent)

	msgs := env.history(t, id)
	require.Len(t, msgs, 2)
	assert.Equal(t, "review the storage layout", msgs[0].Content)
	assert.Equal(t, message.RoleAssistant, msgs[1].Role)
}

func TestProcessSwitchAgent_SameAgentWithContentRunsTurn(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti, llm.TextScript("Still me.", testUsage))
	id := env.newSession(t)

	chunks := collect(t, env.svc.ProcessSwitchAgent(context.Background(), SwitchInput{
		SessionID: id,
		Agent:     "orchestrator",
		Content:   "carry on",
	}))

	// No switch is recorded, but the message still runs a turn.
	require.Equal(t, []ChunkType{
		ChunkTypeAssistantMessage,
		ChunkTypeAssistantMessage,
		ChunkTypeDone,
	}, chunkTypes(chunks))

	history, err := env.contexts.GetSwitchHistory(context.Background(), id, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

// ─────────────────────────────────────────────────────────────────────
// Failure modes
// ─────────────────────────────────────────────────────────────────────

func TestStreamError_DiscardsPartialText(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti,
		llm.ErrorScript("The answer is", &llm.Error{
			Kind:       llm.ErrKindTransient,
			Detail:     "bad gateway",
			StatusCode: 502,
		}),
	)
	id := env.newSession(t)
	env.switchTo(t, id, agent.TypeAsk)

	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "what is the answer?",
	}))

	// Partial text streamed before the failure, then a final error.
	require.Equal(t, []ChunkType{ChunkTypeAssistantMessage, ChunkTypeError}, chunkTypes(chunks))
	errChunk := chunks[1].(*ErrorChunk)
	assert.Equal(t, ErrorKindLLMTransient, errChunk.Kind)
	assert.True(t, errChunk.IsFinal)

	// Only the user message was persisted.
	msgs := env.history(t, id)
	require.Len(t, msgs, 1)
	assert.Equal(t, message.RoleUser, msgs[0].Role)
}

func TestCircuitOpen_SurfacesAsErrorChunk(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti)
	env.llm.FailWith(&llm.BreakerOpenError{RetryAfter: 42 * time.Second})
	id := env.newSession(t)

	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "hello?",
	}))

	errChunk := findChunk[*ErrorChunk](t, chunks)
	assert.Equal(t, ErrorKindCircuitOpen, errChunk.Kind)
	assert.True(t, errChunk.IsFinal)
}

func TestTruncatedAnswer_MarkedInMetadata(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti, llm.TruncatedScript("An extremely long answer that", testUsage))
	id := env.newSession(t)
	env.switchTo(t, id, agent.TypeAsk)

	chunks := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "explain everything",
	}))
	assert.Equal(t, ChunkTypeDone, chunks[len(chunks)-1].chunkType())

	msgs := env.history(t, id)
	last := msgs[len(msgs)-1]
	assert.Equal(t, message.RoleAssistant, last.Role)
	assert.Equal(t, true, last.MessageMetadata["truncated"])
}

func TestCancelledContext_ClosesStreamAndReleasesLock(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti, llm.TextScript("late", testUsage))
	id := env.newSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	chunks := collect(t, env.svc.ProcessMessage(ctx, MessageInput{SessionID: id, Content: "hi"}))
	// The channel must close promptly; the error chunk may or may not
	// have been deliverable before cancellation was observed.
	for _, c := range chunks {
		if e, ok := c.(*ErrorChunk); ok {
			assert.Equal(t, ErrorKindCanceled, e.Kind)
		}
	}

	// The lock is free: a fresh call on the same session succeeds.
	fresh := collect(t, env.svc.ProcessMessage(context.Background(), MessageInput{
		SessionID: id,
		Content:   "still works?",
	}))
	assert.Equal(t, ChunkTypeDone, fresh[len(fresh)-1].chunkType())
}

// ─────────────────────────────────────────────────────────────────────
// Serialization
// ─────────────────────────────────────────────────────────────────────

func TestConcurrentMessages_SerializedPerSession(t *testing.T) {
	env := newTestEnv(t, agent.ModeMulti, llm.TextScript("ack", testUsage))
	id := env.newSession(t)
	env.switchTo(t, id, agent.TypeAsk)

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ch := env.svc.ProcessMessage(context.Background(), MessageInput{
				SessionID: id,
				Content:   fmt.Sprintf("message %d", i),
			})
			for range ch {
			}
		}(i)
	}
	wg.Wait()

	// Every interleaving produces a dense, gap-free sequence.
	msgs := env.history(t, id)
	require.Len(t, msgs, 2*n)
	for i, m := range msgs {
		assert.Equal(t, i+1, m.Sequence)
	}
}
