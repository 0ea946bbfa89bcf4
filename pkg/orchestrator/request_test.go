package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/ent"
	"github.com/switchyard-ai/switchyard/ent/message"
	"github.com/switchyard-ai/switchyard/pkg/models"
)

func userMsg(content string) *ent.Message {
	return &ent.Message{Role: message.RoleUser, Content: content}
}

func assistantMsg(content string, calls ...models.ToolCall) *ent.Message {
	return &ent.Message{
		Role:      message.RoleAssistant,
		Content:   content,
		ToolCalls: models.ToolCallsToJSON(calls),
	}
}

func toolMsg(callID, toolName, content string) *ent.Message {
	return &ent.Message{
		Role:       message.RoleTool,
		Content:    content,
		ToolCallID: &callID,
		ToolName:   &toolName,
	}
}

func TestRenderHistory_PlainConversation(t *testing.T) {
	history := []*ent.Message{
		userMsg("hello"),
		assistantMsg("hi there"),
		userMsg("what's in main.go?"),
	}

	out := renderHistory(history)
	require.Len(t, out, 3)
	assert.Equal(t, "user", out[0].Role)
	assert.Equal(t, "assistant", out[1].Role)
	assert.Equal(t, "hi there", out[1].Content)
	assert.Empty(t, out[1].ToolCalls)
}

func TestRenderHistory_KeepsAnsweredCalls(t *testing.T) {
	history := []*ent.Message{
		userMsg("read main.go"),
		assistantMsg("", models.ToolCall{ID: "call_1", Name: "read_file", Arguments: `{"path":"main.go"}`}),
		toolMsg("call_1", "read_file", "package main"),
	}

	out := renderHistory(history)
	require.Len(t, out, 3)

	require.Len(t, out[1].ToolCalls, 1)
	assert.Equal(t, "call_1", out[1].ToolCalls[0].ID)
	assert.Equal(t, `{"path":"main.go"}`, out[1].ToolCalls[0].Arguments)

	assert.Equal(t, "tool", out[2].Role)
	assert.Equal(t, "call_1", out[2].ToolCallID)
	assert.Equal(t, "read_file", out[2].ToolName)
}

func TestRenderHistory_DropsOrphanToolResult(t *testing.T) {
	// The assistant message that made call_0 fell outside the window.
	history := []*ent.Message{
		toolMsg("call_0", "read_file", "stale result"),
		userMsg("continue"),
	}

	out := renderHistory(history)
	require.Len(t, out, 1)
	assert.Equal(t, "user", out[0].Role)
}

func TestRenderHistory_FoldsUnansweredCallIntoText(t *testing.T) {
	history := []*ent.Message{
		userMsg("list files"),
		assistantMsg("Let me look.", models.ToolCall{ID: "call_9", Name: "list_files", Arguments: `{}`}),
		userMsg("never mind, just tell me about the README"),
	}

	out := renderHistory(history)
	require.Len(t, out, 3)
	assert.Empty(t, out[1].ToolCalls, "abandoned call must not reach the wire")
	assert.Contains(t, out[1].Content, "Let me look.")
	assert.Contains(t, out[1].Content, "list_files")
}

func TestRenderHistory_SwitchModeBecomesText(t *testing.T) {
	history := []*ent.Message{
		userMsg("fix the bug"),
		assistantMsg("", models.ToolCall{
			ID:        "call_s",
			Name:      "switch_mode",
			Arguments: `{"mode":"coder","reason":"implementation task"}`,
		}),
		userMsg("thanks"),
	}

	out := renderHistory(history)
	require.Len(t, out, 3)
	assert.Empty(t, out[1].ToolCalls)
	assert.Contains(t, out[1].Content, "coder")
	assert.Contains(t, out[1].Content, "implementation task")
}

func TestRenderHistory_MixedAnsweredAndAbandoned(t *testing.T) {
	history := []*ent.Message{
		assistantMsg("",
			models.ToolCall{ID: "call_a", Name: "read_file", Arguments: `{"path":"a.go"}`},
			models.ToolCall{ID: "call_b", Name: "read_file", Arguments: `{"path":"b.go"}`},
		),
		toolMsg("call_a", "read_file", "contents of a"),
		userMsg("go on"),
	}

	out := renderHistory(history)
	require.Len(t, out, 3)

	require.Len(t, out[0].ToolCalls, 1)
	assert.Equal(t, "call_a", out[0].ToolCalls[0].ID)
	assert.Contains(t, out[0].Content, "read_file")

	assert.Equal(t, "tool", out[1].Role)
	assert.Equal(t, "call_a", out[1].ToolCallID)
}

func TestSwitchNote(t *testing.T) {
	assert.Equal(t, "[requested an agent switch]", switchNote(""))
	assert.Equal(t, "[switched to the debug agent]", switchNote(`{"mode":"debug"}`))
	assert.Equal(t,
		"[switched to the coder agent: needs implementation]",
		switchNote(`{"mode":"coder","reason":"needs implementation"}`))
	// Malformed arguments degrade to the generic note.
	assert.Equal(t, "[requested an agent switch]", switchNote(`{"mode":`))
}
