package models

import (
	"github.com/switchyard-ai/switchyard/ent/message"
)

// ToolCall is one tool invocation requested by the LLM. Arguments holds the
// raw JSON argument string exactly as the model produced it.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// AddMessageRequest contains fields for appending a message to a session
type AddMessageRequest struct {
	SessionID  string         `json:"session_id"`
	Role       message.Role   `json:"role"`
	Content    string         `json:"content"`
	ToolName   string         `json:"tool_name,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
	ToolCalls  []ToolCall     `json:"tool_calls,omitempty"`
	TokenCount *int           `json:"token_count,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// ToolCallsToJSON converts tool calls to the generic shape stored in the
// messages.tool_calls jsonb column.
func ToolCallsToJSON(calls []ToolCall) []map[string]interface{} {
	if len(calls) == 0 {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(calls))
	for _, tc := range calls {
		out = append(out, map[string]interface{}{
			"id":        tc.ID,
			"name":      tc.Name,
			"arguments": tc.Arguments,
		})
	}
	return out
}

// ToolCallsFromJSON is the inverse of ToolCallsToJSON. Unknown keys are
// ignored; missing keys come back as empty strings.
func ToolCallsFromJSON(raw []map[string]interface{}) []ToolCall {
	if len(raw) == 0 {
		return nil
	}
	out := make([]ToolCall, 0, len(raw))
	for _, m := range raw {
		tc := ToolCall{}
		if v, ok := m["id"].(string); ok {
			tc.ID = v
		}
		if v, ok := m["name"].(string); ok {
			tc.Name = v
		}
		if v, ok := m["arguments"].(string); ok {
			tc.Arguments = v
		}
		out = append(out, tc)
	}
	return out
}
