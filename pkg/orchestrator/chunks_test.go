package orchestrator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkWireEncoding(t *testing.T) {
	tests := []struct {
		name  string
		chunk Chunk
		want  string
	}{
		{
			name:  "session info",
			chunk: &SessionInfoChunk{SessionID: "abc-123"},
			want:  `{"type":"session_info","session_id":"abc-123"}`,
		},
		{
			name:  "assistant delta",
			chunk: &AssistantMessageChunk{Content: "Hel"},
			want:  `{"type":"assistant_message","content":"Hel"}`,
		},
		{
			name:  "assistant final",
			chunk: &AssistantMessageChunk{IsFinal: true},
			want:  `{"type":"assistant_message","content":"","is_final":true}`,
		},
		{
			name: "tool call",
			chunk: &ToolCallChunk{
				CallID:    "call_1",
				ToolName:  "read_file",
				Arguments: map[string]any{"path": "main.go"},
			},
			want: `{"type":"tool_call","call_id":"call_1","tool_name":"read_file","arguments":{"path":"main.go"}}`,
		},
		{
			name: "hitl request",
			chunk: &HITLRequestChunk{
				CallID:    "call_2",
				ToolName:  "write_file",
				Arguments: map[string]any{"path": "x.go", "content": "package x"},
			},
			want: `{"type":"hitl_request","call_id":"call_2","tool_name":"write_file","arguments":{"path":"x.go","content":"package x"}}`,
		},
		{
			name:  "switch agent",
			chunk: &SwitchAgentChunk{FromAgent: "orchestrator", ToAgent: "coder", Reason: "code task"},
			want:  `{"type":"switch_agent","from_agent":"orchestrator","to_agent":"coder","reason":"code task"}`,
		},
		{
			name:  "error",
			chunk: &ErrorChunk{Kind: "circuit_open", Detail: "retry in 60s", IsFinal: true},
			want:  `{"type":"error","kind":"circuit_open","detail":"retry in 60s","is_final":true}`,
		},
		{
			name:  "done",
			chunk: &DoneChunk{},
			want:  `{"type":"done"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.chunk)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestChunkDecodable(t *testing.T) {
	// Clients dispatch on the type field; make sure it round-trips.
	data, err := json.Marshal(&ToolCallChunk{CallID: "c", ToolName: "read_file"})
	require.NoError(t, err)

	var envelope struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(data, &envelope))
	assert.Equal(t, "tool_call", envelope.Type)
}
