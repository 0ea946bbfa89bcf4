package orchestrator

import "encoding/json"

// ChunkType identifies the kind of stream chunk sent to clients.
type ChunkType string

const (
	ChunkTypeSessionInfo      ChunkType = "session_info"
	ChunkTypeAssistantMessage ChunkType = "assistant_message"
	ChunkTypeToolCall         ChunkType = "tool_call"
	ChunkTypeHITLRequest      ChunkType = "hitl_request"
	ChunkTypeSwitchAgent      ChunkType = "switch_agent"
	ChunkTypeError            ChunkType = "error"
	ChunkTypeDone             ChunkType = "done"
)

// Chunk is the interface for all stream chunk types. Each chunk
// marshals to a flat JSON object carrying a "type" discriminator, which
// is the shape written to the wire by the streaming endpoint.
type Chunk interface {
	chunkType() ChunkType
}

// SessionInfoChunk announces the id of a session created by this call.
// It is always the first chunk of the stream that created the session.
type SessionInfoChunk struct {
	SessionID string `json:"session_id"`
}

// AssistantMessageChunk carries one delta of assistant text. A chunk
// with IsFinal set closes the assistant message; its Content is empty
// because all text was already streamed.
type AssistantMessageChunk struct {
	Content string `json:"content"`
	IsFinal bool   `json:"is_final,omitempty"`
}

// ToolCallChunk instructs the client to execute a tool and report the
// result back with a tool_result message.
type ToolCallChunk struct {
	CallID    string         `json:"call_id"`
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// HITLRequestChunk asks the human to approve, edit, or reject a
// destructive tool call before it is released for execution.
type HITLRequestChunk struct {
	CallID    string         `json:"call_id"`
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// SwitchAgentChunk announces that the session changed hands.
type SwitchAgentChunk struct {
	FromAgent string `json:"from_agent"`
	ToAgent   string `json:"to_agent"`
	Reason    string `json:"reason,omitempty"`
}

// ErrorChunk reports a failure. IsFinal distinguishes errors that end
// the stream from recoverable ones (a rejected tool call the model can
// correct on its next turn).
type ErrorChunk struct {
	Kind    string `json:"kind"`
	Detail  string `json:"detail,omitempty"`
	IsFinal bool   `json:"is_final,omitempty"`
}

// DoneChunk closes a completed stream.
type DoneChunk struct{}

func (c *SessionInfoChunk) chunkType() ChunkType      { return ChunkTypeSessionInfo }
func (c *AssistantMessageChunk) chunkType() ChunkType { return ChunkTypeAssistantMessage }
func (c *ToolCallChunk) chunkType() ChunkType         { return ChunkTypeToolCall }
func (c *HITLRequestChunk) chunkType() ChunkType      { return ChunkTypeHITLRequest }
func (c *SwitchAgentChunk) chunkType() ChunkType      { return ChunkTypeSwitchAgent }
func (c *ErrorChunk) chunkType() ChunkType            { return ChunkTypeError }
func (c *DoneChunk) chunkType() ChunkType             { return ChunkTypeDone }

// envelope flattens a chunk into its wire object with the type field
// first. The alias types below keep json.Marshal from recursing into
// the custom marshalers.

func (c *SessionInfoChunk) MarshalJSON() ([]byte, error) {
	type alias SessionInfoChunk
	return json.Marshal(struct {
		Type ChunkType `json:"type"`
		*alias
	}{ChunkTypeSessionInfo, (*alias)(c)})
}

func (c *AssistantMessageChunk) MarshalJSON() ([]byte, error) {
	type alias AssistantMessageChunk
	return json.Marshal(struct {
		Type ChunkType `json:"type"`
		*alias
	}{ChunkTypeAssistantMessage, (*alias)(c)})
}

func (c *ToolCallChunk) MarshalJSON() ([]byte, error) {
	type alias ToolCallChunk
	return json.Marshal(struct {
		Type ChunkType `json:"type"`
		*alias
	}{ChunkTypeToolCall, (*alias)(c)})
}

func (c *HITLRequestChunk) MarshalJSON() ([]byte, error) {
	type alias HITLRequestChunk
	return json.Marshal(struct {
		Type ChunkType `json:"type"`
		*alias
	}{ChunkTypeHITLRequest, (*alias)(c)})
}

func (c *SwitchAgentChunk) MarshalJSON() ([]byte, error) {
	type alias SwitchAgentChunk
	return json.Marshal(struct {
		Type ChunkType `json:"type"`
		*alias
	}{ChunkTypeSwitchAgent, (*alias)(c)})
}

func (c *ErrorChunk) MarshalJSON() ([]byte, error) {
	type alias ErrorChunk
	return json.Marshal(struct {
		Type ChunkType `json:"type"`
		*alias
	}{ChunkTypeError, (*alias)(c)})
}

func (c *DoneChunk) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type ChunkType `json:"type"`
	}{ChunkTypeDone})
}
