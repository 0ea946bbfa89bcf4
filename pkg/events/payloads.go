package events

// Typed payloads for each event variant. They are attached to Event.Payload
// and serialized as-is by the audit logger, so field names are part of the
// audit record format.

// SessionCreatedPayload accompanies EventSessionCreated.
type SessionCreatedPayload struct {
	UserID string `json:"user_id"`
}

// MessageAppendedPayload accompanies EventMessageAppended. Content itself is
// not carried on the bus; ContentLength is enough for metrics and audit.
type MessageAppendedPayload struct {
	MessageID     string `json:"message_id"`
	Role          string `json:"role"`
	Sequence      int    `json:"sequence"`
	ContentLength int    `json:"content_length"`
	ToolName      string `json:"tool_name,omitempty"`
	ToolCallID    string `json:"tool_call_id,omitempty"`
	ToolCallCount int    `json:"tool_call_count,omitempty"`
}

// AgentSwitchedPayload accompanies EventAgentSwitched.
type AgentSwitchedPayload struct {
	FromAgent   string `json:"from_agent"`
	ToAgent     string `json:"to_agent"`
	Reason      string `json:"reason,omitempty"`
	SwitchCount int    `json:"switch_count"`
}

// ToolCallEmittedPayload accompanies EventToolCallEmitted.
type ToolCallEmittedPayload struct {
	CallID    string `json:"call_id"`
	ToolName  string `json:"tool_name"`
	Agent     string `json:"agent"`
	Arguments string `json:"arguments,omitempty"`
}

// ToolResultReceivedPayload accompanies EventToolResultReceived.
type ToolResultReceivedPayload struct {
	CallID       string `json:"call_id"`
	ToolName     string `json:"tool_name"`
	ResultLength int    `json:"result_length"`
	IsError      bool   `json:"is_error,omitempty"`
}

// HITLRequestedPayload accompanies EventHITLRequested.
type HITLRequestedPayload struct {
	CallID   string `json:"call_id"`
	ToolName string `json:"tool_name"`
	Agent    string `json:"agent,omitempty"`
}

// HITLDecidedPayload accompanies EventHITLDecided.
type HITLDecidedPayload struct {
	CallID   string `json:"call_id"`
	ToolName string `json:"tool_name"`
	Decision string `json:"decision"`
	Feedback string `json:"feedback,omitempty"`
}

// LLMRequestStartedPayload accompanies EventLLMRequestStarted.
type LLMRequestStartedPayload struct {
	Model        string `json:"model"`
	Agent        string `json:"agent,omitempty"`
	MessageCount int    `json:"message_count"`
	ToolCount    int    `json:"tool_count"`
}

// LLMRequestCompletedPayload accompanies EventLLMRequestCompleted.
type LLMRequestCompletedPayload struct {
	Model            string `json:"model"`
	Agent            string `json:"agent,omitempty"`
	DurationMS       int64  `json:"duration_ms"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	TotalTokens      int    `json:"total_tokens"`
	ToolCallCount    int    `json:"tool_call_count,omitempty"`
}

// LLMRequestFailedPayload accompanies EventLLMRequestFailed.
type LLMRequestFailedPayload struct {
	Model      string `json:"model"`
	Agent      string `json:"agent,omitempty"`
	DurationMS int64  `json:"duration_ms"`
	ErrorKind  string `json:"error_kind"`
	Detail     string `json:"detail,omitempty"`
	Attempts   int    `json:"attempts,omitempty"`
}

// SystemStartupPayload accompanies EventSystemStartup.
type SystemStartupPayload struct {
	Version string `json:"version"`
	Mode    string `json:"mode"`
}

// SystemShutdownPayload accompanies EventSystemShutdown.
type SystemShutdownPayload struct {
	Reason string `json:"reason,omitempty"`
}
