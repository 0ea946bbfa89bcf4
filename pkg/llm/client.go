// Package llm provides the streaming driver for OpenAI-compatible chat
// completion APIs, plus the retry and circuit-breaker policies that guard
// provider calls.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Client is the interface for streaming LLM completions.
type Client interface {
	// Stream sends a conversation to the model and returns a stream of
	// chunks. The returned channel is closed after the terminal DoneChunk.
	// Mid-stream failures are delivered as DoneChunk{Reason: FinishError}.
	Stream(ctx context.Context, req *Request) (<-chan Chunk, error)

	// Close releases the underlying transport.
	Close() error
}

// Request is one chat completion call.
type Request struct {
	Model       string
	Messages    []Message
	Tools       []ToolDefinition // nil = no tools
	Temperature *float64
	MaxTokens   *int

	// SessionID and Agent annotate instrumentation events; the wire
	// request does not carry them.
	SessionID string
	Agent     string
}

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role       string // "system", "user", "assistant", "tool"
	Content    string
	ToolCalls  []ToolCall // for assistant messages
	ToolCallID string     // for tool result messages
	ToolName   string     // for tool result messages
}

// ToolDefinition describes a tool offered to the LLM.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string // JSON Schema
}

// ToolCall is the LLM's request to invoke a tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText          ChunkType = "text"
	ChunkTypeToolCallStart ChunkType = "tool_call_start"
	ChunkTypeToolCallArgs  ChunkType = "tool_call_args"
	ChunkTypeToolCallEnd   ChunkType = "tool_call_end"
	ChunkTypeDone          ChunkType = "done"
)

// FinishReason closes a stream.
type FinishReason string

const (
	FinishStop      FinishReason = "stop"
	FinishLength    FinishReason = "length"
	FinishToolCalls FinishReason = "tool_calls"
	FinishError     FinishReason = "error"
)

// Usage reports token consumption for one call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// TextChunk is a delta of the model's text response.
type TextChunk struct{ Content string }

// ToolCallStartChunk opens a streaming tool call at a wire index.
type ToolCallStartChunk struct {
	Index int
	ID    string
	Name  string
}

// ToolCallArgsChunk carries an argument JSON fragment for the call at Index.
type ToolCallArgsChunk struct {
	Index int
	Delta string
}

// ToolCallEndChunk closes the call at Index.
type ToolCallEndChunk struct{ Index int }

// DoneChunk terminates the stream. Err is set when Reason is FinishError.
type DoneChunk struct {
	Reason FinishReason
	Usage  *Usage
	Err    error
}

func (c *TextChunk) chunkType() ChunkType          { return ChunkTypeText }
func (c *ToolCallStartChunk) chunkType() ChunkType { return ChunkTypeToolCallStart }
func (c *ToolCallArgsChunk) chunkType() ChunkType  { return ChunkTypeToolCallArgs }
func (c *ToolCallEndChunk) chunkType() ChunkType   { return ChunkTypeToolCallEnd }
func (c *DoneChunk) chunkType() ChunkType          { return ChunkTypeDone }

// ErrorKind classifies provider failures for retry decisions and the error
// taxonomy surfaced to clients.
type ErrorKind string

const (
	ErrKindTransient ErrorKind = "transient"
	ErrKindPermanent ErrorKind = "permanent"
)

// Error is a classified provider failure.
type Error struct {
	Kind       ErrorKind
	Detail     string
	StatusCode int // 0 when the failure happened below HTTP
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("llm %s error (status %d): %s", e.Kind, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("llm %s error: %s", e.Kind, e.Detail)
}

// IsRetryable reports whether err is a transient provider failure worth
// another attempt.
func IsRetryable(err error) bool {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind == ErrKindTransient
	}
	return false
}

// classifyStatus maps an HTTP status to an error kind: 429 and the gateway
// 5xx statuses are transient, everything else fails immediately.
func classifyStatus(status int) ErrorKind {
	switch status {
	case 429, 502, 503, 504:
		return ErrKindTransient
	default:
		return ErrKindPermanent
	}
}

// Accumulator assembles the logical result of one stream: the full text,
// tool calls reassembled by wire index, usage, and finish reason.
type Accumulator struct {
	text    strings.Builder
	order   []int
	calls   map[int]*ToolCall
	usage   *Usage
	reason  FinishReason
	callErr error
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{calls: make(map[int]*ToolCall)}
}

// Add folds one chunk into the accumulated state.
func (a *Accumulator) Add(chunk Chunk) {
	switch c := chunk.(type) {
	case *TextChunk:
		a.text.WriteString(c.Content)
	case *ToolCallStartChunk:
		if _, ok := a.calls[c.Index]; !ok {
			a.order = append(a.order, c.Index)
			a.calls[c.Index] = &ToolCall{}
		}
		tc := a.calls[c.Index]
		if c.ID != "" {
			tc.ID = c.ID
		}
		if c.Name != "" {
			tc.Name = c.Name
		}
	case *ToolCallArgsChunk:
		if tc, ok := a.calls[c.Index]; ok {
			tc.Arguments += c.Delta
		}
	case *ToolCallEndChunk:
		// Index bookkeeping only; the call is already assembled.
	case *DoneChunk:
		a.reason = c.Reason
		a.usage = c.Usage
		a.callErr = c.Err
	}
}

// Text returns the accumulated assistant text.
func (a *Accumulator) Text() string { return a.text.String() }

// ToolCalls returns the reassembled calls in wire-index order.
func (a *Accumulator) ToolCalls() []ToolCall {
	out := make([]ToolCall, 0, len(a.order))
	for _, idx := range a.order {
		out = append(out, *a.calls[idx])
	}
	return out
}

// Reason returns the finish reason, or "" while the stream is open.
func (a *Accumulator) Reason() FinishReason { return a.reason }

// Usage returns the reported token usage, or nil when the provider sent none.
func (a *Accumulator) Usage() *Usage { return a.usage }

// Err returns the terminal error for FinishError streams.
func (a *Accumulator) Err() error { return a.callErr }
