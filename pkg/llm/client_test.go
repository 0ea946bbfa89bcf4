package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulator_TextOnly(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(&TextChunk{Content: "Hello, "})
	acc.Add(&TextChunk{Content: "world"})
	acc.Add(&DoneChunk{Reason: FinishStop, Usage: &Usage{PromptTokens: 10, CompletionTokens: 2, TotalTokens: 12}})

	assert.Equal(t, "Hello, world", acc.Text())
	assert.Empty(t, acc.ToolCalls())
	assert.Equal(t, FinishStop, acc.Reason())
	require.NotNil(t, acc.Usage())
	assert.Equal(t, 12, acc.Usage().TotalTokens)
	assert.NoError(t, acc.Err())
}

func TestAccumulator_ReassemblesInterleavedToolCalls(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(&ToolCallStartChunk{Index: 0, ID: "call_a", Name: "read_file"})
	acc.Add(&ToolCallStartChunk{Index: 1, ID: "call_b", Name: "list_files"})
	acc.Add(&ToolCallArgsChunk{Index: 0, Delta: `{"path":`})
	acc.Add(&ToolCallArgsChunk{Index: 1, Delta: `{"dir":"src"}`})
	acc.Add(&ToolCallArgsChunk{Index: 0, Delta: `"main.go"}`})
	acc.Add(&ToolCallEndChunk{Index: 0})
	acc.Add(&ToolCallEndChunk{Index: 1})
	acc.Add(&DoneChunk{Reason: FinishToolCalls})

	calls := acc.ToolCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, ToolCall{ID: "call_a", Name: "read_file", Arguments: `{"path":"main.go"}`}, calls[0])
	assert.Equal(t, ToolCall{ID: "call_b", Name: "list_files", Arguments: `{"dir":"src"}`}, calls[1])
	assert.Equal(t, FinishToolCalls, acc.Reason())
}

func TestAccumulator_ErrorStream(t *testing.T) {
	cause := &Error{Kind: ErrKindTransient, Detail: "connection reset"}

	acc := NewAccumulator()
	acc.Add(&TextChunk{Content: "partial"})
	acc.Add(&DoneChunk{Reason: FinishError, Err: cause})

	assert.Equal(t, "partial", acc.Text())
	assert.Equal(t, FinishError, acc.Reason())
	assert.Equal(t, cause, acc.Err())
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"transient", &Error{Kind: ErrKindTransient, Detail: "overloaded", StatusCode: 503}, true},
		{"permanent", &Error{Kind: ErrKindPermanent, Detail: "bad request", StatusCode: 400}, false},
		{"wrapped transient", &ExhaustedError{Attempts: 3, LastError: &Error{Kind: ErrKindTransient}}, true},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, ErrKindTransient, classifyStatus(429))
	assert.Equal(t, ErrKindTransient, classifyStatus(502))
	assert.Equal(t, ErrKindTransient, classifyStatus(503))
	assert.Equal(t, ErrKindTransient, classifyStatus(504))
	assert.Equal(t, ErrKindPermanent, classifyStatus(400))
	assert.Equal(t, ErrKindPermanent, classifyStatus(401))
	assert.Equal(t, ErrKindPermanent, classifyStatus(500))
}

func TestErrorFormatting(t *testing.T) {
	withStatus := &Error{Kind: ErrKindTransient, Detail: "rate limited", StatusCode: 429}
	assert.Equal(t, "llm transient error (status 429): rate limited", withStatus.Error())

	withoutStatus := &Error{Kind: ErrKindPermanent, Detail: "bad schema"}
	assert.Equal(t, "llm permanent error: bad schema", withoutStatus.Error())
}
