package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEvent(w http.ResponseWriter, payload string) {
	fmt.Fprintf(w, "data: %s\n\n", payload)
	w.(http.Flusher).Flush()
}

func collectChunks(t *testing.T, ch <-chan Chunk) []Chunk {
	t.Helper()
	var out []Chunk
	timeout := time.After(5 * time.Second)
	for {
		select {
		case c, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, c)
		case <-timeout:
			t.Fatal("timed out waiting for stream to close")
		}
	}
}

func doneOf(t *testing.T, chunks []Chunk) *DoneChunk {
	t.Helper()
	require.NotEmpty(t, chunks)
	done, ok := chunks[len(chunks)-1].(*DoneChunk)
	require.True(t, ok, "last chunk must be done, got %T", chunks[len(chunks)-1])
	return done
}

func TestOpenAIClient_StreamsText(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "text/event-stream")
		writeEvent(w, `{"choices":[{"delta":{"content":"Hello"}}]}`)
		writeEvent(w, `{"choices":[{"delta":{"content":", world"}}]}`)
		writeEvent(w, `{"choices":[{"delta":{},"finish_reason":"stop"}]}`)
		writeEvent(w, `{"choices":[],"usage":{"prompt_tokens":9,"completion_tokens":3,"total_tokens":12}}`)
		writeEvent(w, `[DONE]`)
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL, "test-key", nil)
	stream, err := client.Stream(context.Background(), &Request{
		Model: "gpt-4o",
		Messages: []Message{
			{Role: "system", Content: "You are helpful."},
			{Role: "user", Content: "Say hello."},
		},
	})
	require.NoError(t, err)

	chunks := collectChunks(t, stream)
	require.Len(t, chunks, 3)
	assert.Equal(t, "Hello", chunks[0].(*TextChunk).Content)
	assert.Equal(t, ", world", chunks[1].(*TextChunk).Content)

	done := doneOf(t, chunks)
	assert.Equal(t, FinishStop, done.Reason)
	require.NotNil(t, done.Usage)
	assert.Equal(t, 12, done.Usage.TotalTokens)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.True(t, gotReq.Stream)
	require.NotNil(t, gotReq.StreamOptions)
	assert.True(t, gotReq.StreamOptions.IncludeUsage)
	assert.Equal(t, "gpt-4o", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
}

func TestOpenAIClient_StreamsToolCallGrammar(t *testing.T) {
	var gotReq chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "text/event-stream")
		writeEvent(w, `{"choices":[{"delta":{"tool_calls":[{"index":0,"id":"call_1","type":"function","function":{"name":"read_file","arguments":""}}]}}]}`)
		writeEvent(w, `{"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":"{\"path\":"}}]}}]}`)
		writeEvent(w, `{"choices":[{"delta":{"tool_calls":[{"index":1,"id":"call_2","type":"function","function":{"name":"list_files","arguments":"{}"}}]}}]}`)
		writeEvent(w, `{"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":"\"main.go\"}"}}]}}]}`)
		writeEvent(w, `{"choices":[{"delta":{},"finish_reason":"tool_calls"}]}`)
		writeEvent(w, `{"choices":[],"usage":{"prompt_tokens":40,"completion_tokens":18,"total_tokens":58}}`)
		writeEvent(w, `[DONE]`)
	}))
	defer srv.Close()

	tools := []ToolDefinition{
		{Name: "read_file", Description: "Read a file", ParametersSchema: `{"type":"object"}`},
		{Name: "list_files", Description: "List files", ParametersSchema: `{"type":"object"}`},
	}
	client := NewOpenAIClient(srv.URL, "test-key", nil)
	stream, err := client.Stream(context.Background(), &Request{
		Model:    "gpt-4o",
		Messages: []Message{{Role: "user", Content: "Open main.go"}},
		Tools:    tools,
	})
	require.NoError(t, err)

	chunks := collectChunks(t, stream)

	acc := NewAccumulator()
	for _, c := range chunks {
		acc.Add(c)
	}
	calls := acc.ToolCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, ToolCall{ID: "call_1", Name: "read_file", Arguments: `{"path":"main.go"}`}, calls[0])
	assert.Equal(t, ToolCall{ID: "call_2", Name: "list_files", Arguments: `{}`}, calls[1])
	assert.Equal(t, FinishToolCalls, acc.Reason())
	require.NotNil(t, acc.Usage())
	assert.Equal(t, 58, acc.Usage().TotalTokens)

	// End chunks for every open call precede the done chunk.
	require.GreaterOrEqual(t, len(chunks), 3)
	assert.IsType(t, &ToolCallEndChunk{}, chunks[len(chunks)-3])
	assert.IsType(t, &ToolCallEndChunk{}, chunks[len(chunks)-2])

	assert.Equal(t, "auto", gotReq.ToolChoice)
	require.Len(t, gotReq.Tools, 2)
	assert.Equal(t, "function", gotReq.Tools[0].Type)
	assert.Equal(t, "read_file", gotReq.Tools[0].Function.Name)
}

func TestOpenAIClient_RetriesTransientStatus(t *testing.T) {
	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		writeEvent(w, `{"choices":[{"delta":{"content":"ok"}}]}`)
		writeEvent(w, `{"choices":[{"delta":{},"finish_reason":"stop"}]}`)
		writeEvent(w, `[DONE]`)
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL, "test-key", nil, WithRetryConfig(fastRetryConfig()))
	stream, err := client.Stream(context.Background(), &Request{
		Model:    "gpt-4o",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)

	chunks := collectChunks(t, stream)
	assert.Equal(t, FinishStop, doneOf(t, chunks).Reason)
	assert.Equal(t, int32(2), hits.Load())
}

func TestOpenAIClient_PermanentStatusFailsWithoutRetry(t *testing.T) {
	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, `{"error":{"message":"model not found"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL, "test-key", nil, WithRetryConfig(fastRetryConfig()))
	stream, err := client.Stream(context.Background(), &Request{
		Model:    "missing",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)

	done := doneOf(t, collectChunks(t, stream))
	assert.Equal(t, FinishError, done.Reason)

	var le *Error
	require.ErrorAs(t, done.Err, &le)
	assert.Equal(t, ErrKindPermanent, le.Kind)
	assert.Equal(t, http.StatusBadRequest, le.StatusCode)
	assert.Equal(t, "model not found", le.Detail)
	assert.Equal(t, int32(1), hits.Load())
}

func TestOpenAIClient_MidStreamDropIsNotRetried(t *testing.T) {
	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/event-stream")
		writeEvent(w, `{"choices":[{"delta":{"content":"partial"}}]}`)
		// Connection closes without a finish reason or [DONE].
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL, "test-key", nil, WithRetryConfig(fastRetryConfig()))
	stream, err := client.Stream(context.Background(), &Request{
		Model:    "gpt-4o",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)

	chunks := collectChunks(t, stream)
	require.Len(t, chunks, 2)
	assert.Equal(t, "partial", chunks[0].(*TextChunk).Content)

	done := doneOf(t, chunks)
	assert.Equal(t, FinishError, done.Reason)

	var le *Error
	require.ErrorAs(t, done.Err, &le)
	assert.Equal(t, ErrKindTransient, le.Kind)
	assert.Equal(t, int32(1), hits.Load(), "mid-stream failures must not reconnect")
}

func TestOpenAIClient_ProviderErrorEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		writeEvent(w, `{"error":{"message":"content policy violation"}}`)
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL, "test-key", nil)
	stream, err := client.Stream(context.Background(), &Request{
		Model:    "gpt-4o",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)

	done := doneOf(t, collectChunks(t, stream))
	require.Equal(t, FinishError, done.Reason)

	var le *Error
	require.ErrorAs(t, done.Err, &le)
	assert.Equal(t, ErrKindPermanent, le.Kind)
	assert.Equal(t, "content policy violation", le.Detail)
}

func TestOpenAIClient_ChunkWatchdog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		writeEvent(w, `{"choices":[{"delta":{"content":"slow"}}]}`)
		time.Sleep(500 * time.Millisecond)
		writeEvent(w, `[DONE]`)
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL, "test-key", nil, WithChunkTimeout(50*time.Millisecond))
	stream, err := client.Stream(context.Background(), &Request{
		Model:    "gpt-4o",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)

	done := doneOf(t, collectChunks(t, stream))
	require.Equal(t, FinishError, done.Reason)

	var le *Error
	require.ErrorAs(t, done.Err, &le)
	assert.Equal(t, ErrKindTransient, le.Kind)
	assert.Contains(t, le.Detail, "no chunk received")
}

func TestOpenAIClient_BreakerFailsFast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"broken"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	breaker := NewBreaker(BreakerConfig{FailureThreshold: 1, Cooldown: time.Hour}, nil)
	client := NewOpenAIClient(srv.URL, "test-key", nil, WithBreaker(breaker), WithRetryConfig(fastRetryConfig()))

	stream, err := client.Stream(context.Background(), &Request{
		Model:    "gpt-4o",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)
	done := doneOf(t, collectChunks(t, stream))
	require.Equal(t, FinishError, done.Reason)

	_, err = client.Stream(context.Background(), &Request{
		Model:    "gpt-4o",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	var boe *BreakerOpenError
	require.ErrorAs(t, err, &boe)
}

func TestOpenAIClient_RequiresModel(t *testing.T) {
	client := NewOpenAIClient("http://127.0.0.1:1", "key", nil)
	_, err := client.Stream(context.Background(), &Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	var le *Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrKindPermanent, le.Kind)
}

func TestScriptedClient_PlaysScriptsInOrder(t *testing.T) {
	client := NewScriptedClient(
		TextScript("first", &Usage{TotalTokens: 5}),
		ToolCallScript(nil, ToolCall{ID: "call_1", Name: "read_file", Arguments: `{"path":"a.go"}`}),
	)

	stream, err := client.Stream(context.Background(), &Request{Model: "m"})
	require.NoError(t, err)
	acc := NewAccumulator()
	for _, c := range collectChunks(t, stream) {
		acc.Add(c)
	}
	assert.Equal(t, "first", acc.Text())
	assert.Equal(t, FinishStop, acc.Reason())

	stream, err = client.Stream(context.Background(), &Request{Model: "m"})
	require.NoError(t, err)
	acc = NewAccumulator()
	for _, c := range collectChunks(t, stream) {
		acc.Add(c)
	}
	calls := acc.ToolCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "read_file", calls[0].Name)
	assert.Equal(t, `{"path":"a.go"}`, calls[0].Arguments)
	assert.Equal(t, FinishToolCalls, acc.Reason())

	assert.Equal(t, 2, client.Calls())
}
