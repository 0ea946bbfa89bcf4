package llm

import (
	"context"
	"sync"
)

// ScriptedClient plays back canned chunk sequences for testing.
// Each call to Stream consumes the next script in order; calls past the end
// of the script list replay the last one. The real provider-backed
// implementation is OpenAIClient.
type ScriptedClient struct {
	mu       sync.Mutex
	scripts  [][]Chunk
	call     int
	requests []*Request
	failWith error
}

var _ Client = (*ScriptedClient)(nil)

// NewScriptedClient creates a scripted client that streams the given chunk
// sequences, one per call.
func NewScriptedClient(scripts ...[]Chunk) *ScriptedClient {
	return &ScriptedClient{scripts: scripts}
}

// FailWith makes subsequent Stream calls return err instead of a stream.
func (s *ScriptedClient) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// Append adds another script to the end of the playback list.
func (s *ScriptedClient) Append(script []Chunk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripts = append(s.scripts, script)
}

func (s *ScriptedClient) Stream(ctx context.Context, req *Request) (<-chan Chunk, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	if s.failWith != nil {
		err := s.failWith
		s.mu.Unlock()
		return nil, err
	}
	if len(s.scripts) == 0 {
		s.mu.Unlock()
		return nil, &Error{Kind: ErrKindPermanent, Detail: "no script configured"}
	}
	idx := s.call
	if idx >= len(s.scripts) {
		idx = len(s.scripts) - 1
	}
	script := s.scripts[idx]
	s.call++
	s.mu.Unlock()

	out := make(chan Chunk, len(script))
	go func() {
		defer close(out)
		for _, chunk := range script {
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (s *ScriptedClient) Close() error { return nil }

// Requests returns the requests received so far, in order.
func (s *ScriptedClient) Requests() []*Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Calls returns how many times Stream was invoked.
func (s *ScriptedClient) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// TextScript builds a script that streams content and finishes with stop.
func TextScript(content string, usage *Usage) []Chunk {
	return []Chunk{
		&TextChunk{Content: content},
		&DoneChunk{Reason: FinishStop, Usage: usage},
	}
}

// ToolCallScript builds a script that streams the given calls, arguments
// split across two deltas, and finishes with tool_calls.
func ToolCallScript(usage *Usage, calls ...ToolCall) []Chunk {
	var script []Chunk
	for i, call := range calls {
		script = append(script, &ToolCallStartChunk{Index: i, ID: call.ID, Name: call.Name})
		args := call.Arguments
		if len(args) > 1 {
			mid := len(args) / 2
			script = append(script,
				&ToolCallArgsChunk{Index: i, Delta: args[:mid]},
				&ToolCallArgsChunk{Index: i, Delta: args[mid:]})
		} else if args != "" {
			script = append(script, &ToolCallArgsChunk{Index: i, Delta: args})
		}
	}
	for i := range calls {
		script = append(script, &ToolCallEndChunk{Index: i})
	}
	return append(script, &DoneChunk{Reason: FinishToolCalls, Usage: usage})
}

// ErrorScript builds a script that fails mid-stream after partial text.
func ErrorScript(partial string, err error) []Chunk {
	var script []Chunk
	if partial != "" {
		script = append(script, &TextChunk{Content: partial})
	}
	return append(script, &DoneChunk{Reason: FinishError, Err: err})
}

// TruncatedScript builds a script cut off by the provider token limit.
func TruncatedScript(content string, usage *Usage) []Chunk {
	return []Chunk{
		&TextChunk{Content: content},
		&DoneChunk{Reason: FinishLength, Usage: usage},
	}
}
