package e2e

import (
	"context"
	"sync"

	"github.com/switchyard-ai/switchyard/pkg/llm"
)

// scriptUsage is the token accounting attached to shorthand responses.
var scriptUsage = &llm.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}

// LLMScriptEntry defines a single scripted LLM response.
type LLMScriptEntry struct {
	// Response content (exactly one should be set)
	Chunks []llm.Chunk // pre-built chunks to stream
	Text   string      // shorthand: text delta + stop + usage
	Err    error       // returned from Stream instead of a channel

	// Test control
	BlockUntilCanceled bool            // hold the stream open until ctx is canceled
	WaitCh             <-chan struct{} // hold Stream until closed, then play chunks
	OnBlock            chan<- struct{} // notified when the blocking path is entered
}

// ScriptedLLMClient implements llm.Client with dual dispatch: responses
// routed by the agent annotated on the request, plus a sequential queue
// for calls no route matches. The orchestrator stamps every request with
// the serving agent, so scripts can target one agent of a multi-hop
// conversation without caring how many turns the others take.
type ScriptedLLMClient struct {
	mu         sync.Mutex
	sequential []LLMScriptEntry
	seqIndex   int
	routes     map[string][]LLMScriptEntry
	routeIndex map[string]int
	requests   []*llm.Request
}

var _ llm.Client = (*ScriptedLLMClient)(nil)

// NewScriptedLLMClient creates an empty scripted client. Calls past the
// end of the script fail with a permanent error naming the agent, so a
// test that provokes an unexpected round-trip fails loudly instead of
// looping.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{
		routes:     make(map[string][]LLMScriptEntry),
		routeIndex: make(map[string]int),
	}
}

// AddSequential appends an entry consumed in call order by any agent
// without a matching route.
func (c *ScriptedLLMClient) AddSequential(entries ...LLMScriptEntry) *ScriptedLLMClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sequential = append(c.sequential, entries...)
	return c
}

// AddRouted appends entries served only to requests carrying the given
// agent annotation. Routed entries win over the sequential queue.
func (c *ScriptedLLMClient) AddRouted(agentName string, entries ...LLMScriptEntry) *ScriptedLLMClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routes[agentName] = append(c.routes[agentName], entries...)
	return c
}

// Stream implements llm.Client.
func (c *ScriptedLLMClient) Stream(ctx context.Context, req *llm.Request) (<-chan llm.Chunk, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	entry, err := c.nextEntry(req)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	// A blocked stream stays open until the caller goes away; closing
	// without a done chunk is how a dropped provider connection looks to
	// the orchestrator.
	if entry.BlockUntilCanceled {
		ch := make(chan llm.Chunk)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		return ch, nil
	}

	// WaitCh delays the response until the test releases it.
	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
		case <-ctx.Done():
			ch := make(chan llm.Chunk)
			close(ch)
			return ch, nil
		}
	}

	if entry.Err != nil {
		return nil, entry.Err
	}

	chunks := entry.Chunks
	if len(chunks) == 0 && entry.Text != "" {
		chunks = llm.TextScript(entry.Text, scriptUsage)
	}

	ch := make(chan llm.Chunk, len(chunks))
	for _, chunk := range chunks {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}

// Close implements llm.Client.
func (c *ScriptedLLMClient) Close() error { return nil }

// Requests returns every request received so far, in order.
func (c *ScriptedLLMClient) Requests() []*llm.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*llm.Request, len(c.requests))
	copy(out, c.requests)
	return out
}

// CallCount returns how many times Stream was invoked.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

// nextEntry selects the next script entry, routed dispatch first. Must
// be called with c.mu held.
func (c *ScriptedLLMClient) nextEntry(req *llm.Request) (*LLMScriptEntry, error) {
	if entries, ok := c.routes[req.Agent]; ok {
		idx := c.routeIndex[req.Agent]
		if idx < len(entries) {
			c.routeIndex[req.Agent] = idx + 1
			return &entries[idx], nil
		}
	}

	if c.seqIndex < len(c.sequential) {
		entry := &c.sequential[c.seqIndex]
		c.seqIndex++
		return entry, nil
	}

	return nil, &llm.Error{
		Kind:   llm.ErrKindPermanent,
		Detail: "scripted client: no response scripted for agent " + req.Agent,
	}
}
