package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	defaultChunkTimeout  = 30 * time.Second
	defaultStreamTimeout = 5 * time.Minute

	// scanBufferSize bounds a single SSE line. Argument deltas are small but
	// some providers batch large fragments.
	scanBufferSize = 1024 * 1024
)

// OpenAIClient streams chat completions from an OpenAI-compatible endpoint.
// Connection failures and retryable statuses are retried with backoff before
// the first chunk is emitted; once streaming has begun a failure terminates
// the stream with a FinishError done chunk and is never retried, so no token
// is ever delivered twice.
type OpenAIClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	retry   RetryConfig
	breaker *Breaker
	logger  *slog.Logger

	chunkTimeout  time.Duration
	streamTimeout time.Duration
}

var _ Client = (*OpenAIClient)(nil)

// OpenAIOption customizes the client.
type OpenAIOption func(*OpenAIClient)

// WithHTTPClient replaces the transport. The client must not set a global
// timeout; stream deadlines are enforced per call.
func WithHTTPClient(h *http.Client) OpenAIOption {
	return func(c *OpenAIClient) { c.http = h }
}

// WithRetryConfig replaces the connection retry policy.
func WithRetryConfig(cfg RetryConfig) OpenAIOption {
	return func(c *OpenAIClient) { c.retry = cfg }
}

// WithBreaker replaces the circuit breaker.
func WithBreaker(b *Breaker) OpenAIOption {
	return func(c *OpenAIClient) { c.breaker = b }
}

// WithChunkTimeout sets the per-chunk read watchdog.
func WithChunkTimeout(d time.Duration) OpenAIOption {
	return func(c *OpenAIClient) { c.chunkTimeout = d }
}

// WithStreamTimeout sets the whole-stream ceiling.
func WithStreamTimeout(d time.Duration) OpenAIOption {
	return func(c *OpenAIClient) { c.streamTimeout = d }
}

// NewOpenAIClient creates a streaming client for an OpenAI-compatible API
// rooted at baseURL (e.g. "https://api.openai.com/v1").
func NewOpenAIClient(baseURL, apiKey string, logger *slog.Logger, opts ...OpenAIOption) *OpenAIClient {
	if logger == nil {
		logger = slog.Default()
	}
	c := &OpenAIClient{
		baseURL:       baseURL,
		apiKey:        apiKey,
		http:          &http.Client{},
		retry:         DefaultRetryConfig(),
		logger:        logger.With("component", "llm_client"),
		chunkTimeout:  defaultChunkTimeout,
		streamTimeout: defaultStreamTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.breaker == nil {
		c.breaker = NewBreaker(DefaultBreakerConfig(), logger)
	}
	return c
}

// Stream implements Client. The breaker is consulted before any work; while
// the circuit is open the call fails fast with BreakerOpenError.
func (c *OpenAIClient) Stream(ctx context.Context, req *Request) (<-chan Chunk, error) {
	if req.Model == "" {
		return nil, &Error{Kind: ErrKindPermanent, Detail: "model is required"}
	}
	if err := c.breaker.Allow(); err != nil {
		return nil, err
	}

	out := make(chan Chunk, 64)
	go c.run(ctx, req, out)
	return out, nil
}

// Close releases idle transport connections.
func (c *OpenAIClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *OpenAIClient) run(ctx context.Context, req *Request, out chan<- Chunk) {
	defer close(out)

	streamCtx, cancel := context.WithTimeout(ctx, c.streamTimeout)
	defer cancel()
	reqCtx, abort := context.WithCancel(streamCtx)
	defer abort()

	body, err := json.Marshal(c.buildRequest(req))
	if err != nil {
		sendChunk(streamCtx, out, &DoneChunk{
			Reason: FinishError,
			Err:    &Error{Kind: ErrKindPermanent, Detail: fmt.Sprintf("encode request: %v", err)},
		})
		return
	}

	// 1. Connect with retry. No chunk has been emitted yet, so transient
	//    connection and status failures are safe to retry.
	var resp *http.Response
	attempts, err := retryDo(reqCtx, c.retry, func(ctx context.Context) error {
		r, connErr := c.connect(ctx, body)
		if connErr != nil {
			return connErr
		}
		resp = r
		return nil
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.breaker.RecordFailure()
		}
		c.logger.Warn("LLM connection failed",
			"model", req.Model,
			"attempts", attempts,
			"error", err)
		sendChunk(streamCtx, out, &DoneChunk{Reason: FinishError, Err: err})
		return
	}
	defer resp.Body.Close()

	// 2. Stream. The watchdog aborts the read when the provider stalls
	//    between chunks; it is reset on every SSE event.
	var timedOut atomic.Bool
	watchdog := time.AfterFunc(c.chunkTimeout, func() {
		timedOut.Store(true)
		abort()
	})
	defer watchdog.Stop()

	st := &streamState{ctx: streamCtx, out: out}
	readErr := c.readStream(resp.Body, watchdog, st)

	// 3. Terminate. A finish reason from the provider wins even when the
	//    connection drops before the [DONE] sentinel.
	switch {
	case readErr == nil && st.reason != "":
		st.emitToolCallEnds()
		sendChunk(streamCtx, out, &DoneChunk{Reason: st.reason, Usage: st.usage})
		c.breaker.RecordSuccess()

	case readErr == nil:
		err := &Error{Kind: ErrKindTransient, Detail: "stream closed before completion"}
		c.breaker.RecordFailure()
		sendChunk(streamCtx, out, &DoneChunk{Reason: FinishError, Err: err})

	default:
		terminal := c.classifyStreamError(readErr, streamCtx, &timedOut)
		if !errors.Is(terminal, context.Canceled) {
			c.breaker.RecordFailure()
			c.logger.Warn("LLM stream failed",
				"model", req.Model,
				"error", terminal)
		}
		sendChunk(ctx, out, &DoneChunk{Reason: FinishError, Err: terminal})
	}
}

// connect posts the request and validates the response status. A non-2xx
// status is drained, parsed for the provider error envelope, and classified.
func (c *OpenAIClient) connect(ctx context.Context, body []byte) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: ErrKindPermanent, Detail: err.Error()}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		detail := string(raw)
		if apiErr := parseErrorEnvelope(raw); apiErr != "" {
			detail = apiErr
		}
		return nil, &Error{
			Kind:       classifyStatus(resp.StatusCode),
			Detail:     detail,
			StatusCode: resp.StatusCode,
		}
	}
	return resp, nil
}

// streamState tracks in-flight tool call indexes so end chunks can be
// emitted in wire order before the done chunk.
type streamState struct {
	ctx       context.Context
	out       chan<- Chunk
	openCalls []int
	lastIndex int
	nextIndex int
	reason    FinishReason
	usage     *Usage
}

func (c *OpenAIClient) readStream(r io.Reader, watchdog *time.Timer, st *streamState) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), scanBufferSize)

	for scanner.Scan() {
		watchdog.Reset(c.chunkTimeout)

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || !bytes.HasPrefix(line, []byte("data: ")) {
			continue
		}
		payload := line[len("data: "):]
		if bytes.Equal(payload, []byte("[DONE]")) {
			return nil
		}

		var event streamResponse
		if err := json.Unmarshal(payload, &event); err != nil {
			c.logger.Debug("Skipping unparseable stream event", "error", err)
			continue
		}
		if event.Error != nil {
			return &Error{Kind: ErrKindPermanent, Detail: event.Error.Message}
		}
		if event.Usage != nil {
			st.usage = &Usage{
				PromptTokens:     event.Usage.PromptTokens,
				CompletionTokens: event.Usage.CompletionTokens,
				TotalTokens:      event.Usage.TotalTokens,
			}
		}
		if len(event.Choices) == 0 {
			continue
		}

		choice := event.Choices[0]
		if choice.Delta.Content != "" {
			if !sendChunk(st.ctx, st.out, &TextChunk{Content: choice.Delta.Content}) {
				return st.ctx.Err()
			}
		}
		for _, dc := range choice.Delta.ToolCalls {
			if !st.applyToolCallDelta(dc) {
				return st.ctx.Err()
			}
		}
		if choice.FinishReason != "" {
			st.reason = mapFinishReason(choice.FinishReason)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	// EOF without [DONE]; the caller decides based on whether a finish
	// reason was seen.
	return nil
}

// applyToolCallDelta emits start and args chunks for one wire delta. A delta
// carrying an ID opens a new logical call; ID-less deltas extend the last
// opened call when the provider omits the index field.
func (st *streamState) applyToolCallDelta(dc chatToolCall) bool {
	idx := st.lastIndex
	switch {
	case dc.Index != nil:
		idx = *dc.Index
	case dc.ID != "":
		idx = st.nextIndex
	}

	if !st.isOpen(idx) {
		st.openCalls = append(st.openCalls, idx)
		st.nextIndex = idx + 1
		if !sendChunk(st.ctx, st.out, &ToolCallStartChunk{Index: idx, ID: dc.ID, Name: dc.Function.Name}) {
			return false
		}
	}
	st.lastIndex = idx

	if dc.Function.Arguments != "" {
		if !sendChunk(st.ctx, st.out, &ToolCallArgsChunk{Index: idx, Delta: dc.Function.Arguments}) {
			return false
		}
	}
	return true
}

func (st *streamState) isOpen(idx int) bool {
	for _, open := range st.openCalls {
		if open == idx {
			return true
		}
	}
	return false
}

func (st *streamState) emitToolCallEnds() {
	for _, idx := range st.openCalls {
		if !sendChunk(st.ctx, st.out, &ToolCallEndChunk{Index: idx}) {
			return
		}
	}
}

// classifyStreamError translates a raw read failure into the error taxonomy.
func (c *OpenAIClient) classifyStreamError(readErr error, streamCtx context.Context, timedOut *atomic.Bool) error {
	var le *Error
	if errors.As(readErr, &le) {
		return readErr
	}
	if timedOut.Load() {
		return &Error{Kind: ErrKindTransient, Detail: fmt.Sprintf("no chunk received within %v", c.chunkTimeout)}
	}
	if errors.Is(streamCtx.Err(), context.DeadlineExceeded) {
		return &Error{Kind: ErrKindTransient, Detail: fmt.Sprintf("stream exceeded %v", c.streamTimeout)}
	}
	if errors.Is(readErr, context.Canceled) || errors.Is(streamCtx.Err(), context.Canceled) {
		return context.Canceled
	}
	return classifyTransport(readErr)
}

// sendChunk delivers a chunk unless the consumer is gone.
func sendChunk(ctx context.Context, out chan<- Chunk, chunk Chunk) bool {
	select {
	case out <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}

func (c *OpenAIClient) buildRequest(req *Request) chatRequest {
	msgs := make([]chatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		cm := chatMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
			Name:       m.ToolName,
		}
		for _, tc := range m.ToolCalls {
			cm.ToolCalls = append(cm.ToolCalls, chatToolCall{
				ID:       tc.ID,
				Type:     "function",
				Function: chatFunctionCall{Name: tc.Name, Arguments: tc.Arguments},
			})
		}
		msgs = append(msgs, cm)
	}

	wire := chatRequest{
		Model:         req.Model,
		Messages:      msgs,
		Temperature:   req.Temperature,
		MaxTokens:     req.MaxTokens,
		Stream:        true,
		StreamOptions: &streamOptions{IncludeUsage: true},
	}

	if len(req.Tools) > 0 {
		wire.Tools = make([]chatTool, 0, len(req.Tools))
		for _, t := range req.Tools {
			wire.Tools = append(wire.Tools, chatTool{
				Type: "function",
				Function: chatToolFunction{
					Name:        t.Name,
					Description: t.Description,
					Parameters:  json.RawMessage(t.ParametersSchema),
				},
			})
		}
		wire.ToolChoice = "auto"
	}
	return wire
}

// parseErrorEnvelope extracts the message from the provider error body.
func parseErrorEnvelope(raw []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		return envelope.Error.Message
	}
	return ""
}

func mapFinishReason(wire string) FinishReason {
	switch wire {
	case "stop":
		return FinishStop
	case "length":
		return FinishLength
	case "tool_calls":
		return FinishToolCalls
	default:
		return FinishStop
	}
}

// Wire types for the chat completions API.

type chatRequest struct {
	Model         string         `json:"model"`
	Messages      []chatMessage  `json:"messages"`
	Tools         []chatTool     `json:"tools,omitempty"`
	ToolChoice    string         `json:"tool_choice,omitempty"`
	Temperature   *float64       `json:"temperature,omitempty"`
	MaxTokens     *int           `json:"max_tokens,omitempty"`
	Stream        bool           `json:"stream"`
	StreamOptions *streamOptions `json:"stream_options,omitempty"`
}

type streamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

type chatMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	Name       string         `json:"name,omitempty"`
	ToolCalls  []chatToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
}

type chatTool struct {
	Type     string           `json:"type"`
	Function chatToolFunction `json:"function"`
}

type chatToolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

type chatToolCall struct {
	Index    *int             `json:"index,omitempty"`
	ID       string           `json:"id,omitempty"`
	Type     string           `json:"type,omitempty"`
	Function chatFunctionCall `json:"function"`
}

type chatFunctionCall struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

type streamResponse struct {
	Choices []streamChoice `json:"choices"`
	Usage   *wireUsage     `json:"usage,omitempty"`
	Error   *wireError     `json:"error,omitempty"`
}

type streamChoice struct {
	Delta        streamDelta `json:"delta"`
	FinishReason string      `json:"finish_reason"`
}

type streamDelta struct {
	Content   string         `json:"content,omitempty"`
	ToolCalls []chatToolCall `json:"tool_calls,omitempty"`
}

type wireUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type wireError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}
