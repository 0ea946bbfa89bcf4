package llm

import (
	"context"
	"errors"
	"time"

	"github.com/switchyard-ai/switchyard/pkg/events"
)

// InstrumentedClient wraps a Client and publishes request lifecycle events
// for every stream: started on dispatch, then completed or failed when the
// terminal chunk arrives. Chunks pass through unmodified.
type InstrumentedClient struct {
	inner Client
	bus   *events.Bus
}

var _ Client = (*InstrumentedClient)(nil)

// NewInstrumentedClient wraps inner with bus instrumentation.
func NewInstrumentedClient(inner Client, bus *events.Bus) *InstrumentedClient {
	return &InstrumentedClient{inner: inner, bus: bus}
}

// Stream implements Client.
func (c *InstrumentedClient) Stream(ctx context.Context, req *Request) (<-chan Chunk, error) {
	start := time.Now()

	c.bus.PublishLLMRequestStarted(ctx, req.SessionID, events.LLMRequestStartedPayload{
		Model:        req.Model,
		Agent:        req.Agent,
		MessageCount: len(req.Messages),
		ToolCount:    len(req.Tools),
	})

	inner, err := c.inner.Stream(ctx, req)
	if err != nil {
		c.publishFailed(ctx, req, start, err)
		return nil, err
	}

	out := make(chan Chunk, 64)
	go func() {
		defer close(out)

		toolCalls := 0
		for chunk := range inner {
			if _, ok := chunk.(*ToolCallStartChunk); ok {
				toolCalls++
			}
			if done, ok := chunk.(*DoneChunk); ok && done.Reason == FinishError {
				c.publishFailed(ctx, req, start, done.Err)
			} else if done, ok := chunk.(*DoneChunk); ok {
				c.publishCompleted(ctx, req, start, done.Usage, toolCalls)
			}

			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close implements Client.
func (c *InstrumentedClient) Close() error {
	return c.inner.Close()
}

func (c *InstrumentedClient) publishCompleted(ctx context.Context, req *Request, start time.Time, usage *Usage, toolCalls int) {
	payload := events.LLMRequestCompletedPayload{
		Model:         req.Model,
		Agent:         req.Agent,
		DurationMS:    time.Since(start).Milliseconds(),
		ToolCallCount: toolCalls,
	}
	if usage != nil {
		payload.PromptTokens = usage.PromptTokens
		payload.CompletionTokens = usage.CompletionTokens
		payload.TotalTokens = usage.TotalTokens
	}
	c.bus.PublishLLMRequestCompleted(ctx, req.SessionID, payload)
}

func (c *InstrumentedClient) publishFailed(ctx context.Context, req *Request, start time.Time, cause error) {
	c.bus.PublishLLMRequestFailed(ctx, req.SessionID, events.LLMRequestFailedPayload{
		Model:      req.Model,
		Agent:      req.Agent,
		DurationMS: time.Since(start).Milliseconds(),
		ErrorKind:  errorKindOf(cause),
		Detail:     errorDetail(cause),
		Attempts:   attemptsOf(cause),
	})
}

func errorKindOf(err error) string {
	var boe *BreakerOpenError
	if errors.As(err, &boe) {
		return "circuit_open"
	}
	var le *Error
	if errors.As(err, &le) {
		return string(le.Kind)
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	return "unknown"
}

func errorDetail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// attemptsOf extracts the attempt count when the failure exhausted the retry
// budget; single-shot failures report 1.
func attemptsOf(err error) int {
	var ee *ExhaustedError
	if errors.As(err, &ee) {
		return ee.Attempts
	}
	return 1
}
