package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// fakeProvider is a minimal OpenAI-compatible chat completions endpoint for
// exercising the real provider client against failures. It starts in a
// failing state (HTTP 503 on every request) and serves a short streamed
// completion once Succeed is called.
type fakeProvider struct {
	mu       sync.Mutex
	srv      *httptest.Server
	status   int
	text     string
	requests int
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	p := &fakeProvider{status: http.StatusServiceUnavailable}
	p.srv = httptest.NewServer(http.HandlerFunc(p.handle))
	t.Cleanup(p.srv.Close)
	return p
}

func (p *fakeProvider) URL() string { return p.srv.URL }

// Succeed switches the provider to streaming the given text on every
// subsequent request.
func (p *fakeProvider) Succeed(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = 0
	p.text = text
}

// RequestCount reports how many requests actually reached the provider.
func (p *fakeProvider) RequestCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests
}

func (p *fakeProvider) handle(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	p.requests++
	status, text := p.status, p.text
	p.mu.Unlock()

	if status != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, `{"error":{"message":"upstream unavailable"}}`)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.WriteHeader(http.StatusOK)
	flusher, _ := w.(http.Flusher)
	writeFrame := func(payload string) {
		fmt.Fprintf(w, "data: %s\n\n", payload)
		if flusher != nil {
			flusher.Flush()
		}
	}

	// Content delta, finish reason, usage, sentinel: the frame order the
	// real provider uses.
	writeFrame(fmt.Sprintf(`{"choices":[{"delta":{"content":%q},"finish_reason":""}]}`, text))
	writeFrame(`{"choices":[{"delta":{},"finish_reason":"stop"}]}`)
	writeFrame(`{"choices":[],"usage":{"prompt_tokens":12,"completion_tokens":4,"total_tokens":16}}`)
	writeFrame(`[DONE]`)
}
