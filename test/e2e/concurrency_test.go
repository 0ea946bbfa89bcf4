package e2e

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/ent/message"
)

// Concurrent streams against one session serialize on the session lock:
// no request fails, no turn interleaves with another, and the history
// comes out gapless with strict user/assistant alternation.
func TestE2E_ConcurrentStreamsSerialize(t *testing.T) {
	const workers = 8

	app := NewTestApp(t)
	entries := make([]LLMScriptEntry, workers)
	for i := range entries {
		entries[i] = LLMScriptEntry{Text: fmt.Sprintf("reply %d", i)}
	}
	app.LLM.AddSequential(entries...)

	sessionID := app.CreateSession(t, "")

	type outcome struct {
		events []StreamEvent
		err    error
	}
	results := make(chan outcome, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			events, err := app.TryStream(sessionID, userMessage(fmt.Sprintf("message %d", n)))
			results <- outcome{events: events, err: err}
		}(i)
	}
	wg.Wait()
	close(results)

	for res := range results {
		require.NoError(t, res.err)
		types := eventTypes(res.events)
		assert.Contains(t, types, "done")
		assert.NotContains(t, types, "error")
	}
	assert.Equal(t, workers, app.LLM.CallCount())

	msgs := app.Messages(t, sessionID)
	require.Len(t, msgs, 2*workers)
	for i, m := range msgs {
		assert.Equal(t, i+1, m.Sequence, "sequence must be gapless")
		want := message.RoleUser
		if i%2 == 1 {
			want = message.RoleAssistant
		}
		assert.Equal(t, want, m.Role, "message %d", i)
	}
}
