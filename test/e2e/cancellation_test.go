package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Dropping the HTTP connection mid-turn cancels the turn and releases the
// session lock; the session stays fully usable afterwards.
func TestE2E_ClientDisconnectReleasesSession(t *testing.T) {
	app := NewTestApp(t)

	blocked := make(chan struct{}, 1)
	app.LLM.AddSequential(
		LLMScriptEntry{BlockUntilCanceled: true, OnBlock: blocked},
		LLMScriptEntry{Text: "Back to work."},
	)

	stream := app.OpenStream(t, "new_1", userMessage("take your time"))
	info := stream.Next(t)
	require.Equal(t, "session_info", info.Type)
	sessionID := info.Str("session_id")

	select {
	case <-blocked:
	case <-time.After(15 * time.Second):
		t.Fatal("model call never started")
	}
	stream.Cancel()

	// The lock is free again: the next turn queues behind the teardown
	// and then runs normally.
	events := app.Stream(t, sessionID, userMessage("hello again"))
	require.Equal(t, []string{"assistant_message", "assistant_message", "done"}, eventTypes(events))
	assert.Equal(t, "Back to work.", assistantText(events))

	// The canceled turn left nothing behind but its user message.
	msgs := app.Messages(t, sessionID)
	require.Len(t, msgs, 3)
	assert.Equal(t, "take your time", msgs[0].Content)
	assert.Equal(t, "hello again", msgs[1].Content)
}
