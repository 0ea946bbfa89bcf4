package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/llm"
)

func TestMetricsHandler(t *testing.T) {
	ts := newTestServer(t, llm.TextScript("hello", testUsage))

	id := ts.newSession(t)
	_, chunks := ts.stream(t, id, gin.H{"type": "user_message", "content": "hi"})
	require.Equal(t, "done", chunks[len(chunks)-1].Type)

	// Events reach the collectors asynchronously.
	require.Eventually(t, func() bool {
		return ts.metrics.Snapshot().LLMRequests == 1
	}, 5*time.Second, 10*time.Millisecond)

	rec := ts.do(t, http.MethodGet, "/api/v1/events/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var snap events.MetricsSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, int64(1), snap.SessionsCreated)
	assert.Equal(t, int64(1), snap.LLMRequests)
	assert.Equal(t, int64(1), snap.LLMCompletions)
	assert.Equal(t, int64(13), snap.TotalTokens)

	// One user message and one assistant message for the single turn.
	assert.Equal(t, int64(2), snap.MessagesAppended)
	assert.Equal(t, int64(2), snap.EventsByType[string(events.EventMessageAppended)])
}

func TestSessionMetricsHandler(t *testing.T) {
	ts := newTestServer(t, llm.TextScript("hello", testUsage))

	id := ts.newSession(t)
	_, chunks := ts.stream(t, id, gin.H{"type": "user_message", "content": "hi"})
	require.Equal(t, "done", chunks[len(chunks)-1].Type)

	require.Eventually(t, func() bool {
		snap, ok := ts.sessionMetrics.Snapshot(id)
		return ok && snap.LLMRequests == 1
	}, 5*time.Second, 10*time.Millisecond)

	rec := ts.do(t, http.MethodGet, "/api/v1/events/metrics/session/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var snap events.SessionMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, id, snap.SessionID)
	assert.Equal(t, int64(2), snap.Messages)
	assert.Equal(t, int64(1), snap.LLMRequests)
	assert.Equal(t, int64(13), snap.TotalTokens)
	assert.False(t, snap.LastEventAt.IsZero())
}

func TestSessionMetricsHandler_UnknownSession(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/events/metrics/session/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorKind(t, rec))
}
