package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/models"
)

var _ events.AuditSink = (*AuditService)(nil)

func TestWriteAudit_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	entry := events.AuditEntry{
		EventID:       "evt-1",
		EventType:     string(events.EventToolCallEmitted),
		SessionID:     "sess-1",
		CorrelationID: "req-1",
		Payload:       `{"call_id":"call_1","tool_name":"read_file"}`,
		Timestamp:     time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, env.audit.WriteAudit(ctx, entry))

	got, err := env.audit.ListBySession(ctx, "sess-1", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "evt-1", got[0].ID)
	assert.Equal(t, string(events.EventToolCallEmitted), got[0].EventType)
	require.NotNil(t, got[0].CorrelationID)
	assert.Equal(t, "req-1", *got[0].CorrelationID)
	assert.Contains(t, got[0].Payload, "call_1")
}

func TestCleanupOldEntries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	old := events.AuditEntry{
		EventID:   "evt-old",
		EventType: string(events.EventSessionCreated),
		SessionID: "sess-1",
		Payload:   "{}",
		Timestamp: time.Now().Add(-40 * 24 * time.Hour),
	}
	fresh := events.AuditEntry{
		EventID:   "evt-fresh",
		EventType: string(events.EventSessionCreated),
		SessionID: "sess-1",
		Payload:   "{}",
		Timestamp: time.Now(),
	}
	require.NoError(t, env.audit.WriteAudit(ctx, old))
	require.NoError(t, env.audit.WriteAudit(ctx, fresh))

	count, err := env.audit.CleanupOldEntries(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := env.audit.ListBySession(ctx, "sess-1", 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "evt-fresh", remaining[0].ID)
}

// TestAuditPipeline exercises the full path: a service emits an event, the
// bus delivers it to the audit logger, the audit service persists it.
func TestAuditPipeline(t *testing.T) {
	client := newTestEnv(t).client

	bus := events.NewBus(nil)
	audit := NewAuditService(client)
	require.NoError(t, bus.SubscribeAll(events.NewAuditLogger(audit, nil, nil), 20))
	bus.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = bus.Stop(ctx)
	})

	sessions := NewSessionService(client, bus)
	sess, err := sessions.CreateSession(context.Background(), models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		entries, err := audit.ListBySession(context.Background(), sess.ID, 0)
		return err == nil && len(entries) == 1
	}, 5*time.Second, 20*time.Millisecond, "session.created should reach the audit table")

	entries, err := audit.ListBySession(context.Background(), sess.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, string(events.EventSessionCreated), entries[0].EventType)
	assert.Contains(t, entries[0].Payload, "user-1")
}
