package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/ent"
	"github.com/switchyard-ai/switchyard/pkg/config"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/models"
	"github.com/switchyard-ai/switchyard/pkg/services"
	testdb "github.com/switchyard-ai/switchyard/test/database"
)

// testRetention keeps the windows short and distinct so backdated rows
// fall cleanly on one side or the other.
var testRetention = config.RetentionConfig{
	CleanupInterval:    time.Hour,
	SessionIdleTimeout: 24 * time.Hour,
	PurgeAfter:         30 * 24 * time.Hour,
	StaleApprovalAge:   24 * time.Hour,
	AuditRetention:     90 * 24 * time.Hour,
}

type testEnv struct {
	client         *ent.Client
	sessions       *services.SessionService
	approvals      *services.ApprovalService
	audit          *services.AuditService
	sessionMetrics *events.SessionMetricsCollector
	warnings       *services.SystemWarningsService
	svc            *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	client := testdb.NewTestClient(t).Client

	bus := events.NewBus(nil)
	bus.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = bus.Stop(ctx)
	})

	env := &testEnv{
		client:         client,
		sessions:       services.NewSessionService(client, bus),
		approvals:      services.NewApprovalService(client, bus, nil),
		audit:          services.NewAuditService(client),
		sessionMetrics: events.NewSessionMetricsCollector(),
		warnings:       services.NewSystemWarningsService(),
	}
	env.svc = NewService(testRetention, env.sessions, env.approvals, env.audit, env.sessionMetrics, env.warnings, nil)
	return env
}

func (env *testEnv) createSession(t *testing.T) string {
	t.Helper()
	sess, err := env.sessions.CreateSession(context.Background(), models.CreateSessionRequest{
		SessionID: uuid.NewString(),
		UserID:    "cleanup-test",
	})
	require.NoError(t, err)
	return sess.ID
}

func TestService_SoftDeletesIdleSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	idleID := env.createSession(t)
	activeID := env.createSession(t)

	require.NoError(t, env.client.Session.UpdateOneID(idleID).
		SetLastActivityAt(time.Now().Add(-48*time.Hour)).
		Exec(ctx))

	env.svc.RunAll(ctx)

	idle, err := env.client.Session.Get(ctx, idleID)
	require.NoError(t, err)
	assert.NotNil(t, idle.DeletedAt)
	assert.False(t, idle.IsActive)

	active, err := env.client.Session.Get(ctx, activeID)
	require.NoError(t, err)
	assert.Nil(t, active.DeletedAt)
}

func TestService_PurgesLongDeletedSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	oldID := env.createSession(t)
	recentID := env.createSession(t)

	require.NoError(t, env.sessions.DeleteSession(ctx, oldID, true))
	require.NoError(t, env.sessions.DeleteSession(ctx, recentID, true))
	require.NoError(t, env.client.Session.UpdateOneID(oldID).
		SetDeletedAt(time.Now().Add(-31*24*time.Hour)).
		Exec(ctx))

	// Give the purged session a metrics rollup so the release is visible.
	require.NoError(t, env.sessionMetrics.HandleEvent(ctx, events.Event{
		Type:      events.EventMessageAppended,
		SessionID: oldID,
		Payload:   events.MessageAppendedPayload{Role: "user"},
	}))

	env.svc.RunAll(ctx)

	_, err := env.client.Session.Get(ctx, oldID)
	assert.True(t, ent.IsNotFound(err), "purged session row should be gone")

	_, ok := env.sessionMetrics.Snapshot(oldID)
	assert.False(t, ok, "purged session rollup should be released")

	recent, err := env.client.Session.Get(ctx, recentID)
	require.NoError(t, err)
	assert.NotNil(t, recent.DeletedAt, "recently deleted session stays in the retention window")
}

func TestService_DropsStaleApprovals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id := env.createSession(t)

	stale, err := env.approvals.CreatePending(ctx, id, "call_old", "write_file",
		map[string]interface{}{"path": "a.go"})
	require.NoError(t, err)
	fresh, err := env.approvals.CreatePending(ctx, id, "call_new", "write_file",
		map[string]interface{}{"path": "b.go"})
	require.NoError(t, err)

	_, err = env.client.ExecContext(ctx,
		"UPDATE pending_approvals SET created_at = $1 WHERE call_id = $2",
		time.Now().Add(-48*time.Hour), stale.ID)
	require.NoError(t, err)

	env.svc.RunAll(ctx)

	pending, err := env.approvals.ListPending(ctx, id)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, fresh.ID, pending[0].ID)
}

func TestService_TrimsOldAuditEntries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id := env.createSession(t)

	require.NoError(t, env.audit.WriteAudit(ctx, events.AuditEntry{
		EventID:   uuid.NewString(),
		EventType: "message.appended",
		SessionID: id,
		Payload:   `{"role":"user"}`,
		Timestamp: time.Now().Add(-120 * 24 * time.Hour),
	}))
	require.NoError(t, env.audit.WriteAudit(ctx, events.AuditEntry{
		EventID:   uuid.NewString(),
		EventType: "message.appended",
		SessionID: id,
		Payload:   `{"role":"assistant"}`,
		Timestamp: time.Now(),
	}))

	env.svc.RunAll(ctx)

	entries, err := env.audit.ListBySession(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, `{"role":"assistant"}`, entries[0].Payload)
}

func TestService_ReportsRetentionWarnings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// A dead context makes every task fail without breaking the client.
	canceled, cancel := context.WithCancel(ctx)
	cancel()
	env.svc.RunAll(canceled)

	warnings := env.warnings.GetWarnings()
	require.NotEmpty(t, warnings)
	for _, w := range warnings {
		assert.Equal(t, services.WarningCategoryRetention, w.Category)
	}

	// A clean pass clears everything it raised.
	env.svc.RunAll(ctx)
	assert.Empty(t, env.warnings.GetWarnings())
}

func TestService_StartRunsInitialPass(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id := env.createSession(t)
	require.NoError(t, env.client.Session.UpdateOneID(id).
		SetLastActivityAt(time.Now().Add(-48*time.Hour)).
		Exec(ctx))

	env.svc.Start(ctx)
	env.svc.Start(ctx) // second Start is a no-op
	defer env.svc.Stop()

	require.Eventually(t, func() bool {
		sess, err := env.client.Session.Get(ctx, id)
		return err == nil && sess.DeletedAt != nil
	}, 5*time.Second, 10*time.Millisecond)
}

func TestService_StopWaitsForLoop(t *testing.T) {
	env := newTestEnv(t)

	env.svc.Start(context.Background())
	env.svc.Stop()

	select {
	case <-env.svc.done:
	default:
		t.Fatal("cleanup loop still running after Stop")
	}
}
