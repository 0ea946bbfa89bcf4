package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/ent/pendingapproval"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/models"
)

func TestRequiresApproval(t *testing.T) {
	env := newTestEnv(t)

	assert.True(t, env.approvals.RequiresApproval("write_file"))
	assert.True(t, env.approvals.RequiresApproval("execute_command"))
	assert.True(t, env.approvals.RequiresApproval("create_directory"))
	assert.False(t, env.approvals.RequiresApproval("read_file"))
	assert.False(t, env.approvals.RequiresApproval("search_in_code"))

	flagged := NewApprovalService(env.client, env.bus, []string{"drop_database"})
	assert.True(t, flagged.RequiresApproval("drop_database"))
	assert.True(t, flagged.RequiresApproval("write_file"), "built-in set stays gated")
}

func TestCreatePending_EmitsAndIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	args := map[string]any{"path": "main.go", "content": "package main"}
	pa, err := env.approvals.CreatePending(ctx, sess.ID, "call_1", "write_file", args)
	require.NoError(t, err)
	assert.Equal(t, "call_1", pa.ID)
	assert.Equal(t, pendingapproval.StatusPending, pa.Status)
	assert.Equal(t, "main.go", pa.Arguments["path"])

	dup, err := env.approvals.CreatePending(ctx, sess.ID, "call_1", "write_file", args)
	require.NoError(t, err)
	assert.Equal(t, pa.ID, dup.ID)

	env.recorder.waitFor(t, events.EventHITLRequested, 1)
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, env.recorder.byType(events.EventHITLRequested), 1,
		"duplicate create must not emit a second event")
}

func TestListPending_OldestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	for i, callID := range []string{"call_a", "call_b", "call_c"} {
		_, err := env.approvals.CreatePending(ctx, sess.ID, callID, "execute_command", map[string]any{"n": i})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	pending, err := env.approvals.ListPending(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "call_a", pending[0].ID)
	assert.Equal(t, "call_c", pending[2].ID)
}

func TestResolve_ApproveRemovesRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	args := map[string]any{"command": "go test ./..."}
	_, err = env.approvals.CreatePending(ctx, sess.ID, "call_1", "execute_command", args)
	require.NoError(t, err)

	resolved, err := env.approvals.Resolve(ctx, models.ResolveApprovalRequest{
		CallID:   "call_1",
		Decision: models.DecisionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, "execute_command", resolved.ToolName)
	assert.Equal(t, models.DecisionApprove, resolved.Decision)
	assert.Equal(t, "go test ./...", resolved.Arguments["command"])

	pending, err := env.approvals.ListPending(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, pending, "resolved approvals leave the pending set")

	// Second resolve of the same call is a no-op.
	_, err = env.approvals.Resolve(ctx, models.ResolveApprovalRequest{
		CallID:   "call_1",
		Decision: models.DecisionApprove,
	})
	assert.ErrorIs(t, err, ErrAlreadyResolved)

	got := env.recorder.waitFor(t, events.EventHITLDecided, 1)
	p := got[0].Payload.(events.HITLDecidedPayload)
	assert.Equal(t, "call_1", p.CallID)
	assert.Equal(t, "approve", p.Decision)
}

func TestResolve_EditSubstitutesArguments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	_, err = env.approvals.CreatePending(ctx, sess.ID, "call_1", "write_file",
		map[string]any{"path": "prod.yaml", "content": "replicas: 100"})
	require.NoError(t, err)

	resolved, err := env.approvals.Resolve(ctx, models.ResolveApprovalRequest{
		CallID:            "call_1",
		Decision:          models.DecisionEdit,
		Feedback:          "scale down first",
		ModifiedArguments: map[string]any{"path": "prod.yaml", "content": "replicas: 3"},
	})
	require.NoError(t, err)
	assert.Equal(t, "replicas: 3", resolved.Arguments["content"])
	assert.Equal(t, "scale down first", resolved.Feedback)
}

func TestResolve_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.ResolveApprovalRequest
	}{
		{
			name: "missing call id",
			req:  models.ResolveApprovalRequest{Decision: models.DecisionApprove},
		},
		{
			name: "unknown decision",
			req:  models.ResolveApprovalRequest{CallID: "call_1", Decision: "maybe"},
		},
		{
			name: "edit without modified arguments",
			req:  models.ResolveApprovalRequest{CallID: "call_1", Decision: models.DecisionEdit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.approvals.Resolve(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestDeleteStale(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	_, err = env.approvals.CreatePending(ctx, sess.ID, "call_old", "write_file", nil)
	require.NoError(t, err)
	_, err = env.approvals.CreatePending(ctx, sess.ID, "call_new", "write_file", nil)
	require.NoError(t, err)

	_, err = env.client.ExecContext(ctx,
		"UPDATE pending_approvals SET created_at = $1 WHERE call_id = $2",
		time.Now().Add(-25*time.Hour), "call_old")
	require.NoError(t, err)

	count, err := env.approvals.DeleteStale(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	pending, err := env.approvals.ListPending(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "call_new", pending[0].ID)
}
