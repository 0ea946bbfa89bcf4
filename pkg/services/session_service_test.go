package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/ent/agentcontext"
	"github.com/switchyard-ai/switchyard/ent/message"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/models"
)

func TestCreateSession_GeneratesID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "user-1", sess.UserID)
	assert.True(t, sess.IsActive)
	assert.Nil(t, sess.DeletedAt)

	// The agent context is created alongside, parked on the orchestrator.
	ac, err := env.contexts.GetOrCreate(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, agentcontext.CurrentAgentOrchestrator, ac.CurrentAgent)
	assert.Equal(t, 0, ac.SwitchCount)

	got := env.recorder.waitFor(t, events.EventSessionCreated, 1)
	assert.Equal(t, sess.ID, got[0].SessionID)
}

func TestCreateSession_IdempotentOnActiveID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{SessionID: "sess-fixed", UserID: "user-1"})
	require.NoError(t, err)

	second, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{SessionID: "sess-fixed", UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	env.recorder.waitFor(t, events.EventSessionCreated, 1)
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, env.recorder.byType(events.EventSessionCreated), 1,
		"idempotent create must not emit a second event")
}

func TestCreateSession_DeletedIDGetsFreshID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{SessionID: "sess-1", UserID: "user-1"})
	require.NoError(t, err)
	require.NoError(t, env.sessions.DeleteSession(ctx, sess.ID, true))

	recreated, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{SessionID: "sess-1", UserID: "user-1"})
	require.NoError(t, err)
	assert.NotEqual(t, sess.ID, recreated.ID, "deleted ID must not be reused")
	assert.Nil(t, recreated.DeletedAt)
}

func TestCreateSession_RequiresUserID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sessions.CreateSession(context.Background(), models.CreateSessionRequest{})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestAddMessage_AssignsSequenceAndBumpsActivity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)
	createdActivity := sess.LastActivityAt

	m1, err := env.sessions.AddMessage(ctx, models.AddMessageRequest{
		SessionID: sess.ID,
		Role:      message.RoleUser,
		Content:   "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, m1.Sequence)

	m2, err := env.sessions.AddMessage(ctx, models.AddMessageRequest{
		SessionID: sess.ID,
		Role:      message.RoleAssistant,
		Content:   "hi there",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, m2.Sequence)

	reloaded, err := env.sessions.GetSession(ctx, sess.ID, false)
	require.NoError(t, err)
	assert.False(t, reloaded.LastActivityAt.Before(createdActivity))

	got := env.recorder.waitFor(t, events.EventMessageAppended, 2)
	p := got[0].Payload.(events.MessageAppendedPayload)
	assert.Equal(t, "user", p.Role)
	assert.Equal(t, 1, p.Sequence)
	assert.Equal(t, len("hello"), p.ContentLength)
}

func TestAddMessage_ToolPairing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	_, err = env.sessions.AddMessage(ctx, models.AddMessageRequest{
		SessionID: sess.ID,
		Role:      message.RoleAssistant,
		ToolCalls: []models.ToolCall{
			{ID: "call_1", Name: "read_file", Arguments: `{"path":"main.go"}`},
		},
	})
	require.NoError(t, err)

	// Result answering the recorded call is accepted.
	toolMsg, err := env.sessions.AddMessage(ctx, models.AddMessageRequest{
		SessionID:  sess.ID,
		Role:       message.RoleTool,
		Content:    "package main",
		ToolName:   "read_file",
		ToolCallID: "call_1",
	})
	require.NoError(t, err)
	require.NotNil(t, toolMsg.ToolCallID)
	assert.Equal(t, "call_1", *toolMsg.ToolCallID)

	// A result for a call nobody made is rejected.
	_, err = env.sessions.AddMessage(ctx, models.AddMessageRequest{
		SessionID:  sess.ID,
		Role:       message.RoleTool,
		Content:    "orphan",
		ToolName:   "read_file",
		ToolCallID: "call_unknown",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestAddMessage_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  models.AddMessageRequest
	}{
		{
			name: "missing session id",
			req:  models.AddMessageRequest{Role: message.RoleUser, Content: "hi"},
		},
		{
			name: "unknown role",
			req:  models.AddMessageRequest{SessionID: sess.ID, Role: "narrator", Content: "hi"},
		},
		{
			name: "tool message without call id",
			req:  models.AddMessageRequest{SessionID: sess.ID, Role: message.RoleTool, Content: "out", ToolName: "read_file"},
		},
		{
			name: "tool message without tool name",
			req:  models.AddMessageRequest{SessionID: sess.ID, Role: message.RoleTool, Content: "out", ToolCallID: "call_1"},
		},
		{
			name: "tool calls on user message",
			req: models.AddMessageRequest{
				SessionID: sess.ID, Role: message.RoleUser, Content: "hi",
				ToolCalls: []models.ToolCall{{ID: "call_1", Name: "read_file", Arguments: "{}"}},
			},
		},
		{
			name: "empty user content",
			req:  models.AddMessageRequest{SessionID: sess.ID, Role: message.RoleUser},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.sessions.AddMessage(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestAddMessage_SessionMissingOrDeleted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.sessions.AddMessage(ctx, models.AddMessageRequest{
		SessionID: "no-such-session",
		Role:      message.RoleUser,
		Content:   "hi",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)
	require.NoError(t, env.sessions.DeleteSession(ctx, sess.ID, true))

	_, err = env.sessions.AddMessage(ctx, models.AddMessageRequest{
		SessionID: sess.ID,
		Role:      message.RoleUser,
		Content:   "hi",
	})
	assert.ErrorIs(t, err, ErrSessionDeleted)
}

func TestGetSession_WithMessages(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	for _, content := range []string{"one", "two", "three"} {
		_, err := env.sessions.AddMessage(ctx, models.AddMessageRequest{
			SessionID: sess.ID, Role: message.RoleUser, Content: content,
		})
		require.NoError(t, err)
	}

	loaded, err := env.sessions.GetSession(ctx, sess.ID, true)
	require.NoError(t, err)
	require.Len(t, loaded.Edges.Messages, 3)
	for i, m := range loaded.Edges.Messages {
		assert.Equal(t, i+1, m.Sequence)
	}

	_, err = env.sessions.GetSession(ctx, "missing", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetHistory_LastN(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	for _, content := range []string{"m1", "m2", "m3", "m4", "m5"} {
		_, err := env.sessions.AddMessage(ctx, models.AddMessageRequest{
			SessionID: sess.ID, Role: message.RoleUser, Content: content,
		})
		require.NoError(t, err)
	}

	all, err := env.sessions.GetHistory(ctx, sess.ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "m1", all[0].Content)

	last2, err := env.sessions.GetHistory(ctx, sess.ID, 2)
	require.NoError(t, err)
	require.Len(t, last2, 2)
	assert.Equal(t, "m4", last2[0].Content)
	assert.Equal(t, "m5", last2[1].Content)
	assert.Less(t, last2[0].Sequence, last2[1].Sequence, "window stays oldest-first")
}

func TestListSessions_FilterAndPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "alice"})
		require.NoError(t, err)
		ids = append(ids, sess.ID)
	}
	_, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "bob"})
	require.NoError(t, err)

	resp, err := env.sessions.ListSessions(ctx, models.SessionFilters{UserID: "alice", Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Pages)
	assert.Len(t, resp.Sessions, 2)

	page2, err := env.sessions.ListSessions(ctx, models.SessionFilters{UserID: "alice", Page: 2, Size: 2})
	require.NoError(t, err)
	assert.Len(t, page2.Sessions, 1)

	// Deleted sessions disappear unless explicitly included.
	require.NoError(t, env.sessions.DeleteSession(ctx, ids[0], true))
	visible, err := env.sessions.ListSessions(ctx, models.SessionFilters{UserID: "alice"})
	require.NoError(t, err)
	assert.Len(t, visible.Sessions, 2)

	withDeleted, err := env.sessions.ListSessions(ctx, models.SessionFilters{UserID: "alice", IncludeDeleted: true})
	require.NoError(t, err)
	assert.Len(t, withDeleted.Sessions, 3)
}

func TestDeleteSession_SoftRemovesApprovalsAndIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	_, err = env.approvals.CreatePending(ctx, sess.ID, "call_1", "write_file", map[string]any{"path": "a.go"})
	require.NoError(t, err)

	require.NoError(t, env.sessions.DeleteSession(ctx, sess.ID, true))

	_, err = env.sessions.GetSession(ctx, sess.ID, false)
	assert.ErrorIs(t, err, ErrSessionDeleted)

	count, err := env.client.PendingApproval.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "soft delete removes pending approvals")

	// Second delete is a no-op, not an error.
	require.NoError(t, env.sessions.DeleteSession(ctx, sess.ID, true))

	assert.ErrorIs(t, env.sessions.DeleteSession(ctx, "missing", true), ErrNotFound)
}

func TestDeleteSession_HardCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)
	_, err = env.sessions.AddMessage(ctx, models.AddMessageRequest{
		SessionID: sess.ID, Role: message.RoleUser, Content: "hello",
	})
	require.NoError(t, err)

	require.NoError(t, env.sessions.DeleteSession(ctx, sess.ID, false))

	_, err = env.sessions.GetSession(ctx, sess.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)

	msgCount, err := env.client.Message.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, msgCount)
}

func TestRestoreSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)
	require.NoError(t, env.sessions.DeleteSession(ctx, sess.ID, true))
	require.NoError(t, env.sessions.RestoreSession(ctx, sess.ID))

	restored, err := env.sessions.GetSession(ctx, sess.ID, false)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
	assert.Nil(t, restored.DeletedAt)
}

func TestSoftDeleteInactiveSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	idle, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)
	fresh, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	// Age the first session past the idle threshold.
	require.NoError(t, env.client.Session.UpdateOneID(idle.ID).
		SetLastActivityAt(time.Now().Add(-25*time.Hour)).
		Exec(ctx))

	count, err := env.sessions.SoftDeleteInactiveSessions(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = env.sessions.GetSession(ctx, idle.ID, false)
	assert.ErrorIs(t, err, ErrSessionDeleted)
	_, err = env.sessions.GetSession(ctx, fresh.ID, false)
	assert.NoError(t, err)

	_, err = env.sessions.SoftDeleteInactiveSessions(ctx, 0)
	assert.Error(t, err)
}

func TestPurgeDeletedSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	old, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)
	recent, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	require.NoError(t, env.sessions.DeleteSession(ctx, old.ID, true))
	require.NoError(t, env.sessions.DeleteSession(ctx, recent.ID, true))

	// Age the first deletion past the purge threshold.
	require.NoError(t, env.client.Session.UpdateOneID(old.ID).
		SetDeletedAt(time.Now().Add(-31*24*time.Hour)).
		Exec(ctx))

	ids, err := env.sessions.PurgeDeletedSessions(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, old.ID, ids[0])

	_, err = env.sessions.GetSession(ctx, old.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = env.sessions.GetSession(ctx, recent.ID, false)
	assert.ErrorIs(t, err, ErrSessionDeleted, "recently deleted session survives the purge")
}
