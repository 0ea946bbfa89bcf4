package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/ent/agentcontext"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/models"
)

func TestGetOrCreate_LazilyCreatesContext(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// A session row without a context, as older deployments produced.
	require.NoError(t, env.client.Session.Create().
		SetID("legacy-session").
		SetUserID("user-1").
		SetCreatedAt(time.Now()).
		SetLastActivityAt(time.Now()).
		Exec(ctx))

	ac, err := env.contexts.GetOrCreate(ctx, "legacy-session")
	require.NoError(t, err)
	assert.Equal(t, agentcontext.CurrentAgentOrchestrator, ac.CurrentAgent)
	assert.Equal(t, 0, ac.SwitchCount)

	again, err := env.contexts.GetOrCreate(ctx, "legacy-session")
	require.NoError(t, err)
	assert.Equal(t, ac.ID, again.ID)
}

func TestGetOrCreate_SessionMissingOrDeleted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.contexts.GetOrCreate(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)
	require.NoError(t, env.sessions.DeleteSession(ctx, sess.ID, true))

	_, err = env.contexts.GetOrCreate(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrSessionDeleted)
}

func TestSwitch_RecordsHistoryAndEmits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	ac, err := env.contexts.Switch(ctx, sess.ID, agentcontext.CurrentAgentCoder, "user asked for code changes")
	require.NoError(t, err)
	assert.Equal(t, agentcontext.CurrentAgentCoder, ac.CurrentAgent)
	assert.Equal(t, 1, ac.SwitchCount)
	require.NotNil(t, ac.LastSwitchAt)

	history, err := env.contexts.GetSwitchHistory(ctx, sess.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "orchestrator", history[0].FromAgent)
	assert.Equal(t, "coder", history[0].ToAgent)
	assert.Equal(t, "user asked for code changes", history[0].Reason)

	got := env.recorder.waitFor(t, events.EventAgentSwitched, 1)
	p := got[0].Payload.(events.AgentSwitchedPayload)
	assert.Equal(t, "orchestrator", p.FromAgent)
	assert.Equal(t, "coder", p.ToAgent)
	assert.Equal(t, 1, p.SwitchCount)
}

func TestSwitch_SameAgentIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	_, err = env.contexts.Switch(ctx, sess.ID, agentcontext.CurrentAgentDebug, "investigate failure")
	require.NoError(t, err)

	ac, err := env.contexts.Switch(ctx, sess.ID, agentcontext.CurrentAgentDebug, "again")
	require.NoError(t, err)
	assert.Equal(t, 1, ac.SwitchCount)

	history, err := env.contexts.GetSwitchHistory(ctx, sess.ID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestSwitch_UnknownAgentRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	_, err = env.contexts.Switch(ctx, sess.ID, agentcontext.CurrentAgent("pilot"), "nope")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestSwitch_CountMatchesHistoryLength(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, models.CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	steps := []agentcontext.CurrentAgent{
		agentcontext.CurrentAgentCoder,
		agentcontext.CurrentAgentArchitect,
		agentcontext.CurrentAgentAsk,
		agentcontext.CurrentAgentOrchestrator,
	}
	for _, to := range steps {
		_, err := env.contexts.Switch(ctx, sess.ID, to, "routing")
		require.NoError(t, err)
	}

	ac, err := env.contexts.GetOrCreate(ctx, sess.ID)
	require.NoError(t, err)
	history, err := env.contexts.GetSwitchHistory(ctx, sess.ID, 0)
	require.NoError(t, err)

	assert.Equal(t, len(steps), ac.SwitchCount)
	assert.Len(t, history, ac.SwitchCount, "switch_count always equals history length")

	// History replays the hops in order.
	assert.Equal(t, "orchestrator", history[0].FromAgent)
	assert.Equal(t, "coder", history[0].ToAgent)
	assert.Equal(t, "ask", history[3].FromAgent)
	assert.Equal(t, "orchestrator", history[3].ToAgent)

	current, err := env.contexts.CurrentAgent(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, agentcontext.CurrentAgentOrchestrator, current)
}
