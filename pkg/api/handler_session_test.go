package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchyard-ai/switchyard/ent/message"
	"github.com/switchyard-ai/switchyard/pkg/models"
)

// sessionDetail mirrors the GET /sessions/:id response shape for tests.
type sessionDetail struct {
	Session struct {
		ID       string `json:"id"`
		UserID   string `json:"user_id"`
		IsActive bool   `json:"is_active"`
	} `json:"session"`
	CurrentAgent     string           `json:"current_agent"`
	PendingApprovals []map[string]any `json:"pending_approvals"`
	Messages         []struct {
		Sequence int    `json:"sequence"`
		Role     string `json:"role"`
		Content  string `json:"content"`
	} `json:"messages"`
}

func TestCreateSessionHandler(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/sessions", CreateSessionRequest{
		Metadata: map[string]any{"channel": "cli"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var sess struct {
		ID       string         `json:"id"`
		UserID   string         `json:"user_id"`
		IsActive bool           `json:"is_active"`
		Metadata map[string]any `json:"session_metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, testUserID, sess.UserID, "owner comes from the principal, not the body")
	assert.True(t, sess.IsActive)
	assert.Equal(t, map[string]any{"channel": "cli"}, sess.Metadata)

	// Creating with the same ID again returns the existing session.
	rec = ts.do(t, http.MethodPost, "/api/v1/sessions", CreateSessionRequest{SessionID: sess.ID})
	require.Equal(t, http.StatusCreated, rec.Code)
	var again struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &again))
	assert.Equal(t, sess.ID, again.ID)
}

func TestGetSessionHandler(t *testing.T) {
	ts := newTestServer(t)
	id := ts.newSession(t)

	for i, content := range []string{"first", "second"} {
		_, err := ts.sessions.AddMessage(context.Background(), models.AddMessageRequest{
			SessionID: id,
			Role:      message.RoleUser,
			Content:   content,
		})
		require.NoError(t, err, "message %d", i)
	}

	t.Run("without messages", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/sessions/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var detail sessionDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
		assert.Equal(t, id, detail.Session.ID)
		assert.Equal(t, "orchestrator", detail.CurrentAgent)
		assert.Empty(t, detail.PendingApprovals)
		assert.Empty(t, detail.Messages)
	})

	t.Run("with messages", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/sessions/"+id+"?include_messages=true", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var detail sessionDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
		require.Len(t, detail.Messages, 2)
		assert.Equal(t, 1, detail.Messages[0].Sequence)
		assert.Equal(t, "first", detail.Messages[0].Content)
		assert.Equal(t, "second", detail.Messages[1].Content)
	})

	t.Run("unknown session", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/sessions/no-such-session", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", errorKind(t, rec))
	})
}

func TestGetSessionHandler_ForeignSessionReadsAsMissing(t *testing.T) {
	ts := newTestServer(t)

	foreign, err := ts.sessions.CreateSession(context.Background(), models.CreateSessionRequest{
		UserID: "someone-else",
	})
	require.NoError(t, err)

	rec := ts.do(t, http.MethodGet, "/api/v1/sessions/"+foreign.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorKind(t, rec))
}

func TestListSessionsHandler(t *testing.T) {
	ts := newTestServer(t)

	var ids []string
	for i := 0; i < 3; i++ {
		ids = append(ids, ts.newSession(t))
	}
	_, err := ts.sessions.CreateSession(context.Background(), models.CreateSessionRequest{
		UserID: "someone-else",
	})
	require.NoError(t, err)

	var list struct {
		Sessions []struct {
			ID     string `json:"id"`
			UserID string `json:"user_id"`
		} `json:"sessions"`
		Pagination struct {
			Page  int `json:"page"`
			Size  int `json:"size"`
			Total int `json:"total"`
			Pages int `json:"pages"`
		} `json:"pagination"`
	}

	// Only the caller's sessions are visible.
	rec := ts.do(t, http.MethodGet, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Sessions, 3)
	for _, s := range list.Sessions {
		assert.Equal(t, testUserID, s.UserID)
		assert.Contains(t, ids, s.ID)
	}
	assert.Equal(t, 3, list.Pagination.Total)

	// Pagination math carries through.
	rec = ts.do(t, http.MethodGet, "/api/v1/sessions?page=2&size=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Sessions, 1)
	assert.Equal(t, 2, list.Pagination.Page)
	assert.Equal(t, 2, list.Pagination.Size)
	assert.Equal(t, 3, list.Pagination.Total)
	assert.Equal(t, 2, list.Pagination.Pages)
}

func TestDeleteSessionHandler(t *testing.T) {
	ts := newTestServer(t)

	t.Run("soft delete retains history", func(t *testing.T) {
		id := ts.newSession(t)

		rec := ts.do(t, http.MethodDelete, "/api/v1/sessions/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp DeleteSessionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Hard)

		rec = ts.do(t, http.MethodGet, "/api/v1/sessions/"+id, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "session_deleted", errorKind(t, rec))
	})

	t.Run("hard delete removes the row", func(t *testing.T) {
		id := ts.newSession(t)

		rec := ts.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/sessions/%s?hard=true", id), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.do(t, http.MethodGet, "/api/v1/sessions/"+id, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", errorKind(t, rec))
	})

	t.Run("external callers cannot purge soft-deleted sessions", func(t *testing.T) {
		id := ts.newSession(t)
		rec := ts.do(t, http.MethodDelete, "/api/v1/sessions/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/sessions/%s?hard=true", id), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "session_deleted", errorKind(t, rec))
	})

	t.Run("foreign session", func(t *testing.T) {
		foreign, err := ts.sessions.CreateSession(context.Background(), models.CreateSessionRequest{
			UserID: "someone-else",
		})
		require.NoError(t, err)

		rec := ts.do(t, http.MethodDelete, "/api/v1/sessions/"+foreign.ID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
