package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/switchyard-ai/switchyard/ent"
	"github.com/switchyard-ai/switchyard/pkg/models"
	"github.com/switchyard-ai/switchyard/pkg/services"
)

// CreateSessionRequest is the HTTP request body for POST /api/v1/sessions.
// The owner always comes from the authenticated principal, never the body.
type CreateSessionRequest struct {
	SessionID string         `json:"session_id,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// requireSession loads the session and enforces ownership for external
// callers. Foreign sessions read as 404 so IDs cannot be probed.
func (s *Server) requireSession(c *gin.Context, sessionID string) (*ent.Session, bool) {
	sess, err := s.sessions.GetSession(c.Request.Context(), sessionID, false)
	if err != nil {
		status, resp := mapServiceError(err)
		c.JSON(status, resp)
		return nil, false
	}
	if !isInternal(c) && sess.UserID != userID(c) {
		c.JSON(http.StatusNotFound, newErrorResponse("not_found", "resource not found"))
		return nil, false
	}
	return sess, true
}

// createSessionHandler handles POST /api/v1/sessions.
func (s *Server) createSessionHandler(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse("validation", "invalid request body: "+err.Error()))
		return
	}

	sess, err := s.sessions.CreateSession(c.Request.Context(), models.CreateSessionRequest{
		SessionID: req.SessionID,
		UserID:    userID(c),
		Metadata:  req.Metadata,
	})
	if err != nil {
		status, resp := mapServiceError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, sess)
}

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")

	// 1. Load and authorize.
	sess, ok := s.requireSession(c, sessionID)
	if !ok {
		return
	}

	// 2. Assemble the detail view: routing state and open approvals.
	ctx := c.Request.Context()
	cur, err := s.contexts.CurrentAgent(ctx, sessionID)
	if err != nil {
		status, resp := mapServiceError(err)
		c.JSON(status, resp)
		return
	}
	pending, err := s.approvals.ListPending(ctx, sessionID)
	if err != nil {
		status, resp := mapServiceError(err)
		c.JSON(status, resp)
		return
	}

	detail := &SessionDetailResponse{
		Session:          sess,
		CurrentAgent:     string(cur),
		PendingApprovals: pending,
	}

	// 3. History is opt-in; it can be large.
	if c.Query("include_messages") == "true" {
		msgs, err := s.sessions.GetHistory(ctx, sessionID, 0)
		if err != nil {
			status, resp := mapServiceError(err)
			c.JSON(status, resp)
			return
		}
		detail.Messages = msgs
	}

	c.JSON(http.StatusOK, detail)
}

// listSessionsHandler handles GET /api/v1/sessions. External callers see
// only their own sessions; internal callers may scope by user_id and
// include soft-deleted rows.
func (s *Server) listSessionsHandler(c *gin.Context) {
	filters := models.SessionFilters{UserID: userID(c)}
	if isInternal(c) {
		filters.UserID = c.Query("user_id")
		filters.IncludeDeleted = c.Query("include_deleted") == "true"
	}

	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			filters.Page = p
		}
	}
	if v := c.Query("size"); v != "" {
		if sz, err := strconv.Atoi(v); err == nil && sz > 0 {
			filters.Size = sz
		}
	}

	result, err := s.sessions.ListSessions(c.Request.Context(), filters)
	if err != nil {
		status, resp := mapServiceError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, result)
}

// deleteSessionHandler handles DELETE /api/v1/sessions/:id. Soft by
// default; ?hard=true removes the row and cascades. Purging an already
// soft-deleted session is reserved for internal callers.
func (s *Server) deleteSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	hard := c.Query("hard") == "true"

	sess, err := s.sessions.GetSession(c.Request.Context(), sessionID, false)
	switch {
	case err == nil:
		if !isInternal(c) && sess.UserID != userID(c) {
			c.JSON(http.StatusNotFound, newErrorResponse("not_found", "resource not found"))
			return
		}
	case errors.Is(err, services.ErrSessionDeleted):
		if !hard || !isInternal(c) {
			status, resp := mapServiceError(err)
			c.JSON(status, resp)
			return
		}
	default:
		status, resp := mapServiceError(err)
		c.JSON(status, resp)
		return
	}

	if err := s.sessions.DeleteSession(c.Request.Context(), sessionID, !hard); err != nil {
		status, resp := mapServiceError(err)
		c.JSON(status, resp)
		return
	}

	msg := "session deleted"
	if !hard {
		msg = "session soft-deleted; history retained"
	}
	c.JSON(http.StatusOK, &DeleteSessionResponse{
		SessionID: sessionID,
		Hard:      hard,
		Message:   msg,
	})
}
