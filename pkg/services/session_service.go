package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/switchyard-ai/switchyard/ent"
	"github.com/switchyard-ai/switchyard/ent/message"
	"github.com/switchyard-ai/switchyard/ent/pendingapproval"
	"github.com/switchyard-ai/switchyard/ent/session"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/models"
)

// SessionService manages session lifecycle and the append-only message log
type SessionService struct {
	client *ent.Client
	bus    *events.Bus
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client, bus *events.Bus) *SessionService {
	return &SessionService{client: client, bus: bus}
}

// CreateSession creates a session with its agent context. Idempotent: when
// the requested ID belongs to an active session, that session is returned
// unchanged and no event is emitted. An ID colliding with a soft-deleted
// session gets a fresh ID instead.
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	// Validate input
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sessionID := req.SessionID
	if sessionID != "" {
		existing, err := s.client.Session.Query().
			Where(session.IDEQ(sessionID)).
			Only(ctx)
		switch {
		case err == nil && existing.DeletedAt == nil:
			return existing, nil
		case err == nil:
			// ID is occupied by a soft-deleted session; mint a new one.
			sessionID = uuid.New().String()
		case !ent.IsNotFound(err):
			return nil, fmt.Errorf("failed to check existing session: %w", err)
		}
	} else {
		sessionID = uuid.New().String()
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	builder := tx.Session.Create().
		SetID(sessionID).
		SetUserID(req.UserID).
		SetIsActive(true).
		SetCreatedAt(now).
		SetLastActivityAt(now)
	if req.Metadata != nil {
		builder.SetSessionMetadata(req.Metadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race on the same ID; the winner's session is
			// the canonical one.
			if existing, gerr := s.client.Session.Query().
				Where(session.IDEQ(sessionID), session.DeletedAtIsNil()).
				Only(ctx); gerr == nil {
				return existing, nil
			}
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Agent context starts on the orchestrator in every mode.
	_, err = tx.AgentContext.Create().
		SetID(uuid.New().String()).
		SetSessionID(created.ID).
		SetCreatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent context: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.bus.PublishSessionCreated(httpCtx, created.ID, events.SessionCreatedPayload{
		UserID: created.UserID,
	})

	return created, nil
}

// GetSession retrieves a session by ID, optionally loading its messages in
// sequence order. Soft-deleted sessions report ErrSessionDeleted.
func (s *SessionService) GetSession(ctx context.Context, sessionID string, includeMessages bool) (*ent.Session, error) {
	query := s.client.Session.Query().Where(session.IDEQ(sessionID))

	if includeMessages {
		query = query.WithMessages(func(q *ent.MessageQuery) {
			q.Order(ent.Asc(message.FieldSequence))
		})
	}

	sess, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if sess.DeletedAt != nil {
		return nil, ErrSessionDeleted
	}

	return sess, nil
}

// ListSessions lists sessions with filtering and pagination, newest
// activity first.
func (s *SessionService) ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.Session.Query()

	if filters.UserID != "" {
		query = query.Where(session.UserIDEQ(filters.UserID))
	}
	if !filters.IncludeDeleted {
		query = query.Where(session.DeletedAtIsNil())
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	page := filters.Page
	if page <= 0 {
		page = 1
	}
	size := filters.Size
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}

	sessions, err := query.
		Limit(size).
		Offset((page - 1) * size).
		Order(ent.Desc(session.FieldLastActivityAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	pages := total / size
	if total%size != 0 {
		pages++
	}

	return &models.SessionListResponse{
		Sessions: sessions,
		Pagination: models.Pagination{
			Page:  page,
			Size:  size,
			Total: total,
			Pages: pages,
		},
	}, nil
}

// AddMessage appends a message to a session's log and bumps
// last_activity_at in the same transaction. Messages are immutable once
// written; sequence numbers are dense and start at 1.
func (s *SessionService) AddMessage(httpCtx context.Context, req models.AddMessageRequest) (*ent.Message, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	switch req.Role {
	case message.RoleSystem, message.RoleUser, message.RoleAssistant, message.RoleTool:
	default:
		return nil, NewValidationError("role", fmt.Sprintf("unknown role %q", req.Role))
	}
	if req.Role == message.RoleTool {
		if req.ToolCallID == "" {
			return nil, NewValidationError("tool_call_id", "required for tool messages")
		}
		if req.ToolName == "" {
			return nil, NewValidationError("tool_name", "required for tool messages")
		}
	}
	if len(req.ToolCalls) > 0 && req.Role != message.RoleAssistant {
		return nil, NewValidationError("tool_calls", "only assistant messages may carry tool calls")
	}
	if req.Content == "" && req.Role != message.RoleAssistant && req.Role != message.RoleTool {
		return nil, NewValidationError("content", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	sess, err := tx.Session.Query().
		Where(session.IDEQ(req.SessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if sess.DeletedAt != nil {
		return nil, ErrSessionDeleted
	}

	// Tool results must answer a tool call recorded on an earlier
	// assistant message of the same session.
	if req.Role == message.RoleTool {
		paired, err := tx.Message.Query().
			Where(
				message.SessionIDEQ(req.SessionID),
				message.RoleEQ(message.RoleAssistant),
			).
			Where(func(sel *sql.Selector) {
				sel.Where(sql.ExprP("tool_calls @> $1::jsonb", fmt.Sprintf(`[{"id":%q}]`, req.ToolCallID)))
			}).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check tool call pairing: %w", err)
		}
		if !paired {
			return nil, NewValidationError("tool_call_id", fmt.Sprintf("no assistant tool call with id %q", req.ToolCallID))
		}
	}

	count, err := tx.Message.Query().
		Where(message.SessionIDEQ(req.SessionID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}
	sequence := count + 1

	now := time.Now()
	builder := tx.Message.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetSequence(sequence).
		SetRole(req.Role).
		SetContent(req.Content).
		SetCreatedAt(now)

	if len(req.ToolCalls) > 0 {
		builder.SetToolCalls(models.ToolCallsToJSON(req.ToolCalls))
	}
	if req.ToolCallID != "" {
		builder.SetToolCallID(req.ToolCallID)
	}
	if req.ToolName != "" {
		builder.SetToolName(req.ToolName)
	}
	if req.TokenCount != nil {
		builder.SetTokenCount(*req.TokenCount)
	}
	if req.Metadata != nil {
		builder.SetMessageMetadata(req.Metadata)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	// Activity moves forward with every append, never backward.
	if sess.LastActivityAt.Before(now) {
		if err := tx.Session.UpdateOneID(req.SessionID).
			SetLastActivityAt(now).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to update session activity: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.bus.PublishMessageAppended(httpCtx, req.SessionID, events.MessageAppendedPayload{
		MessageID:     msg.ID,
		Role:          string(msg.Role),
		Sequence:      msg.Sequence,
		ContentLength: len(msg.Content),
		ToolName:      req.ToolName,
		ToolCallID:    req.ToolCallID,
		ToolCallCount: len(req.ToolCalls),
	})

	return msg, nil
}

// GetHistory returns a session's messages in sequence order. A positive
// limit keeps only the newest messages, still oldest-first, which is the
// shape prompt construction wants.
func (s *SessionService) GetHistory(ctx context.Context, sessionID string, limit int) ([]*ent.Message, error) {
	if _, err := s.GetSession(ctx, sessionID, false); err != nil {
		return nil, err
	}

	if limit <= 0 {
		msgs, err := s.client.Message.Query().
			Where(message.SessionIDEQ(sessionID)).
			Order(ent.Asc(message.FieldSequence)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get history: %w", err)
		}
		return msgs, nil
	}

	msgs, err := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Order(ent.Desc(message.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// Touch bumps last_activity_at. Used on turn entry so idle cleanup sees
// sessions with long-running turns as active.
func (s *SessionService) Touch(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Session.UpdateOneID(sessionID).
		SetLastActivityAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// DeleteSession removes a session. Soft deletion marks the row and drops
// pending approvals while keeping history; it is idempotent. Hard deletion
// removes the row and cascades to messages, context, and approvals.
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string, soft bool) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sess, err := s.client.Session.Query().
		Where(session.IDEQ(sessionID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if !soft {
		if err := s.client.Session.DeleteOneID(sessionID).Exec(writeCtx); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return nil
	}

	if sess.DeletedAt != nil {
		return nil
	}

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.Session.UpdateOneID(sessionID).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to soft delete session: %w", err)
	}

	// Approvals are operational state, not history; they go away with the
	// session in either deletion mode.
	if _, err := tx.PendingApproval.Delete().
		Where(pendingapproval.SessionIDEQ(sessionID)).
		Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to remove pending approvals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RestoreSession reactivates a soft-deleted session.
func (s *SessionService) RestoreSession(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Session.UpdateOneID(sessionID).
		ClearDeletedAt().
		SetIsActive(true).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}
	return nil
}

// SoftDeleteInactiveSessions soft deletes sessions whose last activity is
// older than idleFor. Returns how many sessions were marked.
func (s *SessionService) SoftDeleteInactiveSessions(ctx context.Context, idleFor time.Duration) (int, error) {
	if idleFor <= 0 {
		return 0, fmt.Errorf("idle duration must be positive, got %s", idleFor)
	}

	cutoff := time.Now().Add(-idleFor)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Session.Update().
		Where(
			session.LastActivityAtLT(cutoff),
			session.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete inactive sessions: %w", err)
	}

	return count, nil
}

// PurgeDeletedSessions hard deletes sessions that have been soft-deleted
// for longer than deletedFor. Returns the purged IDs so in-memory state
// keyed by session can be released.
func (s *SessionService) PurgeDeletedSessions(ctx context.Context, deletedFor time.Duration) ([]string, error) {
	if deletedFor <= 0 {
		return nil, fmt.Errorf("retention duration must be positive, got %s", deletedFor)
	}

	cutoff := time.Now().Add(-deletedFor)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ids, err := s.client.Session.Query().
		Where(
			session.DeletedAtNotNil(),
			session.DeletedAtLT(cutoff),
		).
		IDs(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to find purgeable sessions: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	if _, err := s.client.Session.Delete().
		Where(session.IDIn(ids...)).
		Exec(writeCtx); err != nil {
		return nil, fmt.Errorf("failed to purge sessions: %w", err)
	}

	return ids, nil
}
