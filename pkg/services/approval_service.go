package services

import (
	"context"
	"fmt"
	"time"

	"github.com/switchyard-ai/switchyard/ent"
	"github.com/switchyard-ai/switchyard/ent/pendingapproval"
	"github.com/switchyard-ai/switchyard/ent/session"
	"github.com/switchyard-ai/switchyard/pkg/events"
	"github.com/switchyard-ai/switchyard/pkg/models"
)

// sideEffectingTools always require human approval before execution.
// Read-only tools never do.
var sideEffectingTools = map[string]bool{
	"write_file":       true,
	"execute_command":  true,
	"create_directory": true,
}

// ApprovalService manages the human-in-the-loop approval gate for
// side-effecting tool calls
type ApprovalService struct {
	client *ent.Client
	bus    *events.Bus

	// destructive holds extra tool names flagged in configuration.
	destructive map[string]bool
}

// NewApprovalService creates a new ApprovalService. destructiveTools lists
// additional tools beyond the built-in side-effecting set that require
// approval.
func NewApprovalService(client *ent.Client, bus *events.Bus, destructiveTools []string) *ApprovalService {
	destructive := make(map[string]bool, len(destructiveTools))
	for _, name := range destructiveTools {
		destructive[name] = true
	}
	return &ApprovalService{client: client, bus: bus, destructive: destructive}
}

// RequiresApproval reports whether a tool call must pause for a human
// decision before executing.
func (s *ApprovalService) RequiresApproval(toolName string) bool {
	return sideEffectingTools[toolName] || s.destructive[toolName]
}

// CreatePending records an approval request for a gated tool call and
// emits HITLRequested. Recreating an existing call_id returns the existing
// record without a second event.
func (s *ApprovalService) CreatePending(httpCtx context.Context, sessionID, callID, toolName string, arguments map[string]interface{}) (*ent.PendingApproval, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if callID == "" {
		return nil, NewValidationError("call_id", "required")
	}
	if toolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}

	if err := s.checkSessionActive(httpCtx, sessionID); err != nil {
		return nil, err
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.PendingApproval.Create().
		SetID(callID).
		SetSessionID(sessionID).
		SetToolName(toolName).
		SetCreatedAt(time.Now())
	if arguments != nil {
		builder.SetArguments(arguments)
	}

	pa, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, gerr := s.client.PendingApproval.Get(ctx, callID)
			if gerr != nil {
				return nil, ErrAlreadyExists
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create pending approval: %w", err)
	}

	s.bus.PublishHITLRequested(httpCtx, sessionID, events.HITLRequestedPayload{
		CallID:   callID,
		ToolName: toolName,
	})

	return pa, nil
}

// ListPending returns a session's unresolved approvals oldest first. Used
// on session resume to replay outstanding requests to the client.
func (s *ApprovalService) ListPending(ctx context.Context, sessionID string) ([]*ent.PendingApproval, error) {
	if err := s.checkSessionActive(ctx, sessionID); err != nil {
		return nil, err
	}

	approvals, err := s.client.PendingApproval.Query().
		Where(
			pendingapproval.SessionIDEQ(sessionID),
			pendingapproval.StatusEQ(pendingapproval.StatusPending),
		).
		Order(ent.Asc(pendingapproval.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	return approvals, nil
}

// Resolve applies a human decision to a pending approval, removes the
// record, and emits HITLDecided. Resolving an unknown or already-resolved
// call_id returns ErrAlreadyResolved so callers can treat it as a no-op.
func (s *ApprovalService) Resolve(httpCtx context.Context, req models.ResolveApprovalRequest) (*models.ResolvedApproval, error) {
	if req.CallID == "" {
		return nil, NewValidationError("call_id", "required")
	}
	if !req.Decision.Valid() {
		return nil, NewValidationError("decision", fmt.Sprintf("unknown decision %q", req.Decision))
	}
	if req.Decision == models.DecisionEdit && req.ModifiedArguments == nil {
		return nil, NewValidationError("modified_arguments", "required for edit decisions")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	pa, err := tx.PendingApproval.Get(ctx, req.CallID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrAlreadyResolved
		}
		return nil, fmt.Errorf("failed to load pending approval: %w", err)
	}

	resolved := &models.ResolvedApproval{
		CallID:    pa.ID,
		SessionID: pa.SessionID,
		ToolName:  pa.ToolName,
		Decision:  req.Decision,
		Feedback:  req.Feedback,
		Arguments: pa.Arguments,
	}
	if req.Decision == models.DecisionEdit {
		resolved.Arguments = req.ModifiedArguments
	}

	// The decision is durable in the audit log; the pending row itself is
	// operational state and goes away once decided.
	if err := tx.PendingApproval.DeleteOneID(req.CallID).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to remove pending approval: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.bus.PublishHITLDecided(httpCtx, pa.SessionID, events.HITLDecidedPayload{
		CallID:   pa.ID,
		ToolName: pa.ToolName,
		Decision: string(req.Decision),
		Feedback: req.Feedback,
	})

	return resolved, nil
}

// DeleteStale removes approvals that have waited longer than maxAge for a
// decision. Run by the cleanup loop so abandoned sessions do not
// accumulate rows.
func (s *ApprovalService) DeleteStale(ctx context.Context, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, fmt.Errorf("max age must be positive, got %s", maxAge)
	}

	cutoff := time.Now().Add(-maxAge)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.PendingApproval.Delete().
		Where(pendingapproval.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale approvals: %w", err)
	}
	return count, nil
}

// checkSessionActive verifies the session exists and is not soft-deleted.
func (s *ApprovalService) checkSessionActive(ctx context.Context, sessionID string) error {
	sess, err := s.client.Session.Query().
		Where(session.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load session: %w", err)
	}
	if sess.DeletedAt != nil {
		return ErrSessionDeleted
	}
	return nil
}
