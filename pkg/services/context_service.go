package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/switchyard-ai/switchyard/ent"
	"github.com/switchyard-ai/switchyard/ent/agentcontext"
	"github.com/switchyard-ai/switchyard/ent/agentswitch"
	"github.com/switchyard-ai/switchyard/ent/session"
	"github.com/switchyard-ai/switchyard/pkg/events"
)

// ContextService tracks which agent controls each session and the history
// of agent switches
type ContextService struct {
	client *ent.Client
	bus    *events.Bus
}

// NewContextService creates a new ContextService
func NewContextService(client *ent.Client, bus *events.Bus) *ContextService {
	return &ContextService{client: client, bus: bus}
}

// GetOrCreate returns the session's agent context, creating it on the
// orchestrator when missing. Creation normally happens with the session;
// this covers sessions that predate the context table.
func (s *ContextService) GetOrCreate(ctx context.Context, sessionID string) (*ent.AgentContext, error) {
	if err := s.checkSessionActive(ctx, sessionID); err != nil {
		return nil, err
	}

	ac, err := s.client.AgentContext.Query().
		Where(agentcontext.SessionIDEQ(sessionID)).
		Only(ctx)
	if err == nil {
		return ac, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get agent context: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.AgentContext.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetCreatedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the create race; the existing row wins.
			return s.client.AgentContext.Query().
				Where(agentcontext.SessionIDEQ(sessionID)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create agent context: %w", err)
	}
	return created, nil
}

// CurrentAgent returns the agent currently controlling the session.
func (s *ContextService) CurrentAgent(ctx context.Context, sessionID string) (agentcontext.CurrentAgent, error) {
	ac, err := s.GetOrCreate(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return ac.CurrentAgent, nil
}

// Switch hands control of the session to another agent, recording a
// history entry and bumping switch_count in one transaction. Switching to
// the current agent is a no-op. Emits AgentSwitched on an actual switch.
func (s *ContextService) Switch(httpCtx context.Context, sessionID string, toAgent agentcontext.CurrentAgent, reason string) (*ent.AgentContext, error) {
	if err := agentcontext.CurrentAgentValidator(toAgent); err != nil {
		return nil, NewValidationError("to_agent", fmt.Sprintf("unknown agent %q", toAgent))
	}

	ac, err := s.GetOrCreate(httpCtx, sessionID)
	if err != nil {
		return nil, err
	}
	if ac.CurrentAgent == toAgent {
		return ac, nil
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	_, err = tx.AgentSwitch.Create().
		SetID(uuid.New().String()).
		SetContextID(ac.ID).
		SetFromAgent(string(ac.CurrentAgent)).
		SetToAgent(string(toAgent)).
		SetReason(reason).
		SetSwitchedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record agent switch: %w", err)
	}

	updated, err := tx.AgentContext.UpdateOneID(ac.ID).
		SetCurrentAgent(toAgent).
		AddSwitchCount(1).
		SetLastSwitchAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update agent context: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.bus.PublishAgentSwitched(httpCtx, sessionID, events.AgentSwitchedPayload{
		FromAgent:   string(ac.CurrentAgent),
		ToAgent:     string(toAgent),
		Reason:      reason,
		SwitchCount: updated.SwitchCount,
	})

	return updated, nil
}

// GetSwitchHistory returns the session's agent switches in chronological
// order. A positive limit caps the result.
func (s *ContextService) GetSwitchHistory(ctx context.Context, sessionID string, limit int) ([]*ent.AgentSwitch, error) {
	ac, err := s.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	query := s.client.AgentSwitch.Query().
		Where(agentswitch.ContextIDEQ(ac.ID)).
		Order(ent.Asc(agentswitch.FieldSwitchedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	switches, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get switch history: %w", err)
	}
	return switches, nil
}

// checkSessionActive verifies the session exists and is not soft-deleted.
func (s *ContextService) checkSessionActive(ctx context.Context, sessionID string) error {
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
