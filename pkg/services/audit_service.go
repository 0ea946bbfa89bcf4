package services

import (
	"context"
	"fmt"
	"time"

	"github.com/switchyard-ai/switchyard/ent"
	"github.com/switchyard-ai/switchyard/ent/auditlog"
	"github.com/switchyard-ai/switchyard/pkg/events"
)

// AuditService persists the durable audit trail fed by the event bus
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// WriteAudit implements events.AuditSink. Payloads arrive already masked
// and size-capped by the audit logger.
func (s *AuditService) WriteAudit(httpCtx context.Context, entry events.AuditEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.AuditLog.Create().
		SetID(entry.EventID).
		SetEventType(entry.EventType).
		SetPayload(entry.Payload).
		SetCreatedAt(entry.Timestamp)
	if entry.SessionID != "" {
		builder.SetSessionID(entry.SessionID)
	}
	if entry.CorrelationID != "" {
		builder.SetCorrelationID(entry.CorrelationID)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}

// ListBySession returns a session's audit entries oldest first. A positive
// limit caps the result.
func (s *AuditService) ListBySession(ctx context.Context, sessionID string, limit int) ([]*ent.AuditLog, error) {
	query := s.client.AuditLog.Query().
		Where(auditlog.SessionIDEQ(sessionID)).
		Order(ent.Asc(auditlog.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	entries, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}

// CleanupOldEntries removes audit rows older than the retention period.
func (s *AuditService) CleanupOldEntries(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("retention duration must be positive, got %s", olderThan)
	}

	cutoff := time.Now().Add(-olderThan)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.AuditLog.Delete().
		Where(auditlog.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup audit entries: %w", err)
	}
	return count, nil
}
