package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// maxAuditPayloadBytes caps the serialized payload stored per audit row.
// Oversized payloads are replaced with a small routing envelope rather
// than stored partially.
const maxAuditPayloadBytes = 8192

// AuditEntry is one row handed to the sink. The envelope fields map to
// dedicated columns; Payload is the masked, size-capped JSON body.
type AuditEntry struct {
	EventID       string
	EventType     string
	SessionID     string
	CorrelationID string
	Payload       string
	Timestamp     time.Time
}

// AuditSink persists audit entries. Implemented by the audit service; the
// indirection keeps this package free of storage dependencies.
type AuditSink interface {
	WriteAudit(ctx context.Context, entry AuditEntry) error
}

// Masker redacts secrets from serialized payloads before they are stored.
type Masker interface {
	Mask(s string) string
}

// AuditLogger subscribes to every event type and writes one audit row per
// event through the sink.
type AuditLogger struct {
	sink   AuditSink
	masker Masker
	logger *slog.Logger
}

// NewAuditLogger creates an audit logger. masker may be nil when masking
// is disabled.
func NewAuditLogger(sink AuditSink, masker Masker, logger *slog.Logger) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		sink:   sink,
		masker: masker,
		logger: logger.With("component", "audit_logger"),
	}
}

// Name implements Handler.
func (a *AuditLogger) Name() string { return "audit_logger" }

// HandleEvent implements Handler.
func (a *AuditLogger) HandleEvent(ctx context.Context, evt Event) error {
	payload, err := a.renderPayload(evt)
	if err != nil {
		return fmt.Errorf("failed to serialize audit payload for %s: %w", evt.Type, err)
	}

	entry := AuditEntry{
		EventID:       evt.ID,
		EventType:     string(evt.Type),
		SessionID:     evt.SessionID,
		CorrelationID: evt.CorrelationID,
		Payload:       payload,
		Timestamp:     evt.Timestamp,
	}
	if err := a.sink.WriteAudit(ctx, entry); err != nil {
		return fmt.Errorf("failed to write audit entry for %s: %w", evt.Type, err)
	}
	return nil
}

// renderPayload serializes, masks, and size-caps the event payload.
func (a *AuditLogger) renderPayload(evt Event) (string, error) {
	if evt.Payload == nil {
		return "{}", nil
	}

	raw, err := json.Marshal(evt.Payload)
	if err != nil {
		return "", err
	}

	s := string(raw)
	if a.masker != nil {
		s = a.masker.Mask(s)
	}

	if len(s) > maxAuditPayloadBytes {
		s = buildTruncatedPayload(evt, len(s))
		a.logger.Debug("Audit payload truncated",
			"type", evt.Type,
			"event_id", evt.ID)
	}
	return s, nil
}

// buildTruncatedPayload produces the replacement envelope stored when a
// payload exceeds the size cap. Consumers can fetch full details from the
// session history using the event ID.
func buildTruncatedPayload(evt Event, originalBytes int) string {
	env := map[string]any{
		"truncated":      true,
		"original_bytes": originalBytes,
		"type":           evt.Type,
		"event_id":       evt.ID,
	}
	if evt.SessionID != "" {
		env["session_id"] = evt.SessionID
	}
	out, err := json.Marshal(env)
	if err != nil {
		// Envelope is flat strings and ints, marshal cannot realistically fail.
		return `{"truncated":true}`
	}
	return string(out)
}
