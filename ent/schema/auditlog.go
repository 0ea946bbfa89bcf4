package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Durable trail of bus events, written by the audit subscriber. No foreign
// key to sessions: audit rows outlive session deletion.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("event_type").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("correlation_id").
			Optional().
			Nillable().
			Immutable(),
		field.Text("payload").
			Default("").
			Immutable().
			Comment("JSON event payload, truncated to 8KB and masked before write"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("event_type"),
		index.Fields("created_at"),
	}
}
