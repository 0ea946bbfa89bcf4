package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PendingApproval holds the schema definition for the PendingApproval entity.
// Created when a HITL-gated tool call is emitted; the row is deleted when the
// user decides, so only unresolved approvals are ever stored.
type PendingApproval struct {
	ent.Schema
}

// Fields of the PendingApproval.
func (PendingApproval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("call_id").
			Unique().
			Immutable().
			Comment("The tool call id the approval gates"),
		field.String("session_id").
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.JSON("arguments", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "approved", "rejected", "edited").
			Default("pending"),
		field.String("decision_feedback").
			Optional().
			Nillable(),
		field.JSON("modified_arguments", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PendingApproval.
func (PendingApproval) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("pending_approvals").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PendingApproval.
func (PendingApproval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		// Cleanup sweeps by age
		index.Fields("created_at"),
	}
}
