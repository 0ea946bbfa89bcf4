package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSwitch holds the schema definition for the AgentSwitch entity.
// One row per recorded transition in an AgentContext's history.
type AgentSwitch struct {
	ent.Schema
}

// Fields of the AgentSwitch.
func (AgentSwitch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("switch_id").
			Unique().
			Immutable(),
		field.String("context_id").
			Immutable(),
		field.String("from_agent").
			Immutable(),
		field.String("to_agent").
			Immutable(),
		field.Text("reason").
			Default("").
			Immutable(),
		field.Time("switched_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentSwitch.
func (AgentSwitch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("context", AgentContext.Type).
			Ref("switches").
			Field("context_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentSwitch.
func (AgentSwitch) Indexes() []ent.Index {
	return []ent.Index{
		// History reads in order
		index.Fields("context_id", "switched_at"),
	}
}
