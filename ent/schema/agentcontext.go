package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentContext holds the schema definition for the AgentContext entity.
// Exactly one context exists per session (created lazily on first use);
// it tracks which agent currently serves the conversation.
type AgentContext struct {
	ent.Schema
}

// Fields of the AgentContext.
func (AgentContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("context_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique().
			Immutable(),
		field.Enum("current_agent").
			Values("orchestrator", "coder", "architect", "debug", "ask", "universal").
			Default("orchestrator"),
		field.Int("switch_count").
			Default(0).
			Comment("Always equals the number of agent_switches rows for this context"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_switch_at").
			Optional().
			Nillable(),
		field.JSON("context_metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the AgentContext.
func (AgentContext) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("agent_context").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("switches", AgentSwitch.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentContext.
func (AgentContext) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("current_agent"),
	}
}
