package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Messages are append-only: rows are never updated once written.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("sequence").
			Immutable().
			Comment("Session-scoped order; assigned under the session lock"),
		field.Enum("role").
			Values("system", "user", "assistant", "tool").
			Immutable(),
		field.Text("content").
			Default("").
			Immutable().
			Comment("Empty when an assistant message carries only tool calls"),

		// Tool-related fields for native function calling
		field.JSON("tool_calls", []map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("For assistant messages: tool calls requested by the LLM [{id, name, arguments}]"),
		field.String("tool_call_id").
			Optional().
			Nillable().
			Immutable().
			Comment("For tool messages: links the result to the original tool call"),
		field.String("tool_name").
			Optional().
			Nillable().
			Immutable().
			Comment("For tool messages: name of the tool that was called"),

		field.Int("token_count").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("message_metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// History reads in order
		index.Fields("session_id", "sequence"),
		index.Fields("session_id", "created_at"),
		// Pairing lookups by call id
		index.Fields("tool_call_id"),
	}
}
