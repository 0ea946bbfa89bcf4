// Code generated by ent, DO NOT EDIT.

package agentswitch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentswitch type in the database.
	Label = "agent_switch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "switch_id"
	// FieldContextID holds the string denoting the context_id field in the database.
	FieldContextID = "context_id"
	// FieldFromAgent holds the string denoting the from_agent field in the database.
	FieldFromAgent = "from_agent"
	// FieldToAgent holds the string denoting the to_agent field in the database.
	FieldToAgent = "to_agent"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldSwitchedAt holds the string denoting the switched_at field in the database.
	FieldSwitchedAt = "switched_at"
	// EdgeContext holds the string denoting the context edge name in mutations.
	EdgeContext = "context"
	// AgentContextFieldID holds the string denoting the ID field of the AgentContext.
	AgentContextFieldID = "context_id"
	// Table holds the table name of the agentswitch in the database.
	Table = "agent_switches"
	// ContextTable is the table that holds the context relation/edge.
	ContextTable = "agent_switches"
	// ContextInverseTable is the table name for the AgentContext entity.
	// It exists in this package in order to avoid circular dependency with the "agentcontext" package.
	ContextInverseTable = "agent_contexts"
	// ContextColumn is the table column denoting the context relation/edge.
	ContextColumn = "context_id"
)

// Columns holds all SQL columns for agentswitch fields.
var Columns = []string{
	FieldID,
	FieldContextID,
	FieldFromAgent,
	FieldToAgent,
	FieldReason,
	FieldSwitchedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultReason holds the default value on creation for the "reason" field.
	DefaultReason string
	// DefaultSwitchedAt holds the default value on creation for the "switched_at" field.
	DefaultSwitchedAt func() time.Time
)

// OrderOption defines the ordering options for the AgentSwitch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContextID orders the results by the context_id field.
func ByContextID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextID, opts...).ToFunc()
}

// ByFromAgent orders the results by the from_agent field.
func ByFromAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromAgent, opts...).ToFunc()
}

// ByToAgent orders the results by the to_agent field.
func ByToAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToAgent, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// BySwitchedAt orders the results by the switched_at field.
func BySwitchedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSwitchedAt, opts...).ToFunc()
}

// ByContextField orders the results by context field.
func ByContextField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContextStep(), sql.OrderByField(field, opts...))
	}
}
func newContextStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContextInverseTable, AgentContextFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContextTable, ContextColumn),
	)
}
