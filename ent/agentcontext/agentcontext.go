// Code generated by ent, DO NOT EDIT.

package agentcontext

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentcontext type in the database.
	Label = "agent_context"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "context_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCurrentAgent holds the string denoting the current_agent field in the database.
	FieldCurrentAgent = "current_agent"
	// FieldSwitchCount holds the string denoting the switch_count field in the database.
	FieldSwitchCount = "switch_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastSwitchAt holds the string denoting the last_switch_at field in the database.
	FieldLastSwitchAt = "last_switch_at"
	// FieldContextMetadata holds the string denoting the context_metadata field in the database.
	FieldContextMetadata = "context_metadata"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeSwitches holds the string denoting the switches edge name in mutations.
	EdgeSwitches = "switches"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// AgentSwitchFieldID holds the string denoting the ID field of the AgentSwitch.
	AgentSwitchFieldID = "switch_id"
	// Table holds the table name of the agentcontext in the database.
	Table = "agent_contexts"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "agent_contexts"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// SwitchesTable is the table that holds the switches relation/edge.
	SwitchesTable = "agent_switches"
	// SwitchesInverseTable is the table name for the AgentSwitch entity.
	// It exists in this package in order to avoid circular dependency with the "agentswitch" package.
	SwitchesInverseTable = "agent_switches"
	// SwitchesColumn is the table column denoting the switches relation/edge.
	SwitchesColumn = "context_id"
)

// Columns holds all SQL columns for agentcontext fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldCurrentAgent,
	FieldSwitchCount,
	FieldCreatedAt,
	FieldLastSwitchAt,
	FieldContextMetadata,
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
	// DefaultSwitchCount holds the default value on creation for the "switch_count" field.
	DefaultSwitchCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// CurrentAgent defines the type for the "current_agent" enum field.
type CurrentAgent string

// CurrentAgentOrchestrator is the default value of the CurrentAgent enum.
const DefaultCurrentAgent = CurrentAgentOrchestrator

// CurrentAgent values.
const (
	CurrentAgentOrchestrator CurrentAgent = "orchestrator"
	CurrentAgentCoder        CurrentAgent = "coder"
	CurrentAgentArchitect    CurrentAgent = "architect"
	CurrentAgentDebug        CurrentAgent = "debug"
	CurrentAgentAsk          CurrentAgent = "ask"
	CurrentAgentUniversal    CurrentAgent = "universal"
)

func (ca CurrentAgent) String() string {
	return string(ca)
}

// CurrentAgentValidator is a validator for the "current_agent" field enum values. It is called by the builders before save.
func CurrentAgentValidator(ca CurrentAgent) error {
	switch ca {
	case CurrentAgentOrchestrator, CurrentAgentCoder, CurrentAgentArchitect, CurrentAgentDebug, CurrentAgentAsk, CurrentAgentUniversal:
		return nil
	default:
		return fmt.Errorf("agentcontext: invalid enum value for current_agent field: %q", ca)
	}
}

// OrderOption defines the ordering options for the AgentContext queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCurrentAgent orders the results by the current_agent field.
func ByCurrentAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentAgent, opts...).ToFunc()
}

// BySwitchCount orders the results by the switch_count field.
func BySwitchCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSwitchCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastSwitchAt orders the results by the last_switch_at field.
func ByLastSwitchAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSwitchAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// BySwitchesCount orders the results by switches count.
func BySwitchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSwitchesStep(), opts...)
	}
}

// BySwitches orders the results by switches terms.
func BySwitches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSwitchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
	)
}
func newSwitchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SwitchesInverseTable, AgentSwitchFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SwitchesTable, SwitchesColumn),
	)
}
