// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/switchyard-ai/switchyard/ent/agentcontext"
	"github.com/switchyard-ai/switchyard/ent/agentswitch"
)

// AgentSwitch is the model entity for the AgentSwitch schema.
type AgentSwitch struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ContextID holds the value of the "context_id" field.
	ContextID string `json:"context_id,omitempty"`
	// FromAgent holds the value of the "from_agent" field.
	FromAgent string `json:"from_agent,omitempty"`
	// ToAgent holds the value of the "to_agent" field.
	ToAgent string `json:"to_agent,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// SwitchedAt holds the value of the "switched_at" field.
	SwitchedAt time.Time `json:"switched_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentSwitchQuery when eager-loading is set.
	Edges        AgentSwitchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentSwitchEdges holds the relations/edges for other nodes in the graph.
type AgentSwitchEdges struct {
	// Context holds the value of the context edge.
	Context *AgentContext `json:"context,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContextOrErr returns the Context value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentSwitchEdges) ContextOrErr() (*AgentContext, error) {
	if e.Context != nil {
		return e.Context, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentcontext.Label}
	}
	return nil, &NotLoadedError{edge: "context"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentSwitch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentswitch.FieldID, agentswitch.FieldContextID, agentswitch.FieldFromAgent, agentswitch.FieldToAgent, agentswitch.FieldReason:
			values[i] = new(sql.NullString)
		case agentswitch.FieldSwitchedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentSwitch fields.
func (_m *AgentSwitch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentswitch.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentswitch.FieldContextID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_id", values[i])
			} else if value.Valid {
				_m.ContextID = value.String
			}
		case agentswitch.FieldFromAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_agent", values[i])
			} else if value.Valid {
				_m.FromAgent = value.String
			}
		case agentswitch.FieldToAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_agent", values[i])
			} else if value.Valid {
				_m.ToAgent = value.String
			}
		case agentswitch.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case agentswitch.FieldSwitchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field switched_at", values[i])
			} else if value.Valid {
				_m.SwitchedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentSwitch.
// This includes values selected through modifiers, order, etc.
func (_m *AgentSwitch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContext queries the "context" edge of the AgentSwitch entity.
func (_m *AgentSwitch) QueryContext() *AgentContextQuery {
	return NewAgentSwitchClient(_m.config).QueryContext(_m)
}

// Update returns a builder for updating this AgentSwitch.
// Note that you need to call AgentSwitch.Unwrap() before calling this method if this AgentSwitch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentSwitch) Update() *AgentSwitchUpdateOne {
	return NewAgentSwitchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentSwitch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentSwitch) Unwrap() *AgentSwitch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentSwitch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentSwitch) String() string {
	var builder strings.Builder
	builder.WriteString("AgentSwitch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("context_id=")
	builder.WriteString(_m.ContextID)
	builder.WriteString(", ")
	builder.WriteString("from_agent=")
	builder.WriteString(_m.FromAgent)
	builder.WriteString(", ")
	builder.WriteString("to_agent=")
	builder.WriteString(_m.ToAgent)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("switched_at=")
	builder.WriteString(_m.SwitchedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentSwitches is a parsable slice of AgentSwitch.
type AgentSwitches []*AgentSwitch
