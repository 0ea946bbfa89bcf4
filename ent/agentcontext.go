// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/switchyard-ai/switchyard/ent/agentcontext"
	"github.com/switchyard-ai/switchyard/ent/session"
)

// AgentContext is the model entity for the AgentContext schema.
type AgentContext struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// CurrentAgent holds the value of the "current_agent" field.
	CurrentAgent agentcontext.CurrentAgent `json:"current_agent,omitempty"`
	// Always equals the number of agent_switches rows for this context
	SwitchCount int `json:"switch_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastSwitchAt holds the value of the "last_switch_at" field.
	LastSwitchAt *time.Time `json:"last_switch_at,omitempty"`
	// ContextMetadata holds the value of the "context_metadata" field.
	ContextMetadata map[string]interface{} `json:"context_metadata,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentContextQuery when eager-loading is set.
	Edges        AgentContextEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentContextEdges holds the relations/edges for other nodes in the graph.
type AgentContextEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// Switches holds the value of the switches edge.
	Switches []*AgentSwitch `json:"switches,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentContextEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// SwitchesOrErr returns the Switches value or an error if the edge
// was not loaded in eager-loading.
func (e AgentContextEdges) SwitchesOrErr() ([]*AgentSwitch, error) {
	if e.loadedTypes[1] {
		return e.Switches, nil
	}
	return nil, &NotLoadedError{edge: "switches"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentContext) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentcontext.FieldContextMetadata:
			values[i] = new([]byte)
		case agentcontext.FieldSwitchCount:
			values[i] = new(sql.NullInt64)
		case agentcontext.FieldID, agentcontext.FieldSessionID, agentcontext.FieldCurrentAgent:
			values[i] = new(sql.NullString)
		case agentcontext.FieldCreatedAt, agentcontext.FieldLastSwitchAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentContext fields.
func (_m *AgentContext) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentcontext.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentcontext.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case agentcontext.FieldCurrentAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_agent", values[i])
			} else if value.Valid {
				_m.CurrentAgent = agentcontext.CurrentAgent(value.String)
			}
		case agentcontext.FieldSwitchCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field switch_count", values[i])
			} else if value.Valid {
				_m.SwitchCount = int(value.Int64)
			}
		case agentcontext.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentcontext.FieldLastSwitchAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_switch_at", values[i])
			} else if value.Valid {
				_m.LastSwitchAt = new(time.Time)
				*_m.LastSwitchAt = value.Time
			}
		case agentcontext.FieldContextMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContextMetadata); err != nil {
					return fmt.Errorf("unmarshal field context_metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentContext.
// This includes values selected through modifiers, order, etc.
func (_m *AgentContext) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the AgentContext entity.
func (_m *AgentContext) QuerySession() *SessionQuery {
	return NewAgentContextClient(_m.config).QuerySession(_m)
}

// QuerySwitches queries the "switches" edge of the AgentContext entity.
func (_m *AgentContext) QuerySwitches() *AgentSwitchQuery {
	return NewAgentContextClient(_m.config).QuerySwitches(_m)
}

// Update returns a builder for updating this AgentContext.
// Note that you need to call AgentContext.Unwrap() before calling this method if this AgentContext
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentContext) Update() *AgentContextUpdateOne {
	return NewAgentContextClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentContext entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentContext) Unwrap() *AgentContext {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentContext is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentContext) String() string {
	var builder strings.Builder
	builder.WriteString("AgentContext(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("current_agent=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentAgent))
	builder.WriteString(", ")
	builder.WriteString("switch_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SwitchCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastSwitchAt; v != nil {
		builder.WriteString("last_switch_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("context_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextMetadata))
	builder.WriteByte(')')
	return builder.String()
}

// AgentContexts is a parsable slice of AgentContext.
type AgentContexts []*AgentContext
