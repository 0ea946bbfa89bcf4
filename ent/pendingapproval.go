// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/switchyard-ai/switchyard/ent/pendingapproval"
	"github.com/switchyard-ai/switchyard/ent/session"
)

// PendingApproval is the model entity for the PendingApproval schema.
type PendingApproval struct {
	config `json:"-"`
	// ID of the ent.
	// The tool call id the approval gates
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// Arguments holds the value of the "arguments" field.
	Arguments map[string]interface{} `json:"arguments,omitempty"`
	// Status holds the value of the "status" field.
	Status pendingapproval.Status `json:"status,omitempty"`
	// DecisionFeedback holds the value of the "decision_feedback" field.
	DecisionFeedback *string `json:"decision_feedback,omitempty"`
	// ModifiedArguments holds the value of the "modified_arguments" field.
	ModifiedArguments map[string]interface{} `json:"modified_arguments,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PendingApprovalQuery when eager-loading is set.
	Edges        PendingApprovalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PendingApprovalEdges holds the relations/edges for other nodes in the graph.
type PendingApprovalEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PendingApprovalEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PendingApproval) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pendingapproval.FieldArguments, pendingapproval.FieldModifiedArguments:
			values[i] = new([]byte)
		case pendingapproval.FieldID, pendingapproval.FieldSessionID, pendingapproval.FieldToolName, pendingapproval.FieldStatus, pendingapproval.FieldDecisionFeedback:
			values[i] = new(sql.NullString)
		case pendingapproval.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PendingApproval fields.
func (_m *PendingApproval) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pendingapproval.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pendingapproval.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case pendingapproval.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case pendingapproval.FieldArguments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field arguments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Arguments); err != nil {
					return fmt.Errorf("unmarshal field arguments: %w", err)
				}
			}
		case pendingapproval.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pendingapproval.Status(value.String)
			}
		case pendingapproval.FieldDecisionFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision_feedback", values[i])
			} else if value.Valid {
				_m.DecisionFeedback = new(string)
				*_m.DecisionFeedback = value.String
			}
		case pendingapproval.FieldModifiedArguments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field modified_arguments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModifiedArguments); err != nil {
					return fmt.Errorf("unmarshal field modified_arguments: %w", err)
				}
			}
		case pendingapproval.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PendingApproval.
// This includes values selected through modifiers, order, etc.
func (_m *PendingApproval) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the PendingApproval entity.
func (_m *PendingApproval) QuerySession() *SessionQuery {
	return NewPendingApprovalClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this PendingApproval.
// Note that you need to call PendingApproval.Unwrap() before calling this method if this PendingApproval
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PendingApproval) Update() *PendingApprovalUpdateOne {
	return NewPendingApprovalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PendingApproval entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PendingApproval) Unwrap() *PendingApproval {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PendingApproval is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PendingApproval) String() string {
	var builder strings.Builder
	builder.WriteString("PendingApproval(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("arguments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Arguments))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.DecisionFeedback; v != nil {
		builder.WriteString("decision_feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("modified_arguments=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModifiedArguments))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PendingApprovals is a parsable slice of PendingApproval.
type PendingApprovals []*PendingApproval
