// Code generated by ent, DO NOT EDIT.

package pendingapproval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/switchyard-ai/switchyard/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSessionID, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldToolName, v))
}

// DecisionFeedback applies equality check predicate on the "decision_feedback" field. It's identical to DecisionFeedbackEQ.
func DecisionFeedback(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldDecisionFeedback, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldSessionID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldToolName, v))
}

// ArgumentsIsNil applies the IsNil predicate on the "arguments" field.
func ArgumentsIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldArguments))
}

// ArgumentsNotNil applies the NotNil predicate on the "arguments" field.
func ArgumentsNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldArguments))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldStatus, vs...))
}

// DecisionFeedbackEQ applies the EQ predicate on the "decision_feedback" field.
func DecisionFeedbackEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldDecisionFeedback, v))
}

// DecisionFeedbackNEQ applies the NEQ predicate on the "decision_feedback" field.
func DecisionFeedbackNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldDecisionFeedback, v))
}

// DecisionFeedbackIn applies the In predicate on the "decision_feedback" field.
func DecisionFeedbackIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldDecisionFeedback, vs...))
}

// DecisionFeedbackNotIn applies the NotIn predicate on the "decision_feedback" field.
func DecisionFeedbackNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldDecisionFeedback, vs...))
}

// DecisionFeedbackGT applies the GT predicate on the "decision_feedback" field.
func DecisionFeedbackGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldDecisionFeedback, v))
}

// DecisionFeedbackGTE applies the GTE predicate on the "decision_feedback" field.
func DecisionFeedbackGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldDecisionFeedback, v))
}

// DecisionFeedbackLT applies the LT predicate on the "decision_feedback" field.
func DecisionFeedbackLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldDecisionFeedback, v))
}

// DecisionFeedbackLTE applies the LTE predicate on the "decision_feedback" field.
func DecisionFeedbackLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldDecisionFeedback, v))
}

// DecisionFeedbackContains applies the Contains predicate on the "decision_feedback" field.
func DecisionFeedbackContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldDecisionFeedback, v))
}

// DecisionFeedbackHasPrefix applies the HasPrefix predicate on the "decision_feedback" field.
func DecisionFeedbackHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldDecisionFeedback, v))
}

// DecisionFeedbackHasSuffix applies the HasSuffix predicate on the "decision_feedback" field.
func DecisionFeedbackHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldDecisionFeedback, v))
}

// DecisionFeedbackIsNil applies the IsNil predicate on the "decision_feedback" field.
func DecisionFeedbackIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldDecisionFeedback))
}

// DecisionFeedbackNotNil applies the NotNil predicate on the "decision_feedback" field.
func DecisionFeedbackNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldDecisionFeedback))
}

// DecisionFeedbackEqualFold applies the EqualFold predicate on the "decision_feedback" field.
func DecisionFeedbackEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldDecisionFeedback, v))
}

// DecisionFeedbackContainsFold applies the ContainsFold predicate on the "decision_feedback" field.
func DecisionFeedbackContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldDecisionFeedback, v))
}

// ModifiedArgumentsIsNil applies the IsNil predicate on the "modified_arguments" field.
func ModifiedArgumentsIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldModifiedArguments))
}

// ModifiedArgumentsNotNil applies the NotNil predicate on the "modified_arguments" field.
func ModifiedArgumentsNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldModifiedArguments))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.PendingApproval {
	return predicate.PendingApproval(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.PendingApproval {
	return predicate.PendingApproval(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PendingApproval) predicate.PendingApproval {
	return predicate.PendingApproval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PendingApproval) predicate.PendingApproval {
	return predicate.PendingApproval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PendingApproval) predicate.PendingApproval {
	return predicate.PendingApproval(sql.NotPredicates(p))
}
