// Code generated by ent, DO NOT EDIT.

package agentcontext

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/switchyard-ai/switchyard/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldSessionID, v))
}

// SwitchCount applies equality check predicate on the "switch_count" field. It's identical to SwitchCountEQ.
func SwitchCount(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldSwitchCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldCreatedAt, v))
}

// LastSwitchAt applies equality check predicate on the "last_switch_at" field. It's identical to LastSwitchAtEQ.
func LastSwitchAt(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldLastSwitchAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldContainsFold(FieldSessionID, v))
}

// CurrentAgentEQ applies the EQ predicate on the "current_agent" field.
func CurrentAgentEQ(v CurrentAgent) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldCurrentAgent, v))
}

// CurrentAgentNEQ applies the NEQ predicate on the "current_agent" field.
func CurrentAgentNEQ(v CurrentAgent) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldCurrentAgent, v))
}

// CurrentAgentIn applies the In predicate on the "current_agent" field.
func CurrentAgentIn(vs ...CurrentAgent) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldCurrentAgent, vs...))
}

// CurrentAgentNotIn applies the NotIn predicate on the "current_agent" field.
func CurrentAgentNotIn(vs ...CurrentAgent) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldCurrentAgent, vs...))
}

// SwitchCountEQ applies the EQ predicate on the "switch_count" field.
func SwitchCountEQ(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldSwitchCount, v))
}

// SwitchCountNEQ applies the NEQ predicate on the "switch_count" field.
func SwitchCountNEQ(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldSwitchCount, v))
}

// SwitchCountIn applies the In predicate on the "switch_count" field.
func SwitchCountIn(vs ...int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldSwitchCount, vs...))
}

// SwitchCountNotIn applies the NotIn predicate on the "switch_count" field.
func SwitchCountNotIn(vs ...int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldSwitchCount, vs...))
}

// SwitchCountGT applies the GT predicate on the "switch_count" field.
func SwitchCountGT(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldSwitchCount, v))
}

// SwitchCountGTE applies the GTE predicate on the "switch_count" field.
func SwitchCountGTE(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldSwitchCount, v))
}

// SwitchCountLT applies the LT predicate on the "switch_count" field.
func SwitchCountLT(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldSwitchCount, v))
}

// SwitchCountLTE applies the LTE predicate on the "switch_count" field.
func SwitchCountLTE(v int) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldSwitchCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldCreatedAt, v))
}

// LastSwitchAtEQ applies the EQ predicate on the "last_switch_at" field.
func LastSwitchAtEQ(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldLastSwitchAt, v))
}

// LastSwitchAtNEQ applies the NEQ predicate on the "last_switch_at" field.
func LastSwitchAtNEQ(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldLastSwitchAt, v))
}

// LastSwitchAtIn applies the In predicate on the "last_switch_at" field.
func LastSwitchAtIn(vs ...time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldLastSwitchAt, vs...))
}

// LastSwitchAtNotIn applies the NotIn predicate on the "last_switch_at" field.
func LastSwitchAtNotIn(vs ...time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldLastSwitchAt, vs...))
}

// LastSwitchAtGT applies the GT predicate on the "last_switch_at" field.
func LastSwitchAtGT(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldLastSwitchAt, v))
}

// LastSwitchAtGTE applies the GTE predicate on the "last_switch_at" field.
func LastSwitchAtGTE(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldLastSwitchAt, v))
}

// LastSwitchAtLT applies the LT predicate on the "last_switch_at" field.
func LastSwitchAtLT(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldLastSwitchAt, v))
}

// LastSwitchAtLTE applies the LTE predicate on the "last_switch_at" field.
func LastSwitchAtLTE(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldLastSwitchAt, v))
}

// LastSwitchAtIsNil applies the IsNil predicate on the "last_switch_at" field.
func LastSwitchAtIsNil() predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIsNull(FieldLastSwitchAt))
}

// LastSwitchAtNotNil applies the NotNil predicate on the "last_switch_at" field.
func LastSwitchAtNotNil() predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotNull(FieldLastSwitchAt))
}

// ContextMetadataIsNil applies the IsNil predicate on the "context_metadata" field.
func ContextMetadataIsNil() predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIsNull(FieldContextMetadata))
}

// ContextMetadataNotNil applies the NotNil predicate on the "context_metadata" field.
func ContextMetadataNotNil() predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotNull(FieldContextMetadata))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.AgentContext {
	return predicate.AgentContext(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.AgentContext {
	return predicate.AgentContext(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSwitches applies the HasEdge predicate on the "switches" edge.
func HasSwitches() predicate.AgentContext {
	return predicate.AgentContext(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SwitchesTable, SwitchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSwitchesWith applies the HasEdge predicate on the "switches" edge with a given conditions (other predicates).
func HasSwitchesWith(preds ...predicate.AgentSwitch) predicate.AgentContext {
	return predicate.AgentContext(func(s *sql.Selector) {
		step := newSwitchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentContext) predicate.AgentContext {
	return predicate.AgentContext(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentContext) predicate.AgentContext {
	return predicate.AgentContext(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentContext) predicate.AgentContext {
	return predicate.AgentContext(sql.NotPredicates(p))
}
