// Code generated by ent, DO NOT EDIT.

package agentswitch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/switchyard-ai/switchyard/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldContainsFold(FieldID, id))
}

// ContextID applies equality check predicate on the "context_id" field. It's identical to ContextIDEQ.
func ContextID(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEQ(FieldContextID, v))
}

// FromAgent applies equality check predicate on the "from_agent" field. It's identical to FromAgentEQ.
func FromAgent(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEQ(FieldFromAgent, v))
}

// ToAgent applies equality check predicate on the "to_agent" field. It's identical to ToAgentEQ.
func ToAgent(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEQ(FieldToAgent, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEQ(FieldReason, v))
}

// SwitchedAt applies equality check predicate on the "switched_at" field. It's identical to SwitchedAtEQ.
func SwitchedAt(v time.Time) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEQ(FieldSwitchedAt, v))
}

// ContextIDEQ applies the EQ predicate on the "context_id" field.
func ContextIDEQ(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEQ(FieldContextID, v))
}

// ContextIDNEQ applies the NEQ predicate on the "context_id" field.
func ContextIDNEQ(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldNEQ(FieldContextID, v))
}

// ContextIDIn applies the In predicate on the "context_id" field.
func ContextIDIn(vs ...string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldIn(FieldContextID, vs...))
}

// ContextIDNotIn applies the NotIn predicate on the "context_id" field.
func ContextIDNotIn(vs ...string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldNotIn(FieldContextID, vs...))
}

// ContextIDGT applies the GT predicate on the "context_id" field.
func ContextIDGT(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldGT(FieldContextID, v))
}

// ContextIDGTE applies the GTE predicate on the "context_id" field.
func ContextIDGTE(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldGTE(FieldContextID, v))
}

// ContextIDLT applies the LT predicate on the "context_id" field.
func ContextIDLT(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldLT(FieldContextID, v))
}

// ContextIDLTE applies the LTE predicate on the "context_id" field.
func ContextIDLTE(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldLTE(FieldContextID, v))
}

// ContextIDContains applies the Contains predicate on the "context_id" field.
func ContextIDContains(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldContains(FieldContextID, v))
}

// ContextIDHasPrefix applies the HasPrefix predicate on the "context_id" field.
func ContextIDHasPrefix(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldHasPrefix(FieldContextID, v))
}

// ContextIDHasSuffix applies the HasSuffix predicate on the "context_id" field.
func ContextIDHasSuffix(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldHasSuffix(FieldContextID, v))
}

// ContextIDEqualFold applies the EqualFold predicate on the "context_id" field.
func ContextIDEqualFold(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEqualFold(FieldContextID, v))
}

// ContextIDContainsFold applies the ContainsFold predicate on the "context_id" field.
func ContextIDContainsFold(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldContainsFold(FieldContextID, v))
}

// FromAgentEQ applies the EQ predicate on the "from_agent" field.
func FromAgentEQ(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEQ(FieldFromAgent, v))
}

// FromAgentNEQ applies the NEQ predicate on the "from_agent" field.
func FromAgentNEQ(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldNEQ(FieldFromAgent, v))
}

// FromAgentIn applies the In predicate on the "from_agent" field.
func FromAgentIn(vs ...string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldIn(FieldFromAgent, vs...))
}

// FromAgentNotIn applies the NotIn predicate on the "from_agent" field.
func FromAgentNotIn(vs ...string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldNotIn(FieldFromAgent, vs...))
}

// FromAgentGT applies the GT predicate on the "from_agent" field.
func FromAgentGT(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldGT(FieldFromAgent, v))
}

// FromAgentGTE applies the GTE predicate on the "from_agent" field.
func FromAgentGTE(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldGTE(FieldFromAgent, v))
}

// FromAgentLT applies the LT predicate on the "from_agent" field.
func FromAgentLT(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldLT(FieldFromAgent, v))
}

// FromAgentLTE applies the LTE predicate on the "from_agent" field.
func FromAgentLTE(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldLTE(FieldFromAgent, v))
}

// FromAgentContains applies the Contains predicate on the "from_agent" field.
func FromAgentContains(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldContains(FieldFromAgent, v))
}

// FromAgentHasPrefix applies the HasPrefix predicate on the "from_agent" field.
func FromAgentHasPrefix(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldHasPrefix(FieldFromAgent, v))
}

// FromAgentHasSuffix applies the HasSuffix predicate on the "from_agent" field.
func FromAgentHasSuffix(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldHasSuffix(FieldFromAgent, v))
}

// FromAgentEqualFold applies the EqualFold predicate on the "from_agent" field.
func FromAgentEqualFold(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEqualFold(FieldFromAgent, v))
}

// FromAgentContainsFold applies the ContainsFold predicate on the "from_agent" field.
func FromAgentContainsFold(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldContainsFold(FieldFromAgent, v))
}

// ToAgentEQ applies the EQ predicate on the "to_agent" field.
func ToAgentEQ(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEQ(FieldToAgent, v))
}

// ToAgentNEQ applies the NEQ predicate on the "to_agent" field.
func ToAgentNEQ(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldNEQ(FieldToAgent, v))
}

// ToAgentIn applies the In predicate on the "to_agent" field.
func ToAgentIn(vs ...string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldIn(FieldToAgent, vs...))
}

// ToAgentNotIn applies the NotIn predicate on the "to_agent" field.
func ToAgentNotIn(vs ...string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldNotIn(FieldToAgent, vs...))
}

// ToAgentGT applies the GT predicate on the "to_agent" field.
func ToAgentGT(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldGT(FieldToAgent, v))
}

// ToAgentGTE applies the GTE predicate on the "to_agent" field.
func ToAgentGTE(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldGTE(FieldToAgent, v))
}

// ToAgentLT applies the LT predicate on the "to_agent" field.
func ToAgentLT(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldLT(FieldToAgent, v))
}

// ToAgentLTE applies the LTE predicate on the "to_agent" field.
func ToAgentLTE(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldLTE(FieldToAgent, v))
}

// ToAgentContains applies the Contains predicate on the "to_agent" field.
func ToAgentContains(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldContains(FieldToAgent, v))
}

// ToAgentHasPrefix applies the HasPrefix predicate on the "to_agent" field.
func ToAgentHasPrefix(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldHasPrefix(FieldToAgent, v))
}

// ToAgentHasSuffix applies the HasSuffix predicate on the "to_agent" field.
func ToAgentHasSuffix(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldHasSuffix(FieldToAgent, v))
}

// ToAgentEqualFold applies the EqualFold predicate on the "to_agent" field.
func ToAgentEqualFold(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEqualFold(FieldToAgent, v))
}

// ToAgentContainsFold applies the ContainsFold predicate on the "to_agent" field.
func ToAgentContainsFold(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldContainsFold(FieldToAgent, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldContainsFold(FieldReason, v))
}

// SwitchedAtEQ applies the EQ predicate on the "switched_at" field.
func SwitchedAtEQ(v time.Time) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldEQ(FieldSwitchedAt, v))
}

// SwitchedAtNEQ applies the NEQ predicate on the "switched_at" field.
func SwitchedAtNEQ(v time.Time) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldNEQ(FieldSwitchedAt, v))
}

// SwitchedAtIn applies the In predicate on the "switched_at" field.
func SwitchedAtIn(vs ...time.Time) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldIn(FieldSwitchedAt, vs...))
}

// SwitchedAtNotIn applies the NotIn predicate on the "switched_at" field.
func SwitchedAtNotIn(vs ...time.Time) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldNotIn(FieldSwitchedAt, vs...))
}

// SwitchedAtGT applies the GT predicate on the "switched_at" field.
func SwitchedAtGT(v time.Time) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldGT(FieldSwitchedAt, v))
}

// SwitchedAtGTE applies the GTE predicate on the "switched_at" field.
func SwitchedAtGTE(v time.Time) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldGTE(FieldSwitchedAt, v))
}

// SwitchedAtLT applies the LT predicate on the "switched_at" field.
func SwitchedAtLT(v time.Time) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldLT(FieldSwitchedAt, v))
}

// SwitchedAtLTE applies the LTE predicate on the "switched_at" field.
func SwitchedAtLTE(v time.Time) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.FieldLTE(FieldSwitchedAt, v))
}

// HasContext applies the HasEdge predicate on the "context" edge.
func HasContext() predicate.AgentSwitch {
	return predicate.AgentSwitch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContextTable, ContextColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContextWith applies the HasEdge predicate on the "context" edge with a given conditions (other predicates).
func HasContextWith(preds ...predicate.AgentContext) predicate.AgentSwitch {
	return predicate.AgentSwitch(func(s *sql.Selector) {
		step := newContextStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentSwitch) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentSwitch) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentSwitch) predicate.AgentSwitch {
	return predicate.AgentSwitch(sql.NotPredicates(p))
}
