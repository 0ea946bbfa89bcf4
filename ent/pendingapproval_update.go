// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/switchyard-ai/switchyard/ent/pendingapproval"
	"github.com/switchyard-ai/switchyard/ent/predicate"
)

// PendingApprovalUpdate is the builder for updating PendingApproval entities.
type PendingApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *PendingApprovalMutation
}

// Where appends a list predicates to the PendingApprovalUpdate builder.
func (_u *PendingApprovalUpdate) Where(ps ...predicate.PendingApproval) *PendingApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *PendingApprovalUpdate) SetArguments(v map[string]interface{}) *PendingApprovalUpdate {
	_u.mutation.SetArguments(v)
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *PendingApprovalUpdate) ClearArguments() *PendingApprovalUpdate {
	_u.mutation.ClearArguments()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingApprovalUpdate) SetStatus(v pendingapproval.Status) *PendingApprovalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableStatus(v *pendingapproval.Status) *PendingApprovalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecisionFeedback sets the "decision_feedback" field.
func (_u *PendingApprovalUpdate) SetDecisionFeedback(v string) *PendingApprovalUpdate {
	_u.mutation.SetDecisionFeedback(v)
	return _u
}

// SetNillableDecisionFeedback sets the "decision_feedback" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableDecisionFeedback(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetDecisionFeedback(*v)
	}
	return _u
}

// ClearDecisionFeedback clears the value of the "decision_feedback" field.
func (_u *PendingApprovalUpdate) ClearDecisionFeedback() *PendingApprovalUpdate {
	_u.mutation.ClearDecisionFeedback()
	return _u
}

// SetModifiedArguments sets the "modified_arguments" field.
func (_u *PendingApprovalUpdate) SetModifiedArguments(v map[string]interface{}) *PendingApprovalUpdate {
	_u.mutation.SetModifiedArguments(v)
	return _u
}

// ClearModifiedArguments clears the value of the "modified_arguments" field.
func (_u *PendingApprovalUpdate) ClearModifiedArguments() *PendingApprovalUpdate {
	_u.mutation.ClearModifiedArguments()
	return _u
}

// Mutation returns the PendingApprovalMutation object of the builder.
func (_u *PendingApprovalUpdate) Mutation() *PendingApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PendingApprovalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PendingApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingApprovalUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PendingApproval.session"`)
	}
	return nil
}

func (_u *PendingApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingapproval.Table, pendingapproval.Columns, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(pendingapproval.FieldArguments, field.TypeJSON, value)
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(pendingapproval.FieldArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingapproval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecisionFeedback(); ok {
		_spec.SetField(pendingapproval.FieldDecisionFeedback, field.TypeString, value)
	}
	if _u.mutation.DecisionFeedbackCleared() {
		_spec.ClearField(pendingapproval.FieldDecisionFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ModifiedArguments(); ok {
		_spec.SetField(pendingapproval.FieldModifiedArguments, field.TypeJSON, value)
	}
	if _u.mutation.ModifiedArgumentsCleared() {
		_spec.ClearField(pendingapproval.FieldModifiedArguments, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PendingApprovalUpdateOne is the builder for updating a single PendingApproval entity.
type PendingApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PendingApprovalMutation
}

// SetArguments sets the "arguments" field.
func (_u *PendingApprovalUpdateOne) SetArguments(v map[string]interface{}) *PendingApprovalUpdateOne {
	_u.mutation.SetArguments(v)
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *PendingApprovalUpdateOne) ClearArguments() *PendingApprovalUpdateOne {
	_u.mutation.ClearArguments()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingApprovalUpdateOne) SetStatus(v pendingapproval.Status) *PendingApprovalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableStatus(v *pendingapproval.Status) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecisionFeedback sets the "decision_feedback" field.
func (_u *PendingApprovalUpdateOne) SetDecisionFeedback(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetDecisionFeedback(v)
	return _u
}

// SetNillableDecisionFeedback sets the "decision_feedback" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableDecisionFeedback(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetDecisionFeedback(*v)
	}
	return _u
}

// ClearDecisionFeedback clears the value of the "decision_feedback" field.
func (_u *PendingApprovalUpdateOne) ClearDecisionFeedback() *PendingApprovalUpdateOne {
	_u.mutation.ClearDecisionFeedback()
	return _u
}

// SetModifiedArguments sets the "modified_arguments" field.
func (_u *PendingApprovalUpdateOne) SetModifiedArguments(v map[string]interface{}) *PendingApprovalUpdateOne {
	_u.mutation.SetModifiedArguments(v)
	return _u
}

// ClearModifiedArguments clears the value of the "modified_arguments" field.
func (_u *PendingApprovalUpdateOne) ClearModifiedArguments() *PendingApprovalUpdateOne {
	_u.mutation.ClearModifiedArguments()
	return _u
}

// Mutation returns the PendingApprovalMutation object of the builder.
func (_u *PendingApprovalUpdateOne) Mutation() *PendingApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the PendingApprovalUpdate builder.
func (_u *PendingApprovalUpdateOne) Where(ps ...predicate.PendingApproval) *PendingApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PendingApprovalUpdateOne) Select(field string, fields ...string) *PendingApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PendingApproval entity.
func (_u *PendingApprovalUpdateOne) Save(ctx context.Context) (*PendingApproval, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingApprovalUpdateOne) SaveX(ctx context.Context) *PendingApproval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PendingApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingApprovalUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PendingApproval.session"`)
	}
	return nil
}

func (_u *PendingApprovalUpdateOne) sqlSave(ctx context.Context) (_node *PendingApproval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingapproval.Table, pendingapproval.Columns, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PendingApproval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pendingapproval.FieldID)
		for _, f := range fields {
			if !pendingapproval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pendingapproval.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(pendingapproval.FieldArguments, field.TypeJSON, value)
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(pendingapproval.FieldArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingapproval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecisionFeedback(); ok {
		_spec.SetField(pendingapproval.FieldDecisionFeedback, field.TypeString, value)
	}
	if _u.mutation.DecisionFeedbackCleared() {
		_spec.ClearField(pendingapproval.FieldDecisionFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ModifiedArguments(); ok {
		_spec.SetField(pendingapproval.FieldModifiedArguments, field.TypeJSON, value)
	}
	if _u.mutation.ModifiedArgumentsCleared() {
		_spec.ClearField(pendingapproval.FieldModifiedArguments, field.TypeJSON)
	}
	_node = &PendingApproval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
