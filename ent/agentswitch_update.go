// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/switchyard-ai/switchyard/ent/agentswitch"
	"github.com/switchyard-ai/switchyard/ent/predicate"
)

// AgentSwitchUpdate is the builder for updating AgentSwitch entities.
type AgentSwitchUpdate struct {
	config
	hooks    []Hook
	mutation *AgentSwitchMutation
}

// Where appends a list predicates to the AgentSwitchUpdate builder.
func (_u *AgentSwitchUpdate) Where(ps ...predicate.AgentSwitch) *AgentSwitchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AgentSwitchMutation object of the builder.
func (_u *AgentSwitchUpdate) Mutation() *AgentSwitchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentSwitchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSwitchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentSwitchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSwitchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSwitchUpdate) check() error {
	if _u.mutation.ContextCleared() && len(_u.mutation.ContextIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSwitch.context"`)
	}
	return nil
}

func (_u *AgentSwitchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentswitch.Table, agentswitch.Columns, sqlgraph.NewFieldSpec(agentswitch.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentswitch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentSwitchUpdateOne is the builder for updating a single AgentSwitch entity.
type AgentSwitchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentSwitchMutation
}

// Mutation returns the AgentSwitchMutation object of the builder.
func (_u *AgentSwitchUpdateOne) Mutation() *AgentSwitchMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentSwitchUpdate builder.
func (_u *AgentSwitchUpdateOne) Where(ps ...predicate.AgentSwitch) *AgentSwitchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentSwitchUpdateOne) Select(field string, fields ...string) *AgentSwitchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentSwitch entity.
func (_u *AgentSwitchUpdateOne) Save(ctx context.Context) (*AgentSwitch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSwitchUpdateOne) SaveX(ctx context.Context) *AgentSwitch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentSwitchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSwitchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSwitchUpdateOne) check() error {
	if _u.mutation.ContextCleared() && len(_u.mutation.ContextIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSwitch.context"`)
	}
	return nil
}

func (_u *AgentSwitchUpdateOne) sqlSave(ctx context.Context) (_node *AgentSwitch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentswitch.Table, agentswitch.Columns, sqlgraph.NewFieldSpec(agentswitch.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentSwitch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentswitch.FieldID)
		for _, f := range fields {
			if !agentswitch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentswitch.FieldID {
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
	_node = &AgentSwitch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentswitch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
