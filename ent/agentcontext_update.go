// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/switchyard-ai/switchyard/ent/agentcontext"
	"github.com/switchyard-ai/switchyard/ent/agentswitch"
	"github.com/switchyard-ai/switchyard/ent/predicate"
)

// AgentContextUpdate is the builder for updating AgentContext entities.
type AgentContextUpdate struct {
	config
	hooks    []Hook
	mutation *AgentContextMutation
}

// Where appends a list predicates to the AgentContextUpdate builder.
func (_u *AgentContextUpdate) Where(ps ...predicate.AgentContext) *AgentContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentAgent sets the "current_agent" field.
func (_u *AgentContextUpdate) SetCurrentAgent(v agentcontext.CurrentAgent) *AgentContextUpdate {
	_u.mutation.SetCurrentAgent(v)
	return _u
}

// SetNillableCurrentAgent sets the "current_agent" field if the given value is not nil.
func (_u *AgentContextUpdate) SetNillableCurrentAgent(v *agentcontext.CurrentAgent) *AgentContextUpdate {
	if v != nil {
		_u.SetCurrentAgent(*v)
	}
	return _u
}

// SetSwitchCount sets the "switch_count" field.
func (_u *AgentContextUpdate) SetSwitchCount(v int) *AgentContextUpdate {
	_u.mutation.ResetSwitchCount()
	_u.mutation.SetSwitchCount(v)
	return _u
}

// SetNillableSwitchCount sets the "switch_count" field if the given value is not nil.
func (_u *AgentContextUpdate) SetNillableSwitchCount(v *int) *AgentContextUpdate {
	if v != nil {
		_u.SetSwitchCount(*v)
	}
	return _u
}

// AddSwitchCount adds value to the "switch_count" field.
func (_u *AgentContextUpdate) AddSwitchCount(v int) *AgentContextUpdate {
	_u.mutation.AddSwitchCount(v)
	return _u
}

// SetLastSwitchAt sets the "last_switch_at" field.
func (_u *AgentContextUpdate) SetLastSwitchAt(v time.Time) *AgentContextUpdate {
	_u.mutation.SetLastSwitchAt(v)
	return _u
}

// SetNillableLastSwitchAt sets the "last_switch_at" field if the given value is not nil.
func (_u *AgentContextUpdate) SetNillableLastSwitchAt(v *time.Time) *AgentContextUpdate {
	if v != nil {
		_u.SetLastSwitchAt(*v)
	}
	return _u
}

// ClearLastSwitchAt clears the value of the "last_switch_at" field.
func (_u *AgentContextUpdate) ClearLastSwitchAt() *AgentContextUpdate {
	_u.mutation.ClearLastSwitchAt()
	return _u
}

// SetContextMetadata sets the "context_metadata" field.
func (_u *AgentContextUpdate) SetContextMetadata(v map[string]interface{}) *AgentContextUpdate {
	_u.mutation.SetContextMetadata(v)
	return _u
}

// ClearContextMetadata clears the value of the "context_metadata" field.
func (_u *AgentContextUpdate) ClearContextMetadata() *AgentContextUpdate {
	_u.mutation.ClearContextMetadata()
	return _u
}

// AddSwitchIDs adds the "switches" edge to the AgentSwitch entity by IDs.
func (_u *AgentContextUpdate) AddSwitchIDs(ids ...string) *AgentContextUpdate {
	_u.mutation.AddSwitchIDs(ids...)
	return _u
}

// AddSwitches adds the "switches" edges to the AgentSwitch entity.
func (_u *AgentContextUpdate) AddSwitches(v ...*AgentSwitch) *AgentContextUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSwitchIDs(ids...)
}

// Mutation returns the AgentContextMutation object of the builder.
func (_u *AgentContextUpdate) Mutation() *AgentContextMutation {
	return _u.mutation
}

// ClearSwitches clears all "switches" edges to the AgentSwitch entity.
func (_u *AgentContextUpdate) ClearSwitches() *AgentContextUpdate {
	_u.mutation.ClearSwitches()
	return _u
}

// RemoveSwitchIDs removes the "switches" edge to AgentSwitch entities by IDs.
func (_u *AgentContextUpdate) RemoveSwitchIDs(ids ...string) *AgentContextUpdate {
	_u.mutation.RemoveSwitchIDs(ids...)
	return _u
}

// RemoveSwitches removes "switches" edges to AgentSwitch entities.
func (_u *AgentContextUpdate) RemoveSwitches(v ...*AgentSwitch) *AgentContextUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSwitchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentContextUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentContextUpdate) check() error {
	if v, ok := _u.mutation.CurrentAgent(); ok {
		if err := agentcontext.CurrentAgentValidator(v); err != nil {
			return &ValidationError{Name: "current_agent", err: fmt.Errorf(`ent: validator failed for field "AgentContext.current_agent": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentContext.session"`)
	}
	return nil
}

func (_u *AgentContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentcontext.Table, agentcontext.Columns, sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentAgent(); ok {
		_spec.SetField(agentcontext.FieldCurrentAgent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SwitchCount(); ok {
		_spec.SetField(agentcontext.FieldSwitchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSwitchCount(); ok {
		_spec.AddField(agentcontext.FieldSwitchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSwitchAt(); ok {
		_spec.SetField(agentcontext.FieldLastSwitchAt, field.TypeTime, value)
	}
	if _u.mutation.LastSwitchAtCleared() {
		_spec.ClearField(agentcontext.FieldLastSwitchAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ContextMetadata(); ok {
		_spec.SetField(agentcontext.FieldContextMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ContextMetadataCleared() {
		_spec.ClearField(agentcontext.FieldContextMetadata, field.TypeJSON)
	}
	if _u.mutation.SwitchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentcontext.SwitchesTable,
			Columns: []string{agentcontext.SwitchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentswitch.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSwitchesIDs(); len(nodes) > 0 && !_u.mutation.SwitchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentcontext.SwitchesTable,
			Columns: []string{agentcontext.SwitchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentswitch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SwitchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentcontext.SwitchesTable,
			Columns: []string{agentcontext.SwitchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentswitch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentContextUpdateOne is the builder for updating a single AgentContext entity.
type AgentContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentContextMutation
}

// SetCurrentAgent sets the "current_agent" field.
func (_u *AgentContextUpdateOne) SetCurrentAgent(v agentcontext.CurrentAgent) *AgentContextUpdateOne {
	_u.mutation.SetCurrentAgent(v)
	return _u
}

// SetNillableCurrentAgent sets the "current_agent" field if the given value is not nil.
func (_u *AgentContextUpdateOne) SetNillableCurrentAgent(v *agentcontext.CurrentAgent) *AgentContextUpdateOne {
	if v != nil {
		_u.SetCurrentAgent(*v)
	}
	return _u
}

// SetSwitchCount sets the "switch_count" field.
func (_u *AgentContextUpdateOne) SetSwitchCount(v int) *AgentContextUpdateOne {
	_u.mutation.ResetSwitchCount()
	_u.mutation.SetSwitchCount(v)
	return _u
}

// SetNillableSwitchCount sets the "switch_count" field if the given value is not nil.
func (_u *AgentContextUpdateOne) SetNillableSwitchCount(v *int) *AgentContextUpdateOne {
	if v != nil {
		_u.SetSwitchCount(*v)
	}
	return _u
}

// AddSwitchCount adds value to the "switch_count" field.
func (_u *AgentContextUpdateOne) AddSwitchCount(v int) *AgentContextUpdateOne {
	_u.mutation.AddSwitchCount(v)
	return _u
}

// SetLastSwitchAt sets the "last_switch_at" field.
func (_u *AgentContextUpdateOne) SetLastSwitchAt(v time.Time) *AgentContextUpdateOne {
	_u.mutation.SetLastSwitchAt(v)
	return _u
}

// SetNillableLastSwitchAt sets the "last_switch_at" field if the given value is not nil.
func (_u *AgentContextUpdateOne) SetNillableLastSwitchAt(v *time.Time) *AgentContextUpdateOne {
	if v != nil {
		_u.SetLastSwitchAt(*v)
	}
	return _u
}

// ClearLastSwitchAt clears the value of the "last_switch_at" field.
func (_u *AgentContextUpdateOne) ClearLastSwitchAt() *AgentContextUpdateOne {
	_u.mutation.ClearLastSwitchAt()
	return _u
}

// SetContextMetadata sets the "context_metadata" field.
func (_u *AgentContextUpdateOne) SetContextMetadata(v map[string]interface{}) *AgentContextUpdateOne {
	_u.mutation.SetContextMetadata(v)
	return _u
}

// ClearContextMetadata clears the value of the "context_metadata" field.
func (_u *AgentContextUpdateOne) ClearContextMetadata() *AgentContextUpdateOne {
	_u.mutation.ClearContextMetadata()
	return _u
}

// AddSwitchIDs adds the "switches" edge to the AgentSwitch entity by IDs.
func (_u *AgentContextUpdateOne) AddSwitchIDs(ids ...string) *AgentContextUpdateOne {
	_u.mutation.AddSwitchIDs(ids...)
	return _u
}

// AddSwitches adds the "switches" edges to the AgentSwitch entity.
func (_u *AgentContextUpdateOne) AddSwitches(v ...*AgentSwitch) *AgentContextUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSwitchIDs(ids...)
}

// Mutation returns the AgentContextMutation object of the builder.
func (_u *AgentContextUpdateOne) Mutation() *AgentContextMutation {
	return _u.mutation
}

// ClearSwitches clears all "switches" edges to the AgentSwitch entity.
func (_u *AgentContextUpdateOne) ClearSwitches() *AgentContextUpdateOne {
	_u.mutation.ClearSwitches()
	return _u
}

// RemoveSwitchIDs removes the "switches" edge to AgentSwitch entities by IDs.
func (_u *AgentContextUpdateOne) RemoveSwitchIDs(ids ...string) *AgentContextUpdateOne {
	_u.mutation.RemoveSwitchIDs(ids...)
	return _u
}

// RemoveSwitches removes "switches" edges to AgentSwitch entities.
func (_u *AgentContextUpdateOne) RemoveSwitches(v ...*AgentSwitch) *AgentContextUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSwitchIDs(ids...)
}

// Where appends a list predicates to the AgentContextUpdate builder.
func (_u *AgentContextUpdateOne) Where(ps ...predicate.AgentContext) *AgentContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentContextUpdateOne) Select(field string, fields ...string) *AgentContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentContext entity.
func (_u *AgentContextUpdateOne) Save(ctx context.Context) (*AgentContext, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentContextUpdateOne) SaveX(ctx context.Context) *AgentContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentContextUpdateOne) check() error {
	if v, ok := _u.mutation.CurrentAgent(); ok {
		if err := agentcontext.CurrentAgentValidator(v); err != nil {
			return &ValidationError{Name: "current_agent", err: fmt.Errorf(`ent: validator failed for field "AgentContext.current_agent": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentContext.session"`)
	}
	return nil
}

func (_u *AgentContextUpdateOne) sqlSave(ctx context.Context) (_node *AgentContext, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentcontext.Table, agentcontext.Columns, sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentcontext.FieldID)
		for _, f := range fields {
			if !agentcontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentcontext.FieldID {
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
	if value, ok := _u.mutation.CurrentAgent(); ok {
		_spec.SetField(agentcontext.FieldCurrentAgent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SwitchCount(); ok {
		_spec.SetField(agentcontext.FieldSwitchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSwitchCount(); ok {
		_spec.AddField(agentcontext.FieldSwitchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSwitchAt(); ok {
		_spec.SetField(agentcontext.FieldLastSwitchAt, field.TypeTime, value)
	}
	if _u.mutation.LastSwitchAtCleared() {
		_spec.ClearField(agentcontext.FieldLastSwitchAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ContextMetadata(); ok {
		_spec.SetField(agentcontext.FieldContextMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ContextMetadataCleared() {
		_spec.ClearField(agentcontext.FieldContextMetadata, field.TypeJSON)
	}
	if _u.mutation.SwitchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentcontext.SwitchesTable,
			Columns: []string{agentcontext.SwitchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentswitch.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSwitchesIDs(); len(nodes) > 0 && !_u.mutation.SwitchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentcontext.SwitchesTable,
			Columns: []string{agentcontext.SwitchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentswitch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SwitchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentcontext.SwitchesTable,
			Columns: []string{agentcontext.SwitchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentswitch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
