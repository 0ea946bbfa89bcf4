// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/switchyard-ai/switchyard/ent/agentcontext"
	"github.com/switchyard-ai/switchyard/ent/agentswitch"
)

// AgentSwitchCreate is the builder for creating a AgentSwitch entity.
type AgentSwitchCreate struct {
	config
	mutation *AgentSwitchMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetContextID sets the "context_id" field.
func (_c *AgentSwitchCreate) SetContextID(v string) *AgentSwitchCreate {
	_c.mutation.SetContextID(v)
	return _c
}

// SetFromAgent sets the "from_agent" field.
func (_c *AgentSwitchCreate) SetFromAgent(v string) *AgentSwitchCreate {
	_c.mutation.SetFromAgent(v)
	return _c
}

// SetToAgent sets the "to_agent" field.
func (_c *AgentSwitchCreate) SetToAgent(v string) *AgentSwitchCreate {
	_c.mutation.SetToAgent(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *AgentSwitchCreate) SetReason(v string) *AgentSwitchCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *AgentSwitchCreate) SetNillableReason(v *string) *AgentSwitchCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetSwitchedAt sets the "switched_at" field.
func (_c *AgentSwitchCreate) SetSwitchedAt(v time.Time) *AgentSwitchCreate {
	_c.mutation.SetSwitchedAt(v)
	return _c
}

// SetNillableSwitchedAt sets the "switched_at" field if the given value is not nil.
func (_c *AgentSwitchCreate) SetNillableSwitchedAt(v *time.Time) *AgentSwitchCreate {
	if v != nil {
		_c.SetSwitchedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentSwitchCreate) SetID(v string) *AgentSwitchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetContext sets the "context" edge to the AgentContext entity.
func (_c *AgentSwitchCreate) SetContext(v *AgentContext) *AgentSwitchCreate {
	return _c.SetContextID(v.ID)
}

// Mutation returns the AgentSwitchMutation object of the builder.
func (_c *AgentSwitchCreate) Mutation() *AgentSwitchMutation {
	return _c.mutation
}

// Save creates the AgentSwitch in the database.
func (_c *AgentSwitchCreate) Save(ctx context.Context) (*AgentSwitch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentSwitchCreate) SaveX(ctx context.Context) *AgentSwitch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSwitchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSwitchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentSwitchCreate) defaults() {
	if _, ok := _c.mutation.Reason(); !ok {
		v := agentswitch.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.SwitchedAt(); !ok {
		v := agentswitch.DefaultSwitchedAt()
		_c.mutation.SetSwitchedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentSwitchCreate) check() error {
	if _, ok := _c.mutation.ContextID(); !ok {
		return &ValidationError{Name: "context_id", err: errors.New(`ent: missing required field "AgentSwitch.context_id"`)}
	}
	if _, ok := _c.mutation.FromAgent(); !ok {
		return &ValidationError{Name: "from_agent", err: errors.New(`ent: missing required field "AgentSwitch.from_agent"`)}
	}
	if _, ok := _c.mutation.ToAgent(); !ok {
		return &ValidationError{Name: "to_agent", err: errors.New(`ent: missing required field "AgentSwitch.to_agent"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "AgentSwitch.reason"`)}
	}
	if _, ok := _c.mutation.SwitchedAt(); !ok {
		return &ValidationError{Name: "switched_at", err: errors.New(`ent: missing required field "AgentSwitch.switched_at"`)}
	}
	if len(_c.mutation.ContextIDs()) == 0 {
		return &ValidationError{Name: "context", err: errors.New(`ent: missing required edge "AgentSwitch.context"`)}
	}
	return nil
}

func (_c *AgentSwitchCreate) sqlSave(ctx context.Context) (*AgentSwitch, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentSwitch.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentSwitchCreate) createSpec() (*AgentSwitch, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentSwitch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentswitch.Table, sqlgraph.NewFieldSpec(agentswitch.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FromAgent(); ok {
		_spec.SetField(agentswitch.FieldFromAgent, field.TypeString, value)
		_node.FromAgent = value
	}
	if value, ok := _c.mutation.ToAgent(); ok {
		_spec.SetField(agentswitch.FieldToAgent, field.TypeString, value)
		_node.ToAgent = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(agentswitch.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.SwitchedAt(); ok {
		_spec.SetField(agentswitch.FieldSwitchedAt, field.TypeTime, value)
		_node.SwitchedAt = value
	}
	if nodes := _c.mutation.ContextIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentswitch.ContextTable,
			Columns: []string{agentswitch.ContextColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContextID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentSwitch.Create().
//		SetContextID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentSwitchUpsert) {
//			SetContextID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentSwitchCreate) OnConflict(opts ...sql.ConflictOption) *AgentSwitchUpsertOne {
	_c.conflict = opts
	return &AgentSwitchUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentSwitch.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentSwitchCreate) OnConflictColumns(columns ...string) *AgentSwitchUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentSwitchUpsertOne{
		create: _c,
	}
}

type (
	// AgentSwitchUpsertOne is the builder for "upsert"-ing
	//  one AgentSwitch node.
	AgentSwitchUpsertOne struct {
		create *AgentSwitchCreate
	}

	// AgentSwitchUpsert is the "OnConflict" setter.
	AgentSwitchUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentSwitch.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentswitch.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentSwitchUpsertOne) UpdateNewValues() *AgentSwitchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentswitch.FieldID)
		}
		if _, exists := u.create.mutation.ContextID(); exists {
			s.SetIgnore(agentswitch.FieldContextID)
		}
		if _, exists := u.create.mutation.FromAgent(); exists {
			s.SetIgnore(agentswitch.FieldFromAgent)
		}
		if _, exists := u.create.mutation.ToAgent(); exists {
			s.SetIgnore(agentswitch.FieldToAgent)
		}
		if _, exists := u.create.mutation.Reason(); exists {
			s.SetIgnore(agentswitch.FieldReason)
		}
		if _, exists := u.create.mutation.SwitchedAt(); exists {
			s.SetIgnore(agentswitch.FieldSwitchedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentSwitch.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentSwitchUpsertOne) Ignore() *AgentSwitchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentSwitchUpsertOne) DoNothing() *AgentSwitchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentSwitchCreate.OnConflict
// documentation for more info.
func (u *AgentSwitchUpsertOne) Update(set func(*AgentSwitchUpsert)) *AgentSwitchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentSwitchUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AgentSwitchUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentSwitchCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentSwitchUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentSwitchUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentSwitchUpsertOne.ID is not supported by MySQL driver. Use AgentSwitchUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentSwitchUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentSwitchCreateBulk is the builder for creating many AgentSwitch entities in bulk.
type AgentSwitchCreateBulk struct {
	config
	err      error
	builders []*AgentSwitchCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentSwitch entities in the database.
func (_c *AgentSwitchCreateBulk) Save(ctx context.Context) ([]*AgentSwitch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentSwitch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentSwitchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentSwitchCreateBulk) SaveX(ctx context.Context) []*AgentSwitch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSwitchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSwitchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentSwitch.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentSwitchUpsert) {
//			SetContextID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentSwitchCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentSwitchUpsertBulk {
	_c.conflict = opts
	return &AgentSwitchUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentSwitch.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentSwitchCreateBulk) OnConflictColumns(columns ...string) *AgentSwitchUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentSwitchUpsertBulk{
		create: _c,
	}
}

// AgentSwitchUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentSwitch nodes.
type AgentSwitchUpsertBulk struct {
	create *AgentSwitchCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentSwitch.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentswitch.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentSwitchUpsertBulk) UpdateNewValues() *AgentSwitchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentswitch.FieldID)
			}
			if _, exists := b.mutation.ContextID(); exists {
				s.SetIgnore(agentswitch.FieldContextID)
			}
			if _, exists := b.mutation.FromAgent(); exists {
				s.SetIgnore(agentswitch.FieldFromAgent)
			}
			if _, exists := b.mutation.ToAgent(); exists {
				s.SetIgnore(agentswitch.FieldToAgent)
			}
			if _, exists := b.mutation.Reason(); exists {
				s.SetIgnore(agentswitch.FieldReason)
			}
			if _, exists := b.mutation.SwitchedAt(); exists {
				s.SetIgnore(agentswitch.FieldSwitchedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentSwitch.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentSwitchUpsertBulk) Ignore() *AgentSwitchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentSwitchUpsertBulk) DoNothing() *AgentSwitchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentSwitchCreateBulk.OnConflict
// documentation for more info.
func (u *AgentSwitchUpsertBulk) Update(set func(*AgentSwitchUpsert)) *AgentSwitchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentSwitchUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AgentSwitchUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentSwitchCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentSwitchCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentSwitchUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
