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
	"github.com/switchyard-ai/switchyard/ent/session"
)

// AgentContextCreate is the builder for creating a AgentContext entity.
type AgentContextCreate struct {
	config
	mutation *AgentContextMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *AgentContextCreate) SetSessionID(v string) *AgentContextCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCurrentAgent sets the "current_agent" field.
func (_c *AgentContextCreate) SetCurrentAgent(v agentcontext.CurrentAgent) *AgentContextCreate {
	_c.mutation.SetCurrentAgent(v)
	return _c
}

// SetNillableCurrentAgent sets the "current_agent" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableCurrentAgent(v *agentcontext.CurrentAgent) *AgentContextCreate {
	if v != nil {
		_c.SetCurrentAgent(*v)
	}
	return _c
}

// SetSwitchCount sets the "switch_count" field.
func (_c *AgentContextCreate) SetSwitchCount(v int) *AgentContextCreate {
	_c.mutation.SetSwitchCount(v)
	return _c
}

// SetNillableSwitchCount sets the "switch_count" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableSwitchCount(v *int) *AgentContextCreate {
	if v != nil {
		_c.SetSwitchCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentContextCreate) SetCreatedAt(v time.Time) *AgentContextCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableCreatedAt(v *time.Time) *AgentContextCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastSwitchAt sets the "last_switch_at" field.
func (_c *AgentContextCreate) SetLastSwitchAt(v time.Time) *AgentContextCreate {
	_c.mutation.SetLastSwitchAt(v)
	return _c
}

// SetNillableLastSwitchAt sets the "last_switch_at" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableLastSwitchAt(v *time.Time) *AgentContextCreate {
	if v != nil {
		_c.SetLastSwitchAt(*v)
	}
	return _c
}

// SetContextMetadata sets the "context_metadata" field.
func (_c *AgentContextCreate) SetContextMetadata(v map[string]interface{}) *AgentContextCreate {
	_c.mutation.SetContextMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AgentContextCreate) SetID(v string) *AgentContextCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *AgentContextCreate) SetSession(v *Session) *AgentContextCreate {
	return _c.SetSessionID(v.ID)
}

// AddSwitchIDs adds the "switches" edge to the AgentSwitch entity by IDs.
func (_c *AgentContextCreate) AddSwitchIDs(ids ...string) *AgentContextCreate {
	_c.mutation.AddSwitchIDs(ids...)
	return _c
}

// AddSwitches adds the "switches" edges to the AgentSwitch entity.
func (_c *AgentContextCreate) AddSwitches(v ...*AgentSwitch) *AgentContextCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSwitchIDs(ids...)
}

// Mutation returns the AgentContextMutation object of the builder.
func (_c *AgentContextCreate) Mutation() *AgentContextMutation {
	return _c.mutation
}

// Save creates the AgentContext in the database.
func (_c *AgentContextCreate) Save(ctx context.Context) (*AgentContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentContextCreate) SaveX(ctx context.Context) *AgentContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentContextCreate) defaults() {
	if _, ok := _c.mutation.CurrentAgent(); !ok {
		v := agentcontext.DefaultCurrentAgent
		_c.mutation.SetCurrentAgent(v)
	}
	if _, ok := _c.mutation.SwitchCount(); !ok {
		v := agentcontext.DefaultSwitchCount
		_c.mutation.SetSwitchCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentcontext.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentContextCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AgentContext.session_id"`)}
	}
	if _, ok := _c.mutation.CurrentAgent(); !ok {
		return &ValidationError{Name: "current_agent", err: errors.New(`ent: missing required field "AgentContext.current_agent"`)}
	}
	if v, ok := _c.mutation.CurrentAgent(); ok {
		if err := agentcontext.CurrentAgentValidator(v); err != nil {
			return &ValidationError{Name: "current_agent", err: fmt.Errorf(`ent: validator failed for field "AgentContext.current_agent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SwitchCount(); !ok {
		return &ValidationError{Name: "switch_count", err: errors.New(`ent: missing required field "AgentContext.switch_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentContext.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "AgentContext.session"`)}
	}
	return nil
}

func (_c *AgentContextCreate) sqlSave(ctx context.Context) (*AgentContext, error) {
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
			return nil, fmt.Errorf("unexpected AgentContext.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentContextCreate) createSpec() (*AgentContext, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentcontext.Table, sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CurrentAgent(); ok {
		_spec.SetField(agentcontext.FieldCurrentAgent, field.TypeEnum, value)
		_node.CurrentAgent = value
	}
	if value, ok := _c.mutation.SwitchCount(); ok {
		_spec.SetField(agentcontext.FieldSwitchCount, field.TypeInt, value)
		_node.SwitchCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentcontext.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastSwitchAt(); ok {
		_spec.SetField(agentcontext.FieldLastSwitchAt, field.TypeTime, value)
		_node.LastSwitchAt = &value
	}
	if value, ok := _c.mutation.ContextMetadata(); ok {
		_spec.SetField(agentcontext.FieldContextMetadata, field.TypeJSON, value)
		_node.ContextMetadata = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   agentcontext.SessionTable,
			Columns: []string{agentcontext.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SwitchesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentContext.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentContextUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentContextCreate) OnConflict(opts ...sql.ConflictOption) *AgentContextUpsertOne {
	_c.conflict = opts
	return &AgentContextUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentContext.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentContextCreate) OnConflictColumns(columns ...string) *AgentContextUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentContextUpsertOne{
		create: _c,
	}
}

type (
	// AgentContextUpsertOne is the builder for "upsert"-ing
	//  one AgentContext node.
	AgentContextUpsertOne struct {
		create *AgentContextCreate
	}

	// AgentContextUpsert is the "OnConflict" setter.
	AgentContextUpsert struct {
		*sql.UpdateSet
	}
)

// SetCurrentAgent sets the "current_agent" field.
func (u *AgentContextUpsert) SetCurrentAgent(v agentcontext.CurrentAgent) *AgentContextUpsert {
	u.Set(agentcontext.FieldCurrentAgent, v)
	return u
}

// UpdateCurrentAgent sets the "current_agent" field to the value that was provided on create.
func (u *AgentContextUpsert) UpdateCurrentAgent() *AgentContextUpsert {
	u.SetExcluded(agentcontext.FieldCurrentAgent)
	return u
}

// SetSwitchCount sets the "switch_count" field.
func (u *AgentContextUpsert) SetSwitchCount(v int) *AgentContextUpsert {
	u.Set(agentcontext.FieldSwitchCount, v)
	return u
}

// UpdateSwitchCount sets the "switch_count" field to the value that was provided on create.
func (u *AgentContextUpsert) UpdateSwitchCount() *AgentContextUpsert {
	u.SetExcluded(agentcontext.FieldSwitchCount)
	return u
}

// AddSwitchCount adds v to the "switch_count" field.
func (u *AgentContextUpsert) AddSwitchCount(v int) *AgentContextUpsert {
	u.Add(agentcontext.FieldSwitchCount, v)
	return u
}

// SetLastSwitchAt sets the "last_switch_at" field.
func (u *AgentContextUpsert) SetLastSwitchAt(v time.Time) *AgentContextUpsert {
	u.Set(agentcontext.FieldLastSwitchAt, v)
	return u
}

// UpdateLastSwitchAt sets the "last_switch_at" field to the value that was provided on create.
func (u *AgentContextUpsert) UpdateLastSwitchAt() *AgentContextUpsert {
	u.SetExcluded(agentcontext.FieldLastSwitchAt)
	return u
}

// ClearLastSwitchAt clears the value of the "last_switch_at" field.
func (u *AgentContextUpsert) ClearLastSwitchAt() *AgentContextUpsert {
	u.SetNull(agentcontext.FieldLastSwitchAt)
	return u
}

// SetContextMetadata sets the "context_metadata" field.
func (u *AgentContextUpsert) SetContextMetadata(v map[string]interface{}) *AgentContextUpsert {
	u.Set(agentcontext.FieldContextMetadata, v)
	return u
}

// UpdateContextMetadata sets the "context_metadata" field to the value that was provided on create.
func (u *AgentContextUpsert) UpdateContextMetadata() *AgentContextUpsert {
	u.SetExcluded(agentcontext.FieldContextMetadata)
	return u
}

// ClearContextMetadata clears the value of the "context_metadata" field.
func (u *AgentContextUpsert) ClearContextMetadata() *AgentContextUpsert {
	u.SetNull(agentcontext.FieldContextMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentContext.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentcontext.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentContextUpsertOne) UpdateNewValues() *AgentContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentcontext.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(agentcontext.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentcontext.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentContext.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentContextUpsertOne) Ignore() *AgentContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentContextUpsertOne) DoNothing() *AgentContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentContextCreate.OnConflict
// documentation for more info.
func (u *AgentContextUpsertOne) Update(set func(*AgentContextUpsert)) *AgentContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentContextUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentAgent sets the "current_agent" field.
func (u *AgentContextUpsertOne) SetCurrentAgent(v agentcontext.CurrentAgent) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetCurrentAgent(v)
	})
}

// UpdateCurrentAgent sets the "current_agent" field to the value that was provided on create.
func (u *AgentContextUpsertOne) UpdateCurrentAgent() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateCurrentAgent()
	})
}

// SetSwitchCount sets the "switch_count" field.
func (u *AgentContextUpsertOne) SetSwitchCount(v int) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetSwitchCount(v)
	})
}

// AddSwitchCount adds v to the "switch_count" field.
func (u *AgentContextUpsertOne) AddSwitchCount(v int) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.AddSwitchCount(v)
	})
}

// UpdateSwitchCount sets the "switch_count" field to the value that was provided on create.
func (u *AgentContextUpsertOne) UpdateSwitchCount() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateSwitchCount()
	})
}

// SetLastSwitchAt sets the "last_switch_at" field.
func (u *AgentContextUpsertOne) SetLastSwitchAt(v time.Time) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetLastSwitchAt(v)
	})
}

// UpdateLastSwitchAt sets the "last_switch_at" field to the value that was provided on create.
func (u *AgentContextUpsertOne) UpdateLastSwitchAt() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateLastSwitchAt()
	})
}

// ClearLastSwitchAt clears the value of the "last_switch_at" field.
func (u *AgentContextUpsertOne) ClearLastSwitchAt() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.ClearLastSwitchAt()
	})
}

// SetContextMetadata sets the "context_metadata" field.
func (u *AgentContextUpsertOne) SetContextMetadata(v map[string]interface{}) *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetContextMetadata(v)
	})
}

// UpdateContextMetadata sets the "context_metadata" field to the value that was provided on create.
func (u *AgentContextUpsertOne) UpdateContextMetadata() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateContextMetadata()
	})
}

// ClearContextMetadata clears the value of the "context_metadata" field.
func (u *AgentContextUpsertOne) ClearContextMetadata() *AgentContextUpsertOne {
	return u.Update(func(s *AgentContextUpsert) {
		s.ClearContextMetadata()
	})
}

// Exec executes the query.
func (u *AgentContextUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentContextCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentContextUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentContextUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentContextUpsertOne.ID is not supported by MySQL driver. Use AgentContextUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentContextUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentContextCreateBulk is the builder for creating many AgentContext entities in bulk.
type AgentContextCreateBulk struct {
	config
	err      error
	builders []*AgentContextCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentContext entities in the database.
func (_c *AgentContextCreateBulk) Save(ctx context.Context) ([]*AgentContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentContextMutation)
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
func (_c *AgentContextCreateBulk) SaveX(ctx context.Context) []*AgentContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentContext.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentContextUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentContextCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentContextUpsertBulk {
	_c.conflict = opts
	return &AgentContextUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentContext.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentContextCreateBulk) OnConflictColumns(columns ...string) *AgentContextUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentContextUpsertBulk{
		create: _c,
	}
}

// AgentContextUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentContext nodes.
type AgentContextUpsertBulk struct {
	create *AgentContextCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentContext.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentcontext.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentContextUpsertBulk) UpdateNewValues() *AgentContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentcontext.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(agentcontext.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentcontext.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentContext.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentContextUpsertBulk) Ignore() *AgentContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentContextUpsertBulk) DoNothing() *AgentContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentContextCreateBulk.OnConflict
// documentation for more info.
func (u *AgentContextUpsertBulk) Update(set func(*AgentContextUpsert)) *AgentContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentContextUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentAgent sets the "current_agent" field.
func (u *AgentContextUpsertBulk) SetCurrentAgent(v agentcontext.CurrentAgent) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetCurrentAgent(v)
	})
}

// UpdateCurrentAgent sets the "current_agent" field to the value that was provided on create.
func (u *AgentContextUpsertBulk) UpdateCurrentAgent() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateCurrentAgent()
	})
}

// SetSwitchCount sets the "switch_count" field.
func (u *AgentContextUpsertBulk) SetSwitchCount(v int) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetSwitchCount(v)
	})
}

// AddSwitchCount adds v to the "switch_count" field.
func (u *AgentContextUpsertBulk) AddSwitchCount(v int) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.AddSwitchCount(v)
	})
}

// UpdateSwitchCount sets the "switch_count" field to the value that was provided on create.
func (u *AgentContextUpsertBulk) UpdateSwitchCount() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateSwitchCount()
	})
}

// SetLastSwitchAt sets the "last_switch_at" field.
func (u *AgentContextUpsertBulk) SetLastSwitchAt(v time.Time) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetLastSwitchAt(v)
	})
}

// UpdateLastSwitchAt sets the "last_switch_at" field to the value that was provided on create.
func (u *AgentContextUpsertBulk) UpdateLastSwitchAt() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateLastSwitchAt()
	})
}

// ClearLastSwitchAt clears the value of the "last_switch_at" field.
func (u *AgentContextUpsertBulk) ClearLastSwitchAt() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.ClearLastSwitchAt()
	})
}

// SetContextMetadata sets the "context_metadata" field.
func (u *AgentContextUpsertBulk) SetContextMetadata(v map[string]interface{}) *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.SetContextMetadata(v)
	})
}

// UpdateContextMetadata sets the "context_metadata" field to the value that was provided on create.
func (u *AgentContextUpsertBulk) UpdateContextMetadata() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.UpdateContextMetadata()
	})
}

// ClearContextMetadata clears the value of the "context_metadata" field.
func (u *AgentContextUpsertBulk) ClearContextMetadata() *AgentContextUpsertBulk {
	return u.Update(func(s *AgentContextUpsert) {
		s.ClearContextMetadata()
	})
}

// Exec executes the query.
func (u *AgentContextUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentContextCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentContextCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentContextUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
