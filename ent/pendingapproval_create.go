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
	"github.com/switchyard-ai/switchyard/ent/pendingapproval"
	"github.com/switchyard-ai/switchyard/ent/session"
)

// PendingApprovalCreate is the builder for creating a PendingApproval entity.
type PendingApprovalCreate struct {
	config
	mutation *PendingApprovalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *PendingApprovalCreate) SetSessionID(v string) *PendingApprovalCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *PendingApprovalCreate) SetToolName(v string) *PendingApprovalCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetArguments sets the "arguments" field.
func (_c *PendingApprovalCreate) SetArguments(v map[string]interface{}) *PendingApprovalCreate {
	_c.mutation.SetArguments(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PendingApprovalCreate) SetStatus(v pendingapproval.Status) *PendingApprovalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableStatus(v *pendingapproval.Status) *PendingApprovalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDecisionFeedback sets the "decision_feedback" field.
func (_c *PendingApprovalCreate) SetDecisionFeedback(v string) *PendingApprovalCreate {
	_c.mutation.SetDecisionFeedback(v)
	return _c
}

// SetNillableDecisionFeedback sets the "decision_feedback" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableDecisionFeedback(v *string) *PendingApprovalCreate {
	if v != nil {
		_c.SetDecisionFeedback(*v)
	}
	return _c
}

// SetModifiedArguments sets the "modified_arguments" field.
func (_c *PendingApprovalCreate) SetModifiedArguments(v map[string]interface{}) *PendingApprovalCreate {
	_c.mutation.SetModifiedArguments(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PendingApprovalCreate) SetCreatedAt(v time.Time) *PendingApprovalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableCreatedAt(v *time.Time) *PendingApprovalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PendingApprovalCreate) SetID(v string) *PendingApprovalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *PendingApprovalCreate) SetSession(v *Session) *PendingApprovalCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the PendingApprovalMutation object of the builder.
func (_c *PendingApprovalCreate) Mutation() *PendingApprovalMutation {
	return _c.mutation
}

// Save creates the PendingApproval in the database.
func (_c *PendingApprovalCreate) Save(ctx context.Context) (*PendingApproval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PendingApprovalCreate) SaveX(ctx context.Context) *PendingApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PendingApprovalCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pendingapproval.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pendingapproval.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PendingApprovalCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PendingApproval.session_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "PendingApproval.tool_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PendingApproval.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pendingapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PendingApproval.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "PendingApproval.session"`)}
	}
	return nil
}

func (_c *PendingApprovalCreate) sqlSave(ctx context.Context) (*PendingApproval, error) {
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
			return nil, fmt.Errorf("unexpected PendingApproval.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PendingApprovalCreate) createSpec() (*PendingApproval, *sqlgraph.CreateSpec) {
	var (
		_node = &PendingApproval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pendingapproval.Table, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(pendingapproval.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Arguments(); ok {
		_spec.SetField(pendingapproval.FieldArguments, field.TypeJSON, value)
		_node.Arguments = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pendingapproval.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DecisionFeedback(); ok {
		_spec.SetField(pendingapproval.FieldDecisionFeedback, field.TypeString, value)
		_node.DecisionFeedback = &value
	}
	if value, ok := _c.mutation.ModifiedArguments(); ok {
		_spec.SetField(pendingapproval.FieldModifiedArguments, field.TypeJSON, value)
		_node.ModifiedArguments = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pendingapproval.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pendingapproval.SessionTable,
			Columns: []string{pendingapproval.SessionColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PendingApproval.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PendingApprovalUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *PendingApprovalCreate) OnConflict(opts ...sql.ConflictOption) *PendingApprovalUpsertOne {
	_c.conflict = opts
	return &PendingApprovalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PendingApproval.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PendingApprovalCreate) OnConflictColumns(columns ...string) *PendingApprovalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PendingApprovalUpsertOne{
		create: _c,
	}
}

type (
	// PendingApprovalUpsertOne is the builder for "upsert"-ing
	//  one PendingApproval node.
	PendingApprovalUpsertOne struct {
		create *PendingApprovalCreate
	}

	// PendingApprovalUpsert is the "OnConflict" setter.
	PendingApprovalUpsert struct {
		*sql.UpdateSet
	}
)

// SetArguments sets the "arguments" field.
func (u *PendingApprovalUpsert) SetArguments(v map[string]interface{}) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldArguments, v)
	return u
}

// UpdateArguments sets the "arguments" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateArguments() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldArguments)
	return u
}

// ClearArguments clears the value of the "arguments" field.
func (u *PendingApprovalUpsert) ClearArguments() *PendingApprovalUpsert {
	u.SetNull(pendingapproval.FieldArguments)
	return u
}

// SetStatus sets the "status" field.
func (u *PendingApprovalUpsert) SetStatus(v pendingapproval.Status) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateStatus() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldStatus)
	return u
}

// SetDecisionFeedback sets the "decision_feedback" field.
func (u *PendingApprovalUpsert) SetDecisionFeedback(v string) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldDecisionFeedback, v)
	return u
}

// UpdateDecisionFeedback sets the "decision_feedback" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateDecisionFeedback() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldDecisionFeedback)
	return u
}

// ClearDecisionFeedback clears the value of the "decision_feedback" field.
func (u *PendingApprovalUpsert) ClearDecisionFeedback() *PendingApprovalUpsert {
	u.SetNull(pendingapproval.FieldDecisionFeedback)
	return u
}

// SetModifiedArguments sets the "modified_arguments" field.
func (u *PendingApprovalUpsert) SetModifiedArguments(v map[string]interface{}) *PendingApprovalUpsert {
	u.Set(pendingapproval.FieldModifiedArguments, v)
	return u
}

// UpdateModifiedArguments sets the "modified_arguments" field to the value that was provided on create.
func (u *PendingApprovalUpsert) UpdateModifiedArguments() *PendingApprovalUpsert {
	u.SetExcluded(pendingapproval.FieldModifiedArguments)
	return u
}

// ClearModifiedArguments clears the value of the "modified_arguments" field.
func (u *PendingApprovalUpsert) ClearModifiedArguments() *PendingApprovalUpsert {
	u.SetNull(pendingapproval.FieldModifiedArguments)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PendingApproval.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pendingapproval.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PendingApprovalUpsertOne) UpdateNewValues() *PendingApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pendingapproval.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(pendingapproval.FieldSessionID)
		}
		if _, exists := u.create.mutation.ToolName(); exists {
			s.SetIgnore(pendingapproval.FieldToolName)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pendingapproval.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PendingApproval.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PendingApprovalUpsertOne) Ignore() *PendingApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PendingApprovalUpsertOne) DoNothing() *PendingApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PendingApprovalCreate.OnConflict
// documentation for more info.
func (u *PendingApprovalUpsertOne) Update(set func(*PendingApprovalUpsert)) *PendingApprovalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PendingApprovalUpsert{UpdateSet: update})
	}))
	return u
}

// SetArguments sets the "arguments" field.
func (u *PendingApprovalUpsertOne) SetArguments(v map[string]interface{}) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetArguments(v)
	})
}

// UpdateArguments sets the "arguments" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateArguments() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateArguments()
	})
}

// ClearArguments clears the value of the "arguments" field.
func (u *PendingApprovalUpsertOne) ClearArguments() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearArguments()
	})
}

// SetStatus sets the "status" field.
func (u *PendingApprovalUpsertOne) SetStatus(v pendingapproval.Status) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateStatus() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateStatus()
	})
}

// SetDecisionFeedback sets the "decision_feedback" field.
func (u *PendingApprovalUpsertOne) SetDecisionFeedback(v string) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetDecisionFeedback(v)
	})
}

// UpdateDecisionFeedback sets the "decision_feedback" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateDecisionFeedback() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateDecisionFeedback()
	})
}

// ClearDecisionFeedback clears the value of the "decision_feedback" field.
func (u *PendingApprovalUpsertOne) ClearDecisionFeedback() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearDecisionFeedback()
	})
}

// SetModifiedArguments sets the "modified_arguments" field.
func (u *PendingApprovalUpsertOne) SetModifiedArguments(v map[string]interface{}) *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetModifiedArguments(v)
	})
}

// UpdateModifiedArguments sets the "modified_arguments" field to the value that was provided on create.
func (u *PendingApprovalUpsertOne) UpdateModifiedArguments() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateModifiedArguments()
	})
}

// ClearModifiedArguments clears the value of the "modified_arguments" field.
func (u *PendingApprovalUpsertOne) ClearModifiedArguments() *PendingApprovalUpsertOne {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearModifiedArguments()
	})
}

// Exec executes the query.
func (u *PendingApprovalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PendingApprovalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PendingApprovalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PendingApprovalUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PendingApprovalUpsertOne.ID is not supported by MySQL driver. Use PendingApprovalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PendingApprovalUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PendingApprovalCreateBulk is the builder for creating many PendingApproval entities in bulk.
type PendingApprovalCreateBulk struct {
	config
	err      error
	builders []*PendingApprovalCreate
	conflict []sql.ConflictOption
}

// Save creates the PendingApproval entities in the database.
func (_c *PendingApprovalCreateBulk) Save(ctx context.Context) ([]*PendingApproval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PendingApproval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PendingApprovalMutation)
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
func (_c *PendingApprovalCreateBulk) SaveX(ctx context.Context) []*PendingApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PendingApproval.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PendingApprovalUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *PendingApprovalCreateBulk) OnConflict(opts ...sql.ConflictOption) *PendingApprovalUpsertBulk {
	_c.conflict = opts
	return &PendingApprovalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PendingApproval.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PendingApprovalCreateBulk) OnConflictColumns(columns ...string) *PendingApprovalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PendingApprovalUpsertBulk{
		create: _c,
	}
}

// PendingApprovalUpsertBulk is the builder for "upsert"-ing
// a bulk of PendingApproval nodes.
type PendingApprovalUpsertBulk struct {
	create *PendingApprovalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PendingApproval.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pendingapproval.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PendingApprovalUpsertBulk) UpdateNewValues() *PendingApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pendingapproval.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(pendingapproval.FieldSessionID)
			}
			if _, exists := b.mutation.ToolName(); exists {
				s.SetIgnore(pendingapproval.FieldToolName)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pendingapproval.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PendingApproval.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PendingApprovalUpsertBulk) Ignore() *PendingApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PendingApprovalUpsertBulk) DoNothing() *PendingApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PendingApprovalCreateBulk.OnConflict
// documentation for more info.
func (u *PendingApprovalUpsertBulk) Update(set func(*PendingApprovalUpsert)) *PendingApprovalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PendingApprovalUpsert{UpdateSet: update})
	}))
	return u
}

// SetArguments sets the "arguments" field.
func (u *PendingApprovalUpsertBulk) SetArguments(v map[string]interface{}) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetArguments(v)
	})
}

// UpdateArguments sets the "arguments" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateArguments() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateArguments()
	})
}

// ClearArguments clears the value of the "arguments" field.
func (u *PendingApprovalUpsertBulk) ClearArguments() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearArguments()
	})
}

// SetStatus sets the "status" field.
func (u *PendingApprovalUpsertBulk) SetStatus(v pendingapproval.Status) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateStatus() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateStatus()
	})
}

// SetDecisionFeedback sets the "decision_feedback" field.
func (u *PendingApprovalUpsertBulk) SetDecisionFeedback(v string) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetDecisionFeedback(v)
	})
}

// UpdateDecisionFeedback sets the "decision_feedback" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateDecisionFeedback() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateDecisionFeedback()
	})
}

// ClearDecisionFeedback clears the value of the "decision_feedback" field.
func (u *PendingApprovalUpsertBulk) ClearDecisionFeedback() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearDecisionFeedback()
	})
}

// SetModifiedArguments sets the "modified_arguments" field.
func (u *PendingApprovalUpsertBulk) SetModifiedArguments(v map[string]interface{}) *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.SetModifiedArguments(v)
	})
}

// UpdateModifiedArguments sets the "modified_arguments" field to the value that was provided on create.
func (u *PendingApprovalUpsertBulk) UpdateModifiedArguments() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.UpdateModifiedArguments()
	})
}

// ClearModifiedArguments clears the value of the "modified_arguments" field.
func (u *PendingApprovalUpsertBulk) ClearModifiedArguments() *PendingApprovalUpsertBulk {
	return u.Update(func(s *PendingApprovalUpsert) {
		s.ClearModifiedArguments()
	})
}

// Exec executes the query.
func (u *PendingApprovalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PendingApprovalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PendingApprovalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PendingApprovalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
