// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/switchyard-ai/switchyard/ent/agentcontext"
	"github.com/switchyard-ai/switchyard/ent/agentswitch"
	"github.com/switchyard-ai/switchyard/ent/auditlog"
	"github.com/switchyard-ai/switchyard/ent/message"
	"github.com/switchyard-ai/switchyard/ent/pendingapproval"
	"github.com/switchyard-ai/switchyard/ent/predicate"
	"github.com/switchyard-ai/switchyard/ent/session"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentContext    = "AgentContext"
	TypeAgentSwitch     = "AgentSwitch"
	TypeAuditLog        = "AuditLog"
	TypeMessage         = "Message"
	TypePendingApproval = "PendingApproval"
	TypeSession         = "Session"
)

// AgentContextMutation represents an operation that mutates the AgentContext nodes in the graph.
type AgentContextMutation struct {
	config
	op               Op
	typ              string
	id               *string
	current_agent    *agentcontext.CurrentAgent
	switch_count     *int
	addswitch_count  *int
	created_at       *time.Time
	last_switch_at   *time.Time
	context_metadata *map[string]interface{}
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	switches         map[string]struct{}
	removedswitches  map[string]struct{}
	clearedswitches  bool
	done             bool
	oldValue         func(context.Context) (*AgentContext, error)
	predicates       []predicate.AgentContext
}

var _ ent.Mutation = (*AgentContextMutation)(nil)

// agentcontextOption allows management of the mutation configuration using functional options.
type agentcontextOption func(*AgentContextMutation)

// newAgentContextMutation creates new mutation for the AgentContext entity.
func newAgentContextMutation(c config, op Op, opts ...agentcontextOption) *AgentContextMutation {
	m := &AgentContextMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentContext,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentContextID sets the ID field of the mutation.
func withAgentContextID(id string) agentcontextOption {
	return func(m *AgentContextMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentContext
		)
		m.oldValue = func(ctx context.Context) (*AgentContext, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentContext.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentContext sets the old AgentContext of the mutation.
func withAgentContext(node *AgentContext) agentcontextOption {
	return func(m *AgentContextMutation) {
		m.oldValue = func(context.Context) (*AgentContext, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentContextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentContextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentContext entities.
func (m *AgentContextMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentContextMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentContextMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentContext.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AgentContextMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgentContextMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgentContextMutation) ResetSessionID() {
	m.session = nil
}

// SetCurrentAgent sets the "current_agent" field.
func (m *AgentContextMutation) SetCurrentAgent(aa agentcontext.CurrentAgent) {
	m.current_agent = &aa
}

// CurrentAgent returns the value of the "current_agent" field in the mutation.
func (m *AgentContextMutation) CurrentAgent() (r agentcontext.CurrentAgent, exists bool) {
	v := m.current_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentAgent returns the old "current_agent" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldCurrentAgent(ctx context.Context) (v agentcontext.CurrentAgent, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentAgent: %w", err)
	}
	return oldValue.CurrentAgent, nil
}

// ResetCurrentAgent resets all changes to the "current_agent" field.
func (m *AgentContextMutation) ResetCurrentAgent() {
	m.current_agent = nil
}

// SetSwitchCount sets the "switch_count" field.
func (m *AgentContextMutation) SetSwitchCount(i int) {
	m.switch_count = &i
	m.addswitch_count = nil
}

// SwitchCount returns the value of the "switch_count" field in the mutation.
func (m *AgentContextMutation) SwitchCount() (r int, exists bool) {
	v := m.switch_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSwitchCount returns the old "switch_count" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldSwitchCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSwitchCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSwitchCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSwitchCount: %w", err)
	}
	return oldValue.SwitchCount, nil
}

// AddSwitchCount adds i to the "switch_count" field.
func (m *AgentContextMutation) AddSwitchCount(i int) {
	if m.addswitch_count != nil {
		*m.addswitch_count += i
	} else {
		m.addswitch_count = &i
	}
}

// AddedSwitchCount returns the value that was added to the "switch_count" field in this mutation.
func (m *AgentContextMutation) AddedSwitchCount() (r int, exists bool) {
	v := m.addswitch_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSwitchCount resets all changes to the "switch_count" field.
func (m *AgentContextMutation) ResetSwitchCount() {
	m.switch_count = nil
	m.addswitch_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentContextMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentContextMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentContextMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastSwitchAt sets the "last_switch_at" field.
func (m *AgentContextMutation) SetLastSwitchAt(t time.Time) {
	m.last_switch_at = &t
}

// LastSwitchAt returns the value of the "last_switch_at" field in the mutation.
func (m *AgentContextMutation) LastSwitchAt() (r time.Time, exists bool) {
	v := m.last_switch_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSwitchAt returns the old "last_switch_at" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldLastSwitchAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSwitchAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSwitchAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSwitchAt: %w", err)
	}
	return oldValue.LastSwitchAt, nil
}

// ClearLastSwitchAt clears the value of the "last_switch_at" field.
func (m *AgentContextMutation) ClearLastSwitchAt() {
	m.last_switch_at = nil
	m.clearedFields[agentcontext.FieldLastSwitchAt] = struct{}{}
}

// LastSwitchAtCleared returns if the "last_switch_at" field was cleared in this mutation.
func (m *AgentContextMutation) LastSwitchAtCleared() bool {
	_, ok := m.clearedFields[agentcontext.FieldLastSwitchAt]
	return ok
}

// ResetLastSwitchAt resets all changes to the "last_switch_at" field.
func (m *AgentContextMutation) ResetLastSwitchAt() {
	m.last_switch_at = nil
	delete(m.clearedFields, agentcontext.FieldLastSwitchAt)
}

// SetContextMetadata sets the "context_metadata" field.
func (m *AgentContextMutation) SetContextMetadata(value map[string]interface{}) {
	m.context_metadata = &value
}

// ContextMetadata returns the value of the "context_metadata" field in the mutation.
func (m *AgentContextMutation) ContextMetadata() (r map[string]interface{}, exists bool) {
	v := m.context_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldContextMetadata returns the old "context_metadata" field's value of the AgentContext entity.
// If the AgentContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentContextMutation) OldContextMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextMetadata: %w", err)
	}
	return oldValue.ContextMetadata, nil
}

// ClearContextMetadata clears the value of the "context_metadata" field.
func (m *AgentContextMutation) ClearContextMetadata() {
	m.context_metadata = nil
	m.clearedFields[agentcontext.FieldContextMetadata] = struct{}{}
}

// ContextMetadataCleared returns if the "context_metadata" field was cleared in this mutation.
func (m *AgentContextMutation) ContextMetadataCleared() bool {
	_, ok := m.clearedFields[agentcontext.FieldContextMetadata]
	return ok
}

// ResetContextMetadata resets all changes to the "context_metadata" field.
func (m *AgentContextMutation) ResetContextMetadata() {
	m.context_metadata = nil
	delete(m.clearedFields, agentcontext.FieldContextMetadata)
}

// ClearSession clears the "session" edge to the Session entity.
func (m *AgentContextMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[agentcontext.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *AgentContextMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AgentContextMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AgentContextMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddSwitchIDs adds the "switches" edge to the AgentSwitch entity by ids.
func (m *AgentContextMutation) AddSwitchIDs(ids ...string) {
	if m.switches == nil {
		m.switches = make(map[string]struct{})
	}
	for i := range ids {
		m.switches[ids[i]] = struct{}{}
	}
}

// ClearSwitches clears the "switches" edge to the AgentSwitch entity.
func (m *AgentContextMutation) ClearSwitches() {
	m.clearedswitches = true
}

// SwitchesCleared reports if the "switches" edge to the AgentSwitch entity was cleared.
func (m *AgentContextMutation) SwitchesCleared() bool {
	return m.clearedswitches
}

// RemoveSwitchIDs removes the "switches" edge to the AgentSwitch entity by IDs.
func (m *AgentContextMutation) RemoveSwitchIDs(ids ...string) {
	if m.removedswitches == nil {
		m.removedswitches = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.switches, ids[i])
		m.removedswitches[ids[i]] = struct{}{}
	}
}

// RemovedSwitches returns the removed IDs of the "switches" edge to the AgentSwitch entity.
func (m *AgentContextMutation) RemovedSwitchesIDs() (ids []string) {
	for id := range m.removedswitches {
		ids = append(ids, id)
	}
	return
}

// SwitchesIDs returns the "switches" edge IDs in the mutation.
func (m *AgentContextMutation) SwitchesIDs() (ids []string) {
	for id := range m.switches {
		ids = append(ids, id)
	}
	return
}

// ResetSwitches resets all changes to the "switches" edge.
func (m *AgentContextMutation) ResetSwitches() {
	m.switches = nil
	m.clearedswitches = false
	m.removedswitches = nil
}

// Where appends a list predicates to the AgentContextMutation builder.
func (m *AgentContextMutation) Where(ps ...predicate.AgentContext) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentContextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentContextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentContext, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentContextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentContextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentContext).
func (m *AgentContextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentContextMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session != nil {
		fields = append(fields, agentcontext.FieldSessionID)
	}
	if m.current_agent != nil {
		fields = append(fields, agentcontext.FieldCurrentAgent)
	}
	if m.switch_count != nil {
		fields = append(fields, agentcontext.FieldSwitchCount)
	}
	if m.created_at != nil {
		fields = append(fields, agentcontext.FieldCreatedAt)
	}
	if m.last_switch_at != nil {
		fields = append(fields, agentcontext.FieldLastSwitchAt)
	}
	if m.context_metadata != nil {
		fields = append(fields, agentcontext.FieldContextMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentContextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentcontext.FieldSessionID:
		return m.SessionID()
	case agentcontext.FieldCurrentAgent:
		return m.CurrentAgent()
	case agentcontext.FieldSwitchCount:
		return m.SwitchCount()
	case agentcontext.FieldCreatedAt:
		return m.CreatedAt()
	case agentcontext.FieldLastSwitchAt:
		return m.LastSwitchAt()
	case agentcontext.FieldContextMetadata:
		return m.ContextMetadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentContextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentcontext.FieldSessionID:
		return m.OldSessionID(ctx)
	case agentcontext.FieldCurrentAgent:
		return m.OldCurrentAgent(ctx)
	case agentcontext.FieldSwitchCount:
		return m.OldSwitchCount(ctx)
	case agentcontext.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentcontext.FieldLastSwitchAt:
		return m.OldLastSwitchAt(ctx)
	case agentcontext.FieldContextMetadata:
		return m.OldContextMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown AgentContext field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentContextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentcontext.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agentcontext.FieldCurrentAgent:
		v, ok := value.(agentcontext.CurrentAgent)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentAgent(v)
		return nil
	case agentcontext.FieldSwitchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSwitchCount(v)
		return nil
	case agentcontext.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentcontext.FieldLastSwitchAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSwitchAt(v)
		return nil
	case agentcontext.FieldContextMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown AgentContext field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentContextMutation) AddedFields() []string {
	var fields []string
	if m.addswitch_count != nil {
		fields = append(fields, agentcontext.FieldSwitchCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentContextMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentcontext.FieldSwitchCount:
		return m.AddedSwitchCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentContextMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentcontext.FieldSwitchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSwitchCount(v)
		return nil
	}
	return fmt.Errorf("unknown AgentContext numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentContextMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentcontext.FieldLastSwitchAt) {
		fields = append(fields, agentcontext.FieldLastSwitchAt)
	}
	if m.FieldCleared(agentcontext.FieldContextMetadata) {
		fields = append(fields, agentcontext.FieldContextMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentContextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentContextMutation) ClearField(name string) error {
	switch name {
	case agentcontext.FieldLastSwitchAt:
		m.ClearLastSwitchAt()
		return nil
	case agentcontext.FieldContextMetadata:
		m.ClearContextMetadata()
		return nil
	}
	return fmt.Errorf("unknown AgentContext nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentContextMutation) ResetField(name string) error {
	switch name {
	case agentcontext.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agentcontext.FieldCurrentAgent:
		m.ResetCurrentAgent()
		return nil
	case agentcontext.FieldSwitchCount:
		m.ResetSwitchCount()
		return nil
	case agentcontext.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentcontext.FieldLastSwitchAt:
		m.ResetLastSwitchAt()
		return nil
	case agentcontext.FieldContextMetadata:
		m.ResetContextMetadata()
		return nil
	}
	return fmt.Errorf("unknown AgentContext field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentContextMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, agentcontext.EdgeSession)
	}
	if m.switches != nil {
		edges = append(edges, agentcontext.EdgeSwitches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentContextMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentcontext.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case agentcontext.EdgeSwitches:
		ids := make([]ent.Value, 0, len(m.switches))
		for id := range m.switches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentContextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedswitches != nil {
		edges = append(edges, agentcontext.EdgeSwitches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentContextMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentcontext.EdgeSwitches:
		ids := make([]ent.Value, 0, len(m.removedswitches))
		for id := range m.removedswitches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentContextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, agentcontext.EdgeSession)
	}
	if m.clearedswitches {
		edges = append(edges, agentcontext.EdgeSwitches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentContextMutation) EdgeCleared(name string) bool {
	switch name {
	case agentcontext.EdgeSession:
		return m.clearedsession
	case agentcontext.EdgeSwitches:
		return m.clearedswitches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentContextMutation) ClearEdge(name string) error {
	switch name {
	case agentcontext.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown AgentContext unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentContextMutation) ResetEdge(name string) error {
	switch name {
	case agentcontext.EdgeSession:
		m.ResetSession()
		return nil
	case agentcontext.EdgeSwitches:
		m.ResetSwitches()
		return nil
	}
	return fmt.Errorf("unknown AgentContext edge %s", name)
}

// AgentSwitchMutation represents an operation that mutates the AgentSwitch nodes in the graph.
type AgentSwitchMutation struct {
	config
	op             Op
	typ            string
	id             *string
	from_agent     *string
	to_agent       *string
	reason         *string
	switched_at    *time.Time
	clearedFields  map[string]struct{}
	context        *string
	clearedcontext bool
	done           bool
	oldValue       func(context.Context) (*AgentSwitch, error)
	predicates     []predicate.AgentSwitch
}

var _ ent.Mutation = (*AgentSwitchMutation)(nil)

// agentswitchOption allows management of the mutation configuration using functional options.
type agentswitchOption func(*AgentSwitchMutation)

// newAgentSwitchMutation creates new mutation for the AgentSwitch entity.
func newAgentSwitchMutation(c config, op Op, opts ...agentswitchOption) *AgentSwitchMutation {
	m := &AgentSwitchMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSwitch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSwitchID sets the ID field of the mutation.
func withAgentSwitchID(id string) agentswitchOption {
	return func(m *AgentSwitchMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSwitch
		)
		m.oldValue = func(ctx context.Context) (*AgentSwitch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSwitch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSwitch sets the old AgentSwitch of the mutation.
func withAgentSwitch(node *AgentSwitch) agentswitchOption {
	return func(m *AgentSwitchMutation) {
		m.oldValue = func(context.Context) (*AgentSwitch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSwitchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSwitchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSwitch entities.
func (m *AgentSwitchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSwitchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSwitchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSwitch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContextID sets the "context_id" field.
func (m *AgentSwitchMutation) SetContextID(s string) {
	m.context = &s
}

// ContextID returns the value of the "context_id" field in the mutation.
func (m *AgentSwitchMutation) ContextID() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContextID returns the old "context_id" field's value of the AgentSwitch entity.
// If the AgentSwitch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSwitchMutation) OldContextID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextID: %w", err)
	}
	return oldValue.ContextID, nil
}

// ResetContextID resets all changes to the "context_id" field.
func (m *AgentSwitchMutation) ResetContextID() {
	m.context = nil
}

// SetFromAgent sets the "from_agent" field.
func (m *AgentSwitchMutation) SetFromAgent(s string) {
	m.from_agent = &s
}

// FromAgent returns the value of the "from_agent" field in the mutation.
func (m *AgentSwitchMutation) FromAgent() (r string, exists bool) {
	v := m.from_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldFromAgent returns the old "from_agent" field's value of the AgentSwitch entity.
// If the AgentSwitch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSwitchMutation) OldFromAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromAgent: %w", err)
	}
	return oldValue.FromAgent, nil
}

// ResetFromAgent resets all changes to the "from_agent" field.
func (m *AgentSwitchMutation) ResetFromAgent() {
	m.from_agent = nil
}

// SetToAgent sets the "to_agent" field.
func (m *AgentSwitchMutation) SetToAgent(s string) {
	m.to_agent = &s
}

// ToAgent returns the value of the "to_agent" field in the mutation.
func (m *AgentSwitchMutation) ToAgent() (r string, exists bool) {
	v := m.to_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldToAgent returns the old "to_agent" field's value of the AgentSwitch entity.
// If the AgentSwitch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSwitchMutation) OldToAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToAgent: %w", err)
	}
	return oldValue.ToAgent, nil
}

// ResetToAgent resets all changes to the "to_agent" field.
func (m *AgentSwitchMutation) ResetToAgent() {
	m.to_agent = nil
}

// SetReason sets the "reason" field.
func (m *AgentSwitchMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AgentSwitchMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the AgentSwitch entity.
// If the AgentSwitch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSwitchMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *AgentSwitchMutation) ResetReason() {
	m.reason = nil
}

// SetSwitchedAt sets the "switched_at" field.
func (m *AgentSwitchMutation) SetSwitchedAt(t time.Time) {
	m.switched_at = &t
}

// SwitchedAt returns the value of the "switched_at" field in the mutation.
func (m *AgentSwitchMutation) SwitchedAt() (r time.Time, exists bool) {
	v := m.switched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSwitchedAt returns the old "switched_at" field's value of the AgentSwitch entity.
// If the AgentSwitch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSwitchMutation) OldSwitchedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSwitchedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSwitchedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSwitchedAt: %w", err)
	}
	return oldValue.SwitchedAt, nil
}

// ResetSwitchedAt resets all changes to the "switched_at" field.
func (m *AgentSwitchMutation) ResetSwitchedAt() {
	m.switched_at = nil
}

// ClearContext clears the "context" edge to the AgentContext entity.
func (m *AgentSwitchMutation) ClearContext() {
	m.clearedcontext = true
	m.clearedFields[agentswitch.FieldContextID] = struct{}{}
}

// ContextCleared reports if the "context" edge to the AgentContext entity was cleared.
func (m *AgentSwitchMutation) ContextCleared() bool {
	return m.clearedcontext
}

// ContextIDs returns the "context" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContextID instead. It exists only for internal usage by the builders.
func (m *AgentSwitchMutation) ContextIDs() (ids []string) {
	if id := m.context; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContext resets all changes to the "context" edge.
func (m *AgentSwitchMutation) ResetContext() {
	m.context = nil
	m.clearedcontext = false
}

// Where appends a list predicates to the AgentSwitchMutation builder.
func (m *AgentSwitchMutation) Where(ps ...predicate.AgentSwitch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSwitchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSwitchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSwitch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSwitchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSwitchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSwitch).
func (m *AgentSwitchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSwitchMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.context != nil {
		fields = append(fields, agentswitch.FieldContextID)
	}
	if m.from_agent != nil {
		fields = append(fields, agentswitch.FieldFromAgent)
	}
	if m.to_agent != nil {
		fields = append(fields, agentswitch.FieldToAgent)
	}
	if m.reason != nil {
		fields = append(fields, agentswitch.FieldReason)
	}
	if m.switched_at != nil {
		fields = append(fields, agentswitch.FieldSwitchedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSwitchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentswitch.FieldContextID:
		return m.ContextID()
	case agentswitch.FieldFromAgent:
		return m.FromAgent()
	case agentswitch.FieldToAgent:
		return m.ToAgent()
	case agentswitch.FieldReason:
		return m.Reason()
	case agentswitch.FieldSwitchedAt:
		return m.SwitchedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSwitchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentswitch.FieldContextID:
		return m.OldContextID(ctx)
	case agentswitch.FieldFromAgent:
		return m.OldFromAgent(ctx)
	case agentswitch.FieldToAgent:
		return m.OldToAgent(ctx)
	case agentswitch.FieldReason:
		return m.OldReason(ctx)
	case agentswitch.FieldSwitchedAt:
		return m.OldSwitchedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSwitch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSwitchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentswitch.FieldContextID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextID(v)
		return nil
	case agentswitch.FieldFromAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromAgent(v)
		return nil
	case agentswitch.FieldToAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToAgent(v)
		return nil
	case agentswitch.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case agentswitch.FieldSwitchedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSwitchedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSwitch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSwitchMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSwitchMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSwitchMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentSwitch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSwitchMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSwitchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSwitchMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AgentSwitch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSwitchMutation) ResetField(name string) error {
	switch name {
	case agentswitch.FieldContextID:
		m.ResetContextID()
		return nil
	case agentswitch.FieldFromAgent:
		m.ResetFromAgent()
		return nil
	case agentswitch.FieldToAgent:
		m.ResetToAgent()
		return nil
	case agentswitch.FieldReason:
		m.ResetReason()
		return nil
	case agentswitch.FieldSwitchedAt:
		m.ResetSwitchedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSwitch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSwitchMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.context != nil {
		edges = append(edges, agentswitch.EdgeContext)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSwitchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentswitch.EdgeContext:
		if id := m.context; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSwitchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSwitchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSwitchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontext {
		edges = append(edges, agentswitch.EdgeContext)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSwitchMutation) EdgeCleared(name string) bool {
	switch name {
	case agentswitch.EdgeContext:
		return m.clearedcontext
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSwitchMutation) ClearEdge(name string) error {
	switch name {
	case agentswitch.EdgeContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown AgentSwitch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSwitchMutation) ResetEdge(name string) error {
	switch name {
	case agentswitch.EdgeContext:
		m.ResetContext()
		return nil
	}
	return fmt.Errorf("unknown AgentSwitch edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op             Op
	typ            string
	id             *string
	event_type     *string
	session_id     *string
	correlation_id *string
	payload        *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AuditLog, error)
	predicates     []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *AuditLogMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AuditLogMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AuditLogMutation) ResetEventType() {
	m.event_type = nil
}

// SetSessionID sets the "session_id" field.
func (m *AuditLogMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AuditLogMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *AuditLogMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[auditlog.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *AuditLogMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AuditLogMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, auditlog.FieldSessionID)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *AuditLogMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *AuditLogMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCorrelationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *AuditLogMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[auditlog.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *AuditLogMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *AuditLogMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, auditlog.FieldCorrelationID)
}

// SetPayload sets the "payload" field.
func (m *AuditLogMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AuditLogMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *AuditLogMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.event_type != nil {
		fields = append(fields, auditlog.FieldEventType)
	}
	if m.session_id != nil {
		fields = append(fields, auditlog.FieldSessionID)
	}
	if m.correlation_id != nil {
		fields = append(fields, auditlog.FieldCorrelationID)
	}
	if m.payload != nil {
		fields = append(fields, auditlog.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldEventType:
		return m.EventType()
	case auditlog.FieldSessionID:
		return m.SessionID()
	case auditlog.FieldCorrelationID:
		return m.CorrelationID()
	case auditlog.FieldPayload:
		return m.Payload()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldEventType:
		return m.OldEventType(ctx)
	case auditlog.FieldSessionID:
		return m.OldSessionID(ctx)
	case auditlog.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case auditlog.FieldPayload:
		return m.OldPayload(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case auditlog.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case auditlog.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case auditlog.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldSessionID) {
		fields = append(fields, auditlog.FieldSessionID)
	}
	if m.FieldCleared(auditlog.FieldCorrelationID) {
		fields = append(fields, auditlog.FieldCorrelationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldSessionID:
		m.ClearSessionID()
		return nil
	case auditlog.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldEventType:
		m.ResetEventType()
		return nil
	case auditlog.FieldSessionID:
		m.ResetSessionID()
		return nil
	case auditlog.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case auditlog.FieldPayload:
		m.ResetPayload()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op               Op
	typ              string
	id               *string
	sequence         *int
	addsequence      *int
	role             *message.Role
	content          *string
	tool_calls       *[]map[string]interface{}
	appendtool_calls []map[string]interface{}
	tool_call_id     *string
	tool_name        *string
	token_count      *int
	addtoken_count   *int
	message_metadata *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	done             bool
	oldValue         func(context.Context) (*Message, error)
	predicates       []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *MessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MessageMutation) ResetSessionID() {
	m.session = nil
}

// SetSequence sets the "sequence" field.
func (m *MessageMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *MessageMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *MessageMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *MessageMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *MessageMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetToolCalls sets the "tool_calls" field.
func (m *MessageMutation) SetToolCalls(value []map[string]interface{}) {
	m.tool_calls = &value
	m.appendtool_calls = nil
}

// ToolCalls returns the value of the "tool_calls" field in the mutation.
func (m *MessageMutation) ToolCalls() (r []map[string]interface{}, exists bool) {
	v := m.tool_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCalls returns the old "tool_calls" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldToolCalls(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCalls: %w", err)
	}
	return oldValue.ToolCalls, nil
}

// AppendToolCalls adds value to the "tool_calls" field.
func (m *MessageMutation) AppendToolCalls(value []map[string]interface{}) {
	m.appendtool_calls = append(m.appendtool_calls, value...)
}

// AppendedToolCalls returns the list of values that were appended to the "tool_calls" field in this mutation.
func (m *MessageMutation) AppendedToolCalls() ([]map[string]interface{}, bool) {
	if len(m.appendtool_calls) == 0 {
		return nil, false
	}
	return m.appendtool_calls, true
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (m *MessageMutation) ClearToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	m.clearedFields[message.FieldToolCalls] = struct{}{}
}

// ToolCallsCleared returns if the "tool_calls" field was cleared in this mutation.
func (m *MessageMutation) ToolCallsCleared() bool {
	_, ok := m.clearedFields[message.FieldToolCalls]
	return ok
}

// ResetToolCalls resets all changes to the "tool_calls" field.
func (m *MessageMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	delete(m.clearedFields, message.FieldToolCalls)
}

// SetToolCallID sets the "tool_call_id" field.
func (m *MessageMutation) SetToolCallID(s string) {
	m.tool_call_id = &s
}

// ToolCallID returns the value of the "tool_call_id" field in the mutation.
func (m *MessageMutation) ToolCallID() (r string, exists bool) {
	v := m.tool_call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCallID returns the old "tool_call_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldToolCallID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCallID: %w", err)
	}
	return oldValue.ToolCallID, nil
}

// ClearToolCallID clears the value of the "tool_call_id" field.
func (m *MessageMutation) ClearToolCallID() {
	m.tool_call_id = nil
	m.clearedFields[message.FieldToolCallID] = struct{}{}
}

// ToolCallIDCleared returns if the "tool_call_id" field was cleared in this mutation.
func (m *MessageMutation) ToolCallIDCleared() bool {
	_, ok := m.clearedFields[message.FieldToolCallID]
	return ok
}

// ResetToolCallID resets all changes to the "tool_call_id" field.
func (m *MessageMutation) ResetToolCallID() {
	m.tool_call_id = nil
	delete(m.clearedFields, message.FieldToolCallID)
}

// SetToolName sets the "tool_name" field.
func (m *MessageMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *MessageMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldToolName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *MessageMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[message.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *MessageMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[message.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *MessageMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, message.FieldToolName)
}

// SetTokenCount sets the "token_count" field.
func (m *MessageMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *MessageMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTokenCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *MessageMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *MessageMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokenCount clears the value of the "token_count" field.
func (m *MessageMutation) ClearTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	m.clearedFields[message.FieldTokenCount] = struct{}{}
}

// TokenCountCleared returns if the "token_count" field was cleared in this mutation.
func (m *MessageMutation) TokenCountCleared() bool {
	_, ok := m.clearedFields[message.FieldTokenCount]
	return ok
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *MessageMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	delete(m.clearedFields, message.FieldTokenCount)
}

// SetMessageMetadata sets the "message_metadata" field.
func (m *MessageMutation) SetMessageMetadata(value map[string]interface{}) {
	m.message_metadata = &value
}

// MessageMetadata returns the value of the "message_metadata" field in the mutation.
func (m *MessageMutation) MessageMetadata() (r map[string]interface{}, exists bool) {
	v := m.message_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageMetadata returns the old "message_metadata" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMessageMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageMetadata: %w", err)
	}
	return oldValue.MessageMetadata, nil
}

// ClearMessageMetadata clears the value of the "message_metadata" field.
func (m *MessageMutation) ClearMessageMetadata() {
	m.message_metadata = nil
	m.clearedFields[message.FieldMessageMetadata] = struct{}{}
}

// MessageMetadataCleared returns if the "message_metadata" field was cleared in this mutation.
func (m *MessageMutation) MessageMetadataCleared() bool {
	_, ok := m.clearedFields[message.FieldMessageMetadata]
	return ok
}

// ResetMessageMetadata resets all changes to the "message_metadata" field.
func (m *MessageMutation) ResetMessageMetadata() {
	m.message_metadata = nil
	delete(m.clearedFields, message.FieldMessageMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *MessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[message.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *MessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *MessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, message.FieldSessionID)
	}
	if m.sequence != nil {
		fields = append(fields, message.FieldSequence)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.tool_calls != nil {
		fields = append(fields, message.FieldToolCalls)
	}
	if m.tool_call_id != nil {
		fields = append(fields, message.FieldToolCallID)
	}
	if m.tool_name != nil {
		fields = append(fields, message.FieldToolName)
	}
	if m.token_count != nil {
		fields = append(fields, message.FieldTokenCount)
	}
	if m.message_metadata != nil {
		fields = append(fields, message.FieldMessageMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSessionID:
		return m.SessionID()
	case message.FieldSequence:
		return m.Sequence()
	case message.FieldRole:
		return m.Role()
	case message.FieldContent:
		return m.Content()
	case message.FieldToolCalls:
		return m.ToolCalls()
	case message.FieldToolCallID:
		return m.ToolCallID()
	case message.FieldToolName:
		return m.ToolName()
	case message.FieldTokenCount:
		return m.TokenCount()
	case message.FieldMessageMetadata:
		return m.MessageMetadata()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldSessionID:
		return m.OldSessionID(ctx)
	case message.FieldSequence:
		return m.OldSequence(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldToolCalls:
		return m.OldToolCalls(ctx)
	case message.FieldToolCallID:
		return m.OldToolCallID(ctx)
	case message.FieldToolName:
		return m.OldToolName(ctx)
	case message.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case message.FieldMessageMetadata:
		return m.OldMessageMetadata(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case message.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldToolCalls:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCalls(v)
		return nil
	case message.FieldToolCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCallID(v)
		return nil
	case message.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case message.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case message.FieldMessageMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageMetadata(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, message.FieldSequence)
	}
	if m.addtoken_count != nil {
		fields = append(fields, message.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSequence:
		return m.AddedSequence()
	case message.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case message.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldToolCalls) {
		fields = append(fields, message.FieldToolCalls)
	}
	if m.FieldCleared(message.FieldToolCallID) {
		fields = append(fields, message.FieldToolCallID)
	}
	if m.FieldCleared(message.FieldToolName) {
		fields = append(fields, message.FieldToolName)
	}
	if m.FieldCleared(message.FieldTokenCount) {
		fields = append(fields, message.FieldTokenCount)
	}
	if m.FieldCleared(message.FieldMessageMetadata) {
		fields = append(fields, message.FieldMessageMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldToolCalls:
		m.ClearToolCalls()
		return nil
	case message.FieldToolCallID:
		m.ClearToolCallID()
		return nil
	case message.FieldToolName:
		m.ClearToolName()
		return nil
	case message.FieldTokenCount:
		m.ClearTokenCount()
		return nil
	case message.FieldMessageMetadata:
		m.ClearMessageMetadata()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldSessionID:
		m.ResetSessionID()
		return nil
	case message.FieldSequence:
		m.ResetSequence()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldToolCalls:
		m.ResetToolCalls()
		return nil
	case message.FieldToolCallID:
		m.ResetToolCallID()
		return nil
	case message.FieldToolName:
		m.ResetToolName()
		return nil
	case message.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case message.FieldMessageMetadata:
		m.ResetMessageMetadata()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, message.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, message.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// PendingApprovalMutation represents an operation that mutates the PendingApproval nodes in the graph.
type PendingApprovalMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	tool_name          *string
	arguments          *map[string]interface{}
	status             *pendingapproval.Status
	decision_feedback  *string
	modified_arguments *map[string]interface{}
	created_at         *time.Time
	clearedFields      map[string]struct{}
	session            *string
	clearedsession     bool
	done               bool
	oldValue           func(context.Context) (*PendingApproval, error)
	predicates         []predicate.PendingApproval
}

var _ ent.Mutation = (*PendingApprovalMutation)(nil)

// pendingapprovalOption allows management of the mutation configuration using functional options.
type pendingapprovalOption func(*PendingApprovalMutation)

// newPendingApprovalMutation creates new mutation for the PendingApproval entity.
func newPendingApprovalMutation(c config, op Op, opts ...pendingapprovalOption) *PendingApprovalMutation {
	m := &PendingApprovalMutation{
		config:        c,
		op:            op,
		typ:           TypePendingApproval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPendingApprovalID sets the ID field of the mutation.
func withPendingApprovalID(id string) pendingapprovalOption {
	return func(m *PendingApprovalMutation) {
		var (
			err   error
			once  sync.Once
			value *PendingApproval
		)
		m.oldValue = func(ctx context.Context) (*PendingApproval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PendingApproval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPendingApproval sets the old PendingApproval of the mutation.
func withPendingApproval(node *PendingApproval) pendingapprovalOption {
	return func(m *PendingApprovalMutation) {
		m.oldValue = func(context.Context) (*PendingApproval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PendingApprovalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PendingApprovalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PendingApproval entities.
func (m *PendingApprovalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PendingApprovalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PendingApprovalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PendingApproval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *PendingApprovalMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PendingApprovalMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PendingApprovalMutation) ResetSessionID() {
	m.session = nil
}

// SetToolName sets the "tool_name" field.
func (m *PendingApprovalMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *PendingApprovalMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *PendingApprovalMutation) ResetToolName() {
	m.tool_name = nil
}

// SetArguments sets the "arguments" field.
func (m *PendingApprovalMutation) SetArguments(value map[string]interface{}) {
	m.arguments = &value
}

// Arguments returns the value of the "arguments" field in the mutation.
func (m *PendingApprovalMutation) Arguments() (r map[string]interface{}, exists bool) {
	v := m.arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldArguments returns the old "arguments" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldArguments(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArguments: %w", err)
	}
	return oldValue.Arguments, nil
}

// ClearArguments clears the value of the "arguments" field.
func (m *PendingApprovalMutation) ClearArguments() {
	m.arguments = nil
	m.clearedFields[pendingapproval.FieldArguments] = struct{}{}
}

// ArgumentsCleared returns if the "arguments" field was cleared in this mutation.
func (m *PendingApprovalMutation) ArgumentsCleared() bool {
	_, ok := m.clearedFields[pendingapproval.FieldArguments]
	return ok
}

// ResetArguments resets all changes to the "arguments" field.
func (m *PendingApprovalMutation) ResetArguments() {
	m.arguments = nil
	delete(m.clearedFields, pendingapproval.FieldArguments)
}

// SetStatus sets the "status" field.
func (m *PendingApprovalMutation) SetStatus(pe pendingapproval.Status) {
	m.status = &pe
}

// Status returns the value of the "status" field in the mutation.
func (m *PendingApprovalMutation) Status() (r pendingapproval.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldStatus(ctx context.Context) (v pendingapproval.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PendingApprovalMutation) ResetStatus() {
	m.status = nil
}

// SetDecisionFeedback sets the "decision_feedback" field.
func (m *PendingApprovalMutation) SetDecisionFeedback(s string) {
	m.decision_feedback = &s
}

// DecisionFeedback returns the value of the "decision_feedback" field in the mutation.
func (m *PendingApprovalMutation) DecisionFeedback() (r string, exists bool) {
	v := m.decision_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionFeedback returns the old "decision_feedback" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldDecisionFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionFeedback: %w", err)
	}
	return oldValue.DecisionFeedback, nil
}

// ClearDecisionFeedback clears the value of the "decision_feedback" field.
func (m *PendingApprovalMutation) ClearDecisionFeedback() {
	m.decision_feedback = nil
	m.clearedFields[pendingapproval.FieldDecisionFeedback] = struct{}{}
}

// DecisionFeedbackCleared returns if the "decision_feedback" field was cleared in this mutation.
func (m *PendingApprovalMutation) DecisionFeedbackCleared() bool {
	_, ok := m.clearedFields[pendingapproval.FieldDecisionFeedback]
	return ok
}

// ResetDecisionFeedback resets all changes to the "decision_feedback" field.
func (m *PendingApprovalMutation) ResetDecisionFeedback() {
	m.decision_feedback = nil
	delete(m.clearedFields, pendingapproval.FieldDecisionFeedback)
}

// SetModifiedArguments sets the "modified_arguments" field.
func (m *PendingApprovalMutation) SetModifiedArguments(value map[string]interface{}) {
	m.modified_arguments = &value
}

// ModifiedArguments returns the value of the "modified_arguments" field in the mutation.
func (m *PendingApprovalMutation) ModifiedArguments() (r map[string]interface{}, exists bool) {
	v := m.modified_arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldModifiedArguments returns the old "modified_arguments" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldModifiedArguments(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModifiedArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModifiedArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModifiedArguments: %w", err)
	}
	return oldValue.ModifiedArguments, nil
}

// ClearModifiedArguments clears the value of the "modified_arguments" field.
func (m *PendingApprovalMutation) ClearModifiedArguments() {
	m.modified_arguments = nil
	m.clearedFields[pendingapproval.FieldModifiedArguments] = struct{}{}
}

// ModifiedArgumentsCleared returns if the "modified_arguments" field was cleared in this mutation.
func (m *PendingApprovalMutation) ModifiedArgumentsCleared() bool {
	_, ok := m.clearedFields[pendingapproval.FieldModifiedArguments]
	return ok
}

// ResetModifiedArguments resets all changes to the "modified_arguments" field.
func (m *PendingApprovalMutation) ResetModifiedArguments() {
	m.modified_arguments = nil
	delete(m.clearedFields, pendingapproval.FieldModifiedArguments)
}

// SetCreatedAt sets the "created_at" field.
func (m *PendingApprovalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PendingApprovalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PendingApproval entity.
// If the PendingApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingApprovalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PendingApprovalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *PendingApprovalMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[pendingapproval.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *PendingApprovalMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *PendingApprovalMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *PendingApprovalMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the PendingApprovalMutation builder.
func (m *PendingApprovalMutation) Where(ps ...predicate.PendingApproval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PendingApprovalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PendingApprovalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PendingApproval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PendingApprovalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PendingApprovalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PendingApproval).
func (m *PendingApprovalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PendingApprovalMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, pendingapproval.FieldSessionID)
	}
	if m.tool_name != nil {
		fields = append(fields, pendingapproval.FieldToolName)
	}
	if m.arguments != nil {
		fields = append(fields, pendingapproval.FieldArguments)
	}
	if m.status != nil {
		fields = append(fields, pendingapproval.FieldStatus)
	}
	if m.decision_feedback != nil {
		fields = append(fields, pendingapproval.FieldDecisionFeedback)
	}
	if m.modified_arguments != nil {
		fields = append(fields, pendingapproval.FieldModifiedArguments)
	}
	if m.created_at != nil {
		fields = append(fields, pendingapproval.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PendingApprovalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pendingapproval.FieldSessionID:
		return m.SessionID()
	case pendingapproval.FieldToolName:
		return m.ToolName()
	case pendingapproval.FieldArguments:
		return m.Arguments()
	case pendingapproval.FieldStatus:
		return m.Status()
	case pendingapproval.FieldDecisionFeedback:
		return m.DecisionFeedback()
	case pendingapproval.FieldModifiedArguments:
		return m.ModifiedArguments()
	case pendingapproval.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PendingApprovalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pendingapproval.FieldSessionID:
		return m.OldSessionID(ctx)
	case pendingapproval.FieldToolName:
		return m.OldToolName(ctx)
	case pendingapproval.FieldArguments:
		return m.OldArguments(ctx)
	case pendingapproval.FieldStatus:
		return m.OldStatus(ctx)
	case pendingapproval.FieldDecisionFeedback:
		return m.OldDecisionFeedback(ctx)
	case pendingapproval.FieldModifiedArguments:
		return m.OldModifiedArguments(ctx)
	case pendingapproval.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PendingApproval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingApprovalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pendingapproval.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case pendingapproval.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case pendingapproval.FieldArguments:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArguments(v)
		return nil
	case pendingapproval.FieldStatus:
		v, ok := value.(pendingapproval.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pendingapproval.FieldDecisionFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionFeedback(v)
		return nil
	case pendingapproval.FieldModifiedArguments:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModifiedArguments(v)
		return nil
	case pendingapproval.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PendingApproval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PendingApprovalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PendingApprovalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingApprovalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PendingApproval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PendingApprovalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pendingapproval.FieldArguments) {
		fields = append(fields, pendingapproval.FieldArguments)
	}
	if m.FieldCleared(pendingapproval.FieldDecisionFeedback) {
		fields = append(fields, pendingapproval.FieldDecisionFeedback)
	}
	if m.FieldCleared(pendingapproval.FieldModifiedArguments) {
		fields = append(fields, pendingapproval.FieldModifiedArguments)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PendingApprovalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PendingApprovalMutation) ClearField(name string) error {
	switch name {
	case pendingapproval.FieldArguments:
		m.ClearArguments()
		return nil
	case pendingapproval.FieldDecisionFeedback:
		m.ClearDecisionFeedback()
		return nil
	case pendingapproval.FieldModifiedArguments:
		m.ClearModifiedArguments()
		return nil
	}
	return fmt.Errorf("unknown PendingApproval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PendingApprovalMutation) ResetField(name string) error {
	switch name {
	case pendingapproval.FieldSessionID:
		m.ResetSessionID()
		return nil
	case pendingapproval.FieldToolName:
		m.ResetToolName()
		return nil
	case pendingapproval.FieldArguments:
		m.ResetArguments()
		return nil
	case pendingapproval.FieldStatus:
		m.ResetStatus()
		return nil
	case pendingapproval.FieldDecisionFeedback:
		m.ResetDecisionFeedback()
		return nil
	case pendingapproval.FieldModifiedArguments:
		m.ResetModifiedArguments()
		return nil
	case pendingapproval.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PendingApproval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PendingApprovalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, pendingapproval.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PendingApprovalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pendingapproval.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PendingApprovalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PendingApprovalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PendingApprovalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, pendingapproval.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PendingApprovalMutation) EdgeCleared(name string) bool {
	switch name {
	case pendingapproval.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PendingApprovalMutation) ClearEdge(name string) error {
	switch name {
	case pendingapproval.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown PendingApproval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PendingApprovalMutation) ResetEdge(name string) error {
	switch name {
	case pendingapproval.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown PendingApproval edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	user_id                  *string
	is_active                *bool
	created_at               *time.Time
	last_activity_at         *time.Time
	session_metadata         *map[string]interface{}
	deleted_at               *time.Time
	clearedFields            map[string]struct{}
	messages                 map[string]struct{}
	removedmessages          map[string]struct{}
	clearedmessages          bool
	agent_context            *string
	clearedagent_context     bool
	pending_approvals        map[string]struct{}
	removedpending_approvals map[string]struct{}
	clearedpending_approvals bool
	done                     bool
	oldValue                 func(context.Context) (*Session, error)
	predicates               []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetIsActive sets the "is_active" field.
func (m *SessionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *SessionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *SessionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *SessionMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *SessionMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *SessionMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
}

// SetSessionMetadata sets the "session_metadata" field.
func (m *SessionMutation) SetSessionMetadata(value map[string]interface{}) {
	m.session_metadata = &value
}

// SessionMetadata returns the value of the "session_metadata" field in the mutation.
func (m *SessionMutation) SessionMetadata() (r map[string]interface{}, exists bool) {
	v := m.session_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionMetadata returns the old "session_metadata" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionMetadata: %w", err)
	}
	return oldValue.SessionMetadata, nil
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (m *SessionMutation) ClearSessionMetadata() {
	m.session_metadata = nil
	m.clearedFields[session.FieldSessionMetadata] = struct{}{}
}

// SessionMetadataCleared returns if the "session_metadata" field was cleared in this mutation.
func (m *SessionMutation) SessionMetadataCleared() bool {
	_, ok := m.clearedFields[session.FieldSessionMetadata]
	return ok
}

// ResetSessionMetadata resets all changes to the "session_metadata" field.
func (m *SessionMutation) ResetSessionMetadata() {
	m.session_metadata = nil
	delete(m.clearedFields, session.FieldSessionMetadata)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SessionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SessionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SessionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[session.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SessionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SessionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, session.FieldDeletedAt)
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *SessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *SessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *SessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *SessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *SessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *SessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *SessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// SetAgentContextID sets the "agent_context" edge to the AgentContext entity by id.
func (m *SessionMutation) SetAgentContextID(id string) {
	m.agent_context = &id
}

// ClearAgentContext clears the "agent_context" edge to the AgentContext entity.
func (m *SessionMutation) ClearAgentContext() {
	m.clearedagent_context = true
}

// AgentContextCleared reports if the "agent_context" edge to the AgentContext entity was cleared.
func (m *SessionMutation) AgentContextCleared() bool {
	return m.clearedagent_context
}

// AgentContextID returns the "agent_context" edge ID in the mutation.
func (m *SessionMutation) AgentContextID() (id string, exists bool) {
	if m.agent_context != nil {
		return *m.agent_context, true
	}
	return
}

// AgentContextIDs returns the "agent_context" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentContextID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) AgentContextIDs() (ids []string) {
	if id := m.agent_context; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgentContext resets all changes to the "agent_context" edge.
func (m *SessionMutation) ResetAgentContext() {
	m.agent_context = nil
	m.clearedagent_context = false
}

// AddPendingApprovalIDs adds the "pending_approvals" edge to the PendingApproval entity by ids.
func (m *SessionMutation) AddPendingApprovalIDs(ids ...string) {
	if m.pending_approvals == nil {
		m.pending_approvals = make(map[string]struct{})
	}
	for i := range ids {
		m.pending_approvals[ids[i]] = struct{}{}
	}
}

// ClearPendingApprovals clears the "pending_approvals" edge to the PendingApproval entity.
func (m *SessionMutation) ClearPendingApprovals() {
	m.clearedpending_approvals = true
}

// PendingApprovalsCleared reports if the "pending_approvals" edge to the PendingApproval entity was cleared.
func (m *SessionMutation) PendingApprovalsCleared() bool {
	return m.clearedpending_approvals
}

// RemovePendingApprovalIDs removes the "pending_approvals" edge to the PendingApproval entity by IDs.
func (m *SessionMutation) RemovePendingApprovalIDs(ids ...string) {
	if m.removedpending_approvals == nil {
		m.removedpending_approvals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.pending_approvals, ids[i])
		m.removedpending_approvals[ids[i]] = struct{}{}
	}
}

// RemovedPendingApprovals returns the removed IDs of the "pending_approvals" edge to the PendingApproval entity.
func (m *SessionMutation) RemovedPendingApprovalsIDs() (ids []string) {
	for id := range m.removedpending_approvals {
		ids = append(ids, id)
	}
	return
}

// PendingApprovalsIDs returns the "pending_approvals" edge IDs in the mutation.
func (m *SessionMutation) PendingApprovalsIDs() (ids []string) {
	for id := range m.pending_approvals {
		ids = append(ids, id)
	}
	return
}

// ResetPendingApprovals resets all changes to the "pending_approvals" edge.
func (m *SessionMutation) ResetPendingApprovals() {
	m.pending_approvals = nil
	m.clearedpending_approvals = false
	m.removedpending_approvals = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, session.FieldUserID)
	}
	if m.is_active != nil {
		fields = append(fields, session.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.last_activity_at != nil {
		fields = append(fields, session.FieldLastActivityAt)
	}
	if m.session_metadata != nil {
		fields = append(fields, session.FieldSessionMetadata)
	}
	if m.deleted_at != nil {
		fields = append(fields, session.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldUserID:
		return m.UserID()
	case session.FieldIsActive:
		return m.IsActive()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldLastActivityAt:
		return m.LastActivityAt()
	case session.FieldSessionMetadata:
		return m.SessionMetadata()
	case session.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldUserID:
		return m.OldUserID(ctx)
	case session.FieldIsActive:
		return m.OldIsActive(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case session.FieldSessionMetadata:
		return m.OldSessionMetadata(ctx)
	case session.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case session.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case session.FieldSessionMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionMetadata(v)
		return nil
	case session.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldSessionMetadata) {
		fields = append(fields, session.FieldSessionMetadata)
	}
	if m.FieldCleared(session.FieldDeletedAt) {
		fields = append(fields, session.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldSessionMetadata:
		m.ClearSessionMetadata()
		return nil
	case session.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldUserID:
		m.ResetUserID()
		return nil
	case session.FieldIsActive:
		m.ResetIsActive()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case session.FieldSessionMetadata:
		m.ResetSessionMetadata()
		return nil
	case session.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.messages != nil {
		edges = append(edges, session.EdgeMessages)
	}
	if m.agent_context != nil {
		edges = append(edges, session.EdgeAgentContext)
	}
	if m.pending_approvals != nil {
		edges = append(edges, session.EdgePendingApprovals)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeAgentContext:
		if id := m.agent_context; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgePendingApprovals:
		ids := make([]ent.Value, 0, len(m.pending_approvals))
		for id := range m.pending_approvals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmessages != nil {
		edges = append(edges, session.EdgeMessages)
	}
	if m.removedpending_approvals != nil {
		edges = append(edges, session.EdgePendingApprovals)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case session.EdgePendingApprovals:
		ids := make([]ent.Value, 0, len(m.removedpending_approvals))
		for id := range m.removedpending_approvals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedmessages {
		edges = append(edges, session.EdgeMessages)
	}
	if m.clearedagent_context {
		edges = append(edges, session.EdgeAgentContext)
	}
	if m.clearedpending_approvals {
		edges = append(edges, session.EdgePendingApprovals)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeMessages:
		return m.clearedmessages
	case session.EdgeAgentContext:
		return m.clearedagent_context
	case session.EdgePendingApprovals:
		return m.clearedpending_approvals
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgeAgentContext:
		m.ClearAgentContext()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeMessages:
		m.ResetMessages()
		return nil
	case session.EdgeAgentContext:
		m.ResetAgentContext()
		return nil
	case session.EdgePendingApprovals:
		m.ResetPendingApprovals()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}
