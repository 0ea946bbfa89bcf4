// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/switchyard-ai/switchyard/ent/agentcontext"
	"github.com/switchyard-ai/switchyard/ent/agentswitch"
	"github.com/switchyard-ai/switchyard/ent/predicate"
)

// AgentSwitchQuery is the builder for querying AgentSwitch entities.
type AgentSwitchQuery struct {
	config
	ctx         *QueryContext
	order       []agentswitch.OrderOption
	inters      []Interceptor
	predicates  []predicate.AgentSwitch
	withContext *AgentContextQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AgentSwitchQuery builder.
func (_q *AgentSwitchQuery) Where(ps ...predicate.AgentSwitch) *AgentSwitchQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AgentSwitchQuery) Limit(limit int) *AgentSwitchQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AgentSwitchQuery) Offset(offset int) *AgentSwitchQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AgentSwitchQuery) Unique(unique bool) *AgentSwitchQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AgentSwitchQuery) Order(o ...agentswitch.OrderOption) *AgentSwitchQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryContext chains the current query on the "context" edge.
func (_q *AgentSwitchQuery) QueryContext() *AgentContextQuery {
	query := (&AgentContextClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentswitch.Table, agentswitch.FieldID, selector),
			sqlgraph.To(agentcontext.Table, agentcontext.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentswitch.ContextTable, agentswitch.ContextColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AgentSwitch entity from the query.
// Returns a *NotFoundError when no AgentSwitch was found.
func (_q *AgentSwitchQuery) First(ctx context.Context) (*AgentSwitch, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{agentswitch.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AgentSwitchQuery) FirstX(ctx context.Context) *AgentSwitch {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AgentSwitch ID from the query.
// Returns a *NotFoundError when no AgentSwitch ID was found.
func (_q *AgentSwitchQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{agentswitch.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AgentSwitchQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AgentSwitch entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AgentSwitch entity is found.
// Returns a *NotFoundError when no AgentSwitch entities are found.
func (_q *AgentSwitchQuery) Only(ctx context.Context) (*AgentSwitch, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{agentswitch.Label}
	default:
		return nil, &NotSingularError{agentswitch.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AgentSwitchQuery) OnlyX(ctx context.Context) *AgentSwitch {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AgentSwitch ID in the query.
// Returns a *NotSingularError when more than one AgentSwitch ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AgentSwitchQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{agentswitch.Label}
	default:
		err = &NotSingularError{agentswitch.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AgentSwitchQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AgentSwitches.
func (_q *AgentSwitchQuery) All(ctx context.Context) ([]*AgentSwitch, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AgentSwitch, *AgentSwitchQuery]()
	return withInterceptors[[]*AgentSwitch](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AgentSwitchQuery) AllX(ctx context.Context) []*AgentSwitch {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AgentSwitch IDs.
func (_q *AgentSwitchQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(agentswitch.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AgentSwitchQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AgentSwitchQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AgentSwitchQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AgentSwitchQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AgentSwitchQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AgentSwitchQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AgentSwitchQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AgentSwitchQuery) Clone() *AgentSwitchQuery {
	if _q == nil {
		return nil
	}
	return &AgentSwitchQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]agentswitch.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.AgentSwitch{}, _q.predicates...),
		withContext: _q.withContext.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithContext tells the query-builder to eager-load the nodes that are connected to
// the "context" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentSwitchQuery) WithContext(opts ...func(*AgentContextQuery)) *AgentSwitchQuery {
	query := (&AgentContextClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withContext = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ContextID string `json:"context_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AgentSwitch.Query().
//		GroupBy(agentswitch.FieldContextID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AgentSwitchQuery) GroupBy(field string, fields ...string) *AgentSwitchGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AgentSwitchGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = agentswitch.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ContextID string `json:"context_id,omitempty"`
//	}
//
//	client.AgentSwitch.Query().
//		Select(agentswitch.FieldContextID).
//		Scan(ctx, &v)
func (_q *AgentSwitchQuery) Select(fields ...string) *AgentSwitchSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AgentSwitchSelect{AgentSwitchQuery: _q}
	sbuild.label = agentswitch.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AgentSwitchSelect configured with the given aggregations.
func (_q *AgentSwitchQuery) Aggregate(fns ...AggregateFunc) *AgentSwitchSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AgentSwitchQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !agentswitch.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AgentSwitchQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AgentSwitch, error) {
	var (
		nodes       = []*AgentSwitch{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withContext != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AgentSwitch).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AgentSwitch{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withContext; query != nil {
		if err := _q.loadContext(ctx, query, nodes, nil,
			func(n *AgentSwitch, e *AgentContext) { n.Edges.Context = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AgentSwitchQuery) loadContext(ctx context.Context, query *AgentContextQuery, nodes []*AgentSwitch, init func(*AgentSwitch), assign func(*AgentSwitch, *AgentContext)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AgentSwitch)
	for i := range nodes {
		fk := nodes[i].ContextID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agentcontext.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "context_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *AgentSwitchQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AgentSwitchQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(agentswitch.Table, agentswitch.Columns, sqlgraph.NewFieldSpec(agentswitch.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentswitch.FieldID)
		for i := range fields {
			if fields[i] != agentswitch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withContext != nil {
			_spec.Node.AddColumnOnce(agentswitch.FieldContextID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AgentSwitchQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(agentswitch.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = agentswitch.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AgentSwitchGroupBy is the group-by builder for AgentSwitch entities.
type AgentSwitchGroupBy struct {
	selector
	build *AgentSwitchQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AgentSwitchGroupBy) Aggregate(fns ...AggregateFunc) *AgentSwitchGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AgentSwitchGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentSwitchQuery, *AgentSwitchGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AgentSwitchGroupBy) sqlScan(ctx context.Context, root *AgentSwitchQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AgentSwitchSelect is the builder for selecting fields of AgentSwitch entities.
type AgentSwitchSelect struct {
	*AgentSwitchQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AgentSwitchSelect) Aggregate(fns ...AggregateFunc) *AgentSwitchSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AgentSwitchSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentSwitchQuery, *AgentSwitchSelect](ctx, _s.AgentSwitchQuery, _s, _s.inters, v)
}

func (_s *AgentSwitchSelect) sqlScan(ctx context.Context, root *AgentSwitchQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
