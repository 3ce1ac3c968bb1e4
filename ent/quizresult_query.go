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
	"github.com/abhisek/benkyo/ent/predicate"
	"github.com/abhisek/benkyo/ent/quizresult"
)

// QuizResultQuery is the builder for querying QuizResult entities.
type QuizResultQuery struct {
	config
	ctx        *QueryContext
	order      []quizresult.OrderOption
	inters     []Interceptor
	predicates []predicate.QuizResult
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the QuizResultQuery builder.
func (qrq *QuizResultQuery) Where(ps ...predicate.QuizResult) *QuizResultQuery {
	qrq.predicates = append(qrq.predicates, ps...)
	return qrq
}

// Limit the number of records to be returned by this query.
func (qrq *QuizResultQuery) Limit(limit int) *QuizResultQuery {
	qrq.ctx.Limit = &limit
	return qrq
}

// Offset to start from.
func (qrq *QuizResultQuery) Offset(offset int) *QuizResultQuery {
	qrq.ctx.Offset = &offset
	return qrq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (qrq *QuizResultQuery) Unique(unique bool) *QuizResultQuery {
	qrq.ctx.Unique = &unique
	return qrq
}

// Order specifies how the records should be ordered.
func (qrq *QuizResultQuery) Order(o ...quizresult.OrderOption) *QuizResultQuery {
	qrq.order = append(qrq.order, o...)
	return qrq
}

// First returns the first QuizResult entity from the query.
// Returns a *NotFoundError when no QuizResult was found.
func (qrq *QuizResultQuery) First(ctx context.Context) (*QuizResult, error) {
	nodes, err := qrq.Limit(1).All(setContextOp(ctx, qrq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{quizresult.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (qrq *QuizResultQuery) FirstX(ctx context.Context) *QuizResult {
	node, err := qrq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first QuizResult ID from the query.
// Returns a *NotFoundError when no QuizResult ID was found.
func (qrq *QuizResultQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = qrq.Limit(1).IDs(setContextOp(ctx, qrq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{quizresult.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (qrq *QuizResultQuery) FirstIDX(ctx context.Context) int {
	id, err := qrq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single QuizResult entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one QuizResult entity is found.
// Returns a *NotFoundError when no QuizResult entities are found.
func (qrq *QuizResultQuery) Only(ctx context.Context) (*QuizResult, error) {
	nodes, err := qrq.Limit(2).All(setContextOp(ctx, qrq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{quizresult.Label}
	default:
		return nil, &NotSingularError{quizresult.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (qrq *QuizResultQuery) OnlyX(ctx context.Context) *QuizResult {
	node, err := qrq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only QuizResult ID in the query.
// Returns a *NotSingularError when more than one QuizResult ID is found.
// Returns a *NotFoundError when no entities are found.
func (qrq *QuizResultQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = qrq.Limit(2).IDs(setContextOp(ctx, qrq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{quizresult.Label}
	default:
		err = &NotSingularError{quizresult.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (qrq *QuizResultQuery) OnlyIDX(ctx context.Context) int {
	id, err := qrq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of QuizResults.
func (qrq *QuizResultQuery) All(ctx context.Context) ([]*QuizResult, error) {
	ctx = setContextOp(ctx, qrq.ctx, ent.OpQueryAll)
	if err := qrq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*QuizResult, *QuizResultQuery]()
	return withInterceptors[[]*QuizResult](ctx, qrq, qr, qrq.inters)
}

// AllX is like All, but panics if an error occurs.
func (qrq *QuizResultQuery) AllX(ctx context.Context) []*QuizResult {
	nodes, err := qrq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of QuizResult IDs.
func (qrq *QuizResultQuery) IDs(ctx context.Context) (ids []int, err error) {
	if qrq.ctx.Unique == nil && qrq.path != nil {
		qrq.Unique(true)
	}
	ctx = setContextOp(ctx, qrq.ctx, ent.OpQueryIDs)
	if err = qrq.Select(quizresult.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (qrq *QuizResultQuery) IDsX(ctx context.Context) []int {
	ids, err := qrq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (qrq *QuizResultQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, qrq.ctx, ent.OpQueryCount)
	if err := qrq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, qrq, querierCount[*QuizResultQuery](), qrq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (qrq *QuizResultQuery) CountX(ctx context.Context) int {
	count, err := qrq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (qrq *QuizResultQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, qrq.ctx, ent.OpQueryExist)
	switch _, err := qrq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (qrq *QuizResultQuery) ExistX(ctx context.Context) bool {
	exist, err := qrq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the QuizResultQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (qrq *QuizResultQuery) Clone() *QuizResultQuery {
	if qrq == nil {
		return nil
	}
	return &QuizResultQuery{
		config:     qrq.config,
		ctx:        qrq.ctx.Clone(),
		order:      append([]quizresult.OrderOption{}, qrq.order...),
		inters:     append([]Interceptor{}, qrq.inters...),
		predicates: append([]predicate.QuizResult{}, qrq.predicates...),
		// clone intermediate query.
		sql:  qrq.sql.Clone(),
		path: qrq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.QuizResult.Query().
//		GroupBy(quizresult.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (qrq *QuizResultQuery) GroupBy(field string, fields ...string) *QuizResultGroupBy {
	qrq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &QuizResultGroupBy{build: qrq}
	grbuild.flds = &qrq.ctx.Fields
	grbuild.label = quizresult.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.QuizResult.Query().
//		Select(quizresult.FieldSequence).
//		Scan(ctx, &v)
func (qrq *QuizResultQuery) Select(fields ...string) *QuizResultSelect {
	qrq.ctx.Fields = append(qrq.ctx.Fields, fields...)
	sbuild := &QuizResultSelect{QuizResultQuery: qrq}
	sbuild.label = quizresult.Label
	sbuild.flds, sbuild.scan = &qrq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a QuizResultSelect configured with the given aggregations.
func (qrq *QuizResultQuery) Aggregate(fns ...AggregateFunc) *QuizResultSelect {
	return qrq.Select().Aggregate(fns...)
}

func (qrq *QuizResultQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range qrq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, qrq); err != nil {
				return err
			}
		}
	}
	for _, f := range qrq.ctx.Fields {
		if !quizresult.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if qrq.path != nil {
		prev, err := qrq.path(ctx)
		if err != nil {
			return err
		}
		qrq.sql = prev
	}
	return nil
}

func (qrq *QuizResultQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*QuizResult, error) {
	var (
		nodes = []*QuizResult{}
		_spec = qrq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*QuizResult).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &QuizResult{config: qrq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, qrq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (qrq *QuizResultQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := qrq.querySpec()
	_spec.Node.Columns = qrq.ctx.Fields
	if len(qrq.ctx.Fields) > 0 {
		_spec.Unique = qrq.ctx.Unique != nil && *qrq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, qrq.driver, _spec)
}

func (qrq *QuizResultQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	_spec.From = qrq.sql
	if unique := qrq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if qrq.path != nil {
		_spec.Unique = true
	}
	if fields := qrq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresult.FieldID)
		for i := range fields {
			if fields[i] != quizresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := qrq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := qrq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := qrq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := qrq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (qrq *QuizResultQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(qrq.driver.Dialect())
	t1 := builder.Table(quizresult.Table)
	columns := qrq.ctx.Fields
	if len(columns) == 0 {
		columns = quizresult.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if qrq.sql != nil {
		selector = qrq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if qrq.ctx.Unique != nil && *qrq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range qrq.predicates {
		p(selector)
	}
	for _, p := range qrq.order {
		p(selector)
	}
	if offset := qrq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := qrq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// QuizResultGroupBy is the group-by builder for QuizResult entities.
type QuizResultGroupBy struct {
	selector
	build *QuizResultQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (qrgb *QuizResultGroupBy) Aggregate(fns ...AggregateFunc) *QuizResultGroupBy {
	qrgb.fns = append(qrgb.fns, fns...)
	return qrgb
}

// Scan applies the selector query and scans the result into the given value.
func (qrgb *QuizResultGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, qrgb.build.ctx, ent.OpQueryGroupBy)
	if err := qrgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuizResultQuery, *QuizResultGroupBy](ctx, qrgb.build, qrgb, qrgb.build.inters, v)
}

func (qrgb *QuizResultGroupBy) sqlScan(ctx context.Context, root *QuizResultQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(qrgb.fns))
	for _, fn := range qrgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*qrgb.flds)+len(qrgb.fns))
		for _, f := range *qrgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*qrgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := qrgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// QuizResultSelect is the builder for selecting fields of QuizResult entities.
type QuizResultSelect struct {
	*QuizResultQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (qrs *QuizResultSelect) Aggregate(fns ...AggregateFunc) *QuizResultSelect {
	qrs.fns = append(qrs.fns, fns...)
	return qrs
}

// Scan applies the selector query and scans the result into the given value.
func (qrs *QuizResultSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, qrs.ctx, ent.OpQuerySelect)
	if err := qrs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuizResultQuery, *QuizResultSelect](ctx, qrs.QuizResultQuery, qrs, qrs.inters, v)
}

func (qrs *QuizResultSelect) sqlScan(ctx context.Context, root *QuizResultQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(qrs.fns))
	for _, fn := range qrs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*qrs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := qrs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
