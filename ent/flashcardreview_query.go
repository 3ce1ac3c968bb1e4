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
	"github.com/abhisek/benkyo/ent/flashcardreview"
	"github.com/abhisek/benkyo/ent/predicate"
)

// FlashcardReviewQuery is the builder for querying FlashcardReview entities.
type FlashcardReviewQuery struct {
	config
	ctx        *QueryContext
	order      []flashcardreview.OrderOption
	inters     []Interceptor
	predicates []predicate.FlashcardReview
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FlashcardReviewQuery builder.
func (frq *FlashcardReviewQuery) Where(ps ...predicate.FlashcardReview) *FlashcardReviewQuery {
	frq.predicates = append(frq.predicates, ps...)
	return frq
}

// Limit the number of records to be returned by this query.
func (frq *FlashcardReviewQuery) Limit(limit int) *FlashcardReviewQuery {
	frq.ctx.Limit = &limit
	return frq
}

// Offset to start from.
func (frq *FlashcardReviewQuery) Offset(offset int) *FlashcardReviewQuery {
	frq.ctx.Offset = &offset
	return frq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (frq *FlashcardReviewQuery) Unique(unique bool) *FlashcardReviewQuery {
	frq.ctx.Unique = &unique
	return frq
}

// Order specifies how the records should be ordered.
func (frq *FlashcardReviewQuery) Order(o ...flashcardreview.OrderOption) *FlashcardReviewQuery {
	frq.order = append(frq.order, o...)
	return frq
}

// First returns the first FlashcardReview entity from the query.
// Returns a *NotFoundError when no FlashcardReview was found.
func (frq *FlashcardReviewQuery) First(ctx context.Context) (*FlashcardReview, error) {
	nodes, err := frq.Limit(1).All(setContextOp(ctx, frq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{flashcardreview.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (frq *FlashcardReviewQuery) FirstX(ctx context.Context) *FlashcardReview {
	node, err := frq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first FlashcardReview ID from the query.
// Returns a *NotFoundError when no FlashcardReview ID was found.
func (frq *FlashcardReviewQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = frq.Limit(1).IDs(setContextOp(ctx, frq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{flashcardreview.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (frq *FlashcardReviewQuery) FirstIDX(ctx context.Context) int {
	id, err := frq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single FlashcardReview entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one FlashcardReview entity is found.
// Returns a *NotFoundError when no FlashcardReview entities are found.
func (frq *FlashcardReviewQuery) Only(ctx context.Context) (*FlashcardReview, error) {
	nodes, err := frq.Limit(2).All(setContextOp(ctx, frq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{flashcardreview.Label}
	default:
		return nil, &NotSingularError{flashcardreview.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (frq *FlashcardReviewQuery) OnlyX(ctx context.Context) *FlashcardReview {
	node, err := frq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only FlashcardReview ID in the query.
// Returns a *NotSingularError when more than one FlashcardReview ID is found.
// Returns a *NotFoundError when no entities are found.
func (frq *FlashcardReviewQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = frq.Limit(2).IDs(setContextOp(ctx, frq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{flashcardreview.Label}
	default:
		err = &NotSingularError{flashcardreview.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (frq *FlashcardReviewQuery) OnlyIDX(ctx context.Context) int {
	id, err := frq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of FlashcardReviews.
func (frq *FlashcardReviewQuery) All(ctx context.Context) ([]*FlashcardReview, error) {
	ctx = setContextOp(ctx, frq.ctx, ent.OpQueryAll)
	if err := frq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*FlashcardReview, *FlashcardReviewQuery]()
	return withInterceptors[[]*FlashcardReview](ctx, frq, qr, frq.inters)
}

// AllX is like All, but panics if an error occurs.
func (frq *FlashcardReviewQuery) AllX(ctx context.Context) []*FlashcardReview {
	nodes, err := frq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of FlashcardReview IDs.
func (frq *FlashcardReviewQuery) IDs(ctx context.Context) (ids []int, err error) {
	if frq.ctx.Unique == nil && frq.path != nil {
		frq.Unique(true)
	}
	ctx = setContextOp(ctx, frq.ctx, ent.OpQueryIDs)
	if err = frq.Select(flashcardreview.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (frq *FlashcardReviewQuery) IDsX(ctx context.Context) []int {
	ids, err := frq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (frq *FlashcardReviewQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, frq.ctx, ent.OpQueryCount)
	if err := frq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, frq, querierCount[*FlashcardReviewQuery](), frq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (frq *FlashcardReviewQuery) CountX(ctx context.Context) int {
	count, err := frq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (frq *FlashcardReviewQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, frq.ctx, ent.OpQueryExist)
	switch _, err := frq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (frq *FlashcardReviewQuery) ExistX(ctx context.Context) bool {
	exist, err := frq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FlashcardReviewQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (frq *FlashcardReviewQuery) Clone() *FlashcardReviewQuery {
	if frq == nil {
		return nil
	}
	return &FlashcardReviewQuery{
		config:     frq.config,
		ctx:        frq.ctx.Clone(),
		order:      append([]flashcardreview.OrderOption{}, frq.order...),
		inters:     append([]Interceptor{}, frq.inters...),
		predicates: append([]predicate.FlashcardReview{}, frq.predicates...),
		// clone intermediate query.
		sql:  frq.sql.Clone(),
		path: frq.path,
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
//	client.FlashcardReview.Query().
//		GroupBy(flashcardreview.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (frq *FlashcardReviewQuery) GroupBy(field string, fields ...string) *FlashcardReviewGroupBy {
	frq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FlashcardReviewGroupBy{build: frq}
	grbuild.flds = &frq.ctx.Fields
	grbuild.label = flashcardreview.Label
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
//	client.FlashcardReview.Query().
//		Select(flashcardreview.FieldSequence).
//		Scan(ctx, &v)
func (frq *FlashcardReviewQuery) Select(fields ...string) *FlashcardReviewSelect {
	frq.ctx.Fields = append(frq.ctx.Fields, fields...)
	sbuild := &FlashcardReviewSelect{FlashcardReviewQuery: frq}
	sbuild.label = flashcardreview.Label
	sbuild.flds, sbuild.scan = &frq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FlashcardReviewSelect configured with the given aggregations.
func (frq *FlashcardReviewQuery) Aggregate(fns ...AggregateFunc) *FlashcardReviewSelect {
	return frq.Select().Aggregate(fns...)
}

func (frq *FlashcardReviewQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range frq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, frq); err != nil {
				return err
			}
		}
	}
	for _, f := range frq.ctx.Fields {
		if !flashcardreview.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if frq.path != nil {
		prev, err := frq.path(ctx)
		if err != nil {
			return err
		}
		frq.sql = prev
	}
	return nil
}

func (frq *FlashcardReviewQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*FlashcardReview, error) {
	var (
		nodes = []*FlashcardReview{}
		_spec = frq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*FlashcardReview).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &FlashcardReview{config: frq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, frq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (frq *FlashcardReviewQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := frq.querySpec()
	_spec.Node.Columns = frq.ctx.Fields
	if len(frq.ctx.Fields) > 0 {
		_spec.Unique = frq.ctx.Unique != nil && *frq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, frq.driver, _spec)
}

func (frq *FlashcardReviewQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(flashcardreview.Table, flashcardreview.Columns, sqlgraph.NewFieldSpec(flashcardreview.FieldID, field.TypeInt))
	_spec.From = frq.sql
	if unique := frq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if frq.path != nil {
		_spec.Unique = true
	}
	if fields := frq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flashcardreview.FieldID)
		for i := range fields {
			if fields[i] != flashcardreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := frq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := frq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := frq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := frq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (frq *FlashcardReviewQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(frq.driver.Dialect())
	t1 := builder.Table(flashcardreview.Table)
	columns := frq.ctx.Fields
	if len(columns) == 0 {
		columns = flashcardreview.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if frq.sql != nil {
		selector = frq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if frq.ctx.Unique != nil && *frq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range frq.predicates {
		p(selector)
	}
	for _, p := range frq.order {
		p(selector)
	}
	if offset := frq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := frq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// FlashcardReviewGroupBy is the group-by builder for FlashcardReview entities.
type FlashcardReviewGroupBy struct {
	selector
	build *FlashcardReviewQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (frgb *FlashcardReviewGroupBy) Aggregate(fns ...AggregateFunc) *FlashcardReviewGroupBy {
	frgb.fns = append(frgb.fns, fns...)
	return frgb
}

// Scan applies the selector query and scans the result into the given value.
func (frgb *FlashcardReviewGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, frgb.build.ctx, ent.OpQueryGroupBy)
	if err := frgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FlashcardReviewQuery, *FlashcardReviewGroupBy](ctx, frgb.build, frgb, frgb.build.inters, v)
}

func (frgb *FlashcardReviewGroupBy) sqlScan(ctx context.Context, root *FlashcardReviewQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(frgb.fns))
	for _, fn := range frgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*frgb.flds)+len(frgb.fns))
		for _, f := range *frgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*frgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := frgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// FlashcardReviewSelect is the builder for selecting fields of FlashcardReview entities.
type FlashcardReviewSelect struct {
	*FlashcardReviewQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (frs *FlashcardReviewSelect) Aggregate(fns ...AggregateFunc) *FlashcardReviewSelect {
	frs.fns = append(frs.fns, fns...)
	return frs
}

// Scan applies the selector query and scans the result into the given value.
func (frs *FlashcardReviewSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, frs.ctx, ent.OpQuerySelect)
	if err := frs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FlashcardReviewQuery, *FlashcardReviewSelect](ctx, frs.FlashcardReviewQuery, frs, frs.inters, v)
}

func (frs *FlashcardReviewSelect) sqlScan(ctx context.Context, root *FlashcardReviewQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(frs.fns))
	for _, fn := range frs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*frs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := frs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
