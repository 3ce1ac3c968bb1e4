// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/benkyo/ent/flashcardreview"
	"github.com/abhisek/benkyo/ent/predicate"
)

// FlashcardReviewUpdate is the builder for updating FlashcardReview entities.
type FlashcardReviewUpdate struct {
	config
	hooks    []Hook
	mutation *FlashcardReviewMutation
}

// Where appends a list predicates to the FlashcardReviewUpdate builder.
func (fru *FlashcardReviewUpdate) Where(ps ...predicate.FlashcardReview) *FlashcardReviewUpdate {
	fru.mutation.Where(ps...)
	return fru
}

// Mutation returns the FlashcardReviewMutation object of the builder.
func (fru *FlashcardReviewUpdate) Mutation() *FlashcardReviewMutation {
	return fru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (fru *FlashcardReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, fru.sqlSave, fru.mutation, fru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (fru *FlashcardReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := fru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (fru *FlashcardReviewUpdate) Exec(ctx context.Context) error {
	_, err := fru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fru *FlashcardReviewUpdate) ExecX(ctx context.Context) {
	if err := fru.Exec(ctx); err != nil {
		panic(err)
	}
}

func (fru *FlashcardReviewUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(flashcardreview.Table, flashcardreview.Columns, sqlgraph.NewFieldSpec(flashcardreview.FieldID, field.TypeInt))
	if ps := fru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if n, err = sqlgraph.UpdateNodes(ctx, fru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flashcardreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	fru.mutation.done = true
	return n, nil
}

// FlashcardReviewUpdateOne is the builder for updating a single FlashcardReview entity.
type FlashcardReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlashcardReviewMutation
}

// Mutation returns the FlashcardReviewMutation object of the builder.
func (fruo *FlashcardReviewUpdateOne) Mutation() *FlashcardReviewMutation {
	return fruo.mutation
}

// Where appends a list predicates to the FlashcardReviewUpdate builder.
func (fruo *FlashcardReviewUpdateOne) Where(ps ...predicate.FlashcardReview) *FlashcardReviewUpdateOne {
	fruo.mutation.Where(ps...)
	return fruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (fruo *FlashcardReviewUpdateOne) Select(field string, fields ...string) *FlashcardReviewUpdateOne {
	fruo.fields = append([]string{field}, fields...)
	return fruo
}

// Save executes the query and returns the updated FlashcardReview entity.
func (fruo *FlashcardReviewUpdateOne) Save(ctx context.Context) (*FlashcardReview, error) {
	return withHooks(ctx, fruo.sqlSave, fruo.mutation, fruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (fruo *FlashcardReviewUpdateOne) SaveX(ctx context.Context) *FlashcardReview {
	node, err := fruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (fruo *FlashcardReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := fruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fruo *FlashcardReviewUpdateOne) ExecX(ctx context.Context) {
	if err := fruo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (fruo *FlashcardReviewUpdateOne) sqlSave(ctx context.Context) (_node *FlashcardReview, err error) {
	_spec := sqlgraph.NewUpdateSpec(flashcardreview.Table, flashcardreview.Columns, sqlgraph.NewFieldSpec(flashcardreview.FieldID, field.TypeInt))
	id, ok := fruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FlashcardReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := fruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flashcardreview.FieldID)
		for _, f := range fields {
			if !flashcardreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flashcardreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := fruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_node = &FlashcardReview{config: fruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, fruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flashcardreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	fruo.mutation.done = true
	return _node, nil
}
