// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/benkyo/ent/flashcardreview"
	"github.com/abhisek/benkyo/ent/predicate"
)

// FlashcardReviewDelete is the builder for deleting a FlashcardReview entity.
type FlashcardReviewDelete struct {
	config
	hooks    []Hook
	mutation *FlashcardReviewMutation
}

// Where appends a list predicates to the FlashcardReviewDelete builder.
func (frd *FlashcardReviewDelete) Where(ps ...predicate.FlashcardReview) *FlashcardReviewDelete {
	frd.mutation.Where(ps...)
	return frd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (frd *FlashcardReviewDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, frd.sqlExec, frd.mutation, frd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (frd *FlashcardReviewDelete) ExecX(ctx context.Context) int {
	n, err := frd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (frd *FlashcardReviewDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(flashcardreview.Table, sqlgraph.NewFieldSpec(flashcardreview.FieldID, field.TypeInt))
	if ps := frd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, frd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	frd.mutation.done = true
	return affected, err
}

// FlashcardReviewDeleteOne is the builder for deleting a single FlashcardReview entity.
type FlashcardReviewDeleteOne struct {
	frd *FlashcardReviewDelete
}

// Where appends a list predicates to the FlashcardReviewDelete builder.
func (frdo *FlashcardReviewDeleteOne) Where(ps ...predicate.FlashcardReview) *FlashcardReviewDeleteOne {
	frdo.frd.mutation.Where(ps...)
	return frdo
}

// Exec executes the deletion query.
func (frdo *FlashcardReviewDeleteOne) Exec(ctx context.Context) error {
	n, err := frdo.frd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{flashcardreview.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (frdo *FlashcardReviewDeleteOne) ExecX(ctx context.Context) {
	if err := frdo.Exec(ctx); err != nil {
		panic(err)
	}
}
