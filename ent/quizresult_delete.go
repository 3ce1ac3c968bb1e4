// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/benkyo/ent/predicate"
	"github.com/abhisek/benkyo/ent/quizresult"
)

// QuizResultDelete is the builder for deleting a QuizResult entity.
type QuizResultDelete struct {
	config
	hooks    []Hook
	mutation *QuizResultMutation
}

// Where appends a list predicates to the QuizResultDelete builder.
func (qrd *QuizResultDelete) Where(ps ...predicate.QuizResult) *QuizResultDelete {
	qrd.mutation.Where(ps...)
	return qrd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (qrd *QuizResultDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, qrd.sqlExec, qrd.mutation, qrd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (qrd *QuizResultDelete) ExecX(ctx context.Context) int {
	n, err := qrd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (qrd *QuizResultDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(quizresult.Table, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	if ps := qrd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, qrd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	qrd.mutation.done = true
	return affected, err
}

// QuizResultDeleteOne is the builder for deleting a single QuizResult entity.
type QuizResultDeleteOne struct {
	qrd *QuizResultDelete
}

// Where appends a list predicates to the QuizResultDelete builder.
func (qrdo *QuizResultDeleteOne) Where(ps ...predicate.QuizResult) *QuizResultDeleteOne {
	qrdo.qrd.mutation.Where(ps...)
	return qrdo
}

// Exec executes the deletion query.
func (qrdo *QuizResultDeleteOne) Exec(ctx context.Context) error {
	n, err := qrdo.qrd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{quizresult.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (qrdo *QuizResultDeleteOne) ExecX(ctx context.Context) {
	if err := qrdo.Exec(ctx); err != nil {
		panic(err)
	}
}
