// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/benkyo/ent/predicate"
	"github.com/abhisek/benkyo/ent/quizresult"
)

// QuizResultUpdate is the builder for updating QuizResult entities.
type QuizResultUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResultMutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (qru *QuizResultUpdate) Where(ps ...predicate.QuizResult) *QuizResultUpdate {
	qru.mutation.Where(ps...)
	return qru
}

// Mutation returns the QuizResultMutation object of the builder.
func (qru *QuizResultUpdate) Mutation() *QuizResultMutation {
	return qru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (qru *QuizResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, qru.sqlSave, qru.mutation, qru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qru *QuizResultUpdate) SaveX(ctx context.Context) int {
	affected, err := qru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (qru *QuizResultUpdate) Exec(ctx context.Context) error {
	_, err := qru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qru *QuizResultUpdate) ExecX(ctx context.Context) {
	if err := qru.Exec(ctx); err != nil {
		panic(err)
	}
}

func (qru *QuizResultUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	if ps := qru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if n, err = sqlgraph.UpdateNodes(ctx, qru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	qru.mutation.done = true
	return n, nil
}

// QuizResultUpdateOne is the builder for updating a single QuizResult entity.
type QuizResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResultMutation
}

// Mutation returns the QuizResultMutation object of the builder.
func (qruo *QuizResultUpdateOne) Mutation() *QuizResultMutation {
	return qruo.mutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (qruo *QuizResultUpdateOne) Where(ps ...predicate.QuizResult) *QuizResultUpdateOne {
	qruo.mutation.Where(ps...)
	return qruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (qruo *QuizResultUpdateOne) Select(field string, fields ...string) *QuizResultUpdateOne {
	qruo.fields = append([]string{field}, fields...)
	return qruo
}

// Save executes the query and returns the updated QuizResult entity.
func (qruo *QuizResultUpdateOne) Save(ctx context.Context) (*QuizResult, error) {
	return withHooks(ctx, qruo.sqlSave, qruo.mutation, qruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qruo *QuizResultUpdateOne) SaveX(ctx context.Context) *QuizResult {
	node, err := qruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (qruo *QuizResultUpdateOne) Exec(ctx context.Context) error {
	_, err := qruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qruo *QuizResultUpdateOne) ExecX(ctx context.Context) {
	if err := qruo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (qruo *QuizResultUpdateOne) sqlSave(ctx context.Context) (_node *QuizResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	id, ok := qruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := qruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresult.FieldID)
		for _, f := range fields {
			if !quizresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := qruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_node = &QuizResult{config: qruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, qruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	qruo.mutation.done = true
	return _node, nil
}
