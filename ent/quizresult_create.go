// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/benkyo/ent/quizresult"
	"github.com/google/uuid"
)

// QuizResultCreate is the builder for creating a QuizResult entity.
type QuizResultCreate struct {
	config
	mutation *QuizResultMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (qrc *QuizResultCreate) SetSequence(i int64) *QuizResultCreate {
	qrc.mutation.SetSequence(i)
	return qrc
}

// SetTimestamp sets the "timestamp" field.
func (qrc *QuizResultCreate) SetTimestamp(t time.Time) *QuizResultCreate {
	qrc.mutation.SetTimestamp(t)
	return qrc
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (qrc *QuizResultCreate) SetNillableTimestamp(t *time.Time) *QuizResultCreate {
	if t != nil {
		qrc.SetTimestamp(*t)
	}
	return qrc
}

// SetUserID sets the "user_id" field.
func (qrc *QuizResultCreate) SetUserID(u uuid.UUID) *QuizResultCreate {
	qrc.mutation.SetUserID(u)
	return qrc
}

// SetTopicID sets the "topic_id" field.
func (qrc *QuizResultCreate) SetTopicID(s string) *QuizResultCreate {
	qrc.mutation.SetTopicID(s)
	return qrc
}

// SetScore sets the "score" field.
func (qrc *QuizResultCreate) SetScore(i int) *QuizResultCreate {
	qrc.mutation.SetScore(i)
	return qrc
}

// SetTotalQuestions sets the "total_questions" field.
func (qrc *QuizResultCreate) SetTotalQuestions(i int) *QuizResultCreate {
	qrc.mutation.SetTotalQuestions(i)
	return qrc
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (qrc *QuizResultCreate) SetNillableTotalQuestions(i *int) *QuizResultCreate {
	if i != nil {
		qrc.SetTotalQuestions(*i)
	}
	return qrc
}

// SetCorrectAnswers sets the "correct_answers" field.
func (qrc *QuizResultCreate) SetCorrectAnswers(i int) *QuizResultCreate {
	qrc.mutation.SetCorrectAnswers(i)
	return qrc
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (qrc *QuizResultCreate) SetNillableCorrectAnswers(i *int) *QuizResultCreate {
	if i != nil {
		qrc.SetCorrectAnswers(*i)
	}
	return qrc
}

// Mutation returns the QuizResultMutation object of the builder.
func (qrc *QuizResultCreate) Mutation() *QuizResultMutation {
	return qrc.mutation
}

// Save creates the QuizResult in the database.
func (qrc *QuizResultCreate) Save(ctx context.Context) (*QuizResult, error) {
	qrc.defaults()
	return withHooks(ctx, qrc.sqlSave, qrc.mutation, qrc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (qrc *QuizResultCreate) SaveX(ctx context.Context) *QuizResult {
	v, err := qrc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qrc *QuizResultCreate) Exec(ctx context.Context) error {
	_, err := qrc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qrc *QuizResultCreate) ExecX(ctx context.Context) {
	if err := qrc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (qrc *QuizResultCreate) defaults() {
	if _, ok := qrc.mutation.Timestamp(); !ok {
		v := quizresult.DefaultTimestamp()
		qrc.mutation.SetTimestamp(v)
	}
	if _, ok := qrc.mutation.TotalQuestions(); !ok {
		v := quizresult.DefaultTotalQuestions
		qrc.mutation.SetTotalQuestions(v)
	}
	if _, ok := qrc.mutation.CorrectAnswers(); !ok {
		v := quizresult.DefaultCorrectAnswers
		qrc.mutation.SetCorrectAnswers(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qrc *QuizResultCreate) check() error {
	if _, ok := qrc.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizResult.sequence"`)}
	}
	if _, ok := qrc.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizResult.timestamp"`)}
	}
	if _, ok := qrc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuizResult.user_id"`)}
	}
	if _, ok := qrc.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "QuizResult.topic_id"`)}
	}
	if v, ok := qrc.mutation.TopicID(); ok {
		if err := quizresult.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.topic_id": %w`, err)}
		}
	}
	if _, ok := qrc.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizResult.score"`)}
	}
	if v, ok := qrc.mutation.Score(); ok {
		if err := quizresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "QuizResult.score": %w`, err)}
		}
	}
	if _, ok := qrc.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "QuizResult.total_questions"`)}
	}
	if _, ok := qrc.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "QuizResult.correct_answers"`)}
	}
	return nil
}

func (qrc *QuizResultCreate) sqlSave(ctx context.Context) (*QuizResult, error) {
	if err := qrc.check(); err != nil {
		return nil, err
	}
	_node, _spec := qrc.createSpec()
	if err := sqlgraph.CreateNode(ctx, qrc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	qrc.mutation.id = &_node.ID
	qrc.mutation.done = true
	return _node, nil
}

func (qrc *QuizResultCreate) createSpec() (*QuizResult, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizResult{config: qrc.config}
		_spec = sqlgraph.NewCreateSpec(quizresult.Table, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	)
	if value, ok := qrc.mutation.Sequence(); ok {
		_spec.SetField(quizresult.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := qrc.mutation.Timestamp(); ok {
		_spec.SetField(quizresult.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := qrc.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := qrc.mutation.TopicID(); ok {
		_spec.SetField(quizresult.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := qrc.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := qrc.mutation.TotalQuestions(); ok {
		_spec.SetField(quizresult.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := qrc.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizresult.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	return _node, _spec
}

// QuizResultCreateBulk is the builder for creating many QuizResult entities in bulk.
type QuizResultCreateBulk struct {
	config
	err      error
	builders []*QuizResultCreate
}

// Save creates the QuizResult entities in the database.
func (qrcb *QuizResultCreateBulk) Save(ctx context.Context) ([]*QuizResult, error) {
	if qrcb.err != nil {
		return nil, qrcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(qrcb.builders))
	nodes := make([]*QuizResult, len(qrcb.builders))
	mutators := make([]Mutator, len(qrcb.builders))
	for i := range qrcb.builders {
		func(i int, root context.Context) {
			builder := qrcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizResultMutation)
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
					_, err = mutators[i+1].Mutate(root, qrcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, qrcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, qrcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (qrcb *QuizResultCreateBulk) SaveX(ctx context.Context) []*QuizResult {
	v, err := qrcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qrcb *QuizResultCreateBulk) Exec(ctx context.Context) error {
	_, err := qrcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qrcb *QuizResultCreateBulk) ExecX(ctx context.Context) {
	if err := qrcb.Exec(ctx); err != nil {
		panic(err)
	}
}
