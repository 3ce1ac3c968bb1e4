// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/benkyo/ent/topicprogress"
	"github.com/google/uuid"
)

// TopicProgressCreate is the builder for creating a TopicProgress entity.
type TopicProgressCreate struct {
	config
	mutation *TopicProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (tpc *TopicProgressCreate) SetUserID(u uuid.UUID) *TopicProgressCreate {
	tpc.mutation.SetUserID(u)
	return tpc
}

// SetTopicID sets the "topic_id" field.
func (tpc *TopicProgressCreate) SetTopicID(s string) *TopicProgressCreate {
	tpc.mutation.SetTopicID(s)
	return tpc
}

// SetExplanationCompleted sets the "explanation_completed" field.
func (tpc *TopicProgressCreate) SetExplanationCompleted(b bool) *TopicProgressCreate {
	tpc.mutation.SetExplanationCompleted(b)
	return tpc
}

// SetNillableExplanationCompleted sets the "explanation_completed" field if the given value is not nil.
func (tpc *TopicProgressCreate) SetNillableExplanationCompleted(b *bool) *TopicProgressCreate {
	if b != nil {
		tpc.SetExplanationCompleted(*b)
	}
	return tpc
}

// SetFlashcardCompleted sets the "flashcard_completed" field.
func (tpc *TopicProgressCreate) SetFlashcardCompleted(b bool) *TopicProgressCreate {
	tpc.mutation.SetFlashcardCompleted(b)
	return tpc
}

// SetNillableFlashcardCompleted sets the "flashcard_completed" field if the given value is not nil.
func (tpc *TopicProgressCreate) SetNillableFlashcardCompleted(b *bool) *TopicProgressCreate {
	if b != nil {
		tpc.SetFlashcardCompleted(*b)
	}
	return tpc
}

// SetQuizCompleted sets the "quiz_completed" field.
func (tpc *TopicProgressCreate) SetQuizCompleted(b bool) *TopicProgressCreate {
	tpc.mutation.SetQuizCompleted(b)
	return tpc
}

// SetNillableQuizCompleted sets the "quiz_completed" field if the given value is not nil.
func (tpc *TopicProgressCreate) SetNillableQuizCompleted(b *bool) *TopicProgressCreate {
	if b != nil {
		tpc.SetQuizCompleted(*b)
	}
	return tpc
}

// SetExplanationCompletedAt sets the "explanation_completed_at" field.
func (tpc *TopicProgressCreate) SetExplanationCompletedAt(t time.Time) *TopicProgressCreate {
	tpc.mutation.SetExplanationCompletedAt(t)
	return tpc
}

// SetNillableExplanationCompletedAt sets the "explanation_completed_at" field if the given value is not nil.
func (tpc *TopicProgressCreate) SetNillableExplanationCompletedAt(t *time.Time) *TopicProgressCreate {
	if t != nil {
		tpc.SetExplanationCompletedAt(*t)
	}
	return tpc
}

// SetFlashcardCompletedAt sets the "flashcard_completed_at" field.
func (tpc *TopicProgressCreate) SetFlashcardCompletedAt(t time.Time) *TopicProgressCreate {
	tpc.mutation.SetFlashcardCompletedAt(t)
	return tpc
}

// SetNillableFlashcardCompletedAt sets the "flashcard_completed_at" field if the given value is not nil.
func (tpc *TopicProgressCreate) SetNillableFlashcardCompletedAt(t *time.Time) *TopicProgressCreate {
	if t != nil {
		tpc.SetFlashcardCompletedAt(*t)
	}
	return tpc
}

// SetQuizCompletedAt sets the "quiz_completed_at" field.
func (tpc *TopicProgressCreate) SetQuizCompletedAt(t time.Time) *TopicProgressCreate {
	tpc.mutation.SetQuizCompletedAt(t)
	return tpc
}

// SetNillableQuizCompletedAt sets the "quiz_completed_at" field if the given value is not nil.
func (tpc *TopicProgressCreate) SetNillableQuizCompletedAt(t *time.Time) *TopicProgressCreate {
	if t != nil {
		tpc.SetQuizCompletedAt(*t)
	}
	return tpc
}

// SetLatestScore sets the "latest_score" field.
func (tpc *TopicProgressCreate) SetLatestScore(i int) *TopicProgressCreate {
	tpc.mutation.SetLatestScore(i)
	return tpc
}

// SetNillableLatestScore sets the "latest_score" field if the given value is not nil.
func (tpc *TopicProgressCreate) SetNillableLatestScore(i *int) *TopicProgressCreate {
	if i != nil {
		tpc.SetLatestScore(*i)
	}
	return tpc
}

// SetBestScore sets the "best_score" field.
func (tpc *TopicProgressCreate) SetBestScore(i int) *TopicProgressCreate {
	tpc.mutation.SetBestScore(i)
	return tpc
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (tpc *TopicProgressCreate) SetNillableBestScore(i *int) *TopicProgressCreate {
	if i != nil {
		tpc.SetBestScore(*i)
	}
	return tpc
}

// SetAverageScore sets the "average_score" field.
func (tpc *TopicProgressCreate) SetAverageScore(f float64) *TopicProgressCreate {
	tpc.mutation.SetAverageScore(f)
	return tpc
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (tpc *TopicProgressCreate) SetNillableAverageScore(f *float64) *TopicProgressCreate {
	if f != nil {
		tpc.SetAverageScore(*f)
	}
	return tpc
}

// SetTotalTestsTaken sets the "total_tests_taken" field.
func (tpc *TopicProgressCreate) SetTotalTestsTaken(i int) *TopicProgressCreate {
	tpc.mutation.SetTotalTestsTaken(i)
	return tpc
}

// SetNillableTotalTestsTaken sets the "total_tests_taken" field if the given value is not nil.
func (tpc *TopicProgressCreate) SetNillableTotalTestsTaken(i *int) *TopicProgressCreate {
	if i != nil {
		tpc.SetTotalTestsTaken(*i)
	}
	return tpc
}

// SetCreatedAt sets the "created_at" field.
func (tpc *TopicProgressCreate) SetCreatedAt(t time.Time) *TopicProgressCreate {
	tpc.mutation.SetCreatedAt(t)
	return tpc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tpc *TopicProgressCreate) SetNillableCreatedAt(t *time.Time) *TopicProgressCreate {
	if t != nil {
		tpc.SetCreatedAt(*t)
	}
	return tpc
}

// SetUpdatedAt sets the "updated_at" field.
func (tpc *TopicProgressCreate) SetUpdatedAt(t time.Time) *TopicProgressCreate {
	tpc.mutation.SetUpdatedAt(t)
	return tpc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (tpc *TopicProgressCreate) SetNillableUpdatedAt(t *time.Time) *TopicProgressCreate {
	if t != nil {
		tpc.SetUpdatedAt(*t)
	}
	return tpc
}

// Mutation returns the TopicProgressMutation object of the builder.
func (tpc *TopicProgressCreate) Mutation() *TopicProgressMutation {
	return tpc.mutation
}

// Save creates the TopicProgress in the database.
func (tpc *TopicProgressCreate) Save(ctx context.Context) (*TopicProgress, error) {
	tpc.defaults()
	return withHooks(ctx, tpc.sqlSave, tpc.mutation, tpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tpc *TopicProgressCreate) SaveX(ctx context.Context) *TopicProgress {
	v, err := tpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tpc *TopicProgressCreate) Exec(ctx context.Context) error {
	_, err := tpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tpc *TopicProgressCreate) ExecX(ctx context.Context) {
	if err := tpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tpc *TopicProgressCreate) defaults() {
	if _, ok := tpc.mutation.ExplanationCompleted(); !ok {
		v := topicprogress.DefaultExplanationCompleted
		tpc.mutation.SetExplanationCompleted(v)
	}
	if _, ok := tpc.mutation.FlashcardCompleted(); !ok {
		v := topicprogress.DefaultFlashcardCompleted
		tpc.mutation.SetFlashcardCompleted(v)
	}
	if _, ok := tpc.mutation.QuizCompleted(); !ok {
		v := topicprogress.DefaultQuizCompleted
		tpc.mutation.SetQuizCompleted(v)
	}
	if _, ok := tpc.mutation.LatestScore(); !ok {
		v := topicprogress.DefaultLatestScore
		tpc.mutation.SetLatestScore(v)
	}
	if _, ok := tpc.mutation.BestScore(); !ok {
		v := topicprogress.DefaultBestScore
		tpc.mutation.SetBestScore(v)
	}
	if _, ok := tpc.mutation.AverageScore(); !ok {
		v := topicprogress.DefaultAverageScore
		tpc.mutation.SetAverageScore(v)
	}
	if _, ok := tpc.mutation.TotalTestsTaken(); !ok {
		v := topicprogress.DefaultTotalTestsTaken
		tpc.mutation.SetTotalTestsTaken(v)
	}
	if _, ok := tpc.mutation.CreatedAt(); !ok {
		v := topicprogress.DefaultCreatedAt()
		tpc.mutation.SetCreatedAt(v)
	}
	if _, ok := tpc.mutation.UpdatedAt(); !ok {
		v := topicprogress.DefaultUpdatedAt()
		tpc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tpc *TopicProgressCreate) check() error {
	if _, ok := tpc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TopicProgress.user_id"`)}
	}
	if _, ok := tpc.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "TopicProgress.topic_id"`)}
	}
	if v, ok := tpc.mutation.TopicID(); ok {
		if err := topicprogress.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic_id": %w`, err)}
		}
	}
	if _, ok := tpc.mutation.ExplanationCompleted(); !ok {
		return &ValidationError{Name: "explanation_completed", err: errors.New(`ent: missing required field "TopicProgress.explanation_completed"`)}
	}
	if _, ok := tpc.mutation.FlashcardCompleted(); !ok {
		return &ValidationError{Name: "flashcard_completed", err: errors.New(`ent: missing required field "TopicProgress.flashcard_completed"`)}
	}
	if _, ok := tpc.mutation.QuizCompleted(); !ok {
		return &ValidationError{Name: "quiz_completed", err: errors.New(`ent: missing required field "TopicProgress.quiz_completed"`)}
	}
	if _, ok := tpc.mutation.LatestScore(); !ok {
		return &ValidationError{Name: "latest_score", err: errors.New(`ent: missing required field "TopicProgress.latest_score"`)}
	}
	if _, ok := tpc.mutation.BestScore(); !ok {
		return &ValidationError{Name: "best_score", err: errors.New(`ent: missing required field "TopicProgress.best_score"`)}
	}
	if _, ok := tpc.mutation.AverageScore(); !ok {
		return &ValidationError{Name: "average_score", err: errors.New(`ent: missing required field "TopicProgress.average_score"`)}
	}
	if _, ok := tpc.mutation.TotalTestsTaken(); !ok {
		return &ValidationError{Name: "total_tests_taken", err: errors.New(`ent: missing required field "TopicProgress.total_tests_taken"`)}
	}
	if _, ok := tpc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TopicProgress.created_at"`)}
	}
	if _, ok := tpc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TopicProgress.updated_at"`)}
	}
	return nil
}

func (tpc *TopicProgressCreate) sqlSave(ctx context.Context) (*TopicProgress, error) {
	if err := tpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tpc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	tpc.mutation.id = &_node.ID
	tpc.mutation.done = true
	return _node, nil
}

func (tpc *TopicProgressCreate) createSpec() (*TopicProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicProgress{config: tpc.config}
		_spec = sqlgraph.NewCreateSpec(topicprogress.Table, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	)
	if value, ok := tpc.mutation.UserID(); ok {
		_spec.SetField(topicprogress.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := tpc.mutation.TopicID(); ok {
		_spec.SetField(topicprogress.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := tpc.mutation.ExplanationCompleted(); ok {
		_spec.SetField(topicprogress.FieldExplanationCompleted, field.TypeBool, value)
		_node.ExplanationCompleted = value
	}
	if value, ok := tpc.mutation.FlashcardCompleted(); ok {
		_spec.SetField(topicprogress.FieldFlashcardCompleted, field.TypeBool, value)
		_node.FlashcardCompleted = value
	}
	if value, ok := tpc.mutation.QuizCompleted(); ok {
		_spec.SetField(topicprogress.FieldQuizCompleted, field.TypeBool, value)
		_node.QuizCompleted = value
	}
	if value, ok := tpc.mutation.ExplanationCompletedAt(); ok {
		_spec.SetField(topicprogress.FieldExplanationCompletedAt, field.TypeTime, value)
		_node.ExplanationCompletedAt = &value
	}
	if value, ok := tpc.mutation.FlashcardCompletedAt(); ok {
		_spec.SetField(topicprogress.FieldFlashcardCompletedAt, field.TypeTime, value)
		_node.FlashcardCompletedAt = &value
	}
	if value, ok := tpc.mutation.QuizCompletedAt(); ok {
		_spec.SetField(topicprogress.FieldQuizCompletedAt, field.TypeTime, value)
		_node.QuizCompletedAt = &value
	}
	if value, ok := tpc.mutation.LatestScore(); ok {
		_spec.SetField(topicprogress.FieldLatestScore, field.TypeInt, value)
		_node.LatestScore = value
	}
	if value, ok := tpc.mutation.BestScore(); ok {
		_spec.SetField(topicprogress.FieldBestScore, field.TypeInt, value)
		_node.BestScore = value
	}
	if value, ok := tpc.mutation.AverageScore(); ok {
		_spec.SetField(topicprogress.FieldAverageScore, field.TypeFloat64, value)
		_node.AverageScore = value
	}
	if value, ok := tpc.mutation.TotalTestsTaken(); ok {
		_spec.SetField(topicprogress.FieldTotalTestsTaken, field.TypeInt, value)
		_node.TotalTestsTaken = value
	}
	if value, ok := tpc.mutation.CreatedAt(); ok {
		_spec.SetField(topicprogress.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := tpc.mutation.UpdatedAt(); ok {
		_spec.SetField(topicprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TopicProgressCreateBulk is the builder for creating many TopicProgress entities in bulk.
type TopicProgressCreateBulk struct {
	config
	err      error
	builders []*TopicProgressCreate
}

// Save creates the TopicProgress entities in the database.
func (tpcb *TopicProgressCreateBulk) Save(ctx context.Context) ([]*TopicProgress, error) {
	if tpcb.err != nil {
		return nil, tpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tpcb.builders))
	nodes := make([]*TopicProgress, len(tpcb.builders))
	mutators := make([]Mutator, len(tpcb.builders))
	for i := range tpcb.builders {
		func(i int, root context.Context) {
			builder := tpcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicProgressMutation)
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
					_, err = mutators[i+1].Mutate(root, tpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tpcb *TopicProgressCreateBulk) SaveX(ctx context.Context) []*TopicProgress {
	v, err := tpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tpcb *TopicProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := tpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tpcb *TopicProgressCreateBulk) ExecX(ctx context.Context) {
	if err := tpcb.Exec(ctx); err != nil {
		panic(err)
	}
}
