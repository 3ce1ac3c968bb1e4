// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/benkyo/ent/flashcardreview"
	"github.com/google/uuid"
)

// FlashcardReviewCreate is the builder for creating a FlashcardReview entity.
type FlashcardReviewCreate struct {
	config
	mutation *FlashcardReviewMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (frc *FlashcardReviewCreate) SetSequence(i int64) *FlashcardReviewCreate {
	frc.mutation.SetSequence(i)
	return frc
}

// SetTimestamp sets the "timestamp" field.
func (frc *FlashcardReviewCreate) SetTimestamp(t time.Time) *FlashcardReviewCreate {
	frc.mutation.SetTimestamp(t)
	return frc
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (frc *FlashcardReviewCreate) SetNillableTimestamp(t *time.Time) *FlashcardReviewCreate {
	if t != nil {
		frc.SetTimestamp(*t)
	}
	return frc
}

// SetUserID sets the "user_id" field.
func (frc *FlashcardReviewCreate) SetUserID(u uuid.UUID) *FlashcardReviewCreate {
	frc.mutation.SetUserID(u)
	return frc
}

// SetTopicID sets the "topic_id" field.
func (frc *FlashcardReviewCreate) SetTopicID(s string) *FlashcardReviewCreate {
	frc.mutation.SetTopicID(s)
	return frc
}

// SetFlashcardID sets the "flashcard_id" field.
func (frc *FlashcardReviewCreate) SetFlashcardID(s string) *FlashcardReviewCreate {
	frc.mutation.SetFlashcardID(s)
	return frc
}

// SetConfidenceLevel sets the "confidence_level" field.
func (frc *FlashcardReviewCreate) SetConfidenceLevel(i int) *FlashcardReviewCreate {
	frc.mutation.SetConfidenceLevel(i)
	return frc
}

// SetEasinessFactor sets the "easiness_factor" field.
func (frc *FlashcardReviewCreate) SetEasinessFactor(f float64) *FlashcardReviewCreate {
	frc.mutation.SetEasinessFactor(f)
	return frc
}

// SetIntervalDays sets the "interval_days" field.
func (frc *FlashcardReviewCreate) SetIntervalDays(i int) *FlashcardReviewCreate {
	frc.mutation.SetIntervalDays(i)
	return frc
}

// SetNextReviewDate sets the "next_review_date" field.
func (frc *FlashcardReviewCreate) SetNextReviewDate(t time.Time) *FlashcardReviewCreate {
	frc.mutation.SetNextReviewDate(t)
	return frc
}

// Mutation returns the FlashcardReviewMutation object of the builder.
func (frc *FlashcardReviewCreate) Mutation() *FlashcardReviewMutation {
	return frc.mutation
}

// Save creates the FlashcardReview in the database.
func (frc *FlashcardReviewCreate) Save(ctx context.Context) (*FlashcardReview, error) {
	frc.defaults()
	return withHooks(ctx, frc.sqlSave, frc.mutation, frc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (frc *FlashcardReviewCreate) SaveX(ctx context.Context) *FlashcardReview {
	v, err := frc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (frc *FlashcardReviewCreate) Exec(ctx context.Context) error {
	_, err := frc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (frc *FlashcardReviewCreate) ExecX(ctx context.Context) {
	if err := frc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (frc *FlashcardReviewCreate) defaults() {
	if _, ok := frc.mutation.Timestamp(); !ok {
		v := flashcardreview.DefaultTimestamp()
		frc.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (frc *FlashcardReviewCreate) check() error {
	if _, ok := frc.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "FlashcardReview.sequence"`)}
	}
	if _, ok := frc.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "FlashcardReview.timestamp"`)}
	}
	if _, ok := frc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "FlashcardReview.user_id"`)}
	}
	if _, ok := frc.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "FlashcardReview.topic_id"`)}
	}
	if v, ok := frc.mutation.TopicID(); ok {
		if err := flashcardreview.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "FlashcardReview.topic_id": %w`, err)}
		}
	}
	if _, ok := frc.mutation.FlashcardID(); !ok {
		return &ValidationError{Name: "flashcard_id", err: errors.New(`ent: missing required field "FlashcardReview.flashcard_id"`)}
	}
	if v, ok := frc.mutation.FlashcardID(); ok {
		if err := flashcardreview.FlashcardIDValidator(v); err != nil {
			return &ValidationError{Name: "flashcard_id", err: fmt.Errorf(`ent: validator failed for field "FlashcardReview.flashcard_id": %w`, err)}
		}
	}
	if _, ok := frc.mutation.ConfidenceLevel(); !ok {
		return &ValidationError{Name: "confidence_level", err: errors.New(`ent: missing required field "FlashcardReview.confidence_level"`)}
	}
	if v, ok := frc.mutation.ConfidenceLevel(); ok {
		if err := flashcardreview.ConfidenceLevelValidator(v); err != nil {
			return &ValidationError{Name: "confidence_level", err: fmt.Errorf(`ent: validator failed for field "FlashcardReview.confidence_level": %w`, err)}
		}
	}
	if _, ok := frc.mutation.EasinessFactor(); !ok {
		return &ValidationError{Name: "easiness_factor", err: errors.New(`ent: missing required field "FlashcardReview.easiness_factor"`)}
	}
	if _, ok := frc.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "FlashcardReview.interval_days"`)}
	}
	if _, ok := frc.mutation.NextReviewDate(); !ok {
		return &ValidationError{Name: "next_review_date", err: errors.New(`ent: missing required field "FlashcardReview.next_review_date"`)}
	}
	return nil
}

func (frc *FlashcardReviewCreate) sqlSave(ctx context.Context) (*FlashcardReview, error) {
	if err := frc.check(); err != nil {
		return nil, err
	}
	_node, _spec := frc.createSpec()
	if err := sqlgraph.CreateNode(ctx, frc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	frc.mutation.id = &_node.ID
	frc.mutation.done = true
	return _node, nil
}

func (frc *FlashcardReviewCreate) createSpec() (*FlashcardReview, *sqlgraph.CreateSpec) {
	var (
		_node = &FlashcardReview{config: frc.config}
		_spec = sqlgraph.NewCreateSpec(flashcardreview.Table, sqlgraph.NewFieldSpec(flashcardreview.FieldID, field.TypeInt))
	)
	if value, ok := frc.mutation.Sequence(); ok {
		_spec.SetField(flashcardreview.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := frc.mutation.Timestamp(); ok {
		_spec.SetField(flashcardreview.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := frc.mutation.UserID(); ok {
		_spec.SetField(flashcardreview.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := frc.mutation.TopicID(); ok {
		_spec.SetField(flashcardreview.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := frc.mutation.FlashcardID(); ok {
		_spec.SetField(flashcardreview.FieldFlashcardID, field.TypeString, value)
		_node.FlashcardID = value
	}
	if value, ok := frc.mutation.ConfidenceLevel(); ok {
		_spec.SetField(flashcardreview.FieldConfidenceLevel, field.TypeInt, value)
		_node.ConfidenceLevel = value
	}
	if value, ok := frc.mutation.EasinessFactor(); ok {
		_spec.SetField(flashcardreview.FieldEasinessFactor, field.TypeFloat64, value)
		_node.EasinessFactor = value
	}
	if value, ok := frc.mutation.IntervalDays(); ok {
		_spec.SetField(flashcardreview.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := frc.mutation.NextReviewDate(); ok {
		_spec.SetField(flashcardreview.FieldNextReviewDate, field.TypeTime, value)
		_node.NextReviewDate = value
	}
	return _node, _spec
}

// FlashcardReviewCreateBulk is the builder for creating many FlashcardReview entities in bulk.
type FlashcardReviewCreateBulk struct {
	config
	err      error
	builders []*FlashcardReviewCreate
}

// Save creates the FlashcardReview entities in the database.
func (frcb *FlashcardReviewCreateBulk) Save(ctx context.Context) ([]*FlashcardReview, error) {
	if frcb.err != nil {
		return nil, frcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(frcb.builders))
	nodes := make([]*FlashcardReview, len(frcb.builders))
	mutators := make([]Mutator, len(frcb.builders))
	for i := range frcb.builders {
		func(i int, root context.Context) {
			builder := frcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlashcardReviewMutation)
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
					_, err = mutators[i+1].Mutate(root, frcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, frcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, frcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (frcb *FlashcardReviewCreateBulk) SaveX(ctx context.Context) []*FlashcardReview {
	v, err := frcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (frcb *FlashcardReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := frcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (frcb *FlashcardReviewCreateBulk) ExecX(ctx context.Context) {
	if err := frcb.Exec(ctx); err != nil {
		panic(err)
	}
}
