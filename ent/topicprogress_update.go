// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/benkyo/ent/predicate"
	"github.com/abhisek/benkyo/ent/topicprogress"
)

// TopicProgressUpdate is the builder for updating TopicProgress entities.
type TopicProgressUpdate struct {
	config
	hooks    []Hook
	mutation *TopicProgressMutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (tpu *TopicProgressUpdate) Where(ps ...predicate.TopicProgress) *TopicProgressUpdate {
	tpu.mutation.Where(ps...)
	return tpu
}

// SetExplanationCompleted sets the "explanation_completed" field.
func (tpu *TopicProgressUpdate) SetExplanationCompleted(b bool) *TopicProgressUpdate {
	tpu.mutation.SetExplanationCompleted(b)
	return tpu
}

// SetNillableExplanationCompleted sets the "explanation_completed" field if the given value is not nil.
func (tpu *TopicProgressUpdate) SetNillableExplanationCompleted(b *bool) *TopicProgressUpdate {
	if b != nil {
		tpu.SetExplanationCompleted(*b)
	}
	return tpu
}

// SetFlashcardCompleted sets the "flashcard_completed" field.
func (tpu *TopicProgressUpdate) SetFlashcardCompleted(b bool) *TopicProgressUpdate {
	tpu.mutation.SetFlashcardCompleted(b)
	return tpu
}

// SetNillableFlashcardCompleted sets the "flashcard_completed" field if the given value is not nil.
func (tpu *TopicProgressUpdate) SetNillableFlashcardCompleted(b *bool) *TopicProgressUpdate {
	if b != nil {
		tpu.SetFlashcardCompleted(*b)
	}
	return tpu
}

// SetQuizCompleted sets the "quiz_completed" field.
func (tpu *TopicProgressUpdate) SetQuizCompleted(b bool) *TopicProgressUpdate {
	tpu.mutation.SetQuizCompleted(b)
	return tpu
}

// SetNillableQuizCompleted sets the "quiz_completed" field if the given value is not nil.
func (tpu *TopicProgressUpdate) SetNillableQuizCompleted(b *bool) *TopicProgressUpdate {
	if b != nil {
		tpu.SetQuizCompleted(*b)
	}
	return tpu
}

// SetExplanationCompletedAt sets the "explanation_completed_at" field.
func (tpu *TopicProgressUpdate) SetExplanationCompletedAt(t time.Time) *TopicProgressUpdate {
	tpu.mutation.SetExplanationCompletedAt(t)
	return tpu
}

// SetNillableExplanationCompletedAt sets the "explanation_completed_at" field if the given value is not nil.
func (tpu *TopicProgressUpdate) SetNillableExplanationCompletedAt(t *time.Time) *TopicProgressUpdate {
	if t != nil {
		tpu.SetExplanationCompletedAt(*t)
	}
	return tpu
}

// ClearExplanationCompletedAt clears the value of the "explanation_completed_at" field.
func (tpu *TopicProgressUpdate) ClearExplanationCompletedAt() *TopicProgressUpdate {
	tpu.mutation.ClearExplanationCompletedAt()
	return tpu
}

// SetFlashcardCompletedAt sets the "flashcard_completed_at" field.
func (tpu *TopicProgressUpdate) SetFlashcardCompletedAt(t time.Time) *TopicProgressUpdate {
	tpu.mutation.SetFlashcardCompletedAt(t)
	return tpu
}

// SetNillableFlashcardCompletedAt sets the "flashcard_completed_at" field if the given value is not nil.
func (tpu *TopicProgressUpdate) SetNillableFlashcardCompletedAt(t *time.Time) *TopicProgressUpdate {
	if t != nil {
		tpu.SetFlashcardCompletedAt(*t)
	}
	return tpu
}

// ClearFlashcardCompletedAt clears the value of the "flashcard_completed_at" field.
func (tpu *TopicProgressUpdate) ClearFlashcardCompletedAt() *TopicProgressUpdate {
	tpu.mutation.ClearFlashcardCompletedAt()
	return tpu
}

// SetQuizCompletedAt sets the "quiz_completed_at" field.
func (tpu *TopicProgressUpdate) SetQuizCompletedAt(t time.Time) *TopicProgressUpdate {
	tpu.mutation.SetQuizCompletedAt(t)
	return tpu
}

// SetNillableQuizCompletedAt sets the "quiz_completed_at" field if the given value is not nil.
func (tpu *TopicProgressUpdate) SetNillableQuizCompletedAt(t *time.Time) *TopicProgressUpdate {
	if t != nil {
		tpu.SetQuizCompletedAt(*t)
	}
	return tpu
}

// ClearQuizCompletedAt clears the value of the "quiz_completed_at" field.
func (tpu *TopicProgressUpdate) ClearQuizCompletedAt() *TopicProgressUpdate {
	tpu.mutation.ClearQuizCompletedAt()
	return tpu
}

// SetLatestScore sets the "latest_score" field.
func (tpu *TopicProgressUpdate) SetLatestScore(i int) *TopicProgressUpdate {
	tpu.mutation.ResetLatestScore()
	tpu.mutation.SetLatestScore(i)
	return tpu
}

// SetNillableLatestScore sets the "latest_score" field if the given value is not nil.
func (tpu *TopicProgressUpdate) SetNillableLatestScore(i *int) *TopicProgressUpdate {
	if i != nil {
		tpu.SetLatestScore(*i)
	}
	return tpu
}

// AddLatestScore adds i to the "latest_score" field.
func (tpu *TopicProgressUpdate) AddLatestScore(i int) *TopicProgressUpdate {
	tpu.mutation.AddLatestScore(i)
	return tpu
}

// SetBestScore sets the "best_score" field.
func (tpu *TopicProgressUpdate) SetBestScore(i int) *TopicProgressUpdate {
	tpu.mutation.ResetBestScore()
	tpu.mutation.SetBestScore(i)
	return tpu
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (tpu *TopicProgressUpdate) SetNillableBestScore(i *int) *TopicProgressUpdate {
	if i != nil {
		tpu.SetBestScore(*i)
	}
	return tpu
}

// AddBestScore adds i to the "best_score" field.
func (tpu *TopicProgressUpdate) AddBestScore(i int) *TopicProgressUpdate {
	tpu.mutation.AddBestScore(i)
	return tpu
}

// SetAverageScore sets the "average_score" field.
func (tpu *TopicProgressUpdate) SetAverageScore(f float64) *TopicProgressUpdate {
	tpu.mutation.ResetAverageScore()
	tpu.mutation.SetAverageScore(f)
	return tpu
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (tpu *TopicProgressUpdate) SetNillableAverageScore(f *float64) *TopicProgressUpdate {
	if f != nil {
		tpu.SetAverageScore(*f)
	}
	return tpu
}

// AddAverageScore adds f to the "average_score" field.
func (tpu *TopicProgressUpdate) AddAverageScore(f float64) *TopicProgressUpdate {
	tpu.mutation.AddAverageScore(f)
	return tpu
}

// SetTotalTestsTaken sets the "total_tests_taken" field.
func (tpu *TopicProgressUpdate) SetTotalTestsTaken(i int) *TopicProgressUpdate {
	tpu.mutation.ResetTotalTestsTaken()
	tpu.mutation.SetTotalTestsTaken(i)
	return tpu
}

// SetNillableTotalTestsTaken sets the "total_tests_taken" field if the given value is not nil.
func (tpu *TopicProgressUpdate) SetNillableTotalTestsTaken(i *int) *TopicProgressUpdate {
	if i != nil {
		tpu.SetTotalTestsTaken(*i)
	}
	return tpu
}

// AddTotalTestsTaken adds i to the "total_tests_taken" field.
func (tpu *TopicProgressUpdate) AddTotalTestsTaken(i int) *TopicProgressUpdate {
	tpu.mutation.AddTotalTestsTaken(i)
	return tpu
}

// SetUpdatedAt sets the "updated_at" field.
func (tpu *TopicProgressUpdate) SetUpdatedAt(t time.Time) *TopicProgressUpdate {
	tpu.mutation.SetUpdatedAt(t)
	return tpu
}

// Mutation returns the TopicProgressMutation object of the builder.
func (tpu *TopicProgressUpdate) Mutation() *TopicProgressMutation {
	return tpu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tpu *TopicProgressUpdate) Save(ctx context.Context) (int, error) {
	tpu.defaults()
	return withHooks(ctx, tpu.sqlSave, tpu.mutation, tpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tpu *TopicProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := tpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tpu *TopicProgressUpdate) Exec(ctx context.Context) error {
	_, err := tpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tpu *TopicProgressUpdate) ExecX(ctx context.Context) {
	if err := tpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tpu *TopicProgressUpdate) defaults() {
	if _, ok := tpu.mutation.UpdatedAt(); !ok {
		v := topicprogress.UpdateDefaultUpdatedAt()
		tpu.mutation.SetUpdatedAt(v)
	}
}

func (tpu *TopicProgressUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	if ps := tpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tpu.mutation.ExplanationCompleted(); ok {
		_spec.SetField(topicprogress.FieldExplanationCompleted, field.TypeBool, value)
	}
	if value, ok := tpu.mutation.FlashcardCompleted(); ok {
		_spec.SetField(topicprogress.FieldFlashcardCompleted, field.TypeBool, value)
	}
	if value, ok := tpu.mutation.QuizCompleted(); ok {
		_spec.SetField(topicprogress.FieldQuizCompleted, field.TypeBool, value)
	}
	if value, ok := tpu.mutation.ExplanationCompletedAt(); ok {
		_spec.SetField(topicprogress.FieldExplanationCompletedAt, field.TypeTime, value)
	}
	if tpu.mutation.ExplanationCompletedAtCleared() {
		_spec.ClearField(topicprogress.FieldExplanationCompletedAt, field.TypeTime)
	}
	if value, ok := tpu.mutation.FlashcardCompletedAt(); ok {
		_spec.SetField(topicprogress.FieldFlashcardCompletedAt, field.TypeTime, value)
	}
	if tpu.mutation.FlashcardCompletedAtCleared() {
		_spec.ClearField(topicprogress.FieldFlashcardCompletedAt, field.TypeTime)
	}
	if value, ok := tpu.mutation.QuizCompletedAt(); ok {
		_spec.SetField(topicprogress.FieldQuizCompletedAt, field.TypeTime, value)
	}
	if tpu.mutation.QuizCompletedAtCleared() {
		_spec.ClearField(topicprogress.FieldQuizCompletedAt, field.TypeTime)
	}
	if value, ok := tpu.mutation.LatestScore(); ok {
		_spec.SetField(topicprogress.FieldLatestScore, field.TypeInt, value)
	}
	if value, ok := tpu.mutation.AddedLatestScore(); ok {
		_spec.AddField(topicprogress.FieldLatestScore, field.TypeInt, value)
	}
	if value, ok := tpu.mutation.BestScore(); ok {
		_spec.SetField(topicprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := tpu.mutation.AddedBestScore(); ok {
		_spec.AddField(topicprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := tpu.mutation.AverageScore(); ok {
		_spec.SetField(topicprogress.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := tpu.mutation.AddedAverageScore(); ok {
		_spec.AddField(topicprogress.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := tpu.mutation.TotalTestsTaken(); ok {
		_spec.SetField(topicprogress.FieldTotalTestsTaken, field.TypeInt, value)
	}
	if value, ok := tpu.mutation.AddedTotalTestsTaken(); ok {
		_spec.AddField(topicprogress.FieldTotalTestsTaken, field.TypeInt, value)
	}
	if value, ok := tpu.mutation.UpdatedAt(); ok {
		_spec.SetField(topicprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tpu.mutation.done = true
	return n, nil
}

// TopicProgressUpdateOne is the builder for updating a single TopicProgress entity.
type TopicProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicProgressMutation
}

// SetExplanationCompleted sets the "explanation_completed" field.
func (tpuo *TopicProgressUpdateOne) SetExplanationCompleted(b bool) *TopicProgressUpdateOne {
	tpuo.mutation.SetExplanationCompleted(b)
	return tpuo
}

// SetNillableExplanationCompleted sets the "explanation_completed" field if the given value is not nil.
func (tpuo *TopicProgressUpdateOne) SetNillableExplanationCompleted(b *bool) *TopicProgressUpdateOne {
	if b != nil {
		tpuo.SetExplanationCompleted(*b)
	}
	return tpuo
}

// SetFlashcardCompleted sets the "flashcard_completed" field.
func (tpuo *TopicProgressUpdateOne) SetFlashcardCompleted(b bool) *TopicProgressUpdateOne {
	tpuo.mutation.SetFlashcardCompleted(b)
	return tpuo
}

// SetNillableFlashcardCompleted sets the "flashcard_completed" field if the given value is not nil.
func (tpuo *TopicProgressUpdateOne) SetNillableFlashcardCompleted(b *bool) *TopicProgressUpdateOne {
	if b != nil {
		tpuo.SetFlashcardCompleted(*b)
	}
	return tpuo
}

// SetQuizCompleted sets the "quiz_completed" field.
func (tpuo *TopicProgressUpdateOne) SetQuizCompleted(b bool) *TopicProgressUpdateOne {
	tpuo.mutation.SetQuizCompleted(b)
	return tpuo
}

// SetNillableQuizCompleted sets the "quiz_completed" field if the given value is not nil.
func (tpuo *TopicProgressUpdateOne) SetNillableQuizCompleted(b *bool) *TopicProgressUpdateOne {
	if b != nil {
		tpuo.SetQuizCompleted(*b)
	}
	return tpuo
}

// SetExplanationCompletedAt sets the "explanation_completed_at" field.
func (tpuo *TopicProgressUpdateOne) SetExplanationCompletedAt(t time.Time) *TopicProgressUpdateOne {
	tpuo.mutation.SetExplanationCompletedAt(t)
	return tpuo
}

// SetNillableExplanationCompletedAt sets the "explanation_completed_at" field if the given value is not nil.
func (tpuo *TopicProgressUpdateOne) SetNillableExplanationCompletedAt(t *time.Time) *TopicProgressUpdateOne {
	if t != nil {
		tpuo.SetExplanationCompletedAt(*t)
	}
	return tpuo
}

// ClearExplanationCompletedAt clears the value of the "explanation_completed_at" field.
func (tpuo *TopicProgressUpdateOne) ClearExplanationCompletedAt() *TopicProgressUpdateOne {
	tpuo.mutation.ClearExplanationCompletedAt()
	return tpuo
}

// SetFlashcardCompletedAt sets the "flashcard_completed_at" field.
func (tpuo *TopicProgressUpdateOne) SetFlashcardCompletedAt(t time.Time) *TopicProgressUpdateOne {
	tpuo.mutation.SetFlashcardCompletedAt(t)
	return tpuo
}

// SetNillableFlashcardCompletedAt sets the "flashcard_completed_at" field if the given value is not nil.
func (tpuo *TopicProgressUpdateOne) SetNillableFlashcardCompletedAt(t *time.Time) *TopicProgressUpdateOne {
	if t != nil {
		tpuo.SetFlashcardCompletedAt(*t)
	}
	return tpuo
}

// ClearFlashcardCompletedAt clears the value of the "flashcard_completed_at" field.
func (tpuo *TopicProgressUpdateOne) ClearFlashcardCompletedAt() *TopicProgressUpdateOne {
	tpuo.mutation.ClearFlashcardCompletedAt()
	return tpuo
}

// SetQuizCompletedAt sets the "quiz_completed_at" field.
func (tpuo *TopicProgressUpdateOne) SetQuizCompletedAt(t time.Time) *TopicProgressUpdateOne {
	tpuo.mutation.SetQuizCompletedAt(t)
	return tpuo
}

// SetNillableQuizCompletedAt sets the "quiz_completed_at" field if the given value is not nil.
func (tpuo *TopicProgressUpdateOne) SetNillableQuizCompletedAt(t *time.Time) *TopicProgressUpdateOne {
	if t != nil {
		tpuo.SetQuizCompletedAt(*t)
	}
	return tpuo
}

// ClearQuizCompletedAt clears the value of the "quiz_completed_at" field.
func (tpuo *TopicProgressUpdateOne) ClearQuizCompletedAt() *TopicProgressUpdateOne {
	tpuo.mutation.ClearQuizCompletedAt()
	return tpuo
}

// SetLatestScore sets the "latest_score" field.
func (tpuo *TopicProgressUpdateOne) SetLatestScore(i int) *TopicProgressUpdateOne {
	tpuo.mutation.ResetLatestScore()
	tpuo.mutation.SetLatestScore(i)
	return tpuo
}

// SetNillableLatestScore sets the "latest_score" field if the given value is not nil.
func (tpuo *TopicProgressUpdateOne) SetNillableLatestScore(i *int) *TopicProgressUpdateOne {
	if i != nil {
		tpuo.SetLatestScore(*i)
	}
	return tpuo
}

// AddLatestScore adds i to the "latest_score" field.
func (tpuo *TopicProgressUpdateOne) AddLatestScore(i int) *TopicProgressUpdateOne {
	tpuo.mutation.AddLatestScore(i)
	return tpuo
}

// SetBestScore sets the "best_score" field.
func (tpuo *TopicProgressUpdateOne) SetBestScore(i int) *TopicProgressUpdateOne {
	tpuo.mutation.ResetBestScore()
	tpuo.mutation.SetBestScore(i)
	return tpuo
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (tpuo *TopicProgressUpdateOne) SetNillableBestScore(i *int) *TopicProgressUpdateOne {
	if i != nil {
		tpuo.SetBestScore(*i)
	}
	return tpuo
}

// AddBestScore adds i to the "best_score" field.
func (tpuo *TopicProgressUpdateOne) AddBestScore(i int) *TopicProgressUpdateOne {
	tpuo.mutation.AddBestScore(i)
	return tpuo
}

// SetAverageScore sets the "average_score" field.
func (tpuo *TopicProgressUpdateOne) SetAverageScore(f float64) *TopicProgressUpdateOne {
	tpuo.mutation.ResetAverageScore()
	tpuo.mutation.SetAverageScore(f)
	return tpuo
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (tpuo *TopicProgressUpdateOne) SetNillableAverageScore(f *float64) *TopicProgressUpdateOne {
	if f != nil {
		tpuo.SetAverageScore(*f)
	}
	return tpuo
}

// AddAverageScore adds f to the "average_score" field.
func (tpuo *TopicProgressUpdateOne) AddAverageScore(f float64) *TopicProgressUpdateOne {
	tpuo.mutation.AddAverageScore(f)
	return tpuo
}

// SetTotalTestsTaken sets the "total_tests_taken" field.
func (tpuo *TopicProgressUpdateOne) SetTotalTestsTaken(i int) *TopicProgressUpdateOne {
	tpuo.mutation.ResetTotalTestsTaken()
	tpuo.mutation.SetTotalTestsTaken(i)
	return tpuo
}

// SetNillableTotalTestsTaken sets the "total_tests_taken" field if the given value is not nil.
func (tpuo *TopicProgressUpdateOne) SetNillableTotalTestsTaken(i *int) *TopicProgressUpdateOne {
	if i != nil {
		tpuo.SetTotalTestsTaken(*i)
	}
	return tpuo
}

// AddTotalTestsTaken adds i to the "total_tests_taken" field.
func (tpuo *TopicProgressUpdateOne) AddTotalTestsTaken(i int) *TopicProgressUpdateOne {
	tpuo.mutation.AddTotalTestsTaken(i)
	return tpuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tpuo *TopicProgressUpdateOne) SetUpdatedAt(t time.Time) *TopicProgressUpdateOne {
	tpuo.mutation.SetUpdatedAt(t)
	return tpuo
}

// Mutation returns the TopicProgressMutation object of the builder.
func (tpuo *TopicProgressUpdateOne) Mutation() *TopicProgressMutation {
	return tpuo.mutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (tpuo *TopicProgressUpdateOne) Where(ps ...predicate.TopicProgress) *TopicProgressUpdateOne {
	tpuo.mutation.Where(ps...)
	return tpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tpuo *TopicProgressUpdateOne) Select(field string, fields ...string) *TopicProgressUpdateOne {
	tpuo.fields = append([]string{field}, fields...)
	return tpuo
}

// Save executes the query and returns the updated TopicProgress entity.
func (tpuo *TopicProgressUpdateOne) Save(ctx context.Context) (*TopicProgress, error) {
	tpuo.defaults()
	return withHooks(ctx, tpuo.sqlSave, tpuo.mutation, tpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tpuo *TopicProgressUpdateOne) SaveX(ctx context.Context) *TopicProgress {
	node, err := tpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tpuo *TopicProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := tpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tpuo *TopicProgressUpdateOne) ExecX(ctx context.Context) {
	if err := tpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tpuo *TopicProgressUpdateOne) defaults() {
	if _, ok := tpuo.mutation.UpdatedAt(); !ok {
		v := topicprogress.UpdateDefaultUpdatedAt()
		tpuo.mutation.SetUpdatedAt(v)
	}
}

func (tpuo *TopicProgressUpdateOne) sqlSave(ctx context.Context) (_node *TopicProgress, err error) {
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	id, ok := tpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicprogress.FieldID)
		for _, f := range fields {
			if !topicprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tpuo.mutation.ExplanationCompleted(); ok {
		_spec.SetField(topicprogress.FieldExplanationCompleted, field.TypeBool, value)
	}
	if value, ok := tpuo.mutation.FlashcardCompleted(); ok {
		_spec.SetField(topicprogress.FieldFlashcardCompleted, field.TypeBool, value)
	}
	if value, ok := tpuo.mutation.QuizCompleted(); ok {
		_spec.SetField(topicprogress.FieldQuizCompleted, field.TypeBool, value)
	}
	if value, ok := tpuo.mutation.ExplanationCompletedAt(); ok {
		_spec.SetField(topicprogress.FieldExplanationCompletedAt, field.TypeTime, value)
	}
	if tpuo.mutation.ExplanationCompletedAtCleared() {
		_spec.ClearField(topicprogress.FieldExplanationCompletedAt, field.TypeTime)
	}
	if value, ok := tpuo.mutation.FlashcardCompletedAt(); ok {
		_spec.SetField(topicprogress.FieldFlashcardCompletedAt, field.TypeTime, value)
	}
	if tpuo.mutation.FlashcardCompletedAtCleared() {
		_spec.ClearField(topicprogress.FieldFlashcardCompletedAt, field.TypeTime)
	}
	if value, ok := tpuo.mutation.QuizCompletedAt(); ok {
		_spec.SetField(topicprogress.FieldQuizCompletedAt, field.TypeTime, value)
	}
	if tpuo.mutation.QuizCompletedAtCleared() {
		_spec.ClearField(topicprogress.FieldQuizCompletedAt, field.TypeTime)
	}
	if value, ok := tpuo.mutation.LatestScore(); ok {
		_spec.SetField(topicprogress.FieldLatestScore, field.TypeInt, value)
	}
	if value, ok := tpuo.mutation.AddedLatestScore(); ok {
		_spec.AddField(topicprogress.FieldLatestScore, field.TypeInt, value)
	}
	if value, ok := tpuo.mutation.BestScore(); ok {
		_spec.SetField(topicprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := tpuo.mutation.AddedBestScore(); ok {
		_spec.AddField(topicprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := tpuo.mutation.AverageScore(); ok {
		_spec.SetField(topicprogress.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := tpuo.mutation.AddedAverageScore(); ok {
		_spec.AddField(topicprogress.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := tpuo.mutation.TotalTestsTaken(); ok {
		_spec.SetField(topicprogress.FieldTotalTestsTaken, field.TypeInt, value)
	}
	if value, ok := tpuo.mutation.AddedTotalTestsTaken(); ok {
		_spec.AddField(topicprogress.FieldTotalTestsTaken, field.TypeInt, value)
	}
	if value, ok := tpuo.mutation.UpdatedAt(); ok {
		_spec.SetField(topicprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TopicProgress{config: tpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tpuo.mutation.done = true
	return _node, nil
}
