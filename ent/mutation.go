// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/benkyo/ent/flashcardreview"
	"github.com/abhisek/benkyo/ent/predicate"
	"github.com/abhisek/benkyo/ent/quizresult"
	"github.com/abhisek/benkyo/ent/studysession"
	"github.com/abhisek/benkyo/ent/topicprogress"
	"github.com/abhisek/benkyo/ent/userachievement"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeFlashcardReview = "FlashcardReview"
	TypeQuizResult      = "QuizResult"
	TypeStudySession    = "StudySession"
	TypeTopicProgress   = "TopicProgress"
	TypeUserAchievement = "UserAchievement"
)

// FlashcardReviewMutation represents an operation that mutates the FlashcardReview nodes in the graph.
type FlashcardReviewMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	timestamp           *time.Time
	user_id             *uuid.UUID
	topic_id            *string
	flashcard_id        *string
	confidence_level    *int
	addconfidence_level *int
	easiness_factor     *float64
	addeasiness_factor  *float64
	interval_days       *int
	addinterval_days    *int
	next_review_date    *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*FlashcardReview, error)
	predicates          []predicate.FlashcardReview
}

var _ ent.Mutation = (*FlashcardReviewMutation)(nil)

// flashcardreviewOption allows management of the mutation configuration using functional options.
type flashcardreviewOption func(*FlashcardReviewMutation)

// newFlashcardReviewMutation creates new mutation for the FlashcardReview entity.
func newFlashcardReviewMutation(c config, op Op, opts ...flashcardreviewOption) *FlashcardReviewMutation {
	m := &FlashcardReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeFlashcardReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFlashcardReviewID sets the ID field of the mutation.
func withFlashcardReviewID(id int) flashcardreviewOption {
	return func(m *FlashcardReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *FlashcardReview
		)
		m.oldValue = func(ctx context.Context) (*FlashcardReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FlashcardReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFlashcardReview sets the old FlashcardReview of the mutation.
func withFlashcardReview(node *FlashcardReview) flashcardreviewOption {
	return func(m *FlashcardReviewMutation) {
		m.oldValue = func(context.Context) (*FlashcardReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FlashcardReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FlashcardReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FlashcardReviewMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FlashcardReviewMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FlashcardReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *FlashcardReviewMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *FlashcardReviewMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the FlashcardReview entity.
// If the FlashcardReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardReviewMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *FlashcardReviewMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *FlashcardReviewMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *FlashcardReviewMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *FlashcardReviewMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *FlashcardReviewMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the FlashcardReview entity.
// If the FlashcardReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardReviewMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *FlashcardReviewMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *FlashcardReviewMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *FlashcardReviewMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the FlashcardReview entity.
// If the FlashcardReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardReviewMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *FlashcardReviewMutation) ResetUserID() {
	m.user_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *FlashcardReviewMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *FlashcardReviewMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the FlashcardReview entity.
// If the FlashcardReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardReviewMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *FlashcardReviewMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetFlashcardID sets the "flashcard_id" field.
func (m *FlashcardReviewMutation) SetFlashcardID(s string) {
	m.flashcard_id = &s
}

// FlashcardID returns the value of the "flashcard_id" field in the mutation.
func (m *FlashcardReviewMutation) FlashcardID() (r string, exists bool) {
	v := m.flashcard_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFlashcardID returns the old "flashcard_id" field's value of the FlashcardReview entity.
// If the FlashcardReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardReviewMutation) OldFlashcardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlashcardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlashcardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlashcardID: %w", err)
	}
	return oldValue.FlashcardID, nil
}

// ResetFlashcardID resets all changes to the "flashcard_id" field.
func (m *FlashcardReviewMutation) ResetFlashcardID() {
	m.flashcard_id = nil
}

// SetConfidenceLevel sets the "confidence_level" field.
func (m *FlashcardReviewMutation) SetConfidenceLevel(i int) {
	m.confidence_level = &i
	m.addconfidence_level = nil
}

// ConfidenceLevel returns the value of the "confidence_level" field in the mutation.
func (m *FlashcardReviewMutation) ConfidenceLevel() (r int, exists bool) {
	v := m.confidence_level
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceLevel returns the old "confidence_level" field's value of the FlashcardReview entity.
// If the FlashcardReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardReviewMutation) OldConfidenceLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceLevel: %w", err)
	}
	return oldValue.ConfidenceLevel, nil
}

// AddConfidenceLevel adds i to the "confidence_level" field.
func (m *FlashcardReviewMutation) AddConfidenceLevel(i int) {
	if m.addconfidence_level != nil {
		*m.addconfidence_level += i
	} else {
		m.addconfidence_level = &i
	}
}

// AddedConfidenceLevel returns the value that was added to the "confidence_level" field in this mutation.
func (m *FlashcardReviewMutation) AddedConfidenceLevel() (r int, exists bool) {
	v := m.addconfidence_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceLevel resets all changes to the "confidence_level" field.
func (m *FlashcardReviewMutation) ResetConfidenceLevel() {
	m.confidence_level = nil
	m.addconfidence_level = nil
}

// SetEasinessFactor sets the "easiness_factor" field.
func (m *FlashcardReviewMutation) SetEasinessFactor(f float64) {
	m.easiness_factor = &f
	m.addeasiness_factor = nil
}

// EasinessFactor returns the value of the "easiness_factor" field in the mutation.
func (m *FlashcardReviewMutation) EasinessFactor() (r float64, exists bool) {
	v := m.easiness_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEasinessFactor returns the old "easiness_factor" field's value of the FlashcardReview entity.
// If the FlashcardReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardReviewMutation) OldEasinessFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEasinessFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEasinessFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEasinessFactor: %w", err)
	}
	return oldValue.EasinessFactor, nil
}

// AddEasinessFactor adds f to the "easiness_factor" field.
func (m *FlashcardReviewMutation) AddEasinessFactor(f float64) {
	if m.addeasiness_factor != nil {
		*m.addeasiness_factor += f
	} else {
		m.addeasiness_factor = &f
	}
}

// AddedEasinessFactor returns the value that was added to the "easiness_factor" field in this mutation.
func (m *FlashcardReviewMutation) AddedEasinessFactor() (r float64, exists bool) {
	v := m.addeasiness_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEasinessFactor resets all changes to the "easiness_factor" field.
func (m *FlashcardReviewMutation) ResetEasinessFactor() {
	m.easiness_factor = nil
	m.addeasiness_factor = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *FlashcardReviewMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *FlashcardReviewMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the FlashcardReview entity.
// If the FlashcardReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardReviewMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *FlashcardReviewMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *FlashcardReviewMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *FlashcardReviewMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetNextReviewDate sets the "next_review_date" field.
func (m *FlashcardReviewMutation) SetNextReviewDate(t time.Time) {
	m.next_review_date = &t
}

// NextReviewDate returns the value of the "next_review_date" field in the mutation.
func (m *FlashcardReviewMutation) NextReviewDate() (r time.Time, exists bool) {
	v := m.next_review_date
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewDate returns the old "next_review_date" field's value of the FlashcardReview entity.
// If the FlashcardReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardReviewMutation) OldNextReviewDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewDate: %w", err)
	}
	return oldValue.NextReviewDate, nil
}

// ResetNextReviewDate resets all changes to the "next_review_date" field.
func (m *FlashcardReviewMutation) ResetNextReviewDate() {
	m.next_review_date = nil
}

// Where appends a list predicates to the FlashcardReviewMutation builder.
func (m *FlashcardReviewMutation) Where(ps ...predicate.FlashcardReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FlashcardReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FlashcardReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FlashcardReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FlashcardReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FlashcardReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FlashcardReview).
func (m *FlashcardReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FlashcardReviewMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, flashcardreview.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, flashcardreview.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, flashcardreview.FieldUserID)
	}
	if m.topic_id != nil {
		fields = append(fields, flashcardreview.FieldTopicID)
	}
	if m.flashcard_id != nil {
		fields = append(fields, flashcardreview.FieldFlashcardID)
	}
	if m.confidence_level != nil {
		fields = append(fields, flashcardreview.FieldConfidenceLevel)
	}
	if m.easiness_factor != nil {
		fields = append(fields, flashcardreview.FieldEasinessFactor)
	}
	if m.interval_days != nil {
		fields = append(fields, flashcardreview.FieldIntervalDays)
	}
	if m.next_review_date != nil {
		fields = append(fields, flashcardreview.FieldNextReviewDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FlashcardReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case flashcardreview.FieldSequence:
		return m.Sequence()
	case flashcardreview.FieldTimestamp:
		return m.Timestamp()
	case flashcardreview.FieldUserID:
		return m.UserID()
	case flashcardreview.FieldTopicID:
		return m.TopicID()
	case flashcardreview.FieldFlashcardID:
		return m.FlashcardID()
	case flashcardreview.FieldConfidenceLevel:
		return m.ConfidenceLevel()
	case flashcardreview.FieldEasinessFactor:
		return m.EasinessFactor()
	case flashcardreview.FieldIntervalDays:
		return m.IntervalDays()
	case flashcardreview.FieldNextReviewDate:
		return m.NextReviewDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FlashcardReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case flashcardreview.FieldSequence:
		return m.OldSequence(ctx)
	case flashcardreview.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case flashcardreview.FieldUserID:
		return m.OldUserID(ctx)
	case flashcardreview.FieldTopicID:
		return m.OldTopicID(ctx)
	case flashcardreview.FieldFlashcardID:
		return m.OldFlashcardID(ctx)
	case flashcardreview.FieldConfidenceLevel:
		return m.OldConfidenceLevel(ctx)
	case flashcardreview.FieldEasinessFactor:
		return m.OldEasinessFactor(ctx)
	case flashcardreview.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case flashcardreview.FieldNextReviewDate:
		return m.OldNextReviewDate(ctx)
	}
	return nil, fmt.Errorf("unknown FlashcardReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlashcardReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case flashcardreview.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case flashcardreview.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case flashcardreview.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case flashcardreview.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case flashcardreview.FieldFlashcardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlashcardID(v)
		return nil
	case flashcardreview.FieldConfidenceLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceLevel(v)
		return nil
	case flashcardreview.FieldEasinessFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEasinessFactor(v)
		return nil
	case flashcardreview.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case flashcardreview.FieldNextReviewDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewDate(v)
		return nil
	}
	return fmt.Errorf("unknown FlashcardReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FlashcardReviewMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, flashcardreview.FieldSequence)
	}
	if m.addconfidence_level != nil {
		fields = append(fields, flashcardreview.FieldConfidenceLevel)
	}
	if m.addeasiness_factor != nil {
		fields = append(fields, flashcardreview.FieldEasinessFactor)
	}
	if m.addinterval_days != nil {
		fields = append(fields, flashcardreview.FieldIntervalDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FlashcardReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case flashcardreview.FieldSequence:
		return m.AddedSequence()
	case flashcardreview.FieldConfidenceLevel:
		return m.AddedConfidenceLevel()
	case flashcardreview.FieldEasinessFactor:
		return m.AddedEasinessFactor()
	case flashcardreview.FieldIntervalDays:
		return m.AddedIntervalDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlashcardReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case flashcardreview.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case flashcardreview.FieldConfidenceLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceLevel(v)
		return nil
	case flashcardreview.FieldEasinessFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEasinessFactor(v)
		return nil
	case flashcardreview.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	}
	return fmt.Errorf("unknown FlashcardReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FlashcardReviewMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FlashcardReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FlashcardReviewMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FlashcardReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FlashcardReviewMutation) ResetField(name string) error {
	switch name {
	case flashcardreview.FieldSequence:
		m.ResetSequence()
		return nil
	case flashcardreview.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case flashcardreview.FieldUserID:
		m.ResetUserID()
		return nil
	case flashcardreview.FieldTopicID:
		m.ResetTopicID()
		return nil
	case flashcardreview.FieldFlashcardID:
		m.ResetFlashcardID()
		return nil
	case flashcardreview.FieldConfidenceLevel:
		m.ResetConfidenceLevel()
		return nil
	case flashcardreview.FieldEasinessFactor:
		m.ResetEasinessFactor()
		return nil
	case flashcardreview.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case flashcardreview.FieldNextReviewDate:
		m.ResetNextReviewDate()
		return nil
	}
	return fmt.Errorf("unknown FlashcardReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FlashcardReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FlashcardReviewMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FlashcardReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FlashcardReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FlashcardReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FlashcardReviewMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FlashcardReviewMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FlashcardReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FlashcardReviewMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FlashcardReview edge %s", name)
}

// QuizResultMutation represents an operation that mutates the QuizResult nodes in the graph.
type QuizResultMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	user_id            *uuid.UUID
	topic_id           *string
	score              *int
	addscore           *int
	total_questions    *int
	addtotal_questions *int
	correct_answers    *int
	addcorrect_answers *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*QuizResult, error)
	predicates         []predicate.QuizResult
}

var _ ent.Mutation = (*QuizResultMutation)(nil)

// quizresultOption allows management of the mutation configuration using functional options.
type quizresultOption func(*QuizResultMutation)

// newQuizResultMutation creates new mutation for the QuizResult entity.
func newQuizResultMutation(c config, op Op, opts ...quizresultOption) *QuizResultMutation {
	m := &QuizResultMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizResultID sets the ID field of the mutation.
func withQuizResultID(id int) quizresultOption {
	return func(m *QuizResultMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizResult
		)
		m.oldValue = func(ctx context.Context) (*QuizResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizResult sets the old QuizResult of the mutation.
func withQuizResult(node *QuizResult) quizresultOption {
	return func(m *QuizResultMutation) {
		m.oldValue = func(context.Context) (*QuizResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *QuizResultMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *QuizResultMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *QuizResultMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *QuizResultMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *QuizResultMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *QuizResultMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *QuizResultMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *QuizResultMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *QuizResultMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QuizResultMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QuizResultMutation) ResetUserID() {
	m.user_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *QuizResultMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *QuizResultMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *QuizResultMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetScore sets the "score" field.
func (m *QuizResultMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *QuizResultMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *QuizResultMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *QuizResultMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *QuizResultMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *QuizResultMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *QuizResultMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *QuizResultMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *QuizResultMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *QuizResultMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *QuizResultMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *QuizResultMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *QuizResultMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *QuizResultMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *QuizResultMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// Where appends a list predicates to the QuizResultMutation builder.
func (m *QuizResultMutation) Where(ps ...predicate.QuizResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizResult).
func (m *QuizResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizResultMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, quizresult.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, quizresult.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, quizresult.FieldUserID)
	}
	if m.topic_id != nil {
		fields = append(fields, quizresult.FieldTopicID)
	}
	if m.score != nil {
		fields = append(fields, quizresult.FieldScore)
	}
	if m.total_questions != nil {
		fields = append(fields, quizresult.FieldTotalQuestions)
	}
	if m.correct_answers != nil {
		fields = append(fields, quizresult.FieldCorrectAnswers)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizresult.FieldSequence:
		return m.Sequence()
	case quizresult.FieldTimestamp:
		return m.Timestamp()
	case quizresult.FieldUserID:
		return m.UserID()
	case quizresult.FieldTopicID:
		return m.TopicID()
	case quizresult.FieldScore:
		return m.Score()
	case quizresult.FieldTotalQuestions:
		return m.TotalQuestions()
	case quizresult.FieldCorrectAnswers:
		return m.CorrectAnswers()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizresult.FieldSequence:
		return m.OldSequence(ctx)
	case quizresult.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case quizresult.FieldUserID:
		return m.OldUserID(ctx)
	case quizresult.FieldTopicID:
		return m.OldTopicID(ctx)
	case quizresult.FieldScore:
		return m.OldScore(ctx)
	case quizresult.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case quizresult.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	}
	return nil, fmt.Errorf("unknown QuizResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizresult.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case quizresult.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case quizresult.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case quizresult.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case quizresult.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case quizresult.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case quizresult.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	}
	return fmt.Errorf("unknown QuizResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizResultMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, quizresult.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, quizresult.FieldScore)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, quizresult.FieldTotalQuestions)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, quizresult.FieldCorrectAnswers)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizresult.FieldSequence:
		return m.AddedSequence()
	case quizresult.FieldScore:
		return m.AddedScore()
	case quizresult.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case quizresult.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizresult.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case quizresult.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case quizresult.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case quizresult.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	}
	return fmt.Errorf("unknown QuizResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizResultMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizResultMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuizResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizResultMutation) ResetField(name string) error {
	switch name {
	case quizresult.FieldSequence:
		m.ResetSequence()
		return nil
	case quizresult.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case quizresult.FieldUserID:
		m.ResetUserID()
		return nil
	case quizresult.FieldTopicID:
		m.ResetTopicID()
		return nil
	case quizresult.FieldScore:
		m.ResetScore()
		return nil
	case quizresult.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case quizresult.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	}
	return fmt.Errorf("unknown QuizResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizResult edge %s", name)
}

// StudySessionMutation represents an operation that mutates the StudySession nodes in the graph.
type StudySessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	timestamp           *time.Time
	user_id             *uuid.UUID
	session_id          *uuid.UUID
	session_date        *string
	duration_seconds    *int
	addduration_seconds *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StudySession, error)
	predicates          []predicate.StudySession
}

var _ ent.Mutation = (*StudySessionMutation)(nil)

// studysessionOption allows management of the mutation configuration using functional options.
type studysessionOption func(*StudySessionMutation)

// newStudySessionMutation creates new mutation for the StudySession entity.
func newStudySessionMutation(c config, op Op, opts ...studysessionOption) *StudySessionMutation {
	m := &StudySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeStudySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudySessionID sets the ID field of the mutation.
func withStudySessionID(id int) studysessionOption {
	return func(m *StudySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *StudySession
		)
		m.oldValue = func(ctx context.Context) (*StudySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudySession sets the old StudySession of the mutation.
func withStudySession(node *StudySession) studysessionOption {
	return func(m *StudySessionMutation) {
		m.oldValue = func(context.Context) (*StudySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudySessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudySessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *StudySessionMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *StudySessionMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *StudySessionMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *StudySessionMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *StudySessionMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *StudySessionMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *StudySessionMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *StudySessionMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *StudySessionMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StudySessionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StudySessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *StudySessionMutation) SetSessionID(u uuid.UUID) {
	m.session_id = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StudySessionMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StudySessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSessionDate sets the "session_date" field.
func (m *StudySessionMutation) SetSessionDate(s string) {
	m.session_date = &s
}

// SessionDate returns the value of the "session_date" field in the mutation.
func (m *StudySessionMutation) SessionDate() (r string, exists bool) {
	v := m.session_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionDate returns the old "session_date" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSessionDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionDate: %w", err)
	}
	return oldValue.SessionDate, nil
}

// ResetSessionDate resets all changes to the "session_date" field.
func (m *StudySessionMutation) ResetSessionDate() {
	m.session_date = nil
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *StudySessionMutation) SetDurationSeconds(i int) {
	m.duration_seconds = &i
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *StudySessionMutation) DurationSeconds() (r int, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldDurationSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (m *StudySessionMutation) AddDurationSeconds(i int) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += i
	} else {
		m.addduration_seconds = &i
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *StudySessionMutation) AddedDurationSeconds() (r int, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *StudySessionMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
}

// Where appends a list predicates to the StudySessionMutation builder.
func (m *StudySessionMutation) Where(ps ...predicate.StudySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudySession).
func (m *StudySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudySessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, studysession.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, studysession.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, studysession.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, studysession.FieldSessionID)
	}
	if m.session_date != nil {
		fields = append(fields, studysession.FieldSessionDate)
	}
	if m.duration_seconds != nil {
		fields = append(fields, studysession.FieldDurationSeconds)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldSequence:
		return m.Sequence()
	case studysession.FieldTimestamp:
		return m.Timestamp()
	case studysession.FieldUserID:
		return m.UserID()
	case studysession.FieldSessionID:
		return m.SessionID()
	case studysession.FieldSessionDate:
		return m.SessionDate()
	case studysession.FieldDurationSeconds:
		return m.DurationSeconds()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studysession.FieldSequence:
		return m.OldSequence(ctx)
	case studysession.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case studysession.FieldUserID:
		return m.OldUserID(ctx)
	case studysession.FieldSessionID:
		return m.OldSessionID(ctx)
	case studysession.FieldSessionDate:
		return m.OldSessionDate(ctx)
	case studysession.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	}
	return nil, fmt.Errorf("unknown StudySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case studysession.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case studysession.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case studysession.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case studysession.FieldSessionDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionDate(v)
		return nil
	case studysession.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudySessionMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, studysession.FieldSequence)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, studysession.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudySessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldSequence:
		return m.AddedSequence()
	case studysession.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case studysession.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudySessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudySessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StudySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudySessionMutation) ResetField(name string) error {
	switch name {
	case studysession.FieldSequence:
		m.ResetSequence()
		return nil
	case studysession.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case studysession.FieldUserID:
		m.ResetUserID()
		return nil
	case studysession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case studysession.FieldSessionDate:
		m.ResetSessionDate()
		return nil
	case studysession.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudySessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudySessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudySessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudySessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudySessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudySession edge %s", name)
}

// TopicProgressMutation represents an operation that mutates the TopicProgress nodes in the graph.
type TopicProgressMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	user_id                  *uuid.UUID
	topic_id                 *string
	explanation_completed    *bool
	flashcard_completed      *bool
	quiz_completed           *bool
	explanation_completed_at *time.Time
	flashcard_completed_at   *time.Time
	quiz_completed_at        *time.Time
	latest_score             *int
	addlatest_score          *int
	best_score               *int
	addbest_score            *int
	average_score            *float64
	addaverage_score         *float64
	total_tests_taken        *int
	addtotal_tests_taken     *int
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*TopicProgress, error)
	predicates               []predicate.TopicProgress
}

var _ ent.Mutation = (*TopicProgressMutation)(nil)

// topicprogressOption allows management of the mutation configuration using functional options.
type topicprogressOption func(*TopicProgressMutation)

// newTopicProgressMutation creates new mutation for the TopicProgress entity.
func newTopicProgressMutation(c config, op Op, opts ...topicprogressOption) *TopicProgressMutation {
	m := &TopicProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicProgressID sets the ID field of the mutation.
func withTopicProgressID(id int) topicprogressOption {
	return func(m *TopicProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicProgress
		)
		m.oldValue = func(ctx context.Context) (*TopicProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicProgress sets the old TopicProgress of the mutation.
func withTopicProgress(node *TopicProgress) topicprogressOption {
	return func(m *TopicProgressMutation) {
		m.oldValue = func(context.Context) (*TopicProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TopicProgressMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TopicProgressMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TopicProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *TopicProgressMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *TopicProgressMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *TopicProgressMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetExplanationCompleted sets the "explanation_completed" field.
func (m *TopicProgressMutation) SetExplanationCompleted(b bool) {
	m.explanation_completed = &b
}

// ExplanationCompleted returns the value of the "explanation_completed" field in the mutation.
func (m *TopicProgressMutation) ExplanationCompleted() (r bool, exists bool) {
	v := m.explanation_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanationCompleted returns the old "explanation_completed" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldExplanationCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanationCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanationCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanationCompleted: %w", err)
	}
	return oldValue.ExplanationCompleted, nil
}

// ResetExplanationCompleted resets all changes to the "explanation_completed" field.
func (m *TopicProgressMutation) ResetExplanationCompleted() {
	m.explanation_completed = nil
}

// SetFlashcardCompleted sets the "flashcard_completed" field.
func (m *TopicProgressMutation) SetFlashcardCompleted(b bool) {
	m.flashcard_completed = &b
}

// FlashcardCompleted returns the value of the "flashcard_completed" field in the mutation.
func (m *TopicProgressMutation) FlashcardCompleted() (r bool, exists bool) {
	v := m.flashcard_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldFlashcardCompleted returns the old "flashcard_completed" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldFlashcardCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlashcardCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlashcardCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlashcardCompleted: %w", err)
	}
	return oldValue.FlashcardCompleted, nil
}

// ResetFlashcardCompleted resets all changes to the "flashcard_completed" field.
func (m *TopicProgressMutation) ResetFlashcardCompleted() {
	m.flashcard_completed = nil
}

// SetQuizCompleted sets the "quiz_completed" field.
func (m *TopicProgressMutation) SetQuizCompleted(b bool) {
	m.quiz_completed = &b
}

// QuizCompleted returns the value of the "quiz_completed" field in the mutation.
func (m *TopicProgressMutation) QuizCompleted() (r bool, exists bool) {
	v := m.quiz_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizCompleted returns the old "quiz_completed" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldQuizCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizCompleted: %w", err)
	}
	return oldValue.QuizCompleted, nil
}

// ResetQuizCompleted resets all changes to the "quiz_completed" field.
func (m *TopicProgressMutation) ResetQuizCompleted() {
	m.quiz_completed = nil
}

// SetExplanationCompletedAt sets the "explanation_completed_at" field.
func (m *TopicProgressMutation) SetExplanationCompletedAt(t time.Time) {
	m.explanation_completed_at = &t
}

// ExplanationCompletedAt returns the value of the "explanation_completed_at" field in the mutation.
func (m *TopicProgressMutation) ExplanationCompletedAt() (r time.Time, exists bool) {
	v := m.explanation_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanationCompletedAt returns the old "explanation_completed_at" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldExplanationCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanationCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanationCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanationCompletedAt: %w", err)
	}
	return oldValue.ExplanationCompletedAt, nil
}

// ClearExplanationCompletedAt clears the value of the "explanation_completed_at" field.
func (m *TopicProgressMutation) ClearExplanationCompletedAt() {
	m.explanation_completed_at = nil
	m.clearedFields[topicprogress.FieldExplanationCompletedAt] = struct{}{}
}

// ExplanationCompletedAtCleared returns if the "explanation_completed_at" field was cleared in this mutation.
func (m *TopicProgressMutation) ExplanationCompletedAtCleared() bool {
	_, ok := m.clearedFields[topicprogress.FieldExplanationCompletedAt]
	return ok
}

// ResetExplanationCompletedAt resets all changes to the "explanation_completed_at" field.
func (m *TopicProgressMutation) ResetExplanationCompletedAt() {
	m.explanation_completed_at = nil
	delete(m.clearedFields, topicprogress.FieldExplanationCompletedAt)
}

// SetFlashcardCompletedAt sets the "flashcard_completed_at" field.
func (m *TopicProgressMutation) SetFlashcardCompletedAt(t time.Time) {
	m.flashcard_completed_at = &t
}

// FlashcardCompletedAt returns the value of the "flashcard_completed_at" field in the mutation.
func (m *TopicProgressMutation) FlashcardCompletedAt() (r time.Time, exists bool) {
	v := m.flashcard_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFlashcardCompletedAt returns the old "flashcard_completed_at" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldFlashcardCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlashcardCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlashcardCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlashcardCompletedAt: %w", err)
	}
	return oldValue.FlashcardCompletedAt, nil
}

// ClearFlashcardCompletedAt clears the value of the "flashcard_completed_at" field.
func (m *TopicProgressMutation) ClearFlashcardCompletedAt() {
	m.flashcard_completed_at = nil
	m.clearedFields[topicprogress.FieldFlashcardCompletedAt] = struct{}{}
}

// FlashcardCompletedAtCleared returns if the "flashcard_completed_at" field was cleared in this mutation.
func (m *TopicProgressMutation) FlashcardCompletedAtCleared() bool {
	_, ok := m.clearedFields[topicprogress.FieldFlashcardCompletedAt]
	return ok
}

// ResetFlashcardCompletedAt resets all changes to the "flashcard_completed_at" field.
func (m *TopicProgressMutation) ResetFlashcardCompletedAt() {
	m.flashcard_completed_at = nil
	delete(m.clearedFields, topicprogress.FieldFlashcardCompletedAt)
}

// SetQuizCompletedAt sets the "quiz_completed_at" field.
func (m *TopicProgressMutation) SetQuizCompletedAt(t time.Time) {
	m.quiz_completed_at = &t
}

// QuizCompletedAt returns the value of the "quiz_completed_at" field in the mutation.
func (m *TopicProgressMutation) QuizCompletedAt() (r time.Time, exists bool) {
	v := m.quiz_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizCompletedAt returns the old "quiz_completed_at" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldQuizCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizCompletedAt: %w", err)
	}
	return oldValue.QuizCompletedAt, nil
}

// ClearQuizCompletedAt clears the value of the "quiz_completed_at" field.
func (m *TopicProgressMutation) ClearQuizCompletedAt() {
	m.quiz_completed_at = nil
	m.clearedFields[topicprogress.FieldQuizCompletedAt] = struct{}{}
}

// QuizCompletedAtCleared returns if the "quiz_completed_at" field was cleared in this mutation.
func (m *TopicProgressMutation) QuizCompletedAtCleared() bool {
	_, ok := m.clearedFields[topicprogress.FieldQuizCompletedAt]
	return ok
}

// ResetQuizCompletedAt resets all changes to the "quiz_completed_at" field.
func (m *TopicProgressMutation) ResetQuizCompletedAt() {
	m.quiz_completed_at = nil
	delete(m.clearedFields, topicprogress.FieldQuizCompletedAt)
}

// SetLatestScore sets the "latest_score" field.
func (m *TopicProgressMutation) SetLatestScore(i int) {
	m.latest_score = &i
	m.addlatest_score = nil
}

// LatestScore returns the value of the "latest_score" field in the mutation.
func (m *TopicProgressMutation) LatestScore() (r int, exists bool) {
	v := m.latest_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestScore returns the old "latest_score" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldLatestScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestScore: %w", err)
	}
	return oldValue.LatestScore, nil
}

// AddLatestScore adds i to the "latest_score" field.
func (m *TopicProgressMutation) AddLatestScore(i int) {
	if m.addlatest_score != nil {
		*m.addlatest_score += i
	} else {
		m.addlatest_score = &i
	}
}

// AddedLatestScore returns the value that was added to the "latest_score" field in this mutation.
func (m *TopicProgressMutation) AddedLatestScore() (r int, exists bool) {
	v := m.addlatest_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatestScore resets all changes to the "latest_score" field.
func (m *TopicProgressMutation) ResetLatestScore() {
	m.latest_score = nil
	m.addlatest_score = nil
}

// SetBestScore sets the "best_score" field.
func (m *TopicProgressMutation) SetBestScore(i int) {
	m.best_score = &i
	m.addbest_score = nil
}

// BestScore returns the value of the "best_score" field in the mutation.
func (m *TopicProgressMutation) BestScore() (r int, exists bool) {
	v := m.best_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBestScore returns the old "best_score" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldBestScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestScore: %w", err)
	}
	return oldValue.BestScore, nil
}

// AddBestScore adds i to the "best_score" field.
func (m *TopicProgressMutation) AddBestScore(i int) {
	if m.addbest_score != nil {
		*m.addbest_score += i
	} else {
		m.addbest_score = &i
	}
}

// AddedBestScore returns the value that was added to the "best_score" field in this mutation.
func (m *TopicProgressMutation) AddedBestScore() (r int, exists bool) {
	v := m.addbest_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBestScore resets all changes to the "best_score" field.
func (m *TopicProgressMutation) ResetBestScore() {
	m.best_score = nil
	m.addbest_score = nil
}

// SetAverageScore sets the "average_score" field.
func (m *TopicProgressMutation) SetAverageScore(f float64) {
	m.average_score = &f
	m.addaverage_score = nil
}

// AverageScore returns the value of the "average_score" field in the mutation.
func (m *TopicProgressMutation) AverageScore() (r float64, exists bool) {
	v := m.average_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageScore returns the old "average_score" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldAverageScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageScore: %w", err)
	}
	return oldValue.AverageScore, nil
}

// AddAverageScore adds f to the "average_score" field.
func (m *TopicProgressMutation) AddAverageScore(f float64) {
	if m.addaverage_score != nil {
		*m.addaverage_score += f
	} else {
		m.addaverage_score = &f
	}
}

// AddedAverageScore returns the value that was added to the "average_score" field in this mutation.
func (m *TopicProgressMutation) AddedAverageScore() (r float64, exists bool) {
	v := m.addaverage_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageScore resets all changes to the "average_score" field.
func (m *TopicProgressMutation) ResetAverageScore() {
	m.average_score = nil
	m.addaverage_score = nil
}

// SetTotalTestsTaken sets the "total_tests_taken" field.
func (m *TopicProgressMutation) SetTotalTestsTaken(i int) {
	m.total_tests_taken = &i
	m.addtotal_tests_taken = nil
}

// TotalTestsTaken returns the value of the "total_tests_taken" field in the mutation.
func (m *TopicProgressMutation) TotalTestsTaken() (r int, exists bool) {
	v := m.total_tests_taken
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTestsTaken returns the old "total_tests_taken" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldTotalTestsTaken(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTestsTaken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTestsTaken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTestsTaken: %w", err)
	}
	return oldValue.TotalTestsTaken, nil
}

// AddTotalTestsTaken adds i to the "total_tests_taken" field.
func (m *TopicProgressMutation) AddTotalTestsTaken(i int) {
	if m.addtotal_tests_taken != nil {
		*m.addtotal_tests_taken += i
	} else {
		m.addtotal_tests_taken = &i
	}
}

// AddedTotalTestsTaken returns the value that was added to the "total_tests_taken" field in this mutation.
func (m *TopicProgressMutation) AddedTotalTestsTaken() (r int, exists bool) {
	v := m.addtotal_tests_taken
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTestsTaken resets all changes to the "total_tests_taken" field.
func (m *TopicProgressMutation) ResetTotalTestsTaken() {
	m.total_tests_taken = nil
	m.addtotal_tests_taken = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TopicProgressMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TopicProgressMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TopicProgressMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TopicProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TopicProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TopicProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TopicProgressMutation builder.
func (m *TopicProgressMutation) Where(ps ...predicate.TopicProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicProgress).
func (m *TopicProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicProgressMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.user_id != nil {
		fields = append(fields, topicprogress.FieldUserID)
	}
	if m.topic_id != nil {
		fields = append(fields, topicprogress.FieldTopicID)
	}
	if m.explanation_completed != nil {
		fields = append(fields, topicprogress.FieldExplanationCompleted)
	}
	if m.flashcard_completed != nil {
		fields = append(fields, topicprogress.FieldFlashcardCompleted)
	}
	if m.quiz_completed != nil {
		fields = append(fields, topicprogress.FieldQuizCompleted)
	}
	if m.explanation_completed_at != nil {
		fields = append(fields, topicprogress.FieldExplanationCompletedAt)
	}
	if m.flashcard_completed_at != nil {
		fields = append(fields, topicprogress.FieldFlashcardCompletedAt)
	}
	if m.quiz_completed_at != nil {
		fields = append(fields, topicprogress.FieldQuizCompletedAt)
	}
	if m.latest_score != nil {
		fields = append(fields, topicprogress.FieldLatestScore)
	}
	if m.best_score != nil {
		fields = append(fields, topicprogress.FieldBestScore)
	}
	if m.average_score != nil {
		fields = append(fields, topicprogress.FieldAverageScore)
	}
	if m.total_tests_taken != nil {
		fields = append(fields, topicprogress.FieldTotalTestsTaken)
	}
	if m.created_at != nil {
		fields = append(fields, topicprogress.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, topicprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicprogress.FieldUserID:
		return m.UserID()
	case topicprogress.FieldTopicID:
		return m.TopicID()
	case topicprogress.FieldExplanationCompleted:
		return m.ExplanationCompleted()
	case topicprogress.FieldFlashcardCompleted:
		return m.FlashcardCompleted()
	case topicprogress.FieldQuizCompleted:
		return m.QuizCompleted()
	case topicprogress.FieldExplanationCompletedAt:
		return m.ExplanationCompletedAt()
	case topicprogress.FieldFlashcardCompletedAt:
		return m.FlashcardCompletedAt()
	case topicprogress.FieldQuizCompletedAt:
		return m.QuizCompletedAt()
	case topicprogress.FieldLatestScore:
		return m.LatestScore()
	case topicprogress.FieldBestScore:
		return m.BestScore()
	case topicprogress.FieldAverageScore:
		return m.AverageScore()
	case topicprogress.FieldTotalTestsTaken:
		return m.TotalTestsTaken()
	case topicprogress.FieldCreatedAt:
		return m.CreatedAt()
	case topicprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicprogress.FieldUserID:
		return m.OldUserID(ctx)
	case topicprogress.FieldTopicID:
		return m.OldTopicID(ctx)
	case topicprogress.FieldExplanationCompleted:
		return m.OldExplanationCompleted(ctx)
	case topicprogress.FieldFlashcardCompleted:
		return m.OldFlashcardCompleted(ctx)
	case topicprogress.FieldQuizCompleted:
		return m.OldQuizCompleted(ctx)
	case topicprogress.FieldExplanationCompletedAt:
		return m.OldExplanationCompletedAt(ctx)
	case topicprogress.FieldFlashcardCompletedAt:
		return m.OldFlashcardCompletedAt(ctx)
	case topicprogress.FieldQuizCompletedAt:
		return m.OldQuizCompletedAt(ctx)
	case topicprogress.FieldLatestScore:
		return m.OldLatestScore(ctx)
	case topicprogress.FieldBestScore:
		return m.OldBestScore(ctx)
	case topicprogress.FieldAverageScore:
		return m.OldAverageScore(ctx)
	case topicprogress.FieldTotalTestsTaken:
		return m.OldTotalTestsTaken(ctx)
	case topicprogress.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case topicprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TopicProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicprogress.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case topicprogress.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case topicprogress.FieldExplanationCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanationCompleted(v)
		return nil
	case topicprogress.FieldFlashcardCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlashcardCompleted(v)
		return nil
	case topicprogress.FieldQuizCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizCompleted(v)
		return nil
	case topicprogress.FieldExplanationCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanationCompletedAt(v)
		return nil
	case topicprogress.FieldFlashcardCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlashcardCompletedAt(v)
		return nil
	case topicprogress.FieldQuizCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizCompletedAt(v)
		return nil
	case topicprogress.FieldLatestScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestScore(v)
		return nil
	case topicprogress.FieldBestScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestScore(v)
		return nil
	case topicprogress.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageScore(v)
		return nil
	case topicprogress.FieldTotalTestsTaken:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTestsTaken(v)
		return nil
	case topicprogress.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case topicprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TopicProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicProgressMutation) AddedFields() []string {
	var fields []string
	if m.addlatest_score != nil {
		fields = append(fields, topicprogress.FieldLatestScore)
	}
	if m.addbest_score != nil {
		fields = append(fields, topicprogress.FieldBestScore)
	}
	if m.addaverage_score != nil {
		fields = append(fields, topicprogress.FieldAverageScore)
	}
	if m.addtotal_tests_taken != nil {
		fields = append(fields, topicprogress.FieldTotalTestsTaken)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicprogress.FieldLatestScore:
		return m.AddedLatestScore()
	case topicprogress.FieldBestScore:
		return m.AddedBestScore()
	case topicprogress.FieldAverageScore:
		return m.AddedAverageScore()
	case topicprogress.FieldTotalTestsTaken:
		return m.AddedTotalTestsTaken()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicprogress.FieldLatestScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatestScore(v)
		return nil
	case topicprogress.FieldBestScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestScore(v)
		return nil
	case topicprogress.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageScore(v)
		return nil
	case topicprogress.FieldTotalTestsTaken:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTestsTaken(v)
		return nil
	}
	return fmt.Errorf("unknown TopicProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topicprogress.FieldExplanationCompletedAt) {
		fields = append(fields, topicprogress.FieldExplanationCompletedAt)
	}
	if m.FieldCleared(topicprogress.FieldFlashcardCompletedAt) {
		fields = append(fields, topicprogress.FieldFlashcardCompletedAt)
	}
	if m.FieldCleared(topicprogress.FieldQuizCompletedAt) {
		fields = append(fields, topicprogress.FieldQuizCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicProgressMutation) ClearField(name string) error {
	switch name {
	case topicprogress.FieldExplanationCompletedAt:
		m.ClearExplanationCompletedAt()
		return nil
	case topicprogress.FieldFlashcardCompletedAt:
		m.ClearFlashcardCompletedAt()
		return nil
	case topicprogress.FieldQuizCompletedAt:
		m.ClearQuizCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown TopicProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicProgressMutation) ResetField(name string) error {
	switch name {
	case topicprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case topicprogress.FieldTopicID:
		m.ResetTopicID()
		return nil
	case topicprogress.FieldExplanationCompleted:
		m.ResetExplanationCompleted()
		return nil
	case topicprogress.FieldFlashcardCompleted:
		m.ResetFlashcardCompleted()
		return nil
	case topicprogress.FieldQuizCompleted:
		m.ResetQuizCompleted()
		return nil
	case topicprogress.FieldExplanationCompletedAt:
		m.ResetExplanationCompletedAt()
		return nil
	case topicprogress.FieldFlashcardCompletedAt:
		m.ResetFlashcardCompletedAt()
		return nil
	case topicprogress.FieldQuizCompletedAt:
		m.ResetQuizCompletedAt()
		return nil
	case topicprogress.FieldLatestScore:
		m.ResetLatestScore()
		return nil
	case topicprogress.FieldBestScore:
		m.ResetBestScore()
		return nil
	case topicprogress.FieldAverageScore:
		m.ResetAverageScore()
		return nil
	case topicprogress.FieldTotalTestsTaken:
		m.ResetTotalTestsTaken()
		return nil
	case topicprogress.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case topicprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TopicProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TopicProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TopicProgress edge %s", name)
}

// UserAchievementMutation represents an operation that mutates the UserAchievement nodes in the graph.
type UserAchievementMutation struct {
	config
	op              Op
	typ             string
	id              *int
	user_id         *uuid.UUID
	achievement_key *string
	earned_at       *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*UserAchievement, error)
	predicates      []predicate.UserAchievement
}

var _ ent.Mutation = (*UserAchievementMutation)(nil)

// userachievementOption allows management of the mutation configuration using functional options.
type userachievementOption func(*UserAchievementMutation)

// newUserAchievementMutation creates new mutation for the UserAchievement entity.
func newUserAchievementMutation(c config, op Op, opts ...userachievementOption) *UserAchievementMutation {
	m := &UserAchievementMutation{
		config:        c,
		op:            op,
		typ:           TypeUserAchievement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserAchievementID sets the ID field of the mutation.
func withUserAchievementID(id int) userachievementOption {
	return func(m *UserAchievementMutation) {
		var (
			err   error
			once  sync.Once
			value *UserAchievement
		)
		m.oldValue = func(ctx context.Context) (*UserAchievement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserAchievement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserAchievement sets the old UserAchievement of the mutation.
func withUserAchievement(node *UserAchievement) userachievementOption {
	return func(m *UserAchievementMutation) {
		m.oldValue = func(context.Context) (*UserAchievement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserAchievementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserAchievementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserAchievementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserAchievementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserAchievement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserAchievementMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserAchievementMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserAchievement entity.
// If the UserAchievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserAchievementMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserAchievementMutation) ResetUserID() {
	m.user_id = nil
}

// SetAchievementKey sets the "achievement_key" field.
func (m *UserAchievementMutation) SetAchievementKey(s string) {
	m.achievement_key = &s
}

// AchievementKey returns the value of the "achievement_key" field in the mutation.
func (m *UserAchievementMutation) AchievementKey() (r string, exists bool) {
	v := m.achievement_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAchievementKey returns the old "achievement_key" field's value of the UserAchievement entity.
// If the UserAchievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserAchievementMutation) OldAchievementKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAchievementKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAchievementKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAchievementKey: %w", err)
	}
	return oldValue.AchievementKey, nil
}

// ResetAchievementKey resets all changes to the "achievement_key" field.
func (m *UserAchievementMutation) ResetAchievementKey() {
	m.achievement_key = nil
}

// SetEarnedAt sets the "earned_at" field.
func (m *UserAchievementMutation) SetEarnedAt(t time.Time) {
	m.earned_at = &t
}

// EarnedAt returns the value of the "earned_at" field in the mutation.
func (m *UserAchievementMutation) EarnedAt() (r time.Time, exists bool) {
	v := m.earned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEarnedAt returns the old "earned_at" field's value of the UserAchievement entity.
// If the UserAchievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserAchievementMutation) OldEarnedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEarnedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEarnedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEarnedAt: %w", err)
	}
	return oldValue.EarnedAt, nil
}

// ResetEarnedAt resets all changes to the "earned_at" field.
func (m *UserAchievementMutation) ResetEarnedAt() {
	m.earned_at = nil
}

// Where appends a list predicates to the UserAchievementMutation builder.
func (m *UserAchievementMutation) Where(ps ...predicate.UserAchievement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserAchievementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserAchievementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserAchievement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserAchievementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserAchievementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserAchievement).
func (m *UserAchievementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserAchievementMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, userachievement.FieldUserID)
	}
	if m.achievement_key != nil {
		fields = append(fields, userachievement.FieldAchievementKey)
	}
	if m.earned_at != nil {
		fields = append(fields, userachievement.FieldEarnedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserAchievementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userachievement.FieldUserID:
		return m.UserID()
	case userachievement.FieldAchievementKey:
		return m.AchievementKey()
	case userachievement.FieldEarnedAt:
		return m.EarnedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserAchievementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userachievement.FieldUserID:
		return m.OldUserID(ctx)
	case userachievement.FieldAchievementKey:
		return m.OldAchievementKey(ctx)
	case userachievement.FieldEarnedAt:
		return m.OldEarnedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserAchievement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserAchievementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userachievement.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userachievement.FieldAchievementKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAchievementKey(v)
		return nil
	case userachievement.FieldEarnedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEarnedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserAchievement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserAchievementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserAchievementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserAchievementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserAchievement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserAchievementMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserAchievementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserAchievementMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserAchievement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserAchievementMutation) ResetField(name string) error {
	switch name {
	case userachievement.FieldUserID:
		m.ResetUserID()
		return nil
	case userachievement.FieldAchievementKey:
		m.ResetAchievementKey()
		return nil
	case userachievement.FieldEarnedAt:
		m.ResetEarnedAt()
		return nil
	}
	return fmt.Errorf("unknown UserAchievement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserAchievementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserAchievementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserAchievementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserAchievementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserAchievementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserAchievementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserAchievementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserAchievement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserAchievementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserAchievement edge %s", name)
}
