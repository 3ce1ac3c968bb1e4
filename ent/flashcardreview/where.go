// Code generated by ent, DO NOT EDIT.

package flashcardreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/benkyo/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldUserID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldTopicID, v))
}

// FlashcardID applies equality check predicate on the "flashcard_id" field. It's identical to FlashcardIDEQ.
func FlashcardID(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldFlashcardID, v))
}

// ConfidenceLevel applies equality check predicate on the "confidence_level" field. It's identical to ConfidenceLevelEQ.
func ConfidenceLevel(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldConfidenceLevel, v))
}

// EasinessFactor applies equality check predicate on the "easiness_factor" field. It's identical to EasinessFactorEQ.
func EasinessFactor(v float64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldEasinessFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldIntervalDays, v))
}

// NextReviewDate applies equality check predicate on the "next_review_date" field. It's identical to NextReviewDateEQ.
func NextReviewDate(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldNextReviewDate, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLTE(FieldUserID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldContainsFold(FieldTopicID, v))
}

// FlashcardIDEQ applies the EQ predicate on the "flashcard_id" field.
func FlashcardIDEQ(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldFlashcardID, v))
}

// FlashcardIDNEQ applies the NEQ predicate on the "flashcard_id" field.
func FlashcardIDNEQ(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNEQ(FieldFlashcardID, v))
}

// FlashcardIDIn applies the In predicate on the "flashcard_id" field.
func FlashcardIDIn(vs ...string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldIn(FieldFlashcardID, vs...))
}

// FlashcardIDNotIn applies the NotIn predicate on the "flashcard_id" field.
func FlashcardIDNotIn(vs ...string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNotIn(FieldFlashcardID, vs...))
}

// FlashcardIDGT applies the GT predicate on the "flashcard_id" field.
func FlashcardIDGT(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGT(FieldFlashcardID, v))
}

// FlashcardIDGTE applies the GTE predicate on the "flashcard_id" field.
func FlashcardIDGTE(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGTE(FieldFlashcardID, v))
}

// FlashcardIDLT applies the LT predicate on the "flashcard_id" field.
func FlashcardIDLT(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLT(FieldFlashcardID, v))
}

// FlashcardIDLTE applies the LTE predicate on the "flashcard_id" field.
func FlashcardIDLTE(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLTE(FieldFlashcardID, v))
}

// FlashcardIDContains applies the Contains predicate on the "flashcard_id" field.
func FlashcardIDContains(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldContains(FieldFlashcardID, v))
}

// FlashcardIDHasPrefix applies the HasPrefix predicate on the "flashcard_id" field.
func FlashcardIDHasPrefix(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldHasPrefix(FieldFlashcardID, v))
}

// FlashcardIDHasSuffix applies the HasSuffix predicate on the "flashcard_id" field.
func FlashcardIDHasSuffix(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldHasSuffix(FieldFlashcardID, v))
}

// FlashcardIDEqualFold applies the EqualFold predicate on the "flashcard_id" field.
func FlashcardIDEqualFold(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEqualFold(FieldFlashcardID, v))
}

// FlashcardIDContainsFold applies the ContainsFold predicate on the "flashcard_id" field.
func FlashcardIDContainsFold(v string) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldContainsFold(FieldFlashcardID, v))
}

// ConfidenceLevelEQ applies the EQ predicate on the "confidence_level" field.
func ConfidenceLevelEQ(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelNEQ applies the NEQ predicate on the "confidence_level" field.
func ConfidenceLevelNEQ(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelIn applies the In predicate on the "confidence_level" field.
func ConfidenceLevelIn(vs ...int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelNotIn applies the NotIn predicate on the "confidence_level" field.
func ConfidenceLevelNotIn(vs ...int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNotIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelGT applies the GT predicate on the "confidence_level" field.
func ConfidenceLevelGT(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGT(FieldConfidenceLevel, v))
}

// ConfidenceLevelGTE applies the GTE predicate on the "confidence_level" field.
func ConfidenceLevelGTE(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGTE(FieldConfidenceLevel, v))
}

// ConfidenceLevelLT applies the LT predicate on the "confidence_level" field.
func ConfidenceLevelLT(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLT(FieldConfidenceLevel, v))
}

// ConfidenceLevelLTE applies the LTE predicate on the "confidence_level" field.
func ConfidenceLevelLTE(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLTE(FieldConfidenceLevel, v))
}

// EasinessFactorEQ applies the EQ predicate on the "easiness_factor" field.
func EasinessFactorEQ(v float64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldEasinessFactor, v))
}

// EasinessFactorNEQ applies the NEQ predicate on the "easiness_factor" field.
func EasinessFactorNEQ(v float64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNEQ(FieldEasinessFactor, v))
}

// EasinessFactorIn applies the In predicate on the "easiness_factor" field.
func EasinessFactorIn(vs ...float64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldIn(FieldEasinessFactor, vs...))
}

// EasinessFactorNotIn applies the NotIn predicate on the "easiness_factor" field.
func EasinessFactorNotIn(vs ...float64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNotIn(FieldEasinessFactor, vs...))
}

// EasinessFactorGT applies the GT predicate on the "easiness_factor" field.
func EasinessFactorGT(v float64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGT(FieldEasinessFactor, v))
}

// EasinessFactorGTE applies the GTE predicate on the "easiness_factor" field.
func EasinessFactorGTE(v float64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGTE(FieldEasinessFactor, v))
}

// EasinessFactorLT applies the LT predicate on the "easiness_factor" field.
func EasinessFactorLT(v float64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLT(FieldEasinessFactor, v))
}

// EasinessFactorLTE applies the LTE predicate on the "easiness_factor" field.
func EasinessFactorLTE(v float64) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLTE(FieldEasinessFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLTE(FieldIntervalDays, v))
}

// NextReviewDateEQ applies the EQ predicate on the "next_review_date" field.
func NextReviewDateEQ(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldEQ(FieldNextReviewDate, v))
}

// NextReviewDateNEQ applies the NEQ predicate on the "next_review_date" field.
func NextReviewDateNEQ(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNEQ(FieldNextReviewDate, v))
}

// NextReviewDateIn applies the In predicate on the "next_review_date" field.
func NextReviewDateIn(vs ...time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldIn(FieldNextReviewDate, vs...))
}

// NextReviewDateNotIn applies the NotIn predicate on the "next_review_date" field.
func NextReviewDateNotIn(vs ...time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldNotIn(FieldNextReviewDate, vs...))
}

// NextReviewDateGT applies the GT predicate on the "next_review_date" field.
func NextReviewDateGT(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGT(FieldNextReviewDate, v))
}

// NextReviewDateGTE applies the GTE predicate on the "next_review_date" field.
func NextReviewDateGTE(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldGTE(FieldNextReviewDate, v))
}

// NextReviewDateLT applies the LT predicate on the "next_review_date" field.
func NextReviewDateLT(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLT(FieldNextReviewDate, v))
}

// NextReviewDateLTE applies the LTE predicate on the "next_review_date" field.
func NextReviewDateLTE(v time.Time) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.FieldLTE(FieldNextReviewDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FlashcardReview) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FlashcardReview) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FlashcardReview) predicate.FlashcardReview {
	return predicate.FlashcardReview(sql.NotPredicates(p))
}
