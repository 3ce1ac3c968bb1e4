// Code generated by ent, DO NOT EDIT.

package topicprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/benkyo/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldUserID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTopicID, v))
}

// ExplanationCompleted applies equality check predicate on the "explanation_completed" field. It's identical to ExplanationCompletedEQ.
func ExplanationCompleted(v bool) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldExplanationCompleted, v))
}

// FlashcardCompleted applies equality check predicate on the "flashcard_completed" field. It's identical to FlashcardCompletedEQ.
func FlashcardCompleted(v bool) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldFlashcardCompleted, v))
}

// QuizCompleted applies equality check predicate on the "quiz_completed" field. It's identical to QuizCompletedEQ.
func QuizCompleted(v bool) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldQuizCompleted, v))
}

// ExplanationCompletedAt applies equality check predicate on the "explanation_completed_at" field. It's identical to ExplanationCompletedAtEQ.
func ExplanationCompletedAt(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldExplanationCompletedAt, v))
}

// FlashcardCompletedAt applies equality check predicate on the "flashcard_completed_at" field. It's identical to FlashcardCompletedAtEQ.
func FlashcardCompletedAt(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldFlashcardCompletedAt, v))
}

// QuizCompletedAt applies equality check predicate on the "quiz_completed_at" field. It's identical to QuizCompletedAtEQ.
func QuizCompletedAt(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldQuizCompletedAt, v))
}

// LatestScore applies equality check predicate on the "latest_score" field. It's identical to LatestScoreEQ.
func LatestScore(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldLatestScore, v))
}

// BestScore applies equality check predicate on the "best_score" field. It's identical to BestScoreEQ.
func BestScore(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldBestScore, v))
}

// AverageScore applies equality check predicate on the "average_score" field. It's identical to AverageScoreEQ.
func AverageScore(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldAverageScore, v))
}

// TotalTestsTaken applies equality check predicate on the "total_tests_taken" field. It's identical to TotalTestsTakenEQ.
func TotalTestsTaken(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTotalTestsTaken, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldUserID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldContainsFold(FieldTopicID, v))
}

// ExplanationCompletedEQ applies the EQ predicate on the "explanation_completed" field.
func ExplanationCompletedEQ(v bool) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldExplanationCompleted, v))
}

// ExplanationCompletedNEQ applies the NEQ predicate on the "explanation_completed" field.
func ExplanationCompletedNEQ(v bool) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldExplanationCompleted, v))
}

// FlashcardCompletedEQ applies the EQ predicate on the "flashcard_completed" field.
func FlashcardCompletedEQ(v bool) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldFlashcardCompleted, v))
}

// FlashcardCompletedNEQ applies the NEQ predicate on the "flashcard_completed" field.
func FlashcardCompletedNEQ(v bool) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldFlashcardCompleted, v))
}

// QuizCompletedEQ applies the EQ predicate on the "quiz_completed" field.
func QuizCompletedEQ(v bool) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldQuizCompleted, v))
}

// QuizCompletedNEQ applies the NEQ predicate on the "quiz_completed" field.
func QuizCompletedNEQ(v bool) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldQuizCompleted, v))
}

// ExplanationCompletedAtEQ applies the EQ predicate on the "explanation_completed_at" field.
func ExplanationCompletedAtEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldExplanationCompletedAt, v))
}

// ExplanationCompletedAtNEQ applies the NEQ predicate on the "explanation_completed_at" field.
func ExplanationCompletedAtNEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldExplanationCompletedAt, v))
}

// ExplanationCompletedAtIn applies the In predicate on the "explanation_completed_at" field.
func ExplanationCompletedAtIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldExplanationCompletedAt, vs...))
}

// ExplanationCompletedAtNotIn applies the NotIn predicate on the "explanation_completed_at" field.
func ExplanationCompletedAtNotIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldExplanationCompletedAt, vs...))
}

// ExplanationCompletedAtGT applies the GT predicate on the "explanation_completed_at" field.
func ExplanationCompletedAtGT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldExplanationCompletedAt, v))
}

// ExplanationCompletedAtGTE applies the GTE predicate on the "explanation_completed_at" field.
func ExplanationCompletedAtGTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldExplanationCompletedAt, v))
}

// ExplanationCompletedAtLT applies the LT predicate on the "explanation_completed_at" field.
func ExplanationCompletedAtLT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldExplanationCompletedAt, v))
}

// ExplanationCompletedAtLTE applies the LTE predicate on the "explanation_completed_at" field.
func ExplanationCompletedAtLTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldExplanationCompletedAt, v))
}

// ExplanationCompletedAtIsNil applies the IsNil predicate on the "explanation_completed_at" field.
func ExplanationCompletedAtIsNil() predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIsNull(FieldExplanationCompletedAt))
}

// ExplanationCompletedAtNotNil applies the NotNil predicate on the "explanation_completed_at" field.
func ExplanationCompletedAtNotNil() predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotNull(FieldExplanationCompletedAt))
}

// FlashcardCompletedAtEQ applies the EQ predicate on the "flashcard_completed_at" field.
func FlashcardCompletedAtEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldFlashcardCompletedAt, v))
}

// FlashcardCompletedAtNEQ applies the NEQ predicate on the "flashcard_completed_at" field.
func FlashcardCompletedAtNEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldFlashcardCompletedAt, v))
}

// FlashcardCompletedAtIn applies the In predicate on the "flashcard_completed_at" field.
func FlashcardCompletedAtIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldFlashcardCompletedAt, vs...))
}

// FlashcardCompletedAtNotIn applies the NotIn predicate on the "flashcard_completed_at" field.
func FlashcardCompletedAtNotIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldFlashcardCompletedAt, vs...))
}

// FlashcardCompletedAtGT applies the GT predicate on the "flashcard_completed_at" field.
func FlashcardCompletedAtGT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldFlashcardCompletedAt, v))
}

// FlashcardCompletedAtGTE applies the GTE predicate on the "flashcard_completed_at" field.
func FlashcardCompletedAtGTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldFlashcardCompletedAt, v))
}

// FlashcardCompletedAtLT applies the LT predicate on the "flashcard_completed_at" field.
func FlashcardCompletedAtLT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldFlashcardCompletedAt, v))
}

// FlashcardCompletedAtLTE applies the LTE predicate on the "flashcard_completed_at" field.
func FlashcardCompletedAtLTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldFlashcardCompletedAt, v))
}

// FlashcardCompletedAtIsNil applies the IsNil predicate on the "flashcard_completed_at" field.
func FlashcardCompletedAtIsNil() predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIsNull(FieldFlashcardCompletedAt))
}

// FlashcardCompletedAtNotNil applies the NotNil predicate on the "flashcard_completed_at" field.
func FlashcardCompletedAtNotNil() predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotNull(FieldFlashcardCompletedAt))
}

// QuizCompletedAtEQ applies the EQ predicate on the "quiz_completed_at" field.
func QuizCompletedAtEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldQuizCompletedAt, v))
}

// QuizCompletedAtNEQ applies the NEQ predicate on the "quiz_completed_at" field.
func QuizCompletedAtNEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldQuizCompletedAt, v))
}

// QuizCompletedAtIn applies the In predicate on the "quiz_completed_at" field.
func QuizCompletedAtIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldQuizCompletedAt, vs...))
}

// QuizCompletedAtNotIn applies the NotIn predicate on the "quiz_completed_at" field.
func QuizCompletedAtNotIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldQuizCompletedAt, vs...))
}

// QuizCompletedAtGT applies the GT predicate on the "quiz_completed_at" field.
func QuizCompletedAtGT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldQuizCompletedAt, v))
}

// QuizCompletedAtGTE applies the GTE predicate on the "quiz_completed_at" field.
func QuizCompletedAtGTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldQuizCompletedAt, v))
}

// QuizCompletedAtLT applies the LT predicate on the "quiz_completed_at" field.
func QuizCompletedAtLT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldQuizCompletedAt, v))
}

// QuizCompletedAtLTE applies the LTE predicate on the "quiz_completed_at" field.
func QuizCompletedAtLTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldQuizCompletedAt, v))
}

// QuizCompletedAtIsNil applies the IsNil predicate on the "quiz_completed_at" field.
func QuizCompletedAtIsNil() predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIsNull(FieldQuizCompletedAt))
}

// QuizCompletedAtNotNil applies the NotNil predicate on the "quiz_completed_at" field.
func QuizCompletedAtNotNil() predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotNull(FieldQuizCompletedAt))
}

// LatestScoreEQ applies the EQ predicate on the "latest_score" field.
func LatestScoreEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldLatestScore, v))
}

// LatestScoreNEQ applies the NEQ predicate on the "latest_score" field.
func LatestScoreNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldLatestScore, v))
}

// LatestScoreIn applies the In predicate on the "latest_score" field.
func LatestScoreIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldLatestScore, vs...))
}

// LatestScoreNotIn applies the NotIn predicate on the "latest_score" field.
func LatestScoreNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldLatestScore, vs...))
}

// LatestScoreGT applies the GT predicate on the "latest_score" field.
func LatestScoreGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldLatestScore, v))
}

// LatestScoreGTE applies the GTE predicate on the "latest_score" field.
func LatestScoreGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldLatestScore, v))
}

// LatestScoreLT applies the LT predicate on the "latest_score" field.
func LatestScoreLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldLatestScore, v))
}

// LatestScoreLTE applies the LTE predicate on the "latest_score" field.
func LatestScoreLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldLatestScore, v))
}

// BestScoreEQ applies the EQ predicate on the "best_score" field.
func BestScoreEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldBestScore, v))
}

// BestScoreNEQ applies the NEQ predicate on the "best_score" field.
func BestScoreNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldBestScore, v))
}

// BestScoreIn applies the In predicate on the "best_score" field.
func BestScoreIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldBestScore, vs...))
}

// BestScoreNotIn applies the NotIn predicate on the "best_score" field.
func BestScoreNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldBestScore, vs...))
}

// BestScoreGT applies the GT predicate on the "best_score" field.
func BestScoreGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldBestScore, v))
}

// BestScoreGTE applies the GTE predicate on the "best_score" field.
func BestScoreGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldBestScore, v))
}

// BestScoreLT applies the LT predicate on the "best_score" field.
func BestScoreLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldBestScore, v))
}

// BestScoreLTE applies the LTE predicate on the "best_score" field.
func BestScoreLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldBestScore, v))
}

// AverageScoreEQ applies the EQ predicate on the "average_score" field.
func AverageScoreEQ(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldAverageScore, v))
}

// AverageScoreNEQ applies the NEQ predicate on the "average_score" field.
func AverageScoreNEQ(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldAverageScore, v))
}

// AverageScoreIn applies the In predicate on the "average_score" field.
func AverageScoreIn(vs ...float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldAverageScore, vs...))
}

// AverageScoreNotIn applies the NotIn predicate on the "average_score" field.
func AverageScoreNotIn(vs ...float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldAverageScore, vs...))
}

// AverageScoreGT applies the GT predicate on the "average_score" field.
func AverageScoreGT(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldAverageScore, v))
}

// AverageScoreGTE applies the GTE predicate on the "average_score" field.
func AverageScoreGTE(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldAverageScore, v))
}

// AverageScoreLT applies the LT predicate on the "average_score" field.
func AverageScoreLT(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldAverageScore, v))
}

// AverageScoreLTE applies the LTE predicate on the "average_score" field.
func AverageScoreLTE(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldAverageScore, v))
}

// TotalTestsTakenEQ applies the EQ predicate on the "total_tests_taken" field.
func TotalTestsTakenEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTotalTestsTaken, v))
}

// TotalTestsTakenNEQ applies the NEQ predicate on the "total_tests_taken" field.
func TotalTestsTakenNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldTotalTestsTaken, v))
}

// TotalTestsTakenIn applies the In predicate on the "total_tests_taken" field.
func TotalTestsTakenIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldTotalTestsTaken, vs...))
}

// TotalTestsTakenNotIn applies the NotIn predicate on the "total_tests_taken" field.
func TotalTestsTakenNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldTotalTestsTaken, vs...))
}

// TotalTestsTakenGT applies the GT predicate on the "total_tests_taken" field.
func TotalTestsTakenGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldTotalTestsTaken, v))
}

// TotalTestsTakenGTE applies the GTE predicate on the "total_tests_taken" field.
func TotalTestsTakenGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldTotalTestsTaken, v))
}

// TotalTestsTakenLT applies the LT predicate on the "total_tests_taken" field.
func TotalTestsTakenLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldTotalTestsTaken, v))
}

// TotalTestsTakenLTE applies the LTE predicate on the "total_tests_taken" field.
func TotalTestsTakenLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldTotalTestsTaken, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicProgress) predicate.TopicProgress {
	return predicate.TopicProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicProgress) predicate.TopicProgress {
	return predicate.TopicProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicProgress) predicate.TopicProgress {
	return predicate.TopicProgress(sql.NotPredicates(p))
}
