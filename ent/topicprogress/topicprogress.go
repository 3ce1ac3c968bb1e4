// Code generated by ent, DO NOT EDIT.

package topicprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topicprogress type in the database.
	Label = "topic_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldExplanationCompleted holds the string denoting the explanation_completed field in the database.
	FieldExplanationCompleted = "explanation_completed"
	// FieldFlashcardCompleted holds the string denoting the flashcard_completed field in the database.
	FieldFlashcardCompleted = "flashcard_completed"
	// FieldQuizCompleted holds the string denoting the quiz_completed field in the database.
	FieldQuizCompleted = "quiz_completed"
	// FieldExplanationCompletedAt holds the string denoting the explanation_completed_at field in the database.
	FieldExplanationCompletedAt = "explanation_completed_at"
	// FieldFlashcardCompletedAt holds the string denoting the flashcard_completed_at field in the database.
	FieldFlashcardCompletedAt = "flashcard_completed_at"
	// FieldQuizCompletedAt holds the string denoting the quiz_completed_at field in the database.
	FieldQuizCompletedAt = "quiz_completed_at"
	// FieldLatestScore holds the string denoting the latest_score field in the database.
	FieldLatestScore = "latest_score"
	// FieldBestScore holds the string denoting the best_score field in the database.
	FieldBestScore = "best_score"
	// FieldAverageScore holds the string denoting the average_score field in the database.
	FieldAverageScore = "average_score"
	// FieldTotalTestsTaken holds the string denoting the total_tests_taken field in the database.
	FieldTotalTestsTaken = "total_tests_taken"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the topicprogress in the database.
	Table = "topic_progresses"
)

// Columns holds all SQL columns for topicprogress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTopicID,
	FieldExplanationCompleted,
	FieldFlashcardCompleted,
	FieldQuizCompleted,
	FieldExplanationCompletedAt,
	FieldFlashcardCompletedAt,
	FieldQuizCompletedAt,
	FieldLatestScore,
	FieldBestScore,
	FieldAverageScore,
	FieldTotalTestsTaken,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// DefaultExplanationCompleted holds the default value on creation for the "explanation_completed" field.
	DefaultExplanationCompleted bool
	// DefaultFlashcardCompleted holds the default value on creation for the "flashcard_completed" field.
	DefaultFlashcardCompleted bool
	// DefaultQuizCompleted holds the default value on creation for the "quiz_completed" field.
	DefaultQuizCompleted bool
	// DefaultLatestScore holds the default value on creation for the "latest_score" field.
	DefaultLatestScore int
	// DefaultBestScore holds the default value on creation for the "best_score" field.
	DefaultBestScore int
	// DefaultAverageScore holds the default value on creation for the "average_score" field.
	DefaultAverageScore float64
	// DefaultTotalTestsTaken holds the default value on creation for the "total_tests_taken" field.
	DefaultTotalTestsTaken int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the TopicProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByExplanationCompleted orders the results by the explanation_completed field.
func ByExplanationCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanationCompleted, opts...).ToFunc()
}

// ByFlashcardCompleted orders the results by the flashcard_completed field.
func ByFlashcardCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlashcardCompleted, opts...).ToFunc()
}

// ByQuizCompleted orders the results by the quiz_completed field.
func ByQuizCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizCompleted, opts...).ToFunc()
}

// ByExplanationCompletedAt orders the results by the explanation_completed_at field.
func ByExplanationCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanationCompletedAt, opts...).ToFunc()
}

// ByFlashcardCompletedAt orders the results by the flashcard_completed_at field.
func ByFlashcardCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlashcardCompletedAt, opts...).ToFunc()
}

// ByQuizCompletedAt orders the results by the quiz_completed_at field.
func ByQuizCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizCompletedAt, opts...).ToFunc()
}

// ByLatestScore orders the results by the latest_score field.
func ByLatestScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestScore, opts...).ToFunc()
}

// ByBestScore orders the results by the best_score field.
func ByBestScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestScore, opts...).ToFunc()
}

// ByAverageScore orders the results by the average_score field.
func ByAverageScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageScore, opts...).ToFunc()
}

// ByTotalTestsTaken orders the results by the total_tests_taken field.
func ByTotalTestsTaken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTestsTaken, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
