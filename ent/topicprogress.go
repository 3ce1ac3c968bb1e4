// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/benkyo/ent/topicprogress"
	"github.com/google/uuid"
)

// TopicProgress is the model entity for the TopicProgress schema.
type TopicProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// ExplanationCompleted holds the value of the "explanation_completed" field.
	ExplanationCompleted bool `json:"explanation_completed,omitempty"`
	// FlashcardCompleted holds the value of the "flashcard_completed" field.
	FlashcardCompleted bool `json:"flashcard_completed,omitempty"`
	// QuizCompleted holds the value of the "quiz_completed" field.
	QuizCompleted bool `json:"quiz_completed,omitempty"`
	// ExplanationCompletedAt holds the value of the "explanation_completed_at" field.
	ExplanationCompletedAt *time.Time `json:"explanation_completed_at,omitempty"`
	// FlashcardCompletedAt holds the value of the "flashcard_completed_at" field.
	FlashcardCompletedAt *time.Time `json:"flashcard_completed_at,omitempty"`
	// QuizCompletedAt holds the value of the "quiz_completed_at" field.
	QuizCompletedAt *time.Time `json:"quiz_completed_at,omitempty"`
	// LatestScore holds the value of the "latest_score" field.
	LatestScore int `json:"latest_score,omitempty"`
	// BestScore holds the value of the "best_score" field.
	BestScore int `json:"best_score,omitempty"`
	// AverageScore holds the value of the "average_score" field.
	AverageScore float64 `json:"average_score,omitempty"`
	// TotalTestsTaken holds the value of the "total_tests_taken" field.
	TotalTestsTaken int `json:"total_tests_taken,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicprogress.FieldExplanationCompleted, topicprogress.FieldFlashcardCompleted, topicprogress.FieldQuizCompleted:
			values[i] = new(sql.NullBool)
		case topicprogress.FieldAverageScore:
			values[i] = new(sql.NullFloat64)
		case topicprogress.FieldID, topicprogress.FieldLatestScore, topicprogress.FieldBestScore, topicprogress.FieldTotalTestsTaken:
			values[i] = new(sql.NullInt64)
		case topicprogress.FieldTopicID:
			values[i] = new(sql.NullString)
		case topicprogress.FieldExplanationCompletedAt, topicprogress.FieldFlashcardCompletedAt, topicprogress.FieldQuizCompletedAt, topicprogress.FieldCreatedAt, topicprogress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case topicprogress.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicProgress fields.
func (tp *TopicProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			tp.ID = int(value.Int64)
		case topicprogress.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				tp.UserID = *value
			}
		case topicprogress.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				tp.TopicID = value.String
			}
		case topicprogress.FieldExplanationCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field explanation_completed", values[i])
			} else if value.Valid {
				tp.ExplanationCompleted = value.Bool
			}
		case topicprogress.FieldFlashcardCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field flashcard_completed", values[i])
			} else if value.Valid {
				tp.FlashcardCompleted = value.Bool
			}
		case topicprogress.FieldQuizCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_completed", values[i])
			} else if value.Valid {
				tp.QuizCompleted = value.Bool
			}
		case topicprogress.FieldExplanationCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field explanation_completed_at", values[i])
			} else if value.Valid {
				tp.ExplanationCompletedAt = new(time.Time)
				*tp.ExplanationCompletedAt = value.Time
			}
		case topicprogress.FieldFlashcardCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field flashcard_completed_at", values[i])
			} else if value.Valid {
				tp.FlashcardCompletedAt = new(time.Time)
				*tp.FlashcardCompletedAt = value.Time
			}
		case topicprogress.FieldQuizCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_completed_at", values[i])
			} else if value.Valid {
				tp.QuizCompletedAt = new(time.Time)
				*tp.QuizCompletedAt = value.Time
			}
		case topicprogress.FieldLatestScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latest_score", values[i])
			} else if value.Valid {
				tp.LatestScore = int(value.Int64)
			}
		case topicprogress.FieldBestScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field best_score", values[i])
			} else if value.Valid {
				tp.BestScore = int(value.Int64)
			}
		case topicprogress.FieldAverageScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_score", values[i])
			} else if value.Valid {
				tp.AverageScore = value.Float64
			}
		case topicprogress.FieldTotalTestsTaken:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tests_taken", values[i])
			} else if value.Valid {
				tp.TotalTestsTaken = int(value.Int64)
			}
		case topicprogress.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				tp.CreatedAt = value.Time
			}
		case topicprogress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				tp.UpdatedAt = value.Time
			}
		default:
			tp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicProgress.
// This includes values selected through modifiers, order, etc.
func (tp *TopicProgress) Value(name string) (ent.Value, error) {
	return tp.selectValues.Get(name)
}

// Update returns a builder for updating this TopicProgress.
// Note that you need to call TopicProgress.Unwrap() before calling this method if this TopicProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (tp *TopicProgress) Update() *TopicProgressUpdateOne {
	return NewTopicProgressClient(tp.config).UpdateOne(tp)
}

// Unwrap unwraps the TopicProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (tp *TopicProgress) Unwrap() *TopicProgress {
	_tx, ok := tp.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicProgress is not a transactional entity")
	}
	tp.config.driver = _tx.drv
	return tp
}

// String implements the fmt.Stringer.
func (tp *TopicProgress) String() string {
	var builder strings.Builder
	builder.WriteString("TopicProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", tp.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", tp.UserID))
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(tp.TopicID)
	builder.WriteString(", ")
	builder.WriteString("explanation_completed=")
	builder.WriteString(fmt.Sprintf("%v", tp.ExplanationCompleted))
	builder.WriteString(", ")
	builder.WriteString("flashcard_completed=")
	builder.WriteString(fmt.Sprintf("%v", tp.FlashcardCompleted))
	builder.WriteString(", ")
	builder.WriteString("quiz_completed=")
	builder.WriteString(fmt.Sprintf("%v", tp.QuizCompleted))
	builder.WriteString(", ")
	if v := tp.ExplanationCompletedAt; v != nil {
		builder.WriteString("explanation_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := tp.FlashcardCompletedAt; v != nil {
		builder.WriteString("flashcard_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := tp.QuizCompletedAt; v != nil {
		builder.WriteString("quiz_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("latest_score=")
	builder.WriteString(fmt.Sprintf("%v", tp.LatestScore))
	builder.WriteString(", ")
	builder.WriteString("best_score=")
	builder.WriteString(fmt.Sprintf("%v", tp.BestScore))
	builder.WriteString(", ")
	builder.WriteString("average_score=")
	builder.WriteString(fmt.Sprintf("%v", tp.AverageScore))
	builder.WriteString(", ")
	builder.WriteString("total_tests_taken=")
	builder.WriteString(fmt.Sprintf("%v", tp.TotalTestsTaken))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(tp.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(tp.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TopicProgresses is a parsable slice of TopicProgress.
type TopicProgresses []*TopicProgress
