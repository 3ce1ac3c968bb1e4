// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/benkyo/ent/quizresult"
	"github.com/google/uuid"
)

// QuizResult is the model entity for the QuizResult schema.
type QuizResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizresult.FieldID, quizresult.FieldSequence, quizresult.FieldScore, quizresult.FieldTotalQuestions, quizresult.FieldCorrectAnswers:
			values[i] = new(sql.NullInt64)
		case quizresult.FieldTopicID:
			values[i] = new(sql.NullString)
		case quizresult.FieldTimestamp:
			values[i] = new(sql.NullTime)
		case quizresult.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizResult fields.
func (qr *QuizResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			qr.ID = int(value.Int64)
		case quizresult.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				qr.Sequence = value.Int64
			}
		case quizresult.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				qr.Timestamp = value.Time
			}
		case quizresult.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				qr.UserID = *value
			}
		case quizresult.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				qr.TopicID = value.String
			}
		case quizresult.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				qr.Score = int(value.Int64)
			}
		case quizresult.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				qr.TotalQuestions = int(value.Int64)
			}
		case quizresult.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				qr.CorrectAnswers = int(value.Int64)
			}
		default:
			qr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizResult.
// This includes values selected through modifiers, order, etc.
func (qr *QuizResult) Value(name string) (ent.Value, error) {
	return qr.selectValues.Get(name)
}

// Update returns a builder for updating this QuizResult.
// Note that you need to call QuizResult.Unwrap() before calling this method if this QuizResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (qr *QuizResult) Update() *QuizResultUpdateOne {
	return NewQuizResultClient(qr.config).UpdateOne(qr)
}

// Unwrap unwraps the QuizResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (qr *QuizResult) Unwrap() *QuizResult {
	_tx, ok := qr.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizResult is not a transactional entity")
	}
	qr.config.driver = _tx.drv
	return qr
}

// String implements the fmt.Stringer.
func (qr *QuizResult) String() string {
	var builder strings.Builder
	builder.WriteString("QuizResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", qr.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", qr.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(qr.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", qr.UserID))
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(qr.TopicID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", qr.Score))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", qr.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", qr.CorrectAnswers))
	builder.WriteByte(')')
	return builder.String()
}

// QuizResults is a parsable slice of QuizResult.
type QuizResults []*QuizResult
