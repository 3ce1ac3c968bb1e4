// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/benkyo/ent/flashcardreview"
	"github.com/google/uuid"
)

// FlashcardReview is the model entity for the FlashcardReview schema.
type FlashcardReview struct {
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
	// FlashcardID holds the value of the "flashcard_id" field.
	FlashcardID string `json:"flashcard_id,omitempty"`
	// ConfidenceLevel holds the value of the "confidence_level" field.
	ConfidenceLevel int `json:"confidence_level,omitempty"`
	// EasinessFactor holds the value of the "easiness_factor" field.
	EasinessFactor float64 `json:"easiness_factor,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// NextReviewDate holds the value of the "next_review_date" field.
	NextReviewDate time.Time `json:"next_review_date,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FlashcardReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flashcardreview.FieldEasinessFactor:
			values[i] = new(sql.NullFloat64)
		case flashcardreview.FieldID, flashcardreview.FieldSequence, flashcardreview.FieldConfidenceLevel, flashcardreview.FieldIntervalDays:
			values[i] = new(sql.NullInt64)
		case flashcardreview.FieldTopicID, flashcardreview.FieldFlashcardID:
			values[i] = new(sql.NullString)
		case flashcardreview.FieldTimestamp, flashcardreview.FieldNextReviewDate:
			values[i] = new(sql.NullTime)
		case flashcardreview.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FlashcardReview fields.
func (fr *FlashcardReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flashcardreview.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			fr.ID = int(value.Int64)
		case flashcardreview.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				fr.Sequence = value.Int64
			}
		case flashcardreview.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				fr.Timestamp = value.Time
			}
		case flashcardreview.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				fr.UserID = *value
			}
		case flashcardreview.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				fr.TopicID = value.String
			}
		case flashcardreview.FieldFlashcardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flashcard_id", values[i])
			} else if value.Valid {
				fr.FlashcardID = value.String
			}
		case flashcardreview.FieldConfidenceLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_level", values[i])
			} else if value.Valid {
				fr.ConfidenceLevel = int(value.Int64)
			}
		case flashcardreview.FieldEasinessFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field easiness_factor", values[i])
			} else if value.Valid {
				fr.EasinessFactor = value.Float64
			}
		case flashcardreview.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				fr.IntervalDays = int(value.Int64)
			}
		case flashcardreview.FieldNextReviewDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_date", values[i])
			} else if value.Valid {
				fr.NextReviewDate = value.Time
			}
		default:
			fr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FlashcardReview.
// This includes values selected through modifiers, order, etc.
func (fr *FlashcardReview) Value(name string) (ent.Value, error) {
	return fr.selectValues.Get(name)
}

// Update returns a builder for updating this FlashcardReview.
// Note that you need to call FlashcardReview.Unwrap() before calling this method if this FlashcardReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (fr *FlashcardReview) Update() *FlashcardReviewUpdateOne {
	return NewFlashcardReviewClient(fr.config).UpdateOne(fr)
}

// Unwrap unwraps the FlashcardReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (fr *FlashcardReview) Unwrap() *FlashcardReview {
	_tx, ok := fr.config.driver.(*txDriver)
	if !ok {
		panic("ent: FlashcardReview is not a transactional entity")
	}
	fr.config.driver = _tx.drv
	return fr
}

// String implements the fmt.Stringer.
func (fr *FlashcardReview) String() string {
	var builder strings.Builder
	builder.WriteString("FlashcardReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", fr.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", fr.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(fr.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", fr.UserID))
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(fr.TopicID)
	builder.WriteString(", ")
	builder.WriteString("flashcard_id=")
	builder.WriteString(fr.FlashcardID)
	builder.WriteString(", ")
	builder.WriteString("confidence_level=")
	builder.WriteString(fmt.Sprintf("%v", fr.ConfidenceLevel))
	builder.WriteString(", ")
	builder.WriteString("easiness_factor=")
	builder.WriteString(fmt.Sprintf("%v", fr.EasinessFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", fr.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("next_review_date=")
	builder.WriteString(fr.NextReviewDate.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FlashcardReviews is a parsable slice of FlashcardReview.
type FlashcardReviews []*FlashcardReview
