// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/benkyo/ent/userachievement"
	"github.com/google/uuid"
)

// UserAchievement is the model entity for the UserAchievement schema.
type UserAchievement struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// AchievementKey holds the value of the "achievement_key" field.
	AchievementKey string `json:"achievement_key,omitempty"`
	// EarnedAt holds the value of the "earned_at" field.
	EarnedAt     time.Time `json:"earned_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserAchievement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userachievement.FieldID:
			values[i] = new(sql.NullInt64)
		case userachievement.FieldAchievementKey:
			values[i] = new(sql.NullString)
		case userachievement.FieldEarnedAt:
			values[i] = new(sql.NullTime)
		case userachievement.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserAchievement fields.
func (ua *UserAchievement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userachievement.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ua.ID = int(value.Int64)
		case userachievement.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				ua.UserID = *value
			}
		case userachievement.FieldAchievementKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field achievement_key", values[i])
			} else if value.Valid {
				ua.AchievementKey = value.String
			}
		case userachievement.FieldEarnedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field earned_at", values[i])
			} else if value.Valid {
				ua.EarnedAt = value.Time
			}
		default:
			ua.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserAchievement.
// This includes values selected through modifiers, order, etc.
func (ua *UserAchievement) Value(name string) (ent.Value, error) {
	return ua.selectValues.Get(name)
}

// Update returns a builder for updating this UserAchievement.
// Note that you need to call UserAchievement.Unwrap() before calling this method if this UserAchievement
// was returned from a transaction, and the transaction was committed or rolled back.
func (ua *UserAchievement) Update() *UserAchievementUpdateOne {
	return NewUserAchievementClient(ua.config).UpdateOne(ua)
}

// Unwrap unwraps the UserAchievement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ua *UserAchievement) Unwrap() *UserAchievement {
	_tx, ok := ua.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserAchievement is not a transactional entity")
	}
	ua.config.driver = _tx.drv
	return ua
}

// String implements the fmt.Stringer.
func (ua *UserAchievement) String() string {
	var builder strings.Builder
	builder.WriteString("UserAchievement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ua.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", ua.UserID))
	builder.WriteString(", ")
	builder.WriteString("achievement_key=")
	builder.WriteString(ua.AchievementKey)
	builder.WriteString(", ")
	builder.WriteString("earned_at=")
	builder.WriteString(ua.EarnedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserAchievements is a parsable slice of UserAchievement.
type UserAchievements []*UserAchievement
