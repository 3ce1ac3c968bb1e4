package achievements

import (
	"time"

	"github.com/google/uuid"
)

// Category identifies what kind of milestone an achievement rewards.
type Category string

const (
	CategoryStreak     Category = "streak"
	CategoryAccuracy   Category = "accuracy"
	CategoryCompletion Category = "completion"
	CategorySocial     Category = "social"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategoryStreak, CategoryAccuracy, CategoryCompletion, CategorySocial}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryStreak:
		return "Streak"
	case CategoryAccuracy:
		return "Accuracy"
	case CategoryCompletion:
		return "Completion"
	case CategorySocial:
		return "Social"
	default:
		return string(c)
	}
}

// Requirement is the threshold object attached to a definition. Fields not
// relevant to the category are simply absent; partially specified objects
// are tolerated, and an unset field evaluates to "not met", never an error.
type Requirement struct {
	Days     *int     `json:"days,omitempty"`      // streak: consecutive study days
	Score    *int     `json:"score,omitempty"`     // accuracy: exact score (100 = perfect)
	Count    *int     `json:"count,omitempty"`     // accuracy: how many times
	AvgScore *float64 `json:"avg_score,omitempty"` // accuracy: average test score
	Topics   *int     `json:"topics,omitempty"`    // completion: completed topics
	Friends  *int     `json:"friends,omitempty"`   // social: friend count
}

// Definition is one catalog entry: a badge and its earning condition.
type Definition struct {
	Key         string      `json:"key"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Category    Category    `json:"category"`
	Requirement Requirement `json:"requirement"`
}

// Earned marks one awarded achievement. Created exactly once per (user, key)
// and immutable thereafter; set membership is the sole earned state.
type Earned struct {
	UserID   uuid.UUID
	Key      string
	EarnedAt time.Time
}
