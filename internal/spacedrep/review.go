package spacedrep

import (
	"time"

	"github.com/google/uuid"
)

// Review is one append-only flashcard review record. Prior records are never
// mutated; only the most recent record per (user, flashcard) is authoritative
// for scheduling.
type Review struct {
	UserID         uuid.UUID
	TopicID        string
	FlashcardID    string
	Confidence     Confidence
	EasinessFactor float64
	IntervalDays   int
	NextReviewDate time.Time
	ReviewedAt     time.Time
}

// IsDue reports whether the flashcard is due at or past its next review date.
func (r *Review) IsDue(now time.Time) bool {
	return !now.Before(r.NextReviewDate)
}

// DaysUntilReview returns days until the next review, 0 if already due.
func (r *Review) DaysUntilReview(now time.Time) int {
	if r.IsDue(now) {
		return 0
	}
	return int(r.NextReviewDate.Sub(now).Hours()/24) + 1
}
