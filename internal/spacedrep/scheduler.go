package spacedrep

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReviewLog is the narrow storage interface for the append-only review log.
// Writes for the same flashcard are ordered by review timestamp; readers of
// next_review_date must fetch the latest record, never cache an earlier one.
type ReviewLog interface {
	// Append stores a new review record.
	Append(ctx context.Context, r *Review) error

	// Latest returns the most recent record for one (user, flashcard) pair,
	// or nil if the card has never been reviewed.
	Latest(ctx context.Context, userID uuid.UUID, flashcardID string) (*Review, error)

	// LatestByUser returns the most recent record per flashcard for one user.
	LatestByUser(ctx context.Context, userID uuid.UUID) ([]*Review, error)
}

// Scheduler turns confidence ratings into scheduled reviews and appends them
// to the review log.
type Scheduler struct {
	log ReviewLog
	now func() time.Time
}

// NewScheduler creates a scheduler over the given review log.
func NewScheduler(log ReviewLog) *Scheduler {
	return &Scheduler{log: log, now: time.Now}
}

// RecordReview validates the confidence rating, computes the interval, and
// appends a new review record. An out-of-range rating is rejected before
// anything is written, so a failed call leaves no partial state.
func (s *Scheduler) RecordReview(ctx context.Context, userID uuid.UUID, topicID, flashcardID string, confidence Confidence) (*Review, error) {
	iv, err := Schedule(confidence)
	if err != nil {
		return nil, err
	}

	now := s.now()
	r := &Review{
		UserID:         userID,
		TopicID:        topicID,
		FlashcardID:    flashcardID,
		Confidence:     confidence,
		EasinessFactor: iv.Easiness,
		IntervalDays:   iv.Days,
		NextReviewDate: now.AddDate(0, 0, iv.Days),
		ReviewedAt:     now,
	}

	if err := s.log.Append(ctx, r); err != nil {
		return nil, fmt.Errorf("append review: %w", err)
	}
	return r, nil
}

// DueCards returns the flashcards due for review for one user, based on the
// latest record per card.
func (s *Scheduler) DueCards(ctx context.Context, userID uuid.UUID) ([]*Review, error) {
	latest, err := s.log.LatestByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("latest reviews: %w", err)
	}

	now := s.now()
	var due []*Review
	for _, r := range latest {
		if r.IsDue(now) {
			due = append(due, r)
		}
	}
	return due, nil
}
