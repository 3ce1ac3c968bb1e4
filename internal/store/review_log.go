package store

import (
	"context"
	"fmt"

	"github.com/abhisek/benkyo/ent"
	"github.com/abhisek/benkyo/ent/flashcardreview"
	"github.com/abhisek/benkyo/internal/spacedrep"
	"github.com/google/uuid"
)

// ReviewLog implements spacedrep.ReviewLog. Rows are append-only and carry a
// global sequence number; the highest sequence per (user, flashcard) is the
// authoritative scheduling record.
type ReviewLog struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *ReviewLog) Append(ctx context.Context, rev *spacedrep.Review) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.FlashcardReview.Create().
		SetSequence(seqNum).
		SetTimestamp(rev.ReviewedAt).
		SetUserID(rev.UserID).
		SetTopicID(rev.TopicID).
		SetFlashcardID(rev.FlashcardID).
		SetConfidenceLevel(int(rev.Confidence)).
		SetEasinessFactor(rev.EasinessFactor).
		SetIntervalDays(rev.IntervalDays).
		SetNextReviewDate(rev.NextReviewDate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review: %w", err)
	}
	return nil
}

func (r *ReviewLog) Latest(ctx context.Context, userID uuid.UUID, flashcardID string) (*spacedrep.Review, error) {
	row, err := r.client.FlashcardReview.Query().
		Where(flashcardreview.UserID(userID), flashcardreview.FlashcardID(flashcardID)).
		Order(ent.Desc(flashcardreview.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest review: %w", err)
	}
	return fromEntReview(row), nil
}

func (r *ReviewLog) LatestByUser(ctx context.Context, userID uuid.UUID) ([]*spacedrep.Review, error) {
	rows, err := r.client.FlashcardReview.Query().
		Where(flashcardreview.UserID(userID)).
		Order(ent.Desc(flashcardreview.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}

	// Rows arrive newest first; keep the first one seen per flashcard.
	seen := make(map[string]bool)
	var latest []*spacedrep.Review
	for _, row := range rows {
		if seen[row.FlashcardID] {
			continue
		}
		seen[row.FlashcardID] = true
		latest = append(latest, fromEntReview(row))
	}
	return latest, nil
}

func fromEntReview(row *ent.FlashcardReview) *spacedrep.Review {
	return &spacedrep.Review{
		UserID:         row.UserID,
		TopicID:        row.TopicID,
		FlashcardID:    row.FlashcardID,
		Confidence:     spacedrep.Confidence(row.ConfidenceLevel),
		EasinessFactor: row.EasinessFactor,
		IntervalDays:   row.IntervalDays,
		NextReviewDate: row.NextReviewDate,
		ReviewedAt:     row.Timestamp,
	}
}
