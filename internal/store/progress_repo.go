package store

import (
	"context"
	"fmt"

	"github.com/abhisek/benkyo/ent"
	"github.com/abhisek/benkyo/ent/topicprogress"
	"github.com/abhisek/benkyo/internal/progress"
	"github.com/google/uuid"
)

// ProgressRepo implements progress.Repo using the ent client.
type ProgressRepo struct {
	client *ent.Client
}

func (r *ProgressRepo) Get(ctx context.Context, userID uuid.UUID, topicID string) (*progress.Progress, error) {
	row, err := r.client.TopicProgress.Query().
		Where(topicprogress.UserID(userID), topicprogress.TopicID(topicID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // no record yet is the valid zero state
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return fromEntProgress(row), nil
}

func (r *ProgressRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*progress.Progress, error) {
	rows, err := r.client.TopicProgress.Query().
		Where(topicprogress.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	records := make([]*progress.Progress, len(rows))
	for i, row := range rows {
		records[i] = fromEntProgress(row)
	}
	return records, nil
}

func (r *ProgressRepo) Upsert(ctx context.Context, p *progress.Progress) error {
	existing, err := r.client.TopicProgress.Query().
		Where(topicprogress.UserID(p.UserID), topicprogress.TopicID(p.TopicID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query progress for upsert: %w", err)
	}

	if ent.IsNotFound(err) {
		_, err = r.client.TopicProgress.Create().
			SetUserID(p.UserID).
			SetTopicID(p.TopicID).
			SetExplanationCompleted(p.ExplanationCompleted).
			SetFlashcardCompleted(p.FlashcardCompleted).
			SetQuizCompleted(p.QuizCompleted).
			SetNillableExplanationCompletedAt(p.ExplanationCompletedAt).
			SetNillableFlashcardCompletedAt(p.FlashcardCompletedAt).
			SetNillableQuizCompletedAt(p.QuizCompletedAt).
			SetLatestScore(p.LatestScore).
			SetBestScore(p.BestScore).
			SetAverageScore(p.AverageScore).
			SetTotalTestsTaken(p.TotalTestsTaken).
			SetCreatedAt(p.CreatedAt).
			SetUpdatedAt(p.UpdatedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetExplanationCompleted(p.ExplanationCompleted).
		SetFlashcardCompleted(p.FlashcardCompleted).
		SetQuizCompleted(p.QuizCompleted).
		SetNillableExplanationCompletedAt(p.ExplanationCompletedAt).
		SetNillableFlashcardCompletedAt(p.FlashcardCompletedAt).
		SetNillableQuizCompletedAt(p.QuizCompletedAt).
		SetLatestScore(p.LatestScore).
		SetBestScore(p.BestScore).
		SetAverageScore(p.AverageScore).
		SetTotalTestsTaken(p.TotalTestsTaken).
		SetUpdatedAt(p.UpdatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

func fromEntProgress(row *ent.TopicProgress) *progress.Progress {
	return &progress.Progress{
		UserID:                 row.UserID,
		TopicID:                row.TopicID,
		ExplanationCompleted:   row.ExplanationCompleted,
		FlashcardCompleted:     row.FlashcardCompleted,
		QuizCompleted:          row.QuizCompleted,
		ExplanationCompletedAt: row.ExplanationCompletedAt,
		FlashcardCompletedAt:   row.FlashcardCompletedAt,
		QuizCompletedAt:        row.QuizCompletedAt,
		LatestScore:            row.LatestScore,
		BestScore:              row.BestScore,
		AverageScore:           row.AverageScore,
		TotalTestsTaken:        row.TotalTestsTaken,
		CreatedAt:              row.CreatedAt,
		UpdatedAt:              row.UpdatedAt,
	}
}
