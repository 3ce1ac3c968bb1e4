package store

import (
	"context"
	"fmt"

	"github.com/abhisek/benkyo/ent"
	"github.com/abhisek/benkyo/ent/quizresult"
	"github.com/abhisek/benkyo/ent/studysession"
	"github.com/abhisek/benkyo/ent/topicprogress"
	"github.com/abhisek/benkyo/internal/progress"
	"github.com/google/uuid"
)

// StatsRepo implements stats.Repo plus the quiz result and study session
// logs (progress.ResultLog, stats.SessionLog).
type StatsRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *StatsRepo) AppendQuizResult(ctx context.Context, res progress.QuizResult) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizResult.Create().
		SetSequence(seqNum).
		SetUserID(res.UserID).
		SetTopicID(res.TopicID).
		SetScore(res.Score).
		SetTotalQuestions(res.TotalQuestions).
		SetCorrectAnswers(res.CorrectAnswers).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

func (r *StatsRepo) AppendSession(ctx context.Context, userID, sessionID uuid.UUID, date string, durationSeconds int) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.StudySession.Create().
		SetSequence(seqNum).
		SetUserID(userID).
		SetSessionID(sessionID).
		SetSessionDate(date).
		SetDurationSeconds(durationSeconds).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save study session: %w", err)
	}
	return nil
}

func (r *StatsRepo) CompletedTopicCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := r.client.TopicProgress.Query().
		Where(
			topicprogress.UserID(userID),
			topicprogress.ExplanationCompleted(true),
			topicprogress.FlashcardCompleted(true),
			topicprogress.QuizCompleted(true),
			topicprogress.BestScoreGTE(progress.PassingScore),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count completed topics: %w", err)
	}
	return count, nil
}

func (r *StatsRepo) QuizScoreStats(ctx context.Context, userID uuid.UUID) (float64, int, error) {
	scores, err := r.client.QuizResult.Query().
		Where(quizresult.UserID(userID)).
		Select(quizresult.FieldScore).
		Ints(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query quiz scores: %w", err)
	}
	if len(scores) == 0 {
		return 0, 0, nil
	}

	sum, perfect := 0, 0
	for _, s := range scores {
		sum += s
		if s == 100 {
			perfect++
		}
	}
	return float64(sum) / float64(len(scores)), perfect, nil
}

func (r *StatsRepo) StudyDates(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := r.client.StudySession.Query().
		Where(studysession.UserID(userID)).
		Order(ent.Desc(studysession.FieldSessionDate)).
		Select(studysession.FieldSessionDate).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query study dates: %w", err)
	}

	// Collapse duplicate days; rows arrive newest first.
	var dates []string
	for _, d := range rows {
		if len(dates) > 0 && dates[len(dates)-1] == d {
			continue
		}
		dates = append(dates, d)
	}
	return dates, nil
}
