package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/benkyo/internal/achievements"
	"github.com/google/uuid"
)

// Repo is the narrow storage interface the stats service reads from.
type Repo interface {
	// CompletedTopicCount counts the user's fully completed topics.
	CompletedTopicCount(ctx context.Context, userID uuid.UUID) (int, error)

	// QuizScoreStats returns the mean score across all quiz submissions and
	// the number of submissions scoring exactly 100. (0, 0) with no error
	// when the user has never taken a quiz.
	QuizScoreStats(ctx context.Context, userID uuid.UUID) (avg float64, perfect int, err error)

	// StudyDates returns the user's distinct session days in DateLayout,
	// most recent first.
	StudyDates(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// SessionLog appends study session rows.
type SessionLog interface {
	AppendSession(ctx context.Context, userID, sessionID uuid.UUID, date string, durationSeconds int) error
}

// Service assembles the per-user aggregate snapshot the achievement engine
// evaluates against. It implements achievements.StatsSource.
type Service struct {
	repo     Repo
	sessions SessionLog // optional
	now      func() time.Time
}

// NewService creates a stats service. sessions may be nil.
func NewService(repo Repo, sessions SessionLog) *Service {
	return &Service{repo: repo, sessions: sessions, now: time.Now}
}

// Stats builds the current aggregate snapshot for one user. A user with no
// history gets the zero snapshot, not an error.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (achievements.Stats, error) {
	completed, err := s.repo.CompletedTopicCount(ctx, userID)
	if err != nil {
		return achievements.Stats{}, fmt.Errorf("completed topic count: %w", err)
	}

	avg, perfect, err := s.repo.QuizScoreStats(ctx, userID)
	if err != nil {
		return achievements.Stats{}, fmt.Errorf("quiz score stats: %w", err)
	}

	dates, err := s.repo.StudyDates(ctx, userID)
	if err != nil {
		return achievements.Stats{}, fmt.Errorf("study dates: %w", err)
	}

	return achievements.Stats{
		TotalStudyDays:    CurrentStreak(dates, s.now()),
		CompletedTopics:   completed,
		AvgTestScore:      avg,
		PerfectScoreCount: perfect,
	}, nil
}

// RecordSession appends one study sitting for today.
func (s *Service) RecordSession(ctx context.Context, userID uuid.UUID, durationSeconds int) error {
	if s.sessions == nil {
		return nil
	}
	date := s.now().Format(DateLayout)
	return s.sessions.AppendSession(ctx, userID, uuid.New(), date, durationSeconds)
}
