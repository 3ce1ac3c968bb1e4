package stats

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stubRepo struct {
	completed int
	avg       float64
	perfect   int
	dates     []string
}

func (s *stubRepo) CompletedTopicCount(_ context.Context, _ uuid.UUID) (int, error) {
	return s.completed, nil
}

func (s *stubRepo) QuizScoreStats(_ context.Context, _ uuid.UUID) (float64, int, error) {
	return s.avg, s.perfect, nil
}

func (s *stubRepo) StudyDates(_ context.Context, _ uuid.UUID) ([]string, error) {
	return s.dates, nil
}

type recordingSessionLog struct {
	dates     []string
	durations []int
}

func (l *recordingSessionLog) AppendSession(_ context.Context, _, _ uuid.UUID, date string, durationSeconds int) error {
	l.dates = append(l.dates, date)
	l.durations = append(l.durations, durationSeconds)
	return nil
}

func TestServiceStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := &stubRepo{
		completed: 4,
		avg:       87.5,
		perfect:   2,
		dates: []string{
			now.Format(DateLayout),
			now.AddDate(0, 0, -1).Format(DateLayout),
		},
	}
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return now }

	got, err := svc.Stats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CompletedTopics != 4 {
		t.Errorf("got %d completed topics, want 4", got.CompletedTopics)
	}
	if got.AvgTestScore != 87.5 {
		t.Errorf("got average %v, want 87.5", got.AvgTestScore)
	}
	if got.PerfectScoreCount != 2 {
		t.Errorf("got %d perfect scores, want 2", got.PerfectScoreCount)
	}
	if got.TotalStudyDays != 2 {
		t.Errorf("got streak %d, want 2", got.TotalStudyDays)
	}
}

func TestServiceStats_NoHistory(t *testing.T) {
	svc := NewService(&stubRepo{}, nil)

	got, err := svc.Stats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("a user with no history must yield the zero snapshot: %v", err)
	}
	if got.TotalStudyDays != 0 || got.CompletedTopics != 0 || got.AvgTestScore != 0 || got.PerfectScoreCount != 0 {
		t.Errorf("got %+v, want zero snapshot", got)
	}
}

func TestRecordSession(t *testing.T) {
	now := time.Date(2026, 3, 10, 22, 30, 0, 0, time.UTC)
	log := &recordingSessionLog{}
	svc := NewService(&stubRepo{}, log)
	svc.now = func() time.Time { return now }

	if err := svc.RecordSession(context.Background(), uuid.New(), 1800); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(log.dates) != 1 {
		t.Fatalf("got %d sessions, want 1", len(log.dates))
	}
	if log.dates[0] != "2026-03-10" {
		t.Errorf("got session date %q, want 2026-03-10", log.dates[0])
	}
	if log.durations[0] != 1800 {
		t.Errorf("got duration %d, want 1800", log.durations[0])
	}
}

func TestRecordSession_NilLog(t *testing.T) {
	svc := NewService(&stubRepo{}, nil)
	if err := svc.RecordSession(context.Background(), uuid.New(), 60); err != nil {
		t.Errorf("nil session log must be a no-op, got %v", err)
	}
}
