package spacedrep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// memoryReviewLog is an in-memory ReviewLog for tests.
type memoryReviewLog struct {
	reviews []*Review
}

func (m *memoryReviewLog) Append(_ context.Context, r *Review) error {
	m.reviews = append(m.reviews, r)
	return nil
}

func (m *memoryReviewLog) Latest(_ context.Context, userID uuid.UUID, flashcardID string) (*Review, error) {
	for i := len(m.reviews) - 1; i >= 0; i-- {
		r := m.reviews[i]
		if r.UserID == userID && r.FlashcardID == flashcardID {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memoryReviewLog) LatestByUser(_ context.Context, userID uuid.UUID) ([]*Review, error) {
	seen := make(map[string]bool)
	var out []*Review
	for i := len(m.reviews) - 1; i >= 0; i-- {
		r := m.reviews[i]
		if r.UserID != userID || seen[r.FlashcardID] {
			continue
		}
		seen[r.FlashcardID] = true
		out = append(out, r)
	}
	return out, nil
}

func fixedTime() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func TestRecordReview(t *testing.T) {
	log := &memoryReviewLog{}
	s := NewScheduler(log)
	s.now = fixedTime
	userID := uuid.New()

	rev, err := s.RecordReview(context.Background(), userID, "geo-earth-overview", "card-1", ConfidenceUnderstood)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rev.IntervalDays != 3 {
		t.Errorf("got interval %d, want 3", rev.IntervalDays)
	}
	if rev.EasinessFactor != 2.5 {
		t.Errorf("got easiness %v, want 2.5", rev.EasinessFactor)
	}
	want := fixedTime().AddDate(0, 0, 3)
	if !rev.NextReviewDate.Equal(want) {
		t.Errorf("got next review %v, want %v", rev.NextReviewDate, want)
	}
	if len(log.reviews) != 1 {
		t.Fatalf("got %d log entries, want 1", len(log.reviews))
	}
}

func TestRecordReview_InvalidConfidence(t *testing.T) {
	log := &memoryReviewLog{}
	s := NewScheduler(log)
	userID := uuid.New()

	_, err := s.RecordReview(context.Background(), userID, "geo-earth-overview", "card-1", 5)
	if err == nil {
		t.Fatal("expected error for confidence 5, got nil")
	}
	var inv *ErrInvalidConfidence
	if !errors.As(err, &inv) {
		t.Fatalf("got %T, want *ErrInvalidConfidence", err)
	}
	// Rejected before write: the log must stay empty.
	if len(log.reviews) != 0 {
		t.Errorf("got %d log entries after rejected review, want 0", len(log.reviews))
	}
}

func TestDueCards(t *testing.T) {
	log := &memoryReviewLog{}
	s := NewScheduler(log)
	s.now = fixedTime
	userID := uuid.New()
	ctx := context.Background()

	// Mastered yesterday: due in 7 days, not today.
	if _, err := s.RecordReview(ctx, userID, "geo-earth-overview", "card-future", ConfidenceMastered); err != nil {
		t.Fatal(err)
	}
	// Unknown a week ago: overdue.
	s.now = func() time.Time { return fixedTime().AddDate(0, 0, -7) }
	if _, err := s.RecordReview(ctx, userID, "geo-earth-overview", "card-overdue", ConfidenceUnknown); err != nil {
		t.Fatal(err)
	}
	s.now = fixedTime

	due, err := s.DueCards(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("got %d due cards, want 1", len(due))
	}
	if due[0].FlashcardID != "card-overdue" {
		t.Errorf("got due card %q, want %q", due[0].FlashcardID, "card-overdue")
	}
}

func TestDueCards_LatestRecordWins(t *testing.T) {
	log := &memoryReviewLog{}
	s := NewScheduler(log)
	userID := uuid.New()
	ctx := context.Background()

	// First review long ago would be overdue; the re-review supersedes it.
	s.now = func() time.Time { return fixedTime().AddDate(0, 0, -30) }
	if _, err := s.RecordReview(ctx, userID, "geo-earth-overview", "card-1", ConfidenceUnknown); err != nil {
		t.Fatal(err)
	}
	s.now = fixedTime
	if _, err := s.RecordReview(ctx, userID, "geo-earth-overview", "card-1", ConfidenceMastered); err != nil {
		t.Fatal(err)
	}

	due, err := s.DueCards(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("got %d due cards, want 0 after fresh review", len(due))
	}
}

func TestReviewIsDue(t *testing.T) {
	now := fixedTime()
	tests := []struct {
		name string
		next time.Time
		want bool
	}{
		{"past", now.AddDate(0, 0, -1), true},
		{"exactly now", now, true},
		{"future", now.AddDate(0, 0, 1), false},
	}
	for _, tt := range tests {
		r := &Review{NextReviewDate: tt.next}
		if got := r.IsDue(now); got != tt.want {
			t.Errorf("%s: IsDue = %v, want %v", tt.name, got, tt.want)
		}
	}
}
