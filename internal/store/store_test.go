package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/benkyo/internal/progress"
	"github.com/abhisek/benkyo/internal/spacedrep"
	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressRepo_GetMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	p, err := repo.Get(context.Background(), uuid.New(), "geo-earth-overview")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Fatal("expected nil progress for untouched pair")
	}
}

func TestProgressRepo_UpsertRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	rec := &progress.Progress{
		UserID:                 userID,
		TopicID:                "geo-earth-overview",
		ExplanationCompleted:   true,
		ExplanationCompletedAt: &now,
		LatestScore:            80,
		BestScore:              80,
		AverageScore:           80,
		TotalTestsTaken:        1,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("create upsert: %v", err)
	}

	got, err := repo.Get(ctx, userID, "geo-earth-overview")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.BestScore != 80 || !got.ExplanationCompleted {
		t.Fatalf("round trip lost data: %+v", got)
	}
	if got.ExplanationCompletedAt == nil || !got.ExplanationCompletedAt.Equal(now) {
		t.Errorf("got completion timestamp %v, want %v", got.ExplanationCompletedAt, now)
	}

	// Second upsert updates in place; still one row.
	rec.BestScore = 95
	rec.TotalTestsTaken = 2
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("update upsert: %v", err)
	}
	rows, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows after re-upsert, want 1", len(rows))
	}
	if rows[0].BestScore != 95 {
		t.Errorf("got best %d after update, want 95", rows[0].BestScore)
	}
}

func TestReviewLog_AppendAndLatest(t *testing.T) {
	s := openTestStore(t)
	log := s.ReviewLog()
	ctx := context.Background()
	userID := uuid.New()
	base := time.Now().UTC().Truncate(time.Second)

	appendReview := func(cardID string, conf spacedrep.Confidence, days int, at time.Time) {
		t.Helper()
		err := log.Append(ctx, &spacedrep.Review{
			UserID:         userID,
			TopicID:        "geo-earth-overview",
			FlashcardID:    cardID,
			Confidence:     conf,
			EasinessFactor: 2.5,
			IntervalDays:   days,
			NextReviewDate: at.AddDate(0, 0, days),
			ReviewedAt:     at,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	appendReview("card-1", spacedrep.ConfidenceUnknown, 1, base.Add(-2*time.Hour))
	appendReview("card-1", spacedrep.ConfidenceMastered, 7, base)
	appendReview("card-2", spacedrep.ConfidenceUnderstood, 3, base)

	latest, err := log.Latest(ctx, userID, "card-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.IntervalDays != 7 {
		t.Fatalf("got %+v, want the newer 7-day record", latest)
	}

	all, err := log.LatestByUser(ctx, userID)
	if err != nil {
		t.Fatalf("latest by user: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d cards, want 2", len(all))
	}
	for _, r := range all {
		if r.FlashcardID == "card-1" && r.IntervalDays != 7 {
			t.Errorf("stale record surfaced for card-1: %+v", r)
		}
	}

	// Unknown user and card: nil, not an error.
	latest, err = log.Latest(ctx, uuid.New(), "card-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest != nil {
		t.Error("expected nil for unknown user")
	}
}

func TestAwardStore_Idempotent(t *testing.T) {
	s := openTestStore(t)
	awards := s.AwardStore()
	ctx := context.Background()
	userID := uuid.New()

	awarded, err := awards.Award(ctx, userID, "week_streak")
	if err != nil {
		t.Fatalf("first award: %v", err)
	}
	if !awarded {
		t.Fatal("first award reported not awarded")
	}

	// Duplicate hits the unique index and is absorbed as a no-op.
	awarded, err = awards.Award(ctx, userID, "week_streak")
	if err != nil {
		t.Fatalf("duplicate award: %v", err)
	}
	if awarded {
		t.Fatal("duplicate award reported as new")
	}

	keys, err := awards.EarnedKeys(ctx, userID)
	if err != nil {
		t.Fatalf("earned keys: %v", err)
	}
	if len(keys) != 1 || !keys["week_streak"] {
		t.Errorf("got keys %v, want only week_streak", keys)
	}

	earned, err := awards.ListEarned(ctx, userID)
	if err != nil {
		t.Fatalf("list earned: %v", err)
	}
	if len(earned) != 1 {
		t.Errorf("got %d earned rows, want 1", len(earned))
	}

	// Another user is unaffected.
	keys, err = awards.EarnedKeys(ctx, uuid.New())
	if err != nil {
		t.Fatalf("earned keys: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("got %d keys for other user, want 0", len(keys))
	}
}

func TestStatsRepo(t *testing.T) {
	s := openTestStore(t)
	statsRepo := s.StatsRepo()
	progressRepo := s.ProgressRepo()
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	// One completed topic, one incomplete.
	completed := &progress.Progress{
		UserID: userID, TopicID: "geo-earth-overview",
		ExplanationCompleted: true, FlashcardCompleted: true, QuizCompleted: true,
		BestScore: 90, AverageScore: 90, TotalTestsTaken: 1,
		CreatedAt: now, UpdatedAt: now,
	}
	incomplete := &progress.Progress{
		UserID: userID, TopicID: "geo-maps-projections",
		ExplanationCompleted: true, FlashcardCompleted: true, QuizCompleted: true,
		BestScore: 60, AverageScore: 60, TotalTestsTaken: 1, // best below passing
		CreatedAt: now, UpdatedAt: now,
	}
	if err := progressRepo.Upsert(ctx, completed); err != nil {
		t.Fatal(err)
	}
	if err := progressRepo.Upsert(ctx, incomplete); err != nil {
		t.Fatal(err)
	}

	count, err := statsRepo.CompletedTopicCount(ctx, userID)
	if err != nil {
		t.Fatalf("completed count: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d completed topics, want 1", count)
	}

	// Quiz results: 100, 80 -> avg 90, one perfect.
	for _, score := range []int{100, 80} {
		err := statsRepo.AppendQuizResult(ctx, progress.QuizResult{
			UserID: userID, TopicID: "geo-earth-overview",
			Score: score, TotalQuestions: 10, CorrectAnswers: score / 10,
		})
		if err != nil {
			t.Fatalf("append quiz result: %v", err)
		}
	}
	avg, perfect, err := statsRepo.QuizScoreStats(ctx, userID)
	if err != nil {
		t.Fatalf("quiz score stats: %v", err)
	}
	if avg != 90 {
		t.Errorf("got average %v, want 90", avg)
	}
	if perfect != 1 {
		t.Errorf("got %d perfect scores, want 1", perfect)
	}

	// Two sessions on the same day collapse to one study date.
	for i := 0; i < 2; i++ {
		err := statsRepo.AppendSession(ctx, userID, uuid.New(), "2026-03-10", 600)
		if err != nil {
			t.Fatalf("append session: %v", err)
		}
	}
	if err := statsRepo.AppendSession(ctx, userID, uuid.New(), "2026-03-09", 600); err != nil {
		t.Fatalf("append session: %v", err)
	}
	dates, err := statsRepo.StudyDates(ctx, userID)
	if err != nil {
		t.Fatalf("study dates: %v", err)
	}
	if len(dates) != 2 {
		t.Fatalf("got %d study dates, want 2", len(dates))
	}
	if dates[0] != "2026-03-10" || dates[1] != "2026-03-09" {
		t.Errorf("got dates %v, want newest first", dates)
	}
}

func TestStatsRepo_EmptyUser(t *testing.T) {
	s := openTestStore(t)
	statsRepo := s.StatsRepo()
	ctx := context.Background()
	userID := uuid.New()

	avg, perfect, err := statsRepo.QuizScoreStats(ctx, userID)
	if err != nil {
		t.Fatalf("quiz score stats: %v", err)
	}
	if avg != 0 || perfect != 0 {
		t.Errorf("got (%v, %d), want (0, 0) for a user with no quizzes", avg, perfect)
	}

	count, err := statsRepo.CompletedTopicCount(ctx, userID)
	if err != nil {
		t.Fatalf("completed count: %v", err)
	}
	if count != 0 {
		t.Errorf("got %d completed topics, want 0", count)
	}
}
