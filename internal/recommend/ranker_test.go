package recommend

import (
	"testing"
	"time"

	"github.com/abhisek/benkyo/internal/progress"
	"github.com/abhisek/benkyo/internal/syllabus"
)

func testTopics(ids ...string) []syllabus.TopicRef {
	out := make([]syllabus.TopicRef, len(ids))
	for i, id := range ids {
		out[i] = syllabus.TopicRef{
			Topic:    syllabus.Topic{ID: id, Title: "Topic " + id},
			Category: "Geography",
			DocIndex: i,
		}
	}
	return out
}

func completedRecord(topicID string, avg float64, updatedAt time.Time) *progress.Progress {
	return &progress.Progress{
		TopicID:              topicID,
		ExplanationCompleted: true,
		FlashcardCompleted:   true,
		QuizCompleted:        true,
		BestScore:            95,
		AverageScore:         avg,
		TotalTestsTaken:      2,
		UpdatedAt:            updatedAt,
	}
}

func TestRank_UntouchedCurriculum(t *testing.T) {
	topics := testTopics("a", "b", "c", "d", "e")
	now := time.Now()

	recs := Rank(topics, nil, now, 10)
	if len(recs) != MaxNextToLearn {
		t.Fatalf("got %d recommendations, want %d", len(recs), MaxNextToLearn)
	}
	for i, want := range []string{"a", "b", "c"} {
		if recs[i].TopicID != want {
			t.Errorf("recs[%d] = %q, want %q (document order)", i, recs[i].TopicID, want)
		}
		if recs[i].Reason != ReasonNextToLearn {
			t.Errorf("recs[%d].Reason = %q, want %q", i, recs[i].Reason, ReasonNextToLearn)
		}
		if recs[i].Priority != 3 {
			t.Errorf("recs[%d].Priority = %d, want 3", i, recs[i].Priority)
		}
	}
}

func TestRank_WeakAreaText(t *testing.T) {
	topics := testTopics("a")
	now := time.Now()
	records := []*progress.Progress{
		{TopicID: "a", AverageScore: 65.4, TotalTestsTaken: 3, UpdatedAt: now},
	}

	recs := Rank(topics, records, now, 5)
	if len(recs) == 0 {
		t.Fatal("expected a weak area recommendation")
	}
	r := recs[0]
	if r.Reason != ReasonWeakArea {
		t.Fatalf("got reason %q, want %q", r.Reason, ReasonWeakArea)
	}
	if r.Priority != 5 {
		t.Errorf("got priority %d, want 5", r.Priority)
	}
	want := "Average score 65% (target: 70% or higher)"
	if r.ReasonText != want {
		t.Errorf("got text %q, want %q", r.ReasonText, want)
	}
}

func TestRank_StalenessBoundary(t *testing.T) {
	topics := testTopics("a")
	now := time.Now()

	tests := []struct {
		name     string
		daysAgo  int
		wantDue  bool
	}{
		{"six days is fresh", 6, false},
		{"seven days is stale", 7, true},
		{"eight days is stale", 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []*progress.Progress{
				completedRecord("a", 90, now.AddDate(0, 0, -tt.daysAgo)),
			}
			recs := Rank(topics, records, now, 5)

			found := false
			for _, r := range recs {
				if r.Reason == ReasonReviewNeeded {
					found = true
					if r.DaysStale != tt.daysAgo {
						t.Errorf("got DaysStale %d, want %d", r.DaysStale, tt.daysAgo)
					}
				}
			}
			if found != tt.wantDue {
				t.Errorf("review_needed emitted = %v, want %v", found, tt.wantDue)
			}
		})
	}
}

func TestRank_DeduplicatesKeepingHighestPriority(t *testing.T) {
	// A completed, stale topic with a weak average matches both the weak
	// area and review detectors; it must appear once, as weak_area.
	topics := testTopics("a", "b")
	now := time.Now()
	records := []*progress.Progress{
		completedRecord("a", 60, now.AddDate(0, 0, -10)),
	}

	recs := Rank(topics, records, now, 10)
	count := 0
	for _, r := range recs {
		if r.TopicID == "a" {
			count++
			if r.Reason != ReasonWeakArea {
				t.Errorf("got reason %q for duplicate topic, want %q", r.Reason, ReasonWeakArea)
			}
		}
	}
	if count != 1 {
		t.Errorf("topic appears %d times, want 1", count)
	}
}

func TestRank_NoDuplicateIDs(t *testing.T) {
	topics := testTopics("a", "b", "c", "d")
	now := time.Now()
	records := []*progress.Progress{
		completedRecord("a", 55, now.AddDate(0, 0, -20)),
		{TopicID: "b", ExplanationCompleted: true, UpdatedAt: now},
	}

	recs := Rank(topics, records, now, 10)
	seen := make(map[string]bool)
	for _, r := range recs {
		if seen[r.TopicID] {
			t.Fatalf("duplicate topic %q in output", r.TopicID)
		}
		seen[r.TopicID] = true
	}
}

func TestRank_PriorityOrdering(t *testing.T) {
	topics := testTopics("weak", "stale", "started", "fresh1", "fresh2")
	now := time.Now()
	records := []*progress.Progress{
		{TopicID: "weak", AverageScore: 50, TotalTestsTaken: 1, UpdatedAt: now},
		completedRecord("stale", 90, now.AddDate(0, 0, -14)),
		{TopicID: "started", FlashcardCompleted: true, UpdatedAt: now},
	}

	recs := Rank(topics, records, now, 10)
	for i := 1; i < len(recs); i++ {
		if recs[i].Priority > recs[i-1].Priority {
			t.Fatalf("output not sorted by priority: %d after %d", recs[i].Priority, recs[i-1].Priority)
		}
	}
	if recs[0].TopicID != "weak" {
		t.Errorf("got first topic %q, want %q", recs[0].TopicID, "weak")
	}
	// Equal priority: review_needed (emitted first) ahead of continue_learning.
	if recs[1].TopicID != "stale" || recs[2].TopicID != "started" {
		t.Errorf("got order %q, %q at priority 4, want stale then started", recs[1].TopicID, recs[2].TopicID)
	}
}

func TestRank_Limit(t *testing.T) {
	topics := testTopics("a", "b", "c", "d", "e")

	recs := Rank(topics, nil, time.Now(), 2)
	if len(recs) != 2 {
		t.Errorf("got %d recommendations, want 2", len(recs))
	}

	if got := Rank(topics, nil, time.Now(), 0); got != nil {
		t.Errorf("limit 0: got %d recommendations, want none", len(got))
	}
	if got := Rank(nil, nil, time.Now(), 5); got != nil {
		t.Errorf("empty curriculum: got %d recommendations, want none", len(got))
	}
}
