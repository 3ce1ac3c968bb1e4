package achievements

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// mockAwardStore is an in-memory AwardStore for tests.
type mockAwardStore struct {
	earned  map[string]bool
	raceKey string // Award loses the insert race for this key
	failKey string // Award returns an error for this key
}

func newMockAwardStore() *mockAwardStore {
	return &mockAwardStore{earned: make(map[string]bool)}
}

func (m *mockAwardStore) EarnedKeys(_ context.Context, _ uuid.UUID) (map[string]bool, error) {
	out := make(map[string]bool, len(m.earned))
	for k, v := range m.earned {
		out[k] = v
	}
	return out, nil
}

func (m *mockAwardStore) Award(_ context.Context, _ uuid.UUID, key string) (bool, error) {
	if key == m.failKey {
		return false, errors.New("storage down")
	}
	if key == m.raceKey || m.earned[key] {
		return false, nil
	}
	m.earned[key] = true
	return true, nil
}

// recordingNotifier captures award notifications.
type recordingNotifier struct {
	keys []string
}

func (n *recordingNotifier) AchievementEarned(_ uuid.UUID, key, _ string) {
	n.keys = append(n.keys, key)
}

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func TestMet(t *testing.T) {
	tests := []struct {
		name    string
		def     Definition
		stats   Stats
		friends int
		want    bool
	}{
		{
			name:  "streak met",
			def:   Definition{Category: CategoryStreak, Requirement: Requirement{Days: intPtr(7)}},
			stats: Stats{TotalStudyDays: 7},
			want:  true,
		},
		{
			name:  "streak not met",
			def:   Definition{Category: CategoryStreak, Requirement: Requirement{Days: intPtr(7)}},
			stats: Stats{TotalStudyDays: 6},
			want:  false,
		},
		{
			name:  "streak missing field",
			def:   Definition{Category: CategoryStreak},
			stats: Stats{TotalStudyDays: 100},
			want:  false,
		},
		{
			name: "perfect score count met",
			def: Definition{Category: CategoryAccuracy,
				Requirement: Requirement{Score: intPtr(100), Count: intPtr(10)}},
			stats: Stats{PerfectScoreCount: 10},
			want:  true,
		},
		{
			name: "perfect score count not met",
			def: Definition{Category: CategoryAccuracy,
				Requirement: Requirement{Score: intPtr(100), Count: intPtr(10)}},
			stats: Stats{PerfectScoreCount: 9},
			want:  false,
		},
		{
			name: "average score met",
			def: Definition{Category: CategoryAccuracy,
				Requirement: Requirement{AvgScore: floatPtr(90)}},
			stats: Stats{AvgTestScore: 90.5},
			want:  true,
		},
		{
			name:  "accuracy missing fields",
			def:   Definition{Category: CategoryAccuracy},
			stats: Stats{AvgTestScore: 100, PerfectScoreCount: 100},
			want:  false,
		},
		{
			name:  "completion met",
			def:   Definition{Category: CategoryCompletion, Requirement: Requirement{Topics: intPtr(5)}},
			stats: Stats{CompletedTopics: 6},
			want:  true,
		},
		{
			name:    "social met",
			def:     Definition{Category: CategorySocial, Requirement: Requirement{Friends: intPtr(1)}},
			friends: 1,
			want:    true,
		},
		{
			name:    "social not met",
			def:     Definition{Category: CategorySocial, Requirement: Requirement{Friends: intPtr(5)}},
			friends: 4,
			want:    false,
		},
		{
			name: "unknown category",
			def:  Definition{Category: "mystery", Requirement: Requirement{Days: intPtr(1)}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Met(tt.def, tt.stats, tt.friends); got != tt.want {
				t.Errorf("Met() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckAll_AwardsOnce(t *testing.T) {
	store := newMockAwardStore()
	notifier := &recordingNotifier{}
	engine := NewEngine(DefaultCatalog(), store, notifier, zap.NewNop().Sugar())
	userID := uuid.New()
	ctx := context.Background()

	stats := Stats{TotalStudyDays: 7} // meets three_day_streak and week_streak

	newly, err := engine.CheckAll(ctx, userID, stats, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(newly) != 2 {
		t.Fatalf("got %d new achievements, want 2", len(newly))
	}
	gotKeys := map[string]bool{newly[0].Key: true, newly[1].Key: true}
	if !gotKeys["three_day_streak"] || !gotKeys["week_streak"] {
		t.Errorf("got keys %v, want three_day_streak and week_streak", gotKeys)
	}
	if len(notifier.keys) != 2 {
		t.Errorf("got %d notifications, want 2", len(notifier.keys))
	}

	// Second check with the same stats: everything already earned.
	newly, err = engine.CheckAll(ctx, userID, stats, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(newly) != 0 {
		t.Errorf("got %d new achievements on re-check, want 0", len(newly))
	}
}

func TestCheckAll_RaceLoserNotReturned(t *testing.T) {
	// EarnedKeys sees the key as unearned, but another trigger wins the
	// insert between the read and the award.
	store := newMockAwardStore()
	store.raceKey = "three_day_streak"
	engine := NewEngine(DefaultCatalog(), store, nil, zap.NewNop().Sugar())

	newly, err := engine.CheckAll(context.Background(), uuid.New(), Stats{TotalStudyDays: 3}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range newly {
		if d.Key == "three_day_streak" {
			t.Error("race loser returned the achievement as newly earned")
		}
	}
}

func TestCheckAll_AwardFailureContinues(t *testing.T) {
	store := newMockAwardStore()
	store.failKey = "three_day_streak"
	engine := NewEngine(DefaultCatalog(), store, nil, zap.NewNop().Sugar())

	newly, err := engine.CheckAll(context.Background(), uuid.New(), Stats{TotalStudyDays: 7}, 0)
	if err != nil {
		t.Fatalf("a single award failure must not fail the scan: %v", err)
	}
	if len(newly) != 1 || newly[0].Key != "week_streak" {
		t.Errorf("got %v, want only week_streak", newly)
	}
}
