package mastery

import (
	"testing"

	"github.com/abhisek/benkyo/internal/progress"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		completions int
		want        Tier
	}{
		{0, TierUntrained},
		{-1, TierUntrained},
		{1, TierBeginner},
		{2, TierBeginner},
		{3, TierIntermediate},
		{4, TierIntermediate},
		{5, TierAdvanced},
		{7, TierAdvanced},
		{8, TierMaster},
		{100, TierMaster},
	}
	for _, tt := range tests {
		if got := TierFor(tt.completions); got != tt.want {
			t.Errorf("TierFor(%d) = %s, want %s", tt.completions, got.Label(), tt.want.Label())
		}
	}
}

func TestTierFor_Monotonic(t *testing.T) {
	prev := TierFor(0)
	for n := 1; n <= 50; n++ {
		cur := TierFor(n)
		if cur < prev {
			t.Fatalf("TierFor(%d) = %s below TierFor(%d) = %s", n, cur.Label(), n-1, prev.Label())
		}
		prev = cur
	}
}

func TestTotalCompletions(t *testing.T) {
	if got := TotalCompletions(nil); got != 0 {
		t.Errorf("TotalCompletions(nil) = %d, want 0", got)
	}

	p := &progress.Progress{
		ExplanationCompleted: true,
		FlashcardCompleted:   true,
		TotalTestsTaken:      3,
	}
	if got := TotalCompletions(p); got != 5 {
		t.Errorf("got %d completions, want 5", got)
	}
}

func TestTierLabels(t *testing.T) {
	tests := []struct {
		tier  Tier
		label string
		name  string
	}{
		{TierUntrained, "untrained", "Untrained"},
		{TierBeginner, "beginner", "Beginner"},
		{TierIntermediate, "intermediate", "Intermediate"},
		{TierAdvanced, "advanced", "Advanced"},
		{TierMaster, "master", "Master"},
		{Tier(99), "unknown", "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.tier.Label(); got != tt.label {
			t.Errorf("Label() = %q, want %q", got, tt.label)
		}
		if got := tt.tier.DisplayName(); got != tt.name {
			t.Errorf("DisplayName() = %q, want %q", got, tt.name)
		}
	}
}
