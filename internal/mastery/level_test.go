package mastery

import (
	"testing"

	"github.com/abhisek/benkyo/internal/progress"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		p    *progress.Progress
		want int
	}{
		{"nil record", nil, 0},
		{"untouched", &progress.Progress{}, 0},
		{"explanation only", &progress.Progress{ExplanationCompleted: true}, 20},
		{
			"two components",
			&progress.Progress{ExplanationCompleted: true, FlashcardCompleted: true},
			40,
		},
		{
			"all components no scores",
			&progress.Progress{
				ExplanationCompleted: true,
				FlashcardCompleted:   true,
				QuizCompleted:        true,
			},
			60,
		},
		{
			"all components average 85",
			&progress.Progress{
				ExplanationCompleted: true,
				FlashcardCompleted:   true,
				QuizCompleted:        true,
				AverageScore:         85,
				TotalTestsTaken:      2,
			},
			94,
		},
		{
			"perfect",
			&progress.Progress{
				ExplanationCompleted: true,
				FlashcardCompleted:   true,
				QuizCompleted:        true,
				AverageScore:         100,
				TotalTestsTaken:      1,
			},
			100,
		},
		{
			"score without components",
			&progress.Progress{AverageScore: 50, TotalTestsTaken: 1},
			20,
		},
		{
			"fractional average rounds",
			&progress.Progress{
				ExplanationCompleted: true,
				AverageScore:         66.5, // 20 + 26.6 = 46.6
				TotalTestsTaken:      2,
			},
			47,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Level(tt.p); got != tt.want {
				t.Errorf("Level() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLevel_Range(t *testing.T) {
	// Sweep averages; the level must stay in 0-100 throughout.
	for avg := 0.0; avg <= 100.0; avg += 2.5 {
		p := &progress.Progress{
			ExplanationCompleted: true,
			FlashcardCompleted:   true,
			QuizCompleted:        true,
			AverageScore:         avg,
			TotalTestsTaken:      1,
		}
		got := Level(p)
		if got < 0 || got > 100 {
			t.Fatalf("Level(avg=%.1f) = %d out of range", avg, got)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize("geo-earth-overview", nil)
	if s.Tier != TierUntrained {
		t.Errorf("got tier %s, want untrained", s.Tier.Label())
	}
	if s.Level != 0 {
		t.Errorf("got level %d, want 0", s.Level)
	}

	p := &progress.Progress{
		ExplanationCompleted: true,
		FlashcardCompleted:   true,
		QuizCompleted:        true,
		AverageScore:         85,
		BestScore:            90,
		TotalTestsTaken:      3,
	}
	s = Summarize("geo-earth-overview", p)
	if s.TotalCompletions != 5 {
		t.Errorf("got %d completions, want 5", s.TotalCompletions)
	}
	if s.Tier != TierAdvanced {
		t.Errorf("got tier %s, want advanced", s.Tier.Label())
	}
	if s.Level != 94 {
		t.Errorf("got level %d, want 94", s.Level)
	}
}
