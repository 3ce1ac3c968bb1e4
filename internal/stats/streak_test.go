package stats

import (
	"testing"
	"time"
)

func TestCurrentStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(DateLayout)
	}

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"no sessions", nil, 0},
		{"today only", []string{day(0)}, 1},
		{"yesterday only", []string{day(-1)}, 1},
		{"broken two days ago", []string{day(-2), day(-3)}, 0},
		{"three day run ending today", []string{day(0), day(-1), day(-2)}, 3},
		{"run ending yesterday", []string{day(-1), day(-2), day(-3), day(-4)}, 4},
		{"gap inside run", []string{day(0), day(-1), day(-3), day(-4)}, 2},
		{"single gap after today", []string{day(0), day(-2)}, 1},
		{"malformed date", []string{"not-a-date"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreak(tt.dates, now); got != tt.want {
				t.Errorf("CurrentStreak(%v) = %d, want %d", tt.dates, got, tt.want)
			}
		})
	}
}

func TestCurrentStreak_StudyingTodayExtendsYesterday(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(DateLayout)
	}

	before := CurrentStreak([]string{day(-1), day(-2)}, now)
	after := CurrentStreak([]string{day(0), day(-1), day(-2)}, now)
	if after != before+1 {
		t.Errorf("streak went %d -> %d after studying today, want +1", before, after)
	}
}
