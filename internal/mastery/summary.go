package mastery

import "github.com/abhisek/benkyo/internal/progress"

// Summary is the per-topic mastery view returned to callers: coarse tier,
// fine completeness level, and the counters they derive from.
type Summary struct {
	TopicID          string
	Tier             Tier
	Level            int
	TotalCompletions int
	AverageScore     float64
	TotalTestsTaken  int
}

// Summarize builds the mastery summary for one topic. A nil record yields
// the untrained zero state, never an error.
func Summarize(topicID string, p *progress.Progress) Summary {
	s := Summary{
		TopicID:          topicID,
		TotalCompletions: TotalCompletions(p),
		Level:            Level(p),
	}
	s.Tier = TierFor(s.TotalCompletions)
	if p != nil {
		s.AverageScore = p.AverageScore
		s.TotalTestsTaken = p.TotalTestsTaken
	}
	return s
}
