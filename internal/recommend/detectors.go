package recommend

import (
	"fmt"
	"math"
	"time"

	"github.com/abhisek/benkyo/internal/mastery"
	"github.com/abhisek/benkyo/internal/progress"
	"github.com/abhisek/benkyo/internal/syllabus"
)

const (
	// WeakAreaThreshold is the average score below which a tested topic
	// counts as a weak area.
	WeakAreaThreshold = 70

	// StalenessDays is how many days a completed topic may sit untouched
	// before it needs review. The boundary day itself counts as stale.
	StalenessDays = 7

	// MaxNextToLearn caps how many untouched topics a single ranking emits.
	MaxNextToLearn = 3
)

// detectWeakAreas emits tested topics whose average score is below the
// threshold. Highest priority: these hold the learner back the most.
func detectWeakAreas(topics []syllabus.TopicRef, byTopic map[string]*progress.Progress) []Recommendation {
	var out []Recommendation
	for _, t := range topics {
		p := byTopic[t.ID]
		if p == nil || p.TotalTestsTaken == 0 || p.AverageScore >= WeakAreaThreshold {
			continue
		}
		rounded := int(math.Round(p.AverageScore))
		out = append(out, Recommendation{
			TopicID:      t.ID,
			Title:        t.Title,
			Category:     t.Category,
			Reason:       ReasonWeakArea,
			ReasonText:   fmt.Sprintf("Average score %d%% (target: %d%% or higher)", rounded, WeakAreaThreshold),
			Priority:     5,
			AverageScore: p.AverageScore,
			MasteryLevel: mastery.Level(p),
		})
	}
	return out
}

// detectReviewNeeded emits fully completed topics not studied for
// StalenessDays or more.
func detectReviewNeeded(topics []syllabus.TopicRef, byTopic map[string]*progress.Progress, now time.Time) []Recommendation {
	var out []Recommendation
	for _, t := range topics {
		p := byTopic[t.ID]
		if !p.Completed() {
			continue
		}
		days := p.DaysSinceUpdate(now)
		if days < StalenessDays {
			continue
		}
		out = append(out, Recommendation{
			TopicID:      t.ID,
			Title:        t.Title,
			Category:     t.Category,
			Reason:       ReasonReviewNeeded,
			ReasonText:   fmt.Sprintf("Last studied %d days ago", days),
			Priority:     4,
			AverageScore: p.AverageScore,
			DaysStale:    days,
			MasteryLevel: mastery.Level(p),
		})
	}
	return out
}

// detectNextToLearn emits in-progress topics first (continue_learning), then
// the first MaxNextToLearn untouched topics in curriculum document order.
func detectNextToLearn(topics []syllabus.TopicRef, byTopic map[string]*progress.Progress) []Recommendation {
	var out []Recommendation
	for _, t := range topics {
		p := byTopic[t.ID]
		if p.Started() && !p.Completed() {
			out = append(out, Recommendation{
				TopicID:      t.ID,
				Title:        t.Title,
				Category:     t.Category,
				Reason:       ReasonContinueLearning,
				ReasonText:   "Pick up where you left off",
				Priority:     4,
				MasteryLevel: mastery.Level(p),
			})
		}
	}

	fresh := 0
	for _, t := range topics {
		if fresh >= MaxNextToLearn {
			break
		}
		if byTopic[t.ID].Started() {
			continue
		}
		out = append(out, Recommendation{
			TopicID:    t.ID,
			Title:      t.Title,
			Category:   t.Category,
			Reason:     ReasonNextToLearn,
			ReasonText: "Recommended next in the curriculum",
			Priority:   3,
		})
		fresh++
	}
	return out
}
