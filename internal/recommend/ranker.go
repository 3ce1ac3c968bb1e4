package recommend

import (
	"sort"
	"time"

	"github.com/abhisek/benkyo/internal/progress"
	"github.com/abhisek/benkyo/internal/syllabus"
)

// Rank produces the ordered, de-duplicated study queue for one user.
//
// topics is the curriculum in document order; records is the user's complete
// progress set, already fetched by the caller (this function does no I/O).
// Each topic is emitted by at most one detector: detector outputs are
// concatenated, stable-sorted by priority descending, duplicates removed
// keeping the first (highest-priority) occurrence, then truncated to limit.
//
// An empty curriculum or a user with no records is a normal input; the weak
// and review detectors simply find nothing and the untouched curriculum
// flows out through next_to_learn.
func Rank(topics []syllabus.TopicRef, records []*progress.Progress, now time.Time, limit int) []Recommendation {
	if limit <= 0 || len(topics) == 0 {
		return nil
	}

	byTopic := make(map[string]*progress.Progress, len(records))
	for _, p := range records {
		byTopic[p.TopicID] = p
	}

	var merged []Recommendation
	merged = append(merged, detectWeakAreas(topics, byTopic)...)
	merged = append(merged, detectReviewNeeded(topics, byTopic, now)...)
	merged = append(merged, detectNextToLearn(topics, byTopic)...)

	// Stable keeps detector emission order within equal priorities.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Priority > merged[j].Priority
	})

	seen := make(map[string]bool, len(merged))
	out := make([]Recommendation, 0, limit)
	for _, r := range merged {
		if seen[r.TopicID] {
			continue
		}
		seen[r.TopicID] = true
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out
}
