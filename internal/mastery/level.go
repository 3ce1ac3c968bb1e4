package mastery

import (
	"math"

	"github.com/abhisek/benkyo/internal/progress"
)

// Level computes the fine-grained 0-100 completeness score for one topic:
// 20 points per completed component (explanation, flashcards, quiz) plus up
// to 40 points scaled linearly from the average quiz score. A missing record
// is the valid zero state and scores 0.
func Level(p *progress.Progress) int {
	if p == nil {
		return 0
	}

	score := 0.0
	if p.ExplanationCompleted {
		score += 20
	}
	if p.FlashcardCompleted {
		score += 20
	}
	if p.QuizCompleted {
		score += 20
	}
	if p.AverageScore > 0 {
		score += math.Min(40, p.AverageScore/100*40)
	}

	level := int(math.Round(score))
	if level > 100 {
		level = 100
	}
	return level
}
