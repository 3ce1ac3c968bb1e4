package progress

import (
	"time"

	"github.com/google/uuid"
)

// PassingScore is the quiz score at or above which the quiz portion of a
// topic counts as passed.
const PassingScore = 70

// Progress is the per-(user, topic) completion and scoring record.
// Created on first interaction with a topic, mutated on every subsequent
// explanation view, flashcard completion, or quiz submission; never deleted.
type Progress struct {
	UserID  uuid.UUID
	TopicID string

	ExplanationCompleted bool
	FlashcardCompleted   bool
	QuizCompleted        bool

	ExplanationCompletedAt *time.Time
	FlashcardCompletedAt   *time.Time
	QuizCompletedAt        *time.Time

	LatestScore     int
	BestScore       int
	AverageScore    float64
	TotalTestsTaken int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Completed reports whether the topic counts as fully completed: all three
// completion flags set and a best score at or above PassingScore.
func (p *Progress) Completed() bool {
	if p == nil {
		return false
	}
	return p.ExplanationCompleted && p.FlashcardCompleted && p.QuizCompleted &&
		p.BestScore >= PassingScore
}

// Started reports whether the learner has touched the topic at all.
func (p *Progress) Started() bool {
	if p == nil {
		return false
	}
	return p.ExplanationCompleted || p.FlashcardCompleted || p.QuizCompleted
}

// DaysSinceUpdate returns whole days elapsed since the record last changed.
func (p *Progress) DaysSinceUpdate(now time.Time) int {
	if p == nil {
		return 0
	}
	return int(now.Sub(p.UpdatedAt).Hours() / 24)
}
