package progress

import (
	"context"

	"github.com/google/uuid"
)

// Repo is the narrow interface the core uses to read and write progress
// records. Absence of a record is a valid zero state: Get returns (nil, nil)
// for a pair the learner has never touched.
type Repo interface {
	// Get returns the record for one (user, topic) pair, or nil if none exists.
	Get(ctx context.Context, userID uuid.UUID, topicID string) (*Progress, error)

	// ListByUser returns all progress records for one user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Progress, error)

	// Upsert inserts or replaces the record for (p.UserID, p.TopicID).
	Upsert(ctx context.Context, p *Progress) error
}

// QuizResult is one quiz submission, appended to the durable result log.
type QuizResult struct {
	UserID         uuid.UUID
	TopicID        string
	Score          int
	TotalQuestions int
	CorrectAnswers int
}

// ResultLog appends quiz submissions. The perfect-score count used by the
// achievement engine is derived from this log.
type ResultLog interface {
	AppendQuizResult(ctx context.Context, r QuizResult) error
}

// Invalidator is notified after every progress write so read-through caches
// can drop stale entries. Callers control refresh timing by re-reading.
type Invalidator interface {
	Invalidate(userID uuid.UUID, topicID string)
}
