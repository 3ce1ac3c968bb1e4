package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidScore indicates a quiz score outside the 0-100 range.
// Rejected before any state mutation.
type ErrInvalidScore struct {
	Score int
}

func (e *ErrInvalidScore) Error() string {
	return fmt.Sprintf("invalid quiz score %d: must be in 0-100", e.Score)
}

// Service owns the read-modify-write lifecycle of progress records.
// Writes for the same (user, topic) pair are serialized through a keyed
// mutex so two concurrent quiz submissions cannot lose an update to
// best_score or average_score.
type Service struct {
	repo        Repo
	results     ResultLog   // optional
	invalidator Invalidator // optional
	log         *zap.SugaredLogger

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	now func() time.Time
}

// NewService creates a progress service. results, invalidator, and log may
// be nil.
func NewService(repo Repo, results ResultLog, invalidator Invalidator, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{
		repo:        repo,
		results:     results,
		invalidator: invalidator,
		log:         log,
		locks:       make(map[string]*sync.Mutex),
		now:         time.Now,
	}
}

// MarkExplanation records that the learner finished reading the topic's
// explanation. Idempotent: the flag stays set, only updated_at moves.
func (s *Service) MarkExplanation(ctx context.Context, userID uuid.UUID, topicID string) (*Progress, error) {
	return s.mutate(ctx, userID, topicID, func(p *Progress, now time.Time) {
		p.ExplanationCompleted = true
		if p.ExplanationCompletedAt == nil {
			p.ExplanationCompletedAt = &now
		}
	})
}

// MarkFlashcard records that the learner finished the topic's flashcard set.
func (s *Service) MarkFlashcard(ctx context.Context, userID uuid.UUID, topicID string) (*Progress, error) {
	return s.mutate(ctx, userID, topicID, func(p *Progress, now time.Time) {
		p.FlashcardCompleted = true
		if p.FlashcardCompletedAt == nil {
			p.FlashcardCompletedAt = &now
		}
	})
}

// SubmitQuiz records one quiz submission and recomputes the aggregate score
// fields: best_score is the max of all submissions, average_score the running
// mean weighted by total_tests_taken. The quiz completion flag is set once a
// submission reaches PassingScore and never cleared.
func (s *Service) SubmitQuiz(ctx context.Context, userID uuid.UUID, topicID string, score, totalQuestions, correctAnswers int) (*Progress, error) {
	if score < 0 || score > 100 {
		return nil, &ErrInvalidScore{Score: score}
	}

	p, err := s.mutate(ctx, userID, topicID, func(p *Progress, now time.Time) {
		prevTotal := p.AverageScore * float64(p.TotalTestsTaken)
		p.TotalTestsTaken++
		p.AverageScore = (prevTotal + float64(score)) / float64(p.TotalTestsTaken)
		p.LatestScore = score
		if score > p.BestScore {
			p.BestScore = score
		}
		if score >= PassingScore {
			p.QuizCompleted = true
			if p.QuizCompletedAt == nil {
				p.QuizCompletedAt = &now
			}
		}
	})
	if err != nil {
		return nil, err
	}

	if s.results != nil {
		err := s.results.AppendQuizResult(ctx, QuizResult{
			UserID:         userID,
			TopicID:        topicID,
			Score:          score,
			TotalQuestions: totalQuestions,
			CorrectAnswers: correctAnswers,
		})
		if err != nil {
			// The aggregates are already persisted; losing one history row
			// must not make the submission look failed.
			s.log.Errorw("append quiz result", "user_id", userID, "topic_id", topicID, "error", err)
		}
	}

	return p, nil
}

// mutate runs fn against the current record (or a fresh one) under the
// per-(user, topic) lock and writes the result back.
func (s *Service) mutate(ctx context.Context, userID uuid.UUID, topicID string, fn func(p *Progress, now time.Time)) (*Progress, error) {
	lock := s.lockFor(userID, topicID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.repo.Get(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	now := s.now()
	if p == nil {
		p = &Progress{
			UserID:    userID,
			TopicID:   topicID,
			CreatedAt: now,
		}
	}

	fn(p, now)
	p.UpdatedAt = now

	if err := s.repo.Upsert(ctx, p); err != nil {
		// The record was mutated but never persisted; any cache layered
		// over the repo must drop it rather than serve the phantom state.
		if s.invalidator != nil {
			s.invalidator.Invalidate(userID, topicID)
		}
		return nil, fmt.Errorf("upsert progress: %w", err)
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(userID, topicID)
	}
	return p, nil
}

// lockFor returns the mutex guarding one (user, topic) pair, creating it on
// first use. Locks are never freed; the key space is bounded by the syllabus.
func (s *Service) lockFor(userID uuid.UUID, topicID string) *sync.Mutex {
	key := userID.String() + "/" + topicID
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
