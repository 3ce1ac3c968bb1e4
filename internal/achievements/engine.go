package achievements

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Stats is the aggregate snapshot the predicates evaluate against. The
// friend count is sourced separately and passed alongside.
type Stats struct {
	TotalStudyDays    int     // current consecutive-day streak
	CompletedTopics   int     // fully completed topics
	AvgTestScore      float64 // mean score across all quiz submissions
	PerfectScoreCount int     // submissions scoring exactly 100
}

// AwardStore is the narrow storage interface for earned achievements.
type AwardStore interface {
	// EarnedKeys returns the set of achievement keys the user has earned.
	EarnedKeys(ctx context.Context, userID uuid.UUID) (map[string]bool, error)

	// Award records an achievement as earned. Insert-if-absent: returns
	// false with a nil error when the key was already earned, so a second
	// near-simultaneous award attempt is a silent no-op.
	Award(ctx context.Context, userID uuid.UUID, key string) (bool, error)
}

// Notifier receives one event per successful award.
type Notifier interface {
	AchievementEarned(userID uuid.UUID, key, name string)
}

// Engine evaluates the catalog against a stats snapshot and awards newly
// met achievements exactly once.
type Engine struct {
	catalog  *Catalog
	store    AwardStore
	notifier Notifier // optional
	log      *zap.SugaredLogger
}

// NewEngine creates an engine. notifier may be nil; log must not be
// (use zap.NewNop for silence).
func NewEngine(catalog *Catalog, store AwardStore, notifier Notifier, log *zap.SugaredLogger) *Engine {
	return &Engine{catalog: catalog, store: store, notifier: notifier, log: log}
}

// Met reports whether a definition's requirement is satisfied. Pure; a
// missing requirement field is "not met", never an error.
func Met(d Definition, stats Stats, friendCount int) bool {
	r := d.Requirement
	switch d.Category {
	case CategoryStreak:
		return r.Days != nil && stats.TotalStudyDays >= *r.Days
	case CategoryAccuracy:
		if r.Score != nil && *r.Score == 100 && r.Count != nil {
			return stats.PerfectScoreCount >= *r.Count
		}
		if r.AvgScore != nil {
			return stats.AvgTestScore >= *r.AvgScore
		}
		return false
	case CategoryCompletion:
		return r.Topics != nil && stats.CompletedTopics >= *r.Topics
	case CategorySocial:
		return r.Friends != nil && friendCount >= *r.Friends
	default:
		return false
	}
}

// CheckAll evaluates the entire catalog for one user and awards every newly
// met achievement, returning the definitions awarded by this call. Already
// earned keys are skipped; a concurrent duplicate award surfaces as a silent
// no-op and is not returned. An individual award failure is logged and the
// scan continues; the caller's user-facing action must not be blocked.
func (e *Engine) CheckAll(ctx context.Context, userID uuid.UUID, stats Stats, friendCount int) ([]Definition, error) {
	earned, err := e.store.EarnedKeys(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("earned keys: %w", err)
	}

	var newly []Definition
	for _, d := range e.catalog.All() {
		if earned[d.Key] {
			continue
		}
		if !Met(d, stats, friendCount) {
			continue
		}

		awarded, err := e.store.Award(ctx, userID, d.Key)
		if err != nil {
			e.log.Errorw("award achievement failed",
				"user_id", userID, "key", d.Key, "error", err)
			continue
		}
		if !awarded {
			// Lost the race to a concurrent trigger; the other one notified.
			continue
		}

		newly = append(newly, d)
		if e.notifier != nil {
			e.notifier.AchievementEarned(userID, d.Key, d.Name)
		}
	}
	return newly, nil
}
