package achievements

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event names the user actions that fire an achievement check.
type Event string

const (
	EventQuizSubmitted  Event = "quiz_submitted"
	EventTopicCompleted Event = "topic_completed"
	EventSessionEnded   Event = "study_session_ended"
	EventFriendAdded    Event = "friend_added"
)

// StatsSource supplies the current aggregate statistics for a user.
type StatsSource interface {
	Stats(ctx context.Context, userID uuid.UUID) (Stats, error)
}

// FriendSource supplies the current friend count, which lives outside the
// progress store.
type FriendSource interface {
	FriendCount(ctx context.Context, userID uuid.UUID) (int, error)
}

// Trigger re-checks the whole catalog after each firing event. Re-evaluating
// everything instead of indexing by category trades redundant computation
// for simplicity; at catalog sizes in the tens this is fine. An
// implementation holding hundreds of definitions should index by category
// and re-evaluate only the categories the event can affect.
type Trigger struct {
	engine  *Engine
	stats   StatsSource
	friends FriendSource
	log     *zap.SugaredLogger
}

// NewTrigger wires the engine to its stat sources.
func NewTrigger(engine *Engine, stats StatsSource, friends FriendSource, log *zap.SugaredLogger) *Trigger {
	return &Trigger{engine: engine, stats: stats, friends: friends, log: log}
}

// Fire runs an achievement check for one event. Infrastructure failures are
// logged and swallowed: a failed check must never prevent the user action
// that triggered it (quiz submit, topic completion) from succeeding. The
// caller must fire only after the triggering write is durably committed, or
// the check evaluates stale stats.
func (t *Trigger) Fire(ctx context.Context, userID uuid.UUID, event Event) []Definition {
	stats, err := t.stats.Stats(ctx, userID)
	if err != nil {
		t.log.Errorw("achievement check: load stats failed",
			"user_id", userID, "event", event, "error", err)
		return nil
	}

	friendCount := 0
	if t.friends != nil {
		friendCount, err = t.friends.FriendCount(ctx, userID)
		if err != nil {
			t.log.Warnw("achievement check: friend count unavailable",
				"user_id", userID, "event", event, "error", err)
		}
	}

	newly, err := t.engine.CheckAll(ctx, userID, stats, friendCount)
	if err != nil {
		t.log.Errorw("achievement check failed",
			"user_id", userID, "event", event, "error", err)
		return nil
	}

	if len(newly) > 0 {
		keys := make([]string, len(newly))
		for i, d := range newly {
			keys[i] = d.Key
		}
		t.log.Infow("achievements earned",
			"user_id", userID, "event", event, "keys", keys)
	}
	return newly
}
