package achievements

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubStatsSource struct {
	stats Stats
	err   error
}

func (s *stubStatsSource) Stats(_ context.Context, _ uuid.UUID) (Stats, error) {
	return s.stats, s.err
}

func TestTriggerFire(t *testing.T) {
	store := newMockAwardStore()
	engine := NewEngine(DefaultCatalog(), store, nil, zap.NewNop().Sugar())
	source := &stubStatsSource{stats: Stats{CompletedTopics: 1}}
	trigger := NewTrigger(engine, source, &StaticFriendSource{}, zap.NewNop().Sugar())

	newly := trigger.Fire(context.Background(), uuid.New(), EventTopicCompleted)
	if len(newly) != 1 || newly[0].Key != "first_topic" {
		t.Fatalf("got %v, want first_topic", newly)
	}
}

func TestTriggerFire_StatsFailureSwallowed(t *testing.T) {
	store := newMockAwardStore()
	engine := NewEngine(DefaultCatalog(), store, nil, zap.NewNop().Sugar())
	source := &stubStatsSource{err: errors.New("db gone")}
	trigger := NewTrigger(engine, source, nil, zap.NewNop().Sugar())

	newly := trigger.Fire(context.Background(), uuid.New(), EventQuizSubmitted)
	if newly != nil {
		t.Errorf("got %v, want nil on stats failure", newly)
	}
	if len(store.earned) != 0 {
		t.Errorf("awards written despite stats failure: %v", store.earned)
	}
}

func TestTriggerFire_FriendEvent(t *testing.T) {
	store := newMockAwardStore()
	engine := NewEngine(DefaultCatalog(), store, nil, zap.NewNop().Sugar())
	source := &stubStatsSource{}
	trigger := NewTrigger(engine, source, &StaticFriendSource{Count: 5}, zap.NewNop().Sugar())

	newly := trigger.Fire(context.Background(), uuid.New(), EventFriendAdded)
	keys := make(map[string]bool)
	for _, d := range newly {
		keys[d.Key] = true
	}
	if !keys["first_friend"] || !keys["social_circle"] {
		t.Errorf("got %v, want first_friend and social_circle", keys)
	}
}
