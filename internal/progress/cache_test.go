package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

// countingRepo wraps memoryRepo and counts reads hitting the backing store.
type countingRepo struct {
	*memoryRepo
	listCalls int
}

func (c *countingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Progress, error) {
	c.listCalls++
	return c.memoryRepo.ListByUser(ctx, userID)
}

// flakyRepo fails Upsert on demand so write-failure paths can be exercised.
type flakyRepo struct {
	*memoryRepo
	fail bool
}

func (f *flakyRepo) Upsert(ctx context.Context, p *Progress) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.memoryRepo.Upsert(ctx, p)
}

func TestCache_ReadThrough(t *testing.T) {
	backing := &countingRepo{memoryRepo: newMemoryRepo()}
	cache := NewCache(backing)
	userID := uuid.New()
	ctx := context.Background()

	seed := &Progress{UserID: userID, TopicID: "t", BestScore: 80}
	if err := backing.Upsert(ctx, seed); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		p, err := cache.Get(ctx, userID, "t")
		if err != nil {
			t.Fatal(err)
		}
		if p == nil || p.BestScore != 80 {
			t.Fatalf("read %d: got %+v, want seeded record", i, p)
		}
	}
	if backing.listCalls != 1 {
		t.Errorf("backing store hit %d times, want 1", backing.listCalls)
	}
}

func TestCache_MissIsNil(t *testing.T) {
	backing := &countingRepo{memoryRepo: newMemoryRepo()}
	cache := NewCache(backing)

	p, err := cache.Get(context.Background(), uuid.New(), "never-touched")
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Errorf("got %+v, want nil for untouched pair", p)
	}
}

func TestCache_InvalidateForcesRefetch(t *testing.T) {
	backing := &countingRepo{memoryRepo: newMemoryRepo()}
	cache := NewCache(backing)
	userID := uuid.New()
	ctx := context.Background()

	if err := backing.Upsert(ctx, &Progress{UserID: userID, TopicID: "t", BestScore: 50}); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Get(ctx, userID, "t"); err != nil {
		t.Fatal(err)
	}

	// Write behind the cache's back, then invalidate.
	if err := backing.Upsert(ctx, &Progress{UserID: userID, TopicID: "t", BestScore: 90}); err != nil {
		t.Fatal(err)
	}
	cache.Invalidate(userID, "t")

	p, err := cache.Get(ctx, userID, "t")
	if err != nil {
		t.Fatal(err)
	}
	if p.BestScore != 90 {
		t.Errorf("got best %d after invalidate, want 90", p.BestScore)
	}
	if backing.listCalls != 2 {
		t.Errorf("backing store hit %d times, want 2", backing.listCalls)
	}
}

func TestCache_UpsertWritesThrough(t *testing.T) {
	backing := &countingRepo{memoryRepo: newMemoryRepo()}
	cache := NewCache(backing)
	userID := uuid.New()
	ctx := context.Background()

	if err := cache.Upsert(ctx, &Progress{UserID: userID, TopicID: "t", BestScore: 75}); err != nil {
		t.Fatal(err)
	}

	// Visible through the backing store directly.
	p, err := backing.Get(ctx, userID, "t")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.BestScore != 75 {
		t.Fatalf("backing store missing written record: %+v", p)
	}

	// And through the cache after its own invalidation.
	p, err = cache.Get(ctx, userID, "t")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.BestScore != 75 {
		t.Fatalf("cache read after write: %+v", p)
	}
}

func TestCache_GetReturnsCopy(t *testing.T) {
	backing := &countingRepo{memoryRepo: newMemoryRepo()}
	cache := NewCache(backing)
	userID := uuid.New()
	ctx := context.Background()

	if err := backing.Upsert(ctx, &Progress{UserID: userID, TopicID: "t", BestScore: 50}); err != nil {
		t.Fatal(err)
	}

	p, err := cache.Get(ctx, userID, "t")
	if err != nil {
		t.Fatal(err)
	}
	p.BestScore = 99
	p.TotalTestsTaken = 12

	again, err := cache.Get(ctx, userID, "t")
	if err != nil {
		t.Fatal(err)
	}
	if again.BestScore != 50 || again.TotalTestsTaken != 0 {
		t.Errorf("caller mutation leaked into cache: got %+v", again)
	}
}

func TestCache_FailedUpsertDropsEntry(t *testing.T) {
	backing := &flakyRepo{memoryRepo: newMemoryRepo()}
	cache := NewCache(backing)
	userID := uuid.New()
	ctx := context.Background()

	if err := cache.Upsert(ctx, &Progress{UserID: userID, TopicID: "t", BestScore: 50, TotalTestsTaken: 1, AverageScore: 50}); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Get(ctx, userID, "t"); err != nil {
		t.Fatal(err)
	}

	backing.fail = true
	bad := &Progress{UserID: userID, TopicID: "t", BestScore: 90, TotalTestsTaken: 2, AverageScore: 70}
	if err := cache.Upsert(ctx, bad); err == nil {
		t.Fatal("upsert did not surface backing store failure")
	}
	backing.fail = false

	p, err := cache.Get(ctx, userID, "t")
	if err != nil {
		t.Fatal(err)
	}
	if p.BestScore != 50 || p.TotalTestsTaken != 1 {
		t.Errorf("cache serves unpersisted record after failed write: got %+v", p)
	}
}

func TestCache_FailedSubmitDoesNotPoisonReads(t *testing.T) {
	backing := &flakyRepo{memoryRepo: newMemoryRepo()}
	cache := NewCache(backing)
	svc := NewService(cache, nil, cache, nil)
	userID := uuid.New()
	ctx := context.Background()

	if _, err := svc.SubmitQuiz(ctx, userID, "t", 50, 10, 5); err != nil {
		t.Fatal(err)
	}

	backing.fail = true
	if _, err := svc.SubmitQuiz(ctx, userID, "t", 90, 10, 9); err == nil {
		t.Fatal("submit did not surface backing store failure")
	}
	backing.fail = false

	p, err := cache.Get(ctx, userID, "t")
	if err != nil {
		t.Fatal(err)
	}
	if p.TotalTestsTaken != 1 || p.BestScore != 50 || p.AverageScore != 50 {
		t.Errorf("read after failed submit: got tests=%d best=%d avg=%.1f, want 1/50/50.0",
			p.TotalTestsTaken, p.BestScore, p.AverageScore)
	}
}

func TestCache_ListByUser(t *testing.T) {
	backing := &countingRepo{memoryRepo: newMemoryRepo()}
	cache := NewCache(backing)
	userID := uuid.New()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := backing.Upsert(ctx, &Progress{UserID: userID, TopicID: id}); err != nil {
			t.Fatal(err)
		}
	}

	records, err := cache.ListByUser(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}

	// Other users see nothing.
	records, err = cache.ListByUser(ctx, uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records for other user, want 0", len(records))
	}
}
