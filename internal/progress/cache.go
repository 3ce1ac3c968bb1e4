package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Cache is a read-through cache over a Repo. A user's records are fetched
// once and served from memory until the write path calls Invalidate for one
// of that user's topics. It implements both Repo (reads) and Invalidator.
type Cache struct {
	repo Repo

	mu     sync.RWMutex
	users  map[uuid.UUID]map[string]*Progress
	loaded map[uuid.UUID]bool
}

// NewCache creates a cache over repo.
func NewCache(repo Repo) *Cache {
	return &Cache{
		repo:   repo,
		users:  make(map[uuid.UUID]map[string]*Progress),
		loaded: make(map[uuid.UUID]bool),
	}
}

// Get returns the cached record for (user, topic), loading the user's
// records on first access. Returns nil for a pair with no record. The
// returned record is a copy: callers mutate freely without touching the
// cached state.
func (c *Cache) Get(ctx context.Context, userID uuid.UUID, topicID string) (*Progress, error) {
	if err := c.ensure(ctx, userID); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	p := c.users[userID][topicID]
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// ListByUser returns all cached records for one user, as copies.
func (c *Cache) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Progress, error) {
	if err := c.ensure(ctx, userID); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	records := make([]*Progress, 0, len(c.users[userID]))
	for _, p := range c.users[userID] {
		cp := *p
		records = append(records, &cp)
	}
	return records, nil
}

// Upsert writes through to the underlying repo and drops the cached entry.
// The entry is dropped even when the write fails: the cache must never keep
// serving state the durable store may not hold, so an uncertain write forces
// the next read back to the repo.
func (c *Cache) Upsert(ctx context.Context, p *Progress) error {
	err := c.repo.Upsert(ctx, p)
	c.Invalidate(p.UserID, p.TopicID)
	return err
}

// Invalidate drops the cached state for one (user, topic) pair. The whole
// user entry is marked stale so the next read refetches from the repo;
// partial eviction would make ListByUser lie about record existence.
func (c *Cache) Invalidate(userID uuid.UUID, topicID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.users, userID)
	delete(c.loaded, userID)
}

// ensure loads a user's records into the cache if not already present.
func (c *Cache) ensure(ctx context.Context, userID uuid.UUID) error {
	c.mu.RLock()
	ok := c.loaded[userID]
	c.mu.RUnlock()
	if ok {
		return nil
	}

	records, err := c.repo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	byTopic := make(map[string]*Progress, len(records))
	for _, p := range records {
		byTopic[p.TopicID] = p
	}
	c.users[userID] = byTopic
	c.loaded[userID] = true
	return nil
}
