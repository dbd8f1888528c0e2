// Package entitycache is a key-addressed cache for single-entity
// detail fetches. Concurrent fetches of the same key are deduplicated;
// a cached value is served until the key is explicitly invalidated.
// Mutating an entity must invalidate its key; there is no automatic
// invalidation on write and no TTL.
package entitycache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Key builds the canonical cache key for an entity, e.g.
// Key("work-order", id) -> "work-order:<id>".
func Key(entityType, id string) string {
	return entityType + ":" + id
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
	group   singleflight.Group
}

func New() *Cache {
	return &Cache{entries: map[string]any{}}
}

// Get returns the cached value for key, fetching it at most once
// across concurrent callers on a miss.
func (c *Cache) Get(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check: another caller may have populated the key between
		// the read above and winning the flight.
		c.mu.RLock()
		cached, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		fetched, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = fetched
		c.mu.Unlock()
		return fetched, nil
	})
	return v, err
}

// Invalidate drops the key so the next Get refetches. Callers must
// invalidate after every mutation of the underlying entity.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Put stores a value directly, for callers that already hold the fresh
// entity after a mutation.
func (c *Cache) Put(key string, value any) {
	c.mu.Lock()
	c.entries[key] = value
	c.mu.Unlock()
}

// GetTyped is Get with the stored value asserted to T.
func GetTyped[T any](ctx context.Context, c *Cache, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
