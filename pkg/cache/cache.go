// Package cache provides the time-boxed payload cache used by the upstream
// feed fetcher. Keys are fully-qualified upstream request URLs; values are
// raw page payloads. A key is only ever replaced whole, never partially
// mutated, and staleness is bounded solely by the TTL.
package cache

import (
	"context"
	"sync"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
}

type memoryEntry struct {
	storedAt time.Time
	payload  []byte
}

// MemoryCache is a process-local TTL cache. Expired entries are evicted
// lazily on the next lookup of their key.
type MemoryCache struct {
	ttl time.Duration

	mu    sync.RWMutex
	items map[string]memoryEntry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:   ttl,
		items: make(map[string]memoryEntry),
	}
}

// Get implements Cache.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Since(e.storedAt) >= c.ttl {
		c.mu.Lock()
		if cur, still := c.items[key]; still && cur.storedAt.Equal(e.storedAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()

		return nil, false
	}

	return e.payload, true
}

// Set implements Cache.
func (c *MemoryCache) Set(_ context.Context, key string, payload []byte) {
	c.mu.Lock()
	c.items[key] = memoryEntry{
		storedAt: time.Now(),
		payload:  payload,
	}
	c.mu.Unlock()
}
