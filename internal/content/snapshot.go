package content

import (
	"sync"
	"time"
)

// snapshot is one cached response. The value is never mutated after it is
// stored; refresh swaps the whole entry.
type snapshot struct {
	value     interface{}
	fetchedAt time.Time
}

// SnapshotCache memoizes content API responses per endpoint+query key with a
// TTL. A failed refresh serves the previous snapshot so a flaky content API
// never blanks a rendered page.
type SnapshotCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]snapshot
	now     func() time.Time
}

// NewSnapshotCache creates a cache with the given TTL.
func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		ttl:     ttl,
		entries: make(map[string]snapshot),
		now:     time.Now,
	}
}

// Get returns the snapshot under key when fresh. The second return reports a
// usable value, the third whether it is still fresh.
func (c *SnapshotCache) Get(key string) (interface{}, bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, false
	}
	fresh := c.now().Sub(entry.fetchedAt) < c.ttl
	return entry.value, true, fresh
}

// Put replaces the snapshot under key.
func (c *SnapshotCache) Put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = snapshot{value: value, fetchedAt: c.now()}
}

// Fetch returns the fresh snapshot under key, refreshing through fn when the
// entry is stale or absent. When fn fails and a stale snapshot exists, the
// stale value is served and the error swallowed; with no snapshot at all the
// error propagates.
func (c *SnapshotCache) Fetch(key string, fn func() (interface{}, error)) (interface{}, error) {
	value, ok, fresh := c.Get(key)
	if ok && fresh {
		return value, nil
	}

	refreshed, err := fn()
	if err != nil {
		if ok {
			return value, nil
		}
		return nil, err
	}

	c.Put(key, refreshed)
	return refreshed, nil
}
