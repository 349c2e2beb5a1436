package content

import (
	"slices"
	"sync"
	"time"
)

type cacheEntry struct {
	body      []byte
	expiresAt time.Time
	tags      []string
}

// tagCache is a freshness-bounded response cache with tag invalidation.
// Entries expire after their revalidate window or when any of their tags is
// invalidated, whichever comes first.
type tagCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

func newTagCache() *tagCache {
	c := &tagCache{entries: make(map[string]*cacheEntry)}
	go c.cleanupLoop()
	return c
}

// cleanupLoop periodically removes expired entries so the map does not grow
// with every distinct path fetched over the process lifetime.
func (c *tagCache) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for key, entry := range c.entries {
			if now.After(entry.expiresAt) {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}

func (c *tagCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.body, true
}

func (c *tagCache) set(key string, body []byte, ttl time.Duration, tags []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &cacheEntry{
		body:      body,
		expiresAt: time.Now().Add(ttl),
		tags:      slices.Clone(tags),
	}
}

func (c *tagCache) invalidate(tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.entries {
		for _, tag := range tags {
			if slices.Contains(entry.tags, tag) {
				delete(c.entries, key)
				break
			}
		}
	}
}
