package cache

import (
	"sync"
	"time"
)

// memoryEntry holds a cached value with its insertion time.
type memoryEntry struct {
	value   string
	addedAt time.Time
}

// InMemoryCache is a thread-safe in-memory cache with TTL support.
type InMemoryCache struct {
	entries map[string]memoryEntry
	mu      sync.RWMutex
	ttl     time.Duration
}

// NewInMemoryCache creates a new in-memory cache with the specified TTL.
// A zero or negative ttlSeconds means entries never expire.
func NewInMemoryCache(ttlSeconds int) *InMemoryCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}
	return &InMemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

// Get retrieves a value from the cache. Expired entries are removed on
// access and reported as misses.
func (c *InMemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}

	if c.ttl > 0 && time.Since(entry.addedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false
	}

	return entry.value, true
}

// Set stores a value in the cache.
func (c *InMemoryCache) Set(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{
		value:   value,
		addedAt: time.Now(),
	}
	return nil
}

// Len returns the number of entries in the cache, including expired ones
// that have not been touched since expiry.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries from the cache.
func (c *InMemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoryEntry)
}

// Entries returns all non-expired entries as key-value pairs, for export.
func (c *InMemoryCache) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string)
	now := time.Now()

	for key, entry := range c.entries {
		if c.ttl > 0 && now.Sub(entry.addedAt) > c.ttl {
			continue
		}
		out[key] = entry.value
	}
	return out
}

// Verify InMemoryCache implements TranslationCache
var _ TranslationCache = (*InMemoryCache)(nil)
