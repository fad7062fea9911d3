package cache

import (
	"testing"
	"time"
)

func TestInMemoryCache(t *testing.T) {
	c := NewInMemoryCache(3600)

	if _, ok := c.Get("missing"); ok {
		t.Error("empty cache should miss")
	}

	if err := c.Set("k1", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok := c.Get("k1")
	if !ok || got != "v1" {
		t.Errorf("Get = %q, %v", got, ok)
	}

	// Overwrite
	if err := c.Set("k1", "v2"); err != nil {
		t.Fatal(err)
	}
	if got, _ := c.Get("k1"); got != "v2" {
		t.Errorf("after overwrite Get = %q", got)
	}

	if c.Len() != 1 {
		t.Errorf("Len = %d", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
}

func TestInMemoryCacheExpiry(t *testing.T) {
	c := NewInMemoryCache(1)
	if err := c.Set("k", "v"); err != nil {
		t.Fatal(err)
	}

	// Fake an old entry rather than sleeping past the TTL.
	c.mu.Lock()
	c.entries["k"] = memoryEntry{value: "v", addedAt: time.Now().Add(-2 * time.Second)}
	c.mu.Unlock()

	if _, ok := c.Get("k"); ok {
		t.Error("expired entry should miss")
	}
	// Expired entries are dropped on access.
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestInMemoryCacheNoExpiry(t *testing.T) {
	c := NewInMemoryCache(0)
	if err := c.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	c.mu.Lock()
	c.entries["k"] = memoryEntry{value: "v", addedAt: time.Now().Add(-24 * time.Hour)}
	c.mu.Unlock()

	if _, ok := c.Get("k"); !ok {
		t.Error("ttl 0 entries must never expire")
	}
}

func TestInMemoryCacheEntries(t *testing.T) {
	c := NewInMemoryCache(60)
	_ = c.Set("a", "1")
	_ = c.Set("b", "2")

	c.mu.Lock()
	c.entries["stale"] = memoryEntry{value: "x", addedAt: time.Now().Add(-2 * time.Minute)}
	c.mu.Unlock()

	entries := c.Entries()
	if len(entries) != 2 {
		t.Errorf("Entries = %v, want 2 live entries", entries)
	}
	if entries["a"] != "1" || entries["b"] != "2" {
		t.Errorf("unexpected entries: %v", entries)
	}
}
