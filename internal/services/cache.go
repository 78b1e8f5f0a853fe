package services

import (
	"sync"
	"time"
)

// rowCache memoizes raw sheet rows for a fixed TTL window. It is an
// optimization, not a correctness requirement: a cold cache simply means
// one extra upstream fetch per sheet.
type rowCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]rowCacheEntry
}

type rowCacheEntry struct {
	rows      [][]string
	expiresAt time.Time
}

func newRowCache(ttl time.Duration) *rowCache {
	return &rowCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]rowCacheEntry),
	}
}

// Get returns the cached rows for a sheet and whether they are still fresh
func (c *rowCache) Get(sheet string) ([][]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[sheet]
	if !exists || c.now().After(entry.expiresAt) {
		return nil, false
	}

	return entry.rows, true
}

// Set stores rows for a sheet until the TTL elapses. A non-positive TTL
// disables caching entirely.
func (c *rowCache) Set(sheet string, rows [][]string) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[sheet] = rowCacheEntry{
		rows:      rows,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Clear drops every cached sheet (the dashboard's "Refresh Data" action)
func (c *rowCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]rowCacheEntry)
}
