package cache

import (
	"fmt"
	"sync"
	"time"
)

// SeasonalTTL is how long a cached seasonal score stays valid.
const SeasonalTTL = 5 * time.Minute

type seasonalEntry struct {
	score      float64
	insertedAt time.Time
}

// SeasonalScoreCache shares one computed seasonal score per (ticker, month)
// across callers so the expensive news analysis runs once per TTL window.
// Safe for concurrent use.
type SeasonalScoreCache struct {
	mu      sync.RWMutex
	entries map[string]seasonalEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewSeasonalScoreCache creates an empty cache with the default TTL.
func NewSeasonalScoreCache() *SeasonalScoreCache {
	return &SeasonalScoreCache{
		entries: make(map[string]seasonalEntry),
		ttl:     SeasonalTTL,
		now:     time.Now,
	}
}

func seasonalKey(ticker string, month int) string {
	return fmt.Sprintf("%s_%d", ticker, month)
}

// SetScore overwrites the entry for (ticker, month) unconditionally.
func (c *SeasonalScoreCache) SetScore(ticker string, month int, score float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[seasonalKey(ticker, month)] = seasonalEntry{score: score, insertedAt: c.now()}
}

// GetScore returns the cached score and true if the entry exists and has
// not expired. Expired entries are treated as absent.
func (c *SeasonalScoreCache) GetScore(ticker string, month int) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[seasonalKey(ticker, month)]
	if !ok || c.now().Sub(e.insertedAt) >= c.ttl {
		return 0, false
	}
	return e.score, true
}

// Delete removes every month's entry for the given ticker and returns
// how many were removed.
func (c *SeasonalScoreCache) Delete(ticker string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for m := 1; m <= 12; m++ {
		k := seasonalKey(ticker, m)
		if _, ok := c.entries[k]; ok {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Clear empties all entries and returns how many were removed.
func (c *SeasonalScoreCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]seasonalEntry)
	return n
}

// Sweep deletes expired entries and returns how many were removed.
// Called periodically by the scheduler; reads already ignore expired
// entries, so this only reclaims memory.
func (c *SeasonalScoreCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for k, e := range c.entries {
		if c.now().Sub(e.insertedAt) >= c.ttl {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Status reports the cache size, TTL, and current keys.
func (c *SeasonalScoreCache) Status() CacheStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return CacheStatus{Size: len(c.entries), TTL: c.ttl, Keys: keys}
}

// CacheStatus describes one cache for the status endpoint.
type CacheStatus struct {
	Size int           `json:"size"`
	TTL  time.Duration `json:"ttl"`
	Keys []string      `json:"keys,omitempty"`
}
