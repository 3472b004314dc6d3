package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"StockCompass/internal/model"
)

// AnalysisTTL is how long a full per-ticker analysis bundle stays valid.
const AnalysisTTL = 5 * time.Minute

type analysisEntry struct {
	analysis   *model.StockAnalysis
	insertedAt time.Time
}

// AnalysisCache keeps full per-ticker analysis bundles so trivial UI
// re-renders do not re-query every external service. Entries are keyed
// by ticker, requested month, and the current hour bucket, so a fresh
// analysis is forced at the top of each hour even within the TTL and
// different months never alias each other.
type AnalysisCache struct {
	mu      sync.RWMutex
	entries map[string]analysisEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewAnalysisCache creates an empty cache with the default TTL.
func NewAnalysisCache() *AnalysisCache {
	return &AnalysisCache{
		entries: make(map[string]analysisEntry),
		ttl:     AnalysisTTL,
		now:     time.Now,
	}
}

func (c *AnalysisCache) key(ticker string, month time.Month) string {
	return fmt.Sprintf("%s_%d_%d", ticker, int(month), c.now().Hour())
}

// Get returns the cached analysis for the ticker and month in the
// current hour bucket, or nil if absent or expired.
func (c *AnalysisCache) Get(ticker string, month time.Month) *model.StockAnalysis {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[c.key(ticker, month)]
	if !ok || c.now().Sub(e.insertedAt) >= c.ttl {
		return nil
	}
	return e.analysis
}

// Set stores the analysis for the ticker and month in the current hour
// bucket.
func (c *AnalysisCache) Set(ticker string, month time.Month, analysis *model.StockAnalysis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[c.key(ticker, month)] = analysisEntry{analysis: analysis, insertedAt: c.now()}
}

// Delete removes every bucket for the given ticker across all months
// and hours, and returns how many entries were removed.
func (c *AnalysisCache) Delete(ticker string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	prefix := ticker + "_"
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Clear empties all entries and returns how many were removed.
func (c *AnalysisCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]analysisEntry)
	return n
}

// Sweep deletes expired entries and returns how many were removed.
func (c *AnalysisCache) Sweep() int {
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
func (c *AnalysisCache) Status() CacheStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return CacheStatus{Size: len(c.entries), TTL: c.ttl, Keys: keys}
}
