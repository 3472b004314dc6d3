package cache

import (
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultTTL applies to registry caches created without an explicit TTL.
	DefaultTTL = 5 * time.Minute

	// maxEntries caps each named cache; exceeding it evicts the oldest 30%.
	maxEntries = 100
)

type registryEntry struct {
	value      any
	insertedAt time.Time
}

type namedCache struct {
	data map[string]registryEntry
	ttl  time.Duration
}

// Registry is a named-cache registry for ad-hoc memoization beyond the
// purpose-built seasonal and analysis caches. Safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	caches map[string]*namedCache
	now    func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		caches: make(map[string]*namedCache),
		now:    time.Now,
	}
}

// CreateCache registers a named cache with the given TTL. Creating an
// existing cache is a no-op.
func (r *Registry) CreateCache(name string, ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.caches[name]; ok {
		return
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	r.caches[name] = &namedCache{data: make(map[string]registryEntry), ttl: ttl}
}

// Get returns the cached value and true if present and unexpired.
// Expired entries are deleted lazily on read.
func (r *Registry) Get(name, key string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.caches[name]
	if !ok {
		return nil, false
	}
	e, ok := c.data[key]
	if !ok {
		return nil, false
	}
	if r.now().Sub(e.insertedAt) >= c.ttl {
		delete(c.data, key)
		return nil, false
	}
	return e.value, true
}

// Set stores a value in the named cache, evicting the oldest 30% of
// entries first when the cache is full. Returns false if the cache does
// not exist.
func (r *Registry) Set(name, key string, value any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.caches[name]
	if !ok {
		return false
	}
	if len(c.data) >= maxEntries {
		evictOldest(c)
	}
	c.data[key] = registryEntry{value: value, insertedAt: r.now()}
	return true
}

// evictOldest removes the oldest 30% of entries by insertion timestamp.
func evictOldest(c *namedCache) {
	type kv struct {
		key string
		at  time.Time
	}
	entries := make([]kv, 0, len(c.data))
	for k, e := range c.data {
		entries = append(entries, kv{k, e.insertedAt})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].at.Before(entries[j].at) })
	deleteCount := maxEntries * 30 / 100
	for i := 0; i < deleteCount && i < len(entries); i++ {
		delete(c.data, entries[i].key)
	}
}

// Clear empties the named cache, or every cache when name is empty.
// Returns the number of entries removed.
func (r *Registry) Clear(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	if name != "" {
		if c, ok := r.caches[name]; ok {
			removed = len(c.data)
			c.data = make(map[string]registryEntry)
		}
		return removed
	}
	for _, c := range r.caches {
		removed += len(c.data)
		c.data = make(map[string]registryEntry)
	}
	return removed
}

// DeletePrefix removes entries whose key starts with prefix from the
// named cache, or from every cache when name is empty. Returns the
// number of entries removed.
func (r *Registry) DeletePrefix(name, prefix string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for n, c := range r.caches {
		if name != "" && n != name {
			continue
		}
		for k := range c.data {
			if strings.HasPrefix(k, prefix) {
				delete(c.data, k)
				removed++
			}
		}
	}
	return removed
}

// Status reports size and TTL per named cache.
func (r *Registry) Status() map[string]CacheStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	status := make(map[string]CacheStatus, len(r.caches))
	for name, c := range r.caches {
		status[name] = CacheStatus{Size: len(c.data), TTL: c.ttl}
	}
	return status
}
