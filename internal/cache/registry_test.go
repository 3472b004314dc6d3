package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestRegistry_GetSet(t *testing.T) {
	r := NewRegistry()
	r.CreateCache("quotes", time.Minute)

	if ok := r.Set("quotes", "NVDA", 875.5); !ok {
		t.Fatal("set on existing cache failed")
	}
	v, ok := r.Get("quotes", "NVDA")
	if !ok {
		t.Fatal("expected hit")
	}
	if v.(float64) != 875.5 {
		t.Errorf("expected 875.5, got %v", v)
	}

	if ok := r.Set("missing", "k", 1); ok {
		t.Error("set on unknown cache should fail")
	}
	if _, ok := r.Get("missing", "k"); ok {
		t.Error("get on unknown cache should miss")
	}
}

func TestRegistry_TTLExpiry(t *testing.T) {
	base := time.Now()
	now := base
	r := NewRegistry()
	r.now = func() time.Time { return now }
	r.CreateCache("short", time.Minute)

	r.Set("short", "k", "v")
	now = base.Add(2 * time.Minute)
	if _, ok := r.Get("short", "k"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestRegistry_TTLExactBoundary(t *testing.T) {
	base := time.Now()
	now := base
	r := NewRegistry()
	r.now = func() time.Time { return now }
	r.CreateCache("short", time.Minute)

	r.Set("short", "k", "v")

	// Valid strictly inside the TTL, gone the instant it is reached.
	now = base.Add(time.Minute - time.Nanosecond)
	if _, ok := r.Get("short", "k"); !ok {
		t.Error("expected hit just inside the TTL")
	}
	now = base.Add(time.Minute)
	if _, ok := r.Get("short", "k"); ok {
		t.Error("expected miss at exactly the TTL")
	}
}

func TestRegistry_DeletePrefix(t *testing.T) {
	r := NewRegistry()
	r.CreateCache("a", time.Minute)
	r.CreateCache("b", time.Minute)
	r.Set("a", "NVDA_11", 1)
	r.Set("a", "NVDA_12", 2)
	r.Set("a", "AAPL_11", 3)
	r.Set("b", "NVDA_5", 4)

	if removed := r.DeletePrefix("", "NVDA_"); removed != 3 {
		t.Errorf("expected 3 removed across caches, got %d", removed)
	}
	if _, ok := r.Get("a", "AAPL_11"); !ok {
		t.Error("unrelated ticker entry should survive")
	}
	if _, ok := r.Get("a", "NVDA_11"); ok {
		t.Error("prefixed entry should be gone")
	}
}

func TestRegistry_EvictsOldest30Percent(t *testing.T) {
	base := time.Now()
	now := base
	r := NewRegistry()
	r.now = func() time.Time { return now }
	r.CreateCache("big", time.Hour)

	// Fill to capacity with increasing timestamps.
	for i := 0; i < maxEntries; i++ {
		now = base.Add(time.Duration(i) * time.Second)
		r.Set("big", fmt.Sprintf("k%d", i), i)
	}

	// Next set triggers eviction of the oldest 30.
	r.Set("big", "overflow", true)

	status := r.Status()["big"]
	want := maxEntries - maxEntries*30/100 + 1
	if status.Size != want {
		t.Errorf("expected %d entries after eviction, got %d", want, status.Size)
	}

	// The oldest keys are gone, the newest survive.
	if _, ok := r.Get("big", "k0"); ok {
		t.Error("oldest entry should be evicted")
	}
	if _, ok := r.Get("big", fmt.Sprintf("k%d", maxEntries-1)); !ok {
		t.Error("newest entry should survive eviction")
	}
}

func TestRegistry_ClearScopes(t *testing.T) {
	r := NewRegistry()
	r.CreateCache("a", time.Minute)
	r.CreateCache("b", time.Minute)
	r.Set("a", "1", 1)
	r.Set("a", "2", 2)
	r.Set("b", "1", 1)

	if removed := r.Clear("a"); removed != 2 {
		t.Errorf("expected 2 removed from cache a, got %d", removed)
	}
	if removed := r.Clear(""); removed != 1 {
		t.Errorf("expected 1 removed from remaining caches, got %d", removed)
	}
}
