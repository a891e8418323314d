package memocache

import (
	"errors"
	"fmt"
	"testing"
)

func TestCacheStats(t *testing.T) {
	c := New[string, int](2)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3) // update, no eviction
	c.Set("c", 4) // evicts "a"

	c.Get("a") // miss
	c.Get("b") // hit
	c.Has("c") // hit

	c.GetOrInsertWith("b", func(string) int { return 0 }) // hit
	c.GetOrInsertWith("d", func(string) int { return 5 }) // miss, evicts "b"
	// miss, nothing stored
	c.GetOrTryInsertWith("e", func(string) (int, error) {
		return 0, errors.New("boom")
	})

	var s Stats
	c.UpdateStats(&s)

	want := Stats{
		GetCalls:     6,
		SetCalls:     5,
		Misses:       3,
		Hits:         3,
		Evictions:    2,
		EntriesCount: 2,
		MaxEntries:   2,
	}
	if s != want {
		t.Fatalf("unexpected stats; got %+v; want %+v", s, want)
	}
}

func TestCacheStatsFailedInsert(t *testing.T) {
	c := New[string, int](2)

	_, err := c.GetOrTryInsertWith("a", func(string) (int, error) {
		return 0, errors.New("boom")
	})
	if err == nil {
		t.Fatalf("expected error")
	}

	var s Stats
	c.UpdateStats(&s)

	want := Stats{
		GetCalls:   1,
		Misses:     1,
		MaxEntries: 2,
	}
	if s != want {
		t.Fatalf("unexpected stats after failed insert; got %+v; want %+v", s, want)
	}
}

func TestCacheStatsSurviveReset(t *testing.T) {
	c := New[int, int](10)

	for i := 0; i < 5; i++ {
		c.Set(i, i)
	}
	c.Reset()

	var s Stats
	c.UpdateStats(&s)
	if s.SetCalls != 5 {
		t.Fatalf("unexpected setCalls after reset; got %d; want 5", s.SetCalls)
	}
	if s.EntriesCount != 0 {
		t.Fatalf("unexpected entries count after reset; got %d; want 0", s.EntriesCount)
	}

	c.ResetStats()
	s.Reset()
	c.UpdateStats(&s)
	if s != (Stats{MaxEntries: 10}) {
		t.Fatalf("unexpected stats after ResetStats; got %+v", s)
	}
}

func TestCacheWrap(t *testing.T) {
	c := New[string, string](100)

	calls := 500

	for i := 0; i < calls; i++ {
		k := fmt.Sprintf("key %d", i)
		v := fmt.Sprintf("value %d", i)
		c.Set(k, v)
		vv, ok := c.Get(k)
		if !ok || vv != v {
			t.Fatalf("unexpected value for key %q; got %q; want %q", k, vv, v)
		}
	}

	// Only the last 100 keys survive.
	hits := 0
	for i := 0; i < calls; i++ {
		k := fmt.Sprintf("key %d", i)
		if _, ok := c.Get(k); ok {
			hits++
		}
	}
	if hits != 100 {
		t.Fatalf("unexpected number of hits; got %d; want 100", hits)
	}

	var s Stats
	c.UpdateStats(&s)
	if s.SetCalls != uint64(calls) {
		t.Fatalf("unexpected number of setCalls; got %d; want %d", s.SetCalls, calls)
	}
	if s.Evictions != uint64(calls-100) {
		t.Fatalf("unexpected number of evictions; got %d; want %d", s.Evictions, calls-100)
	}
	if s.EntriesCount != 100 {
		t.Fatalf("unexpected entries count; got %d; want 100", s.EntriesCount)
	}
	if s.MaxEntries != 100 {
		t.Fatalf("unexpected MaxEntries; got %d; want %d", s.MaxEntries, 100)
	}
}
