package memocache

// Stats represents cache stats.
//
// Use [Cache.UpdateStats] for obtaining fresh stats from the cache.
type Stats struct {
	// GetCalls is the number of lookups, including the lookups made by
	// GetOrInsertWith and GetOrTryInsertWith.
	GetCalls uint64

	// SetCalls is the number of stored entries, either by Set or by a
	// successful get-or-insert miss.
	SetCalls uint64

	// Misses is the number of cache misses.
	Misses uint64

	// Hits is the number of cache hits.
	Hits uint64

	// Evictions is the number of entries overwritten due to capacity limits.
	Evictions uint64

	// EntriesCount is the current number of entries in the cache.
	EntriesCount uint64

	// MaxEntries is the maximum number of entries allowed in the cache.
	MaxEntries uint64
}

// UpdateStats adds cache stats to s.
//
// Call [Stats.Reset] before calling UpdateStats if s is re-used.
func (c *Cache[K, V]) UpdateStats(s *Stats) {
	s.GetCalls += c.getCalls
	s.SetCalls += c.setCalls
	s.Misses += c.misses
	s.Evictions += c.evictions

	s.EntriesCount = uint64(c.Len())
	s.Hits = s.GetCalls - s.Misses
	s.MaxEntries = uint64(len(c.slots))
}

// ResetStats zeroes the stats counters of the cache.
func (c *Cache[K, V]) ResetStats() {
	c.getCalls = 0
	c.setCalls = 0
	c.misses = 0
	c.evictions = 0
}

// Reset resets s, so it may be re-used again in [Cache.UpdateStats].
func (s *Stats) Reset() {
	*s = Stats{}
}
