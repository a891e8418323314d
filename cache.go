package memocache

import (
	"fmt"
	"iter"
	"unsafe"
)

// Cache is a fixed-capacity key-value cache with FIFO eviction.
//
// All slots are allocated by [New] and never grow, so the memory used by a
// Cache is fixed for its whole lifetime. Lookups scan the slots in index
// order, which makes Cache a good fit for small capacities (tens to a few
// hundred entries) and a poor fit for large ones.
//
// Cache is not safe for concurrent use. Guard it with a mutex or keep it
// confined to a single goroutine; see the memo package for a wrapper that
// does the former.
type Cache[K comparable, V any] struct {
	slots  []slot[K, V]
	cursor int // next slot overwritten by a new-key insertion

	// stats (hits computed as getCalls - misses)
	getCalls  uint64
	setCalls  uint64
	misses    uint64
	evictions uint64
}

// New returns a new empty cache holding at most capacity entries.
//
// When the cache is full, every insertion of a new key evicts the key that
// was inserted first (FIFO). Updating an existing key never evicts anything.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		panic(fmt.Errorf("capacity must be greater than 0; got %d", capacity))
	}

	return &Cache[K, V]{
		slots: make([]slot[K, V], capacity),
	}
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache[K, V]) Capacity() int {
	return len(c.slots)
}

// Size returns the number of bytes reserved for the slots of the cache.
//
// It includes per-slot bookkeeping and padding, but not the Cache header
// or memory referenced by keys and values (string data, pointers, etc.).
func (c *Cache[K, V]) Size() int {
	return len(c.slots) * int(unsafe.Sizeof(slot[K, V]{}))
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	n := 0
	for i := range c.slots {
		if c.slots[i].occupied {
			n++
		}
	}

	return n
}

// Set stores (k, v) in the cache.
//
// If k is already present, only its value is replaced: the entry keeps its
// position in the eviction order. Otherwise (k, v) is written to the oldest
// slot, evicting the entry stored there once the cache is full.
func (c *Cache[K, V]) Set(k K, v V) {
	c.setCalls++
	c.store(k, v)
}

// Get returns the value for the given key.
//
// Returns the zero value and false if the key is not found.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	return c.lookup(c.index(k))
}

// GetMut returns a pointer to the value stored for the given key, or nil if
// the key is not found.
//
// The pointer stays valid until the entry is evicted or the cache is reset.
// Writing through it does not change the eviction order.
func (c *Cache[K, V]) GetMut(k K) *V {
	return c.lookupMut(c.index(k))
}

// Has returns true if entry for the given key exists in the cache.
func (c *Cache[K, V]) Has(k K) bool {
	_, ok := c.Get(k)

	return ok
}

// GetFunc returns the value of the first entry, in slot order, whose key
// satisfies match.
func (c *Cache[K, V]) GetFunc(match func(K) bool) (V, bool) {
	return c.lookup(c.indexFunc(match))
}

// GetMutFunc is like [Cache.GetMut] but matches keys with match.
func (c *Cache[K, V]) GetMutFunc(match func(K) bool) *V {
	return c.lookupMut(c.indexFunc(match))
}

// HasFunc reports whether any key in the cache satisfies match.
func (c *Cache[K, V]) HasFunc(match func(K) bool) bool {
	_, ok := c.GetFunc(match)

	return ok
}

// GetOrInsertWith returns the existing value for the key if present.
// Otherwise, it calls f once with the key, stores the result and returns it.
//
// f is never called on a hit.
func (c *Cache[K, V]) GetOrInsertWith(k K, f func(K) V) V {
	if v, ok := c.Get(k); ok {
		return v
	}

	v := f(k)
	c.setCalls++
	c.store(k, v)

	return v
}

// GetOrTryInsertWith is like [Cache.GetOrInsertWith], but f may fail.
//
// If f returns an error, nothing is stored, the eviction order is left as
// it was, and the error is returned as is. The lookup is still counted as a
// miss in [Stats].
func (c *Cache[K, V]) GetOrTryInsertWith(k K, f func(K) (V, error)) (V, error) {
	if v, ok := c.Get(k); ok {
		return v, nil
	}

	v, err := f(k)
	if err != nil {
		var zero V

		return zero, err
	}
	c.setCalls++
	c.store(k, v)

	return v, nil
}

// Reset removes all the items from the cache.
//
// The capacity is unchanged and the stats counters are kept; use
// [Cache.ResetStats] to zero them.
func (c *Cache[K, V]) Reset() {
	clear(c.slots)
	c.cursor = 0
}

// All returns an iterator over all key-value pairs in the cache, in slot
// order.
//
// The cache must not be modified during iteration.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range c.slots {
			s := &c.slots[i]
			if s.occupied && !yield(s.key, s.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in the cache, in slot order.
func (c *Cache[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range c.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in the cache, in slot order.
func (c *Cache[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range c.All() {
			if !yield(v) {
				return
			}
		}
	}
}
