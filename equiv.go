package memocache

import "strings"

// Equivalent is implemented by query types that can be compared against a
// stored key of type K without converting the query into a K first.
//
// Equivalent(k) must report whether the query denotes the same key as k.
// Lookups return the first occupied slot, in slot order, for which it
// reports true.
type Equivalent[K any] interface {
	Equivalent(k K) bool
}

// GetBy returns the value for the key equivalent to q.
//
// Returns the zero value and false if no key is equivalent to q.
func GetBy[K comparable, V any, Q Equivalent[K]](c *Cache[K, V], q Q) (V, bool) {
	return c.GetFunc(q.Equivalent)
}

// GetMutBy returns a pointer to the value for the key equivalent to q, or nil
// if there is none.
func GetMutBy[K comparable, V any, Q Equivalent[K]](c *Cache[K, V], q Q) *V {
	return c.GetMutFunc(q.Equivalent)
}

// HasBy reports whether the cache holds a key equivalent to q.
func HasBy[K comparable, V any, Q Equivalent[K]](c *Cache[K, V], q Q) bool {
	return c.HasFunc(q.Equivalent)
}

// Bytes is a byte slice query for string-keyed caches.
//
// Looking up with Bytes does not allocate a string for the key.
type Bytes []byte

// Equivalent implements [Equivalent].
func (b Bytes) Equivalent(k string) bool {
	return string(b) == k
}

// Fold is a case-insensitive query for string-keyed caches.
type Fold string

// Equivalent implements [Equivalent] using [strings.EqualFold].
func (f Fold) Equivalent(k string) bool {
	return strings.EqualFold(string(f), k)
}
