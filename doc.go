// Package memocache provides a small, fixed-capacity, generic key-value
// cache for memoizing expensive computations.
//
// Unlike a map, a [Cache] never grows: its slots are allocated once by
// [New], which puts a hard ceiling on the memory spent on memoized results
// at the price of a lower hit rate.
//
// # Architecture
//
// A cache is a flat array of slots, each either empty or holding one
// key-value pair, plus a cursor pointing at the next slot to overwrite.
// There is no hashing: every lookup scans the slots in index order. For
// the small capacities this package is meant for, the scan is cheap and
// keeps the memory layout flat and predictable.
//
// # Eviction
//
// Inserting a key that is not present writes it at the cursor and moves
// the cursor forward, wrapping around at the end. Once the cache is full,
// this evicts keys in the order they were first inserted (FIFO - First In,
// First Out).
//
// Reads and updates do not affect the eviction order. A key that is read
// often but never re-inserted is still evicted after capacity other
// distinct keys have been inserted behind it; this is FIFO, not LRU.
//
// # Memoization
//
// [Cache.GetOrInsertWith] and [Cache.GetOrTryInsertWith] look a key up and
// call the given function only on a miss, storing its result. The fallible
// variant stores nothing when the function returns an error.
//
// # Lookups by equivalent keys
//
// [GetBy], [GetMutBy] and [HasBy] accept any query type implementing
// [Equivalent], so a string-keyed cache may be queried with [Bytes] without
// allocating a string.
//
// # Thread Safety
//
// [Cache] methods are not safe for concurrent use. Callers sharing a cache
// between goroutines must guard it with their own lock; the memo
// subpackage does this for memoized functions.
package memocache
