package memocache

// slot holds a key-value pair. occupied tells an empty slot apart from one
// storing zero values.
type slot[K comparable, V any] struct {
	key      K
	value    V
	occupied bool
}

func (c *Cache[K, V]) index(k K) int {
	for i := range c.slots {
		if s := &c.slots[i]; s.occupied && s.key == k {
			return i
		}
	}

	return -1
}

func (c *Cache[K, V]) indexFunc(match func(K) bool) int {
	for i := range c.slots {
		if s := &c.slots[i]; s.occupied && match(s.key) {
			return i
		}
	}

	return -1
}

func (c *Cache[K, V]) lookup(i int) (V, bool) {
	c.getCalls++
	if i < 0 {
		c.misses++

		var zero V

		return zero, false
	}

	return c.slots[i].value, true
}

func (c *Cache[K, V]) lookupMut(i int) *V {
	c.getCalls++
	if i < 0 {
		c.misses++

		return nil
	}

	return &c.slots[i].value
}

// store updates k in place if present, or pushes (k, v) at the cursor.
//
// The get-or-insert paths call store after running the caller's function,
// which may itself have stored k, so they cannot assume a miss.
func (c *Cache[K, V]) store(k K, v V) {
	if i := c.index(k); i >= 0 {
		c.slots[i].value = v

		return
	}

	c.push(k, v)
}

// push overwrites the slot at the cursor and advances it, which makes the
// slots a ring buffer ordered by first insertion.
func (c *Cache[K, V]) push(k K, v V) {
	s := &c.slots[c.cursor]
	if s.occupied {
		c.evictions++
	}
	*s = slot[K, V]{key: k, value: v, occupied: true}
	c.cursor = (c.cursor + 1) % len(c.slots)
}
