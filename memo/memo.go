// Package memo memoizes functions with a fixed-capacity memocache.Cache.
//
// A [Func] owns its cache and guards it with a mutex, so it may be called
// from multiple goroutines. The wrapped function runs without the lock held,
// which lets it call the same Func recursively:
//
//	var fib *memo.Func[int, int]
//	fib = memo.Wrap(64, func(n int) int {
//		if n < 2 {
//			return n
//		}
//		return fib.MustCall(n-1) + fib.MustCall(n-2)
//	})
//
// Concurrent callers missing on the same key may each run the wrapped
// function; the last result stored wins.
package memo

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"go.dw1.io/memocache"
	"go.dw1.io/memocache/stats"
)

// Func is a memoized function from K to V.
type Func[K comparable, V any] struct {
	mu    sync.Mutex
	cache *memocache.Cache[K, V]
	fn    func(K) (V, error)

	opts      options
	evictions uint64 // last eviction count reported to opts.stats
}

// New returns a memoized version of fn keeping at most capacity results.
//
// Results are cached only when fn returns a nil error. fn may call the
// returned Func, directly or indirectly, for other keys.
func New[K comparable, V any](capacity int, fn func(K) (V, error), opts ...Option) *Func[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &Func[K, V]{
		cache: memocache.New[K, V](capacity),
		fn:    fn,
		opts:  o,
	}
}

// Wrap is like [New] for functions that cannot fail.
func Wrap[K comparable, V any](capacity int, fn func(K) V, opts ...Option) *Func[K, V] {
	return New(capacity, func(k K) (V, error) {
		return fn(k), nil
	}, opts...)
}

// Call returns the memoized result for k, calling the wrapped function on a
// miss.
//
// Errors from the wrapped function are returned as is and nothing is
// cached for k.
func (f *Func[K, V]) Call(k K) (V, error) {
	f.mu.Lock()
	v, ok := f.cache.Get(k)
	f.mu.Unlock()

	f.opts.stats.IncCounter(stats.MetricLookups, 1)
	if ok {
		f.opts.stats.IncCounter(stats.MetricHits, 1)

		return v, nil
	}
	f.opts.stats.IncCounter(stats.MetricMisses, 1)

	v, err := f.compute(k)
	if err != nil {
		var zero V

		return zero, err
	}

	f.store(k, v)

	return v, nil
}

// MustCall is like Call but panics if the wrapped function fails.
func (f *Func[K, V]) MustCall(k K) V {
	v, err := f.Call(k)
	if err != nil {
		panic(err)
	}

	return v
}

// Capacity returns the maximum number of results kept.
func (f *Func[K, V]) Capacity() int {
	return f.cache.Capacity()
}

// Len returns the number of results currently cached.
func (f *Func[K, V]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.cache.Len()
}

// Reset drops all cached results.
func (f *Func[K, V]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cache.Reset()
	f.opts.stats.SetGauge(stats.MetricEntries, 0)
	f.opts.logger.Debug("memo reset", zap.String("name", f.opts.name))
}

// UpdateStats adds the stats of the underlying cache to s.
func (f *Func[K, V]) UpdateStats(s *memocache.Stats) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cache.UpdateStats(s)
}

func (f *Func[K, V]) compute(k K) (V, error) {
	start := time.Now()
	v, err := f.fn(k)
	elapsed := time.Since(start)

	f.opts.stats.ObserveHistogram(stats.MetricComputeSeconds, elapsed.Seconds())
	if err != nil {
		f.opts.stats.IncCounter(stats.MetricComputeErrors, 1)
		f.opts.logger.Warn("memo compute failed",
			zap.String("name", f.opts.name),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)

		return v, err
	}

	f.opts.logger.Debug("memo computed",
		zap.String("name", f.opts.name),
		zap.Duration("duration", elapsed),
	)

	return v, nil
}

// store caches v for k and reports the resulting evictions and entries.
func (f *Func[K, V]) store(k K, v V) {
	f.mu.Lock()
	f.cache.Set(k, v)

	var s memocache.Stats
	f.cache.UpdateStats(&s)
	evicted := s.Evictions - f.evictions
	f.evictions = s.Evictions
	f.mu.Unlock()

	if evicted > 0 {
		f.opts.stats.IncCounter(stats.MetricEvictions, int64(evicted))
	}
	f.opts.stats.SetGauge(stats.MetricEntries, int64(s.EntriesCount))
}
