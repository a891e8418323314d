package main

import (
	"math"
	"time"

	"go.dw1.io/memocache"
	"go.dw1.io/memocache/memo"
)

// calculation stands in for an expensive pure function.
type calculation func(x int) float32

func fakeCalculation(delay time.Duration) calculation {
	return func(int) float32 {
		time.Sleep(delay)

		return math.Pi
	}
}

// process holds the caches compared by the demo. The unbounded map grows
// with every distinct input; the memocache caches never exceed capacity.
type process struct {
	calc calculation

	unbounded map[int]float32
	bounded   *memocache.Cache[int, float32]
	wrapped   *memo.Func[int, float32]
}

func newProcess(capacity int, calc calculation, opts ...memo.Option) *process {
	return &process{
		calc:      calc,
		unbounded: make(map[int]float32),
		bounded:   memocache.New[int, float32](capacity),
		wrapped:   memo.Wrap[int, float32](capacity, calc, opts...),
	}
}

// regular pays for the calculation on every call.
func (p *process) regular(x int) float32 {
	return p.calc(x)
}

// memoizedMap caches in a map, with no retention management.
func (p *process) memoizedMap(x int) float32 {
	if v, ok := p.unbounded[x]; ok {
		return v
	}
	v := p.calc(x)
	p.unbounded[x] = v

	return v
}

// memoizedGetSet caches in a memocache.Cache using Get and Set.
func (p *process) memoizedGetSet(x int) float32 {
	if v, ok := p.bounded.Get(x); ok {
		return v
	}
	v := p.calc(x)
	p.bounded.Set(x, v)

	return v
}

// memoizedGetOrInsert caches in a memocache.Cache using GetOrInsertWith.
func (p *process) memoizedGetOrInsert(x int) float32 {
	return p.bounded.GetOrInsertWith(x, p.calc)
}

// memoizedFunc caches through a memo.Func.
func (p *process) memoizedFunc(x int) float32 {
	return p.wrapped.MustCall(x)
}

// timed runs f over inputs and returns the elapsed time.
func timed(inputs []int, f func(int) float32) time.Duration {
	start := time.Now()
	var sum float32
	for _, x := range inputs {
		sum += f(x)
	}
	_ = sum

	return time.Since(start)
}
