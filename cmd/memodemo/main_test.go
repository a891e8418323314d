package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"go.dw1.io/memocache"
)

func countingCalculation(calls *int) calculation {
	return func(x int) float32 {
		*calls++

		return float32(x) / 2
	}
}

func TestProcessVariantsAgree(t *testing.T) {
	require := require.New(t)

	var calls int
	p := newProcess(8, countingCalculation(&calls))

	for _, x := range []int{1, 2, 3, 1, 2, 3, 40, -7} {
		want := p.regular(x)
		require.Equal(want, p.memoizedMap(x))
		require.Equal(want, p.memoizedGetSet(x))
		require.Equal(want, p.memoizedGetOrInsert(x))
		require.Equal(want, p.memoizedFunc(x))
	}
}

func TestProcessBoundedStaysBounded(t *testing.T) {
	require := require.New(t)

	var calls int
	p := newProcess(4, countingCalculation(&calls))

	for x := 0; x < 100; x++ {
		p.memoizedMap(x)
		p.memoizedGetOrInsert(x)
		p.memoizedFunc(x)
	}

	require.Len(p.unbounded, 100)
	require.Equal(4, p.bounded.Len())
	require.Equal(4, p.wrapped.Len())
}

func TestProcessMemoizedSkipsRecomputation(t *testing.T) {
	var calls int
	p := newProcess(4, countingCalculation(&calls))

	for i := 0; i < 10; i++ {
		p.memoizedGetSet(5)
	}

	require.Equal(t, 1, calls)
}

func TestSampleInputsDeterministic(t *testing.T) {
	require := require.New(t)

	a := sampleInputs(50, 30, 7)
	b := sampleInputs(50, 30, 7)
	require.Equal(a, b)
	require.Len(a, 50)
}

func TestRun(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	err := run(&out, config{
		inputs:   20,
		capacity: 8,
		sigma:    5,
		seed:     1,
		metrics:  true,
	})
	require.NoError(err)

	s := out.String()
	require.Contains(s, "Timing results:")
	require.Contains(s, "Memoized (memo.Func):")
	require.Contains(s, fmt.Sprintf("%d bytes reserved", memocache.New[int, float32](8).Size()))
	require.Contains(s, "memocache_lookups_total 20")
	require.Contains(s, "memocache_compute_seconds count=")
}

func TestRunInvalidConfig(t *testing.T) {
	require.Error(t, run(&bytes.Buffer{}, config{inputs: 0, capacity: 8}))
	require.Error(t, run(&bytes.Buffer{}, config{inputs: 10, capacity: 0}))
}
