// Package stats provides a unified interface for reporting memoization
// metrics.
package stats

// Metric names reported by memoized functions.
const (
	MetricLookups       = "memocache_lookups_total"
	MetricHits          = "memocache_hits_total"
	MetricMisses        = "memocache_misses_total"
	MetricComputeErrors = "memocache_compute_errors_total"
	MetricEvictions     = "memocache_evictions_total"

	MetricEntries        = "memocache_entries"
	MetricComputeSeconds = "memocache_compute_seconds"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
