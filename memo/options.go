package memo

import (
	"go.uber.org/zap"

	"go.dw1.io/memocache/stats"
)

// Option configures a Func.
type Option interface {
	apply(*options)
}

type options struct {
	name   string
	stats  stats.Collector
	logger *zap.Logger
}

func defaultOptions() options {
	return options{
		name:   "memo",
		stats:  stats.NewNoop(),
		logger: zap.NewNop(),
	}
}

type optionFunc func(*options)

var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithName sets the name attached to log entries.
func WithName(name string) Option {
	return optionFunc(func(o *options) {
		o.name = name
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		if c != nil {
			o.stats = c
		}
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		if l != nil {
			o.logger = l
		}
	})
}
