package queue

import "go.uber.org/zap"

type config struct {
	capacity int
	logger   *zap.Logger
}

func newConfig(opts []Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, o := range opts {
		o.apply(&cfg)
	}
	return cfg
}

// Option configures a Simple or Unique queue using the functional options
// paradigm.
type Option interface {
	apply(*config)
}

type capacityOption int

func (c capacityOption) apply(cfg *config) { cfg.capacity = int(c) }

// WithCapacity pre-sizes the queue's backing buffer to hold capacity
// elements without reallocating.
func WithCapacity(capacity int) Option {
	return capacityOption(capacity)
}

type loggerOption struct{ logger *zap.Logger }

func (o loggerOption) apply(cfg *config) { cfg.logger = o.logger }

// WithLogger attaches a logger the queue uses to trace lifecycle events:
// construction, Duplicate/NotPresent misses, and Clear. The default is a
// no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return loggerOption{logger: logger}
}
