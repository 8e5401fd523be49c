package valgebra

import (
	"log/slog"

	"github.com/hupe1980/valgebra/batch"
	"github.com/hupe1980/valgebra/pool"
	"github.com/hupe1980/valgebra/value"
)

type options struct {
	pool             *pool.Pool
	metricsCollector MetricsCollector
	logger           *Logger
	concurrency      int
	chunk            int
	attributes       map[string]value.Kind
}

// Option configures an Engine.
type Option func(*options)

// WithPool makes the engine share an existing operator pool. Pools built
// elsewhere keep their own logger and metrics.
func WithPool(p *pool.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &valgebra.BasicMetricsCollector{}
//	e := valgebra.New(valgebra.WithMetricsCollector(metrics))
//	// ... use e ...
//	stats := metrics.GetStats()
//	fmt.Printf("operators built: %d\n", stats.BuildCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithConcurrency sets how many goroutines batched calls may use.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithChunk sets the number of values a batch worker processes at once.
func WithChunk(n int) Option {
	return func(o *options) {
		o.chunk = n
	}
}

// WithAttributes declares the element attributes paths may name.
func WithAttributes(attrs map[string]value.Kind) Option {
	return func(o *options) {
		o.attributes = attrs
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		concurrency:      1,
		chunk:            batch.DefaultChunk,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
