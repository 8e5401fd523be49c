// Package pool memoizes blend operators.
//
// Operators are immutable once built, so a Pool hands the same instance to
// every caller asking for the same Key. Lookups take a shared lock; a miss
// takes the exclusive lock and looks again before constructing, so each key
// is constructed exactly once however many goroutines race for it.
package pool

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/valgebra/blend"
	"github.com/hupe1980/valgebra/value"
)

// Key identifies an operator.
type Key struct {
	Kind  value.Kind
	Mode  blend.Mode
	Reset bool
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/reset=%t", k.Kind, k.Mode, k.Reset)
}

// Constructor builds the operator of a key.
type Constructor func(k value.Kind, m blend.Mode, reset bool) *blend.Operator

// Metrics receives pool events.
type Metrics interface {
	RecordOperatorLookup(hit bool)
	RecordOperatorBuild(kind value.Kind, mode blend.Mode)
}

type noopMetrics struct{}

func (noopMetrics) RecordOperatorLookup(bool) {}
func (noopMetrics) RecordOperatorBuild(value.Kind, blend.Mode) {}

type options struct {
	logger      *slog.Logger
	metrics     Metrics
	constructor Constructor
}

// Option configures a Pool.
type Option func(*options)

// WithLogger sets the logger constructions are reported to at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithConstructor replaces blend.New as the operator constructor.
func WithConstructor(c Constructor) Option {
	return func(o *options) {
		if c != nil {
			o.constructor = c
		}
	}
}

// Pool is a concurrency-safe operator cache.
type Pool struct {
	mu  sync.RWMutex
	ops map[Key]*blend.Operator

	constructions atomic.Int64

	logger      *slog.Logger
	metrics     Metrics
	constructor Constructor
}

// New creates an empty Pool.
func New(optFns ...Option) *Pool {
	o := options{
		logger:      slog.New(slog.DiscardHandler),
		metrics:     noopMetrics{},
		constructor: blend.New,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return &Pool{
		ops:         make(map[Key]*blend.Operator),
		logger:      o.logger,
		metrics:     o.metrics,
		constructor: o.constructor,
	}
}

// Get returns the operator of (k, m, reset), constructing it on first use.
// Equal keys always yield the same instance until Clear.
func (p *Pool) Get(k value.Kind, m blend.Mode, reset bool) *blend.Operator {
	key := Key{Kind: k, Mode: m, Reset: reset}

	p.mu.RLock()
	op, ok := p.ops[key]
	p.mu.RUnlock()
	if ok {
		p.metrics.RecordOperatorLookup(true)
		return op
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if op, ok := p.ops[key]; ok {
		p.metrics.RecordOperatorLookup(true)
		return op
	}

	op = p.constructor(k, m, reset)
	p.ops[key] = op
	p.constructions.Add(1)

	p.metrics.RecordOperatorLookup(false)
	p.metrics.RecordOperatorBuild(k, op.Mode())
	p.logger.Debug("operator constructed",
		"kind", k.String(),
		"mode", m.String(),
		"effective_mode", op.Mode().String(),
		"reset", reset,
	)
	return op
}

// Lookup returns the operator of key without constructing it.
func (p *Pool) Lookup(key Key) (*blend.Operator, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	op, ok := p.ops[key]
	return op, ok
}

// Len returns the number of cached operators.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.ops)
}

// Constructions returns how many operators the pool has built.
func (p *Pool) Constructions() int64 { return p.constructions.Load() }

// Clear drops every cached operator. It must not race with callers still
// blending with operators they expect to be shared.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.ops)
	clear(p.ops)
	p.logger.Debug("pool cleared", "operators", n)
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the process-wide Pool, creating it on first use.
func Default() *Pool {
	defaultOnce.Do(func() { defaultPool = New() })
	return defaultPool
}
