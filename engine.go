package valgebra

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/hupe1980/valgebra/batch"
	"github.com/hupe1980/valgebra/blend"
	"github.com/hupe1980/valgebra/convert"
	"github.com/hupe1980/valgebra/pool"
	"github.com/hupe1980/valgebra/selector"
	"github.com/hupe1980/valgebra/subsel"
	"github.com/hupe1980/valgebra/value"
)

// Engine bundles an operator pool, an attribute resolver and the batch
// settings used by the configuration-facing entry points. It is safe for
// concurrent use.
type Engine struct {
	pool     *pool.Pool
	resolver *selector.Resolver
	logger   *Logger
	metrics  MetricsCollector
	batch    []batch.Option
}

// New creates an Engine.
func New(optFns ...Option) *Engine {
	o := applyOptions(optFns)

	p := o.pool
	if p == nil {
		p = pool.New(
			pool.WithLogger(o.logger.Logger),
			pool.WithMetrics(o.metricsCollector),
		)
	}

	return &Engine{
		pool:     p,
		resolver: selector.NewResolver(o.attributes),
		logger:   o.logger,
		metrics:  o.metricsCollector,
		batch: []batch.Option{
			batch.WithConcurrency(o.concurrency),
			batch.WithChunk(o.chunk),
			batch.WithMetrics(o.metricsCollector),
		},
	}
}

// Pool returns the engine's operator pool.
func (e *Engine) Pool() *pool.Pool { return e.pool }

// Logger returns the engine's logger.
func (e *Engine) Logger() *Logger { return e.logger }

// Resolver returns the attribute resolver paths are bound with.
func (e *Engine) Resolver() *selector.Resolver { return e.resolver }

// Operator returns the pooled operator for kind k and mode m.
func (e *Engine) Operator(k value.Kind, m blend.Mode, reset bool) *blend.Operator {
	return e.pool.Get(k, m, reset)
}

// Convert writes the dstKind rendition of the srcKind value at src into dst.
func (e *Engine) Convert(srcKind value.Kind, src unsafe.Pointer, dstKind value.Kind, dst unsafe.Pointer) {
	convert.Convert(srcKind, src, dstKind, dst)
}

// Resolve binds an attribute path against the declared attributes.
func (e *Engine) Resolve(path string) (selector.Binding, error) {
	return e.resolver.Resolve(path)
}

// Blend combines two buffers element by element with mode m into dst.
func (e *Engine) Blend(ctx context.Context, m blend.Mode, dst, a, b batch.Buffer, weights []float64, opts ...batch.Option) error {
	op := e.Operator(dst.Kind, m, false)
	err := batch.Blend(ctx, op, dst, a, b, weights, append(e.batch[:len(e.batch):len(e.batch)], opts...)...)
	e.logger.WithKind(dst.Kind).WithMode(op.Mode()).LogBatch(ctx, "blend", dst.Len, err)
	return err
}

// Accumulate folds src into target slots with mode m. See batch.Accumulate.
func (e *Engine) Accumulate(ctx context.Context, m blend.Mode, reset bool, target, src batch.Buffer, index []int, weights []float64, opts ...batch.Option) error {
	op := e.Operator(target.Kind, m, reset)
	err := batch.Accumulate(ctx, op, target, src, index, weights, append(e.batch[:len(e.batch):len(e.batch)], opts...)...)
	e.logger.WithKind(target.Kind).WithMode(op.Mode()).LogBatch(ctx, "accumulate", src.Len, err)
	return err
}

// Apply blends two Go values with the pooled operator of mode m.
func Apply[T value.Supported](e *Engine, m blend.Mode, a, b T, w float64) T {
	return blend.Apply(e.Operator(value.KindOf[T](), m, false), a, b, w)
}

// Get reads the sub-value sel addresses in v as a U.
func Get[U, T value.Supported](sel subsel.Selection, v T) U {
	var out U
	sel.Get(value.KindOf[T](), unsafe.Pointer(&v), value.KindOf[U](), unsafe.Pointer(&out))
	return out
}

// Set writes x into the sub-value sel addresses in v and returns the result.
func Set[T, U value.Supported](sel subsel.Selection, v T, x U) T {
	sel.Set(value.KindOf[T](), unsafe.Pointer(&v), value.KindOf[U](), unsafe.Pointer(&x))
	return v
}

// ParseKind resolves a kind name case-insensitively.
func ParseKind(s string) (value.Kind, error) {
	k, ok := value.ParseKind(s)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownKind, s)
	}
	return k, nil
}

// ParseMode resolves a blend mode name case-insensitively.
func ParseMode(s string) (blend.Mode, error) {
	m, ok := blend.ParseMode(s)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
	}
	return m, nil
}
