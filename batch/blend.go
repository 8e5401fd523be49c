package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/valgebra/blend"
	"github.com/hupe1980/valgebra/internal/kernel"
	"github.com/hupe1980/valgebra/value"
)

// Blend writes op(a[i], b[i], w[i]) into dst[i] for every element.
//
// weights may be nil (every weight is 1), hold a single uniform weight, or
// hold one weight per element. dst may alias a or b.
func Blend(ctx context.Context, op *blend.Operator, dst, a, b Buffer, weights []float64, opts ...Option) error {
	n := dst.Len
	for _, buf := range []Buffer{dst, a, b} {
		if err := buf.check(op.Kind(), n); err != nil {
			return err
		}
	}
	weight, err := weightsOf(weights, n)
	if err != nil {
		return err
	}

	o := applyOptions(opts)
	if err := o.checkSelection(n); err != nil {
		return err
	}
	start := time.Now()
	defer func() { o.metrics.RecordBatch(n, time.Since(start)) }()

	run := func(_ context.Context, lo, hi int) error {
		forEach(o.selection, lo, hi, func(i int) {
			op.Blend(a.At(i), b.At(i), weight(i), dst.At(i))
		})
		return nil
	}
	if o.selection == nil && len(weights) <= 1 {
		w := 1.0
		if len(weights) == 1 {
			w = weights[0]
		}
		if fast, ok := floatKernel(op, dst, a, b, w); ok {
			run = func(_ context.Context, lo, hi int) error {
				fast(lo, hi)
				return nil
			}
		}
	}

	return Parallel(ctx, n, o.chunk, o.concurrency, run)
}

// weightsOf resolves the per-element weight accessor.
func weightsOf(weights []float64, n int) (func(i int) float64, error) {
	switch len(weights) {
	case 0:
		return func(int) float64 { return 1 }, nil
	case 1:
		w := weights[0]
		return func(int) float64 { return w }, nil
	case n:
		return func(i int) float64 { return weights[i] }, nil
	}
	return nil, fmt.Errorf("%w: %d weights for %d values", ErrLengthMismatch, len(weights), n)
}

// forEach visits the indices of [lo, hi) that are in sel, or all of them
// when sel is nil. Callers have checked that hi fits in uint32.
func forEach(sel *roaring.Bitmap, lo, hi int, fn func(i int)) {
	if sel == nil {
		for i := lo; i < hi; i++ {
			fn(i)
		}
		return
	}
	it := sel.Iterator()
	it.AdvanceIfNeeded(uint32(lo))
	for it.HasNext() {
		i := int(it.PeekNext())
		if i >= hi {
			return
		}
		it.Next()
		fn(i)
	}
}

// floatKernel returns the slice kernel that computes op over a range of
// float64-backed values, when there is one.
func floatKernel(op *blend.Operator, dst, a, b Buffer, w float64) (func(lo, hi int), bool) {
	k := op.Kind()
	switch k {
	case value.KindDouble, value.KindVector2, value.KindVector, value.KindVector4:
	default:
		return nil, false
	}

	var f func(d, x, y []float64)
	switch op.Mode() {
	case blend.CopyTarget:
		f = func(d, x, _ []float64) { copy(d, x) }
	case blend.CopySource:
		f = func(d, _, y []float64) { copy(d, y) }
	case blend.Add:
		f = kernel.Add
	case blend.Subtract:
		f = kernel.Sub
	case blend.Multiply:
		f = kernel.Mul
	case blend.WeightedAdd:
		f = func(d, x, y []float64) { kernel.AddScaled(d, x, y, w) }
	case blend.WeightedSubtract:
		f = func(d, x, y []float64) { kernel.AddScaled(d, x, y, -w) }
	case blend.Lerp:
		f = func(d, x, y []float64) { kernel.Lerp(d, x, y, w) }
	case blend.ComponentMin:
		f = kernel.Min
	case blend.ComponentMax:
		f = kernel.Max
	case blend.Min:
		if k != value.KindDouble {
			return nil, false
		}
		f = kernel.Min
	case blend.Max:
		if k != value.KindDouble {
			return nil, false
		}
		f = kernel.Max
	default:
		return nil, false
	}

	c := value.TraitsOf(k).Components
	fd, fa, fb := dst.floats(), a.floats(), b.floats()
	return func(lo, hi int) {
		f(fd[lo*c:hi*c], fa[lo*c:hi*c], fb[lo*c:hi*c])
	}, true
}
