package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/valgebra/blend"
	"github.com/hupe1980/valgebra/internal/scratch"
)

// ErrIndexOutOfRange is returned when an accumulation index does not
// address a target slot.
var ErrIndexOutOfRange = errors.New("batch: index out of range")

// Accumulate folds every src value into the target slot index[i] with op,
// running BeginAccumulation on the first contribution to a slot and
// EndAccumulation on every touched slot once all sources are folded in.
// Sources reach a slot in src order.
//
// A nil index treats src as consecutive layers of target.Len values, so
// src[i] goes to slot i % target.Len. weights follow the rules of Blend,
// counted over src. A selection restricts the target slots written.
func Accumulate(ctx context.Context, op *blend.Operator, target, src Buffer, index []int, weights []float64, opts ...Option) error {
	if err := target.check(op.Kind(), target.Len); err != nil {
		return err
	}
	if err := src.check(op.Kind(), src.Len); err != nil {
		return err
	}
	slot, err := slotsOf(index, src.Len, target.Len)
	if err != nil {
		return err
	}
	weight, err := weightsOf(weights, src.Len)
	if err != nil {
		return err
	}

	o := applyOptions(opts)
	if err := o.checkSelection(target.Len); err != nil {
		return err
	}
	start := time.Now()
	defer func() { o.metrics.RecordBatch(src.Len, time.Since(start)) }()

	acc := scratch.Get(target.Len)
	defer scratch.Put(acc)

	// Ranges are whole bitset words so that workers never share one.
	chunk := (o.chunk + 63) &^ 63
	order, bounds := bucketSources(slot, src.Len, target.Len, chunk, o)

	return Parallel(ctx, target.Len, chunk, o.concurrency, func(ctx context.Context, lo, hi int) error {
		r := lo / chunk
		for n, i := range order[bounds[r]:bounds[r+1]] {
			s := slot(i)
			p := target.At(s)
			if !acc.Seed(s) {
				acc.Stats[s] = op.BeginAccumulation(p)
			}
			op.Accumulate(p, src.At(i), weight(i), &acc.Stats[s])
			if n&1023 == 1023 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
		}
		for s := lo; s < hi; s++ {
			if acc.IsSeeded(s) {
				op.EndAccumulation(target.At(s), acc.Stats[s])
			}
		}
		return nil
	})
}

// bucketSources groups source indices by the range of their target slot,
// keeping src order inside each range. Range r owns
// order[bounds[r]:bounds[r+1]]. Slots outside the selection are dropped.
func bucketSources(slot func(i int) int, srcLen, targetLen, chunk int, o options) (order []int, bounds []int) {
	ranges := (targetLen + chunk - 1) / chunk
	bounds = make([]int, ranges+1)
	keep := func(s int) bool {
		return o.selection == nil || o.selection.Contains(uint32(s))
	}
	for i := 0; i < srcLen; i++ {
		if s := slot(i); keep(s) {
			bounds[s/chunk+1]++
		}
	}
	for r := 1; r <= ranges; r++ {
		bounds[r] += bounds[r-1]
	}
	order = make([]int, bounds[ranges])
	next := make([]int, ranges)
	copy(next, bounds[:ranges])
	for i := 0; i < srcLen; i++ {
		if s := slot(i); keep(s) {
			r := s / chunk
			order[next[r]] = i
			next[r]++
		}
	}
	return order, bounds
}

func slotsOf(index []int, srcLen, targetLen int) (func(i int) int, error) {
	if index == nil {
		if targetLen == 0 {
			if srcLen == 0 {
				return func(i int) int { return i }, nil
			}
			return nil, fmt.Errorf("%w: %d values into an empty target", ErrLengthMismatch, srcLen)
		}
		if srcLen%targetLen != 0 {
			return nil, fmt.Errorf("%w: %d values are not whole layers of %d", ErrLengthMismatch, srcLen, targetLen)
		}
		return func(i int) int { return i % targetLen }, nil
	}
	if len(index) != srcLen {
		return nil, fmt.Errorf("%w: %d indices for %d values", ErrLengthMismatch, len(index), srcLen)
	}
	for i, s := range index {
		if s < 0 || s >= targetLen {
			return nil, fmt.Errorf("%w: index[%d] = %d, target has %d slots", ErrIndexOutOfRange, i, s, targetLen)
		}
	}
	return func(i int) int { return index[i] }, nil
}
