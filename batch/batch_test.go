package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/valgebra/blend"
	"github.com/hupe1980/valgebra/value"
)

type countingMetrics struct {
	calls atomic.Int64
	n     atomic.Int64
}

func (m *countingMetrics) RecordBatch(n int, _ time.Duration) {
	m.calls.Add(1)
	m.n.Add(int64(n))
}

func seq(n int, f func(i int) float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = f(i)
	}
	return out
}

func TestBuffer(t *testing.T) {
	vs := []value.Vec3{{X: 1}, {Y: 2}, {Z: 3}}
	b := Of(vs)
	assert.Equal(t, value.KindVector, b.Kind)
	assert.Equal(t, 3, b.Len)
	assert.Equal(t, value.Vec3{Y: 2}, *value.At[value.Vec3](b.At(1)))

	r := b.Range(1, 3)
	assert.Equal(t, 2, r.Len)
	assert.Equal(t, []value.Vec3{{Y: 2}, {Z: 3}}, Slice[value.Vec3](r))
	assert.Equal(t, 0, b.Range(2, 2).Len)

	assert.Panics(t, func() { Slice[float64](b) })
	assert.Nil(t, Slice[value.Vec3](Of([]value.Vec3{})))
}

func TestBlendMatchesOperator(t *testing.T) {
	const n = 1000
	a := seq(n, func(i int) float64 { return float64(i) - 500 })
	b := seq(n, func(i int) float64 { return float64(i%37) * 1.5 })

	modes := []blend.Mode{
		blend.Add, blend.Subtract, blend.Multiply, blend.WeightedAdd,
		blend.WeightedSubtract, blend.Lerp, blend.Min, blend.Max,
		blend.ComponentMin, blend.ComponentMax, blend.CopyTarget,
		blend.CopySource, blend.Average, blend.AbsoluteMax,
	}
	for _, m := range modes {
		t.Run(m.String(), func(t *testing.T) {
			op := blend.New(value.KindDouble, m, false)
			dst := make([]float64, n)
			require.NoError(t, Blend(context.Background(), op, Of(dst), Of(a), Of(b), []float64{0.25}))
			for i := range dst {
				assert.InDelta(t, blend.Apply(op, a[i], b[i], 0.25), dst[i], 1e-9, "index %d", i)
			}
		})
	}
}

func TestBlendVectors(t *testing.T) {
	a := []value.Vec3{{X: 1, Y: 2, Z: 3}, {X: -1, Y: 0, Z: 5}, {X: 4, Y: 4, Z: 4}}
	b := []value.Vec3{{X: 3, Y: 2, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 8, Z: 0}}

	t.Run("lerp", func(t *testing.T) {
		op := blend.New(value.KindVector, blend.Lerp, false)
		dst := make([]value.Vec3, len(a))
		require.NoError(t, Blend(context.Background(), op, Of(dst), Of(a), Of(b), []float64{0.5}))
		assert.Equal(t, []value.Vec3{{X: 2, Y: 2, Z: 2}, {X: 0, Y: 0.5, Z: 3}, {X: 2, Y: 6, Z: 2}}, dst)
	})

	t.Run("component min in place", func(t *testing.T) {
		op := blend.New(value.KindVector, blend.ComponentMin, false)
		dst := append([]value.Vec3(nil), a...)
		require.NoError(t, Blend(context.Background(), op, Of(dst), Of(dst), Of(b), nil))
		assert.Equal(t, []value.Vec3{{X: 1, Y: 2, Z: 1}, {X: -1, Y: 0, Z: 1}, {X: 0, Y: 4, Z: 0}}, dst)
	})

	t.Run("length ordered min takes generic path", func(t *testing.T) {
		op := blend.New(value.KindVector, blend.Min, false)
		dst := make([]value.Vec3, len(a))
		require.NoError(t, Blend(context.Background(), op, Of(dst), Of(a), Of(b), nil))
		for i := range dst {
			assert.Equal(t, blend.Apply(op, a[i], b[i], 1), dst[i])
		}
	})

	t.Run("per element weights", func(t *testing.T) {
		op := blend.New(value.KindVector, blend.WeightedAdd, false)
		dst := make([]value.Vec3, len(a))
		w := []float64{0, 1, 2}
		require.NoError(t, Blend(context.Background(), op, Of(dst), Of(a), Of(b), w))
		assert.Equal(t, a[0], dst[0])
		assert.Equal(t, value.Vec3{X: 0, Y: 1, Z: 6}, dst[1])
		assert.Equal(t, value.Vec3{X: 4, Y: 20, Z: 4}, dst[2])
	})
}

func TestBlendSelection(t *testing.T) {
	a := []int32{1, 2, 3, 4, 5, 6}
	b := []int32{10, 20, 30, 40, 50, 60}
	dst := []int32{-1, -1, -1, -1, -1, -1}

	op := blend.New(value.KindInt32, blend.Add, false)
	sel := roaring.BitmapOf(1, 4, 5)
	require.NoError(t, Blend(context.Background(), op, Of(dst), Of(a), Of(b), nil, WithSelection(sel), WithChunk(2), WithConcurrency(3)))
	assert.Equal(t, []int32{-1, 22, -1, -1, 55, 66}, dst)
}

func TestBlendConcurrent(t *testing.T) {
	const n = 10_000
	a := seq(n, func(i int) float64 { return float64(i) })
	b := seq(n, func(i int) float64 { return float64(2 * i) })
	dst := make([]float64, n)

	m := &countingMetrics{}
	op := blend.New(value.KindDouble, blend.Average, false)
	require.NoError(t, Blend(context.Background(), op, Of(dst), Of(a), Of(b), nil,
		WithConcurrency(4), WithChunk(512), WithMetrics(m)))
	for i := range dst {
		assert.InDelta(t, 1.5*float64(i), dst[i], 1e-9)
	}
	assert.Equal(t, int64(1), m.calls.Load())
	assert.Equal(t, int64(n), m.n.Load())
}

func TestBlendErrors(t *testing.T) {
	op := blend.New(value.KindDouble, blend.Add, false)
	three := make([]float64, 3)

	err := Blend(context.Background(), op, Of(three), Of(three), Of(make([]float64, 2)), nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	err = Blend(context.Background(), op, Of(three), Of(three), Of([]float32{1, 2, 3}), nil)
	assert.ErrorIs(t, err, ErrKindMismatch)

	err = Blend(context.Background(), op, Of(three), Of(three), Of(three), []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Blend(ctx, op, Of(three), Of(three), Of(three), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAccumulate(t *testing.T) {
	t.Run("average by index", func(t *testing.T) {
		op := blend.New(value.KindDouble, blend.Average, true)
		target := []float64{100, 100, 100}
		src := []float64{1, 2, 3, 10, 20}
		index := []int{0, 0, 0, 2, 2}
		require.NoError(t, Accumulate(context.Background(), op, Of(target), Of(src), index, nil))
		// Slot 1 receives nothing and keeps its value.
		assert.Equal(t, []float64{2, 100, 15}, target)
	})

	t.Run("average considers original without reset", func(t *testing.T) {
		op := blend.New(value.KindDouble, blend.Average, false)
		target := []float64{4}
		require.NoError(t, Accumulate(context.Background(), op, Of(target), Of([]float64{8}), []int{0}, nil))
		assert.Equal(t, []float64{6}, target)
	})

	t.Run("max layers", func(t *testing.T) {
		op := blend.New(value.KindInt64, blend.Max, false)
		target := []int64{0, 0}
		src := []int64{5, -3, 2, 9, 7, 1}
		require.NoError(t, Accumulate(context.Background(), op, Of(target), Of(src), nil, nil))
		assert.Equal(t, []int64{7, 9}, target)
	})

	t.Run("matches scalar accumulation", func(t *testing.T) {
		op := blend.New(value.KindVector, blend.Weight, true)
		src := []value.Vec3{{X: 1}, {Y: 2}, {Z: 3}, {X: 4, Y: 4}}
		w := []float64{0.5, 0.25, 1, 2}
		target := make([]value.Vec3, 1)
		require.NoError(t, Accumulate(context.Background(), op, Of(target), Of(src), nil, w))
		want := blend.AccumulateAll(op, value.Vec3{}, src, w)
		assert.Equal(t, want, target[0])
	})

	t.Run("concurrent with selection", func(t *testing.T) {
		const slots = 300
		op := blend.New(value.KindDouble, blend.Add, false)
		target := make([]float64, slots)
		src := seq(slots*4, func(i int) float64 { return 1 })
		sel := roaring.New()
		sel.AddRange(0, 200)
		require.NoError(t, Accumulate(context.Background(), op, Of(target), Of(src), nil, nil,
			WithSelection(sel), WithConcurrency(4), WithChunk(10)))
		for i, v := range target {
			if i < 200 {
				assert.Equal(t, 4.0, v, "slot %d", i)
			} else {
				assert.Equal(t, 0.0, v, "slot %d", i)
			}
		}
	})

	t.Run("concurrent with untouched chunks", func(t *testing.T) {
		const slots = 512
		op := blend.New(value.KindDouble, blend.Average, true)
		target := seq(slots, func(i int) float64 { return -1 })
		src := seq(2*64, func(i int) float64 { return float64(i % 64) })
		index := make([]int, len(src))
		for i := range index {
			index[i] = slots - 64 + i%64
		}
		require.NoError(t, Accumulate(context.Background(), op, Of(target), Of(src), index, nil,
			WithConcurrency(8), WithChunk(64)))
		for i, v := range target {
			if i < slots-64 {
				assert.Equal(t, -1.0, v, "slot %d", i)
			} else {
				assert.Equal(t, float64(i-(slots-64)), v, "slot %d", i)
			}
		}
	})

	t.Run("keeps source order per slot", func(t *testing.T) {
		op := blend.New(value.KindDouble, blend.CopySource, false)
		target := make([]float64, 200)
		src := []float64{1, 2, 3, 4, 5, 6}
		index := []int{199, 3, 199, 70, 3, 70}
		require.NoError(t, Accumulate(context.Background(), op, Of(target), Of(src), index, nil,
			WithConcurrency(3), WithChunk(64)))
		assert.Equal(t, 5.0, target[3])
		assert.Equal(t, 6.0, target[70])
		assert.Equal(t, 3.0, target[199])
	})

	t.Run("errors", func(t *testing.T) {
		op := blend.New(value.KindDouble, blend.Add, false)
		target := make([]float64, 2)

		err := Accumulate(context.Background(), op, Of(target), Of([]float64{1, 2, 3}), nil, nil)
		assert.ErrorIs(t, err, ErrLengthMismatch)

		err = Accumulate(context.Background(), op, Of(target), Of([]float64{1}), []int{2}, nil)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		err = Accumulate(context.Background(), op, Of(target), Of([]float64{1}), []int{0, 1}, nil)
		assert.ErrorIs(t, err, ErrLengthMismatch)

		err = Accumulate(context.Background(), op, Of([]int32{1}), Of([]float64{1}), nil, nil)
		assert.ErrorIs(t, err, ErrKindMismatch)
	})
}

func TestParallel(t *testing.T) {
	t.Run("covers every index once", func(t *testing.T) {
		hits := make([]int32, 1000)
		err := Parallel(context.Background(), len(hits), 64, 8, func(_ context.Context, lo, hi int) error {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
			return nil
		})
		require.NoError(t, err)
		for _, h := range hits {
			assert.Equal(t, int32(1), h)
		}
	})

	t.Run("first error wins", func(t *testing.T) {
		boom := errors.New("boom")
		err := Parallel(context.Background(), 100, 10, 1, func(_ context.Context, lo, _ int) error {
			if lo == 50 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty", func(t *testing.T) {
		called := false
		require.NoError(t, Parallel(context.Background(), 0, 10, 4, func(context.Context, int, int) error {
			called = true
			return nil
		}))
		assert.False(t, called)
	})
}

func TestMake(t *testing.T) {
	b := Make(value.KindQuaternion, 3)
	assert.Equal(t, value.KindQuaternion, b.Kind)
	for _, q := range Slice[value.Quat](b) {
		assert.Equal(t, value.IdentityQuat, q)
	}

	xf := Slice[value.Transform](Make(value.KindTransform, 1))
	assert.Equal(t, value.IdentityTransform, xf[0])

	assert.Equal(t, 0, Make(value.KindString, 0).Len)
	assert.Panics(t, func() { Make(value.Kind(200), 1) })
}
