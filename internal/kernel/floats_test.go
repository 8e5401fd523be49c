package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withImpl(t *testing.T, impl Impl) {
	t.Helper()
	prev := Active()
	use(impl)
	t.Cleanup(func() { use(prev) })
}

func TestKernels(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7}
	b := []float64{7, 6, 5, 4, 3, 2, 1}

	for _, impl := range []Impl{Generic, Unrolled} {
		t.Run(impl.String(), func(t *testing.T) {
			withImpl(t, impl)
			dst := make([]float64, len(a))

			Add(dst, a, b)
			assert.Equal(t, []float64{8, 8, 8, 8, 8, 8, 8}, dst)

			Sub(dst, a, b)
			assert.Equal(t, []float64{-6, -4, -2, 0, 2, 4, 6}, dst)

			Mul(dst, a, b)
			assert.Equal(t, []float64{7, 12, 15, 16, 15, 12, 7}, dst)

			AddScaled(dst, a, b, 0.5)
			assert.Equal(t, []float64{4.5, 5, 5.5, 6, 6.5, 7, 7.5}, dst)

			Lerp(dst, a, b, 0.5)
			assert.Equal(t, []float64{4, 4, 4, 4, 4, 4, 4}, dst)

			Min(dst, a, b)
			assert.Equal(t, []float64{1, 2, 3, 4, 3, 2, 1}, dst)

			Max(dst, a, b)
			assert.Equal(t, []float64{7, 6, 5, 4, 5, 6, 7}, dst)
		})
	}
}

func TestKernelsAlias(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 1, 1, 1, 1}
	Add(a, a, b)
	assert.Equal(t, []float64{2, 3, 4, 5, 6}, a)
}

func TestParseImpl(t *testing.T) {
	impl, ok := ParseImpl(" Unrolled ")
	assert.True(t, ok)
	assert.Equal(t, Unrolled, impl)

	_, ok = ParseImpl("avx9000")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Impl(9).String())
}

func TestActiveIsKnown(t *testing.T) {
	assert.Contains(t, []Impl{Generic, Unrolled}, Active())
	if !IsOverridden() && HasWideCore() {
		assert.Equal(t, Unrolled, Active())
	}
}
