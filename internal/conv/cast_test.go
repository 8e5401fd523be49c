//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaturateInt32(t *testing.T) {
	t.Run("truncates toward zero", func(t *testing.T) {
		assert.Equal(t, int32(3), SaturateInt32(3.9))
		assert.Equal(t, int32(-3), SaturateInt32(-3.9))
	})

	t.Run("clamps high", func(t *testing.T) {
		assert.Equal(t, int32(math.MaxInt32), SaturateInt32(1e20))
		assert.Equal(t, int32(math.MaxInt32), SaturateInt32(math.Inf(1)))
	})

	t.Run("clamps low", func(t *testing.T) {
		assert.Equal(t, int32(math.MinInt32), SaturateInt32(-1e20))
		assert.Equal(t, int32(math.MinInt32), SaturateInt32(math.Inf(-1)))
	})

	t.Run("nan is zero", func(t *testing.T) {
		assert.Equal(t, int32(0), SaturateInt32(math.NaN()))
	})
}

func TestSaturateInt64(t *testing.T) {
	t.Run("in range", func(t *testing.T) {
		assert.Equal(t, int64(42), SaturateInt64(42.5))
	})

	t.Run("clamps", func(t *testing.T) {
		assert.Equal(t, int64(math.MaxInt64), SaturateInt64(1e30))
		assert.Equal(t, int64(math.MinInt64), SaturateInt64(-1e30))
	})

	t.Run("nan is zero", func(t *testing.T) {
		assert.Equal(t, int64(0), SaturateInt64(math.NaN()))
	})
}

func TestNarrowInt64(t *testing.T) {
	assert.Equal(t, int32(7), NarrowInt64(7))
	assert.Equal(t, int32(math.MaxInt32), NarrowInt64(math.MaxInt64))
	assert.Equal(t, int32(math.MinInt32), NarrowInt64(math.MinInt64))
}

func TestBoolToFloat(t *testing.T) {
	assert.Equal(t, 1.0, BoolToFloat(true))
	assert.Equal(t, 0.0, BoolToFloat(false))
}

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid max int32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxInt32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxInt32), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.Error(t, err)
	})
}
