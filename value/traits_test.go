package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraitsTable(t *testing.T) {
	t.Run("sizes", func(t *testing.T) {
		assert.Equal(t, uintptr(1), TraitsOf(KindBool).Size)
		assert.Equal(t, uintptr(4), TraitsOf(KindInt32).Size)
		assert.Equal(t, uintptr(8), TraitsOf(KindDouble).Size)
		assert.Equal(t, uintptr(24), TraitsOf(KindVector).Size)
		assert.Equal(t, uintptr(32), TraitsOf(KindQuaternion).Size)
		assert.Equal(t, uintptr(80), TraitsOf(KindTransform).Size)
	})

	t.Run("capabilities", func(t *testing.T) {
		b := TraitsOf(KindBool)
		assert.False(t, b.SupportsLerp)
		assert.True(t, b.SupportsMinMax)

		s := TraitsOf(KindString)
		assert.False(t, s.SupportsLerp)
		assert.False(t, s.SupportsArithmetic)
		assert.True(t, s.SupportsMinMax)

		for _, k := range []Kind{KindInt32, KindDouble, KindVector, KindRotator, KindQuaternion, KindTransform} {
			tr := TraitsOf(k)
			assert.True(t, tr.SupportsLerp, k.String())
			assert.True(t, tr.SupportsArithmetic, k.String())
		}
	})

	t.Run("categories", func(t *testing.T) {
		assert.True(t, TraitsOf(KindInt64).IsNumeric())
		assert.False(t, TraitsOf(KindBool).IsNumeric())
		assert.True(t, TraitsOf(KindVector4).IsVector())
		assert.True(t, TraitsOf(KindRotator).IsRotation())
		assert.True(t, TraitsOf(KindName).IsText())
		assert.False(t, TraitsOf(KindTransform).IsText())
	})

	t.Run("every kind is registered", func(t *testing.T) {
		for _, k := range Kinds() {
			tr := TraitsOf(k)
			assert.Equal(t, k, tr.Kind)
			assert.NotZero(t, tr.Size)
			assert.NotZero(t, tr.Align)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		assert.Equal(t, Traits{}, TraitsOf(Kind(99)))
	})
}

func TestFieldCount(t *testing.T) {
	assert.Equal(t, 1, FieldCount(KindDouble))
	assert.Equal(t, 2, FieldCount(KindVector2))
	assert.Equal(t, 3, FieldCount(KindRotator))
	assert.Equal(t, 4, FieldCount(KindQuaternion))
	assert.Equal(t, 9, FieldCount(KindTransform))
}
