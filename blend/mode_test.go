package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		t.Run(m.String(), func(t *testing.T) {
			got, ok := ParseMode(m.String())
			assert.True(t, ok)
			assert.Equal(t, m, got)
		})
	}

	t.Run("aliases", func(t *testing.T) {
		m, ok := ParseMode("copyFirst")
		assert.True(t, ok)
		assert.Equal(t, CopyTarget, m)

		m, ok = ParseMode(" CopySecond ")
		assert.True(t, ok)
		assert.Equal(t, CopySource, m)

		m, ok = ParseMode("LERP")
		assert.True(t, ok)
		assert.Equal(t, Lerp, m)
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := ParseMode("bogus")
		assert.False(t, ok)
		assert.Equal(t, "Unknown", Mode(200).String())
	})
}

func TestPolicyFlags(t *testing.T) {
	for _, m := range []Mode{Min, Max, UnsignedMin, UnsignedMax, AbsoluteMin, AbsoluteMax, Hash} {
		assert.True(t, m.InitWithSource(), m.String())
		assert.False(t, m.ConsiderOriginal(), m.String())
	}
	for _, m := range []Mode{Average, Add, Subtract, Weight, WeightedAdd, WeightedSubtract} {
		assert.True(t, m.ConsiderOriginal(), m.String())
		assert.False(t, m.InitWithSource(), m.String())
	}
	for _, m := range []Mode{CopyTarget, CopySource, Lerp, Multiply, Divide} {
		assert.False(t, m.InitWithSource(), m.String())
		assert.False(t, m.ConsiderOriginal(), m.String())
	}
}
