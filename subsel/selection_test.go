package subsel

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/valgebra/value"
)

func TestParse(t *testing.T) {
	t.Run("part and field", func(t *testing.T) {
		s, err := Parse("Position", "X")
		require.NoError(t, err)
		p, ok := s.Part()
		assert.True(t, ok)
		assert.Equal(t, Position, p)
		f, ok := s.Field()
		assert.True(t, ok)
		assert.Equal(t, X, f)
		_, ok = s.Axis()
		assert.False(t, ok)
		assert.Equal(t, value.KindDouble, s.SubKind(value.KindTransform))
		assert.Equal(t, "Position.X", s.String())
	})

	t.Run("part and axis", func(t *testing.T) {
		s := MustParse("rot", "UP")
		p, _ := s.Part()
		a, ok := s.Axis()
		assert.Equal(t, Rotation, p)
		assert.True(t, ok)
		assert.Equal(t, Up, a)
		_, ok = s.Field()
		assert.False(t, ok)
		assert.Equal(t, value.KindVector, s.SubKind(value.KindTransform))
	})

	t.Run("single tokens", func(t *testing.T) {
		assert.Equal(t, value.KindVector, MustParse("front").SubKind(value.KindQuaternion))
		assert.Equal(t, value.KindQuaternion, MustParse("Orient").SubKind(value.KindTransform))
		assert.Equal(t, value.KindVector, MustParse("Scale").SubKind(value.KindTransform))

		s := MustParse("pitch")
		f, _ := s.Field()
		assert.Equal(t, Z, f)
		h, ok := s.Hint()
		assert.True(t, ok)
		assert.Equal(t, value.KindQuaternion, h)
	})

	t.Run("field only from the second token", func(t *testing.T) {
		s := MustParse("X", "Position")
		_, ok := s.Field()
		assert.False(t, ok)
		assert.True(t, s.IsValid())
	})

	t.Run("empty", func(t *testing.T) {
		s, err := Parse()
		require.NoError(t, err)
		assert.False(t, s.IsValid())
		assert.Equal(t, value.KindInt32, s.SubKind(value.KindInt32))
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := Parse("Position", "Sideways")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownToken))

		var te *TokenError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, "Sideways", te.Token)
		assert.Equal(t, 1, te.Index)
		assert.Panics(t, func() { MustParse("nope") })
	})

	t.Run("field index", func(t *testing.T) {
		s, ok := Selection{}.WithFieldIndex(3)
		assert.True(t, ok)
		f, _ := s.Field()
		assert.Equal(t, W, f)

		s, ok = s.WithFieldIndex(4)
		assert.False(t, ok)
		assert.False(t, s.IsValid())
	})
}

func TestPositionXRoundTrip(t *testing.T) {
	tr := value.Transform{
		Rotation:    value.Rotator{Pitch: 12, Yaw: 34, Roll: 56}.Quaternion(),
		Translation: value.Vec3{X: 1.5, Y: -2.25, Z: 3.125},
		Scale:       value.Vec3{X: 0.5, Y: 2, Z: 4},
	}
	before := tr

	s := MustParse("Position", "X")
	s.InjectDouble(value.KindTransform, value.Ptr(&tr), 42.75)
	assert.Equal(t, 42.75, s.ExtractDouble(value.KindTransform, value.Ptr(&tr)))

	bits := math.Float64bits
	assert.Equal(t, bits(before.Translation.Y), bits(tr.Translation.Y))
	assert.Equal(t, bits(before.Translation.Z), bits(tr.Translation.Z))
	for _, pair := range [][2]float64{
		{before.Rotation.X, tr.Rotation.X}, {before.Rotation.Y, tr.Rotation.Y},
		{before.Rotation.Z, tr.Rotation.Z}, {before.Rotation.W, tr.Rotation.W},
		{before.Scale.X, tr.Scale.X}, {before.Scale.Y, tr.Scale.Y}, {before.Scale.Z, tr.Scale.Z},
	} {
		assert.Equal(t, bits(pair[0]), bits(pair[1]))
	}
}

func TestVectorFields(t *testing.T) {
	v := value.Vec3{X: 3, Y: 4}
	assert.Equal(t, 5.0, MustParse("Length").ExtractDouble(value.KindVector, value.Ptr(&v)))
	assert.Equal(t, 25.0, MustParse("LenSqr").ExtractDouble(value.KindVector, value.Ptr(&v)))
	assert.Equal(t, 7.0, MustParse("Sum").ExtractDouble(value.KindVector, value.Ptr(&v)))
	assert.Equal(t, 0.0, MustParse("Volume").ExtractDouble(value.KindVector, value.Ptr(&v)))

	MustParse("Length").InjectDouble(value.KindVector, value.Ptr(&v), 10)
	assert.InDelta(t, 6.0, v.X, 1e-12)
	assert.InDelta(t, 8.0, v.Y, 1e-12)

	t.Run("vector4 length ignores w", func(t *testing.T) {
		v4 := value.Vec4{X: 3, Y: 4, W: 100}
		assert.Equal(t, 5.0, MustParse("L").ExtractDouble(value.KindVector4, value.Ptr(&v4)))
		assert.Equal(t, 100.0, MustParse("A").ExtractDouble(value.KindVector4, value.Ptr(&v4)))
	})

	t.Run("missing component reads first", func(t *testing.T) {
		v2 := value.Vec2{X: 7, Y: 8}
		assert.Equal(t, 7.0, MustParse("Z").ExtractDouble(value.KindVector2, value.Ptr(&v2)))
		MustParse("Z").InjectDouble(value.KindVector2, value.Ptr(&v2), 1)
		assert.Equal(t, value.Vec2{X: 7, Y: 8}, v2)
	})

	t.Run("bool writes one", func(t *testing.T) {
		var v value.Vec3
		b := true
		MustParse("Y").Set(value.KindVector, value.Ptr(&v), value.KindBool, value.Ptr(&b))
		assert.Equal(t, value.Vec3{Y: 1}, v)
	})

	t.Run("field result converts to the requested kind", func(t *testing.T) {
		v := value.Vec3{X: 3.9}
		var out int32
		MustParse("X").Get(value.KindVector, value.Ptr(&v), value.KindInt32, value.Ptr(&out))
		assert.Equal(t, int32(3), out)
	})
}

func TestRotationFields(t *testing.T) {
	r := value.Rotator{Pitch: 10, Yaw: 20, Roll: 30}
	assert.Equal(t, 30.0, MustParse("X").ExtractDouble(value.KindRotator, value.Ptr(&r)))
	assert.Equal(t, 20.0, MustParse("Yaw").ExtractDouble(value.KindRotator, value.Ptr(&r)))
	assert.Equal(t, 10.0, MustParse("Pitch").ExtractDouble(value.KindRotator, value.Ptr(&r)))

	MustParse("Roll").InjectDouble(value.KindRotator, value.Ptr(&r), -5)
	assert.Equal(t, value.Rotator{Pitch: 10, Yaw: 20, Roll: -5}, r)

	q := value.Rotator{Yaw: 45}.Quaternion()
	assert.InDelta(t, 45.0, MustParse("Y").ExtractDouble(value.KindQuaternion, value.Ptr(&q)), 1e-9)
	MustParse("Y").InjectDouble(value.KindQuaternion, value.Ptr(&q), 60)
	assert.InDelta(t, 60.0, q.Rotator().Yaw, 1e-9)
}

func assertVec(t *testing.T, want, got value.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
	assert.InDelta(t, want.Z, got.Z, 1e-9)
}

func TestAxes(t *testing.T) {
	r := value.Rotator{Yaw: 90}
	get := func(tok string) value.Vec3 {
		var out value.Vec3
		MustParse(tok).Get(value.KindRotator, value.Ptr(&r), value.KindVector, value.Ptr(&out))
		return out
	}
	assertVec(t, value.Vec3{Y: 1}, get("Forward"))
	assertVec(t, value.Vec3{Y: -1}, get("Back"))
	assertVec(t, value.Vec3{X: -1}, get("Right"))
	assertVec(t, value.Vec3{X: 1}, get("Left"))
	assertVec(t, value.Vec3{Z: 1}, get("Top"))
	assertVec(t, value.Vec3{Z: -1}, get("Bottom"))

	t.Run("axis field", func(t *testing.T) {
		assert.InDelta(t, 1.0, MustParse("Forward", "Y").ExtractDouble(value.KindRotator, value.Ptr(&r)), 1e-9)
	})

	t.Run("set axis rotates", func(t *testing.T) {
		q := value.IdentityQuat
		dir := value.Vec3{Y: 1}
		s := MustParse("Forward")
		s.Set(value.KindQuaternion, value.Ptr(&q), value.KindVector, value.Ptr(&dir))

		var out value.Vec3
		s.Get(value.KindQuaternion, value.Ptr(&q), value.KindVector, value.Ptr(&out))
		assertVec(t, dir, out)
		assert.InDelta(t, 90.0, q.Rotator().Yaw, 1e-6)
	})

	t.Run("zero direction is ignored", func(t *testing.T) {
		q := value.Rotator{Yaw: 30}.Quaternion()
		before := q
		var zero value.Vec3
		MustParse("Up").Set(value.KindQuaternion, value.Ptr(&q), value.KindVector, value.Ptr(&zero))
		assert.Equal(t, before, q)
	})

	t.Run("axis on non rotation converts", func(t *testing.T) {
		v := value.Vec3{X: 1, Y: 2, Z: 3}
		var out value.Vec3
		MustParse("Up").Get(value.KindVector, value.Ptr(&v), value.KindVector, value.Ptr(&out))
		assert.Equal(t, v, out)
	})
}

func TestTransformParts(t *testing.T) {
	tr := value.Transform{
		Rotation:    value.Rotator{Yaw: 90}.Quaternion(),
		Translation: value.Vec3{X: 1, Y: 2, Z: 3},
		Scale:       value.Vec3{X: 1, Y: 1, Z: 1},
	}

	t.Run("rotation axis", func(t *testing.T) {
		var out value.Vec3
		MustParse("Rotation", "Forward").Get(value.KindTransform, value.Ptr(&tr), value.KindVector, value.Ptr(&out))
		assertVec(t, value.Vec3{Y: 1}, out)
	})

	t.Run("whole part", func(t *testing.T) {
		var q value.Quat
		MustParse("Rotation").Get(value.KindTransform, value.Ptr(&tr), value.KindQuaternion, value.Ptr(&q))
		assert.Equal(t, tr.Rotation, q)

		cp := tr
		d := 2.0
		MustParse("Scale").Set(value.KindTransform, value.Ptr(&cp), value.KindDouble, value.Ptr(&d))
		assert.Equal(t, value.Vec3{X: 2, Y: 2, Z: 2}, cp.Scale)
		assert.Equal(t, tr.Translation, cp.Translation)
		assert.Equal(t, tr.Rotation, cp.Rotation)
	})

	t.Run("field without part addresses position", func(t *testing.T) {
		cp := tr
		assert.Equal(t, 2.0, MustParse("Y").ExtractDouble(value.KindTransform, value.Ptr(&cp)))
		MustParse("Y").InjectDouble(value.KindTransform, value.Ptr(&cp), 9)
		assert.Equal(t, value.Vec3{X: 1, Y: 9, Z: 3}, cp.Translation)
		assert.Equal(t, tr.Scale, cp.Scale)
	})

	t.Run("part on non transform converts", func(t *testing.T) {
		d := 4.0
		var out value.Vec3
		MustParse("Position").Get(value.KindDouble, value.Ptr(&d), value.KindVector, value.Ptr(&out))
		assert.Equal(t, value.Vec3{X: 4, Y: 4, Z: 4}, out)
	})
}

func TestNoSelectionPassesThrough(t *testing.T) {
	var s Selection
	d := 3.0
	var out value.Vec2
	s.Get(value.KindDouble, value.Ptr(&d), value.KindVector2, value.Ptr(&out))
	assert.Equal(t, value.Vec2{X: 3, Y: 3}, out)

	var dst float64
	s.Set(value.KindDouble, value.Ptr(&dst), value.KindVector2, value.Ptr(&out))
	assert.Equal(t, 3.0, dst)
	assert.False(t, s.AppliesTo(value.KindTransform))
	assert.True(t, MustParse("X").AppliesTo(value.KindVector))
	assert.False(t, MustParse("X").AppliesTo(value.KindDouble))
}
