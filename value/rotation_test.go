package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVec3InDelta(t *testing.T, want, got Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta)
	assert.InDelta(t, want.Y, got.Y, delta)
	assert.InDelta(t, want.Z, got.Z, delta)
}

func TestNormalizeAxis(t *testing.T) {
	assert.InDelta(t, 0.0, NormalizeAxis(360), 1e-12)
	assert.InDelta(t, -90.0, NormalizeAxis(270), 1e-12)
	assert.InDelta(t, 180.0, NormalizeAxis(180), 1e-12)
	assert.InDelta(t, 170.0, NormalizeAxis(-190), 1e-12)
}

func TestRotatorQuaternionRoundTrip(t *testing.T) {
	for _, r := range []Rotator{
		{},
		{Pitch: 10, Yaw: 20, Roll: 30},
		{Pitch: -45, Yaw: 135, Roll: -60},
		{Yaw: 90},
	} {
		got := r.Quaternion().Rotator()
		assert.InDelta(t, r.Pitch, got.Pitch, 1e-9)
		assert.InDelta(t, r.Yaw, got.Yaw, 1e-9)
		assert.InDelta(t, r.Roll, got.Roll, 1e-9)
	}
}

func TestQuatRotateVector(t *testing.T) {
	t.Run("yaw 90 turns forward into right", func(t *testing.T) {
		q := Rotator{Yaw: 90}.Quaternion()
		assertVec3InDelta(t, Vec3{0, 1, 0}, q.RotateVector(Vec3{1, 0, 0}), 1e-12)
	})

	t.Run("identity", func(t *testing.T) {
		v := Vec3{1, 2, 3}
		assert.Equal(t, v, IdentityQuat.RotateVector(v))
	})
}

func TestQuatBasics(t *testing.T) {
	q := Rotator{Yaw: 90}.Quaternion()

	assert.InDelta(t, math.Pi/2, q.Angle(), 1e-12)
	assert.True(t, IdentityQuat.IsIdentity(SmallNumber))
	assert.False(t, q.IsIdentity(SmallNumber))
	assert.True(t, q.Mul(q.Inverse()).IsIdentity(1e-12))

	neg := Quat{-q.X, -q.Y, -q.Z, -q.W}
	assert.True(t, q.Equals(neg, 1e-12))

	assert.Equal(t, IdentityQuat, Quat{}.Normalized())
}

func TestFindBetweenNormals(t *testing.T) {
	a, b := Vec3{1, 0, 0}, Vec3{0, 0, 1}
	q := FindBetweenNormals(a, b)
	assertVec3InDelta(t, b, q.RotateVector(a), 1e-12)

	opposite := FindBetweenNormals(a, Vec3{-1, 0, 0})
	assertVec3InDelta(t, Vec3{-1, 0, 0}, opposite.RotateVector(a), 1e-12)
}

func TestDirectionRotator(t *testing.T) {
	r := DirectionRotator(Vec3{0, 1, 0})
	assert.InDelta(t, 90.0, r.Yaw, 1e-12)
	assert.InDelta(t, 0.0, r.Pitch, 1e-12)

	up := DirectionRotator(Vec3{0, 0, 1})
	assert.InDelta(t, 90.0, up.Pitch, 1e-12)
}

func TestRotatorIsNearlyZero(t *testing.T) {
	assert.True(t, Rotator{Pitch: 360}.IsNearlyZero(KindaSmallNumber))
	assert.False(t, Rotator{Roll: 1}.IsNearlyZero(KindaSmallNumber))
}

func TestVectorHelpers(t *testing.T) {
	v := Vec3{3, 4, 0}
	assert.Equal(t, 5.0, Length(v))
	assert.Equal(t, 7.0, Sum(v))
	assert.Equal(t, 24.0, Volume(Vec3{2, 3, 4}))
	assert.Equal(t, Vec4{2, 2, 2, 2}, Splat[Vec4](2))
	assertVec3InDelta(t, Vec3{0.6, 0.8, 0}, SafeNormal(v), 1e-12)
	assert.Equal(t, Vec2{}, SafeNormal(Vec2{}))
	assert.Equal(t, 0.0, Vec2{1, 2}.Component(5))
	assert.Equal(t, Vec4{1, 2, 9, 4}, Vec4{1, 2, 3, 4}.WithComponent(2, 9))
}
