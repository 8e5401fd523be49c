package convert

import (
	"fmt"
	"strconv"
	"unsafe"

	"github.com/hupe1980/valgebra/internal/conv"
	"github.com/hupe1980/valgebra/value"
)

type number interface {
	~int32 | ~int64 | ~float32 | ~float64
}

func saturate[S ~float32 | ~float64](v S) int64 { return conv.SaturateInt64(float64(v)) }

func formatInt[S ~int32 | ~int64](v S) string { return strconv.FormatInt(int64(v), 10) }

func formatFloat[S ~float32 | ~float64](v S) string {
	f := float64(v)
	if f == 0 {
		f = 0
	}
	return fmt.Sprintf("%f", f)
}

// boolRow: numbers become 1/0, rotations 180°/0° per channel.
func boolRow() row {
	num := func(b bool) float64 { return conv.BoolToFloat(b) }
	deg := func(b bool) float64 { return 180 * conv.BoolToFloat(b) }

	var r row
	r[value.KindInt32] = fn(func(b bool) int32 { return int32(num(b)) })
	r[value.KindInt64] = fn(func(b bool) int64 { return int64(num(b)) })
	r[value.KindFloat] = fn(func(b bool) float32 { return float32(num(b)) })
	r[value.KindDouble] = fn(num)
	r[value.KindVector2] = fn(func(b bool) value.Vec2 { return value.Splat[value.Vec2](num(b)) })
	r[value.KindVector] = fn(func(b bool) value.Vec3 { return value.Splat[value.Vec3](num(b)) })
	r[value.KindVector4] = fn(func(b bool) value.Vec4 { return value.Splat[value.Vec4](num(b)) })
	r[value.KindRotator] = fn(func(b bool) value.Rotator { d := deg(b); return value.Rotator{Pitch: d, Yaw: d, Roll: d} })
	r[value.KindQuaternion] = fn(func(b bool) value.Quat {
		d := deg(b)
		return value.Rotator{Pitch: d, Yaw: d, Roll: d}.Quaternion()
	})
	r[value.KindString] = fn(strconv.FormatBool)
	r[value.KindName] = fn(func(b bool) value.Name { return value.Name(strconv.FormatBool(b)) })
	return r
}

// scalarRow serves every numeric source. toInt is the integer coercion of
// the source (exact for integers, truncating and saturating for floats).
func scalarRow[S number](toInt func(S) int64, text func(S) string) row {
	var r row
	r[value.KindBool] = fn(func(v S) bool { return v > 0 })
	r[value.KindInt32] = fn(func(v S) int32 { return conv.NarrowInt64(toInt(v)) })
	r[value.KindInt64] = fn(toInt)
	r[value.KindFloat] = fn(func(v S) float32 { return float32(v) })
	r[value.KindDouble] = fn(func(v S) float64 { return float64(v) })
	r[value.KindVector2] = fn(func(v S) value.Vec2 { return value.Splat[value.Vec2](float64(v)) })
	r[value.KindVector] = fn(func(v S) value.Vec3 { return value.Splat[value.Vec3](float64(v)) })
	r[value.KindVector4] = fn(func(v S) value.Vec4 { return value.Splat[value.Vec4](float64(v)) })
	r[value.KindRotator] = fn(func(v S) value.Rotator { return value.Splat[value.Rotator](float64(v)) })
	r[value.KindQuaternion] = fn(func(v S) value.Quat { return value.Splat[value.Rotator](float64(v)).Quaternion() })
	r[value.KindString] = fn(text)
	r[value.KindName] = fn(func(v S) value.Name { return value.Name(text(v)) })
	return r
}

// vectorRow serves every Vec implementation. Missing components read as zero.
func vectorRow[V value.Vec[V]](k value.Kind) row {
	var r row
	r[value.KindBool] = fn(func(v V) bool { return v.LengthSquared() > 0 })
	r[value.KindInt32] = fn(func(v V) int32 { return conv.SaturateInt32(v.Component(0)) })
	r[value.KindInt64] = fn(func(v V) int64 { return conv.SaturateInt64(v.Component(0)) })
	r[value.KindFloat] = fn(func(v V) float32 { return float32(v.Component(0)) })
	r[value.KindDouble] = fn(func(v V) float64 { return v.Component(0) })
	r[value.KindVector2] = fn(func(v V) value.Vec2 { return value.Vec2{X: v.Component(0), Y: v.Component(1)} })
	r[value.KindVector] = fn(func(v V) value.Vec3 { return vec3Of(v) })
	r[value.KindVector4] = fn(func(v V) value.Vec4 {
		return value.Vec4{X: v.Component(0), Y: v.Component(1), Z: v.Component(2), W: v.Component(3)}
	})
	r[value.KindRotator] = fn(func(v V) value.Rotator { return rotatorOf(v) })
	r[value.KindQuaternion] = fn(func(v V) value.Quat { return rotatorOf(v).Quaternion() })
	r[value.KindTransform] = fn(func(v V) value.Transform {
		t := value.IdentityTransform
		t.Translation = vec3Of(v)
		return t
	})
	r[value.KindString] = textOf(k)
	r[value.KindName] = nameOf(k)
	return r
}

// vector4Row maps components straight onto a quaternion.
func vector4Row() row {
	r := vectorRow[value.Vec4](value.KindVector4)
	r[value.KindQuaternion] = fn(func(v value.Vec4) value.Quat {
		return value.Quat{X: v.X, Y: v.Y, Z: v.Z, W: v.W}.Normalized()
	})
	return r
}

// rotatorRow reads channels in Pitch, Yaw, Roll order.
func rotatorRow() row {
	r := vectorRow[value.Rotator](value.KindRotator)
	r[value.KindBool] = fn(func(v value.Rotator) bool { return !v.IsNearlyZero(value.KindaSmallNumber) })
	r[value.KindTransform] = fn(func(v value.Rotator) value.Transform {
		t := value.IdentityTransform
		t.Rotation = v.Quaternion()
		return t
	})
	return r
}

// quatRow: scalars read W, vectors read the Euler channels.
func quatRow() row {
	var r row
	r[value.KindBool] = fn(func(q value.Quat) bool { return !q.IsIdentity(value.SmallNumber) })
	r[value.KindInt32] = fn(func(q value.Quat) int32 { return conv.SaturateInt32(q.W) })
	r[value.KindInt64] = fn(func(q value.Quat) int64 { return conv.SaturateInt64(q.W) })
	r[value.KindFloat] = fn(func(q value.Quat) float32 { return float32(q.W) })
	r[value.KindDouble] = fn(func(q value.Quat) float64 { return q.W })
	r[value.KindVector2] = fn(func(q value.Quat) value.Vec2 {
		e := q.Rotator()
		return value.Vec2{X: e.Pitch, Y: e.Yaw}
	})
	r[value.KindVector] = fn(func(q value.Quat) value.Vec3 {
		e := q.Rotator()
		return value.Vec3{X: e.Pitch, Y: e.Yaw, Z: e.Roll}
	})
	r[value.KindVector4] = fn(func(q value.Quat) value.Vec4 { return value.Vec4{X: q.X, Y: q.Y, Z: q.Z, W: q.W} })
	r[value.KindRotator] = fn(value.Quat.Rotator)
	r[value.KindTransform] = fn(func(q value.Quat) value.Transform {
		t := value.IdentityTransform
		t.Rotation = q
		return t
	})
	r[value.KindString] = textOf(value.KindQuaternion)
	r[value.KindName] = nameOf(value.KindQuaternion)
	return r
}

// transformRow reads the translation for scalars and vectors.
func transformRow() row {
	var r row
	r[value.KindBool] = fn(func(t value.Transform) bool {
		return !t.Equals(value.IdentityTransform, value.KindaSmallNumber)
	})
	r[value.KindInt32] = fn(func(t value.Transform) int32 { return conv.SaturateInt32(t.Translation.X) })
	r[value.KindInt64] = fn(func(t value.Transform) int64 { return conv.SaturateInt64(t.Translation.X) })
	r[value.KindFloat] = fn(func(t value.Transform) float32 { return float32(t.Translation.X) })
	r[value.KindDouble] = fn(func(t value.Transform) float64 { return t.Translation.X })
	r[value.KindVector2] = fn(func(t value.Transform) value.Vec2 {
		return value.Vec2{X: t.Translation.X, Y: t.Translation.Y}
	})
	r[value.KindVector] = fn(func(t value.Transform) value.Vec3 { return t.Translation })
	r[value.KindVector4] = fn(func(t value.Transform) value.Vec4 {
		return value.Vec4{X: t.Translation.X, Y: t.Translation.Y, Z: t.Translation.Z}
	})
	r[value.KindQuaternion] = fn(func(t value.Transform) value.Quat { return t.Rotation })
	r[value.KindRotator] = fn(value.Transform.Rotator)
	r[value.KindString] = textOf(value.KindTransform)
	r[value.KindName] = nameOf(value.KindTransform)
	return r
}

// textRow parses text into every non-text kind and copies between text kinds.
func textRow[S ~string]() row {
	var r row
	for _, k := range value.Kinds() {
		if value.TraitsOf(k).IsText() {
			continue
		}
		r[k] = func(src, dst unsafe.Pointer) { value.Parse(k, string(*(*S)(src)), dst) }
	}
	r[value.KindString] = fn(func(s S) string { return string(s) })
	r[value.KindName] = fn(func(s S) value.Name { return value.Name(s) })
	r[value.KindSoftObjectPath] = fn(func(s S) value.SoftObjectPath { return value.SoftObjectPath(s) })
	return r
}

func textOf(k value.Kind) Func {
	return func(src, dst unsafe.Pointer) { *(*string)(dst) = value.Format(k, src) }
}

func nameOf(k value.Kind) Func {
	return func(src, dst unsafe.Pointer) { *(*value.Name)(dst) = value.Name(value.Format(k, src)) }
}

func vec3Of[V value.Vec[V]](v V) value.Vec3 {
	return value.Vec3{X: v.Component(0), Y: v.Component(1), Z: v.Component(2)}
}

func rotatorOf[V value.Vec[V]](v V) value.Rotator {
	return value.Rotator{Pitch: v.Component(0), Yaw: v.Component(1), Roll: v.Component(2)}
}
