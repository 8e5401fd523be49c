package subsel

import (
	"math"
	"unsafe"

	"github.com/hupe1980/valgebra/convert"
	"github.com/hupe1980/valgebra/value"
)

// ExtractField reads field f of the kind k value at p. Components a kind
// does not have read as its first component. Kinds with a single field
// return their double proxy.
func ExtractField(k value.Kind, p unsafe.Pointer, f Field) float64 {
	switch k {
	case value.KindVector2:
		return vecField(*(*value.Vec2)(p), f)
	case value.KindVector:
		return vecField(*(*value.Vec3)(p), f)
	case value.KindVector4:
		v := *(*value.Vec4)(p)
		switch f {
		case Length:
			return value.Length(value.Vec3{X: v.X, Y: v.Y, Z: v.Z})
		case SquaredLength:
			return value.Vec3{X: v.X, Y: v.Y, Z: v.Z}.LengthSquared()
		}
		return vecField(v, f)
	case value.KindRotator:
		return rotatorField(*(*value.Rotator)(p), f)
	case value.KindQuaternion:
		return rotatorField((*value.Quat)(p).Rotator(), f)
	case value.KindTransform:
		return vecField((*value.Transform)(p).Translation, f)
	}
	return convert.ToFloat64(k, p)
}

// InjectField writes d into field f of the kind k value at p. Length and
// SquaredLength rescale the value; Volume, Sum and components the kind does
// not have are ignored.
func InjectField(k value.Kind, p unsafe.Pointer, f Field, d float64) {
	switch k {
	case value.KindVector2:
		v := (*value.Vec2)(p)
		*v = withVecField(*v, f, d)
	case value.KindVector:
		v := (*value.Vec3)(p)
		*v = withVecField(*v, f, d)
	case value.KindVector4:
		v := (*value.Vec4)(p)
		switch f {
		case Length, SquaredLength:
			xyz := withVecField(value.Vec3{X: v.X, Y: v.Y, Z: v.Z}, f, d)
			v.X, v.Y, v.Z = xyz.X, xyz.Y, xyz.Z
		default:
			*v = withVecField(*v, f, d)
		}
	case value.KindRotator:
		r := (*value.Rotator)(p)
		*r = withRotatorField(*r, f, d)
	case value.KindQuaternion:
		q := (*value.Quat)(p)
		*q = withRotatorField(q.Rotator(), f, d).Quaternion()
	case value.KindTransform:
		t := (*value.Transform)(p)
		t.Translation = withVecField(t.Translation, f, d)
	default:
		convert.WriteFloat64(k, d, p)
	}
}

func vecField[V value.Vec[V]](v V, f Field) float64 {
	switch f {
	case Length:
		return value.Length(v)
	case SquaredLength:
		return v.LengthSquared()
	case Volume:
		return value.Volume(v)
	case Sum:
		return value.Sum(v)
	}
	if i := f.Index(); i < v.Dims() {
		return v.Component(i)
	}
	return v.Component(0)
}

func withVecField[V value.Vec[V]](v V, f Field, d float64) V {
	switch f {
	case Length:
		return scaled(v, d)
	case SquaredLength:
		return scaled(v, math.Sqrt(d))
	case Volume, Sum:
		return v
	}
	if i := f.Index(); i < v.Dims() {
		return v.WithComponent(i, d)
	}
	return v
}

func scaled[V value.Vec[V]](v V, length float64) V {
	return value.SafeNormal(v).Map(func(c float64) float64 { return c * length })
}

// rotatorChannels orders a rotator as Roll, Yaw, Pitch, which is the
// X, Y, Z order of its fields.
func rotatorChannels(r value.Rotator) value.Vec3 {
	return value.Vec3{X: r.Roll, Y: r.Yaw, Z: r.Pitch}
}

func rotatorField(r value.Rotator, f Field) float64 {
	return vecField(rotatorChannels(r), f)
}

func withRotatorField(r value.Rotator, f Field, d float64) value.Rotator {
	switch f {
	case X:
		r.Roll = d
	case Y:
		r.Yaw = d
	case Z:
		r.Pitch = d
	case Length, SquaredLength:
		if f == SquaredLength {
			d = math.Sqrt(d)
		}
		return r.Map(func(c float64) float64 { return value.NormalizeAxis(c) * d })
	}
	return r
}
