package convert

import (
	"unsafe"

	"github.com/hupe1980/valgebra/internal/conv"
	"github.com/hupe1980/valgebra/value"
)

// ToFloat64 returns the double proxy of the kind k value at p. It agrees
// with Convert(k, p, value.KindDouble, ...) and does not allocate for
// non-text kinds, which makes it the scalar path of blend and
// sub-selection code.
func ToFloat64(k value.Kind, p unsafe.Pointer) float64 {
	switch k {
	case value.KindBool:
		return conv.BoolToFloat(*(*bool)(p))
	case value.KindInt32:
		return float64(*(*int32)(p))
	case value.KindInt64:
		return float64(*(*int64)(p))
	case value.KindFloat:
		return float64(*(*float32)(p))
	case value.KindDouble:
		return *(*float64)(p)
	case value.KindVector2:
		return (*value.Vec2)(p).X
	case value.KindVector:
		return (*value.Vec3)(p).X
	case value.KindVector4:
		return (*value.Vec4)(p).X
	case value.KindQuaternion:
		return (*value.Quat)(p).W
	case value.KindRotator:
		return (*value.Rotator)(p).Pitch
	case value.KindTransform:
		return (*value.Transform)(p).Translation.X
	case value.KindString, value.KindName, value.KindSoftObjectPath:
		var d float64
		matrix[k][value.KindDouble](p, unsafe.Pointer(&d))
		return d
	}
	return 0
}

// WriteFloat64 writes the kind k conversion of f at p. It agrees with
// Convert(value.KindDouble, &f, k, p).
func WriteFloat64(k value.Kind, f float64, p unsafe.Pointer) {
	switch k {
	case value.KindBool:
		*(*bool)(p) = f > 0
	case value.KindInt32:
		*(*int32)(p) = conv.NarrowInt64(conv.SaturateInt64(f))
	case value.KindInt64:
		*(*int64)(p) = conv.SaturateInt64(f)
	case value.KindFloat:
		*(*float32)(p) = float32(f)
	case value.KindDouble:
		*(*float64)(p) = f
	case value.KindVector2:
		*(*value.Vec2)(p) = value.Vec2{X: f, Y: f}
	case value.KindVector:
		*(*value.Vec3)(p) = value.Vec3{X: f, Y: f, Z: f}
	case value.KindVector4:
		*(*value.Vec4)(p) = value.Vec4{X: f, Y: f, Z: f, W: f}
	case value.KindRotator:
		*(*value.Rotator)(p) = value.Rotator{Pitch: f, Yaw: f, Roll: f}
	case value.KindQuaternion:
		*(*value.Quat)(p) = value.Rotator{Pitch: f, Yaw: f, Roll: f}.Quaternion()
	case value.KindTransform:
		*(*value.Transform)(p) = value.IdentityTransform
	case value.KindString:
		*(*string)(p) = formatFloat(f)
	case value.KindName:
		*(*value.Name)(p) = value.Name(formatFloat(f))
	case value.KindSoftObjectPath:
		*(*value.SoftObjectPath)(p) = ""
	}
}
