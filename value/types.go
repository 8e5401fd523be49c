package value

import (
	"unsafe"
)

// Transform is an affine transform made of a rotation, a translation and a
// per-axis scale.
type Transform struct {
	Rotation    Quat
	Translation Vec3
	Scale       Vec3
}

// IdentityTransform leaves every point where it is.
var IdentityTransform = Transform{
	Rotation: IdentityQuat,
	Scale:    Vec3{1, 1, 1},
}

// Equals reports whether t and o match part by part within tol.
func (t Transform) Equals(o Transform, tol float64) bool {
	return t.Rotation.Equals(o.Rotation, tol) &&
		nearlyEqualVec(t.Translation, o.Translation, tol) &&
		nearlyEqualVec(t.Scale, o.Scale, tol)
}

// Rotator returns the rotation part as Euler angles.
func (t Transform) Rotator() Rotator { return t.Rotation.Rotator() }

func nearlyEqualVec(a, b Vec3, tol float64) bool {
	d := a.Sub(b)
	return d.X <= tol && d.X >= -tol && d.Y <= tol && d.Y >= -tol && d.Z <= tol && d.Z >= -tol
}

// Name is an identifier. The empty name means "none".
type Name string

// IsNone reports whether n is the empty name.
func (n Name) IsNone() bool { return n == "" }

// SoftObjectPath is a textual reference to an asset.
type SoftObjectPath string

// IsNull reports whether p references nothing.
func (p SoftObjectPath) IsNull() bool { return p == "" }

// Supported lists the Go types backing each kind.
type Supported interface {
	bool | int32 | int64 | float32 | float64 |
		Vec2 | Vec3 | Vec4 | Quat | Rotator | Transform |
		string | Name | SoftObjectPath
}

// KindOf returns the kind backed by T.
func KindOf[T Supported]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat
	case float64:
		return KindDouble
	case Vec2:
		return KindVector2
	case Vec3:
		return KindVector
	case Vec4:
		return KindVector4
	case Quat:
		return KindQuaternion
	case Rotator:
		return KindRotator
	case Transform:
		return KindTransform
	case string:
		return KindString
	case Name:
		return KindName
	default:
		return KindSoftObjectPath
	}
}

// Ptr returns v's address as an opaque pointer.
func Ptr[T Supported](v *T) unsafe.Pointer { return unsafe.Pointer(v) }

// At reinterprets p as a pointer to T. The caller guarantees p points to a T.
func At[T any](p unsafe.Pointer) *T { return (*T)(p) }

// Default returns the default value of kind k.
func Default(k Kind) any {
	switch k {
	case KindBool:
		return false
	case KindInt32:
		return int32(0)
	case KindInt64:
		return int64(0)
	case KindFloat:
		return float32(0)
	case KindDouble:
		return float64(0)
	case KindVector2:
		return Vec2{}
	case KindVector:
		return Vec3{}
	case KindVector4:
		return Vec4{}
	case KindQuaternion:
		return IdentityQuat
	case KindRotator:
		return Rotator{}
	case KindTransform:
		return IdentityTransform
	case KindString:
		return ""
	case KindName:
		return Name("")
	default:
		return SoftObjectPath("")
	}
}

// InitDefault writes the default value of kind k at p.
func InitDefault(k Kind, p unsafe.Pointer) {
	switch k {
	case KindBool:
		*(*bool)(p) = false
	case KindInt32:
		*(*int32)(p) = 0
	case KindInt64:
		*(*int64)(p) = 0
	case KindFloat:
		*(*float32)(p) = 0
	case KindDouble:
		*(*float64)(p) = 0
	case KindVector2:
		*(*Vec2)(p) = Vec2{}
	case KindVector:
		*(*Vec3)(p) = Vec3{}
	case KindVector4:
		*(*Vec4)(p) = Vec4{}
	case KindQuaternion:
		*(*Quat)(p) = IdentityQuat
	case KindRotator:
		*(*Rotator)(p) = Rotator{}
	case KindTransform:
		*(*Transform)(p) = IdentityTransform
	case KindString:
		*(*string)(p) = ""
	case KindName:
		*(*Name)(p) = ""
	case KindSoftObjectPath:
		*(*SoftObjectPath)(p) = ""
	}
}

// Copy copies the kind k value at src to dst.
func Copy(k Kind, dst, src unsafe.Pointer) {
	switch k {
	case KindBool:
		*(*bool)(dst) = *(*bool)(src)
	case KindInt32:
		*(*int32)(dst) = *(*int32)(src)
	case KindInt64:
		*(*int64)(dst) = *(*int64)(src)
	case KindFloat:
		*(*float32)(dst) = *(*float32)(src)
	case KindDouble:
		*(*float64)(dst) = *(*float64)(src)
	case KindVector2:
		*(*Vec2)(dst) = *(*Vec2)(src)
	case KindVector:
		*(*Vec3)(dst) = *(*Vec3)(src)
	case KindVector4:
		*(*Vec4)(dst) = *(*Vec4)(src)
	case KindQuaternion:
		*(*Quat)(dst) = *(*Quat)(src)
	case KindRotator:
		*(*Rotator)(dst) = *(*Rotator)(src)
	case KindTransform:
		*(*Transform)(dst) = *(*Transform)(src)
	case KindString:
		*(*string)(dst) = *(*string)(src)
	case KindName:
		*(*Name)(dst) = *(*Name)(src)
	case KindSoftObjectPath:
		*(*SoftObjectPath)(dst) = *(*SoftObjectPath)(src)
	}
}

// Load boxes the kind k value at p. It allocates and is meant for
// configuration and diagnostics, not for per-point work.
func Load(k Kind, p unsafe.Pointer) any {
	switch k {
	case KindBool:
		return *(*bool)(p)
	case KindInt32:
		return *(*int32)(p)
	case KindInt64:
		return *(*int64)(p)
	case KindFloat:
		return *(*float32)(p)
	case KindDouble:
		return *(*float64)(p)
	case KindVector2:
		return *(*Vec2)(p)
	case KindVector:
		return *(*Vec3)(p)
	case KindVector4:
		return *(*Vec4)(p)
	case KindQuaternion:
		return *(*Quat)(p)
	case KindRotator:
		return *(*Rotator)(p)
	case KindTransform:
		return *(*Transform)(p)
	case KindString:
		return *(*string)(p)
	case KindName:
		return *(*Name)(p)
	default:
		return *(*SoftObjectPath)(p)
	}
}

// New allocates a slot holding the default value of kind k and returns its
// address.
func New(k Kind) unsafe.Pointer {
	switch k {
	case KindBool:
		return unsafe.Pointer(new(bool))
	case KindInt32:
		return unsafe.Pointer(new(int32))
	case KindInt64:
		return unsafe.Pointer(new(int64))
	case KindFloat:
		return unsafe.Pointer(new(float32))
	case KindDouble:
		return unsafe.Pointer(new(float64))
	case KindVector2:
		return unsafe.Pointer(new(Vec2))
	case KindVector:
		return unsafe.Pointer(new(Vec3))
	case KindVector4:
		return unsafe.Pointer(new(Vec4))
	case KindQuaternion:
		q := IdentityQuat
		return unsafe.Pointer(&q)
	case KindRotator:
		return unsafe.Pointer(new(Rotator))
	case KindTransform:
		t := IdentityTransform
		return unsafe.Pointer(&t)
	case KindString:
		return unsafe.Pointer(new(string))
	case KindName:
		return unsafe.Pointer(new(Name))
	default:
		return unsafe.Pointer(new(SoftObjectPath))
	}
}

// Box stores v in a fresh slot of its kind and returns the kind and address.
// It returns false when v's dynamic type backs no kind.
func Box(v any) (Kind, unsafe.Pointer, bool) {
	switch x := v.(type) {
	case bool:
		return KindBool, unsafe.Pointer(&x), true
	case int32:
		return KindInt32, unsafe.Pointer(&x), true
	case int64:
		return KindInt64, unsafe.Pointer(&x), true
	case float32:
		return KindFloat, unsafe.Pointer(&x), true
	case float64:
		return KindDouble, unsafe.Pointer(&x), true
	case Vec2:
		return KindVector2, unsafe.Pointer(&x), true
	case Vec3:
		return KindVector, unsafe.Pointer(&x), true
	case Vec4:
		return KindVector4, unsafe.Pointer(&x), true
	case Quat:
		return KindQuaternion, unsafe.Pointer(&x), true
	case Rotator:
		return KindRotator, unsafe.Pointer(&x), true
	case Transform:
		return KindTransform, unsafe.Pointer(&x), true
	case string:
		return KindString, unsafe.Pointer(&x), true
	case Name:
		return KindName, unsafe.Pointer(&x), true
	case SoftObjectPath:
		return KindSoftObjectPath, unsafe.Pointer(&x), true
	}
	return KindBool, nil, false
}
