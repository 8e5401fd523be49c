package value

import (
	"unsafe"

	"github.com/hupe1980/valgebra/internal/hash"
)

// Hash returns a stable 32-bit hash of the kind k value at p.
func Hash(k Kind, p unsafe.Pointer) uint32 {
	switch k {
	case KindBool:
		if *(*bool)(p) {
			return 1
		}
		return 0
	case KindInt32:
		return hash.Int64(int64(*(*int32)(p)))
	case KindInt64:
		return hash.Int64(*(*int64)(p))
	case KindFloat:
		return hash.Float64(float64(*(*float32)(p)))
	case KindDouble:
		return hash.Float64(*(*float64)(p))
	case KindVector2:
		v := *(*Vec2)(p)
		return hash.Floats(v.X, v.Y)
	case KindVector:
		v := *(*Vec3)(p)
		return hash.Floats(v.X, v.Y, v.Z)
	case KindVector4:
		v := *(*Vec4)(p)
		return hash.Floats(v.X, v.Y, v.Z, v.W)
	case KindQuaternion:
		q := *(*Quat)(p)
		return hash.Floats(q.X, q.Y, q.Z, q.W)
	case KindRotator:
		r := *(*Rotator)(p)
		return hash.Floats(r.Pitch, r.Yaw, r.Roll)
	case KindTransform:
		t := *(*Transform)(p)
		return hash.Floats(
			t.Rotation.X, t.Rotation.Y, t.Rotation.Z, t.Rotation.W,
			t.Translation.X, t.Translation.Y, t.Translation.Z,
			t.Scale.X, t.Scale.Y, t.Scale.Z)
	case KindString:
		return hash.String(*(*string)(p))
	case KindName:
		return hash.String(string(*(*Name)(p)))
	case KindSoftObjectPath:
		return hash.String(string(*(*SoftObjectPath)(p)))
	}
	return 0
}

// HashCombine mixes two hashes.
func HashCombine(a, b uint32) uint32 { return hash.Combine(a, b) }

// HashFloat hashes a single float.
func HashFloat(f float64) uint32 { return hash.Float64(f) }
