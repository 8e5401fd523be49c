package value

import "unsafe"

// Traits is the static metadata of a kind.
type Traits struct {
	Kind       Kind
	Size       uintptr
	Align      uintptr
	Components int

	SupportsLerp       bool
	SupportsMinMax     bool
	SupportsArithmetic bool
}

// IsNumeric reports whether the kind is a scalar number.
func (t Traits) IsNumeric() bool {
	return t.Kind >= KindInt32 && t.Kind <= KindDouble
}

// IsVector reports whether the kind is a 2, 3 or 4 component vector.
func (t Traits) IsVector() bool {
	return t.Kind >= KindVector2 && t.Kind <= KindVector4
}

// IsRotation reports whether the kind is a quaternion or a rotator.
func (t Traits) IsRotation() bool {
	return t.Kind == KindQuaternion || t.Kind == KindRotator
}

// IsText reports whether the kind is one of the text-like kinds.
func (t Traits) IsText() bool { return t.Kind >= KindString }

// traitsTable is filled before init completes and never written again.
var traitsTable [NumKinds]Traits

func init() {
	set := func(k Kind, size, align uintptr, comps int, lerp, order, arith bool) {
		traitsTable[k] = Traits{
			Kind:               k,
			Size:               size,
			Align:              align,
			Components:         comps,
			SupportsLerp:       lerp,
			SupportsMinMax:     order,
			SupportsArithmetic: arith,
		}
	}

	// Booleans have a logical algebra (or/and) but no meaningful interpolation.
	set(KindBool, unsafe.Sizeof(false), unsafe.Alignof(false), 1, false, true, true)
	set(KindInt32, unsafe.Sizeof(int32(0)), unsafe.Alignof(int32(0)), 1, true, true, true)
	set(KindInt64, unsafe.Sizeof(int64(0)), unsafe.Alignof(int64(0)), 1, true, true, true)
	set(KindFloat, unsafe.Sizeof(float32(0)), unsafe.Alignof(float32(0)), 1, true, true, true)
	set(KindDouble, unsafe.Sizeof(float64(0)), unsafe.Alignof(float64(0)), 1, true, true, true)
	set(KindVector2, unsafe.Sizeof(Vec2{}), unsafe.Alignof(Vec2{}), 2, true, true, true)
	set(KindVector, unsafe.Sizeof(Vec3{}), unsafe.Alignof(Vec3{}), 3, true, true, true)
	set(KindVector4, unsafe.Sizeof(Vec4{}), unsafe.Alignof(Vec4{}), 4, true, true, true)
	set(KindQuaternion, unsafe.Sizeof(Quat{}), unsafe.Alignof(Quat{}), 4, true, true, true)
	set(KindRotator, unsafe.Sizeof(Rotator{}), unsafe.Alignof(Rotator{}), 3, true, true, true)
	set(KindTransform, unsafe.Sizeof(Transform{}), unsafe.Alignof(Transform{}), 10, true, true, true)

	// Text orders by length only.
	set(KindString, unsafe.Sizeof(""), unsafe.Alignof(""), 1, false, true, false)
	set(KindName, unsafe.Sizeof(Name("")), unsafe.Alignof(Name("")), 1, false, true, false)
	set(KindSoftObjectPath, unsafe.Sizeof(SoftObjectPath("")), unsafe.Alignof(SoftObjectPath("")), 1, false, true, false)
}

// TraitsOf returns the traits of k. Unknown kinds yield the zero Traits.
func TraitsOf(k Kind) Traits {
	if !k.Valid() {
		return Traits{}
	}
	return traitsTable[k]
}

// FieldCount is the number of addressable scalar fields of a kind.
// Transforms expose three 3-vectors.
func FieldCount(k Kind) int {
	switch k {
	case KindVector2:
		return 2
	case KindVector, KindRotator:
		return 3
	case KindVector4, KindQuaternion:
		return 4
	case KindTransform:
		return 9
	}
	return 1
}
