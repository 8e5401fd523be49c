package convert

import (
	"unsafe"

	"github.com/hupe1980/valgebra/value"
)

// Func converts the value at src into the value at dst.
// Both pointers must point to values of the kinds the Func was looked up for.
type Func func(src, dst unsafe.Pointer)

type row [value.NumKinds]Func

// matrix is built during package initialisation and read-only afterwards.
var matrix [value.NumKinds]row

func init() {
	matrix[value.KindBool] = boolRow()
	matrix[value.KindInt32] = scalarRow(func(v int32) int64 { return int64(v) }, formatInt[int32])
	matrix[value.KindInt64] = scalarRow(func(v int64) int64 { return v }, formatInt[int64])
	matrix[value.KindFloat] = scalarRow(saturate[float32], formatFloat[float32])
	matrix[value.KindDouble] = scalarRow(saturate[float64], formatFloat[float64])
	matrix[value.KindVector2] = vectorRow[value.Vec2](value.KindVector2)
	matrix[value.KindVector] = vectorRow[value.Vec3](value.KindVector)
	matrix[value.KindVector4] = vector4Row()
	matrix[value.KindQuaternion] = quatRow()
	matrix[value.KindRotator] = rotatorRow()
	matrix[value.KindTransform] = transformRow()
	matrix[value.KindString] = textRow[string]()
	matrix[value.KindName] = textRow[value.Name]()
	matrix[value.KindSoftObjectPath] = textRow[value.SoftObjectPath]()

	setIdentity[bool](value.KindBool)
	setIdentity[int32](value.KindInt32)
	setIdentity[int64](value.KindInt64)
	setIdentity[float32](value.KindFloat)
	setIdentity[float64](value.KindDouble)
	setIdentity[value.Vec2](value.KindVector2)
	setIdentity[value.Vec3](value.KindVector)
	setIdentity[value.Vec4](value.KindVector4)
	setIdentity[value.Quat](value.KindQuaternion)
	setIdentity[value.Rotator](value.KindRotator)
	setIdentity[value.Transform](value.KindTransform)
	setIdentity[string](value.KindString)
	setIdentity[value.Name](value.KindName)
	setIdentity[value.SoftObjectPath](value.KindSoftObjectPath)

	for s := range matrix {
		for d := range matrix[s] {
			if matrix[s][d] == nil {
				matrix[s][d] = defaultFunc(value.Kind(d))
			}
		}
	}
}

// Convert writes into dst the dstKind value derived from the srcKind value
// at src. Every pair of declared kinds is supported; conversions without a
// meaningful rule write the destination's default value. Undeclared kinds
// leave dst untouched.
func Convert(srcKind value.Kind, src unsafe.Pointer, dstKind value.Kind, dst unsafe.Pointer) {
	if !srcKind.Valid() || !dstKind.Valid() {
		return
	}
	matrix[srcKind][dstKind](src, dst)
}

// Lookup returns the conversion function of a pair so that callers looping
// over a buffer resolve it once. It returns nil for undeclared kinds.
func Lookup(srcKind, dstKind value.Kind) Func {
	if !srcKind.Valid() || !dstKind.Valid() {
		return nil
	}
	return matrix[srcKind][dstKind]
}

// To converts the srcKind value at src into a T.
func To[T value.Supported](srcKind value.Kind, src unsafe.Pointer) T {
	var out T
	Convert(srcKind, src, value.KindOf[T](), unsafe.Pointer(&out))
	return out
}

// From converts v into the dstKind slot at dst.
func From[T value.Supported](v T, dstKind value.Kind, dst unsafe.Pointer) {
	Convert(value.KindOf[T](), unsafe.Pointer(&v), dstKind, dst)
}

func fn[S, D any](f func(S) D) Func {
	return func(src, dst unsafe.Pointer) { *(*D)(dst) = f(*(*S)(src)) }
}

func setIdentity[T any](k value.Kind) {
	matrix[k][k] = func(src, dst unsafe.Pointer) { *(*T)(dst) = *(*T)(src) }
}

func defaultFunc(k value.Kind) Func {
	return func(_, dst unsafe.Pointer) { value.InitDefault(k, dst) }
}
