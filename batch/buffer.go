package batch

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hupe1980/valgebra/value"
)

var (
	// ErrKindMismatch is returned when buffers or operators disagree on the kind.
	ErrKindMismatch = errors.New("batch: kind mismatch")

	// ErrLengthMismatch is returned when buffers, indices or weights disagree on length.
	ErrLengthMismatch = errors.New("batch: length mismatch")
)

// Buffer is a contiguous run of Len values of one kind starting at Ptr.
type Buffer struct {
	Kind value.Kind
	Ptr  unsafe.Pointer
	Len  int
}

// Of wraps a Go slice as a Buffer.
func Of[T value.Supported](s []T) Buffer {
	b := Buffer{Kind: value.KindOf[T](), Len: len(s)}
	if len(s) > 0 {
		b.Ptr = unsafe.Pointer(&s[0])
	}
	return b
}

// Make allocates a buffer of n default values of kind k.
func Make(k value.Kind, n int) Buffer {
	var b Buffer
	switch k {
	case value.KindBool:
		b = Of(make([]bool, n))
	case value.KindInt32:
		b = Of(make([]int32, n))
	case value.KindInt64:
		b = Of(make([]int64, n))
	case value.KindFloat:
		b = Of(make([]float32, n))
	case value.KindDouble:
		b = Of(make([]float64, n))
	case value.KindVector2:
		b = Of(make([]value.Vec2, n))
	case value.KindVector:
		b = Of(make([]value.Vec3, n))
	case value.KindVector4:
		b = Of(make([]value.Vec4, n))
	case value.KindQuaternion:
		b = Of(make([]value.Quat, n))
	case value.KindRotator:
		b = Of(make([]value.Rotator, n))
	case value.KindTransform:
		b = Of(make([]value.Transform, n))
	case value.KindString:
		b = Of(make([]string, n))
	case value.KindName:
		b = Of(make([]value.Name, n))
	case value.KindSoftObjectPath:
		b = Of(make([]value.SoftObjectPath, n))
	default:
		panic(fmt.Sprintf("batch: undeclared kind %d", k))
	}
	for i := 0; i < n; i++ {
		value.InitDefault(k, b.At(i))
	}
	return b
}

// Slice views a Buffer as a Go slice. It panics when T is not the kind of b.
func Slice[T value.Supported](b Buffer) []T {
	if k := value.KindOf[T](); k != b.Kind {
		panic(fmt.Sprintf("batch: %s buffer viewed as %s", b.Kind, k))
	}
	if b.Len == 0 {
		return nil
	}
	return unsafe.Slice((*T)(b.Ptr), b.Len)
}

// At returns a pointer to element i.
func (b Buffer) At(i int) unsafe.Pointer {
	return unsafe.Add(b.Ptr, uintptr(i)*value.TraitsOf(b.Kind).Size)
}

// Range returns the sub-buffer [lo, hi).
func (b Buffer) Range(lo, hi int) Buffer {
	if lo == hi {
		return Buffer{Kind: b.Kind}
	}
	return Buffer{Kind: b.Kind, Ptr: b.At(lo), Len: hi - lo}
}

func (b Buffer) check(k value.Kind, n int) error {
	if b.Kind != k {
		return fmt.Errorf("%w: %s buffer for %s operator", ErrKindMismatch, b.Kind, k)
	}
	if b.Len != n {
		return fmt.Errorf("%w: buffer has %d values, want %d", ErrLengthMismatch, b.Len, n)
	}
	return nil
}

// floats views a buffer of a float64-backed kind as its components.
func (b Buffer) floats() []float64 {
	n := b.Len * value.TraitsOf(b.Kind).Components
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(b.Ptr), n)
}
