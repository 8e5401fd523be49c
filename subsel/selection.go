package subsel

import (
	"strings"
	"unsafe"

	"github.com/hupe1980/valgebra/convert"
	"github.com/hupe1980/valgebra/value"
)

// Selection addresses a sub-value of a composite value. The zero Selection
// selects nothing and passes whole values through.
type Selection struct {
	part  Part
	axis  Axis
	field Field
	hint  value.Kind

	hasPart  bool
	hasAxis  bool
	hasField bool
	hasHint  bool
}

// Parse resolves a token sequence. Part and axis come from any token; the
// field comes from the second token when more than one is given and from the
// only token otherwise. Tokens outside the vocabulary yield a *TokenError.
func Parse(tokens ...string) (Selection, error) {
	var s Selection
	if len(tokens) == 0 {
		return s, nil
	}

	keys := make([]string, len(tokens))
	for i, tok := range tokens {
		if !IsToken(tok) {
			return Selection{}, &TokenError{Token: tok, Index: i}
		}
		keys[i] = fold(tok)
	}

	for _, key := range keys {
		if a, ok := axisTokens[key]; ok && !s.hasAxis {
			s.axis, s.hasAxis = a, true
		}
		if p, ok := partTokens[key]; ok && !s.hasPart {
			s.part, s.hasPart = p, true
		}
	}
	if s.hasPart {
		s.hint, s.hasHint = s.part.Kind(), true
	} else if s.hasAxis {
		s.part = Rotation
	}

	fieldKey := keys[0]
	if len(keys) > 1 {
		fieldKey = keys[1]
	}
	if ft, ok := fieldTokens[fieldKey]; ok {
		s.field, s.hasField = ft.field, true
		if !s.hasPart {
			s.hint, s.hasHint = ft.hint, true
		}
	}
	return s, nil
}

// MustParse is like Parse but panics on error.
func MustParse(tokens ...string) Selection {
	s, err := Parse(tokens...)
	if err != nil {
		panic(err)
	}
	return s
}

// WithPart returns a copy of s addressing transform part p.
func (s Selection) WithPart(p Part) Selection {
	s.part, s.hasPart = p, true
	s.hint, s.hasHint = p.Kind(), true
	return s
}

// WithAxis returns a copy of s addressing axis a.
func (s Selection) WithAxis(a Axis) Selection {
	s.axis, s.hasAxis = a, true
	return s
}

// WithField returns a copy of s addressing field f.
func (s Selection) WithField(f Field) Selection {
	s.field, s.hasField = f, true
	return s
}

// WithFieldIndex addresses component i (0 to 3). It reports false and
// clears the field for any other index.
func (s Selection) WithFieldIndex(i int) (Selection, bool) {
	if i < 0 || i > 3 {
		s.hasField = false
		return s, false
	}
	return s.WithField(Field(i)), true
}

// IsValid reports whether anything is addressed.
func (s Selection) IsValid() bool { return s.hasPart || s.hasAxis || s.hasField }

// Part returns the addressed transform part.
func (s Selection) Part() (Part, bool) { return s.part, s.hasPart }

// Axis returns the addressed axis.
func (s Selection) Axis() (Axis, bool) { return s.axis, s.hasAxis }

// Field returns the addressed field.
func (s Selection) Field() (Field, bool) { return s.field, s.hasField }

// Hint returns the kind the tokens suggest the source has, if any.
func (s Selection) Hint() (value.Kind, bool) { return s.hint, s.hasHint }

// SubKind returns the natural kind of the addressed sub-value, or fallback
// when nothing is addressed.
func (s Selection) SubKind(fallback value.Kind) value.Kind {
	switch {
	case s.hasField:
		return value.KindDouble
	case s.hasAxis:
		return value.KindVector
	case s.hasPart:
		return s.part.Kind()
	}
	return fallback
}

// String renders the selection as canonical tokens joined by dots.
func (s Selection) String() string {
	var parts []string
	if s.hasPart {
		parts = append(parts, s.part.String())
	}
	if s.hasAxis {
		parts = append(parts, s.axis.String())
	}
	if s.hasField {
		parts = append(parts, s.field.String())
	}
	return strings.Join(parts, ".")
}

// AppliesTo reports whether reading the selection from a k value does more
// than a whole-value conversion.
func (s Selection) AppliesTo(k value.Kind) bool {
	return (s.hasPart && k == value.KindTransform) ||
		(s.hasAxis && isRotation(k)) ||
		(s.hasField && value.FieldCount(k) > 1)
}

// Get reads the addressed sub-value of the srcKind value at src and writes
// it into dst as a dstKind value.
func (s Selection) Get(srcKind value.Kind, src unsafe.Pointer, dstKind value.Kind, dst unsafe.Pointer) {
	k, p := srcKind, src
	if s.hasPart && k == value.KindTransform {
		k, p = partOf((*value.Transform)(p), s.part)
	}

	if s.hasAxis && isRotation(k) {
		dir := rotationOf(k, p).RotateVector(s.axis.Direction())
		if s.hasField {
			convert.WriteFloat64(dstKind, ExtractField(value.KindVector, unsafe.Pointer(&dir), s.field), dst)
			return
		}
		writeVector(dir, dstKind, dst)
		return
	}

	if s.hasField && value.FieldCount(k) > 1 {
		convert.WriteFloat64(dstKind, ExtractField(k, p, s.field), dst)
		return
	}
	convert.Convert(k, p, dstKind, dst)
}

// ExtractDouble is Get into a double.
func (s Selection) ExtractDouble(srcKind value.Kind, src unsafe.Pointer) float64 {
	var d float64
	s.Get(srcKind, src, value.KindDouble, unsafe.Pointer(&d))
	return d
}

// InjectDouble is Set from a double.
func (s Selection) InjectDouble(dstKind value.Kind, dst unsafe.Pointer, d float64) {
	s.Set(dstKind, dst, value.KindDouble, unsafe.Pointer(&d))
}

func partOf(t *value.Transform, part Part) (value.Kind, unsafe.Pointer) {
	switch part {
	case Rotation:
		return value.KindQuaternion, unsafe.Pointer(&t.Rotation)
	case Scale:
		return value.KindVector, unsafe.Pointer(&t.Scale)
	}
	return value.KindVector, unsafe.Pointer(&t.Translation)
}

func writeVector(v value.Vec3, k value.Kind, dst unsafe.Pointer) {
	if k == value.KindVector {
		*(*value.Vec3)(dst) = v
		return
	}
	convert.Convert(value.KindVector, unsafe.Pointer(&v), k, dst)
}

// Set writes the srcKind value at src into the addressed sub-value of the
// dstKind value at dst, leaving everything else untouched. Scalar fields
// receive the double proxy of the source.
func (s Selection) Set(dstKind value.Kind, dst unsafe.Pointer, srcKind value.Kind, src unsafe.Pointer) {
	k, p := dstKind, dst
	if s.hasPart && k == value.KindTransform {
		k, p = partOf((*value.Transform)(p), s.part)
	}
	s.setAxisOrField(k, p, srcKind, src)
}

func (s Selection) setAxisOrField(k value.Kind, p unsafe.Pointer, srcKind value.Kind, src unsafe.Pointer) {
	if s.hasAxis && isRotation(k) {
		q := rotationOf(k, p)
		before := q.RotateVector(s.axis.Direction())
		after := before
		s.setField(value.KindVector, unsafe.Pointer(&after), srcKind, src)
		if after.LengthSquared() < value.SmallNumber {
			return
		}
		delta := value.FindBetweenNormals(value.SafeNormal(before), value.SafeNormal(after))
		writeRotation(k, p, delta.Mul(q).Normalized())
		return
	}
	s.setField(k, p, srcKind, src)
}

func (s Selection) setField(k value.Kind, p unsafe.Pointer, srcKind value.Kind, src unsafe.Pointer) {
	if s.hasField && value.FieldCount(k) > 1 {
		InjectField(k, p, s.field, convert.ToFloat64(srcKind, src))
		return
	}
	convert.Convert(srcKind, src, k, p)
}

func isRotation(k value.Kind) bool {
	return k == value.KindQuaternion || k == value.KindRotator || k == value.KindTransform
}

func rotationOf(k value.Kind, p unsafe.Pointer) value.Quat {
	switch k {
	case value.KindQuaternion:
		return *(*value.Quat)(p)
	case value.KindRotator:
		return (*value.Rotator)(p).Quaternion()
	case value.KindTransform:
		return (*value.Transform)(p).Rotation
	}
	return value.IdentityQuat
}

func writeRotation(k value.Kind, p unsafe.Pointer, q value.Quat) {
	switch k {
	case value.KindQuaternion:
		*(*value.Quat)(p) = q
	case value.KindRotator:
		*(*value.Rotator)(p) = q.Rotator()
	case value.KindTransform:
		(*value.Transform)(p).Rotation = q
	}
}
