package value

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/text/cases"

	"github.com/hupe1980/valgebra/internal/conv"
)

// Format renders the kind k value at p as text.
// The rendering of every composite kind is accepted back by Parse.
func Format(k Kind, p unsafe.Pointer) string {
	switch k {
	case KindBool:
		return strconv.FormatBool(*(*bool)(p))
	case KindInt32:
		return strconv.FormatInt(int64(*(*int32)(p)), 10)
	case KindInt64:
		return strconv.FormatInt(*(*int64)(p), 10)
	case KindFloat:
		return fmt.Sprintf("%f", nz(float64(*(*float32)(p))))
	case KindDouble:
		return fmt.Sprintf("%f", nz(*(*float64)(p)))
	case KindVector2:
		v := *(*Vec2)(p)
		return fmt.Sprintf("X=%f Y=%f", nz(v.X), nz(v.Y))
	case KindVector:
		v := *(*Vec3)(p)
		return fmt.Sprintf("X=%f Y=%f Z=%f", nz(v.X), nz(v.Y), nz(v.Z))
	case KindVector4:
		v := *(*Vec4)(p)
		return fmt.Sprintf("X=%f Y=%f Z=%f W=%f", nz(v.X), nz(v.Y), nz(v.Z), nz(v.W))
	case KindQuaternion:
		q := *(*Quat)(p)
		return fmt.Sprintf("X=%.9f Y=%.9f Z=%.9f W=%.9f", nz(q.X), nz(q.Y), nz(q.Z), nz(q.W))
	case KindRotator:
		r := *(*Rotator)(p)
		return fmt.Sprintf("P=%f Y=%f R=%f", nz(r.Pitch), nz(r.Yaw), nz(r.Roll))
	case KindTransform:
		t := *(*Transform)(p)
		r := t.Rotator()
		return fmt.Sprintf("%f,%f,%f|%f,%f,%f|%f,%f,%f",
			nz(t.Translation.X), nz(t.Translation.Y), nz(t.Translation.Z),
			nz(r.Pitch), nz(r.Yaw), nz(r.Roll),
			nz(t.Scale.X), nz(t.Scale.Y), nz(t.Scale.Z))
	case KindString:
		return *(*string)(p)
	case KindName:
		return string(*(*Name)(p))
	case KindSoftObjectPath:
		return string(*(*SoftObjectPath)(p))
	}
	return ""
}

// nz maps negative zero to zero so that it renders as "0.000000".
func nz(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

// Parse reads text into the kind k slot at p. On failure the slot receives
// the kind's default value and Parse returns false.
func Parse(k Kind, s string, p unsafe.Pointer) bool {
	switch k {
	case KindBool:
		b, ok := ParseBool(s)
		*(*bool)(p) = b
		return ok
	case KindInt32:
		f, ok := parseNumber(s)
		*(*int32)(p) = conv.SaturateInt32(f)
		return ok
	case KindInt64:
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			f, ok := parseNumber(s)
			*(*int64)(p) = conv.SaturateInt64(f)
			return ok
		}
		*(*int64)(p) = i
		return true
	case KindFloat:
		f, ok := parseNumber(s)
		*(*float32)(p) = float32(f)
		return ok
	case KindDouble:
		f, ok := parseNumber(s)
		*(*float64)(p) = f
		return ok
	case KindVector2:
		c, ok := parseKeyed(s, "X", "Y")
		*(*Vec2)(p) = Vec2{c[0], c[1]}
		return ok
	case KindVector:
		c, ok := parseKeyed(s, "X", "Y", "Z")
		*(*Vec3)(p) = Vec3{c[0], c[1], c[2]}
		return ok
	case KindVector4:
		c, ok := parseKeyed(s, "X", "Y", "Z", "W")
		*(*Vec4)(p) = Vec4{c[0], c[1], c[2], c[3]}
		return ok
	case KindQuaternion:
		c, ok := parseKeyed(s, "X", "Y", "Z", "W")
		if !ok {
			*(*Quat)(p) = IdentityQuat
			return false
		}
		*(*Quat)(p) = Quat{c[0], c[1], c[2], c[3]}.Normalized()
		return true
	case KindRotator:
		c, ok := parseKeyed(s, "P", "Y", "R")
		*(*Rotator)(p) = Rotator{c[0], c[1], c[2]}
		return ok
	case KindTransform:
		t, ok := parseTransform(s)
		*(*Transform)(p) = t
		return ok
	case KindString:
		*(*string)(p) = s
		return true
	case KindName:
		*(*Name)(p) = Name(s)
		return true
	case KindSoftObjectPath:
		*(*SoftObjectPath)(p) = SoftObjectPath(s)
		return true
	}
	return false
}

// ParseBool accepts true/yes/on and false/no/off case-insensitively, then
// falls back to "number is not zero".
func ParseBool(s string) (bool, bool) {
	switch fold(s) {
	case "true", "yes", "on":
		return true, true
	case "false", "no", "off", "":
		return false, true
	}
	f, ok := parseNumber(s)
	return f != 0, ok
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseKeyed reads "K=V" pairs for the given keys. A bare list of numbers
// separated by spaces or commas is accepted in key order.
func parseKeyed(s string, keys ...string) ([]float64, bool) {
	out := make([]float64, len(keys))
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '(' || r == ')' })

	if len(fields) == len(keys) && !strings.Contains(s, "=") {
		for i, f := range fields {
			v, ok := parseNumber(f)
			if !ok {
				return make([]float64, len(keys)), false
			}
			out[i] = v
		}
		return out, true
	}

	found := 0
	for _, f := range fields {
		key, raw, ok := strings.Cut(f, "=")
		if !ok {
			continue
		}
		for i, k := range keys {
			if fold(key) == fold(k) {
				v, ok := parseNumber(raw)
				if !ok {
					return make([]float64, len(keys)), false
				}
				out[i] = v
				found++
				break
			}
		}
	}
	if found != len(keys) {
		return make([]float64, len(keys)), false
	}
	return out, true
}

func parseTransform(s string) (Transform, bool) {
	parts := strings.Split(s, "|")
	if len(parts) != 3 {
		return IdentityTransform, false
	}
	var c [3][]float64
	for i, part := range parts {
		v, ok := parseKeyed(part, "X", "Y", "Z")
		if !ok {
			return IdentityTransform, false
		}
		c[i] = v
	}
	return Transform{
		Translation: Vec3{c[0][0], c[0][1], c[0][2]},
		Rotation:    Rotator{c[1][0], c[1][1], c[1][2]}.Quaternion(),
		Scale:       Vec3{c[2][0], c[2][1], c[2][2]},
	}, true
}

// fold maps s onto its case-folded form for case-insensitive matching.
func fold(s string) string { return cases.Fold().String(strings.TrimSpace(s)) }
