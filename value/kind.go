package value

// Kind identifies one of the value kinds the engine handles uniformly.
//
// Values are never tagged inline. A Kind travels next to an opaque pointer
// that must point to the Go type backing that kind (see Supported).
type Kind uint8

const (
	// KindBool is a boolean (bool).
	KindBool Kind = iota
	// KindInt32 is a 32-bit signed integer (int32).
	KindInt32
	// KindInt64 is a 64-bit signed integer (int64).
	KindInt64
	// KindFloat is a single precision float (float32).
	KindFloat
	// KindDouble is a double precision float (float64).
	KindDouble
	// KindVector2 is a two component vector (Vec2).
	KindVector2
	// KindVector is a three component vector (Vec3).
	KindVector
	// KindVector4 is a four component vector (Vec4).
	KindVector4
	// KindQuaternion is a rotation quaternion (Quat).
	KindQuaternion
	// KindRotator is an Euler rotation in degrees (Rotator).
	KindRotator
	// KindTransform is an affine transform (Transform).
	KindTransform
	// KindString is free text (string).
	KindString
	// KindName is an interned identifier (Name).
	KindName
	// KindSoftObjectPath is a reference path to an asset (SoftObjectPath).
	KindSoftObjectPath

	// NumKinds is the number of kinds.
	NumKinds = int(KindSoftObjectPath) + 1
)

var kindNames = [NumKinds]string{
	"Bool",
	"Int32",
	"Int64",
	"Float",
	"Double",
	"Vector2",
	"Vector",
	"Vector4",
	"Quaternion",
	"Rotator",
	"Transform",
	"String",
	"Name",
	"SoftObjectPath",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, NumKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool { return int(k) < NumKinds }

// String returns the name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "Unknown"
	}
	return kindNames[k]
}

// ParseKind parses a kind name case-insensitively.
// Common aliases (bool, int, float32, vec3, quat, rot, ...) are accepted.
func ParseKind(s string) (Kind, bool) {
	key := fold(s)
	for i, n := range kindNames {
		if fold(n) == key {
			return Kind(i), true
		}
	}
	if k, ok := kindAliases[key]; ok {
		return k, true
	}
	return KindBool, false
}

var kindAliases = map[string]Kind{
	"boolean":   KindBool,
	"int":       KindInt32,
	"integer":   KindInt32,
	"long":      KindInt64,
	"float32":   KindFloat,
	"float64":   KindDouble,
	"vec2":      KindVector2,
	"vector2d":  KindVector2,
	"vec3":      KindVector,
	"vector3":   KindVector,
	"vec4":      KindVector4,
	"quat":      KindQuaternion,
	"rot":       KindRotator,
	"xform":     KindTransform,
	"text":      KindString,
	"path":      KindSoftObjectPath,
	"softpath":  KindSoftObjectPath,
	"classpath": KindSoftObjectPath,
}
