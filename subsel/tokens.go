package subsel

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/hupe1980/valgebra/value"
)

// Part is a transform part.
type Part uint8

const (
	Position Part = iota
	Rotation
	Scale
)

func (p Part) String() string {
	switch p {
	case Position:
		return "Position"
	case Rotation:
		return "Rotation"
	case Scale:
		return "Scale"
	}
	return "Unknown"
}

// Kind returns the natural kind of the part.
func (p Part) Kind() value.Kind {
	if p == Rotation {
		return value.KindQuaternion
	}
	return value.KindVector
}

// Field is a scalar field of a composite value.
type Field uint8

const (
	X Field = iota
	Y
	Z
	W
	Length
	SquaredLength
	Volume
	Sum
)

var fieldNames = [...]string{"X", "Y", "Z", "W", "Length", "SquaredLength", "Volume", "Sum"}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "Unknown"
}

// Index returns the component index a field addresses. Derived fields
// address index 0.
func (f Field) Index() int {
	if f <= W {
		return int(f)
	}
	return 0
}

// Axis is a basis direction of a rotation.
type Axis uint8

const (
	Forward Axis = iota
	Backward
	Right
	Left
	Up
	Down
)

var axisNames = [...]string{"Forward", "Backward", "Right", "Left", "Up", "Down"}

func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	return "Unknown"
}

// Direction returns the unit vector of the axis in the unrotated frame.
func (a Axis) Direction() value.Vec3 {
	switch a {
	case Backward:
		return value.Vec3{X: -1}
	case Right:
		return value.Vec3{Y: 1}
	case Left:
		return value.Vec3{Y: -1}
	case Up:
		return value.Vec3{Z: 1}
	case Down:
		return value.Vec3{Z: -1}
	}
	return value.Vec3{X: 1}
}

type fieldToken struct {
	field Field
	hint  value.Kind
}

var partTokens = map[string]Part{
	"position": Position,
	"pos":      Position,
	"rotation": Rotation,
	"rot":      Rotation,
	"orient":   Rotation,
	"scale":    Scale,
}

var fieldTokens = map[string]fieldToken{
	"x":             {X, value.KindVector},
	"r":             {X, value.KindQuaternion},
	"roll":          {X, value.KindQuaternion},
	"rx":            {X, value.KindQuaternion},
	"y":             {Y, value.KindVector},
	"g":             {Y, value.KindVector4},
	"yaw":           {Y, value.KindQuaternion},
	"ry":            {Y, value.KindQuaternion},
	"z":             {Z, value.KindVector},
	"b":             {Z, value.KindVector4},
	"p":             {Z, value.KindQuaternion},
	"pitch":         {Z, value.KindQuaternion},
	"rz":            {Z, value.KindQuaternion},
	"w":             {W, value.KindVector4},
	"a":             {W, value.KindVector4},
	"l":             {Length, value.KindVector},
	"len":           {Length, value.KindVector},
	"length":        {Length, value.KindVector},
	"squaredlength": {SquaredLength, value.KindVector},
	"lensqr":        {SquaredLength, value.KindVector},
	"vol":           {Volume, value.KindVector},
	"volume":        {Volume, value.KindVector},
	"sum":           {Sum, value.KindVector},
}

var axisTokens = map[string]Axis{
	"forward":  Forward,
	"front":    Forward,
	"backward": Backward,
	"back":     Backward,
	"right":    Right,
	"left":     Left,
	"up":       Up,
	"top":      Up,
	"down":     Down,
	"bottom":   Down,
}

// ErrUnknownToken is wrapped by every TokenError.
var ErrUnknownToken = errors.New("unknown sub-selection token")

// TokenError reports a token outside the sub-selection vocabulary.
type TokenError struct {
	Token string
	Index int
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("unknown sub-selection token %q at position %d", e.Token, e.Index)
}

func (e *TokenError) Unwrap() error { return ErrUnknownToken }

// fold maps a token onto the lower-case keys of the vocabularies.
// Casers keep state, so each call gets its own.
func fold(tok string) string { return cases.Fold().String(strings.TrimSpace(tok)) }

// IsToken reports whether tok belongs to any sub-selection vocabulary.
func IsToken(tok string) bool {
	key := fold(tok)
	if _, ok := partTokens[key]; ok {
		return true
	}
	if _, ok := fieldTokens[key]; ok {
		return true
	}
	_, ok := axisTokens[key]
	return ok
}
