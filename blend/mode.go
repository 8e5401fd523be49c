package blend

import (
	"strings"

	"golang.org/x/text/cases"
)

// Mode selects how two values are combined.
type Mode uint8

const (
	None Mode = iota
	Average
	Weight
	Min
	Max
	CopyTarget
	CopySource
	Add
	Subtract
	Multiply
	Divide
	WeightedAdd
	WeightedSubtract
	Lerp
	UnsignedMin
	UnsignedMax
	AbsoluteMin
	AbsoluteMax
	Hash
	UnsignedHash
	Mod
	ModComponent
	ComponentMin
	ComponentMax

	// NumModes is the number of declared modes.
	NumModes = int(ComponentMax) + 1
)

// CopyFirst and CopySecond are the positional names of CopyTarget and
// CopySource.
const (
	CopyFirst  = CopyTarget
	CopySecond = CopySource
)

var modeNames = [NumModes]string{
	None:             "None",
	Average:          "Average",
	Weight:           "Weight",
	Min:              "Min",
	Max:              "Max",
	CopyTarget:       "CopyTarget",
	CopySource:       "CopySource",
	Add:              "Add",
	Subtract:         "Subtract",
	Multiply:         "Multiply",
	Divide:           "Divide",
	WeightedAdd:      "WeightedAdd",
	WeightedSubtract: "WeightedSubtract",
	Lerp:             "Lerp",
	UnsignedMin:      "UnsignedMin",
	UnsignedMax:      "UnsignedMax",
	AbsoluteMin:      "AbsoluteMin",
	AbsoluteMax:      "AbsoluteMax",
	Hash:             "Hash",
	UnsignedHash:     "UnsignedHash",
	Mod:              "Mod",
	ModComponent:     "ModComponent",
	ComponentMin:     "ComponentMin",
	ComponentMax:     "ComponentMax",
}

var modeAliases = map[string]Mode{
	"copyfirst":  CopyFirst,
	"copysecond": CopySecond,
	"avg":        Average,
	"mean":       Average,
	"sub":        Subtract,
	"mul":        Multiply,
	"mult":       Multiply,
	"div":        Divide,
	"modulo":     Mod,
}

// Modes returns every declared mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, NumModes)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// Valid reports whether m is a declared mode.
func (m Mode) Valid() bool { return int(m) < NumModes }

func (m Mode) String() string {
	if !m.Valid() {
		return "Unknown"
	}
	return modeNames[m]
}

// ParseMode resolves a mode name case-insensitively. CopyFirst and
// CopySecond are accepted along with a few short forms.
func ParseMode(s string) (Mode, bool) {
	key := cases.Fold().String(strings.TrimSpace(s))
	for i, name := range modeNames {
		if cases.Fold().String(name) == key {
			return Mode(i), true
		}
	}
	if m, ok := modeAliases[key]; ok {
		return m, true
	}
	return None, false
}

// InitWithSource reports whether the first accumulated value seeds the
// target verbatim instead of being combined with it.
func (m Mode) InitWithSource() bool {
	switch m {
	case Min, Max, UnsignedMin, UnsignedMax, AbsoluteMin, AbsoluteMax,
		ComponentMin, ComponentMax, Hash, UnsignedHash:
		return true
	}
	return false
}

// ConsiderOriginal reports whether a pre-existing target value counts as a
// sample of the accumulation unless the operator resets it.
func (m Mode) ConsiderOriginal() bool {
	switch m {
	case Average, Add, Subtract, Weight, WeightedAdd, WeightedSubtract:
		return true
	}
	return false
}

// IsArithmetic reports whether m needs arithmetic support from the kind.
func (m Mode) IsArithmetic() bool {
	switch m {
	case Average, Weight, Add, Subtract, Multiply, Divide,
		WeightedAdd, WeightedSubtract, Mod, ModComponent:
		return true
	}
	return false
}

// IsOrdering reports whether m needs an ordering of the kind.
func (m Mode) IsOrdering() bool {
	switch m {
	case Min, Max, UnsignedMin, UnsignedMax, AbsoluteMin, AbsoluteMax,
		ComponentMin, ComponentMax:
		return true
	}
	return false
}
