// Package selector resolves attribute-path text into the name of a value
// source and the sub-selection applied to it.
//
// The grammar is
//
//	[@Domain.]Name[.Token...]
//
// where a leading '$' on Name marks a built-in element property
// ($Position, $Rotation, ...) and the trailing tokens form a
// subsel.Selection. Domains are "@Data" and "@Elements" (the default).
// Property names, domains and tokens are matched case-insensitively.
package selector

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/hupe1980/valgebra/subsel"
	"github.com/hupe1980/valgebra/value"
)

var (
	// ErrEmptyPath is returned for blank paths and paths without a name.
	ErrEmptyPath = errors.New("selector: empty path")

	// ErrUnknownProperty is returned for '$' names outside the property table.
	ErrUnknownProperty = errors.New("selector: unknown property")

	// ErrUnknownDomain is returned for '@' prefixes other than Data and Elements.
	ErrUnknownDomain = errors.New("selector: unknown domain")
)

// Domain is the scope a name is looked up in.
type Domain uint8

const (
	// Elements addresses per-element values.
	Elements Domain = iota
	// Data addresses a single value shared by the whole data set.
	Data
)

func (d Domain) String() string {
	if d == Data {
		return "Data"
	}
	return "Elements"
}

// Property is a built-in element property.
type Property struct {
	Name string
	Kind value.Kind
}

var properties = []Property{
	{"Position", value.KindVector},
	{"Rotation", value.KindQuaternion},
	{"Scale", value.KindVector},
	{"Transform", value.KindTransform},
	{"Density", value.KindFloat},
	{"BoundsMin", value.KindVector},
	{"BoundsMax", value.KindVector},
	{"Extents", value.KindVector},
	{"LocalCenter", value.KindVector},
	{"Color", value.KindVector4},
	{"Steepness", value.KindFloat},
	{"Seed", value.KindInt32},
	{"Index", value.KindInt32},
}

// propertyIndex is keyed by folded name; built at init and read-only afterwards.
var propertyIndex = func() map[string]Property {
	m := make(map[string]Property, len(properties))
	c := cases.Fold()
	for _, p := range properties {
		m[c.String(p.Name)] = p
	}
	return m
}()

// Properties returns the built-in element properties.
func Properties() []Property {
	return append([]Property(nil), properties...)
}

// LookupProperty finds a built-in property by name, with or without '$'.
func LookupProperty(name string) (Property, bool) {
	p, ok := propertyIndex[cases.Fold().String(strings.TrimPrefix(strings.TrimSpace(name), "$"))]
	return p, ok
}

// Path is a resolved attribute path.
type Path struct {
	Domain    Domain
	Name      string
	Property  bool
	Selection subsel.Selection
}

// Parse resolves path text. Token errors are *subsel.TokenError values
// whose Index counts from the first token after the name.
func Parse(text string) (Path, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Path{}, ErrEmptyPath
	}

	segments := strings.Split(text, ".")
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	var p Path
	if strings.HasPrefix(segments[0], "@") {
		switch cases.Fold().String(segments[0][1:]) {
		case "data":
			p.Domain = Data
		case "elements", "points":
			p.Domain = Elements
		default:
			return Path{}, fmt.Errorf("%w %q", ErrUnknownDomain, segments[0])
		}
		segments = segments[1:]
	}
	if len(segments) == 0 || segments[0] == "" || segments[0] == "$" {
		return Path{}, fmt.Errorf("%w: %q", ErrEmptyPath, text)
	}

	name := segments[0]
	if strings.HasPrefix(name, "$") {
		prop, ok := LookupProperty(name)
		if !ok {
			return Path{}, fmt.Errorf("%w %q", ErrUnknownProperty, name)
		}
		p.Name, p.Property = prop.Name, true
	} else {
		p.Name = name
	}

	sel, err := subsel.Parse(segments[1:]...)
	if err != nil {
		return Path{}, fmt.Errorf("selector: %q: %w", text, err)
	}
	p.Selection = sel
	return p, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Path {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Kind returns the kind of the addressed source: the property's kind for
// built-in properties and attrKind otherwise.
func (p Path) Kind(attrKind value.Kind) value.Kind {
	if p.Property {
		if prop, ok := LookupProperty(p.Name); ok {
			return prop.Kind
		}
	}
	return attrKind
}

// SubKind returns the natural kind of the value the path reads.
func (p Path) SubKind(attrKind value.Kind) value.Kind {
	return p.Selection.SubKind(p.Kind(attrKind))
}

// String renders the path in canonical form.
func (p Path) String() string {
	var b strings.Builder
	if p.Domain == Data {
		b.WriteString("@Data.")
	}
	if p.Property {
		b.WriteByte('$')
	}
	b.WriteString(p.Name)
	if p.Selection.IsValid() {
		b.WriteByte('.')
		b.WriteString(p.Selection.String())
	}
	return b.String()
}
