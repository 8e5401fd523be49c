package selector

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/valgebra/subsel"
	"github.com/hupe1980/valgebra/value"
)

// ErrUnknownAttribute is returned when a path names an attribute the
// resolver does not know.
var ErrUnknownAttribute = errors.New("selector: unknown attribute")

// Binding is a path bound to the kinds it reads and writes.
type Binding struct {
	Path Path
	// Kind is the kind of the whole source value.
	Kind value.Kind
	// SubKind is the kind of the addressed sub-value.
	SubKind value.Kind
}

// Selection returns the sub-selection of the binding.
func (b Binding) Selection() subsel.Selection { return b.Path.Selection }

// Resolver binds paths against a set of declared attributes. It is safe for
// concurrent use.
type Resolver struct {
	mu    sync.RWMutex
	attrs map[Domain]map[string]value.Kind
}

// NewResolver creates a resolver for the given element attributes.
func NewResolver(elements map[string]value.Kind) *Resolver {
	r := &Resolver{attrs: map[Domain]map[string]value.Kind{
		Elements: {},
		Data:     {},
	}}
	for name, k := range elements {
		r.attrs[Elements][name] = k
	}
	return r
}

// Declare adds or replaces an attribute.
func (r *Resolver) Declare(d Domain, name string, k value.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attrs[d][name] = k
}

// Resolve parses text and binds it. Attribute names are case-sensitive;
// property names are not.
func (r *Resolver) Resolve(text string) (Binding, error) {
	p, err := Parse(text)
	if err != nil {
		return Binding{}, err
	}

	k := value.KindDouble
	if !p.Property {
		r.mu.RLock()
		attr, ok := r.attrs[p.Domain][p.Name]
		r.mu.RUnlock()
		if !ok {
			return Binding{}, fmt.Errorf("%w %q in %s", ErrUnknownAttribute, p.Name, p.Domain)
		}
		k = attr
	}

	kind := p.Kind(k)
	return Binding{Path: p, Kind: kind, SubKind: p.Selection.SubKind(kind)}, nil
}
