package blend

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/valgebra/value"
)

// Stats tracks an accumulation in progress for one target slot.
type Stats struct {
	Count       int
	TotalWeight float64
}

// Operator blends values of one kind with one mode. Operators are immutable
// once built and safe for concurrent use; accumulation state lives in the
// caller-owned Stats.
type Operator struct {
	kind      value.Kind
	requested Mode
	mode      Mode
	reset     bool
	kn        kernel
}

// New builds the operator for kind k and mode m. Modes the kind cannot
// support degrade to CopySource; None behaves as CopyTarget. New panics on
// an undeclared kind.
func New(k value.Kind, m Mode, reset bool) *Operator {
	if !k.Valid() {
		panic(fmt.Sprintf("blend: undeclared kind %d", k))
	}

	eff := Effective(k, m)
	kn, ok := build(k, eff)
	if !ok {
		eff = CopySource
		kn, _ = build(k, eff)
	}

	return &Operator{
		kind:      k,
		requested: m,
		mode:      eff,
		reset:     reset,
		kn:        kn,
	}
}

// Effective returns the mode an operator for k and m actually runs, after
// trait gating.
func Effective(k value.Kind, m Mode) Mode {
	if !m.Valid() {
		return CopySource
	}
	if m == None {
		return CopyTarget
	}
	t := value.TraitsOf(k)
	switch {
	case m == Lerp && !t.SupportsLerp,
		m.IsArithmetic() && !t.SupportsArithmetic,
		m.IsOrdering() && !t.SupportsMinMax:
		return CopySource
	}
	return m
}

func build(k value.Kind, m Mode) (kernel, bool) {
	switch k {
	case value.KindBool:
		return compile(k, boolAlgebra(), m)
	case value.KindInt32:
		return compile(k, int32Algebra(), m)
	case value.KindInt64:
		return compile(k, int64Algebra(), m)
	case value.KindFloat:
		return compile(k, float32Algebra(), m)
	case value.KindDouble:
		return compile(k, float64Algebra(), m)
	case value.KindVector2:
		return compile(k, vectorAlgebra[value.Vec2](), m)
	case value.KindVector:
		return compile(k, vectorAlgebra[value.Vec3](), m)
	case value.KindVector4:
		return compile(k, vectorAlgebra[value.Vec4](), m)
	case value.KindQuaternion:
		return compile(k, quatAlgebra(), m)
	case value.KindRotator:
		return compile(k, rotatorAlgebra(), m)
	case value.KindTransform:
		return compile(k, transformAlgebra(), m)
	case value.KindString:
		return compile(k, textAlgebra[string](), m)
	case value.KindName:
		return compile(k, textAlgebra[value.Name](), m)
	case value.KindSoftObjectPath:
		return compile(k, textAlgebra[value.SoftObjectPath](), m)
	}
	return kernel{}, false
}

// Kind returns the kind the operator blends.
func (o *Operator) Kind() value.Kind { return o.kind }

// Mode returns the mode the operator runs.
func (o *Operator) Mode() Mode { return o.mode }

// Requested returns the mode the operator was asked for.
func (o *Operator) Requested() Mode { return o.requested }

// Reset reports whether accumulation clears the target first.
func (o *Operator) Reset() bool { return o.reset }

func (o *Operator) String() string {
	return fmt.Sprintf("%s/%s(reset=%t)", o.kind, o.mode, o.reset)
}

// Blend writes the combination of a and b into out. out may alias a or b.
func (o *Operator) Blend(a, b unsafe.Pointer, w float64, out unsafe.Pointer) {
	o.kn.blend(a, b, w, out)
}

// BeginAccumulation prepares target for a sequence of Accumulate calls and
// returns the initial stats. Modes that consider the original value count
// it as one sample of weight 1 unless the operator resets, in which case
// the target is cleared to the kind default.
func (o *Operator) BeginAccumulation(target unsafe.Pointer) Stats {
	if !o.mode.ConsiderOriginal() {
		return Stats{}
	}
	if o.reset {
		value.InitDefault(o.kind, target)
		return Stats{}
	}
	return Stats{Count: 1, TotalWeight: 1}
}

// Accumulate folds src with weight w into target.
func (o *Operator) Accumulate(target, src unsafe.Pointer, w float64, st *Stats) {
	switch {
	case st.Count == 0 && o.mode.InitWithSource():
		value.Copy(o.kind, target, src)
	case st.Count == 0 && o.mode.ConsiderOriginal():
		o.kn.step(o.kn.zero, src, w, target)
	default:
		o.kn.step(target, src, w, target)
	}
	st.Count++
	st.TotalWeight += w
}

// EndAccumulation finalises target. Average divides by the total weight,
// Weight normalises when the total weight exceeds one; other modes leave
// the target as it is.
func (o *Operator) EndAccumulation(target unsafe.Pointer, st Stats) {
	if o.kn.finalize != nil {
		o.kn.finalize(target, st.TotalWeight)
	}
}

// Apply blends two Go values with op. It panics when T is not the kind of op.
func Apply[T value.Supported](op *Operator, a, b T, w float64) T {
	if k := value.KindOf[T](); k != op.kind {
		panic(fmt.Sprintf("blend: %s operator applied to %s values", op.kind, k))
	}
	var out T
	op.Blend(unsafe.Pointer(&a), unsafe.Pointer(&b), w, unsafe.Pointer(&out))
	return out
}

// AccumulateAll runs a whole accumulation of values into target with op.
func AccumulateAll[T value.Supported](op *Operator, target T, values []T, weights []float64) T {
	if k := value.KindOf[T](); k != op.kind {
		panic(fmt.Sprintf("blend: %s operator applied to %s values", op.kind, k))
	}
	p := unsafe.Pointer(&target)
	st := op.BeginAccumulation(p)
	for i := range values {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		op.Accumulate(p, unsafe.Pointer(&values[i]), w, &st)
	}
	op.EndAccumulation(p, st)
	return target
}
