package blend

import (
	"strconv"
	"unsafe"

	"github.com/hupe1980/valgebra/convert"
	"github.com/hupe1980/valgebra/value"
)

// algebra holds the primitives of one kind. A nil member means the kind has
// no such primitive and every mode built on it degrades to CopySource.
type algebra[T any] struct {
	add, sub, mul func(a, b T) T
	scale         func(a T, s float64) T
	div, mod      func(a T, d float64) T
	modc          func(a, b T) T
	lerp          func(a, b T, w float64) T

	min, max   func(a, b T) T
	cmin, cmax func(a, b T) T
	umin, umax func(a, b T) T
	amin, amax func(a, b T) T

	// sum is the accumulation step of Average and Weight (a + b·w).
	sum func(a, b T, w float64) T
	// finish divides an accumulated sum by the total weight.
	finish func(a T, totalWeight float64) T
	// normal brings a raw sum back into the value domain.
	normal func(a T) T
	// mean is the single-shot Average of two values.
	mean func(a, b T) T
}

// complete fills the members that have a generic derivation.
func (al *algebra[T]) complete() *algebra[T] {
	if al.sum == nil && al.add != nil && al.scale != nil {
		al.sum = func(a, b T, w float64) T { return al.add(a, al.scale(b, w)) }
	}
	if al.finish == nil {
		al.finish = al.div
	}
	if al.mean == nil && al.sum != nil && al.finish != nil {
		al.mean = func(a, b T) T { return al.finish(al.sum(a, b, 1), 2) }
	}
	if al.cmin == nil {
		al.cmin = al.min
	}
	if al.cmax == nil {
		al.cmax = al.max
	}
	if al.umin == nil {
		al.umin = al.min
	}
	if al.umax == nil {
		al.umax = al.max
	}
	return al
}

type stepFunc[T any] func(a, b T, w float64) T

// kernel is the type-erased form of a compiled mode.
type kernel struct {
	blend    func(a, b unsafe.Pointer, w float64, out unsafe.Pointer)
	step     func(a, b unsafe.Pointer, w float64, out unsafe.Pointer)
	finalize func(p unsafe.Pointer, totalWeight float64)
	zero     unsafe.Pointer
}

func pairwise[T any](f func(a, b T) T) stepFunc[T] {
	if f == nil {
		return nil
	}
	return func(a, b T, _ float64) T { return f(a, b) }
}

// compile assembles mode m of kind k from al. It reports false when al
// lacks a primitive the mode needs.
func compile[T any](k value.Kind, al *algebra[T], m Mode) (kernel, bool) {
	proxy := func(b T) float64 { return convert.ToFloat64(k, unsafe.Pointer(&b)) }
	hashOf := func(a T) uint32 { return value.Hash(k, unsafe.Pointer(&a)) }
	text := value.TraitsOf(k).IsText()
	fromHash := func(h uint32) T {
		var out T
		p := unsafe.Pointer(&out)
		switch {
		case text:
			*(*string)(p) = strconv.FormatUint(uint64(h), 10)
		case k == value.KindInt32:
			// Wraps so the full hash range stays distinct.
			*(*int32)(p) = int32(h)
		case k == value.KindInt64:
			*(*int64)(p) = int64(h)
		default:
			convert.WriteFloat64(k, float64(h), p)
		}
		return out
	}

	var (
		blend    stepFunc[T]
		step     stepFunc[T]
		finalize func(a T, tw float64) (T, bool)
	)

	switch m {
	case None, CopyTarget:
		blend = func(a, _ T, _ float64) T { return a }
	case CopySource:
		blend = func(_, b T, _ float64) T { return b }
	case Average:
		if al.sum == nil || al.finish == nil {
			return kernel{}, false
		}
		blend = pairwise(al.mean)
		step = al.sum
		finalize = func(a T, tw float64) (T, bool) {
			if tw == 0 {
				return a, false
			}
			return al.finish(a, tw), true
		}
	case Weight:
		if al.sum == nil || al.finish == nil {
			return kernel{}, false
		}
		blend = al.sum
		if al.normal != nil {
			blend = func(a, b T, w float64) T { return al.normal(al.sum(a, b, w)) }
		}
		step = al.sum
		finalize = func(a T, tw float64) (T, bool) {
			if tw > 1 {
				return al.finish(a, tw), true
			}
			if al.normal != nil {
				return al.normal(a), true
			}
			return a, false
		}
	case Min:
		blend = pairwise(al.min)
	case Max:
		blend = pairwise(al.max)
	case ComponentMin:
		blend = pairwise(al.cmin)
	case ComponentMax:
		blend = pairwise(al.cmax)
	case UnsignedMin:
		blend = pairwise(al.umin)
	case UnsignedMax:
		blend = pairwise(al.umax)
	case AbsoluteMin:
		blend = pairwise(al.amin)
	case AbsoluteMax:
		blend = pairwise(al.amax)
	case Add:
		blend = pairwise(al.add)
	case Subtract:
		blend = pairwise(al.sub)
	case Multiply:
		blend = pairwise(al.mul)
	case ModComponent:
		blend = pairwise(al.modc)
	case Divide, Mod:
		op := al.div
		if m == Mod {
			op = al.mod
		}
		if op == nil {
			return kernel{}, false
		}
		blend = func(a, b T, _ float64) T {
			d := proxy(b)
			if d == 0 {
				return a
			}
			return op(a, d)
		}
	case WeightedAdd, WeightedSubtract:
		combine := al.add
		if m == WeightedSubtract {
			combine = al.sub
		}
		if combine == nil || al.scale == nil {
			return kernel{}, false
		}
		blend = func(a, b T, w float64) T { return combine(a, al.scale(b, w)) }
	case Lerp:
		if al.lerp == nil {
			return kernel{}, false
		}
		blend = al.lerp
	case Hash:
		blend = func(a, b T, _ float64) T { return fromHash(value.HashCombine(hashOf(a), hashOf(b))) }
	case UnsignedHash:
		blend = func(a, b T, _ float64) T {
			ha, hb := hashOf(a), hashOf(b)
			if hb < ha {
				ha, hb = hb, ha
			}
			return fromHash(value.HashCombine(ha, hb))
		}
	default:
		return kernel{}, false
	}

	if blend == nil {
		return kernel{}, false
	}
	if step == nil {
		step = blend
	}

	kn := kernel{
		blend: erase(blend),
		step:  erase(step),
		zero:  unsafe.Pointer(new(T)),
	}
	if finalize != nil {
		kn.finalize = func(p unsafe.Pointer, tw float64) {
			if v, ok := finalize(*(*T)(p), tw); ok {
				*(*T)(p) = v
			}
		}
	}
	return kn, true
}

func erase[T any](f stepFunc[T]) func(a, b unsafe.Pointer, w float64, out unsafe.Pointer) {
	return func(a, b unsafe.Pointer, w float64, out unsafe.Pointer) {
		*(*T)(out) = f(*(*T)(a), *(*T)(b), w)
	}
}
