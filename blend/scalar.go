package blend

import (
	"math"

	"github.com/hupe1980/valgebra/internal/conv"
)

type number interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// boolAlgebra is the logical algebra: Add is or, Multiply is and, Subtract
// is and-not, Min is and, Max is or.
func boolAlgebra() *algebra[bool] {
	and := func(a, b bool) bool { return a && b }
	or := func(a, b bool) bool { return a || b }
	keep := func(a bool, _ float64) bool { return a }
	return (&algebra[bool]{
		add:   or,
		sub:   func(a, b bool) bool { return a && !b },
		mul:   and,
		scale: func(a bool, s float64) bool { return a && s > 0 },
		div:   keep,
		mod:   keep,
		modc:  func(a, _ bool) bool { return a },
		min:   and,
		max:   or,
		amin:  and,
		amax:  or,
	}).complete()
}

// numericAlgebra serves the four number kinds. Sums and products stay in
// the kind's own domain; anything involving a float64 factor goes through
// fromF, which truncates and saturates for integers.
func numericAlgebra[N number](fromF func(float64) N) *algebra[N] {
	f := func(v N) float64 { return float64(v) }
	umin := func(a, b N) N {
		if math.Abs(f(b)) < math.Abs(f(a)) {
			return b
		}
		return a
	}
	umax := func(a, b N) N {
		if math.Abs(f(b)) > math.Abs(f(a)) {
			return b
		}
		return a
	}
	return (&algebra[N]{
		add:   func(a, b N) N { return a + b },
		sub:   func(a, b N) N { return a - b },
		mul:   func(a, b N) N { return a * b },
		scale: func(a N, s float64) N { return fromF(f(a) * s) },
		div:   func(a N, d float64) N { return fromF(f(a) / d) },
		mod:   func(a N, d float64) N { return fromF(math.Mod(f(a), d)) },
		modc: func(a, b N) N {
			if b == 0 {
				return a
			}
			return fromF(math.Mod(f(a), f(b)))
		},
		lerp: func(a, b N, w float64) N { return fromF(f(a) + (f(b)-f(a))*w) },
		min: func(a, b N) N {
			if b < a {
				return b
			}
			return a
		},
		max: func(a, b N) N {
			if b > a {
				return b
			}
			return a
		},
		umin: umin,
		umax: umax,
		amin: func(a, b N) N { return fromF(math.Abs(f(umin(a, b)))) },
		amax: func(a, b N) N { return fromF(math.Abs(f(umax(a, b)))) },
	}).complete()
}

func int32Algebra() *algebra[int32] { return withIntMean(numericAlgebra(conv.SaturateInt32)) }
func int64Algebra() *algebra[int64] { return withIntMean(numericAlgebra(conv.SaturateInt64)) }

func float32Algebra() *algebra[float32] {
	return numericAlgebra(func(f float64) float32 { return float32(f) })
}

func float64Algebra() *algebra[float64] { return numericAlgebra(func(f float64) float64 { return f }) }

// withIntMean averages integers without forming a + b, which would wrap
// near the ends of the range. The result truncates toward zero.
func withIntMean[I ~int32 | ~int64](al *algebra[I]) *algebra[I] {
	al.mean = func(a, b I) I {
		r := a%2 + b%2
		m := a/2 + b/2 + r/2
		switch {
		case r%2 > 0 && m < 0:
			m++
		case r%2 < 0 && m > 0:
			m--
		}
		return m
	}
	return al
}

// textAlgebra orders by length. Ties keep the first operand.
func textAlgebra[S ~string]() *algebra[S] {
	shorter := func(a, b S) S {
		if len(b) < len(a) {
			return b
		}
		return a
	}
	longer := func(a, b S) S {
		if len(b) > len(a) {
			return b
		}
		return a
	}
	return (&algebra[S]{
		min:  shorter,
		max:  longer,
		amin: shorter,
		amax: longer,
	}).complete()
}
