package blend

import (
	"math"

	"github.com/hupe1980/valgebra/value"
)

func add(a, b float64) float64 { return a + b }
func sub(a, b float64) float64 { return a - b }
func mul(a, b float64) float64 { return a * b }

// minf and maxf keep the first operand on ties.
func minf(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func maxf(a, b float64) float64 {
	if b > a {
		return b
	}
	return a
}

func modOrKeep(a, b float64) float64 {
	if b == 0 {
		return a
	}
	return math.Mod(a, b)
}

func absMin(a, b float64) float64 {
	if math.Abs(b) < math.Abs(a) {
		return b
	}
	return a
}

func absMax(a, b float64) float64 {
	if math.Abs(b) > math.Abs(a) {
		return b
	}
	return a
}

// vectorAlgebra is shared by every Vec implementation. Min and Max compare
// squared length; the component variants work per axis.
func vectorAlgebra[V value.Vec[V]]() *algebra[V] {
	shorter := func(a, b V) V {
		if b.LengthSquared() < a.LengthSquared() {
			return b
		}
		return a
	}
	longer := func(a, b V) V {
		if b.LengthSquared() > a.LengthSquared() {
			return b
		}
		return a
	}
	return (&algebra[V]{
		add:   func(a, b V) V { return a.Zip(b, add) },
		sub:   func(a, b V) V { return a.Zip(b, sub) },
		mul:   func(a, b V) V { return a.Zip(b, mul) },
		scale: func(a V, s float64) V { return a.Map(func(c float64) float64 { return c * s }) },
		div:   func(a V, d float64) V { return a.Map(func(c float64) float64 { return c / d }) },
		mod:   func(a V, d float64) V { return a.Map(func(c float64) float64 { return math.Mod(c, d) }) },
		modc:  func(a, b V) V { return a.Zip(b, modOrKeep) },
		lerp: func(a, b V, w float64) V {
			return a.Zip(b, func(x, y float64) float64 { return x + (y-x)*w })
		},
		min:  shorter,
		max:  longer,
		cmin: func(a, b V) V { return a.Zip(b, minf) },
		cmax: func(a, b V) V { return a.Zip(b, maxf) },
		amin: func(a, b V) V { return shorter(a, b).Map(math.Abs) },
		amax: func(a, b V) V { return longer(a, b).Map(math.Abs) },
	}).complete()
}

// rotatorAlgebra orders per channel and interpolates along the shortest
// arc of each channel.
func rotatorAlgebra() *algebra[value.Rotator] {
	al := vectorAlgebra[value.Rotator]()
	al.min = al.cmin
	al.max = al.cmax
	al.umin = func(a, b value.Rotator) value.Rotator { return a.Zip(b, absMin) }
	al.umax = func(a, b value.Rotator) value.Rotator { return a.Zip(b, absMax) }
	al.amin = func(a, b value.Rotator) value.Rotator { return al.umin(a, b).Map(math.Abs) }
	al.amax = func(a, b value.Rotator) value.Rotator { return al.umax(a, b).Map(math.Abs) }
	al.lerp = func(a, b value.Rotator, w float64) value.Rotator {
		return a.Zip(b, func(x, y float64) float64 { return x + value.NormalizeAxis(y-x)*w })
	}
	return al
}

// quatAlgebra works in the Euler domain except for Multiply, which composes
// rotations, and the Average/Weight sums, which add hemisphere-aligned
// components and renormalize.
func quatAlgebra() *algebra[value.Quat] {
	rot := rotatorAlgebra()
	via := func(f func(a, b value.Rotator) value.Rotator) func(a, b value.Quat) value.Quat {
		return func(a, b value.Quat) value.Quat { return f(a.Rotator(), b.Rotator()).Quaternion() }
	}
	viaS := func(f func(a value.Rotator, s float64) value.Rotator) func(a value.Quat, s float64) value.Quat {
		return func(a value.Quat, s float64) value.Quat { return f(a.Rotator(), s).Quaternion() }
	}
	smaller := func(a, b value.Quat) value.Quat {
		if b.Angle() < a.Angle() {
			return b
		}
		return a
	}
	larger := func(a, b value.Quat) value.Quat {
		if b.Angle() > a.Angle() {
			return b
		}
		return a
	}
	normal := func(q value.Quat) value.Quat { return q.Normalized() }

	return (&algebra[value.Quat]{
		add:   via(rot.add),
		sub:   via(rot.sub),
		mul:   func(a, b value.Quat) value.Quat { return a.Mul(b).Normalized() },
		scale: viaS(rot.scale),
		div:   viaS(rot.div),
		mod:   viaS(rot.mod),
		modc:  via(rot.modc),
		lerp: func(a, b value.Quat, w float64) value.Quat {
			return rot.lerp(a.Rotator(), b.Rotator(), w).Quaternion()
		},
		min:  smaller,
		max:  larger,
		cmin: via(rot.cmin),
		cmax: via(rot.cmax),
		amin: via(rot.amin),
		amax: via(rot.amax),
		sum: func(a, b value.Quat, w float64) value.Quat {
			if a.X*b.X+a.Y*b.Y+a.Z*b.Z+a.W*b.W < 0 {
				w = -w
			}
			return value.Quat{X: a.X + b.X*w, Y: a.Y + b.Y*w, Z: a.Z + b.Z*w, W: a.W + b.W*w}
		},
		finish: func(a value.Quat, _ float64) value.Quat { return a.Normalized() },
		normal: normal,
	}).complete()
}

// transformAlgebra applies the vector algebra to translation and scale and
// the quaternion algebra to the rotation. Min and Max work per axis, like
// the component variants.
func transformAlgebra() *algebra[value.Transform] {
	v := vectorAlgebra[value.Vec3]()
	q := quatAlgebra()

	parts := func(fv func(a, b value.Vec3) value.Vec3, fq func(a, b value.Quat) value.Quat) func(a, b value.Transform) value.Transform {
		return func(a, b value.Transform) value.Transform {
			return value.Transform{
				Rotation:    fq(a.Rotation, b.Rotation),
				Translation: fv(a.Translation, b.Translation),
				Scale:       fv(a.Scale, b.Scale),
			}
		}
	}
	partsS := func(fv func(a value.Vec3, s float64) value.Vec3, fq func(a value.Quat, s float64) value.Quat) func(a value.Transform, s float64) value.Transform {
		return func(a value.Transform, s float64) value.Transform {
			return value.Transform{
				Rotation:    fq(a.Rotation, s),
				Translation: fv(a.Translation, s),
				Scale:       fv(a.Scale, s),
			}
		}
	}
	partsW := func(fv func(a, b value.Vec3, w float64) value.Vec3, fq func(a, b value.Quat, w float64) value.Quat) func(a, b value.Transform, w float64) value.Transform {
		return func(a, b value.Transform, w float64) value.Transform {
			return value.Transform{
				Rotation:    fq(a.Rotation, b.Rotation, w),
				Translation: fv(a.Translation, b.Translation, w),
				Scale:       fv(a.Scale, b.Scale, w),
			}
		}
	}

	return (&algebra[value.Transform]{
		add:    parts(v.add, q.add),
		sub:    parts(v.sub, q.sub),
		mul:    parts(v.mul, q.mul),
		scale:  partsS(v.scale, q.scale),
		div:    partsS(v.div, q.div),
		mod:    partsS(v.mod, q.mod),
		modc:   parts(v.modc, q.modc),
		lerp:   partsW(v.lerp, q.lerp),
		min:    parts(v.cmin, q.cmin),
		max:    parts(v.cmax, q.cmax),
		cmin:   parts(v.cmin, q.cmin),
		cmax:   parts(v.cmax, q.cmax),
		umin:   parts(v.umin, q.umin),
		umax:   parts(v.umax, q.umax),
		amin:   parts(v.amin, q.amin),
		amax:   parts(v.amax, q.amax),
		sum:    partsW(v.sum, q.sum),
		finish: partsS(v.finish, q.finish),
		normal: func(a value.Transform) value.Transform {
			a.Rotation = a.Rotation.Normalized()
			return a
		},
	}).complete()
}
