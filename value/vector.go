package value

import "math"

// Vec2 is a two component vector.
type Vec2 struct{ X, Y float64 }

// Vec3 is a three component vector.
type Vec3 struct{ X, Y, Z float64 }

// Vec4 is a four component vector.
type Vec4 struct{ X, Y, Z, W float64 }

// Vec is the set of methods shared by every vector type.
// Blend and sub-selection code is written once against it.
type Vec[V any] interface {
	comparable
	Dims() int
	Component(i int) float64
	WithComponent(i int, v float64) V
	Map(fn func(float64) float64) V
	Zip(o V, fn func(a, b float64) float64) V
	LengthSquared() float64
}

// Splat returns a vector with every component set to v.
func Splat[V Vec[V]](v float64) V {
	var zero V
	return zero.Map(func(float64) float64 { return v })
}

// Length returns the euclidean length of v.
func Length[V Vec[V]](v V) float64 { return math.Sqrt(v.LengthSquared()) }

// Sum adds every component of v.
func Sum[V Vec[V]](v V) float64 {
	s := 0.0
	for i := 0; i < v.Dims(); i++ {
		s += v.Component(i)
	}
	return s
}

// Volume multiplies every component of v.
func Volume[V Vec[V]](v V) float64 {
	p := 1.0
	for i := 0; i < v.Dims(); i++ {
		p *= v.Component(i)
	}
	return p
}

// SafeNormal returns v scaled to unit length, or the zero vector when v is
// too short to normalize.
func SafeNormal[V Vec[V]](v V) V {
	sq := v.LengthSquared()
	if sq < SmallNumber {
		var zero V
		return zero
	}
	inv := 1 / math.Sqrt(sq)
	return v.Map(func(c float64) float64 { return c * inv })
}

// Dims implements Vec.
func (Vec2) Dims() int { return 2 }

// Component returns the i-th component or 0 when out of range.
func (v Vec2) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return 0
}

// WithComponent returns v with the i-th component replaced.
func (v Vec2) WithComponent(i int, c float64) Vec2 {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	}
	return v
}

// Map implements Vec.
func (v Vec2) Map(fn func(float64) float64) Vec2 { return Vec2{fn(v.X), fn(v.Y)} }

// Zip implements Vec.
func (v Vec2) Zip(o Vec2, fn func(a, b float64) float64) Vec2 {
	return Vec2{fn(v.X, o.X), fn(v.Y, o.Y)}
}

// LengthSquared implements Vec.
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Dims implements Vec.
func (Vec3) Dims() int { return 3 }

// Component returns the i-th component or 0 when out of range.
func (v Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	return 0
}

// WithComponent returns v with the i-th component replaced.
func (v Vec3) WithComponent(i int, c float64) Vec3 {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	case 2:
		v.Z = c
	}
	return v
}

// Map implements Vec.
func (v Vec3) Map(fn func(float64) float64) Vec3 { return Vec3{fn(v.X), fn(v.Y), fn(v.Z)} }

// Zip implements Vec.
func (v Vec3) Zip(o Vec3, fn func(a, b float64) float64) Vec3 {
	return Vec3{fn(v.X, o.X), fn(v.Y, o.Y), fn(v.Z, o.Z)}
}

// LengthSquared implements Vec.
func (v Vec3) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v×o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Dims implements Vec.
func (Vec4) Dims() int { return 4 }

// Component returns the i-th component or 0 when out of range.
func (v Vec4) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	return 0
}

// WithComponent returns v with the i-th component replaced.
func (v Vec4) WithComponent(i int, c float64) Vec4 {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	case 2:
		v.Z = c
	case 3:
		v.W = c
	}
	return v
}

// Map implements Vec.
func (v Vec4) Map(fn func(float64) float64) Vec4 {
	return Vec4{fn(v.X), fn(v.Y), fn(v.Z), fn(v.W)}
}

// Zip implements Vec.
func (v Vec4) Zip(o Vec4, fn func(a, b float64) float64) Vec4 {
	return Vec4{fn(v.X, o.X), fn(v.Y, o.Y), fn(v.Z, o.Z), fn(v.W, o.W)}
}

// LengthSquared implements Vec.
func (v Vec4) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W }
