package value

import "math"

const (
	// SmallNumber is the threshold under which lengths are treated as zero.
	SmallNumber = 1e-8
	// KindaSmallNumber is the default tolerance of nearly-equal comparisons.
	KindaSmallNumber = 1e-4

	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	singularityThreshold = 0.4999995
)

// Rotator is an Euler rotation in degrees.
type Rotator struct{ Pitch, Yaw, Roll float64 }

// Quat is a rotation quaternion.
type Quat struct{ X, Y, Z, W float64 }

// IdentityQuat is the rotation that does nothing.
var IdentityQuat = Quat{W: 1}

// NormalizeAxis wraps an angle in degrees into (-180, 180].
func NormalizeAxis(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	if angle > 180 {
		angle -= 360
	}
	return angle
}

// Dims implements Vec. Components are ordered Pitch, Yaw, Roll.
func (Rotator) Dims() int { return 3 }

// Component implements Vec.
func (r Rotator) Component(i int) float64 {
	switch i {
	case 0:
		return r.Pitch
	case 1:
		return r.Yaw
	case 2:
		return r.Roll
	}
	return 0
}

// WithComponent implements Vec.
func (r Rotator) WithComponent(i int, c float64) Rotator {
	switch i {
	case 0:
		r.Pitch = c
	case 1:
		r.Yaw = c
	case 2:
		r.Roll = c
	}
	return r
}

// Map implements Vec.
func (r Rotator) Map(fn func(float64) float64) Rotator {
	return Rotator{fn(r.Pitch), fn(r.Yaw), fn(r.Roll)}
}

// Zip implements Vec.
func (r Rotator) Zip(o Rotator, fn func(a, b float64) float64) Rotator {
	return Rotator{fn(r.Pitch, o.Pitch), fn(r.Yaw, o.Yaw), fn(r.Roll, o.Roll)}
}

// LengthSquared implements Vec.
func (r Rotator) LengthSquared() float64 {
	return r.Pitch*r.Pitch + r.Yaw*r.Yaw + r.Roll*r.Roll
}

// IsNearlyZero reports whether every normalized channel is within tol of 0.
func (r Rotator) IsNearlyZero(tol float64) bool {
	return math.Abs(NormalizeAxis(r.Pitch)) <= tol &&
		math.Abs(NormalizeAxis(r.Yaw)) <= tol &&
		math.Abs(NormalizeAxis(r.Roll)) <= tol
}

// Quaternion converts r to a quaternion.
func (r Rotator) Quaternion() Quat {
	sp, cp := math.Sincos(math.Mod(r.Pitch, 360) * degToRad / 2)
	sy, cy := math.Sincos(math.Mod(r.Yaw, 360) * degToRad / 2)
	sr, cr := math.Sincos(math.Mod(r.Roll, 360) * degToRad / 2)

	return Quat{
		X: cr*sp*sy - sr*cp*cy,
		Y: -cr*sp*cy - sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
		W: cr*cp*cy + sr*sp*sy,
	}
}

// Rotator converts q to Euler angles in degrees.
func (q Quat) Rotator() Rotator {
	test := q.Z*q.X - q.W*q.Y
	yawY := 2 * (q.W*q.Z + q.X*q.Y)
	yawX := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	yaw := math.Atan2(yawY, yawX) * radToDeg

	switch {
	case test < -singularityThreshold:
		return Rotator{
			Pitch: -90,
			Yaw:   yaw,
			Roll:  NormalizeAxis(-yaw - 2*math.Atan2(q.X, q.W)*radToDeg),
		}
	case test > singularityThreshold:
		return Rotator{
			Pitch: 90,
			Yaw:   yaw,
			Roll:  NormalizeAxis(yaw - 2*math.Atan2(q.X, q.W)*radToDeg),
		}
	default:
		return Rotator{
			Pitch: math.Asin(2*test) * radToDeg,
			Yaw:   yaw,
			Roll:  math.Atan2(-2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y)) * radToDeg,
		}
	}
}

// Mul returns the Hamilton product q*o (o applied first).
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Normalized returns q scaled to unit length, or identity when degenerate.
func (q Quat) Normalized() Quat {
	sq := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	if sq < SmallNumber {
		return IdentityQuat
	}
	inv := 1 / math.Sqrt(sq)
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Inverse returns the conjugate of a unit quaternion.
func (q Quat) Inverse() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

// Angle returns the rotation angle of q in radians.
func (q Quat) Angle() float64 {
	return 2 * math.Acos(math.Max(-1, math.Min(1, q.W)))
}

// Equals reports whether q and o describe the same rotation within tol.
func (q Quat) Equals(o Quat, tol float64) bool {
	same := math.Abs(q.X-o.X) <= tol && math.Abs(q.Y-o.Y) <= tol &&
		math.Abs(q.Z-o.Z) <= tol && math.Abs(q.W-o.W) <= tol
	flipped := math.Abs(q.X+o.X) <= tol && math.Abs(q.Y+o.Y) <= tol &&
		math.Abs(q.Z+o.Z) <= tol && math.Abs(q.W+o.W) <= tol
	return same || flipped
}

// IsIdentity reports whether q is the identity rotation within tol.
func (q Quat) IsIdentity(tol float64) bool { return q.Equals(IdentityQuat, tol) }

// RotateVector rotates v by q.
func (q Quat) RotateVector(v Vec3) Vec3 {
	axis := Vec3{q.X, q.Y, q.Z}
	t := axis.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(axis.Cross(t))
}

// FindBetweenNormals returns the shortest rotation taking unit vector a onto
// unit vector b.
func FindBetweenNormals(a, b Vec3) Quat {
	w := 1 + a.Dot(b)
	var q Quat
	if w >= 1e-6 {
		q = Quat{a.Y*b.Z - a.Z*b.Y, a.Z*b.X - a.X*b.Z, a.X*b.Y - a.Y*b.X, w}
	} else if math.Abs(a.X) > math.Abs(a.Y) {
		q = Quat{-a.Z, 0, a.X, 0}
	} else {
		q = Quat{0, -a.Z, a.Y, 0}
	}
	return q.Normalized()
}

// DirectionRotator returns the rotator whose forward axis points along v.
func DirectionRotator(v Vec3) Rotator {
	return Rotator{
		Pitch: math.Atan2(v.Z, math.Sqrt(v.X*v.X+v.Y*v.Y)) * radToDeg,
		Yaw:   math.Atan2(v.Y, v.X) * radToDeg,
	}
}
