package geom

import (
	"fmt"
	"math"
)

// Quat is a rotation quaternion with the scalar part in W.
type Quat struct {
	X, Y, Z, W float64
}

// Identity is the rotation that leaves vectors unchanged.
var Identity = Quat{0, 0, 0, 1}

func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// FromAngleAxis builds a rotation of angle radians around axis.
func FromAngleAxis(angle float64, axis Vec3) Quat {
	axis = axis.Normalize()
	s, c := math.Sincos(angle / 2)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, c}
}

func (q Quat) Magnitude() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

func (q Quat) Normalize() Quat {
	l := q.Magnitude()
	if l < Epsilon {
		return Identity
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

func (q Quat) Inverse() Quat {
	n := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	if n < Epsilon {
		return Identity
	}
	c := q.Conjugate()
	return Quat{c.X / n, c.Y / n, c.Z / n, c.W / n}
}

// Mul returns the Hamilton product q*r, which applies r first and then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Rotate applies the rotation q to v. q must be normalized.
func (q Quat) Rotate(v Vec3) Vec3 {
	p := q.Mul(Quat{v.X, v.Y, v.Z, 0}).Mul(q.Conjugate())
	return Vec3{p.X, p.Y, p.Z}
}
