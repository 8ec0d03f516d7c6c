// Package geom holds the small vector and quaternion types used as
// placement data by components.
package geom

import (
	"fmt"
	"math"
)

// Epsilon is the length below which a vector is treated as zero.
const Epsilon = 1e-10

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero     = Vec3{0, 0, 0}
	One      = Vec3{1, 1, 1}
	Up       = Vec3{0, 1, 0}
	Down     = Vec3{0, -1, 0}
	Left     = Vec3{-1, 0, 0}
	Right    = Vec3{1, 0, 0}
	Forward  = Vec3{0, 0, 1}
	Backward = Vec3{0, 0, -1}
)

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul multiplies component-wise.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) SqrMagnitude() float64 {
	return v.Dot(v)
}

func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.SqrMagnitude())
}

// Normalize returns v scaled to unit length, or v unchanged if it is near zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Magnitude()
	if l < Epsilon {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Magnitude()
}

// Lerp interpolates between a and b, clamping t to [0, 1].
func Lerp(a, b Vec3, t float64) Vec3 {
	t = math.Max(0, math.Min(1, t))
	return a.Add(b.Sub(a).Scale(t))
}

// NearlyEquals reports whether every component of v and o differs by at most eps.
func (v Vec3) NearlyEquals(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps &&
		math.Abs(v.Y-o.Y) <= eps &&
		math.Abs(v.Z-o.Z) <= eps
}
