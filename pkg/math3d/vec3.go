// Package math3d provides the vector primitives used by the attitude engine.
//
// Model space is X forward, Y right, Z up.
package math3d

import "math"

// Vec3 represents a point or direction in model space.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
	}
}

// MaxComponent returns the largest of X, Y and Z.
func (a Vec3) MaxComponent() float64 {
	return math.Max(a.X, math.Max(a.Y, a.Z))
}

// Yaw rotates the vector about the vertical axis (X/Y plane).
func (a Vec3) Yaw(angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return a.yaw(s, c)
}

// Pitch rotates the vector about the lateral axis (Y/Z plane).
func (a Vec3) Pitch(angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return a.pitch(s, c)
}

// Roll rotates the vector about the forward axis (X/Z plane).
func (a Vec3) Roll(angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return a.roll(s, c)
}

func (a Vec3) yaw(s, c float64) Vec3 {
	return Vec3{
		X: a.X*c - a.Y*s,
		Y: a.X*s + a.Y*c,
		Z: a.Z,
	}
}

func (a Vec3) pitch(s, c float64) Vec3 {
	return Vec3{
		X: a.X,
		Y: a.Y*c - a.Z*s,
		Z: a.Y*s + a.Z*c,
	}
}

func (a Vec3) roll(s, c float64) Vec3 {
	return Vec3{
		X: a.X*c + a.Z*s,
		Y: a.Y,
		Z: -a.X*s + a.Z*c,
	}
}
