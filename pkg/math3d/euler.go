package math3d

import "math"

// Euler is a yaw/pitch/roll orientation in radians.
type Euler struct {
	Yaw, Pitch, Roll float64
}

// Rotation holds the sines and cosines of an Euler orientation so they are
// computed once per frame instead of once per point.
type Rotation struct {
	sy, cy float64
	sp, cp float64
	sr, cr float64
}

// Rotation precomputes the trigonometry for e.
func (e Euler) Rotation() Rotation {
	var r Rotation
	r.sy, r.cy = math.Sincos(e.Yaw)
	r.sp, r.cp = math.Sincos(e.Pitch)
	r.sr, r.cr = math.Sincos(e.Roll)
	return r
}

// Rotate applies yaw, then pitch, then roll to v. The result is
// bit-identical to e.Rotation().Apply(v).
func (e Euler) Rotate(v Vec3) Vec3 {
	return v.Yaw(e.Yaw).Pitch(e.Pitch).Roll(e.Roll)
}

// Apply rotates v as three successive planar rotations: X/Y (yaw), Y/Z
// (pitch), then X/Z (roll). The order is not interchangeable.
func (r Rotation) Apply(v Vec3) Vec3 {
	return v.yaw(r.sy, r.cy).pitch(r.sp, r.cp).roll(r.sr, r.cr)
}
