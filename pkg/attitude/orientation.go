package attitude

import (
	"math"

	"github.com/taigrr/attitude/pkg/math3d"
)

// Orientation is the mutable attitude state: a single yaw angle. Pitch and
// roll are derived from it and the clock's Params.
type Orientation struct {
	Yaw float64 // Radians, kept in [0, 2π) by the clock
}

// Pitch returns the pitch for p. It is constant.
func (o Orientation) Pitch(p Params) float64 {
	return p.Pitch
}

// Roll returns sin(yaw * RollFrequency) * RollAmplitude.
func (o Orientation) Roll(p Params) float64 {
	return math.Sin(o.Yaw*p.RollFrequency) * p.RollAmplitude
}

// Euler returns the full yaw/pitch/roll triple for p.
func (o Orientation) Euler(p Params) math3d.Euler {
	return math3d.Euler{
		Yaw:   o.Yaw,
		Pitch: o.Pitch(p),
		Roll:  o.Roll(p),
	}
}
