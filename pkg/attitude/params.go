// Package attitude drives the orientation of the displayed model: a yaw that
// advances once per tick, a fixed pitch, and a roll derived from the yaw.
package attitude

import (
	"errors"
	"fmt"
	"math"
)

// FullTurn is one revolution in radians.
const FullTurn = 2 * math.Pi

// ErrInvalidParams is returned by Params.Validate.
var ErrInvalidParams = errors.New("invalid attitude params")

// Params are the fixed tuning constants of the orientation clock.
type Params struct {
	Step          float64 // Yaw advance per tick (radians)
	Pitch         float64 // Constant pitch (radians)
	RollAmplitude float64 // Peak roll (radians)
	RollFrequency float64 // Roll cycles per yaw radian
}

// DefaultParams returns the reference tuning: about 1.7° of yaw per tick, a
// 20° nose-up pitch and a gentle roll.
func DefaultParams() Params {
	return Params{
		Step:          0.03,
		Pitch:         0.35,
		RollAmplitude: 0.2,
		RollFrequency: 0.7,
	}
}

// Validate checks that p describes a forward-running clock.
func (p Params) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"step", p.Step},
		{"pitch", p.Pitch},
		{"roll amplitude", p.RollAmplitude},
		{"roll frequency", p.RollFrequency},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidParams, f.name, f.v)
		}
	}
	if p.Step <= 0 || p.Step >= FullTurn {
		return fmt.Errorf("%w: step %v not in (0, 2π)", ErrInvalidParams, p.Step)
	}
	return nil
}

// Wrap reduces a into [0, 2π).
func Wrap(a float64) float64 {
	a = math.Mod(a, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	// math.Mod of a tiny negative value can round back up to a full turn.
	if a >= FullTurn {
		a = 0
	}
	return a
}
