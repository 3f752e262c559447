package models

import "github.com/taigrr/attitude/pkg/math3d"

// Part names used by the builtin model.
const (
	PartWing     = "wing"
	PartFuselage = "fuselage"
	PartTail     = "tail"
)

// uavPoints is a small fixed-wing UAV, X forward, Y right, Z up. Every point
// lies within 1.6 of the origin so the default camera distance keeps depth
// positive at any orientation.
var uavPoints = []math3d.Vec3{
	// Fuselage
	{X: 1.4, Y: 0, Z: 0},      // 0: nose
	{X: 0.6, Y: 0, Z: 0.15},   // 1: front top
	{X: 0.6, Y: -0.15, Z: 0},  // 2: front left
	{X: 0.6, Y: 0.15, Z: 0},   // 3: front right
	{X: 0.6, Y: 0, Z: -0.15},  // 4: front bottom
	{X: -1.2, Y: 0, Z: 0.08},  // 5: tail top
	{X: -1.2, Y: -0.08, Z: 0}, // 6: tail left
	{X: -1.2, Y: 0.08, Z: 0},  // 7: tail right
	{X: -1.2, Y: 0, Z: -0.08}, // 8: tail bottom

	// Main wing
	{X: 0.3, Y: 0, Z: 0.02},     // 9: root leading edge
	{X: -0.2, Y: 0, Z: 0.02},    // 10: root trailing edge
	{X: -0.45, Y: -1.5, Z: 0.1}, // 11: left tip trailing edge
	{X: -0.15, Y: -1.5, Z: 0.1}, // 12: left tip leading edge
	{X: -0.15, Y: 1.5, Z: 0.1},  // 13: right tip leading edge
	{X: -0.45, Y: 1.5, Z: 0.1},  // 14: right tip trailing edge

	// Horizontal stabilizer
	{X: -0.9, Y: 0, Z: 0.02},      // 15: root leading edge
	{X: -1.25, Y: -0.55, Z: 0.02}, // 16: left tip
	{X: -1.25, Y: 0.55, Z: 0.02},  // 17: right tip
	{X: -1.25, Y: 0, Z: 0.02},     // 18: root trailing edge

	// Vertical fin
	{X: -0.85, Y: 0, Z: 0.08}, // 19: base front
	{X: -1.3, Y: 0, Z: 0.6},   // 20: top
	{X: -1.25, Y: 0, Z: 0.08}, // 21: base back
}

// uavFaces are listed back to front for the usual three-quarter view: wings
// first, fuselage over them, tail surfaces last.
var uavFaces = []Face{
	F(PartWing, 9, 12, 11, 10),
	F(PartWing, 9, 10, 14, 13),

	F(PartFuselage, 1, 5, 7, 3),
	F(PartFuselage, 3, 7, 8, 4),
	F(PartFuselage, 4, 8, 6, 2),
	F(PartFuselage, 2, 6, 5, 1),
	F(PartFuselage, 5, 6, 8, 7),
	F(PartFuselage, 0, 1, 3),
	F(PartFuselage, 0, 3, 4),
	F(PartFuselage, 0, 4, 2),
	F(PartFuselage, 0, 2, 1),

	F(PartTail, 15, 16, 18),
	F(PartTail, 15, 18, 17),
	F(PartTail, 19, 20, 21),
}

// Builtin returns the compiled-in UAV model.
func Builtin() *Model {
	return MustNew("uav", uavPoints, uavFaces)
}
