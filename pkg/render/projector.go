// Package render projects the attitude model to screen space and paints the
// resulting polygons.
package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/attitude/pkg/math3d"
)

// ErrInvalidProjection is returned by ProjectionParams.Validate.
var ErrInvalidProjection = errors.New("invalid projection params")

// Viewport is the size of the drawing area in pixels for one frame.
type Viewport struct {
	Width, Height float64
}

// VP creates a Viewport from integer pixel dimensions.
func VP(width, height int) Viewport {
	return Viewport{Width: float64(width), Height: float64(height)}
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool {
	return !(v.Width > 0 && v.Height > 0)
}

// ProjectionParams are the fixed constants of the perspective projection.
type ProjectionParams struct {
	CameraDistance float64 // Offset of the virtual camera along the rotated Y axis
	ScaleFactor    float64 // Fraction of min(width, height) that one unit maps to
	VerticalOffset float64 // Added to the viewport center Y, in pixels
}

// DefaultProjectionParams returns the reference projection constants.
func DefaultProjectionParams() ProjectionParams {
	return ProjectionParams{
		CameraDistance: 3.0,
		ScaleFactor:    0.35,
		VerticalOffset: 0,
	}
}

// Validate checks p. A camera distance too small for the model is allowed;
// the resulting screen coordinates are simply very large.
func (p ProjectionParams) Validate() error {
	if math.IsNaN(p.CameraDistance) || math.IsInf(p.CameraDistance, 0) {
		return fmt.Errorf("%w: camera distance is %v", ErrInvalidProjection, p.CameraDistance)
	}
	if math.IsNaN(p.VerticalOffset) || math.IsInf(p.VerticalOffset, 0) {
		return fmt.Errorf("%w: vertical offset is %v", ErrInvalidProjection, p.VerticalOffset)
	}
	if !(p.ScaleFactor > 0) || math.IsInf(p.ScaleFactor, 0) {
		return fmt.Errorf("%w: scale factor %v must be positive", ErrInvalidProjection, p.ScaleFactor)
	}
	return nil
}

// Projector rotates model points and maps them to screen coordinates. Its
// output buffer is reused every frame.
type Projector struct {
	params ProjectionParams
	out    []math3d.Vec2
}

// NewProjector creates a projector with room for pointCount points.
func NewProjector(pointCount int, p ProjectionParams) *Projector {
	return &Projector{
		params: p,
		out:    make([]math3d.Vec2, pointCount),
	}
}

// Params returns the projection constants.
func (pr *Projector) Params() ProjectionParams {
	return pr.params
}

// Project rotates every point by e (yaw, then pitch, then roll), applies the
// perspective divide and maps the result into vp. It returns false and leaves
// the buffer untouched when vp is empty.
//
// The returned slice is owned by the projector and is overwritten by the next
// call.
func (pr *Projector) Project(points []math3d.Vec3, e math3d.Euler, vp Viewport) ([]math3d.Vec2, bool) {
	if vp.Empty() {
		return nil, false
	}
	if cap(pr.out) < len(points) {
		pr.out = make([]math3d.Vec2, len(points))
	}
	pr.out = pr.out[:len(points)]

	rot := e.Rotation()
	m := pr.mapping(vp)
	for i, p := range points {
		pr.out[i] = m.project(rot.Apply(p))
	}
	return pr.out, true
}

// ProjectPoint projects a single point. The result is bit-identical to the
// matching element of Project.
func (pr *Projector) ProjectPoint(p math3d.Vec3, e math3d.Euler, vp Viewport) (math3d.Vec2, bool) {
	if vp.Empty() {
		return math3d.Vec2{}, false
	}
	return pr.mapping(vp).project(e.Rotate(p)), true
}

// screenMapping holds the per-frame constants of the viewport transform.
type screenMapping struct {
	distance float64
	cx, cy   float64
	scale    float64
}

func (pr *Projector) mapping(vp Viewport) screenMapping {
	return screenMapping{
		distance: pr.params.CameraDistance,
		cx:       vp.Width / 2,
		cy:       vp.Height/2 + pr.params.VerticalOffset,
		scale:    math.Min(vp.Width, vp.Height) * pr.params.ScaleFactor,
	}
}

// project maps a rotated point to the screen. Depth is not clamped.
func (m screenMapping) project(v math3d.Vec3) math3d.Vec2 {
	depth := m.distance + v.Y
	ux := v.X / depth
	uy := v.Z / depth
	return math3d.Vec2{
		X: m.cx + ux*m.scale,
		Y: m.cy - uy*m.scale,
	}
}
