// Package models holds the static wireframe models rendered by the attitude
// engine.
package models

import (
	"errors"
	"fmt"

	"github.com/taigrr/attitude/pkg/math3d"
)

// Validation errors returned by New.
var (
	ErrNoPoints   = errors.New("model has no points")
	ErrNoFaces    = errors.New("model has no faces")
	ErrFaceArity  = errors.New("face must reference 3 or 4 points")
	ErrIndexRange = errors.New("face index out of range")
)

// Face is a planar polygon given as indices into the model's point set.
// Faces are drawn in declaration order.
type Face struct {
	Indices []int
	Part    string // Groups faces for styling, e.g. "wing"
}

// F creates a face for part from the given point indices.
func F(part string, indices ...int) Face {
	return Face{Indices: indices, Part: part}
}

// Model is an immutable point set plus face list.
type Model struct {
	name   string
	points []math3d.Vec3
	faces  []Face
}

// New validates points and faces and returns the model. The slices are
// copied, so later changes by the caller do not leak into the model.
func New(name string, points []math3d.Vec3, faces []Face) (*Model, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}

	m := &Model{
		name:   name,
		points: make([]math3d.Vec3, len(points)),
		faces:  make([]Face, len(faces)),
	}
	copy(m.points, points)

	for i, f := range faces {
		if n := len(f.Indices); n < 3 || n > 4 {
			return nil, fmt.Errorf("face %d: %w (got %d)", i, ErrFaceArity, n)
		}
		for _, idx := range f.Indices {
			if idx < 0 || idx >= len(points) {
				return nil, fmt.Errorf("face %d: %w: %d not in [0, %d)", i, ErrIndexRange, idx, len(points))
			}
		}
		m.faces[i] = Face{
			Indices: append([]int(nil), f.Indices...),
			Part:    f.Part,
		}
	}

	return m, nil
}

// MustNew is like New but panics on a validation error. Use it for
// compiled-in model data, where a bad index is a programming error.
func MustNew(name string, points []math3d.Vec3, faces []Face) *Model {
	m, err := New(name, points, faces)
	if err != nil {
		panic(fmt.Sprintf("models: invalid model %q: %v", name, err))
	}
	return m
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// Points returns the model's point set. The slice is shared and must not be
// modified.
func (m *Model) Points() []math3d.Vec3 {
	return m.points
}

// Point returns point i.
func (m *Model) Point(i int) math3d.Vec3 {
	return m.points[i]
}

// PointCount returns the number of points.
func (m *Model) PointCount() int {
	return len(m.points)
}

// Face returns face i. The Indices slice is shared and must not be modified.
func (m *Model) Face(i int) Face {
	return m.faces[i]
}

// FaceCount returns the number of faces.
func (m *Model) FaceCount() int {
	return len(m.faces)
}

// Bounds returns the axis-aligned bounding box of the points.
func (m *Model) Bounds() (min, max math3d.Vec3) {
	min, max = m.points[0], m.points[0]
	for _, p := range m.points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max
}

// Radius returns the distance from the origin to the farthest point. A camera
// closer than this can end up inside the model.
func (m *Model) Radius() float64 {
	var r float64
	for _, p := range m.points {
		r = max(r, p.Len())
	}
	return r
}
