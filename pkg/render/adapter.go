package render

import (
	"github.com/taigrr/attitude/pkg/math3d"
	"github.com/taigrr/attitude/pkg/models"
)

// PolygonSink receives the screen geometry of each face once per frame.
// The pts slice is only valid for the duration of the call; implementations
// that keep the geometry must copy it.
type PolygonSink interface {
	SetPolygon(face int, pts []math3d.Vec2)
}

// Adapter turns projected points into per-face polygons.
type Adapter struct {
	faces [][]int
	polys [][]math3d.Vec2
}

// NewAdapter creates an adapter for m with one reusable polygon per face.
func NewAdapter(m *models.Model) *Adapter {
	a := &Adapter{
		faces: make([][]int, m.FaceCount()),
		polys: make([][]math3d.Vec2, m.FaceCount()),
	}
	for i := range a.faces {
		f := m.Face(i)
		a.faces[i] = f.Indices
		a.polys[i] = make([]math3d.Vec2, len(f.Indices))
	}
	return a
}

// FaceCount returns the number of faces the adapter emits per frame.
func (a *Adapter) FaceCount() int {
	return len(a.faces)
}

// Apply looks up each face's points in projected and calls sink.SetPolygon
// once per face, in declaration order. No depth sorting is done; later faces
// simply paint over earlier ones.
func (a *Adapter) Apply(projected []math3d.Vec2, sink PolygonSink) {
	for i, indices := range a.faces {
		poly := a.polys[i]
		for j, idx := range indices {
			poly[j] = projected[idx]
		}
		sink.SetPolygon(i, poly)
	}
}
