package render

import "github.com/taigrr/attitude/pkg/math3d"

// FaceStyle is how one face is painted. Fill is alpha-blended over what is
// already in the framebuffer; Stroke is drawn opaque. A zero alpha skips that
// pass.
type FaceStyle struct {
	Fill   Color
	Stroke Color
}

// Surface is the drawable polygon surface: one polygon per face, created up
// front and updated in place by SetPolygon.
type Surface struct {
	styles []FaceStyle
	polys  [][]math3d.Vec2
	set    []bool
}

// NewSurface creates a surface with one polygon per style.
func NewSurface(styles []FaceStyle) *Surface {
	return &Surface{
		styles: styles,
		polys:  make([][]math3d.Vec2, len(styles)),
		set:    make([]bool, len(styles)),
	}
}

// FaceCount returns the number of polygons on the surface.
func (s *Surface) FaceCount() int {
	return len(s.polys)
}

// SetPolygon replaces the vertex list of face i with a copy of pts.
func (s *Surface) SetPolygon(i int, pts []math3d.Vec2) {
	s.polys[i] = append(s.polys[i][:0], pts...)
	s.set[i] = true
}

// Polygon returns the current vertex list of face i and whether it has ever
// been set.
func (s *Surface) Polygon(i int) ([]math3d.Vec2, bool) {
	return s.polys[i], s.set[i]
}

// Draw paints every face in declaration order.
func (s *Surface) Draw(fb *Framebuffer) {
	for i, poly := range s.polys {
		if !s.set[i] {
			continue
		}
		st := s.styles[i]
		if st.Fill.A > 0 {
			fb.FillPolygon(poly, st.Fill)
		}
		if st.Stroke.A > 0 {
			fb.StrokePolygon(poly, st.Stroke)
		}
	}
}
