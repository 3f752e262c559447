package models

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/attitude/pkg/math3d"
)

var triPoints = []math3d.Vec3{
	math3d.V3(0, 0, 0),
	math3d.V3(1, 0, 0),
	math3d.V3(0, 1, 0),
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		points []math3d.Vec3
		faces  []Face
		want   error
	}{
		{"valid triangle", triPoints, []Face{F("t", 0, 1, 2)}, nil},
		{"valid quad", append(triPoints, math3d.V3(1, 1, 0)), []Face{F("q", 0, 1, 3, 2)}, nil},
		{"no points", nil, []Face{F("t", 0, 1, 2)}, ErrNoPoints},
		{"no faces", triPoints, nil, ErrNoFaces},
		{"degenerate face", triPoints, []Face{F("t", 0, 1)}, ErrFaceArity},
		{"pentagon", triPoints, []Face{F("t", 0, 1, 2, 0, 1)}, ErrFaceArity},
		{"index past end", triPoints, []Face{F("t", 0, 1, 3)}, ErrIndexRange},
		{"negative index", triPoints, []Face{F("t", -1, 1, 2)}, ErrIndexRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New("test", tc.points, tc.faces)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if m.FaceCount() != len(tc.faces) {
					t.Errorf("FaceCount = %d, want %d", m.FaceCount(), len(tc.faces))
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
			if m != nil {
				t.Error("model should be nil on error")
			}
		})
	}
}

func TestNewReportsFaceNumber(t *testing.T) {
	_, err := New("test", triPoints, []Face{F("t", 0, 1, 2), F("t", 0, 1, 7)})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "face 1: face index out of range: 7 not in [0, 3)" {
		t.Errorf("error = %q", got)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew should panic on an out-of-range index")
		}
	}()
	MustNew("bad", triPoints, []Face{F("t", 0, 1, 9)})
}

func TestNewCopiesInput(t *testing.T) {
	points := append([]math3d.Vec3(nil), triPoints...)
	faces := []Face{F("t", 0, 1, 2)}
	m := MustNew("copy", points, faces)

	points[1] = math3d.V3(9, 9, 9)
	faces[0].Indices[0] = 2

	if m.Point(1) != math3d.V3(1, 0, 0) {
		t.Errorf("point changed through caller slice: %v", m.Point(1))
	}
	if m.Face(0).Indices[0] != 0 {
		t.Errorf("face changed through caller slice: %v", m.Face(0).Indices)
	}
}

func TestBounds(t *testing.T) {
	m := MustNew("b", []math3d.Vec3{
		math3d.V3(-1, 2, 0),
		math3d.V3(3, -4, 1),
		math3d.V3(0, 0, -2),
	}, []Face{F("t", 0, 1, 2)})

	lo, hi := m.Bounds()
	if lo != math3d.V3(-1, -4, -2) {
		t.Errorf("min = %v", lo)
	}
	if hi != math3d.V3(3, 2, 1) {
		t.Errorf("max = %v", hi)
	}
}

func TestRadius(t *testing.T) {
	m := MustNew("r", []math3d.Vec3{
		math3d.V3(0, 0, 1),
		math3d.V3(3, -4, 0),
		math3d.V3(-1, 0, 0),
	}, []Face{F("t", 0, 1, 2)})

	if r := m.Radius(); r != 5 {
		t.Errorf("Radius = %v, want 5", r)
	}
}

func TestBuiltin(t *testing.T) {
	m := Builtin()

	if m.PointCount() != len(uavPoints) {
		t.Errorf("PointCount = %d, want %d", m.PointCount(), len(uavPoints))
	}
	if m.FaceCount() != len(uavFaces) {
		t.Errorf("FaceCount = %d, want %d", m.FaceCount(), len(uavFaces))
	}

	// Default camera distance is 3; keep a margin so depth stays positive.
	if r := m.Radius(); r >= 1.6 {
		t.Errorf("Radius = %.3f, want < 1.6", r)
	}

	parts := map[string]int{}
	for i := range m.FaceCount() {
		parts[m.Face(i).Part]++
	}
	for _, part := range []string{PartWing, PartFuselage, PartTail} {
		if parts[part] == 0 {
			t.Errorf("no faces for part %q", part)
		}
	}
}

func TestNormalize(t *testing.T) {
	points := []math3d.Vec3{
		math3d.V3(10, 10, 10),
		math3d.V3(14, 11, 10),
		math3d.V3(12, 10, 12),
	}
	normalize(points, 2)

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	size := hi.Sub(lo)
	if math.Abs(size.MaxComponent()-2) > 1e-9 {
		t.Errorf("largest dimension = %v, want 2", size.MaxComponent())
	}
	center := lo.Add(hi).Scale(0.5)
	if center.Len() > 1e-9 {
		t.Errorf("center = %v, want origin", center)
	}
}

func TestFromGLTF(t *testing.T) {
	// GLTF front (+Z) is forward, up (+Y) is up, +X is the model's left.
	tests := []struct {
		in   [3]float32
		want math3d.Vec3
	}{
		{[3]float32{0, 0, 1}, math3d.V3(1, 0, 0)},
		{[3]float32{0, 1, 0}, math3d.V3(0, 0, 1)},
		{[3]float32{1, 0, 0}, math3d.V3(0, -1, 0)},
	}
	for _, tc := range tests {
		if got := fromGLTF(tc.in); got != tc.want {
			t.Errorf("fromGLTF(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
