package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/attitude/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into a Model.
type GLTFLoader struct {
	// Normalize recenters the model on the origin and scales its largest
	// dimension to Size.
	Normalize bool
	Size      float64
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		Normalize: true,
		Size:      2,
	}
}

// LoadGLB loads a GLTF or GLB file with the default loader.
func LoadGLB(path string) (*Model, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a validated Model. Only triangle
// primitives are read; each triangle becomes one face.
func (l *GLTFLoader) Load(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var (
		points []math3d.Vec3
		faces  []Face
	)
	for _, m := range doc.Meshes {
		points, faces, err = appendMesh(doc, m, points, faces)
		if err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	if l.Normalize && len(points) > 0 {
		normalize(points, l.Size)
	}

	model, err := New(filepath.Base(path), points, faces)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return model, nil
}

// appendMesh extracts positions and triangle faces from a GLTF mesh.
func appendMesh(doc *gltf.Document, m *gltf.Mesh, points []math3d.Vec3, faces []Face) ([]math3d.Vec3, []Face, error) {
	part := m.Name
	if part == "" {
		part = "mesh"
	}

	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			// Skip lines, points and strips
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, nil, fmt.Errorf("read positions: %w", err)
		}

		base := len(points)
		for _, p := range positions {
			points = append(points, fromGLTF(p))
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, nil, fmt.Errorf("read indices: %w", err)
			}
		} else {
			// No indices, assume sequential triangles
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		// Indices are local to this primitive's positions
		for _, idx := range indices {
			if int(idx) >= len(positions) {
				return nil, nil, fmt.Errorf("read indices: %w: %d not in [0, %d)", ErrIndexRange, idx, len(positions))
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			faces = append(faces, F(part,
				base+int(indices[i]),
				base+int(indices[i+1]),
				base+int(indices[i+2]),
			))
		}
	}

	return points, faces, nil
}

// fromGLTF converts a GLTF position (Y up, +Z front, +X left) to model space
// (X forward, Y right, Z up).
func fromGLTF(p [3]float32) math3d.Vec3 {
	return math3d.V3(float64(p[2]), -float64(p[0]), float64(p[1]))
}

// normalize recenters points on their bounding box center and scales the
// largest dimension to size.
func normalize(points []math3d.Vec3, size float64) {
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}

	center := lo.Add(hi).Scale(0.5)
	maxDim := hi.Sub(lo).MaxComponent()
	scale := 1.0
	if maxDim > 0 {
		scale = size / maxDim
	}

	for i, p := range points {
		points[i] = p.Sub(center).Scale(scale)
	}
}
