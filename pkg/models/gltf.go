package models

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/asciicube/pkg/math3d"
)

// GLTFExporter writes a Mesh as a glTF document.
type GLTFExporter struct {
	// Generator is recorded in the asset header.
	Generator string
}

// NewGLTFExporter creates an exporter with default options.
func NewGLTFExporter() *GLTFExporter {
	return &GLTFExporter{
		Generator: "asciicube",
	}
}

// ExportGLB writes the mesh, rotated by ax, ay, az radians (X then Y then Z),
// to path as binary glTF.
func ExportGLB(path string, m *Mesh, ax, ay, az float64) error {
	return NewGLTFExporter().Save(path, m, m.Transformed(ax, ay, az))
}

// Document builds a glTF document for m using the given vertex positions.
// Quads are split into two triangles that keep the face winding.
func (e *GLTFExporter) Document(m *Mesh, positions []math3d.Vec3) (*gltf.Document, error) {
	if len(positions) != len(m.Vertices) {
		return nil, fmt.Errorf("positions: got %d, mesh has %d vertices", len(positions), len(m.Vertices))
	}
	if len(m.Faces) == 0 {
		return nil, errors.New("mesh has no faces")
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = e.Generator

	pos := make([][3]float32, len(positions))
	for i, p := range positions {
		pos[i] = [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}
	}

	indices := make([]uint16, 0, len(m.Faces)*6)
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(positions) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range", i, idx)
			}
		}
		indices = append(indices,
			uint16(f[0]), uint16(f[1]), uint16(f[2]),
			uint16(f[0]), uint16(f[2]), uint16(f[3]),
		)
	}

	posAccessor := modeler.WritePosition(doc, pos)
	idxAccessor := modeler.WriteIndices(doc, indices)

	doc.Meshes = []*gltf.Mesh{{
		Name: m.Name,
		Primitives: []*gltf.Primitive{{
			Mode:       gltf.PrimitiveTriangles,
			Indices:    gltf.Index(idxAccessor),
			Attributes: map[string]int{gltf.POSITION: posAccessor},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: m.Name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc, nil
}

// Save writes the document for m to path as binary glTF.
func (e *GLTFExporter) Save(path string, m *Mesh, positions []math3d.Vec3) error {
	doc, err := e.Document(m, positions)
	if err != nil {
		return fmt.Errorf("build gltf: %w", err)
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}
