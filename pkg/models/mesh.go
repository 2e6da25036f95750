// Package models holds the constant cube geometry rendered by asciicube.
package models

import (
	"github.com/taigrr/asciicube/pkg/math3d"
)

// Face is a quad given as four indices into Mesh.Vertices. The winding of the
// first three points defines the outward normal.
type Face [4]int

// Edge is an unordered pair of indices into Mesh.Vertices.
type Edge [2]int

// Mesh is an immutable vertex/face/edge set.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face
	Edges    []Edge
}

// cube vertex table, model space, unit edge length centered on the origin.
var cubeVertices = [8]math3d.Vec3{
	{X: -0.5, Y: -0.5, Z: -0.5}, // 0: bottom-left-near
	{X: 0.5, Y: -0.5, Z: -0.5},  // 1: bottom-right-near
	{X: 0.5, Y: 0.5, Z: -0.5},   // 2: top-right-near
	{X: -0.5, Y: 0.5, Z: -0.5},  // 3: top-left-near
	{X: -0.5, Y: -0.5, Z: 0.5},  // 4: bottom-left-far
	{X: 0.5, Y: -0.5, Z: 0.5},   // 5: bottom-right-far
	{X: 0.5, Y: 0.5, Z: 0.5},    // 6: top-right-far
	{X: -0.5, Y: 0.5, Z: 0.5},   // 7: top-left-far
}

var cubeFaces = [6]Face{
	{0, 3, 2, 1}, // near (-Z)
	{4, 5, 6, 7}, // far (+Z)
	{3, 7, 6, 2}, // top (+Y)
	{0, 1, 5, 4}, // bottom (-Y)
	{0, 4, 7, 3}, // left (-X)
	{1, 2, 6, 5}, // right (+X)
}

var cubeEdges = [12]Edge{
	// Near face
	{0, 1},
	{1, 2},
	{2, 3},
	{3, 0},
	// Far face
	{4, 5},
	{5, 6},
	{6, 7},
	{7, 4},
	// Connecting edges
	{0, 4},
	{1, 5},
	{2, 6},
	{3, 7},
}

// Cube returns a fresh copy of the unit cube.
func Cube() *Mesh {
	m := &Mesh{
		Name:     "cube",
		Vertices: make([]math3d.Vec3, len(cubeVertices)),
		Faces:    make([]Face, len(cubeFaces)),
		Edges:    make([]Edge, len(cubeEdges)),
	}
	copy(m.Vertices, cubeVertices[:])
	copy(m.Faces, cubeFaces[:])
	copy(m.Edges, cubeEdges[:])
	return m
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// EdgeCount returns the number of edges.
func (m *Mesh) EdgeCount() int {
	return len(m.Edges)
}

// FaceVertices gathers the vertices of face i from the given positions,
// typically the rotated copy of Mesh.Vertices. Indices that fall outside
// positions are dropped, so a malformed face yields fewer points.
func (m *Mesh) FaceVertices(i int, positions []math3d.Vec3) []math3d.Vec3 {
	f := m.Faces[i]
	out := make([]math3d.Vec3, 0, len(f))
	for _, idx := range f {
		if idx < 0 || idx >= len(positions) {
			continue
		}
		out = append(out, positions[idx])
	}
	return out
}

// Transformed returns the vertices rotated by the X, Y, Z angles in radians.
func (m *Mesh) Transformed(ax, ay, az float64) []math3d.Vec3 {
	out := make([]math3d.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = math3d.RotateXYZ(v, ax, ay, az)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() (lo, hi math3d.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo = math3d.V3(min(lo.X, v.X), min(lo.Y, v.Y), min(lo.Z, v.Z))
		hi = math3d.V3(max(hi.X, v.X), max(hi.Y, v.Y), max(hi.Z, v.Z))
	}
	return lo, hi
}
