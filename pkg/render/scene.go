package render

import (
	"slices"

	"github.com/taigrr/asciicube/pkg/math3d"
	"github.com/taigrr/asciicube/pkg/models"
)

// DefaultOutline is the glyph used for the wireframe overlay.
const DefaultOutline = '*'

// DefaultLight returns the default light direction, normalized (1, 1, -1).
func DefaultLight() math3d.Vec3 {
	return math3d.V3(1, 1, -1).Normalize()
}

// FaceRecord is the per-frame state of one face, used to order the fill pass.
type FaceRecord struct {
	Face      int         // Index into Mesh.Faces
	Depth     float64     // Average rotated Z of the face vertices
	Normal    math3d.Vec3 // Unit normal after rotation (zero if malformed)
	Intensity float64     // Clamped diffuse light
	Glyph     rune        // Quantized shade glyph
	Drawn     bool        // Filled this frame
	Culled    bool        // Skipped because Depth < 0
	Invalid   bool        // Skipped because a vertex was missing or unprojectable
}

// FrameStats summarizes one composed frame.
type FrameStats struct {
	Faces      []FaceRecord // In draw order, farthest first
	Drawn      int          // Faces filled
	Culled     int          // Faces behind the viewer
	Invalid    int          // Faces skipped for bad geometry
	Degenerate int          // Vertices without a projection
	Edges      int          // Edges handed to the line drawer
}

// Composer renders the mesh into a screen buffer. It holds no per-frame state;
// everything a frame needs comes from the rotation passed to Render.
type Composer struct {
	Mesh      *models.Mesh
	Projector Projector
	Light     math3d.Vec3 // Normalized
	Shades    Shades
	Outline   rune
	Diag      Diagnostics
}

// NewComposer creates a composer. The light direction is normalized; a nil
// diag discards warnings.
func NewComposer(mesh *models.Mesh, proj Projector, light math3d.Vec3, shades Shades, outline rune, diag Diagnostics) *Composer {
	if diag == nil {
		diag = NopDiagnostics
	}
	return &Composer{
		Mesh:      mesh,
		Projector: proj,
		Light:     light.Normalize(),
		Shades:    shades,
		Outline:   outline,
		Diag:      diag,
	}
}

// Render draws one frame of the mesh rotated by angles (degrees around X, Y,
// Z, applied in that order) into buf. Faces are filled farthest first and the
// edges are stroked on top. Render never fails: bad geometry is reported to
// Diag and skipped.
func (c *Composer) Render(buf *ScreenBuffer, angles [3]float64) FrameStats {
	var stats FrameStats

	rotated := c.Mesh.Transformed(
		math3d.Radians(angles[0]),
		math3d.Radians(angles[1]),
		math3d.Radians(angles[2]),
	)

	projected := make([]math3d.Vec2, len(rotated))
	valid := make([]bool, len(rotated))
	for i, v := range rotated {
		p, err := c.Projector.Project(v)
		if err != nil {
			c.Diag.Warnf("vertex %d: %v", i, err)
			stats.Degenerate++
			continue
		}
		projected[i] = p
		valid[i] = true
	}

	records := make([]FaceRecord, 0, len(c.Mesh.Faces))
	for i := range c.Mesh.Faces {
		records = append(records, c.faceRecord(i, rotated, valid))
	}

	// Farthest first; ties keep mesh order so frames are deterministic.
	slices.SortStableFunc(records, func(a, b FaceRecord) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		default:
			return 0
		}
	})

	points := make([]math3d.Vec2, 0, 4)
	for i := range records {
		rec := &records[i]
		switch {
		case rec.Invalid:
			stats.Invalid++
			continue
		case rec.Depth < 0:
			rec.Culled = true
			stats.Culled++
			continue
		}

		points = points[:0]
		for _, idx := range c.Mesh.Faces[rec.Face] {
			points = append(points, projected[idx])
		}
		buf.FillPolygon(points, rec.Glyph)
		rec.Drawn = true
		stats.Drawn++
	}

	stats.Edges = NewWireframe(buf, c.Outline).DrawEdges(c.Mesh.Edges, projected, valid)
	stats.Faces = records
	return stats
}

// faceRecord computes depth, normal and shade for face i.
func (c *Composer) faceRecord(i int, rotated []math3d.Vec3, valid []bool) FaceRecord {
	rec := FaceRecord{Face: i}
	face := c.Mesh.Faces[i]

	verts := c.Mesh.FaceVertices(i, rotated)
	if len(verts) < len(face) {
		c.Diag.Warnf("face %d: %d of %d vertices missing", i, len(face)-len(verts), len(face))
		rec.Invalid = true
	}

	normal, err := FaceNormal(verts)
	if err != nil {
		c.Diag.Warnf("face %d: %v", i, err)
		rec.Invalid = true
	}
	rec.Normal = normal
	rec.Intensity = Intensity(normal, c.Light)
	rec.Glyph = c.Shades.Glyph(rec.Intensity)

	if len(verts) > 0 {
		var sum float64
		for _, v := range verts {
			sum += v.Z
		}
		rec.Depth = sum / float64(len(verts))
	}

	for _, idx := range face {
		if !validIndex(idx, valid) {
			rec.Invalid = true
			break
		}
	}
	return rec
}
