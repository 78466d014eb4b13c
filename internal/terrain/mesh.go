// Package terrain builds the procedural ground tile rendered by the demo.
// It has no rendering dependencies: the mesh is plain vertex data that the
// scene layer registers with the asset store.
package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world up axis. Flat terrain normals point along it.
var Up = mgl32.Vec3{0, 1, 0}

// Vertex is a single mesh vertex.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Triangle is three vertices with the winding produced by Generate.
type Triangle [3]Vertex

// Mesh is an immutable triangle list with a world translation.
// Positions are stored in grid-local space; Offset moves them into the world.
type Mesh struct {
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	uvs       []mgl32.Vec2
	offset    mgl32.Vec3
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.positions) / 3
}

// VertexCount returns the number of emitted vertices (three per triangle).
func (m *Mesh) VertexCount() int {
	return len(m.positions)
}

// Offset returns the translation applied to local positions.
func (m *Mesh) Offset() mgl32.Vec3 {
	return m.offset
}

// Positions returns a copy of the grid-local positions.
func (m *Mesh) Positions() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(m.positions))
	copy(out, m.positions)
	return out
}

// Normals returns a copy of the per-vertex normals.
func (m *Mesh) Normals() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(m.normals))
	copy(out, m.normals)
	return out
}

// UVs returns a copy of the per-vertex texture coordinates.
func (m *Mesh) UVs() []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(m.uvs))
	copy(out, m.uvs)
	return out
}

// WorldPositions returns the positions with the offset applied.
func (m *Mesh) WorldPositions() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(m.positions))
	for i, p := range m.positions {
		out[i] = p.Add(m.offset)
	}
	return out
}

// Triangles returns the world-space triangle list.
func (m *Mesh) Triangles() []Triangle {
	tris := make([]Triangle, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.positions); i += 3 {
		var t Triangle
		for k := 0; k < 3; k++ {
			t[k] = Vertex{
				Position: m.positions[i+k].Add(m.offset),
				Normal:   m.normals[i+k],
				UV:       m.uvs[i+k],
			}
		}
		tris = append(tris, t)
	}
	return tris
}

// Centroid returns the mean of all world positions.
func (m *Mesh) Centroid() mgl32.Vec3 {
	if len(m.positions) == 0 {
		return m.offset
	}
	var sum mgl32.Vec3
	for _, p := range m.positions {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float32(len(m.positions))).Add(m.offset)
}

// Bounds returns the world-space axis-aligned bounding box.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.positions) == 0 {
		return m.offset, m.offset
	}
	lo = m.positions[0]
	hi = m.positions[0]
	for _, p := range m.positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < lo[k] {
				lo[k] = p[k]
			}
			if p[k] > hi[k] {
				hi[k] = p[k]
			}
		}
	}
	return lo.Add(m.offset), hi.Add(m.offset)
}
