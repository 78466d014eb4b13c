package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Default grid parameters.
const (
	DefaultSize     = 5
	DefaultCellSize = 1.0
)

// ConfigurationError reports an unusable grid description.
type ConfigurationError struct {
	Size     int
	CellSize float32
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("terrain: invalid grid configuration (size=%d, cell_size=%g)", e.Size, e.CellSize)
}

// Generate builds a size×size grid of quads on the XZ plane.
//
// The grid is laid out like this, each quad split along its
// top-left to bottom-right diagonal:
//
//	  0   1
//	0 +---+---+---> x
//	  | / | / |
//	1 +---+---+
//	  | / | / |
//	  +---+---+
//	  |
//	  z
//
// The resulting mesh is offset by -size*cell/2 on X and Z so the tile is
// centered on the origin.
func Generate(size int, cell float32) (*Mesh, error) {
	if size <= 0 || cell <= 0 {
		return nil, &ConfigurationError{Size: size, CellSize: cell}
	}

	n := 3 * 2 * size * size
	positions := make([]mgl32.Vec3, 0, n)
	uvs := make([]mgl32.Vec2, 0, n)

	for x := 0; x < size; x++ {
		x0 := float32(x) * cell
		x1 := x0 + cell
		for z := 0; z < size; z++ {
			z0 := float32(z) * cell
			z1 := z0 + cell

			positions = append(positions,
				mgl32.Vec3{x0, 0, z0},
				mgl32.Vec3{x0, 0, z1},
				mgl32.Vec3{x1, 0, z0},
				mgl32.Vec3{x1, 0, z0},
				mgl32.Vec3{x0, 0, z1},
				mgl32.Vec3{x1, 0, z1},
			)
			uvs = append(uvs,
				mgl32.Vec2{0, 0},
				mgl32.Vec2{0, 1},
				mgl32.Vec2{1, 0},
				mgl32.Vec2{1, 0},
				mgl32.Vec2{0, 1},
				mgl32.Vec2{1, 1},
			)
		}
	}

	shift := float32(size) * cell / 2
	return &Mesh{
		positions: positions,
		normals:   CalculateNormals(positions),
		uvs:       uvs,
		offset:    mgl32.Vec3{-shift, 0, -shift},
	}, nil
}

// CalculateNormals returns per-vertex normals for a triangle list by
// averaging the face normals of every triangle sharing a position.
// Vertices whose faces are all degenerate get Up.
func CalculateNormals(positions []mgl32.Vec3) []mgl32.Vec3 {
	sums := make(map[mgl32.Vec3]mgl32.Vec3, len(positions))
	for i := 0; i+2 < len(positions); i += 3 {
		a, b, c := positions[i], positions[i+1], positions[i+2]
		face := b.Sub(a).Cross(c.Sub(a))
		sums[a] = sums[a].Add(face)
		sums[b] = sums[b].Add(face)
		sums[c] = sums[c].Add(face)
	}

	normals := make([]mgl32.Vec3, len(positions))
	for i, p := range positions {
		n := sums[p]
		if n.Len() == 0 {
			normals[i] = Up
			continue
		}
		normals[i] = n.Normalize()
	}
	return normals
}
