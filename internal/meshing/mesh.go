package meshing

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidArgument is returned for malformed vertex counts, radii and recursion depths.
var ErrInvalidArgument = errors.New("invalid argument")

// Mesh is a planar triangle mesh ready for upload.
// Positions are tightly packed (x, y, z) with z always 0; Indices come in groups of 3
// and reference Positions by absolute index.
type Mesh struct {
	Positions []mgl32.Vec3
	Indices   []uint32
}

// Range locates a sub-mesh inside a larger vertex and index buffer.
type Range struct {
	FirstVertex int
	VertexCount int
	FirstIndex  int
	IndexCount  int
}

// Empty reports whether the mesh has nothing to draw
func (m Mesh) Empty() bool {
	return len(m.Positions) == 0 && len(m.Indices) == 0
}

// VertexCount returns the number of positions
func (m Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of complete triangles in the index list
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Range returns the range covering the whole mesh
func (m Mesh) Range() Range {
	return Range{VertexCount: len(m.Positions), IndexCount: len(m.Indices)}
}

// CheckIndices verifies that the index list is made of whole triangles and that every
// index references an existing position.
func (m Mesh) CheckIndices() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	n := uint64(len(m.Positions))
	for i, idx := range m.Indices {
		if uint64(idx) >= n {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// Append returns the concatenation of m and other. Indices are copied as-is, so other
// must have been generated with a stride equal to m.VertexCount().
func (m Mesh) Append(other Mesh) Mesh {
	out := Mesh{
		Positions: make([]mgl32.Vec3, 0, len(m.Positions)+len(other.Positions)),
		Indices:   make([]uint32, 0, len(m.Indices)+len(other.Indices)),
	}
	out.Positions = append(append(out.Positions, m.Positions...), other.Positions...)
	out.Indices = append(append(out.Indices, m.Indices...), other.Indices...)
	return out
}
