package meshing

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// maxVertices bounds stride+count so that every index fits in a uint32.
const maxVertices = uint64(math.MaxUint32) + 1

// point is a 2D position kept in float64 while recursing; it is narrowed to float32 only
// when written into the arena.
type point struct {
	x, y float64
}

// arena is pre-sized vertex and index storage. Generators write into it at explicit
// offsets and hand back the Range they filled instead of a copy.
type arena struct {
	base      uint32 // absolute index of positions[0]
	positions []mgl32.Vec3
	indices   []uint32
}

func newArena(base uint32, vertices, indices int) *arena {
	return &arena{
		base:      base,
		positions: make([]mgl32.Vec3, vertices),
		indices:   make([]uint32, indices),
	}
}

func (a *arena) mesh() Mesh {
	return Mesh{Positions: a.positions, Indices: a.indices}
}

// polygon writes a triangle fan for a regular n-gon. The center lands at absolute index
// stride and the first index at cursor at.
func (a *arena) polygon(n int, radius float64, c point, stride uint32, at int) Range {
	local := int(stride - a.base)
	step := 360.0 / float64(n)

	a.positions[local] = mgl32.Vec3{float32(c.x), float32(c.y), 0}
	for i := 0; i < n; i++ {
		angle := degToRad(step*float64(i) + polygonRotation)
		a.positions[local+1+i] = mgl32.Vec3{
			float32(c.x + radius*math.Cos(angle)),
			float32(c.y + radius*math.Sin(angle)),
			0,
		}
	}

	idx := a.indices[at : at+3*n]
	k := 0
	for i := 1; i < n; i++ {
		idx[k], idx[k+1], idx[k+2] = stride, stride+uint32(i), stride+uint32(i)+1
		k += 3
	}
	// Closing triangle runs center, first rim, last rim. Its winding is opposite to the
	// rest of the fan.
	idx[k], idx[k+1], idx[k+2] = stride, stride+1, stride+uint32(n)

	return Range{
		FirstVertex: int(stride),
		VertexCount: n + 1,
		FirstIndex:  at,
		IndexCount:  3 * n,
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
