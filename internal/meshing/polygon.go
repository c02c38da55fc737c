package meshing

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// polygonRotation is the angle in degrees of the first rim vertex.
const polygonRotation = 90.0

// Polygon builds a regular polygon as a triangle fan around its center.
// The output holds the center followed by numVertices rim vertices at radius from center,
// starting at 90 degrees. Every index is offset by stride so the result can be appended
// after stride existing vertices.
func Polygon(numVertices int, radius float32, center mgl32.Vec2, stride uint32) (Mesh, error) {
	if numVertices < 3 {
		return Mesh{}, fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", ErrInvalidArgument, numVertices)
	}
	if err := checkRadius(radius); err != nil {
		return Mesh{}, err
	}
	if err := checkStride(stride, uint64(numVertices)+1); err != nil {
		return Mesh{}, err
	}

	a := newArena(stride, numVertices+1, 3*numVertices)
	a.polygon(numVertices, float64(radius), point{float64(center[0]), float64(center[1])}, stride, 0)
	return a.mesh(), nil
}

func checkRadius(radius float32) error {
	r := float64(radius)
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return fmt.Errorf("%w: radius must be positive and finite, got %v", ErrInvalidArgument, radius)
	}
	return nil
}

func checkStride(stride uint32, vertices uint64) error {
	if uint64(stride)+vertices > maxVertices {
		return fmt.Errorf("%w: %d vertices after stride %d overflow 32-bit indices", ErrInvalidArgument, vertices, stride)
	}
	return nil
}
