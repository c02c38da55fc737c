package meshing

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	hexagonSides = 6

	// childScale shrinks the radius at every recursion level.
	childScale = 1.0 / 3.0
	// petalDistance places the six outer children, relative to the parent radius.
	petalDistance = 2.0 / 3.0
	petalStep     = 60.0
)

// Hexaflake generates a hexaflake of the given depth. Depth 0 yields an empty mesh and
// depth 1 a single hexagon; deeper levels are built from seven copies one level down.
func Hexaflake(steps int, radius float32, center mgl32.Vec2) (Mesh, error) {
	return HexaflakeAt(steps, radius, center, 0)
}

// HexaflakeAt is Hexaflake with every index offset by stride.
func HexaflakeAt(steps int, radius float32, center mgl32.Vec2, stride uint32) (Mesh, error) {
	if steps < 0 {
		return Mesh{}, fmt.Errorf("%w: steps must be >= 0, got %d", ErrInvalidArgument, steps)
	}
	if err := checkRadius(radius); err != nil {
		return Mesh{}, err
	}
	if steps == 0 {
		return Mesh{}, nil
	}

	vertices, indices, err := Counts(steps)
	if err != nil {
		return Mesh{}, err
	}
	if err := checkStride(stride, uint64(vertices)); err != nil {
		return Mesh{}, err
	}

	a := newArena(stride, vertices, indices)
	a.hexaflake(steps, float64(radius), point{float64(center[0]), float64(center[1])}, stride, 0)
	return a.mesh(), nil
}

// Counts returns how many vertices and indices a hexaflake of the given depth holds.
func Counts(steps int) (vertices, indices int, err error) {
	if steps < 0 {
		return 0, 0, fmt.Errorf("%w: steps must be >= 0, got %d", ErrInvalidArgument, steps)
	}
	if steps == 0 {
		return 0, 0, nil
	}
	v := uint64(hexagonSides + 1)
	for i := 1; i < steps; i++ {
		v *= hexagonSides + 1
		if v > maxVertices {
			return 0, 0, fmt.Errorf("%w: %d steps overflow 32-bit indices", ErrInvalidArgument, steps)
		}
	}
	tris := v / (hexagonSides + 1) * hexagonSides
	if tris*3 > math.MaxInt || v > math.MaxInt {
		return 0, 0, fmt.Errorf("%w: %d steps too large", ErrInvalidArgument, steps)
	}
	return int(v), int(tris * 3), nil
}

// hexaflake writes the center copy first, then the six petals. Each child is written with
// a stride equal to the incoming stride plus everything merged so far at this level.
func (a *arena) hexaflake(steps int, radius float64, c point, stride uint32, at int) Range {
	if steps == 1 {
		return a.polygon(hexagonSides, radius, c, stride, at)
	}

	child := radius * childScale
	r := a.hexaflake(steps-1, child, c, stride, at)
	for i := 0; i < hexagonSides; i++ {
		// x and y use opposite phase offsets (+90 and -90 degrees).
		pc := point{
			x: c.x + radius*petalDistance*math.Cos(degToRad(petalStep*float64(i)+90)),
			y: c.y + radius*petalDistance*math.Sin(degToRad(petalStep*float64(i)-90)),
		}
		next := a.hexaflake(steps-1, child, pc, stride+uint32(r.VertexCount), at+r.IndexCount)
		r.VertexCount += next.VertexCount
		r.IndexCount += next.IndexCount
	}
	return r
}
