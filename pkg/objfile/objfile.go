// Package objfile reads and writes triangle meshes in the Wavefront OBJ format.
// Only "v" and triangular "f" records are understood; everything else is skipped.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Write emits one "v" line per position followed by one "f" line per triangle.
// OBJ indices are 1-based.
func Write(w io.Writer, positions []mgl32.Vec3, indices []uint32) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", len(positions), len(indices)/3)
	for _, p := range positions {
		bw.WriteString("v ")
		bw.WriteString(formatFloat(p[0]))
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(p[1]))
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(p[2]))
		bw.WriteByte('\n')
	}
	for i := 0; i < len(indices); i += 3 {
		for k := 0; k < 3; k++ {
			if int(indices[i+k]) >= len(positions) {
				return fmt.Errorf("triangle %d references vertex %d of %d", i/3, indices[i+k], len(positions))
			}
		}
		fmt.Fprintf(bw, "f %d %d %d\n", indices[i]+1, indices[i+1]+1, indices[i+2]+1)
	}
	return bw.Flush()
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// Read parses positions and triangles. Negative (relative) face indices are resolved
// against the vertices read so far.
func Read(r io.Reader) ([]mgl32.Vec3, []uint32, error) {
	var (
		positions []mgl32.Vec3
		indices   []uint32
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			var p mgl32.Vec3
			for k := 0; k < 3; k++ {
				f, err := strconv.ParseFloat(fields[1+k], 32)
				if err != nil {
					return nil, nil, fmt.Errorf("line %d: %w", line, err)
				}
				p[k] = float32(f)
			}
			positions = append(positions, p)
		case "f":
			if len(fields) != 4 {
				return nil, nil, fmt.Errorf("line %d: only triangles are supported, got %d vertices", line, len(fields)-1)
			}
			for _, ref := range fields[1:] {
				idx, err := resolve(ref, len(positions))
				if err != nil {
					return nil, nil, fmt.Errorf("line %d: %w", line, err)
				}
				indices = append(indices, idx)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return positions, indices, nil
}

// resolve turns a face reference such as "3", "3/1" or "-1//2" into a 0-based index.
func resolve(ref string, count int) (uint32, error) {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q", ref)
	}
	switch {
	case n > 0 && n <= count:
		return uint32(n - 1), nil
	case n < 0 && -n <= count:
		return uint32(count + n), nil
	}
	return 0, fmt.Errorf("face index %d out of range (%d vertices)", n, count)
}
