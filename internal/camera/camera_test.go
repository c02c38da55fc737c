package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec2, eps float32) bool {
	return mgl32.Abs(a[0]-b[0]) <= eps && mgl32.Abs(a[1]-b[1]) <= eps
}

func TestToPixel(t *testing.T) {
	c := NewOrtho(900, 600, 10)
	cases := []struct {
		in, want mgl32.Vec2
	}{
		{mgl32.Vec2{0, 0}, mgl32.Vec2{450, 300}},
		{mgl32.Vec2{1, 0}, mgl32.Vec2{890, 300}},
		{mgl32.Vec2{-1, 0}, mgl32.Vec2{10, 300}},
		{mgl32.Vec2{0, 1}, mgl32.Vec2{450, 590}},
		{mgl32.Vec2{0, -1}, mgl32.Vec2{450, 10}},
	}
	for _, tc := range cases {
		got := c.ToPixel(tc.in.Vec3(0))
		if !near(got, tc.want, 1e-3) {
			t.Errorf("ToPixel(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMVPToNDC(t *testing.T) {
	const w, h = 800, 400
	m := NewOrtho(w, h, 10).MVP()
	cases := []struct {
		in, want mgl32.Vec2
	}{
		{mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0}},
		{mgl32.Vec2{1, 0}, mgl32.Vec2{1 - 20.0/w, 0}},
		// positive y ends up at the bottom of the surface
		{mgl32.Vec2{0, 1}, mgl32.Vec2{0, -(1 - 20.0/h)}},
		{mgl32.Vec2{0, -1}, mgl32.Vec2{0, 1 - 20.0/h}},
	}
	for _, tc := range cases {
		v := m.Mul4x1(mgl32.Vec4{tc.in[0], tc.in[1], 0, 1})
		got := mgl32.Vec2{v[0] / v[3], v[1] / v[3]}
		if !near(got, tc.want, 1e-5) {
			t.Errorf("MVP(%v) = %v, want %v", tc.in, got, tc.want)
		}
		if mgl32.Abs(v[2]) > 1e-6 {
			t.Errorf("plane z maps to %v, want 0", v[2])
		}
	}
}
