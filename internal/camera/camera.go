package camera

import "github.com/go-gl/mathgl/mgl32"

// Ortho is a 2D orthographic camera over a pixel surface with a top-left origin.
// The mesh's unit circle is scaled to half the surface minus Margin and centered.
type Ortho struct {
	Width  int
	Height int
	Margin float32
}

// NewOrtho creates a camera for a width x height surface
func NewOrtho(width, height int, margin float32) Ortho {
	return Ortho{Width: width, Height: height, Margin: margin}
}

// Model scales mesh space to pixels
func (c Ortho) Model() mgl32.Mat4 {
	return mgl32.Scale3D(float32(c.Width)/2-c.Margin, float32(c.Height)/2-c.Margin, 1)
}

// View moves the origin to the surface midpoint
func (c Ortho) View() mgl32.Mat4 {
	return mgl32.Translate3D(float32(c.Width)/2, float32(c.Height)/2, 0)
}

// Projection spans the pixel extents with Y flipped; near/far at -1/+1
func (c Ortho) Projection() mgl32.Mat4 {
	return mgl32.Ortho(0, float32(c.Width), float32(c.Height), 0, -1, 1)
}

// PixelMatrix maps mesh space straight to pixel coordinates
func (c Ortho) PixelMatrix() mgl32.Mat4 {
	return c.View().Mul4(c.Model())
}

// MVP is the model-view-projection matrix handed to the vertex shader
func (c Ortho) MVP() mgl32.Mat4 {
	return c.Projection().Mul4(c.PixelMatrix())
}

// ToPixel maps a mesh position to pixel coordinates
func (c Ortho) ToPixel(p mgl32.Vec3) mgl32.Vec2 {
	v := c.PixelMatrix().Mul4x1(p.Vec4(1))
	return mgl32.Vec2{v[0], v[1]}
}
