// Package raster draws a mesh on the CPU with the same camera as the GL path, for
// headless snapshots.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"hexaflake/internal/camera"
	"hexaflake/internal/meshing"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Options describes the target surface
type Options struct {
	Width  int
	Height int
	Margin float32
	Clear  color.RGBA
	Fill   color.RGBA
}

// Render fills every triangle of m over the clear color.
func Render(m meshing.Mesh, opts Options) (*image.RGBA, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("%w: surface size %dx%d", meshing.ErrInvalidArgument, opts.Width, opts.Height)
	}
	if err := m.CheckIndices(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Clear), image.Point{}, draw.Src)
	if len(m.Indices) == 0 {
		return img, nil
	}

	cam := camera.NewOrtho(opts.Width, opts.Height, opts.Margin)
	xf := cam.PixelMatrix()
	px := make([][2]float32, len(m.Positions))
	for i, p := range m.Positions {
		v := xf.Mul4x1(p.Vec4(1))
		px[i] = [2]float32{v[0], v[1]}
	}

	// The rasterizer accumulates signed area, so every triangle is turned to the same
	// winding before it is added; otherwise shared edges would cancel.
	z := vector.NewRasterizer(opts.Width, opts.Height)
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := px[m.Indices[t]], px[m.Indices[t+1]], px[m.Indices[t+2]]
		if cross(a, b, c) < 0 {
			b, c = c, b
		}
		z.MoveTo(a[0], a[1])
		z.LineTo(b[0], b[1])
		z.LineTo(c[0], c[1])
		z.ClosePath()
	}
	z.Draw(img, img.Bounds(), image.NewUniform(opts.Fill), image.Point{})
	return img, nil
}

func cross(a, b, c [2]float32) float32 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

// WritePNG encodes img to path
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create snapshot file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("could not encode png: %w", err)
	}
	return f.Close()
}
