package renderer

import (
	"fmt"

	"hexaflake/internal/camera"
	"hexaflake/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer clears the surface and draws its renderables once per call
type Renderer struct {
	renderables []Renderable
	clear       mgl32.Vec4
	margin      float32
	width       int
	height      int
	timings     *profiling.Timings
}

// NewRenderer initializes every renderable. If one fails, those already initialized are
// disposed and the error is returned.
func NewRenderer(clearColor mgl32.Vec4, margin float32, timings *profiling.Timings, rs ...Renderable) (*Renderer, error) {
	r := &Renderer{
		clear:   clearColor,
		margin:  margin,
		timings: timings,
	}

	for i, rd := range rs {
		if err := rd.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
		r.renderables = append(r.renderables, rd)
	}

	return r, nil
}

// Clear fills the surface with the clear color only
func (r *Renderer) Clear() {
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Render clears the surface and draws every renderable
func (r *Renderer) Render() {
	defer r.timings.Track("renderer.Render")()

	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	r.Clear()

	ctx := RenderContext{
		Width:     r.width,
		Height:    r.height,
		Transform: camera.NewOrtho(r.width, r.height, r.margin).MVP(),
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// UpdateViewport records the framebuffer size and forwards it to the renderables
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}
