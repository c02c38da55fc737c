package flake

import (
	"log/slog"

	"hexaflake/internal/graphics"
	renderer "hexaflake/internal/graphics/renderer"
	"hexaflake/internal/meshing"
	"hexaflake/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Flake draws one static mesh with a constant color
type Flake struct {
	mesh    meshing.Mesh
	fill    mgl32.Vec4
	timings *profiling.Timings

	shader     *graphics.Shader
	vao        uint32
	vbo        uint32
	ebo        uint32
	numIndices int32
}

// New creates a flake renderable for mesh. Nothing touches the GPU until Init.
func New(mesh meshing.Mesh, fill mgl32.Vec4, timings *profiling.Timings) *Flake {
	return &Flake{mesh: mesh, fill: fill, timings: timings}
}

// Init compiles the shader and uploads the mesh
func (f *Flake) Init() error {
	var err error
	f.shader, err = graphics.NewShaderFromSource(graphics.FlakeVertexSource, graphics.FlakeFragmentSource)
	if err != nil {
		return err
	}

	func() {
		defer f.timings.Track("flake.Upload")()
		f.upload()
	}()
	return nil
}

func (f *Flake) upload() {
	gl.GenVertexArrays(1, &f.vao)
	gl.BindVertexArray(f.vao)

	gl.GenBuffers(1, &f.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, f.vbo)
	if n := len(f.mesh.Positions); n > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, n*3*4, gl.Ptr(f.mesh.Positions), gl.STATIC_DRAW)
	}

	// location 0: vec3 position, tightly packed
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)

	gl.GenBuffers(1, &f.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, f.ebo)
	if n := len(f.mesh.Indices); n > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, n*4, gl.Ptr(f.mesh.Indices), gl.STATIC_DRAW)
	}
	f.numIndices = int32(len(f.mesh.Indices))

	// The element buffer binding is VAO state, so only the VAO and array buffer are unbound.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	slog.Debug("uploaded mesh",
		"vertices", len(f.mesh.Positions),
		"indices", len(f.mesh.Indices),
		"bytes", len(f.mesh.Positions)*3*4+len(f.mesh.Indices)*4)

	// the GPU owns its own copy from here on
	f.mesh = meshing.Mesh{}
}

// Render issues the indexed draw
func (f *Flake) Render(ctx renderer.RenderContext) {
	if f.numIndices == 0 {
		return
	}
	defer f.timings.Track("flake.Render")()

	f.shader.Use()
	f.shader.SetMatrix4("transformation", ctx.Transform)
	f.shader.SetVector4("color", f.fill)

	gl.BindVertexArray(f.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, f.numIndices, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// SetViewport is a no-op; the transform arrives with every RenderContext
func (f *Flake) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (f *Flake) Dispose() {
	if f.ebo != 0 {
		gl.DeleteBuffers(1, &f.ebo)
		f.ebo = 0
	}
	if f.vbo != 0 {
		gl.DeleteBuffers(1, &f.vbo)
		f.vbo = 0
	}
	if f.vao != 0 {
		gl.DeleteVertexArrays(1, &f.vao)
		f.vao = 0
	}
	if f.shader != nil {
		f.shader.Delete()
		f.shader = nil
	}
}
