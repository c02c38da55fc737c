package main

import (
	"fmt"
	"log/slog"

	"hexaflake/internal/config"
	"hexaflake/internal/graphics"
	"hexaflake/internal/graphics/renderables/flake"
	renderer "hexaflake/internal/graphics/renderer"
	"hexaflake/internal/meshing"
	"hexaflake/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(w config.Window) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(w.Width, w.Height, w.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", graphics.ErrContextUnavailable, err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("%w: %v", graphics.ErrContextUnavailable, err)
	}
	glfw.SwapInterval(1)

	slog.Debug("opened window", "gl", gl.GoStr(gl.GetString(gl.VERSION)), "width", w.Width, "height", w.Height)
	return window, nil
}

// display shows mesh in a window. The frame is drawn once and only re-issued when the
// window system asks for a refresh; nothing animates.
func display(cfg config.Config, mesh meshing.Mesh, timings *profiling.Timings) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %v", graphics.ErrContextUnavailable, err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	clearColor := config.Vec4(cfg.Clear())
	r, err := renderer.NewRenderer(clearColor, cfg.Margin, timings, flake.New(mesh, config.Vec4(cfg.Fill()), timings))
	if err != nil {
		// The window stays up with the clear color, but there is nothing to draw.
		slog.Error("could not set up renderer", "error", err)
		r, _ = renderer.NewRenderer(clearColor, cfg.Margin, timings)
	}
	defer r.Dispose()

	r.UpdateViewport(window.GetFramebufferSize())

	draw := func() {
		r.Render()
		window.SwapBuffers()
	}
	window.SetRefreshCallback(func(w *glfw.Window) { draw() })
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	draw()
	for !window.ShouldClose() {
		glfw.WaitEvents()
	}
	return nil
}
