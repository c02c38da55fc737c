package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"hexaflake/internal/config"
	"hexaflake/internal/meshing"
	"hexaflake/internal/profiling"
	"hexaflake/internal/raster"
	"hexaflake/pkg/objfile"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "YAML or TOML config file (default ./"+config.DefaultFilename+" if present)")
	snapshot := flag.String("snapshot", "", "render to this PNG file instead of opening a window")
	objPath := flag.String("obj", "", "also write the mesh as Wavefront OBJ to this file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("could not load config", "error", err)
		return 1
	}
	setupLogging(cfg)

	timings := profiling.New()
	mesh, err := generate(cfg, timings)
	if err != nil {
		slog.Error("could not generate mesh", "error", err)
		return 1
	}

	if *objPath != "" {
		if err := writeOBJ(*objPath, mesh); err != nil {
			slog.Error("could not export mesh", "path", *objPath, "error", err)
			return 1
		}
		slog.Info("wrote mesh", "path", *objPath)
	}

	if *snapshot != "" {
		err = writeSnapshot(*snapshot, cfg, mesh, timings)
	} else {
		err = display(cfg, mesh, timings)
	}
	if err != nil {
		slog.Error("display failed", "error", err)
		return 1
	}

	slog.Debug("timings", "total", timings.Total(), "top", timings.TopN(5))
	return 0
}

// loadConfig reads path, or the default file when path is empty. A missing default
// file means stock settings.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, err := config.Load(config.DefaultFilename)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func setupLogging(cfg config.Config) {
	level, _ := cfg.SlogLevel()
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func generate(cfg config.Config, timings *profiling.Timings) (meshing.Mesh, error) {
	defer timings.Track("meshing.Hexaflake")()

	mesh, err := meshing.Hexaflake(cfg.Steps, cfg.Radius, cfg.CenterVec())
	if err != nil {
		return meshing.Mesh{}, err
	}
	slog.Debug("generated hexaflake",
		"steps", cfg.Steps,
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount())
	return mesh, nil
}

func writeOBJ(path string, mesh meshing.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := objfile.Write(f, mesh.Positions, mesh.Indices); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSnapshot(path string, cfg config.Config, mesh meshing.Mesh, timings *profiling.Timings) error {
	defer timings.Track("raster.Render")()

	img, err := raster.Render(mesh, raster.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Margin: cfg.Margin,
		Clear:  cfg.Clear(),
		Fill:   cfg.Fill(),
	})
	if err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}
	if err := raster.WritePNG(path, img); err != nil {
		return err
	}
	slog.Info("wrote snapshot", "path", path, "width", cfg.Window.Width, "height", cfg.Window.Height)
	return nil
}
