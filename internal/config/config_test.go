package config

import (
	"errors"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.Steps)
	assert.Equal(t, color.RGBA{56, 63, 112, 255}, cfg.Clear())
	assert.Equal(t, color.RGBA{0xe8, 0xcf, 0x76, 255}, cfg.Fill())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "flake.yml", `
steps: 4
radius: 0.5
center: [0.25, -0.25]
fill_color: "#ff0000"
log_level: debug
window:
  width: 400
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Steps)
	assert.Equal(t, float32(0.5), cfg.Radius)
	assert.Equal(t, [2]float32{0.25, -0.25}, cfg.Center)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, cfg.Fill())
	assert.Equal(t, 400, cfg.Window.Width)
	// untouched fields keep defaults
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "#383f70", cfg.ClearColor)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "flake.toml", `
steps = 2
margin = 4.0

[window]
title = "flake"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Steps)
	assert.Equal(t, float32(4), cfg.Margin)
	assert.Equal(t, "flake", cfg.Window.Title)
	assert.Equal(t, 900, cfg.Window.Width)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = Load(writeFile(t, "flake.json", `{}`))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "flake.toml", "bogus = 1\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "flake.yml", "steps: -1\n"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"too deep":        func(c *Config) { c.Steps = MaxSteps + 1 },
		"negative steps":  func(c *Config) { c.Steps = -1 },
		"zero radius":     func(c *Config) { c.Radius = 0 },
		"zero width":      func(c *Config) { c.Window.Width = 0 },
		"negative margin": func(c *Config) { c.Margin = -1 },
		"huge margin":     func(c *Config) { c.Margin = 300 },
		"bad clear color": func(c *Config) { c.ClearColor = "navy" },
		"bad fill color":  func(c *Config) { c.FillColor = "#12345" },
		"bad log level":   func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidArgument)
		})
	}

	cfg := Default()
	cfg.Steps = 0
	assert.NoError(t, cfg.Validate(), "zero steps draws nothing but is valid")
}

func TestVec4(t *testing.T) {
	v := Vec4(color.RGBA{255, 0, 51, 255})
	assert.InDelta(t, 1.0, v[0], 1e-6)
	assert.InDelta(t, 0.0, v[1], 1e-6)
	assert.InDelta(t, 0.2, v[2], 1e-6)
	assert.InDelta(t, 1.0, v[3], 1e-6)
}
