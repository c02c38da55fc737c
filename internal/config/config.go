package config

import (
	"bytes"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"hexaflake/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is looked up in the working directory when no config path is given.
const DefaultFilename = "hexaflake.yml"

// MaxSteps caps the recursion depth accepted from configuration (7^8 vertices).
const MaxSteps = 8

// ErrInvalidArgument is the error kind for rejected settings.
var ErrInvalidArgument = meshing.ErrInvalidArgument

// Window holds the display surface settings
type Window struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

// Config holds everything needed to generate and display one hexaflake
type Config struct {
	Steps  int        `yaml:"steps" toml:"steps"`
	Radius float32    `yaml:"radius" toml:"radius"`
	Center [2]float32 `yaml:"center" toml:"center"`

	// Margin is the gap in pixels kept between the unit mesh and the surface border.
	Margin     float32 `yaml:"margin" toml:"margin"`
	ClearColor string  `yaml:"clear_color" toml:"clear_color"`
	FillColor  string  `yaml:"fill_color" toml:"fill_color"`

	LogLevel string `yaml:"log_level" toml:"log_level"`
	Window   Window `yaml:"window" toml:"window"`
}

// Default returns the settings of the stock hexaflake
func Default() Config {
	return Config{
		Steps:      3,
		Radius:     1,
		Margin:     10,
		ClearColor: "#383f70",
		FillColor:  "#e8cf76",
		LogLevel:   "info",
		Window: Window{
			Width:  900,
			Height: 600,
			Title:  "hexaflake",
		},
	}
}

// Load reads a YAML (.yml, .yaml) or TOML (.toml) file on top of Default and validates
// the result. Fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("could not parse yaml config %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("could not parse toml config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and color syntax
func (c Config) Validate() error {
	if c.Steps < 0 || c.Steps > MaxSteps {
		return fmt.Errorf("%w: steps must be in [0, %d], got %d", ErrInvalidArgument, MaxSteps, c.Steps)
	}
	if !(c.Radius > 0) {
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidArgument, c.Radius)
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidArgument, c.Window.Width, c.Window.Height)
	}
	half := float32(min(c.Window.Width, c.Window.Height)) / 2
	if c.Margin < 0 || c.Margin >= half {
		return fmt.Errorf("%w: margin must be in [0, %v), got %v", ErrInvalidArgument, half, c.Margin)
	}
	if _, err := ParseColor(c.ClearColor); err != nil {
		return err
	}
	if _, err := ParseColor(c.FillColor); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// CenterVec returns the configured center as a vector
func (c Config) CenterVec() mgl32.Vec2 {
	return mgl32.Vec2{c.Center[0], c.Center[1]}
}

// Clear returns the background color
func (c Config) Clear() color.RGBA {
	col, _ := ParseColor(c.ClearColor)
	return col
}

// Fill returns the mesh color
func (c Config) Fill() color.RGBA {
	col, _ := ParseColor(c.FillColor)
	return col
}

// SlogLevel maps LogLevel to a slog level; an empty value means info.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidArgument, c.LogLevel)
	}
	return level, nil
}

// ParseColor parses a "#rrggbb" or "#rgb" string into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: color %q: %v", ErrInvalidArgument, s, err)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Vec4 converts a color to normalized RGBA components for GL uniforms
func Vec4(c color.RGBA) mgl32.Vec4 {
	return mgl32.Vec4{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}
