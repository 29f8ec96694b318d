// Package config handles renderer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/tilecaster/internal/controls"
	"github.com/Faultbox/tilecaster/internal/engine/draw"
	"github.com/Faultbox/tilecaster/internal/grid"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Map     MapConfig     `yaml:"map"`
	Player  PlayerConfig  `yaml:"player"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`

	// Keys overrides default bindings: SDL key name -> action name.
	Keys map[string]string `yaml:"keys,omitempty"`
}

// WindowConfig holds display settings. The canvas is always
// cols*tile_size by rows*tile_size; Scale only enlarges the window.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Scale      int    `yaml:"scale"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"`
}

// MapConfig holds the tile grid. Rows use '#' for walls and '.' for floor.
type MapConfig struct {
	TileSize float64  `yaml:"tile_size"`
	Rows     []string `yaml:"rows"`
}

// PlayerConfig holds the observer's start pose and speeds.
// A zero X or Y places the observer at the map center on that axis.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	HeadingDeg   float64 `yaml:"heading_deg"`
	MoveSpeed    float64 `yaml:"move_speed"`     // world units per tick
	TurnSpeedDeg float64 `yaml:"turn_speed_deg"` // degrees per tick
}

// RenderConfig holds projection and shading settings.
type RenderConfig struct {
	FOVDeg         float64 `yaml:"fov_deg"`
	StripWidth     float64 `yaml:"strip_width"`
	Falloff        float64 `yaml:"falloff"`
	MaxAlpha       float64 `yaml:"max_alpha"`
	VerticalTint   string  `yaml:"vertical_tint"`
	HorizontalTint string  `yaml:"horizontal_tint"`
	ShowMinimap    bool    `yaml:"show_minimap"`
	MinimapScale   float64 `yaml:"minimap_scale"`
	ScreenshotDir  string  `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Tilecaster",
			Scale:      1,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
		},
		Map: MapConfig{
			TileSize: grid.DefaultTileSize,
			Rows:     append([]string(nil), grid.DefaultRows...),
		},
		Player: PlayerConfig{
			HeadingDeg:   90,
			MoveSpeed:    1,
			TurnSpeedDeg: 2,
		},
		Render: RenderConfig{
			FOVDeg:         60,
			StripWidth:     1,
			Falloff:        170,
			MaxAlpha:       1,
			VerticalTint:   "#ffffff",
			HorizontalTint: "#b4b4b4",
			ShowMinimap:    true,
			MinimapScale:   0.2,
			ScreenshotDir:  "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Window.Scale < 1 {
		return fmt.Errorf("window.scale must be >= 1, got %d", c.Window.Scale)
	}
	if c.Window.FPSLimit < 0 {
		return fmt.Errorf("window.fps_limit must be >= 0, got %d", c.Window.FPSLimit)
	}
	if _, err := c.Grid(); err != nil {
		return fmt.Errorf("map: %w", err)
	}
	if c.Player.MoveSpeed < 0 || c.Player.TurnSpeedDeg < 0 {
		return errors.New("player speeds must be >= 0")
	}
	if c.Render.FOVDeg <= 0 || c.Render.FOVDeg >= 180 {
		return fmt.Errorf("render.fov_deg must be in (0, 180), got %v", c.Render.FOVDeg)
	}
	if c.Render.StripWidth <= 0 {
		return fmt.Errorf("render.strip_width must be > 0, got %v", c.Render.StripWidth)
	}
	if c.Render.MaxAlpha < 0 || c.Render.MaxAlpha > 1 {
		return fmt.Errorf("render.max_alpha must be in [0, 1], got %v", c.Render.MaxAlpha)
	}
	if c.Render.Falloff < 0 {
		return fmt.Errorf("render.falloff must be >= 0, got %v", c.Render.Falloff)
	}
	if c.Render.MinimapScale <= 0 {
		return fmt.Errorf("render.minimap_scale must be > 0, got %v", c.Render.MinimapScale)
	}
	if _, _, err := c.Tints(); err != nil {
		return err
	}
	if _, err := c.Bindings(); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}

// Grid builds the tile grid from the map section.
func (c *Config) Grid() (*grid.Grid, error) {
	return grid.New(c.Map.Rows, c.Map.TileSize)
}

// Tints parses the vertical and horizontal wall tints.
func (c *Config) Tints() (vertical, horizontal draw.Color, err error) {
	if vertical, err = draw.ParseHex(c.Render.VerticalTint); err != nil {
		return vertical, horizontal, fmt.Errorf("render.vertical_tint: %w", err)
	}
	if horizontal, err = draw.ParseHex(c.Render.HorizontalTint); err != nil {
		return vertical, horizontal, fmt.Errorf("render.horizontal_tint: %w", err)
	}
	return vertical, horizontal, nil
}

// Bindings returns the default key bindings with Keys applied.
func (c *Config) Bindings() (controls.Bindings, error) {
	b := controls.DefaultBindings()
	if err := b.Merge(c.Keys); err != nil {
		return nil, err
	}
	return b, nil
}

// CanvasSize returns the logical canvas size in pixels.
func (c *Config) CanvasSize() (width, height int) {
	cols := 0
	if len(c.Map.Rows) > 0 {
		cols = len(c.Map.Rows[0])
	}
	return int(float64(cols) * c.Map.TileSize), int(float64(len(c.Map.Rows)) * c.Map.TileSize)
}
