// Package projector turns a frame's rays into screen-column wall strips.
package projector

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/tilecaster/internal/engine/draw"
	"github.com/Faultbox/tilecaster/internal/raycast"
)

// minDistance keeps strip heights finite when the observer touches a wall.
const minDistance = 1e-6

// Config holds projection settings.
type Config struct {
	ScreenWidth  float64
	ScreenHeight float64
	FOV          float64 // radians
	Columns      int
	TileSize     float64

	// Alpha is Falloff / correctedDistance, capped at MaxAlpha.
	Falloff  float64
	MaxAlpha float64

	VerticalTint   draw.Color // faces hit on vertical grid lines
	HorizontalTint draw.Color // faces hit on horizontal grid lines
}

// DefaultConfig returns the classic settings for a screen of the given
// size: one-pixel strips, 60 degree field of view.
func DefaultConfig(width, height, tileSize float64) Config {
	return Config{
		ScreenWidth:    width,
		ScreenHeight:   height,
		FOV:            math.Pi / 3,
		Columns:        int(width),
		TileSize:       tileSize,
		Falloff:        170,
		MaxAlpha:       1,
		VerticalTint:   draw.RGB(255, 255, 255),
		HorizontalTint: draw.RGB(180, 180, 180),
	}
}

// Strip is one screen column's wall rectangle.
type Strip struct {
	X, Y          float64
	Width, Height float64
	Distance      float64 // fisheye-corrected
	Color         draw.Color
}

// Projector converts rays to strips.
type Projector struct {
	cfg           Config
	planeDistance float64
	stripWidth    float64
}

// New validates cfg and precomputes the projection plane distance.
func New(cfg Config) (*Projector, error) {
	switch {
	case cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0:
		return nil, fmt.Errorf("invalid screen size %vx%v", cfg.ScreenWidth, cfg.ScreenHeight)
	case !(cfg.FOV > 0 && cfg.FOV < math.Pi):
		return nil, fmt.Errorf("field of view %v outside (0, π)", cfg.FOV)
	case cfg.Columns <= 0:
		return nil, fmt.Errorf("invalid column count %d", cfg.Columns)
	case cfg.TileSize <= 0:
		return nil, fmt.Errorf("invalid tile size %v", cfg.TileSize)
	case cfg.Falloff < 0 || cfg.MaxAlpha < 0 || cfg.MaxAlpha > 1:
		return nil, errors.New("falloff must be >= 0 and max alpha in [0, 1]")
	}
	return &Projector{
		cfg:           cfg,
		planeDistance: (cfg.ScreenWidth / 2) / math.Tan(cfg.FOV/2),
		stripWidth:    cfg.ScreenWidth / float64(cfg.Columns),
	}, nil
}

// PlaneDistance returns the distance from the eye to the projection plane.
func (p *Projector) PlaneDistance() float64 { return p.planeDistance }

// StripWidth returns the width of one column in pixels.
func (p *Projector) StripWidth() float64 { return p.stripWidth }

// CorrectedDistance removes the fisheye distortion of a ray cast at
// rayAngle from an observer facing heading.
func CorrectedDistance(raw, rayAngle, heading float64) float64 {
	return raw * math.Cos(rayAngle-heading)
}

// Height returns the projected wall height for a corrected distance.
func (p *Projector) Height(corrected float64) float64 {
	return (p.cfg.TileSize / clampDistance(corrected)) * p.planeDistance
}

// Alpha returns the distance shading for a corrected distance.
func (p *Projector) Alpha(corrected float64) float64 {
	return math.Min(p.cfg.Falloff/clampDistance(corrected), p.cfg.MaxAlpha)
}

// Project converts one ray per column into strips, reusing dst.
func (p *Projector) Project(dst []Strip, rays []raycast.Ray, heading float64) []Strip {
	if cap(dst) < len(rays) {
		dst = make([]Strip, len(rays))
	}
	dst = dst[:len(rays)]

	for i, ray := range rays {
		d := clampDistance(CorrectedDistance(ray.Distance, ray.Angle, heading))
		h := p.Height(d)

		tint := p.cfg.HorizontalTint
		if ray.Vertical {
			tint = p.cfg.VerticalTint
		}
		dst[i] = Strip{
			X:        float64(i) * p.stripWidth,
			Y:        p.cfg.ScreenHeight/2 - h/2,
			Width:    p.stripWidth,
			Height:   h,
			Distance: d,
			Color:    tint.WithAlpha(float32(p.Alpha(d))),
		}
	}
	return dst
}

// Draw emits the strips as filled rectangles.
func Draw(c draw.Canvas, strips []Strip) {
	for _, s := range strips {
		c.FillRect(s.X, s.Y, s.Width, s.Height, s.Color)
	}
}

func clampDistance(d float64) float64 {
	if math.IsNaN(d) || d < minDistance {
		return minDistance
	}
	return d
}
