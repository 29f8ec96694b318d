package game

import (
	"fmt"

	"github.com/Faultbox/tilecaster/internal/config"
	"github.com/Faultbox/tilecaster/internal/engine/draw"
	"github.com/Faultbox/tilecaster/internal/grid"
	"github.com/Faultbox/tilecaster/internal/minimap"
	"github.com/Faultbox/tilecaster/internal/pose"
	"github.com/Faultbox/tilecaster/internal/projector"
	"github.com/Faultbox/tilecaster/internal/raycast"
	rmath "github.com/Faultbox/tilecaster/pkg/math"
)

// Frame owns everything one tick reads and writes. It has no window or GL
// dependency, so the windowed client and the headless renderer share it.
type Frame struct {
	grid      *grid.Grid
	pose      *pose.Pose
	caster    *raycast.Caster
	projector *projector.Projector
	minimap   *minimap.Minimap

	fov         float64
	columns     int
	showMinimap bool
	backdrop    draw.Color

	// Recomputed in full every tick; kept only to avoid allocation.
	rays   []raycast.Ray
	strips []projector.Strip

	ticks uint64
}

// NewFrame builds a frame from a validated config and casts the first set
// of rays so Draw works before the first Tick.
func NewFrame(cfg *config.Config) (*Frame, error) {
	g, err := cfg.Grid()
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}

	vertical, horizontal, err := cfg.Tints()
	if err != nil {
		return nil, err
	}

	width, height := g.Width(), g.Height()
	columns := int(width / cfg.Render.StripWidth)
	if columns < 1 {
		columns = 1
	}
	fov := rmath.Radians(cfg.Render.FOVDeg)

	proj, err := projector.New(projector.Config{
		ScreenWidth:    width,
		ScreenHeight:   height,
		FOV:            fov,
		Columns:        columns,
		TileSize:       g.TileSize(),
		Falloff:        cfg.Render.Falloff,
		MaxAlpha:       cfg.Render.MaxAlpha,
		VerticalTint:   vertical,
		HorizontalTint: horizontal,
	})
	if err != nil {
		return nil, fmt.Errorf("build projector: %w", err)
	}

	x, y := cfg.Player.X, cfg.Player.Y
	if x == 0 {
		x = width / 2
	}
	if y == 0 {
		y = height / 2
	}
	if g.IsWall(x, y) {
		return nil, fmt.Errorf("player start (%v, %v) is inside a wall", x, y)
	}

	f := &Frame{
		grid: g,
		pose: pose.New(x, y,
			rmath.Radians(cfg.Player.HeadingDeg),
			cfg.Player.MoveSpeed,
			rmath.Radians(cfg.Player.TurnSpeedDeg),
		),
		caster:      raycast.New(g),
		projector:   proj,
		minimap:     minimap.New(cfg.Render.MinimapScale),
		fov:         fov,
		columns:     columns,
		showMinimap: cfg.Render.ShowMinimap,
		backdrop:    draw.ColorBackdrop,
		rays:        make([]raycast.Ray, columns),
		strips:      make([]projector.Strip, columns),
	}
	f.Recast()
	return f, nil
}

// Tick advances one step: integrate the pose, then recast and reproject
// every column.
func (f *Frame) Tick() {
	f.pose.Integrate(f.grid)
	f.Recast()
	f.ticks++
}

// Recast recomputes rays and strips for the current pose without moving.
func (f *Frame) Recast() {
	f.rays = f.caster.CastFan(f.rays, f.pose.Position, f.pose.Heading, f.fov, f.columns)
	f.strips = f.projector.Project(f.strips, f.rays, f.pose.Heading)
}

// Draw clears c, then draws the wall strips and the minimap on top.
func (f *Frame) Draw(c draw.Canvas) {
	c.Clear(f.backdrop)
	projector.Draw(c, f.strips)
	if f.showMinimap {
		f.minimap.Render(c, f.grid, f.pose, f.rays)
	}
}

// Pose returns the observer. Callers set intents on it between ticks.
func (f *Frame) Pose() *pose.Pose { return f.pose }

// Grid returns the tile grid.
func (f *Frame) Grid() *grid.Grid { return f.grid }

// Rays returns the rays of the last cast. The slice is reused by the next one.
func (f *Frame) Rays() []raycast.Ray { return f.rays }

// Strips returns the strips of the last cast. The slice is reused by the next one.
func (f *Frame) Strips() []projector.Strip { return f.strips }

// Columns returns the number of rays per frame.
func (f *Frame) Columns() int { return f.columns }

// Ticks returns how many times Tick has run.
func (f *Frame) Ticks() uint64 { return f.ticks }

// CanvasSize returns the frame size in pixels.
func (f *Frame) CanvasSize() (int, int) {
	return int(f.grid.Width()), int(f.grid.Height())
}

// MinimapVisible reports whether Draw includes the minimap.
func (f *Frame) MinimapVisible() bool { return f.showMinimap }

// ToggleMinimap flips minimap visibility.
func (f *Frame) ToggleMinimap() {
	f.showMinimap = !f.showMinimap
}
