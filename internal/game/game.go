// Package game runs the raycaster: Frame holds the per-tick state and Game
// drives it from an SDL window.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/tilecaster/internal/config"
	"github.com/Faultbox/tilecaster/internal/controls"
	"github.com/Faultbox/tilecaster/internal/engine/debug"
	"github.com/Faultbox/tilecaster/internal/engine/input"
	"github.com/Faultbox/tilecaster/internal/engine/ui2d"
	"github.com/Faultbox/tilecaster/internal/engine/window"
	"github.com/Faultbox/tilecaster/internal/logger"
)

// TickRate is the number of simulation steps per second. Speeds in the
// config are per step.
const TickRate = 60

// maxCatchUp bounds the steps run after a stall.
const maxCatchUp = 5

// Game is the windowed client.
type Game struct {
	cfg     *config.Config
	running bool

	frame    *Frame
	window   *window.Window
	renderer *ui2d.Renderer
	input    *input.Input

	bindings controls.Bindings
	controls controls.Controls

	screenshots       *debug.ScreenshotCapture
	pendingScreenshot bool

	log *zap.Logger
}

// New creates the window, GL renderer and frame.
func New(cfg *config.Config) (*Game, error) {
	log := logger.Named("game")

	frame, err := NewFrame(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build frame: %w", err)
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, fmt.Errorf("failed to load key bindings: %w", err)
	}

	w, h := frame.CanvasSize()
	log.Info("initializing",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("columns", frame.Columns()),
		zap.Float64("fov_deg", cfg.Render.FOVDeg),
	)

	g := &Game{
		cfg:         cfg,
		frame:       frame,
		input:       input.New(),
		bindings:    bindings,
		screenshots: debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "tilecaster"),
		log:         log,
	}

	// Window first; it owns the GL context the renderer needs.
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      w,
		Height:     h,
		Scale:      cfg.Window.Scale,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.renderer, err = ui2d.New(w, h)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	g.renderer.SetViewport(g.window.DrawableSize())

	log.Info("initialized")
	return g, nil
}

// Run executes the main loop until the window closes or quit is pressed.
func (g *Game) Run() error {
	g.running = true

	step := time.Second / TickRate
	var minFrame time.Duration
	if !g.cfg.Window.VSync && g.cfg.Window.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(g.cfg.Window.FPSLimit)
	}

	lastTime := time.Now()
	var acc time.Duration
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting loop", zap.Int("tick_rate", TickRate))

	for g.running {
		frameStart := time.Now()
		acc += frameStart.Sub(lastTime)
		lastTime = frameStart

		// 1. Input
		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		// 2. Fixed-step simulation
		steps := 0
		for acc >= step && steps < maxCatchUp {
			g.controls.Apply(g.frame.Pose())
			g.frame.Tick()
			acc -= step
			steps++
		}
		if steps == maxCatchUp {
			acc = 0
		}

		// 3. Render
		if err := g.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 4. Present
		g.window.SwapBuffers()

		if minFrame > 0 {
			if spent := time.Since(frameStart); spent < minFrame {
				time.Sleep(minFrame - spent)
			}
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			p := g.frame.Pose()
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Uint64("ticks", g.frame.Ticks()),
				zap.Float64("x", p.Position.X),
				zap.Float64("y", p.Position.Y),
				zap.Float64("heading", p.Heading),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, ev := range g.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			g.renderer.SetViewport(g.window.DrawableSize())

		case input.EventFocusLost:
			g.controls.Reset()

		case input.EventKeyDown:
			if ev.Repeat {
				continue
			}
			switch a := g.bindings.Lookup(ev.Key); a {
			case controls.ActionQuit:
				g.running = false
			case controls.ActionScreenshot:
				g.pendingScreenshot = true
			case controls.ActionToggleMinimap:
				g.frame.ToggleMinimap()
			default:
				g.controls.Press(a)
			}

		case input.EventKeyUp:
			g.controls.Release(g.bindings.Lookup(ev.Key))
		}
	}
}

// render draws the current frame into the back buffer.
func (g *Game) render() error {
	g.renderer.Begin()
	g.frame.Draw(g.renderer)
	g.renderer.End()

	if g.pendingScreenshot {
		g.pendingScreenshot = false
		pixels, w, h := g.renderer.ReadPixels()
		path, err := g.screenshots.CaptureFromPixels(pixels, w, h)
		if err != nil {
			// A failed screenshot is not fatal.
			g.log.Warn("screenshot failed", zap.Error(err))
			return nil
		}
		g.log.Info("screenshot saved", zap.String("path", path))
	}
	return nil
}

// Close releases the renderer and window.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
