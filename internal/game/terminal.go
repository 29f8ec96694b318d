package game

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/tilecaster/internal/config"
	"github.com/Faultbox/tilecaster/internal/controls"
	"github.com/Faultbox/tilecaster/internal/engine/debug"
	"github.com/Faultbox/tilecaster/internal/engine/term"
	"github.com/Faultbox/tilecaster/internal/logger"
)

// Terminal runs the frame in a tcell screen. Terminals send no key
// releases, so movement keys are latched and lapse when repeats stop.
type Terminal struct {
	running bool

	frame     *Frame
	screen    tcell.Screen
	canvas    *debug.Canvas
	presenter term.Presenter

	bindings controls.Bindings
	controls controls.Controls
	latch    *controls.Latch

	screenshots *debug.ScreenshotCapture
	log         *zap.Logger
}

// NewTerminal builds the frame for an initialized screen. The caller owns
// the screen and finalizes it.
func NewTerminal(cfg *config.Config, screen tcell.Screen) (*Terminal, error) {
	frame, err := NewFrame(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build frame: %w", err)
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, fmt.Errorf("failed to load key bindings: %w", err)
	}

	w, h := frame.CanvasSize()
	t := &Terminal{
		frame:       frame,
		screen:      screen,
		canvas:      debug.NewCanvas(w, h),
		bindings:    bindings,
		screenshots: debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "tilecaster"),
		log:         logger.Named("terminal"),
	}
	t.latch = controls.NewLatch(&t.controls, controls.DefaultHold)
	return t, nil
}

// Frame returns the simulated frame.
func (t *Terminal) Frame() *Frame { return t.frame }

// Run ticks at TickRate and redraws after every tick until quit.
func (t *Terminal) Run() error {
	t.running = true

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	t.log.Info("starting loop", zap.Int("tick_rate", TickRate))
	t.draw()

	for t.running {
		select {
		case ev := <-events:
			t.handleEvent(ev, time.Now())
		case now := <-ticker.C:
			t.step(now)
		}
	}
	t.log.Info("stopped", zap.Uint64("ticks", t.frame.Ticks()))
	return nil
}

func (t *Terminal) step(now time.Time) {
	t.latch.Expire(now)
	t.controls.Apply(t.frame.Pose())
	t.frame.Tick()
	t.draw()
}

func (t *Terminal) draw() {
	t.frame.Draw(t.canvas)
	t.presenter.Present(t.screen, t.canvas.Image())
	t.screen.Show()
}

func (t *Terminal) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()

	case *tcell.EventKey:
		if term.Interrupt(ev) {
			t.running = false
			return
		}
		switch a := t.bindings.Lookup(term.KeyName(ev)); a {
		case controls.ActionQuit:
			t.running = false
		case controls.ActionScreenshot:
			t.screenshot()
		case controls.ActionToggleMinimap:
			t.frame.ToggleMinimap()
		default:
			t.latch.Press(a, now)
		}
	}
}

func (t *Terminal) screenshot() {
	path, err := t.screenshots.CaptureFromImage(t.canvas.Image())
	if err != nil {
		t.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	t.log.Info("screenshot saved", zap.String("path", path))
}
