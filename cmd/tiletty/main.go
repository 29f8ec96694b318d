// Command tiletty runs the raycaster inside a terminal.
//
// The console log is off while the screen is active; set logging.log_file
// (or -log-file) to keep a log.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/tilecaster/internal/config"
	"github.com/Faultbox/tilecaster/internal/game"
	"github.com/Faultbox/tilecaster/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	code, err := run(cfg)
	if err != nil {
		// The screen is gone by now, so stderr is readable again.
		fmt.Fprintf(os.Stderr, "tiletty: %v\n", err)
	}
	os.Exit(code)
}

func run(cfg *config.Config) (int, error) {
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return 1, fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return 1, fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	t, err := game.NewTerminal(cfg, screen)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		return 1, err
	}
	if err := t.Run(); err != nil {
		logger.Error("loop error", zap.Error(err))
		return 1, err
	}
	return 0, nil
}
