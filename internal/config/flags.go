package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed     = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen   = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagScale        = flag.Int("scale", 0, "Window scale factor")
	flagFOV          = flag.Float64("fov", 0, "Field of view in degrees")
	flagStripWidth   = flag.Float64("strip-width", 0, "Wall strip width in pixels")
	flagMinimapScale = flag.Float64("minimap-scale", 0, "Minimap scale factor")
	flagNoMinimap    = flag.Bool("no-minimap", false, "Hide the minimap")
	flagLogFile      = flag.String("log-file", "", "Write logs to this file")
	flagSaveConfig   = flag.String("save-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the --save-config target, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagScale > 0 {
		cfg.Window.Scale = *flagScale
	}
	if *flagFOV > 0 {
		cfg.Render.FOVDeg = *flagFOV
	}
	if *flagStripWidth > 0 {
		cfg.Render.StripWidth = *flagStripWidth
	}
	if *flagMinimapScale > 0 {
		cfg.Render.MinimapScale = *flagMinimapScale
	}
	if *flagNoMinimap {
		cfg.Render.ShowMinimap = false
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
