package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagBackend    = flag.String("backend", "", "Window backend: sdl or glfw")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagShaders    = flag.String("shaders", "", "Directory holding shader sources")
	flagStrict     = flag.Bool("strict", false, "Exit on shader compile or link failure")
	flagWatch      = flag.Bool("watch", false, "Reload shaders when their sources change")
	flagEmbedded   = flag.Bool("embedded", false, "Use shader sources built into the binary")
	flagScreenshot = flag.String("screenshot", "", "Render one frame to this .png or .bmp and exit")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SavePath returns the path given via --save-config, or "".
func SavePath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagBackend != "" {
		cfg.Window.Backend = *flagBackend
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagShaders != "" {
		cfg.Shaders.Dir = *flagShaders
	}
	if *flagStrict {
		cfg.Shaders.Strict = true
	}
	if *flagWatch {
		cfg.Shaders.Watch = true
	}
	if *flagEmbedded {
		cfg.Shaders.Embedded = true
	}
	if *flagScreenshot != "" {
		cfg.Render.Screenshot = *flagScreenshot
	}
}
