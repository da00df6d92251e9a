// Package config handles lesson configuration loading and management.
package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds all lesson settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Shaders ShadersConfig `yaml:"shaders"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Backend    string `yaml:"backend"` // sdl or glfw
}

// ShadersConfig controls where shader sources come from and how failures are treated.
type ShadersConfig struct {
	Dir      string `yaml:"dir"`
	Strict   bool   `yaml:"strict"`   // abort on any compile/link diagnostic
	Watch    bool   `yaml:"watch"`    // rebuild programs when sources change
	Embedded bool   `yaml:"embedded"` // use the sources compiled into the binary
}

// RenderConfig holds per-frame render settings.
type RenderConfig struct {
	ClearColor mgl32.Vec4 `yaml:"clear_color"`
	Wireframe  bool       `yaml:"wireframe"`
	// Screenshot, when set, renders one frame, saves it there and exits.
	Screenshot string `yaml:"screenshot"`
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
			Title:      "LearnOpenGL",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Backend:    BackendSDL,
		},
		Shaders: ShadersConfig{
			Dir: "shaders",
		},
		Render: RenderConfig{
			ClearColor: mgl32.Vec4{0.2, 0.3, 0.3, 1.0},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings no window can be created with.
func (c *Config) Validate() error {
	switch c.Window.Backend {
	case BackendSDL, BackendGLFW:
	default:
		return fmt.Errorf("unknown window backend %q (want %s or %s)", c.Window.Backend, BackendSDL, BackendGLFW)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
