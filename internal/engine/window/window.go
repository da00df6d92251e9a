// Package window creates the OS window and its OpenGL context.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/learngl/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// OpenGL context version requested from every backend. 4.1 core is the
// newest profile macOS offers.
const (
	GLMajor = 4
	GLMinor = 1
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	// Hidden creates the context without showing a window, for offscreen checks.
	Hidden  bool
	Backend string
}

// Window is an OS window with a current OpenGL context.
type Window interface {
	// PollEvents pushes pending OS events into in.
	PollEvents(in *input.Input)
	SwapBuffers()
	// GetSize returns the drawable size in pixels.
	GetSize() (int, int)
	// Time returns seconds since the window was created.
	Time() float64
	SetTitle(title string)
	Close()
}

// New creates a window using cfg.Backend ("sdl" or "glfw").
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case "", "sdl":
		w, err := newSDL(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case "glfw":
		w, err := newGLFW(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
