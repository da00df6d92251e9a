package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/engine/input"
	"github.com/Faultbox/learngl/internal/logger"
)

// GLFWWindow wraps a GLFW window and its OpenGL context.
type GLFWWindow struct {
	config Config
	w      *glfw.Window
	// in receives events from GLFW callbacks during PollEvents.
	in *input.Input
}

func newGLFW(cfg Config) (*GLFWWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwInit failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwCreateWindow failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	g := &GLFWWindow{config: cfg, w: win}

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		g.push(input.Event{Type: input.EventWindowResize, Width: width, Height: height})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if ev, ok := glfwKeyEvent(key, action); ok {
			g.push(ev)
		}
	})

	glfw.SetTime(0)
	logger.Info("window created",
		zap.String("backend", "glfw"),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return g, nil
}

func (g *GLFWWindow) push(e input.Event) {
	if g.in != nil {
		g.in.Push(e)
	}
}

// PollEvents runs GLFW callbacks, which push into in.
func (g *GLFWWindow) PollEvents(in *input.Input) {
	g.in = in
	glfw.PollEvents()
	if g.w.ShouldClose() {
		in.Push(input.Event{Type: input.EventQuit})
	}
	g.in = nil
}

// glfwKeyEvent converts a key callback. glfw.Repeat is dropped, matching
// the SDL backend.
func glfwKeyEvent(key glfw.Key, action glfw.Action) (input.Event, bool) {
	switch action {
	case glfw.Press:
		return input.Event{Type: input.EventKeyDown, Key: glfwKey(key)}, true
	case glfw.Release:
		return input.Event{Type: input.EventKeyUp, Key: glfwKey(key)}, true
	default:
		return input.Event{}, false
	}
}

func glfwKey(k glfw.Key) input.Key {
	switch k {
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeySpace:
		return input.KeySpace
	case glfw.KeyR:
		return input.KeyR
	case glfw.KeyW:
		return input.KeyW
	case glfw.KeyF12:
		return input.KeyF12
	default:
		return input.KeyUnknown
	}
}

func (g *GLFWWindow) SwapBuffers() {
	g.w.SwapBuffers()
}

// GetSize returns the framebuffer size in pixels.
func (g *GLFWWindow) GetSize() (int, int) {
	return g.w.GetFramebufferSize()
}

func (g *GLFWWindow) Time() float64 {
	return glfw.GetTime()
}

func (g *GLFWWindow) SetTitle(title string) {
	g.w.SetTitle(title)
}

// Close destroys the window and terminates GLFW.
func (g *GLFWWindow) Close() {
	logger.Info("closing window")
	g.w.Destroy()
	glfw.Terminate()
}
