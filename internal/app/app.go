// Package app runs a lesson: window, GL state, shader programs and the frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/config"
	"github.com/Faultbox/learngl/internal/engine/debug"
	"github.com/Faultbox/learngl/internal/engine/framebuffer"
	"github.com/Faultbox/learngl/internal/engine/input"
	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/engine/window"
	"github.com/Faultbox/learngl/internal/logger"
)

// Lesson is one tutorial program.
type Lesson interface {
	Name() string
	// Setup creates programs and geometry. The GL context is current.
	Setup(env *Env) error
	// Draw issues the lesson's draw calls; t is seconds since start.
	Draw(t float64)
	// Close frees geometry. Programs are freed by the App.
	Close()
}

// App owns the window and everything created against its GL context.
type App struct {
	cfg      *config.Config
	lesson   Lesson
	window   window.Window
	renderer *renderer.Renderer
	input    *input.Input
	env      *Env
	watcher  *shader.Watcher
	shots    *debug.ScreenshotCapture
	clock    clock
}

// New creates the window and GL state, then sets the lesson up.
func New(cfg *config.Config, lesson Lesson) (*App, error) {
	logger.Info("initializing lesson",
		zap.String("lesson", lesson.Name()),
		zap.String("backend", cfg.Window.Backend),
	)

	a := &App{
		cfg:    cfg,
		lesson: lesson,
		input:  input.New(),
		shots:  debug.NewScreenshotCapture("screenshots", lesson.Name()),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Hidden:     cfg.Render.Screenshot != "",
		Backend:    cfg.Window.Backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after window, since the OpenGL context must exist.
	width, height := a.window.GetSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Render.ClearColor,
		Wireframe:  cfg.Render.Wireframe,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.env = newEnv(shader.GL{}, a.renderer, cfg.Shaders)
	if err := lesson.Setup(a.env); err != nil {
		a.Close()
		return nil, fmt.Errorf("setting up %s: %w", lesson.Name(), err)
	}

	if cfg.Shaders.Watch && len(a.env.paths) > 0 {
		a.watcher, err = shader.Watch(a.env.paths...)
		if err != nil {
			logger.Warn("shader hot reload disabled", zap.Error(err))
		}
	}

	logger.Info("lesson ready", zap.String("lesson", lesson.Name()))
	return a, nil
}

// Run loops until the window closes or escape is pressed. With a screenshot
// path configured it renders a single offscreen frame, saves it and returns.
//
// Keys: Space pauses lesson time, W toggles wireframe, R reloads shaders,
// F12 saves a screenshot.
func (a *App) Run() error {
	if path := a.cfg.Render.Screenshot; path != "" {
		return a.captureFrame(path)
	}

	frameCount := 0
	fpsTimer := time.Now()

	a.updateTitle()
	logger.Info("starting render loop")

	for {
		a.input.Reset()
		a.window.PollEvents(a.input)
		if a.input.QuitRequested() || a.input.IsKeyPressed(input.KeyEscape) {
			return nil
		}

		if w, h, ok := a.input.LastResize(); ok {
			a.renderer.Resize(w, h)
		}
		if a.input.IsKeyPressed(input.KeyW) {
			a.renderer.SetWireframe(!a.renderer.Wireframe())
		}
		if a.input.IsKeyPressed(input.KeySpace) {
			a.clock.toggle(a.window.Time())
			a.updateTitle()
		}
		if a.input.IsKeyPressed(input.KeyR) || a.sourcesChanged() {
			a.env.reload()
			a.updateTitle()
		}

		a.renderer.Begin()
		a.lesson.Draw(a.clock.now(a.window.Time()))
		a.renderer.End()

		if a.input.IsKeyPressed(input.KeyF12) {
			a.screenshot()
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

// screenshot saves the back buffer under the screenshots directory.
func (a *App) screenshot() {
	pixels, w, h, err := a.renderer.ReadPixels()
	if err != nil {
		logger.Warn("screenshot skipped", zap.Error(err))
		return
	}
	path, err := a.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// updateTitle shows the lesson name and its paused and shader-error state.
func (a *App) updateTitle() {
	a.window.SetTitle(windowTitle(a.cfg.Window.Title, a.lesson.Name(), a.clock.paused, a.env.failed))
}

// captureFrame draws one frame into an offscreen target and saves it.
func (a *App) captureFrame(path string) error {
	w, h := a.renderer.Size()
	target, err := framebuffer.New(w, h)
	if err != nil {
		return fmt.Errorf("creating capture target: %w", err)
	}
	defer target.Destroy()

	restore := target.Bind()
	a.renderer.Begin()
	a.lesson.Draw(a.window.Time())
	a.renderer.End()
	pixels := target.ReadPixels()
	restore()

	fw, fh := target.Size()
	if err := debug.SavePixels(path, pixels, fw, fh); err != nil {
		return fmt.Errorf("saving screenshot: %w", err)
	}
	logger.Info("screenshot saved", zap.String("path", path), zap.Int("width", fw), zap.Int("height", fh))
	return nil
}

// sourcesChanged drains the watcher without blocking.
func (a *App) sourcesChanged() bool {
	if a.watcher == nil {
		return false
	}
	select {
	case <-a.watcher.Changed():
		return true
	default:
		return false
	}
}

// Close releases the lesson, programs, renderer and window, in that order.
func (a *App) Close() {
	logger.Info("closing lesson", zap.String("lesson", a.lesson.Name()))

	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	a.lesson.Close()
	if a.env != nil {
		a.env.close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
