package app

import (
	"errors"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/config"
	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/logger"
	"github.com/Faultbox/learngl/shaders"
)

// Env is what a lesson gets during Setup.
type Env struct {
	Ctx      shader.Context
	Renderer *renderer.Renderer

	cfg      config.ShadersConfig
	programs []*shader.Program
	paths    []string
	failed   bool
}

func newEnv(ctx shader.Context, r *renderer.Renderer, cfg config.ShadersConfig) *Env {
	return &Env{Ctx: ctx, Renderer: r, cfg: cfg}
}

// Program builds a program from two shader file names, resolved against the
// configured shader directory or the embedded sources.
//
// In permissive mode build failures are logged and the program is returned
// anyway, so the lesson keeps running. In strict mode they are returned.
func (e *Env) Program(vertex, fragment string) (*shader.Program, error) {
	opts := []shader.Option{}
	if e.cfg.Strict {
		opts = append(opts, shader.WithMode(shader.Strict))
	}

	vertPath, fragPath := vertex, fragment
	if e.cfg.Embedded {
		opts = append(opts, shader.WithFS(shaders.FS))
	} else {
		vertPath = filepath.Join(e.cfg.Dir, vertex)
		fragPath = filepath.Join(e.cfg.Dir, fragment)
	}

	p, err := shader.New(e.Ctx, vertPath, fragPath, opts...)
	if err != nil {
		var diags shader.Diagnostics
		if e.cfg.Strict || !errors.As(err, &diags) {
			return nil, err
		}
		e.failed = true
		logger.Warn("continuing with unlinked shader program",
			zap.String("vertex", vertPath),
			zap.String("fragment", fragPath),
			zap.Int("diagnostics", len(diags)),
		)
	}

	e.programs = append(e.programs, p)
	if !e.cfg.Embedded {
		e.paths = append(e.paths, vertPath, fragPath)
	}
	return p, nil
}

// reload rebuilds every program. Failures keep the previous build and are
// reported by failed until the next reload.
func (e *Env) reload() {
	e.failed = false
	for _, p := range e.programs {
		if err := p.Reload(); err != nil {
			e.failed = true
			logger.Warn("shader reload failed, keeping previous program", zap.Uint32("program", p.ID()))
		}
	}
}

func (e *Env) close() {
	for _, p := range e.programs {
		p.Delete()
	}
	e.programs = nil
}
