package shader

import (
	"io/fs"

	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/logger"
)

// Mode controls what New does when a build reports diagnostics.
type Mode int

const (
	// Permissive logs every failure and still returns the program.
	Permissive Mode = iota
	// Strict deletes the program and returns only the diagnostics.
	Strict
)

type options struct {
	mode Mode
	fsys fs.FS
}

// Option configures New.
type Option func(*options)

// WithMode selects Permissive or Strict construction.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithFS reads sources from fsys instead of the local disk.
func WithFS(fsys fs.FS) Option {
	return func(o *options) { o.fsys = fsys }
}

// Program is a linked vertex+fragment pipeline.
type Program struct {
	ctx          Context
	id           uint32
	vertexPath   string
	fragmentPath string
	opts         options

	linked bool
	diags  Diagnostics
}

// New reads, compiles and links the two stages into a program. The stage
// objects are deleted once linking has been attempted.
//
// In Permissive mode a program is always returned. If anything failed, the
// error is a Diagnostics value and the program may not render. In Strict mode
// any failure returns a nil program.
func New(ctx Context, vertexPath, fragmentPath string, opts ...Option) (*Program, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	p := &Program{
		ctx:          ctx,
		vertexPath:   vertexPath,
		fragmentPath: fragmentPath,
		opts:         o,
	}

	id, linked, diags := p.build()
	if len(diags) > 0 && o.mode == Strict {
		ctx.DeleteProgram(id)
		return nil, diags
	}

	p.id, p.linked, p.diags = id, linked, diags
	if len(diags) > 0 {
		return p, diags
	}

	logger.Debug("shader program linked",
		zap.Uint32("program", id),
		zap.String("vertex", vertexPath),
		zap.String("fragment", fragmentPath),
	)
	return p, nil
}

// build runs read, compile and link against a fresh program object.
func (p *Program) build() (uint32, bool, Diagnostics) {
	var diags Diagnostics

	vert := p.ctx.CreateShader(StageVertex)
	frag := p.ctx.CreateShader(StageFragment)
	AttachSource(p.ctx, vert, p.source(StageVertex, p.vertexPath, &diags))
	AttachSource(p.ctx, frag, p.source(StageFragment, p.fragmentPath, &diags))

	p.compile(vert, StageVertex, p.vertexPath, &diags)
	p.compile(frag, StageFragment, p.fragmentPath, &diags)

	program := p.ctx.CreateProgram()
	p.ctx.AttachShader(program, vert)
	p.ctx.AttachShader(program, frag)
	p.ctx.LinkProgram(program)

	linked := p.ctx.ProgramLinked(program)
	if !linked {
		diags = append(diags, report(Diagnostic{
			Stage: StageProgram,
			Kind:  KindLink,
			Log:   truncateLog(p.ctx.ProgramInfoLog(program, InfoLogSize)),
		}))
	}

	p.ctx.DeleteShader(vert)
	p.ctx.DeleteShader(frag)

	return program, linked, diags
}

// source reads a stage file; an unreadable file becomes an empty source.
func (p *Program) source(stage Stage, path string, diags *Diagnostics) string {
	src, err := readSource(p.opts.fsys, path)
	if err != nil {
		*diags = append(*diags, report(Diagnostic{
			Stage: stage,
			Kind:  KindRead,
			Path:  path,
			Log:   err.Error(),
		}))
		return ""
	}
	return src
}

func (p *Program) compile(shader uint32, stage Stage, path string, diags *Diagnostics) {
	p.ctx.CompileShader(shader)
	if p.ctx.ShaderCompiled(shader) {
		return
	}
	*diags = append(*diags, report(Diagnostic{
		Stage: stage,
		Kind:  KindCompile,
		Path:  path,
		Log:   truncateLog(p.ctx.ShaderInfoLog(shader, InfoLogSize)),
	}))
}

// report logs d and hands it back for collection. The message is the tag
// followed by the driver's log text, unescaped.
func report(d Diagnostic) Diagnostic {
	var fields []zap.Field
	if d.Path != "" {
		fields = append(fields, zap.String("path", d.Path))
	}
	logger.Error(d.Error(), fields...)
	return d
}

// Reload rebuilds the program from its source paths. On success the old
// program is deleted and replaced. On failure the old program stays in use
// and the new diagnostics are returned. Uniform handles taken before a
// successful reload are stale.
func (p *Program) Reload() error {
	id, linked, diags := p.build()
	if len(diags) > 0 {
		p.ctx.DeleteProgram(id)
		return diags
	}

	if p.id != 0 {
		p.ctx.DeleteProgram(p.id)
	}
	p.id, p.linked, p.diags = id, linked, nil

	logger.Info("shader program reloaded",
		zap.Uint32("program", id),
		zap.String("vertex", p.vertexPath),
		zap.String("fragment", p.fragmentPath),
	)
	return nil
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Linked reports whether the last successful build linked.
func (p *Program) Linked() bool {
	return p.linked
}

// Diagnostics returns the failures recorded when the program was built.
func (p *Program) Diagnostics() Diagnostics {
	return p.diags
}

// Use makes the program current. Nothing guards against a program that
// failed to link; the driver decides what happens.
func (p *Program) Use() {
	p.ctx.UseProgram(p.id)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		p.ctx.DeleteProgram(p.id)
		p.id = 0
		p.linked = false
	}
}

// SetBool writes v to the named uniform as an int.
// The location is looked up on every call; unknown names are ignored.
func (p *Program) SetBool(name string, v bool) {
	p.Uniform(name).SetBool(v)
}

// SetInt writes v to the named uniform.
func (p *Program) SetInt(name string, v int32) {
	p.Uniform(name).SetInt(v)
}

// SetFloat writes v to the named uniform.
func (p *Program) SetFloat(name string, v float32) {
	p.Uniform(name).SetFloat(v)
}
