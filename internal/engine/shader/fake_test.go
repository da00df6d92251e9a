package shader

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/learngl/internal/logger"
)

type fakeShader struct {
	stage    Stage
	source   string
	compiled bool
	deleted  bool
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	deleted  bool
}

type uniformWrite struct {
	location int32
	values   []float32
}

// fakeContext is a Context whose "compiler" accepts any source that
// declares main and whose linker needs one compiled stage of each kind.
type fakeContext struct {
	nextID   uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	current  uint32

	// uniforms maps active uniform names to locations in every linked program.
	uniforms map[string]int32
	lookups  map[string]int
	writes   []uniformWrite

	// compileLog is returned for failed compiles when set.
	compileLog string
}

var _ Context = (*fakeContext)(nil)

func newFakeContext() *fakeContext {
	return &fakeContext{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
		uniforms: map[string]int32{"u_color": 0, "u_time": 1, "u_enabled": 2},
		lookups:  make(map[string]int),
	}
}

func (c *fakeContext) id() uint32 {
	c.nextID++
	return c.nextID
}

func (c *fakeContext) CreateShader(stage Stage) uint32 {
	id := c.id()
	c.shaders[id] = &fakeShader{stage: stage}
	return id
}

func (c *fakeContext) ShaderSource(shader uint32, source string) {
	c.shaders[shader].source = source
}

func (c *fakeContext) CompileShader(shader uint32) {
	s := c.shaders[shader]
	s.compiled = strings.Contains(s.source, "void main()")
}

func (c *fakeContext) ShaderCompiled(shader uint32) bool {
	return c.shaders[shader].compiled
}

func (c *fakeContext) ShaderInfoLog(shader uint32, bufSize int32) string {
	if c.shaders[shader].compiled {
		return ""
	}
	log := c.compileLog
	if log == "" {
		log = "0:4(6): error: main() not defined"
	}
	return clip(log, bufSize)
}

func (c *fakeContext) DeleteShader(shader uint32) {
	c.shaders[shader].deleted = true
}

func (c *fakeContext) CreateProgram() uint32 {
	id := c.id()
	c.programs[id] = &fakeProgram{}
	return id
}

func (c *fakeContext) AttachShader(program, shader uint32) {
	p := c.programs[program]
	p.attached = append(p.attached, shader)
}

func (c *fakeContext) LinkProgram(program uint32) {
	p := c.programs[program]
	var vert, frag bool
	for _, id := range p.attached {
		s := c.shaders[id]
		if !s.compiled {
			p.linked = false
			return
		}
		switch s.stage {
		case StageVertex:
			vert = true
		case StageFragment:
			frag = true
		}
	}
	p.linked = vert && frag
}

func (c *fakeContext) ProgramLinked(program uint32) bool {
	return c.programs[program].linked
}

func (c *fakeContext) ProgramInfoLog(program uint32, bufSize int32) string {
	if c.programs[program].linked {
		return ""
	}
	return clip("error: linking with uncompiled/unspecialized shader", bufSize)
}

func (c *fakeContext) UseProgram(program uint32) {
	c.current = program
}

func (c *fakeContext) DeleteProgram(program uint32) {
	if p, ok := c.programs[program]; ok {
		p.deleted = true
	}
}

func (c *fakeContext) UniformLocation(program uint32, name string) int32 {
	c.lookups[name]++
	p, ok := c.programs[program]
	if !ok || !p.linked || p.deleted {
		return -1
	}
	if loc, ok := c.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (c *fakeContext) Uniform1i(location int32, v int32) {
	c.writes = append(c.writes, uniformWrite{location, []float32{float32(v)}})
}

func (c *fakeContext) Uniform1f(location int32, v float32) {
	c.writes = append(c.writes, uniformWrite{location, []float32{v}})
}

func (c *fakeContext) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	c.writes = append(c.writes, uniformWrite{location, []float32{v0, v1, v2, v3}})
}

// liveShaders counts stage objects that were never deleted.
func (c *fakeContext) liveShaders() int {
	n := 0
	for _, s := range c.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

// clip mimics GL writing at most bufSize-1 characters plus a terminator.
func clip(log string, bufSize int32) string {
	if int32(len(log)) > bufSize-1 {
		return log[:bufSize-1]
	}
	return log
}

func captureLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	t.Cleanup(logger.Replace(zap.New(core)))
	return logs
}
