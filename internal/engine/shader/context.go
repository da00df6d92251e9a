// Package shader loads GLSL sources and builds linked vertex/fragment programs.
//
// Every GL call goes through a Context, which stands for the GL context current
// on the calling thread. Programs keep the Context they were built with, and all
// of their methods must run on that thread.
package shader

// InfoLogSize is the buffer size used when fetching compile and link logs.
// Logs are truncated to InfoLogSize-1 characters.
const InfoLogSize = 512

// Stage identifies a pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	// StageProgram tags diagnostics that belong to the linked program.
	StageProgram
)

// String returns the diagnostic tag for the stage.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "VERTEX"
	case StageFragment:
		return "FRAGMENT"
	case StageProgram:
		return "PROGRAM"
	default:
		return "UNKNOWN"
	}
}

// Context is the subset of the OpenGL API used to build and drive programs.
type Context interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32, bufSize int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32, bufSize int32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
}
