package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// GL implements Context with go-gl. gl.Init must have been called on the
// thread that owns the current context.
type GL struct{}

var _ Context = GL{}

func (GL) CreateShader(stage Stage) uint32 {
	switch stage {
	case StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

// ShaderSource passes the source with an explicit length, so it does not need
// to be null-terminated.
func (GL) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	defer free()
	length := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &length)
}

func (GL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (GL) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (GL) ShaderInfoLog(shader uint32, bufSize int32) string {
	buf := make([]byte, bufSize)
	var n int32
	gl.GetShaderInfoLog(shader, bufSize, &n, &buf[0])
	return string(buf[:n])
}

func (GL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (GL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (GL) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (GL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (GL) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (GL) ProgramInfoLog(program uint32, bufSize int32) string {
	buf := make([]byte, bufSize)
	var n int32
	gl.GetProgramInfoLog(program, bufSize, &n, &buf[0])
	return string(buf[:n])
}

func (GL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (GL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (GL) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (GL) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (GL) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (GL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}
