package shader

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform is a uniform location resolved once for reuse across frames.
// Writes go to whichever program is current.
type Uniform struct {
	ctx      Context
	name     string
	location int32
}

// Uniform resolves name in the program. The result is invalid (and its
// setters do nothing) if the program has no active uniform by that name.
func (p *Program) Uniform(name string) Uniform {
	return Uniform{
		ctx:      p.ctx,
		name:     name,
		location: p.ctx.UniformLocation(p.id, name),
	}
}

// SetVec4 writes v to the named uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	p.Uniform(name).SetVec4(v)
}

// Name returns the uniform name.
func (u Uniform) Name() string { return u.name }

// Location returns the GL location, -1 when not found.
func (u Uniform) Location() int32 { return u.location }

// Valid reports whether the name resolved to an active uniform.
func (u Uniform) Valid() bool { return u.location >= 0 }

func (u Uniform) SetBool(v bool) {
	var i int32
	if v {
		i = 1
	}
	u.SetInt(i)
}

func (u Uniform) SetInt(v int32) {
	if !u.Valid() {
		return
	}
	u.ctx.Uniform1i(u.location, v)
}

func (u Uniform) SetFloat(v float32) {
	if !u.Valid() {
		return
	}
	u.ctx.Uniform1f(u.location, v)
}

func (u Uniform) SetVec4(v mgl32.Vec4) {
	if !u.Valid() {
		return
	}
	u.ctx.Uniform4f(u.location, v[0], v[1], v[2], v[3])
}
