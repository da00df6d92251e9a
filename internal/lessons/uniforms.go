package lessons

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/learngl/internal/app"
	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/shaders"
)

var uniformTriangleVertices = []float32{
	0.5, -0.5, 0.0,
	-0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

// PulseColor is the u_color value at t seconds: green oscillating in [0, 1].
func PulseColor(t float64) mgl32.Vec4 {
	green := float32(math.Sin(t)/2 + 0.5)
	return mgl32.Vec4{0, green, 0, 0}
}

// Uniforms draws a triangle whose colour is set from the CPU every frame.
type Uniforms struct {
	program *shader.Program
	mesh    *renderer.Mesh
}

func (l *Uniforms) Name() string { return "uniforms" }

func (l *Uniforms) Setup(env *app.Env) error {
	var err error
	if l.program, err = env.Program(shaders.HelloUniformsVertex, shaders.HelloUniformsFragment); err != nil {
		return err
	}
	l.mesh, err = renderer.NewMesh(uniformTriangleVertices, nil, positionOnly)
	return err
}

// Draw looks u_color up by name each frame, so hot reloads need no rebinding.
func (l *Uniforms) Draw(t float64) {
	l.program.Use()
	l.program.SetVec4("u_color", PulseColor(t))
	l.mesh.Draw()
}

func (l *Uniforms) Close() {
	if l.mesh != nil {
		l.mesh.Delete()
	}
}
