package lessons

import (
	"github.com/Faultbox/learngl/internal/app"
	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/shaders"
)

var positionColor = renderer.Layout{
	{Location: 0, Components: 3},
	{Location: 1, Components: 3},
}

var coloredTriangleVertices = []float32{
	// position      // colour
	0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom right
	-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom left
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // top
}

// Shaders draws a triangle with colours interpolated between its vertices.
type Shaders struct {
	program *shader.Program
	mesh    *renderer.Mesh
}

func (l *Shaders) Name() string { return "shaders" }

func (l *Shaders) Setup(env *app.Env) error {
	var err error
	if l.program, err = env.Program(shaders.HelloShadersVertex, shaders.HelloShadersFragment); err != nil {
		return err
	}
	l.mesh, err = renderer.NewMesh(coloredTriangleVertices, nil, positionColor)
	return err
}

func (l *Shaders) Draw(float64) {
	l.program.Use()
	l.mesh.Draw()
}

func (l *Shaders) Close() {
	if l.mesh != nil {
		l.mesh.Delete()
	}
}
