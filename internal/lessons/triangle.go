package lessons

import (
	"github.com/Faultbox/learngl/internal/app"
	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/shaders"
)

var positionOnly = renderer.Layout{{Location: 0, Components: 3}}

var triangleVertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

// Triangle draws a single orange triangle.
type Triangle struct {
	program *shader.Program
	mesh    *renderer.Mesh
}

func (l *Triangle) Name() string { return "triangle" }

func (l *Triangle) Setup(env *app.Env) error {
	var err error
	if l.program, err = env.Program(shaders.BasicVertex, shaders.OrangeFragment); err != nil {
		return err
	}
	l.mesh, err = renderer.NewMesh(triangleVertices, nil, positionOnly)
	return err
}

func (l *Triangle) Draw(float64) {
	l.program.Use()
	l.mesh.Draw()
}

func (l *Triangle) Close() {
	if l.mesh != nil {
		l.mesh.Delete()
	}
}
