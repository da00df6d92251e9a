package lessons

import (
	"errors"

	"github.com/Faultbox/learngl/internal/app"
	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/shaders"
)

// RectangleUsage is printed when the polygon-mode argument is missing or wrong.
const RectangleUsage = `Usage:
   hellorectangle <arg>
       -l - wireframe mode
       -f - fill mode`

// ErrRectangleUsage reports a bad polygon-mode argument.
var ErrRectangleUsage = errors.New("expected exactly one of -l or -f")

var rectangleVertices = []float32{
	0.5, 0.5, 0.0,
	0.5, -0.5, 0.0,
	-0.5, -0.5, 0.0,
	-0.5, 0.5, 0.0,
}

var rectangleIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

// ParseRectangleMode turns the lesson's single argument into a wireframe flag.
func ParseRectangleMode(args []string) (wireframe bool, err error) {
	if len(args) != 1 {
		return false, ErrRectangleUsage
	}
	switch args[0] {
	case "-l":
		return true, nil
	case "-f":
		return false, nil
	default:
		return false, ErrRectangleUsage
	}
}

// Rectangle draws an indexed quad, filled or as wireframe.
type Rectangle struct {
	Wireframe bool

	program *shader.Program
	mesh    *renderer.Mesh
}

// NewRectangle builds the lesson from its command-line arguments.
func NewRectangle(args []string) (*Rectangle, error) {
	wireframe, err := ParseRectangleMode(args)
	if err != nil {
		return nil, err
	}
	return &Rectangle{Wireframe: wireframe}, nil
}

func (l *Rectangle) Name() string { return "rectangle" }

func (l *Rectangle) Setup(env *app.Env) error {
	var err error
	if l.program, err = env.Program(shaders.BasicVertex, shaders.OrangeFragment); err != nil {
		return err
	}
	if l.mesh, err = renderer.NewMesh(rectangleVertices, rectangleIndices, positionOnly); err != nil {
		return err
	}
	env.Renderer.SetWireframe(l.Wireframe)
	return nil
}

func (l *Rectangle) Draw(float64) {
	l.program.Use()
	l.mesh.Draw()
}

func (l *Rectangle) Close() {
	if l.mesh != nil {
		l.mesh.Delete()
	}
}
