// hellouniforms draws a triangle whose green channel pulses over time.
package main

import (
	"os"

	"github.com/Faultbox/learngl/internal/app"
	"github.com/Faultbox/learngl/internal/lessons"
)

func main() {
	os.Exit(app.Main(func([]string) (app.Lesson, error) {
		return &lessons.Uniforms{}, nil
	}))
}
