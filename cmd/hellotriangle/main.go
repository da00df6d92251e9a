// hellotriangle draws one orange triangle.
package main

import (
	"os"

	"github.com/Faultbox/learngl/internal/app"
	"github.com/Faultbox/learngl/internal/lessons"
)

func main() {
	os.Exit(app.Main(func([]string) (app.Lesson, error) {
		return &lessons.Triangle{}, nil
	}))
}
