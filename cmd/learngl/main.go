// learngl runs any lesson by name.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/learngl/internal/app"
	"github.com/Faultbox/learngl/internal/lessons"
)

func main() {
	os.Exit(app.Main(func(args []string) (app.Lesson, error) {
		if len(args) == 0 {
			printUsage()
			return nil, app.ErrUsage
		}
		if args[0] == "rectangle" {
			l, err := lessons.NewRectangle(args[1:])
			if err != nil {
				fmt.Fprintln(os.Stderr, lessons.RectangleUsage)
				return nil, app.ErrUsage
			}
			return l, nil
		}
		return lessons.Lookup(args[0])
	}))
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `learngl - OpenGL lessons

Usage:
  learngl [flags] <lesson> [args]

Lessons:
  %s
  rectangle -l|-f

Flags:
  -backend sdl|glfw  -strict  -watch  -embedded  -screenshot out.png
`, strings.Join(lessons.Names(), "\n  "))
}
