// hellorectangle draws an indexed quad.
//
// Usage:
//
//	hellorectangle [flags] -l   wireframe
//	hellorectangle [flags] -f   fill
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/learngl/internal/app"
	"github.com/Faultbox/learngl/internal/lessons"
)

// -l and -f are registered as flags so the standard parser accepts them.
var (
	flagLine = flag.Bool("l", false, "Wireframe mode")
	flagFill = flag.Bool("f", false, "Fill mode")
)

func main() {
	os.Exit(app.Main(func(args []string) (app.Lesson, error) {
		var mode []string
		if *flagLine {
			mode = append(mode, "-l")
		}
		if *flagFill {
			mode = append(mode, "-f")
		}
		l, err := lessons.NewRectangle(append(mode, args...))
		if err != nil {
			fmt.Fprintln(os.Stderr, lessons.RectangleUsage)
			return nil, app.ErrUsage
		}
		return l, nil
	}))
}
