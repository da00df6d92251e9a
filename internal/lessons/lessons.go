// Package lessons contains the tutorial programs run by the app package.
package lessons

import (
	"fmt"
	"sort"

	"github.com/Faultbox/learngl/internal/app"
)

// registry maps lesson names to constructors. Rectangle is built by
// NewRectangle because it needs its polygon-mode argument.
var registry = map[string]func() app.Lesson{
	"triangle": func() app.Lesson { return &Triangle{} },
	"shaders":  func() app.Lesson { return &Shaders{} },
	"uniforms": func() app.Lesson { return &Uniforms{} },
}

// Names returns the lessons that take no arguments, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a new lesson by name.
func Lookup(name string) (app.Lesson, error) {
	newLesson, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown lesson %q", name)
	}
	return newLesson(), nil
}
