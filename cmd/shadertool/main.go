// shadertool is a CLI utility for checking GLSL shader pairs against the local driver.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sqweek/dialog"

	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/engine/window"
	"github.com/Faultbox/learngl/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := logger.Init("warn", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := os.Args[1]
	args := os.Args[2:]

	var code int
	switch command {
	case "check":
		code = cmdCheck(args)
	case "uniforms":
		code = cmdUniforms(args)
	case "cat":
		code = cmdCat(args)
	case "pick":
		code = cmdPick(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		code = 1
	}
	logger.Sync()
	os.Exit(code)
}

func printUsage() {
	fmt.Println(`shadertool - GLSL shader pair checker

Usage:
  shadertool <command> [options]

Commands:
  check [-strict] [-backend sdl|glfw] <vert> <frag>    Compile and link, print diagnostics
  uniforms <vert> <frag> <name>...                     Print uniform locations
  cat <file>                                           Print a shader source as loaded
  pick [-strict]                                       Choose both files in a dialog, then check

Examples:
  shadertool check shaders/HelloUniforms.vert shaders/HelloUniforms.frag
  shadertool check -strict shaders/BasicVertexShader.vert broken.frag
  shadertool uniforms shaders/HelloUniforms.vert shaders/HelloUniforms.frag u_color`)
}

// withContext runs fn with a hidden window's GL context current.
func withContext(backend string, fn func(ctx shader.Context) int) int {
	win, err := window.New(window.Config{
		Title:   "shadertool",
		Width:   64,
		Height:  64,
		Hidden:  true,
		Backend: backend,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer win.Close()

	r, err := renderer.New(renderer.Config{Width: 64, Height: 64})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer r.Close()

	return fn(shader.GL{})
}

func cmdCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	strict := fs.Bool("strict", false, "Fail on any diagnostic")
	backend := fs.String("backend", "sdl", "Window backend: sdl or glfw")
	fs.Parse(args)

	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: shadertool check [-strict] <vert> <frag>")
		return 1
	}
	return check(fs.Arg(0), fs.Arg(1), *strict, *backend)
}

func check(vert, frag string, strict bool, backend string) int {
	mode := shader.Permissive
	if strict {
		mode = shader.Strict
	}

	return withContext(backend, func(ctx shader.Context) int {
		p, err := shader.New(ctx, vert, frag, shader.WithMode(mode))
		if err != nil {
			diags, _ := err.(shader.Diagnostics)
			fmt.Printf("%d diagnostic(s)\n", len(diags))
		}
		if p == nil {
			fmt.Println("FAILED")
			return 1
		}
		defer p.Delete()

		fmt.Printf("program %d linked: %v\n", p.ID(), p.Linked())
		if err != nil {
			return 1
		}
		return 0
	})
}

func cmdUniforms(args []string) int {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: shadertool uniforms <vert> <frag> <name>...")
		return 1
	}

	return withContext("sdl", func(ctx shader.Context) int {
		p, err := shader.New(ctx, args[0], args[1], shader.WithMode(shader.Strict))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: program did not build\n")
			return 1
		}
		defer p.Delete()

		for _, name := range args[2:] {
			u := p.Uniform(name)
			if u.Valid() {
				fmt.Printf("%-24s %d\n", name, u.Location())
			} else {
				fmt.Printf("%-24s (not active)\n", name)
			}
		}
		return 0
	})
}

func cmdCat(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: shadertool cat <file>")
		return 1
	}
	if err := catSource(os.Stdout, args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// catSource writes the file at path to w exactly as the shader loader reads it.
func catSource(w io.Writer, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		shader.ReadSource(path) // logs the diagnostic
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	_, err = io.WriteString(w, shader.ReadSource(path))
	return err
}

func cmdPick(args []string) int {
	fs := flag.NewFlagSet("pick", flag.ExitOnError)
	strict := fs.Bool("strict", false, "Fail on any diagnostic")
	fs.Parse(args)

	vert, err := dialog.File().
		Filter("Vertex shaders", "vert", "vs", "glsl").
		Filter("All Files", "*").
		Title("Open vertex shader").
		Load()
	if err != nil {
		if err != dialog.ErrCancelled {
			fmt.Fprintf(os.Stderr, "File dialog error: %v\n", err)
		}
		return 1
	}

	frag, err := dialog.File().
		Filter("Fragment shaders", "frag", "fs", "glsl").
		Filter("All Files", "*").
		Title("Open fragment shader").
		Load()
	if err != nil {
		if err != dialog.ErrCancelled {
			fmt.Fprintf(os.Stderr, "File dialog error: %v\n", err)
		}
		return 1
	}

	return check(vert, frag, *strict, "sdl")
}
