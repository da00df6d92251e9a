// Package shaders holds the GLSL sources used by the lessons.
//
// The files are read from disk at run time so they can be edited and hot
// reloaded. FS carries the same files inside the binary for -embedded runs.
package shaders

import "embed"

// FS contains every .vert and .frag file in this directory.
//
//go:embed *.vert *.frag
var FS embed.FS

const (
	BasicVertex    = "BasicVertexShader.vert"
	OrangeFragment = "OrangeFragmentShader.frag"

	HelloShadersVertex   = "HelloShaders.vert"
	HelloShadersFragment = "HelloShaders.frag"

	HelloUniformsVertex   = "HelloUniforms.vert"
	HelloUniformsFragment = "HelloUniforms.frag"
)
