// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SimpleVertexShader transforms cone vertices by the Projection and
// ModelView uniforms and forwards the vertex color.
//
//go:embed simple.vert
var SimpleVertexShader string

// SimpleFragmentShader writes the interpolated vertex color.
//
//go:embed simple.frag
var SimpleFragmentShader string
