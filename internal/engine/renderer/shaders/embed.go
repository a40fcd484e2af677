// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader is the vertex shader for every editor batch.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader shades batches with an optional single point light.
//
//go:embed mesh.frag
var MeshFragmentShader string
