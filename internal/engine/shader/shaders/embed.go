// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// RobotVertexShader transforms lit, flat-colored meshes.
//
//go:embed robot.vert
var RobotVertexShader string

// RobotFragmentShader applies ambient, one directional and one point light
// with Blinn-Phong specular.
//
//go:embed robot.frag
var RobotFragmentShader string
