package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/robot-demo/internal/engine/shader/shaders"
	"github.com/Faultbox/robot-demo/internal/logger"
)

// Uniforms holds the resolved locations of every uniform the robot program
// uses.
type Uniforms struct {
	Model int32
	View  int32
	Proj  int32

	BaseColor     int32
	Ambient       int32
	DirLightDir   int32
	DirLightColor int32
	PointPos      int32
	PointColor    int32
	Shininess     int32
	UseLight      int32
}

// bindings pairs each GLSL name with the field it resolves into.
func (u *Uniforms) bindings() []struct {
	name string
	loc  *int32
} {
	return []struct {
		name string
		loc  *int32
	}{
		{"uModel", &u.Model},
		{"uView", &u.View},
		{"uProj", &u.Proj},
		{"uBaseColor", &u.BaseColor},
		{"uAmbient", &u.Ambient},
		{"uDirLightDir", &u.DirLightDir},
		{"uDirLightColor", &u.DirLightColor},
		{"uPointPos", &u.PointPos},
		{"uPointColor", &u.PointColor},
		{"uShininess", &u.Shininess},
		{"uUseLight", &u.UseLight},
	}
}

// UniformNames lists the uniforms a robot program must expose.
func UniformNames() []string {
	var u Uniforms
	b := u.bindings()
	names := make([]string, len(b))
	for i := range b {
		names[i] = b[i].name
	}
	return names
}

// resolveUniforms fills a Uniforms table with lookup. Every uniform must be
// present; all missing names are reported together.
func resolveUniforms(lookup func(name string) int32) (Uniforms, error) {
	var u Uniforms
	var missing []string
	for _, b := range u.bindings() {
		*b.loc = lookup(b.name)
		if *b.loc < 0 {
			missing = append(missing, b.name)
		}
	}
	if len(missing) > 0 {
		return Uniforms{}, fmt.Errorf("missing uniforms %v", missing)
	}
	return u, nil
}

// LoadUniforms resolves the uniform table for a linked program.
func LoadUniforms(program uint32) (Uniforms, error) {
	return resolveUniforms(func(name string) int32 {
		return GetUniform(program, name)
	})
}

// Program is a linked robot shader with its uniform table.
type Program struct {
	ID       uint32
	Uniforms Uniforms
}

// LoadRobotProgram compiles the embedded robot shaders and resolves their
// uniforms. Requires a current GL context.
func LoadRobotProgram() (*Program, error) {
	return Load(shaders.RobotVertexShader, shaders.RobotFragmentShader)
}

// Load compiles and links a program and resolves its uniform table.
func Load(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("compiling robot program: %w", err)
	}

	u, err := LoadUniforms(id)
	if err != nil {
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("program %d: %w", id, err)
	}

	logger.Debug("shader program loaded", zap.Uint32("program", id), zap.Int("uniforms", len(u.bindings())))
	return &Program{ID: id, Uniforms: u}, nil
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// SetMat4 uploads a matrix uniform. The program must be in use.
func SetMat4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// SetVec3 uploads a vec3 uniform.
func SetVec3(loc int32, v mgl32.Vec3) {
	gl.Uniform3f(loc, v[0], v[1], v[2])
}

// SetFloat uploads a float uniform.
func SetFloat(loc int32, f float32) {
	gl.Uniform1f(loc, f)
}

// SetInt uploads an int uniform.
func SetInt(loc int32, i int32) {
	gl.Uniform1i(loc, i)
}
