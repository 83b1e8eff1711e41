// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/robot-demo/internal/engine/camera"
	"github.com/Faultbox/robot-demo/internal/engine/draw"
	"github.com/Faultbox/robot-demo/internal/engine/lighting"
	"github.com/Faultbox/robot-demo/internal/engine/mesh"
	"github.com/Faultbox/robot-demo/internal/engine/shader"
	"github.com/Faultbox/robot-demo/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	FOV    float32 // vertical field of view in degrees
}

// Renderer draws draw lists with the robot program. It owns the mesh cache.
type Renderer struct {
	config Config

	program *shader.Program
	meshes  *mesh.Cache[*glMesh]

	proj mgl32.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if cfg.FOV <= 0 {
		cfg.FOV = camera.DefaultFOV
	}
	r := &Renderer{
		config: cfg,
		meshes: mesh.NewCache(uploadMesh),
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	var err error
	r.program, err = shader.LoadRobotProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases every mesh buffer and the shader program.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("meshes", r.meshes.Allocations()))
	r.meshes.Close()
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize updates the viewport and projection for a drawable of the given
// size in pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))

	var aspect float32
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	r.proj = camera.Projection(r.config.FOV, aspect)

	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current drawable size.
func (r *Renderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

// Projection returns the current projection matrix.
func (r *Renderer) Projection() mgl32.Mat4 {
	return r.proj
}

// Acquire uploads the mesh for key if it has not been uploaded yet.
func (r *Renderer) Acquire(key mesh.Key) error {
	return r.meshes.Acquire(key)
}

// MeshAllocations returns how many mesh buffers have been created.
func (r *Renderer) MeshAllocations() int {
	return r.meshes.Allocations()
}

// Begin starts a new frame cleared to color.
func (r *Renderer) Begin(clear mgl32.Vec3) {
	gl.ClearColor(clear[0], clear[1], clear[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders list with the given view and lights. Meshes are fetched from
// the cache, so a shape is uploaded the first time it is drawn.
func (r *Renderer) Draw(list draw.List, view mgl32.Mat4, light *lighting.Lighting) error {
	u := &r.program.Uniforms
	r.program.Use()

	shader.SetMat4(u.View, view)
	shader.SetMat4(u.Proj, r.proj)

	shader.SetInt(u.UseLight, light.UseLight())
	shader.SetVec3(u.Ambient, light.Ambient)
	shader.SetFloat(u.Shininess, light.Shininess)
	shader.SetVec3(u.DirLightDir, light.Sun.Direction)
	shader.SetVec3(u.DirLightColor, light.Sun.Color)
	shader.SetVec3(u.PointPos, light.Point.Position)
	shader.SetVec3(u.PointColor, light.Point.Color)

	for i := range list {
		c := &list[i]
		m, err := r.meshes.Get(c.Mesh)
		if err != nil {
			return err
		}
		shader.SetMat4(u.Model, c.Model)
		shader.SetVec3(u.BaseColor, c.Color)
		m.draw(c.PointSize)
	}
	return nil
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}
