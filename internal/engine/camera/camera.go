// Package camera provides the free-flying and orbiting cameras.
package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection limits.
const (
	DefaultFOV = 45.0
	Near       = 0.1
	Far        = 100.0
)

// Mode selects which camera drives the view.
type Mode int

const (
	Free Mode = iota
	Orbit
)

func (m Mode) String() string {
	switch m {
	case Free:
		return "free"
	case Orbit:
		return "orbit"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a config value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "free", "":
		return Free, nil
	case "orbit":
		return Orbit, nil
	default:
		return Free, fmt.Errorf("unknown camera mode %q", s)
	}
}

// Direction is a free camera movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// MaxPitch is the pitch limit in degrees, both up and down.
const MaxPitch = 89.0

// FreeCamera is a yaw/pitch fly camera.
type FreeCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	// Euler angles in degrees
	Yaw   float32
	Pitch float32

	MoveSpeed   float32 // units per second
	Sensitivity float32 // degrees per mouse unit
}

// NewFreeCamera creates a camera at pos looking down -Z.
func NewFreeCamera(pos mgl32.Vec3, speed, sensitivity float32) *FreeCamera {
	c := &FreeCamera{
		Position:    pos,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         -90,
		Pitch:       0,
		MoveSpeed:   speed,
		Sensitivity: sensitivity,
	}
	c.updateVectors()
	return c
}

// Move translates the camera along its front or right vector by
// MoveSpeed * dt.
func (c *FreeCamera) Move(dir Direction, dt float32) {
	velocity := c.MoveSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// Look applies a mouse delta. Positive dy looks up.
func (c *FreeCamera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+dy*c.Sensitivity, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// ViewMatrix returns the view matrix for this camera.
func (c *FreeCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *FreeCamera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	c.Front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// OrbitCamera circles a target at a fixed radius and height. Its position
// depends only on time.
type OrbitCamera struct {
	Target mgl32.Vec3
	Radius float32
	Height float32 // above Target
	Speed  float32 // radians per second
}

// NewOrbitCamera creates an orbit camera with the demo defaults.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Target: mgl32.Vec3{0, 0.9, 0},
		Radius: 4,
		Height: 1.6,
		Speed:  0.4,
	}
}

// Eye returns the camera position at time t (seconds).
func (c *OrbitCamera) Eye(t float64) mgl32.Vec3 {
	angle := float64(c.Speed) * t
	return c.Target.Add(mgl32.Vec3{
		c.Radius * float32(math.Cos(angle)),
		c.Height,
		c.Radius * float32(math.Sin(angle)),
	})
}

// ViewMatrix returns the view matrix at time t.
func (c *OrbitCamera) ViewMatrix(t float64) mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(t), c.Target, mgl32.Vec3{0, 1, 0})
}

// Rig owns both cameras and routes input to the active one.
type Rig struct {
	Mode  Mode
	Free  *FreeCamera
	Orbit *OrbitCamera
}

// NewRig creates a rig starting in mode.
func NewRig(free *FreeCamera, orbit *OrbitCamera, mode Mode) *Rig {
	return &Rig{Mode: mode, Free: free, Orbit: orbit}
}

// SetMode switches cameras. The free camera keeps its state while the
// orbit camera is active.
func (r *Rig) SetMode(m Mode) {
	r.Mode = m
}

// Move moves the free camera. Ignored in orbit mode.
func (r *Rig) Move(dir Direction, dt float32) {
	if r.Mode != Free {
		return
	}
	r.Free.Move(dir, dt)
}

// Look turns the free camera. Ignored in orbit mode.
func (r *Rig) Look(dx, dy float32) {
	if r.Mode != Free {
		return
	}
	r.Free.Look(dx, dy)
}

// Eye returns the active camera position at time t.
func (r *Rig) Eye(t float64) mgl32.Vec3 {
	if r.Mode == Orbit {
		return r.Orbit.Eye(t)
	}
	return r.Free.Position
}

// ViewMatrix returns the active camera's view matrix at time t.
func (r *Rig) ViewMatrix(t float64) mgl32.Mat4 {
	if r.Mode == Orbit {
		return r.Orbit.ViewMatrix(t)
	}
	return r.Free.ViewMatrix()
}

// Projection returns a perspective matrix for fovDeg and the given aspect
// ratio. A non-positive aspect (minimized window) is treated as square.
func Projection(fovDeg, aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, Near, Far)
}
