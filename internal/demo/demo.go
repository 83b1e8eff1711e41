// Package demo holds the application state of the robot demo and advances
// it one frame at a time. It has no GL or window dependencies; the game
// loop feeds it input snapshots and renders the frames it describes.
package demo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/robot-demo/internal/config"
	"github.com/Faultbox/robot-demo/internal/engine/camera"
	"github.com/Faultbox/robot-demo/internal/engine/draw"
	"github.com/Faultbox/robot-demo/internal/engine/input"
	"github.com/Faultbox/robot-demo/internal/engine/lighting"
	"github.com/Faultbox/robot-demo/internal/engine/scene"
	"github.com/Faultbox/robot-demo/internal/logger"
	"github.com/Faultbox/robot-demo/internal/robot"
)

// State is everything that changes while the demo runs.
type State struct {
	Joints robot.JointState
	Camera *camera.Rig
	Scenes *scene.Selector
	Lights lighting.Lighting

	// Degrees the arm moves per frame while raise or lower is held.
	ArmStep float32
}

// Requests are actions the loop must carry out after an update.
type Requests struct {
	Quit       bool
	Screenshot bool
}

// Frame describes one rendered frame.
type Frame struct {
	Clear mgl32.Vec3
	View  mgl32.Mat4
	Draws draw.List
}

// New creates the initial state from cfg.
func New(cfg *config.Config) (*State, error) {
	mode, err := camera.ParseMode(cfg.Camera.Mode)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	free := camera.NewFreeCamera(cfg.Camera.Position, cfg.Camera.MoveSpeed, cfg.Camera.MouseSensitivity)
	orbit := &camera.OrbitCamera{
		Target: cfg.Camera.OrbitTarget,
		Radius: cfg.Camera.OrbitRadius,
		Height: cfg.Camera.OrbitHeight,
		Speed:  cfg.Camera.OrbitSpeed,
	}

	s := &State{
		Camera:  camera.NewRig(free, orbit, mode),
		Scenes:  scene.NewSelector(cfg.Scene.Initial),
		Lights:  lighting.FromConfig(cfg.Lighting),
		ArmStep: cfg.Robot.ArmStep,
	}
	s.Joints.SetBaseYaw(cfg.Robot.BaseYaw)
	s.Joints.Animate(0)
	return s, nil
}

// Update applies one frame of input at time t (seconds since start) after
// dt seconds.
func (s *State) Update(in *input.State, t float64, dt float32) Requests {
	var req Requests
	if in.Closed || in.Pressed(input.Quit) {
		req.Quit = true
	}
	req.Screenshot = in.Pressed(input.Screenshot)

	for i, a := range []input.Action{input.SelectScene1, input.SelectScene2, input.SelectScene3} {
		if in.Pressed(a) {
			k := s.Scenes.SetScene(i + 1)
			logger.Info("scene selected", zap.Stringer("scene", k))
		}
	}

	if in.Pressed(input.CameraFree) {
		s.setCameraMode(camera.Free)
	}
	if in.Pressed(input.CameraOrbit) {
		s.setCameraMode(camera.Orbit)
	}

	if in.Held(input.RaiseArm) {
		s.Joints.RaiseArm(s.ArmStep)
	}
	if in.Held(input.LowerArm) {
		s.Joints.RaiseArm(-s.ArmStep)
	}

	moves := [...]struct {
		action input.Action
		dir    camera.Direction
	}{
		{input.MoveForward, camera.Forward},
		{input.MoveBackward, camera.Backward},
		{input.MoveLeft, camera.Left},
		{input.MoveRight, camera.Right},
	}
	for _, m := range moves {
		if in.Held(m.action) {
			s.Camera.Move(m.dir, dt)
		}
	}
	if in.MouseDX != 0 || in.MouseDY != 0 {
		s.Camera.Look(in.MouseDX, in.MouseDY)
	}

	s.Joints.Animate(t)
	return req
}

func (s *State) setCameraMode(m camera.Mode) {
	if s.Camera.Mode == m {
		return
	}
	s.Camera.SetMode(m)
	logger.Info("camera mode", zap.Stringer("mode", m))
}

// Prepare acquires the meshes of the active scene the first time it is
// shown.
func (s *State) Prepare(a scene.Acquirer) error {
	return s.Scenes.Prepare(a)
}

// Frame builds the frame for time t. buf is reused for the draw list.
func (s *State) Frame(t float64, buf draw.List) Frame {
	list := buf[:0]
	s.Scenes.AppendDraws(&list)
	robot.AppendDraws(&list, s.Joints)

	return Frame{
		Clear: s.Scenes.ClearColor(),
		View:  s.Camera.ViewMatrix(t),
		Draws: list,
	}
}
