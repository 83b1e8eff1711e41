// Package robot defines the articulated robot: its joint state, the
// time-driven animation of that state and the transform hierarchy that turns
// it into per-part world matrices.
package robot

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Animation constants, in degrees and radians per second.
const (
	HeadMaxYaw = 25.0
	HeadSpeed  = 2.0

	LegMaxSwing = 25.0
	LegSpeed    = 3.0

	ArmMin = -10.0
	ArmMax = 90.0

	// ArmStep is the default change per raise/lower event.
	ArmStep = 1.5
)

// JointState is the robot's pose. All angles are in degrees.
type JointState struct {
	BaseYaw  float32
	RightArm float32
	HeadYaw  float32
	LeftLeg  float32
	RightLeg float32
}

// HeadYaw returns the head angle at t seconds.
func HeadYaw(t float64) float32 {
	return float32(HeadMaxYaw * math.Sin(HeadSpeed*t))
}

// LegSwing returns the left and right leg angles at t seconds. The legs are
// always in exact opposition.
func LegSwing(t float64) (left, right float32) {
	s := float32(LegMaxSwing * math.Sin(LegSpeed*t))
	return s, -s
}

// Animate sets the time-driven joints for t seconds.
func (j *JointState) Animate(t float64) {
	j.HeadYaw = HeadYaw(t)
	j.LeftLeg, j.RightLeg = LegSwing(t)
}

// RaiseArm adds delta to the right arm angle, clamped to [ArmMin, ArmMax].
func (j *JointState) RaiseArm(delta float32) {
	j.RightArm = mgl32.Clamp(j.RightArm+delta, ArmMin, ArmMax)
}

// SetBaseYaw sets the whole-body rotation directly.
func (j *JointState) SetBaseYaw(deg float32) {
	j.BaseYaw = deg
}
