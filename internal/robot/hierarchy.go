package robot

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Axes used by the joints.
var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// Local is a node transform relative to its parent: translate, then rotate
// AngleDeg about Axis, then scale. A zero Scale means unit scale and a zero
// Axis means no rotation.
type Local struct {
	Translate mgl32.Vec3
	Axis      mgl32.Vec3
	AngleDeg  float32
	Scale     mgl32.Vec3
}

// Matrix returns T * R * S.
func (l Local) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(l.Translate.X(), l.Translate.Y(), l.Translate.Z())
	if l.Axis != (mgl32.Vec3{}) && l.AngleDeg != 0 {
		m = m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(l.AngleDeg), l.Axis.Normalize()))
	}
	if l.Scale != (mgl32.Vec3{}) {
		m = m.Mul4(mgl32.Scale3D(l.Scale.X(), l.Scale.Y(), l.Scale.Z()))
	}
	return m
}

// Compose returns parent * T * R * S for l. It never modifies parent.
func Compose(parent mgl32.Mat4, l Local) mgl32.Mat4 {
	return parent.Mul4(l.Matrix())
}

// Translation is shorthand for a Local that only moves.
func Translation(x, y, z float32) Local {
	return Local{Translate: mgl32.Vec3{x, y, z}}
}

// Uniform is shorthand for a Local that only scales, equally on every axis.
func Uniform(s float32) Local {
	return Local{Scale: mgl32.Vec3{s, s, s}}
}
