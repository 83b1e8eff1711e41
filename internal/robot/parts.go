package robot

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/robot-demo/internal/engine/draw"
	"github.com/Faultbox/robot-demo/internal/engine/mesh"
)

// PartID names a node of the hierarchy.
type PartID int

const (
	Base PartID = iota
	Torso
	Head
	Hat
	RightEye
	LeftEye
	RightShoulder
	LeftShoulder
	RightArm
	LeftArm
	RightLeg
	LeftLeg

	partCount
)

// NoParent marks the root.
const NoParent PartID = -1

// Part is one node: a joint transform inherited by children and an optional
// shape drawn at that joint with its own offset and scale.
type Part struct {
	ID     PartID
	Name   string
	Parent PartID
	Joint  func(JointState) Local
	Shape  mesh.Key // zero Shape means nothing is drawn
	Draw   Local
	Color  mgl32.Vec3
}

// Drawn reports whether the part has a shape.
func (p *Part) Drawn() bool {
	return p.Shape.Shape != 0
}

// Shapes shared by several parts.
var (
	BodyCube     = mesh.CubeKey(0.5)
	ShoulderBall = mesh.SphereKey(0.09)
	EyeDisc      = mesh.CylinderKey(0.045, 0.05)
	HatPyramid   = mesh.PyramidKey(0.13, 0.20)
)

var (
	bodyColor     = mgl32.Vec3{0.9, 0.4, 0.2}
	hatColor      = mgl32.Vec3{1.0, 0.15, 0.15}
	eyeColor      = mgl32.Vec3{0.05, 0.05, 0.05}
	shoulderColor = mgl32.Vec3{0.8, 0.3, 0.1}
	legColor      = mgl32.Vec3{0.7, 0.35, 0.15}

	armScale = mgl32.Vec3{0.45, 0.14, 0.14}
	legScale = mgl32.Vec3{0.22, 0.50, 0.22}
)

func fixed(l Local) func(JointState) Local {
	return func(JointState) Local { return l }
}

// Parts is the robot, ordered so that every parent precedes its children.
var Parts = [partCount]Part{
	{
		ID: Base, Name: "base", Parent: NoParent,
		Joint: func(j JointState) Local {
			return Local{Axis: AxisY, AngleDeg: j.BaseYaw}
		},
	},
	{
		ID: Torso, Name: "torso", Parent: Base,
		Joint: fixed(Translation(0, 0.75, 0)),
		Shape: BodyCube, Draw: Local{Scale: mgl32.Vec3{0.6, 0.8, 0.3}}, Color: bodyColor,
	},
	{
		ID: Head, Name: "head", Parent: Torso,
		Joint: func(j JointState) Local {
			return Local{Translate: mgl32.Vec3{0, 0.5, 0}, Axis: AxisY, AngleDeg: j.HeadYaw}
		},
		Shape: BodyCube, Draw: Uniform(0.28), Color: bodyColor,
	},
	{
		ID: Hat, Name: "hat", Parent: Head,
		Joint: fixed(Translation(0, 0.14, 0)),
		Shape: HatPyramid, Draw: Uniform(0.9), Color: hatColor,
	},
	{
		ID: RightEye, Name: "right-eye", Parent: Head,
		Joint: fixed(Translation(0.07, 0.05, 0.15)),
		Shape: EyeDisc, Color: eyeColor,
	},
	{
		ID: LeftEye, Name: "left-eye", Parent: Head,
		Joint: fixed(Translation(-0.07, 0.05, 0.15)),
		Shape: EyeDisc, Color: eyeColor,
	},
	{
		ID: RightShoulder, Name: "right-shoulder", Parent: Torso,
		Joint: fixed(Translation(0.33, 0.05, 0)),
		Shape: ShoulderBall, Color: shoulderColor,
	},
	{
		ID: LeftShoulder, Name: "left-shoulder", Parent: Torso,
		Joint: fixed(Translation(-0.33, 0.05, 0)),
		Shape: ShoulderBall, Color: shoulderColor,
	},
	{
		ID: RightArm, Name: "right-arm", Parent: RightShoulder,
		Joint: func(j JointState) Local {
			return Local{Axis: AxisZ, AngleDeg: j.RightArm}
		},
		Shape: BodyCube, Draw: Local{Translate: mgl32.Vec3{0.23, 0, 0}, Scale: armScale}, Color: bodyColor,
	},
	{
		ID: LeftArm, Name: "left-arm", Parent: LeftShoulder,
		Joint: fixed(Local{}),
		Shape: BodyCube, Draw: Local{Translate: mgl32.Vec3{-0.23, 0, 0}, Scale: armScale}, Color: bodyColor,
	},
	{
		ID: RightLeg, Name: "right-leg", Parent: Torso,
		Joint: func(j JointState) Local {
			return Local{Translate: mgl32.Vec3{0.16, -0.55, 0}, Axis: AxisX, AngleDeg: j.RightLeg}
		},
		Shape: BodyCube, Draw: Local{Scale: legScale}, Color: legColor,
	},
	{
		ID: LeftLeg, Name: "left-leg", Parent: Torso,
		Joint: func(j JointState) Local {
			return Local{Translate: mgl32.Vec3{-0.16, -0.55, 0}, Axis: AxisX, AngleDeg: j.LeftLeg}
		},
		Shape: BodyCube, Draw: Local{Scale: legScale}, Color: legColor,
	},
}

// Transform is the computed placement of one part.
type Transform struct {
	Part  *Part
	Joint mgl32.Mat4 // world matrix inherited by children
	Model mgl32.Mat4 // world matrix of the drawn shape
}

// Pose computes every part's world transforms for j, in Parts order.
func Pose(j JointState) [partCount]Transform {
	var out [partCount]Transform
	for i := range Parts {
		p := &Parts[i]

		parent := mgl32.Ident4()
		if p.Parent != NoParent {
			parent = out[p.Parent].Joint
		}

		joint := Compose(parent, p.Joint(j))
		out[i] = Transform{
			Part:  p,
			Joint: joint,
			Model: Compose(joint, p.Draw),
		}
	}
	return out
}

// AppendDraws appends one draw call per drawn part to list.
func AppendDraws(list *draw.List, j JointState) {
	pose := Pose(j)
	for i := range pose {
		t := &pose[i]
		if !t.Part.Drawn() {
			continue
		}
		list.Add(t.Part.Shape, t.Model, t.Part.Color)
	}
}
