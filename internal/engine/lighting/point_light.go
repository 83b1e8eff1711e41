package lighting

import "github.com/go-gl/mathgl/mgl32"

// PointLight is an omnidirectional light without falloff.
type PointLight struct {
	Position mgl32.Vec3 // World position
	Color    mgl32.Vec3 // RGB color (0-1 range)
}

// DefaultPointLight is the blue light hovering over the robot's shoulders.
func DefaultPointLight() PointLight {
	return PointLight{
		Position: mgl32.Vec3{0, 1.2, 0},
		Color:    mgl32.Vec3{0.2, 0.6, 1.0},
	}
}
