// Package lighting holds the light values uploaded to the robot shader:
// one ambient term, one directional light and one point light.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/robot-demo/internal/config"
)

// DirectionalLight lights the scene from a fixed direction.
type DirectionalLight struct {
	Direction mgl32.Vec3 // normalized, pointing towards the light
	Color     mgl32.Vec3
}

// Lighting is the complete light setup for a frame.
type Lighting struct {
	Enabled   bool
	Ambient   mgl32.Vec3
	Shininess float32
	Sun       DirectionalLight
	Point     PointLight
}

var defaultSunDir = mgl32.Vec3{0.4, 0.3, 0.2}

// Default returns the warm sun and blue point light setup.
func Default() Lighting {
	return Lighting{
		Enabled:   true,
		Ambient:   mgl32.Vec3{0.18, 0.18, 0.18},
		Shininess: 64,
		Sun: DirectionalLight{
			Direction: defaultSunDir.Normalize(),
			Color:     mgl32.Vec3{1.0, 0.65, 0.25},
		},
		Point: DefaultPointLight(),
	}
}

// FromConfig builds the light setup from config values. A zero direction
// falls back to the default sun direction; a non-positive shininess falls
// back to 64.
func FromConfig(cfg config.LightingConfig) Lighting {
	l := Lighting{
		Enabled:   cfg.Enabled,
		Ambient:   cfg.Ambient,
		Shininess: cfg.Shininess,
		Sun: DirectionalLight{
			Direction: mgl32.Vec3(cfg.DirLightDir),
			Color:     cfg.DirLightColor,
		},
		Point: PointLight{
			Position: cfg.PointPos,
			Color:    cfg.PointColor,
		},
	}

	if l.Sun.Direction.Len() == 0 {
		l.Sun.Direction = defaultSunDir
	}
	l.Sun.Direction = l.Sun.Direction.Normalize()

	if l.Shininess <= 0 {
		l.Shininess = 64
	}
	return l
}

// UseLight returns the shader flag value for Enabled.
func (l *Lighting) UseLight() int32 {
	if l.Enabled {
		return 1
	}
	return 0
}
