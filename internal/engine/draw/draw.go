// Package draw describes what to render in a frame without touching the GPU.
package draw

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/robot-demo/internal/engine/mesh"
)

// Call draws one cached mesh with a model matrix and flat base color.
type Call struct {
	Mesh      mesh.Key
	Model     mgl32.Mat4
	Color     mgl32.Vec3
	PointSize float32 // only used by point meshes
}

// List is an ordered batch of calls.
type List []Call

// Add appends a call.
func (l *List) Add(key mesh.Key, model mgl32.Mat4, color mgl32.Vec3) {
	*l = append(*l, Call{Mesh: key, Model: model, Color: color})
}

// AddPoints appends a call for a point mesh drawn at size pixels.
func (l *List) AddPoints(key mesh.Key, model mgl32.Mat4, color mgl32.Vec3, size float32) {
	*l = append(*l, Call{Mesh: key, Model: model, Color: color, PointSize: size})
}

// Keys returns the distinct mesh keys in first-use order.
func (l List) Keys() []mesh.Key {
	seen := make(map[mesh.Key]bool, len(l))
	var keys []mesh.Key
	for _, c := range l {
		if !seen[c.Mesh] {
			seen[c.Mesh] = true
			keys = append(keys, c.Mesh)
		}
	}
	return keys
}
