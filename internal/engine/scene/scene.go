// Package scene provides the switchable backgrounds the robot is drawn in.
// Each variant owns a fixed clear color and its own geometry. Meshes for a
// variant are acquired when it is first selected and kept until shutdown.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/robot-demo/internal/engine/draw"
	"github.com/Faultbox/robot-demo/internal/engine/mesh"
	"github.com/Faultbox/robot-demo/internal/logger"
)

// Kind is a scene variant. Values match the number keys that select them.
type Kind int

const (
	Ground Kind = iota + 1
	Space
	Jungle
)

func (k Kind) String() string {
	if k >= Ground && k <= Jungle {
		return variants[k].name
	}
	return fmt.Sprintf("scene(%d)", int(k))
}

// Clamp maps any integer to a valid Kind.
func Clamp(n int) Kind {
	switch {
	case n < int(Ground):
		return Ground
	case n > int(Jungle):
		return Jungle
	default:
		return Kind(n)
	}
}

// Shared geometry.
var (
	GroundQuad = mesh.QuadKey(5)
	StarField  = mesh.StarsKey(StarCount)
)

// StarCount is the number of stars in the space backdrop.
const StarCount = 80

// StarSize is the point size stars are drawn at.
const StarSize = 3

type variant struct {
	name  string
	clear mgl32.Vec3
	draws func(list *draw.List)
}

var variants = [...]variant{
	Ground: {
		name:  "ground",
		clear: mgl32.Vec3{0.45, 0.70, 0.95},
		draws: func(list *draw.List) {
			list.Add(GroundQuad, mgl32.Ident4(), mgl32.Vec3{0.20, 0.60, 0.80})
		},
	},
	Space: {
		name:  "space",
		clear: mgl32.Vec3{0.02, 0.02, 0.08},
		draws: func(list *draw.List) {
			platform := mgl32.Translate3D(0, -0.3, 0).Mul4(mgl32.Scale3D(1.8, 0.05, 1.8))
			list.Add(GroundQuad, platform, mgl32.Vec3{0.20, 0.20, 0.28})
			list.AddPoints(StarField, mgl32.Ident4(), mgl32.Vec3{1, 1, 1}, StarSize)
		},
	},
	Jungle: {
		name:  "jungle",
		clear: mgl32.Vec3{0.10, 0.25, 0.12},
		draws: func(list *draw.List) {
			bush := mgl32.Vec3{0.10, 0.50, 0.15}
			list.Add(GroundQuad, mgl32.Ident4(), mgl32.Vec3{0.20, 0.75, 0.20})
			list.Add(GroundQuad, mgl32.Translate3D(1.5, 0.02, 1.0).Mul4(mgl32.Scale3D(0.3, 1, 0.2)), bush)
			list.Add(GroundQuad, mgl32.Translate3D(-1.2, 0.02, -1.0).Mul4(mgl32.Scale3D(0.25, 1, 0.25)), bush)
		},
	},
}

// Meshes returns the mesh keys variant k draws with.
func Meshes(k Kind) []mesh.Key {
	var list draw.List
	variants[Clamp(int(k))].draws(&list)
	return list.Keys()
}

// Acquirer creates the GPU buffer for a key if it does not exist yet.
// *mesh.Cache satisfies it.
type Acquirer interface {
	Acquire(key mesh.Key) error
}

// Selector tracks the active variant and which variants have had their
// meshes acquired.
type Selector struct {
	current  Kind
	prepared [Jungle + 1]bool
}

// NewSelector creates a selector showing initial, clamped to a valid Kind.
func NewSelector(initial int) *Selector {
	return &Selector{current: Clamp(initial)}
}

// SetScene switches to variant n, clamped to [Ground, Jungle], and returns
// the variant now active.
func (s *Selector) SetScene(n int) Kind {
	s.current = Clamp(n)
	return s.current
}

// Current returns the active variant.
func (s *Selector) Current() Kind {
	return s.current
}

// ClearColor returns the background color of the active variant.
func (s *Selector) ClearColor() mgl32.Vec3 {
	return variants[s.current].clear
}

// Prepared reports whether k has acquired its meshes.
func (s *Selector) Prepared(k Kind) bool {
	return k >= Ground && k <= Jungle && s.prepared[k]
}

// Prepare acquires the active variant's meshes the first time it is shown.
func (s *Selector) Prepare(a Acquirer) error {
	k := s.current
	if s.prepared[k] {
		return nil
	}

	keys := Meshes(k)
	for _, key := range keys {
		if err := a.Acquire(key); err != nil {
			return fmt.Errorf("preparing %s scene: %w", k, err)
		}
	}
	s.prepared[k] = true

	logger.Debug("scene prepared", zap.Stringer("scene", k), zap.Int("meshes", len(keys)))
	return nil
}

// AppendDraws appends the active variant's geometry to list.
func (s *Selector) AppendDraws(list *draw.List) {
	variants[s.current].draws(list)
}
