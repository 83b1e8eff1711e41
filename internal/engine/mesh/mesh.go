// Package mesh generates procedural geometry and keeps the uploaded
// GPU buffers for it.
package mesh

import "fmt"

// Primitive is the topology used to draw a Section.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
	TriangleFan
	Points
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle-strip"
	case TriangleFan:
		return "triangle-fan"
	case Points:
		return "points"
	default:
		return fmt.Sprintf("primitive(%d)", int(p))
	}
}

// Vertex is the interleaved layout uploaded to the GPU.
// Location 0 is Position, location 1 is Normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// VertexStride is the size of one Vertex in bytes.
const VertexStride = 6 * 4

// Section is one draw call over a range of the vertex (or index) buffer.
type Section struct {
	Mode    Primitive
	First   int32
	Count   int32
	Indexed bool
}

// Data is the CPU side of a generated shape.
type Data struct {
	Vertices []Vertex
	Indices  []uint32
	Sections []Section
}

// Shape identifies a generator.
type Shape int

const (
	ShapeCube Shape = iota + 1
	ShapeSphere
	ShapeCylinder
	ShapePyramid
	ShapeQuad
	ShapeStars
)

func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapeSphere:
		return "sphere"
	case ShapeCylinder:
		return "cylinder"
	case ShapePyramid:
		return "pyramid"
	case ShapeQuad:
		return "quad"
	case ShapeStars:
		return "stars"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Key is the shape-parameter tuple a buffer is cached under.
// The meaning of A and B depends on Shape:
//
//	cube:     A = half extent
//	sphere:   A = radius
//	cylinder: A = radius, B = height
//	pyramid:  A = base half size, B = height
//	quad:     A = half extent
//	stars:    A = star count
type Key struct {
	Shape Shape
	A, B  float32
}

func (k Key) String() string {
	return fmt.Sprintf("%s(%g,%g)", k.Shape, k.A, k.B)
}

// CubeKey returns the cache key for a cube of half extent h.
func CubeKey(h float32) Key { return Key{Shape: ShapeCube, A: h} }

// SphereKey returns the cache key for a sphere.
func SphereKey(radius float32) Key { return Key{Shape: ShapeSphere, A: radius} }

// CylinderKey returns the cache key for a capped cylinder.
func CylinderKey(radius, height float32) Key {
	return Key{Shape: ShapeCylinder, A: radius, B: height}
}

// PyramidKey returns the cache key for a pyramid.
func PyramidKey(size, height float32) Key {
	return Key{Shape: ShapePyramid, A: size, B: height}
}

// QuadKey returns the cache key for a ground quad.
func QuadKey(half float32) Key { return Key{Shape: ShapeQuad, A: half} }

// StarsKey returns the cache key for the star field.
func StarsKey(count int) Key { return Key{Shape: ShapeStars, A: float32(count)} }

// Generate builds the geometry for k.
func Generate(k Key) (*Data, error) {
	switch k.Shape {
	case ShapeCube:
		return Cube(k.A), nil
	case ShapeSphere:
		return Sphere(k.A), nil
	case ShapeCylinder:
		return Cylinder(k.A, k.B), nil
	case ShapePyramid:
		return Pyramid(k.A, k.B), nil
	case ShapeQuad:
		return Quad(k.A), nil
	case ShapeStars:
		return Stars(int(k.A)), nil
	default:
		return nil, fmt.Errorf("unknown shape %v", k.Shape)
	}
}
