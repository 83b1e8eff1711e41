package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Tessellation used by the robot parts.
const (
	SphereStacks     = 16
	SphereSlices     = 24
	CylinderSegments = 36
)

// cubeFaces lists each face as (normal, u, v) with u x v == normal,
// so corners visited in (-,-) (+,-) (+,+) order wind CCW seen from outside.
var cubeFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
}

// Cube returns a non-indexed triangle list of 36 vertices for an axis
// aligned cube with half extent h.
func Cube(h float32) *Data {
	corners := [6][2]float32{
		{-1, -1}, {1, -1}, {1, 1},
		{-1, -1}, {1, 1}, {-1, 1},
	}

	vertices := make([]Vertex, 0, 36)
	for _, face := range cubeFaces {
		n, u, v := face[0], face[1], face[2]
		for _, c := range corners {
			p := n.Add(u.Mul(c[0])).Add(v.Mul(c[1])).Mul(h)
			vertices = append(vertices, Vertex{Position: p, Normal: n})
		}
	}

	return &Data{
		Vertices: vertices,
		Sections: []Section{{Mode: Triangles, First: 0, Count: int32(len(vertices))}},
	}
}

// Sphere returns an indexed UV sphere with SphereStacks x SphereSlices quads.
// Stack 0 is the +Y pole.
func Sphere(radius float32) *Data {
	vertices := make([]Vertex, 0, (SphereStacks+1)*(SphereSlices+1))
	for i := 0; i <= SphereStacks; i++ {
		phi := float64(i) / SphereStacks * math.Pi
		for j := 0; j <= SphereSlices; j++ {
			theta := float64(j) / SphereSlices * 2 * math.Pi
			n := mgl32.Vec3{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			vertices = append(vertices, Vertex{Position: n.Mul(radius), Normal: n})
		}
	}

	indices := make([]uint32, 0, SphereStacks*SphereSlices*6)
	for i := 0; i < SphereStacks; i++ {
		for j := 0; j < SphereSlices; j++ {
			first := uint32(i*(SphereSlices+1) + j)
			second := first + SphereSlices + 1
			indices = append(indices,
				first, first+1, second,
				second, first+1, second+1,
			)
		}
	}

	return &Data{
		Vertices: vertices,
		Indices:  indices,
		Sections: []Section{{Mode: Triangles, First: 0, Count: int32(len(indices)), Indexed: true}},
	}
}

// Cylinder returns a capped cylinder along the Z axis: one triangle strip
// for the side followed by a triangle fan for each cap.
func Cylinder(radius, height float32) *Data {
	const segments = CylinderSegments
	half := height * 0.5

	vertices := make([]Vertex, 0, 2*(segments+1)+2*(segments+2))
	for i := 0; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / segments
		c, s := float32(math.Cos(angle)), float32(math.Sin(angle))
		n := [3]float32{c, s, 0}
		vertices = append(vertices,
			Vertex{Position: [3]float32{c * radius, s * radius, half}, Normal: n},
			Vertex{Position: [3]float32{c * radius, s * radius, -half}, Normal: n},
		)
	}
	side := Section{Mode: TriangleStrip, First: 0, Count: int32(len(vertices))}

	top := appendCap(&vertices, radius, half, 1)
	bottom := appendCap(&vertices, radius, -half, -1)

	return &Data{
		Vertices: vertices,
		Sections: []Section{side, top, bottom},
	}
}

// appendCap adds a fan at z facing dir (+1 or -1). The rim is walked in the
// direction that keeps the fan CCW when seen from that side.
func appendCap(vertices *[]Vertex, radius, z, dir float32) Section {
	const segments = CylinderSegments
	first := int32(len(*vertices))
	n := [3]float32{0, 0, dir}

	*vertices = append(*vertices, Vertex{Position: [3]float32{0, 0, z}, Normal: n})
	for i := 0; i <= segments; i++ {
		angle := float64(dir) * float64(i) * 2 * math.Pi / segments
		x := float32(math.Cos(angle)) * radius
		y := float32(math.Sin(angle)) * radius
		*vertices = append(*vertices, Vertex{Position: [3]float32{x, y, z}, Normal: n})
	}

	return Section{Mode: TriangleFan, First: first, Count: int32(len(*vertices)) - first}
}

// pyramidIndices are the six triangles of the hat: two covering the base
// followed by the four sides.
var pyramidIndices = []uint32{0, 1, 2, 0, 2, 3, 0, 1, 4, 1, 2, 4, 2, 3, 4, 3, 0, 4}

// Pyramid returns a five vertex pyramid: base corners at +-size on X/Z and
// the apex at (0, height, 0).
func Pyramid(size, height float32) *Data {
	positions := []mgl32.Vec3{
		{-size, 0, -size},
		{size, 0, -size},
		{size, 0, size},
		{-size, 0, size},
		{0, height, 0},
	}

	var centroid mgl32.Vec3
	for _, p := range positions {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float32(len(positions)))

	// Vertices are shared between faces, so each normal is the sum of the
	// adjacent face normals, each oriented away from the centroid.
	normals := make([]mgl32.Vec3, len(positions))
	for t := 0; t < len(pyramidIndices); t += 3 {
		a, b, c := pyramidIndices[t], pyramidIndices[t+1], pyramidIndices[t+2]
		fn := positions[b].Sub(positions[a]).Cross(positions[c].Sub(positions[a]))
		center := positions[a].Add(positions[b]).Add(positions[c]).Mul(1.0 / 3)
		if fn.Dot(center.Sub(centroid)) < 0 {
			fn = fn.Mul(-1)
		}
		for _, idx := range []uint32{a, b, c} {
			normals[idx] = normals[idx].Add(fn)
		}
	}

	vertices := make([]Vertex, len(positions))
	for i, p := range positions {
		vertices[i] = Vertex{Position: p, Normal: normals[i].Normalize()}
	}

	indices := make([]uint32, len(pyramidIndices))
	copy(indices, pyramidIndices)

	return &Data{
		Vertices: vertices,
		Indices:  indices,
		Sections: []Section{{Mode: Triangles, First: 0, Count: int32(len(indices)), Indexed: true}},
	}
}

// Quad returns a flat square of half extent half on the XZ plane facing +Y.
func Quad(half float32) *Data {
	up := [3]float32{0, 1, 0}
	vertices := []Vertex{
		{Position: [3]float32{-half, 0, -half}, Normal: up},
		{Position: [3]float32{-half, 0, half}, Normal: up},
		{Position: [3]float32{half, 0, half}, Normal: up},
		{Position: [3]float32{-half, 0, -half}, Normal: up},
		{Position: [3]float32{half, 0, half}, Normal: up},
		{Position: [3]float32{half, 0, -half}, Normal: up},
	}
	return &Data{
		Vertices: vertices,
		Sections: []Section{{Mode: Triangles, First: 0, Count: 6}},
	}
}

// StarPosition returns where star i sits on the background spiral.
func StarPosition(i int) mgl32.Vec3 {
	angle := float64(i) * 0.4
	radius := 12 + float64(i%5)
	height := 4 + float32(i%7)*0.4
	return mgl32.Vec3{
		float32(math.Cos(angle) * radius),
		height,
		float32(math.Sin(angle) * radius),
	}
}

// Stars returns count points laid out by StarPosition.
func Stars(count int) *Data {
	vertices := make([]Vertex, count)
	for i := range vertices {
		vertices[i] = Vertex{Position: StarPosition(i), Normal: [3]float32{0, 0, -1}}
	}
	return &Data{
		Vertices: vertices,
		Sections: []Section{{Mode: Points, First: 0, Count: int32(count)}},
	}
}
