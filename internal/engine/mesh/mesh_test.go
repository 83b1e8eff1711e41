package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vec(a [3]float32) mgl32.Vec3 { return mgl32.Vec3(a) }

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// faceNormal returns the CCW normal of a triangle.
func faceNormal(a, b, c [3]float32) mgl32.Vec3 {
	return vec(b).Sub(vec(a)).Cross(vec(c).Sub(vec(a)))
}

func TestCube(t *testing.T) {
	const h = 0.5
	d := Cube(h)

	if len(d.Vertices) != 36 {
		t.Fatalf("expected 36 vertices, got %d", len(d.Vertices))
	}
	if d.Indices != nil {
		t.Errorf("cube must not be indexed, got %d indices", len(d.Indices))
	}
	if len(d.Sections) != 1 || d.Sections[0].Mode != Triangles || d.Sections[0].Count != 36 {
		t.Errorf("unexpected sections %+v", d.Sections)
	}

	for f := 0; f < 6; f++ {
		tri := d.Vertices[f*6 : f*6+6]
		n := vec(tri[0].Normal)

		if l := n.Len(); abs(l-1) > 1e-6 {
			t.Errorf("face %d: normal length %v", f, l)
		}

		for i, v := range tri {
			if v.Normal != tri[0].Normal {
				t.Errorf("face %d vertex %d: normal %v differs from %v", f, i, v.Normal, tri[0].Normal)
			}
			// Every vertex lies on the face plane n.p == h.
			if got := vec(v.Position).Dot(n); abs(got-h) > 1e-6 {
				t.Errorf("face %d vertex %d: plane distance %v, want %v", f, i, got, h)
			}
			for axis := 0; axis < 3; axis++ {
				if abs(v.Position[axis]) != h {
					t.Errorf("face %d vertex %d: coordinate %v not at +-h", f, i, v.Position)
				}
			}
		}

		for k := 0; k < 6; k += 3 {
			fn := faceNormal(tri[k].Position, tri[k+1].Position, tri[k+2].Position)
			if fn.Dot(n) <= 0 {
				t.Errorf("face %d triangle %d winds inward", f, k/3)
			}
		}
	}
}

func TestCubeScalesWithHalfExtent(t *testing.T) {
	d := Cube(2)
	for _, v := range d.Vertices {
		for axis := 0; axis < 3; axis++ {
			if abs(v.Position[axis]) != 2 {
				t.Fatalf("vertex %v not at +-2", v.Position)
			}
		}
	}
}

func TestSphereCounts(t *testing.T) {
	d := Sphere(1)

	if len(d.Vertices) != 425 {
		t.Errorf("expected 425 vertices, got %d", len(d.Vertices))
	}
	if len(d.Indices) != 2304 {
		t.Errorf("expected 2304 indices, got %d", len(d.Indices))
	}
	if s := d.Sections[0]; !s.Indexed || s.Count != 2304 {
		t.Errorf("unexpected section %+v", s)
	}
	for _, idx := range d.Indices {
		if int(idx) >= len(d.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestSphereGeometry(t *testing.T) {
	const r = 0.09
	d := Sphere(r)

	for i, v := range d.Vertices {
		p, n := vec(v.Position), vec(v.Normal)
		if abs(p.Len()-r) > 1e-6 {
			t.Errorf("vertex %d at distance %v, want %v", i, p.Len(), r)
		}
		if abs(n.Len()-1) > 1e-5 {
			t.Errorf("vertex %d normal length %v", i, n.Len())
		}
		if !p.Mul(1 / r).ApproxEqualThreshold(n, 1e-5) {
			t.Errorf("vertex %d normal %v not along position %v", i, n, p)
		}
	}

	// Vertex (i, j) follows the parameterization.
	i, j := 5, 7
	phi := float64(i) / SphereStacks * math.Pi
	theta := float64(j) / SphereSlices * 2 * math.Pi
	want := mgl32.Vec3{
		float32(r * math.Sin(phi) * math.Cos(theta)),
		float32(r * math.Cos(phi)),
		float32(r * math.Sin(phi) * math.Sin(theta)),
	}
	got := vec(d.Vertices[i*(SphereSlices+1)+j].Position)
	if !got.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("vertex (%d,%d) = %v, want %v", i, j, got, want)
	}
}

func TestSphereWindsOutward(t *testing.T) {
	d := Sphere(1)
	for k := 0; k < len(d.Indices); k += 3 {
		a := d.Vertices[d.Indices[k]].Position
		b := d.Vertices[d.Indices[k+1]].Position
		c := d.Vertices[d.Indices[k+2]].Position

		fn := faceNormal(a, b, c)
		if fn.Len() < 1e-7 {
			continue // collapsed triangle at a pole
		}
		center := vec(a).Add(vec(b)).Add(vec(c))
		if fn.Dot(center) <= 0 {
			t.Fatalf("triangle %d winds inward", k/3)
		}
	}
}

func TestCylinder(t *testing.T) {
	const r, h = 0.045, 0.05
	d := Cylinder(r, h)

	if len(d.Sections) != 3 {
		t.Fatalf("expected side + 2 caps, got %d sections", len(d.Sections))
	}
	side, top, bottom := d.Sections[0], d.Sections[1], d.Sections[2]

	if side.Mode != TriangleStrip || side.Count != 74 {
		t.Errorf("side: expected 74-vertex strip, got %+v", side)
	}
	for _, c := range []Section{top, bottom} {
		if c.Mode != TriangleFan || c.Count != 38 {
			t.Errorf("cap: expected 38-vertex fan, got %+v", c)
		}
	}
	if top.First != 74 || bottom.First != 74+38 {
		t.Errorf("unexpected cap offsets %d, %d", top.First, bottom.First)
	}
	if len(d.Vertices) != 74+38+38 {
		t.Errorf("expected 150 vertices, got %d", len(d.Vertices))
	}

	// Side strip alternates top and bottom rim and has radial normals.
	for i := int32(0); i < side.Count; i++ {
		v := d.Vertices[i]
		wantZ := float32(h / 2)
		if i%2 == 1 {
			wantZ = -h / 2
		}
		if v.Position[2] != wantZ {
			t.Errorf("side vertex %d: z = %v, want %v", i, v.Position[2], wantZ)
		}
		radial := mgl32.Vec3{v.Position[0], v.Position[1], 0}.Normalize()
		if !radial.ApproxEqualThreshold(vec(v.Normal), 1e-5) {
			t.Errorf("side vertex %d: normal %v not radial", i, v.Normal)
		}
		if v.Normal[2] != 0 {
			t.Errorf("side vertex %d: normal has z component", i)
		}
	}

	checkCap := func(name string, s Section, z, nz float32) {
		center := d.Vertices[s.First]
		if center.Position != [3]float32{0, 0, z} {
			t.Errorf("%s: center at %v", name, center.Position)
		}
		for i := s.First; i < s.First+s.Count; i++ {
			v := d.Vertices[i]
			if v.Position[2] != z || v.Normal != [3]float32{0, 0, nz} {
				t.Errorf("%s vertex %d: position %v normal %v", name, i, v.Position, v.Normal)
			}
		}
		// The fan faces along its normal.
		fn := faceNormal(center.Position, d.Vertices[s.First+1].Position, d.Vertices[s.First+2].Position)
		if fn.Z()*nz <= 0 {
			t.Errorf("%s winds away from its normal", name)
		}
		// The rim closes on itself.
		first, last := vec(d.Vertices[s.First+1].Position), vec(d.Vertices[s.First+s.Count-1].Position)
		if !first.ApproxEqualThreshold(last, 1e-6) {
			t.Errorf("%s rim not closed: %v vs %v", name, first, last)
		}
	}
	checkCap("top", top, h/2, 1)
	checkCap("bottom", bottom, -h/2, -1)
}

func TestPyramid(t *testing.T) {
	d := Pyramid(0.13, 0.20)

	if len(d.Vertices) != 5 {
		t.Errorf("expected 5 vertices, got %d", len(d.Vertices))
	}
	want := []uint32{0, 1, 2, 0, 2, 3, 0, 1, 4, 1, 2, 4, 2, 3, 4, 3, 0, 4}
	if len(d.Indices) != len(want) {
		t.Fatalf("expected %d indices, got %d", len(want), len(d.Indices))
	}
	for i := range want {
		if d.Indices[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, d.Indices[i], want[i])
		}
	}

	if d.Vertices[4].Position != [3]float32{0, 0.20, 0} {
		t.Errorf("apex at %v", d.Vertices[4].Position)
	}
	for i := 0; i < 4; i++ {
		p := d.Vertices[i].Position
		if abs(p[0]) != 0.13 || p[1] != 0 || abs(p[2]) != 0.13 {
			t.Errorf("base corner %d at %v", i, p)
		}
	}

	// The apex normal points up, corner normals point away from the center.
	if n := vec(d.Vertices[4].Normal); n.Y() <= 0.99 {
		t.Errorf("apex normal %v should point up", n)
	}
	for i := 0; i < 4; i++ {
		p, n := vec(d.Vertices[i].Position), vec(d.Vertices[i].Normal)
		if abs(n.Len()-1) > 1e-5 {
			t.Errorf("corner %d normal length %v", i, n.Len())
		}
		if (mgl32.Vec3{p.X(), 0, p.Z()}).Dot(n) <= 0 {
			t.Errorf("corner %d normal %v points inward", i, n)
		}
	}

	// Editing a returned index slice must not change later pyramids.
	d.Indices[0] = 99
	if Pyramid(1, 1).Indices[0] != 0 {
		t.Error("Pyramid shares its index slice between calls")
	}
}

func TestQuad(t *testing.T) {
	d := Quad(5)
	if len(d.Vertices) != 6 {
		t.Fatalf("expected 6 vertices, got %d", len(d.Vertices))
	}
	for _, v := range d.Vertices {
		if v.Position[1] != 0 || abs(v.Position[0]) != 5 || abs(v.Position[2]) != 5 {
			t.Errorf("vertex %v off the ground square", v.Position)
		}
		if v.Normal != [3]float32{0, 1, 0} {
			t.Errorf("normal %v, want +Y", v.Normal)
		}
	}
	for k := 0; k < 6; k += 3 {
		fn := faceNormal(d.Vertices[k].Position, d.Vertices[k+1].Position, d.Vertices[k+2].Position)
		if fn.Y() <= 0 {
			t.Errorf("triangle %d faces down", k/3)
		}
	}
}

func TestStars(t *testing.T) {
	d := Stars(80)
	if len(d.Vertices) != 80 {
		t.Fatalf("expected 80 stars, got %d", len(d.Vertices))
	}
	if s := d.Sections[0]; s.Mode != Points || s.Count != 80 {
		t.Errorf("unexpected section %+v", s)
	}

	for _, i := range []int{0, 1, 7, 13, 79} {
		angle := float64(i) * 0.4
		radius := 12 + float64(i%5)
		want := mgl32.Vec3{
			float32(math.Cos(angle) * radius),
			4 + float32(i%7)*0.4,
			float32(math.Sin(angle) * radius),
		}
		if got := vec(d.Vertices[i].Position); !got.ApproxEqualThreshold(want, 1e-5) {
			t.Errorf("star %d at %v, want %v", i, got, want)
		}
	}

	if got := StarPosition(0); got != (mgl32.Vec3{12, 4, 0}) {
		t.Errorf("star 0 at %v, want (12,4,0)", got)
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	keys := []Key{CubeKey(0.5), SphereKey(0.09), CylinderKey(0.045, 0.05), PyramidKey(0.13, 0.2), QuadKey(5), StarsKey(80)}
	for _, k := range keys {
		a, err := Generate(k)
		if err != nil {
			t.Fatalf("Generate(%v): %v", k, err)
		}
		b, _ := Generate(k)
		if len(a.Vertices) != len(b.Vertices) || len(a.Indices) != len(b.Indices) {
			t.Fatalf("%v: sizes differ between calls", k)
		}
		for i := range a.Vertices {
			if a.Vertices[i] != b.Vertices[i] {
				t.Fatalf("%v: vertex %d differs between calls", k, i)
			}
		}
	}
}

func TestGenerateUnknownShape(t *testing.T) {
	if _, err := Generate(Key{Shape: 42}); err == nil {
		t.Error("expected error for unknown shape")
	}
}

type fakeBuffer struct {
	key      Key
	released *int
}

func (b *fakeBuffer) Release() { *b.released++ }

func TestCacheCreatesOnce(t *testing.T) {
	uploads := map[Key]int{}
	released := 0
	cache := NewCache(func(k Key, d *Data) (*fakeBuffer, error) {
		uploads[k]++
		if len(d.Vertices) == 0 {
			t.Errorf("%v uploaded with no vertices", k)
		}
		return &fakeBuffer{key: k, released: &released}, nil
	})

	cube := CubeKey(0.5)
	first, err := cache.Get(cube)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	for i := 0; i < 10; i++ {
		b, _ := cache.Get(cube)
		if b != first {
			t.Fatal("Get returned a different buffer for the same key")
		}
	}
	if _, err := cache.Get(SphereKey(0.09)); err != nil {
		t.Fatalf("Get sphere: %v", err)
	}

	if uploads[cube] != 1 {
		t.Errorf("cube uploaded %d times, want 1", uploads[cube])
	}
	if cache.Allocations() != 2 || cache.Len() != 2 {
		t.Errorf("expected 2 allocations, got %d (len %d)", cache.Allocations(), cache.Len())
	}
	if !cache.Has(cube) || cache.Has(StarsKey(80)) {
		t.Error("Has reports wrong membership")
	}

	cache.Close()
	cache.Close()
	if released != 2 {
		t.Errorf("expected 2 releases, got %d", released)
	}
	if cache.Len() != 0 {
		t.Errorf("expected empty cache after Close, got %d", cache.Len())
	}
	if _, err := cache.Get(cube); err == nil {
		t.Error("expected error from Get after Close")
	}
}

func TestCacheUploadError(t *testing.T) {
	boom := errors.New("out of memory")
	cache := NewCache(func(Key, *Data) (*fakeBuffer, error) { return nil, boom })

	if _, err := cache.Get(CubeKey(1)); !errors.Is(err, boom) {
		t.Errorf("expected wrapped upload error, got %v", err)
	}
	if cache.Allocations() != 0 || cache.Has(CubeKey(1)) {
		t.Error("failed upload must not be cached")
	}
}

func TestKeyString(t *testing.T) {
	if got := CylinderKey(0.5, 2).String(); got != "cylinder(0.5,2)" {
		t.Errorf("unexpected key string %q", got)
	}
}
