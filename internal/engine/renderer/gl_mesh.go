package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/robot-demo/internal/engine/mesh"
)

// glMesh is an uploaded mesh: one VAO over an interleaved VBO and, for
// indexed shapes, an EBO.
type glMesh struct {
	vao      uint32
	vbo      uint32
	ebo      uint32
	sections []mesh.Section
}

// uploadMesh creates the GL buffers for d. It is the mesh cache's upload
// function, so it runs at most once per key.
func uploadMesh(key mesh.Key, d *mesh.Data) (*glMesh, error) {
	if len(d.Vertices) == 0 {
		return nil, fmt.Errorf("%s has no vertices", key)
	}

	m := &glMesh{sections: d.Sections}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*mesh.VertexStride, unsafe.Pointer(&d.Vertices[0]), gl.STATIC_DRAW)

	if len(d.Indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*4, unsafe.Pointer(&d.Indices[0]), gl.STATIC_DRAW)
	}

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, mesh.VertexStride, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, mesh.VertexStride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	// The EBO binding is VAO state, so unbind the VAO first.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := glError(); err != nil {
		m.Release()
		return nil, fmt.Errorf("uploading %s: %w", key, err)
	}
	return m, nil
}

// draw issues one call per section.
func (m *glMesh) draw(pointSize float32) {
	gl.BindVertexArray(m.vao)
	for _, s := range m.sections {
		if s.Mode == mesh.Points && pointSize > 0 {
			gl.PointSize(pointSize)
		}
		if s.Indexed {
			gl.DrawElements(glMode(s.Mode), s.Count, gl.UNSIGNED_INT, gl.PtrOffset(int(s.First)*4))
		} else {
			gl.DrawArrays(glMode(s.Mode), s.First, s.Count)
		}
	}
	gl.BindVertexArray(0)
}

// Release deletes the GL objects.
func (m *glMesh) Release() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

// glMode maps a primitive to its GL enum.
func glMode(p mesh.Primitive) uint32 {
	switch p {
	case mesh.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case mesh.TriangleFan:
		return gl.TRIANGLE_FAN
	case mesh.Points:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

func glError() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("GL error 0x%04X", code)
	}
	return nil
}
