package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/logger"
)

const sizeOfFloat32 = 4

// Attribute is one float vertex attribute.
type Attribute struct {
	Location   uint32
	Components int32
	Normalized bool
}

// Layout describes interleaved float vertex data.
type Layout []Attribute

// Floats returns the number of floats per vertex.
func (l Layout) Floats() int {
	n := 0
	for _, a := range l {
		n += int(a.Components)
	}
	return n
}

// Stride returns the byte size of one vertex.
func (l Layout) Stride() int32 {
	return int32(l.Floats() * sizeOfFloat32)
}

// Offsets returns the byte offset of each attribute within a vertex.
func (l Layout) Offsets() []int {
	offsets := make([]int, len(l))
	off := 0
	for i, a := range l {
		offsets[i] = off
		off += int(a.Components) * sizeOfFloat32
	}
	return offsets
}

// Mesh is static geometry in a VAO with a VBO and optional EBO.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

// validate checks vertex and index data against the layout.
func validate(vertices []float32, indices []uint32, layout Layout) (vertexCount int, err error) {
	per := layout.Floats()
	if per == 0 {
		return 0, errors.New("empty vertex layout")
	}
	if len(vertices) == 0 {
		return 0, errors.New("no vertices")
	}
	if len(vertices)%per != 0 {
		return 0, fmt.Errorf("%d floats is not a multiple of %d per vertex", len(vertices), per)
	}
	vertexCount = len(vertices) / per
	for _, idx := range indices {
		if int(idx) >= vertexCount {
			return 0, fmt.Errorf("index %d out of range for %d vertices", idx, vertexCount)
		}
	}
	return vertexCount, nil
}

// NewMesh uploads vertices (and indices, if any) as static draw data.
func NewMesh(vertices []float32, indices []uint32, layout Layout) (*Mesh, error) {
	vertexCount, err := validate(vertices, indices, layout)
	if err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}

	m := &Mesh{count: int32(vertexCount)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*sizeOfFloat32, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		m.indexed = true
		m.count = int32(len(indices))
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	stride := layout.Stride()
	for i, off := range layout.Offsets() {
		a := layout[i]
		gl.VertexAttribPointerWithOffset(a.Location, a.Components, gl.FLOAT, a.Normalized, stride, uintptr(off))
		gl.EnableVertexAttribArray(a.Location)
	}

	// The EBO binding is VAO state, so only the array buffer is unbound here.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh created",
		zap.Uint32("vao", m.vao),
		zap.Uint32("vbo", m.vbo),
		zap.Uint32("ebo", m.ebo),
		zap.Int32("count", m.count),
	)
	return m, nil
}

// Draw binds the VAO and draws triangles.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
}

// Delete frees the GL buffers.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	*m = Mesh{}
}
