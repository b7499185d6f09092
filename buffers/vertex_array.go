package buffers

import (
	"github.com/albertgoncalves/pathrs/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexArray struct {
	Id   uint32
	Vbos []VertexBuffer

	// nextAttribIndex is the first free shader attribute location. Buffers
	// added to the vao claim consecutive locations in add order.
	nextAttribIndex uint32
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	gl.BindVertexArray(0)
}

// AddVertexBuffer attaches vbo with per-vertex attributes at the next free
// locations.
func (va *VertexArray) AddVertexBuffer(vbo VertexBuffer) {
	va.addBuffer(vbo, 0)
}

// AddInstanceBuffer attaches vbo with per-instance attributes (attribute
// divisor 1), so each record advances once per instance instead of once
// per vertex.
func (va *VertexArray) AddInstanceBuffer(vbo VertexBuffer) {
	va.addBuffer(vbo, 1)
}

func (va *VertexArray) addBuffer(vbo VertexBuffer, divisor uint32) {

	// NOTE: VBOs are only bound at 'VertexAttribPointer' (and related) calls

	va.Bind()
	vbo.Bind()

	layout := vbo.GetLayout()
	for i := 0; i < len(layout); i++ {

		l := &layout[i]
		index := va.nextAttribIndex

		gl.EnableVertexAttribArray(index)
		gl.VertexAttribPointerWithOffset(index, l.ElementType.CompCount(), l.ElementType.GLType(), false, vbo.Stride, uintptr(l.Offset))

		if divisor != 0 {
			gl.VertexAttribDivisor(index, divisor)
		}

		va.nextAttribIndex++
	}

	va.Vbos = append(va.Vbos, vbo)
}

// Delete releases the vao itself. Attached buffers stay owned by whoever
// created them.
func (va *VertexArray) Delete() {
	gl.DeleteVertexArrays(1, &va.Id)
	va.Id = 0
}

func NewVertexArray() VertexArray {

	vao := VertexArray{}

	gl.GenVertexArrays(1, &vao.Id)
	if vao.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL vertex array object")
	}

	return vao
}
