package buffers

import (
	"github.com/albertgoncalves/pathrs/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexBuffer struct {
	Id     uint32
	Stride int32
	layout []Element
}

func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.Id)
}

func (vb *VertexBuffer) UnBind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (vb *VertexBuffer) SetData(values []float32, usage BufUsage) {

	vb.Bind()

	sizeInBytes := len(values) * 4
	if sizeInBytes == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, gl.Ptr(nil), usage.ToGL())
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, sizeInBytes, gl.Ptr(&values[0]), usage.ToGL())
	}
}

// SetCapacityBytes allocates device storage of the given size without
// uploading anything. Previous contents are discarded.
func (vb *VertexBuffer) SetCapacityBytes(sizeInBytes int, usage BufUsage) {
	vb.Bind()
	gl.BufferData(gl.ARRAY_BUFFER, sizeInBytes, gl.Ptr(nil), usage.ToGL())
}

// SubData writes values into the already allocated store starting at
// offsetBytes. The buffer must have been sized beforehand.
func (vb *VertexBuffer) SubData(offsetBytes int, values []float32) {

	if len(values) == 0 {
		return
	}

	vb.Bind()
	gl.BufferSubData(gl.ARRAY_BUFFER, offsetBytes, len(values)*4, gl.Ptr(&values[0]))
}

func (vb *VertexBuffer) GetLayout() []Element {
	e := make([]Element, len(vb.layout))
	copy(e, vb.layout)
	return e
}

func (vb *VertexBuffer) SetLayout(layout ...Element) {

	vb.Stride = 0
	vb.layout = layout

	for i := 0; i < len(vb.layout); i++ {

		vb.layout[i].Offset = int(vb.Stride)
		vb.Stride += vb.layout[i].Size()
	}
}

func (vb *VertexBuffer) Delete() {
	gl.DeleteBuffers(1, &vb.Id)
	vb.Id = 0
}

func NewVertexBuffer(layout ...Element) VertexBuffer {

	vb := VertexBuffer{}

	gl.GenBuffers(1, &vb.Id)
	if vb.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer")
	}

	vb.SetLayout(layout...)
	return vb
}
