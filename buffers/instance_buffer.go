package buffers

import (
	"github.com/albertgoncalves/pathrs/assert"
	"github.com/albertgoncalves/pathrs/geom"
)

// InstanceBuffer owns the device-side store of packed per-instance records
// (translate, scale, color). It is re-uploaded every frame: the store is
// sized once and grown geometrically when the instance count exceeds it,
// never shrunk during the session, so steady-state uploads are a single
// glBufferSubData with no reallocation.
type InstanceBuffer struct {
	Vbo VertexBuffer

	capacity int
	scratch  []float32
}

func NewInstanceBuffer(initialCapacity int) InstanceBuffer {

	if initialCapacity < 1 {
		initialCapacity = 1
	}

	vbo := NewVertexBuffer(
		Element{ElementType: DataTypeVec2}, // translate
		Element{ElementType: DataTypeVec2}, // scale
		Element{ElementType: DataTypeVec3}, // color
	)

	// The packed layout is a hard contract with the vertex shader.
	layout := vbo.GetLayout()
	assert.T(vbo.Stride == geom.InstanceStrideBytes, "Instance buffer stride '%d' doesn't match the shader layout stride '%d'", vbo.Stride, geom.InstanceStrideBytes)
	assert.T(layout[0].Offset == geom.TranslateOffsetBytes, "translate offset '%d' doesn't match the shader layout", layout[0].Offset)
	assert.T(layout[1].Offset == geom.ScaleOffsetBytes, "scale offset '%d' doesn't match the shader layout", layout[1].Offset)
	assert.T(layout[2].Offset == geom.ColorOffsetBytes, "color offset '%d' doesn't match the shader layout", layout[2].Offset)

	vbo.SetCapacityBytes(initialCapacity*geom.InstanceStrideBytes, BufUsage_Dynamic_Draw)

	return InstanceBuffer{
		Vbo:      vbo,
		capacity: initialCapacity,
		scratch:  make([]float32, 0, initialCapacity*geom.InstanceFloats),
	}
}

// Capacity returns the current device-side capacity in instances.
func (ib *InstanceBuffer) Capacity() int {
	return ib.capacity
}

// Upload replaces the device-side instance data with the packed records of
// instances. Uploading an empty slice is valid and touches nothing.
func (ib *InstanceBuffer) Upload(instances []geom.Instance) error {

	if len(instances) == 0 {
		return nil
	}

	ib.scratch = geom.AppendPacked(ib.scratch[:0], instances)

	if len(instances) > ib.capacity {
		ib.capacity = NextCapacity(ib.capacity, len(instances))
		ib.Vbo.SetCapacityBytes(ib.capacity*geom.InstanceStrideBytes, BufUsage_Dynamic_Draw)
	}

	ib.Vbo.SubData(0, ib.scratch)

	return CheckDeviceErr("instance buffer upload")
}

func (ib *InstanceBuffer) Delete() {
	ib.Vbo.Delete()
	ib.capacity = 0
}

// NextCapacity doubles cur until it fits needed. Growth is geometric to
// amortize reallocations; callers never shrink.
func NextCapacity(cur, needed int) int {

	if cur < 1 {
		cur = 1
	}

	for cur < needed {
		cur *= 2
	}

	return cur
}
