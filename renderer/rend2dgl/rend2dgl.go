// Package rend2dgl renders batches of colored 2D rectangles with one
// instanced OpenGL draw call per batch. The 4-vertex unit quad is shared
// device-side; everything per-rectangle travels in the instance buffer.
package rend2dgl

import (
	_ "embed"
	"fmt"

	"github.com/albertgoncalves/pathrs/buffers"
	"github.com/albertgoncalves/pathrs/geom"
	"github.com/albertgoncalves/pathrs/materials"
	"github.com/albertgoncalves/pathrs/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

//go:embed quad.glsl
var quadShaderSrc []byte

// DefaultInstanceCapacity is the instance buffer size allocated up front.
// The buffer grows on demand, so this only tunes startup behavior.
const DefaultInstanceCapacity = 64

var _ renderer.Render = &QuadRenderer{}

// QuadRenderer owns the device-side handles of the instanced quad pipeline:
// the shader program, the shared quad geometry, and the per-instance
// buffer. It must be created and used on the thread owning the GL context,
// and destroyed exactly once.
type QuadRenderer struct {
	Mat materials.Material
	Vao buffers.VertexArray

	quadVbo     buffers.VertexBuffer
	instanceBuf buffers.InstanceBuffer

	destroyed bool
}

// NewQuadRenderer compiles and links the quad shader and allocates the
// geometry and instance buffers. A failed shader build surfaces as
// shaders.CompileError/LinkError; a dead context as a wrapped
// renderer.ErrDeviceUnavailable.
func NewQuadRenderer(initialInstanceCapacity int) (*QuadRenderer, error) {

	if initialInstanceCapacity <= 0 {
		initialInstanceCapacity = DefaultInstanceCapacity
	}

	mat, err := materials.NewMaterialSrc("Quad mat", quadShaderSrc)
	if err != nil {
		return nil, err
	}

	quadVbo := buffers.NewVertexBuffer(buffers.Element{ElementType: buffers.DataTypeVec2})
	quadVbo.SetData(packQuadVertices(), buffers.BufUsage_Static_Draw)

	// No geometry means nothing can ever draw, so treat this as fatal.
	if err := buffers.CheckDeviceErr("geometry buffer allocation"); err != nil {
		mat.Delete()
		quadVbo.Delete()
		return nil, fmt.Errorf("%w: %v", renderer.ErrDeviceUnavailable, err)
	}

	vao := buffers.NewVertexArray()
	vao.AddVertexBuffer(quadVbo)

	instanceBuf := buffers.NewInstanceBuffer(initialInstanceCapacity)
	vao.AddInstanceBuffer(instanceBuf.Vbo)

	if err := buffers.CheckDeviceErr("instance buffer allocation"); err != nil {
		mat.Delete()
		vao.Delete()
		quadVbo.Delete()
		instanceBuf.Delete()
		return nil, fmt.Errorf("%w: %v", renderer.ErrDeviceUnavailable, err)
	}

	return &QuadRenderer{
		Mat:         mat,
		Vao:         vao,
		quadVbo:     quadVbo,
		instanceBuf: instanceBuf,
	}, nil
}

func (r *QuadRenderer) FrameStart() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawQuads uploads instances and issues one instanced draw call with
// vertex count 4 and instance count len(instances). An empty batch skips
// the draw entirely; zero-count instanced draws misbehave on some drivers.
func (r *QuadRenderer) DrawQuads(instances []geom.Instance, tr *geom.Transform) error {

	if len(instances) == 0 {
		return nil
	}

	r.Vao.Bind()

	if err := r.instanceBuf.Upload(instances); err != nil {
		return err
	}

	r.Mat.Bind()
	r.Mat.SetUnifMat4("projection", &tr.Projection)
	r.Mat.SetUnifMat4("view", &tr.View)

	gl.DrawArraysInstanced(gl.TRIANGLE_STRIP, 0, int32(len(geom.QuadVertices)), int32(len(instances)))

	return buffers.CheckDeviceErr("instanced quad draw")
}

func (r *QuadRenderer) FrameEnd() {}

// InstanceCapacity returns the current device-side instance capacity.
// Capacity only ever grows within a session.
func (r *QuadRenderer) InstanceCapacity() int {
	return r.instanceBuf.Capacity()
}

// Destroy releases the program, vao and buffers. Safe to call once; later
// calls are no-ops.
func (r *QuadRenderer) Destroy() {

	if r.destroyed {
		return
	}
	r.destroyed = true

	r.Mat.Delete()
	r.Vao.Delete()
	r.quadVbo.Delete()
	r.instanceBuf.Delete()
}

func packQuadVertices() []float32 {

	out := make([]float32, 0, len(geom.QuadVertices)*2)
	for i := 0; i < len(geom.QuadVertices); i++ {
		out = append(out, geom.QuadVertices[i].Data[0], geom.QuadVertices[i].Data[1])
	}

	return out
}
