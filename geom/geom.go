// The geom package holds the CPU-side data model of the instanced quad
// renderer: the shared unit-quad geometry, the per-instance record, and
// the packed buffer layout the shader expects.
package geom

import (
	"math"

	"github.com/bloeys/gglm/gglm"
)

// QuadVertices are the 4 corners of the unit quad in local quad space,
// ordered for GL_TRIANGLE_STRIP. The quad is centered on the origin with
// corners at (+-0.5, +-0.5), so Instance.Translate is the quad center and
// Instance.Scale its full extent.
var QuadVertices = [4]gglm.Vec2{
	gglm.NewVec2(0.5, 0.5),
	gglm.NewVec2(0.5, -0.5),
	gglm.NewVec2(-0.5, 0.5),
	gglm.NewVec2(-0.5, -0.5),
}

// Byte layout of one packed instance record. Must match the vertex shader
// attribute declarations exactly (locations 1..3).
const (
	TranslateOffsetBytes = 0
	ScaleOffsetBytes     = 8
	ColorOffsetBytes     = 16

	InstanceStrideBytes = 28
	InstanceFloats      = InstanceStrideBytes / 4
)

// Instance is one quad's per-draw data. Instances have no identity beyond
// their position in the submitted slice; later instances draw over earlier
// ones, so submission order is the visibility contract.
type Instance struct {
	Translate gglm.Vec2
	Scale     gglm.Vec2
	Color     gglm.Vec3
}

// CornerWorldPos applies the per-vertex transform of the vertex stage,
// before projection and view: local*scale + translate.
func (in *Instance) CornerWorldPos(corner gglm.Vec2) gglm.Vec2 {
	return gglm.NewVec2(
		corner.Data[0]*in.Scale.Data[0]+in.Translate.Data[0],
		corner.Data[1]*in.Scale.Data[1]+in.Translate.Data[1],
	)
}

// AppendPacked appends the packed records of instances to dst and returns
// the extended slice. The produced float ordering is translate.xy,
// scale.xy, color.rgb per instance.
func AppendPacked(dst []float32, instances []Instance) []float32 {

	for i := 0; i < len(instances); i++ {

		in := &instances[i]

		dst = append(dst,
			in.Translate.Data[0], in.Translate.Data[1],
			in.Scale.Data[0], in.Scale.Data[1],
			in.Color.Data[0], in.Color.Data[1], in.Color.Data[2],
		)
	}

	return dst
}

// Nearest returns the index of the instance whose center is closest to
// point, or len(instances) if the slice is empty.
func Nearest(instances []Instance, point gglm.Vec2) int {

	minGap := float32(math.Inf(1))
	index := len(instances)

	for i := 0; i < len(instances); i++ {

		gap := Dist2(point, instances[i].Translate)
		if gap < minGap {
			minGap = gap
			index = i
		}
	}

	return index
}
