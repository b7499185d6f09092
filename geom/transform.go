package geom

import (
	"github.com/bloeys/gglm/gglm"
)

// Transform holds the matrices shared by every instance of a draw call.
// Projection and view are kept separate so a window resize only touches
// the projection and camera movement only the view.
type Transform struct {
	Projection gglm.Mat4
	View       gglm.Mat4
}

// NewTransform returns a transform with identity projection and view.
func NewTransform() Transform {
	return Transform{
		Projection: gglm.NewMat4Diag(1),
		View:       gglm.NewMat4Diag(1),
	}
}

// SetProjection takes effect on the next draw that reads the transform.
func (t *Transform) SetProjection(m *gglm.Mat4) {
	t.Projection = *m
}

// SetView takes effect on the next draw that reads the transform.
func (t *Transform) SetView(m *gglm.Mat4) {
	t.View = *m
}

// TransformPoint multiplies a column-major mat4 with a column vector,
// mirroring what the vertex stage does with the projection and view
// uniforms.
func TransformPoint(m *gglm.Mat4, p gglm.Vec4) gglm.Vec4 {

	var out gglm.Vec4
	for row := 0; row < 4; row++ {
		out.Data[row] = m.Data[0][row]*p.Data[0] +
			m.Data[1][row]*p.Data[1] +
			m.Data[2][row]*p.Data[2] +
			m.Data[3][row]*p.Data[3]
	}

	return out
}
