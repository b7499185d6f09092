package geom

import (
	"math"

	"github.com/bloeys/gglm/gglm"
)

// Small 2D vector helpers on top of gglm's storage. These cover the few
// component-wise operations the steering and picking code needs.

func Add2(a, b gglm.Vec2) gglm.Vec2 {
	return gglm.NewVec2(a.Data[0]+b.Data[0], a.Data[1]+b.Data[1])
}

func Sub2(a, b gglm.Vec2) gglm.Vec2 {
	return gglm.NewVec2(a.Data[0]-b.Data[0], a.Data[1]-b.Data[1])
}

func Scale2(a gglm.Vec2, s float32) gglm.Vec2 {
	return gglm.NewVec2(a.Data[0]*s, a.Data[1]*s)
}

func Mul2(a, b gglm.Vec2) gglm.Vec2 {
	return gglm.NewVec2(a.Data[0]*b.Data[0], a.Data[1]*b.Data[1])
}

func Dist2(a, b gglm.Vec2) float32 {
	return float32(math.Hypot(float64(a.Data[0]-b.Data[0]), float64(a.Data[1]-b.Data[1])))
}

// Norm2 returns a scaled to unit length. The epsilon keeps the zero vector
// mapping to (almost) zero instead of NaN, which the steering code relies
// on when no key is held.
func Norm2(a gglm.Vec2) gglm.Vec2 {

	const epsilon = 1e-7

	len := float32(math.Hypot(float64(a.Data[0]), float64(a.Data[1]))) + epsilon

	return gglm.NewVec2(a.Data[0]/len, a.Data[1]/len)
}
