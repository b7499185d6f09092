package geom_test

import (
	"testing"

	"github.com/albertgoncalves/pathrs/geom"
	"github.com/bloeys/gglm/gglm"
)

func TestNewTransformIsIdentity(t *testing.T) {

	tr := geom.NewTransform()
	p := gglm.NewVec4(3, -7, 0, 1)

	got := geom.TransformPoint(&tr.Projection, geom.TransformPoint(&tr.View, p))

	for i := 0; i < 4; i++ {
		if !almostEq(got.Data[i], p.Data[i]) {
			t.Fatalf("identity transform moved the point: got %v, want %v", got.Data, p.Data)
		}
	}
}

func TestSetProjectionDoesNotTouchView(t *testing.T) {

	tr := geom.NewTransform()
	view := tr.View

	proj := gglm.NewMat4Diag(2)
	tr.SetProjection(&proj)

	if tr.View != view {
		t.Fatal("SetProjection modified the view matrix")
	}
	if tr.Projection != proj {
		t.Fatal("SetProjection did not store the projection matrix")
	}
}

func TestSetViewDoesNotTouchProjection(t *testing.T) {

	tr := geom.NewTransform()
	proj := tr.Projection

	view := gglm.NewMat4Diag(3)
	tr.SetView(&view)

	if tr.Projection != proj {
		t.Fatal("SetView modified the projection matrix")
	}
	if tr.View != view {
		t.Fatal("SetView did not store the view matrix")
	}
}

// Two unit quads at (0,0) and (5,0) under an orthographic projection of
// [0,10]x[0,10] must land in distinct, non-overlapping clip regions.
func TestTwoQuadsLandInDistinctClipRegions(t *testing.T) {

	tr := geom.NewTransform()
	proj := gglm.Ortho(0, 10, 0, 10, 0.1, 10).Mat4
	tr.SetProjection(&proj)

	red := geom.Instance{Translate: gglm.NewVec2(0, 0), Scale: gglm.NewVec2(1, 1), Color: gglm.NewVec3(1, 0, 0)}
	green := geom.Instance{Translate: gglm.NewVec2(5, 0), Scale: gglm.NewVec2(1, 1), Color: gglm.NewVec3(0, 1, 0)}

	clipX := func(in geom.Instance, corner gglm.Vec2) float32 {

		world := in.CornerWorldPos(corner)
		p := gglm.NewVec4(world.Data[0], world.Data[1], 0, 1)
		p = geom.TransformPoint(&tr.View, p)
		p = geom.TransformPoint(&tr.Projection, p)
		return p.Data[0]
	}

	redRight := clipX(red, gglm.NewVec2(0.5, 0.5))
	greenLeft := clipX(green, gglm.NewVec2(-0.5, 0.5))

	if redRight >= greenLeft {
		t.Fatalf("quads overlap in clip space: red right edge %f, green left edge %f", redRight, greenLeft)
	}
}

func TestTransformPointScales(t *testing.T) {

	m := gglm.NewMat4Diag(1)
	m.Data[0][0] = 2
	m.Data[1][1] = 3

	got := geom.TransformPoint(&m, gglm.NewVec4(1, 1, 0, 1))

	if !almostEq(got.Data[0], 2) || !almostEq(got.Data[1], 3) || !almostEq(got.Data[3], 1) {
		t.Fatalf("scaled point = %v, want (2, 3, 0, 1)", got.Data)
	}
}
