package game

import (
	"math"
	"testing"

	"github.com/albertgoncalves/pathrs/camera"
	"github.com/albertgoncalves/pathrs/config"
	"github.com/albertgoncalves/pathrs/floorplan"
	"github.com/albertgoncalves/pathrs/geom"
	"github.com/bloeys/gglm/gglm"
)

// fakeRender records every batch submitted to it.
type fakeRender struct {
	frames [][]geom.Instance
	trs    []geom.Transform
	err    error
}

func (f *fakeRender) FrameStart() {}
func (f *fakeRender) FrameEnd()   {}

func (f *fakeRender) DrawQuads(instances []geom.Instance, tr *geom.Transform) error {

	if f.err != nil {
		return f.err
	}

	cp := make([]geom.Instance, len(instances))
	copy(cp, instances)
	f.frames = append(f.frames, cp)
	f.trs = append(f.trs, *tr)

	return nil
}

const room = `+--+
|..|
+--+
`

func newTestGame(t *testing.T) (*Game, *fakeRender) {
	t.Helper()

	plan, err := floorplan.Parse([]byte(room))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	rend := &fakeRender{}
	cam := camera.NewOrtho2D(gglm.NewVec2(0, 0), 800, 600)

	g, err := NewGame(plan, config.Default(), rend, cam)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	return g, rend
}

func TestWorldQuadCounts(t *testing.T) {

	g, _ := newTestGame(t)

	// 1 floor + 4 wall runs + 2 waypoints + 1 player.
	if len(g.world.quads) != 8 {
		t.Fatalf("got %d quads, want 8", len(g.world.quads))
	}
	if g.world.waypointCount != 2 {
		t.Fatalf("got %d waypoints, want 2", g.world.waypointCount)
	}
}

func TestPlayerDrawsLast(t *testing.T) {

	g, rend := newTestGame(t)
	g.Render()

	if len(rend.frames) != 1 {
		t.Fatalf("got %d draw calls, want 1", len(rend.frames))
	}

	frame := rend.frames[0]
	last := frame[len(frame)-1]

	if last.Color != playerColor {
		t.Fatalf("last instance color = %v, want the player color %v", last.Color.Data, playerColor.Data)
	}
	if last.Scale != gglm.NewVec2(PlayerScale, PlayerScale) {
		t.Fatalf("last instance scale = %v, want the player scale", last.Scale.Data)
	}
}

func TestOneDrawCallPerFrame(t *testing.T) {

	g, rend := newTestGame(t)

	for i := 0; i < 3; i++ {
		g.Update()
		g.Render()
	}

	if len(rend.frames) != 3 {
		t.Fatalf("got %d draw calls over 3 frames, want 3", len(rend.frames))
	}

	for i, frame := range rend.frames {
		if len(frame) != 8 {
			t.Fatalf("frame %d submitted %d instances, want 8", i, len(frame))
		}
	}
}

func TestCellToWorldIsCenteredOnOrigin(t *testing.T) {

	bounds := gglm.NewVec2(2, 2)

	tests := []struct {
		name string
		cell floorplan.Cell
		want gglm.Vec2
	}{
		{"top left", floorplan.Cell{X: 0, Y: 0}, gglm.NewVec2(-FloorScale*0.5, FloorScale*0.5)},
		{"bottom right", floorplan.Cell{X: 1, Y: 1}, gglm.NewVec2(FloorScale*0.5, -FloorScale*0.5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			got := cellToWorld(tc.cell, bounds)
			if got != tc.want {
				t.Fatalf("cell %+v -> (%f, %f), want (%f, %f)",
					tc.cell, got.Data[0], got.Data[1], tc.want.Data[0], tc.want.Data[1])
			}
		})
	}
}

func TestWallInstanceSpansItsRun(t *testing.T) {

	// Top wall of the 4x3 room: cells (0,0)..(3,0), horizontal.
	w := floorplan.Wall{
		Min:        floorplan.Cell{X: 0, Y: 0},
		Max:        floorplan.Cell{X: 3, Y: 0},
		Horizontal: true,
	}

	in := wallInstance(w, gglm.NewVec2(4, 3))

	if in.Scale.Data[0] != 4*FloorScale {
		t.Fatalf("wall length = %f, want %f", in.Scale.Data[0], float32(4*FloorScale))
	}
	if in.Scale.Data[1] != 1 {
		t.Fatalf("wall thickness = %f, want 1", in.Scale.Data[1])
	}

	// Centered over its run: cells 0..3 of a 4-wide plan sit symmetric
	// around x = 0.
	if in.Color != wallColor {
		t.Fatalf("wall color = %v", in.Color.Data)
	}
	if in.Translate.Data[0] != 0 {
		t.Fatalf("wall center x = %f, want 0", in.Translate.Data[0])
	}
}

func TestBuildWorldRejectsPlanWithoutWaypoints(t *testing.T) {

	plan, err := floorplan.Parse([]byte("+-+\n+-+\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if _, err := buildWorld(plan); err == nil {
		t.Fatal("expected an error for a plan without waypoints")
	}
}

func TestPlayerStartsOnFirstWaypoint(t *testing.T) {

	g, _ := newTestGame(t)

	player := g.world.quads[g.world.playerIdx]
	if player.Translate != g.world.nodes[0] {
		t.Fatalf("player at (%f, %f), want the first waypoint (%f, %f)",
			player.Translate.Data[0], player.Translate.Data[1],
			g.world.nodes[0].Data[0], g.world.nodes[0].Data[1])
	}
}

func TestSteeringApproachesTarget(t *testing.T) {

	g, _ := newTestGame(t)

	// Steer toward waypoint 1 repeatedly; the gap must close.
	target := g.world.nodes[1]
	before := geom.Dist2(g.PlayerPos(), target)

	for i := 0; i < 120; i++ {
		g.steerPlayer([]int{0, 1})
	}

	after := geom.Dist2(g.PlayerPos(), target)
	if after >= before {
		t.Fatalf("player gap grew from %f to %f", before, after)
	}
	if after > PlayerScale {
		t.Fatalf("player still %f away after 120 steps", after)
	}

	if g.playerWaypoint != 1 {
		t.Fatalf("player waypoint = %d, want 1 after arriving", g.playerWaypoint)
	}
}

func TestSteeringSettlesAtDestination(t *testing.T) {

	g, _ := newTestGame(t)

	for i := 0; i < 400; i++ {
		g.steerPlayer([]int{0, 1})
	}

	// Inside the arrival radius no acceleration applies, so drag must have
	// decayed the speed to rest rather than a jitter orbit.
	speed := math.Hypot(float64(g.playerSpeed.Data[0]), float64(g.playerSpeed.Data[1]))
	if speed > 0.01 {
		t.Fatalf("player still moving at %f units/frame", speed)
	}

	gap := geom.Dist2(g.PlayerPos(), g.world.nodes[1])
	if gap > PlayerScale*0.5 {
		t.Fatalf("player came to rest %f away, want within %f", gap, PlayerScale*0.5)
	}

	// And it stays put.
	before := g.PlayerPos()
	for i := 0; i < 20; i++ {
		g.steerPlayer([]int{1})
	}
	if geom.Dist2(before, g.PlayerPos()) > 0.1 {
		t.Fatal("player drifted after settling")
	}
}

func TestHighlightPathMarksAndRestores(t *testing.T) {

	g, _ := newTestGame(t)
	waypoints := g.world.waypointQuads()

	g.highlightPath([]int{0, 1})

	for i := 0; i < 2; i++ {
		if waypoints[i].Color != waypointHighlightColor {
			t.Fatalf("waypoint %d color = %v, want highlight", i, waypoints[i].Color.Data)
		}
		if waypoints[i].Scale.Data[0] != WaypointHighlightScale {
			t.Fatalf("waypoint %d scale = %f, want highlight", i, waypoints[i].Scale.Data[0])
		}
	}

	g.highlightPath([]int{1})

	if waypoints[0].Color != waypointColor || waypoints[0].Scale.Data[0] != WaypointScale {
		t.Fatal("waypoint 0 was not restored after leaving the path")
	}
	if waypoints[1].Color != waypointHighlightColor {
		t.Fatal("waypoint 1 lost its highlight")
	}

	g.highlightPath(nil)

	if waypoints[1].Color != waypointColor || waypoints[1].Scale.Data[0] != WaypointScale {
		t.Fatal("waypoint 1 was not restored by an empty path")
	}
}

func TestRenderSurvivesDrawError(t *testing.T) {

	g, rend := newTestGame(t)
	rend.err = errDraw{}

	// Must not panic; the frame is just skipped.
	g.Render()
}

type errDraw struct{}

func (errDraw) Error() string { return "draw failed" }
