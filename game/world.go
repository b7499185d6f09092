package game

import (
	"fmt"

	"github.com/albertgoncalves/pathrs/floorplan"
	"github.com/albertgoncalves/pathrs/geom"
	"github.com/bloeys/gglm/gglm"
)

// World-space sizing of floor plan cells and the actors on them.
const (
	FloorScale = 35.0

	WaypointScale          = 4.5
	WaypointHighlightScale = 5.75
	PlayerScale            = 16.5
)

var (
	floorColor    = gglm.NewVec3(0.325, 0.375, 0.525)
	wallColor     = gglm.NewVec3(1, 1, 1)
	playerColor   = gglm.NewVec3(1, 0.5, 0.75)
	waypointColor = gglm.NewVec3(0.4, 0.875, 0.9)

	waypointHighlightColor = gglm.NewVec3(0.4, 1, 0.9)
)

// world is the per-session instance list plus the waypoint graph built
// from a floor plan. Instance order is the draw order: floor first, then
// walls, then waypoints, player on top.
type world struct {
	quads []geom.Instance

	firstWaypoint int
	waypointCount int
	playerIdx     int

	nodes   []gglm.Vec2
	weights []float32
}

// cellToWorld maps a grid cell to the world position of its center. The
// plan is centered on the origin and y grows up in world space, so rows
// lower in the file sit lower on screen.
func cellToWorld(c floorplan.Cell, bounds gglm.Vec2) gglm.Vec2 {

	k := gglm.NewVec2(FloorScale, -FloorScale)

	out := gglm.NewVec2(float32(c.X), float32(c.Y))
	out = geom.Sub2(out, geom.Scale2(bounds, 0.5))
	out = geom.Mul2(out, k)
	out = geom.Add2(out, geom.Scale2(k, 0.5))

	return out
}

func wallInstance(w floorplan.Wall, bounds gglm.Vec2) geom.Instance {

	min := gglm.NewVec2(float32(w.Min.X), float32(w.Min.Y))
	max := gglm.NewVec2(float32(w.Max.X), float32(w.Max.Y))

	center := geom.Scale2(geom.Add2(min, max), 0.5)
	center = geom.Sub2(center, geom.Scale2(bounds, 0.5))
	center = geom.Mul2(center, gglm.NewVec2(FloorScale, -FloorScale))
	center = geom.Add2(center, gglm.NewVec2(FloorScale*0.5, -FloorScale*0.5))

	// A run spans its cell count along its axis and stays one world unit
	// thick across it.
	scale := gglm.NewVec2(
		max.Data[0]-min.Data[0]+1,
		max.Data[1]-min.Data[1]+1,
	)
	if w.Horizontal {
		scale.Data[0] *= FloorScale
	} else {
		scale.Data[1] *= FloorScale
	}

	return geom.Instance{Translate: center, Scale: scale, Color: wallColor}
}

// buildWorld assembles the instance list and waypoint graph of a plan.
func buildWorld(plan floorplan.Plan) (world, error) {

	if len(plan.Waypoints) == 0 {
		return world{}, fmt.Errorf("floor plan has no waypoints")
	}

	bounds := gglm.NewVec2(float32(plan.Width), float32(plan.Height))

	w := world{
		quads: make([]geom.Instance, 0, 2+len(plan.Walls)+len(plan.Waypoints)),
	}

	w.quads = append(w.quads, geom.Instance{
		Translate: gglm.NewVec2(0, 0),
		Scale:     gglm.NewVec2(float32(plan.Width)*FloorScale, float32(plan.Height)*FloorScale),
		Color:     floorColor,
	})

	for _, wall := range plan.Walls {
		w.quads = append(w.quads, wallInstance(wall, bounds))
	}

	w.firstWaypoint = len(w.quads)
	w.waypointCount = len(plan.Waypoints)

	w.nodes = make([]gglm.Vec2, 0, len(plan.Waypoints))
	for _, c := range plan.Waypoints {

		pos := cellToWorld(c, bounds)
		w.nodes = append(w.nodes, pos)

		w.quads = append(w.quads, geom.Instance{
			Translate: pos,
			Scale:     gglm.NewVec2(WaypointScale, WaypointScale),
			Color:     waypointColor,
		})
	}

	// Player starts on the first waypoint, drawn last so it stays visible
	// over everything else.
	w.playerIdx = len(w.quads)
	w.quads = append(w.quads, geom.Instance{
		Translate: w.nodes[0],
		Scale:     gglm.NewVec2(PlayerScale, PlayerScale),
		Color:     playerColor,
	})

	return w, nil
}

func (w *world) waypointQuads() []geom.Instance {
	return w.quads[w.firstWaypoint : w.firstWaypoint+w.waypointCount]
}
