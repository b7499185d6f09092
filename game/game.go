// The game package drives the pathfinding demo: it builds the world from a
// floor plan, steers the player along the shortest path toward the waypoint
// under the cursor, and submits one instance batch per frame.
package game

import (
	"time"

	"github.com/albertgoncalves/pathrs/camera"
	"github.com/albertgoncalves/pathrs/config"
	"github.com/albertgoncalves/pathrs/engine"
	"github.com/albertgoncalves/pathrs/floorplan"
	"github.com/albertgoncalves/pathrs/geom"
	"github.com/albertgoncalves/pathrs/input"
	"github.com/albertgoncalves/pathrs/logging"
	"github.com/albertgoncalves/pathrs/pathfinding"
	"github.com/albertgoncalves/pathrs/renderer"
	"github.com/albertgoncalves/pathrs/timing"
	"github.com/bloeys/gglm/gglm"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	zoomStep = 0.1
	zoomMin  = 0.25
	zoomMax  = 4
)

type Game struct {
	Rend renderer.Render
	Cam  camera.Camera

	cfg   config.Config
	world world
	tr    geom.Transform

	playerWaypoint int
	playerSpeed    gglm.Vec2
	camSpeed       gglm.Vec2

	cursorWorld gglm.Vec2
	prevPath    []int

	statsStart   time.Time
	statsFrames  int
	statsVisited int
}

// NewGame builds the world of plan and wires it to rend. The camera starts
// centered on the origin, where the floor quad sits.
func NewGame(plan floorplan.Plan, cfg config.Config, rend renderer.Render, cam camera.Camera) (*Game, error) {

	w, err := buildWorld(plan)
	if err != nil {
		return nil, err
	}

	w.weights = pathfinding.BuildWeights(w.nodes, plan.WaypointEdges())

	g := &Game{
		Rend:       rend,
		Cam:        cam,
		cfg:        cfg,
		world:      w,
		tr:         geom.NewTransform(),
		statsStart: time.Now(),
	}
	g.tr.SetProjection(&g.Cam.ProjMat)
	g.tr.SetView(&g.Cam.ViewMat)

	return g, nil
}

func (g *Game) Init() {
	logging.InfoLog.Printf(
		"World ready: %d quads, %d waypoints\n",
		len(g.world.quads), g.world.waypointCount,
	)
}

func (g *Game) Update() {

	if input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
		return
	}

	g.updateCamera()

	x, y := input.GetMousePos()
	g.cursorWorld = g.Cam.ScreenToWorld(float32(x), float32(y))

	cursorWaypoint := geom.Nearest(g.world.waypointQuads(), g.cursorWorld)

	path, visited := pathfinding.ShortestPath(
		g.world.weights, g.world.waypointCount, g.playerWaypoint, cursorWaypoint,
	)
	g.statsVisited += visited

	g.highlightPath(path)

	if path != nil {
		g.steerPlayer(path)
	}

	g.statsFrames++
	if elapsed := time.Since(g.statsStart); elapsed >= time.Second {
		logging.InfoLog.Printf(
			"frames: %d | ns/frame: %d | avg fps: %.1f | nodes visited: %d | cursor: (%.1f, %.1f) | path: %d\n",
			g.statsFrames,
			elapsed.Nanoseconds()/int64(g.statsFrames),
			timing.GetAvgFPS(),
			g.statsVisited,
			g.cursorWorld.Data[0], g.cursorWorld.Data[1],
			len(path),
		)
		g.statsStart = time.Now()
		g.statsFrames = 0
		g.statsVisited = 0
	}
}

func (g *Game) updateCamera() {

	dir := gglm.NewVec2(0, 0)
	if input.KeyDown(sdl.K_w) {
		dir.Data[1]++
	}
	if input.KeyDown(sdl.K_s) {
		dir.Data[1]--
	}
	if input.KeyDown(sdl.K_d) {
		dir.Data[0]++
	}
	if input.KeyDown(sdl.K_a) {
		dir.Data[0]--
	}

	if dir.Data[0] != 0 || dir.Data[1] != 0 {
		g.camSpeed = geom.Add2(g.camSpeed, geom.Scale2(geom.Norm2(dir), g.cfg.Camera.Accel))
	}
	g.camSpeed = geom.Scale2(g.camSpeed, g.cfg.Camera.Drag)
	g.Cam.Pos = geom.Add2(g.Cam.Pos, g.camSpeed)

	if n := input.GetMouseWheelYNorm(); n != 0 {

		g.Cam.Zoom *= 1 + zoomStep*float32(n)

		if g.Cam.Zoom < zoomMin {
			g.Cam.Zoom = zoomMin
		} else if g.Cam.Zoom > zoomMax {
			g.Cam.Zoom = zoomMax
		}
	}

	g.Cam.Update()
	g.tr.SetProjection(&g.Cam.ProjMat)
	g.tr.SetView(&g.Cam.ViewMat)
}

// highlightPath restores last frame's highlighted waypoints, then marks the
// waypoints along path with the highlight color and scale.
func (g *Game) highlightPath(path []int) {

	waypoints := g.world.waypointQuads()

	for _, i := range g.prevPath {
		waypoints[i].Color = waypointColor
		waypoints[i].Scale = gglm.NewVec2(WaypointScale, WaypointScale)
	}

	for _, i := range path {
		waypoints[i].Color = waypointHighlightColor
		waypoints[i].Scale = gglm.NewVec2(WaypointHighlightScale, WaypointHighlightScale)
	}

	g.prevPath = g.prevPath[:0]
	g.prevPath = append(g.prevPath, path...)
}

// steerPlayer accelerates the player toward the next waypoint on path and
// advances the player's waypoint once it gets close enough. Acceleration
// only applies outside the arrival radius, so drag brings the player to
// rest at its destination instead of orbiting it.
func (g *Game) steerPlayer(path []int) {

	player := &g.world.quads[g.world.playerIdx]

	target := path[len(path)-1]
	if len(path) > 1 {
		target = path[1]
	}

	if geom.Dist2(player.Translate, g.world.nodes[target]) <= PlayerScale*0.5 {
		g.playerWaypoint = target
	} else {
		step := geom.Sub2(g.world.nodes[target], player.Translate)
		g.playerSpeed = geom.Add2(g.playerSpeed, geom.Scale2(geom.Norm2(step), g.cfg.Player.Accel))
	}

	g.playerSpeed = geom.Scale2(g.playerSpeed, g.cfg.Player.Drag)
	player.Translate = geom.Add2(player.Translate, g.playerSpeed)
}

func (g *Game) Render() {

	if err := g.Rend.DrawQuads(g.world.quads, &g.tr); err != nil {
		logging.ErrLog.Printf("draw failed, skipping frame: %v\n", err)
	}
}

func (g *Game) DeInit() {
	logging.InfoLog.Println("Game shutting down")
}

// PlayerPos returns the current world position of the player quad.
func (g *Game) PlayerPos() gglm.Vec2 {
	return g.world.quads[g.world.playerIdx].Translate
}

// CursorWorld returns the world point under the cursor as of the last
// Update.
func (g *Game) CursorWorld() gglm.Vec2 {
	return g.cursorWorld
}
