package main

import (
	"os"

	"github.com/albertgoncalves/pathrs/camera"
	"github.com/albertgoncalves/pathrs/config"
	"github.com/albertgoncalves/pathrs/engine"
	"github.com/albertgoncalves/pathrs/floorplan"
	"github.com/albertgoncalves/pathrs/game"
	"github.com/albertgoncalves/pathrs/logging"
	"github.com/albertgoncalves/pathrs/renderer/rend2dgl"
	"github.com/bloeys/gglm/gglm"
	"github.com/veandco/go-sdl2/sdl"
)

const configPath = "config.yaml"

func loadPlan() (floorplan.Plan, error) {

	// An optional CLI argument overrides the embedded floor plan.
	data := floorplan.DefaultPlan
	if len(os.Args) > 1 {

		var err error
		data, err = os.ReadFile(os.Args[1])
		if err != nil {
			return floorplan.Plan{}, err
		}
	}

	return floorplan.Parse(data)
}

func main() {

	err := engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err:", err)
	}

	plan, err := loadPlan()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load floor plan. Err:", err)
	}

	// The renderer needs a live GL context, so the window comes first and
	// the renderer is attached after.
	window, err := engine.CreateOpenGLWindowCentered(
		cfg.Window.Title,
		cfg.Window.Width, cfg.Window.Height,
		engine.WindowFlags_RESIZABLE,
		nil,
	)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err:", err)
	}
	defer window.Destroy()

	engine.SetMSAA(cfg.Window.MSAA)
	engine.SetVSync(cfg.Window.VSync)

	cc := cfg.Renderer.ClearColor
	engine.SetClearColor(cc[0], cc[1], cc[2], cc[3])

	rend, err := rend2dgl.NewQuadRenderer(cfg.Renderer.InstanceCapacity)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create renderer. Err:", err)
	}
	defer rend.Destroy()
	window.Rend = rend

	// Camera extents use window coordinates, the same unit the mouse
	// position arrives in, so cursor picking stays exact on HiDPI displays
	// (the drawable size is only the viewport's concern).
	winWidth, winHeight := window.SDLWin.GetSize()
	cam := camera.NewOrtho2D(gglm.NewVec2(0, 0), float32(winWidth), float32(winHeight))

	g, err := game.NewGame(plan, cfg, rend, cam)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to build world. Err:", err)
	}

	window.EventCallbacks = append(window.EventCallbacks, func(event sdl.Event) {

		e, ok := event.(*sdl.WindowEvent)
		if !ok || e.Event != sdl.WINDOWEVENT_SIZE_CHANGED {
			return
		}

		w, h := window.SDLWin.GetSize()
		if w > 0 && h > 0 {
			g.Cam.Resize(float32(w), float32(h))
		}
	})

	engine.Run(g, window)
}
