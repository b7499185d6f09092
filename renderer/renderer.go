package renderer

import (
	"errors"

	"github.com/albertgoncalves/pathrs/geom"
)

// ErrDeviceUnavailable is returned when no usable graphics context exists.
var ErrDeviceUnavailable = errors.New("graphics device unavailable")

// Render is the draw surface the game code talks to. DrawQuads must only
// be called between FrameStart and FrameEnd, on the thread owning the
// graphics context.
type Render interface {
	FrameStart()
	DrawQuads(instances []geom.Instance, tr *geom.Transform) error
	FrameEnd()
}
