// The camera package provides a 2D orthographic camera. World units equal
// framebuffer pixels at zoom 1; the view matrix carries the camera
// position so panning never touches the projection, and resizing never
// touches the view.
package camera

import (
	"github.com/bloeys/gglm/gglm"
)

type Camera struct {
	// Pos is the world point at the center of the screen
	Pos  gglm.Vec2
	Zoom float32

	WinWidth  float32
	WinHeight float32

	NearClip float32
	FarClip  float32

	ProjMat gglm.Mat4
	ViewMat gglm.Mat4
}

// NewOrtho2D returns a camera centered on pos. Update has already run, so
// ProjMat/ViewMat are valid immediately.
func NewOrtho2D(pos gglm.Vec2, winWidth, winHeight float32) Camera {

	cam := Camera{
		Pos:       pos,
		Zoom:      1,
		WinWidth:  winWidth,
		WinHeight: winHeight,
		NearClip:  0.1,
		FarClip:   10,
	}

	cam.Update()
	return cam
}

// Update recomputes ProjMat and ViewMat from the current fields. Call
// after mutating Pos, Zoom or the window extents.
func (c *Camera) Update() {

	halfW := c.WinWidth * 0.5 / c.Zoom
	halfH := c.WinHeight * 0.5 / c.Zoom
	c.ProjMat = gglm.Ortho(-halfW, halfW, -halfH, halfH, c.NearClip, c.FarClip).Mat4

	eye := gglm.NewVec3(c.Pos.Data[0], c.Pos.Data[1], 1)
	target := gglm.NewVec3(c.Pos.Data[0], c.Pos.Data[1], 0)
	up := gglm.NewVec3(0, 1, 0)
	c.ViewMat = gglm.LookAtRH(&eye, &target, &up).Mat4
}

// ScreenToWorld maps a window-space cursor position (origin top-left,
// y down) to the world point under it.
func (c *Camera) ScreenToWorld(x, y float32) gglm.Vec2 {

	return gglm.NewVec2(
		c.Pos.Data[0]+(x/c.WinWidth-0.5)*(c.WinWidth/c.Zoom),
		c.Pos.Data[1]-(y/c.WinHeight-0.5)*(c.WinHeight/c.Zoom),
	)
}

// Resize updates the window extents and recomputes the projection.
func (c *Camera) Resize(winWidth, winHeight float32) {
	c.WinWidth = winWidth
	c.WinHeight = winHeight
	c.Update()
}
