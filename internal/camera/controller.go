package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/isotd/internal/input"
)

// Default speeds in world units per second.
const (
	DefaultPanSpeed    = 30.0
	DefaultScrollSpeed = 60.0
)

// Controls is the input surface the controller reads.
type Controls interface {
	IsHeld(action input.Action) bool
	ScrollDelta() float32
}

// Controller pans the camera target from held actions: WASD on the
// horizontal plane, mouse wheel on the vertical axis.
type Controller struct {
	PanSpeed    float32
	ScrollSpeed float32
}

// NewController creates a controller with the given speeds.
func NewController(panSpeed, scrollSpeed float32) *Controller {
	return &Controller{
		PanSpeed:    panSpeed,
		ScrollSpeed: scrollSpeed,
	}
}

// Displacement returns the per-axis movement for one frame of dt seconds.
// Opposing inputs do not cancel: PanUp wins over PanDown, PanRight over
// PanLeft and scroll-up over scroll-down.
func (c *Controller) Displacement(in Controls, dt float32) mgl32.Vec3 {
	pan := c.PanSpeed * dt
	zoom := c.ScrollSpeed * dt

	var d mgl32.Vec3

	switch {
	case in.IsHeld(input.ActionPanUp):
		d[2] = pan
	case in.IsHeld(input.ActionPanDown):
		d[2] = -pan
	}

	switch {
	case in.IsHeld(input.ActionPanRight):
		d[0] = pan
	case in.IsHeld(input.ActionPanLeft):
		d[0] = -pan
	}

	switch scroll := in.ScrollDelta(); {
	case scroll > 0:
		d[1] = zoom
	case scroll < 0:
		d[1] = -zoom
	}

	return d
}

// Update moves cam.Target against the displacement: panning the view
// forward moves the target back. The target is not clamped.
func (c *Controller) Update(cam *Camera, in Controls, dt float32) mgl32.Vec3 {
	d := c.Displacement(in, dt)
	cam.Target = cam.Target.Sub(d)
	return d
}
