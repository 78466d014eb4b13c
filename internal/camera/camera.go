// Package camera holds the orbit camera and the controller that pans it.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection defaults.
const (
	DefaultFOV      = 45.0 // degrees
	DefaultNear     = 0.1
	DefaultFar      = 1000.0
	DefaultDistance = 14.0
	DefaultPitch    = 0.6 // radians above the horizon

	// CellAspect is the height/width ratio of a terminal cell.
	CellAspect = 2.0
)

// Camera orbits Target at Distance, rotated by XZAngle around the up axis
// and raised by Pitch.
type Camera struct {
	Target   mgl32.Vec3
	XZAngle  float32
	Pitch    float32
	Distance float32
	FOV      float32
}

// New returns a camera looking at the origin with default projection.
func New() *Camera {
	return &Camera{
		Pitch:    DefaultPitch,
		Distance: DefaultDistance,
		FOV:      DefaultFOV,
	}
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() mgl32.Vec3 {
	cosP := float32(math.Cos(float64(c.Pitch)))
	offset := mgl32.Vec3{
		c.Distance * cosP * float32(math.Cos(float64(c.XZAngle))),
		c.Distance * float32(math.Sin(float64(c.Pitch))),
		c.Distance * cosP * float32(math.Sin(float64(c.XZAngle))),
	}
	return c.Target.Add(offset)
}

// View returns the view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
}

// ViewProjection returns projection*view for a w×h cell viewport.
func (c *Camera) ViewProjection(w, h int) mgl32.Mat4 {
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / (float32(h) * CellAspect)
	}
	proj := mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, DefaultNear, DefaultFar)
	return proj.Mul4(c.View())
}

// Project maps a world point into viewport cell coordinates.
// ok is false for points behind the camera.
func (c *Camera) Project(p mgl32.Vec3, w, h int) (x, y float32, ok bool) {
	return ProjectWith(c.ViewProjection(w, h), p, w, h)
}

// ProjectWith projects p with a precomputed view-projection matrix.
func ProjectWith(vp mgl32.Mat4, p mgl32.Vec3, w, h int) (x, y float32, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= DefaultNear {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) / 2 * float32(w)
	y = (1 - ndc.Y()) / 2 * float32(h)
	return x, y, true
}
