package skyrail

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/skyrail/gm"
)

var worldUp = gm.Vec3{Y: 1}

// Camera is a perspective camera trailing behind a followed point.
type Camera struct {
	config CameraConfig

	aspect   float64
	position gm.Vec3

	view       gm.Mat4
	projection gm.Mat4
}

func NewCamera(config CameraConfig, width, height int) *Camera {
	c := &Camera{
		config: config,
		aspect: 1,
		view:   mgl32.Ident4(),
	}

	c.Resize(width, height)
	c.Follow(gm.Vec3Zero)

	return c
}

// Follow moves the camera to its offset relative to target, looking
// ahead of the target.
func (c *Camera) Follow(target gm.Vec3) {
	c.position = target.Add(c.config.Offset)
	center := target.Add(c.config.LookAhead)
	c.view = gm.LookAt(c.position, center, worldUp)
}

// Resize updates the aspect ratio of the projection. Empty sizes
// are ignored.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	c.aspect = float64(width) / float64(height)

	projection := gm.Perspective(c.config.FovY, c.aspect, c.config.Near, c.config.Far)

	// the world is left handed with +X to the right when looking
	// along +Z, mgl32 builds right handed projections.
	c.projection = projection.Mul4(mgl32.Scale3D(-1, 1, 1))
}

func (c *Camera) Position() gm.Vec3 {
	return c.position
}

func (c *Camera) View() gm.Mat4 {
	return c.view
}

func (c *Camera) Projection() gm.Mat4 {
	return c.projection
}

// Aspect returns the current width to height ratio.
func (c *Camera) Aspect() float64 {
	return c.aspect
}
