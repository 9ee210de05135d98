package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/skyrail/color"
)

// MaxPointLights is the size of the point light array in the lighting blob.
const MaxPointLights = 64

type DirectionalLight struct {
	AmbientColor  color.Color
	DiffuseColor  color.Color
	SpecularColor color.Color
	Direction     mgl32.Vec3
}

// PointLight is a light source with a limited range. A radius of
// zero switches the light off.
type PointLight struct {
	AmbientColor  color.Color
	DiffuseColor  color.Color
	SpecularColor color.Color
	Position      mgl32.Vec3
	Radius        float32
}

// Frame holds the per frame state shared by all draw calls.
type Frame struct {
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	CameraPosition mgl32.Vec3

	Directional DirectionalLight
	PointLights []PointLight
}
