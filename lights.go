package skyrail

import (
	"errors"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/skyrail/color"
	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/gm"
)

var ErrTooManyLights = errors.New("too many point lights")

// LightHandle refers to a point light owned by the LightManager.
// The zero value refers to no light.
type LightHandle int

const NoLight LightHandle = 0

// LightManager holds the directional light and a fixed number of point light
// slots. Entities own their point lights through handles and update them in
// place every frame.
type LightManager struct {
	Directional gfx.DirectionalLight

	lights [gfx.MaxPointLights]gfx.PointLight
	used   [gfx.MaxPointLights]bool
	count  int
}

func NewLightManager() *LightManager {
	return &LightManager{
		Directional: gfx.DirectionalLight{
			AmbientColor:  color.Gray(0.05),
			DiffuseColor:  color.Gray(0.8),
			SpecularColor: color.Gray(0.3),
			Direction:     mgl32.Vec3{0.3, -1, 0.5}.Normalize(),
		},
	}
}

// Add stores a copy of light in a free slot.
func (m *LightManager) Add(light gfx.PointLight) (LightHandle, error) {
	for idx := range m.used {
		if m.used[idx] {
			continue
		}

		m.used[idx] = true
		m.lights[idx] = light
		m.count += 1

		return LightHandle(idx + 1), nil
	}

	slog.Warn("No free point light slot", slog.Int("capacity", len(m.lights)))
	return NoLight, ErrTooManyLights
}

// Get returns the light referenced by handle, or nil if the handle does
// not refer to a light.
func (m *LightManager) Get(handle LightHandle) *gfx.PointLight {
	idx := int(handle) - 1
	if idx < 0 || idx >= len(m.lights) || !m.used[idx] {
		return nil
	}

	return &m.lights[idx]
}

// Remove frees the slot of the given light. Removing an unknown
// handle does nothing.
func (m *LightManager) Remove(handle LightHandle) {
	idx := int(handle) - 1
	if idx < 0 || idx >= len(m.lights) || !m.used[idx] {
		return
	}

	m.used[idx] = false
	m.lights[idx] = gfx.PointLight{}
	m.count -= 1
}

// Len returns the number of allocated point lights.
func (m *LightManager) Len() int {
	return m.count
}

// PointLights returns a compact copy of all allocated point lights.
func (m *LightManager) PointLights() []gfx.PointLight {
	lights := make([]gfx.PointLight, 0, m.count)

	for idx, used := range m.used {
		if used {
			lights = append(lights, m.lights[idx])
		}
	}

	return lights
}

// trackLight moves the light to position and sets its radius. Nil lights are ignored.
func trackLight(light *gfx.PointLight, position gm.Vec3, radius float64) {
	if light == nil {
		return
	}

	light.Position = position.Mgl()
	light.Radius = float32(radius)
}
