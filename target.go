package skyrail

import (
	"fmt"

	"github.com/oliverbestmann/skyrail/color"
	"github.com/oliverbestmann/skyrail/gametime"
	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/partycle"
)

// Target is a drone that can be shot down. It owns a thruster emitter that
// runs while the target is alive, an explosion emitter that plays once the
// target was hit, and an engine light.
type Target struct {
	Entity

	config TargetsConfig

	thruster  *partycle.Emitter
	explosion *partycle.Emitter

	lights *LightManager
	engine LightHandle
}

var _ Behavior = (*Target)(nil)

// NewTarget creates an active target taking ownership of both emitters.
func NewTarget(
	mesh gfx.Mesh, material gfx.Material,
	config TargetsConfig,
	thruster, explosion *partycle.Emitter,
	lights *LightManager,
) (*Target, error) {
	t := &Target{
		Entity:    newEntity(mesh, material),
		config:    config,
		thruster:  thruster,
		explosion: explosion,
		lights:    lights,
	}

	explosion.SetActive(false)

	if lights != nil {
		engine, err := lights.Add(gfx.PointLight{
			AmbientColor:  color.RGBA(0.01, 0, 0, 0),
			DiffuseColor:  color.RGBA(1, 0, 0, 0),
			SpecularColor: color.RGBA(0.5, 0.5, 0.5, 0),
			Radius:        float32(config.EngineLightRadius),
		})

		if err != nil {
			return nil, fmt.Errorf("allocate engine light: %w", err)
		}

		t.engine = engine
	}

	return t, nil
}

func (t *Target) Kind() Kind {
	return KindTarget
}

func (t *Target) Thruster() *partycle.Emitter {
	return t.thruster
}

func (t *Target) Explosion() *partycle.Emitter {
	return t.explosion
}

// Engine returns the engine light, or nil if the target has none.
func (t *Target) Engine() *gfx.PointLight {
	if t.lights == nil {
		return nil
	}

	return t.lights.Get(t.engine)
}

// Update runs the thruster while the target is active. Once the target is
// hit, only the explosion keeps running, and the engine light goes dark
// as soon as the explosion has finished.
func (t *Target) Update(vt gametime.VirtualTime) {
	position := t.Position()

	if !t.IsActive() {
		t.explosion.SetPosition(position)
		t.explosion.Update(vt.Delta)

		if !t.explosion.IsActive() {
			if engine := t.Engine(); engine != nil {
				engine.Radius = 0
			}
		}

		return
	}

	t.thruster.SetPosition(position.Add(t.config.ThrusterOffset))
	t.thruster.Update(vt.Delta)

	// the engine glows at the front of the target
	trackLight(t.Engine(), position.WithZ(position.Z+t.Radius()), t.config.EngineLightRadius)
}

// Collides deactivates the target, fires the explosion
// and shuts down the thruster.
func (t *Target) Collides() {
	t.SetActive(false)
	t.explosion.SetPosition(t.Position())
	t.explosion.Restart()
	t.thruster.SetActive(false)
}

// Reset brings a target back to life: active, thruster running,
// no explosion. Particles left over from the previous run are dropped.
func (t *Target) Reset() {
	t.SetActive(true)

	t.thruster.Clear()
	t.thruster.Restart()

	t.explosion.Clear()
	t.explosion.SetActive(false)
}

// DrawEmitters draws the explosion and the thruster in the translucent pass.
// Unlike Draw this also draws for inactive targets.
func (t *Target) DrawEmitters(frame *gfx.Frame) {
	t.explosion.Draw(frame)
	t.thruster.Draw(frame)
}

// Release frees both emitters and the engine light.
func (t *Target) Release() {
	t.explosion.Release()
	t.thruster.Release()

	if t.lights != nil {
		t.lights.Remove(t.engine)
		t.engine = NoLight
	}
}
