package skyrail

import (
	"fmt"

	"github.com/oliverbestmann/skyrail/color"
	"github.com/oliverbestmann/skyrail/gametime"
	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/gm"
	"github.com/oliverbestmann/skyrail/partycle"
)

// Player is the ship riding the rail. It moves forward at a constant speed
// and slides in the XY plane following the steering input.
type Player struct {
	Entity

	config PlayerConfig

	// lateral velocity, Z is unused
	velocity gm.Vec

	// steering input of the current frame, each component in [-1, 1]
	steer gm.Vec

	exhaust *partycle.Emitter

	lights *LightManager
	engine LightHandle
}

var _ Behavior = (*Player)(nil)

// NewPlayer creates an active player at the origin. The player takes ownership
// of the exhaust emitter, which may be nil.
func NewPlayer(mesh gfx.Mesh, material gfx.Material, config PlayerConfig, exhaust *partycle.Emitter, lights *LightManager) (*Player, error) {
	p := &Player{
		Entity:  newEntity(mesh, material),
		config:  config,
		exhaust: exhaust,
		lights:  lights,
	}

	if lights != nil && config.LightRadius > 0 {
		engine, err := lights.Add(gfx.PointLight{
			AmbientColor:  color.RGBA(0, 0, 0.02, 0),
			DiffuseColor:  color.RGBA(0.3, 0.6, 1, 0),
			SpecularColor: color.RGBA(0.5, 0.5, 0.5, 0),
			Radius:        float32(config.LightRadius),
		})

		if err != nil {
			return nil, fmt.Errorf("allocate engine light: %w", err)
		}

		p.engine = engine
	}

	p.syncAttachments()

	return p, nil
}

func (p *Player) Kind() Kind {
	return KindPlayer
}

// Accelerate sets the steering input for the next update. Only the X and Y
// components are used, each is clamped to [-1, 1].
func (p *Player) Accelerate(steer gm.Vec3) {
	p.steer = steer.XY().Clamp(gm.VecOne)
}

// Velocity returns the current lateral velocity.
func (p *Player) Velocity() gm.Vec {
	return p.velocity
}

func (p *Player) Update(vt gametime.VirtualTime) {
	if !p.IsActive() {
		return
	}

	dt := vt.DeltaSecs
	position := p.Position()

	force := p.steeringForce(position)

	if force == gm.VecZero {
		// drift to a halt without input
		p.velocity = p.velocity.Mul(max(0, 1-p.config.DecelRate*dt))
	} else {
		p.velocity = p.velocity.Add(force.Mul(p.config.SlideRate * dt))
	}

	position.X += p.velocity.X * dt
	position.Y += p.velocity.Y * dt
	position.Z += p.config.RailSpeed * dt

	// stop at the lateral caps
	capped := gm.Vec{X: position.X, Y: position.Y}.Clamp(gm.Vec{X: p.config.XCap, Y: p.config.YCap})
	if capped.X != position.X {
		p.velocity.X = 0
	}

	if capped.Y != position.Y {
		p.velocity.Y = 0
	}

	p.SetPosition(position.WithXY(capped))

	p.syncAttachments()

	if p.exhaust != nil {
		p.exhaust.Update(vt.Delta)
	}
}

// steeringForce returns the normalized steering direction. Steering beyond a
// cap is ignored and a player outside of a cap is pushed back.
func (p *Player) steeringForce(position gm.Vec3) gm.Vec {
	var force gm.Vec

	xCap, yCap := p.config.XCap, p.config.YCap

	if (p.steer.X < 0 && position.X > -xCap) || position.X > xCap {
		force.X -= 1
	}

	if (p.steer.X > 0 && position.X < xCap) || position.X < -xCap {
		force.X += 1
	}

	if (p.steer.Y < 0 && position.Y > -yCap) || position.Y > yCap {
		force.Y -= 1
	}

	if (p.steer.Y > 0 && position.Y < yCap) || position.Y < -yCap {
		force.Y += 1
	}

	return force.Normalized()
}

// WrapTo moves the player to the given z coordinate, keeping its
// lateral position.
func (p *Player) WrapTo(z float64) {
	p.SetPosition(p.Position().WithZ(z))
	p.syncAttachments()
}

// Collides does nothing, the player is never part of a collision check.
func (p *Player) Collides() {
}

// DrawEmitters draws the exhaust in the translucent pass.
func (p *Player) DrawEmitters(frame *gfx.Frame) {
	if p.exhaust != nil {
		p.exhaust.Draw(frame)
	}
}

// Release frees the exhaust emitter and the engine light.
func (p *Player) Release() {
	if p.exhaust != nil {
		p.exhaust.Release()
	}

	if p.lights != nil {
		p.lights.Remove(p.engine)
		p.engine = NoLight
	}
}

func (p *Player) syncAttachments() {
	position := p.Position()

	if p.exhaust != nil {
		p.exhaust.SetPosition(position.Add(p.config.ExhaustOffset))
	}

	if p.lights != nil {
		trackLight(p.lights.Get(p.engine), position, p.config.LightRadius)
	}
}
