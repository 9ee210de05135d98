package skyrail

import (
	"fmt"
	"time"
	"weak"

	"github.com/oliverbestmann/skyrail/color"
	"github.com/oliverbestmann/skyrail/gametime"
	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/gm"
)

// Bullet is a pooled projectile. It is inactive until launched and
// deactivates itself after flying for its lifetime, or on collision.
type Bullet struct {
	Entity

	config    BulletConfig
	lifetime  time.Duration
	spawnTime time.Duration

	// the entity the bullet spawns at, never kept alive by the bullet
	owner weak.Pointer[Entity]

	lights *LightManager
	laser  LightHandle
}

var _ Behavior = (*Bullet)(nil)

// NewBullet creates an inactive bullet. If lights is not nil and the config
// has a LaserRadius, the bullet allocates a point light following it while
// in flight.
func NewBullet(mesh gfx.Mesh, material gfx.Material, config BulletConfig, lights *LightManager) (*Bullet, error) {
	b := &Bullet{
		Entity:   newEntity(mesh, material),
		config:   config,
		lifetime: config.Lifetime(),
		lights:   lights,
	}

	b.SetScale(gm.Vec3Splat(config.Scale))
	b.SetActive(false)

	if lights != nil && config.LaserRadius > 0 {
		laser, err := lights.Add(gfx.PointLight{
			AmbientColor:  color.RGBA(0, 0.01, 0, 0),
			DiffuseColor:  color.RGBA(0.2, 1, 0.2, 0),
			SpecularColor: color.RGBA(0.5, 1, 0.5, 0),
		})

		if err != nil {
			return nil, fmt.Errorf("allocate laser light: %w", err)
		}

		b.laser = laser
	}

	return b, nil
}

func (b *Bullet) Kind() Kind {
	return KindBullet
}

// Link sets the entity the bullet is launched from.
func (b *Bullet) Link(owner *Entity) {
	b.owner = weak.Make(owner)
}

// Owner returns the linked owner, or nil if there is none anymore.
func (b *Bullet) Owner() *Entity {
	return b.owner.Value()
}

// Lifetime is the time the bullet stays active after launch.
func (b *Bullet) Lifetime() time.Duration {
	return b.lifetime
}

// SpawnTime returns the timestamp of the latest launch.
func (b *Bullet) SpawnTime() time.Duration {
	return b.spawnTime
}

// Launch places the bullet at its owner and activates it. The timestamp
// is the elapsed game time at launch.
func (b *Bullet) Launch(timestamp time.Duration) {
	if owner := b.owner.Value(); owner != nil {
		position := owner.Position()
		if b.config.SpawnAtOwnerEdge {
			position.Z += owner.Radius()
		}

		b.SetPosition(position)
	}

	b.spawnTime = timestamp
	b.SetActive(true)
	b.updateLaser()
}

func (b *Bullet) Update(vt gametime.VirtualTime) {
	if b.IsActive() {
		if vt.Elapsed >= b.spawnTime+b.lifetime {
			b.SetActive(false)
		} else {
			forward := gm.Forward(b.Rotation())
			b.Move(forward.Mul(b.config.Speed * vt.DeltaSecs))
		}
	}

	b.updateLaser()
}

func (b *Bullet) Collides() {
	b.SetActive(false)
	b.updateLaser()
}

// Release frees the laser light of the bullet.
func (b *Bullet) Release() {
	if b.lights != nil {
		b.lights.Remove(b.laser)
		b.laser = NoLight
	}
}

func (b *Bullet) updateLaser() {
	if b.lights == nil || b.laser == NoLight {
		return
	}

	radius := 0.0
	if b.IsActive() {
		radius = b.config.LaserRadius
	}

	trackLight(b.lights.Get(b.laser), b.Position(), radius)
}
