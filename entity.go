package skyrail

import (
	"github.com/oliverbestmann/skyrail/gametime"
	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/gm"
)

// Kind identifies the variant of a Behavior.
type Kind uint8

const (
	KindGeneric Kind = iota
	KindBullet
	KindPlayer
	KindTarget
	KindReticule
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "Generic"
	case KindBullet:
		return "Bullet"
	case KindPlayer:
		return "Player"
	case KindTarget:
		return "Target"
	case KindReticule:
		return "Reticule"
	default:
		return "Unknown"
	}
}

// Behavior is implemented by every kind of entity. The set of
// implementations is closed: *Entity, *Bullet, *Player, *Target and *Reticule.
type Behavior interface {
	// Base returns the shared entity state.
	Base() *Entity
	Kind() Kind

	// Update advances the entity by one frame. A no-op for inactive entities.
	Update(vt gametime.VirtualTime)

	// Collides is the reaction to a collision reported by CollisionCheck.
	Collides()

	// Draw issues the opaque draw of the entity. A no-op for inactive entities.
	Draw(dc DrawContext)
}

// DrawContext bundles the device and the per frame state passed to every draw.
type DrawContext struct {
	Device gfx.Device
	Frame  *gfx.Frame
}

// Entity is a movable, drawable object in the world. The world and normal
// matrices are derived from position, rotation and scale on first read after
// any change and cached until the next change.
//
// The zero value is not usable, create entities using NewEntity.
type Entity struct {
	position gm.Vec3
	rotation gm.Euler
	scale    gm.Vec3

	active bool

	dirty       bool
	world       gm.Mat4
	normalWorld gm.Mat4

	mesh         gfx.Mesh
	material     gfx.Material
	masterRadius float64
}

var _ Behavior = (*Entity)(nil)

// NewEntity creates an active entity with unit scale at the origin.
// The mesh may be nil, in which case the entity has a radius of zero
// and draws nothing.
func NewEntity(mesh gfx.Mesh, material gfx.Material) *Entity {
	e := newEntity(mesh, material)
	return &e
}

func newEntity(mesh gfx.Mesh, material gfx.Material) Entity {
	var masterRadius float64
	if mesh != nil {
		masterRadius = mesh.Radius()
	}

	return Entity{
		scale:        gm.Vec3One,
		active:       true,
		dirty:        true,
		mesh:         mesh,
		material:     material,
		masterRadius: masterRadius,
	}
}

func (e *Entity) Base() *Entity {
	return e
}

func (e *Entity) Kind() Kind {
	return KindGeneric
}

func (e *Entity) Position() gm.Vec3 {
	return e.position
}

func (e *Entity) Rotation() gm.Euler {
	return e.rotation
}

func (e *Entity) Scale() gm.Vec3 {
	return e.scale
}

func (e *Entity) SetPosition(position gm.Vec3) {
	e.position = position
	e.dirty = true
}

func (e *Entity) SetRotation(rotation gm.Euler) {
	e.rotation = rotation
	e.dirty = true
}

func (e *Entity) SetScale(scale gm.Vec3) {
	e.scale = scale
	e.dirty = true
}

// Move translates the entity by delta.
func (e *Entity) Move(delta gm.Vec3) {
	e.SetPosition(e.position.Add(delta))
}

// Spin adds delta to the euler angles of the entity.
func (e *Entity) Spin(delta gm.Euler) {
	e.SetRotation(e.rotation.Add(delta))
}

// Resize adds delta to the scale of the entity.
func (e *Entity) Resize(delta gm.Vec3) {
	e.SetScale(e.scale.Add(delta))
}

// World returns the matrix transforming local coordinates into world space:
// scale first, then rotation, then translation.
func (e *Entity) World() gm.Mat4 {
	e.recompute()
	return e.world
}

// NormalWorld returns the inverse transpose of World.
func (e *Entity) NormalWorld() gm.Mat4 {
	e.recompute()
	return e.normalWorld
}

func (e *Entity) recompute() {
	if !e.dirty {
		return
	}

	e.world = gm.WorldMatrix(e.position, e.rotation, e.scale)
	e.normalWorld = gm.NormalMatrix(e.world)
	e.dirty = false
}

// Radius returns the bounding radius of the mesh scaled by the Y component
// of the scale. This is an approximation for non uniform scales, used the
// same way by every collision and aim check.
func (e *Entity) Radius() float64 {
	return e.masterRadius * e.scale.Y
}

func (e *Entity) IsActive() bool {
	return e.active
}

func (e *Entity) SetActive(active bool) {
	e.active = active
}

func (e *Entity) Mesh() gfx.Mesh {
	return e.mesh
}

func (e *Entity) Material() gfx.Material {
	return e.material
}

// Update does nothing for a plain entity.
func (e *Entity) Update(gametime.VirtualTime) {
}

// Collides deactivates the entity.
func (e *Entity) Collides() {
	e.active = false
}

func (e *Entity) Draw(dc DrawContext) {
	if !e.active {
		return
	}

	e.drawMesh(dc, gfx.PassOpaque)
}

func (e *Entity) drawMesh(dc DrawContext, pass gfx.Pass) {
	if e.mesh == nil {
		return
	}

	dc.Device.DrawIndexed(gfx.DrawCall{
		Pass:        pass,
		Mesh:        e.mesh,
		Material:    e.material,
		World:       e.World(),
		NormalWorld: e.NormalWorld(),
		Frame:       dc.Frame,
	})
}
