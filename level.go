package skyrail

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/skyrail/gametime"
	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/gm"
	"github.com/oliverbestmann/skyrail/partycle"
)

// Intents is the input of a single frame, already translated from key state.
type Intents struct {
	// steering direction, X and Y in [-1, 1]
	Steer gm.Vec3

	Fire bool
}

// Assets are the device side resources a level draws with.
type Assets struct {
	Device gfx.Device

	PlayerMesh   gfx.Mesh
	BulletMesh   gfx.Mesh
	TargetMesh   gfx.Mesh
	ReticuleMesh gfx.Mesh

	PlayerMaterial   gfx.Material
	BulletMaterial   gfx.Material
	TargetMaterial   gfx.Material
	ReticuleMaterial gfx.Material
	ParticleMaterial gfx.Material
}

// Level is the complete scene: the player on its rail, the bullet pool,
// the targets, the reticule, lights and camera, and the score.
type Level struct {
	config Config
	device gfx.Device

	lights   *LightManager
	camera   *Camera
	player   *Player
	fire     *FireControl
	targets  *TargetManager
	reticule *Reticule

	score int
	laps  int
}

// NewLevel validates the config and builds the scene. The width and height
// of the viewport are used for the camera projection.
func NewLevel(config Config, assets Assets, width, height int) (*Level, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if assets.Device == nil {
		return nil, errors.New("level needs a device")
	}

	l := &Level{
		config: config,
		device: assets.Device,
		lights: NewLightManager(),
		camera: NewCamera(config.Camera, width, height),
	}

	if err := l.build(assets); err != nil {
		l.Release()
		return nil, err
	}

	l.camera.Follow(l.player.Position())

	slog.Info("Level ready",
		slog.Int("targets", len(l.targets.Targets())),
		slog.Int("bullets", len(l.fire.Bullets())),
		slog.Int("pointLights", l.lights.Len()))

	return l, nil
}

func (l *Level) build(assets Assets) error {
	config := l.config

	exhaust, err := l.newEmitter(config.Exhaust, assets.ParticleMaterial)
	if err != nil {
		return fmt.Errorf("create exhaust: %w", err)
	}

	l.player, err = NewPlayer(assets.PlayerMesh, assets.PlayerMaterial, config.Player, exhaust, l.lights)
	if err != nil {
		exhaust.Release()
		return fmt.Errorf("create player: %w", err)
	}

	bullets := make([]*Bullet, 0, config.PoolSize())
	for range config.PoolSize() {
		bullet, err := NewBullet(assets.BulletMesh, assets.BulletMaterial, config.Bullet, l.lights)
		if err != nil {
			for _, bullet := range bullets {
				bullet.Release()
			}

			return fmt.Errorf("create bullet: %w", err)
		}

		bullet.Link(&l.player.Entity)
		bullets = append(bullets, bullet)
	}

	l.fire, err = NewFireControl(bullets, config.Fire.Delay)
	if err != nil {
		for _, bullet := range bullets {
			bullet.Release()
		}

		return fmt.Errorf("create fire control: %w", err)
	}

	// prototypes are only needed to clone the emitters of each target
	thruster, err := l.newEmitter(config.Thruster, assets.ParticleMaterial)
	if err != nil {
		return fmt.Errorf("create thruster: %w", err)
	}

	defer thruster.Release()

	explosion, err := l.newEmitter(config.Explosion, assets.ParticleMaterial)
	if err != nil {
		return fmt.Errorf("create explosion: %w", err)
	}

	defer explosion.Release()

	l.targets, err = NewTargetManager(config.Targets, assets.TargetMesh, assets.TargetMaterial, thruster, explosion, l.lights)
	if err != nil {
		return fmt.Errorf("create targets: %w", err)
	}

	aim := Aim{
		Range:              config.Bullet.Range,
		BulletRadius:       bullets[0].Radius(),
		TargetRadiusFactor: config.Reticule.TargetRadiusFactor,
	}

	l.reticule = NewReticule(assets.ReticuleMesh, assets.ReticuleMaterial, aim, l.player, l.targets)

	return nil
}

func (l *Level) newEmitter(config partycle.EmitterConfig, material gfx.Material) (*partycle.Emitter, error) {
	config.Material = material
	return partycle.New(l.device, config)
}

// Update advances the scene by one frame.
func (l *Level) Update(vt gametime.VirtualTime, intents Intents) {
	l.player.Accelerate(intents.Steer)
	l.player.Update(vt)

	l.fire.Fire(vt, intents.Fire)

	for _, bullet := range l.fire.Bullets() {
		bullet.Update(vt)
	}

	l.targets.Update(vt)

	l.score += CollisionCheck(l.fire.Bullets(), l.targets.Targets())

	if l.player.Position().Z >= l.config.LevelLength {
		l.wrap()
	}

	l.reticule.Update(vt)
	l.camera.Follow(l.player.Position())
}

// wrap moves the player and all bullets in flight back by the level length
// and brings all targets back to life.
func (l *Level) wrap() {
	shift := gm.Vec3{Z: -l.config.LevelLength}

	l.player.WrapTo(l.player.Position().Z + shift.Z)

	for _, bullet := range l.fire.Bullets() {
		if bullet.IsActive() {
			bullet.Move(shift)
		}
	}

	l.targets.ResetTargets()
	l.laps += 1

	slog.Debug("Level wrapped",
		slog.Int("laps", l.laps),
		slog.Int("score", l.score))
}

// Frame collects camera and light state for the draw calls of this frame.
func (l *Level) Frame() *gfx.Frame {
	return &gfx.Frame{
		View:           l.camera.View(),
		Projection:     l.camera.Projection(),
		CameraPosition: l.camera.Position().Mgl(),
		Directional:    l.lights.Directional,
		PointLights:    l.lights.PointLights(),
	}
}

// Draw issues all draw calls of the scene, opaque geometry first, then
// particles and the reticule.
func (l *Level) Draw() {
	frame := l.Frame()
	dc := DrawContext{Device: l.device, Frame: frame}

	l.player.Draw(dc)

	for _, bullet := range l.fire.Bullets() {
		bullet.Draw(dc)
	}

	l.targets.Draw(dc)

	l.targets.DrawEmitters(frame)
	l.player.DrawEmitters(frame)
	l.reticule.Draw(dc)
}

// Resize updates the camera projection to a new viewport size.
func (l *Level) Resize(width, height int) {
	l.camera.Resize(width, height)
}

// Score returns the number of hits so far.
func (l *Level) Score() int {
	return l.score
}

// Laps returns how often the level wrapped around.
func (l *Level) Laps() int {
	return l.laps
}

func (l *Level) Player() *Player {
	return l.player
}

func (l *Level) FireControl() *FireControl {
	return l.fire
}

func (l *Level) Targets() *TargetManager {
	return l.targets
}

func (l *Level) Reticule() *Reticule {
	return l.reticule
}

func (l *Level) Camera() *Camera {
	return l.camera
}

func (l *Level) Lights() *LightManager {
	return l.lights
}

// Release frees all device resources and lights of the level.
func (l *Level) Release() {
	if l.targets != nil {
		l.targets.Release()
	}

	if l.fire != nil {
		l.fire.Release()
	}

	if l.player != nil {
		l.player.Release()
	}
}
