package skyrail

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/oliverbestmann/skyrail/color"
	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/gm"
	"github.com/oliverbestmann/skyrail/partycle"
)

var ErrInvalidConfig = errors.New("invalid config")

type BulletConfig struct {
	// units per second along the bullets forward axis
	Speed float64

	// distance a bullet travels before it is deactivated
	Range float64

	// uniform scale applied to the bullet mesh
	Scale float64

	// spawn bullets at the front edge of the owner instead of its center
	SpawnAtOwnerEdge bool

	// radius of the point light following each bullet. Zero disables it.
	LaserRadius float64
}

// Lifetime is the time a bullet needs to travel its full range.
func (c BulletConfig) Lifetime() time.Duration {
	return time.Duration(c.Range / c.Speed * float64(time.Second))
}

type FireConfig struct {
	// cooldown between two shots
	Delay time.Duration

	// number of pooled bullets. Zero derives the smallest pool
	// that never runs out of bullets, see MinPoolSize.
	PoolSize int
}

// MinPoolSize returns the number of bullets that can be in flight at once
// when firing every delay, plus one.
func MinPoolSize(lifetime, delay time.Duration) int {
	return int(math.Ceil(float64(lifetime)/float64(delay))) + 1
}

type TargetsConfig struct {
	Count int

	// distance between two targets along Z
	Spacing float64

	// lateral caps for randomized placement
	Width, Height float64

	BaseY float64

	// place targets randomly within Width and Height instead of on a line
	Randomize bool
	Seed      uint64

	// offset of the thruster emitter relative to the target
	ThrusterOffset gm.Vec3

	EngineLightRadius float64
}

type ReticuleConfig struct {
	// widens the lateral aim window: a target qualifies if the squared
	// lateral distance is at most bulletRadius² + TargetRadiusFactor·radius²
	TargetRadiusFactor float64
}

type PlayerConfig struct {
	// forward speed along the rail
	RailSpeed float64

	// lateral acceleration while steering
	SlideRate float64

	// fraction of the lateral velocity lost per second without steering
	DecelRate float64

	// lateral movement caps
	XCap, YCap float64

	// offset of the exhaust emitter relative to the player
	ExhaustOffset gm.Vec3

	// radius of the engine light following the player
	LightRadius float64
}

type CameraConfig struct {
	FovY      gm.Rad
	Near, Far float64

	// eye position relative to the followed target
	Offset gm.Vec3

	// look-at point relative to the followed target
	LookAhead gm.Vec3
}

type Config struct {
	Bullet   BulletConfig
	Fire     FireConfig
	Targets  TargetsConfig
	Reticule ReticuleConfig
	Player   PlayerConfig
	Camera   CameraConfig

	// the player wraps back to z = 0 once passing this distance
	LevelLength float64

	Thruster  partycle.EmitterConfig
	Explosion partycle.EmitterConfig
	Exhaust   partycle.EmitterConfig
}

func DefaultConfig() Config {
	return Config{
		Bullet: BulletConfig{
			Speed:       30,
			Range:       50,
			Scale:       0.2,
			LaserRadius: 0.5,
		},

		Fire: FireConfig{
			Delay: 500 * time.Millisecond,
		},

		Targets: TargetsConfig{
			Count:             30,
			Spacing:           5,
			Width:             3,
			Height:            3,
			BaseY:             -1,
			Seed:              1,
			ThrusterOffset:    gm.Vec3{Y: 0.15, Z: 0.3},
			EngineLightRadius: 0.1,
		},

		Reticule: ReticuleConfig{
			TargetRadiusFactor: 2,
		},

		Player: PlayerConfig{
			RailSpeed:     2,
			SlideRate:     5,
			DecelRate:     0.5,
			XCap:          4,
			YCap:          3,
			ExhaustOffset: gm.Vec3{Z: -0.5},
			LightRadius:   1.5,
		},

		Camera: CameraConfig{
			FovY:      gm.DegToRad(60),
			Near:      0.1,
			Far:       100,
			Offset:    gm.Vec3{Y: 1, Z: -4},
			LookAhead: gm.Vec3{Z: 4},
		},

		LevelLength: 150,

		Thruster: partycle.EmitterConfig{
			MaxParticles:       64,
			ParticlesPerSecond: 40,
			Lifetime:           400 * time.Millisecond,
			StartSize:          0.08,
			EndSize:            0.01,
			StartColor:         color.RGB(1, 0.6, 0.1),
			EndColor:           color.RGBA(1, 0, 0, 0),
			StartVelocity:      gm.Vec3{Z: 1},
			VelocityJitter:     gm.Vec3Splat(0.1),
		},

		Explosion: partycle.EmitterConfig{
			MaxParticles:       128,
			ParticlesPerSecond: 400,
			Lifetime:           800 * time.Millisecond,
			StartSize:          0.15,
			EndSize:            0,
			StartColor:         color.RGB(1, 0.9, 0.3),
			EndColor:           color.RGBA(0.8, 0.1, 0, 0),
			VelocityJitter:     gm.Vec3Splat(2),
			Acceleration:       gm.Vec3{Y: -1},
			MaxLife:            250 * time.Millisecond,
		},

		Exhaust: partycle.EmitterConfig{
			MaxParticles:       64,
			ParticlesPerSecond: 60,
			Lifetime:           300 * time.Millisecond,
			StartSize:          0.1,
			EndSize:            0.02,
			StartColor:         color.RGB(0.3, 0.6, 1),
			EndColor:           color.RGBA(0.1, 0.1, 1, 0),
			StartVelocity:      gm.Vec3{Z: -2},
			VelocityJitter:     gm.Vec3Splat(0.2),
		},
	}
}

// PoolSize returns the configured bullet pool size, or the smallest
// sufficient one if none is configured.
func (c Config) PoolSize() int {
	if c.Fire.PoolSize > 0 {
		return c.Fire.PoolSize
	}

	return MinPoolSize(c.Bullet.Lifetime(), c.Fire.Delay)
}

// PointLightCount returns the number of point lights a level built from
// this config allocates: one per target, one per bullet with a laser
// light and one for the player.
func (c Config) PointLightCount() int {
	count := c.Targets.Count

	if c.Bullet.LaserRadius > 0 {
		count += c.PoolSize()
	}

	if c.Player.LightRadius > 0 {
		count += 1
	}

	return count
}

// Validate checks all values that would break the simulation.
func (c Config) Validate() error {
	var errs []error

	if c.Bullet.Speed <= 0 {
		errs = append(errs, fmt.Errorf("Bullet.Speed must be positive, got %v", c.Bullet.Speed))
	}

	if c.Bullet.Range <= 0 {
		errs = append(errs, fmt.Errorf("Bullet.Range must be positive, got %v", c.Bullet.Range))
	}

	if c.Fire.Delay <= 0 {
		errs = append(errs, fmt.Errorf("Fire.Delay must be positive, got %s", c.Fire.Delay))
	}

	if c.Fire.PoolSize < 0 {
		errs = append(errs, fmt.Errorf("Fire.PoolSize must not be negative, got %d", c.Fire.PoolSize))
	}

	if c.Targets.Count < 0 {
		errs = append(errs, fmt.Errorf("Targets.Count must not be negative, got %d", c.Targets.Count))
	}

	if c.Targets.Width < 0 || c.Targets.Height < 0 {
		errs = append(errs, errors.New("Targets.Width and Targets.Height must not be negative"))
	}

	if c.Reticule.TargetRadiusFactor < 0 {
		errs = append(errs, fmt.Errorf("Reticule.TargetRadiusFactor must not be negative, got %v", c.Reticule.TargetRadiusFactor))
	}

	if c.Player.XCap < 0 || c.Player.YCap < 0 {
		errs = append(errs, errors.New("Player.XCap and Player.YCap must not be negative"))
	}

	if c.LevelLength <= 0 {
		errs = append(errs, fmt.Errorf("LevelLength must be positive, got %v", c.LevelLength))
	}

	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("Camera clip planes invalid: near=%v, far=%v", c.Camera.Near, c.Camera.Far))
	}

	if err := c.Thruster.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("Thruster: %w", err))
	}

	if err := c.Explosion.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("Explosion: %w", err))
	}

	if err := c.Exhaust.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("Exhaust: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	if c.Fire.PoolSize > 0 && c.Fire.PoolSize < MinPoolSize(c.Bullet.Lifetime(), c.Fire.Delay) {
		return fmt.Errorf("%w: Fire.PoolSize %d is smaller than the required %d",
			ErrInvalidConfig, c.Fire.PoolSize, MinPoolSize(c.Bullet.Lifetime(), c.Fire.Delay))
	}

	if lights := c.PointLightCount(); lights > gfx.MaxPointLights {
		return fmt.Errorf("%w: level needs %d point lights, at most %d are available",
			ErrInvalidConfig, lights, gfx.MaxPointLights)
	}

	return nil
}
