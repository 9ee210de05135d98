package partycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/oliverbestmann/skyrail/color"
	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/gm"
)

var ErrInvalidConfig = errors.New("invalid emitter config")

// EmitterConfig describes an emitter. Emitters cloned from each other
// share the same config.
type EmitterConfig struct {
	// Capacity of the particle pool. Spawns exceeding the capacity are dropped.
	MaxParticles int

	// Must be strictly positive.
	ParticlesPerSecond float64

	// Lifetime of every single particle.
	Lifetime time.Duration

	StartSize, EndSize   float64
	StartColor, EndColor color.Color

	StartVelocity gm.Vec3

	// every particle gets a random offset in [-jitter, jitter) per axis
	// added to its StartVelocity
	VelocityJitter gm.Vec3

	Acceleration gm.Vec3

	// Initial position of the emitter
	Position gm.Vec3

	// MaxLife deactivates the whole emitter once it has been active
	// for that long. Zero keeps the emitter running forever.
	MaxLife time.Duration

	// Material is forwarded to the device with every draw call.
	Material gfx.Material
}

// Validate checks the config for values the emitter can not work with.
func (c EmitterConfig) Validate() error {
	var errs []error

	if c.MaxParticles <= 0 {
		errs = append(errs, fmt.Errorf("MaxParticles must be positive, got %d", c.MaxParticles))
	}

	if c.ParticlesPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("ParticlesPerSecond must be positive, got %v", c.ParticlesPerSecond))
	} else if c.spawnInterval() <= 0 {
		errs = append(errs, fmt.Errorf("ParticlesPerSecond too large, got %v", c.ParticlesPerSecond))
	}

	if c.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("Lifetime must be positive, got %s", c.Lifetime))
	}

	if c.MaxLife < 0 {
		errs = append(errs, fmt.Errorf("MaxLife must not be negative, got %s", c.MaxLife))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

func (c EmitterConfig) spawnInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.ParticlesPerSecond)
}
