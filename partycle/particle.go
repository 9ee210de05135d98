package partycle

import (
	"time"

	"github.com/oliverbestmann/skyrail/color"
	"github.com/oliverbestmann/skyrail/gm"
)

// Particle is a single slot in the emitters pool. A particle with an age
// of at least the emitters lifetime is dead.
type Particle struct {
	Age           time.Duration
	Position      gm.Vec3
	Color         color.Color
	Size          float64
	StartVelocity gm.Vec3
}

// simulate moves the particle to where a body starting at origin with the
// particles start velocity and a constant acceleration would be after Age,
// and interpolates color and size by the fraction of its lifetime passed.
func (p *Particle) simulate(config *EmitterConfig, origin gm.Vec3) {
	f := float64(p.Age) / float64(config.Lifetime)

	p.Color = config.StartColor.Lerp(f, config.EndColor)
	p.Size = LerpFloat(f, config.StartSize, config.EndSize)

	t := p.Age.Seconds()

	p.Position = origin.
		Add(p.StartVelocity.Mul(t)).
		Add(config.Acceleration.Mul(0.5 * t * t))
}

// LerpFloat does a linear interpolation between lhs and rhs using
// the factor f. A value for f of 0 returns lhs, a value of 1 returns rhs.
func LerpFloat[T ~float32 | ~float64](f float64, lhs, rhs T) T {
	return (rhs-lhs)*T(f) + lhs
}
