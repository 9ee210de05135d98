package gm

import (
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomInWith is RandomIn drawing from the given source. A nil source
// falls back to the global one.
func RandomInWith[S Scalar](rng *rand.Rand, min, max S) S {
	if rng == nil {
		return RandomIn(min, max)
	}

	return S(rng.Float64()*(float64(max)-float64(min))) + min
}

// Jitter returns base with every component moved by a random value
// in [-jitter, jitter) of the matching component.
func Jitter(base, jitter Vec3) Vec3 {
	return Vec3{
		X: base.X + RandomIn(-jitter.X, jitter.X),
		Y: base.Y + RandomIn(-jitter.Y, jitter.Y),
		Z: base.Z + RandomIn(-jitter.Z, jitter.Z),
	}
}
