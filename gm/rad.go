package gm

import "math"

// Rad is an angle in radians.
type Rad float64

func DegToRad(deg float64) Rad {
	return Rad(math.Pi / 180 * deg)
}

// Euler describes a rotation by pitch (around X), yaw (around Y)
// and roll (around Z), stored in a Vec3 in that order.
type Euler = Vec3

func EulerOf(pitch, yaw, roll Rad) Euler {
	return Euler{X: float64(pitch), Y: float64(yaw), Z: float64(roll)}
}
