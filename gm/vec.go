package gm

import (
	"fmt"
	"math"
)

type Scalar interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~int
}

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

// Vec is a 2d vector, used for math in the lateral plane perpendicular
// to the flight direction.
type Vec struct {
	X, Y float64
}

func VecSplat(v float64) Vec {
	return Vec{X: v, Y: v}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) MulEach(other Vec) Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

// Normalized returns a vector of length one pointing in the same direction.
// The zero vector stays zero.
func (v Vec) Normalized() Vec {
	length := v.Length()
	if length == 0 {
		return v
	}

	return v.Mul(1 / length)
}

// Clamp limits each component to the range [-limit, limit] of the
// matching component of limit.
func (v Vec) Clamp(limit Vec) Vec {
	v.X = max(-limit.X, min(limit.X, v.X))
	v.Y = max(-limit.Y, min(limit.Y, v.Y))
	return v
}

func (v Vec) XY() (float64, float64) {
	return v.X, v.Y
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
