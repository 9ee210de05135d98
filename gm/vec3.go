package gm

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var Vec3Zero = Vec3{}
var Vec3One = Vec3{X: 1, Y: 1, Z: 1}

// Vec3 is a 3d vector in world space. The world uses +Z as the
// direction of flight and +Y as up.
type Vec3 struct {
	X, Y, Z float64
}

func Vec3Of(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func Vec3Splat(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

func (v Vec3) Add(other Vec3) Vec3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v Vec3) Sub(other Vec3) Vec3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v Vec3) Mul(scalar float64) Vec3 {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v Vec3) MulEach(other Vec3) Vec3 {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) LengthSqr() float64 {
	return v.Dot(v)
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}

	return v.Mul(1 / length)
}

// Lerp interpolates between v (f = 0) and other (f = 1).
func (v Vec3) Lerp(f float64, other Vec3) Vec3 {
	return v.Add(other.Sub(v).Mul(f))
}

// XY returns the lateral components of the vector.
func (v Vec3) XY() Vec {
	return Vec{X: v.X, Y: v.Y}
}

// WithXY replaces the lateral components of the vector.
func (v Vec3) WithXY(xy Vec) Vec3 {
	v.X = xy.X
	v.Y = xy.Y
	return v
}

func (v Vec3) WithZ(z float64) Vec3 {
	v.Z = z
	return v
}

func (v Vec3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func Vec3FromMgl(v mgl32.Vec3) Vec3 {
	return Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func (v Vec3) String() string {
	return fmt.Sprintf("vec3(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}
