package gm

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mat4 is a column-major 4x4 matrix using the column vector convention,
// the layout shader uniforms expect.
type Mat4 = mgl32.Mat4

// RotationMatrix returns the rotation described by the given euler angles.
// Roll is applied first, then pitch, then yaw.
func RotationMatrix(rotation Euler) Mat4 {
	yaw := mgl32.HomogRotate3DY(float32(rotation.Y))
	pitch := mgl32.HomogRotate3DX(float32(rotation.X))
	roll := mgl32.HomogRotate3DZ(float32(rotation.Z))
	return yaw.Mul4(pitch).Mul4(roll)
}

// WorldMatrix composes scale, then rotation, then translation into a single
// world transform.
func WorldMatrix(translation Vec3, rotation Euler, scale Vec3) Mat4 {
	t := mgl32.Translate3D(float32(translation.X), float32(translation.Y), float32(translation.Z))
	s := mgl32.Scale3D(float32(scale.X), float32(scale.Y), float32(scale.Z))
	return t.Mul4(RotationMatrix(rotation)).Mul4(s)
}

// NormalMatrix returns the inverse transpose of the world matrix, used to
// transform normals under non uniform scale. A singular world matrix
// (a zero scale component) yields the zero matrix.
func NormalMatrix(world Mat4) Mat4 {
	return world.Inv().Transpose()
}

// Forward returns the local +Z axis rotated into world space.
func Forward(rotation Euler) Vec3 {
	v := RotationMatrix(rotation).Mul4x1(mgl32.Vec4{0, 0, 1, 0})
	return Vec3FromMgl(v.Vec3())
}

// TransformPoint applies m to the point p.
func TransformPoint(m Mat4, p Vec3) Vec3 {
	v := m.Mul4x1(p.Mgl().Vec4(1))
	return Vec3FromMgl(v.Vec3())
}

// LookAt returns a view matrix for an eye looking at center.
func LookAt(eye, center, up Vec3) Mat4 {
	return mgl32.LookAtV(eye.Mgl(), center.Mgl(), up.Mgl())
}

// Perspective returns a projection matrix for the given vertical field of
// view, aspect ratio and clip planes.
func Perspective(fovY Rad, aspect, near, far float64) Mat4 {
	return mgl32.Perspective(float32(fovY), float32(aspect), float32(near), float32(far))
}
