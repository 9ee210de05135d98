package skybiten

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/skyrail/gfx"
)

// Mesh is an indexed triangle list in local space with per vertex normals.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint16

	radius float64
}

var _ gfx.Mesh = (*Mesh)(nil)

// NewMesh creates a mesh and computes its bounding radius around the origin.
func NewMesh(positions, normals []mgl32.Vec3, indices []uint16) *Mesh {
	var radius float64
	for _, pos := range positions {
		radius = max(radius, float64(pos.Len()))
	}

	return &Mesh{
		Positions: positions,
		Normals:   normals,
		Indices:   indices,
		radius:    radius,
	}
}

// Radius returns the distance of the farthest vertex from the origin.
func (m *Mesh) Radius() float64 {
	return m.radius
}

// Sphere builds a uv sphere. Rings and segments are clamped to sensible minimums.
func Sphere(radius float32, rings, segments int) *Mesh {
	rings = max(rings, 2)
	segments = max(segments, 3)

	var positions, normals []mgl32.Vec3
	var indices []uint16

	for ring := 0; ring <= rings; ring++ {
		theta := math.Pi * float64(ring) / float64(rings)
		sinTheta, cosTheta := math.Sincos(theta)

		for segment := 0; segment <= segments; segment++ {
			phi := 2 * math.Pi * float64(segment) / float64(segments)
			sinPhi, cosPhi := math.Sincos(phi)

			normal := mgl32.Vec3{
				float32(sinTheta * cosPhi),
				float32(cosTheta),
				float32(sinTheta * sinPhi),
			}

			normals = append(normals, normal)
			positions = append(positions, normal.Mul(radius))
		}
	}

	stride := uint16(segments + 1)

	for ring := range uint16(rings) {
		for segment := range uint16(segments) {
			a := ring*stride + segment
			b := a + stride

			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}

	return NewMesh(positions, normals, indices)
}

// Cube builds an axis aligned cube with the given edge length and flat normals.
func Cube(size float32) *Mesh {
	h := size / 2

	faces := []struct {
		normal, u, v mgl32.Vec3
	}{
		{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
		{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, -1}, v: mgl32.Vec3{0, 1, 0}},
		{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
		{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, -1}},
		{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{-1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
		{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	}

	var positions, normals []mgl32.Vec3
	var indices []uint16

	for _, face := range faces {
		base := uint16(len(positions))
		center := face.normal.Mul(h)

		for _, corner := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			pos := center.Add(face.u.Mul(corner[0] * h)).Add(face.v.Mul(corner[1] * h))
			positions = append(positions, pos)
			normals = append(normals, face.normal)
		}

		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return NewMesh(positions, normals, indices)
}

// Ring builds a flat ring in the XY plane facing -Z.
func Ring(inner, outer float32, segments int) *Mesh {
	segments = max(segments, 3)

	var positions, normals []mgl32.Vec3
	var indices []uint16

	normal := mgl32.Vec3{0, 0, -1}

	for segment := 0; segment <= segments; segment++ {
		phi := 2 * math.Pi * float64(segment) / float64(segments)
		sin, cos := math.Sincos(phi)

		dir := mgl32.Vec3{float32(cos), float32(sin), 0}
		positions = append(positions, dir.Mul(inner), dir.Mul(outer))
		normals = append(normals, normal, normal)
	}

	for segment := range uint16(segments) {
		a := 2 * segment
		indices = append(indices, a, a+1, a+2, a+1, a+3, a+2)
	}

	return NewMesh(positions, normals, indices)
}
