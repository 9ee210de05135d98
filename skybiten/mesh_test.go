package skybiten

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMesh_Radius(t *testing.T) {
	require.InDelta(t, 2.0, Sphere(2, 8, 12).Radius(), 1e-5)
	require.InDelta(t, math.Sqrt(3), Cube(2).Radius(), 1e-5)
	require.InDelta(t, 0.4, Ring(0.3, 0.4, 16).Radius(), 1e-5)
}

func TestMesh_Topology(t *testing.T) {
	sphere := Sphere(1, 4, 6)
	require.Len(t, sphere.Indices, 4*6*6)
	require.Len(t, sphere.Normals, len(sphere.Positions))

	cube := Cube(1)
	require.Len(t, cube.Positions, 24)
	require.Len(t, cube.Indices, 36)

	ring := Ring(0.5, 1, 3)
	require.Len(t, ring.Positions, 8)
	require.Len(t, ring.Indices, 18)

	for _, mesh := range []*Mesh{sphere, cube, ring} {
		for _, idx := range mesh.Indices {
			require.Less(t, int(idx), len(mesh.Positions))
		}
	}
}

func TestSphere_ClampsResolution(t *testing.T) {
	sphere := Sphere(1, 0, 0)
	require.Len(t, sphere.Indices, 2*3*6)
}
