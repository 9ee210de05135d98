package skyrail

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/skyrail/gm"
	"github.com/stretchr/testify/require"
)

func TestCamera_Follow(t *testing.T) {
	config := DefaultConfig().Camera
	camera := NewCamera(config, 800, 600)

	camera.Follow(gm.Vec3{X: 1, Z: 10})
	require.Equal(t, gm.Vec3{X: 1, Y: 1, Z: 6}, camera.Position())

	// the eye sits at the origin of view space
	eye := camera.View().Mul4x1(camera.Position().Mgl().Vec4(1))
	require.True(t, eye.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, 1e-5))

	// the look-at point lies straight ahead, along -Z in view space
	center := camera.View().Mul4x1(mgl32.Vec4{1, 0, 14, 1})
	require.InDelta(t, 0, center.X(), 1e-5)
	require.Negative(t, center.Z())
}

func TestCamera_Resize(t *testing.T) {
	camera := NewCamera(DefaultConfig().Camera, 800, 600)
	require.InDelta(t, 4.0/3.0, camera.Aspect(), 1e-12)

	projection := camera.Projection()

	camera.Resize(0, 600)
	require.Equal(t, projection, camera.Projection())

	camera.Resize(600, 600)
	require.Equal(t, 1.0, camera.Aspect())
	require.NotEqual(t, projection, camera.Projection())
}
