package skyrail

import (
	"testing"
	"time"

	"github.com/oliverbestmann/skyrail/gametime"
	"github.com/oliverbestmann/skyrail/gm"
	"github.com/stretchr/testify/require"
)

func TestBullet_Lifetime(t *testing.T) {
	config := DefaultConfig().Bullet

	owner := NewEntity(sphereMesh(1), nil)
	owner.SetPosition(gm.Vec3{X: 1, Y: 2, Z: 3})

	bullet, err := NewBullet(sphereMesh(1), nil, config, nil)
	require.NoError(t, err)
	require.False(t, bullet.IsActive())
	require.Equal(t, KindBullet, bullet.Kind())

	bullet.Link(owner)

	vt := gametime.NewVirtualTime()
	step(&vt, time.Second)

	launchedAt := vt.Elapsed
	bullet.Launch(launchedAt)

	require.True(t, bullet.IsActive())
	require.Equal(t, owner.Position(), bullet.Position())
	require.Equal(t, launchedAt, bullet.SpawnTime())

	dt := 10 * time.Millisecond

	for vt.Elapsed+dt < launchedAt+bullet.Lifetime() {
		bullet.Update(step(&vt, dt))
		require.True(t, bullet.IsActive(), "bullet must be active at %s", vt.Elapsed)
	}

	// exactly at the end of the lifetime
	vt.Elapsed = launchedAt + bullet.Lifetime()
	bullet.Update(vt)
	require.False(t, bullet.IsActive())
}

func TestBullet_LifetimeFromRangeAndSpeed(t *testing.T) {
	config := BulletConfig{Speed: 20, Range: 50}
	require.Equal(t, 2500*time.Millisecond, config.Lifetime())
}

func TestBullet_MovesForward(t *testing.T) {
	config := DefaultConfig().Bullet

	bullet, err := NewBullet(sphereMesh(1), nil, config, nil)
	require.NoError(t, err)

	bullet.Launch(0)

	vt := gametime.NewVirtualTime()
	bullet.Update(step(&vt, 100*time.Millisecond))

	require.InDelta(t, 3.0, bullet.Position().Z, 1e-9)
	require.InDelta(t, 0.0, bullet.Position().X, 1e-9)

	// a turned bullet flies along its own forward axis
	bullet.SetPosition(gm.Vec3Zero)
	bullet.SetRotation(gm.EulerOf(0, gm.DegToRad(90), 0))
	bullet.Update(step(&vt, 100*time.Millisecond))

	require.InDelta(t, 3.0, bullet.Position().X, 1e-6)
	require.InDelta(t, 0.0, bullet.Position().Z, 1e-6)
}

func TestBullet_InactiveDoesNotMove(t *testing.T) {
	bullet, err := NewBullet(sphereMesh(1), nil, DefaultConfig().Bullet, nil)
	require.NoError(t, err)

	vt := gametime.NewVirtualTime()
	bullet.Update(step(&vt, time.Second))

	require.Equal(t, gm.Vec3Zero, bullet.Position())
	require.False(t, bullet.IsActive())
}

func TestBullet_SpawnAtOwnerEdge(t *testing.T) {
	config := DefaultConfig().Bullet
	config.SpawnAtOwnerEdge = true

	owner := NewEntity(sphereMesh(0.5), nil)
	owner.SetPosition(gm.Vec3{Z: 10})

	bullet, err := NewBullet(sphereMesh(1), nil, config, nil)
	require.NoError(t, err)

	bullet.Link(owner)
	require.Same(t, owner, bullet.Owner())

	bullet.Launch(0)
	require.Equal(t, gm.Vec3{Z: 10.5}, bullet.Position())
}

func TestBullet_ScaledRadius(t *testing.T) {
	bullet, err := NewBullet(sphereMesh(1), nil, DefaultConfig().Bullet, nil)
	require.NoError(t, err)

	require.InDelta(t, 0.2, bullet.Radius(), 1e-12)
}

func TestBullet_CollidesDeactivates(t *testing.T) {
	bullet, err := NewBullet(sphereMesh(1), nil, DefaultConfig().Bullet, nil)
	require.NoError(t, err)

	bullet.Launch(0)
	bullet.Collides()
	require.False(t, bullet.IsActive())
}

func TestBullet_LaserLight(t *testing.T) {
	lights := NewLightManager()

	bullet, err := NewBullet(sphereMesh(1), nil, DefaultConfig().Bullet, lights)
	require.NoError(t, err)
	require.Equal(t, 1, lights.Len())

	laser := lights.Get(bullet.laser)
	require.NotNil(t, laser)
	require.Equal(t, float32(0), laser.Radius)

	bullet.Launch(0)

	vt := gametime.NewVirtualTime()
	bullet.Update(step(&vt, 100*time.Millisecond))

	require.Equal(t, float32(0.5), laser.Radius)
	require.InDelta(t, 3.0, laser.Position.Z(), 1e-6)

	bullet.Collides()
	require.Equal(t, float32(0), laser.Radius)

	bullet.Release()
	require.Equal(t, 0, lights.Len())
}
