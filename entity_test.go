package skyrail

import (
	"testing"

	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/gfx/gfxmock"
	"github.com/oliverbestmann/skyrail/gm"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEntity_Defaults(t *testing.T) {
	e := NewEntity(sphereMesh(2), material("plain"))

	require.True(t, e.IsActive())
	require.Equal(t, gm.Vec3One, e.Scale())
	require.Equal(t, gm.Vec3Zero, e.Position())
	require.Equal(t, KindGeneric, e.Kind())
	require.Equal(t, 2.0, e.Radius())
	require.Same(t, e, e.Base())
}

func TestEntity_WorldIsCached(t *testing.T) {
	e := NewEntity(sphereMesh(1), nil)
	e.SetPosition(gm.Vec3{X: 1, Y: 2, Z: 3})
	e.SetRotation(gm.EulerOf(0.1, 0.2, 0.3))
	e.SetScale(gm.Vec3{X: 1, Y: 2, Z: 3})

	world := e.World()
	normal := e.NormalWorld()
	require.False(t, e.dirty)

	// bit identical without a mutation in between
	require.True(t, world == e.World())
	require.True(t, normal == e.NormalWorld())

	require.Equal(t, gm.WorldMatrix(e.Position(), e.Rotation(), e.Scale()), world)
}

func TestEntity_MutatorsInvalidate(t *testing.T) {
	e := NewEntity(sphereMesh(1), nil)
	require.Equal(t, float32(0), e.World().At(0, 3))

	e.Move(gm.Vec3{X: 4})
	require.True(t, e.dirty)
	require.Equal(t, float32(4), e.World().At(0, 3))

	e.Move(gm.Vec3{X: 1, Z: 2})
	require.Equal(t, gm.Vec3{X: 5, Z: 2}, e.Position())
	require.Equal(t, float32(5), e.World().At(0, 3))
	require.Equal(t, float32(2), e.World().At(2, 3))

	e.Resize(gm.Vec3{X: 1, Y: 1, Z: 1})
	require.Equal(t, gm.Vec3Splat(2), e.Scale())
	require.Equal(t, float32(2), e.World().At(1, 1))

	e.Spin(gm.EulerOf(0, 0.5, 0))
	e.Spin(gm.EulerOf(0, 0.5, 0))
	require.InDelta(t, 1.0, e.Rotation().Y, 1e-12)
	require.Equal(t, gm.WorldMatrix(e.Position(), e.Rotation(), e.Scale()), e.World())
}

func TestEntity_RadiusUsesScaleY(t *testing.T) {
	e := NewEntity(sphereMesh(2), nil)
	e.SetScale(gm.Vec3{X: 3, Y: 0.5, Z: 3})
	require.Equal(t, 1.0, e.Radius())

	// no mesh, no radius
	require.Equal(t, 0.0, NewEntity(nil, nil).Radius())
}

func TestEntity_CollidesDeactivates(t *testing.T) {
	e := NewEntity(sphereMesh(1), nil)
	e.Collides()
	require.False(t, e.IsActive())
}

func TestEntity_Draw(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := gfxmock.NewMockDevice(ctrl)

	mesh := sphereMesh(1)
	e := NewEntity(mesh, material("hull"))
	e.SetPosition(gm.Vec3{Z: 7})

	frame := &gfx.Frame{}

	device.EXPECT().DrawIndexed(gomock.Any()).Do(func(call gfx.DrawCall) {
		require.Equal(t, gfx.PassOpaque, call.Pass)
		require.Equal(t, mesh, call.Mesh)
		require.Equal(t, material("hull"), call.Material)
		require.Equal(t, e.World(), call.World)
		require.Equal(t, e.NormalWorld(), call.NormalWorld)
		require.Same(t, frame, call.Frame)
	})

	e.Draw(DrawContext{Device: device, Frame: frame})

	// inactive entities do not draw, the mock fails on a second call
	e.SetActive(false)
	e.Draw(DrawContext{Device: device, Frame: frame})
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "Bullet", KindBullet.String())
	require.Equal(t, "Reticule", KindReticule.String())
	require.Equal(t, "Unknown", Kind(42).String())
}

func TestBehavior_BaseIsEmbeddedEntity(t *testing.T) {
	level := newTestLevel(t, newDevice(t), smallConfig())

	player := level.Player()
	bullet := level.FireControl().Bullets()[0]
	target := level.Targets().Targets()[0]
	reticule := level.Reticule()

	cases := []struct {
		behavior Behavior
		entity   *Entity
		kind     Kind
	}{
		{player, &player.Entity, KindPlayer},
		{bullet, &bullet.Entity, KindBullet},
		{target, &target.Entity, KindTarget},
		{reticule, &reticule.Entity, KindReticule},
	}

	for _, tc := range cases {
		require.Same(t, tc.entity, tc.behavior.Base())
		require.Equal(t, tc.kind, tc.behavior.Kind())
	}
}
