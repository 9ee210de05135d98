package skyrail

import (
	"testing"
	"time"

	"github.com/oliverbestmann/skyrail/gametime"
	"github.com/oliverbestmann/skyrail/gm"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(t *testing.T, lights *LightManager) *Player {
	config := DefaultConfig()

	exhaust := newEmitter(t, newDevice(t), config.Exhaust)

	player, err := NewPlayer(sphereMesh(0.5), material("ship"), config.Player, exhaust, lights)
	require.NoError(t, err)

	return player
}

func TestPlayer_RidesTheRail(t *testing.T) {
	player := newTestPlayer(t, nil)
	require.Equal(t, KindPlayer, player.Kind())

	vt := gametime.NewVirtualTime()
	for range 100 {
		player.Update(step(&vt, 10*time.Millisecond))
	}

	// two units per second along Z, no lateral movement without input
	require.InDelta(t, 2.0, player.Position().Z, 1e-9)
	require.Equal(t, 0.0, player.Position().X)
	require.Equal(t, 0.0, player.Position().Y)
}

func TestPlayer_SteersAndStopsAtCap(t *testing.T) {
	player := newTestPlayer(t, nil)
	player.Accelerate(gm.Vec3{X: 1})

	vt := gametime.NewVirtualTime()

	player.Update(step(&vt, 100*time.Millisecond))
	require.Positive(t, player.Position().X)
	require.Positive(t, player.Velocity().X)

	for range 200 {
		player.Update(step(&vt, 50*time.Millisecond))
		require.LessOrEqual(t, player.Position().X, 4.0)
	}

	require.Equal(t, 4.0, player.Position().X)
}

func TestPlayer_DecelaratesWithoutInput(t *testing.T) {
	player := newTestPlayer(t, nil)
	player.Accelerate(gm.Vec3{Y: -1})

	vt := gametime.NewVirtualTime()
	player.Update(step(&vt, 200*time.Millisecond))

	speed := -player.Velocity().Y
	require.Positive(t, speed)

	player.Accelerate(gm.Vec3Zero)
	player.Update(step(&vt, 200*time.Millisecond))

	require.InDelta(t, speed*0.9, -player.Velocity().Y, 1e-9)
}

func TestPlayer_AttachmentsFollow(t *testing.T) {
	lights := NewLightManager()
	player := newTestPlayer(t, lights)

	player.SetPosition(gm.Vec3{X: 1, Z: 3})

	vt := gametime.NewVirtualTime()
	player.Update(step(&vt, 100*time.Millisecond))

	position := player.Position()
	require.Equal(t, position.Add(gm.Vec3{Z: -0.5}), player.exhaust.Position())

	engine := lights.Get(player.engine)
	require.Equal(t, float32(1.5), engine.Radius)
	require.Equal(t, position.Mgl(), engine.Position)

	player.Release()
	require.Equal(t, 0, lights.Len())
}

func TestPlayer_WrapTo(t *testing.T) {
	player := newTestPlayer(t, nil)
	player.SetPosition(gm.Vec3{X: 2, Y: 1, Z: 151})

	player.WrapTo(1)
	require.Equal(t, gm.Vec3{X: 2, Y: 1, Z: 1}, player.Position())
	require.Equal(t, gm.Vec3{X: 2, Y: 1, Z: 0.5}, player.exhaust.Position())
}

func TestPlayer_IgnoresCollisions(t *testing.T) {
	player := newTestPlayer(t, nil)
	player.Collides()
	require.True(t, player.IsActive())
}
