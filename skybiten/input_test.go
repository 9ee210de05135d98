package skybiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/skyrail/gm"
	"github.com/stretchr/testify/require"
)

type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) IsPressed(key ebiten.Key) bool {
	return f[key]
}

func (f fakeKeys) IsJustPressed(key ebiten.Key) bool {
	return f[key]
}

func TestBindings_Intents(t *testing.T) {
	bindings := DefaultBindings()

	intents := bindings.Intents(fakeKeys{})
	require.Equal(t, gm.Vec3{}, intents.Steer)
	require.False(t, intents.Fire)

	intents = bindings.Intents(fakeKeys{ebiten.KeyA: true, ebiten.KeyArrowUp: true, ebiten.KeySpace: true})
	require.Equal(t, gm.Vec3{X: -1, Y: 1}, intents.Steer)
	require.True(t, intents.Fire)

	// opposing keys cancel out
	intents = bindings.Intents(fakeKeys{ebiten.KeyA: true, ebiten.KeyD: true, ebiten.KeyS: true})
	require.Equal(t, gm.Vec3{Y: -1}, intents.Steer)
}
