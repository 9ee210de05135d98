package skybiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/skyrail"
	"github.com/oliverbestmann/skyrail/gm"
)

// KeyState reports the state of keyboard keys.
type KeyState interface {
	IsPressed(key ebiten.Key) bool
	IsJustPressed(key ebiten.Key) bool
}

// Keys reads the keyboard state from ebiten.
type Keys struct{}

var _ KeyState = Keys{}

func (k Keys) IsJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (k Keys) IsPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// Bindings maps keys to the players intents.
type Bindings struct {
	Left, Right, Up, Down []ebiten.Key
	Fire                  []ebiten.Key
}

// DefaultBindings steers with WASD or the arrow keys and fires with space.
func DefaultBindings() Bindings {
	return Bindings{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Up:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Down:  []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Fire:  []ebiten.Key{ebiten.KeySpace},
	}
}

// Intents translates the current key state into intents.
func (b Bindings) Intents(keys KeyState) skyrail.Intents {
	var steer gm.Vec3

	if anyPressed(keys, b.Left) {
		steer.X -= 1
	}

	if anyPressed(keys, b.Right) {
		steer.X += 1
	}

	if anyPressed(keys, b.Up) {
		steer.Y += 1
	}

	if anyPressed(keys, b.Down) {
		steer.Y -= 1
	}

	return skyrail.Intents{
		Steer: steer,
		Fire:  anyPressed(keys, b.Fire),
	}
}

func anyPressed(keys KeyState, candidates []ebiten.Key) bool {
	for _, key := range candidates {
		if keys.IsPressed(key) {
			return true
		}
	}

	return false
}
