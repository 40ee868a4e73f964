package ui

import (
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyDirections = map[int32]types.Direction{
	rl.KeyW:     types.Up,
	rl.KeyUp:    types.Up,
	rl.KeyS:     types.Down,
	rl.KeyDown:  types.Down,
	rl.KeyA:     types.Left,
	rl.KeyLeft:  types.Left,
	rl.KeyD:     types.Right,
	rl.KeyRight: types.Right,
}

// DirectionForKey maps a movement key to a direction. Any other key
// reports false and should be ignored.
func DirectionForKey(key int32) (types.Direction, bool) {
	dir, ok := keyDirections[key]
	return dir, ok
}

// Steerer is anything that accepts direction intents.
type Steerer interface {
	SetDirection(types.Direction)
}

// PollInput drains the keys pressed since the last frame and forwards
// movement keys to s. It reports whether the quit key was pressed.
func PollInput(s Steerer) (quit bool) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if key == rl.KeyQ {
			quit = true
			continue
		}
		if dir, ok := DirectionForKey(key); ok {
			s.SetDirection(dir)
		}
	}
	return quit
}
