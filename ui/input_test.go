package ui

import (
	"testing"

	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestDirectionForKey(t *testing.T) {
	tests := []struct {
		key    int32
		want   types.Direction
		wantOK bool
	}{
		{rl.KeyW, types.Up, true},
		{rl.KeyA, types.Left, true},
		{rl.KeyS, types.Down, true},
		{rl.KeyD, types.Right, true},
		{rl.KeyUp, types.Up, true},
		{rl.KeyLeft, types.Left, true},
		{rl.KeyDown, types.Down, true},
		{rl.KeyRight, types.Right, true},
		{rl.KeyQ, types.None, false},
		{rl.KeySpace, types.None, false},
	}

	for _, tt := range tests {
		got, ok := DirectionForKey(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("DirectionForKey(%d) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}
