package game

import (
	"errors"
	"fmt"
	"time"

	"snake-classic/game/types"
)

// Default board and timing, matching the classic 30x20 layout.
const (
	DefaultWidth    = 30
	DefaultHeight   = 20
	DefaultTickRate = 200 * time.Millisecond
)

var ErrInvalidConfig = errors.New("invalid game config")

// Config holds construction-time options. TickRate is only read by the
// driver; the game itself never looks at the clock.
type Config struct {
	Width    int
	Height   int
	Start    types.Point
	TickRate time.Duration
	// FoodOverlap lets food spawn under the snake.
	FoodOverlap bool
}

func DefaultConfig() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Start:    types.Point{X: 15, Y: 10},
		TickRate: DefaultTickRate,
	}
}

// Validate checks the board and tick rate. The start cell may lie outside
// the board.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %v must be positive", ErrInvalidConfig, c.TickRate)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}
