package types

import (
	"fmt"
	"strings"
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p is a valid cell of the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Point is a single cell of the board, 0-indexed.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction rappresenta una direzione cardinale
type Direction int

const (
	None  Direction = iota // 0
	Up                     // 1
	Right                  // 2
	Down                   // 3
	Left                   // 4
)

var directionNames = [...]string{
	None:  "none",
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// ToPoint converts a Direction into a unit displacement.
// Y grows downwards, so Up decrements Y.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse direction. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// IsOpposite reports whether d and other point in reverse directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && d.Opposite() == other
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection maps a direction word ("up", "Left", ...) to a Direction.
// The second result is false for anything else.
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := Up; d <= Left; d++ {
		if directionNames[d] == s {
			return d, true
		}
	}
	return None, false
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes unknown words to None instead of failing, so that
// callers can drop them the same way unknown keys are dropped.
func (d *Direction) UnmarshalText(text []byte) error {
	*d, _ = ParseDirection(string(text))
	return nil
}
