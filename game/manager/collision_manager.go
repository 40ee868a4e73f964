package manager

import (
	"fmt"

	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

func (c CollisionType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CollisionType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "wall":
		*c = WallCollision
	case "self":
		*c = SelfCollision
	case "none":
		*c = NoCollision
	default:
		return fmt.Errorf("unknown collision type %q", text)
	}
	return nil
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies a prospective head position. Self collision
// wins over wall collision so that the order matches how a tick resolves.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.IsSelfCollision(pos, snake) {
		return SelfCollision
	}
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	return NoCollision
}

// IsSelfCollision scans the entire body, tail included.
func (cm *CollisionManager) IsSelfCollision(pos types.Point, snake *entity.Snake) bool {
	return snake != nil && snake.Contains(pos)
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is on the board and free of
// the snake.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return !cm.IsSelfCollision(pos, snake)
}
