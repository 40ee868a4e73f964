package game

import (
	"fmt"
	"sync"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Game is the whole game state: one snake, one food cell, a fixed board.
// It is mutated only by Advance and SetDirection. All methods are safe for
// concurrent use.
type Game struct {
	UUID      string
	Grid      types.Grid
	TickRate  time.Duration
	StartTime time.Time

	mu            sync.RWMutex
	snake         *entity.Snake
	direction     types.Direction
	food          types.Point
	alive         bool
	lastCollision manager.CollisionType

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// Snapshot is a read-only copy of the state for renderers.
type Snapshot struct {
	ID            string                `json:"id"`
	Width         int                   `json:"width"`
	Height        int                   `json:"height"`
	Snake         []types.Point         `json:"snake"` // tail first
	Food          types.Point           `json:"food"`
	Direction     types.Direction       `json:"direction"`
	Alive         bool                  `json:"alive"`
	LastCollision manager.CollisionType `json:"lastCollision"`
}

// Head returns the most recently added cell.
func (s Snapshot) Head() types.Point {
	return s.Snake[len(s.Snake)-1]
}

type options struct {
	rng *rand.Rand
}

type Option func(*options)

// WithRand sets the source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// NewGame validates cfg and starts a game: one segment at cfg.Start,
// heading right, with food already placed.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		TickRate:     cfg.TickRate,
		StartTime:    time.Now(),
		snake:        entity.NewSnake(cfg.Start),
		direction:    types.Right,
		alive:        true,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, o.rng, cfg.FoodOverlap),
	}
	g.food = g.foodMgr.GenerateFood(g.snake)

	return g, nil
}

// SetDirection queues a turn for the next Advance. Reversing onto the
// body and anything that is not one of the four directions are ignored.
func (g *Game) SetDirection(dir types.Direction) {
	if !dir.Valid() {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.direction.IsOpposite(dir) {
		return
	}
	g.direction = dir
}

// Advance runs one tick. After game over it does nothing.
func (g *Game) Advance() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.alive {
		return
	}

	newHead := g.snake.GetHead().Add(g.direction.ToPoint())

	switch g.collisionMgr.CheckCollision(newHead, g.snake) {
	case manager.SelfCollision:
		g.alive = false
		g.lastCollision = manager.SelfCollision
		return
	case manager.WallCollision:
		// Hitting a wall blocks the move but does not end the game.
		g.lastCollision = manager.WallCollision
		return
	}
	g.lastCollision = manager.NoCollision

	g.snake.Move(newHead)
	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.food = g.foodMgr.GenerateFood(g.snake)
	} else {
		g.snake.RemoveTail()
	}
}

// Alive is false once the snake has run into itself.
func (g *Game) Alive() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.alive
}

func (g *Game) Direction() types.Direction {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.direction
}

// LastCollision reports what stopped the most recent tick, if anything.
func (g *Game) LastCollision() manager.CollisionType {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.lastCollision
}

// Snapshot returns a copy of the state that stays valid after later ticks.
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Snapshot{
		ID:            g.UUID,
		Width:         g.Grid.Width,
		Height:        g.Grid.Height,
		Snake:         g.snake.Cells(),
		Food:          g.food,
		Direction:     g.direction,
		Alive:         g.alive,
		LastCollision: g.lastCollision,
	}
}

// ElapsedTime returns how long the game has been running.
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}
