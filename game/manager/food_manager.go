package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	overlap      bool
	collisionMgr *CollisionManager
}

// NewFoodManager returns a manager placing food on grid. With overlap set,
// food is a plain uniform pick over the board and may land under the
// snake; otherwise it is uniform over the free cells.
func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand, overlap bool) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		overlap:      overlap,
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	if fm.overlap {
		return fm.randomCell()
	}

	free := make([]types.Point, 0, fm.grid.Cells())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}

	// Board is full: nothing left to avoid.
	if len(free) == 0 {
		return fm.randomCell()
	}
	return free[fm.rng.Intn(len(free))]
}

func (fm *FoodManager) randomCell() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}
