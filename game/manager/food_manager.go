package manager

import (
	"errors"

	"retro-snake/game/types"
)

// ErrBoardFull is returned when no free cell is left for the food.
var ErrBoardFull = errors.New("no free cell for food")

type FoodManager struct {
	grid         types.Grid
	rng          types.Random
	collisionMgr *CollisionManager
	maxAttempts  int
}

func NewFoodManager(grid types.Grid, rng types.Random, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		maxAttempts:  types.MaxPlacementAttempts,
	}
}

// GenerateRandomCell samples x and y independently and uniformly from the board.
func (fm *FoodManager) GenerateRandomCell() types.Cell {
	return types.Cell{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// GenerateRandomPos rejection-samples a cell that is not part of body. After
// maxAttempts misses it picks uniformly among the remaining free cells, so a
// crowded board still terminates.
func (fm *FoodManager) GenerateRandomPos(body []types.Cell) (types.Cell, error) {
	for i := 0; i < fm.maxAttempts; i++ {
		pos := fm.GenerateRandomCell()
		if fm.collisionMgr.ValidateSpawnPosition(pos, body) {
			return pos, nil
		}
	}

	free := fm.collisionMgr.FreeCells(body)
	if len(free) == 0 {
		return types.Cell{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}
