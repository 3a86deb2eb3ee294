package manager

import (
	"retro-snake/game/entity"
	"retro-snake/game/types"
)

// CollisionKind says what ended a round.
type CollisionKind int

const (
	NoCollision CollisionKind = iota
	WallCollision
	BodyCollision
)

func (k CollisionKind) String() string {
	switch k {
	case WallCollision:
		return "wall"
	case BodyCollision:
		return "body"
	}
	return "none"
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, food types.Cell) bool {
	return pos == food
}

// IsWallCollision reports whether pos has left the board. A head stepping one
// cell at a time from inside leaves it at exactly -1 or the cell count.
func (cm *CollisionManager) IsWallCollision(pos types.Cell) bool {
	return !cm.grid.Contains(pos)
}

// IsBodyCollision reports whether the head sits on any other segment.
func (cm *CollisionManager) IsBodyCollision(snake *entity.Snake) bool {
	return entity.ContainsCell(snake.Headless(), snake.Head())
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, occupied []types.Cell) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	return !entity.ContainsCell(occupied, pos)
}

// FreeCells lists every board cell not in occupied, row by row.
func (cm *CollisionManager) FreeCells(occupied []types.Cell) []types.Cell {
	taken := make(map[types.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	free := make([]types.Cell, 0, cm.grid.Size())
	for y := 0; y < cm.grid.Height; y++ {
		for x := 0; x < cm.grid.Width; x++ {
			c := types.Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}
