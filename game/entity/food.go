package entity

import "retro-snake/game/types"

// Food is the single item on the board.
type Food struct {
	Position types.Cell
}

func NewFood(pos types.Cell) *Food {
	return &Food{Position: pos}
}
