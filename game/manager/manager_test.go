package manager

import (
	"errors"
	"testing"

	"retro-snake/game/entity"
	"retro-snake/game/types"
)

// scriptedRand replays values in order, wrapping around.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

var board = types.Grid{Width: 25, Height: 25}

func TestIsWallCollision(t *testing.T) {
	cm := NewCollisionManager(board)
	tests := []struct {
		pos  types.Cell
		want bool
	}{
		{types.Cell{X: -1, Y: 9}, true},
		{types.Cell{X: 25, Y: 9}, true},
		{types.Cell{X: 9, Y: -1}, true},
		{types.Cell{X: 9, Y: 25}, true},
		{types.Cell{X: 0, Y: 0}, false},
		{types.Cell{X: 24, Y: 24}, false},
	}
	for _, tt := range tests {
		if got := cm.IsWallCollision(tt.pos); got != tt.want {
			t.Errorf("IsWallCollision(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestIsBodyCollision(t *testing.T) {
	cm := NewCollisionManager(board)

	crossed := &entity.Snake{Body: []types.Cell{{X: 5, Y: 9}, {X: 6, Y: 9}, {X: 5, Y: 9}}}
	if !cm.IsBodyCollision(crossed) {
		t.Error("Expected head on its own tail to collide")
	}

	straight := entity.NewSnake()
	if cm.IsBodyCollision(straight) {
		t.Error("Expected initial snake not to collide with itself")
	}

	single := &entity.Snake{Body: []types.Cell{{X: 1, Y: 1}}}
	if cm.IsBodyCollision(single) {
		t.Error("Expected single segment not to collide")
	}
}

func TestFreeCells(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 2, Height: 2})
	free := cm.FreeCells([]types.Cell{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if len(free) != 2 || free[0] != (types.Cell{X: 1, Y: 0}) || free[1] != (types.Cell{X: 0, Y: 1}) {
		t.Errorf("Unexpected free cells %v", free)
	}
}

func TestGenerateRandomCellInRange(t *testing.T) {
	rng := &scriptedRand{values: []int{0, 24, 3, 30}}
	fm := NewFoodManager(board, rng, NewCollisionManager(board))

	first := fm.GenerateRandomCell()
	if first != (types.Cell{X: 0, Y: 24}) {
		t.Errorf("Expected (0,24), got %v", first)
	}
	second := fm.GenerateRandomCell()
	if second != (types.Cell{X: 3, Y: 5}) {
		t.Errorf("Expected (3,5), got %v", second)
	}
}

func TestGenerateRandomPosSkipsBody(t *testing.T) {
	body := entity.NewSnake().Body
	// First two samples land on the body, the third is free.
	rng := &scriptedRand{values: []int{6, 9, 4, 9, 7, 9}}
	fm := NewFoodManager(board, rng, NewCollisionManager(board))

	pos, err := fm.GenerateRandomPos(body)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if pos != (types.Cell{X: 7, Y: 9}) {
		t.Errorf("Expected (7,9), got %v", pos)
	}
	if entity.ContainsCell(body, pos) {
		t.Error("Food placed on the snake")
	}
}

func TestGenerateRandomPosFallsBackToFreeCells(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	body := []types.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	// Sampling always hits (0,0); only the free-cell scan can find (1,1).
	rng := &scriptedRand{values: []int{0}}
	fm := NewFoodManager(grid, rng, NewCollisionManager(grid))

	pos, err := fm.GenerateRandomPos(body)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if pos != (types.Cell{X: 1, Y: 1}) {
		t.Errorf("Expected the only free cell (1,1), got %v", pos)
	}
}

func TestGenerateRandomPosFullBoard(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 1}
	body := []types.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
	fm := NewFoodManager(grid, &scriptedRand{values: []int{0, 1}}, NewCollisionManager(grid))

	if _, err := fm.GenerateRandomPos(body); !errors.Is(err, ErrBoardFull) {
		t.Errorf("Expected ErrBoardFull, got %v", err)
	}
}

func TestStateManagerScoring(t *testing.T) {
	sm := NewStateManager(true)
	if !sm.Running() {
		t.Fatal("Expected a new round to be running")
	}

	sm.AddPoint()
	sm.AddPoint()
	if sm.Score() != 2 || sm.GetHighScore() != 2 {
		t.Errorf("Expected score 2 and high score 2, got %d and %d", sm.Score(), sm.GetHighScore())
	}

	result := sm.EndRound(WallCollision)
	if result.Score != 2 || result.Reason != WallCollision {
		t.Errorf("Unexpected round result %+v", result)
	}
	if sm.Running() || sm.Score() != 0 || sm.Rounds() != 1 {
		t.Errorf("Unexpected state after round end: running=%v score=%d rounds=%d", sm.Running(), sm.Score(), sm.Rounds())
	}
	if sm.GetHighScore() != 2 {
		t.Errorf("Expected high score to survive the round, got %d", sm.GetHighScore())
	}

	sm.Resume()
	sm.AddPoint()
	if sm.GetHighScore() != 2 || sm.FoodEaten() != 3 {
		t.Errorf("Expected high 2 and 3 eaten, got %d and %d", sm.GetHighScore(), sm.FoodEaten())
	}
	if got := sm.GetScoreHistory(); len(got) != 1 || got[0] != 2 {
		t.Errorf("Unexpected history %v", got)
	}
}

func TestStateManagerWithoutScoring(t *testing.T) {
	sm := NewStateManager(false)
	sm.AddPoint()
	if sm.Score() != 0 || sm.FoodEaten() != 1 {
		t.Errorf("Expected score 0 and 1 eaten, got %d and %d", sm.Score(), sm.FoodEaten())
	}
}
