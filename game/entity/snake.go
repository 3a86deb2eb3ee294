package entity

import "retro-snake/game/types"

// InitialBody is the body every round starts with, head first.
var InitialBody = []types.Cell{{X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}}

// InitialDirection is the heading every round starts with.
var InitialDirection = types.Right

// Snake is a deque of cells with the head at index 0.
type Snake struct {
	Body          []types.Cell
	Direction     types.Direction
	PendingGrowth bool

	// lastStep is the direction of the most recent move. Checking turns
	// against it stops two quick key presses within one tick from
	// reversing the snake onto its neck.
	lastStep types.Direction
}

func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Update moves the snake one cell. The new head is pushed before the tail is
// conditionally dropped; growth means skipping the drop.
func (s *Snake) Update() {
	newHead := s.Head().Add(s.Direction)
	s.lastStep = s.Direction
	s.Body = append([]types.Cell{newHead}, s.Body...)
	if s.PendingGrowth {
		s.PendingGrowth = false
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Reset restores the starting body and heading.
func (s *Snake) Reset() {
	s.Body = make([]types.Cell, len(InitialBody))
	copy(s.Body, InitialBody)
	s.Direction = InitialDirection
	s.lastStep = InitialDirection
	s.PendingGrowth = false
}

// SetDirection turns the snake unless dir is not a unit step or would reverse
// it onto its own neck. It reports whether the turn was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.IsUnit() || dir == s.Direction.Opposite() || dir == s.lastStep.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

func (s *Snake) Head() types.Cell {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Headless returns the body without its head. The slice aliases Body.
func (s *Snake) Headless() []types.Cell {
	return s.Body[1:]
}

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c types.Cell) bool {
	return ContainsCell(s.Body, c)
}

// ContainsCell is a linear membership scan over cells.
func ContainsCell(cells []types.Cell, c types.Cell) bool {
	for _, p := range cells {
		if p == c {
			return true
		}
	}
	return false
}
