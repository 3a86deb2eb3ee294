package types

// Cell is a grid coordinate. The board spans 0 <= X, Y < Grid.Width/Height.
type Cell struct {
	X, Y int
}

// Add returns the cell reached by stepping from c along d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Direction is a unit step on the grid.
type Direction struct {
	X, Y int
}

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsUnit reports whether d is one of Up, Down, Left or Right.
func (d Direction) IsUnit() bool {
	return (d.X == 0 && (d.Y == 1 || d.Y == -1)) || (d.Y == 0 && (d.X == 1 || d.X == -1))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Size is the number of cells on the board.
func (g Grid) Size() int {
	return g.Width * g.Height
}

// Color is an RGBA color shared by the renderers.
type Color struct {
	R, G, B, A uint8
}

// Random is the integer source used for food placement.
type Random interface {
	Intn(n int) int
}
