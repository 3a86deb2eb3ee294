package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownVariant is returned by ParseVariant for unrecognized names.
var ErrUnknownVariant = errors.New("unknown variant")

// Style selects how snake and food cells are drawn.
type Style int

const (
	StyleRounded Style = iota
	StylePlain
)

func (s Style) String() string {
	if s == StylePlain {
		return "plain"
	}
	return "rounded"
}

// Features toggles the rule differences between game variants.
type Features struct {
	WallCollision bool
	BodyCollision bool
	Scoring       bool
	Style         Style
}

// Settings holds everything that used to be a package-level constant.
type Settings struct {
	Name         string
	Title        string
	CellSize     int
	CellCount    int
	Offset       int
	BorderWidth  int
	TickInterval time.Duration
	Features     Features

	Background Color
	Foreground Color
	FoodColor  Color
}

// Game constants
const (
	DefaultCellSize     = 30
	DefaultCellCount    = 25
	DefaultTickInterval = 150 * time.Millisecond

	// MaxPlacementAttempts bounds rejection sampling before the food manager
	// falls back to scanning free cells.
	MaxPlacementAttempts = 1024
)

var (
	White     = Color{R: 255, G: 255, B: 255, A: 255}
	Green     = Color{R: 173, G: 204, B: 96, A: 255}
	DarkGreen = Color{R: 43, G: 51, B: 24, A: 255}
	Red       = Color{R: 165, G: 0, B: 0, A: 255}
)

// Classic is the bordered variant: walls and self collision end the round,
// score is tracked and cells are drawn rounded.
func Classic() Settings {
	return Settings{
		Name:         "classic",
		Title:        "Snake Game",
		CellSize:     DefaultCellSize,
		CellCount:    DefaultCellCount,
		Offset:       75,
		BorderWidth:  5,
		TickInterval: DefaultTickInterval,
		Features: Features{
			WallCollision: true,
			BodyCollision: true,
			Scoring:       true,
			Style:         StyleRounded,
		},
		Background: White,
		Foreground: DarkGreen,
		FoodColor:  Red,
	}
}

// Retro is the borderless variant: no losing, no score, plain cells.
func Retro() Settings {
	return Settings{
		Name:         "retro",
		Title:        "Retro Snake",
		CellSize:     DefaultCellSize,
		CellCount:    DefaultCellCount,
		TickInterval: DefaultTickInterval,
		Features: Features{
			Style: StylePlain,
		},
		Background: Green,
		Foreground: DarkGreen,
		FoodColor:  DarkGreen,
	}
}

// ParseVariant maps a variant name to its settings.
func ParseVariant(name string) (Settings, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return Classic(), nil
	case "retro":
		return Retro(), nil
	}
	return Settings{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Grid returns the square board described by the settings.
func (s Settings) Grid() Grid {
	return Grid{Width: s.CellCount, Height: s.CellCount}
}

// WindowSize is the side of the square window in pixels.
func (s Settings) WindowSize() int {
	return 2*s.Offset + s.CellSize*s.CellCount
}

// CellOrigin maps a grid cell to the top-left pixel of its square.
func (s Settings) CellOrigin(c Cell) (x, y int) {
	return s.Offset + c.X*s.CellSize, s.Offset + c.Y*s.CellSize
}
