// Package terminal runs the game in a text terminal through tcell. Each grid
// cell is two columns wide so the board stays roughly square.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"retro-snake/game"
	"retro-snake/game/timing"
	"retro-snake/game/types"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	cellWidth     = 2
)

// Action is what a key press asks the loop to do.
type Action int

const (
	None Action = iota
	Steer
	Quit
)

var arrowKeys = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

// KeyAction maps a key to an action. Escape, Ctrl-C and q quit.
func KeyAction(key tcell.Key, r rune) (Action, types.Direction) {
	if dir, ok := arrowKeys[key]; ok {
		return Steer, dir
	}
	switch {
	case key == tcell.KeyEscape, key == tcell.KeyCtrlC:
		return Quit, types.Direction{}
	case key == tcell.KeyRune && (r == 'q' || r == 'Q'):
		return Quit, types.Direction{}
	}
	return None, types.Direction{}
}

// Terminal draws the game on a tcell screen.
type Terminal struct {
	screen   tcell.Screen
	settings types.Settings
	logger   zerolog.Logger

	boardStyle tcell.Style
	snakeStyle tcell.Style
	foodStyle  tcell.Style
	textStyle  tcell.Style
}

// New initializes screen and takes ownership of it; Close finalizes it.
func New(screen tcell.Screen, settings types.Settings, logger zerolog.Logger) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	bg := toColor(settings.Background)
	fg := toColor(settings.Foreground)
	t := &Terminal{
		screen:     screen,
		settings:   settings,
		logger:     logger,
		boardStyle: tcell.StyleDefault.Background(bg).Foreground(fg),
		snakeStyle: tcell.StyleDefault.Background(bg).Foreground(fg),
		foodStyle:  tcell.StyleDefault.Background(bg).Foreground(toColor(settings.FoodColor)),
		textStyle:  tcell.StyleDefault.Foreground(fg),
	}
	screen.HideCursor()
	screen.Clear()
	return t, nil
}

// NewScreen opens the real terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return screen, nil
}

func toColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run loops until a quit key or ctx is done. Terminal events arrive on a
// goroutine; the game itself is only touched here.
func (t *Terminal) Run(ctx context.Context, g *game.Game, gate *timing.Gate) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t.Draw(g)
	for {
		select {
		case <-ctx.Done():
			t.logger.Info().Err(ctx.Err()).Msg("terminal loop stopped")
			return

		case ev := <-events:
			if !t.HandleEvent(ev, g) {
				t.logger.Info().Msg("quit key pressed")
				return
			}

		case <-ticker.C:
			if gate.ShouldTick() {
				g.Update()
			}
			t.Draw(g)
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the loop
// should stop.
func (t *Terminal) HandleEvent(ev tcell.Event, g *game.Game) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, dir := KeyAction(ev.Key(), ev.Rune())
		switch action {
		case Quit:
			return false
		case Steer:
			g.Steer(dir)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// origin is the screen position of grid cell (0,0).
func (t *Terminal) origin() (x, y int) {
	if t.settings.BorderWidth > 0 {
		return 1, 2
	}
	return 0, 1
}

// Draw renders one frame.
func (t *Terminal) Draw(g *game.Game) {
	t.screen.Clear()
	ox, oy := t.origin()
	n := t.settings.CellCount

	for y := 0; y < n; y++ {
		for x := 0; x < n*cellWidth; x++ {
			t.screen.SetContent(ox+x, oy+y, ' ', nil, t.boardStyle)
		}
	}
	if t.settings.BorderWidth > 0 {
		t.drawBorder(ox-1, oy-1, ox+n*cellWidth, oy+n)
	}

	t.drawText(0, 0, t.settings.Title)
	if t.settings.Features.Scoring {
		status := fmt.Sprintf("score %d  best %d", g.Score(), g.HighScore())
		t.drawText(ox+n*cellWidth-len(status), 0, status)
	}

	t.drawCell(g.Food.Position, '●', ' ', t.foodStyle)
	for i, c := range g.Snake.Body {
		if i == 0 && t.settings.Features.Style == types.StyleRounded {
			t.drawCell(c, '█', '█', t.snakeStyle.Bold(true))
			continue
		}
		t.drawCell(c, '█', '█', t.snakeStyle)
	}

	if !g.Running() {
		hint := "press an arrow key"
		t.drawText(ox+(n*cellWidth-len(hint))/2, oy+n/2, hint)
		if summary, ok := g.RoundSummary(); ok {
			t.drawText(ox+(n*cellWidth-len(summary))/2, oy+n/2+1, summary)
		}
	}
	t.screen.Show()
}

// drawCell paints both columns of a grid cell. Cells off the board are
// skipped; the snake may leave it when walls are off.
func (t *Terminal) drawCell(c types.Cell, left, right rune, style tcell.Style) {
	if !t.settings.Grid().Contains(c) {
		return
	}
	ox, oy := t.origin()
	x := ox + c.X*cellWidth
	y := oy + c.Y
	t.screen.SetContent(x, y, left, nil, style)
	t.screen.SetContent(x+1, y, right, nil, style)
}

func (t *Terminal) drawText(x, y int, text string) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, t.textStyle)
	}
}

func (t *Terminal) drawBorder(x1, y1, x2, y2 int) {
	style := t.textStyle
	for col := x1 + 1; col < x2; col++ {
		t.screen.SetContent(col, y1, tcell.RuneHLine, nil, style)
		t.screen.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		t.screen.SetContent(x1, row, tcell.RuneVLine, nil, style)
		t.screen.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}
	t.screen.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	t.screen.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	t.screen.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	t.screen.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}
