package ui

import (
	"fmt"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"retro-snake/game"
	"retro-snake/game/types"
)

const (
	titleFontSize  = 40
	hintFontSize   = 20
	snakeRoundness = 0.2
	foodRoundness  = 0.5
	roundSegments  = 6
)

// Renderer draws a game into the current raylib frame.
type Renderer struct {
	settings    types.Settings
	background  rl.Color
	foreground  rl.Color
	foodColor   rl.Color
	foodTexture rl.Texture2D
	hasTexture  bool
}

// NewRenderer prepares colors and loads Graphics/food.png from assetDir when
// it exists. Must be called after the window is open.
func NewRenderer(settings types.Settings, assetDir string) *Renderer {
	r := &Renderer{
		settings:   settings,
		background: toColor(settings.Background),
		foreground: toColor(settings.Foreground),
		foodColor:  toColor(settings.FoodColor),
	}

	path := filepath.Join(assetDir, "Graphics", "food.png")
	if rl.FileExists(path) {
		r.foodTexture = rl.LoadTexture(path)
		r.hasTexture = r.foodTexture.ID != 0
	}
	return r
}

func toColor(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Draw renders one frame. It must be called between BeginDrawing and
// EndDrawing.
func (r *Renderer) Draw(g *game.Game) {
	rl.ClearBackground(r.background)

	if r.settings.BorderWidth > 0 {
		r.drawFrame(g)
	}

	r.drawFood(g.Food.Position)
	for _, c := range g.Snake.Body {
		r.drawCell(c, snakeRoundness, r.foreground)
	}

	if !g.Running() {
		r.drawHint(g)
	}
}

// drawFrame draws the border around the board, the title and the score.
func (r *Renderer) drawFrame(g *game.Game) {
	s := r.settings
	side := float32(s.CellSize * s.CellCount)
	bw := float32(s.BorderWidth)
	rl.DrawRectangleLinesEx(
		rl.NewRectangle(float32(s.Offset)-bw, float32(s.Offset)-bw, side+2*bw, side+2*bw),
		bw, r.foreground)

	rl.DrawText(s.Title, int32(s.Offset-s.BorderWidth), 20, titleFontSize, r.foreground)
	if s.Features.Scoring {
		scoreX := int32(s.Offset + s.CellSize*s.CellCount - titleFontSize)
		rl.DrawText(fmt.Sprintf("%d", g.Score()), scoreX, 20, titleFontSize, r.foreground)

		best := fmt.Sprintf("best %d", g.HighScore())
		bottom := int32(s.Offset + s.CellSize*s.CellCount + s.BorderWidth + 10)
		rl.DrawText(best, int32(s.Offset-s.BorderWidth), bottom, hintFontSize, r.foreground)
	}
}

func (r *Renderer) drawHint(g *game.Game) {
	size := int32(r.settings.WindowSize())
	y := size/2 - hintFontSize*3

	text := "press an arrow key"
	rl.DrawText(text, (size-rl.MeasureText(text, hintFontSize))/2, y, hintFontSize, r.foreground)
	if summary, ok := g.RoundSummary(); ok {
		rl.DrawText(summary, (size-rl.MeasureText(summary, hintFontSize))/2, y+hintFontSize+4, hintFontSize, r.foreground)
	}
}

func (r *Renderer) drawFood(c types.Cell) {
	if r.hasTexture {
		x, y := r.settings.CellOrigin(c)
		rl.DrawTexture(r.foodTexture, int32(x), int32(y), rl.White)
		return
	}
	r.drawCell(c, foodRoundness, r.foodColor)
}

func (r *Renderer) drawCell(c types.Cell, roundness float32, color rl.Color) {
	x, y := r.settings.CellOrigin(c)
	size := r.settings.CellSize
	if r.settings.Features.Style == types.StylePlain {
		rl.DrawRectangle(int32(x), int32(y), int32(size), int32(size), color)
		return
	}
	rl.DrawRectangleRounded(
		rl.NewRectangle(float32(x), float32(y), float32(size), float32(size)),
		roundness, roundSegments, color)
}

// Close unloads the food texture.
func (r *Renderer) Close() {
	if r.hasTexture {
		rl.UnloadTexture(r.foodTexture)
		r.hasTexture = false
	}
}
