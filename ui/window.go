// Package ui is the raylib window shell: it opens the window, polls the
// arrow keys every frame and draws the game.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"retro-snake/game"
	"retro-snake/game/timing"
	"retro-snake/game/types"
)

const targetFPS = 60

var arrowKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
}

// Window owns the raylib window and the renderer drawing into it.
type Window struct {
	settings types.Settings
	renderer *Renderer
	logger   zerolog.Logger
}

// OpenWindow creates the window sized for settings. Close must be called
// once the loop is done.
func OpenWindow(settings types.Settings, assetDir string, logger zerolog.Logger) *Window {
	size := int32(settings.WindowSize())
	rl.InitWindow(size, size, settings.Title)
	rl.SetTargetFPS(targetFPS)

	return &Window{
		settings: settings,
		renderer: NewRenderer(settings, assetDir),
		logger:   logger,
	}
}

// Run loops until the window is asked to close. Logic advances only when the
// gate fires; input and drawing happen every frame.
func (w *Window) Run(g *game.Game, gate *timing.Gate) {
	for !rl.WindowShouldClose() {
		rl.BeginDrawing()

		if gate.ShouldTick() {
			g.Update()
		}

		for _, k := range arrowKeys {
			if rl.IsKeyPressed(k.key) {
				g.Steer(k.dir)
			}
		}

		w.renderer.Draw(g)
		rl.EndDrawing()
	}
	w.logger.Info().Int("steps", g.Steps).Msg("window close requested")
}

// Close releases the renderer and closes the window.
func (w *Window) Close() {
	w.renderer.Close()
	rl.CloseWindow()
}
