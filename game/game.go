package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"retro-snake/audio"
	"retro-snake/game/entity"
	"retro-snake/game/manager"
	"retro-snake/game/types"
)

// State is the round state machine.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Game owns one snake, one food and the round state. It is driven from a
// single loop and is not safe for concurrent use.
type Game struct {
	UUID      string
	Settings  types.Settings
	Grid      types.Grid
	Snake     *entity.Snake
	Food      *entity.Food
	Steps     int
	StartTime time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	sounds       audio.Player
	logger       zerolog.Logger
	verbose      bool
	rng          types.Random
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithRandom replaces the random source used for food placement.
func WithRandom(r types.Random) Option {
	return func(g *Game) { g.rng = r }
}

// WithSounds sets the player for eat and death sounds. The Game takes
// ownership and closes it in Close.
func WithSounds(p audio.Player) Option {
	return func(g *Game) { g.sounds = p }
}

// WithLogger sets the logger for session events. Every entry carries the
// game id.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithVerbose logs every food eaten in addition to round results.
func WithVerbose(v bool) Option {
	return func(g *Game) { g.verbose = v }
}

func NewGame(settings types.Settings, opts ...Option) *Game {
	grid := settings.Grid()
	game := &Game{
		UUID:      uuid.New().String(),
		Settings:  settings,
		Grid:      grid,
		Snake:     entity.NewSnake(),
		StartTime: time.Now(),
		sounds:    audio.Silent{},
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(game)
	}
	game.logger = game.logger.With().Str("game", game.UUID).Logger()
	if game.rng == nil {
		game.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	game.collisionMgr = manager.NewCollisionManager(grid)
	game.foodMgr = manager.NewFoodManager(grid, game.rng, game.collisionMgr)
	game.stateMgr = manager.NewStateManager(settings.Features.Scoring)

	// Generate initial food
	game.Food = entity.NewFood(types.Cell{})
	game.relocateFood()

	game.logger.Info().
		Str("variant", settings.Name).
		Int("width", grid.Width).
		Int("height", grid.Height).
		Dur("tick", settings.TickInterval).
		Msg("started")
	return game
}

// Update advances one logic tick. While stopped it changes nothing. Food is
// checked before walls and body, so a tick that both eats and crashes counts
// the meal and then ends the round.
func (g *Game) Update() {
	if !g.stateMgr.Running() {
		return
	}

	g.Steps++
	g.Snake.Update()
	g.CheckCollisionWithFood()
	g.CheckCollisionWithEdges()
	g.CheckCollisionWithBody()
}

// CheckCollisionWithFood feeds the snake when its head reaches the food.
func (g *Game) CheckCollisionWithFood() bool {
	head := g.Snake.Head()
	if !g.collisionMgr.IsFoodCollision(head, g.Food.Position) {
		return false
	}

	g.relocateFood()
	g.Snake.PendingGrowth = true
	g.stateMgr.AddPoint()
	g.sounds.Play(audio.Eat)

	if g.verbose {
		g.logger.Info().
			Int("x", head.X).
			Int("y", head.Y).
			Int("score", g.stateMgr.Score()).
			Int("length", g.Snake.Len()).
			Msg("ate")
	}
	return true
}

// CheckCollisionWithEdges ends the round when the head leaves the board.
// Variants without walls let the snake roam off-grid.
func (g *Game) CheckCollisionWithEdges() bool {
	if !g.Settings.Features.WallCollision {
		return false
	}
	if !g.collisionMgr.IsWallCollision(g.Snake.Head()) {
		return false
	}
	g.GameOver(manager.WallCollision)
	return true
}

// CheckCollisionWithBody ends the round when the head lands on the body.
func (g *Game) CheckCollisionWithBody() bool {
	if !g.Settings.Features.BodyCollision {
		return false
	}
	if !g.collisionMgr.IsBodyCollision(g.Snake) {
		return false
	}
	g.GameOver(manager.BodyCollision)
	return true
}

// GameOver resets snake, food and score and stops the round until the next
// directional input.
func (g *Game) GameOver(reason manager.CollisionKind) manager.RoundResult {
	g.sounds.Play(audio.Death)
	head := g.Snake.Head()
	g.Snake.Reset()
	g.relocateFood()
	result := g.stateMgr.EndRound(reason)

	g.logger.Info().
		Int("round", g.stateMgr.Rounds()).
		Stringer("reason", reason).
		Int("x", head.X).
		Int("y", head.Y).
		Int("score", result.Score).
		Int("high", g.stateMgr.GetHighScore()).
		Msg("lost")
	return result
}

// Steer applies a directional key press. An accepted key, including one that
// repeats the current heading, also resumes a stopped round.
func (g *Game) Steer(dir types.Direction) bool {
	if !g.Snake.SetDirection(dir) {
		return false
	}
	g.stateMgr.Resume()
	return true
}

// relocateFood moves the food off the snake. On a full board the food stays
// where it is.
func (g *Game) relocateFood() {
	pos, err := g.foodMgr.GenerateRandomPos(g.Snake.Body)
	if err != nil {
		g.logger.Warn().Err(err).Msg("food not moved")
		return
	}
	g.Food.Position = pos
}

func (g *Game) State() State {
	if g.stateMgr.Running() {
		return Running
	}
	return Stopped
}

func (g *Game) Running() bool {
	return g.stateMgr.Running()
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) Rounds() int {
	return g.stateMgr.Rounds()
}

// GetStateManager exposes session totals such as the last round result.
func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}

// RoundSummary describes the last lost round for the stopped screen. It
// reports false before the first loss.
func (g *Game) RoundSummary() (string, bool) {
	sm := g.GetStateManager()
	if sm.Rounds() == 0 {
		return "", false
	}
	last := sm.LastResult()
	if !g.Settings.Features.Scoring {
		return fmt.Sprintf("round %d: %s", sm.Rounds(), last.Reason), true
	}
	return fmt.Sprintf("round %d: %s, score %d", sm.Rounds(), last.Reason, last.Score), true
}

// ElapsedTime returns the session length in seconds.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}

// Close logs the session totals and releases the sound player.
func (g *Game) Close() error {
	g.logger.Info().
		Int("steps", g.Steps).
		Int("rounds", g.stateMgr.Rounds()).
		Int("eaten", g.stateMgr.FoodEaten()).
		Int("high", g.stateMgr.GetHighScore()).
		Ints("scores", g.stateMgr.GetScoreHistory()).
		Float64("elapsed", g.ElapsedTime()).
		Msg("closed")
	return g.sounds.Close()
}
