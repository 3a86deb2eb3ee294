package manager

// RoundResult summarizes a lost round.
type RoundResult struct {
	Score  int
	Reason CollisionKind
}

// StateManager tracks the round state: score, whether the snake is moving,
// and session totals. Nothing here outlives the process.
type StateManager struct {
	scoring      bool
	running      bool
	score        int
	highScore    int
	rounds       int
	foodEaten    int
	lastResult   RoundResult
	scoreHistory []int
}

func NewStateManager(scoring bool) *StateManager {
	return &StateManager{
		scoring:      scoring,
		running:      true,
		scoreHistory: make([]int, 0),
	}
}

func (sm *StateManager) Running() bool {
	return sm.running
}

// Resume puts a stopped round back in motion.
func (sm *StateManager) Resume() {
	sm.running = true
}

// AddPoint records an eaten food. Score only moves when scoring is enabled.
func (sm *StateManager) AddPoint() {
	sm.foodEaten++
	if !sm.scoring {
		return
	}
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// EndRound stops the snake, archives the score and zeroes it.
func (sm *StateManager) EndRound(reason CollisionKind) RoundResult {
	result := RoundResult{Score: sm.score, Reason: reason}
	sm.lastResult = result
	sm.rounds++
	sm.scoreHistory = append(sm.scoreHistory, sm.score)
	sm.running = false
	sm.score = 0
	return result
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) Rounds() int {
	return sm.rounds
}

func (sm *StateManager) FoodEaten() int {
	return sm.foodEaten
}

func (sm *StateManager) LastResult() RoundResult {
	return sm.lastResult
}

func (sm *StateManager) GetScoreHistory() []int {
	return sm.scoreHistory
}
