// Package audio holds the eat and death sounds and the players that trigger
// them. Playback is fire-and-forget: the game never waits on a sound.
package audio

// Sound identifies a game sound effect.
type Sound int

const (
	Eat Sound = iota
	Death
)

func (s Sound) String() string {
	switch s {
	case Eat:
		return "eat"
	case Death:
		return "death"
	}
	return "unknown"
}

// Player triggers sound effects. Close releases whatever the player acquired
// when it was created.
type Player interface {
	Play(s Sound)
	Close() error
}

// Silent is a Player that drops every sound. Used when audio is muted or the
// device could not be opened.
type Silent struct{}

func (Silent) Play(Sound) {}

func (Silent) Close() error { return nil }
