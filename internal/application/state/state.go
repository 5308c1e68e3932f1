package state

// GameState represents the current state of the game
type GameState int

const (
	StateTitle GameState = iota
	StateIntro
	StatePlaying
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StateIntro:
		return "Intro"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// CanPause reports whether Escape may pause or resume from s.
// The title screen and the intro cannot be paused.
func (s GameState) CanPause() bool {
	return s == StatePlaying || s == StatePaused
}
