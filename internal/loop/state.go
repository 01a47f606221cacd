package loop

// GameState represents the current game phase.
type GameState int

const (
	StateCountdown GameState = iota // Timer-gated, nothing moves
	StatePlaying                    // Full per-tick pipeline runs
	StatePaused                     // Frozen, snapshot captured
	StateOver                       // Score threshold reached
)

// String returns the state name for logs and tests.
func (s GameState) String() string {
	switch s {
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}
