package loop

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Match
const (
	// DefaultWinningScore ends the match when a player reaches it.
	// 0 disables the threshold (endless rally practice).
	DefaultWinningScore = 11

	StartCountdownSeconds = 3.0 // Before the first serve
	ServeCountdownSeconds = 1.0 // Between points
)

// Ball speeds, expressed as fractions of the court size per second so
// gameplay feels the same at any terminal size.
const (
	BallSpeedXFrac = 0.45 // Horizontal serve speed, of court width
	BallBaseDYFrac = 0.55 // Vertical speed at full deflection, of court height
	ServeDYFrac    = 0.15 // Max vertical spread on serve, of court height
)

// Rally speed-up
const (
	SpeedUpFactor      = 1.05 // Multiplier gain per confirmed paddle hit
	MaxSpeedMultiplier = 3.0
	HardBounceFactor   = 1.5 // Vertical sharpening on paddle edge hits
)

// Tick policy: non-positive deltas are ignored, oversized deltas (tab
// suspension, debugger stops) are clamped so the ball cannot teleport
// through a paddle in one tick.
const MaxTickSeconds = 0.25

// Rendering
const (
	targetFPS = 60
)
