package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/pong/internal/ai"
	"github.com/tomz197/pong/internal/geom"
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/physics"
)

// Result carries the outcome of a finished match for external reporting.
type Result struct {
	LeftName   string
	RightName  string
	LeftScore  int
	RightScore int
	Winner     string
	Duration   time.Duration // Time spent in the playing state
}

// Config describes a new match.
type Config struct {
	Court        object.Court
	LeftName     string
	RightName    string
	LeftControl  object.ControlStrategy
	RightControl object.ControlStrategy

	// WinningScore ends the match when reached. 0 disables the threshold.
	WinningScore int

	// OnResult is called exactly once when the match ends. May be nil.
	OnResult func(Result)

	// Rand drives serve direction. Nil uses the global source.
	Rand *rand.Rand
}

// Game owns the ball, both players, and the state machine. The external
// loop driver calls Update at a fixed cadence and Draw at the display
// refresh cadence; neither is reentrant and nothing here blocks.
type Game struct {
	Court object.Court
	Ball  *object.Ball
	Left  *object.Player
	Right *object.Player
	State GameState

	// Countdown holds the remaining gate time while in StateCountdown.
	Countdown float64

	winningScore int
	elapsed      float64 // Seconds spent in StatePlaying
	snapshot     *Snapshot
	onResult     func(Result)
	resultSent   bool
	winner       *object.Player
	rng          *rand.Rand
	cleaned      bool
}

// New creates a match on the given court. The game starts in the
// countdown state with a stationary ball at court center.
func New(cfg Config) *Game {
	if cfg.LeftName == "" {
		cfg.LeftName = "left"
	}
	if cfg.RightName == "" {
		cfg.RightName = "right"
	}

	l := object.LayoutFor(cfg.Court)
	center := cfg.Court.Center()

	g := &Game{
		Court:        cfg.Court,
		Ball:         object.NewBall(center.X, center.Y, l.BallSize),
		Left:         object.NewPlayer(cfg.LeftName, object.SideLeft, cfg.LeftControl, cfg.Court),
		Right:        object.NewPlayer(cfg.RightName, object.SideRight, cfg.RightControl, cfg.Court),
		State:        StateCountdown,
		Countdown:    StartCountdownSeconds,
		winningScore: cfg.WinningScore,
		onResult:     cfg.OnResult,
		rng:          cfg.Rand,
	}
	return g
}

// Update advances the simulation by delta. Non-positive deltas are
// ignored; oversized ones are clamped to MaxTickSeconds so a suspended
// terminal cannot teleport the ball through a paddle.
func (g *Game) Update(delta time.Duration) {
	dt := delta.Seconds()
	if dt <= 0 {
		return
	}
	if dt > MaxTickSeconds {
		dt = MaxTickSeconds
	}

	switch g.State {
	case StateCountdown:
		g.Countdown -= dt
		if g.Countdown <= 0 {
			g.Countdown = 0
			g.serve()
			g.State = StatePlaying
		}
	case StatePlaying:
		g.elapsed += dt
		g.tick(dt)
	case StatePaused, StateOver:
		// Frozen.
	}
}

// tick runs one step of the playing pipeline: AI intent, paddle
// movement, ball movement, collision resolution, scoring.
func (g *Game) tick(dt float64) {
	if g.Left.Control == object.ControlAI {
		ai.Steer(g.Left, g.Ball, g.Court)
	}
	if g.Right.Control == object.ControlAI {
		ai.Steer(g.Right, g.Ball, g.Court)
	}

	g.Left.Advance(dt, g.Court)
	g.Right.Advance(dt, g.Court)
	g.Ball.Advance(dt)

	physics.ResolveWalls(g.Ball, g.Court)

	// Only the paddle the ball is heading toward can be hit this tick.
	defender := g.Left
	if g.Ball.Vel.DX > 0 {
		defender = g.Right
	}
	res := physics.CheckPaddle(object.View(g.Ball), object.View(defender.Paddle))
	if res.Collided {
		physics.ApplyPaddleHit(g.Ball, res, g.tuning())
		return // A returned ball cannot cross a scoring boundary this tick.
	}

	switch physics.CheckGoal(g.Ball, g.Court) {
	case physics.GoalLeft:
		g.scorePoint(g.Right)
	case physics.GoalRight:
		g.scorePoint(g.Left)
	}
}

// tuning assembles the resolver parameters from the court-relative
// configuration constants.
func (g *Game) tuning() physics.Tuning {
	return physics.Tuning{
		BaseDY:             g.Court.Height * BallBaseDYFrac,
		SpeedUpFactor:      SpeedUpFactor,
		MaxSpeedMultiplier: MaxSpeedMultiplier,
		HardBounceFactor:   HardBounceFactor,
	}
}

// serve launches the ball from court center with a randomized horizontal
// direction sign and a small vertical spread.
func (g *Game) serve() {
	center := g.Court.Center()

	dx := g.Court.Width * BallSpeedXFrac
	if g.float64() < 0.5 {
		dx = -dx
	}
	dy := (g.float64()*2 - 1) * g.Court.Height * ServeDYFrac

	g.Ball.Reset(center.X, center.Y, geom.Velocity{DX: dx, DY: dy})
}

// scorePoint awards one point, recenters the stationary ball, and either
// finishes the match or re-enters the countdown for the next serve.
func (g *Game) scorePoint(scorer *object.Player) {
	score := scorer.AddPoint()
	center := g.Court.Center()
	g.Ball.Reset(center.X, center.Y, geom.Velocity{})

	if g.winningScore > 0 && score >= g.winningScore {
		g.finish(scorer)
		return
	}
	g.Countdown = ServeCountdownSeconds
	g.State = StateCountdown
}

// finish transitions to the terminal state and emits the match result
// exactly once.
func (g *Game) finish(winner *object.Player) {
	g.State = StateOver
	g.winner = winner
	if g.onResult != nil && !g.resultSent {
		g.resultSent = true
		g.onResult(g.Result())
	}
}

// Winner returns the winning player, or nil while the match is running.
func (g *Game) Winner() *object.Player {
	return g.winner
}

// Result reports the current scores and playing time.
func (g *Game) Result() Result {
	r := Result{
		LeftName:   g.Left.Name,
		RightName:  g.Right.Name,
		LeftScore:  g.Left.Score,
		RightScore: g.Right.Score,
		Duration:   time.Duration(g.elapsed * float64(time.Second)),
	}
	if g.winner != nil {
		r.Winner = g.winner.Name
	}
	return r
}

// TogglePause switches between playing and paused. Entering pause
// captures a court-relative snapshot; leaving it restores positions
// against the current (possibly resized) court.
func (g *Game) TogglePause() {
	switch g.State {
	case StatePlaying:
		s := g.capture()
		g.snapshot = &s
		g.State = StatePaused
	case StatePaused:
		if g.snapshot != nil {
			g.restore(*g.snapshot)
			g.snapshot = nil
		}
		g.State = StatePlaying
	}
}

// Resize recomputes entity layout for new court dimensions. While paused
// the stored snapshot is fractional, so only the resume restores
// positions; live resizes rescale the ball proportionally.
func (g *Game) Resize(court object.Court) {
	if court.Width <= 0 || court.Height <= 0 {
		return
	}

	old := g.Court
	g.Court = court
	g.Left.Resize(court)
	g.Right.Resize(court)

	l := object.LayoutFor(court)
	g.Ball.Size = l.BallSize
	if old.Width > 0 && old.Height > 0 {
		g.Ball.Pos.X = g.Ball.Pos.X / old.Width * court.Width
		g.Ball.Pos.Y = g.Ball.Pos.Y / old.Height * court.Height
		g.Ball.Vel.DX = g.Ball.Vel.DX / old.Width * court.Width
		g.Ball.Vel.DY = g.Ball.Vel.DY / old.Height * court.Height
		g.Ball.Prev = g.Ball.Pos
	}
}

// Restart begins a fresh match with the same players and court: scores
// reset, ball recentered, initial countdown re-armed.
func (g *Game) Restart() {
	g.Left.Score = 0
	g.Right.Score = 0
	g.Left.ClearIntent()
	g.Right.ClearIntent()

	center := g.Court.Center()
	g.Ball.Reset(center.X, center.Y, geom.Velocity{})

	g.elapsed = 0
	g.winner = nil
	g.resultSent = false
	g.snapshot = nil
	g.Countdown = StartCountdownSeconds
	g.State = StateCountdown
}

// Draw renders the court net, the ball, and both paddles. Read-only:
// Draw never mutates simulation state.
func (g *Game) Draw(ctx object.DrawContext) {
	ctx.Canvas.DashedVLine(int(g.Court.Width/2), 2)
	g.Ball.Draw(ctx)
	g.Left.Draw(ctx)
	g.Right.Draw(ctx)
}

// Cleanup releases the engine's callbacks. Must be called once when the
// engine is discarded; Update and Draw must not be called afterwards.
func (g *Game) Cleanup() {
	if g.cleaned {
		return
	}
	g.cleaned = true
	g.onResult = nil
	g.snapshot = nil
}

// float64 returns a uniform value in [0, 1) from the configured source.
func (g *Game) float64() float64 {
	if g.rng != nil {
		return g.rng.Float64()
	}
	return rand.Float64()
}
