package object

// ControlStrategy selects how a player's intent flags get set each tick.
type ControlStrategy int

const (
	// ControlHuman means an external input binding sets the intent flags.
	ControlHuman ControlStrategy = iota
	// ControlAI means the AI controller sets the intent flags.
	ControlAI
	// ControlPassive never sets either flag. Used for idle/demo display.
	ControlPassive
)

// Side identifies which wall a player defends.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Player couples a paddle to a control strategy and a score counter.
// The up/down intent flags are written by the input binding (human), the
// AI controller (AI), or nobody (passive); the simulation only reads
// them during Advance.
type Player struct {
	Name    string
	Side    Side
	Score   int
	Control ControlStrategy
	Paddle  *Paddle

	Up   bool
	Down bool
}

// NewPlayer creates a player defending the given side, with a paddle
// laid out for the court.
func NewPlayer(name string, side Side, control ControlStrategy, court Court) *Player {
	l := LayoutFor(court)
	p := &Player{
		Name:    name,
		Side:    side,
		Control: control,
		Paddle:  NewPaddle(0, (court.Height-l.PaddleHeight)/2, l.PaddleWidth, l.PaddleHeight, l.PaddleSpeed),
	}
	p.placeHorizontally(court, l)
	return p
}

// Advance moves the player's paddle according to the current intent
// flags. A passive player never has flags set, so its paddle holds still.
func (p *Player) Advance(dt float64, court Court) {
	p.Paddle.Advance(dt, p.Up, p.Down, court.Height)
}

// SetIntent sets the up/down intent flags. The input binding calls this
// for human players; the AI controller writes the flags directly.
func (p *Player) SetIntent(up, down bool) {
	p.Up = up
	p.Down = down
}

// ClearIntent drops both intent flags.
func (p *Player) ClearIntent() {
	p.Up = false
	p.Down = false
}

// SetAIControl toggles between AI and externally-bound control. Both
// intent flags are cleared so stale input does not carry across the
// switch.
func (p *Player) SetAIControl(enabled bool) {
	if enabled {
		p.Control = ControlAI
	} else {
		p.Control = ControlHuman
	}
	p.ClearIntent()
}

// Resize recomputes the paddle's dimensions and horizontal position for
// a new court size. The vertical position keeps its fraction of the
// playable range so the paddle does not jump on resize.
func (p *Player) Resize(court Court) {
	l := LayoutFor(court)

	frac := 0.0
	if room := court.Height - p.Paddle.Height; room > 0 {
		frac = p.Paddle.Pos.Y / room
	}

	p.Paddle.Width = l.PaddleWidth
	p.Paddle.Height = l.PaddleHeight
	p.Paddle.Speed = l.PaddleSpeed
	p.Paddle.Pos.Y = frac * (court.Height - l.PaddleHeight)
	p.Paddle.ClampY(court.Height)
	p.placeHorizontally(court, l)
	p.Paddle.Prev = p.Paddle.Pos
}

// placeHorizontally puts the paddle flush against its side wall with the
// layout's padding.
func (p *Player) placeHorizontally(court Court, l Layout) {
	if p.Side == SideLeft {
		p.Paddle.Pos.X = l.PlayerPadding
	} else {
		p.Paddle.Pos.X = court.Width - l.PlayerPadding - l.PaddleWidth
	}
}

// AddPoint increments the player's score and returns the new total.
func (p *Player) AddPoint() int {
	p.Score++
	return p.Score
}

// Draw renders the player's paddle.
func (p *Player) Draw(ctx DrawContext) {
	p.Paddle.Draw(ctx)
}
