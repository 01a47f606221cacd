package loop

import (
	"github.com/tomz197/pong/internal/geom"
	"github.com/tomz197/pong/internal/object"
)

// Snapshot captures ball and paddle state in court-relative (fractional)
// terms. Taken on entering pause; restoring against the current court
// dimensions keeps the relative layout intact even if the terminal was
// resized while paused.
type Snapshot struct {
	BallXFrac       float64
	BallYFrac       float64
	BallVel         geom.Velocity
	SpeedMultiplier float64
	LeftPaddleFrac  float64 // Paddle top as a fraction of its playable range
	RightPaddleFrac float64
}

// capture records the current entity layout relative to the court.
func (g *Game) capture() Snapshot {
	return Snapshot{
		BallXFrac:       g.Ball.Pos.X / g.Court.Width,
		BallYFrac:       g.Ball.Pos.Y / g.Court.Height,
		BallVel:         g.Ball.Vel,
		SpeedMultiplier: g.Ball.SpeedMultiplier,
		LeftPaddleFrac:  paddleFrac(g.Left.Paddle, g.Court),
		RightPaddleFrac: paddleFrac(g.Right.Paddle, g.Court),
	}
}

// restore maps a snapshot back onto the current court dimensions.
func (g *Game) restore(s Snapshot) {
	g.Ball.Pos = geom.Position{
		X: s.BallXFrac * g.Court.Width,
		Y: s.BallYFrac * g.Court.Height,
	}
	g.Ball.Prev = g.Ball.Pos
	g.Ball.Vel = s.BallVel
	g.Ball.SpeedMultiplier = s.SpeedMultiplier

	setPaddleFrac(g.Left.Paddle, g.Court, s.LeftPaddleFrac)
	setPaddleFrac(g.Right.Paddle, g.Court, s.RightPaddleFrac)
}

func paddleFrac(p *object.Paddle, court object.Court) float64 {
	room := court.Height - p.Height
	if room <= 0 {
		return 0
	}
	return p.Pos.Y / room
}

func setPaddleFrac(p *object.Paddle, court object.Court, frac float64) {
	p.Pos.Y = frac * (court.Height - p.Height)
	p.ClampY(court.Height)
	p.Prev = p.Pos
}
