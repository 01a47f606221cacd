package object

import (
	"github.com/tomz197/pong/internal/geom"
)

// HitboxInset is the fraction of paddle height shaved off the top and
// bottom of the collision box, so a ball grazing the paddle's outer edge
// slips past instead of registering a front-face hit.
const HitboxInset = 0.03

// Paddle is a player-controlled rectangle. Pos is the top-left corner.
type Paddle struct {
	Pos    geom.Position
	Prev   geom.Position
	Width  float64
	Height float64
	Speed  float64 // Units per second

	vel geom.Velocity // Movement applied during the last Advance
}

// NewPaddle creates a paddle with its top-left corner at (x, y).
func NewPaddle(x, y, width, height, speed float64) *Paddle {
	return &Paddle{
		Pos:    geom.Position{X: x, Y: y},
		Prev:   geom.Position{X: x, Y: y},
		Width:  width,
		Height: height,
		Speed:  speed,
	}
}

// Advance moves the paddle over dt seconds according to the up/down
// intent flags, then clamps it to the court's vertical playable range.
func (p *Paddle) Advance(dt float64, up, down bool, courtHeight float64) {
	p.Prev = p.Pos
	p.vel = geom.Velocity{}

	switch {
	case up && !down:
		p.vel.DY = -p.Speed
	case down && !up:
		p.vel.DY = p.Speed
	}

	p.Pos.Y += p.vel.DY * dt
	p.ClampY(courtHeight)
}

// ClampY restricts the paddle to [0, courtHeight-Height].
func (p *Paddle) ClampY(courtHeight float64) {
	p.Pos.Y = geom.Clamp(p.Pos.Y, 0, courtHeight-p.Height)
}

// CenterY returns the vertical center of the paddle.
func (p *Paddle) CenterY() float64 {
	return p.Pos.Y + p.Height/2
}

// BoundingBox returns the collision box, inset top and bottom by
// HitboxInset of the paddle height.
func (p *Paddle) BoundingBox() geom.BoundingBox {
	inset := p.Height * HitboxInset
	return geom.BoundingBox{
		Left:   p.Pos.X,
		Right:  p.Pos.X + p.Width,
		Top:    p.Pos.Y + inset,
		Bottom: p.Pos.Y + p.Height - inset,
	}
}

// Velocity returns the movement applied during the last Advance.
func (p *Paddle) Velocity() geom.Velocity {
	return p.vel
}

// Position returns the paddle's current top-left corner.
func (p *Paddle) Position() geom.Position {
	return p.Pos
}

// PreviousPosition returns the top-left corner at the start of this tick.
func (p *Paddle) PreviousPosition() geom.Position {
	return p.Prev
}

// Draw renders the paddle as a filled rectangle on the canvas.
func (p *Paddle) Draw(ctx DrawContext) {
	ctx.Canvas.FillRect(p.Pos.X, p.Pos.Y, p.Width, p.Height)
}
