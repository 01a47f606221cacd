package object

import (
	"github.com/tomz197/pong/internal/geom"
)

// Ball is the moving ball. Position is the center of the ball; Size is
// its diameter in court units.
type Ball struct {
	Pos  geom.Position
	Prev geom.Position // Position at the start of the current tick
	Vel  geom.Velocity
	Size float64

	// SpeedMultiplier scales velocity during integration. Starts at 1.0,
	// grows on every confirmed paddle hit within a rally, and resets to
	// 1.0 when a point is scored.
	SpeedMultiplier float64
}

// NewBall creates a ball at (x, y) with the given diameter, at rest.
func NewBall(x, y, size float64) *Ball {
	return &Ball{
		Pos:             geom.Position{X: x, Y: y},
		Prev:            geom.Position{X: x, Y: y},
		Size:            size,
		SpeedMultiplier: 1.0,
	}
}

// Advance integrates the ball's position over dt seconds. The previous
// position is recorded first so the resolver can run a swept test
// against the path traveled this tick. No bounds handling happens here;
// walls, paddles, and scoring belong entirely to the resolver.
func (b *Ball) Advance(dt float64) {
	b.Prev = b.Pos
	b.Pos.X += b.Vel.DX * b.SpeedMultiplier * dt
	b.Pos.Y += b.Vel.DY * b.SpeedMultiplier * dt
}

// SpeedUp raises the speed multiplier by factor, capped at limit.
// Called on confirmed paddle hits only, never on wall bounces.
func (b *Ball) SpeedUp(factor, limit float64) {
	b.SpeedMultiplier *= factor
	if b.SpeedMultiplier > limit {
		b.SpeedMultiplier = limit
	}
}

// ResetSpeed restores the base speed multiplier. Called when a point is
// scored.
func (b *Ball) ResetSpeed() {
	b.SpeedMultiplier = 1.0
}

// Reset places the ball at (x, y) with the given velocity and base speed.
func (b *Ball) Reset(x, y float64, vel geom.Velocity) {
	b.Pos = geom.Position{X: x, Y: y}
	b.Prev = b.Pos
	b.Vel = vel
	b.SpeedMultiplier = 1.0
}

// BoundingBox returns the box centered on the ball's position.
func (b *Ball) BoundingBox() geom.BoundingBox {
	half := b.Size / 2
	return geom.BoundingBox{
		Left:   b.Pos.X - half,
		Right:  b.Pos.X + half,
		Top:    b.Pos.Y - half,
		Bottom: b.Pos.Y + half,
	}
}

// Velocity returns the ball's raw velocity, before the speed multiplier.
func (b *Ball) Velocity() geom.Velocity {
	return b.Vel
}

// Position returns the ball's current center.
func (b *Ball) Position() geom.Position {
	return b.Pos
}

// PreviousPosition returns the ball's center at the start of this tick.
func (b *Ball) PreviousPosition() geom.Position {
	return b.Prev
}

// Draw renders the ball as a filled square on the canvas.
func (b *Ball) Draw(ctx DrawContext) {
	box := b.BoundingBox()
	ctx.Canvas.FillRect(box.Left, box.Top, box.Width(), box.Height())
}
