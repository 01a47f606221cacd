// Package ai implements the heuristic controller for computer-driven
// paddles.
package ai

import (
	"math"

	"github.com/tomz197/pong/internal/object"
)

// Steer computes the up/down intent for an AI-controlled player from the
// current ball and paddle state. Called once per tick, only while the
// game is in the playing state.
//
// Two modes, picked by the ball's horizontal direction:
//   - follow: the ball is approaching this paddle's side, so the target
//     is the ball's vertical position.
//   - return: the ball is moving away, so the paddle recenters on the
//     court in anticipation of the next rally leg.
//
// A deadzone of half the paddle speed around the target suppresses both
// flags, which stops the paddle from jittering once aligned.
func Steer(p *object.Player, ball *object.Ball, court object.Court) {
	// A stationary ball means the rally has not started; don't drift.
	if ball.Vel.IsZero() {
		p.ClearIntent()
		return
	}

	approaching := (p.Side == object.SideRight && ball.Vel.DX > 0) ||
		(p.Side == object.SideLeft && ball.Vel.DX < 0)

	target := court.Height / 2
	if approaching {
		target = ball.Pos.Y
	}

	dist := target - p.Paddle.CenterY()
	deadzone := p.Paddle.Speed / 2
	if math.Abs(dist) < deadzone {
		p.ClearIntent()
		return
	}

	p.SetIntent(dist < 0, dist > 0)
}
