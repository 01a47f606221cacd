// Package physics resolves collisions between the ball, the court
// walls, and the paddles. All functions are pure computation over
// Collidable views; only the Apply/Resolve functions mutate the ball.
package physics

import (
	"github.com/tomz197/pong/internal/geom"
	"github.com/tomz197/pong/internal/object"
)

// Face identifies which paddle face the ball hit.
type Face int

const (
	FaceFront Face = iota
	FaceTop
	FaceBottom
)

// edgeBand is the fraction of the hitbox at each end that counts as an
// edge hit. Contact with |deflection| beyond 1-edgeBand lands in the
// top/bottom band and produces a hard bounce.
const edgeBand = 0.2

// CollisionResult describes the outcome of one ball-paddle check. It is
// produced fresh per check and never stored.
type CollisionResult struct {
	Collided           bool
	HitFace            Face
	DeflectionModifier float64       // Normalized contact offset from paddle center, in [-1, 1]
	Point              geom.Position // Contact point on the paddle's front face
	HardBounce         bool          // Edge hit, deflected sharper than a front hit
}

// CheckPaddle tests the ball's path this tick against one paddle.
//
// The test is swept: if the final position already tunneled past the
// paddle, the crossing of the front face between previous and current
// position still registers as a hit. The paddle's hitbox is the inset
// box exposed by its Collidable view.
func CheckPaddle(ball, paddle object.Collidable) CollisionResult {
	ball = object.View(ball)
	paddle = object.View(paddle)

	vel := ball.Velocity()
	if vel.DX == 0 {
		return CollisionResult{}
	}

	bb := ball.BoundingBox()
	pb := paddle.BoundingBox()
	half := bb.Width() / 2

	// Front face is the one facing the approaching ball.
	front := pb.Left
	if vel.DX < 0 {
		front = pb.Right
	}

	cur := ball.Position()
	prev := ball.PreviousPosition()

	var contact geom.Position
	switch {
	case bb.Overlaps(pb):
		contact = geom.Position{
			X: front,
			Y: geom.Clamp(cur.Y, pb.Top, pb.Bottom),
		}
	default:
		// Swept test: did the leading edge cross the front face this tick?
		lead := half
		if vel.DX < 0 {
			lead = -half
		}
		prevEdge := prev.X + lead
		curEdge := cur.X + lead

		crossed := (vel.DX < 0 && prevEdge >= front && curEdge <= front) ||
			(vel.DX > 0 && prevEdge <= front && curEdge >= front)
		if !crossed || prevEdge == curEdge {
			return CollisionResult{}
		}

		t := (front - prevEdge) / (curEdge - prevEdge)
		y := prev.Y + t*(cur.Y-prev.Y)
		if y < pb.Top-half || y > pb.Bottom+half {
			return CollisionResult{}
		}
		contact = geom.Position{X: front, Y: geom.Clamp(y, pb.Top, pb.Bottom)}
	}

	mod := geom.Clamp((contact.Y-pb.CenterY())/(pb.Height()/2), -1, 1)

	res := CollisionResult{
		Collided:           true,
		HitFace:            FaceFront,
		DeflectionModifier: mod,
		Point:              contact,
	}
	switch {
	case mod <= -(1 - edgeBand):
		res.HitFace = FaceTop
		res.HardBounce = true
	case mod >= 1-edgeBand:
		res.HitFace = FaceBottom
		res.HardBounce = true
	}
	return res
}

// Tuning holds the resolver's deflection and speed-up parameters. The
// engine fills it from its configuration constants.
type Tuning struct {
	BaseDY             float64 // Outgoing vertical speed at full deflection
	SpeedUpFactor      float64 // Multiplier gain per confirmed paddle hit
	MaxSpeedMultiplier float64
	HardBounceFactor   float64 // Vertical sharpening applied to edge hits
}

// ApplyPaddleHit mutates the ball according to a collision result:
// horizontal direction reverses, outgoing vertical speed scales with the
// deflection modifier, and the speed multiplier grows by the per-hit
// factor. Edge hits deflect sharper and keep the hard-bounce flag.
func ApplyPaddleHit(b *object.Ball, res CollisionResult, t Tuning) {
	if !res.Collided {
		return
	}

	b.Vel.DX = -b.Vel.DX

	dy := t.BaseDY * res.DeflectionModifier
	if res.HardBounce {
		dy *= t.HardBounceFactor
	}
	b.Vel.DY = dy

	// Reposition so the leading edge rests on the front face. Without
	// this a slow tick can leave the ball inside the paddle and collide
	// again next tick.
	half := b.Size / 2
	if b.Vel.DX > 0 {
		b.Pos.X = res.Point.X + half
	} else {
		b.Pos.X = res.Point.X - half
	}

	b.SpeedUp(t.SpeedUpFactor, t.MaxSpeedMultiplier)
}

// ResolveWalls reflects the ball off the top and bottom court walls.
// The vertical velocity flips sign, the horizontal one is untouched, and
// the ball is mirrored back inside by the overflow amount. Wall bounces
// never change the speed multiplier. Returns whether a bounce happened.
func ResolveWalls(b *object.Ball, court object.Court) bool {
	box := b.BoundingBox()

	if box.Top < 0 && b.Vel.DY < 0 {
		b.Vel.DY = -b.Vel.DY
		b.Pos.Y += 2 * -box.Top
		return true
	}
	if over := box.Bottom - court.Height; over > 0 && b.Vel.DY > 0 {
		b.Vel.DY = -b.Vel.DY
		b.Pos.Y -= 2 * over
		return true
	}
	return false
}

// Goal identifies which scoring boundary the ball fully crossed.
type Goal int

const (
	GoalNone Goal = iota
	GoalLeft
	GoalRight
)

// CheckGoal reports whether the ball's box fully crossed the left or
// right court boundary.
func CheckGoal(ball object.Collidable, court object.Court) Goal {
	box := object.View(ball).BoundingBox()
	if box.Right < 0 {
		return GoalLeft
	}
	if box.Left > court.Width {
		return GoalRight
	}
	return GoalNone
}
