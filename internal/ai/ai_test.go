package ai

import (
	"testing"

	"github.com/tomz197/pong/internal/geom"
	"github.com/tomz197/pong/internal/object"
)

var court = object.Court{Width: 400, Height: 280}

// newAIPlayer builds a right-side AI player with a paddle centered at
// centerY, height 20, and the given speed.
func newAIPlayer(centerY, speed float64) *object.Player {
	p := object.NewPlayer("cpu", object.SideRight, object.ControlAI, court)
	p.Paddle.Height = 20
	p.Paddle.Speed = speed
	p.Paddle.Pos.Y = centerY - 10
	return p
}

func TestSteer_FollowsApproachingBall(t *testing.T) {
	// Paddle center at 140, ball at 10 approaching the right side,
	// speed 5 means a deadzone of 2.5. Distance 130 is well outside it.
	p := newAIPlayer(140, 5)
	ball := object.NewBall(200, 10, 2)
	ball.Vel = geom.Velocity{DX: 3, DY: 0}

	Steer(p, ball, court)

	if !p.Up {
		t.Error("expected up=true: ball is above the paddle center")
	}
	if p.Down {
		t.Error("expected down=false")
	}
}

func TestSteer_FollowsBallBelow(t *testing.T) {
	p := newAIPlayer(100, 5)
	ball := object.NewBall(200, 250, 2)
	ball.Vel = geom.Velocity{DX: 3, DY: 1}

	Steer(p, ball, court)

	if p.Up {
		t.Error("expected up=false")
	}
	if !p.Down {
		t.Error("expected down=true: ball is below the paddle center")
	}
}

func TestSteer_Deadzone(t *testing.T) {
	// Distance to target below speed/2 must clear both flags.
	p := newAIPlayer(140, 5)
	p.SetIntent(true, false) // stale intent from the previous tick
	ball := object.NewBall(200, 138, 2)
	ball.Vel = geom.Velocity{DX: 3, DY: 0}

	Steer(p, ball, court)

	if p.Up || p.Down {
		t.Errorf("expected both flags false inside deadzone, got up=%v down=%v", p.Up, p.Down)
	}
}

func TestSteer_ReturnModeRecenters(t *testing.T) {
	// Ball moving away from the right side: target is the court's
	// vertical center (140), not the ball.
	p := newAIPlayer(40, 5)
	ball := object.NewBall(200, 10, 2)
	ball.Vel = geom.Velocity{DX: -3, DY: 0}

	Steer(p, ball, court)

	if p.Up {
		t.Error("expected up=false while recentering downward")
	}
	if !p.Down {
		t.Error("expected down=true: paddle is above court center")
	}
}

func TestSteer_ReturnModeDeadzone(t *testing.T) {
	// Already at court center while the ball moves away: stay put.
	p := newAIPlayer(140, 5)
	ball := object.NewBall(200, 10, 2)
	ball.Vel = geom.Velocity{DX: -3, DY: 2}

	Steer(p, ball, court)

	if p.Up || p.Down {
		t.Errorf("expected both flags false at center, got up=%v down=%v", p.Up, p.Down)
	}
}

func TestSteer_FrozenBall(t *testing.T) {
	// A completely stationary ball must never produce intent, no matter
	// how far the paddle is from it.
	p := newAIPlayer(270, 5)
	p.SetIntent(false, true)
	ball := object.NewBall(200, 10, 2)

	Steer(p, ball, court)

	if p.Up || p.Down {
		t.Errorf("expected both flags false for a frozen ball, got up=%v down=%v", p.Up, p.Down)
	}
}

func TestSteer_LeftSideApproach(t *testing.T) {
	// For a left-side player the ball approaches when moving left.
	p := object.NewPlayer("cpu", object.SideLeft, object.ControlAI, court)
	p.Paddle.Height = 20
	p.Paddle.Speed = 5
	p.Paddle.Pos.Y = 130 // center 140
	ball := object.NewBall(200, 10, 2)
	ball.Vel = geom.Velocity{DX: -3, DY: 0}

	Steer(p, ball, court)

	if !p.Up || p.Down {
		t.Errorf("expected follow mode toward the ball, got up=%v down=%v", p.Up, p.Down)
	}
}
