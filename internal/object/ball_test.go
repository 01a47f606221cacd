package object

import (
	"testing"

	"github.com/tomz197/pong/internal/geom"
)

func TestBall_Advance(t *testing.T) {
	ball := NewBall(10.0, 20.0, 2.0)
	ball.Vel = geom.Velocity{DX: 3.0, DY: -2.0}

	ball.Advance(0.5)

	// Exact integration: pos + vel * multiplier * dt
	if ball.Pos.X != 11.5 {
		t.Errorf("expected X=11.5, got %f", ball.Pos.X)
	}
	if ball.Pos.Y != 19.0 {
		t.Errorf("expected Y=19.0, got %f", ball.Pos.Y)
	}
	if ball.Prev.X != 10.0 || ball.Prev.Y != 20.0 {
		t.Errorf("expected previous position (10, 20), got (%f, %f)", ball.Prev.X, ball.Prev.Y)
	}
}

func TestBall_AdvanceWithMultiplier(t *testing.T) {
	ball := NewBall(10.0, 20.0, 2.0)
	ball.Vel = geom.Velocity{DX: 4.0, DY: 0}
	ball.SpeedMultiplier = 1.5

	ball.Advance(0.5)

	if ball.Pos.X != 13.0 {
		t.Errorf("expected X=13.0 (4 * 1.5 * 0.5 moved), got %f", ball.Pos.X)
	}
}

func TestBall_SpeedUp(t *testing.T) {
	ball := NewBall(0, 0, 1)

	ball.SpeedUp(1.5, 3.0)
	if ball.SpeedMultiplier != 1.5 {
		t.Errorf("expected multiplier 1.5, got %f", ball.SpeedMultiplier)
	}

	// Capped at the limit
	for i := 0; i < 10; i++ {
		ball.SpeedUp(1.5, 3.0)
	}
	if ball.SpeedMultiplier != 3.0 {
		t.Errorf("expected multiplier capped at 3.0, got %f", ball.SpeedMultiplier)
	}

	ball.ResetSpeed()
	if ball.SpeedMultiplier != 1.0 {
		t.Errorf("expected multiplier reset to 1.0, got %f", ball.SpeedMultiplier)
	}
}

func TestBall_Reset(t *testing.T) {
	ball := NewBall(0, 0, 1)
	ball.Vel = geom.Velocity{DX: 5, DY: 5}
	ball.SpeedMultiplier = 2.5
	ball.Advance(1.0)

	ball.Reset(60, 40, geom.Velocity{DX: -3, DY: 1})

	if ball.Pos.X != 60 || ball.Pos.Y != 40 {
		t.Errorf("expected position (60, 40), got (%f, %f)", ball.Pos.X, ball.Pos.Y)
	}
	if ball.Prev != ball.Pos {
		t.Errorf("expected previous position to match after reset, got %+v", ball.Prev)
	}
	if ball.Vel.DX != -3 || ball.Vel.DY != 1 {
		t.Errorf("expected velocity (-3, 1), got %+v", ball.Vel)
	}
	if ball.SpeedMultiplier != 1.0 {
		t.Errorf("expected multiplier reset to 1.0, got %f", ball.SpeedMultiplier)
	}
}

func TestBall_BoundingBox(t *testing.T) {
	ball := NewBall(10, 20, 4)
	box := ball.BoundingBox()

	expected := geom.BoundingBox{Left: 8, Right: 12, Top: 18, Bottom: 22}
	if box != expected {
		t.Errorf("expected box %+v, got %+v", expected, box)
	}
}
