// Package object contains the entities of the simulation: the ball,
// the paddles, and the players that drive them.
package object

import (
	"io"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/geom"
)

// Court holds the playable area dimensions in logical coordinates.
type Court struct {
	Width  float64
	Height float64
}

// Center returns the court's center point.
func (c Court) Center() geom.Position {
	return geom.Position{X: c.Width / 2, Y: c.Height / 2}
}

// Layout holds entity dimensions derived from the court size.
type Layout struct {
	PaddleWidth   float64
	PaddleHeight  float64
	PaddleSpeed   float64 // Units per second
	PlayerPadding float64 // Gap between a paddle and its side wall
	BallSize      float64
}

// LayoutFor computes entity dimensions for a court. Called on construction
// and again on every resize so paddles and ball stay proportional.
func LayoutFor(c Court) Layout {
	return Layout{
		PaddleWidth:   max(1.0, c.Width*0.015),
		PaddleHeight:  c.Height * 0.18,
		PaddleSpeed:   c.Height * 0.75,
		PlayerPadding: c.Width * 0.02,
		BallSize:      max(1.0, c.Height*0.02),
	}
}

// DrawContext provides drawing resources for entities.
type DrawContext struct {
	Canvas *draw.Canvas // Half-block canvas for shapes
	Writer io.Writer    // Direct terminal output (for text overlays)
}

// Drawable is implemented by entities the engine renders each frame.
type Drawable interface {
	Draw(ctx DrawContext)
}
