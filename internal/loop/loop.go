// Package loop provides the game engine, its state machine, and the
// terminal loop driver.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/object"
)

const targetFrameTime = time.Second / targetFPS

// Options configures a terminal session of the game.
type Options struct {
	// TermSize reports the terminal dimensions. Defaults to stdout.
	TermSize draw.TermSizeFunc

	LeftName  string
	RightName string

	// RightAI starts the right paddle under AI control. The player can
	// toggle it at runtime.
	RightAI bool

	// WinningScore ends a match when reached; 0 uses the default.
	WinningScore int

	// OnResult receives the outcome of every finished match. May be nil.
	OnResult func(Result)
}

// Run drives a game session with the standard Input → Update → Draw
// cycle at a fixed tick rate until the player quits or the reader
// closes. The engine itself never schedules anything; all timing lives
// here.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSize
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	winScore := opts.WinningScore
	if winScore == 0 {
		winScore = DefaultWinningScore
	}

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}

	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	canvas := draw.NewCanvas(termWidth, termHeight)

	rightControl := object.ControlHuman
	if opts.RightAI {
		rightControl = object.ControlAI
	}

	g := New(Config{
		Court:        courtFor(termWidth, termHeight),
		LeftName:     opts.LeftName,
		RightName:    opts.RightName,
		LeftControl:  object.ControlHuman,
		RightControl: rightControl,
		WinningScore: winScore,
		OnResult:     opts.OnResult,
	})
	defer g.Cleanup()

	var prev input.Input
	lastTime := time.Now()

	for {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		inp := input.ReadInput(stream)
		if inp.Quit || inp.Escape || inp.Closed {
			draw.ClearScreen(w)
			return nil
		}
		applyControls(g, inp, prev)
		prev = inp

		// ===== UPDATE PHASE =====
		if tw, th, err := sizeFunc(); err == nil && (tw != termWidth || th != termHeight) {
			termWidth, termHeight = tw, th
			canvas.Resize(termWidth, termHeight)
			g.Resize(courtFor(termWidth, termHeight))
			draw.ClearScreen(w)
		}

		g.Update(delta)

		// ===== DRAW PHASE =====
		draw.ClearScreen(w)
		canvas.Clear()
		g.Draw(object.DrawContext{Canvas: canvas, Writer: w})
		canvas.Render(w)
		drawUI(g, w, canvas)

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}
}

// courtFor maps terminal dimensions to the logical court: one column per
// horizontal unit, two vertical units per row (half-block sub-pixels).
func courtFor(termWidth, termHeight int) object.Court {
	return object.Court{
		Width:  float64(termWidth),
		Height: float64(termHeight * 2),
	}
}

// applyControls feeds human intent into the players and handles the
// momentary keys. Momentary actions fire on the press edge only, so a
// held key does not retrigger them every frame.
func applyControls(g *Game, inp, prev input.Input) {
	if g.Left.Control == object.ControlHuman {
		g.Left.SetIntent(inp.LeftUp, inp.LeftDown)
	}
	if g.Right.Control == object.ControlHuman {
		g.Right.SetIntent(inp.RightUp, inp.RightDown)
	}

	if inp.Pause && !prev.Pause {
		g.TogglePause()
	}
	if inp.ToggleAI && !prev.ToggleAI {
		g.Right.SetAIControl(g.Right.Control != object.ControlAI)
	}
	if g.State == StateOver && ((inp.Space && !prev.Space) || (inp.Enter && !prev.Enter)) {
		g.Restart()
	}
}
