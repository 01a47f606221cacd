package loop

import (
	"fmt"
	"io"
	"math"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/object"
)

// drawUI draws the score line and any state overlay on top of the
// rendered court.
func drawUI(g *Game, w io.Writer, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	drawScores(g, w, centerX)

	switch g.State {
	case StateCountdown:
		drawCountdown(g, w, centerX, centerY)
	case StatePaused:
		drawCentered(w, centerX, centerY, "P A U S E D")
		drawCentered(w, centerX, centerY+2, "Press P to resume")
	case StateOver:
		drawGameOver(g, w, centerX, centerY)
	}
}

// drawScores draws "name score : score name" across the top row.
func drawScores(g *Game, w io.Writer, centerX int) {
	left := fmt.Sprintf("%s %d", g.Left.Name, g.Left.Score)
	right := fmt.Sprintf("%d %s", g.Right.Score, rightLabel(g.Right))

	draw.WriteAt(w, centerX-len(left)-2, 1, left)
	draw.WriteAt(w, centerX-1, 1, " : ")
	draw.WriteAt(w, centerX+3, 1, right)
}

// rightLabel marks an AI-driven right player so the toggle is visible.
func rightLabel(p *object.Player) string {
	if p.Control == object.ControlAI {
		return p.Name + " (cpu)"
	}
	return p.Name
}

// drawCountdown shows the remaining gate time before the next serve.
func drawCountdown(g *Game, w io.Writer, centerX, centerY int) {
	n := int(math.Ceil(g.Countdown))
	if n < 1 {
		n = 1
	}
	drawCentered(w, centerX, centerY, fmt.Sprintf("%d", n))

	controls := "W/S left paddle - Arrows right paddle - A toggle cpu - P pause - Q quit"
	drawCentered(w, centerX, centerY+3, controls)
}

// drawGameOver shows the winner and the restart prompt.
func drawGameOver(g *Game, w io.Writer, centerX, centerY int) {
	drawCentered(w, centerX, centerY-2, "G A M E  O V E R")
	if win := g.Winner(); win != nil {
		drawCentered(w, centerX, centerY, fmt.Sprintf("%s wins %d : %d", win.Name, g.Left.Score, g.Right.Score))
	}
	drawCentered(w, centerX, centerY+2, "Press SPACE to play again, Q to quit")
}

// drawCentered writes s horizontally centered on the given row.
func drawCentered(w io.Writer, centerX, row int, s string) {
	draw.WriteAt(w, centerX-len(s)/2, row, s)
}
