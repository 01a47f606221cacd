package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters: each terminal row holds two vertically stacked sub-pixels.
// Game coordinates map 1:1 onto sub-pixels, so the logical court is
// termWidth x termHeight*2.
type Canvas struct {
	termWidth      int    // Terminal columns
	termHeight     int    // Terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]

	renderBuf strings.Builder // Reused between frames to avoid allocations
}

// NewCanvas creates a canvas for the given terminal dimensions.
func NewCanvas(termWidth, termHeight int) *Canvas {
	c := &Canvas{}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize reallocates the pixel buffer for new terminal dimensions.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
}

// Width returns the canvas width in sub-pixels (terminal columns).
func (c *Canvas) Width() int {
	return c.termWidth
}

// Height returns the canvas height in sub-pixels (2x terminal rows).
func (c *Canvas) Height() int {
	return c.subPixelHeight
}

// TerminalWidth returns the terminal columns the canvas renders into.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal rows the canvas renders into.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Set sets a pixel at integer sub-pixel coordinates.
func (c *Canvas) Set(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// SetFloat sets the pixel nearest to the given float coordinates.
func (c *Canvas) SetFloat(x, y float64) {
	c.Set(int(math.Round(x)), int(math.Round(y)))
}

// FillRect fills the axis-aligned rectangle with top-left corner (x, y).
func (c *Canvas) FillRect(x, y, w, h float64) {
	x0 := int(math.Round(x))
	y0 := int(math.Round(y))
	x1 := int(math.Round(x + w))
	y1 := int(math.Round(y + h))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.Set(px, py)
		}
	}
}

// DashedVLine draws a vertical dashed line at column x, alternating
// dashLen sub-pixels on and dashLen off. Used for the center net.
func (c *Canvas) DashedVLine(x, dashLen int) {
	if dashLen < 1 {
		dashLen = 1
	}
	for y := 0; y < c.subPixelHeight; y++ {
		if (y/dashLen)%2 == 0 {
			c.Set(x, y)
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network
// flow. 1400 bytes stays under typical MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using half-block characters.
// Empty cells are skipped, so the screen should be cleared first.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight / 4)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1, col+1, ch)
		}
	}

	// Write in chunks for smoother flow over SSH.
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}
