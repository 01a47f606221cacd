// Package input reads raw terminal bytes and turns them into per-frame
// key state for the two paddles and the game controls.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals only deliver repeats, so a key counts as held while
// repeats keep arriving within this window.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit      bool // q
	LeftUp    bool // w
	LeftDown  bool // s
	RightUp   bool // up arrow
	RightDown bool // down arrow
	Space     bool
	Enter     bool
	Pause     bool // p
	ToggleAI  bool // a
	Escape    bool

	// Closed reports that the underlying reader ended (e.g. the SSH
	// session dropped). The loop treats it like a quit.
	Closed bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit      time.Time
	leftUp    time.Time
	leftDown  time.Time
	rightUp   time.Time
	rightDown time.Time
	space     time.Time
	enter     time.Time
	pause     time.Time
	toggleAI  time.Time
	escape    time.Time
}

// Stream delivers input bytes via a channel and tracks key state so
// simultaneous key combinations can be detected across frames.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to
// the stream. The goroutine exits when the reader returns an error.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Reset clears all key state, e.g. when switching screens, so held keys
// do not leak into the next state.
func Reset(s *Stream) {
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking),
// parses escape sequences for arrow keys, and reports which keys are
// currently held.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	// Drain all available bytes
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code> (arrow keys)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.rightUp = now
				i += 2
				continue
			case 'B': // Down arrow
				s.state.rightDown = now
				i += 2
				continue
			case 'C', 'D': // Left/right arrows unused
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	return Input{
		Quit:      now.Sub(s.state.quit) < keyHoldDuration,
		LeftUp:    now.Sub(s.state.leftUp) < keyHoldDuration,
		LeftDown:  now.Sub(s.state.leftDown) < keyHoldDuration,
		RightUp:   now.Sub(s.state.rightUp) < keyHoldDuration,
		RightDown: now.Sub(s.state.rightDown) < keyHoldDuration,
		Space:     now.Sub(s.state.space) < keyHoldDuration,
		Enter:     now.Sub(s.state.enter) < keyHoldDuration,
		Pause:     now.Sub(s.state.pause) < keyHoldDuration,
		ToggleAI:  now.Sub(s.state.toggleAI) < keyHoldDuration,
		Escape:    now.Sub(s.state.escape) < keyHoldDuration,
		Closed:    s.closed,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'w', 'W':
		state.leftUp = now
	case 's', 'S':
		state.leftDown = now
	case 'k', 'K': // vi-style alternative for the right paddle
		state.rightUp = now
	case 'j', 'J':
		state.rightDown = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case 'p', 'P':
		state.pause = now
	case 'a', 'A':
		state.toggleAI = now
	case '\x1b':
		state.escape = now
	}
}
