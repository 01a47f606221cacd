package input

import (
	"testing"
	"time"
)

// feed returns a stream preloaded with the given raw bytes, as if they
// had just arrived from the terminal.
func feed(t *testing.T, bytes ...byte) *Stream {
	t.Helper()
	s := &Stream{ch: make(chan byte, len(bytes)+1)}
	for _, b := range bytes {
		s.ch <- b
	}
	return s
}

func TestReadInput_MovementKeys(t *testing.T) {
	inp := ReadInput(feed(t, 'w', 'j'))

	if !inp.LeftUp {
		t.Error("expected w to raise the left paddle")
	}
	if !inp.RightDown {
		t.Error("expected j to lower the right paddle")
	}
	if inp.LeftDown || inp.RightUp || inp.Quit || inp.Pause {
		t.Errorf("unexpected extra keys held: %+v", inp)
	}
}

func TestReadInput_UppercaseAliases(t *testing.T) {
	inp := ReadInput(feed(t, 'W', 'S', 'K', 'J'))

	if !inp.LeftUp || !inp.LeftDown || !inp.RightUp || !inp.RightDown {
		t.Errorf("expected uppercase aliases to register, got %+v", inp)
	}
}

func TestReadInput_ArrowSequences(t *testing.T) {
	inp := ReadInput(feed(t, '\x1b', '[', 'A', '\x1b', '[', 'B'))

	if !inp.RightUp || !inp.RightDown {
		t.Errorf("expected both arrows registered, got %+v", inp)
	}
	if inp.Escape {
		t.Error("a consumed CSI sequence must not count as escape")
	}
}

func TestReadInput_LoneEscape(t *testing.T) {
	inp := ReadInput(feed(t, '\x1b'))

	if !inp.Escape {
		t.Error("expected a bare ESC byte to register as escape")
	}
}

func TestReadInput_ControlKeys(t *testing.T) {
	inp := ReadInput(feed(t, ' ', '\r', 'p', 'a', 'q'))

	if !inp.Space || !inp.Enter || !inp.Pause || !inp.ToggleAI || !inp.Quit {
		t.Errorf("expected all control keys held, got %+v", inp)
	}
}

func TestReadInput_HoldExpires(t *testing.T) {
	s := feed(t, 'w')

	if !ReadInput(s).LeftUp {
		t.Fatal("expected key held right after the press")
	}

	time.Sleep(keyHoldDuration + 10*time.Millisecond)

	if ReadInput(s).LeftUp {
		t.Error("expected hold to expire without repeats")
	}
}

func TestReadInput_ClosedStream(t *testing.T) {
	s := feed(t)
	close(s.ch)

	if !ReadInput(s).Closed {
		t.Error("expected closed reader reported")
	}
}

func TestReset_ClearsHeldKeys(t *testing.T) {
	s := feed(t, 'w', 'p')
	ReadInput(s)

	Reset(s)

	inp := ReadInput(s)
	if inp.LeftUp || inp.Pause {
		t.Errorf("expected no keys held after reset, got %+v", inp)
	}
}
