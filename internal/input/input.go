// Package input reads terminal key bytes and turns them into per-frame
// pointer-style movement state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals repeat held keys slower than the frame rate, so a short
// hold window smooths movement between repeats.
const keyHoldDuration = 40 * time.Millisecond

// Input represents the current frame's input state. The directional keys
// steer the pointer target the ship glides toward.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Start  bool // space or enter
	Escape bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	left   time.Time
	right  time.Time
	up     time.Time
	down   time.Time
	start  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state so held
// keys register across frames.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits when the reader fails (connection closed).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
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

// ReadInput drains all available bytes from the stream without blocking,
// handles CSI escape sequences for arrow keys, and reports which keys are
// currently held.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader gone (connection closed); treat as quit.
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

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	return Input{
		Quit:   held(s.state.quit) || s.closed,
		Left:   held(s.state.left),
		Right:  held(s.state.right),
		Up:     held(s.state.up),
		Down:   held(s.state.down),
		Start:  held(s.state.start),
		Escape: held(s.state.escape),
	}
}

// ResetKeyState clears held-key timestamps, e.g. after a screen change so
// the keypress that started the game does not also steer the ship.
func ResetKeyState(s *Stream) {
	s.state = keyState{}
}

func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case ' ', '\n', '\r':
		state.start = now
	case '\x1b':
		state.escape = now
	}
}
