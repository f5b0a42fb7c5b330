package input

import "testing"

func newTestStream(bytes ...byte) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	for _, b := range bytes {
		s.ch <- b
	}
	return s
}

func TestReadInputParsesArrowKeys(t *testing.T) {
	s := newTestStream('\x1b', '[', 'A', '\x1b', '[', 'D')

	inp := ReadInput(s)

	if !inp.Up || !inp.Left {
		t.Fatalf("input = %+v, want up and left held", inp)
	}
	if inp.Right || inp.Down {
		t.Fatalf("input = %+v, unexpected directions held", inp)
	}
}

func TestReadInputParsesLetterKeys(t *testing.T) {
	s := newTestStream('w', 'd')

	inp := ReadInput(s)

	if !inp.Up || !inp.Right {
		t.Fatalf("input = %+v, want up and right held", inp)
	}
}

func TestReadInputStartKeys(t *testing.T) {
	for _, b := range []byte{' ', '\n', '\r'} {
		inp := ReadInput(newTestStream(b))
		if !inp.Start {
			t.Fatalf("byte %q did not register as start", b)
		}
	}
}

func TestReadInputQuit(t *testing.T) {
	if inp := ReadInput(newTestStream('q')); !inp.Quit {
		t.Fatal("q did not register as quit")
	}
}

func TestReadInputClosedStreamQuits(t *testing.T) {
	s := newTestStream()
	close(s.ch)

	if inp := ReadInput(s); !inp.Quit {
		t.Fatal("closed stream must report quit")
	}
}

func TestResetKeyState(t *testing.T) {
	s := newTestStream(' ')
	if inp := ReadInput(s); !inp.Start {
		t.Fatal("start not held before reset")
	}

	ResetKeyState(s)

	if inp := ReadInput(s); inp.Start {
		t.Fatal("start still held after reset")
	}
}
