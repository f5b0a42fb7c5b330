package draw

import (
	"strings"
	"testing"
)

func TestCanvasRenderSkipsEmptyCells(t *testing.T) {
	c := NewCanvas(10, 5, 10, 10)

	var buf strings.Builder
	c.Render(&buf)

	if got := buf.String(); got != "\033[0m" {
		t.Fatalf("empty canvas rendered %q, want only the style reset", got)
	}
}

func TestCanvasRenderUsesHalfBlocks(t *testing.T) {
	c := NewCanvas(10, 5, 10, 10)
	c.SetPoint(2, 0, 51) // top sub-pixel of row 0

	var buf strings.Builder
	c.Render(&buf)

	out := buf.String()
	if !strings.ContainsRune(out, BlockUpperHalf) {
		t.Fatalf("render output %q missing upper half block", out)
	}
	if !strings.Contains(out, "38;5;51") {
		t.Fatalf("render output %q missing foreground color sequence", out)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(10, 5, 10, 10)
	c.FillCircle(5, 5, 2, 201)
	c.Clear()

	var buf strings.Builder
	c.Render(&buf)
	if got := buf.String(); got != "\033[0m" {
		t.Fatalf("cleared canvas still renders content: %q", got)
	}
}

func TestFillCircleStaysInBounds(t *testing.T) {
	c := NewCanvas(4, 2, 4, 4)
	// Center far outside; must not panic or write out of range.
	c.FillCircle(100, 100, 5, 46)
	c.FillCircle(-100, -100, 5, 46)
}
