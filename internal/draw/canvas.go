package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Color is an ANSI 256-color palette index. Zero means the pixel is unset;
// palette entry 0 (black) is never used by the game so no pixel state is
// lost.
type Color uint8

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters, one color per sub-pixel. Logical coordinates are scaled to
// the actual terminal size and the render area is letterboxed to preserve
// the logical aspect ratio.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int     // termHeight * 2
	pixels         []Color // [y*termWidth + x], 0 = unset

	logicalWidth  float64
	logicalHeight float64 // in sub-pixels
	scaleX        float64
	scaleY        float64

	// Terminal offsets (columns/rows to skip) for centering.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
}

// NewCanvas creates a canvas that scales from logical coordinates to the
// given terminal dimensions.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions, reallocating the
// pixel buffer when the size changed.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int, color Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// SetPoint sets one pixel at logical coordinates.
func (c *Canvas) SetPoint(x, y float64, color Color) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)), color)
}

// FillCircle fills a circle at logical center (cx, cy) with logical
// radius r. Radius scales with the canvas's horizontal scale so depth cues
// survive terminal resizing.
func (c *Canvas) FillCircle(cx, cy, r float64, color Color) {
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY
	prx := r * c.scaleX
	pry := r * c.scaleY
	if prx < 0.5 {
		c.setPixel(int(math.Round(pcx)), int(math.Round(pcy)), color)
		return
	}

	yStart := int(math.Floor(pcy - pry))
	yEnd := int(math.Ceil(pcy + pry))
	for y := yStart; y <= yEnd; y++ {
		dy := (float64(y) - pcy) / pry
		if dy*dy > 1 {
			continue
		}
		span := prx * math.Sqrt(1-dy*dy)
		xStart := int(math.Ceil(pcx - span))
		xEnd := int(math.Floor(pcx + span))
		for x := xStart; x <= xEnd; x++ {
			c.setPixel(x, y, color)
		}
	}
}

// DrawLine draws a line between two logical points using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, color Color) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1, color)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon outline through the logical points.
func (c *Canvas) DrawPolygon(points []Point, color Color) {
	n := len(points)
	if n < 3 {
		return
	}
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], color)
	}
}

// maxChunkSize is the maximum bytes to write at once for smooth SSH
// transmission; 1400 stays under a typical MTU.
const maxChunkSize = 1400

// Render outputs the canvas using colored half-block characters and
// resets the style afterwards.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 16)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if top == 0 && bottom == 0 {
				continue
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			switch {
			case top != 0 && bottom != 0:
				fmt.Fprintf(&c.renderBuf, "\033[38;5;%d;48;5;%dm%c", top, bottom, BlockUpperHalf)
			case top != 0:
				fmt.Fprintf(&c.renderBuf, "\033[49m\033[38;5;%dm%c", top, BlockUpperHalf)
			default:
				fmt.Fprintf(&c.renderBuf, "\033[49m\033[38;5;%dm%c", bottom, BlockLowerHalf)
			}
		}
	}
	c.renderBuf.WriteString("\033[0m")

	// Write in chunks for optimal network flow.
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

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
