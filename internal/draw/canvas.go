package draw

import (
	"io"
	"math"
	"strconv"
)

// Canvas is an outline drawing buffer with 2x vertical resolution using
// half-block characters. Game objects draw in logical units which are scaled
// to terminal sub-pixels.
type Canvas struct {
	termWidth      int    // Terminal columns
	termHeight     int    // Terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // subPixelHeight / logicalHeight

	renderBuf  []byte  // Reused by Render
	polygonBuf []Point // Reused by BorrowPoints
}

// NewScaledCanvas creates a canvas that maps a logicalWidth x logicalHeight
// space onto a termWidth x termHeight terminal.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{}
	c.Resize(termWidth, termHeight, logicalWidth, logicalHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions and a new logical size.
// The pixel buffer is only reallocated when the terminal size changed.
func (c *Canvas) Resize(termWidth, termHeight int, logicalWidth, logicalHeight float64) {
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.logicalWidth = logicalWidth
	c.logicalHeight = logicalHeight
	c.scaleX = float64(termWidth) / logicalWidth
	c.scaleY = float64(subPixelHeight) / logicalHeight
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at sub-pixel coordinates. Out of range is ignored.
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// pixelSet reports whether the sub-pixel at (x, y) is set.
func (c *Canvas) pixelSet(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// DrawLine draws a line between two logical points using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
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
		c.setPixel(x1, y1)
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

// DrawOutline draws a closed polygon outline.
func (c *Canvas) DrawOutline(points []Point) {
	if len(points) < 2 {
		return
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// Render writes every non-empty cell to w as a positioned half-block character.
func (c *Canvas) Render(w io.Writer) error {
	buf := c.renderBuf[:0]

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

			buf = append(buf, "\033["...)
			buf = strconv.AppendInt(buf, int64(row+1), 10)
			buf = append(buf, ';')
			buf = strconv.AppendInt(buf, int64(col+1), 10)
			buf = append(buf, 'H')
			buf = append(buf, string(ch)...)
		}
	}

	c.renderBuf = buf
	_, err := w.Write(buf)
	return err
}

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
