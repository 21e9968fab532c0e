package draw

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestDrawLine(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.DrawLine(Point{X: 0, Y: 0}, Point{X: 90, Y: 0})

	for x := 0; x < 10; x++ {
		if !c.pixelSet(x, 0) {
			t.Errorf("pixel (%d, 0) not set", x)
		}
		if c.pixelSet(x, 1) {
			t.Errorf("pixel (%d, 1) unexpectedly set", x)
		}
	}
}

func TestDrawLineClipsOutOfRange(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.DrawLine(Point{X: -50, Y: 50}, Point{X: 150, Y: 50})

	for x := 0; x < 10; x++ {
		if !c.pixelSet(x, 5) {
			t.Errorf("pixel (%d, 5) not set", x)
		}
	}
	if c.pixelSet(-1, 5) || c.pixelSet(10, 5) {
		t.Error("out of range pixels should read as unset")
	}
}

func TestDrawOutlineClosesShape(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	pts := c.BorrowPoints(4)
	RectPoints(pts, 2, 2, 4, 4)
	c.DrawOutline(pts)

	for _, p := range [][2]int{{2, 2}, {6, 2}, {6, 6}, {2, 6}, {2, 4}, {4, 6}} {
		if !c.pixelSet(p[0], p[1]) {
			t.Errorf("pixel %v not set", p)
		}
	}
	if c.pixelSet(4, 4) {
		t.Error("outline should not fill the interior")
	}
}

func TestRender(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.setPixel(0, 0) // row 1 top
	c.setPixel(1, 1) // row 1 bottom
	c.setPixel(2, 2) // row 2 top
	c.setPixel(2, 3) // row 2 bottom

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}

	want := "\033[1;1H▀" + "\033[1;2H▄" + "\033[2;3H█"
	if buf.String() != want {
		t.Errorf("Render = %q, want %q", buf.String(), want)
	}

	c.Clear()
	buf.Reset()
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("cleared canvas rendered %q", buf.String())
	}
}

func TestResize(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.setPixel(3, 3)

	c.Resize(10, 5, 200, 50)
	if !c.pixelSet(3, 3) {
		t.Error("same terminal size should keep the pixel buffer")
	}

	c.Resize(20, 8, 200, 50)
	if c.TerminalWidth() != 20 || c.TerminalHeight() != 8 {
		t.Errorf("terminal size = %dx%d, want 20x8", c.TerminalWidth(), c.TerminalHeight())
	}
	if c.pixelSet(3, 3) {
		t.Error("new terminal size should start with an empty buffer")
	}

	c.DrawLine(Point{X: 190, Y: 0}, Point{X: 190, Y: 50})
	if !c.pixelSet(19, 15) {
		t.Error("line at the far edge should land on the last column")
	}
}

func TestRegularPolygonPoints(t *testing.T) {
	pts := make([]Point, 4)
	RegularPolygonPoints(pts, 10, 20, 5, 90)

	want := []Point{{10, 25}, {5, 20}, {10, 15}, {15, 20}}
	for i := range want {
		if math.Abs(pts[i].X-want[i].X) > 1e-9 || math.Abs(pts[i].Y-want[i].Y) > 1e-9 {
			t.Errorf("vertex %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestChunkWriterFlush(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)

	cw.WriteAt(3, 2, "42")
	long := strings.Repeat("x", 3*maxChunkSize+10)
	cw.WriteString(long)
	if buf.Len() != 0 {
		t.Fatal("nothing should be written before Flush")
	}

	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if want := "\033[2;3H42" + long; buf.String() != want {
		t.Errorf("flushed %d bytes, want %d", buf.Len(), len(want))
	}

	buf.Reset()
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("second flush wrote %q", buf.String())
	}
}
