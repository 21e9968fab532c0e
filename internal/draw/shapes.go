package draw

import "math"

// Point represents a 2D coordinate in logical units.
type Point struct {
	X, Y float64
}

// Block characters used by the canvas.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// RectPoints fills dst with the corners of an axis-aligned rectangle whose
// top-left corner is (x, y). dst must have length 4.
func RectPoints(dst []Point, x, y, width, height float64) {
	dst[0] = Point{X: x, Y: y}
	dst[1] = Point{X: x + width, Y: y}
	dst[2] = Point{X: x + width, Y: y + height}
	dst[3] = Point{X: x, Y: y + height}
}

// RegularPolygonPoints fills dst with the vertices of a regular polygon with
// len(dst) sides around (cx, cy). rotation is in degrees; the first vertex
// sits at that angle from +X.
func RegularPolygonPoints(dst []Point, cx, cy, radius, rotation float64) {
	n := len(dst)
	start := rotation * math.Pi / 180
	for i := range dst {
		angle := start + float64(i)*2*math.Pi/float64(n)
		dst[i] = Point{
			X: cx + math.Cos(angle)*radius,
			Y: cy + math.Sin(angle)*radius,
		}
	}
}
