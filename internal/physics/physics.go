// Package physics provides the geometry and collision primitives used by the
// simulation: rigid transforms of point sets, centroids and square
// bounding-box tests.
package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Centroid returns the average of the given points.
// The slice must not be empty.
func Centroid(points []r2.Vec) r2.Vec {
	var sum r2.Vec
	for _, p := range points {
		sum = r2.Add(sum, p)
	}
	return r2.Scale(1/float64(len(points)), sum)
}

// RotateAbout rotates every point in place by alpha radians around center.
// Positive alpha turns +X towards +Y, which is clockwise on a y-down screen.
func RotateAbout(points []r2.Vec, alpha float64, center r2.Vec) {
	for i, p := range points {
		points[i] = r2.Rotate(p, alpha, center)
	}
}

// Translate shifts every point in place by d.
func Translate(points []r2.Vec, d r2.Vec) {
	for i, p := range points {
		points[i] = r2.Add(p, d)
	}
}

// WithinBox reports whether p lies within reach of center on both axes.
// Bounds are inclusive.
func WithinBox(p, center r2.Vec, reach float64) bool {
	return center.X-reach <= p.X && p.X <= center.X+reach &&
		center.Y-reach <= p.Y && p.Y <= center.Y+reach
}
