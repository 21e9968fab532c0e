package loop

import (
	"strconv"

	"github.com/tomz197/polyroids/internal/draw"
)

// drawFrame clears the screen, draws every shape and the score, then flushes.
func drawFrame(out *draw.ChunkWriter, canvas *draw.Canvas, frame Frame) error {
	canvas.Clear()
	drawShapes(canvas, frame)

	draw.ClearScreen(out)
	if err := canvas.Render(out); err != nil {
		return err
	}
	out.WriteAt(2, 1, strconv.Itoa(frame.Score))
	return out.Flush()
}

// drawShapes draws the hull, projectiles and asteroids onto the canvas.
func drawShapes(canvas *draw.Canvas, frame Frame) {
	hull := canvas.BorrowPoints(len(frame.Hull))
	for i, v := range frame.Hull {
		hull[i] = draw.Point{X: v.X, Y: v.Y}
	}
	canvas.DrawOutline(hull)

	for _, r := range frame.Projectiles {
		pts := canvas.BorrowPoints(4)
		draw.RectPoints(pts, r.Position.X, r.Position.Y, r.Width, r.Height)
		canvas.DrawOutline(pts)
	}

	for _, a := range frame.Asteroids {
		pts := canvas.BorrowPoints(a.Sides)
		draw.RegularPolygonPoints(pts, a.Center.X, a.Center.Y, a.Radius, a.Rotation)
		canvas.DrawOutline(pts)
	}
}
