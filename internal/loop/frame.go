package loop

import "gonum.org/v1/gonum/spatial/r2"

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	Hull        [3]r2.Vec
	Projectiles []Rect
	Asteroids   []Polygon
	Score       int
	State       GameState
}

// Rect is a projectile outline anchored at its top-left corner.
type Rect struct {
	Position r2.Vec
	Width    float64
	Height   float64
}

// Polygon is a regular polygon outline.
type Polygon struct {
	Center   r2.Vec
	Sides    int
	Radius   float64
	Rotation float64 // Degrees
}

// snapshot copies the drawable state. Projectiles that hit something this
// frame are left out; they are removed at the start of the next frame.
func (g *Game) snapshot() Frame {
	f := Frame{
		Hull:        g.Player.Hull,
		Projectiles: make([]Rect, 0, len(g.Projectiles)),
		Asteroids:   make([]Polygon, 0, len(g.Asteroids)),
		Score:       g.Score,
		State:       g.State,
	}
	for _, p := range g.Projectiles {
		if p.Collision {
			continue
		}
		f.Projectiles = append(f.Projectiles, Rect{Position: p.Position, Width: p.Width, Height: p.Height})
	}
	for _, a := range g.Asteroids {
		f.Asteroids = append(f.Asteroids, Polygon{Center: a.Position, Sides: a.Sides, Radius: a.Radius, Rotation: a.Rotation})
	}
	return f
}
