package loop

import (
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
)

// indexProjectiles rebuilds the projectile grid for this frame.
// The cell size equals the projectile reach, so the 3x3 neighborhood of an
// asteroid holds every projectile that can be inside its box.
func (g *Game) indexProjectiles(screen object.Screen) {
	g.grid.Reset(screen.Width, screen.Height)
	for i := range g.Projectiles {
		g.grid.Insert(g.Projectiles[i].Position, i)
	}
}

// checkCollisions tests a against the live projectiles and the ship.
// At most one projectile is consumed per asteroid: the lowest-indexed one in
// range that has not already hit something this frame. The ship collides with
// an asteroid when its centroid is inside the larger player box.
func (g *Game) checkCollisions(a *object.Asteroid) {
	if !a.Collision {
		reach := g.cfg.Collision.ProjectileReach
		hit := -1
		g.grid.QueryAround(a.Position, func(i int) bool {
			p := &g.Projectiles[i]
			if p.Collision || (hit >= 0 && i > hit) {
				return false
			}
			if physics.WithinBox(p.Position, a.Position, reach) {
				hit = i
			}
			return false
		})
		if hit >= 0 {
			a.Collision = true
			g.Projectiles[hit].Collision = true
		}
	}

	if physics.WithinBox(g.Player.Centroid(), a.Position, g.cfg.Collision.PlayerReach) {
		a.Collision = true
		g.Player.Collision = true
	}
}
