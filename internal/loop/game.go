package loop

import (
	"math/rand"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
	"gonum.org/v1/gonum/spatial/r2"
)

// Game owns every entity of a single session and advances them frame by frame.
type Game struct {
	State       GameState
	Player      *object.Player
	Projectiles []object.Projectile
	Asteroids   []object.Asteroid
	Score       int
	Frames      int // Frames simulated so far

	cfg            *config.Config
	rng            *rand.Rand
	gate           *object.FireGate
	asteroidParams object.AsteroidParams
	grid           *physics.SpatialGrid // Projectile broad phase, rebuilt every frame
	fragments      []object.Asteroid    // Reusable buffer for the removal step
	last           Frame                // Last emitted frame
}

// NewGame creates a game with the ship in the middle of screen.
func NewGame(cfg *config.Config, screen object.Screen, rng *rand.Rand) *Game {
	player := object.NewPlayer(screen.Center(), object.PlayerParams{
		RotationStep: cfg.Player.RotationStep,
		Velocity:     r2.Vec{X: cfg.Player.Velocity.X, Y: cfg.Player.Velocity.Y},
		Displacement: cfg.Player.Displacement,
		Facing:       cfg.Player.StartFacing,
	})

	g := &Game{
		State:  GameStateRunning,
		Player: player,
		cfg:    cfg,
		rng:    rng,
		gate:   object.NewFireGate(cfg.Projectile.FireInterval),
		asteroidParams: object.AsteroidParams{
			Radius:           cfg.Asteroid.Radius,
			MaxSpeed:         cfg.Asteroid.MaxSpeed,
			FragmentOffset:   cfg.Asteroid.FragmentOffset,
			FragmentMinSides: cfg.Asteroid.FragmentMinSides,
		},
		grid: physics.NewSpatialGrid(screen.Width, screen.Height, cfg.Collision.ProjectileReach),
	}
	g.last = g.snapshot()
	return g
}

// Step simulates one frame and returns what to draw.
// Once the game has terminated, Step does nothing and returns the final frame.
func (g *Game) Step(inp object.Input, env Environment) Frame {
	if g.State == GameStateTerminated {
		return g.last
	}

	screen := env.Viewport()
	now := env.Now()

	g.applyInput(inp, now)
	g.Player.WrapAround(screen)
	g.updateProjectiles(screen)
	g.spawnAsteroids(screen)
	g.updateAsteroids(screen)

	g.Frames++
	if g.Player.Collision {
		g.State = GameStateTerminated
	}
	g.last = g.snapshot()
	return g.last
}

// applyInput fires (subject to the fire-rate gate), then rotates and thrusts.
func (g *Game) applyInput(inp object.Input, now float64) {
	if inp.Fire && g.gate.TryFire(now) {
		pc := g.cfg.Projectile
		shot := g.Player.Fire(r2.Vec{X: pc.Velocity.X, Y: pc.Velocity.Y}, pc.Width, pc.Height)
		g.Projectiles = append(g.Projectiles, shot)
	}
	if inp.Right {
		g.Player.Move(object.RotateRight)
	}
	if inp.Left {
		g.Player.Move(object.RotateLeft)
	}
	if inp.Thrust {
		g.Player.Move(object.Thrust)
	}
}

// updateProjectiles advances every shot and drops those that left the screen
// or hit something last frame.
func (g *Game) updateProjectiles(screen object.Screen) {
	kept := g.Projectiles[:0]
	for _, p := range g.Projectiles {
		p.Advance()
		if p.Expired(screen) || p.Collision {
			continue
		}
		kept = append(kept, p)
	}
	g.Projectiles = kept
}

// spawnAsteroids tops the population up to the configured minimum.
func (g *Game) spawnAsteroids(screen object.Screen) {
	for len(g.Asteroids) < g.cfg.Asteroid.MinPopulation {
		a := object.SpawnAsteroid(g.rng, screen, g.cfg.Asteroid.MaxSides, g.asteroidParams)
		g.Asteroids = append(g.Asteroids, a)
	}
}

// updateAsteroids moves and wraps every asteroid, runs collision checks and
// scores hits, then removes the destroyed ones.
func (g *Game) updateAsteroids(screen object.Screen) {
	g.indexProjectiles(screen)

	for i := range g.Asteroids {
		a := &g.Asteroids[i]
		a.Advance()
		a.WrapAround(screen)
		g.checkCollisions(a)
		if a.Collision {
			g.Score++
		}
	}

	g.removeDestroyed(screen)
}

// removeDestroyed replaces destroyed asteroids with their fragments.
// Fragments are appended after the surviving asteroids so they are only
// collidable from the next frame.
func (g *Game) removeDestroyed(screen object.Screen) {
	fragments := g.fragments[:0]
	kept := g.Asteroids[:0]
	for _, a := range g.Asteroids {
		if a.Collision {
			fragments = a.Fragment(g.rng, screen, g.asteroidParams, fragments)
			continue
		}
		kept = append(kept, a)
	}
	g.Asteroids = append(kept, fragments...)
	g.fragments = fragments[:0]
}
