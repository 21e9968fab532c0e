package object

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// MinSides is the smallest polygon an asteroid can be drawn as.
const MinSides = 3

// AsteroidParams configures spawning and fragmentation.
type AsteroidParams struct {
	Radius           float64 // Display radius
	MaxSpeed         float64 // Per-axis speed bound
	FragmentOffset   float64 // Children spawn this far from the parent on both axes
	FragmentMinSides int     // Parents with fewer sides vanish without children
}

// Asteroid is a drifting regular polygon.
type Asteroid struct {
	Position  r2.Vec
	Rotation  float64 // Degrees, rendering only
	Velocity  r2.Vec
	Sides     int
	Radius    float64
	Collision bool
}

// SpawnAsteroid places a new asteroid at a random point on a random edge.
func SpawnAsteroid(rng *rand.Rand, s Screen, sides int, params AsteroidParams) Asteroid {
	if sides < MinSides {
		panic(fmt.Sprintf("object: asteroid needs at least %d sides, got %d", MinSides, sides))
	}

	edge := Edges[rng.Intn(len(Edges))]
	var pos r2.Vec
	switch edge {
	case EdgeTop:
		pos = r2.Vec{X: rng.Float64() * s.Width, Y: 0}
	case EdgeRight:
		pos = r2.Vec{X: s.Width, Y: rng.Float64() * s.Height}
	case EdgeBottom:
		pos = r2.Vec{X: rng.Float64() * s.Width, Y: s.Height}
	case EdgeLeft:
		pos = r2.Vec{X: 0, Y: rng.Float64() * s.Height}
	}

	return Asteroid{
		Position: pos,
		Rotation: rng.Float64() * 360,
		Velocity: r2.Vec{
			X: (rng.Float64()*2 - 1) * params.MaxSpeed,
			Y: (rng.Float64()*2 - 1) * params.MaxSpeed,
		},
		Sides:  sides,
		Radius: params.Radius,
	}
}

// Advance moves the asteroid one frame.
func (a *Asteroid) Advance() {
	a.Position = r2.Add(a.Position, a.Velocity)
}

// Wrap moves the asteroid to the opposite side of the screen after crossing e.
func (a *Asteroid) Wrap(e Edge, s Screen) {
	a.Position = r2.Add(a.Position, e.Offset(s))
}

// WrapAround runs the four edge checks, re-reading the position after each wrap.
func (a *Asteroid) WrapAround(s Screen) {
	for _, e := range Edges {
		if s.Crossed(a.Position, e) {
			a.Wrap(e, s)
		}
	}
}

// Fragment appends the children of a destroyed asteroid to survivors.
// A destroyed asteroid with at least FragmentMinSides sides splits into two
// asteroids with one side fewer: one behind it moving the opposite way and
// one ahead of it keeping its velocity. Anything else produces no children.
func (a Asteroid) Fragment(rng *rand.Rand, s Screen, params AsteroidParams, survivors []Asteroid) []Asteroid {
	if !a.Collision || a.Sides < params.FragmentMinSides {
		return survivors
	}
	sides := a.Sides - 1
	if sides < MinSides {
		return survivors
	}

	offset := r2.Vec{X: params.FragmentOffset, Y: params.FragmentOffset}

	behind := SpawnAsteroid(rng, s, sides, params)
	behind.Position = r2.Sub(a.Position, offset)
	behind.Velocity = r2.Scale(-1, a.Velocity)

	ahead := SpawnAsteroid(rng, s, sides, params)
	ahead.Position = r2.Add(a.Position, offset)
	ahead.Velocity = a.Velocity

	return append(survivors, behind, ahead)
}
