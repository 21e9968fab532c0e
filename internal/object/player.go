package object

import (
	"fmt"
	"math"

	"github.com/tomz197/polyroids/internal/physics"
	"gonum.org/v1/gonum/spatial/r2"
)

// PlayerParams configures a new ship.
type PlayerParams struct {
	RotationStep float64 // Degrees per frame
	Velocity     r2.Vec  // Thrust per frame on each axis
	Displacement float64 // Half the hull's base width
	Facing       float64 // Initial facing in degrees (90 = up)
}

// Player is the triangular ship.
type Player struct {
	Hull         [3]r2.Vec // Hull[0] is the nose
	RotationStep float64   // Degrees per rotate command
	Velocity     r2.Vec    // Thrust magnitude per axis
	Facing       float64   // Cumulative facing angle in degrees
	Collision    bool
}

// NewPlayer creates a ship with its nose at nose, pointing up.
func NewPlayer(nose r2.Vec, params PlayerParams) *Player {
	d := params.Displacement
	return &Player{
		Hull: [3]r2.Vec{
			nose,
			{X: nose.X + d, Y: nose.Y + 2*d},
			{X: nose.X - d, Y: nose.Y + 2*d},
		},
		RotationStep: params.RotationStep,
		Velocity:     params.Velocity,
		Facing:       params.Facing,
	}
}

// Centroid returns the ship's logical position.
func (p *Player) Centroid() r2.Vec {
	return physics.Centroid(p.Hull[:])
}

// Nose returns the hull's first vertex, where projectiles spawn.
func (p *Player) Nose() r2.Vec {
	return p.Hull[0]
}

// Move applies a single movement command.
func (p *Player) Move(cmd Command) {
	switch cmd {
	case RotateLeft, RotateRight:
		p.Rotate(cmd)
	case Thrust:
		p.Thrust()
	default:
		panic(fmt.Sprintf("object: invalid command %d", int(cmd)))
	}
}

// Rotate turns the hull rigidly about its centroid by one rotation step.
// Clockwise (RotateRight) decreases Facing, counter-clockwise increases it.
func (p *Player) Rotate(cmd Command) {
	step := physics.Radians(p.RotationStep)
	center := p.Centroid()

	switch cmd {
	case RotateRight:
		p.Facing -= p.RotationStep
		physics.RotateAbout(p.Hull[:], step, center)
	case RotateLeft:
		p.Facing += p.RotationStep
		physics.RotateAbout(p.Hull[:], -step, center)
	default:
		panic(fmt.Sprintf("object: invalid rotation %s", cmd))
	}
}

// Thrust moves the hull along its facing. The x and y components are scaled
// independently by Velocity.X and Velocity.Y.
func (p *Player) Thrust() {
	cos, sin := p.direction()
	physics.Translate(p.Hull[:], r2.Vec{
		X: p.Velocity.X * cos,
		Y: p.Velocity.Y * sin,
	})
}

// Fire returns a projectile leaving the nose along the current facing.
func (p *Player) Fire(velocity r2.Vec, width, height float64) Projectile {
	cos, sin := p.direction()
	return Projectile{
		Position: p.Nose(),
		Velocity: velocity,
		Width:    width,
		Height:   height,
		Cos:      cos,
		Sin:      sin,
	}
}

// Wrap moves the hull to the opposite side of the screen after crossing e.
func (p *Player) Wrap(e Edge, s Screen) {
	physics.Translate(p.Hull[:], e.Offset(s))
}

// WrapAround runs the four edge checks against the nose, re-reading the
// position after each wrap.
func (p *Player) WrapAround(s Screen) {
	for _, e := range Edges {
		if s.Crossed(p.Nose(), e) {
			p.Wrap(e, s)
		}
	}
}

// direction returns cos and sin of the facing, negated for the y-down screen.
func (p *Player) direction() (cos, sin float64) {
	rad := physics.Radians(-p.Facing)
	return math.Cos(rad), math.Sin(rad)
}
