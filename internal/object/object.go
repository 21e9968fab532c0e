// Package object holds the game entities: the player ship, its projectiles
// and the asteroids. Entities are plain values owned by the game loop.
package object

import (
	"fmt"

	"github.com/tomz197/polyroids/internal/input"
	"gonum.org/v1/gonum/spatial/r2"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Screen is the current viewport in logical units.
// It is sampled fresh every frame; never cache it across frames.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the middle of the viewport.
func (s Screen) Center() r2.Vec {
	return r2.Vec{X: s.Width / 2, Y: s.Height / 2}
}

// wrapMargin is how close to the top/left edge a point may get before it is
// considered to have left the screen.
const wrapMargin = 1.0

// Edge identifies one of the four viewport edges.
type Edge int

const (
	EdgeTop Edge = iota + 1
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Edges lists the viewport edges in the order wrap checks run.
var Edges = [...]Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// Opposite returns the edge across the screen from e.
func (e Edge) Opposite() Edge {
	switch e {
	case EdgeTop:
		return EdgeBottom
	case EdgeRight:
		return EdgeLeft
	case EdgeBottom:
		return EdgeTop
	case EdgeLeft:
		return EdgeRight
	}
	panic(fmt.Sprintf("object: invalid edge %d", int(e)))
}

// Offset returns the translation that carries a point which crossed e to the
// opposite side of the screen.
func (e Edge) Offset(s Screen) r2.Vec {
	switch e {
	case EdgeTop:
		return r2.Vec{Y: s.Height}
	case EdgeRight:
		return r2.Vec{X: -s.Width}
	case EdgeBottom:
		return r2.Vec{Y: -s.Height}
	case EdgeLeft:
		return r2.Vec{X: s.Width}
	}
	panic(fmt.Sprintf("object: invalid edge %d", int(e)))
}

// Crossed reports whether p lies beyond edge e of the screen.
func (s Screen) Crossed(p r2.Vec, e Edge) bool {
	switch e {
	case EdgeTop:
		return p.Y < wrapMargin
	case EdgeRight:
		return p.X > s.Width
	case EdgeBottom:
		return p.Y > s.Height
	case EdgeLeft:
		return p.X < wrapMargin
	}
	panic(fmt.Sprintf("object: invalid edge %d", int(e)))
}

// Command is a player movement action.
type Command int

const (
	RotateLeft  Command = iota // Counter-clockwise on screen
	RotateRight                // Clockwise on screen
	Thrust
)

func (c Command) String() string {
	switch c {
	case RotateLeft:
		return "rotate-left"
	case RotateRight:
		return "rotate-right"
	case Thrust:
		return "thrust"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}
