package loop

import (
	"fmt"

	"github.com/tomz197/polyroids/internal/object"
)

// GameState is the phase of a game. Terminated is final.
type GameState int

const (
	GameStateRunning    GameState = iota // Frames are being simulated
	GameStateTerminated                  // The ship was hit; no further frames
)

func (s GameState) String() string {
	switch s {
	case GameStateRunning:
		return "running"
	case GameStateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("GameState(%d)", int(s))
	}
}

// Environment answers the per-frame queries the simulation needs.
// Both values are read once at the start of every Step.
type Environment interface {
	// Viewport returns the current screen size in logical units.
	Viewport() object.Screen
	// Now returns a monotonic timestamp in seconds.
	Now() float64
}

// FixedEnv is an Environment sampled ahead of a frame.
type FixedEnv struct {
	Screen object.Screen
	Time   float64
}

// Viewport implements Environment.
func (e FixedEnv) Viewport() object.Screen {
	return e.Screen
}

// Now implements Environment.
func (e FixedEnv) Now() float64 {
	return e.Time
}
