package object

import "gonum.org/v1/gonum/spatial/r2"

// Projectile is a shot fired by the player. Its direction is frozen at spawn.
type Projectile struct {
	Position  r2.Vec
	Velocity  r2.Vec
	Width     float64
	Height    float64
	Cos       float64 // Facing cosine at fire time
	Sin       float64 // Facing sine at fire time
	Collision bool
}

// Advance moves the projectile one frame along its frozen direction.
func (p *Projectile) Advance() {
	p.Position.X += p.Velocity.X * p.Cos
	p.Position.Y += p.Velocity.Y * p.Sin
}

// Expired reports whether the projectile has left the screen.
func (p *Projectile) Expired(s Screen) bool {
	return p.Position.X > s.Width || p.Position.X < 0 ||
		p.Position.Y > s.Height || p.Position.Y < 0
}

// FireGate enforces a minimum interval between shots.
type FireGate struct {
	Interval float64 // Minimum seconds between shots
	last     float64 // Timestamp of the last shot
}

// NewFireGate creates a gate whose last shot is at time zero.
func NewFireGate(interval float64) *FireGate {
	return &FireGate{Interval: interval}
}

// Ready reports whether a shot is allowed at now.
func (g *FireGate) Ready(now float64) bool {
	return now-g.last >= g.Interval
}

// TryFire records a shot at now if the gate allows it.
func (g *FireGate) TryFire(now float64) bool {
	if !g.Ready(now) {
		return false
	}
	g.last = now
	return true
}

// Last returns the timestamp of the last recorded shot.
func (g *FireGate) Last() float64 {
	return g.last
}
