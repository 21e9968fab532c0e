package object

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestProjectileAdvance(t *testing.T) {
	p := Projectile{
		Position: r2.Vec{X: 100, Y: 100},
		Velocity: r2.Vec{X: 5, Y: 5},
		Cos:      0.6,
		Sin:      -0.8,
	}
	p.Advance()
	p.Advance()
	if want := (r2.Vec{X: 106, Y: 92}); !near(p.Position, want) {
		t.Errorf("position = %v, want %v", p.Position, want)
	}
}

func TestProjectileExpired(t *testing.T) {
	s := Screen{Width: 800, Height: 600}
	tests := []struct {
		pos  r2.Vec
		want bool
	}{
		{r2.Vec{X: 400, Y: 300}, false},
		{r2.Vec{X: 0, Y: 0}, false},
		{r2.Vec{X: 800, Y: 600}, false},
		{r2.Vec{X: -0.1, Y: 300}, true},
		{r2.Vec{X: 800.1, Y: 300}, true},
		{r2.Vec{X: 400, Y: -1}, true},
		{r2.Vec{X: 400, Y: 601}, true},
	}
	for _, tc := range tests {
		p := Projectile{Position: tc.pos}
		if got := p.Expired(s); got != tc.want {
			t.Errorf("Expired(%v) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}

func TestFireGate(t *testing.T) {
	g := NewFireGate(0.3)

	if g.TryFire(0.1) {
		t.Error("shot before the first interval elapsed should be rejected")
	}
	if !g.TryFire(1.0) {
		t.Fatal("first shot at 1.0 should be allowed")
	}
	if g.TryFire(1.29) {
		t.Error("shot at 1.29 should be rejected")
	}
	if g.Last() != 1.0 {
		t.Errorf("rejected shot moved last to %f", g.Last())
	}
	if !g.TryFire(1.3) {
		t.Error("shot at 1.3 should be allowed")
	}
	if g.Last() != 1.3 {
		t.Errorf("last = %f, want 1.3", g.Last())
	}
}

func TestFireGateReadyDoesNotRecord(t *testing.T) {
	g := NewFireGate(0.3)
	if !g.Ready(0.5) {
		t.Fatal("gate should be ready at 0.5")
	}
	if g.Last() != 0 {
		t.Errorf("Ready recorded a shot at %f", g.Last())
	}
}
