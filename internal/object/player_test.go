package object

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-6

func near(a, b r2.Vec) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance
}

func testPlayer() *Player {
	return NewPlayer(r2.Vec{X: 400, Y: 300}, PlayerParams{
		RotationStep: 2,
		Velocity:     r2.Vec{X: 2, Y: 2},
		Displacement: 10,
		Facing:       90,
	})
}

func TestNewPlayerHull(t *testing.T) {
	p := testPlayer()
	want := [3]r2.Vec{{X: 400, Y: 300}, {X: 410, Y: 320}, {X: 390, Y: 320}}
	if p.Hull != want {
		t.Errorf("hull = %v, want %v", p.Hull, want)
	}
	if p.Facing != 90 || p.Collision {
		t.Errorf("unexpected initial state: facing %f, collision %v", p.Facing, p.Collision)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	for _, n := range []int{1, 3, 45, 180} {
		for _, first := range []Command{RotateLeft, RotateRight} {
			p := testPlayer()
			orig := p.Hull
			second := RotateRight
			if first == RotateRight {
				second = RotateLeft
			}

			for i := 0; i < n; i++ {
				p.Rotate(first)
			}
			for i := 0; i < n; i++ {
				p.Rotate(second)
			}

			for i := range orig {
				if !near(p.Hull[i], orig[i]) {
					t.Errorf("n=%d first=%s: vertex %d = %v, want %v", n, first, i, p.Hull[i], orig[i])
				}
			}
			if p.Facing != 90 {
				t.Errorf("n=%d first=%s: facing = %f, want 90", n, first, p.Facing)
			}
		}
	}
}

func TestRotateIsRigid(t *testing.T) {
	p := testPlayer()
	side := func(a, b r2.Vec) float64 { return r2.Norm(r2.Sub(a, b)) }
	before := [3]float64{side(p.Hull[0], p.Hull[1]), side(p.Hull[1], p.Hull[2]), side(p.Hull[2], p.Hull[0])}
	center := p.Centroid()

	for i := 0; i < 37; i++ {
		p.Rotate(RotateRight)
	}

	after := [3]float64{side(p.Hull[0], p.Hull[1]), side(p.Hull[1], p.Hull[2]), side(p.Hull[2], p.Hull[0])}
	for i := range before {
		if math.Abs(before[i]-after[i]) > tolerance {
			t.Errorf("side %d changed from %f to %f", i, before[i], after[i])
		}
	}
	if !near(p.Centroid(), center) {
		t.Errorf("centroid moved from %v to %v", center, p.Centroid())
	}
}

func TestRotateDirection(t *testing.T) {
	p := testPlayer()
	p.Move(RotateRight)
	if p.Facing != 88 {
		t.Errorf("RotateRight facing = %f, want 88", p.Facing)
	}
	// Clockwise on screen: the upward nose swings right.
	if p.Nose().X <= 400 {
		t.Errorf("RotateRight should move the nose right, got %v", p.Nose())
	}

	p = testPlayer()
	p.Move(RotateLeft)
	if p.Facing != 92 {
		t.Errorf("RotateLeft facing = %f, want 92", p.Facing)
	}
	if p.Nose().X >= 400 {
		t.Errorf("RotateLeft should move the nose left, got %v", p.Nose())
	}
}

func TestThrustFollowsFacing(t *testing.T) {
	p := testPlayer()
	p.Move(Thrust)
	if want := (r2.Vec{X: 400, Y: 298}); !near(p.Nose(), want) {
		t.Errorf("thrust facing up: nose = %v, want %v", p.Nose(), want)
	}

	// After turning clockwise the ship drifts right as it climbs.
	p = testPlayer()
	for i := 0; i < 10; i++ {
		p.Move(RotateRight)
	}
	before := p.Centroid()
	p.Move(Thrust)
	after := p.Centroid()
	if after.X <= before.X || after.Y >= before.Y {
		t.Errorf("expected up-right motion, moved from %v to %v", before, after)
	}
}

func TestThrustCouplesAxesIndependently(t *testing.T) {
	p := testPlayer()
	p.Velocity = r2.Vec{X: 2, Y: 4}
	p.Facing = 45
	before := p.Hull
	p.Thrust()

	rad := -45 * math.Pi / 180
	want := r2.Vec{X: 2 * math.Cos(rad), Y: 4 * math.Sin(rad)}
	for i := range before {
		if got := r2.Sub(p.Hull[i], before[i]); !near(got, want) {
			t.Errorf("vertex %d moved by %v, want %v", i, got, want)
		}
	}
}

func TestFire(t *testing.T) {
	p := testPlayer()
	for i := 0; i < 15; i++ {
		p.Move(RotateLeft)
	}
	shot := p.Fire(r2.Vec{X: 5, Y: 5}, 5, 10)

	if shot.Position != p.Nose() {
		t.Errorf("shot position = %v, want nose %v", shot.Position, p.Nose())
	}
	rad := -p.Facing * math.Pi / 180
	if math.Abs(shot.Cos-math.Cos(rad)) > tolerance || math.Abs(shot.Sin-math.Sin(rad)) > tolerance {
		t.Errorf("shot direction = (%f, %f), want facing %f", shot.Cos, shot.Sin, p.Facing)
	}
	if shot.Width != 5 || shot.Height != 10 || shot.Velocity != (r2.Vec{X: 5, Y: 5}) {
		t.Errorf("unexpected shot %+v", shot)
	}
}

func TestFireDirectionFrozen(t *testing.T) {
	p := testPlayer()
	shot := p.Fire(r2.Vec{X: 5, Y: 5}, 5, 10)
	cos, sin := shot.Cos, shot.Sin

	for i := 0; i < 90; i++ {
		p.Move(RotateRight)
		shot.Advance()
	}

	if shot.Cos != cos || shot.Sin != sin {
		t.Errorf("shot direction changed to (%f, %f) from (%f, %f)", shot.Cos, shot.Sin, cos, sin)
	}
}

func TestPlayerWrapOppositeRestores(t *testing.T) {
	s := Screen{Width: 800, Height: 600}
	for _, e := range Edges {
		p := testPlayer()
		orig := p.Hull
		p.Wrap(e, s)
		if p.Hull == orig {
			t.Errorf("edge %s: wrap did not move the hull", e)
		}
		p.Wrap(e.Opposite(), s)
		if p.Hull != orig {
			t.Errorf("edge %s: hull = %v after round trip, want %v", e, p.Hull, orig)
		}
	}
}

func TestPlayerWrapAround(t *testing.T) {
	s := Screen{Width: 800, Height: 600}
	tests := []struct {
		name string
		nose r2.Vec
		want r2.Vec
	}{
		{"inside", r2.Vec{X: 400, Y: 300}, r2.Vec{X: 400, Y: 300}},
		{"above top", r2.Vec{X: 400, Y: 0}, r2.Vec{X: 400, Y: 600}},
		{"past right", r2.Vec{X: 801, Y: 300}, r2.Vec{X: 1, Y: 300}},
		{"below bottom", r2.Vec{X: 400, Y: 602}, r2.Vec{X: 400, Y: 2}},
		{"past left", r2.Vec{X: 0.5, Y: 300}, r2.Vec{X: 800.5, Y: 300}},
		{"top-left corner", r2.Vec{X: -5, Y: -5}, r2.Vec{X: 795, Y: 595}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testPlayer()
			offset := r2.Sub(tc.nose, p.Nose())
			for i := range p.Hull {
				p.Hull[i] = r2.Add(p.Hull[i], offset)
			}

			p.WrapAround(s)
			if !near(p.Nose(), tc.want) {
				t.Errorf("nose = %v, want %v", p.Nose(), tc.want)
			}
		})
	}
}

func TestMoveInvalidCommandPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid command")
		}
	}()
	testPlayer().Move(Command(42))
}
