package scene

import (
	"math"
	"testing"

	"github.com/iburimskiy/zen-garden/internal/vmath"
)

func step(w *World, seconds float64) {
	for i := 0; i < int(seconds*60); i++ {
		w.Step(1.0 / 60)
	}
}

func TestStoneSettlesOnFloor(t *testing.T) {
	w := NewWorld(-0.5, 3)
	s := NewStone(vmath.V3(0, 3, 0))
	w.Add(s)

	step(w, 20)
	if math.Abs(s.Pos.Y-(-0.5+s.Radius)) > 1e-3 {
		t.Errorf("stone at y=%v, want resting on the floor", s.Pos.Y)
	}
	if s.Vel.Len() > 0.05 {
		t.Errorf("stone still moving at %v", s.Vel.Len())
	}
}

func TestStoneBounces(t *testing.T) {
	w := NewWorld(0, 0)
	s := NewStone(vmath.V3(0, 0.15, 0))
	s.Vel = vmath.V3(0, -2, 0)
	w.Add(s)
	w.Step(1.0 / 60)
	if s.Vel.Y <= 0 {
		t.Errorf("stone did not bounce, vy=%v", s.Vel.Y)
	}
}

func TestAntiGravity(t *testing.T) {
	w := NewWorld(-0.5, 3)
	w.AntiGravity = true
	p := NewPetal(vmath.V3(0.5, 2, 0.5), NewStone(vmath.Vec3{}).Color)
	w.Add(p)

	if w.Gravity() != (vmath.Vec3{}) {
		t.Fatalf("gravity %+v with anti-gravity on", w.Gravity())
	}
	step(w, 5)
	if p.Pos != vmath.V3(0.5, 2, 0.5) {
		t.Errorf("resting petal drifted to %+v", p.Pos)
	}

	p.Vel = vmath.V3(1, 0, 0)
	step(w, 5)
	if p.Vel.Len() >= 0.01 {
		t.Errorf("damping left velocity %v", p.Vel.Len())
	}
}

func TestBodiesStayInBounds(t *testing.T) {
	w := NewWorld(-0.5, 3)
	s := NewStone(vmath.V3(0, 0, 0))
	s.Vel = vmath.V3(50, 0, -50)
	w.Add(s)
	step(w, 2)
	lim := 3 - s.Radius
	if math.Abs(s.Pos.X) > lim+1e-9 || math.Abs(s.Pos.Z) > lim+1e-9 {
		t.Errorf("stone escaped to %+v", s.Pos)
	}
}
