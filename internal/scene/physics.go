package scene

import (
	"image/color"
	"math"

	"github.com/iburimskiy/zen-garden/internal/vmath"
)

// Gravity pulls stones and petals down unless anti-gravity is on.
var Gravity = vmath.V3(0, -1.5, 0)

// Body is a falling meditation stone or lotus petal
type Body struct {
	Pos         vmath.Vec3
	Vel         vmath.Vec3
	Radius      float64
	Restitution float64
	Damping     float64 // linear, per second
	Color       color.RGBA
	Petal       bool
}

func NewStone(at vmath.Vec3) *Body {
	return &Body{
		Pos:         at,
		Radius:      0.15,
		Restitution: 0.5,
		Damping:     0.5,
		Color:       color.RGBA{R: 0x2c, G: 0x2c, B: 0x2c, A: 255},
	}
}

func NewPetal(at vmath.Vec3, clr color.RGBA) *Body {
	return &Body{
		Pos:         at,
		Radius:      0.08,
		Restitution: 0.3,
		Damping:     1.2,
		Color:       clr,
		Petal:       true,
	}
}

// World integrates bodies above the sand plane
type World struct {
	Bodies      []*Body
	Floor       float64 // world Y of the ground
	HalfExtent  float64 // bodies stay within |x|, |z| <= HalfExtent
	AntiGravity bool
}

func NewWorld(floor, halfExtent float64) *World {
	return &World{Floor: floor, HalfExtent: halfExtent}
}

func (w *World) Add(b *Body) { w.Bodies = append(w.Bodies, b) }

// Gravity is the acceleration currently applied.
func (w *World) Gravity() vmath.Vec3 {
	if w.AntiGravity {
		return vmath.Vec3{}
	}
	return Gravity
}

// Step advances every body by dt seconds with semi-implicit Euler.
func (w *World) Step(dt float64) {
	g := w.Gravity()
	for _, b := range w.Bodies {
		b.Vel = b.Vel.Add(g.Scale(dt)).Scale(1 / (1 + b.Damping*dt))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))

		if ground := w.Floor + b.Radius; b.Pos.Y < ground {
			b.Pos.Y = ground
			if b.Vel.Y < 0 {
				b.Vel.Y = -b.Vel.Y * b.Restitution
			}
		}
		if w.HalfExtent > 0 {
			lim := w.HalfExtent - b.Radius
			b.Pos.X, b.Vel.X = reflect(b.Pos.X, b.Vel.X, lim, b.Restitution)
			b.Pos.Z, b.Vel.Z = reflect(b.Pos.Z, b.Vel.Z, lim, b.Restitution)
		}
	}
}

func reflect(pos, vel, lim, restitution float64) (float64, float64) {
	if math.Abs(pos) <= lim {
		return pos, vel
	}
	pos = math.Copysign(lim, pos)
	if pos*vel > 0 {
		vel = -vel * restitution
	}
	return pos, vel
}
