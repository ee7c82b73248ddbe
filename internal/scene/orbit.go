package scene

import (
	"math"

	"github.com/iburimskiy/zen-garden/internal/vmath"
)

// DefaultBob is the vertical float amplitude of a decorative object.
const DefaultBob = 0.5

// Orbit moves an object on a horizontal circle around Base
type Orbit struct {
	Radius       float64
	Speed        float64 // rad/s
	Phase        float64 // rad
	Base         vmath.Vec3
	BobAmplitude float64
}

// Pose is where an object sits and how it is turned for one frame
type Pose struct {
	Position vmath.Vec3
	RotX     float64
	RotY     float64
	Scale    float64
}

// Pose evaluates the orbit at elapsed time t. A hovered object breathes.
func (o Orbit) Pose(t float64, hovered bool) Pose {
	theta := o.Speed*t + o.Phase
	bob := o.BobAmplitude * math.Sin(0.5*o.Speed*t+o.Phase)

	p := Pose{
		Position: o.Base.Add(vmath.V3(o.Radius*math.Cos(theta), bob, o.Radius*math.Sin(theta))),
		RotX:     0.3 * theta,
		RotY:     0.4 * theta,
		Scale:    1,
	}
	if hovered {
		p.Scale = 1 + 0.08*math.Sin(3*t)
	}
	return p
}

// Transform places a mesh vertex: scale, rotate Z then Y then X, translate.
type Transform struct {
	Position         vmath.Vec3
	RotX, RotY, RotZ float64
	Scale            float64
}

func (p Pose) Transform() Transform {
	return Transform{Position: p.Position, RotX: p.RotX, RotY: p.RotY, Scale: p.Scale}
}

func (tr Transform) Apply(v vmath.Vec3) vmath.Vec3 {
	s := tr.Scale
	if s == 0 {
		s = 1
	}
	return v.Scale(s).RotateZ(tr.RotZ).RotateY(tr.RotY).RotateX(tr.RotX).Add(tr.Position)
}
