package scene

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/zen-garden/internal/vmath"
)

const starExtent = 25.0

// Starfield drifts points toward the viewer and wraps them at the far side
type Starfield struct {
	pos   []vmath.Vec3
	speed []float64
}

func NewStarfield(count int, rng *rand.Rand) *Starfield {
	s := &Starfield{
		pos:   make([]vmath.Vec3, count),
		speed: make([]float64, count),
	}
	for i := range s.pos {
		s.pos[i] = vmath.V3(
			(rng.Float64()-0.5)*2*starExtent,
			(rng.Float64()-0.5)*2*starExtent,
			(rng.Float64()-0.5)*2*starExtent,
		)
		s.speed[i] = rng.Float64()*0.5 + 0.1
	}
	return s
}

func (s *Starfield) Len() int { return len(s.pos) }

// Update moves each star by its speed, scaled so that one 60 Hz tick matches
// a 0.02 step.
func (s *Starfield) Update(dt float64) {
	step := 0.02 * dt * 60
	for i := range s.pos {
		s.pos[i].Z += s.speed[i] * step
		if s.pos[i].Z > starExtent {
			s.pos[i].Z = -starExtent
		}
	}
}

func (s *Starfield) Draw(screen *ebiten.Image, cam *Camera) {
	clr := color.RGBA{R: 255, G: 255, B: 255, A: 153}
	for _, p := range s.pos {
		x, y, depth, ok := cam.Project(p)
		if !ok {
			continue
		}
		r := float32(vmath.Clamp(0.05*cam.PixelsPerUnit(depth), 0.5, 2.5))
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, clr, false)
	}
}
