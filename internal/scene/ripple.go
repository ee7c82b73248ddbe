package scene

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/zen-garden/internal/vmath"
)

// Elevation is the sand height at distance d (in UV units) from the pointer.
func Elevation(d, t float64) float64 {
	r1 := math.Sin(d*12-t*2) * math.Exp(-d*4)
	r2 := math.Sin(d*18-t*3) * math.Exp(-d*5)
	return (r1 + r2*0.5) * 0.12
}

// Sand is the raked square under the island, a heightfield that ripples
// around the pointer
type Sand struct {
	Size   float64 // world units per side
	Res    int     // grid cells per side
	Level  float64 // world Y of the undisturbed surface
	Golden bool

	mu, mv float64 // pointer in UV space
	t      float64
}

func NewSand() *Sand {
	return &Sand{Size: 6, Res: 28, Level: -0.5, mu: 0.5, mv: 0.5}
}

// SetPointer takes the cursor normalised to [0, 1] on both axes.
func (s *Sand) SetPointer(u, v float64) {
	s.mu = vmath.Clamp(u, 0, 1)
	s.mv = vmath.Clamp(v, 0, 1)
}

func (s *Sand) Update(dt float64) { s.t += dt }

// HeightAt is the surface elevation above Level at (u, v).
func (s *Sand) HeightAt(u, v float64) float64 {
	return Elevation(math.Hypot(u-s.mu, v-s.mv), s.t)
}

// point is the world position of grid node (i, j).
func (s *Sand) point(i, j int) vmath.Vec3 {
	u := float64(i) / float64(s.Res)
	v := float64(j) / float64(s.Res)
	return vmath.V3((u-0.5)*s.Size, s.Level+s.HeightAt(u, v), (0.5-v)*s.Size)
}

// SandColor shades the sand by its elevation, with a gold glow on the ripples.
func SandColor(u, elevation float64, golden bool) color.RGBA {
	grain := math.Sin(u * 20)
	r := 0.5 + 0.1*grain
	g := 0.35 + 0.08*grain
	b := 0.2

	glow := math.Abs(elevation) * 12 * 0.6
	if golden {
		glow *= 1.6
		r, g = r+0.08, g+0.04
	}
	r += 1.0 * glow
	g += 0.8 * glow
	b += 0.2 * glow

	return color.RGBA{
		R: uint8(vmath.Clamp(r, 0, 1) * 255),
		G: uint8(vmath.Clamp(g, 0, 1) * 255),
		B: uint8(vmath.Clamp(b, 0, 1) * 255),
		A: 200,
	}
}

// Draw renders the grid lines of the heightfield.
func (s *Sand) Draw(screen *ebiten.Image, cam *Camera) {
	for j := 0; j <= s.Res; j++ {
		for i := 0; i <= s.Res; i++ {
			p := s.point(i, j)
			x0, y0, _, ok0 := cam.Project(p)
			u := float64(i) / float64(s.Res)
			clr := SandColor(u, p.Y-s.Level, s.Golden)
			if i < s.Res {
				if x1, y1, _, ok1 := cam.Project(s.point(i+1, j)); ok0 && ok1 {
					vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
				}
			}
			if j < s.Res {
				if x1, y1, _, ok1 := cam.Project(s.point(i, j+1)); ok0 && ok1 {
					vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
				}
			}
		}
	}
}
