package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/zen-garden/internal/vmath"
)

type screenPoint struct {
	x, y float32
	ok   bool
}

// drawMesh strokes every edge of m placed by tr.
func drawMesh(screen *ebiten.Image, cam *Camera, m Mesh, tr Transform, clr color.Color, width float32) {
	pts := make([]screenPoint, len(m.Vertices))
	for i, v := range m.Vertices {
		x, y, _, ok := cam.Project(tr.Apply(v))
		pts[i] = screenPoint{float32(x), float32(y), ok}
	}
	for _, e := range m.Edges {
		a, b := pts[e[0]], pts[e[1]]
		if !a.ok || !b.ok {
			continue
		}
		vector.StrokeLine(screen, a.x, a.y, b.x, b.y, width, clr, true)
	}
}

// drawBall fills a projected sphere of radius r at p.
func drawBall(screen *ebiten.Image, cam *Camera, p vmath.Vec3, r float64, clr color.Color) {
	x, y, depth, ok := cam.Project(p)
	if !ok {
		return
	}
	px := float32(r * cam.PixelsPerUnit(depth))
	if px < 1 {
		px = 1
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), px, clr, true)
}
