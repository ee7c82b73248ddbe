package scene

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/zen-garden/internal/vmath"
)

var (
	islandColor  = color.RGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 255}
	trunkColor   = color.RGBA{R: 0x4a, G: 0x37, B: 0x28, A: 255}
	foliageColor = color.RGBA{R: 0x2d, G: 0x50, B: 0x16, A: 255}
)

// Island is the floating rock that carries the bonsai
type Island struct {
	mesh Mesh
	pose Transform
}

func NewIsland() *Island {
	return &Island{mesh: dodecahedron(1.5), pose: Transform{Position: vmath.V3(0, -0.5, 0), Scale: 1}}
}

// Update bobs the island and turns it slowly.
func (is *Island) Update(t float64) {
	is.pose.Position.Y = -0.5 + math.Sin(t*0.5)*0.1
	is.pose.RotY = t * 0.05
}

func (is *Island) Draw(screen *ebiten.Image, cam *Camera) {
	drawMesh(screen, cam, is.mesh, is.pose, islandColor, 1.5)
}

type bonsaiPart struct {
	mesh  Mesh
	at    vmath.Vec3
	clr   color.RGBA
	width float32
}

// Bonsai is a trunk, one branch and three foliage clusters swaying together
type Bonsai struct {
	origin vmath.Vec3
	parts  []bonsaiPart
	sway   Transform
}

func NewBonsai() *Bonsai {
	return &Bonsai{
		origin: vmath.V3(0, 0.5, 0),
		parts: []bonsaiPart{
			{mesh: segment(vmath.V3(0, -0.7, 0), vmath.V3(0, 0.1, 0)), clr: trunkColor, width: 3},
			{mesh: segment(vmath.V3(0.05, -0.1, 0), vmath.V3(0.55, 0.15, 0)), clr: trunkColor, width: 2},
			{mesh: dodecahedron(0.25), at: vmath.V3(0, 0.3, 0), clr: foliageColor, width: 1.5},
			{mesh: dodecahedron(0.2), at: vmath.V3(0.5, 0.15, 0), clr: foliageColor, width: 1.5},
			{mesh: dodecahedron(0.18), at: vmath.V3(-0.2, 0.25, 0.1), clr: foliageColor, width: 1.5},
		},
		sway: Transform{Scale: 1},
	}
}

func (b *Bonsai) Update(t float64) {
	b.sway.RotZ = math.Sin(t*0.8) * 0.05
	b.sway.RotX = math.Cos(t*0.6) * 0.03
}

func (b *Bonsai) Draw(screen *ebiten.Image, cam *Camera) {
	for _, p := range b.parts {
		local := Transform{Position: p.at, Scale: 1}
		moved := Mesh{Vertices: make([]vmath.Vec3, len(p.mesh.Vertices)), Edges: p.mesh.Edges}
		for i, v := range p.mesh.Vertices {
			moved.Vertices[i] = b.sway.Apply(local.Apply(v)).Add(b.origin)
		}
		drawMesh(screen, cam, moved, Transform{Scale: 1}, p.clr, p.width)
	}
}

func segment(a, b vmath.Vec3) Mesh {
	return Mesh{Vertices: []vmath.Vec3{a, b}, Edges: [][2]int{{0, 1}}}
}
