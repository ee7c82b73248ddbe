package scene

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/zen-garden/internal/config"
	"github.com/iburimskiy/zen-garden/internal/content"
	"github.com/iburimskiy/zen-garden/internal/ui"
	"github.com/iburimskiy/zen-garden/internal/vmath"
)

// HoverHandler receives the cursor's enter and leave edges on objects.
type HoverHandler interface {
	OnHoverEnter(id int, kind Kind, pos vmath.Vec3)
	OnHoverExit(id int)
}

var (
	leafGlow  = ui.Hex("#44ff44")
	leafBody  = ui.Hex("#228b22")
	goldGlow  = ui.Hex("#ffcc00")
	goldBody  = ui.Hex("#daa520")
	hoverBody = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Object is one decorative shape orbiting the island
type Object struct {
	ID    int
	Kind  Kind
	Orbit Orbit

	mesh    Mesh
	pose    Pose
	hovered bool
	glow    *ui.Spring
}

func (o *Object) Pose() Pose           { return o.pose }
func (o *Object) Position() vmath.Vec3 { return o.pose.Position }
func (o *Object) Hovered() bool        { return o.hovered }

func (o *Object) colors() (body, glow color.RGBA) {
	if o.Kind == BoLeaf || o.Kind == Tetrahedron {
		return leafBody, leafGlow
	}
	return goldBody, goldGlow
}

// Garden is the whole home page scene
type Garden struct {
	Camera *Camera

	objects []*Object
	sand    *Sand
	world   *World
	stars   *Starfield
	island  *Island
	bonsai  *Bonsai

	handler HoverHandler
	hovered int // object ID under the cursor, -1 for none
	t       float64
}

// NewGarden builds the scene from a layout, projecting into a w×h viewport
// whose top-left corner is at (x, y).
func NewGarden(layout *content.SceneLayout, x, y, w, h float64, rng *rand.Rand) (*Garden, error) {
	cam := NewCamera(w, h)
	cam.X, cam.Y = x, y

	g := &Garden{
		Camera:  cam,
		sand:    NewSand(),
		stars:   NewStarfield(config.StarCount, rng),
		island:  NewIsland(),
		bonsai:  NewBonsai(),
		hovered: -1,
	}
	g.world = NewWorld(g.sand.Level, g.sand.Size/2)

	for i, rec := range layout.Objects {
		kind, err := ParseKind(rec.Kind)
		if err != nil {
			return nil, fmt.Errorf("scene object %d: %w", i, err)
		}
		obj := &Object{
			ID:   i,
			Kind: kind,
			Orbit: Orbit{
				Radius:       rec.Radius,
				Speed:        rec.Speed,
				Phase:        rec.Phase * math.Pi,
				Base:         vmath.V3(rec.Base[0], rec.Base[1], rec.Base[2]),
				BobAmplitude: DefaultBob,
			},
			mesh: kind.Mesh(),
			glow: ui.NewSpring(0, 10, 1),
		}
		obj.pose = obj.Orbit.Pose(0, false)
		g.objects = append(g.objects, obj)
	}
	for _, s := range layout.Stones {
		g.world.Add(NewStone(vmath.V3(s[0], s[1], s[2])))
	}
	for _, p := range layout.Petals {
		g.world.Add(NewPetal(vmath.V3(p.At[0], p.At[1], p.At[2]), ui.Hex(p.Color)))
	}
	return g, nil
}

func (g *Garden) SetHandler(h HoverHandler) { g.handler = h }

func (g *Garden) Objects() []*Object { return g.objects }
func (g *Garden) World() *World      { return g.world }
func (g *Garden) Elapsed() float64   { return g.t }

func (g *Garden) SetGoldenHour(on bool)  { g.sand.Golden = on }
func (g *Garden) GoldenHour() bool       { return g.sand.Golden }
func (g *Garden) SetAntiGravity(on bool) { g.world.AntiGravity = on }
func (g *Garden) AntiGravity() bool      { return g.world.AntiGravity }

// HoveredID is the object under the cursor, or -1.
func (g *Garden) HoveredID() int { return g.hovered }

// Update advances the scene by dt and applies this tick's pointer input.
// Dragging on empty space orbits the camera.
func (g *Garden) Update(dt float64, in ui.Input) {
	g.t += dt
	g.island.Update(g.t)
	g.bonsai.Update(g.t)
	g.stars.Update(dt)
	g.sand.Update(dt)
	g.world.Step(dt)

	cam := g.Camera
	inside := float64(in.X) >= cam.X && float64(in.X) <= cam.X+cam.W &&
		float64(in.Y) >= cam.Y && float64(in.Y) <= cam.Y+cam.H
	if inside {
		g.sand.SetPointer((float64(in.X)-cam.X)/cam.W, 1-(float64(in.Y)-cam.Y)/cam.H)
		if in.Down && !in.Pressed && g.hovered < 0 {
			cam.Drag(float64(in.DX), float64(in.DY))
		}
	}

	g.Animate()
	g.Hover(float64(in.X), float64(in.Y), inside)

	for _, o := range g.objects {
		if o.hovered {
			o.glow.SetTarget(1)
		} else {
			o.glow.SetTarget(0)
		}
		o.glow.Update()
	}
}

// Animate recomputes every object's pose at the current time.
func (g *Garden) Animate() {
	for _, o := range g.objects {
		o.pose = o.Orbit.Pose(g.t, o.hovered)
	}
}

// pick returns the nearest object whose projection covers (x, y).
func (g *Garden) pick(x, y float64) *Object {
	var best *Object
	bestDepth := math.Inf(1)
	for _, o := range g.objects {
		px, py, depth, ok := g.Camera.Project(o.pose.Position)
		if !ok {
			continue
		}
		r := math.Max(config.HoverPickRadius, o.mesh.Radius()*o.pose.Scale*g.Camera.PixelsPerUnit(depth))
		if math.Hypot(x-px, y-py) <= r && depth < bestDepth {
			best, bestDepth = o, depth
		}
	}
	return best
}

// Hover hit-tests the cursor and reports enter and leave edges to the
// handler. Staying on the same object reports nothing.
func (g *Garden) Hover(x, y float64, inside bool) {
	var hit *Object
	if inside {
		hit = g.pick(x, y)
	}
	id := -1
	if hit != nil {
		id = hit.ID
	}
	if id == g.hovered {
		return
	}

	if g.hovered >= 0 {
		g.objects[g.hovered].hovered = false
		if g.handler != nil {
			g.handler.OnHoverExit(g.hovered)
		}
	}
	g.hovered = id
	if hit != nil {
		hit.hovered = true
		if g.handler != nil {
			g.handler.OnHoverEnter(hit.ID, hit.Kind, hit.pose.Position)
		}
	}
}

func (g *Garden) Draw(screen *ebiten.Image) {
	cam := g.Camera
	g.stars.Draw(screen, cam)
	g.sand.Draw(screen, cam)
	g.island.Draw(screen, cam)
	g.bonsai.Draw(screen, cam)

	for _, b := range g.world.Bodies {
		drawBall(screen, cam, b.Pos, b.Radius, b.Color)
	}

	// far to near
	order := make([]*Object, len(g.objects))
	copy(order, g.objects)
	depth := func(o *Object) float64 { return o.pose.Position.Sub(cam.Position()).Len() }
	sort.Slice(order, func(i, j int) bool { return depth(order[i]) > depth(order[j]) })

	for _, o := range order {
		body, glow := o.colors()
		k := o.glow.Value()
		clr := ui.Lerp(ui.Lerp(body, glow, 0.3), hoverBody, k)
		drawMesh(screen, cam, o.mesh, o.pose.Transform(), clr, float32(1.5+1.5*k))
	}
}
