// Package scene holds the home page garden: the orbiting decorative objects,
// the camera that projects them, and the furniture around them.
package scene

import (
	"fmt"
	"math"

	"github.com/iburimskiy/zen-garden/internal/vmath"
)

// Kind is the closed set of decorative object shapes
type Kind int

const (
	Sphere Kind = iota
	Tetrahedron
	Icosahedron
	Dodecahedron
	Octahedron
	BoLeaf
	Chakra
)

var kindNames = [...]string{
	Sphere:       "sphere",
	Tetrahedron:  "tetrahedron",
	Icosahedron:  "icosahedron",
	Dodecahedron: "dodecahedron",
	Octahedron:   "octahedron",
	BoLeaf:       "boLeaf",
	Chakra:       "chakra",
}

// Kinds lists every shape in declaration order.
func Kinds() []Kind {
	return []Kind{Sphere, Tetrahedron, Icosahedron, Dodecahedron, Octahedron, BoLeaf, Chakra}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a layout name such as "boLeaf" to its Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q", s)
}

// Mesh is a wireframe: vertex positions around the origin and index pairs
type Mesh struct {
	Vertices []vmath.Vec3
	Edges    [][2]int
}

// Radius is the distance of the farthest vertex from the origin.
func (m Mesh) Radius() float64 {
	var r float64
	for _, v := range m.Vertices {
		r = math.Max(r, v.Len())
	}
	return r
}

var generators = map[Kind]func() Mesh{
	Sphere:       func() Mesh { return uvSphere(0.35, 6, 10) },
	Tetrahedron:  func() Mesh { return tetrahedron(0.4) },
	Icosahedron:  func() Mesh { return icosahedron(0.4) },
	Dodecahedron: func() Mesh { return dodecahedron(0.4) },
	Octahedron:   func() Mesh { return octahedron(0.35) },
	BoLeaf:       boLeaf,
	Chakra:       chakra,
}

// Mesh builds the wireframe for k. Unknown kinds get the sphere.
func (k Kind) Mesh() Mesh {
	if gen, ok := generators[k]; ok {
		return gen()
	}
	return generators[Sphere]()
}

const phi = 1.618033988749895

func tetrahedron(r float64) Mesh {
	s := r / math.Sqrt(3)
	m := Mesh{Vertices: []vmath.Vec3{
		vmath.V3(s, s, s),
		vmath.V3(s, -s, -s),
		vmath.V3(-s, s, -s),
		vmath.V3(-s, -s, s),
	}}
	m.Edges = nearestEdges(m.Vertices)
	return m
}

func octahedron(r float64) Mesh {
	m := Mesh{Vertices: []vmath.Vec3{
		vmath.V3(r, 0, 0), vmath.V3(-r, 0, 0),
		vmath.V3(0, r, 0), vmath.V3(0, -r, 0),
		vmath.V3(0, 0, r), vmath.V3(0, 0, -r),
	}}
	m.Edges = nearestEdges(m.Vertices)
	return m
}

func icosahedron(r float64) Mesh {
	var vs []vmath.Vec3
	for _, a := range []float64{-1, 1} {
		for _, b := range []float64{-phi, phi} {
			vs = append(vs,
				vmath.V3(0, a, b),
				vmath.V3(a, b, 0),
				vmath.V3(b, 0, a),
			)
		}
	}
	m := Mesh{Vertices: scaleTo(vs, r)}
	m.Edges = nearestEdges(m.Vertices)
	return m
}

func dodecahedron(r float64) Mesh {
	var vs []vmath.Vec3
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				vs = append(vs, vmath.V3(x, y, z))
			}
		}
	}
	for _, a := range []float64{-1 / phi, 1 / phi} {
		for _, b := range []float64{-phi, phi} {
			vs = append(vs,
				vmath.V3(0, a, b),
				vmath.V3(a, b, 0),
				vmath.V3(b, 0, a),
			)
		}
	}
	m := Mesh{Vertices: scaleTo(vs, r)}
	m.Edges = nearestEdges(m.Vertices)
	return m
}

// uvSphere is a latitude/longitude cage with poles at ±Y.
func uvSphere(r float64, rings, segments int) Mesh {
	m := Mesh{Vertices: []vmath.Vec3{vmath.V3(0, r, 0)}}
	for i := 1; i < rings; i++ {
		lat := math.Pi * float64(i) / float64(rings)
		y, ring := r*math.Cos(lat), r*math.Sin(lat)
		for j := 0; j < segments; j++ {
			lon := 2 * math.Pi * float64(j) / float64(segments)
			m.Vertices = append(m.Vertices, vmath.V3(ring*math.Cos(lon), y, ring*math.Sin(lon)))
		}
	}
	bottom := len(m.Vertices)
	m.Vertices = append(m.Vertices, vmath.V3(0, -r, 0))

	at := func(ring, seg int) int { return 1 + ring*segments + seg%segments }
	for i := 0; i < rings-1; i++ {
		for j := 0; j < segments; j++ {
			m.Edges = append(m.Edges, [2]int{at(i, j), at(i, j+1)})
			if i == 0 {
				m.Edges = append(m.Edges, [2]int{0, at(i, j)})
			} else {
				m.Edges = append(m.Edges, [2]int{at(i-1, j), at(i, j)})
			}
			if i == rings-2 {
				m.Edges = append(m.Edges, [2]int{at(i, j), bottom})
			}
		}
	}
	return m
}

// boLeaf is the heart-shaped leaf outline, extruded slightly, with a midrib.
func boLeaf() Mesh {
	curves := [][4][2]float64{
		{{0, 0}, {0.2, 0.1}, {0.4, 0.4}, {0.4, 0.7}},
		{{0.4, 0.7}, {0.4, 1.1}, {0, 1.3}, {0, 1.5}},
		{{0, 1.5}, {0, 1.3}, {-0.4, 1.1}, {-0.4, 0.7}},
		{{-0.4, 0.7}, {-0.4, 0.4}, {-0.2, 0.1}, {0, 0}},
	}
	const (
		steps = 6
		scale = 0.4
		half  = 0.035
	)
	var outline [][2]float64
	for _, c := range curves {
		for i := 0; i < steps; i++ {
			outline = append(outline, bezier(c, float64(i)/steps))
		}
	}

	var m Mesh
	n := len(outline)
	for _, z := range []float64{-half, half} {
		for _, p := range outline {
			m.Vertices = append(m.Vertices, vmath.V3(p[0]*scale, (p[1]-0.75)*scale, z))
		}
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		m.Edges = append(m.Edges,
			[2]int{i, next},
			[2]int{n + i, n + next},
		)
		if i%steps == 0 {
			m.Edges = append(m.Edges, [2]int{i, n + i})
		}
	}
	// midrib from stem to tip, on the front face
	m.Edges = append(m.Edges, [2]int{n, n + 2*steps})
	return m
}

func bezier(c [4][2]float64, t float64) [2]float64 {
	u := 1 - t
	a, b, d, e := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return [2]float64{
		a*c[0][0] + b*c[1][0] + d*c[2][0] + e*c[3][0],
		a*c[0][1] + b*c[1][1] + d*c[2][1] + e*c[3][1],
	}
}

// chakra is the eight-spoked wheel: a rim, a hub and spokes between them.
func chakra() Mesh {
	const (
		rimRadius = 0.5 * 0.7
		hubRadius = 0.1 * 0.7
		rimSegs   = 32
		hubSegs   = 8
		spokes    = 8
	)
	var m Mesh
	ring := func(r float64, segs int) int {
		start := len(m.Vertices)
		for i := 0; i < segs; i++ {
			a := 2 * math.Pi * float64(i) / float64(segs)
			m.Vertices = append(m.Vertices, vmath.V3(r*math.Cos(a), r*math.Sin(a), 0))
			m.Edges = append(m.Edges, [2]int{start + i, start + (i+1)%segs})
		}
		return start
	}
	rim := ring(rimRadius, rimSegs)
	hub := ring(hubRadius, hubSegs)
	for i := 0; i < spokes; i++ {
		m.Edges = append(m.Edges, [2]int{hub + i*hubSegs/spokes, rim + i*rimSegs/spokes})
	}
	return m
}

func scaleTo(vs []vmath.Vec3, r float64) []vmath.Vec3 {
	out := make([]vmath.Vec3, len(vs))
	for i, v := range vs {
		out[i] = v.Normalize().Scale(r)
	}
	return out
}

// nearestEdges joins every vertex pair at the minimum pairwise distance,
// which for a regular polyhedron is exactly its edge set.
func nearestEdges(vs []vmath.Vec3) [][2]int {
	minDist := math.Inf(1)
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			minDist = math.Min(minDist, vmath.Dist(vs[i], vs[j]))
		}
	}
	var edges [][2]int
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if vmath.Dist(vs[i], vs[j]) <= minDist*(1+1e-6) {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges
}
