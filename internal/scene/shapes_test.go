package scene

import (
	"math"
	"testing"
)

func TestPolyhedronCounts(t *testing.T) {
	cases := []struct {
		kind            Kind
		vertices, edges int
	}{
		{Tetrahedron, 4, 6},
		{Octahedron, 6, 12},
		{Icosahedron, 12, 30},
		{Dodecahedron, 20, 30},
	}
	for _, c := range cases {
		m := c.kind.Mesh()
		if len(m.Vertices) != c.vertices || len(m.Edges) != c.edges {
			t.Errorf("%v: %d vertices, %d edges; want %d, %d",
				c.kind, len(m.Vertices), len(m.Edges), c.vertices, c.edges)
		}
	}
}

func TestMeshesAreWellFormed(t *testing.T) {
	for _, k := range Kinds() {
		m := k.Mesh()
		if len(m.Vertices) == 0 || len(m.Edges) == 0 {
			t.Errorf("%v: empty mesh", k)
			continue
		}
		for _, e := range m.Edges {
			if e[0] == e[1] || e[0] < 0 || e[1] < 0 || e[0] >= len(m.Vertices) || e[1] >= len(m.Vertices) {
				t.Errorf("%v: bad edge %v", k, e)
			}
		}
		if r := m.Radius(); r <= 0 || r > 0.5 {
			t.Errorf("%v: radius %v outside (0, 0.5]", k, r)
		}
	}
}

func TestMeshesAreStable(t *testing.T) {
	for _, k := range Kinds() {
		a, b := k.Mesh(), k.Mesh()
		if len(a.Vertices) != len(b.Vertices) {
			t.Fatalf("%v: vertex count changed between calls", k)
		}
		for i := range a.Vertices {
			if a.Vertices[i] != b.Vertices[i] {
				t.Fatalf("%v: vertex %d differs between calls", k, i)
			}
		}
	}
}

func TestRegularSolidsAreRegular(t *testing.T) {
	for _, k := range []Kind{Tetrahedron, Octahedron, Icosahedron, Dodecahedron} {
		m := k.Mesh()
		r := m.Radius()
		for i, v := range m.Vertices {
			if math.Abs(v.Len()-r) > 1e-9 {
				t.Errorf("%v: vertex %d at %v, want %v", k, i, v.Len(), r)
			}
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("cube"); err == nil {
		t.Error("ParseKind accepted an unknown kind")
	}
	if s := Kind(42).String(); s != "Kind(42)" {
		t.Errorf("String of unknown kind = %q", s)
	}
}

func TestUnknownKindGetsSphere(t *testing.T) {
	if got, want := len(Kind(42).Mesh().Vertices), len(Sphere.Mesh().Vertices); got != want {
		t.Errorf("unknown kind mesh has %d vertices, want sphere's %d", got, want)
	}
}
