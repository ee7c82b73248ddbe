package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"x quarter turn", V3(0, 1, 0).RotateX(math.Pi / 2), V3(0, 0, 1)},
		{"y quarter turn", V3(1, 0, 0).RotateY(math.Pi / 2), V3(0, 0, -1)},
		{"z quarter turn", V3(1, 0, 0).RotateZ(math.Pi / 2), V3(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !near(tt.got, tt.want) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %+v", got)
	}
	if l := V3(3, 4, 0).Normalize().Len(); math.Abs(l-1) > eps {
		t.Errorf("unit length = %f", l)
	}
}

func TestCross(t *testing.T) {
	if got := V3(1, 0, 0).Cross(V3(0, 1, 0)); !near(got, V3(0, 0, 1)) {
		t.Errorf("x cross y = %+v", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-2, -1, 1) != -1 || Clamp(2, -1, 1) != 1 || Clamp(0.5, -1, 1) != 0.5 {
		t.Error("Clamp out of range")
	}
}
