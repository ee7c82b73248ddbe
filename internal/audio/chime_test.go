package audio

import (
	"testing"
	"time"

	"github.com/iburimskiy/zen-garden/internal/vmath"
)

func TestFrequency(t *testing.T) {
	cases := []struct {
		key  ToneKey
		want float64
	}{
		{ToneTetrahedron, 528},
		{ToneIcosahedron, 639},
		{ToneDodecahedron, 741},
		{ToneSphere, 852},
		{ToneOctahedron, 963},
		{ToneDefault, 528},
		{ToneKey(99), 528},
	}
	for _, c := range cases {
		if got := Frequency(c.key); got != c.want {
			t.Errorf("Frequency(%d) = %v, want %v", c.key, got, c.want)
		}
	}
}

func TestPlayChimeEndsOnItsOwn(t *testing.T) {
	out := newFakeOutput()
	p := NewChimePlayer(out)

	p.PlayChime(ToneSphere, vmath.V3(1, 0, 0))
	if len(out.played) != 1 {
		t.Fatalf("played %d streamers, want 1", len(out.played))
	}
	if p.Active() != 1 {
		t.Fatalf("active = %d, want 1", p.Active())
	}

	n, peak := drain(out.played[0], out.rate.N(3*time.Second))
	if want := out.rate.N(1500 * time.Millisecond); n != want {
		t.Errorf("chime lasted %d samples, want %d", n, want)
	}
	if peak == 0 {
		t.Error("chime was silent")
	}
	if p.Active() != 0 {
		t.Errorf("active = %d after the chime ended", p.Active())
	}
}

func TestPlayChimeResumesSuspendedOutput(t *testing.T) {
	out := newFakeOutput()
	out.suspended = true
	p := NewChimePlayer(out)

	p.PlayChime(ToneOctahedron, vmath.V3(0, 0, 0))
	if out.resumes != 1 {
		t.Errorf("resumes = %d, want 1", out.resumes)
	}
	if len(out.played) != 1 {
		t.Errorf("played %d streamers after resume", len(out.played))
	}
}

func TestPlayChimeUnavailableIsNoop(t *testing.T) {
	out := newFakeOutput()
	out.suspended = true
	out.failResume = true
	p := NewChimePlayer(out)

	p.PlayChime(ToneSphere, vmath.V3(0, 0, 0))
	if len(out.played) != 0 || p.Active() != 0 {
		t.Errorf("chime played on an unavailable output")
	}
}

func TestChimeGainFollowsDistance(t *testing.T) {
	near, far := newFakeOutput(), newFakeOutput()
	l := Listener{Position: vmath.V3(0, 0, 0), Forward: vmath.V3(0, 0, -1)}

	pn := NewChimePlayer(near)
	pn.SetListener(l)
	pn.PlayChime(ToneSphere, vmath.V3(0, 0, -1))

	pf := NewChimePlayer(far)
	pf.SetListener(l)
	pf.PlayChime(ToneSphere, vmath.V3(0, 0, -8))

	_, peakNear := drain(near.played[0], near.rate.N(2*time.Second))
	_, peakFar := drain(far.played[0], far.rate.N(2*time.Second))
	if peakFar >= peakNear {
		t.Errorf("far chime peak %v not quieter than near %v", peakFar, peakNear)
	}
}
