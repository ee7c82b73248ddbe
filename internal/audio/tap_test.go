package audio

import (
	"math"
	"testing"

	"github.com/faiface/beep"
)

func constant(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func TestLevelTapEmpty(t *testing.T) {
	tap := newLevelTap(constant(0.5), 64)
	if got := tap.level(32); got != 0 {
		t.Errorf("level before streaming = %v", got)
	}
}

func TestLevelTapRMS(t *testing.T) {
	tap := newLevelTap(constant(0.5), 64)
	tap.Stream(make([][2]float64, 100))

	if got := tap.level(32); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("level = %v, want 0.5", got)
	}
	if got := tap.level(1000); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("level over more than the ring = %v, want 0.5", got)
	}
}
