package breath

import (
	"math/rand"
	"testing"
)

// advanceFrames feeds n frames of 1/60 s, the way the game loop does.
func advanceFrames(s *Session, n int) {
	for i := 0; i < n; i++ {
		s.Advance(1.0 / 60.0)
	}
}

func TestNewSessionIsReady(t *testing.T) {
	s := New(600)
	if s.Running() || s.Remaining() != 600 || s.Phase() != Resting || s.State() != Ready {
		t.Errorf("unexpected initial session %+v", s)
	}
}

func TestStartThenResetRestoresDuration(t *testing.T) {
	s := New(300)
	s.Start()
	s.Advance(5)
	s.Reset()
	if s.Remaining() != 300 || s.Running() {
		t.Errorf("after reset remaining=%d running=%v", s.Remaining(), s.Running())
	}
	if s.Phase() != Resting {
		t.Errorf("phase = %v, want resting", s.Phase())
	}
}

func TestFullSessionCompletes(t *testing.T) {
	s := New(300)
	s.SelectDuration(600)
	s.Start()
	for i := 0; i < 599; i++ {
		s.Advance(1)
	}
	if !s.Running() || s.Remaining() != 1 {
		t.Fatalf("at 599s running=%v remaining=%d", s.Running(), s.Remaining())
	}
	s.Advance(1)
	if s.Running() || s.Remaining() != 0 {
		t.Errorf("at 600s running=%v remaining=%d", s.Running(), s.Remaining())
	}
	if s.State() != Finished {
		t.Errorf("state = %v, want finished", s.State())
	}
}

func TestOneMinuteSessionWithFrameTicks(t *testing.T) {
	s := New(600)
	s.SelectDuration(60)
	s.Start()
	advanceFrames(s, 61*60)
	if s.Remaining() != 0 || s.Running() {
		t.Errorf("remaining=%d running=%v", s.Remaining(), s.Running())
	}
	if got := s.Format(); got != "0:00" {
		t.Errorf("Format = %q, want 0:00", got)
	}
}

func TestFrameTicksCountWholeSeconds(t *testing.T) {
	s := New(60)
	s.Start()
	advanceFrames(s, 10*60)
	if s.Remaining() != 50 {
		t.Errorf("remaining after 600 frames = %d, want 50", s.Remaining())
	}
}

func TestPhaseCycleOrderAndLength(t *testing.T) {
	s := New(600)
	s.Start()
	want := []Phase{Inhale, Hold, Exhale, Pause, Inhale, Hold, Exhale, Pause, Inhale}
	for i, phase := range want {
		for sec := 0; sec < PhaseSeconds; sec++ {
			if s.Phase() != phase {
				t.Fatalf("segment %d second %d: phase = %v, want %v", i, sec, s.Phase(), phase)
			}
			s.Advance(1)
		}
	}
}

func TestPauseFreezesAndResumeRestartsPhase(t *testing.T) {
	s := New(120)
	s.Start()
	s.Advance(9) // exhale, 1s in
	if s.Phase() != Exhale {
		t.Fatalf("phase = %v, want exhale", s.Phase())
	}
	s.Pause()
	s.Advance(30)
	if s.Remaining() != 111 || s.Phase() != Exhale {
		t.Errorf("paused session moved: remaining=%d phase=%v", s.Remaining(), s.Phase())
	}
	s.Start()
	if s.Phase() != Inhale {
		t.Errorf("resume phase = %v, want inhale", s.Phase())
	}
	s.Advance(1)
	if s.Remaining() != 110 {
		t.Errorf("resume remaining = %d, want 110", s.Remaining())
	}
}

func TestSelectDurationWhileRunningStops(t *testing.T) {
	s := New(600)
	s.Start()
	s.Advance(6)
	s.SelectDuration(300)
	if s.Running() || s.Remaining() != 300 || s.Duration() != 300 || s.Phase() != Resting {
		t.Errorf("after select: running=%v remaining=%d duration=%d phase=%v",
			s.Running(), s.Remaining(), s.Duration(), s.Phase())
	}
	s.Advance(10)
	if s.Remaining() != 300 {
		t.Error("stopped session must not count down")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	s := New(60)
	s.Start()
	s.Advance(5)
	s.Start()
	if s.Phase() != Hold {
		t.Errorf("second Start restarted the cycle: phase = %v", s.Phase())
	}
}

func TestStartFinishedSessionDoesNothing(t *testing.T) {
	s := New(2)
	s.Start()
	s.Advance(5)
	s.Start()
	if s.Running() {
		t.Error("finished session should not restart without reset")
	}
}

func TestRemainingStaysInRangeUnderRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := New(90)
	for i := 0; i < 5000; i++ {
		switch rng.Intn(5) {
		case 0:
			s.Start()
		case 1:
			s.Pause()
		case 2:
			s.Reset()
		case 3:
			s.Toggle()
		default:
			s.Advance(rng.Float64() * 7)
		}
		if s.Remaining() < 0 || s.Remaining() > s.Duration() {
			t.Fatalf("step %d: remaining %d outside [0, %d]", i, s.Remaining(), s.Duration())
		}
		if !s.Running() && s.Phase() != Resting && s.State() == Finished {
			t.Fatalf("step %d: finished session still in phase %v", i, s.Phase())
		}
	}
}

func TestPhaseScaleAndInstruction(t *testing.T) {
	tests := []struct {
		phase Phase
		scale float64
		text  string
	}{
		{Inhale, 1.4, "Breathe In"},
		{Hold, 1.4, "Hold"},
		{Exhale, 1.0, "Breathe Out"},
		{Pause, 1.0, "Pause"},
		{Resting, 1.0, "Breathe"},
	}
	for _, tt := range tests {
		if tt.phase.Scale() != tt.scale || tt.phase.Instruction() != tt.text {
			t.Errorf("%v: scale=%.1f text=%q", tt.phase, tt.phase.Scale(), tt.phase.Instruction())
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := map[int]string{0: "0:00", 59: "0:59", 60: "1:00", 600: "10:00", 1805: "30:05", -3: "0:00"}
	for in, want := range tests {
		if got := FormatSeconds(in); got != want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", in, got, want)
		}
	}
}
