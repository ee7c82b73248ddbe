// Package breath implements the guided-breathing session on the Meditation page:
// a countdown and a four-phase breathing cycle that both run only while the
// session is running.
//
// Both schedules are driven by a single one-second ticker fed from Advance, so
// stopping the session is enough to stop everything; there are no timers to
// cancel and nothing can be armed twice.
package breath

import "fmt"

// Phase is a segment of the breathing cycle
type Phase int

const (
	Resting Phase = iota
	Inhale
	Hold
	Exhale
	Pause
)

// PhaseSeconds is the length of every phase
const PhaseSeconds = 4

func (p Phase) String() string {
	switch p {
	case Inhale:
		return "inhale"
	case Hold:
		return "hold"
	case Exhale:
		return "exhale"
	case Pause:
		return "pause"
	default:
		return "resting"
	}
}

// Instruction is the on-screen prompt for the phase.
func (p Phase) Instruction() string {
	switch p {
	case Inhale:
		return "Breathe In"
	case Hold:
		return "Hold"
	case Exhale:
		return "Breathe Out"
	case Pause:
		return "Pause"
	default:
		return "Breathe"
	}
}

// Scale is the target size of the breath circle for the phase.
func (p Phase) Scale() float64 {
	if p == Inhale || p == Hold {
		return 1.4
	}
	return 1.0
}

func (p Phase) next() Phase {
	switch p {
	case Inhale:
		return Hold
	case Hold:
		return Exhale
	case Exhale:
		return Pause
	default:
		return Inhale
	}
}

// State is the coarse session state shown by the controls
type State int

const (
	Ready State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "ready"
	}
}

// tickEpsilon absorbs float error when summing frame deltas (60 x 1/60 < 1).
const tickEpsilon = 1e-9

// Session is a breathing session. The zero value is not usable; use New.
type Session struct {
	duration  int
	remaining int
	running   bool
	phase     Phase

	phaseElapsed int     // whole seconds spent in the current phase
	carry        float64 // seconds accumulated toward the next tick
}

// New creates a ready session of durationSeconds.
func New(durationSeconds int) *Session {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	return &Session{
		duration:  durationSeconds,
		remaining: durationSeconds,
		phase:     Resting,
	}
}

// Start runs the session. The countdown resumes from the current remaining
// time; the phase cycle always restarts at Inhale. Starting a running or
// finished session does nothing.
func (s *Session) Start() {
	if s.running || s.remaining == 0 {
		return
	}
	s.running = true
	s.phase = Inhale
	s.phaseElapsed = 0
	s.carry = 0
}

// Pause stops the session, freezing remaining time and phase.
func (s *Session) Pause() {
	s.running = false
	s.carry = 0
}

// Toggle starts a stopped session or pauses a running one.
func (s *Session) Toggle() {
	if s.running {
		s.Pause()
		return
	}
	s.Start()
}

// Reset stops the session and restores the full duration.
func (s *Session) Reset() {
	s.running = false
	s.remaining = s.duration
	s.phase = Resting
	s.phaseElapsed = 0
	s.carry = 0
}

// SelectDuration sets a new session length and stops the session. The phase
// returns to Resting, the same as Reset.
func (s *Session) SelectDuration(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	s.duration = seconds
	s.Reset()
}

// Advance feeds dt seconds of wall time into the session.
func (s *Session) Advance(dt float64) {
	if !s.running || dt <= 0 {
		return
	}
	s.carry += dt
	for s.running && s.carry+tickEpsilon >= 1 {
		s.carry--
		s.tick()
	}
}

func (s *Session) tick() {
	s.remaining--
	s.phaseElapsed++
	if s.phaseElapsed >= PhaseSeconds {
		s.phaseElapsed = 0
		s.phase = s.phase.next()
	}
	if s.remaining <= 0 {
		s.remaining = 0
		s.running = false
		s.phase = Resting
		s.phaseElapsed = 0
		s.carry = 0
	}
}

func (s *Session) Duration() int  { return s.duration }
func (s *Session) Remaining() int { return s.remaining }
func (s *Session) Running() bool  { return s.running }
func (s *Session) Phase() Phase   { return s.phase }

// State derives the coarse state from the session fields.
func (s *Session) State() State {
	switch {
	case s.running:
		return Running
	case s.remaining == 0 && s.duration > 0:
		return Finished
	default:
		return Ready
	}
}

// PhaseProgress is how far through the current phase the session is, in [0, 1).
func (s *Session) PhaseProgress() float64 {
	if !s.running {
		return 0
	}
	p := (float64(s.phaseElapsed) + s.carry) / PhaseSeconds
	if p < 0 {
		return 0
	}
	if p >= 1 {
		return 0.999
	}
	return p
}

// Format renders remaining time as M:SS.
func (s *Session) Format() string {
	return FormatSeconds(s.remaining)
}

// FormatSeconds renders a second count as M:SS.
func FormatSeconds(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}
