package ui

import (
	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/zen-garden/internal/config"
)

// Spring eases a value toward a target, one Update per game tick
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewSpring returns a spring at rest on start. frequency is the angular
// frequency, damping the damping ratio (1 is critical).
func NewSpring(start, frequency, damping float64) *Spring {
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(config.TicksPerSec), frequency, damping),
		pos:    start,
		target: start,
	}
}

func (s *Spring) SetTarget(v float64) { s.target = v }
func (s *Spring) Target() float64     { return s.target }
func (s *Spring) Value() float64      { return s.pos }

// Snap jumps to v and stops.
func (s *Spring) Snap(v float64) {
	s.pos, s.vel, s.target = v, 0, v
}

func (s *Spring) Update() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return s.pos
}
