package audio

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"

	"github.com/iburimskiy/zen-garden/internal/vmath"
)

// ToneKey selects a chime's base frequency
type ToneKey int

const (
	ToneDefault ToneKey = iota
	ToneTetrahedron
	ToneIcosahedron
	ToneDodecahedron
	ToneSphere
	ToneOctahedron
)

// DefaultFrequency is used for any key missing from the table.
const DefaultFrequency = 528.0

// Solfeggio frequencies per crystal type
var chimeFrequencies = map[ToneKey]float64{
	ToneTetrahedron:  528,
	ToneIcosahedron:  639,
	ToneDodecahedron: 741,
	ToneSphere:       852,
	ToneOctahedron:   963,
}

// Frequency returns the base frequency for key.
func Frequency(key ToneKey) float64 {
	if f, ok := chimeFrequencies[key]; ok {
		return f
	}
	return DefaultFrequency
}

// Chime envelope
const (
	chimeAttack     = 20 * time.Millisecond
	chimeLength     = 1500 * time.Millisecond
	chimePeak       = 0.5
	harmonicRatio   = 2.0
	harmonicLength  = 1200 * time.Millisecond
	harmonicPeak    = 0.1
	envelopeFloor   = 0.01
	chimeMasterGain = 0.3
)

// ChimePlayer plays short spatialised tones
type ChimePlayer struct {
	out      Output
	listener Listener
	active   atomic.Int32
}

// NewChimePlayer creates a player on out.
func NewChimePlayer(out Output) *ChimePlayer {
	return &ChimePlayer{
		out:      out,
		listener: DefaultListener(),
	}
}

// SetListener moves the ear, usually to follow the camera.
func (p *ChimePlayer) SetListener(l Listener) {
	p.listener = l
}

func (p *ChimePlayer) Listener() Listener { return p.listener }

// Active is the number of chimes still sounding.
func (p *ChimePlayer) Active() int { return int(p.active.Load()) }

// PlayChime sounds the tone for key as if emitted at pos. The tone ends on its
// own once the envelope has decayed.
func (p *ChimePlayer) PlayChime(key ToneKey, pos vmath.Vec3) {
	if p.out.Suspended() {
		if err := p.out.Resume(); err != nil {
			return
		}
	}

	tone := chimeTone(Frequency(key), p.out.SampleRate())
	gain, pan := p.listener.Place(pos)

	placed := &effects.Pan{
		Streamer: &effects.Gain{Streamer: tone, Gain: gain*chimeMasterGain - 1},
		Pan:      pan,
	}

	p.active.Add(1)
	p.out.Play(beep.Seq(placed, beep.Callback(func() {
		p.active.Add(-1)
	})))
	log.Printf("[ChimePlayer] %.0f Hz at (%.2f, %.2f, %.2f) gain=%.2f pan=%.2f",
		Frequency(key), pos.X, pos.Y, pos.Z, gain, pan)
}

// chimeTone is the fundamental plus a quieter octave harmonic with a shorter decay.
func chimeTone(freq float64, rate beep.SampleRate) beep.Streamer {
	fundamental := newPluck(newSine(freq, rate), rate, chimeAttack, chimeLength, chimePeak, envelopeFloor)
	harmonic := newPluck(newSine(freq*harmonicRatio, rate), rate, chimeAttack, harmonicLength, harmonicPeak, envelopeFloor)
	return newMix(fundamental, harmonic)
}
