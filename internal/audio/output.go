// Package audio synthesises the garden's sounds: spatial chimes for the
// decorative objects and the ambient drone. Both players share one Output.
package audio

import (
	"errors"
	"log"
	"math"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/zen-garden/internal/config"
)

// ErrUnavailable is returned by Resume when no sound device could be opened
// or sound is muted.
var ErrUnavailable = errors.New("audio output unavailable")

// Output is the single sound output shared by the players
type Output interface {
	// Play adds a streamer to the output mix; it is dropped when it ends.
	Play(s beep.Streamer)
	// Do runs f while the audio goroutine is locked out.
	Do(f func())
	// Resume opens the device on first use and unpauses the mix.
	Resume() error
	Suspended() bool
	SampleRate() beep.SampleRate
}

// Speaker is the process-wide Output backed by the beep speaker. The device is
// opened lazily, once, on the first Resume.
type Speaker struct {
	rate  beep.SampleRate
	muted bool

	once      sync.Once
	available bool
	warned    bool

	mixer  *beep.Mixer
	volume *effects.Volume
	tap    *levelTap
	ctrl   *beep.Ctrl
}

// NewSpeaker prepares the output. Nothing touches the device until Resume.
func NewSpeaker(sampleRate int, muted bool) *Speaker {
	s := &Speaker{
		rate:  beep.SampleRate(sampleRate),
		muted: muted,
		mixer: &beep.Mixer{},
	}
	s.volume = &effects.Volume{Streamer: s.mixer, Base: 2}
	s.tap = newLevelTap(s.volume, config.VisualRingSize)
	s.ctrl = &beep.Ctrl{Streamer: s.tap, Paused: true}
	return s
}

func (s *Speaker) open() {
	if s.muted {
		log.Printf("[Speaker] Muted, sound disabled")
		return
	}
	if err := speaker.Init(s.rate, s.rate.N(config.SpeakerBuffer)); err != nil {
		log.Printf("[Speaker] Warning: failed to open audio device: %v (sound disabled)", err)
		return
	}
	speaker.Play(s.ctrl)
	s.available = true
	log.Printf("[Speaker] Opened at %d Hz", s.rate)
}

// Resume opens the device if needed and unpauses the mix.
func (s *Speaker) Resume() error {
	s.once.Do(s.open)
	if !s.available {
		return ErrUnavailable
	}
	speaker.Lock()
	s.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Suspend pauses the mix without dropping any streamer.
func (s *Speaker) Suspend() {
	if !s.available {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
}

func (s *Speaker) Suspended() bool {
	if !s.available {
		return true
	}
	speaker.Lock()
	defer speaker.Unlock()
	return s.ctrl.Paused
}

func (s *Speaker) SampleRate() beep.SampleRate { return s.rate }

func (s *Speaker) Play(st beep.Streamer) {
	if !s.available {
		if !s.warned {
			log.Printf("[Speaker] Dropping sound, output unavailable")
			s.warned = true
		}
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Speaker) Do(f func()) {
	if !s.available {
		f()
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	f()
}

// SetVolume sets the master volume, v in [0, 1].
func (s *Speaker) SetVolume(v float64) {
	s.Do(func() {
		if v <= 0 {
			s.volume.Silent = true
			return
		}
		if v > 1 {
			v = 1
		}
		s.volume.Silent = false
		s.volume.Volume = math.Log2(v)
	})
}

// Level is the RMS of roughly the last 50 ms of output.
func (s *Speaker) Level() float64 {
	if !s.available {
		return 0
	}
	return s.tap.level(s.rate.N(config.SpeakerBuffer))
}

// Close drops every playing streamer and pauses the mix.
func (s *Speaker) Close() {
	if !s.available {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	s.ctrl.Paused = true
	speaker.Unlock()
	log.Printf("[Speaker] Closed")
}
