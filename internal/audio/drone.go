package audio

import (
	"log"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

// DroneConfig shapes the ambient drone
type DroneConfig struct {
	Frequencies  []float64
	DetuneCents  float64 // max detune either way, per voice
	VoiceGain    float64 // total voice gain, split across voices
	LFOMin       float64 // Hz
	LFOMax       float64 // Hz
	LFODepth     float64
	TargetGain   float64
	FadeIn       time.Duration
	FadeOut      time.Duration
	WindChimes   bool
	WindInterval time.Duration
}

// DefaultDroneConfig returns the meditative drone used by the site.
func DefaultDroneConfig() DroneConfig {
	return DroneConfig{
		Frequencies:  []float64{128.43, 192.64, 256.87, 385.31},
		DetuneCents:  5,
		VoiceGain:    0.1,
		LFOMin:       0.1,
		LFOMax:       0.2,
		LFODepth:     0.02,
		TargetGain:   0.4,
		FadeIn:       3 * time.Second,
		FadeOut:      2 * time.Second,
		WindChimes:   true,
		WindInterval: 4 * time.Second,
	}
}

// High pentatonic notes for the wind chime bursts
var windNotes = []float64{1046.50, 1174.66, 1318.51, 1567.98, 1760.00, 2093.00}

const (
	windAttack = 10 * time.Millisecond
	windLength = 1200 * time.Millisecond
	windPeak   = 0.15
	windFloor  = 0.001
	windMaxPan = 0.8

	// absorbs float drift when dt sums land on a boundary
	epsilon = 1e-9
)

// DronePlayer runs at most one ambient drone at a time. Its timing is driven
// by Update on the game clock.
type DronePlayer struct {
	out Output
	cfg DroneConfig
	rng *rand.Rand

	playing  bool
	stopping bool
	stopLeft float64 // seconds
	windAcc  float64 // seconds

	master *fader
	voices []*droneVoice
	bursts int
}

// NewDronePlayer creates a stopped drone on out. A nil rng uses a random seed.
func NewDronePlayer(out Output, cfg DroneConfig, rng *rand.Rand) *DronePlayer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &DronePlayer{out: out, cfg: cfg, rng: rng}
}

// Active reports whether the drone is playing and not fading out.
func (d *DronePlayer) Active() bool { return d.playing && !d.stopping }

// Voices is the number of live drone oscillators.
func (d *DronePlayer) Voices() int { return len(d.voices) }

// Bursts is the number of wind chimes played since creation.
func (d *DronePlayer) Bursts() int { return d.bursts }

// SetWindChimes enables or disables the recurring chime bursts.
func (d *DronePlayer) SetWindChimes(on bool) {
	d.cfg.WindChimes = on
	if !on {
		d.windAcc = 0
	}
}

// Toggle starts the drone when it is off or fading out, and stops it otherwise.
func (d *DronePlayer) Toggle() {
	if d.Active() {
		d.Stop()
		return
	}
	d.Start()
}

// Start fades the drone in. Starting an active drone does nothing; starting
// one that is fading out ramps the same voices back up.
func (d *DronePlayer) Start() {
	if d.Active() {
		return
	}
	if d.stopping {
		d.stopping = false
		d.stopLeft = 0
		d.windAcc = 0
		d.out.Do(func() { d.master.rampTo(d.cfg.TargetGain, d.cfg.FadeIn) })
		log.Printf("[DronePlayer] Fade-out cancelled, resuming")
		return
	}

	if d.out.Suspended() {
		if err := d.out.Resume(); err != nil {
			log.Printf("[DronePlayer] Not starting: %v", err)
			return
		}
	}

	rate := d.out.SampleRate()
	n := len(d.cfg.Frequencies)
	voices := make([]*droneVoice, 0, n)
	streams := make([]beep.Streamer, 0, n)
	for _, f := range d.cfg.Frequencies {
		cents := (d.rng.Float64()*2 - 1) * d.cfg.DetuneCents
		lfo := d.cfg.LFOMin + d.rng.Float64()*(d.cfg.LFOMax-d.cfg.LFOMin)
		v := newDroneVoice(detune(f, cents), lfo, d.cfg.VoiceGain/float64(n), d.cfg.LFODepth, rate)
		voices = append(voices, v)
		streams = append(streams, v)
	}

	master := newFader(beep.Mix(streams...), rate)
	master.rampTo(d.cfg.TargetGain, d.cfg.FadeIn)

	d.voices = voices
	d.master = master
	d.playing = true
	d.windAcc = 0
	d.out.Play(master)
	log.Printf("[DronePlayer] Started %d voices", n)
}

// Stop fades the drone out; the voices are released once the fade completes.
// Wind chimes stop immediately.
func (d *DronePlayer) Stop() {
	if !d.playing || d.stopping {
		return
	}
	d.stopping = true
	d.stopLeft = d.cfg.FadeOut.Seconds()
	d.windAcc = 0
	d.out.Do(func() { d.master.rampTo(0, d.cfg.FadeOut) })
	log.Printf("[DronePlayer] Fading out")
}

// Update advances the drone's schedules by dt seconds.
func (d *DronePlayer) Update(dt float64) {
	if !d.playing {
		return
	}
	if d.stopping {
		d.stopLeft -= dt
		if d.stopLeft <= epsilon {
			d.release()
		}
		return
	}
	interval := d.cfg.WindInterval.Seconds()
	if !d.cfg.WindChimes || interval <= 0 {
		return
	}
	d.windAcc += dt
	for d.windAcc+epsilon >= interval {
		d.windAcc -= interval
		d.playWindChime()
	}
}

// Close releases the drone at once, without fading.
func (d *DronePlayer) Close() {
	if d.playing {
		d.release()
	}
}

func (d *DronePlayer) release() {
	master := d.master
	d.out.Do(func() { master.close() })
	d.master = nil
	d.voices = nil
	d.playing = false
	d.stopping = false
	d.stopLeft = 0
	d.windAcc = 0
	log.Printf("[DronePlayer] Stopped")
}

func (d *DronePlayer) playWindChime() {
	rate := d.out.SampleRate()
	freq := windNotes[d.rng.Intn(len(windNotes))]
	pan := (d.rng.Float64()*2 - 1) * windMaxPan
	burst := newPluck(newSine(freq, rate), rate, windAttack, windLength, windPeak, windFloor)
	d.out.Play(&effects.Pan{Streamer: burst, Pan: pan})
	d.bursts++
}
