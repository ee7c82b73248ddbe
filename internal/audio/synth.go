package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// sine is an endless sine oscillator
type sine struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

func newSine(freq float64, rate beep.SampleRate) *sine {
	return &sine{freq: freq, rate: rate}
}

func (o *sine) Stream(samples [][2]float64) (n int, ok bool) {
	inc := o.freq / float64(o.rate)
	for i := range samples {
		v := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = v
		samples[i][1] = v
		o.phase += inc
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *sine) Err() error { return nil }

// pluck shapes a source with a linear attack to peak followed by an
// exponential decay that reaches floor at the end, then stops the stream.
type pluck struct {
	src    beep.Streamer
	pos    int
	attack int
	total  int
	peak   float64
	floor  float64
}

func newPluck(src beep.Streamer, rate beep.SampleRate, attack, length time.Duration, peak, floor float64) *pluck {
	total := rate.N(length)
	att := rate.N(attack)
	if att > total {
		att = total
	}
	return &pluck{
		src:    src,
		attack: att,
		total:  total,
		peak:   peak,
		floor:  floor,
	}
}

// gainAt is the envelope value at sample position pos.
func (e *pluck) gainAt(pos int) float64 {
	if pos < e.attack {
		return e.peak * float64(pos) / float64(e.attack)
	}
	decay := e.total - e.attack
	if decay <= 0 {
		return e.floor
	}
	frac := float64(pos-e.attack) / float64(decay)
	return e.peak * math.Pow(e.floor/e.peak, frac)
}

func (e *pluck) Stream(samples [][2]float64) (n int, ok bool) {
	left := e.total - e.pos
	if left <= 0 {
		return 0, false
	}
	if len(samples) > left {
		samples = samples[:left]
	}
	n, ok = e.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gainAt(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok || n > 0
}

func (e *pluck) Err() error { return e.src.Err() }

// fader ramps its gain linearly toward a target. Closing it ends the stream,
// which releases everything below it from the mixer. Fields are shared with
// the audio goroutine; mutate them inside Output.Do.
type fader struct {
	src       beep.Streamer
	rate      beep.SampleRate
	gain      float64
	target    float64
	step      float64
	remaining int
	closed    bool
}

func newFader(src beep.Streamer, rate beep.SampleRate) *fader {
	return &fader{src: src, rate: rate}
}

// rampTo moves the gain to target over d.
func (f *fader) rampTo(target float64, d time.Duration) {
	f.target = target
	n := f.rate.N(d)
	if n <= 0 {
		f.gain = target
		f.remaining = 0
		return
	}
	f.step = (target - f.gain) / float64(n)
	f.remaining = n
}

func (f *fader) close() { f.closed = true }

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	if f.closed {
		return 0, false
	}
	n, ok = f.src.Stream(samples)
	for i := 0; i < n; i++ {
		if f.remaining > 0 {
			f.gain += f.step
			f.remaining--
			if f.remaining == 0 {
				f.gain = f.target
			}
		}
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
	}
	return n, ok
}

func (f *fader) Err() error { return f.src.Err() }

// droneVoice is a sine whose amplitude breathes with a slow LFO:
// gain(t) = base + depth*sin(2*pi*lfo*t).
type droneVoice struct {
	osc      *sine
	lfoFreq  float64
	lfoPhase float64
	base     float64
	depth    float64
	rate     beep.SampleRate
}

func newDroneVoice(freq, lfoFreq, base, depth float64, rate beep.SampleRate) *droneVoice {
	return &droneVoice{
		osc:     newSine(freq, rate),
		lfoFreq: lfoFreq,
		base:    base,
		depth:   depth,
		rate:    rate,
	}
}

func (v *droneVoice) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = v.osc.Stream(samples)
	inc := v.lfoFreq / float64(v.rate)
	for i := 0; i < n; i++ {
		g := v.base + v.depth*math.Sin(2*math.Pi*v.lfoPhase)
		samples[i][0] *= g
		samples[i][1] *= g
		v.lfoPhase += inc
		v.lfoPhase -= math.Floor(v.lfoPhase)
	}
	return n, ok
}

func (v *droneVoice) Err() error { return nil }

// detune shifts freq by cents (1/100 of a semitone).
func detune(freq, cents float64) float64 {
	return freq * math.Pow(2, cents/1200)
}

// mix sums finite sources and ends when the longest one does.
type mix struct {
	srcs []beep.Streamer
	tmp  [][2]float64
}

func newMix(srcs ...beep.Streamer) *mix {
	return &mix{srcs: srcs}
}

func (m *mix) Stream(samples [][2]float64) (n int, ok bool) {
	if len(m.tmp) < len(samples) {
		m.tmp = make([][2]float64, len(samples))
	}
	for i := range samples {
		samples[i] = [2]float64{}
	}
	live := m.srcs[:0]
	for _, s := range m.srcs {
		sn, sok := s.Stream(m.tmp[:len(samples)])
		for i := 0; i < sn; i++ {
			samples[i][0] += m.tmp[i][0]
			samples[i][1] += m.tmp[i][1]
		}
		if sn > n {
			n = sn
		}
		if sok {
			live = append(live, s)
		}
	}
	m.srcs = live
	return n, len(live) > 0 || n > 0
}

func (m *mix) Err() error { return nil }
