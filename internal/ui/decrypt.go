package ui

import (
	"math/rand"
	"strings"
	"time"
)

const (
	decryptGlyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@#$%&*"
	decryptStep   = 50 * time.Millisecond
	stepsPerChar  = 3
)

// Decrypt reveals a string left to right, scrambling the part not yet shown
type Decrypt struct {
	target []rune
	steps  int
	acc    time.Duration
	rng    *rand.Rand
	text   string
}

func NewDecrypt(s string, rng *rand.Rand) *Decrypt {
	d := &Decrypt{target: []rune(s), rng: rng}
	d.text = d.render()
	return d
}

func (d *Decrypt) Done() bool { return d.steps >= stepsPerChar*len(d.target) }

// Text is the current frame of the animation.
func (d *Decrypt) Text() string { return d.text }

func (d *Decrypt) Update(dt float64) {
	if d.Done() {
		return
	}
	d.acc += time.Duration(dt * float64(time.Second))
	changed := false
	for d.acc >= decryptStep && !d.Done() {
		d.acc -= decryptStep
		d.steps++
		changed = true
	}
	if changed {
		d.text = d.render()
	}
}

func (d *Decrypt) render() string {
	var b strings.Builder
	for i, r := range d.target {
		switch {
		case i*stepsPerChar < d.steps:
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune(' ')
		default:
			b.WriteByte(decryptGlyphs[d.rng.Intn(len(decryptGlyphs))])
		}
	}
	return b.String()
}
