// Package trigger turns hover edges on garden objects into a chime and a
// quote, at most once per object per cooldown window.
package trigger

import (
	"log"
	"time"

	"github.com/iburimskiy/zen-garden/internal/audio"
	"github.com/iburimskiy/zen-garden/internal/quotes"
	"github.com/iburimskiy/zen-garden/internal/scene"
	"github.com/iburimskiy/zen-garden/internal/vmath"
)

type Chimer interface {
	PlayChime(key audio.ToneKey, pos vmath.Vec3)
}

type QuotePicker interface {
	Random() quotes.Quote
}

// Presenter shows a quote near a world position. It owns its own display timing.
type Presenter interface {
	Present(q quotes.Quote, pos vmath.Vec3)
}

// ToneFor maps a shape to its chime. Leaf and wheel shapes use the default tone.
func ToneFor(k scene.Kind) audio.ToneKey {
	switch k {
	case scene.Tetrahedron:
		return audio.ToneTetrahedron
	case scene.Icosahedron:
		return audio.ToneIcosahedron
	case scene.Dodecahedron:
		return audio.ToneDodecahedron
	case scene.Sphere:
		return audio.ToneSphere
	case scene.Octahedron:
		return audio.ToneOctahedron
	default:
		return audio.ToneDefault
	}
}

// Trigger implements scene.HoverHandler
type Trigger struct {
	chimes    Chimer
	quotes    QuotePicker
	presenter Presenter
	cooldown  time.Duration
	now       func() time.Time

	lastFired map[int]time.Time
	hovering  map[int]bool
	fired     int
}

func New(c Chimer, q QuotePicker, p Presenter, cooldown time.Duration) *Trigger {
	return &Trigger{
		chimes:    c,
		quotes:    q,
		presenter: p,
		cooldown:  cooldown,
		now:       time.Now,
		lastFired: make(map[int]time.Time),
		hovering:  make(map[int]bool),
	}
}

// SetClock replaces the time source.
func (t *Trigger) SetClock(now func() time.Time) { t.now = now }

// Fired counts how many hovers produced a chime and quote.
func (t *Trigger) Fired() int { return t.fired }

// OnHoverEnter fires unless the object is already hovered or fired less than
// one cooldown ago.
func (t *Trigger) OnHoverEnter(id int, kind scene.Kind, pos vmath.Vec3) {
	if t.hovering[id] {
		return
	}
	t.hovering[id] = true

	now := t.now()
	if last, ok := t.lastFired[id]; ok && now.Sub(last) < t.cooldown {
		log.Printf("[Trigger] Object %d cooling down (%v left)", id, t.cooldown-now.Sub(last))
		return
	}
	t.lastFired[id] = now
	t.fired++

	t.chimes.PlayChime(ToneFor(kind), pos)
	q := t.quotes.Random()
	t.presenter.Present(q, pos)
	log.Printf("[Trigger] %v %d: %q", kind, id, q.Text)
}

func (t *Trigger) OnHoverExit(id int) {
	delete(t.hovering, id)
}

var _ scene.HoverHandler = (*Trigger)(nil)
