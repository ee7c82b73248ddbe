package pages

import (
	"math/rand"
	"testing"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/zen-garden/internal/audio"
	"github.com/iburimskiy/zen-garden/internal/config"
	"github.com/iburimskiy/zen-garden/internal/content"
	"github.com/iburimskiy/zen-garden/internal/quotes"
	"github.com/iburimskiy/zen-garden/internal/ui"
)

type silentOutput struct{ played int }

func (o *silentOutput) Play(beep.Streamer)          { o.played++ }
func (o *silentOutput) Do(f func())                 { f() }
func (o *silentOutput) Resume() error               { return nil }
func (o *silentOutput) Suspended() bool             { return false }
func (o *silentOutput) SampleRate() beep.SampleRate { return 44100 }

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	txt, err := content.LoadPages()
	if err != nil {
		t.Fatalf("LoadPages: %v", err)
	}
	layout, err := content.LoadScene()
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	qs, err := quotes.Load(rng)
	if err != nil {
		t.Fatalf("quotes.Load: %v", err)
	}
	return Deps{
		Copy:     txt,
		Layout:   layout,
		Quotes:   qs,
		Chimes:   audio.NewChimePlayer(&silentOutput{}),
		Settings: config.NewSettingsStore(nil),
		Rng:      rng,
		View:     ContentArea(),
	}
}

// click presses and releases the mouse over the centre of b.
func click(page interface{ Update(float64, ui.Input) }, b *ui.Button) {
	x, y := b.X+b.W/2, b.Y+b.H/2
	page.Update(0, ui.Input{X: x, Y: y, Pressed: true, Down: true})
	page.Update(0, ui.Input{X: x, Y: y, Released: true})
}

func TestHomeTogglesPersist(t *testing.T) {
	d := newTestDeps(t)
	h, err := NewHome(d)
	if err != nil {
		t.Fatalf("NewHome: %v", err)
	}

	h.ToggleAntiGravity()
	if !h.Garden().AntiGravity() || !d.Settings.Settings().AntiGravity {
		t.Error("anti-gravity should be on in the garden and in settings")
	}
	h.ToggleGoldenHour()
	if !h.Garden().GoldenHour() || !d.Settings.Settings().GoldenHour {
		t.Error("golden hour should be on in the garden and in settings")
	}

	click(h, h.gravityBtn)
	if h.Garden().AntiGravity() {
		t.Error("clicking the button should turn anti-gravity off")
	}
}

func TestHomeRestoresSettings(t *testing.T) {
	d := newTestDeps(t)
	d.Settings.SetGoldenHour(true)
	h, err := NewHome(d)
	if err != nil {
		t.Fatalf("NewHome: %v", err)
	}
	if !h.Garden().GoldenHour() {
		t.Error("saved golden hour should be applied on mount")
	}
	if h.Garden().AntiGravity() {
		t.Error("anti-gravity should default to off")
	}
}

func TestHomeUnmountDetachesTrigger(t *testing.T) {
	h, err := NewHome(newTestDeps(t))
	if err != nil {
		t.Fatalf("NewHome: %v", err)
	}
	h.Unmount()
	for i := 0; i < 60; i++ {
		h.Update(1.0/60, ui.Input{X: 512, Y: 300})
	}
	if h.Trigger().Fired() != 0 {
		t.Errorf("fired %d times after unmount", h.Trigger().Fired())
	}
}

func TestMeditationDurationSelection(t *testing.T) {
	d := newTestDeps(t)
	m := NewMeditation(d)
	if got := m.Session().Duration(); got != config.DefaultMinutes*60 {
		t.Fatalf("Duration() = %d, want %d", got, config.DefaultMinutes*60)
	}

	m.SelectMinutes(5)
	if got := m.Session().Remaining(); got != 300 {
		t.Errorf("Remaining() = %d, want 300", got)
	}
	if got := d.Settings.Settings().MeditationMins; got != 5 {
		t.Errorf("saved minutes = %d, want 5", got)
	}

	m.Session().Start()
	m.SelectMinutes(20)
	if got := m.Session().Duration(); got != 300 {
		t.Errorf("selection while running changed duration to %d", got)
	}
}

func TestMeditationKeys(t *testing.T) {
	m := NewMeditation(newTestDeps(t))

	m.Update(0, ui.Input{Keys: []ebiten.Key{ebiten.KeySpace}})
	if !m.Session().Running() {
		t.Fatal("space should start the session")
	}
	if m.startBtn.Label != "Pause" {
		t.Errorf("start label = %q, want Pause", m.startBtn.Label)
	}
	for _, b := range m.durations {
		if !b.Disabled {
			t.Error("duration buttons should be disabled while running")
			break
		}
	}

	for i := 0; i < 3*60; i++ {
		m.Update(1.0/60, ui.Input{})
	}
	if got := m.Session().Remaining(); got != config.DefaultMinutes*60-3 {
		t.Errorf("Remaining() = %d, want %d", got, config.DefaultMinutes*60-3)
	}
	if m.CircleScale() <= 1 {
		t.Errorf("circle should grow while inhaling, scale %.3f", m.CircleScale())
	}

	m.Update(0, ui.Input{Keys: []ebiten.Key{ebiten.KeyR}})
	if m.Session().Running() || m.Session().Remaining() != m.Session().Duration() {
		t.Error("R should reset the session")
	}
}

func TestGalleryOpenClose(t *testing.T) {
	g := NewGallery(newTestDeps(t))
	if len(g.cards) == 0 {
		t.Fatal("gallery has no cards")
	}

	g.Open(len(g.items))
	if g.Selected() != -1 {
		t.Error("out of range Open should be ignored")
	}

	click(g, g.cards[2])
	if g.Selected() != 2 {
		t.Fatalf("Selected() = %d, want 2", g.Selected())
	}

	// cards are inert behind the panel
	click(g, g.cards[0])
	if g.Selected() != 2 {
		t.Errorf("Selected() = %d after clicking behind the panel", g.Selected())
	}

	click(g, g.closeBtn)
	if g.Selected() != -1 {
		t.Error("close button should close the panel")
	}
}
