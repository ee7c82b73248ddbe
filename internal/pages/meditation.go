package pages

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/zen-garden/internal/breath"
	"github.com/iburimskiy/zen-garden/internal/config"
	"github.com/iburimskiy/zen-garden/internal/ui"
)

const circleRadius = 70.0

// Meditation runs a breathing session with a guide circle that grows on the
// inhale and shrinks on the exhale
type Meditation struct {
	deps    Deps
	session *breath.Session
	minutes int
	circle  *ui.Spring

	durations []*ui.Button
	startBtn  *ui.Button
	resetBtn  *ui.Button
}

func NewMeditation(d Deps) *Meditation {
	mins := d.Settings.Settings().MeditationMins
	m := &Meditation{
		deps:    d,
		session: breath.New(mins * 60),
		minutes: mins,
		circle:  ui.NewSpring(1, 2, 1),
	}

	v := d.View
	bw := 72
	total := len(config.MeditationMinutes)*(bw+8) - 8
	x := v.Min.X + (v.Dx()-total)/2
	y := v.Max.Y - 2*config.ButtonHeight - 36
	for _, n := range config.MeditationMinutes {
		m.durations = append(m.durations, ui.NewButton(fmt.Sprintf("%d min", n), x, y, bw, config.ButtonHeight))
		x += bw + 8
	}
	cx := v.Min.X + v.Dx()/2
	y += config.ButtonHeight + 12
	m.startBtn = ui.NewButton("", cx-config.ButtonWidth-6-40, y, config.ButtonWidth+40, config.ButtonHeight)
	m.resetBtn = ui.NewButton("Reset", cx+6, y, config.ButtonWidth, config.ButtonHeight)
	m.refresh()
	return m
}

func (m *Meditation) Session() *breath.Session { return m.session }

// CircleScale is the current drawn scale of the breathing circle.
func (m *Meditation) CircleScale() float64 { return m.circle.Value() }

// SelectMinutes picks a new session length. It is ignored while a session runs.
func (m *Meditation) SelectMinutes(n int) {
	if m.session.Running() {
		return
	}
	m.minutes = n
	m.session.SelectDuration(n * 60)
	m.deps.Settings.SetMeditationMinutes(n)
	log.Printf("[Meditation] Duration %d min", n)
}

func (m *Meditation) refresh() {
	running := m.session.Running()
	for i, b := range m.durations {
		b.Selected = config.MeditationMinutes[i] == m.minutes
		b.Disabled = running
	}
	if running {
		m.startBtn.Label = "Pause"
	} else {
		m.startBtn.Label = "Begin Meditation"
	}
}

func (m *Meditation) Update(dt float64, in ui.Input) {
	for i, b := range m.durations {
		if b.Update(in) {
			m.SelectMinutes(config.MeditationMinutes[i])
		}
	}
	if m.startBtn.Update(in) || in.KeyPressed(ebiten.KeySpace) {
		m.session.Toggle()
	}
	if m.resetBtn.Update(in) || in.KeyPressed(ebiten.KeyR) {
		m.session.Reset()
	}

	m.session.Advance(dt)
	m.circle.SetTarget(m.session.Phase().Scale())
	m.circle.Update()
	m.refresh()
}

func (m *Meditation) Draw(screen *ebiten.Image) {
	v := m.deps.View
	y := drawHeader(screen, v, m.deps.Copy.Meditation.Header)

	cx := float32(v.Min.X + v.Dx()/2)
	cy := float32(y) + circleRadius*1.4 + 8
	r := float32(circleRadius * m.circle.Value())

	glow := ui.Fade(ui.Gold, 0.25)
	vector.DrawFilledCircle(screen, cx, cy, r+10, glow, true)
	vector.DrawFilledCircle(screen, cx, cy, r, color.RGBA{R: 40, G: 36, B: 20, A: 230}, true)
	vector.StrokeCircle(screen, cx, cy, r, 2, ui.Gold, true)

	// phase progress around the rim
	if m.session.Running() {
		sweep := 2 * math.Pi * m.session.PhaseProgress()
		const segs = 48
		for i := 0; i < segs && float64(i)/segs*2*math.Pi < sweep; i++ {
			a0 := float64(i)/segs*2*math.Pi - math.Pi/2
			a1 := math.Min(float64(i+1)/segs*2*math.Pi, sweep) - math.Pi/2
			rr := float64(r + 6)
			vector.StrokeLine(screen,
				cx+float32(rr*math.Cos(a0)), cy+float32(rr*math.Sin(a0)),
				cx+float32(rr*math.Cos(a1)), cy+float32(rr*math.Sin(a1)),
				2, ui.Cyan, true)
		}
	}

	ui.DrawCentered(screen, m.session.Phase().Instruction(), int(cx), int(cy)-ui.LineHeight/2)
	ui.DrawCentered(screen, m.session.Format(), int(cx), int(cy+circleRadius*1.4)+16)
	ui.DrawCentered(screen, "Select Duration", int(cx), m.durations[0].Y-ui.LineHeight-4)

	for _, b := range m.durations {
		b.Draw(screen)
	}
	m.startBtn.Draw(screen)
	m.resetBtn.Draw(screen)

	tx := v.Min.X + 24
	ty := v.Min.Y + 110
	printAt(screen, "Tips", tx, ty)
	for i, tip := range m.deps.Copy.Meditation.Tips {
		for j, line := range ui.Wrap(tip, 30) {
			prefix := "  "
			if j == 0 {
				prefix = "- "
			}
			ty += ui.LineHeight
			printAt(screen, prefix+line, tx, ty)
		}
		if i < len(m.deps.Copy.Meditation.Tips)-1 {
			ty += 4
		}
	}
	if m.session.State() == breath.Finished {
		ui.DrawCentered(screen, "Session complete. Rest a moment.", int(cx), int(cy+circleRadius*1.4)+16+ui.LineHeight)
	}
}

func (m *Meditation) Unmount() {
	log.Printf("[Meditation] Unmounted at %s (%s)", m.session.Format(), m.session.State())
}
