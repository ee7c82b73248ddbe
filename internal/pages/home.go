package pages

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/zen-garden/internal/audio"
	"github.com/iburimskiy/zen-garden/internal/config"
	"github.com/iburimskiy/zen-garden/internal/scene"
	"github.com/iburimskiy/zen-garden/internal/trigger"
	"github.com/iburimskiy/zen-garden/internal/ui"
)

// Home is the landing page: the garden scene under the hero title
type Home struct {
	deps    Deps
	garden  *scene.Garden
	trigger *trigger.Trigger
	overlay *ui.QuoteOverlay
	title   *ui.Decrypt

	gravityBtn *ui.Button
	goldenBtn  *ui.Button
}

func NewHome(d Deps) (*Home, error) {
	v := d.View
	garden, err := scene.NewGarden(d.Layout, float64(v.Min.X), float64(v.Min.Y), float64(v.Dx()), float64(v.Dy()), d.Rng)
	if err != nil {
		return nil, err
	}

	h := &Home{
		deps:    d,
		garden:  garden,
		overlay: ui.NewQuoteOverlay(),
		title:   ui.NewDecrypt(d.Copy.Home.Title, d.Rng),
	}
	h.trigger = trigger.New(d.Chimes, d.Quotes, h.overlay, config.HoverCooldown)
	garden.SetHandler(h.trigger)

	st := d.Settings.Settings()
	garden.SetAntiGravity(st.AntiGravity)
	garden.SetGoldenHour(st.GoldenHour)

	by := v.Max.Y - config.ButtonHeight - 12
	h.gravityBtn = ui.NewButton("", v.Min.X+12, by, config.ButtonWidth+20, config.ButtonHeight)
	h.goldenBtn = ui.NewButton("", v.Min.X+12+config.ButtonWidth+32, by, config.ButtonWidth+20, config.ButtonHeight)
	h.refreshLabels()

	log.Printf("[Home] Mounted with %d objects", len(garden.Objects()))
	return h, nil
}

func (h *Home) Garden() *scene.Garden     { return h.garden }
func (h *Home) Overlay() *ui.QuoteOverlay { return h.overlay }
func (h *Home) Trigger() *trigger.Trigger { return h.trigger }

func (h *Home) refreshLabels() {
	h.gravityBtn.Label = onOff("Anti-gravity", h.garden.AntiGravity())
	h.goldenBtn.Label = onOff("Golden hour", h.garden.GoldenHour())
	h.gravityBtn.Selected = h.garden.AntiGravity()
	h.goldenBtn.Selected = h.garden.GoldenHour()
}

func onOff(label string, on bool) string {
	if on {
		return label + ": on"
	}
	return label + ": off"
}

// ToggleAntiGravity flips gravity for the stones and petals.
func (h *Home) ToggleAntiGravity() {
	on := !h.garden.AntiGravity()
	h.garden.SetAntiGravity(on)
	h.deps.Settings.SetAntiGravity(on)
	h.refreshLabels()
}

// ToggleGoldenHour switches the sand palette.
func (h *Home) ToggleGoldenHour() {
	on := !h.garden.GoldenHour()
	h.garden.SetGoldenHour(on)
	h.deps.Settings.SetGoldenHour(on)
	h.refreshLabels()
}

func (h *Home) Update(dt float64, in ui.Input) {
	if h.gravityBtn.Update(in) || in.KeyPressed(ebiten.KeyG) {
		h.ToggleAntiGravity()
	}
	if h.goldenBtn.Update(in) || in.KeyPressed(ebiten.KeyH) {
		h.ToggleGoldenHour()
	}

	// keep the buttons from grabbing the camera
	if h.gravityBtn.Hovered() || h.goldenBtn.Hovered() {
		in.Down = false
	}
	h.garden.Update(dt, in)

	cam := h.garden.Camera
	h.deps.Chimes.SetListener(audio.Listener{Position: cam.Position(), Forward: cam.Forward()})

	h.title.Update(dt)
	h.overlay.Update(dt)
}

func (h *Home) Draw(screen *ebiten.Image) {
	h.garden.Draw(screen)

	v := h.deps.View
	cx := v.Min.X + v.Dx()/2
	ui.DrawCentered(screen, h.title.Text(), cx, v.Min.Y+24)
	ui.DrawCentered(screen, h.deps.Copy.Home.Subtitle, cx, v.Min.Y+24+ui.LineHeight+6)
	ui.DrawCentered(screen, h.deps.Copy.Home.Hint, cx, v.Max.Y-config.ButtonHeight-12-ui.LineHeight-8)

	h.gravityBtn.Draw(screen)
	h.goldenBtn.Draw(screen)
	h.overlay.Draw(screen, h.garden.Camera)
}

// Unmount silences the hover bindings. Chimes already playing ring out.
func (h *Home) Unmount() {
	h.garden.SetHandler(nil)
	h.overlay.Hide()
	log.Printf("[Home] Unmounted")
}
