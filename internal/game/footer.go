package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/zen-garden/internal/config"
	"github.com/iburimskiy/zen-garden/internal/ui"
)

const meterWidth = 160

// footer is the strip along the bottom of every page with the ambient
// sound controls and an output level meter
type footer struct {
	y         int
	droneBtn  *ui.Button
	chimesBtn *ui.Button
}

func newFooter() *footer {
	y := config.WindowHeight - config.FooterHeight
	by := y + (config.FooterHeight-config.ButtonHeight)/2
	return &footer{
		y:         y,
		droneBtn:  ui.NewButton("", 20, by, config.ButtonWidth+60, config.ButtonHeight),
		chimesBtn: ui.NewButton("", 20+config.ButtonWidth+72, by, config.ButtonWidth+20, config.ButtonHeight),
	}
}

type footerState struct {
	droneOn    bool
	droneTime  time.Duration
	windChimes bool
	level      float64
	volume     float64
	hue        float64
}

func (f *footer) refresh(s footerState) {
	if s.droneOn {
		f.droneBtn.Label = "Stop Ambient Sound"
	} else {
		f.droneBtn.Label = "Play Ambient Sound"
	}
	f.droneBtn.Selected = s.droneOn
	if s.windChimes {
		f.chimesBtn.Label = "Wind chimes: on"
	} else {
		f.chimesBtn.Label = "Wind chimes: off"
	}
	f.chimesBtn.Selected = s.windChimes
}

func (f *footer) draw(screen *ebiten.Image, s footerState) {
	w := float32(config.WindowWidth)
	vector.DrawFilledRect(screen, 0, float32(f.y), w, config.FooterHeight, color.RGBA{R: 20, G: 25, B: 35, A: 230}, false)
	vector.StrokeLine(screen, 0, float32(f.y), w, float32(f.y), 1, ui.Border, false)

	f.droneBtn.Draw(screen)
	f.chimesBtn.Draw(screen)

	tx := f.chimesBtn.X + f.chimesBtn.W + 16
	ty := f.y + (config.FooterHeight-ui.LineHeight)/2
	if s.droneOn {
		ebitenutil.DebugPrintAt(screen, "Meditation Active "+formatDuration(s.droneTime), tx, ty)
	}

	// level meter
	mx := config.WindowWidth - meterWidth - 20
	my := f.y + 16
	mh := config.FooterHeight - 32
	vector.DrawFilledRect(screen, float32(mx), float32(my), meterWidth, float32(mh), ui.Panel, false)
	vector.StrokeRect(screen, float32(mx), float32(my), meterWidth, float32(mh), 1, ui.Border, false)
	if fill := ui.Clamp01(s.level*3) * meterWidth; fill > 0 {
		c := ui.HSV(s.hue, 0.8, 0.9)
		c.A = uint8(100 + 155*ui.Clamp01(s.level*3))
		vector.DrawFilledRect(screen, float32(mx), float32(my), float32(fill), float32(mh), c, false)
	}
	label := fmt.Sprintf("Vol %3.0f%%", s.volume*100)
	ebitenutil.DebugPrintAt(screen, label, mx-ui.TextWidth(label)-8, ty)
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
