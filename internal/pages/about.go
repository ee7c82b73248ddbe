package pages

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/zen-garden/internal/ui"
)

type About struct {
	deps Deps
}

func NewAbout(d Deps) *About { return &About{deps: d} }

func (a *About) Update(dt float64, in ui.Input) {}

func (a *About) Draw(screen *ebiten.Image) {
	v := a.deps.View
	txt := a.deps.Copy.About
	y := drawHeader(screen, v, txt.Header)

	x := v.Min.X + 48
	width := (v.Dx() - 96) / ui.CharWidth
	for _, p := range txt.Mission {
		y = ui.DrawLines(screen, ui.Wrap(p, width), x, y) + 8
	}

	n := len(txt.Principles)
	if n > 0 {
		gap := 12
		cw := (v.Dx() - 96 - (n-1)*gap) / n
		ch := 96
		for i, p := range txt.Principles {
			cx := x + i*(cw+gap)
			ui.DrawPanel(screen, cx, y, cw, ch)
			printAt(screen, p.Title, cx+10, y+10)
			ui.DrawLines(screen, ui.Wrap(p.Description, (cw-20)/ui.CharWidth), cx+10, y+10+ui.LineHeight+6)
		}
		y += ch + 20
	}

	cx := v.Min.X + v.Dx()/2
	for _, l := range ui.Wrap("\""+txt.Closing.Text+"\"", width-20) {
		ui.DrawCentered(screen, l, cx, y)
		y += ui.LineHeight
	}
	ui.DrawCentered(screen, "- "+txt.Closing.Author, cx, y+4)
}
