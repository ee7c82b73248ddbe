package pages

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/zen-garden/internal/config"
	"github.com/iburimskiy/zen-garden/internal/content"
	"github.com/iburimskiy/zen-garden/internal/ui"
)

const (
	galleryCols = 4
	cardGap     = 16
	cardHeight  = 120
)

// category glyphs for the cards, the debug font has no emoji
var categoryMarks = map[string]string{
	"Statues":        "[=]",
	"Gardens":        "[~]",
	"Nature":         "[*]",
	"Architecture":   "[^]",
	"Sacred Objects": "[o]",
}

func categoryMark(c string) string {
	if m, ok := categoryMarks[c]; ok {
		return m
	}
	return "[ ]"
}

// Gallery is a grid of cards; clicking one opens its detail panel
type Gallery struct {
	deps     Deps
	items    []content.GalleryItem
	cards    []*ui.Button
	selected int
	closeBtn *ui.Button
}

func NewGallery(d Deps) *Gallery {
	g := &Gallery{deps: d, items: d.Copy.Gallery.Items, selected: -1}

	v := d.View
	w := (v.Dx() - 2*48 - (galleryCols-1)*cardGap) / galleryCols
	top := v.Min.Y + 90
	for i := range g.items {
		col, row := i%galleryCols, i/galleryCols
		x := v.Min.X + 48 + col*(w+cardGap)
		y := top + row*(cardHeight+cardGap)
		g.cards = append(g.cards, ui.NewButton("", x, y, w, cardHeight))
	}

	px, py, pw, ph := g.panel()
	g.closeBtn = ui.NewButton("Close", px+pw-config.ButtonWidth-12, py+ph-44, config.ButtonWidth, 32)
	return g
}

// panel is the detail panel rectangle, centred in the view.
func (g *Gallery) panel() (x, y, w, h int) {
	v := g.deps.View
	w, h = 420, 200
	return v.Min.X + (v.Dx()-w)/2, v.Min.Y + (v.Dy()-h)/2, w, h
}

// Selected is the index of the open item, or -1.
func (g *Gallery) Selected() int { return g.selected }

func (g *Gallery) Open(i int) {
	if i >= 0 && i < len(g.items) {
		g.selected = i
	}
}

func (g *Gallery) Close() { g.selected = -1 }

func (g *Gallery) Update(dt float64, in ui.Input) {
	if g.selected >= 0 {
		if g.closeBtn.Update(in) {
			g.Close()
		}
		return
	}
	for i, c := range g.cards {
		if c.Update(in) {
			g.Open(i)
		}
	}
}

func (g *Gallery) Draw(screen *ebiten.Image) {
	drawHeader(screen, g.deps.View, g.deps.Copy.Gallery.Header)

	for i, c := range g.cards {
		item := g.items[i]
		border := ui.Border
		if c.Hovered() {
			border = ui.Cyan
		}
		vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), ui.Panel, false)
		vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), 1, border, false)
		printAt(screen, categoryMark(item.Category)+" "+item.Category, c.X+10, c.Y+10)
		printAt(screen, item.Title, c.X+10, c.Y+10+ui.LineHeight+8)
		ui.DrawLines(screen, ui.Wrap(item.Description, (c.W-20)/ui.CharWidth), c.X+10, c.Y+10+2*ui.LineHeight+16)
	}

	if g.selected < 0 {
		return
	}
	v := g.deps.View
	vector.DrawFilledRect(screen, float32(v.Min.X), float32(v.Min.Y), float32(v.Dx()), float32(v.Dy()), ui.Fade(ui.Background, 0.85), false)

	item := g.items[g.selected]
	px, py, pw, ph := g.panel()
	ui.DrawPanel(screen, px, py, pw, ph)
	printAt(screen, categoryMark(item.Category)+" "+item.Category, px+20, py+20)
	printAt(screen, item.Title, px+20, py+20+ui.LineHeight+8)
	ui.DrawLines(screen, ui.Wrap(item.Description, (pw-40)/ui.CharWidth), px+20, py+20+2*ui.LineHeight+20)
	g.closeBtn.Draw(screen)
}
