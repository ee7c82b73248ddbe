package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable labelled rectangle. A click is a press and release
// that both land inside it.
type Button struct {
	X, Y, W, H int
	Label      string
	Selected   bool
	Disabled   bool

	hovered bool
	pressed bool
}

func NewButton(label string, x, y, w, h int) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label}
}

func (b *Button) Hovered() bool { return b.hovered }

// Update tracks hover and press state and reports a completed click.
func (b *Button) Update(in Input) bool {
	b.hovered = !b.Disabled && in.Inside(b.X, b.Y, b.W, b.H)
	if b.hovered && in.Pressed {
		b.pressed = true
	}
	clicked := false
	if in.Released {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bg color.RGBA
	switch {
	case b.Disabled:
		bg = color.RGBA{R: 40, G: 44, B: 55, A: 200}
	case b.pressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case b.Selected:
		bg = color.RGBA{R: 90, G: 96, B: 200, A: 255}
	case b.hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bg = color.RGBA{R: 45, G: 55, B: 80, A: 230}
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)

	border := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	if b.Disabled {
		border = Border
	}
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, border, false)

	textX := b.X + (b.W-TextWidth(b.Label))/2
	textY := b.Y + (b.H-LineHeight)/2
	ebitenutil.DebugPrintAt(screen, b.Label, textX, textY)
}

// DrawPanel fills a framed rectangle in the site's panel colours.
func DrawPanel(screen *ebiten.Image, x, y, w, h int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), Panel, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, Border, false)
}
