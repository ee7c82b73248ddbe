package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/zen-garden/internal/config"
	"github.com/iburimskiy/zen-garden/internal/quotes"
	"github.com/iburimskiy/zen-garden/internal/vmath"
)

// Projector maps a world point to the screen
type Projector interface {
	Project(p vmath.Vec3) (x, y, depth float64, ok bool)
}

const (
	overlayWrap = 40
	overlayFade = 0.4 // seconds
)

// QuoteOverlay shows the latest quote next to the object that produced it,
// for a fixed time after each Present
type QuoteOverlay struct {
	quote    quotes.Quote
	at       vmath.Vec3
	left     float64
	duration float64
}

func NewQuoteOverlay() *QuoteOverlay {
	return &QuoteOverlay{duration: config.OverlayDuration.Seconds()}
}

// Present replaces whatever is showing and restarts the display time.
func (o *QuoteOverlay) Present(q quotes.Quote, pos vmath.Vec3) {
	o.quote = q
	o.at = pos
	o.left = o.duration
}

func (o *QuoteOverlay) Update(dt float64) {
	if o.left > 0 {
		o.left -= dt
	}
}

func (o *QuoteOverlay) Visible() bool       { return o.left > 0 }
func (o *QuoteOverlay) Quote() quotes.Quote { return o.quote }
func (o *QuoteOverlay) Hide()               { o.left = 0 }

func (o *QuoteOverlay) alpha() float64 {
	shown := o.duration - o.left
	return Clamp01(min(shown, o.left) / overlayFade)
}

func (o *QuoteOverlay) Draw(screen *ebiten.Image, proj Projector) {
	if !o.Visible() {
		return
	}
	lines := Wrap("\""+o.quote.Text+"\"", overlayWrap)
	lines = append(lines, "", "- "+o.quote.Author+"  ["+o.quote.Category+"]")

	w := overlayWrap*CharWidth + 24
	h := len(lines)*LineHeight + 20
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	x, y := (sw-w)/2, sh/3
	if px, py, _, ok := proj.Project(o.at); ok {
		x, y = int(px)+24, int(py)-h/2
	}
	x = clampInt(x, 8, sw-w-8)
	y = clampInt(y, config.NavHeight+8, sh-config.FooterHeight-h-8)

	a := o.alpha()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), Fade(Panel, a), false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, Fade(Cyan, a), false)
	if a < 0.5 {
		return
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x+12, y+10+i*LineHeight)
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
