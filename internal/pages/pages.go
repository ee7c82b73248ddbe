// Package pages implements the routed screens of the site. Each page is
// built when it is navigated to and dropped when the user leaves it.
package pages

import (
	"image"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/zen-garden/internal/audio"
	"github.com/iburimskiy/zen-garden/internal/config"
	"github.com/iburimskiy/zen-garden/internal/content"
	"github.com/iburimskiy/zen-garden/internal/quotes"
	"github.com/iburimskiy/zen-garden/internal/ui"
)

// Names and labels of the pages in navigation order
var (
	Names  = []string{"home", "gallery", "meditation", "about", "contact"}
	Labels = []string{"Home", "Gallery", "Meditation", "About", "Contact"}
)

// Deps are the shared components handed to every page
type Deps struct {
	Copy     *content.Pages
	Layout   *content.SceneLayout
	Quotes   *quotes.Store
	Chimes   *audio.ChimePlayer
	Settings *config.SettingsStore
	Rng      *rand.Rand

	// Area between the nav bar and the footer
	View image.Rectangle
}

// ContentArea is the default page viewport for the configured window.
func ContentArea() image.Rectangle {
	return image.Rect(0, config.NavHeight, config.WindowWidth, config.WindowHeight-config.FooterHeight)
}

// drawHeader prints a page title and subtitle centred at the top of view and
// returns the y below them.
func drawHeader(screen *ebiten.Image, view image.Rectangle, h content.Header) int {
	cx := view.Min.X + view.Dx()/2
	y := view.Min.Y + 20
	ui.DrawCentered(screen, h.Title, cx, y)
	ui.DrawCentered(screen, h.Subtitle, cx, y+ui.LineHeight+4)
	return y + 2*ui.LineHeight + 20
}

func printAt(screen *ebiten.Image, s string, x, y int) {
	ebitenutil.DebugPrintAt(screen, s, x, y)
}
