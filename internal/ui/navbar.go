package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/zen-garden/internal/config"
)

const (
	navItemWidth = 96
	navItemGap   = 8
	brand        = "Zen Garden"
)

// NavBar is the row of page links along the top of the window. The underline
// under the active link slides between items.
type NavBar struct {
	width  int
	links  []*Button
	active int
	slide  *Spring
}

func NewNavBar(width int, labels []string) *NavBar {
	n := &NavBar{width: width}
	x := width - len(labels)*(navItemWidth+navItemGap)
	for _, l := range labels {
		n.links = append(n.links, NewButton(l, x, 6, navItemWidth, config.NavHeight-12))
		x += navItemWidth + navItemGap
	}
	n.slide = NewSpring(float64(n.underlineX(0)), 8, 0.8)
	n.SetActive(0)
	n.slide.Snap(float64(n.underlineX(0)))
	return n
}

func (n *NavBar) Active() int { return n.active }

func (n *NavBar) SetActive(i int) {
	if i < 0 || i >= len(n.links) {
		return
	}
	n.active = i
	for j, b := range n.links {
		b.Selected = j == i
	}
	n.slide.SetTarget(float64(n.underlineX(i)))
}

func (n *NavBar) underlineX(i int) int {
	if len(n.links) == 0 {
		return 0
	}
	return n.links[i].X
}

// UnderlineX is the current x of the sliding underline.
func (n *NavBar) UnderlineX() float64 { return n.slide.Value() }

// Update returns the index of a clicked link, or -1.
func (n *NavBar) Update(in Input) int {
	n.slide.Update()
	chosen := -1
	for i, b := range n.links {
		if b.Update(in) {
			chosen = i
		}
	}
	return chosen
}

func (n *NavBar) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(n.width), config.NavHeight, Panel, false)
	vector.StrokeLine(screen, 0, config.NavHeight, float32(n.width), config.NavHeight, 1, Border, false)
	ebitenutil.DebugPrintAt(screen, "(o) "+brand, 16, (config.NavHeight-LineHeight)/2)

	for _, b := range n.links {
		b.Draw(screen)
	}
	ux := float32(n.slide.Value())
	vector.StrokeLine(screen, ux, config.NavHeight-4, ux+navItemWidth, config.NavHeight-4, 2, Cyan, false)
}
