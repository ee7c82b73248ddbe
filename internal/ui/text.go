package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug font cell size
const (
	CharWidth  = 6
	LineHeight = 16
)

func TextWidth(s string) int { return len([]rune(s)) * CharWidth }

// DrawCentered prints s centred on cx.
func DrawCentered(screen *ebiten.Image, s string, cx, y int) {
	ebitenutil.DebugPrintAt(screen, s, cx-TextWidth(s)/2, y)
}

// DrawLines prints lines top to bottom and returns the y below the last one.
func DrawLines(screen *ebiten.Image, lines []string, x, y int) int {
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x, y)
		y += LineHeight
	}
	return y
}

// Wrap breaks s into lines of at most width characters on word boundaries.
// Words longer than width get a line of their own.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
