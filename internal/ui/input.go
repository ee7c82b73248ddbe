package ui

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is one tick's worth of pointer and keyboard state
type Input struct {
	X, Y     int
	DX, DY   int // cursor movement since the previous tick
	Down     bool
	Pressed  bool // left button went down this tick
	Released bool // left button went up this tick
	Keys     []ebiten.Key
}

// KeyPressed reports whether k went down this tick.
func (in Input) KeyPressed(k ebiten.Key) bool {
	return slices.Contains(in.Keys, k)
}

// Inside reports whether the cursor is within the rectangle.
func (in Input) Inside(x, y, w, h int) bool {
	return in.X >= x && in.X <= x+w && in.Y >= y && in.Y <= y+h
}

// InputReader samples ebiten input once per Update
type InputReader struct {
	prevX, prevY int
	primed       bool
	keys         []ebiten.Key
}

func (r *InputReader) Read() Input {
	x, y := ebiten.CursorPosition()
	in := Input{
		X:        x,
		Y:        y,
		Down:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
	if r.primed {
		in.DX, in.DY = x-r.prevX, y-r.prevY
	}
	r.prevX, r.prevY, r.primed = x, y, true

	r.keys = inpututil.AppendJustPressedKeys(r.keys[:0])
	in.Keys = r.keys
	return in
}
