package ui

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Site palette
var (
	Background = color.RGBA{R: 10, G: 12, B: 20, A: 255}
	Panel      = color.RGBA{R: 20, G: 25, B: 35, A: 200}
	Border     = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	Text       = color.RGBA{R: 230, G: 230, B: 235, A: 255}
	TextDim    = color.RGBA{R: 150, G: 155, B: 170, A: 255}
	Accent     = color.RGBA{R: 0x64, G: 0x6c, B: 0xff, A: 255}
	Cyan       = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Gold       = color.RGBA{R: 0xda, G: 0xa5, B: 0x20, A: 255}
	Jade       = color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 255}
	Danger     = color.RGBA{R: 230, G: 90, B: 90, A: 255}
)

// HSV converts hue (0-360), saturation and value (0-1) to an opaque colour.
func HSV(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{R: uint8((r + m) * 255), G: uint8((g + m) * 255), B: uint8((b + m) * 255), A: 255}
}

// Lerp blends a toward b by t in [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = Clamp01(t)
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Fade scales c by a in [0, 1], keeping it premultiplied.
func Fade(c color.RGBA, a float64) color.RGBA {
	a = Clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// Hex parses "#rrggbb". Malformed input gives opaque white.
func Hex(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
