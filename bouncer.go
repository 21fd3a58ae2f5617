package bouncer

import (
	"image/color"
	"math/rand/v2"

	"golang.org/x/image/colornames"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default background.
var ColorWhite = Color{1, 1, 1, 1}

// ColorFromRGBA converts an 8-bit straight-alpha color to a Color.
func ColorFromRGBA(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// RGBA implements color.Color. The returned components are premultiplied,
// as the interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

// toRGBA converts a Color to an 8-bit premultiplied color.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for vector and image calls.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Palette is an ordered list of colors that shapes are recolored from.
type Palette []Color

// DefaultPalette returns the 12-color palette used by the demo. A fresh slice
// is returned on every call.
func DefaultPalette() Palette {
	return Palette{
		ColorFromRGBA(colornames.Black),
		ColorFromRGBA(colornames.Lightgray),
		ColorFromRGBA(color.RGBA{R: 245, G: 105, B: 145, A: 255}), // light crimson
		ColorFromRGBA(colornames.Lightblue),
		ColorFromRGBA(colornames.Lightcoral),
		ColorFromRGBA(colornames.Lightcyan),
		ColorFromRGBA(colornames.Lightgreen),
		ColorFromRGBA(colornames.Lightyellow),
		ColorFromRGBA(color.RGBA{R: 177, G: 156, B: 217, A: 255}), // light pastel purple
		ColorFromRGBA(colornames.Lightsalmon),
		ColorFromRGBA(color.RGBA{R: 179, G: 139, B: 109, A: 255}), // light taupe
		ColorFromRGBA(colornames.Lightslategray),
	}
}

// Contains reports whether c is one of the palette entries.
func (p Palette) Contains(c Color) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Pick returns a uniformly random palette entry. Panics on an empty palette.
func (p Palette) Pick(rng *rand.Rand) Color {
	return p[rng.IntN(len(p))]
}

// Axis selects the horizontal or vertical component of a shape's motion.
type Axis uint8

const (
	AxisX Axis = iota // horizontal, bounded by the window width
	AxisY             // vertical, bounded by the window height
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}
