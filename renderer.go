package bouncer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer is the set of drawing primitives shapes are painted with.
// Coordinates are in pixels with the origin at the top-left and Y
// increasing downward.
type Renderer interface {
	// Clear fills the whole target with c.
	Clear(c Color)
	FillRect(x, y, width, height float64, c Color)
	StrokeRect(x, y, width, height, lineWidth float64, c Color)
	FillCircle(cx, cy, radius float64, c Color)
	StrokeCircle(cx, cy, radius, lineWidth float64, c Color)
}

// ScreenRenderer draws onto an Ebitengine image with the vector package.
type ScreenRenderer struct {
	Target *ebiten.Image

	// AntiAlias smooths edges of every primitive.
	AntiAlias bool
}

// NewScreenRenderer returns a ScreenRenderer targeting img with
// anti-aliasing enabled.
func NewScreenRenderer(img *ebiten.Image) *ScreenRenderer {
	return &ScreenRenderer{Target: img, AntiAlias: true}
}

func (r *ScreenRenderer) Clear(c Color) {
	r.Target.Fill(c.toRGBA())
}

func (r *ScreenRenderer) FillRect(x, y, width, height float64, c Color) {
	vector.DrawFilledRect(r.Target, float32(x), float32(y), float32(width), float32(height), c.toRGBA(), r.AntiAlias)
}

func (r *ScreenRenderer) StrokeRect(x, y, width, height, lineWidth float64, c Color) {
	vector.StrokeRect(r.Target, float32(x), float32(y), float32(width), float32(height), float32(lineWidth), c.toRGBA(), r.AntiAlias)
}

func (r *ScreenRenderer) FillCircle(cx, cy, radius float64, c Color) {
	vector.DrawFilledCircle(r.Target, float32(cx), float32(cy), float32(radius), c.toRGBA(), r.AntiAlias)
}

func (r *ScreenRenderer) StrokeCircle(cx, cy, radius, lineWidth float64, c Color) {
	vector.StrokeCircle(r.Target, float32(cx), float32(cy), float32(radius), float32(lineWidth), c.toRGBA(), r.AntiAlias)
}
