package bouncer

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// colorFade cross-fades a shape's rendered pen and fill colors from their
// previous values to the newly assigned palette colors. The shape's logical
// colors are already final while the fade runs; only what is painted lags.
type colorFade struct {
	tweens [8]*gween.Tween
	pen    Color
	fill   Color
	Done   bool
}

// newColorFade creates a fade over duration seconds using fn. A nil fn
// means ease.Linear.
func newColorFade(fromPen, toPen, fromFill, toFill Color, duration float32, fn ease.TweenFunc) *colorFade {
	if fn == nil {
		fn = ease.Linear
	}
	f := &colorFade{pen: fromPen, fill: fromFill}
	from := [8]float64{fromPen.R, fromPen.G, fromPen.B, fromPen.A, fromFill.R, fromFill.G, fromFill.B, fromFill.A}
	to := [8]float64{toPen.R, toPen.G, toPen.B, toPen.A, toFill.R, toFill.G, toFill.B, toFill.A}
	for i := range f.tweens {
		f.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	return f
}

// fields returns pointers to the eight color components in tween order.
func (f *colorFade) fields() [8]*float64 {
	return [8]*float64{
		&f.pen.R, &f.pen.G, &f.pen.B, &f.pen.A,
		&f.fill.R, &f.fill.G, &f.fill.B, &f.fill.A,
	}
}

// Update advances every component by dt seconds. Once all tweens finish,
// Done is set and the shape paints its logical colors again.
func (f *colorFade) Update(dt float32) {
	if f.Done {
		return
	}
	allDone := true
	fields := f.fields()
	for i, tw := range f.tweens {
		val, finished := tw.Update(dt)
		*fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	f.Done = allDone
}
