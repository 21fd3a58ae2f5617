package bouncer

import (
	"errors"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/tanema/gween/ease"
)

// Defaults applied by NewDisplay to zero Config fields.
const (
	DefaultWidth           = 600
	DefaultHeight          = 800
	DefaultRecolorInterval = 1.0
	DefaultTPS             = 60
)

// ErrTerminated is returned from Display.Update when a script has asked the
// run loop to stop.
var ErrTerminated = errors.New("bouncer: terminated")

// Config holds the immutable settings of a Display.
type Config struct {
	// Width and Height are the bounds shapes reflect against.
	Width, Height int

	// Palette is the set of colors recolors pick from. It is copied.
	Palette Palette

	// RecolorInterval is the time between recolors in seconds.
	RecolorInterval float64

	// Background is the clear color. The zero Color means white.
	Background Color

	// FadeDuration, when positive, cross-fades each recolor over that many
	// seconds using FadeEase (ease.Linear when nil).
	FadeDuration float32
	FadeEase     ease.TweenFunc

	// Seed fixes the recolor RNG. Zero seeds from the runtime.
	Seed uint64
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette()
	} else {
		c.Palette = slices.Clone(c.Palette)
	}
	if c.RecolorInterval == 0 {
		c.RecolorInterval = DefaultRecolorInterval
	}
	if c.Background == (Color{}) {
		c.Background = ColorWhite
	}
	return c
}

// Display owns the shapes of a run. It advances them every tick, recolors
// them on a fixed interval, and paints them in insertion order.
//
// A Display is not safe for concurrent use; the host loop calls Update and
// Draw from a single goroutine.
type Display struct {
	cfg    Config
	shapes []Shape
	rng    *rand.Rand
	timer  *IntervalTimer
	paused bool
	debug  bool
	frame  uint64
	stats  frameStats
	script *Script

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewDisplay creates an empty display. Zero Config fields take the package
// defaults.
func NewDisplay(cfg Config) *Display {
	cfg = cfg.withDefaults()
	seed1, seed2 := cfg.Seed, cfg.Seed
	if cfg.Seed == 0 {
		seed1, seed2 = rand.Uint64(), rand.Uint64()
	}
	d := &Display{
		cfg:           cfg,
		rng:           rand.New(rand.NewPCG(seed1, seed2)),
		ScreenshotDir: "screenshots",
	}
	d.timer = NewIntervalTimer(cfg.RecolorInterval, d.Recolor)
	return d
}

// Config returns the display's settings with defaults applied. The returned
// palette must not be mutated.
func (d *Display) Config() Config {
	return d.cfg
}

// Append adds a shape on top of the existing ones. Duplicates are allowed.
func (d *Display) Append(s Shape) {
	d.shapes = append(d.shapes, s)
}

// Shapes returns the shapes in paint order. The returned slice MUST NOT be
// mutated.
func (d *Display) Shapes() []Shape {
	return d.shapes
}

// Frame returns the number of Update calls so far.
func (d *Display) Frame() uint64 {
	return d.frame
}

// Pause stops motion, recoloring, and fades until Resume. Scripts keep
// stepping while paused.
func (d *Display) Pause() { d.paused = true }

// Resume undoes Pause.
func (d *Display) Resume() { d.paused = false }

// Paused reports whether the display is paused.
func (d *Display) Paused() bool { return d.paused }

// Update runs one tick: the attached script step, then (unless paused)
// motion, the recolor timer, and fades. dt is the tick length in seconds.
func (d *Display) Update(dt float64) error {
	d.frame++
	if d.script != nil {
		if err := d.script.step(d); err != nil {
			return err
		}
	}
	if !d.paused {
		d.Advance()
		d.timer.Update(dt)
		d.updateFades(float32(dt))
	}
	d.flushScreenshots()
	return nil
}

// Advance moves every shape one step: each axis proposes its current
// coordinate plus its speed and the shape reflects at the display bounds.
func (d *Display) Advance() {
	for _, s := range d.shapes {
		b := s.body()
		if b.Move(AxisX, b.X+b.SpeedX, d.cfg.Width) {
			d.stats.flips++
		}
		if b.Move(AxisY, b.Y+b.SpeedY, d.cfg.Height) {
			d.stats.flips++
		}
	}
}

// Recolor gives every shape a new pen and fill color, each an independent
// uniform pick from the palette.
func (d *Display) Recolor() {
	for _, s := range d.shapes {
		b := s.body()
		fromPen, fromFill := b.renderColors()
		b.SetPenColor(d.cfg.Palette.Pick(d.rng)).SetFillColor(d.cfg.Palette.Pick(d.rng))
		if d.cfg.FadeDuration > 0 {
			b.fade = newColorFade(fromPen, b.PenColor, fromFill, b.FillColor, d.cfg.FadeDuration, d.cfg.FadeEase)
		} else {
			b.fade = nil
		}
	}
	d.stats.recolors++
	Logger().Debug("recolor", "frame", d.frame, "shapes", len(d.shapes))
}

func (d *Display) updateFades(dt float32) {
	for _, s := range d.shapes {
		b := s.body()
		if b.fade == nil {
			continue
		}
		b.fade.Update(dt)
		if b.fade.Done {
			b.fade = nil
		}
	}
}

// Draw clears r to the background and paints every shape in insertion
// order, so later shapes cover earlier ones.
func (d *Display) Draw(r Renderer) {
	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}

	d.paint(r)

	if d.debug {
		d.stats.drawTime = time.Since(t0)
		d.stats.shapeCount = len(d.shapes)
		d.debugLog(d.stats)
	}
	d.stats = frameStats{}
}

func (d *Display) paint(r Renderer) {
	r.Clear(d.cfg.Background)
	for _, s := range d.shapes {
		s.Draw(r)
	}
}

// SetDebugMode enables or disables per-frame stats logging at debug level.
func (d *Display) SetDebugMode(enabled bool) {
	d.debug = enabled
}
