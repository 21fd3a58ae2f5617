package bouncer

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Canvas is a Renderer backed by a gg software context. It needs no window
// or GPU, which makes it the target for snapshots, screenshots, and tests.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas returns a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

func toGG(c Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c *Canvas) Clear(col Color) {
	c.dc.ClearWithColor(toGG(col))
}

func (c *Canvas) FillRect(x, y, width, height float64, col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawRectangle(x, y, width, height)
	c.check("fill rect", c.dc.Fill())
}

func (c *Canvas) StrokeRect(x, y, width, height, lineWidth float64, col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(lineWidth)
	c.dc.DrawRectangle(x, y, width, height)
	c.check("stroke rect", c.dc.Stroke())
}

func (c *Canvas) FillCircle(cx, cy, radius float64, col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawCircle(cx, cy, radius)
	c.check("fill circle", c.dc.Fill())
}

func (c *Canvas) StrokeCircle(cx, cy, radius, lineWidth float64, col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(lineWidth)
	c.dc.DrawCircle(cx, cy, radius)
	c.check("stroke circle", c.dc.Stroke())
}

// check logs a failed draw. A missed primitive only affects one frame.
func (c *Canvas) check(op string, err error) {
	if err != nil {
		Logger().Warn("canvas draw failed", "op", op, "err", err)
	}
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the canvas as a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Close releases the underlying context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// Snapshot runs d headlessly for frames ticks at DefaultTPS and writes the
// final frame to path as PNG. A script that quits early ends the run at
// that frame.
func Snapshot(d *Display, frames int, path string) error {
	dt := 1.0 / float64(DefaultTPS)
	for range frames {
		if err := d.Update(dt); err != nil {
			if errors.Is(err, ErrTerminated) {
				break
			}
			return err
		}
	}

	cfg := d.Config()
	canvas := NewCanvas(cfg.Width, cfg.Height)
	defer canvas.Close()

	d.Draw(canvas)
	if err := canvas.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	Logger().Info("snapshot written", "path", path, "frames", d.Frame())
	return nil
}
