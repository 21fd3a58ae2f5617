package bouncer

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"golang.org/x/image/colornames"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if len(p) != 12 {
		t.Fatalf("len = %d, want 12", len(p))
	}
	if p[0] != ColorFromRGBA(colornames.Black) {
		t.Errorf("palette[0] = %v, want black", p[0])
	}
	if p[11] != ColorFromRGBA(colornames.Lightslategray) {
		t.Errorf("palette[11] = %v, want light slate gray", p[11])
	}
	seen := map[Color]bool{}
	for i, c := range p {
		if seen[c] {
			t.Errorf("duplicate palette entry %d: %v", i, c)
		}
		seen[c] = true
		if c.A != 1 {
			t.Errorf("palette[%d] alpha = %v, want 1", i, c.A)
		}
	}

	p[0] = ColorWhite
	if DefaultPalette()[0] == ColorWhite {
		t.Error("DefaultPalette should return a fresh slice")
	}
}

func TestPaletteContains(t *testing.T) {
	p := DefaultPalette()
	for _, c := range p {
		if !p.Contains(c) {
			t.Errorf("Contains(%v) = false", c)
		}
	}
	if p.Contains(Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5}) {
		t.Error("Contains should reject colors outside the palette")
	}
}

func TestPalettePickCoversAllEntries(t *testing.T) {
	p := DefaultPalette()
	rng := rand.New(rand.NewPCG(42, 42))
	seen := map[Color]int{}
	for i := 0; i < 2000; i++ {
		c := p.Pick(rng)
		if !p.Contains(c) {
			t.Fatalf("Pick returned %v outside the palette", c)
		}
		seen[c]++
	}
	if len(seen) != len(p) {
		t.Errorf("picked %d distinct colors in 2000 draws, want %d", len(seen), len(p))
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want color.RGBA
	}{
		{"opaque white", Color{1, 1, 1, 1}, color.RGBA{255, 255, 255, 255}},
		{"half red", Color{1, 0, 0, 0.5}, color.RGBA{127, 0, 0, 127}},
		{"clamped", Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := color.RGBAModel.Convert(tt.in).(color.RGBA)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorFromRGBA(t *testing.T) {
	c := ColorFromRGBA(color.RGBA{255, 0, 51, 255})
	if c.R != 1 || c.G != 0 || c.B != 0.2 || c.A != 1 {
		t.Errorf("got %v, want {1 0 0.2 1}", c)
	}
}

func TestAxisString(t *testing.T) {
	if AxisX.String() != "x" || AxisY.String() != "y" {
		t.Errorf("got %q %q", AxisX.String(), AxisY.String())
	}
}
