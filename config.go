package bouncer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScene is wrapped by every scene validation error.
var ErrInvalidScene = errors.New("invalid scene")

// Scene is the YAML description of a run: window, timing, and the initial
// shapes.
type Scene struct {
	Window          WindowDef  `yaml:"window"`
	Background      string     `yaml:"background,omitempty"`
	RecolorInterval float64    `yaml:"recolor_interval,omitempty"`
	FadeDuration    float32    `yaml:"fade_duration,omitempty"`
	Seed            uint64     `yaml:"seed,omitempty"`
	ShowFPS         bool       `yaml:"show_fps,omitempty"`
	Shapes          []ShapeDef `yaml:"shapes"`
}

// WindowDef sizes and names the window. Width and Height are also the
// reflection bounds.
type WindowDef struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Title  string `yaml:"title,omitempty"`
}

// ShapeDef is one shape entry. Unset optional fields take the constructor
// defaults: direction +1, speed 1, pen palette[0], fill palette[1].
type ShapeDef struct {
	Kind   string `yaml:"kind"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Radius int    `yaml:"radius,omitempty"`
	DirX   *int   `yaml:"dir_x,omitempty"`
	DirY   *int   `yaml:"dir_y,omitempty"`
	SpeedX *int   `yaml:"speed_x,omitempty"`
	SpeedY *int   `yaml:"speed_y,omitempty"`
	Pen    *int   `yaml:"pen,omitempty"`  // palette index
	Fill   *int   `yaml:"fill,omitempty"` // palette index
}

// DefaultScene returns the built-in scene: a 600x800 window titled "Shape
// Simulator" holding one 100x200 rectangle at (20, 20).
func DefaultScene() *Scene {
	return &Scene{
		Window: WindowDef{Width: DefaultWidth, Height: DefaultHeight, Title: DefaultTitle},
		Shapes: []ShapeDef{{Kind: "rectangle", X: 20, Y: 20, Width: 100, Height: 200}},
	}
}

// LoadScene reads and validates a YAML scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	sc, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	return sc, nil
}

// ParseScene decodes and validates YAML scene data.
func ParseScene(data []byte) (*Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks sizes, speeds, palette indices, and the background color.
func (sc *Scene) Validate() error {
	if sc.Window.Width < 0 || sc.Window.Height < 0 {
		return fmt.Errorf("%w: negative window size %dx%d", ErrInvalidScene, sc.Window.Width, sc.Window.Height)
	}
	if sc.RecolorInterval < 0 {
		return fmt.Errorf("%w: negative recolor_interval %v", ErrInvalidScene, sc.RecolorInterval)
	}
	if sc.FadeDuration < 0 {
		return fmt.Errorf("%w: negative fade_duration %v", ErrInvalidScene, sc.FadeDuration)
	}
	if sc.Background != "" {
		if _, err := parseColor(sc.Background); err != nil {
			return err
		}
	}
	paletteLen := len(DefaultPalette())
	for i, def := range sc.Shapes {
		if err := def.validate(paletteLen); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

func (def ShapeDef) validate(paletteLen int) error {
	switch def.Kind {
	case "rectangle":
		if def.Width <= 0 || def.Height <= 0 {
			return fmt.Errorf("%w: rectangle size %dx%d must be positive", ErrInvalidScene, def.Width, def.Height)
		}
	case "circle":
		if def.Radius <= 0 {
			return fmt.Errorf("%w: circle radius %d must be positive", ErrInvalidScene, def.Radius)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidScene, def.Kind)
	}
	for name, v := range map[string]*int{"speed_x": def.SpeedX, "speed_y": def.SpeedY} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s %d is negative", ErrInvalidScene, name, *v)
		}
	}
	for name, v := range map[string]*int{"pen": def.Pen, "fill": def.Fill} {
		if v != nil && (*v < 0 || *v >= paletteLen) {
			return fmt.Errorf("%w: %s index %d outside palette [0, %d)", ErrInvalidScene, name, *v, paletteLen)
		}
	}
	return nil
}

// Build creates the display and run settings described by the scene. The
// scene is validated first.
func (sc *Scene) Build() (*Display, RunConfig, error) {
	if err := sc.Validate(); err != nil {
		return nil, RunConfig{}, err
	}
	cfg := Config{
		Width:           sc.Window.Width,
		Height:          sc.Window.Height,
		RecolorInterval: sc.RecolorInterval,
		FadeDuration:    sc.FadeDuration,
		Seed:            sc.Seed,
	}
	if sc.Background != "" {
		bg, _ := parseColor(sc.Background)
		cfg.Background = bg
	}
	d := NewDisplay(cfg)
	palette := d.Config().Palette
	for _, def := range sc.Shapes {
		d.Append(def.build(palette))
	}
	rc := RunConfig{
		Title:   sc.Window.Title,
		ShowFPS: sc.ShowFPS,
	}
	return d, rc, nil
}

func (def ShapeDef) build(palette Palette) Shape {
	var opts []ShapeOption
	dx, dy := 1, 1
	if def.DirX != nil {
		dx = *def.DirX
	}
	if def.DirY != nil {
		dy = *def.DirY
	}
	opts = append(opts, WithDirection(dx, dy))

	sx, sy := 1, 1
	if def.SpeedX != nil {
		sx = *def.SpeedX
	}
	if def.SpeedY != nil {
		sy = *def.SpeedY
	}
	opts = append(opts, WithSpeed(sx, sy))

	if def.Pen != nil {
		opts = append(opts, WithPen(palette[*def.Pen]))
	}
	if def.Fill != nil {
		opts = append(opts, WithFill(palette[*def.Fill]))
	}

	if def.Kind == "circle" {
		return NewCircle(def.X, def.Y, def.Radius, opts...)
	}
	return NewRectangle(def.X, def.Y, def.Width, def.Height, opts...)
}

// parseColor accepts a CSS color name ("white", "lightcoral") or a hex
// string in #RGB, #RGBA, #RRGGBB, or #RRGGBBAA form.
func parseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return ColorFromRGBA(c), nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: color %q", ErrInvalidScene, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return Color{}, fmt.Errorf("%w: color %q", ErrInvalidScene, s)
		}
	}
	c := gg.Hex(hex)
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}
