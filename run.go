package bouncer

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultTitle is the window title used when RunConfig.Title is empty.
const DefaultTitle = "Shape Simulator"

// RunConfig configures the window and loop started by Run.
type RunConfig struct {
	Title string

	// Width and Height set the window size. Zero uses the display bounds.
	Width, Height int

	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool

	// ExitOnScriptDone ends the run once the display's script has executed
	// every step.
	ExitOnScriptDone bool
}

// game adapts a Display to ebiten.Game.
type game struct {
	display *Display
	cfg     RunConfig
	screen  *ScreenRenderer
	fps     *fpsOverlay
}

func newGame(d *Display, cfg RunConfig) *game {
	g := &game{display: d, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if err := g.display.Update(dt); err != nil {
		if errors.Is(err, ErrTerminated) {
			return ebiten.Termination
		}
		return err
	}
	if g.cfg.ExitOnScriptDone && g.display.script != nil && g.display.script.Done() {
		return ebiten.Termination
	}
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.screen == nil || g.screen.Target != screen {
		g.screen = NewScreenRenderer(screen)
	}
	g.display.Draw(g.screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout keeps the logical screen at the display bounds regardless of the
// window size, so reflection always happens at the visible edges.
func (g *game) Layout(_, _ int) (int, int) {
	cfg := g.display.Config()
	return cfg.Width, cfg.Height
}

// Run opens a window and drives d until the window is closed or a script
// quits. Each tick calls Display.Update with the tick length; each frame
// calls Display.Draw.
func Run(d *Display, cfg RunConfig) error {
	dc := d.Config()
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Width <= 0 {
		cfg.Width = dc.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = dc.Height
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	Logger().Info("run started", "title", cfg.Title, "width", dc.Width, "height", dc.Height, "shapes", len(d.Shapes()))
	err := ebiten.RunGame(newGame(d, cfg))
	Logger().Info("run stopped", "frames", d.Frame(), "err", err)
	return err
}
