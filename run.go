package tooltip

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Background is the clear color. The zero value is a dark slate.
	Background Color

	// OnUpdate, when set, runs after the system's Update each tick.
	OnUpdate func(sys *System) error
	// OnDraw, when set, runs before the tooltip is drawn so the host can
	// paint the scene beneath it.
	OnDraw func(screen *ebiten.Image)
}

// game adapts a System to ebiten.Game.
type game struct {
	sys      *System
	cfg      RunConfig
	pointer  PointerSource
	renderer *Renderer
	clear    color.Color
}

// Run opens a window and drives sys until the window closes or OnUpdate
// returns an error. It blocks.
func Run(sys *System, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	bg := cfg.Background
	if bg == (Color{}) {
		bg = Color{R: 0.12, G: 0.13, B: 0.16, A: 1}
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	sys.SetScreenSize(Vec2{float64(cfg.Width), float64(cfg.Height)})

	g := &game{
		sys:      sys,
		cfg:      cfg,
		pointer:  EbitenPointer{},
		renderer: NewRenderer(),
		clear:    bg.NRGBA(),
	}
	defer g.renderer.Release()
	return ebiten.RunGame(g)
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.sys.Update(dt, g.pointer.Pointer())
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate(g.sys)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear)
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(screen)
	}
	g.renderer.Draw(screen, g.sys.Draw())
}

func (g *game) Layout(w, h int) (int, int) {
	g.sys.SetScreenSize(Vec2{float64(w), float64(h)})
	return w, h
}
