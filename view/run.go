package view

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/allofyou"
)

var colorTranslucentBlack = color.RGBA{0, 0, 0, 128}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Texture is mapped onto the panels. Nil uses allofyou.DemoTexture.
	Texture image.Image
	// Script, if set, is attached to the session before the loop starts.
	Script *allofyou.TestRunner
	// ExitWhenDone closes the window once Script has run.
	ExitWhenDone bool
}

// Run opens a resizable window and runs the session until the window is
// closed or Escape is pressed.
func Run(session *allofyou.Session, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	if cfg.Title == "" {
		cfg.Title = "All of You"
	}
	tex := cfg.Texture
	if tex == nil {
		tex = allofyou.DemoTexture(512)
	}
	if session.Texture == nil {
		session.Texture = tex
	}

	session.Camera().SetViewport(allofyou.Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)})

	g := NewGame(session, tex, cfg.ShowFPS)
	if cfg.Script != nil {
		g.SetTestRunner(cfg.Script)
		g.ExitWhenDone = cfg.ExitWhenDone
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
