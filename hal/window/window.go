//go:build cgo

// Package window shows a hal.Host framebuffer in a desktop window via ebiten.
//
// It is kept out of package hal because ebiten initializes its platform layer
// on import and that fails on machines without a display.
package window

import (
	"errors"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"sortviz/hal"
)

var _ hal.WindowRunner = Run

// Run starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes or the app step returns hal.ErrQuit.
func Run(cfg hal.WindowConfig, newApp func(hal.HAL) func() error) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	h := hal.NewHost(cfg.Width, cfg.Height)
	step := newApp(h)

	g := &game{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(
		int(math.Round(float64(cfg.Width)*cfg.Scale)),
		int(math.Round(float64(cfg.Height)*cfg.Scale)),
	)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type game struct {
	h       *hal.Host
	pix     []byte
	scratch []byte
	fbImg   *ebiten.Image
	step    func() error
}

func (g *game) Update() error {
	pollKeys(g.h)
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, hal.ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.h.Size()
	if g.fbImg == nil {
		g.pix = make([]byte, w*h*4)
		g.scratch = make([]byte, w*h*2)
		g.fbImg = ebiten.NewImage(w, h)
	}

	g.h.SnapshotRGBA(g.pix, g.scratch)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.Size()
}
