package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sortviz/hal"
	"sortviz/internal/buildinfo"
	"sortviz/rng"
	"sortviz/sorting"
)

type system struct {
	ctx    context.Context
	cfg    Config
	log    *zap.Logger
	out    io.Writer
	player *Player

	fb   hal.Framebuffer
	kbd  hal.Keyboard
	disp *fbDisplay

	hud        bool
	quitOnDone bool
	reported   bool
}

func newSystem(ctx context.Context, h hal.HAL, cfg Config, p *Player, log *zap.Logger, out io.Writer) *system {
	s := &system{
		ctx:        ctx,
		cfg:        cfg,
		log:        log,
		out:        out,
		player:     p,
		hud:        cfg.HUD,
		quitOnDone: cfg.Headless,
	}
	if d := h.Display(); d != nil {
		s.fb = d.Framebuffer()
		s.disp = newFBDisplay(s.fb)
	}
	if in := h.Input(); in != nil {
		s.kbd = in.Keyboard()
	}
	return s
}

// step runs once per frame on the render loop.
func (s *system) step() error {
	if s.ctx.Err() != nil {
		return hal.ErrQuit
	}
	if err := s.handleKeys(); err != nil {
		return err
	}

	s.player.Update()
	s.render()

	if s.player.Done() && !s.reported {
		s.reported = true
		s.report()
		if s.quitOnDone {
			return hal.ErrQuit
		}
	}
	return nil
}

func (s *system) handleKeys() error {
	if s.kbd == nil {
		return nil
	}
	for {
		select {
		case ev := <-s.kbd.Events():
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyEscape:
				return hal.ErrQuit
			case hal.KeySpace:
				s.player.TogglePause()
				s.log.Debug("pause toggled", zap.Bool("paused", s.player.Paused()))
			case hal.KeyEnter:
				if s.player.Paused() {
					s.player.StepOnce()
				}
			case hal.KeyTab:
				s.hud = !s.hud
			}
		default:
			return nil
		}
	}
}

func (s *system) render() {
	if s.fb == nil {
		return
	}
	s.fb.Lock()
	drawFrame(s.disp, s.player.Frame())
	if s.hud {
		drawHUD(s.disp, s.hudText())
	}
	s.fb.Unlock()
	_ = s.disp.Display()
}

func (s *system) hudText() string {
	state := ""
	switch {
	case s.player.Done():
		state = " done"
	case s.player.Paused():
		state = " paused"
	}
	return fmt.Sprintf("%s %d%s", s.cfg.Algorithm, s.player.Steps(), state)
}

func (s *system) report() {
	res, err := s.player.Result()
	if err != nil {
		s.log.Warn("sort aborted", zap.Int("steps", res.Steps), zap.Error(err))
		return
	}
	fmt.Fprintln(s.out, sorting.BufferOf(res.Values...).String())
	fmt.Fprintf(s.out, "Elapsed time: %f seconds\n", res.Elapsed.Seconds())
	s.log.Info("sort finished",
		zap.Int("steps", res.Steps),
		zap.Duration("elapsed", res.Elapsed),
	)
}

// ErrNoWindow is returned when a windowed run is requested from a binary
// built without a window backend.
var ErrNoWindow = errors.New("window support not built in (use --headless)")

// Options carries the collaborators of a run.
type Options struct {
	Log    *zap.Logger
	Out    io.Writer
	Window hal.WindowRunner
}

// Run validates cfg, builds a random sequence and animates the sort until
// the window is closed (or, headless, until the sort finishes). The sorted
// sequence and elapsed time are written to opts.Out.
func Run(ctx context.Context, cfg Config, opts Options) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !cfg.Headless && opts.Window == nil {
		return ErrNoWindow
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	buf := sorting.NewBuffer(cfg.Width)
	sorting.Populate(buf, cfg.Bound(), rng.NewSeeded(seed))

	log = log.With(zap.String("run", uuid.NewString()))
	log.Info("run started",
		zap.Stringer("algorithm", cfg.Algorithm),
		zap.Int("n", cfg.Width),
		zap.Int("bound", cfg.Bound()),
		zap.Uint64("seed", seed),
		zap.Int("delay_ms", cfg.Delay),
		zap.Bool("headless", cfg.Headless),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := NewPlayer(cfg.Algorithm, buf, PlayerOptions{Delay: cfg.DelayDuration(), Batch: cfg.Batch})
	p.Start(ctx)

	newApp := func(h hal.HAL) func() error {
		return newSystem(ctx, h, cfg, p, log, out).step
	}

	var err error
	if cfg.Headless {
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			Hz:     cfg.Hz,
		})
	} else {
		err = opts.Window(hal.WindowConfig{
			Title:  "Sort Visualizer (" + buildinfo.Short() + ")",
			Width:  cfg.Width,
			Height: cfg.Height,
			Scale:  cfg.Scale,
			TPS:    cfg.Hz,
		}, newApp)
	}

	cancel()
	if !p.Done() {
		werr := p.Wait()
		log.Info("closed before sort finished", zap.Int("steps", p.Steps()), zap.NamedError("cause", werr))
	}
	return err
}
