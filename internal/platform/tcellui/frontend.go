package tcellui

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options holds the optional collaborators of a Frontend.
type Options struct {
	Store         *storage.Store
	Logger        *log.Logger
	ScreenshotDir string
}

// Frontend plays one game on a tcell screen.
type Frontend struct {
	screen  tcell.Screen
	buf     *core.Screen
	loop    *engine.Loop
	config  core.RuntimeConfig
	logger  *log.Logger
	shotDir string

	// Set by the event goroutine, consumed by present.
	shotPending atomic.Bool
}

// New resets game and binds it to screen, which must already be
// initialized. cfg.ScreenW/ScreenH are ignored in favor of the screen size.
func New(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, opts Options) *Frontend {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = engine.DefaultScreenshotDir()
	}

	cfg.ScreenW, cfg.ScreenH = screen.Size()
	game.Reset(cfg)

	buf := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	w, h := game.Bounds()
	loop := engine.NewLoop(game, core.NewViewport(buf, w, h))
	loop.OnGameOver(opts.Store.Recorder(game.ID(), cfg.Seed, opts.Logger))

	return &Frontend{
		screen:  screen,
		buf:     buf,
		loop:    loop,
		config:  cfg,
		logger:  opts.Logger,
		shotDir: opts.ScreenshotDir,
	}
}

// Loop returns the underlying engine loop.
func (f *Frontend) Loop() *engine.Loop {
	return f.loop
}

// Run plays until the player quits or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	actions := make(chan core.Action, 32)
	go f.pollEvents(ctx, actions)

	return engine.Run(ctx, f.loop, engine.NewTicker(f.config.TickRate), actions, f.present)
}

// pollEvents translates tcell events into actions until the screen is
// finalized or ctx is done.
func (f *Frontend) pollEvents(ctx context.Context, actions chan<- core.Action) {
	defer close(actions)
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return // Screen finalized
		}

		var a core.Action
		switch e := ev.(type) {
		case *tcell.EventResize:
			f.screen.Sync()
			continue
		case *tcell.EventKey:
			if isScreenshot(e) {
				f.shotPending.Store(true)
				continue
			}
			a = KeyAction(e)
		}
		if a == core.ActionNone {
			continue
		}

		select {
		case actions <- a:
		case <-ctx.Done():
			return
		}
	}
}

// present copies the frame buffer to the terminal. It runs on the loop
// goroutine, so resizing and screenshots happen here too.
func (f *Frontend) present() {
	if w, h := f.screen.Size(); w != f.buf.Width() || h != f.buf.Height() {
		f.buf.Resize(w, h)
		f.loop.Draw()
	}

	if f.shotPending.CompareAndSwap(true, false) {
		f.saveScreenshot()
	}

	for y := range f.buf.Height() {
		for x := range f.buf.Width() {
			cell := f.buf.GetCell(x, y)
			f.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	f.screen.Show()
}

func (f *Frontend) saveScreenshot() {
	path, err := engine.SaveScreenshot(f.shotDir, f.loop.Game().ID(), f.buf, time.Now())
	if err != nil {
		f.logger.Warn("screenshot failed", "err", err)
		return
	}
	f.logger.Info("screenshot saved", "path", path)
}

// Play opens the terminal, plays game on it and restores the terminal.
func Play(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellui: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	return New(screen, game, cfg, opts).Run(ctx)
}
