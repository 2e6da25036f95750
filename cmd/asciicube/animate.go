package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/taigrr/asciicube/internal/config"
	"github.com/taigrr/asciicube/pkg/anim"
	"github.com/taigrr/asciicube/pkg/render"
)

// runAnimation spins the cube until the user quits or the display fails.
func (a *app) runAnimation(ctx context.Context) error {
	cfg, log, err := a.setup(a.plain)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	loop := anim.NewLoop()

	var display render.Display
	if a.plain {
		display = render.NewWriterDisplay(os.Stdout, true)
	} else {
		term, cleanup, err := startTerminal(cfg)
		if err != nil {
			return err
		}
		defer cleanup()
		display = render.NewTerminalDisplay(term, cfg.Palette())
		go handleEvents(ctx, term, loop, cancel)
	}

	var stopErr error
	buf := render.NewScreenBuffer(cfg.Viewport.Width, cfg.Viewport.Height)
	driver := anim.NewDriver(newComposer(cfg, log), buf, display, loop, cfg.RotationState(), anim.Options{
		Delay:  cfg.Animation.FrameDelay,
		SpinUp: newSpinUp(cfg),
		Logger: log,
		OnStop: func(err error) {
			stopErr = err
			cancel()
		},
	})

	log.Info("starting animation",
		zap.Bool("plain", a.plain),
		zap.Bool("color", cfg.Display.Color),
	)
	driver.Start()
	_ = loop.Run(ctx)
	driver.Stop()

	log.Info("animation finished", zap.Int("ticks", driver.Ticks()))
	return stopErr
}

// startTerminal takes over the terminal. The returned cleanup restores it.
func startTerminal(cfg *config.Config) (*uv.Terminal, func(), error) {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return nil, nil, fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return nil, nil, fmt.Errorf("start terminal: %w", err)
	}

	if cfg.Display.AltScreen {
		term.EnterAltScreen()
	}
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		if cfg.Display.AltScreen {
			term.ExitAltScreen()
		}
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	return term, cleanup, nil
}

// handleEvents turns key presses into quit requests. Resizes are posted to
// the loop so they never race a frame being drawn.
func handleEvents(ctx context.Context, term *uv.Terminal, loop *anim.Loop, quit func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-term.Events():
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height := ev.Width, ev.Height
				loop.Schedule(0, func() {
					term.Erase()
					term.Resize(width, height)
				})
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("q"), ev.MatchString("ctrl+c"):
					quit()
					return
				}
			}
		}
	}
}
