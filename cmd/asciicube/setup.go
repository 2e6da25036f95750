package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/taigrr/asciicube/internal/config"
	"github.com/taigrr/asciicube/internal/logger"
	"github.com/taigrr/asciicube/pkg/anim"
	"github.com/taigrr/asciicube/pkg/models"
	"github.com/taigrr/asciicube/pkg/render"
)

// setup loads and validates the configuration and builds the logger. The
// console is only logged to when nothing else owns the screen.
func (a *app) setup(console bool) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(&a.flags)
	if err != nil {
		return nil, nil, err
	}
	warnings, err := cfg.Validate()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	opts := logger.Options{
		Level:   cfg.Logging.Level,
		Console: console,
	}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	log, err := logger.New(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	for _, w := range warnings {
		log.Warn("config", zap.String("fallback", w))
	}
	log.Debug("config loaded",
		zap.Int("width", cfg.Viewport.Width),
		zap.Int("height", cfg.Viewport.Height),
		zap.Float64("zoom", cfg.Camera.Zoom),
		zap.Float64s("speed", cfg.Rotation.Speed),
		zap.Duration("frame_delay", cfg.Animation.FrameDelay),
	)
	return cfg, log, nil
}

// newComposer builds the cube renderer described by cfg.
func newComposer(cfg *config.Config, log *zap.Logger) *render.Composer {
	return render.NewComposer(
		models.Cube(),
		cfg.Projector(),
		cfg.Light(),
		cfg.Shades(),
		cfg.Outline(),
		log.Sugar(),
	)
}

// newSpinUp returns the spin-up easing, or nil when it is off.
func newSpinUp(cfg *config.Config) *anim.SpinUp {
	if !cfg.Rotation.SpinUp {
		return nil
	}
	return anim.NewSpinUp(cfg.Animation.FrameDelay)
}
