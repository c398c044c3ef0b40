package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/tallygo/internal/config"
	"github.com/specialistvlad/tallygo/internal/hcl"
	"github.com/specialistvlad/tallygo/internal/model"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *model.Config
	codec  config.Codec
}

// Option customizes an App built by NewApp.
type Option func(*App)

// WithCodec replaces the codec used by the round-trip check.
func WithCodec(codec config.Codec) Option {
	return func(a *App) {
		a.codec = codec
	}
}

// NewApp is the constructor for the main application. Program output goes to
// outW, logs go to logW. The config is expected to be valid; an invalid config
// here is a programmer error and panics.
func NewApp(outW, logW io.Writer, cfg *model.Config, opts ...Option) *App {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	logger := newLogger(cfg.Verbosity, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		codec:  hcl.NewCodec(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the application's config. This is primarily for testing.
func (a *App) Config() *model.Config {
	return a.config
}
