package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/remapc/internal/config"
	"github.com/vk/remapc/internal/ctxlog"
	"github.com/vk/remapc/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
	loader   config.Loader
}

// NewApp is the constructor for the main application. The compiled document
// goes to outW (unless cfg.OutputPath is set) and logs go to logW. When no
// modules are given the core modules are registered.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	reg.Register(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules))

	if err := reg.Validate(ctx); err != nil {
		// A module that cannot be called from a script is a programmer error.
		panic(err)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
		loader:   loader,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
