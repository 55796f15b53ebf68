package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/gopatterns/internal/ctxlog"
	"github.com/vk/gopatterns/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// NewApp returns a fully initialized App whose records are written to logW.
// Without explicit modules the built-in region modules are registered.
func NewApp(logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("Region modules registered.", "count", len(modules), "regions", reg.Keys())

	return &App{
		logger:   logger,
		registry: reg,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
