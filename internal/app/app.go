package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/behaviortreego/internal/ctxlog"
	"github.com/vk/behaviortreego/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a loaded,
// validated node-type registry.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if cfg.ManifestsPath != "" {
		if err := reg.LoadManifests(ctx, cfg.ManifestsPath); err != nil {
			// A failure to load the taxonomy is a fatal startup error.
			panic(fmt.Errorf("failed to load node-type manifests: %w", err))
		}
	}
	if err := reg.Validate(ctx); err != nil {
		// A mismatch inside the manifests is a configuration error.
		panic(err)
	}
	logger.Debug("Registry loaded and validated.", "node_types", len(reg.Types()))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
