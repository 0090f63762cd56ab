package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/toolgraphgo/internal/config"
	"github.com/vk/toolgraphgo/internal/ctxlog"
	"github.com/vk/toolgraphgo/internal/registry"
	"github.com/vk/toolgraphgo/internal/traverse"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	registry   *registry.Registry
	model      *config.Model
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// When no visitors are supplied, the core set is registered.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, visitors ...traverse.Visitor) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.WorkspacePath)
	if err != nil {
		// A failure to load the workspace is a fatal startup error.
		panic(fmt.Errorf("failed to load workspace: %w", err))
	}
	logger.Debug("Workspace loaded and translated into unified model.")

	reg := registry.New()
	if len(visitors) == 0 {
		visitors = coreVisitors
	}
	for _, v := range visitors {
		reg.Register(v)
	}
	logger.Debug("All visitors registered.", "count", len(visitors))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		model:    model,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded workspace model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
