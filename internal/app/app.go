package app

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/coreloop/resdepot/internal/hcldoc"
	"github.com/coreloop/resdepot/internal/manifest"
	"github.com/coreloop/resdepot/internal/registry"
	"github.com/coreloop/resdepot/internal/yamldoc"
)

// App is the central orchestrator. It owns the registry, the manifest
// loaders and the optional status server, and drives materialization.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config

	registry *registry.Registry
	loaders  []manifest.Loader

	statusServer *http.Server

	// created tracks the names of resources this App materialized, in
	// creation order, so shutdown can close them newest first.
	created []string
}

// New creates an App from a validated Config. The given modules register
// their resource types immediately; with none given the core set is used.
// Manifests are not touched until Run.
func New(outW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, m := range modules {
		m.Register(reg)
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,

		registry: reg,
		loaders: []manifest.Loader{
			hcldoc.NewLoader(),
			yamldoc.NewLoader(),
		},
	}
}

// Registry exposes the app's resource registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Logger exposes the app's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
