// Package app provides the application context and dependency management
// for the rollcall CLI. It centralizes configuration, logging, and access
// to the jurisdiction metadata registry.
package app

import (
	"github.com/rs/zerolog"

	"github.com/civicdata/rollcall/pkg/errors"
	"github.com/civicdata/rollcall/pkg/metadata"
)

// App represents the rollcall application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// jurisdiction registry, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Jurisdiction metadata (lazy-loaded)
	registry *metadata.Registry
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapIO("load", "config", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Option configures an App during construction.
type Option func(*App) error

// WithConfig replaces the loaded configuration. Useful in tests.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		logger := NewLogger(config)
		a.logger = &logger
		return nil
	}
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Registry returns the jurisdiction metadata registry, loading it lazily
// from the configured metadata file on first use.
func (a *App) Registry() (*metadata.Registry, error) {
	if a.registry != nil {
		return a.registry, nil
	}

	reg, err := metadata.LoadRegistry(a.config.MetadataFile)
	if err != nil {
		return nil, errors.WrapIO("load", a.config.MetadataFile, err)
	}

	a.registry = reg
	return reg, nil
}
