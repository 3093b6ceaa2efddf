// Package cli wires the configuration, theme and logging shared by the
// splitforest commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/splitforest/internal/cli/styles"
	"github.com/bnema/splitforest/internal/domain/build"
	"github.com/bnema/splitforest/internal/infrastructure/config"
	"github.com/bnema/splitforest/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	// configErr is set when the config file could not be loaded and the
	// defaults are in use.
	configErr error

	// Context with logger
	ctx     context.Context
	logFile io.Closer
}

// NewApp loads the configuration and builds a stderr logger from it. A
// broken config file is reported and replaced by the defaults.
func NewApp() (*App, error) {
	configErr := config.Init()
	cfg := config.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, string(cfg.Logging.Format))
	if configErr != nil {
		logger.Warn().Err(configErr).Msg("using default configuration")
	}
	ctx := logging.WithContext(context.Background(), logger)

	return &App{
		Config:    cfg,
		Theme:     styles.NewTheme(cfg),
		configErr: configErr,
		ctx:       ctx,
	}, nil
}

// ConfigErr returns the error that made the app fall back to defaults.
func (a *App) ConfigErr() error {
	return a.configErr
}

// UseFileLog sends logs to the configured log file instead of stderr. The
// interactive workbench owns the terminal while it runs.
func (a *App) UseFileLog() (string, error) {
	path, err := a.Config.LogFilePath()
	if err != nil {
		return "", fmt.Errorf("resolve log file: %w", err)
	}
	logger, closer, err := logging.NewWithFile(a.Config.Logging.Level, string(a.Config.Logging.Format), path)
	if err != nil {
		return "", err
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
	a.logFile = closer
	a.ctx = logging.WithContext(context.Background(), logger)
	logger.Info().Str("version", a.BuildInfo.Version).Msg("logging to file")
	return path, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
