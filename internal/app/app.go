package app

import (
	"io"
	"log/slog"

	"github.com/vk/we/internal/config"
	"github.com/vk/we/internal/repo"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	out        io.Writer
	errOut     io.Writer
	logger     *slog.Logger
	config     *config.Config
	newCreator repo.Factory
}

// NewApp is the constructor for the main application. Informational output
// goes to out; user-facing errors and all log records go to errOut.
func NewApp(out, errOut io.Writer, cfg *config.Config, newCreator repo.Factory) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errOut)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		out:        out,
		errOut:     errOut,
		logger:     logger,
		config:     cfg,
		newCreator: newCreator,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
