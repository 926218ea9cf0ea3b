package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	inR    io.Reader
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	level  *slog.LevelVar
	config *Config
}

// NewApp is the constructor for the main application. Results go to outW;
// logs and build failures go to errW so that outW only ever carries a tree.
func NewApp(inR io.Reader, outW, errW io.Writer, cfg *Config) *App {
	logger, level := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		inR:    inR,
		outW:   outW,
		errW:   errW,
		logger: logger,
		level:  level,
		config: cfg,
	}
}
