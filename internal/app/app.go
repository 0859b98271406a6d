package app

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/treegridgo/internal/source"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	source     source.Source
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW, each App getting its own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config, src source.Source) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		source: src,
	}
}
