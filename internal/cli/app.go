package cli

import (
	"log/slog"

	"sourdough-tracker/internal/config"
	"sourdough-tracker/internal/services"
)

// App bundles what every command handler needs
type App struct {
	service      services.StarterService
	settings     *config.Config
	printer      *Printer
	errorHandler *ErrorHandler
	logger       *slog.Logger
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(service services.StarterService, settings *config.Config, printer *Printer, logger *slog.Logger) *App {
	return &App{
		service:      service,
		settings:     settings,
		printer:      printer,
		errorHandler: NewErrorHandler(logger),
		logger:       logger,
	}
}
