package cli

import (
	"context"

	"sourdough-tracker/internal/services"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	service      services.StarterService
	printer      *Printer
	errorHandler *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{
		service:      app.service,
		printer:      app.printer,
		errorHandler: app.errorHandler,
	}
}

// Execute prints the newest limit feedings, one "Header: value" line per column
func (c *StatsCommand) Execute(ctx context.Context, limit int) error {
	result, err := c.service.Stats(ctx, limit)
	if err != nil {
		return c.errorHandler.Handle("show stats", err)
	}

	p := c.printer
	if len(result.Rows) == 0 {
		p.Println("No feedings logged yet")
		return nil
	}

	for _, row := range result.Rows {
		for i, header := range result.Header {
			p.Field(header, row[i])
		}
		p.Separator()
	}
	return nil
}
