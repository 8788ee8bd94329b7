package cli

import (
	"context"

	"sourdough-tracker/internal/services"
)

// InitOptions holds the init command flags
type InitOptions struct {
	JarWeight  int
	KeepTarget int
	Ratio      string
}

// InitCommand handles the init command
type InitCommand struct {
	service      services.StarterService
	printer      *Printer
	errorHandler *ErrorHandler
}

// NewInitCommand creates a new init command handler
func NewInitCommand(app *App) *InitCommand {
	return &InitCommand{
		service:      app.service,
		printer:      app.printer,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the init command
func (c *InitCommand) Execute(ctx context.Context, opts InitOptions) error {
	result, err := c.service.Init(ctx, services.InitRequest{
		JarWeight:  opts.JarWeight,
		KeepTarget: opts.KeepTarget,
		Ratio:      opts.Ratio,
	})
	if err != nil {
		return c.errorHandler.Handle("initialize starter", err)
	}

	cfg := result.Config
	c.printer.Printf("Saved config to %s\n", result.ConfigPath)
	c.printer.Printf("Jar weight %sg, keep %sg of starter, feed at %s (starter:flour:water)\n",
		c.printer.Number(cfg.JarWeight), c.printer.Number(cfg.KeepTarget), cfg.Ratio.String())

	if !result.LogCreated {
		c.printer.Warn("Log file already exists. Aborting to avoid overwrite.")
		return nil
	}
	c.printer.Success("Created feeding log %s", result.LogPath)
	return nil
}
