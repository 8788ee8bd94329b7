package cli

import (
	"context"

	"sourdough-tracker/internal/repository/tracker"
	"sourdough-tracker/internal/services"
)

// FeedOptions holds the feed command flags
type FeedOptions struct {
	Weight    int
	Smell     string
	PeakHours *int
	Notes     string
}

// FeedCommand handles the feed command
type FeedCommand struct {
	service      services.StarterService
	printer      *Printer
	errorHandler *ErrorHandler
}

// NewFeedCommand creates a new feed command handler
func NewFeedCommand(app *App) *FeedCommand {
	return &FeedCommand{
		service:      app.service,
		printer:      app.printer,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the feed command
func (c *FeedCommand) Execute(ctx context.Context, opts FeedOptions) error {
	result, err := c.service.Feed(ctx, services.FeedRequest{
		Weight:    opts.Weight,
		Smell:     opts.Smell,
		PeakHours: opts.PeakHours,
		Notes:     opts.Notes,
	})
	if result != nil {
		c.printAmounts(result)
	}
	if err != nil {
		return c.errorHandler.Handle("log feeding", err)
	}

	p := c.printer
	switch result.Append.Recovery {
	case tracker.RecoveryCreated:
		p.Warn("Tracker file '%s' not found. Created a new one.", result.LogPath)
	case tracker.RecoveryRestored:
		p.Warn("File '%s' is corrupted. Renamed it to '%s' and created a new tracker.",
			result.LogPath, result.Append.BackupPath)
	}

	p.Success("Logged feeding on %s", result.Append.Date)
	return nil
}

func (c *FeedCommand) printAmounts(result *services.FeedResult) {
	p := c.printer
	if result.NegativeStarter {
		p.Warn("Jar weighs %dg, less than the empty jar (%dg). Starter weight recorded as %dg.",
			result.Feeding.JarWeightTotal, result.Feeding.Config().JarWeight, result.Feeding.StarterWeight)
	}
	p.Printf("Target jar weight after discard: %sg\n", p.Number(result.TargetWeight))
	p.Printf("Add %sg flour and %sg water\n", p.Number(result.Flour), p.Number(result.Water))
}
