package services

import (
	"context"

	"sourdough-tracker/internal/domain"
	"sourdough-tracker/internal/repository/tracker"
)

// InitRequest holds the raw init command values
type InitRequest struct {
	JarWeight  int
	KeepTarget int
	Ratio      string
}

// InitResult reports what Init wrote
type InitResult struct {
	Config     domain.Config
	ConfigPath string
	LogPath    string
	LogCreated bool // false when an existing log was left untouched
}

// FeedRequest holds the raw feed command values
type FeedRequest struct {
	Weight    int
	Smell     string
	PeakHours *int
	Notes     string
}

// FeedResult carries the computed feeding amounts and how the log was updated
type FeedResult struct {
	Feeding         domain.Feeding
	TargetWeight    int
	Flour           int
	Water           int
	NegativeStarter bool // jar weighed less than the empty jar
	LogPath         string
	Append          tracker.AppendResult
}

// StatsResult holds the most recent log rows
type StatsResult struct {
	LogPath string
	Header  []string
	Rows    [][]string
}

// StarterService handles starter setup, feeding and history
type StarterService interface {
	// Init saves the starter config and creates the feeding log
	Init(ctx context.Context, req InitRequest) (*InitResult, error)
	// Feed computes a feeding from the saved config and appends it to the log.
	// When only the append fails, the computed amounts are still returned with the error.
	Feed(ctx context.Context, req FeedRequest) (*FeedResult, error)
	// Stats returns up to limit of the newest feedings
	Stats(ctx context.Context, limit int) (*StatsResult, error)
}
