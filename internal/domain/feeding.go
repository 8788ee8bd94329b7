package domain

import (
	"time"

	"sourdough-tracker/internal/errors"
)

// DateFormat is the ISO calendar date stamped on every feeding.
const DateFormat = "2006-01-02"

// LogHeader is the fixed first row of every feeding log.
var LogHeader = []string{
	"Date",
	"Jar Weight Total",
	"Starter Weight",
	"Target Weight",
	"Flour (calc)",
	"Water (calc)",
	"Smell",
	"Peak Hours",
	"Notes",
}

// Observations are the optional free-form notes taken at feeding time.
type Observations struct {
	Smell     string
	PeakHours *int
	Notes     string
}

// Feeding represents one logged feeding. It is never mutated after creation.
type Feeding struct {
	Date           string
	JarWeightTotal int
	StarterWeight  int
	Observations
	config Config
}

// NewFeeding creates a Feeding for the given measured jar weight.
// StarterWeight is not clamped and goes negative when the total is lighter than the empty jar.
func NewFeeding(jarWeightTotal int, cfg Config, obs Observations, now time.Time) Feeding {
	return Feeding{
		Date:           now.Format(DateFormat),
		JarWeightTotal: jarWeightTotal,
		StarterWeight:  jarWeightTotal - cfg.JarWeight,
		Observations:   obs,
		config:         cfg,
	}
}

// Config returns the configuration the feeding was computed from.
func (f Feeding) Config() Config {
	return f.config
}

// TargetTotalWeight returns the jar weight to discard down to.
// The keep target is re-checked here because the config file may have been edited by hand.
func (f Feeding) TargetTotalWeight() (int, error) {
	if f.config.KeepTarget <= 0 {
		return 0, errors.NewInvalidConfigError("keep_target", f.config.KeepTarget, "must be positive")
	}
	return f.config.JarWeight + f.config.KeepTarget, nil
}

// FlourAndWater returns the grams of flour and water to add.
// The starter component of the ratio does not take part.
func (f Feeding) FlourAndWater() (flour, water int) {
	flour = f.config.KeepTarget * f.config.Ratio.Flour()
	water = f.config.KeepTarget * f.config.Ratio.Water()
	return flour, water
}

// ToRow renders the feeding in LogHeader column order.
func (f Feeding) ToRow() ([]any, error) {
	target, err := f.TargetTotalWeight()
	if err != nil {
		return nil, err
	}
	flour, water := f.FlourAndWater()

	var peakHours any = ""
	if f.PeakHours != nil {
		peakHours = *f.PeakHours
	}

	return []any{
		f.Date,
		f.JarWeightTotal,
		f.StarterWeight,
		target,
		flour,
		water,
		f.Smell,
		peakHours,
		f.Notes,
	}, nil
}
