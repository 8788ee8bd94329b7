package validation

import (
	"sourdough-tracker/internal/domain"
)

// InitOptions are the raw values given to the init command
type InitOptions struct {
	JarWeight  int    `flag:"jar-weight" validate:"gt=0"`
	KeepTarget int    `flag:"keep-target" validate:"gt=0"`
	Ratio      string `flag:"ratio" validate:"required"`
}

// FeedOptions are the raw values given to the feed command
type FeedOptions struct {
	Weight    int  `flag:"weight" validate:"gt=0"`
	PeakHours *int `flag:"peak-hours" validate:"omitempty,gte=0"`
}

// StarterValidator validates input for starter setup and feeding
type StarterValidator struct {
	validator *Validator
}

// NewStarterValidator creates a new starter validator
func NewStarterValidator() *StarterValidator {
	return &StarterValidator{
		validator: NewValidator(),
	}
}

// ValidateInit checks init options and returns the parsed ratio
func (sv *StarterValidator) ValidateInit(opts InitOptions) (domain.Ratio, error) {
	if err := sv.validator.Struct(opts); err != nil {
		return domain.Ratio{}, err
	}
	return sv.validator.ParseRatio(opts.Ratio)
}

// ValidateFeed checks feed options
func (sv *StarterValidator) ValidateFeed(opts FeedOptions) error {
	return sv.validator.Struct(opts)
}
