package domain

import (
	"fmt"

	"sourdough-tracker/internal/errors"
)

// Ratio holds the starter:flour:water feeding proportions.
type Ratio [3]int

// NewRatio creates a ratio from its three components.
func NewRatio(starter, flour, water int) Ratio {
	return Ratio{starter, flour, water}
}

// Starter returns the starter proportion. It is recorded but never used in calculations.
func (r Ratio) Starter() int { return r[0] }

// Flour returns the flour proportion.
func (r Ratio) Flour() int { return r[1] }

// Water returns the water proportion.
func (r Ratio) Water() int { return r[2] }

// String renders the ratio as starter:flour:water.
func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d:%d", r[0], r[1], r[2])
}

// Config holds the user's one-time starter settings.
// This is a pure domain model without file format concerns.
type Config struct {
	JarWeight  int
	KeepTarget int
	Ratio      Ratio
	Path       string
}

// NewConfig creates a Config. Callers validate inputs before construction.
func NewConfig(jarWeight, keepTarget int, ratio Ratio, path string) Config {
	return Config{
		JarWeight:  jarWeight,
		KeepTarget: keepTarget,
		Ratio:      ratio,
		Path:       path,
	}
}

// Validate reports the first field that breaks a Config invariant.
func (c Config) Validate() error {
	if c.JarWeight <= 0 {
		return errors.NewInvalidConfigError("jar_weight", c.JarWeight, "must be positive")
	}
	if c.KeepTarget <= 0 {
		return errors.NewInvalidConfigError("keep_target", c.KeepTarget, "must be positive")
	}
	for i, name := range []string{"starter", "flour", "water"} {
		if c.Ratio[i] <= 0 {
			return errors.NewInvalidConfigError("ratio."+name, c.Ratio[i], "must be positive")
		}
	}
	return nil
}
