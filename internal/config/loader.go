package config

import (
	"strconv"
)

// Loader resolves settings from defaults, then the environment, then flags
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{config: NewConfig()}
}

// LoadWithOverrides applies the environment and then the flags the user set.
// A nil overrides keeps the environment values. Validation runs once on the final result.
func (l *Loader) LoadWithOverrides(overrides *Overrides) (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	overrides.applyTo(l.config)

	if err := l.config.Validate(); err != nil {
		return nil, err
	}
	return l.config, nil
}

// Overrides holds the flag values the user set explicitly; nil fields keep the lower layers
type Overrides struct {
	Dir        *string
	ConfigFile *string
	LogFile    *string
	DiagLog    *string
	Debug      *bool
}

func (o *Overrides) applyTo(c *Config) {
	if o == nil {
		return
	}
	setIfPresent(&c.Paths.Dir, o.Dir)
	setIfPresent(&c.Paths.ConfigFile, o.ConfigFile)
	setIfPresent(&c.Paths.LogFile, o.LogFile)
	setIfPresent(&c.Paths.DiagLog, o.DiagLog)
	setIfPresent(&c.Debug, o.Debug)
}

func setIfPresent[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}
