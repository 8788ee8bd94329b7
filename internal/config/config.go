package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration options for the sourdough tracker application
type Config struct {
	Paths PathsConfig
	Stats StatsConfig
	Debug bool `env:"SOURDOUGH_DEBUG"`
}

// PathsConfig holds the locations of every file the tracker touches
type PathsConfig struct {
	Dir        string `env:"SOURDOUGH_DIR"`
	ConfigFile string `env:"SOURDOUGH_CONFIG_FILE"`
	LogFile    string `env:"SOURDOUGH_LOG_FILE"`
	DiagLog    string `env:"SOURDOUGH_DIAG_LOG"`
}

// StatsConfig holds defaults for the stats command
type StatsConfig struct {
	DefaultLimit int `env:"SOURDOUGH_STATS_LIMIT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Dir:        ".",
			ConfigFile: "config.json",
			LogFile:    "starter_log.xlsx",
			DiagLog:    "sourdough.log",
		},
		Stats: StatsConfig{
			DefaultLimit: 5,
		},
	}
}

// ConfigPath returns the full path to the starter config file
func (c *Config) ConfigPath() string {
	return c.resolve(c.Paths.ConfigFile)
}

// LogPath returns the full path to the feeding log
func (c *Config) LogPath() string {
	return c.resolve(c.Paths.LogFile)
}

// DiagLogPath returns the full path to the diagnostic log
func (c *Config) DiagLogPath() string {
	return c.resolve(c.Paths.DiagLog)
}

// resolve joins relative file names onto the data directory
func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Paths.Dir, name)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("SOURDOUGH_DIR"); dir != "" {
		c.Paths.Dir = dir
	}
	if name := os.Getenv("SOURDOUGH_CONFIG_FILE"); name != "" {
		c.Paths.ConfigFile = name
	}
	if name := os.Getenv("SOURDOUGH_LOG_FILE"); name != "" {
		c.Paths.LogFile = name
	}
	if name := os.Getenv("SOURDOUGH_DIAG_LOG"); name != "" {
		c.Paths.DiagLog = name
	}

	if limit := os.Getenv("SOURDOUGH_STATS_LIMIT"); limit != "" {
		c.Stats.DefaultLimit = ParseIntWithFallback(limit, c.Stats.DefaultLimit)
	}

	// Any non-empty value other than an explicit false enables debug
	if debug := os.Getenv("SOURDOUGH_DEBUG"); debug != "" {
		if b, err := strconv.ParseBool(debug); err == nil {
			c.Debug = b
		} else {
			c.Debug = true
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Paths.Dir == "" {
		return &ConfigError{Field: "paths.dir", Message: "data directory cannot be empty"}
	}
	if c.Paths.ConfigFile == "" {
		return &ConfigError{Field: "paths.config_file", Message: "config filename cannot be empty"}
	}
	if c.Paths.LogFile == "" {
		return &ConfigError{Field: "paths.log_file", Message: "log filename cannot be empty"}
	}
	if c.Paths.DiagLog == "" {
		return &ConfigError{Field: "paths.diag_log", Message: "diagnostic log filename cannot be empty"}
	}
	if c.ConfigPath() == c.LogPath() {
		return &ConfigError{Field: "paths.log_file", Message: "log file must differ from the config file"}
	}
	if c.Stats.DefaultLimit < 0 {
		return &ConfigError{Field: "stats.default_limit", Message: "default stats limit cannot be negative"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
