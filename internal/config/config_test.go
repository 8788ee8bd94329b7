package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"SOURDOUGH_DIR", "SOURDOUGH_CONFIG_FILE", "SOURDOUGH_LOG_FILE",
		"SOURDOUGH_DIAG_LOG", "SOURDOUGH_STATS_LIMIT", "SOURDOUGH_DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, ".", cfg.Paths.Dir)
	assert.Equal(t, filepath.Join(".", "config.json"), cfg.ConfigPath())
	assert.Equal(t, filepath.Join(".", "starter_log.xlsx"), cfg.LogPath())
	assert.Equal(t, filepath.Join(".", "sourdough.log"), cfg.DiagLogPath())
	assert.Equal(t, 5, cfg.Stats.DefaultLimit)
	assert.False(t, cfg.Debug)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_AbsoluteFileNamesIgnoreDir(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "elsewhere.xlsx")
	cfg := NewConfig()
	cfg.Paths.Dir = "/data"
	cfg.Paths.LogFile = abs

	assert.Equal(t, abs, cfg.LogPath())
	assert.Equal(t, filepath.Join("/data", "config.json"), cfg.ConfigPath())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOURDOUGH_DIR", "/tmp/starter")
	t.Setenv("SOURDOUGH_CONFIG_FILE", "settings.json")
	t.Setenv("SOURDOUGH_LOG_FILE", "feedings.db")
	t.Setenv("SOURDOUGH_DIAG_LOG", "diag.log")
	t.Setenv("SOURDOUGH_STATS_LIMIT", "12")
	t.Setenv("SOURDOUGH_DEBUG", "1")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, filepath.Join("/tmp/starter", "settings.json"), cfg.ConfigPath())
	assert.Equal(t, filepath.Join("/tmp/starter", "feedings.db"), cfg.LogPath())
	assert.Equal(t, filepath.Join("/tmp/starter", "diag.log"), cfg.DiagLogPath())
	assert.Equal(t, 12, cfg.Stats.DefaultLimit)
	assert.True(t, cfg.Debug)
}

func TestConfig_LoadFromEnvironment_BadValuesKeepDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOURDOUGH_STATS_LIMIT", "many")
	t.Setenv("SOURDOUGH_DEBUG", "false")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 5, cfg.Stats.DefaultLimit)
	assert.False(t, cfg.Debug)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty dir", func(c *Config) { c.Paths.Dir = "" }, "paths.dir"},
		{"empty config file", func(c *Config) { c.Paths.ConfigFile = "" }, "paths.config_file"},
		{"empty log file", func(c *Config) { c.Paths.LogFile = "" }, "paths.log_file"},
		{"empty diag log", func(c *Config) { c.Paths.DiagLog = "" }, "paths.diag_log"},
		{"log collides with config", func(c *Config) { c.Paths.LogFile = "config.json" }, "paths.log_file"},
		{"negative stats limit", func(c *Config) { c.Stats.DefaultLimit = -1 }, "stats.default_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOURDOUGH_DIR", "/from/env")

	dir := "/from/flag"
	logFile := "log.sqlite"
	debug := true

	cfg, err := NewLoader().LoadWithOverrides(&Overrides{Dir: &dir, LogFile: &logFile, Debug: &debug})
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", cfg.Paths.Dir)
	assert.Equal(t, filepath.Join("/from/flag", "log.sqlite"), cfg.LogPath())
	assert.True(t, cfg.Debug)
}

func TestLoader_LoadWithOverrides_Invalid(t *testing.T) {
	clearEnv(t)
	empty := ""

	_, err := NewLoader().LoadWithOverrides(&Overrides{ConfigFile: &empty})
	assert.Error(t, err)
}

func TestLoader_LoadWithOverrides_NilKeepsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOURDOUGH_LOG_FILE", "starter.db")

	cfg, err := NewLoader().LoadWithOverrides(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".", "starter.db"), cfg.LogPath())
	assert.False(t, cfg.Debug)
}

func TestParseIntWithFallback(t *testing.T) {
	assert.Equal(t, 3, ParseIntWithFallback("3", 9))
	assert.Equal(t, 9, ParseIntWithFallback("x", 9))
}
