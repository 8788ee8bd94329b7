package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDiagnosticLog_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sourdough.log")

	first, err := OpenDiagnosticLog(path, false)
	require.NoError(t, err)
	first.Info("config saved", "path", "config.json")
	require.NoError(t, first.Close())

	second, err := OpenDiagnosticLog(path, false)
	require.NoError(t, err)
	second.Warn("log file already exists", "path", "starter_log.xlsx")
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level=INFO")
	assert.Contains(t, lines[0], `msg="config saved"`)
	assert.Contains(t, lines[0], "time=")
	assert.Contains(t, lines[1], "level=WARN")
}

func TestNewLogger_Levels(t *testing.T) {
	var quiet, verbose bytes.Buffer

	NewLogger(&quiet, false).Debug("hidden")
	NewLogger(&verbose, true).Debug("shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "level=DEBUG")
}

func TestOpenDiagnosticLog_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := OpenDiagnosticLog(filepath.Join(blocker, "sourdough.log"), false)
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	Discard().Error("dropped")
	assert.NoError(t, (&DiagnosticLog{}).Close())
}
