package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// DiagnosticLog is the append-only operational log written alongside the tracker files.
// Nothing in the tracker reads it back.
type DiagnosticLog struct {
	*slog.Logger
	file *os.File
}

// OpenDiagnosticLog opens (or creates) the log at path for appending.
// Debug lowers the level from Info to Debug.
func OpenDiagnosticLog(path string, debug bool) (*DiagnosticLog, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	return &DiagnosticLog{
		Logger: NewLogger(f, debug),
		file:   f,
	}, nil
}

// NewLogger creates a level-tagged, timestamped text logger writing to w.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Close closes the underlying file.
func (d *DiagnosticLog) Close() error {
	if d.file == nil {
		return nil
	}
	return d.file.Close()
}
