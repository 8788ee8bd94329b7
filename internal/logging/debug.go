package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// debugOut is where Debugf writes; tests swap it
var debugOut io.Writer = os.Stderr

// DebugEnabled reports whether SOURDOUGH_DEBUG asks for stderr tracing.
// It reads the variable the same way the settings loader does.
func DebugEnabled() bool {
	v := os.Getenv("SOURDOUGH_DEBUG")
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err != nil || b
}

// Debugf prints a formatted trace line to stderr when debug mode is enabled
func Debugf(format string, args ...any) {
	if DebugEnabled() {
		fmt.Fprintf(debugOut, format, args...)
	}
}
