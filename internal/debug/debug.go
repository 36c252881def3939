// Package debug provides debug logging utilities.
package debug

import (
	"fmt"
	"io"
	"os"
	"time"
)

var (
	enabled           = os.Getenv("COMMITMENT_DEBUG") == "1"
	out     io.Writer = os.Stderr
)

// Logf writes a debug message to stderr if COMMITMENT_DEBUG=1 or debug
// logging was switched on with SetEnabled.
func Logf(format string, args ...any) {
	if !enabled {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[DEBUG %s] %s\n", timestamp, msg)
}

// SetEnabled turns debug logging on or off, overriding COMMITMENT_DEBUG.
func SetEnabled(v bool) {
	enabled = v
}

// SetOutput redirects debug output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Enabled returns true if debug logging is enabled
func Enabled() bool {
	return enabled
}
