// Package logger provides leveled logging for the Skilldex CLI.
//
// Debug, Info and Section output appears only when verbose mode is
// enabled via the --verbose flag, tracing the routing pipeline for
// users tuning their trigger keywords. Warn and Error always print:
// a failing route log or a skipped corpus entry should be visible
// even in quiet runs. Everything goes to stderr so surfaces that own
// stdout (MCP over stdio, JSON output) stay uncorrupted.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log output, which defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// emit writes one tagged line. Gated lines are dropped unless verbose
// mode is on.
func emit(tag string, gated bool, format string, args []any) {
	mu.RLock()
	defer mu.RUnlock()
	if gated && !verbose {
		return
	}
	fmt.Fprintf(output, tag+" "+format+"\n", args...)
}

// Debug traces routing internals; verbose only.
func Debug(format string, args ...any) {
	emit("[DEBUG]", true, format, args)
}

// Info reports pipeline progress; verbose only.
func Info(format string, args ...any) {
	emit("[INFO]", true, format, args)
}

// Section prints a header separating pipeline stages; verbose only.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Warn flags degraded behaviour. Always printed.
func Warn(format string, args ...any) {
	emit("[WARN]", false, format, args)
}

// Error reports failures. Always printed.
func Error(format string, args ...any) {
	emit("[ERROR]", false, format, args)
}
