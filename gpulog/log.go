// Package gpulog provides the rasterizer's host-side diagnostic logging:
// plain fmt.Fprintf(os.Stderr, ...) lines tagged with a subsystem prefix,
// the same convention terminal_host.go and its peers use throughout the
// pack rather than a structured logging library.
package gpulog

import (
	"fmt"
	"os"
)

// Errorf logs a formatted error line tagged with system (e.g. "G3D",
// "TEX", "XFORM").
func Errorf(system, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s: "+format+"\n", append([]any{system}, args...)...)
}

// Warnf logs a formatted warning line.
func Warnf(system, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s: warning: "+format+"\n", append([]any{system}, args...)...)
}
