//go:build !debug

package sweepx

// logDebugf is a no-op outside debug builds (see log_debug.go).
func logDebugf(format string, v ...interface{}) {}
