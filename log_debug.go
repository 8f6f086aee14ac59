//go:build debug

package sweepx

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[sweepx DEBUG] ", log.LstdFlags)

// logDebugf writes a debug message to stderr through logger.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
