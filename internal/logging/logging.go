// Package logging configures the process-wide log stream. Every significant
// event is written as one timestamped line to both stderr and the append-only
// log file, so a run can be diagnosed after the fact without re-running it.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Setup routes the standard logger to stderr plus the given append-only file.
// The returned closer flushes and releases the file handle.
func Setup(logFile string) (io.Closer, error) {
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logFile, err)
	}

	log.SetOutput(io.MultiWriter(os.Stderr, f))
	log.SetFlags(log.Ldate | log.Ltime)

	return f, nil
}
