// Package logger provides logging functionality for the Jira importer.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// DefaultLogFile is the log file written in the working directory.
const DefaultLogFile = "jira_import.log"

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted informational message.
	Logf(format string, args ...interface{})
	// Errorf logs a formatted error message.
	Errorf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}

// fileLogger writes timestamped lines to stdout and a local log file.
type fileLogger struct {
	out *log.Logger
}

// NewFileLogger creates a logger writing to both stdout and the given file.
// The file is opened in append mode and stays open for the process lifetime.
func NewFileLogger(path string) (Logger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &fileLogger{
		out: log.New(io.MultiWriter(os.Stdout, file), "", log.LstdFlags),
	}, nil
}

// Logf writes a timestamped informational line.
func (f *fileLogger) Logf(format string, args ...interface{}) {
	f.out.Printf("INFO "+format, args...)
}

// Errorf writes a timestamped error line.
func (f *fileLogger) Errorf(format string, args ...interface{}) {
	f.out.Printf("ERROR "+format, args...)
}
