package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Logger is a leveled file logger for the HTTP layer.
type Logger struct {
	file   *os.File
	logger *log.Logger
}

// NewLogger opens (or creates) the log file in append mode.
func NewLogger(filePath string) (*Logger, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &Logger{
		file:   file,
		logger: log.New(file, "", log.LstdFlags),
	}, nil
}

// Infof logs an info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logger.SetPrefix("INFO: ")
	l.logger.Printf(format, args...)
}

// Warnf logs a warning.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logger.SetPrefix("WARN: ")
	l.logger.Printf(format, args...)
}

// Errorf logs an error.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logger.SetPrefix("ERROR: ")
	l.logger.Printf(format, args...)
}

// Close closes the log file.
func (l *Logger) Close() {
	l.file.Close()
}

// RotateLog reopens the log file once a day so external rotation can move
// the old file aside. Run it in its own goroutine.
func (l *Logger) RotateLog() {
	for {
		time.Sleep(24 * time.Hour)
		l.Close()
		file, err := os.OpenFile(l.file.Name(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Printf("failed to rotate log file: %v\n", err)
			return
		}
		l.file = file
		l.logger.SetOutput(file)
	}
}
