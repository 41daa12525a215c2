package logger

import (
	"github.com/ochinchina/sysctld/faults"
)

// NullLogger discard the log
type NullLogger struct{}

// NewNullLogger creates a NullLogger
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Write write the log to this logger
func (l *NullLogger) Write(p []byte) (int, error) {
	return len(p), nil
}

// Close close the logger
func (l *NullLogger) Close() error {
	return nil
}

// ReadLog read the log, return error
func (l *NullLogger) ReadLog(offset, length int64) (string, error) {
	return "", faults.NewFault(faults.Unsupported, "log is not kept in a file")
}

// ReadTailLog tail the log, return error
func (l *NullLogger) ReadTailLog(offset, length int64) (string, int64, bool, error) {
	return "", 0, false, faults.NewFault(faults.Unsupported, "log is not kept in a file")
}
