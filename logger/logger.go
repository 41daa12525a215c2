package logger

import (
	"io"
	"strings"
	"sync"
)

// Logger a log sink the system control service writes its entries to
type Logger interface {
	io.WriteCloser
	ReadLog(offset, length int64) (string, error)
	ReadTailLog(offset, length int64) (string, int64, bool, error)
}

// NewLogger create a sink for a comma separated list of destinations. Each
// destination is /dev/stdout, /dev/stderr, /dev/null or a file path. Reads are
// served by the first file destination.
func NewLogger(logFile string, maxBytes int64, backups int) Logger {
	files := splitLogFile(logFile)
	loggers := make([]Logger, 0)
	for _, f := range files {
		loggers = append(loggers, createLogger(f, &sync.Mutex{}, maxBytes, backups))
	}
	if len(loggers) == 0 {
		loggers = append(loggers, NewNullLogger())
	}
	return NewCompositeLogger(loggers)
}

func splitLogFile(logFile string) []string {
	files := make([]string, 0)
	for _, f := range strings.Split(logFile, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	return files
}

func createLogger(logFile string, locker sync.Locker, maxBytes int64, backups int) Logger {
	switch logFile {
	case "/dev/stdout":
		return NewStdoutLogger()
	case "/dev/stderr":
		return NewStderrLogger()
	case "/dev/null", "":
		return NewNullLogger()
	}
	return NewFileLogger(logFile, maxBytes, backups, locker)
}
