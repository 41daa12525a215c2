package logger

import (
	"sync"

	"github.com/ochinchina/sysctld/faults"
)

// CompositeLogger dispatch the log message to other loggers. Writes are
// serialized, so it is safe to share between goroutines.
type CompositeLogger struct {
	lock    sync.Mutex
	loggers []Logger
}

// NewCompositeLogger create a new CompositeLogger object
func NewCompositeLogger(loggers []Logger) *CompositeLogger {
	return &CompositeLogger{loggers: loggers}
}

// Write dispatch the log data to all loggers, the first logger decides the result
func (cl *CompositeLogger) Write(p []byte) (n int, err error) {
	cl.lock.Lock()
	defer cl.lock.Unlock()

	for i, logger := range cl.loggers {
		if i == 0 {
			n, err = logger.Write(p)
		} else {
			logger.Write(p)
		}
	}
	return
}

// Close close all the loggers
func (cl *CompositeLogger) Close() (err error) {
	cl.lock.Lock()
	defer cl.lock.Unlock()

	for i, logger := range cl.loggers {
		if i == 0 {
			err = logger.Close()
		} else {
			logger.Close()
		}
	}
	return
}

// ReadLog read log data from the first logger backed by a file
func (cl *CompositeLogger) ReadLog(offset, length int64) (string, error) {
	if fl := cl.fileLogger(); fl != nil {
		return fl.ReadLog(offset, length)
	}
	return "", faults.NewFault(faults.Unsupported, "log is not kept in a file")
}

// ReadTailLog tail the log data from the first logger backed by a file
func (cl *CompositeLogger) ReadTailLog(offset, length int64) (string, int64, bool, error) {
	if fl := cl.fileLogger(); fl != nil {
		return fl.ReadTailLog(offset, length)
	}
	return "", 0, false, faults.NewFault(faults.Unsupported, "log is not kept in a file")
}

func (cl *CompositeLogger) fileLogger() *FileLogger {
	cl.lock.Lock()
	defer cl.lock.Unlock()
	for _, logger := range cl.loggers {
		if fl, ok := logger.(*FileLogger); ok {
			return fl
		}
	}
	return nil
}
