package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ochinchina/sysctld/faults"
)

// FileLogger appends log entries to a file and rotates it to name.1 ...
// name.<backups> once it grows past maxSize. maxSize <= 0 disables rotation.
type FileLogger struct {
	name     string
	maxSize  int64
	backups  int
	fileSize int64
	file     *os.File
	locker   sync.Locker
}

// NewFileLogger create a FileLogger object
func NewFileLogger(name string, maxSize int64, backups int, locker sync.Locker) *FileLogger {
	if locker == nil {
		locker = &sync.Mutex{}
	}
	l := &FileLogger{name: name, maxSize: maxSize, backups: backups, locker: locker}
	_ = l.open()
	return l
}

func (l *FileLogger) open() error {
	if dir := filepath.Dir(l.name); dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(l.name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fail to open log file --%s-- with error %v\n", l.name, err)
		return err
	}
	l.file = f
	l.fileSize = 0
	if info, err := f.Stat(); err == nil {
		l.fileSize = info.Size()
	}
	return nil
}

func (l *FileLogger) rotate() error {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
	if l.backups > 0 {
		for i := l.backups - 1; i > 0; i-- {
			src := fmt.Sprintf("%s.%d", l.name, i)
			if _, err := os.Stat(src); err == nil {
				os.Rename(src, fmt.Sprintf("%s.%d", l.name, i+1))
			}
		}
		os.Rename(l.name, l.name+".1")
	} else {
		os.Remove(l.name)
	}
	return l.open()
}

// Write appends p, rotating first when the file is full
func (l *FileLogger) Write(p []byte) (int, error) {
	l.locker.Lock()
	defer l.locker.Unlock()

	if l.file == nil {
		if err := l.open(); err != nil {
			return 0, err
		}
	}
	if l.maxSize > 0 && l.fileSize+int64(len(p)) > l.maxSize && l.fileSize > 0 {
		if err := l.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := l.file.Write(p)
	l.fileSize += int64(n)
	return n, err
}

// ReadLog reads length bytes from offset of the current file. A negative
// offset with zero length reads the last -offset bytes, zero length reads to
// the end.
func (l *FileLogger) ReadLog(offset, length int64) (string, error) {
	if (offset < 0 && length != 0) || (offset >= 0 && length < 0) {
		return "", faults.NewFault(faults.InvalidArgument, "bad offset or length")
	}

	l.locker.Lock()
	defer l.locker.Unlock()

	f, err := os.Open(l.name)
	if err != nil {
		return "", faults.Wrap(faults.ActionFailed, err, "read log file")
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return "", faults.Wrap(faults.ActionFailed, err, "read log file")
	}
	size := info.Size()

	switch {
	case offset < 0:
		offset += size
		if offset < 0 {
			offset = 0
		}
		length = size - offset
	case offset >= size:
		return "", nil
	case length == 0 || offset+length > size:
		length = size - offset
	}
	return readAt(f, offset, length)
}

// ReadTailLog reads at most length bytes from offset and returns the data,
// the offset to continue from and whether offset already is at the end
func (l *FileLogger) ReadTailLog(offset, length int64) (string, int64, bool, error) {
	if offset < 0 || length < 0 {
		return "", offset, false, faults.NewFault(faults.InvalidArgument, "offset and length must not be negative")
	}

	l.locker.Lock()
	defer l.locker.Unlock()

	f, err := os.Open(l.name)
	if err != nil {
		return "", 0, false, faults.Wrap(faults.ActionFailed, err, "read log file")
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return "", 0, false, faults.Wrap(faults.ActionFailed, err, "read log file")
	}
	size := info.Size()
	if offset >= size {
		return "", size, true, nil
	}
	if offset+length > size {
		length = size - offset
	}
	s, err := readAt(f, offset, length)
	if err != nil {
		return "", offset, false, err
	}
	return s, offset + int64(len(s)), false, nil
}

func readAt(f *os.File, offset, length int64) (string, error) {
	b := make([]byte, length)
	n, err := f.ReadAt(b, offset)
	if err != nil && err != io.EOF {
		return "", faults.Wrap(faults.ActionFailed, err, "read log file")
	}
	return string(b[:n]), nil
}

// Close close the file logger
func (l *FileLogger) Close() error {
	l.locker.Lock()
	defer l.locker.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}
