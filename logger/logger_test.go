package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ochinchina/sysctld/faults"
	"github.com/ochinchina/sysctld/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoggerRotate(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.log")
	l := NewFileLogger(name, 10, 2, nil)
	defer l.Close()

	for i := 0; i < 4; i++ {
		_, err := l.Write([]byte(fmt.Sprintf("line-%d\n", i)))
		require.NoError(t, err)
	}

	b, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "line-3\n", string(b))
	b, err = os.ReadFile(name + ".1")
	require.NoError(t, err)
	assert.Equal(t, "line-2\n", string(b))
	b, err = os.ReadFile(name + ".2")
	require.NoError(t, err)
	assert.Equal(t, "line-1\n", string(b))
	_, err = os.Stat(name + ".3")
	assert.True(t, os.IsNotExist(err))
}

func TestFileLoggerWithoutBackups(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.log")
	l := NewFileLogger(name, 5, 0, nil)
	defer l.Close()

	l.Write([]byte("first\n"))
	l.Write([]byte("second\n"))
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(b))
}

func TestFileLoggerReadLog(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nested", "test.log")
	l := NewFileLogger(name, 0, 0, nil)
	defer l.Close()
	_, err := l.Write([]byte("0123456789"))
	require.NoError(t, err)

	s, err := l.ReadLog(2, 3)
	require.NoError(t, err)
	assert.Equal(t, "234", s)

	s, err = l.ReadLog(-4, 0)
	require.NoError(t, err)
	assert.Equal(t, "6789", s)

	s, err = l.ReadLog(5, 0)
	require.NoError(t, err)
	assert.Equal(t, "56789", s)

	s, err = l.ReadLog(20, 2)
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = l.ReadLog(-1, 3)
	assert.True(t, faults.Is(err, faults.InvalidArgument))
}

func TestFileLoggerReadTailLog(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.log")
	l := NewFileLogger(name, 0, 0, nil)
	defer l.Close()
	l.Write([]byte("abcdef"))

	s, next, overflow, err := l.ReadTailLog(0, 4)
	require.NoError(t, err)
	assert.Equal(t, "abcd", s)
	assert.Equal(t, int64(4), next)
	assert.False(t, overflow)

	s, next, _, err = l.ReadTailLog(next, 10)
	require.NoError(t, err)
	assert.Equal(t, "ef", s)
	assert.Equal(t, int64(6), next)

	s, next, overflow, err = l.ReadTailLog(next, 10)
	require.NoError(t, err)
	assert.Empty(t, s)
	assert.Equal(t, int64(6), next)
	assert.True(t, overflow)
}

func TestCompositeLogger(t *testing.T) {
	name := filepath.Join(t.TempDir(), "composite.log")
	l := NewLogger("/dev/null, "+name, 0, 0)
	defer l.Close()

	n, err := l.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	s, err := l.ReadLog(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestCompositeLoggerWithoutFile(t *testing.T) {
	l := NewLogger("/dev/null", 0, 0)
	_, err := l.ReadLog(0, 0)
	assert.True(t, faults.Is(err, faults.Unsupported))

	l = NewLogger("", 0, 0)
	_, err = l.Write([]byte("discarded"))
	assert.NoError(t, err)
}

func TestSetup(t *testing.T) {
	name := filepath.Join(t.TempDir(), "system_control.log")
	l, sink, err := Setup(&model.Log{File: name, Level: "warn", Format: "json"})
	require.NoError(t, err)
	defer sink.Close()

	l.Info("hidden")
	l.WithField("verb", "lock").Warn("shown")

	s, err := sink.ReadLog(0, 0)
	require.NoError(t, err)
	assert.False(t, strings.Contains(s, "hidden"))
	assert.Contains(t, s, `"verb":"lock"`)
	assert.Contains(t, s, `"level":"warning"`)

	_, _, err = Setup(&model.Log{File: name, Level: "loud"})
	assert.Error(t, err)
}
