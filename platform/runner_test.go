//go:build !windows

package platform

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunnerExitCode(t *testing.T) {
	r := NewExecRunner(5 * time.Second)
	err := r.Run(context.Background(), Invocation{Path: "sh", Args: []string{"-c", "echo oops; exit 3"}})
	require.Error(t, err)
	assert.Equal(t, 3, ExitCode(err))
	assert.Contains(t, err.Error(), "oops")
	assert.NoError(t, r.Run(context.Background(), Invocation{Path: "true"}))
}

func TestExecRunnerTimeout(t *testing.T) {
	r := NewExecRunner(100 * time.Millisecond)
	start := time.Now()
	err := r.Run(context.Background(), Invocation{Path: "sleep", Args: []string{"5"}})
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestExecRunnerTimeoutKillsDescendants(t *testing.T) {
	r := NewExecRunner(500 * time.Millisecond)
	start := time.Now()
	// the backgrounded sleep inherits stdout and outlives its parent
	err := r.Run(context.Background(), Invocation{Path: "sh", Args: []string{"-c", "sleep 6 & sleep 20"}})
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestExecRunnerEnv(t *testing.T) {
	r := NewExecRunner(0)
	err := r.Run(context.Background(), Invocation{
		Path: "sh",
		Args: []string{"-c", `test "$SYSCTLD_TEST" = "hello"`},
		Env:  []string{"SYSCTLD_TEST=hello"},
	})
	assert.NoError(t, err)
}

func TestExecRunnerStartDoesNotWait(t *testing.T) {
	r := NewExecRunner(0)
	start := time.Now()
	pid, err := r.Start(Invocation{Path: "sleep", Args: []string{"2"}})
	require.NoError(t, err)
	assert.Greater(t, pid, 0)
	assert.Less(t, time.Since(start), time.Second)

	_, err = r.Start(Invocation{Path: "/nonexistent/sysctld-test-binary"})
	assert.Error(t, err)
}

func TestExitCodeOfPlainError(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, -1, ExitCode(errors.New("boom")))
}
