package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds every blocking OS invocation
const DefaultTimeout = 30 * time.Second

// waitDelay bounds the wait for output pipes held open by descendants once
// the invocation was killed
const waitDelay = time.Second

// ErrTimeout the invocation did not exit before the timeout elapsed
var ErrTimeout = errors.New("timed out waiting for command to exit")

// Invocation a program and its argument vector. No shell is involved.
type Invocation struct {
	Path string
	Args []string
	// Env extra KEY=VALUE pairs appended to the current environment
	Env []string
}

func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Path
	}
	return i.Path + " " + strings.Join(i.Args, " ")
}

// ExitError the invocation ran and exited with a non-zero code
type ExitError struct {
	Code   int
	Output string
}

func (e *ExitError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("exit status %d: %s", e.Code, e.Output)
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode returns the exit code carried by err, 0 for nil and -1 if err is
// not an exit error
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return -1
}

// Runner executes invocations
type Runner interface {
	// Run blocks until the invocation exits or the timeout elapses
	Run(ctx context.Context, inv Invocation) error
	// Start spawns the invocation detached and returns its pid without waiting
	Start(inv Invocation) (int, error)
}

// ExecRunner runs invocations with os/exec
type ExecRunner struct {
	Timeout time.Duration
}

// NewExecRunner creates an ExecRunner, timeout <= 0 means DefaultTimeout
func NewExecRunner(timeout time.Duration) *ExecRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ExecRunner{Timeout: timeout}
}

// Run implements Runner. On timeout the invocation and everything it
// spawned into its process group is killed.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) error {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	if len(inv.Env) > 0 {
		cmd.Env = append(os.Environ(), inv.Env...)
	}
	cmd.SysProcAttr = groupProcAttr()
	cmd.Cancel = func() error { return killGroup(cmd.Process) }
	cmd.WaitDelay = waitDelay
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return ErrTimeout
	}
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return &ExitError{Code: ee.ExitCode(), Output: strings.TrimSpace(out.String())}
		}
		return err
	}
	return nil
}

// Start implements Runner. The child is reaped in the background.
func (r *ExecRunner) Start(inv Invocation) (int, error) {
	cmd := exec.Command(inv.Path, inv.Args...)
	if len(inv.Env) > 0 {
		cmd.Env = append(os.Environ(), inv.Env...)
	}
	cmd.SysProcAttr = detachedProcAttr()
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	go func() {
		_ = cmd.Wait()
	}()
	return pid, nil
}
