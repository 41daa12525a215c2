//go:build !windows

package signals

import (
	"os/exec"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSignal(t *testing.T) {
	sig, err := ToSignal("TERM")
	require.NoError(t, err)
	assert.Equal(t, syscall.SIGTERM, sig)

	sig, err = ToSignal("sigkill")
	require.NoError(t, err)
	assert.Equal(t, syscall.SIGKILL, sig)

	sig, err = ToSignal("")
	require.NoError(t, err)
	assert.Equal(t, syscall.SIGTERM, sig)

	_, err = ToSignal("BOGUS")
	assert.Error(t, err)
}

func TestKill(t *testing.T) {
	cmd := exec.Command("sleep", "10")
	require.NoError(t, cmd.Start())
	require.NoError(t, Kill(cmd.Process.Pid, syscall.SIGTERM))
	err := cmd.Wait()
	assert.Error(t, err)
}
