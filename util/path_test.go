package util

import (
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	usr, err := user.Current()
	require.NoError(t, err)

	p, err := ExpandPath("~/shots/screen.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(usr.HomeDir, "shots", "screen.png"), p)

	p, err = ExpandPath("relative/screen.png")
	require.NoError(t, err)
	assert.Equal(t, "relative/screen.png", p)

	_, err = ExpandPath("~no-such-user-sysctld/x")
	assert.Error(t, err)
}
