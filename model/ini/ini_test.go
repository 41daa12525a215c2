package ini

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[sysctld]
platform = linux
high_cpu_threshold = 35.5

[monitor]
interval = 60
groups = system,security

[critical.system]
processes = systemd, launchd, explorer.exe

[critical.security]
processes = antivirus,firewall

[command.open browser]
verb = open_application
app = chrome
args = --new-window "https://example.com/#top"

[command.open]
verb = open_application
app = xdg-open

[command.lock computer]
verb = lock
`

func TestLoadReader(t *testing.T) {
	var r Reader
	root, err := r.LoadReader(strings.NewReader(sample))
	require.NoError(t, err)

	require.NotNil(t, root.Settings)
	assert.Equal(t, "linux", root.Settings.Platform)
	assert.Equal(t, 35.5, root.Settings.HighCPUThreshold)
	assert.Equal(t, 30, root.Settings.CommandTimeout)

	assert.Nil(t, root.Log)

	require.NotNil(t, root.Monitor)
	assert.Equal(t, 60, root.Monitor.Interval)
	assert.Equal(t, 5, root.Monitor.StopTimeout)
	assert.Equal(t, []string{"system", "security"}, root.Monitor.Groups)

	require.Len(t, root.Critical, 2)
	assert.Equal(t, "system", root.Critical[0].Name)
	assert.Equal(t, []string{"systemd", "launchd", "explorer.exe"}, root.Critical[0].Processes)
	assert.Equal(t, "security", root.Critical[1].Name)

	require.Len(t, root.Commands, 3)
	assert.Equal(t, "open browser", root.Commands[0].Trigger)
	assert.Equal(t, "open_application", root.Commands[0].Verb)
	assert.Equal(t, "chrome", root.Commands[0].App)
	assert.Equal(t, []string{"--new-window", "https://example.com/#top"}, root.Commands[0].Args)
	assert.Equal(t, "open", root.Commands[1].Trigger)
	assert.Empty(t, root.Commands[1].Args)
	assert.Equal(t, "lock computer", root.Commands[2].Trigger)
}
