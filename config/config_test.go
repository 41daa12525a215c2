package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ochinchina/sysctld/config"
	"github.com/ochinchina/sysctld/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	root, err := config.Load(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)

	require.Len(t, root.Commands, 18)
	assert.Equal(t, "open browser", root.Commands[0].Trigger)
	assert.Equal(t, "lock computer", root.Commands[17].Trigger)
	require.Len(t, root.Critical, 2)
	assert.Equal(t, 20.0, root.Settings.HighCPUThreshold)
	assert.Equal(t, "/dev/stdout,system_control.log", root.Log.File)
}

func TestLoadIni(t *testing.T) {
	path := writeFile(t, "sysctld.ini", `
[sysctld]
command_timeout = 10

[command.open browser]
verb = open_application
app = firefox
`)
	root, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, root.Commands, 1)
	assert.Equal(t, "firefox", root.Commands[0].App)
	assert.Equal(t, 10, root.Settings.CommandTimeout)
	assert.Len(t, root.Critical, 2)
}

func TestLoadYaml(t *testing.T) {
	path := writeFile(t, "sysctld.yaml", `
critical:
  - name: desktop
    processes: [Xorg]
monitor:
  groups: [desktop]
`)
	root, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, root.Critical, 1)
	assert.Equal(t, []string{"desktop"}, root.Monitor.Groups)
	assert.Equal(t, 120, root.Monitor.Interval)
	assert.Len(t, root.Commands, 18)
}

func TestLoadInvalid(t *testing.T) {
	path := writeFile(t, "sysctld.ini", `
[command.wipe]
verb = format_disk
`)
	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format_disk")
}

func TestExpandEnv(t *testing.T) {
	m := model.Root{
		Settings: &model.Settings{ScreenshotPath: "before/${TEST_VAR}/after.png"},
		Commands: []*model.Command{
			{Trigger: "open", Verb: "open_application", App: "$TEST_VAR", Args: []string{"--dir=${TEST_VAR}"}},
		},
	}

	val := "THIS IS A TEST"
	t.Setenv("TEST_VAR", val)

	config.ExpandEnv(&m)
	assert.Equal(t, "before/"+val+"/after.png", m.Settings.ScreenshotPath)
	assert.Equal(t, val, m.Commands[0].App)
	assert.Equal(t, []string{"--dir=" + val}, m.Commands[0].Args)
}

func TestBuiltinIsValid(t *testing.T) {
	root := new(model.Root)
	require.NoError(t, config.Complete(root))
	assert.NoError(t, model.Validate(root))
	assert.Len(t, root.Commands, 18)
}
