package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T, extra string) *app {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "sysctld.ini")
	content := "[log]\nfile = " + filepath.Join(dir, "sysctld.log") + "\n" + extra
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0o644))

	saved := options
	t.Cleanup(func() { options = saved })
	options.Configuration = cfg
	options.EnvFile = nil

	a, err := newApp()
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestMonitorGroups(t *testing.T) {
	a := testApp(t, "")
	assert.Equal(t, []string{"system", "security"}, a.monitorGroups(nil))
	assert.Equal(t, []string{"security"}, a.monitorGroups([]string{"security"}))

	a = testApp(t, "[monitor]\ngroups = security\n")
	assert.Equal(t, []string{"security"}, a.monitorGroups(nil))
}

func TestMetricsHandler(t *testing.T) {
	a := testApp(t, "")
	r := a.dispatcher.Execute("no such command")
	require.False(t, r.Success)

	handler := newMetricsServer(a).createHandler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sysctld_commands_unrecognized_total 1")
	assert.Contains(t, rec.Body.String(), `sysctld_monitor_up{group="system"} 0`)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	var health map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, "ok", health["status"])

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/metrics", strings.NewReader("")))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLogsReadBack(t *testing.T) {
	a := testApp(t, "")
	a.log.WithField("verb", "lock").Info("hello from test")
	text, err := a.sink.ReadLog(-4096, 0)
	require.NoError(t, err)
	assert.Contains(t, text, "hello from test")
}
