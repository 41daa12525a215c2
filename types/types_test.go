package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ochinchina/sysctld/faults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerb(t *testing.T) {
	for _, v := range Verbs() {
		parsed, err := ParseVerb(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	_, err := ParseVerb("unknown")
	assert.Error(t, err)
	_, err = ParseVerb("format_disk")
	assert.Error(t, err)
}

func TestParseProcessStatus(t *testing.T) {
	assert.Equal(t, StatusRunning, ParseProcessStatus("R"))
	assert.Equal(t, StatusSleeping, ParseProcessStatus("sleep"))
	assert.Equal(t, StatusSleeping, ParseProcessStatus("idle"))
	assert.Equal(t, StatusZombie, ParseProcessStatus("zombie"))
	assert.Equal(t, StatusStopped, ParseProcessStatus("stop"))
	assert.Equal(t, StatusUnknown, ParseProcessStatus("?"))
}

func TestFilterAndSort(t *testing.T) {
	ps := ProcessSnapshots{
		{Pid: 3, Name: "b", CPUPercent: 1, Status: StatusSleeping},
		{Pid: 1, Name: "a", CPUPercent: 9, Status: StatusRunning},
		{Pid: 2, Name: "c", CPUPercent: 5, Status: StatusRunning},
	}
	running := StatusRunning
	assert.Len(t, ps.Filter(&running), 2)
	assert.Len(t, ps.Filter(nil), 3)

	ps.SortByCPU()
	assert.Equal(t, int32(1), ps[0].Pid)
	ps.SortByName()
	assert.Equal(t, "a", ps[0].Name)
}

func TestResultJSON(t *testing.T) {
	r := Fail("lock", faults.NewFault(faults.ActionFailed, "exit status 1"))
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"lock failed: ActionFailed: exit status 1","error":"ActionFailed","verb":"lock"}`, string(b))

	b, err = json.Marshal(Succeed("ok", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"ok"}`, string(b))
}

func TestFailUntaggedError(t *testing.T) {
	r := Fail("screenshot", errors.New("boom"))
	assert.Equal(t, faults.ActionFailed, r.Error)
	assert.False(t, r.Success)
}
