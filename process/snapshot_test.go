package process

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemSourceSeesItself(t *testing.T) {
	snaps, err := NewSystemSource(nil, 50*time.Millisecond).Snapshots()
	require.NoError(t, err)
	require.NotEmpty(t, snaps)

	found := false
	for _, s := range snaps {
		assert.GreaterOrEqual(t, s.Pid, int32(0))
		if int(s.Pid) == os.Getpid() {
			found = true
		}
	}
	assert.True(t, found, "own pid not listed")
}

func TestPsListerListsNames(t *testing.T) {
	names, err := PsLister{}.ProcessNames()
	require.NoError(t, err)
	assert.NotEmpty(t, names)
}

type stepTimer struct {
	readings []float64
	calls    int
	err      error
}

func (t *stepTimer) Percent(interval time.Duration) (float64, error) {
	if t.err != nil {
		return 0, t.err
	}
	v := t.readings[t.calls]
	t.calls++
	return v, nil
}

func TestSampleCPUUsesWindowReading(t *testing.T) {
	// a long lived process whose lifetime average is low but is busy now
	busy := &stepTimer{readings: []float64{0, 95}}
	idle := &stepTimer{readings: []float64{0, 0.5}}
	gone := &stepTimer{err: errors.New("no such process")}

	var slept []time.Duration
	usage := sampleCPU([]cpuTimer{busy, idle, gone}, 250*time.Millisecond, func(d time.Duration) {
		slept = append(slept, d)
	})

	assert.Equal(t, []float64{95, 0.5, 0}, usage)
	assert.Equal(t, []time.Duration{250 * time.Millisecond}, slept)
	assert.Equal(t, 2, busy.calls)
}

func TestSampleCPUWithoutProcesses(t *testing.T) {
	usage := sampleCPU(nil, time.Second, func(time.Duration) { t.Fatal("sleep without processes") })
	assert.Empty(t, usage)
}
