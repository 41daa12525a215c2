package process

import (
	"errors"
	"testing"
	"time"

	"github.com/ochinchina/sysctld/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHost struct {
	network int
	system  int
	err     error
}

func (h *countingHost) SystemInfo() (types.SystemInfo, error) {
	h.system++
	return types.SystemInfo{CPUPercent: float64(h.system)}, nil
}

func (h *countingHost) NetworkInfo() (types.NetworkInfo, error) {
	h.network++
	return types.NetworkInfo{
		Hostname:   "box",
		Interfaces: map[string][]string{"eth0": {"10.0.0.2"}},
	}, h.err
}

func TestCachedHostReusesNetworkInfo(t *testing.T) {
	inner := &countingHost{}
	h := NewCachedHost(inner, time.Hour)

	for i := 0; i < 3; i++ {
		info, err := h.NetworkInfo()
		require.NoError(t, err)
		assert.Equal(t, "box", info.Hostname)
	}
	assert.Equal(t, 1, inner.network)

	h.SystemInfo()
	info, _ := h.SystemInfo()
	assert.Equal(t, 2.0, info.CPUPercent)
}

func TestCachedHostExpires(t *testing.T) {
	inner := &countingHost{}
	h := NewCachedHost(inner, 20*time.Millisecond)
	h.NetworkInfo()
	time.Sleep(50 * time.Millisecond)
	h.NetworkInfo()
	assert.Equal(t, 2, inner.network)
}

func TestCachedHostDoesNotKeepErrors(t *testing.T) {
	inner := &countingHost{err: errors.New("no interfaces")}
	h := NewCachedHost(inner, time.Hour)
	_, err := h.NetworkInfo()
	assert.Error(t, err)
	_, err = h.NetworkInfo()
	assert.Error(t, err)
	assert.Equal(t, 2, inner.network)
}

func TestCachedHostHandsOutCopies(t *testing.T) {
	h := NewCachedHost(&countingHost{}, time.Hour)

	first, err := h.NetworkInfo()
	require.NoError(t, err)
	first.Interfaces["eth0"][0] = "192.0.2.1"
	first.Interfaces["wlan0"] = []string{"192.0.2.2"}

	second, err := h.NetworkInfo()
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"eth0": {"10.0.0.2"}}, second.Interfaces)

	second.Interfaces["eth0"] = nil
	third, _ := h.NetworkInfo()
	assert.Equal(t, []string{"10.0.0.2"}, third.Interfaces["eth0"])
}
