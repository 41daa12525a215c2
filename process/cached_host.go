package process

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/ochinchina/sysctld/types"
)

const networkKey = "network"

// CachedHost reuses a network report for a short time. Resolving the host
// name may block on DNS, utilisation stats are always read fresh.
type CachedHost struct {
	Host
	cache *ttlcache.Cache[string, types.NetworkInfo]
}

// NewCachedHost wraps host, keeping network reports for ttl
func NewCachedHost(host Host, ttl time.Duration) *CachedHost {
	cache := ttlcache.New[string, types.NetworkInfo](
		ttlcache.WithTTL[string, types.NetworkInfo](ttl),
		ttlcache.WithDisableTouchOnHit[string, types.NetworkInfo](),
	)
	return &CachedHost{Host: host, cache: cache}
}

// NetworkInfo implements Host
func (h *CachedHost) NetworkInfo() (types.NetworkInfo, error) {
	if item := h.cache.Get(networkKey); item != nil {
		return copyNetworkInfo(item.Value()), nil
	}
	info, err := h.Host.NetworkInfo()
	if err != nil {
		return info, err
	}
	h.cache.Set(networkKey, copyNetworkInfo(info), ttlcache.DefaultTTL)
	return info, nil
}

// callers own the returned interfaces, the cached report stays untouched
func copyNetworkInfo(info types.NetworkInfo) types.NetworkInfo {
	if info.Interfaces == nil {
		return info
	}
	interfaces := make(map[string][]string, len(info.Interfaces))
	for name, addrs := range info.Interfaces {
		interfaces[name] = append([]string(nil), addrs...)
	}
	info.Interfaces = interfaces
	return info
}
