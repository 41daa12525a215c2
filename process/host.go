package process

import (
	"fmt"
	"net"
	"os"
	"runtime"

	"github.com/ochinchina/sysctld/types"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	gopsnet "github.com/shirou/gopsutil/v4/net"
	"go.uber.org/multierr"
)

// Host reports host wide utilisation and network state
type Host interface {
	// SystemInfo returns the utilisation snapshot. err lists the stats that
	// could not be read; their fields stay zero.
	SystemInfo() (types.SystemInfo, error)
	NetworkInfo() (types.NetworkInfo, error)
}

// SystemHost reads the stats of the running host
type SystemHost struct {
	diskPath string
}

// NewSystemHost creates a SystemHost, disk usage is taken for the root or
// system drive
func NewSystemHost() *SystemHost {
	return &SystemHost{diskPath: rootPath()}
}

func rootPath() string {
	if runtime.GOOS == "windows" {
		drive := os.Getenv("SystemDrive")
		if drive == "" {
			drive = "C:"
		}
		return drive + `\`
	}
	return "/"
}

// SystemInfo implements Host
func (h *SystemHost) SystemInfo() (types.SystemInfo, error) {
	var info types.SystemInfo
	var errs error

	if percents, err := cpu.Percent(0, false); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("cpu: %w", err))
	} else if len(percents) > 0 {
		info.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("memory: %w", err))
	} else {
		info.MemoryPercent = vm.UsedPercent
	}
	if usage, err := disk.Usage(h.diskPath); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("disk %s: %w", h.diskPath, err))
	} else {
		info.DiskPercent = usage.UsedPercent
	}
	return info, errs
}

// NetworkInfo implements Host
func (h *SystemHost) NetworkInfo() (types.NetworkInfo, error) {
	info := types.NetworkInfo{Interfaces: make(map[string][]string)}

	ifaces, err := gopsnet.Interfaces()
	if err != nil {
		return info, err
	}
	for _, iface := range ifaces {
		addrs := make([]string, 0, len(iface.Addrs))
		for _, a := range iface.Addrs {
			addrs = append(addrs, a.Addr)
		}
		info.Interfaces[iface.Name] = addrs
	}

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
		info.IPAddress = lookupIPv4(hostname)
	}
	if info.IPAddress == "" {
		info.IPAddress = firstIPv4(info.Interfaces)
	}
	return info, nil
}

func lookupIPv4(hostname string) string {
	ips, err := net.LookupIP(hostname)
	if err != nil {
		return ""
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ""
}

// firstIPv4 returns the first non loopback IPv4 address, or a loopback one
// if nothing else is configured
func firstIPv4(interfaces map[string][]string) string {
	loopback := ""
	for _, addrs := range interfaces {
		for _, a := range addrs {
			ip, _, err := net.ParseCIDR(a)
			if err != nil {
				ip = net.ParseIP(a)
			}
			if ip == nil || ip.To4() == nil {
				continue
			}
			if ip.IsLoopback() {
				loopback = ip.String()
				continue
			}
			return ip.String()
		}
	}
	return loopback
}
