package types

import (
	"sort"
	"strings"
	"time"
)

// ProcessStatus the scheduling state of an OS process
type ProcessStatus string

const (
	StatusRunning  ProcessStatus = "running"
	StatusSleeping ProcessStatus = "sleeping"
	StatusZombie   ProcessStatus = "zombie"
	StatusStopped  ProcessStatus = "stopped"
	StatusUnknown  ProcessStatus = "unknown"
)

// ParseProcessStatus maps a status reported by the OS (long names such as
// "sleep" or single letters such as "S") to a ProcessStatus
func ParseProcessStatus(s string) ProcessStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "running", "run", "r":
		return StatusRunning
	case "sleeping", "sleep", "s", "idle", "i", "wait", "w", "d", "disk-sleep", "lock", "l":
		return StatusSleeping
	case "zombie", "z":
		return StatusZombie
	case "stopped", "stop", "t", "tracing-stop":
		return StatusStopped
	default:
		return StatusUnknown
	}
}

// ProcessSnapshot a point in time view of one OS process. Optional fields are
// nil when the OS denied access to them.
type ProcessSnapshot struct {
	Pid           int32         `json:"pid"`
	Name          string        `json:"name"`
	CPUPercent    float64       `json:"cpu_percent"`
	MemoryPercent float32       `json:"memory_percent"`
	Status        ProcessStatus `json:"status"`
	StartTime     time.Time     `json:"start_time"`
	Username      *string       `json:"username,omitempty"`
	CommandLine   []string      `json:"command_line,omitempty"`
}

// ProcessSnapshots a list of snapshots
type ProcessSnapshots []ProcessSnapshot

// SortByName sorts by process name, then pid
func (ps ProcessSnapshots) SortByName() {
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].Name == ps[j].Name {
			return ps[i].Pid < ps[j].Pid
		}
		return ps[i].Name < ps[j].Name
	})
}

// SortByCPU sorts by cpu usage, highest first
func (ps ProcessSnapshots) SortByCPU() {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].CPUPercent > ps[j].CPUPercent
	})
}

// Filter returns the snapshots with the given status, or all of them if status is nil
func (ps ProcessSnapshots) Filter(status *ProcessStatus) ProcessSnapshots {
	if status == nil {
		return ps
	}
	result := make(ProcessSnapshots, 0, len(ps))
	for _, p := range ps {
		if p.Status == *status {
			result = append(result, p)
		}
	}
	return result
}
