package process

import (
	"os"
	"syscall"
	"time"

	"github.com/ochinchina/sysctld/signals"
	"github.com/ochinchina/sysctld/types"
	gopsprocess "github.com/shirou/gopsutil/v4/process"
)

// Source enumerates OS processes and terminates them
type Source interface {
	// Snapshots returns one snapshot per visible process. Fields the OS
	// refuses to report are left unset.
	Snapshots() (types.ProcessSnapshots, error)
	// Terminate asks the process pid to exit
	Terminate(pid int32) error
}

// DefaultCPUSample the window cpu usage is measured over
const DefaultCPUSample = 500 * time.Millisecond

// SystemSource reads processes of the running host
type SystemSource struct {
	signal os.Signal
	window time.Duration
	sleep  func(time.Duration)
}

// NewSystemSource creates a SystemSource terminating processes with sig,
// SIGTERM when sig is nil. CPU usage is the share used during window,
// DefaultCPUSample when window <= 0.
func NewSystemSource(sig os.Signal, window time.Duration) *SystemSource {
	if sig == nil {
		sig = syscall.SIGTERM
	}
	if window <= 0 {
		window = DefaultCPUSample
	}
	return &SystemSource{signal: sig, window: window, sleep: time.Sleep}
}

// Snapshots implements Source
func (s *SystemSource) Snapshots() (types.ProcessSnapshots, error) {
	all, err := gopsprocess.Processes()
	if err != nil {
		return nil, err
	}
	procs := make([]*gopsprocess.Process, 0, len(all))
	timers := make([]cpuTimer, 0, len(all))
	for _, p := range all {
		if p.Pid < 0 {
			continue
		}
		procs = append(procs, p)
		timers = append(timers, p)
	}

	usage := sampleCPU(timers, s.window, s.sleep)
	result := make(types.ProcessSnapshots, 0, len(procs))
	for i, p := range procs {
		snap := snapshot(p)
		snap.CPUPercent = usage[i]
		result = append(result, snap)
	}
	return result, nil
}

// Terminate implements Source
func (s *SystemSource) Terminate(pid int32) error {
	return signals.Kill(int(pid), s.signal)
}

func snapshot(p *gopsprocess.Process) types.ProcessSnapshot {
	snap := types.ProcessSnapshot{Pid: p.Pid, Status: types.StatusUnknown}
	if name, err := p.Name(); err == nil {
		snap.Name = name
	}
	if mem, err := p.MemoryPercent(); err == nil {
		snap.MemoryPercent = mem
	}
	if status, err := p.Status(); err == nil && len(status) > 0 {
		snap.Status = types.ParseProcessStatus(status[0])
	}
	if created, err := p.CreateTime(); err == nil {
		snap.StartTime = time.UnixMilli(created)
	}
	if username, err := p.Username(); err == nil {
		snap.Username = &username
	}
	if cmdline, err := p.CmdlineSlice(); err == nil && len(cmdline) > 0 {
		snap.CommandLine = cmdline
	}
	return snap
}

// cpuTimer measures cpu usage since its previous call
type cpuTimer interface {
	Percent(interval time.Duration) (float64, error)
}

// sampleCPU primes every timer, waits window once and returns the usage of
// each during that window. Processes that vanish or refuse report 0.
func sampleCPU(timers []cpuTimer, window time.Duration, sleep func(time.Duration)) []float64 {
	usage := make([]float64, len(timers))
	if len(timers) == 0 {
		return usage
	}
	primed := make([]bool, len(timers))
	for i, t := range timers {
		_, err := t.Percent(0)
		primed[i] = err == nil
	}
	sleep(window)
	for i, t := range timers {
		if !primed[i] {
			continue
		}
		if cpu, err := t.Percent(0); err == nil {
			usage[i] = cpu
		}
	}
	return usage
}
