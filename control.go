package sysctld

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ochinchina/sysctld/faults"
	"github.com/ochinchina/sysctld/platform"
	"github.com/ochinchina/sysctld/process"
	"github.com/ochinchina/sysctld/types"
	"github.com/ochinchina/sysctld/util"
	log "github.com/sirupsen/logrus"
)

// Operator the platform primitives the service is built on
type Operator interface {
	Platform() platform.Platform
	Launch(name string, args []string) (int, error)
	Close(ctx context.Context, name string) error
	Screenshot(ctx context.Context, path string) error
	Lock(ctx context.Context) error
	Power(ctx context.Context, kind platform.PowerKind) error
	DropCaches(ctx context.Context) error
	ShowDesktop(ctx context.Context) error
}

// Options tune a Service
type Options struct {
	// ScreenshotPath is used when a capture names no path
	ScreenshotPath string
	// HighCPUThreshold is used when a termination names no threshold
	HighCPUThreshold float64
	// Pid is never terminated, the current pid when zero
	Pid int32
	// Metrics may be nil
	Metrics *Metrics
}

// ProcessFilter narrows a process listing, a nil Status accepts all
type ProcessFilter struct {
	Status *types.ProcessStatus
}

// Service the verb surface of system control. Every verb reports a Result
// and never panics on OS failures.
type Service struct {
	ops      Operator
	procs    process.Source
	host     process.Host
	critical *process.CriticalSet
	log      log.FieldLogger
	opts     Options
}

// NewService creates the service. A nil critical set protects nothing.
func NewService(ops Operator, procs process.Source, host process.Host, critical *process.CriticalSet, logger log.FieldLogger, opts Options) *Service {
	if logger == nil {
		logger = log.StandardLogger()
	}
	if critical == nil {
		critical = process.NewCriticalSet(nil)
	}
	if opts.Pid == 0 {
		opts.Pid = int32(os.Getpid())
	}
	if opts.ScreenshotPath == "" {
		opts.ScreenshotPath = "screenshot.png"
	}
	return &Service{
		ops:      ops,
		procs:    procs,
		host:     host,
		critical: critical,
		log:      logger,
		opts:     opts,
	}
}

// Platform returns the platform the service operates on
func (s *Service) Platform() platform.Platform {
	return s.ops.Platform()
}

// finish logs and counts the outcome of verb and turns it into a Result
func (s *Service) finish(verb types.Verb, fields log.Fields, message string, payload interface{}, err error) types.Result {
	entry := s.log.WithField("verb", verb.String())
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	if err != nil {
		entry.WithError(err).Error("operation failed")
		s.opts.Metrics.observe(verb.String(), OutcomeFailure)
		return types.Fail(verb.String(), err)
	}
	entry.Info(message)
	s.opts.Metrics.observe(verb.String(), OutcomeSuccess)
	r := types.Succeed(message, payload)
	r.Verb = verb.String()
	return r
}

// OpenApplication launches name detached
func (s *Service) OpenApplication(name string, args []string) types.Result {
	fields := log.Fields{"app": name, "args": len(args)}
	if strings.TrimSpace(name) == "" {
		return s.finish(types.VerbOpenApplication, fields, "", nil,
			faults.NewFault(faults.InvalidArgument, "application name cannot be empty"))
	}
	pid, err := s.ops.Launch(name, args)
	if err != nil {
		return s.finish(types.VerbOpenApplication, fields, "", nil, err)
	}
	info := types.LaunchInfo{Pid: pid, Name: name, Launcher: platform.Launcher(s.ops.Platform())}
	fields["pid"] = pid
	if info.Launcher != "" {
		fields["launcher"] = info.Launcher
	}
	return s.finish(types.VerbOpenApplication, fields, fmt.Sprintf("%s opened successfully", name), info, nil)
}

// CloseApplication terminates every process of name
func (s *Service) CloseApplication(name string) types.Result {
	fields := log.Fields{"app": name}
	if strings.TrimSpace(name) == "" {
		return s.finish(types.VerbCloseApplication, fields, "", nil,
			faults.NewFault(faults.InvalidArgument, "application name cannot be empty"))
	}
	err := s.ops.Close(context.Background(), name)
	return s.finish(types.VerbCloseApplication, fields, fmt.Sprintf("%s closed successfully", name), nil, err)
}

// GetSystemInfo reports cpu, memory and disk utilisation
func (s *Service) GetSystemInfo() types.Result {
	info, err := s.host.SystemInfo()
	if err != nil {
		err = faults.Wrap(faults.ActionFailed, err, "read system stats")
	}
	return s.finish(types.VerbSystemInfo, nil, "system information collected", info, err)
}

// ListRunningProcesses returns the visible processes passing filter. It
// never fails, an enumeration error yields an empty listing.
func (s *Service) ListRunningProcesses(filter ProcessFilter) types.ProcessSnapshots {
	snapshots, err := s.procs.Snapshots()
	if err != nil {
		s.log.WithField("verb", types.VerbListProcesses.String()).WithError(err).Error("failed to enumerate processes")
		return types.ProcessSnapshots{}
	}
	result := make(types.ProcessSnapshots, 0, len(snapshots))
	for _, p := range snapshots.Filter(filter.Status) {
		if p.Pid >= 0 {
			result = append(result, p)
		}
	}
	return result
}

// ProcessList wraps ListRunningProcesses in a Result
func (s *Service) ProcessList(filter ProcessFilter) types.Result {
	procs := s.ListRunningProcesses(filter)
	procs.SortByName()
	fields := log.Fields{"count": len(procs)}
	if filter.Status != nil {
		fields["status"] = string(*filter.Status)
	}
	return s.finish(types.VerbListProcesses, fields, fmt.Sprintf("%d processes running", len(procs)),
		types.ProcessList{Count: len(procs), Processes: procs}, nil)
}

// NetworkDiagnostics reports the host address and the interface addresses
func (s *Service) NetworkDiagnostics() types.Result {
	info, err := s.host.NetworkInfo()
	if err != nil {
		err = faults.Wrap(faults.ActionFailed, err, "read network interfaces")
	}
	return s.finish(types.VerbNetworkStatus, nil, "network status collected", info, err)
}

// CaptureScreenshot saves the screen to path, the configured path when empty
func (s *Service) CaptureScreenshot(path string) types.Result {
	if strings.TrimSpace(path) == "" {
		path = s.opts.ScreenshotPath
	}
	fields := log.Fields{"path": path}
	expanded, err := util.ExpandPath(path)
	if err != nil {
		return s.finish(types.VerbScreenshot, fields, "", nil,
			faults.Wrap(faults.InvalidArgument, err, "expand screenshot path"))
	}
	path = expanded
	fields["path"] = path
	err = s.ops.Screenshot(context.Background(), path)
	return s.finish(types.VerbScreenshot, fields, fmt.Sprintf("Screenshot captured: %s", path),
		types.ScreenshotInfo{Path: path}, err)
}

// LockComputer locks the screen
func (s *Service) LockComputer() types.Result {
	return s.finish(types.VerbLock, nil, "Computer locked", nil, s.ops.Lock(context.Background()))
}

// ClearMemoryCache drops the OS page cache
func (s *Service) ClearMemoryCache() types.Result {
	return s.finish(types.VerbClearMemoryCache, nil, "memory cache cleared", nil, s.ops.DropCaches(context.Background()))
}

// ShowDesktop minimizes every window
func (s *Service) ShowDesktop() types.Result {
	return s.finish(types.VerbShowDesktop, nil, "desktop shown", nil, s.ops.ShowDesktop(context.Background()))
}

// RestartSystem reboots the host
func (s *Service) RestartSystem() types.Result {
	return s.power(types.VerbRestart, platform.Restart, "restart requested")
}

// ShutdownSystem powers the host off
func (s *Service) ShutdownSystem() types.Result {
	return s.power(types.VerbShutdown, platform.Shutdown, "shutdown requested")
}

// SleepSystem suspends the host
func (s *Service) SleepSystem() types.Result {
	return s.power(types.VerbSleep, platform.Sleep, "sleep requested")
}

func (s *Service) power(verb types.Verb, kind platform.PowerKind, message string) types.Result {
	return s.finish(verb, nil, message, nil, s.ops.Power(context.Background(), kind))
}

// TerminateHighCPUProcess terminates the process with the highest cpu usage
// above threshold that is neither critical nor this process. A nil
// threshold means the configured one. Finding no such process is reported
// as an unsuccessful Result without an error kind.
func (s *Service) TerminateHighCPUProcess(threshold *float64) types.Result {
	limit := s.opts.HighCPUThreshold
	if threshold != nil {
		limit = *threshold
	}
	fields := log.Fields{"threshold": limit}

	snapshots, err := s.procs.Snapshots()
	if err != nil {
		return s.finish(types.VerbTerminateHighCPU, fields, "", nil,
			faults.Wrap(faults.ActionFailed, err, "enumerate processes"))
	}

	var candidate *types.ProcessSnapshot
	for i := range snapshots {
		p := &snapshots[i]
		if p.Pid <= 0 || p.Pid == s.opts.Pid || p.CPUPercent <= limit {
			continue
		}
		if group, _, ok := s.critical.Match(p.Name); ok {
			s.log.WithFields(log.Fields{"pid": p.Pid, "name": p.Name, "group": group}).Debug("skip critical process")
			continue
		}
		if candidate == nil || p.CPUPercent > candidate.CPUPercent {
			candidate = p
		}
	}

	if candidate == nil {
		s.log.WithField("verb", types.VerbTerminateHighCPU.String()).WithFields(fields).Info("no eligible process found")
		s.opts.Metrics.observe(types.VerbTerminateHighCPU.String(), OutcomeSkipped)
		return types.Result{Success: false, Message: "no eligible process found", Verb: types.VerbTerminateHighCPU.String()}
	}

	fields["pid"] = candidate.Pid
	fields["name"] = candidate.Name
	fields["cpu_percent"] = candidate.CPUPercent
	if err := s.procs.Terminate(candidate.Pid); err != nil {
		return s.finish(types.VerbTerminateHighCPU, fields, "", nil,
			faults.Wrap(faults.ActionFailed, err, fmt.Sprintf("terminate %s (%d)", candidate.Name, candidate.Pid)))
	}
	return s.finish(types.VerbTerminateHighCPU, fields,
		fmt.Sprintf("Terminated %s (%d) using %.1f%% cpu", candidate.Name, candidate.Pid, candidate.CPUPercent),
		types.TerminateInfo{Pid: candidate.Pid, Name: candidate.Name, CPUPercent: candidate.CPUPercent}, nil)
}

// Perform runs the verb of a
func (s *Service) Perform(a Action) types.Result {
	switch a.Verb {
	case types.VerbOpenApplication:
		return s.OpenApplication(a.App, a.Args)
	case types.VerbCloseApplication:
		return s.CloseApplication(a.App)
	case types.VerbSystemInfo:
		return s.GetSystemInfo()
	case types.VerbListProcesses:
		return s.ProcessList(ProcessFilter{})
	case types.VerbNetworkStatus:
		return s.NetworkDiagnostics()
	case types.VerbRestart:
		return s.RestartSystem()
	case types.VerbShutdown:
		return s.ShutdownSystem()
	case types.VerbSleep:
		return s.SleepSystem()
	case types.VerbClearMemoryCache:
		return s.ClearMemoryCache()
	case types.VerbTerminateHighCPU:
		return s.TerminateHighCPUProcess(nil)
	case types.VerbScreenshot:
		return s.CaptureScreenshot("")
	case types.VerbShowDesktop:
		return s.ShowDesktop()
	case types.VerbLock:
		return s.LockComputer()
	}
	return types.Fail(a.Verb.String(), faults.Newf(faults.InvalidArgument, "unknown verb %s", a.Verb))
}
