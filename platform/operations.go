package platform

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ochinchina/sysctld/faults"
	log "github.com/sirupsen/logrus"
)

// PowerKind the power state transition requested
type PowerKind string

const (
	Restart  PowerKind = "restart"
	Shutdown PowerKind = "shutdown"
	Sleep    PowerKind = "sleep"
)

// ScreenshotPathEnv carries the output path to the Windows capture script
const ScreenshotPathEnv = "SYSCTLD_SCREENSHOT_PATH"

const windowsCaptureScript = `Add-Type -AssemblyName System.Windows.Forms,System.Drawing
$b = [System.Windows.Forms.SystemInformation]::VirtualScreen
$bmp = New-Object System.Drawing.Bitmap $b.Width, $b.Height
$g = [System.Drawing.Graphics]::FromImage($bmp)
$g.CopyFromScreen($b.Left, $b.Top, 0, 0, $bmp.Size)
$bmp.Save($env:SYSCTLD_SCREENSHOT_PATH)`

const windowsShowDesktopScript = `(New-Object -ComObject Shell.Application).ToggleDesktop()`

// Operations the primitive OS actions for one platform
type Operations struct {
	platform Platform
	runner   Runner
	log      log.FieldLogger
}

// New creates the operation set for platform p
func New(p Platform, runner Runner, logger log.FieldLogger) *Operations {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Operations{platform: p, runner: runner, log: logger.WithField("platform", p.String())}
}

// Platform returns the platform the operations target
func (o *Operations) Platform() Platform {
	return o.platform
}

func (o *Operations) checkPlatform() error {
	if !o.platform.Supported() {
		return faults.NewFault(faults.UnsupportedPlatform, "unsupported operating system")
	}
	return nil
}

// Launcher names the program Launch spawns in place of the application,
// empty when the application itself is spawned
func Launcher(p Platform) string {
	switch p {
	case Windows:
		return "cmd.exe"
	case MacOS:
		return "open"
	}
	return ""
}

// Launch starts an application detached and returns the pid of the spawned
// program. On Windows and macOS that is the short lived Launcher handing the
// application to the OS, not the application.
func (o *Operations) Launch(name string, args []string) (int, error) {
	if err := o.checkPlatform(); err != nil {
		return 0, err
	}
	if err := ValidateName(o.platform, name); err != nil {
		return 0, err
	}
	for _, arg := range args {
		if err := ValidateArg(o.platform, arg); err != nil {
			return 0, err
		}
	}

	var inv Invocation
	switch o.platform {
	case Windows:
		inv = Invocation{Path: Launcher(o.platform), Args: append([]string{"/C", "start", "", name}, args...)}
	case MacOS:
		inv = Invocation{Path: Launcher(o.platform), Args: []string{"-a", name}}
		if len(args) > 0 {
			inv.Args = append(append(inv.Args, "--args"), args...)
		}
	default:
		inv = Invocation{Path: name, Args: args}
	}

	o.log.WithField("invocation", inv.String()).Debug("launch application")
	pid, err := o.runner.Start(inv)
	if err != nil {
		return 0, faults.Wrap(faults.LaunchFailed, err, fmt.Sprintf("spawn %s", name))
	}
	return pid, nil
}

// Close terminates every process of the named application
func (o *Operations) Close(ctx context.Context, name string) error {
	if err := o.checkPlatform(); err != nil {
		return err
	}
	if err := ValidateName(o.platform, name); err != nil {
		return err
	}

	var inv Invocation
	notFound := 1
	switch o.platform {
	case Windows:
		image := name
		if filepath.Ext(image) == "" {
			image += ".exe"
		}
		inv = Invocation{Path: "taskkill", Args: []string{"/F", "/IM", image}}
		notFound = 128
	default:
		inv = Invocation{Path: "pkill", Args: []string{"-i", "-x", name}}
	}

	err := o.run(ctx, inv)
	if err == nil {
		return nil
	}
	if ExitCode(err) == notFound {
		return faults.Newf(faults.ActionFailed, "no process matching %q", name)
	}
	return faults.Wrap(faults.ActionFailed, err, fmt.Sprintf("close %s", name))
}

// Screenshot captures the whole screen to path and waits for the capture tool
func (o *Operations) Screenshot(ctx context.Context, path string) error {
	if err := o.checkPlatform(); err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" {
		return faults.NewFault(faults.InvalidArgument, "screenshot path cannot be empty")
	}
	if err := ValidateArg(Linux, path); err != nil {
		return err
	}

	var candidates []Invocation
	switch o.platform {
	case Windows:
		candidates = []Invocation{{
			Path: "powershell.exe",
			Args: []string{"-NoProfile", "-NonInteractive", "-Command", windowsCaptureScript},
			Env:  []string{ScreenshotPathEnv + "=" + path},
		}}
	case MacOS:
		candidates = []Invocation{{Path: "screencapture", Args: []string{"-x", path}}}
	default:
		candidates = []Invocation{
			{Path: "import", Args: []string{"-window", "root", path}},
			{Path: "gnome-screenshot", Args: []string{"-f", path}},
			{Path: "scrot", Args: []string{"-o", path}},
		}
	}
	if err := o.runFirst(ctx, candidates); err != nil {
		return faults.Wrap(faults.CaptureFailed, err, "capture screenshot")
	}
	return nil
}

// Lock locks the screen
func (o *Operations) Lock(ctx context.Context) error {
	if err := o.checkPlatform(); err != nil {
		return err
	}

	var candidates []Invocation
	switch o.platform {
	case Windows:
		candidates = []Invocation{{Path: "rundll32.exe", Args: []string{"user32.dll,LockWorkStation"}}}
	case MacOS:
		candidates = []Invocation{{Path: "pmset", Args: []string{"displaysleepnow"}}}
	default:
		candidates = []Invocation{
			{Path: "loginctl", Args: []string{"lock-session"}},
			{Path: "gnome-screensaver-command", Args: []string{"-l"}},
			{Path: "xdg-screensaver", Args: []string{"lock"}},
		}
	}
	if err := o.runFirst(ctx, candidates); err != nil {
		return faults.Wrap(faults.ActionFailed, err, "lock screen")
	}
	return nil
}

// Power requests a restart, shutdown or sleep. The OS may terminate this
// process before the invocation returns, and a timeout is reported as success.
func (o *Operations) Power(ctx context.Context, kind PowerKind) error {
	if err := o.checkPlatform(); err != nil {
		return err
	}

	var inv Invocation
	switch o.platform {
	case Windows:
		switch kind {
		case Restart:
			inv = Invocation{Path: "shutdown", Args: []string{"/r", "/t", "0"}}
		case Shutdown:
			inv = Invocation{Path: "shutdown", Args: []string{"/s", "/t", "0"}}
		case Sleep:
			inv = Invocation{Path: "rundll32.exe", Args: []string{"powrprof.dll,SetSuspendState", "0,1,0"}}
		}
	case MacOS:
		switch kind {
		case Restart:
			inv = Invocation{Path: "shutdown", Args: []string{"-r", "now"}}
		case Shutdown:
			inv = Invocation{Path: "shutdown", Args: []string{"-h", "now"}}
		case Sleep:
			inv = Invocation{Path: "pmset", Args: []string{"sleepnow"}}
		}
	default:
		switch kind {
		case Restart:
			inv = Invocation{Path: "systemctl", Args: []string{"reboot"}}
		case Shutdown:
			inv = Invocation{Path: "systemctl", Args: []string{"poweroff"}}
		case Sleep:
			inv = Invocation{Path: "systemctl", Args: []string{"suspend"}}
		}
	}
	if inv.Path == "" {
		return faults.Newf(faults.InvalidArgument, "unknown power action %q", kind)
	}

	err := o.run(ctx, inv)
	if errors.Is(err, ErrTimeout) {
		o.log.WithField("action", string(kind)).Warn("power action requested, no response before timeout")
		return nil
	}
	if err != nil {
		return faults.Wrap(faults.ActionFailed, err, fmt.Sprintf("power action %s", kind))
	}
	return nil
}

// DropCaches asks the kernel to drop its page cache
func (o *Operations) DropCaches(ctx context.Context) error {
	if err := o.checkPlatform(); err != nil {
		return err
	}

	var steps []Invocation
	switch o.platform {
	case Windows:
		return faults.NewFault(faults.Unsupported, "clearing the memory cache is not supported on windows")
	case MacOS:
		steps = []Invocation{{Path: "purge"}}
	default:
		steps = []Invocation{
			{Path: "sync"},
			{Path: "sysctl", Args: []string{"-w", "vm.drop_caches=3"}},
		}
	}
	for _, inv := range steps {
		if err := o.run(ctx, inv); err != nil {
			return faults.Wrap(faults.ActionFailed, err, "clear memory cache")
		}
	}
	return nil
}

// ShowDesktop minimizes every window
func (o *Operations) ShowDesktop(ctx context.Context) error {
	if err := o.checkPlatform(); err != nil {
		return err
	}

	var inv Invocation
	switch o.platform {
	case Windows:
		inv = Invocation{Path: "powershell.exe", Args: []string{"-NoProfile", "-NonInteractive", "-Command", windowsShowDesktopScript}}
	case MacOS:
		return faults.NewFault(faults.Unsupported, "show desktop is not supported on macos")
	default:
		inv = Invocation{Path: "wmctrl", Args: []string{"-k", "on"}}
	}
	if err := o.run(ctx, inv); err != nil {
		return faults.Wrap(faults.ActionFailed, err, "show desktop")
	}
	return nil
}

func (o *Operations) run(ctx context.Context, inv Invocation) error {
	err := o.runner.Run(ctx, inv)
	entry := o.log.WithField("invocation", inv.String())
	if err != nil {
		entry.WithError(err).Debug("invocation failed")
	} else {
		entry.Debug("invocation succeeded")
	}
	return err
}

// run the candidates in order until one succeeds, return the last error
func (o *Operations) runFirst(ctx context.Context, candidates []Invocation) error {
	var err error
	for _, inv := range candidates {
		if err = o.run(ctx, inv); err == nil {
			return nil
		}
		if errors.Is(err, ErrTimeout) {
			return err
		}
	}
	return err
}
