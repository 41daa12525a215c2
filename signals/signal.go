//go:build !windows

package signals

import (
	"fmt"
	"os"
	"strings"
	"syscall"
)

var signalMap = map[string]syscall.Signal{
	"SIGHUP":  syscall.SIGHUP,
	"SIGINT":  syscall.SIGINT,
	"SIGQUIT": syscall.SIGQUIT,
	"SIGKILL": syscall.SIGKILL,
	"SIGTERM": syscall.SIGTERM,
	"SIGUSR1": syscall.SIGUSR1,
	"SIGUSR2": syscall.SIGUSR2,
}

// ToSignal convert a signal name such as "TERM" or "SIGKILL" to signal
func ToSignal(signalName string) (os.Signal, error) {
	name := strings.ToUpper(strings.TrimSpace(signalName))
	if name == "" {
		return syscall.SIGTERM, nil
	}
	if !strings.HasPrefix(name, "SIG") {
		name = "SIG" + name
	}
	if sig, ok := signalMap[name]; ok {
		return sig, nil
	}
	return nil, fmt.Errorf("unknown signal %q", signalName)
}

// Kill send signal sig to the process pid
func Kill(pid int, sig os.Signal) error {
	localSig, ok := sig.(syscall.Signal)
	if !ok {
		return fmt.Errorf("unsupported signal %v", sig)
	}
	return syscall.Kill(pid, localSig)
}
