//go:build windows

package signals

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// ToSignal convert a signal name to signal. Windows can only terminate.
func ToSignal(signalName string) (os.Signal, error) {
	switch strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(signalName)), "SIG") {
	case "", "TERM", "INT", "QUIT", "HUP":
		return syscall.SIGTERM, nil
	case "KILL":
		return syscall.SIGKILL, nil
	default:
		return nil, fmt.Errorf("signal %q is not supported in windows", signalName)
	}
}

// Kill terminates the process pid and its children
func Kill(pid int, sig os.Signal) error {
	//Signal command can't kill children processes, call  taskkill command to kill them
	cmd := exec.Command("taskkill", "/F", "/T", "/PID", fmt.Sprintf("%d", pid))
	if err := cmd.Run(); err == nil {
		return nil
	}
	//if fail to find taskkill, fallback to normal kill
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Kill()
}
