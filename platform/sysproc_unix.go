//go:build !windows

package platform

import (
	"os"
	"syscall"
)

// the launched application gets its own process group so signals sent to
// this process do not reach it
func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

// blocking invocations lead their own group so a timeout reaches the
// processes they spawned
func groupProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

func killGroup(p *os.Process) error {
	if err := syscall.Kill(-p.Pid, syscall.SIGKILL); err != nil {
		return p.Kill()
	}
	return nil
}
