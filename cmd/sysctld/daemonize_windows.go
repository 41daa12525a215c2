package main

import (
	log "github.com/sirupsen/logrus"
)

// Daemonize runs proc in the foreground, use "sysctld service" on windows
func Daemonize(proc func()) {
	log.Warn("daemon mode is not supported on windows, running in the foreground")
	proc()
}
