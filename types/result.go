package types

import (
	"fmt"

	"github.com/ochinchina/sysctld/faults"
)

// Result the outcome of every system control operation
type Result struct {
	Success           bool        `json:"success"`
	Message           string      `json:"message"`
	Payload           interface{} `json:"payload,omitempty"`
	Error             faults.Kind `json:"error,omitempty"`
	Verb              string      `json:"verb,omitempty"`
	AvailableCommands []string    `json:"available_commands,omitempty"`
}

// Succeed builds a successful result
func Succeed(message string, payload interface{}) Result {
	return Result{Success: true, Message: message, Payload: payload}
}

// Fail builds a failed result from err, prefixing the message with verb
func Fail(verb string, err error) Result {
	return Result{
		Success: false,
		Message: fmt.Sprintf("%s failed: %v", verb, err),
		Error:   faults.KindOf(err),
		Verb:    verb,
	}
}

// SystemInfo cpu, memory and root disk utilisation in percent
type SystemInfo struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskPercent   float64 `json:"disk_percent"`
}

// NetworkInfo the host address and the addresses of every interface
type NetworkInfo struct {
	IPAddress  string              `json:"ip_address"`
	Hostname   string              `json:"hostname"`
	Interfaces map[string][]string `json:"interfaces"`
}

// LaunchInfo payload of a successful application launch. When Launcher is
// set, Pid belongs to that launcher and not to the application.
type LaunchInfo struct {
	Pid      int    `json:"pid"`
	Name     string `json:"name"`
	Launcher string `json:"launcher,omitempty"`
}

// TerminateInfo payload of a terminated high cpu process
type TerminateInfo struct {
	Pid        int32   `json:"pid"`
	Name       string  `json:"name"`
	CPUPercent float64 `json:"cpu_percent"`
}

// ScreenshotInfo payload of a captured screenshot
type ScreenshotInfo struct {
	Path string `json:"path"`
}

// ProcessList payload of a process listing
type ProcessList struct {
	Count     int              `json:"count"`
	Processes ProcessSnapshots `json:"processes"`
}
