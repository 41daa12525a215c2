package types

import (
	"fmt"
	"strings"
)

// Verb identifies one operation of the system control service
type Verb int

const (
	VerbUnknown Verb = iota
	VerbOpenApplication
	VerbCloseApplication
	VerbSystemInfo
	VerbListProcesses
	VerbNetworkStatus
	VerbRestart
	VerbShutdown
	VerbSleep
	VerbClearMemoryCache
	VerbTerminateHighCPU
	VerbScreenshot
	VerbShowDesktop
	VerbLock
)

var verbNames = []string{
	VerbUnknown:          "unknown",
	VerbOpenApplication:  "open_application",
	VerbCloseApplication: "close_application",
	VerbSystemInfo:       "system_info",
	VerbListProcesses:    "list_processes",
	VerbNetworkStatus:    "network_status",
	VerbRestart:          "restart",
	VerbShutdown:         "shutdown",
	VerbSleep:            "sleep",
	VerbClearMemoryCache: "clear_memory_cache",
	VerbTerminateHighCPU: "terminate_high_cpu",
	VerbScreenshot:       "screenshot",
	VerbShowDesktop:      "show_desktop",
	VerbLock:             "lock",
}

// String returns the configuration name of the verb
func (v Verb) String() string {
	if int(v) >= 0 && int(v) < len(verbNames) {
		return verbNames[v]
	}
	return fmt.Sprintf("Verb(%d)", int(v))
}

// NeedsApplication returns true for verbs that act on a named application
func (v Verb) NeedsApplication() bool {
	return v == VerbOpenApplication || v == VerbCloseApplication
}

// ParseVerb converts a configuration name to Verb
func ParseVerb(name string) (Verb, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range verbNames {
		if i != int(VerbUnknown) && s == n {
			return Verb(i), nil
		}
	}
	return VerbUnknown, fmt.Errorf("unknown verb %q", name)
}

// Verbs returns every known verb
func Verbs() []Verb {
	result := make([]Verb, 0, len(verbNames)-1)
	for i := 1; i < len(verbNames); i++ {
		result = append(result, Verb(i))
	}
	return result
}
