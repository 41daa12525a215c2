package platform

import (
	"strings"

	"github.com/ochinchina/sysctld/faults"
)

// cmd.exe re-parses the command line of "start", these can never be passed through
const windowsMetaChars = "&|<>^%\""

// ValidateName checks an application or process name before it is put into
// an argument vector
func ValidateName(p Platform, name string) error {
	if strings.TrimSpace(name) == "" {
		return faults.NewFault(faults.InvalidArgument, "application name cannot be empty")
	}
	if strings.HasPrefix(name, "-") {
		return faults.Newf(faults.InvalidArgument, "application name %q must not start with '-'", name)
	}
	return ValidateArg(p, name)
}

// ValidateArg checks one argument passed on to a launched application
func ValidateArg(p Platform, arg string) error {
	if strings.ContainsAny(arg, "\x00\r\n") {
		return faults.Newf(faults.InvalidArgument, "argument %q contains control characters", arg)
	}
	if p == Windows && strings.ContainsAny(arg, windowsMetaChars) {
		return faults.Newf(faults.InvalidArgument, "argument %q contains characters reserved by cmd.exe", arg)
	}
	return nil
}
