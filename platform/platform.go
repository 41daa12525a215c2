package platform

import (
	"runtime"
	"strings"
)

// Platform the operating system family an operation targets
type Platform int

const (
	// Unsupported any OS other than Windows, macOS or Linux
	Unsupported Platform = iota
	Windows
	MacOS
	Linux
)

// String returns the platform name
func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case MacOS:
		return "darwin"
	case Linux:
		return "linux"
	default:
		return "unsupported"
	}
}

// Supported returns true for Windows, macOS and Linux
func (p Platform) Supported() bool {
	return p == Windows || p == MacOS || p == Linux
}

// Parse converts a GOOS style name to Platform
func Parse(goos string) Platform {
	switch strings.ToLower(strings.TrimSpace(goos)) {
	case "windows":
		return Windows
	case "darwin", "macos", "osx":
		return MacOS
	case "linux":
		return Linux
	default:
		return Unsupported
	}
}

// Detect returns the platform of the running process
func Detect() Platform {
	return Parse(runtime.GOOS)
}
