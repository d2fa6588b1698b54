// Package platform maps the Go build target onto the platform vocabulary the
// UI client understands and onto the native menu conventions that differ
// between macOS and everything else.
package platform

import "runtime"

// Platform names exposed to the UI client. This is a closed set: any build
// target outside the three desktop targets reports NameUnknown.
const (
	NameMacOS   = "macos"
	NameWindows = "windows"
	NameLinux   = "linux"
	NameUnknown = "unknown"
)

// Name returns the platform name for the current build target.
func Name() string {
	return nameFor(runtime.GOOS)
}

func nameFor(goos string) string {
	switch goos {
	case "darwin":
		return NameMacOS
	case "windows":
		return NameWindows
	case "linux":
		return NameLinux
	default:
		return NameUnknown
	}
}

// IsDarwin reports whether the current build target is macOS.
func IsDarwin() bool {
	return runtime.GOOS == "darwin"
}

// Modifier returns the accelerator modifier convention for the given
// platform name: Cmd on macOS, Ctrl everywhere else.
func Modifier(name string) string {
	if name == NameMacOS {
		return "Cmd"
	}
	return "Ctrl"
}
