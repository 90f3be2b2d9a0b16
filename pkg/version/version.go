// Package version exposes build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

//nolint:gochecknoglobals // Set at build time via -ldflags "-X".
var (
	version   = "0.1.0-dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the release version.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from, falling back to
// the VCS revision recorded by the Go toolchain.
func GetGitCommit() string {
	if gitCommit != "" {
		return gitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}

// GetBuildDate returns the build timestamp, or "unknown".
func GetBuildDate() string {
	if buildDate == "" {
		return "unknown"
	}
	return buildDate
}

// String is the multi-line text printed by the version command.
func String() string {
	return fmt.Sprintf("quickconvert %s\ncommit: %s\nbuilt: %s\ngo: %s %s/%s\n",
		GetVersion(), GetGitCommit(), GetBuildDate(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
