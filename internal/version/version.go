package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Program is the binary name shown in version output.
const Program = "pace-planner"

var (
	// Version is the semantic version of the build. It can be overridden via ldflags.
	Version = "dev"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns the semantic version, falling back to the module version
// from the build info for `go install` builds.
func Short() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return Version
}

// Full returns a human-readable version line with commit, build time and Go version.
func Full() string {
	return fmt.Sprintf("%s %s (commit: %s, built at: %s, %s)", Program, Short(), Commit, BuildTime, runtime.Version())
}
