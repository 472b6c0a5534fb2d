// Package version provides build version information.
package version

import (
	"fmt"
	"runtime"
)

// These are set via ldflags at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Short returns just the version number.
func Short() string {
	return Version
}

// Info returns a one-line summary of the build.
func Info() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("identicon %s (%s) built on %s with %s", Version, commit, BuildDate, runtime.Version())
}
