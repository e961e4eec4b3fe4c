package iqspec

import (
	"fmt"
	"runtime"
)

var (
	// version and commit are set via ldflags at release time.
	// Builds from source report "dev" and "unknown".
	version = "dev"
	commit  = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or 'unknown'
func Commit() string {
	return commit
}

// UserAgent returns the User-Agent string sent to the IQ Server
func UserAgent() string {
	return fmt.Sprintf("iqspec/%s", version)
}

// BuildInfo returns a one-line summary of the build metadata.
func BuildInfo() string {
	return fmt.Sprintf("iqspec %s (commit %s, %s)", version, commit, runtime.Version())
}
