package capitol

import (
	"fmt"
	"runtime"
)

// Build metadata. Version follows semver; the rest is meant to be stamped by
// the build, e.g.
//
//	go build -ldflags "-X github.com/ambiyansyah-risyal/capitol.GitCommit=$(git rev-parse HEAD)"
var (
	Version   = "v0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
)

// GetVersion returns a single-line description of this build, suitable for
// startup logs.
func GetVersion() string {
	return fmt.Sprintf("Capitol %s (commit: %s, built: %s, go: %s)",
		Version, GitCommit, BuildDate, GoVersion)
}

// GetVersionInfo returns the build metadata as a map, handy as structured
// logging fields or static metric labels.
func GetVersionInfo() map[string]string {
	return map[string]string{
		"version":    Version,
		"commit":     GitCommit,
		"build_date": BuildDate,
		"go_version": GoVersion,
	}
}
