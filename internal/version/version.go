// Package version identifies the slidecast build shown by `slidecast
// version`, the presentation header and the remote health endpoint.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Release builds stamp these with ldflags:
//
//	go build -ldflags="-X github.com/muurk/slidecast/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/slidecast/internal/version.Commit=4f2c9e1" ./cmd/slidecast
//
// Builds from a checkout take the commit and date from the toolchain's vcs
// settings. Anything else is a dev build stamped with its start time.
var (
	Version = ""
	Commit  = ""
)

// shortCommit is the length of the abbreviated revision.
const shortCommit = 7

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			applySettings(info.Settings)
		}
	}
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// applySettings fills whatever ldflags left empty from vcs.* settings.
func applySettings(settings []debug.BuildSetting) {
	vcs := make(map[string]string, 3)
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision", "vcs.modified", "vcs.time":
			vcs[s.Key] = s.Value
		}
	}

	if rev := vcs["vcs.revision"]; Commit == "" && rev != "" {
		Commit = rev[:min(len(rev), shortCommit)]
		if vcs["vcs.modified"] == "true" {
			Commit += "-dirty"
		}
	}

	if Version == "" {
		if t, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

// Short is the version alone, as shown in the presentation header.
func Short() string {
	return Version
}

// Full is the version with its commit, as printed by `slidecast version`.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
