// Package version reports the wificonnect build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Name is the program name shown by "wificonnect version".
const Name = "wificonnect"

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/wificonnect/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/wificonnect/internal/version.Commit=abc123"
//
// When unset they are filled from the VCS stamp in the build info.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		Version, Commit = fromSettings(Version, Commit, info.Settings)
	}
}

// fromSettings fills empty version and commit values from build settings.
// The commit is shortened to seven characters and marked dirty when the
// tree was modified; the version falls back to "dev".
func fromSettings(version, commit string, settings []debug.BuildSetting) (string, string) {
	var revision, vcsTime string
	modified := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			vcsTime = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if commit == "" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		commit = revision
		if modified {
			commit += "-dirty"
		}
	}
	if commit == "" {
		commit = "unknown"
	}

	if version == "" {
		version = "dev"
		if len(vcsTime) >= 10 {
			// RFC 3339 date part, e.g. 2024-05-01.
			version = "dev-" + vcsTime[:4] + vcsTime[5:7] + vcsTime[8:10]
		}
	}
	return version, commit
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s %s (commit: %s, %s %s/%s)", Name, Version, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
