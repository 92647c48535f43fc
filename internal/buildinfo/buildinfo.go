// Package buildinfo reports the version of the running binary.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// These values are injected by GoReleaser via ldflags for release binaries.
// They default to empty for local/dev builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// Info is the resolved build information.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Date    string `json:"date,omitempty"`
}

// Get returns the build information, falling back to the module version
// recorded by go install and then to "dev".
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if info.Version == "" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	return info
}

// String formats the info as "mdb <version> (<commit>, <date>)".
func (i Info) String() string {
	if i.Commit == "" && i.Date == "" {
		return "mdb " + i.Version
	}
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("mdb %s (%s, %s)", i.Version, commit, i.Date)
}
