// Package version reports build information for the codecat CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags, for example:
// go build -ldflags "-X 'codecat/pkg/version.Version=1.2.3' -X 'codecat/pkg/version.Commit=abcdefg'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

const shortCommitLen = 12

// Info is the resolved build information.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the build information. Values not injected by the linker are
// taken from the module and VCS data embedded by the Go toolchain, when
// present.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi)
	}
	return info
}

func fillFromBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "none" {
				info.GitCommit = s.Value[:min(len(s.Value), shortCommitLen)]
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		}
	}
}

// String formats the information on one line, e.g.
// codecat version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.24.2 on linux/amd64
func (i Info) String() string {
	return fmt.Sprintf("codecat version %s (commit: %s) built at %s with %s on %s",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
