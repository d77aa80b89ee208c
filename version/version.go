// Package version exposes the build information stamped into the
// drugage binary.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags "-X github.com/62Kinsley/DrugAge/version.…".
var (
	// Version is the semantic version when built from a tag
	Version = "dev"

	// CommitHash is the git commit the binary was built from
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"
)

// Info is the version report the CLI prints
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current build information
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one-line human-readable summary. An untagged build
// reads "drugage dev (...)" since Version defaults to "dev".
func (i Info) String() string {
	return fmt.Sprintf("drugage %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
}
