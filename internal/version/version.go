// Package version holds build metadata injected via ldflags:
//
//	go build -ldflags "-X github.com/kailas-cloud/prodex/internal/version.Version=v1.2.0"
package version

import (
	"fmt"
	"runtime"
)

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String renders the build metadata for --version output.
func String() string {
	return fmt.Sprintf("prodex %s (commit %s, built %s, %s)", Version, Commit, Date, runtime.Version())
}

// Short returns the version with an abbreviated commit, e.g. "v1.2.0+3f2a9c1".
func Short() string {
	c := Commit
	if len(c) > 7 {
		c = c[:7]
	}
	if c == "" || c == "unknown" {
		return Version
	}
	return Version + "+" + c
}
