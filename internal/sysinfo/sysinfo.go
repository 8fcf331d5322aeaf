// Package sysinfo collects the environment metadata attached to every
// benchmark result, so runs recorded on different machines or builds
// stay comparable.
package sysinfo

import (
	"os"
	"runtime"

	"github.com/mhalvorsen/lsm-workbench/internal/version"
)

// Info describes the environment a result was produced in.
type Info struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
	Hostname  string `json:"hostname"`
	Commit    string `json:"commit"`
}

// Collect gathers environment information for the current process. The
// commit comes from the version package (set via ldflags at build
// time), so no git subprocess is needed at runtime.
func Collect() Info {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return Info{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		Hostname:  hostname,
		Commit:    version.Commit,
	}
}
