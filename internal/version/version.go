// Package version reports the build version of the tools.
package version

import (
	"fmt"
	"runtime"
)

// Set by the linker: -X github.com/effective-security/jwtsign/internal/version.Build=...
var (
	Build  = "0.0.0"
	Commit = "dev"
)

// Info describes the build
type Info struct {
	Build   string `json:"build"`
	Commit  string `json:"commit"`
	Runtime string `json:"runtime"`
}

// Current returns the version of the running binary
func Current() *Info {
	return &Info{
		Build:   Build,
		Commit:  Commit,
		Runtime: runtime.Version(),
	}
}

func (v *Info) String() string {
	return fmt.Sprintf("%s (%s, %s)", v.Build, v.Commit, v.Runtime)
}
