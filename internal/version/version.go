// Package version provides build metadata and gr_modtool binary detection.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables, set via -ldflags.
var (
	// Version is the CLI version (e.g. "v0.3.1" or "dev").
	Version = "dev"

	// Commit is the git commit hash the binary was built from.
	Commit = "unknown"

	// Date is the build date.
	Date = "unknown"
)

// Info contains version information for display.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Platform  string
}

// GetInfo returns the version information for the running binary.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// FullVersionString renders the version block shown by grmod version.
func FullVersionString(info Info, tool ModtoolInfo) string {
	s := fmt.Sprintf("grmod %s\n  commit:     %s\n  built:      %s\n  go:         %s\n  platform:   %s\n",
		info.Version, info.Commit, info.Date, info.GoVersion, info.Platform)

	if tool.Found {
		v := tool.Version
		if v == "" {
			v = "unknown version"
		}
		s += fmt.Sprintf("  gr_modtool: %s (%s)\n", v, tool.Path)
	} else {
		s += "  gr_modtool: not found in PATH\n"
	}
	return s
}
