package version

import (
	"bytes"
	"os/exec"
	"regexp"
)

// toolVersionRe matches version strings in gr_modtool / gnuradio-config-info
// output, e.g. "3.10.9.2".
var toolVersionRe = regexp.MustCompile(`\d+\.\d+\.\d+(?:\.\d+)?`)

// ModtoolInfo describes the detected gr_modtool installation.
type ModtoolInfo struct {
	Path    string
	Version string
	Found   bool
	Message string
}

// DetectModtool finds the gr_modtool binary and probes its version. binary
// may be empty to look up the default name in PATH.
func DetectModtool(binary string) ModtoolInfo {
	if binary == "" {
		binary = "gr_modtool"
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return ModtoolInfo{
			Found:   false,
			Message: "gr_modtool binary not found in PATH",
		}
	}

	info := ModtoolInfo{Path: path, Found: true}

	// gr_modtool has no --version of its own; the GNU Radio version comes
	// from gnuradio-config-info when it is installed alongside.
	if v := probeVersion("gnuradio-config-info", "--version"); v != "" {
		info.Version = v
	}
	return info
}

// probeVersion runs a command and extracts the first version-shaped token
// from its output. Returns "" on any failure; detection is best-effort.
func probeVersion(name string, args ...string) string {
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return ""
	}
	return toolVersionRe.FindString(out.String())
}
