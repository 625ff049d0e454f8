// Package modtool wraps the external gr_modtool scaffolding binary.
//
// The wrapper only owns the invocation contract: a sub-command plus
// arguments, executed with the project root as working directory, returning
// captured text on success or a ToolError carrying the raw diagnostic log on
// failure. All file mutation is gr_modtool's business; nothing in this
// repository writes into the module tree directly.
package modtool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	gerrors "github.com/grmod/cli/internal/errors"
)

// Sub-command names accepted by gr_modtool.
const (
	SubInfo     = "info"
	SubAdd      = "add"
	SubBind     = "bind"
	SubRename   = "rename"
	SubDisable  = "disable"
	SubRemove   = "rm"
	SubUpdate   = "update"
	SubMakeYAML = "makeyaml"
)

// DefaultBinary is the binary name looked up in PATH when no explicit path
// is configured.
const DefaultBinary = "gr_modtool"

// Binary wraps calls to the external gr_modtool binary.
type Binary struct {
	// Path is the path to the binary. If empty, DefaultBinary is used
	// from PATH.
	Path string

	// Stdout for streamed command output. If nil, os.Stdout is used.
	Stdout io.Writer

	// Stderr for streamed command errors. If nil, os.Stderr is used.
	Stderr io.Writer
}

// New creates a Binary wrapper. path may be empty to use PATH lookup.
func New(path string) *Binary {
	if path == "" {
		path = DefaultBinary
	}
	return &Binary{
		Path:   path,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// ToolError is a structured gr_modtool failure: the sub-command, its exit
// code, and the combined diagnostic output.
type ToolError struct {
	Subcommand string
	ExitCode   int
	Log        string
}

// Error renders the terse form: the last non-empty log line, or the exit
// code when the tool produced no output.
func (e *ToolError) Error() string {
	if line := e.LastLine(); line != "" {
		return fmt.Sprintf("gr_modtool %s: %s", e.Subcommand, line)
	}
	return fmt.Sprintf("gr_modtool %s failed with exit code %d", e.Subcommand, e.ExitCode)
}

// Unwrap marks every ToolError as an ErrTool.
func (e *ToolError) Unwrap() error {
	return gerrors.ErrTool
}

// LastLine returns the last non-empty line of the diagnostic log, for terse
// single-line display. The full log stays available in Log.
func (e *ToolError) LastLine() string {
	lines := strings.Split(e.Log, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// Run executes a gr_modtool sub-command in root, streaming output to the
// configured writers.
func (b *Binary) Run(ctx context.Context, root, sub string, args ...string) error {
	cmd := exec.CommandContext(ctx, b.path(), append([]string{sub}, args...)...)
	cmd.Dir = root
	cmd.Stdout = b.stdout()

	var stderr bytes.Buffer
	cmd.Stderr = io.MultiWriter(b.stderr(), &stderr)

	if err := cmd.Run(); err != nil {
		return b.wrapRunError(err, sub, stderr.String())
	}
	return nil
}

// RunCapture executes a gr_modtool sub-command in root and captures its
// output instead of streaming it.
func (b *Binary) RunCapture(ctx context.Context, root, sub string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, b.path(), append([]string{sub}, args...)...)
	cmd.Dir = root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", b.wrapRunError(err, sub, stdout.String()+stderr.String())
	}
	return stdout.String(), nil
}

// wrapRunError converts an exec failure into the package's error taxonomy.
func (b *Binary) wrapRunError(err error, sub, log string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolError{
			Subcommand: sub,
			ExitCode:   exitErr.ExitCode(),
			Log:        log,
		}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: install GNU Radio or set modtoolPath in the config", gerrors.ErrToolMissing)
	}
	return fmt.Errorf("gr_modtool %s: %w", sub, err)
}

func (b *Binary) path() string {
	if b.Path != "" {
		return b.Path
	}
	return DefaultBinary
}

func (b *Binary) stdout() io.Writer {
	if b.Stdout != nil {
		return b.Stdout
	}
	return os.Stdout
}

func (b *Binary) stderr() io.Writer {
	if b.Stderr != nil {
		return b.Stderr
	}
	return os.Stderr
}
