package cmd

import (
	"context"
	"errors"

	gerrors "github.com/grmod/cli/internal/errors"
	"github.com/grmod/cli/internal/modtool"
	"github.com/grmod/cli/internal/output"
)

// runTool invokes one gr_modtool action behind a spinner. The tool's own
// stderr streams to the terminal as the action runs, so a ToolError is
// marked printed and main only sets the exit status.
func runTool(ctx context.Context, title string, action func() error) error {
	err := output.RunWithSpinner(ctx, action, output.WithTitle(title))

	var toolErr *modtool.ToolError
	if errors.As(err, &toolErr) {
		exitErr := gerrors.NewExitError(toolErr, ExitToolError)
		exitErr.Printed = true
		return exitErr
	}
	return err
}
