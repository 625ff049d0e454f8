package cmd

import (
	"errors"

	gerrors "github.com/grmod/cli/internal/errors"
)

// Exit codes for the grmod CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a rejected block name or bad input.
	ExitValidationError = 2

	// ExitNotFound indicates a block or file was not found.
	ExitNotFound = 3

	// ExitNoProject indicates no gr-* module could be located.
	ExitNoProject = 4

	// ExitToolError indicates gr_modtool reported a failure.
	ExitToolError = 5

	// ExitToolMissing indicates the gr_modtool binary is not installed.
	ExitToolMissing = 6
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitNoProject:
		return "No Module"
	case ExitToolError:
		return "Tool Error"
	case ExitToolMissing:
		return "Tool Missing"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *gerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, gerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, gerrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, gerrors.ErrNoProject):
		return ExitNoProject
	case errors.Is(err, gerrors.ErrToolMissing):
		return ExitToolMissing
	case errors.Is(err, gerrors.ErrTool):
		return ExitToolError
	default:
		return ExitGeneralError
	}
}
