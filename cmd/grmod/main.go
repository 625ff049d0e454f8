// Package main is the entry point for the grmod CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/grmod/cli/internal/cmd"
	gerrors "github.com/grmod/cli/internal/errors"
	"github.com/grmod/cli/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *gerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, output.StyleError.Render(err.Error()))
			}
			exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, output.StyleError.Render(err.Error()))
		exit(cmd.ExitCodeFromError(err))
	}
}

func exit(code int) {
	output.Debug("exiting", "code", code, "status", cmd.ExitCodeName(code))
	os.Exit(code)
}
