package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/grmod/cli/internal/errors"
	"github.com/grmod/cli/internal/modtool"
)

// Tool diagnostics stream to stderr while the action runs, so the resulting
// error must be marked printed to keep main from rendering it again.
func TestRunTool_ToolErrorIsMarkedPrinted(t *testing.T) {
	toolErr := &modtool.ToolError{Subcommand: "rename", ExitCode: 1, Log: "Error: block not found\n"}

	err := runTool(context.Background(), "Renaming...", func() error { return toolErr })
	require.Error(t, err)

	var exitErr *gerrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitToolError, exitErr.Code)
	assert.True(t, exitErr.Printed)
	assert.True(t, errors.Is(err, gerrors.ErrTool))
}

func TestRunTool_OtherErrorsPassThrough(t *testing.T) {
	boom := errors.New("boom")

	err := runTool(context.Background(), "Working...", func() error { return boom })
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	var exitErr *gerrors.ExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestRunTool_Success(t *testing.T) {
	assert.NoError(t, runTool(context.Background(), "Working...", func() error { return nil }))
}
