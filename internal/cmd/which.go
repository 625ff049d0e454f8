package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grmod/cli/internal/blocks"
	gerrors "github.com/grmod/cli/internal/errors"
)

// NewWhichCmd creates the which command.
func NewWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which <file>",
		Short: "Resolve the block that owns a file",
		Long: `Resolve a file path to the block identifier that owns it, by
re-applying the same classification rules used for discovery.

Editor integrations use this to default pickers to the active file's block.

Examples:
  grmod which lib/square_ff_impl.cc`,
		Args: cobra.ExactArgs(1),
		RunE: runWhich,
	}
}

func runWhich(cmd *cobra.Command, args []string) error {
	proj, err := requireProject()
	if err != nil {
		return err
	}

	path := args[0]
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		path = filepath.Join(wd, path)
	}

	id := blocks.ResolveBlockIdentifier(path, proj.Root, proj.ModuleName)
	if id == "" {
		return gerrors.NewNotFoundError(
			fmt.Sprintf("%s does not belong to any block of gr-%s", args[0], proj.ModuleName),
			path,
			"Only files in grc/, include/, python/, and lib/ map to blocks.",
		)
	}

	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}
