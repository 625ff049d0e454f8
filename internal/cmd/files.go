package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grmod/cli/internal/blocks"
	"github.com/grmod/cli/internal/output"
	"github.com/grmod/cli/internal/project"
)

// NewFilesCmd creates the files command.
func NewFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files [block]",
		Short: "Show the files belonging to a block",
		Long: `Show every file correlated to one block across the module's directory
trees, as a tree with role annotations.

Without an argument, an interactive picker is shown on a terminal.

Examples:
  grmod files square_ff`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFiles,
	}
}

func runFiles(cmd *cobra.Command, args []string) error {
	proj, err := requireProject()
	if err != nil {
		return err
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	res, err := resolveTarget(proj, arg, "Show files of block")
	if err != nil {
		return err
	}

	for _, id := range res.Matches {
		if err := showBlockTree(cmd, proj, id); err != nil {
			return err
		}
	}
	return nil
}

// showBlockTree prints one block's correlated files as a role-annotated
// tree.
func showBlockTree(cmd *cobra.Command, proj *project.Project, id string) error {
	files, err := blocks.CorrelateFiles(proj.Root, proj.ModuleName, id)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		// Inventory and correlator share one pattern table; an
		// inventoried block with no files is a defect, not a state.
		output.Warn("block has no correlated files", "block", id)
		return nil
	}

	entries := make([]output.FileEntry, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(proj.Root, f.Path)
		if err != nil {
			rel = f.Path
		}
		entries = append(entries, output.FileEntry{Path: rel, Description: f.Role})
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.StyleBlock.Render(id))
	fmt.Fprint(cmd.OutOrStdout(), output.RenderFileTree(filepath.Base(proj.Root), entries))
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
