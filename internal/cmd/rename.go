package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grmod/cli/internal/blocks"
	gerrors "github.com/grmod/cli/internal/errors"
	"github.com/grmod/cli/internal/output"
	"github.com/grmod/cli/internal/ui"
)

// NewRenameCmd creates the rename command.
func NewRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [old] [new]",
		Short: "Rename a block",
		Long: `Rename a block and every correlated file through gr_modtool.

Missing arguments are collected interactively on a terminal. The new name
is validated against the current inventory before gr_modtool runs.

Examples:
  grmod rename square_ff square2_ff`,
		Args: cobra.MaximumNArgs(2),
		RunE: runRename,
	}

	registerYesFlag(cmd.Flags())
	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	proj, err := requireProject()
	if err != nil {
		return err
	}

	var oldArg string
	if len(args) > 0 {
		oldArg = args[0]
	}
	res, err := resolveTarget(proj, oldArg, "Rename block")
	if err != nil {
		return err
	}
	if res.Kind != blocks.ResolutionExact {
		return gerrors.NewValidationError(
			fmt.Sprintf("rename needs exactly one block, got %d matches", len(res.Matches)),
			"Pass the exact name of the block to rename.",
		)
	}
	oldName := res.Block()

	existing, err := blocks.ListAllBlocks(proj.Root, proj.ModuleName)
	if err != nil {
		return err
	}

	var newName string
	if len(args) > 1 {
		newName = args[1]
		v := blocks.ValidateNewBlockName(newName, existing)
		switch v.Verdict {
		case blocks.VerdictError:
			return gerrors.NewValidationError(v.Message, "Pick a different block name.")
		case blocks.VerdictWarning:
			output.Println(output.FormatWarning(v.Message))
		}
	} else {
		if !output.IsTTY() {
			return gerrors.NewValidationError("no new name given",
				"Pass both the old and the new block name.")
		}
		newName, err = ui.PromptText(fmt.Sprintf("New name for %s", oldName), oldName,
			func(s string) (string, error) {
				v := blocks.ValidateNewBlockName(s, existing)
				switch v.Verdict {
				case blocks.VerdictError:
					return "", errors.New(v.Message)
				case blocks.VerdictWarning:
					return v.Message, nil
				}
				return "", nil
			})
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				output.Info("rename cancelled")
				return nil
			}
			return err
		}
	}

	ok, err := confirmTarget(fmt.Sprintf("Rename to %q:", newName), res)
	if err != nil || !ok {
		return err
	}

	err = runTool(cmd.Context(), fmt.Sprintf("Renaming %s to %s...", oldName, newName), func() error {
		return newModtool().Rename(cmd.Context(), proj.Root, oldName, newName)
	})
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Renamed %q to %q", oldName, newName)))
	return nil
}
