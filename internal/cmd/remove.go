package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grmod/cli/internal/output"
)

// NewRemoveCmd creates the remove command.
func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove [name]",
		Aliases: []string{"rm"},
		Short:   "Remove blocks from the module",
		Long: `Remove blocks and their correlated files through gr_modtool.

The argument is a block name or a regular expression; an exact name always
wins over its pattern interpretation. Removal is confirmed before anything
runs, naming either the single block or the whole matched set.

Examples:
  grmod remove square_ff
  grmod remove 'square_.*'`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRemove,
	}

	registerYesFlag(cmd.Flags())
	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	proj, err := requireProject()
	if err != nil {
		return err
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	res, err := resolveTarget(proj, arg, "Remove block")
	if err != nil {
		return err
	}

	ok, err := confirmTarget("Remove", res)
	if err != nil || !ok {
		return err
	}

	target := targetArgument(res)
	err = runTool(cmd.Context(), "Removing blocks...", func() error {
		return newModtool().Remove(cmd.Context(), proj.Root, target)
	})
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Removed %s", strings.Join(res.Matches, ", "))))
	return nil
}
