package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grmod/cli/internal/output"
)

// NewDisableCmd creates the disable command.
func NewDisableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disable [name]",
		Short: "Disable blocks without deleting them",
		Long: `Comment blocks out of the module's build through gr_modtool, leaving
their files in place.

The argument is a block name or a regular expression.

Examples:
  grmod disable square_ff`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDisable,
	}

	registerYesFlag(cmd.Flags())
	return cmd
}

func runDisable(cmd *cobra.Command, args []string) error {
	proj, err := requireProject()
	if err != nil {
		return err
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	res, err := resolveTarget(proj, arg, "Disable block")
	if err != nil {
		return err
	}

	ok, err := confirmTarget("Disable", res)
	if err != nil || !ok {
		return err
	}

	target := targetArgument(res)
	err = runTool(cmd.Context(), "Disabling blocks...", func() error {
		return newModtool().Disable(cmd.Context(), proj.Root, target)
	})
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Disabled %s", strings.Join(res.Matches, ", "))))
	return nil
}
