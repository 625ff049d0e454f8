package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grmod/cli/internal/output"
)

// NewMakeYAMLCmd creates the makeyaml command.
func NewMakeYAMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "makeyaml [name]",
		Short: "Generate current-format definitions for blocks",
		Long: `Generate a current-format .block.yml definition for blocks that lack
one, through gr_modtool makeyaml.

The argument is a block name or a regular expression.

Examples:
  grmod makeyaml square_ff`,
		Args: cobra.MaximumNArgs(1),
		RunE: runMakeYAML,
	}
}

func runMakeYAML(cmd *cobra.Command, args []string) error {
	proj, err := requireProject()
	if err != nil {
		return err
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	res, err := resolveTarget(proj, arg, "Generate definition for block")
	if err != nil {
		return err
	}

	target := targetArgument(res)
	err = runTool(cmd.Context(), "Generating definitions...", func() error {
		return newModtool().MakeYAML(cmd.Context(), proj.Root, target)
	})
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Generated definitions for %s",
		strings.Join(res.Matches, ", "))))
	return nil
}
