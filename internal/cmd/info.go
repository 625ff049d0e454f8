package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grmod/cli/internal/blocks"
	"github.com/grmod/cli/internal/output"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [block]",
		Short: "Show module or block information",
		Long: `Without an argument, query gr_modtool for module metadata.

With a block name, show the block's current-format definition: label,
category, constructor template, and parameters.

Examples:
  grmod info
  grmod info square_ff`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	proj, err := requireProject()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		info, err := newModtool().Info(cmd.Context(), proj.Root)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), info.Raw)
		return nil
	}

	res, err := resolveTarget(proj, args[0], "Show block info")
	if err != nil {
		return err
	}

	for _, id := range res.Matches {
		def, err := blocks.LoadDefinition(proj.Root, proj.ModuleName, id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, output.StyleBlock.Render(id))
		if def.Label != "" {
			fmt.Fprintf(out, "  label:     %s\n", def.Label)
		}
		if def.Category != "" {
			fmt.Fprintf(out, "  category:  %s\n", def.Category)
		}
		if def.Templates.Make != "" {
			fmt.Fprintf(out, "  make:      %s\n", def.Templates.Make)
		}
		if len(def.Parameters) > 0 {
			fmt.Fprintln(out, "  parameters:")
			for _, p := range def.Parameters {
				fmt.Fprintf(out, "    %-16s %s\n", p.ID, output.StyleDim.Render(p.Dtype))
			}
		}
		fmt.Fprintf(out, "  ports:     %d in, %d out\n", len(def.Inputs), len(def.Outputs))
	}
	return nil
}
