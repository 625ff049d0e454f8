package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grmod/cli/internal/blocks"
	gerrors "github.com/grmod/cli/internal/errors"
	"github.com/grmod/cli/internal/output"
)

// NewBindCmd creates the bind command.
func NewBindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bind [name]",
		Short: "Regenerate python bindings for blocks",
		Long: `Regenerate the python bindings of C++ blocks through gr_modtool bind.

Only blocks with a public header can be bound; the candidate picker is
restricted accordingly.

Examples:
  grmod bind square_ff`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBind,
	}
}

func runBind(cmd *cobra.Command, args []string) error {
	proj, err := requireProject()
	if err != nil {
		return err
	}

	// Binding needs a header to parse; resolve against that subset.
	candidates, err := blocks.ListBlocksWithHeader(proj.Root, proj.ModuleName)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return gerrors.NewNotFoundError(
			fmt.Sprintf("gr-%s has no blocks with a public header", proj.ModuleName),
			proj.Root,
			"Only C++ blocks with a header under include/ can be bound.",
		)
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	res, err := resolveAgainst(proj, arg, "Bind block", candidates)
	if err != nil {
		return err
	}

	for _, id := range res.Matches {
		err = runTool(cmd.Context(), fmt.Sprintf("Binding %s...", id), func() error {
			return newModtool().Bind(cmd.Context(), proj.Root, id)
		})
		if err != nil {
			return err
		}
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Bound %s", strings.Join(res.Matches, ", "))))
	return nil
}
