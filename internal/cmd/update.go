package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grmod/cli/internal/blocks"
	gerrors "github.com/grmod/cli/internal/errors"
	"github.com/grmod/cli/internal/output"
)

var updateComplete bool

// NewUpdateCmd creates the update command.
func NewUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [name]",
		Short: "Convert legacy XML blocks to the current format",
		Long: `Convert a block's legacy XML definition to the current YAML format
through gr_modtool update.

Only blocks that still carry an XML definition are candidates.

Examples:
  grmod update square_ff
  grmod update square_ff --complete`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().BoolVar(&updateComplete, "complete", false,
		"Also update the block's other generated files")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	proj, err := requireProject()
	if err != nil {
		return err
	}

	candidates, err := blocks.ListBlocksWithLegacyDefinition(proj.Root, proj.ModuleName)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return gerrors.NewNotFoundError(
			fmt.Sprintf("gr-%s has no blocks with a legacy XML definition", proj.ModuleName),
			proj.Root,
			"Nothing to update; all definitions are already current.",
		)
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	res, err := resolveAgainst(proj, arg, "Update block", candidates)
	if err != nil {
		return err
	}

	for _, id := range res.Matches {
		err = runTool(cmd.Context(), fmt.Sprintf("Updating %s...", id), func() error {
			return newModtool().Update(cmd.Context(), proj.Root, id, updateComplete)
		})
		if err != nil {
			return err
		}
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Updated %s", strings.Join(res.Matches, ", "))))
	return nil
}
