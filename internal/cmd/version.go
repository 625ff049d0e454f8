package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grmod/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show CLI version information",
		Long: `Display version information for the grmod CLI.

Shows the CLI version, build information, and whether a gr_modtool
binary was found.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.GetInfo()
	tool := version.DetectModtool(modtoolPath())

	fmt.Fprint(cmd.OutOrStdout(), version.FullVersionString(info, tool))
	return nil
}
