// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grmod/cli/internal/config"
	"github.com/grmod/cli/internal/modtool"
	"github.com/grmod/cli/internal/output"
	"github.com/grmod/cli/internal/project"
	"github.com/grmod/cli/internal/version"
)

var (
	// Global flags
	dirFlag        string
	moduleNameFlag string
	modtoolFlag    string
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE)
	cliConfig *config.Config
)

// NewRootCmd creates the root command for the grmod CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "grmod",
		Short: "GNU Radio out-of-tree module front end",
		Long: `grmod fronts gr_modtool for GNU Radio out-of-tree modules.

It discovers the blocks of a module by scanning its directory trees,
shows each block's correlated files, and orchestrates gr_modtool to
add, rename, disable, remove, rebind, and convert blocks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "C", ".", "Module directory, or any directory beneath one")
	rootCmd.PersistentFlags().StringVar(&moduleNameFlag, "module-name", "", "Override the module name derived from the directory")
	rootCmd.PersistentFlags().StringVar(&modtoolFlag, "modtool", "", "Path to the gr_modtool binary (env: GRMOD_MODTOOL)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: GRMOD_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewFilesCmd())
	rootCmd.AddCommand(NewWhichCmd())
	rootCmd.AddCommand(NewInfoCmd())
	rootCmd.AddCommand(NewAddCmd())
	rootCmd.AddCommand(NewRenameCmd())
	rootCmd.AddCommand(NewDisableCmd())
	rootCmd.AddCommand(NewRemoveCmd())
	rootCmd.AddCommand(NewBindCmd())
	rootCmd.AddCommand(NewUpdateCmd())
	rootCmd.AddCommand(NewMakeYAMLCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().Load(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Commands that don't need config still work.
		loaded = &config.Config{}
	}
	cliConfig = loaded

	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cliConfig.Log.Timestamps != nil {
		logCfg.Timestamps = cliConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if verboseFlag {
		info := version.GetInfo()
		output.Debug("grmod started",
			"version", info.Version,
			"dir", dirFlag,
			"modtool", modtoolPath(),
		)
	}
	return nil
}

// modtoolPath resolves the gr_modtool path with flag > env/config > PATH
// precedence. Empty means PATH lookup.
func modtoolPath() string {
	if modtoolFlag != "" {
		return modtoolFlag
	}
	if cliConfig != nil && cliConfig.ModtoolPath != "" {
		return cliConfig.ModtoolPath
	}
	return ""
}

// newModtool returns the external tool wrapper for the resolved binary path.
func newModtool() *modtool.Binary {
	return modtool.New(modtoolPath())
}

// requireProject discovers the module enclosing --dir, applying the
// --module-name override when set.
func requireProject() (*project.Project, error) {
	proj, err := project.Discover(dirFlag)
	if err != nil {
		return nil, err
	}
	if moduleNameFlag != "" {
		proj.ModuleName = moduleNameFlag
	}
	output.Debug("module located", "root", proj.Root, "name", proj.ModuleName)
	return proj, nil
}
