package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grmod/cli/internal/blocks"
	gerrors "github.com/grmod/cli/internal/errors"
	"github.com/grmod/cli/internal/modtool"
	"github.com/grmod/cli/internal/output"
	"github.com/grmod/cli/internal/ui"
)

var (
	addType      string
	addLang      string
	addArguments string
	addCopyright string
	addPythonQA  bool
	addCppQA     bool
)

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new block to the module",
		Long: `Scaffold a new block with gr_modtool add.

Without flags on a terminal, a wizard collects the block type, language,
name, constructor arguments, and QA toggles step by step.

Examples:
  # Interactive wizard
  grmod add

  # Non-interactive
  grmod add square_ff --type sync --lang cpp --args "float scale"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringVarP(&addType, "type", "t", "",
		fmt.Sprintf("Block type (%s)", strings.Join(modtool.BlockTypes, ", ")))
	cmd.Flags().StringVarP(&addLang, "lang", "l", "",
		fmt.Sprintf("Implementation language (%s)", strings.Join(modtool.Languages, ", ")))
	cmd.Flags().StringVar(&addArguments, "args", "", "Comma-separated constructor arguments")
	cmd.Flags().StringVar(&addCopyright, "copyright", "", "Copyright holder for file headers")
	cmd.Flags().BoolVar(&addPythonQA, "python-qa", false, "Scaffold Python QA code")
	cmd.Flags().BoolVar(&addCppQA, "cpp-qa", false, "Scaffold C++ QA code")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	proj, err := requireProject()
	if err != nil {
		return err
	}

	existing, err := blocks.ListAllBlocks(proj.Root, proj.ModuleName)
	if err != nil {
		return err
	}

	var opts modtool.AddOptions
	interactive := len(args) == 0 && addType == "" && output.IsTTY()

	if interactive {
		opts, err = ui.NewWizard(existing).Run()
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				output.Info("add cancelled")
				return nil
			}
			return err
		}
	} else {
		if len(args) == 0 {
			return gerrors.NewValidationError("no block name given",
				"Pass a name, or run without arguments on a terminal for the wizard.")
		}
		opts = modtool.AddOptions{
			Name:      args[0],
			BlockType: addType,
			Language:  addLang,
			PythonQA:  addPythonQA,
			CppQA:     addCppQA,
		}
		if addArguments != "" {
			opts.Arguments = strings.Split(addArguments, ",")
		}
		if opts.BlockType == "" {
			opts.BlockType = "general"
		}
		if opts.Language == "" {
			opts.Language = "cpp"
		}

		v := blocks.ValidateNewBlockName(opts.Name, existing)
		switch v.Verdict {
		case blocks.VerdictError:
			return gerrors.NewValidationError(v.Message, "Pick a different block name.")
		case blocks.VerdictWarning:
			output.Println(output.FormatWarning(v.Message))
		}
	}

	if opts.Copyright == "" {
		opts.Copyright = addCopyright
	}
	if opts.Copyright == "" && cliConfig != nil {
		opts.Copyright = cliConfig.Copyright
	}

	err = runTool(cmd.Context(), fmt.Sprintf("Adding block %s...", opts.Name), func() error {
		return newModtool().Add(cmd.Context(), proj.Root, opts)
	})
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Added block %q to gr-%s", opts.Name, proj.ModuleName)))
	return showBlockTree(cmd, proj, opts.Name)
}
