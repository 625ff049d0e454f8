package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/grmod/cli/internal/blocks"
	gerrors "github.com/grmod/cli/internal/errors"
	"github.com/grmod/cli/internal/output"
	"github.com/grmod/cli/internal/project"
	"github.com/grmod/cli/internal/ui"
)

// assumeYesFlag skips confirmation prompts. Registered on every destructive
// command.
var assumeYesFlag bool

func registerYesFlag(flags *pflag.FlagSet) {
	flags.BoolVarP(&assumeYesFlag, "yes", "y", false, "Skip confirmation prompts")
}

// resolveTarget turns a command's name argument into a resolution against
// the current inventory. An empty argument opens the interactive picker on a
// TTY; off a TTY it is an error. A pattern that matches nothing is an error
// as well, so callers always receive at least one block.
func resolveTarget(proj *project.Project, arg, title string) (blocks.Resolution, error) {
	inventory, err := blocks.ListAllBlocks(proj.Root, proj.ModuleName)
	if err != nil {
		return blocks.Resolution{}, err
	}
	return resolveAgainst(proj, arg, title, inventory)
}

// resolveAgainst is resolveTarget over an explicit candidate set (commands
// like bind restrict to blocks with a particular facet).
func resolveAgainst(proj *project.Project, arg, title string, inventory []string) (blocks.Resolution, error) {
	if len(inventory) == 0 {
		return blocks.Resolution{}, gerrors.NewNotFoundError(
			fmt.Sprintf("module %q contains no blocks", proj.ModuleName),
			proj.Root,
			"Create one with 'grmod add'.",
		)
	}

	if arg == "" {
		if !output.IsTTY() {
			return blocks.Resolution{}, gerrors.NewValidationError(
				"no block name given",
				"Pass a block name or regular expression.",
			)
		}
		picked, err := ui.PickBlock(title, inventory)
		if err != nil {
			return blocks.Resolution{}, err
		}
		arg = picked
	}

	res, err := blocks.Resolve(arg, inventory)
	if err != nil {
		return blocks.Resolution{}, gerrors.Wrap(gerrors.ErrValidation, err.Error())
	}
	if res.Kind == blocks.ResolutionPattern && len(res.Matches) == 0 {
		return blocks.Resolution{}, gerrors.NewNotFoundError(
			fmt.Sprintf("no block matches %q", arg),
			proj.Root,
			"Run 'grmod list' to see the module's blocks.",
		)
	}
	return res, nil
}

// confirmTarget asks before a destructive action, naming either the single
// block or the whole matched set. --yes and non-TTY runs skip the prompt.
func confirmTarget(action string, res blocks.Resolution) (bool, error) {
	if assumeYesFlag || !output.IsTTY() {
		return true, nil
	}

	verb := output.StyleAction.Render(action)
	var question string
	if res.Kind == blocks.ResolutionExact {
		question = fmt.Sprintf("%s block %q?", verb, res.Block())
	} else {
		question = fmt.Sprintf("%s %d blocks (%s)?", verb,
			len(res.Matches), strings.Join(res.Matches, ", "))
	}
	return ui.Confirm(question)
}

// targetArgument renders a resolution back into the single argument passed
// to gr_modtool: the identifier for an exact match, or an anchored
// alternation covering the matched set.
func targetArgument(res blocks.Resolution) string {
	if res.Kind == blocks.ResolutionExact {
		return res.Block()
	}
	return "^(" + strings.Join(res.Matches, "|") + ")$"
}
