package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grmod/cli/internal/blocks"
	"github.com/grmod/cli/internal/modtool"
)

// Step is one named step of the add wizard.
type Step int

const (
	// StepName collects the block name.
	StepName Step = iota

	// StepType collects the block type (sync, source, general, ...).
	StepType

	// StepLanguage collects the implementation language.
	StepLanguage

	// StepArguments collects the constructor argument list.
	StepArguments

	// StepCppQA asks whether to scaffold C++ QA code.
	StepCppQA

	// StepPythonQA asks whether to scaffold python QA code.
	StepPythonQA

	// StepDone terminates the wizard.
	StepDone
)

// String names the step for prompts and errors.
func (s Step) String() string {
	switch s {
	case StepName:
		return "name"
	case StepType:
		return "type"
	case StepLanguage:
		return "language"
	case StepArguments:
		return "arguments"
	case StepCppQA:
		return "cpp-qa"
	case StepPythonQA:
		return "python-qa"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// Wizard is the explicit state machine behind grmod add: each step applies
// one input to the typed accumulator and decides the next step. The
// transition logic is pure; only the Run driver touches the terminal.
type Wizard struct {
	// Step is the current step.
	Step Step

	// Form is the accumulator fed to gr_modtool add.
	Form modtool.AddOptions

	existing []string
}

// NewWizard creates a wizard over the current inventory (used to reject
// colliding names).
func NewWizard(existing []string) *Wizard {
	return &Wizard{Step: StepName, existing: existing}
}

// Apply feeds one input to the current step, mutating the accumulator and
// advancing the step on success. Inputs that fail validation leave the
// wizard in place.
func (w *Wizard) Apply(input string) error {
	switch w.Step {
	case StepName:
		v := blocks.ValidateNewBlockName(input, w.existing)
		if v.Verdict == blocks.VerdictError {
			return errors.New(v.Message)
		}
		w.Form.Name = strings.TrimSpace(input)
		w.Step = StepType

	case StepType:
		if !contains(modtool.BlockTypes, input) {
			return fmt.Errorf("unknown block type %q", input)
		}
		w.Form.BlockType = input
		w.Step = StepLanguage

	case StepLanguage:
		if !contains(modtool.Languages, input) {
			return fmt.Errorf("unknown language %q", input)
		}
		w.Form.Language = input
		w.Step = StepArguments

	case StepArguments:
		w.Form.Arguments = splitArguments(input)
		if w.Form.Language == "python" {
			// No C++ side to test for python blocks.
			w.Step = StepPythonQA
		} else {
			w.Step = StepCppQA
		}

	case StepCppQA:
		yes, err := parseYesNo(input)
		if err != nil {
			return err
		}
		w.Form.CppQA = yes
		w.Step = StepPythonQA

	case StepPythonQA:
		yes, err := parseYesNo(input)
		if err != nil {
			return err
		}
		w.Form.PythonQA = yes
		w.Step = StepDone

	case StepDone:
		return errors.New("wizard already complete")
	}
	return nil
}

// Done reports whether the accumulator is complete.
func (w *Wizard) Done() bool {
	return w.Step == StepDone
}

// Run drives the wizard interactively and returns the completed form.
func (w *Wizard) Run() (modtool.AddOptions, error) {
	for !w.Done() {
		input, err := w.promptStep()
		if err != nil {
			return modtool.AddOptions{}, err
		}
		if err := w.Apply(input); err != nil {
			// Surface and re-prompt the same step.
			fmt.Println(errorStyle.Render("✗ " + err.Error()))
		}
	}
	return w.Form, nil
}

func (w *Wizard) promptStep() (string, error) {
	switch w.Step {
	case StepName:
		return PromptText("Block name", "my_block", func(s string) (string, error) {
			v := blocks.ValidateNewBlockName(s, w.existing)
			switch v.Verdict {
			case blocks.VerdictError:
				return "", errors.New(v.Message)
			case blocks.VerdictWarning:
				return v.Message, nil
			}
			return "", nil
		})
	case StepType:
		return PickBlock("Block type", modtool.BlockTypes)
	case StepLanguage:
		return PickBlock("Implementation language", modtool.Languages)
	case StepArguments:
		return PromptText("Constructor arguments (comma separated)", "int vlen, float alpha", nil)
	case StepCppQA:
		yes, err := Confirm("Add C++ QA code?")
		return yesNoString(yes), err
	case StepPythonQA:
		yes, err := Confirm("Add Python QA code?")
		return yesNoString(yes), err
	}
	return "", fmt.Errorf("no prompt for step %s", w.Step)
}

func splitArguments(input string) []string {
	var args []string
	for _, a := range strings.Split(input, ",") {
		if a = strings.TrimSpace(a); a != "" {
			args = append(args, a)
		}
	}
	return args
}

func parseYesNo(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes", "true":
		return true, nil
	case "n", "no", "false", "":
		return false, nil
	}
	return false, fmt.Errorf("expected yes or no, got %q", input)
}

func yesNoString(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
