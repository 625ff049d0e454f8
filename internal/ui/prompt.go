package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Validator grades prompt input as it is typed. A non-empty warning is shown
// but does not block submission; a non-nil error does.
type Validator func(string) (warning string, err error)

type promptModel struct {
	title    string
	input    textinput.Model
	validate Validator
	warning  string
	errMsg   string
	value    string
	aborted  bool
}

func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if m.errMsg == "" {
				m.value = m.input.Value()
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	m.warning, m.errMsg = "", ""
	if m.validate != nil {
		warning, err := m.validate(m.input.Value())
		if err != nil {
			m.errMsg = err.Error()
		}
		m.warning = warning
	}
	return m, cmd
}

func (m *promptModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	} else if m.warning != "" {
		b.WriteString(warnStyle.Render("! " + m.warning))
		b.WriteString("\n")
	}
	return b.String()
}

// PromptText asks for one line of input, re-validating on every keystroke.
// ErrCancelled on abort.
func PromptText(title, placeholder string, validate Validator) (string, error) {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "> "
	in.Focus()

	m := &promptModel{title: title, input: in, validate: validate}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}
	if m.aborted {
		return "", ErrCancelled
	}
	return m.value, nil
}

type confirmModel struct {
	question string
	answer   bool
	decided  bool
	aborted  bool
}

func (m *confirmModel) Init() tea.Cmd { return nil }

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y":
			m.answer, m.decided = true, true
			return m, tea.Quit
		case "n", "N", "enter":
			m.decided = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *confirmModel) View() string {
	return m.question + " " + dimStyle.Render("[y/N]") + " "
}

// Confirm asks a yes/no question, defaulting to no. ErrCancelled on abort.
func Confirm(question string) (bool, error) {
	m := &confirmModel{question: question}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return false, fmt.Errorf("running confirmation: %w", err)
	}
	if m.aborted {
		return false, ErrCancelled
	}
	return m.answer, nil
}
