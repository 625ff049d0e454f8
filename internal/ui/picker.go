// Package ui implements the interactive surfaces of the grmod CLI: the
// block picker, text prompts, confirmations, and the add wizard.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grmod/cli/internal/blocks"
)

// ErrCancelled is returned when the user aborts an interactive prompt.
var ErrCancelled = errors.New("cancelled")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type pickerModel struct {
	title    string
	input    textinput.Model
	all      []string
	filtered []string
	cursor   int
	choice   string
	aborted  bool
}

func newPickerModel(title string, items []string) *pickerModel {
	in := textinput.New()
	in.Placeholder = "type to filter"
	in.Prompt = "> "
	in.Focus()

	return &pickerModel{
		title:    title,
		input:    in,
		all:      items,
		filtered: items,
	}
}

func (m *pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if len(m.filtered) > 0 {
				m.choice = m.filtered[m.cursor]
			}
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

// refilter recomputes the visible subset: a typed fragment acts as an
// unanchored pattern over the inventory. The exact-match precedence of the
// resolver does not apply here; while typing "agc" the user still needs to
// see "agc_cc". An invalid pattern falls back to a literal substring match.
func (m *pickerModel) refilter() {
	query := m.input.Value()
	if query == "" {
		m.filtered = m.all
	} else if matches, err := blocks.Match(query, m.all); err == nil {
		m.filtered = matches
	} else {
		var sub []string
		for _, id := range m.all {
			if strings.Contains(id, query) {
				sub = append(sub, id)
			}
		}
		m.filtered = sub
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

func (m *pickerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no matching blocks"))
		b.WriteString("\n")
	}
	for i, id := range m.filtered {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("▸ "))
			b.WriteString(selectedStyle.Render(id))
		} else {
			b.WriteString("  " + id)
		}
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("\n%d/%d · enter select · esc cancel\n",
		len(m.filtered), len(m.all))))
	return b.String()
}

// PickBlock shows an interactive, filterable picker over the given block
// identifiers and returns the chosen one. ErrCancelled on abort.
func PickBlock(title string, items []string) (string, error) {
	if len(items) == 0 {
		return "", errors.New("no blocks to pick from")
	}

	m := newPickerModel(title, items)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return "", fmt.Errorf("running picker: %w", err)
	}
	if m.aborted || m.choice == "" {
		return "", ErrCancelled
	}
	return m.choice, nil
}
