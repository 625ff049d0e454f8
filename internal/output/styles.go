package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color
// literals.
var (
	// ColorCyan is used for identifiable nouns: block names, module
	// names, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for success markers and the completion checkmark.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and deprecated facets.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for destructive actions and failures.
	ColorRed = lipgloss.Color("196")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleBlock styles block and module names.
	StyleBlock = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (adding, renaming, removing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (separators, role labels).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleWarning styles deprecation and short-name warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleError styles failure lines.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreen).Render("✔")
	return check + " " + msg
}

// FormatWarning renders a yellow warning line for stdout output.
func FormatWarning(msg string) string {
	return StyleWarning.Render("! " + msg)
}
