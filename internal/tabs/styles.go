package tabs

import "github.com/charmbracelet/lipgloss"

// Styles controls how a trigger row is drawn.
type Styles struct {
	Active    lipgloss.Style
	Inactive  lipgloss.Style
	Separator string
	// Bracket wraps the active label in [ ] so the selection survives
	// colourless output.
	Bracket bool
}

// DefaultStyles returns neutral styles for callers without a theme.
func DefaultStyles() Styles {
	return Styles{
		Active: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Padding(0, 1),
		Inactive: lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1),
		Separator: " ",
	}
}

// PlainStyles returns styles for output that is not going to a terminal.
func PlainStyles() Styles {
	return Styles{
		Active:    lipgloss.NewStyle(),
		Inactive:  lipgloss.NewStyle().Padding(0, 1),
		Separator: " ",
		Bracket:   true,
	}
}
