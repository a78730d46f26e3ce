package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders the header, section bar, content and footer.
func (m Model) renderMain() string {
	content := lipgloss.NewStyle().
		Padding(0, contentPadding).
		Render(m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderSectionBar(),
		content,
		m.renderFooter(),
	)
}

// renderHeader draws the logo and the family row.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var parts []string
	if m.width >= LayoutCompactWidth {
		parts = append(parts, bg.Render("mlref", styles.Logo), bg.Spaces(2))
	}
	parts = append(parts, m.browser.familyBar())
	if m.browser.locked {
		parts = append(parts, bg.Spaces(1), bg.Render("(locked)", styles.WarningText))
	}
	return bg.FillLine(strings.Join(parts, ""), m.width)
}

// renderSectionBar draws the active family's section row.
func (m Model) renderSectionBar() string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	return bg.FillLine(bg.Spaces(contentPadding-1)+m.browser.sectionBar(), m.width)
}

// renderFooter draws key hints on the left and scroll position on the right.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	pos := bg.Render(fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100), styles.MutedText)
	if m.width < LayoutCompactWidth {
		return bg.FillLine(pos, m.width)
	}

	h := m.help
	h.Width = max(m.width-lipgloss.Width(pos)-2, 0)
	h.Styles.ShortKey = styles.AccentText.Background(bg.Color())
	h.Styles.ShortDesc = styles.MutedText.Background(bg.Color())
	h.Styles.ShortSeparator = styles.FaintText.Background(bg.Color())
	hints := h.ShortHelpView(m.keys.ShortHelp())

	gap := max(m.width-lipgloss.Width(hints)-lipgloss.Width(pos)-2, 1)
	return bg.FillLine(hints+bg.Spaces(gap)+pos, m.width)
}
