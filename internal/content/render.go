package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
)

// Layout limits for panel rendering.
const (
	minPanelWidth = 24

	metricNameWidth   = 20
	metricRangeWidth  = 10
	metricBetterWidth = 8
)

const (
	colMetric  = "metric"
	colRange   = "range"
	colBetter  = "better"
	colFormula = "formula"
)

// Styles holds the lipgloss styles used to draw a Panel.
type Styles struct {
	Heading     lipgloss.Style
	Subheading  lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	TableHeader lipgloss.Style
	TableBorder lipgloss.Color
}

// DefaultStyles returns uncoloured styles.
func DefaultStyles() Styles {
	return Styles{
		Heading:     lipgloss.NewStyle().Bold(true),
		Subheading:  lipgloss.NewStyle().Bold(true),
		Text:        lipgloss.NewStyle(),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Bold(true),
		TableHeader: lipgloss.NewStyle().Bold(true),
	}
}

// Panel renders one section for the terminal UI. Styles is a pointer so a
// theme change reaches every panel without rebuilding them.
type Panel struct {
	Section Section
	Styles  *Styles
}

// Render implements tabs.Renderer.
func (p Panel) Render(width int) string {
	styles := DefaultStyles()
	if p.Styles != nil {
		styles = *p.Styles
	}
	width = max(width, minPanelWidth)

	var blocks []string
	if p.Section.Title != "" {
		blocks = append(blocks, styles.Heading.Render(p.Section.Title))
	}
	for _, para := range p.Section.Paragraphs {
		blocks = append(blocks, styles.Text.Width(width).Render(para))
	}
	for _, list := range p.Section.Lists {
		blocks = append(blocks, renderList(list, styles, width))
	}
	if len(p.Section.Metrics) > 0 {
		blocks = append(blocks,
			metricsTable(p.Section.Metrics, styles, width),
			metricNotes(p.Section.Metrics, styles, width),
		)
	}
	return strings.Join(blocks, "\n\n")
}

func renderList(list List, styles Styles, width int) string {
	var b strings.Builder
	if list.Heading != "" {
		b.WriteString(styles.Subheading.Render(list.Heading))
		b.WriteString("\n")
	}
	for i, item := range list.Items {
		b.WriteString(hangingIndent(styles.Accent.Render("•"), item, styles.Text, width))
		if i < len(list.Items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// hangingIndent wraps text to width and aligns continuation lines under the
// first character after the bullet.
func hangingIndent(bullet, text string, style lipgloss.Style, width int) string {
	body := style.Width(max(width-2, 1)).Render(text)
	lines := strings.Split(body, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = bullet + " " + lines[i]
			continue
		}
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}

func metricsTable(metrics []Metric, styles Styles, width int) string {
	columns := []table.Column{
		table.NewColumn(colMetric, "Metric", metricNameWidth),
		table.NewColumn(colRange, "Range", metricRangeWidth),
		table.NewColumn(colBetter, "Better", metricBetterWidth),
		table.NewFlexColumn(colFormula, "Formula", 1),
	}
	rows := make([]table.Row, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, table.NewRow(table.RowData{
			colMetric:  m.Name,
			colRange:   m.Range,
			colBetter:  m.Better,
			colFormula: m.Formula,
		}))
	}
	base := styles.Text.Align(lipgloss.Left)
	if styles.TableBorder != "" {
		base = base.BorderForeground(styles.TableBorder)
	}
	return table.New(columns).
		WithRows(rows).
		WithTargetWidth(width).
		WithBaseStyle(base).
		HeaderStyle(styles.TableHeader).
		BorderRounded().
		View()
}

func metricNotes(metrics []Metric, styles Styles, width int) string {
	notes := make([]string, 0, len(metrics))
	for _, m := range metrics {
		if strings.TrimSpace(m.Description) == "" {
			continue
		}
		line := fmt.Sprintf("%s %s", styles.Accent.Render(m.Name+":"), m.Description)
		notes = append(notes, styles.Text.Width(width).Render(line))
	}
	return strings.Join(notes, "\n")
}
