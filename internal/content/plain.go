package content

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PlainPanel renders a section without colour, for pipes and files.
type PlainPanel struct {
	Section Section
}

// Render implements tabs.Renderer.
func (p PlainPanel) Render(width int) string {
	width = max(width, minPanelWidth)

	var blocks []string
	if p.Section.Title != "" {
		title := strings.ToUpper(p.Section.Title)
		blocks = append(blocks, title+"\n"+strings.Repeat("=", len([]rune(title))))
	}
	for _, para := range p.Section.Paragraphs {
		blocks = append(blocks, text.WrapSoft(para, width))
	}
	for _, list := range p.Section.Lists {
		blocks = append(blocks, plainList(list, width))
	}
	if len(p.Section.Metrics) > 0 {
		tw := MetricsTable(p.Section.Metrics)
		tw.SetAllowedRowLength(width)
		blocks = append(blocks, tw.Render())
	}
	return strings.Join(blocks, "\n\n")
}

func plainList(list List, width int) string {
	var lines []string
	if list.Heading != "" {
		lines = append(lines, list.Heading+":")
	}
	for _, item := range list.Items {
		wrapped := strings.Split(text.WrapSoft(item, max(width-4, 1)), "\n")
		for i, l := range wrapped {
			if i == 0 {
				lines = append(lines, "  - "+l)
				continue
			}
			lines = append(lines, "    "+l)
		}
	}
	return strings.Join(lines, "\n")
}

// MetricsTable returns a table writer listing metrics with their descriptions.
func MetricsTable(metrics []Metric) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Metric", "Formula", "Range", "Better", "Description"})
	for _, m := range metrics {
		tw.AppendRow(table.Row{m.Name, m.Formula, m.Range, m.Better, m.Description})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignCenter},
		{Number: 4, Align: text.AlignCenter},
		{Number: 5, Align: text.AlignLeft, WidthMax: 48},
	})
	tw.SetStyle(table.StyleLight)
	return tw
}

// CatalogTable returns a table writer summarising every family and its
// sections.
func CatalogTable(c Catalog) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Family", "Key", "Sections", "Summary"})
	for _, f := range c.Families {
		tw.AppendRow(table.Row{f.Title, f.Key, strings.Join(f.SectionKeys(), ", "), f.Summary})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, WidthMax: 60},
	})
	tw.SetStyle(table.StyleLight)
	return tw
}
