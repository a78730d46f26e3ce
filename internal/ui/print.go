package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mlref/mlref/internal/content"
	"github.com/mlref/mlref/internal/tabs"
)

// PrintOptions configure a non-interactive render.
type PrintOptions struct {
	Family  string
	Section string
	// All prints every section of the family in order.
	All   bool
	Width int
	// Plain drops colour and marks the active tab with brackets.
	Plain     bool
	ThemeName string
}

// Print renders one family through the same tabs wiring the TUI uses and
// writes it to w. Unknown family or section names are errors that carry a
// suggestion.
func Print(w io.Writer, c content.Catalog, opts PrintOptions) error {
	family, err := c.Family(opts.Family)
	if err != nil {
		return err
	}
	section := ""
	if strings.TrimSpace(opts.Section) != "" {
		s, err := family.Section(opts.Section)
		if err != nil {
			return err
		}
		section = s.Key
	}

	bo := browserOptions{Family: family.Key, Section: section}
	if opts.Plain {
		bo.Panel = func(s content.Section) tabs.Renderer { return content.PlainPanel{Section: s} }
		bo.FamilyStyles = tabs.PlainStyles()
		bo.SectionStyles = tabs.PlainStyles()
	} else {
		theme := GetTheme(opts.ThemeName)
		styles := theme.ContentStyles()
		bo.Panel = func(s content.Section) tabs.Renderer { return content.Panel{Section: s, Styles: &styles} }
		bo.FamilyStyles = theme.TabStyles(theme.Surface)
		bo.SectionStyles = theme.TabStyles(theme.SurfaceAlt)
	}
	b := newBrowser(c, bo)
	defer b.close()

	width := opts.Width
	if width <= 0 {
		width = 80
	}

	sections := b.activeSections()
	var blocks []string
	if opts.All {
		for _, tr := range sections.Triggers() {
			sections.Select(tr.Key())
			blocks = append(blocks, sections.View(width))
		}
	} else {
		blocks = append(blocks, sections.View(width))
	}

	if _, err := fmt.Fprintf(w, "%s\n\n%s\n", b.familyBar(), strings.Join(blocks, "\n\n")); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
