package ui

import (
	"log/slog"

	"github.com/mlref/mlref/internal/content"
	"github.com/mlref/mlref/internal/tabs"
)

// browser wires a catalog into two levels of tabs: a controlled family row
// whose value the browser owns, and one uncontrolled section container per
// family. Each family pane renders its section container's panes.
type browser struct {
	catalog  content.Catalog
	value    *tabs.Value
	families *tabs.Tabs
	sections map[tabs.Key]*tabs.Tabs
	locked   bool
	logger   *slog.Logger
	subs     []tabs.Subscription
}

type browserOptions struct {
	Family  string
	Section string
	// Locked pins the family: requests still reach the notifier but the
	// value never moves.
	Locked bool
	Logger *slog.Logger
	// Panel builds the pane body for a section.
	Panel         func(content.Section) tabs.Renderer
	FamilyStyles  tabs.Styles
	SectionStyles tabs.Styles
}

func newBrowser(c content.Catalog, opts browserOptions) *browser {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	panel := opts.Panel
	if panel == nil {
		panel = func(s content.Section) tabs.Renderer { return content.Panel{Section: s} }
	}

	b := &browser{
		catalog:  c,
		value:    tabs.NewValue(tabs.Key(initialFamily(c, opts.Family))),
		sections: make(map[tabs.Key]*tabs.Tabs, len(c.Families)),
		locked:   opts.Locked,
		logger:   logger,
	}

	famStyles := opts.FamilyStyles
	b.families = tabs.New(tabs.Options{
		Value:         b.value,
		OnValueChange: b.requestFamily,
		Styles:        &famStyles,
	})

	for _, f := range c.Families {
		fkey := tabs.Key(f.Key)
		secStyles := opts.SectionStyles
		sec := tabs.New(tabs.Options{
			DefaultKey: tabs.Key(initialSection(f, opts.Section)),
			OnValueChange: func(k tabs.Key) {
				logger.Debug("section requested", "family", f.Key, "section", string(k))
			},
			Styles: &secStyles,
		})
		for _, s := range f.Sections {
			sec.Trigger(tabs.Key(s.Key), s.Title)
			sec.Content(tabs.Key(s.Key), panel(s))
		}
		b.sections[fkey] = sec

		b.families.Trigger(fkey, f.Title)
		b.families.Content(fkey, tabs.RendererFunc(sec.PanesView))
	}

	b.subs = append(b.subs, b.families.Store().Subscribe(func(prev, next tabs.Key) {
		logger.Info("family selected", "from", string(prev), "to", string(next))
	}))
	return b
}

func initialFamily(c content.Catalog, want string) string {
	if f, err := c.Family(want); err == nil {
		return f.Key
	}
	if len(c.Families) == 0 {
		return ""
	}
	return c.Families[0].Key
}

func initialSection(f content.Family, want string) string {
	if s, err := f.Section(want); err == nil {
		return s.Key
	}
	if len(f.Sections) == 0 {
		return ""
	}
	return f.Sections[0].Key
}

// requestFamily is the family row's change notifier.
func (b *browser) requestFamily(k tabs.Key) {
	if b.locked {
		b.logger.Warn("family change ignored", "requested", string(k), "locked", string(b.value.Get()))
		return
	}
	b.value.Set(k)
}

func (b *browser) family() tabs.Key { return b.families.Active() }

func (b *browser) activeSections() *tabs.Tabs {
	return b.sections[b.families.Active()]
}

func (b *browser) section() tabs.Key {
	if sec := b.activeSections(); sec != nil {
		return sec.Active()
	}
	return ""
}

// familyTitle returns the display title of the active family.
func (b *browser) familyTitle() string {
	if f, err := b.catalog.Family(string(b.family())); err == nil {
		return f.Title
	}
	return string(b.family())
}

func (b *browser) nextFamily() bool { return b.moveFamily(b.families.Next) }
func (b *browser) prevFamily() bool { return b.moveFamily(b.families.Prev) }

func (b *browser) moveFamily(step func() bool) bool {
	before := b.families.Active()
	step()
	return b.families.Active() != before
}

func (b *browser) nextSection() bool { return b.moveSection((*tabs.Tabs).Next) }
func (b *browser) prevSection() bool { return b.moveSection((*tabs.Tabs).Prev) }

func (b *browser) jumpSection(i int) bool {
	return b.moveSection(func(t *tabs.Tabs) bool { return t.SelectIndex(i) })
}

func (b *browser) moveSection(step func(*tabs.Tabs) bool) bool {
	sec := b.activeSections()
	if sec == nil {
		return false
	}
	before := sec.Active()
	step(sec)
	return sec.Active() != before
}

// contentView renders the active family's active section.
func (b *browser) contentView(width int) string {
	return b.families.PanesView(width)
}

func (b *browser) familyBar() string { return b.families.ListView() }

func (b *browser) sectionBar() string {
	if sec := b.activeSections(); sec != nil {
		return sec.ListView()
	}
	return ""
}

func (b *browser) setStyles(family, section tabs.Styles) {
	b.families.SetStyles(family)
	for _, sec := range b.sections {
		sec.SetStyles(section)
	}
}

func (b *browser) close() {
	for _, sub := range b.subs {
		sub.Close()
	}
	for _, sec := range b.sections {
		sec.Close()
	}
	b.families.Close()
}
