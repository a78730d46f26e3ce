package tabs

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Options configure a Tabs container.
type Options struct {
	// DefaultKey seeds an uncontrolled container. Ignored when Value is set.
	DefaultKey Key
	// Value, when non-nil, puts the container in controlled mode for its
	// whole lifetime.
	Value *Value
	// OnValueChange receives every requested key, in both modes.
	OnValueChange func(Key)
	// Styles for the trigger row. The zero value uses DefaultStyles.
	Styles *Styles
}

// Tabs is the composition root for a store, its triggers and its panes.
type Tabs struct {
	store    *Store
	triggers []*Trigger
	panes    []*Pane
	styles   Styles
}

// New builds a container and its store.
func New(opts Options) *Tabs {
	var owner Owner = Internal{Initial: opts.DefaultKey}
	if opts.Value != nil {
		owner = External{Value: opts.Value}
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	return &Tabs{
		store:  NewStore(owner, opts.OnValueChange),
		styles: styles,
	}
}

// Store returns the container's store.
func (t *Tabs) Store() *Store { return t.store }

// Active returns the store's current key.
func (t *Tabs) Active() Key { return t.store.CurrentKey() }

// Trigger adds a trigger for key to the end of the trigger row.
func (t *Tabs) Trigger(key Key, label string) *Trigger {
	tr := newTrigger(t.store, key, label)
	t.triggers = append(t.triggers, tr)
	return tr
}

// Content adds a pane for key.
func (t *Tabs) Content(key Key, body Renderer) *Pane {
	p := newPane(t.store, key, body)
	t.panes = append(t.panes, p)
	return p
}

// Triggers returns the triggers in display order.
func (t *Tabs) Triggers() []*Trigger { return t.triggers }

// Panes returns the panes in the order they were added.
func (t *Tabs) Panes() []*Pane { return t.panes }

// SetStyles replaces the trigger row styles.
func (t *Tabs) SetStyles(styles Styles) { t.styles = styles }

// Select activates the first trigger bound to key. It reports false when no
// trigger has that key.
func (t *Tabs) Select(key Key) bool {
	for _, tr := range t.triggers {
		if tr.Key() == key {
			tr.Activate()
			return true
		}
	}
	return false
}

// SelectIndex activates the trigger at position i.
func (t *Tabs) SelectIndex(i int) bool {
	if i < 0 || i >= len(t.triggers) {
		return false
	}
	t.triggers[i].Activate()
	return true
}

// Next activates the trigger after the active one, wrapping at the end.
// With nothing active it starts at the first trigger.
func (t *Tabs) Next() bool {
	return t.step(1)
}

// Prev activates the trigger before the active one, wrapping at the start.
// With nothing active it starts at the last trigger.
func (t *Tabs) Prev() bool {
	return t.step(-1)
}

func (t *Tabs) step(delta int) bool {
	n := len(t.triggers)
	if n == 0 {
		return false
	}
	idx := t.activeIndex()
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = ((idx+delta)%n + n) % n
	}
	t.triggers[idx].Activate()
	return true
}

func (t *Tabs) activeIndex() int {
	for i, tr := range t.triggers {
		if tr.Active() {
			return i
		}
	}
	return -1
}

// ListView renders the trigger row.
func (t *Tabs) ListView() string {
	parts := make([]string, 0, len(t.triggers))
	for _, tr := range t.triggers {
		parts = append(parts, tr.Render(t.styles))
	}
	return strings.Join(parts, t.styles.Separator)
}

// PanesView renders every visible pane, top to bottom.
func (t *Tabs) PanesView(width int) string {
	var out []string
	for _, p := range t.panes {
		if !p.Visible() {
			continue
		}
		out = append(out, p.Render(width))
	}
	return strings.Join(out, "\n")
}

// View renders the trigger row above the visible panes.
func (t *Tabs) View(width int) string {
	return lipgloss.JoinVertical(lipgloss.Left, t.ListView(), "", t.PanesView(width))
}

// Render makes a container usable as the body of another container's pane.
func (t *Tabs) Render(width int) string {
	return t.View(width)
}

// Close releases every child subscription and then the store.
func (t *Tabs) Close() {
	for _, tr := range t.triggers {
		tr.Close()
	}
	for _, p := range t.panes {
		p.Close()
	}
	t.store.Close()
}
