package tabs

// Renderer produces the content of a pane for a given width.
type Renderer interface {
	Render(width int) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(width int) string

// Render calls f.
func (f RendererFunc) Render(width int) string { return f(width) }

// Text is a Renderer for fixed content that ignores width.
type Text string

// Render returns the text unchanged.
func (t Text) Render(int) string { return string(t) }

// Pane is content bound to one key. It renders only while its key is active.
type Pane struct {
	key    Key
	body   Renderer
	sub    Subscription
	active bool
}

func newPane(store *Store, key Key, body Renderer) *Pane {
	p := &Pane{
		key:    key,
		body:   body,
		active: store.CurrentKey() == key,
	}
	p.sub = store.Subscribe(p.onChange)
	return p
}

func (p *Pane) onChange(_, next Key) {
	p.active = next == p.key
}

// Key returns the pane's key.
func (p *Pane) Key() Key { return p.key }

// Visible reports whether the pane currently renders.
func (p *Pane) Visible() bool { return p.active }

// Render returns the body's output, or "" without consulting the body when
// the pane is not active.
func (p *Pane) Render(width int) string {
	if !p.active || p.body == nil {
		return ""
	}
	return p.body.Render(width)
}

// Close releases the pane's subscription.
func (p *Pane) Close() {
	p.sub.Close()
}
