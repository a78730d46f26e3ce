package tabs

// Trigger is a selectable label bound to one key.
type Trigger struct {
	key    Key
	label  string
	store  *Store
	sub    Subscription
	active bool
}

func newTrigger(store *Store, key Key, label string) *Trigger {
	t := &Trigger{
		key:    key,
		label:  label,
		store:  store,
		active: store.CurrentKey() == key,
	}
	t.sub = store.Subscribe(t.onChange)
	return t
}

func (t *Trigger) onChange(_, next Key) {
	t.active = next == t.key
}

// Key returns the key this trigger selects.
func (t *Trigger) Key() Key { return t.key }

// Label returns the display label.
func (t *Trigger) Label() string { return t.label }

// Active reports whether the store's key equals this trigger's key.
func (t *Trigger) Active() bool { return t.active }

// Activate requests this trigger's key from the store.
func (t *Trigger) Activate() {
	t.store.RequestChange(t.key)
}

// Render draws the label with the active or inactive style.
func (t *Trigger) Render(styles Styles) string {
	if !t.active {
		return styles.Inactive.Render(t.label)
	}
	label := t.label
	if styles.Bracket {
		label = "[" + label + "]"
	}
	return styles.Active.Render(label)
}

// Close releases the trigger's subscription.
func (t *Trigger) Close() {
	t.sub.Close()
}
