package tabs

import "slices"

// Key identifies a trigger/pane pair. Keys match by exact equality.
// The zero value means nothing is selected.
type Key string

// Owner says who holds the authoritative key for a Store.
// The only implementations are Internal and External.
type Owner interface {
	isOwner()
}

// Internal makes the store authoritative, seeded from Initial.
type Internal struct {
	Initial Key
}

// External makes Value authoritative. A nil Value leaves the store unset.
type External struct {
	Value *Value
}

func (Internal) isOwner() {}
func (External) isOwner() {}

// Value is an externally owned key that controlled stores mirror.
type Value struct {
	key      Key
	watchers []*watcher
}

type watcher struct {
	fn func(Key)
}

// NewValue returns a Value holding key.
func NewValue(key Key) *Value {
	return &Value{key: key}
}

// Get returns the current key.
func (v *Value) Get() Key {
	if v == nil {
		return ""
	}
	return v.key
}

// Set replaces the key and tells every watcher. Setting the same key again
// is a no-op.
func (v *Value) Set(key Key) {
	if v == nil || v.key == key {
		return
	}
	v.key = key
	for _, w := range slices.Clone(v.watchers) {
		w.fn(key)
	}
}

// Watch registers fn for every change and returns a func that removes it.
func (v *Value) Watch(fn func(Key)) func() {
	if v == nil || fn == nil {
		return func() {}
	}
	w := &watcher{fn: fn}
	v.watchers = append(v.watchers, w)
	return func() {
		v.watchers = slices.DeleteFunc(v.watchers, func(x *watcher) bool { return x == w })
	}
}

func (v *Value) watcherCount() int {
	if v == nil {
		return 0
	}
	return len(v.watchers)
}
