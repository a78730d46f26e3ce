package tabs

import (
	"slices"

	"github.com/google/uuid"
)

// Store holds the active key and the single entry point for changing it.
type Store struct {
	owner   Owner
	key     Key
	notify  func(Key)
	subs    []subscriber
	release func()
}

type subscriber struct {
	id uuid.UUID
	fn func(prev, next Key)
}

// Subscription is the handle returned by Store.Subscribe.
type Subscription struct {
	store *Store
	id    uuid.UUID
}

// NewStore creates a store for owner. A nil owner is treated as Internal{}.
// notify, when non-nil, receives every key passed to RequestChange.
func NewStore(owner Owner, notify func(Key)) *Store {
	if owner == nil {
		owner = Internal{}
	}
	s := &Store{owner: owner, notify: notify}
	switch o := owner.(type) {
	case Internal:
		s.key = o.Initial
	case External:
		s.key = o.Value.Get()
		s.release = o.Value.Watch(s.set)
	}
	return s
}

// Controlled reports whether the store mirrors an external Value.
func (s *Store) Controlled() bool {
	_, ok := s.owner.(External)
	return ok
}

// CurrentKey returns the active key.
func (s *Store) CurrentKey() Key {
	return s.key
}

// RequestChange asks for key to become active. An Internal store applies it
// at once. An External store leaves the key alone until the owner sets its
// Value. The notifier sees key in both cases.
func (s *Store) RequestChange(key Key) {
	switch s.owner.(type) {
	case Internal:
		s.set(key)
	case External:
		// the owner answers through Value.Set
	}
	if s.notify != nil {
		s.notify(key)
	}
}

// Subscribe registers fn to run synchronously whenever the active key
// changes. Subscribers run in registration order.
func (s *Store) Subscribe(fn func(prev, next Key)) Subscription {
	id := uuid.New()
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return Subscription{store: s, id: id}
}

// Close detaches the store from an external Value and drops all subscribers.
func (s *Store) Close() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
	s.subs = nil
}

func (s *Store) set(key Key) {
	if s.key == key {
		return
	}
	prev := s.key
	s.key = key
	for _, sub := range slices.Clone(s.subs) {
		if sub.fn != nil {
			sub.fn(prev, key)
		}
	}
}

func (s *Store) unsubscribe(id uuid.UUID) {
	s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
}

// ID identifies the subscription within its store.
func (sub Subscription) ID() uuid.UUID {
	return sub.id
}

// Close releases the subscription. Closing twice is harmless.
func (sub Subscription) Close() {
	if sub.store == nil {
		return
	}
	sub.store.unsubscribe(sub.id)
}
