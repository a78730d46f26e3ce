package tabs

import (
	"slices"
	"testing"
)

func TestStore_InternalAppliesRequestsImmediately(t *testing.T) {
	s := NewStore(Internal{Initial: "overview"}, nil)
	if got := s.CurrentKey(); got != "overview" {
		t.Fatalf("CurrentKey = %q, want overview", got)
	}

	for _, k := range []Key{"details", "metrics", "details", ""} {
		s.RequestChange(k)
		if got := s.CurrentKey(); got != k {
			t.Fatalf("after RequestChange(%q) CurrentKey = %q", k, got)
		}
	}
}

func TestStore_ExternalMirrorsValueOnly(t *testing.T) {
	v := NewValue("a")
	s := NewStore(External{Value: v}, nil)
	if !s.Controlled() {
		t.Fatal("Controlled() = false, want true")
	}

	steps := []struct {
		external Key
		request  Key
	}{
		{"b", "x"},
		{"c", "c"},
		{"c", "a"},
		{"", "b"},
		{"z", "z"},
	}
	for _, step := range steps {
		v.Set(step.external)
		s.RequestChange(step.request)
		if got := s.CurrentKey(); got != step.external {
			t.Fatalf("CurrentKey = %q after Set(%q) and RequestChange(%q), want %q",
				got, step.external, step.request, step.external)
		}
	}
}

func TestStore_NotifierSeesEveryRequest(t *testing.T) {
	modes := map[string]Owner{
		"internal": Internal{Initial: "a"},
		"external": External{Value: NewValue("a")},
	}
	for name, owner := range modes {
		t.Run(name, func(t *testing.T) {
			var seen []Key
			s := NewStore(owner, func(k Key) { seen = append(seen, k) })

			requests := []Key{"b", "b", "a", "", "c"}
			for _, k := range requests {
				s.RequestChange(k)
			}
			if !slices.Equal(seen, requests) {
				t.Fatalf("notifier saw %v, want %v", seen, requests)
			}
		})
	}
}

func TestStore_ControlledOwnerReflectsRequest(t *testing.T) {
	v := NewValue("a")
	s := NewStore(External{Value: v}, func(k Key) {
		if k != "forbidden" {
			v.Set(k)
		}
	})

	s.RequestChange("b")
	if got := s.CurrentKey(); got != "b" {
		t.Fatalf("CurrentKey = %q, want b once owner accepted", got)
	}
	s.RequestChange("forbidden")
	if got := s.CurrentKey(); got != "b" {
		t.Fatalf("CurrentKey = %q, want b after owner refused", got)
	}
}

func TestStore_InertWhenUnconfigured(t *testing.T) {
	s := NewStore(nil, nil)
	if got := s.CurrentKey(); got != "" {
		t.Fatalf("CurrentKey = %q, want unset", got)
	}

	nilValue := NewStore(External{}, nil)
	nilValue.RequestChange("a")
	if got := nilValue.CurrentKey(); got != "" {
		t.Fatalf("External{nil} CurrentKey = %q, want unset", got)
	}
	nilValue.Close()
}

func TestStore_SubscribersRunOnChangeOnly(t *testing.T) {
	s := NewStore(Internal{Initial: "a"}, nil)

	type change struct{ prev, next Key }
	var first, second []change
	s.Subscribe(func(prev, next Key) { first = append(first, change{prev, next}) })
	s.Subscribe(func(prev, next Key) { second = append(second, change{prev, next}) })

	s.RequestChange("a")
	s.RequestChange("b")
	s.RequestChange("b")
	s.RequestChange("c")

	want := []change{{"a", "b"}, {"b", "c"}}
	if !slices.Equal(first, want) || !slices.Equal(second, want) {
		t.Fatalf("broadcasts = %v / %v, want %v", first, second, want)
	}
}

func TestStore_SubscriptionClose(t *testing.T) {
	s := NewStore(Internal{}, nil)

	calls := 0
	sub := s.Subscribe(func(_, _ Key) { calls++ })
	other := s.Subscribe(func(_, _ Key) {})
	if sub.ID() == other.ID() {
		t.Fatal("subscriptions share an id")
	}

	s.RequestChange("a")
	sub.Close()
	sub.Close()
	s.RequestChange("b")

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if len(s.subs) != 1 {
		t.Fatalf("subscribers = %d, want 1", len(s.subs))
	}

	var zero Subscription
	zero.Close()
}

func TestStore_UnsubscribeDuringBroadcast(t *testing.T) {
	s := NewStore(Internal{}, nil)

	var sub Subscription
	calls := 0
	sub = s.Subscribe(func(_, _ Key) {
		calls++
		sub.Close()
	})
	s.RequestChange("a")
	s.RequestChange("b")
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestStore_CloseReleasesExternalValue(t *testing.T) {
	v := NewValue("a")
	s := NewStore(External{Value: v}, nil)
	if v.watcherCount() != 1 {
		t.Fatalf("watchers = %d, want 1", v.watcherCount())
	}

	s.Close()
	if v.watcherCount() != 0 {
		t.Fatalf("watchers after Close = %d, want 0", v.watcherCount())
	}

	v.Set("b")
	if got := s.CurrentKey(); got != "a" {
		t.Fatalf("closed store followed Value to %q", got)
	}
	s.Close()
}

func TestValue_SetSameKeyDoesNotNotify(t *testing.T) {
	v := NewValue("a")
	calls := 0
	stop := v.Watch(func(Key) { calls++ })

	v.Set("a")
	v.Set("b")
	stop()
	v.Set("c")

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	var nilValue *Value
	nilValue.Set("x")
	if nilValue.Get() != "" {
		t.Fatal("nil Value should read as unset")
	}
	nilValue.Watch(func(Key) {})()
}
