// Package tabs implements a small tab-selection primitive for terminal views.
//
// # Overview
//
// A Tabs container owns a Store, a row of Triggers and a set of Panes. The
// Store holds the single active Key. Triggers request selection changes and
// Panes render only while their Key is the active one.
//
//	┌──────────────┐  RequestChange(k)  ┌─────────┐
//	│   Trigger    │───────────────────>│  Store  │
//	└──────────────┘                    └────┬────┘
//	       ^                                 │ broadcast(prev, next)
//	       │          ┌──────────────┐       │
//	       └──────────│ Subscribers  │<──────┘
//	                  │ (Trigger,    │
//	                  │  Pane)       │
//	                  └──────────────┘
//
// # Ownership
//
// Every Store is created with an Owner, which is one of two variants:
//
//   - Internal: the store is authoritative. RequestChange updates the key
//     immediately. This is the uncontrolled mode.
//   - External: a *Value held by the caller is authoritative. The store
//     mirrors every Value.Set and RequestChange only forwards the request
//     to the change notifier. This is the controlled mode.
//
// The variant is fixed when the store is created. In both modes the change
// notifier passed to NewStore sees every requested key, even when the
// visible key does not move.
//
// # Wiring
//
// There is no ambient lookup. The container hands its *Store to each
// Trigger and Pane it builds. Children subscribe on construction and release
// their subscription in Close:
//
//	t := tabs.New(tabs.Options{DefaultKey: "overview"})
//	defer t.Close()
//
//	t.Trigger("overview", "Overview")
//	t.Trigger("details", "Details")
//	t.Content("overview", tabs.Text("fits a line"))
//	t.Content("details", tabs.Text("least squares"))
//
//	t.Select("details")
//	fmt.Println(t.View(80))
//
// # Concurrency
//
// Nothing in this package locks. A container and everything it builds must
// be used from one goroutine, normally the Bubble Tea update loop. The
// single-writer rule follows from the ownership split: in controlled mode
// only the Value's owner writes, in uncontrolled mode only the store does.
package tabs
