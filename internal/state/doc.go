// Package state shares trending data between the background poller and the UI.
//
// # Overview
//
// The trending poller fetches top songs and writers from the catalog service
// on its own schedule. The UI reads whatever is current on each tick. Store
// sits between the two:
//
//	Producer (poller):             Consumer (UI):
//	┌────────────────────┐        ┌──────────────────┐
//	│ FetchTrending()    │        │                  │
//	│      ↓             │        │                  │
//	│ store.Update()     │───────→│ store.Snapshot() │
//	│      ↓             │ (mutex)│      ↓           │
//	│  wait, repeat      │        │  render trending │
//	└────────────────────┘        └──────────────────┘
//
// # Failure Tracking
//
// A failed poll keeps the last good data and records the error with a
// consecutive failure count. Two or more consecutive failures mark the
// snapshot offline; the next success resets the count.
//
// # Copies
//
// Snapshot returns copies of the song and writer slices and a wrapped copy of
// the last error, so callers may hold on to a snapshot while the poller keeps
// writing.
//
// The catalog itself does not live here. It is read-only after load and is
// swapped as a whole value when the catalog file changes.
package state
