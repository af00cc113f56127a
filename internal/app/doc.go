// Package app is the composition root for bayaz.
//
// Setup resolves configuration, opens the zap log file, connects the catalog
// service when api_url is set, and loads the catalog either from the service
// or from a local JSON/YAML file. Run then builds the browser, starts the
// trending poller and the catalog file watcher, and hands control to the TUI.
//
// Background work:
//
//   - poller.go refreshes trending songs and writers into a state.Store,
//     backing off exponentially while the service is unreachable.
//   - watcher.go reloads the catalog file through fsnotify and delivers the
//     rebuilt catalog on a channel the UI drains.
//
// headless.go exposes the same operations for the non-interactive cobra
// commands (search, show, trending).
package app
