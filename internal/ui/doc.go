// Package ui implements the bayaz terminal interface with Bubble Tea.
//
// The root Model owns three views: the song browser (search input, song
// list and lyrics panel), trending songs and writers read from state.Store,
// and a tail of the bayaz log file. All browser state lives in
// browser.Browser; the model only forwards keys and renders its ViewModel.
//
// Lyrics are fetched inside tea.Cmd goroutines and return as lyricsMsg
// values, which Browser.Apply folds in on the update loop. Catalog reloads
// from the file watcher arrive the same way as catalogMsg.
package ui
